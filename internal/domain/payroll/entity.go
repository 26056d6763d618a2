package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultOvertimePremium is the fraction of the base hourly rate added on
// top of it for every overtime hour, so work past the scheduled day is paid
// at 125% of the base rate.
const DefaultOvertimePremium = "0.25"

// Policy carries the fixed compensation rules for the fiscal window: the
// window itself, the scheduled workday, and the overtime premium. Built
// once at startup and treated as immutable.
type Policy struct {
	FiscalStart time.Time
	FiscalEnd   time.Time

	// Minutes after midnight. The workday runs 08:00-17:00 with an unpaid
	// lunch break 12:00-13:00.
	WorkStartMinute  int
	WorkEndMinute    int
	LunchStartMinute int
	LunchEndMinute   int

	OvertimePremium decimal.Decimal
}

// DefaultPolicy returns the June 3 - December 31, 2024 payroll policy.
func DefaultPolicy() Policy {
	return Policy{
		FiscalStart:      time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
		FiscalEnd:        time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		WorkStartMinute:  8 * 60,
		WorkEndMinute:    17 * 60,
		LunchStartMinute: 12 * 60,
		LunchEndMinute:   13 * 60,
		OvertimePremium:  decimal.RequireFromString(DefaultOvertimePremium),
	}
}

// PayPeriod is one aggregation week: seven calendar days, except the last
// period of the fiscal window, which is clipped to the window end.
type PayPeriod struct {
	WeekNumber int
	Start      time.Time
	End        time.Time
}

// Contains reports whether the date falls inside [Start, End].
func (p PayPeriod) Contains(date time.Time) bool {
	return !date.Before(p.Start) && !date.After(p.End)
}

// DailyResult is the evaluation of a single attendance record.
type DailyResult struct {
	RegularMinutes int
	LateMinutes    int
	OvertimePay    decimal.Decimal
}

// WeeklyTotals folds the daily results of one pay period.
type WeeklyTotals struct {
	Period         PayPeriod
	RegularMinutes int
	LateMinutes    int
	RegularPay     decimal.Decimal
	OvertimePay    decimal.Decimal
	WeeklySalary   decimal.Decimal
}

// Deductions itemizes the statutory deductions taken from one month's
// gross salary. PhilHealth holds only the employee half of the premium.
type Deductions struct {
	SSS            decimal.Decimal
	PhilHealth     decimal.Decimal
	PagIbig        decimal.Decimal
	WithholdingTax decimal.Decimal
	TaxableIncome  decimal.Decimal
	Total          decimal.Decimal
}

// PayrollResult is the full statement for one employee and month.
type PayrollResult struct {
	EmployeeNumber  int
	Month           time.Month
	Year            int
	Weeks           []WeeklyTotals
	GrossSalary     decimal.Decimal
	Deductions      Deductions
	MonthlyBenefits decimal.Decimal
	NetPay          decimal.Decimal
}
