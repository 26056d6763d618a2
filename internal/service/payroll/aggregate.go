package payroll

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/motorph/payroll-engine-go/internal/domain/attendance"
	"github.com/motorph/payroll-engine-go/internal/domain/payroll"
)

// minutesToPay converts worked minutes to pay at an hourly rate.
func minutesToPay(minutes int, hourlyRate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(minutesPerHour).Mul(hourlyRate)
}

// computeWeek folds every attendance record of one employee that falls in
// the pay period. Records are matched here by employee number and date, so
// callers may pass an unfiltered, unordered batch. Rows missing either
// punch are skipped with a log line. Regular pay is derived from the summed
// minutes of the whole week, not per day.
func computeWeek(policy payroll.Policy, employeeNumber int, hourlyRate decimal.Decimal, period payroll.PayPeriod, records []attendance.AttendanceRecord) payroll.WeeklyTotals {
	totals := payroll.WeeklyTotals{
		Period:      period,
		OvertimePay: decimal.Zero,
	}

	for _, rec := range records {
		if rec.EmployeeNumber != employeeNumber {
			continue
		}
		// Compare at date precision regardless of the source time zone.
		day := time.Date(rec.Date.Year(), rec.Date.Month(), rec.Date.Day(), 0, 0, 0, 0, time.UTC)
		if !period.Contains(day) {
			continue
		}
		if !rec.HasBothPunches() {
			slog.Info("Attendance day skipped, missing clock time", "employee_number", rec.EmployeeNumber, "date", rec.Date.Format("2006-01-02"))
			continue
		}

		result := evaluateDay(policy, hourlyRate, rec)
		totals.RegularMinutes += result.RegularMinutes
		totals.LateMinutes += result.LateMinutes
		totals.OvertimePay = totals.OvertimePay.Add(result.OvertimePay)
	}

	totals.RegularPay = minutesToPay(totals.RegularMinutes, hourlyRate)
	totals.WeeklySalary = totals.RegularPay.Add(totals.OvertimePay)
	return totals
}

// computeMonth evaluates every pay period of the month and sums the weekly
// salaries into the monthly gross.
func computeMonth(policy payroll.Policy, employeeNumber int, hourlyRate decimal.Decimal, periods []payroll.PayPeriod, records []attendance.AttendanceRecord) ([]payroll.WeeklyTotals, decimal.Decimal) {
	weeks := make([]payroll.WeeklyTotals, 0, len(periods))
	grossSalary := decimal.Zero

	for _, period := range periods {
		week := computeWeek(policy, employeeNumber, hourlyRate, period, records)
		weeks = append(weeks, week)
		grossSalary = grossSalary.Add(week.WeeklySalary)
	}

	return weeks, grossSalary
}
