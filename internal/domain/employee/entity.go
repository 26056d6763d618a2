package employee

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                string
	EmployeeNumber    int
	FirstName         string
	LastName          string
	Birthday          time.Time
	Email             *string
	HourlyRate        decimal.Decimal
	RiceSubsidy       decimal.Decimal
	PhoneAllowance    decimal.Decimal
	ClothingAllowance decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// MonthlyBenefits is the fixed allowance total added back after deductions.
func (e Employee) MonthlyBenefits() decimal.Decimal {
	return e.RiceSubsidy.Add(e.PhoneAllowance).Add(e.ClothingAllowance)
}

// DisplayName renders "Last, First" as used on payroll statements.
func (e Employee) DisplayName() string {
	return fmt.Sprintf("%s, %s", e.LastName, e.FirstName)
}

// HasValidRate reports whether the profile carries a payable hourly rate.
// A zero or negative rate is a data error, not a valid profile.
func (e Employee) HasValidRate() bool {
	return e.HourlyRate.IsPositive()
}
