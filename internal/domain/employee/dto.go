package employee

import (
	"github.com/motorph/payroll-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type EmployeeFilter struct {
	Search string `json:"search,omitempty"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}

func (f *EmployeeFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

type EmployeeResponse struct {
	EmployeeNumber    int             `json:"employee_number"`
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	Birthday          string          `json:"birthday"`
	Email             *string         `json:"email,omitempty"`
	HourlyRate        decimal.Decimal `json:"hourly_rate"`
	RiceSubsidy       decimal.Decimal `json:"rice_subsidy"`
	PhoneAllowance    decimal.Decimal `json:"phone_allowance"`
	ClothingAllowance decimal.Decimal `json:"clothing_allowance"`
	MonthlyBenefits   decimal.Decimal `json:"monthly_benefits"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Showing    string             `json:"showing"`
}

type GetEmployeeRequest struct {
	EmployeeNumber int
}

func (r *GetEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeNumber <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_number", Message: "must be a positive integer"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
