package payroll

import (
	"github.com/motorph/payroll-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== COMPUTE DTOs ==========

type ComputeRequest struct {
	EmployeeNumber int    `json:"-"`
	Month          string `json:"month"`
}

func (r *ComputeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeNumber <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_number", Message: "must be a positive integer"})
	}
	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "is required"})
	} else if _, ok := validator.ParseMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a full English month name, e.g. JUNE"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WeeklyTotalsResponse struct {
	WeekNumber     int             `json:"week_number"`
	StartDate      string          `json:"start_date"`
	EndDate        string          `json:"end_date"`
	RegularMinutes int             `json:"regular_minutes"`
	LateMinutes    int             `json:"late_minutes"`
	RegularPay     decimal.Decimal `json:"regular_pay"`
	OvertimePay    decimal.Decimal `json:"overtime_pay"`
	WeeklySalary   decimal.Decimal `json:"weekly_salary"`
}

type DeductionsResponse struct {
	SSS            decimal.Decimal `json:"sss"`
	PhilHealth     decimal.Decimal `json:"philhealth"`
	PagIbig        decimal.Decimal `json:"pag_ibig"`
	WithholdingTax decimal.Decimal `json:"withholding_tax"`
	TaxableIncome  decimal.Decimal `json:"taxable_income"`
	Total          decimal.Decimal `json:"total"`
}

type PayrollResponse struct {
	EmployeeNumber  int                    `json:"employee_number"`
	EmployeeName    string                 `json:"employee_name"`
	Birthday        string                 `json:"birthday"`
	HourlyRate      decimal.Decimal        `json:"hourly_rate"`
	Month           string                 `json:"month"`
	Year            int                    `json:"year"`
	Weeks           []WeeklyTotalsResponse `json:"weeks"`
	GrossSalary     decimal.Decimal        `json:"gross_salary"`
	Deductions      DeductionsResponse     `json:"deductions"`
	MonthlyBenefits decimal.Decimal        `json:"monthly_benefits"`
	NetPay          decimal.Decimal        `json:"net_pay"`
}

// ========== PAYSLIP DTOs ==========

type PayslipFile struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"-"`
	ArchivePath string `json:"archive_path,omitempty"`
}

type SendPayslipResponse struct {
	EmployeeNumber int    `json:"employee_number"`
	Month          string `json:"month"`
	SentTo         string `json:"sent_to"`
}
