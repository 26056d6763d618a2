package payroll

import "errors"

var (
	ErrMonthNotComputable   = errors.New("no pay periods fall within the requested month")
	ErrNonPositiveGross     = errors.New("gross salary must be positive to calculate deductions")
	ErrPayslipNotArchived   = errors.New("no archived payslip for the requested month")
	ErrArchiveNotConfigured = errors.New("payslip archive is not configured")
)
