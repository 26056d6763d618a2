package response

import (
	"errors"
	"net/http"

	"github.com/motorph/payroll-engine-go/internal/domain/attendance"
	"github.com/motorph/payroll-engine-go/internal/domain/auth"
	"github.com/motorph/payroll-engine-go/internal/domain/employee"
	"github.com/motorph/payroll-engine-go/internal/domain/payroll"
	"github.com/motorph/payroll-engine-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenMissing):
		Unauthorized(w, "Refresh token cookie not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidHourlyRate):
		BadRequest(w, "Employee hourly rate must be positive", nil)
	case errors.Is(err, employee.ErrNoEmailOnFile):
		Conflict(w, "Employee has no email address on file")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrEmptyImport):
		BadRequest(w, "Import file contains no attendance rows", nil)
	case errors.Is(err, attendance.ErrImportNotSupported):
		Conflict(w, "Attendance import requires the postgres data source")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrMonthNotComputable):
		NotFound(w, "No pay periods fall within the requested month")
	case errors.Is(err, payroll.ErrNonPositiveGross):
		BadRequest(w, "Gross salary must be positive to calculate deductions", nil)
	case errors.Is(err, payroll.ErrPayslipNotArchived):
		NotFound(w, "No archived payslip for the requested month")
	case errors.Is(err, payroll.ErrArchiveNotConfigured):
		ServiceUnavailable(w, "Payslip archive is not configured")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
