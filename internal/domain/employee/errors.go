package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrInvalidHourlyRate = errors.New("employee hourly rate must be positive")
	ErrNoEmailOnFile     = errors.New("employee has no email address on file")
)
