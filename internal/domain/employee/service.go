package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// GetEmployee retrieves a single employee by payroll number
	GetEmployee(ctx context.Context, req GetEmployeeRequest) (EmployeeResponse, error)

	// ListEmployees lists the roster with search and pagination
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
}
