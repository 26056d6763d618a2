package employee

import "context"

type EmployeeRepository interface {
	GetByNumber(ctx context.Context, employeeNumber int) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
}
