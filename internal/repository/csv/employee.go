package csv

import (
	"context"
	"strings"

	"github.com/motorph/payroll-engine-go/internal/domain/employee"
	"github.com/motorph/payroll-engine-go/internal/pkg/validator"
)

type employeeRepositoryImpl struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepositoryImpl{store: store}
}

// GetByNumber implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByNumber(ctx context.Context, employeeNumber int) (employee.Employee, error) {
	e.store.mu.RLock()
	emp, ok := e.store.byNumber[employeeNumber]
	e.store.mu.RUnlock()

	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	e.store.mu.RLock()
	snapshot := e.store.employees
	e.store.mu.RUnlock()

	filtered := snapshot
	if filter.Search != "" {
		search := strings.ToLower(filter.Search)
		filtered = make([]employee.Employee, 0, len(snapshot))
		for _, emp := range snapshot {
			if strings.Contains(strings.ToLower(emp.FirstName), search) ||
				strings.Contains(strings.ToLower(emp.LastName), search) ||
				strings.Contains(validator.Itoa(emp.EmployeeNumber), search) {
				filtered = append(filtered, emp)
			}
		}
	}

	total := int64(len(filtered))

	offset := (filter.Page - 1) * filter.Limit
	if offset >= len(filtered) {
		return nil, total, nil
	}
	end := offset + filter.Limit
	if end > len(filtered) {
		end = len(filtered)
	}

	page := make([]employee.Employee, end-offset)
	copy(page, filtered[offset:end])
	return page, total, nil
}
