package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/motorph/payroll-engine-go/internal/domain/employee"
	"github.com/motorph/payroll-engine-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByNumber implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByNumber(ctx context.Context, employeeNumber int) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_number, first_name, last_name, birthday, email,
			hourly_rate, rice_subsidy, phone_allowance, clothing_allowance,
			created_at, updated_at
		FROM employees
		WHERE employee_number = $1
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, employeeNumber).Scan(
		&found.ID, &found.EmployeeNumber, &found.FirstName, &found.LastName,
		&found.Birthday, &found.Email, &found.HourlyRate, &found.RiceSubsidy,
		&found.PhoneAllowance, &found.ClothingAllowance,
		&found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %d: %w", employeeNumber, err)
	}

	return found, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(first_name ILIKE $%d OR last_name ILIKE $%d OR employee_number::text LIKE $%d)",
			argIdx, argIdx, argIdx,
		))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM employees WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT id, employee_number, first_name, last_name, birthday, email,
			hourly_rate, rice_subsidy, phone_allowance, clothing_allowance,
			created_at, updated_at
		FROM employees
		WHERE %s
		ORDER BY employee_number ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.EmployeeNumber, &emp.FirstName, &emp.LastName,
			&emp.Birthday, &emp.Email, &emp.HourlyRate, &emp.RiceSubsidy,
			&emp.PhoneAllowance, &emp.ClothingAllowance,
			&emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}
