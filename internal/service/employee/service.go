package employee

import (
	"context"
	"fmt"
	"math"

	"github.com/motorph/payroll-engine-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, req employee.GetEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByNumber(ctx, req.EmployeeNumber)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	filter.Normalize()

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	data := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		data = append(data, mapToEmployeeResponse(emp))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return employee.ListEmployeeResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    showing,
	}, nil
}

func mapToEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		EmployeeNumber:    emp.EmployeeNumber,
		FirstName:         emp.FirstName,
		LastName:          emp.LastName,
		Birthday:          emp.Birthday.Format("2006-01-02"),
		Email:             emp.Email,
		HourlyRate:        emp.HourlyRate,
		RiceSubsidy:       emp.RiceSubsidy,
		PhoneAllowance:    emp.PhoneAllowance,
		ClothingAllowance: emp.ClothingAllowance,
		MonthlyBenefits:   emp.MonthlyBenefits(),
	}
}
