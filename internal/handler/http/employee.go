package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/motorph/payroll-engine-go/internal/domain/employee"
	"github.com/motorph/payroll-engine-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	GetEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// employeeNumberParam parses the {employeeNumber} route parameter.
func employeeNumberParam(r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "employeeNumber")
	employeeNumber, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return employeeNumber, true
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employeeNumber, ok := employeeNumberParam(r)
	if !ok {
		response.BadRequest(w, "Employee number must be an integer", nil)
		return
	}

	req := employee.GetEmployeeRequest{EmployeeNumber: employeeNumber}
	result, err := h.employeeService.GetEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	filter := employee.EmployeeFilter{}

	// Search
	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = search
	}

	// Pagination
	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			filter.Page = pageNum
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			filter.Limit = limitNum
		}
	}

	results, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
