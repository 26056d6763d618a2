package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorph/payroll-engine-go/internal/domain/employee"
)

type stubEmployeeService struct {
	getResp  employee.EmployeeResponse
	getErr   error
	listResp employee.ListEmployeeResponse
	listErr  error

	lastFilter employee.EmployeeFilter
}

func (s *stubEmployeeService) GetEmployee(ctx context.Context, req employee.GetEmployeeRequest) (employee.EmployeeResponse, error) {
	return s.getResp, s.getErr
}

func (s *stubEmployeeService) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	s.lastFilter = filter
	return s.listResp, s.listErr
}

func newEmployeeTestRouter(svc employee.EmployeeService) *chi.Mux {
	h := NewEmployeeHandler(svc)
	r := chi.NewRouter()
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.ListEmployees)
		r.Get("/{employeeNumber}", h.GetEmployee)
	})
	return r
}

// Test GetEmployee - Success
func TestEmployeeHandler_GetEmployee_Success(t *testing.T) {
	stub := &stubEmployeeService{
		getResp: employee.EmployeeResponse{
			EmployeeNumber: 10001,
			FirstName:      "Manuel",
			LastName:       "Garcia",
			Birthday:       "1983-10-11",
		},
	}
	router := newEmployeeTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/employees/10001", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	require.NoError(t, err)
	assert.True(t, resp["success"].(bool))

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(10001), data["employee_number"])
	assert.Equal(t, "Manuel", data["first_name"])
	assert.Equal(t, "1983-10-11", data["birthday"])
}

// Test GetEmployee - Non-numeric route parameter
func TestEmployeeHandler_GetEmployee_InvalidNumber(t *testing.T) {
	router := newEmployeeTestRouter(&stubEmployeeService{})

	req := httptest.NewRequest(http.MethodGet, "/employees/garcia", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Test GetEmployee - Not Found
func TestEmployeeHandler_GetEmployee_NotFound(t *testing.T) {
	stub := &stubEmployeeService{getErr: employee.ErrEmployeeNotFound}
	router := newEmployeeTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/employees/99999", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	require.NoError(t, err)
	assert.False(t, resp["success"].(bool))
}

// Test ListEmployees - Query parameters reach the service
func TestEmployeeHandler_ListEmployees_ForwardsQuery(t *testing.T) {
	stub := &stubEmployeeService{
		listResp: employee.ListEmployeeResponse{
			Data:       []employee.EmployeeResponse{{EmployeeNumber: 10001}},
			TotalCount: 1,
		},
	}
	router := newEmployeeTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/employees?search=garcia&page=2&limit=5", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "garcia", stub.lastFilter.Search)
	assert.Equal(t, 2, stub.lastFilter.Page)
	assert.Equal(t, 5, stub.lastFilter.Limit)
}

// Test ListEmployees - Bad pagination values fall back to defaults
func TestEmployeeHandler_ListEmployees_IgnoresBadPagination(t *testing.T) {
	stub := &stubEmployeeService{}
	router := newEmployeeTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/employees?page=zero&limit=-3", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert: the service receives zero values, Normalize applies defaults there
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, stub.lastFilter.Page)
	assert.Equal(t, 0, stub.lastFilter.Limit)
}
