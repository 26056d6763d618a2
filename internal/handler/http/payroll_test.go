package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorph/payroll-engine-go/internal/domain/employee"
	"github.com/motorph/payroll-engine-go/internal/domain/payroll"
)

type stubPayrollService struct {
	computeResp payroll.PayrollResponse
	computeErr  error
	renderResp  payroll.PayslipFile
	renderErr   error
	archiveResp payroll.PayslipFile
	archiveErr  error
	sendResp    payroll.SendPayslipResponse
	sendErr     error

	lastReq payroll.ComputeRequest
}

func (s *stubPayrollService) ComputeMonthly(ctx context.Context, req payroll.ComputeRequest) (payroll.PayrollResponse, error) {
	s.lastReq = req
	return s.computeResp, s.computeErr
}

func (s *stubPayrollService) RenderPayslip(ctx context.Context, req payroll.ComputeRequest) (payroll.PayslipFile, error) {
	s.lastReq = req
	return s.renderResp, s.renderErr
}

func (s *stubPayrollService) ArchivedPayslip(ctx context.Context, req payroll.ComputeRequest) (payroll.PayslipFile, error) {
	s.lastReq = req
	return s.archiveResp, s.archiveErr
}

func (s *stubPayrollService) EmailPayslip(ctx context.Context, req payroll.ComputeRequest) (payroll.SendPayslipResponse, error) {
	s.lastReq = req
	return s.sendResp, s.sendErr
}

func newPayrollTestRouter(svc payroll.PayrollService) *chi.Mux {
	h := NewPayrollHandler(svc)
	r := chi.NewRouter()
	r.Route("/payroll/{employeeNumber}", func(r chi.Router) {
		r.Get("/", h.ComputeMonthly)
		r.Route("/payslip", func(r chi.Router) {
			r.Get("/", h.DownloadPayslip)
			r.Get("/archive", h.DownloadArchivedPayslip)
			r.Post("/send", h.SendPayslip)
		})
	})
	return r
}

// Test ComputeMonthly - Success
func TestPayrollHandler_ComputeMonthly_Success(t *testing.T) {
	stub := &stubPayrollService{
		computeResp: payroll.PayrollResponse{
			EmployeeNumber: 10001,
			EmployeeName:   "Garcia, Manuel",
			Month:          "JUNE",
			Year:           2024,
			GrossSalary:    decimal.RequireFromString("16123.45"),
			NetPay:         decimal.RequireFromString("17440.55"),
		},
	}
	router := newPayrollTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/payroll/10001?month=JUNE", nil)
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
	assert.Equal(t, "Garcia, Manuel", data["employee_name"])
	assert.Equal(t, "16123.45", data["gross_salary"])
	assert.Equal(t, "17440.55", data["net_pay"])

	// The handler forwards the parsed route and query values to the service
	assert.Equal(t, 10001, stub.lastReq.EmployeeNumber)
	assert.Equal(t, "JUNE", stub.lastReq.Month)
}

// Test ComputeMonthly - Employee number must be numeric
func TestPayrollHandler_ComputeMonthly_InvalidEmployeeNumber(t *testing.T) {
	router := newPayrollTestRouter(&stubPayrollService{})

	req := httptest.NewRequest(http.MethodGet, "/payroll/garcia?month=JUNE", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Test ComputeMonthly - Missing month fails validation
func TestPayrollHandler_ComputeMonthly_MissingMonth(t *testing.T) {
	router := newPayrollTestRouter(&stubPayrollService{})

	req := httptest.NewRequest(http.MethodGet, "/payroll/10001", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	require.NoError(t, err)
	errDetail := resp["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errDetail["code"])
}

// Test ComputeMonthly - Unknown employee maps to 404
func TestPayrollHandler_ComputeMonthly_EmployeeNotFound(t *testing.T) {
	stub := &stubPayrollService{computeErr: employee.ErrEmployeeNotFound}
	router := newPayrollTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/payroll/99999?month=JUNE", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Test ComputeMonthly - Month outside the fiscal window maps to 404
func TestPayrollHandler_ComputeMonthly_MonthOutsideWindow(t *testing.T) {
	stub := &stubPayrollService{computeErr: payroll.ErrMonthNotComputable}
	router := newPayrollTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/payroll/10001?month=JANUARY", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Test DownloadPayslip - Success returns the PDF bytes
func TestPayrollHandler_DownloadPayslip_Success(t *testing.T) {
	content := []byte("%PDF-1.4 payslip bytes")
	stub := &stubPayrollService{
		renderResp: payroll.PayslipFile{
			FileName:    "payslip-10001-JUNE-2024.pdf",
			ContentType: "application/pdf",
			Content:     content,
		},
	}
	router := newPayrollTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/payroll/10001/payslip?month=JUNE", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `attachment`)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "payslip-10001-JUNE-2024.pdf")
	assert.True(t, bytes.Equal(content, w.Body.Bytes()))
}

// Test DownloadArchivedPayslip - Nothing archived yet maps to 404
func TestPayrollHandler_DownloadArchivedPayslip_NotArchived(t *testing.T) {
	stub := &stubPayrollService{archiveErr: payroll.ErrPayslipNotArchived}
	router := newPayrollTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/payroll/10001/payslip/archive?month=JUNE", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Test SendPayslip - Success with the month in the JSON body
func TestPayrollHandler_SendPayslip_MonthFromBody(t *testing.T) {
	stub := &stubPayrollService{
		sendResp: payroll.SendPayslipResponse{
			EmployeeNumber: 10001,
			Month:          "JUNE",
			SentTo:         "manuel.garcia@example.com",
		},
	}
	router := newPayrollTestRouter(stub)

	body := strings.NewReader(`{"month": "JUNE"}`)
	req := httptest.NewRequest(http.MethodPost, "/payroll/10001/payslip/send", body)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	require.NoError(t, err)
	assert.True(t, resp["success"].(bool))
	assert.Equal(t, "Payslip sent successfully", resp["message"])

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "manuel.garcia@example.com", data["sent_to"])

	// The body month reached the service
	assert.Equal(t, "JUNE", stub.lastReq.Month)
}

// Test SendPayslip - No email on file maps to 409
func TestPayrollHandler_SendPayslip_NoEmailOnFile(t *testing.T) {
	stub := &stubPayrollService{sendErr: employee.ErrNoEmailOnFile}
	router := newPayrollTestRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/payroll/10002/payslip/send?month=JUNE", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
