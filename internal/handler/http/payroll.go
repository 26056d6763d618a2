package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/motorph/payroll-engine-go/internal/domain/payroll"
	"github.com/motorph/payroll-engine-go/internal/handler/http/response"
)

type PayrollHandler interface {
	// Computation
	ComputeMonthly(w http.ResponseWriter, r *http.Request)

	// Payslips
	DownloadPayslip(w http.ResponseWriter, r *http.Request)
	DownloadArchivedPayslip(w http.ResponseWriter, r *http.Request)
	SendPayslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// computeRequest builds a ComputeRequest from the route parameter and the
// month query parameter. POST bodies may carry the month as JSON instead.
func computeRequest(r *http.Request) (payroll.ComputeRequest, bool) {
	employeeNumber, ok := employeeNumberParam(r)
	if !ok {
		return payroll.ComputeRequest{}, false
	}

	req := payroll.ComputeRequest{
		EmployeeNumber: employeeNumber,
		Month:          r.URL.Query().Get("month"),
	}
	if req.Month == "" && r.Body != nil {
		// Fallback: try to get the month from a JSON body
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	return req, true
}

// ========== COMPUTATION ==========

func (h *payrollHandlerImpl) ComputeMonthly(w http.ResponseWriter, r *http.Request) {
	req, ok := computeRequest(r)
	if !ok {
		response.BadRequest(w, "Employee number must be an integer", nil)
		return
	}

	// Validate DTO
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.ComputeMonthly(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== PAYSLIPS ==========

func (h *payrollHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	req, ok := computeRequest(r)
	if !ok {
		response.BadRequest(w, "Employee number must be an integer", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	file, err := h.payrollService.RenderPayslip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, file.FileName, file.ContentType, file.Content)
}

func (h *payrollHandlerImpl) DownloadArchivedPayslip(w http.ResponseWriter, r *http.Request) {
	req, ok := computeRequest(r)
	if !ok {
		response.BadRequest(w, "Employee number must be an integer", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	file, err := h.payrollService.ArchivedPayslip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, file.FileName, file.ContentType, file.Content)
}

func (h *payrollHandlerImpl) SendPayslip(w http.ResponseWriter, r *http.Request) {
	req, ok := computeRequest(r)
	if !ok {
		response.BadRequest(w, "Employee number must be an integer", nil)
		return
	}

	// Validate DTO
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	result, err := h.payrollService.EmailPayslip(r.Context(), req)
	if err != nil {
		slog.Error("SendPayslip service error", "error", err, "employee_number", req.EmployeeNumber, "month", req.Month)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Payslip emailed successfully", "employee_number", result.EmployeeNumber, "month", result.Month)
	response.SuccessWithMessage(w, "Payslip sent successfully", result)
}
