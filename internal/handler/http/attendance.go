package http

import (
	"log/slog"
	"net/http"

	"github.com/motorph/payroll-engine-go/internal/domain/attendance"
	"github.com/motorph/payroll-engine-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ListAttendance(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ListAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	employeeNumber, ok := employeeNumberParam(r)
	if !ok {
		response.BadRequest(w, "Employee number must be an integer", nil)
		return
	}

	req := attendance.ListRequest{
		EmployeeNumber: employeeNumber,
		From:           r.URL.Query().Get("from"),
		To:             r.URL.Query().Get("to"),
	}

	// Validate DTO
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	result, err := h.attendanceService.ListAttendance(r.Context(), req)
	if err != nil {
		slog.Error("ListAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Import implements AttendanceHandler
func (h *attendanceHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	// Get file from form
	file, _, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Attendance file is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	// Call service
	summary, err := h.attendanceService.Import(r.Context(), file)
	if err != nil {
		slog.Error("Import service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Attendance imported successfully", "total_rows", summary.TotalRows, "inserted", summary.Inserted, "skipped", summary.Skipped)
	response.Created(w, "Attendance imported successfully", summary)
}
