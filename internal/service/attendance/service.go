package attendance

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gocarina/gocsv"

	"github.com/motorph/payroll-engine-go/internal/domain/attendance"
	"github.com/motorph/payroll-engine-go/internal/domain/employee"
	"github.com/motorph/payroll-engine-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, req attendance.ListRequest) (attendance.ListAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	// Validate has already vetted both dates.
	from, _ := validator.ParseDate(req.From)
	to, _ := validator.ParseDate(req.To)

	if _, err := a.employeeRepo.GetByNumber(ctx, req.EmployeeNumber); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, err := a.attendanceRepo.ListForEmployee(ctx, req.EmployeeNumber, from, to)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	data := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		data = append(data, attendance.AttendanceResponse{
			EmployeeNumber: rec.EmployeeNumber,
			Date:           rec.Date.Format("2006-01-02"),
			TimeIn:         rec.TimeIn,
			TimeOut:        rec.TimeOut,
		})
	}

	return attendance.ListAttendanceResponse{
		Data:       data,
		TotalCount: len(data),
	}, nil
}

// Import implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Import(ctx context.Context, file io.Reader) (attendance.ImportSummary, error) {
	var rows []*attendance.ImportRow
	if err := gocsv.Unmarshal(file, &rows); err != nil {
		return attendance.ImportSummary{}, fmt.Errorf("failed to parse import file: %w", err)
	}
	if len(rows) == 0 {
		return attendance.ImportSummary{}, attendance.ErrEmptyImport
	}

	records := make([]attendance.AttendanceRecord, 0, len(rows))
	skipped := 0
	for i, row := range rows {
		if row.EmployeeNumber <= 0 {
			slog.Warn("Import row skipped, invalid employee number",
				"row", i+2,
				"employee_number", row.EmployeeNumber,
			)
			skipped++
			continue
		}

		rec, err := row.ToRecord()
		if err != nil {
			slog.Warn("Import row skipped, invalid date",
				"row", i+2,
				"employee_number", row.EmployeeNumber,
				"date", row.Date,
			)
			skipped++
			continue
		}
		records = append(records, rec)
	}

	inserted := 0
	if len(records) > 0 {
		var err error
		inserted, err = a.attendanceRepo.BulkInsert(ctx, records)
		if err != nil {
			return attendance.ImportSummary{}, err
		}
	}

	return attendance.ImportSummary{
		TotalRows: len(rows),
		Inserted:  inserted,
		Skipped:   skipped,
	}, nil
}
