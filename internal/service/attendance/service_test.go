package attendance

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorph/payroll-engine-go/internal/domain/attendance"
	"github.com/motorph/payroll-engine-go/internal/domain/employee"
	"github.com/motorph/payroll-engine-go/internal/pkg/validator"
)

type stubAttendanceRepo struct {
	records   []attendance.AttendanceRecord
	inserted  []attendance.AttendanceRecord
	insertErr error
}

func (r *stubAttendanceRepo) ListForEmployee(ctx context.Context, employeeNumber int, from, to time.Time) ([]attendance.AttendanceRecord, error) {
	var out []attendance.AttendanceRecord
	for _, rec := range r.records {
		if rec.EmployeeNumber != employeeNumber || rec.Date.Before(from) || rec.Date.After(to) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *stubAttendanceRepo) BulkInsert(ctx context.Context, records []attendance.AttendanceRecord) (int, error) {
	if r.insertErr != nil {
		return 0, r.insertErr
	}
	r.inserted = append(r.inserted, records...)
	return len(records), nil
}

type stubEmployeeRepo struct {
	known map[int]bool
}

func (r *stubEmployeeRepo) GetByNumber(ctx context.Context, employeeNumber int) (employee.Employee, error) {
	if !r.known[employeeNumber] {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{EmployeeNumber: employeeNumber}, nil
}

func (r *stubEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func testClockRecord(employeeNumber int, date, timeIn, timeOut string) attendance.AttendanceRecord {
	day, err := validator.ParseDate(date)
	if err != nil {
		panic(err)
	}
	rec := attendance.AttendanceRecord{EmployeeNumber: employeeNumber, Date: day}
	if timeIn != "" {
		rec.TimeIn = &timeIn
	}
	if timeOut != "" {
		rec.TimeOut = &timeOut
	}
	return rec
}

func newTestAttendanceService(records []attendance.AttendanceRecord, insertErr error) (attendance.AttendanceService, *stubAttendanceRepo) {
	repo := &stubAttendanceRepo{records: records, insertErr: insertErr}
	service := NewAttendanceService(repo, &stubEmployeeRepo{known: map[int]bool{10001: true, 10002: true}})
	return service, repo
}

// ========== LIST ==========

func TestAttendanceService_ListAttendance_Success(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestAttendanceService([]attendance.AttendanceRecord{
		testClockRecord(10001, "2024-06-03", "8:59", "18:31"),
		testClockRecord(10001, "2024-06-04", "10:35", "19:44"),
		testClockRecord(10001, "2024-06-10", "9:48", "17:12"),
		testClockRecord(10002, "2024-06-03", "10:49", "19:29"),
	}, nil)

	// Act: the two workbook date layouts are interchangeable.
	resp, err := service.ListAttendance(ctx, attendance.ListRequest{
		EmployeeNumber: 10001,
		From:           "06/03/2024",
		To:             "2024-06-07",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalCount)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "2024-06-03", resp.Data[0].Date)
	require.NotNil(t, resp.Data[0].TimeIn)
	assert.Equal(t, "8:59", *resp.Data[0].TimeIn)
	assert.Equal(t, "2024-06-04", resp.Data[1].Date)
}

func TestAttendanceService_ListAttendance_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestAttendanceService(nil, nil)

	// Act
	_, err := service.ListAttendance(ctx, attendance.ListRequest{
		EmployeeNumber: 99999,
		From:           "2024-06-03",
		To:             "2024-06-07",
	})

	// Assert
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_ListAttendance_InvalidRange(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestAttendanceService(nil, nil)

	// Act: to before from.
	_, err := service.ListAttendance(ctx, attendance.ListRequest{
		EmployeeNumber: 10001,
		From:           "2024-06-07",
		To:             "2024-06-03",
	})

	// Assert
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

// ========== IMPORT ==========

const importCSV = `employee_number,date,time_in,time_out
10001,06/03/2024,8:59,18:31
10001,06/04/2024,10:35,19:44
10001,not-a-date,8:00,17:00
10002,2024-06-03,10:49,19:29
`

func TestAttendanceService_Import_Success(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestAttendanceService(nil, nil)

	// Act
	summary, err := service.Import(ctx, strings.NewReader(importCSV))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 4, summary.TotalRows)
	assert.Equal(t, 3, summary.Inserted)
	assert.Equal(t, 1, summary.Skipped)

	require.Len(t, repo.inserted, 3)
	first := repo.inserted[0]
	assert.Equal(t, 10001, first.EmployeeNumber)
	assert.Equal(t, time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC), first.Date)
	require.NotNil(t, first.TimeIn)
	assert.Equal(t, "8:59", *first.TimeIn)
}

func TestAttendanceService_Import_AllRowsSkipped(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestAttendanceService(nil, nil)

	// Act
	summary, err := service.Import(ctx, strings.NewReader(`employee_number,date,time_in,time_out
10001,not-a-date,8:00,17:00
0,06/03/2024,8:00,17:00
`))

	// Assert: nothing reaches the repository.
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalRows)
	assert.Equal(t, 0, summary.Inserted)
	assert.Equal(t, 2, summary.Skipped)
	assert.Empty(t, repo.inserted)
}

func TestAttendanceService_Import_HeaderOnly(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestAttendanceService(nil, nil)

	// Act
	_, err := service.Import(ctx, strings.NewReader("employee_number,date,time_in,time_out\n"))

	// Assert
	assert.ErrorIs(t, err, attendance.ErrEmptyImport)
}

func TestAttendanceService_Import_NotSupported(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestAttendanceService(nil, attendance.ErrImportNotSupported)

	// Act
	_, err := service.Import(ctx, strings.NewReader(importCSV))

	// Assert
	assert.ErrorIs(t, err, attendance.ErrImportNotSupported)
}
