package csv

import (
	"context"
	"time"

	"github.com/motorph/payroll-engine-go/internal/domain/attendance"
)

type attendanceRepository struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepository{store: store}
}

// ListForEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListForEmployee(ctx context.Context, employeeNumber int, from, to time.Time) ([]attendance.AttendanceRecord, error) {
	a.store.mu.RLock()
	snapshot := a.store.records
	a.store.mu.RUnlock()

	var records []attendance.AttendanceRecord
	for _, rec := range snapshot {
		if rec.EmployeeNumber != employeeNumber {
			continue
		}
		if rec.Date.Before(from) || rec.Date.After(to) {
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

// BulkInsert implements attendance.AttendanceRepository. The file-backed
// source is read-only; imports need the postgres source.
func (a *attendanceRepository) BulkInsert(ctx context.Context, records []attendance.AttendanceRecord) (int, error) {
	return 0, attendance.ErrImportNotSupported
}
