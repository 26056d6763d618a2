package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for raw time-clock rows.
type AttendanceRepository interface {
	// ListForEmployee retrieves every record for one employee with a date
	// inside [from, to] inclusive. Order is not guaranteed; the payroll
	// engine filters and groups by period itself.
	ListForEmployee(ctx context.Context, employeeNumber int, from, to time.Time) ([]AttendanceRecord, error)

	// BulkInsert stores imported records and returns how many were written.
	// Sources that cannot accept writes return ErrImportNotSupported.
	BulkInsert(ctx context.Context, records []AttendanceRecord) (int, error)
}
