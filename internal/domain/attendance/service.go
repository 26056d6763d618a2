package attendance

import (
	"context"
	"io"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ListAttendance retrieves one employee's raw records for a date range
	ListAttendance(ctx context.Context, req ListRequest) (ListAttendanceResponse, error)

	// Import parses a CSV export and stores its rows. Rows with an
	// unparseable date are counted as skipped, not fatal.
	Import(ctx context.Context, file io.Reader) (ImportSummary, error)
}
