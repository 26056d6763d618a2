package attendance

import (
	"time"
)

// AttendanceRecord is one raw time-clock row. TimeIn and TimeOut stay
// unparsed strings ("HH:mm") until the payroll evaluator reads them, so a
// malformed value skips exactly one day instead of failing a load.
type AttendanceRecord struct {
	ID             string
	EmployeeNumber int
	Date           time.Time
	TimeIn         *string
	TimeOut        *string
	CreatedAt      time.Time
}

// HasBothPunches reports whether the record carries both clock times.
// Records missing either one contribute nothing to payroll.
func (r AttendanceRecord) HasBothPunches() bool {
	return r.TimeIn != nil && *r.TimeIn != "" && r.TimeOut != nil && *r.TimeOut != ""
}
