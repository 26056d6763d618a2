package attendance

import (
	"github.com/motorph/payroll-engine-go/internal/pkg/validator"
)

// ========== LIST DTOs ==========

type ListRequest struct {
	EmployeeNumber int    `json:"-"`
	From           string `json:"from"`
	To             string `json:"to"`
}

func (r *ListRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeNumber <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_number", Message: "must be a positive integer"})
	}
	if validator.IsEmpty(r.From) {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.From); !ok {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "must be YYYY-MM-DD or MM/DD/YYYY"})
	}
	if validator.IsEmpty(r.To) {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.To); !ok {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must be YYYY-MM-DD or MM/DD/YYYY"})
	}
	if len(errs) == 0 {
		from, _ := validator.ParseDate(r.From)
		to, _ := validator.ParseDate(r.To)
		if to.Before(from) {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "must not be before from"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	EmployeeNumber int     `json:"employee_number"`
	Date           string  `json:"date"`
	TimeIn         *string `json:"time_in,omitempty"`
	TimeOut        *string `json:"time_out,omitempty"`
}

type ListAttendanceResponse struct {
	Data       []AttendanceResponse `json:"data"`
	TotalCount int                  `json:"total_count"`
}

// ========== IMPORT DTOs ==========

// ImportRow mirrors one line of a time-clock export. The same layout is
// read by the file-backed data source and the upload endpoint.
type ImportRow struct {
	EmployeeNumber int    `csv:"employee_number" json:"employee_number"`
	Date           string `csv:"date" json:"date"`
	TimeIn         string `csv:"time_in" json:"time_in"`
	TimeOut        string `csv:"time_out" json:"time_out"`
}

// ToRecord converts an import row into a domain record. Clock times are
// carried raw; only the date has to parse here.
func (r ImportRow) ToRecord() (AttendanceRecord, error) {
	date, err := validator.ParseDate(r.Date)
	if err != nil {
		return AttendanceRecord{}, err
	}

	rec := AttendanceRecord{
		EmployeeNumber: r.EmployeeNumber,
		Date:           date,
	}
	if r.TimeIn != "" {
		timeIn := r.TimeIn
		rec.TimeIn = &timeIn
	}
	if r.TimeOut != "" {
		timeOut := r.TimeOut
		rec.TimeOut = &timeOut
	}
	return rec, nil
}

type ImportSummary struct {
	TotalRows int `json:"total_rows"`
	Inserted  int `json:"inserted"`
	Skipped   int `json:"skipped"`
}
