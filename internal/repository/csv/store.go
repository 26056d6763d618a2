package csv

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/motorph/payroll-engine-go/internal/domain/attendance"
	"github.com/motorph/payroll-engine-go/internal/domain/employee"
	"github.com/motorph/payroll-engine-go/internal/pkg/validator"
)

// employeeRow mirrors one line of the roster workbook export.
type employeeRow struct {
	EmployeeNumber    int    `csv:"employee_number"`
	LastName          string `csv:"last_name"`
	FirstName         string `csv:"first_name"`
	Birthday          string `csv:"birthday"`
	Email             string `csv:"email"`
	HourlyRate        string `csv:"hourly_rate"`
	RiceSubsidy       string `csv:"rice_subsidy"`
	PhoneAllowance    string `csv:"phone_allowance"`
	ClothingAllowance string `csv:"clothing_allowance"`
}

// Store loads both workbook exports into memory and serves snapshot reads.
// Reload swaps the tables atomically, so long payroll computations keep a
// consistent view even while a refresh runs.
type Store struct {
	employeePath   string
	attendancePath string

	mu        sync.RWMutex
	employees []employee.Employee
	byNumber  map[int]employee.Employee
	records   []attendance.AttendanceRecord
}

// NewStore loads both files eagerly so a bad path or a corrupt roster
// fails at startup, not on the first request.
func NewStore(employeePath, attendancePath string) (*Store, error) {
	s := &Store{
		employeePath:   employeePath,
		attendancePath: attendancePath,
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads both files and swaps the in-memory tables. On error the
// previous tables stay in place.
func (s *Store) Reload() error {
	employees, byNumber, err := loadEmployees(s.employeePath)
	if err != nil {
		return fmt.Errorf("failed to load employee csv: %w", err)
	}

	records, err := loadAttendance(s.attendancePath)
	if err != nil {
		return fmt.Errorf("failed to load attendance csv: %w", err)
	}

	s.mu.Lock()
	s.employees = employees
	s.byNumber = byNumber
	s.records = records
	s.mu.Unlock()

	slog.Info("CSV data source loaded",
		"employee_file", s.employeePath,
		"employees", len(employees),
		"attendance_file", s.attendancePath,
		"attendance_records", len(records),
	)
	return nil
}

// loadEmployees reads the roster. Roster rows are payroll master data, so
// any malformed row fails the whole load.
func loadEmployees(path string) ([]employee.Employee, map[int]employee.Employee, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	var rows []*employeeRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, nil, err
	}

	employees := make([]employee.Employee, 0, len(rows))
	byNumber := make(map[int]employee.Employee, len(rows))
	for i, row := range rows {
		emp, err := row.toEmployee()
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if _, exists := byNumber[emp.EmployeeNumber]; exists {
			return nil, nil, fmt.Errorf("row %d: duplicate employee number %d", i+2, emp.EmployeeNumber)
		}
		employees = append(employees, emp)
		byNumber[emp.EmployeeNumber] = emp
	}

	sort.Slice(employees, func(i, j int) bool {
		return employees[i].EmployeeNumber < employees[j].EmployeeNumber
	})

	return employees, byNumber, nil
}

// loadAttendance reads the time-clock export. A row with an unreadable date
// is skipped with a warning; clock times stay raw for the payroll evaluator
// to judge.
func loadAttendance(path string) ([]attendance.AttendanceRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var rows []*attendance.ImportRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, err
	}

	records := make([]attendance.AttendanceRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := row.ToRecord()
		if err != nil {
			slog.Warn("Attendance row skipped, invalid date",
				"file", path,
				"row", i+2,
				"employee_number", row.EmployeeNumber,
				"date", row.Date,
			)
			continue
		}
		rec.ID = uuid.New().String()
		records = append(records, rec)
	}

	return records, nil
}

func (r *employeeRow) toEmployee() (employee.Employee, error) {
	if r.EmployeeNumber <= 0 {
		return employee.Employee{}, fmt.Errorf("employee number must be positive, got %d", r.EmployeeNumber)
	}

	birthday, err := validator.ParseDate(r.Birthday)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("invalid birthday %q: %w", r.Birthday, err)
	}

	hourlyRate, err := decimal.NewFromString(r.HourlyRate)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("invalid hourly rate %q: %w", r.HourlyRate, err)
	}

	riceSubsidy, err := parseAmount(r.RiceSubsidy)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("invalid rice subsidy %q: %w", r.RiceSubsidy, err)
	}
	phoneAllowance, err := parseAmount(r.PhoneAllowance)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("invalid phone allowance %q: %w", r.PhoneAllowance, err)
	}
	clothingAllowance, err := parseAmount(r.ClothingAllowance)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("invalid clothing allowance %q: %w", r.ClothingAllowance, err)
	}

	emp := employee.Employee{
		ID:                uuid.New().String(),
		EmployeeNumber:    r.EmployeeNumber,
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Birthday:          birthday,
		HourlyRate:        hourlyRate,
		RiceSubsidy:       riceSubsidy,
		PhoneAllowance:    phoneAllowance,
		ClothingAllowance: clothingAllowance,
	}
	// A malformed email means no email on file; it must not fail the
	// roster load or reach the mailer.
	if r.Email != "" {
		if validator.IsValidEmail(r.Email) {
			email := r.Email
			emp.Email = &email
		} else {
			slog.Warn("Employee email ignored, malformed address",
				"employee_number", r.EmployeeNumber,
				"email", r.Email,
			)
		}
	}
	return emp, nil
}

// parseAmount reads an allowance column, treating an empty cell as zero.
func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}
