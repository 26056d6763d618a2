// Package fixtures ships the MotorPH sample roster and a June 2024
// attendance slice. The csv data source tests load them, and a local
// development server seeds its data files from them on first start.
package fixtures

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

//go:embed data/employees.csv
var EmployeesCSV []byte

//go:embed data/attendance.csv
var AttendanceCSV []byte

// SeedIfMissing writes the sample data to the given paths when the files
// do not exist yet. Existing files are left untouched, so edits made
// during development survive a restart.
func SeedIfMissing(employeePath, attendancePath string) error {
	if err := seedFile(employeePath, EmployeesCSV); err != nil {
		return fmt.Errorf("failed to seed employee csv: %w", err)
	}
	if err := seedFile(attendancePath, AttendanceCSV); err != nil {
		return fmt.Errorf("failed to seed attendance csv: %w", err)
	}
	return nil
}

func seedFile(path string, content []byte) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	slog.Info("Sample data seeded", "file", path)
	return nil
}
