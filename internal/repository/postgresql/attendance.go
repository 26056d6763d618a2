package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/motorph/payroll-engine-go/internal/domain/attendance"
	"github.com/motorph/payroll-engine-go/internal/pkg/database"
)

// bulkInsertChunk keeps one multi-row INSERT well under the PostgreSQL
// parameter limit. Five parameters per record.
const bulkInsertChunk = 1000

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// ListForEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListForEmployee(ctx context.Context, employeeNumber int, from, to time.Time) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_number, date, time_in, time_out, created_at
		FROM attendance_records
		WHERE employee_number = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeNumber, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		var rec attendance.AttendanceRecord
		err := rows.Scan(&rec.ID, &rec.EmployeeNumber, &rec.Date, &rec.TimeIn, &rec.TimeOut, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// BulkInsert implements attendance.AttendanceRepository. Records are written
// in chunks inside a single transaction, so a failed import leaves no partial
// rows behind.
func (a *attendanceRepository) BulkInsert(ctx context.Context, records []attendance.AttendanceRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	inserted := 0
	err := WithTransaction(ctx, a.db, func(q database.Querier) error {
		for start := 0; start < len(records); start += bulkInsertChunk {
			end := start + bulkInsertChunk
			if end > len(records) {
				end = len(records)
			}

			n, err := insertChunk(ctx, q, records[start:end])
			if err != nil {
				return err
			}
			inserted += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func insertChunk(ctx context.Context, q database.Querier, records []attendance.AttendanceRecord) (int, error) {
	valueStrings := make([]string, 0, len(records))
	valueArgs := make([]interface{}, 0, len(records)*5)

	for i, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.New().String()
		}

		base := i * 5
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5,
		))
		valueArgs = append(valueArgs, rec.ID, rec.EmployeeNumber, rec.Date, rec.TimeIn, rec.TimeOut)
	}

	query := fmt.Sprintf(`
		INSERT INTO attendance_records (id, employee_number, date, time_in, time_out)
		VALUES %s
	`, strings.Join(valueStrings, ", "))

	tag, err := q.Exec(ctx, query, valueArgs...)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk insert attendance records: %w", err)
	}

	return int(tag.RowsAffected()), nil
}
