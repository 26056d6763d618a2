package payroll

import (
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/motorph/payroll-engine-go/internal/domain/attendance"
	"github.com/motorph/payroll-engine-go/internal/domain/payroll"
)

const clockLayout = "15:04"

var minutesPerHour = decimal.NewFromInt(60)

// parseClock converts an "HH:mm" punch into minutes after midnight.
// Leading and trailing whitespace is tolerated, as are single-digit hours.
func parseClock(raw string) (int, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// evaluateDay scores one attendance day against the scheduled work hours.
// Callers must have checked that both punches are present.
//
// Late minutes accrue from the scheduled start to the clock-in. The morning
// block runs from the later of clock-in and scheduled start until lunch, the
// afternoon block from lunch end until the earlier of clock-out and scheduled
// end. Overtime past the scheduled end is paid at the premium rate and only
// granted when the clock-in was on time.
//
// Malformed or reversed punches zero the day and emit a warning; the rest of
// the pay period is unaffected.
func evaluateDay(policy payroll.Policy, hourlyRate decimal.Decimal, rec attendance.AttendanceRecord) payroll.DailyResult {
	result := payroll.DailyResult{OvertimePay: decimal.Zero}
	date := rec.Date.Format("2006-01-02")

	clockIn, err := parseClock(*rec.TimeIn)
	if err != nil {
		slog.Warn("Invalid clock-in time, day skipped", "employee_number", rec.EmployeeNumber, "date", date, "time_in", *rec.TimeIn)
		return result
	}
	clockOut, err := parseClock(*rec.TimeOut)
	if err != nil {
		slog.Warn("Invalid clock-out time, day skipped", "employee_number", rec.EmployeeNumber, "date", date, "time_out", *rec.TimeOut)
		return result
	}

	if clockOut < clockIn {
		slog.Warn("Clock-out before clock-in, day skipped", "employee_number", rec.EmployeeNumber, "date", date, "time_in", *rec.TimeIn, "time_out", *rec.TimeOut)
		return result
	}

	// Suspicious but payable punches are logged and processed as-is.
	if clockIn > policy.LunchStartMinute {
		slog.Warn("Suspicious clock-in after lunch start", "employee_number", rec.EmployeeNumber, "date", date, "time_in", *rec.TimeIn)
	}
	if clockOut < policy.WorkStartMinute {
		slog.Warn("Suspicious clock-out before work start", "employee_number", rec.EmployeeNumber, "date", date, "time_out", *rec.TimeOut)
	}

	if clockIn > policy.WorkStartMinute {
		result.LateMinutes = clockIn - policy.WorkStartMinute
	}

	workStart := clockIn
	if workStart < policy.WorkStartMinute {
		workStart = policy.WorkStartMinute
	}
	morning := policy.LunchStartMinute - workStart
	if morning < 0 {
		morning = 0
	}

	workEnd := clockOut
	if workEnd > policy.WorkEndMinute {
		workEnd = policy.WorkEndMinute
	}
	afternoon := workEnd - policy.LunchEndMinute
	if afternoon < 0 {
		afternoon = 0
	}

	result.RegularMinutes = morning + afternoon

	if clockIn <= policy.WorkStartMinute && clockOut > policy.WorkEndMinute {
		overtimeMinutes := clockOut - policy.WorkEndMinute
		premiumRate := hourlyRate.Add(hourlyRate.Mul(policy.OvertimePremium))
		result.OvertimePay = decimal.NewFromInt(int64(overtimeMinutes)).
			Div(minutesPerHour).
			Mul(premiumRate)
	}

	return result
}
