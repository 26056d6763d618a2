package payroll

import (
	"time"

	"github.com/motorph/payroll-engine-go/internal/domain/payroll"
)

// generatePeriods partitions the fiscal window into consecutive 7-day pay
// periods. The final period is clipped to the window end, so it may span
// fewer than seven days. Week numbers follow ISO-8601.
func generatePeriods(policy payroll.Policy) []payroll.PayPeriod {
	var periods []payroll.PayPeriod

	for start := policy.FiscalStart; !start.After(policy.FiscalEnd); start = start.AddDate(0, 0, 7) {
		end := start.AddDate(0, 0, 6)
		if end.After(policy.FiscalEnd) {
			end = policy.FiscalEnd
		}

		_, week := start.ISOWeek()
		periods = append(periods, payroll.PayPeriod{
			WeekNumber: week,
			Start:      start,
			End:        end,
		})
	}

	return periods
}

// periodsForMonth filters to the periods whose start date falls in the
// requested month. An empty result means the month has no payable weeks in
// the fiscal window and must be reported, never treated as zero salary.
func periodsForMonth(periods []payroll.PayPeriod, month time.Month) []payroll.PayPeriod {
	var filtered []payroll.PayPeriod
	for _, p := range periods {
		if p.Start.Month() == month {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
