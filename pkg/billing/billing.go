package billing

import (
	"context"
	"time"
)

// CostSnapshot is the month-to-date spend reported by the billing API.
// Snapshots are produced fresh each run and never retained.
type CostSnapshot struct {
	Amount      float64
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// CostSource reports the current month's spend as of now.
type CostSource interface {
	MonthToDateSpend(ctx context.Context, now time.Time) (CostSnapshot, error)
}

// QueryWindow returns the [start, end) date range for a month-to-date cost
// query: first of now's month through today. Cost Explorer rejects empty
// ranges, so on the first of the month the end is pushed out by one day.
func QueryWindow(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !start.Before(end) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end
}
