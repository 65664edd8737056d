package projection

import "time"

// Projection is the linear end-of-month extrapolation of month-to-date spend.
type Projection struct {
	DailyRate          float64 `json:"daily_rate"`
	ProjectedTotal     float64 `json:"projected_total"`
	ProjectedRemaining float64 `json:"projected_remaining"`
}

// Project extrapolates the current daily average spend rate across the full
// month. currentCost is the month-to-date spend; today determines the day of
// month and month length. Day() is always >= 1 for a valid time.Time, so the
// division is safe.
func Project(currentCost float64, today time.Time) Projection {
	daysInMonth := daysIn(today)
	dayOfMonth := today.Day()
	remainingDays := daysInMonth - dayOfMonth

	dailyRate := currentCost / float64(dayOfMonth)
	return Projection{
		DailyRate:          dailyRate,
		ProjectedTotal:     dailyRate * float64(daysInMonth),
		ProjectedRemaining: dailyRate * float64(remainingDays),
	}
}

// daysIn returns the number of calendar days in t's month. Day zero of the
// next month normalizes to the last day of this one.
func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
