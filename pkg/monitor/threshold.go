package monitor

import "fmt"

// Decision is the outcome of comparing a projection against the threshold.
type Decision int

const (
	WithinLimit Decision = iota
	Exceeded
)

func (d Decision) String() string {
	if d == Exceeded {
		return "exceeded"
	}
	return "within_limit"
}

// Evaluate compares the projected end-of-month total against the configured
// threshold. The comparison is strictly greater-than: a projection equal to
// the threshold stays within limit.
func Evaluate(projectedTotal, threshold float64) Decision {
	if projectedTotal > threshold {
		return Exceeded
	}
	return WithinLimit
}

// AlertMessage renders the notification text for an exceeded threshold.
func AlertMessage(projectedTotal, threshold float64) string {
	return fmt.Sprintf("ATTENTION! Projected end-of-month AWS costs of %.2f USD exceeds %.1f USD!",
		projectedTotal, threshold)
}
