package alerts

import "context"

// Notifier sends one alert message over a single outbound channel.
type Notifier interface {
	// Name returns the channel identifier.
	Name() string

	// Send delivers the message. Implementations must be safe for concurrent use.
	Send(ctx context.Context, message string) error
}

// Result records the outcome of one delivery attempt.
type Result struct {
	Channel   string `json:"channel"`
	Succeeded bool   `json:"succeeded"`
	Status    string `json:"status"`
}

// Outcome aggregates delivery results across all channels.
// AllSucceeded is true only when every channel reported success.
type Outcome struct {
	AllSucceeded bool     `json:"all_succeeded"`
	Results      []Result `json:"results"`
}
