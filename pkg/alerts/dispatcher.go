package alerts

import (
	"context"
	"log/slog"
)

// Dispatcher fans one alert message out to every configured channel.
type Dispatcher struct {
	notifiers []Notifier
	logger    *slog.Logger
}

// NewDispatcher creates a dispatcher over the given notifiers.
func NewDispatcher(notifiers []Notifier, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		notifiers: notifiers,
		logger:    logger,
	}
}

// Dispatch attempts delivery on every channel. A failed channel never
// prevents the remaining channels from being attempted; each outcome is
// logged and collected. There is no retry.
func (d *Dispatcher) Dispatch(ctx context.Context, message string) Outcome {
	outcome := Outcome{AllSucceeded: true}

	for _, notifier := range d.notifiers {
		result := Result{Channel: notifier.Name()}

		if err := notifier.Send(ctx, message); err != nil {
			result.Status = err.Error()
			outcome.AllSucceeded = false
			d.logger.Error("send notification failed",
				"channel", notifier.Name(),
				"error", err,
			)
		} else {
			result.Succeeded = true
			result.Status = "sent"
			d.logger.Info("notification sent", "channel", notifier.Name())
		}

		outcome.Results = append(outcome.Results, result)
	}

	return outcome
}
