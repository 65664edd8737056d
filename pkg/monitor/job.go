package monitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/timmyb824/aws-cost-sentinel/pkg/alerts"
	"github.com/timmyb824/aws-cost-sentinel/pkg/billing"
	"github.com/timmyb824/aws-cost-sentinel/pkg/projection"
)

// AlertSender fans an alert message out to the notification channels.
type AlertSender interface {
	Dispatch(ctx context.Context, message string) alerts.Outcome
}

// LivenessSignal pings an external monitor after a completed run.
type LivenessSignal interface {
	Ping(ctx context.Context) error
}

// Job performs one billing check: fetch month-to-date spend, project
// end-of-month cost, alert when the projection exceeds the threshold, and
// signal liveness. Runs carry no state between each other.
type Job struct {
	source    billing.CostSource
	sender    AlertSender
	pinger    LivenessSignal
	threshold float64
	logger    *slog.Logger
	now       func() time.Time
}

// JobOption customizes a Job.
type JobOption func(*Job)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) JobOption {
	return func(j *Job) { j.now = now }
}

// NewJob wires a billing job from its collaborators.
func NewJob(source billing.CostSource, sender AlertSender, pinger LivenessSignal, threshold float64, logger *slog.Logger, opts ...JobOption) *Job {
	j := &Job{
		source:    source,
		sender:    sender,
		pinger:    pinger,
		threshold: threshold,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Run executes one tick. No failure aborts the run: a billing-API error
// degrades to a zero-cost projection, channel failures are collected by the
// dispatcher, and a failed liveness ping is swallowed.
func (j *Job) Run(ctx context.Context) {
	logger := j.logger.With("run_id", uuid.NewString())
	now := j.now().UTC()

	// A billing outage deliberately reads as zero spend for this tick, which
	// means no alert can fire while the API is down. That trade-off keeps the
	// daemon running through transient API failures; the ERROR entry is the
	// only trace of the outage.
	var currentCost float64
	snapshot, err := j.source.MonthToDateSpend(ctx, now)
	if err != nil {
		logger.Error("fetch month-to-date spend failed, treating cost as zero", "error", err)
	} else {
		currentCost = snapshot.Amount
	}

	proj := projection.Project(currentCost, now)
	logger.Info("cost projection",
		"current_cost", currentCost,
		"projected_total", proj.ProjectedTotal,
		"projected_remaining", proj.ProjectedRemaining,
		"day_of_month", now.Day(),
	)

	if Evaluate(proj.ProjectedTotal, j.threshold) == Exceeded {
		outcome := j.sender.Dispatch(ctx, AlertMessage(proj.ProjectedTotal, j.threshold))
		if outcome.AllSucceeded {
			logger.Info("threshold alert delivered",
				"channels", len(outcome.Results),
				"projected_total", proj.ProjectedTotal,
				"threshold", j.threshold,
			)
		} else {
			logger.Error("threshold alert delivery incomplete",
				"results", outcome.Results,
			)
		}
	} else {
		logger.Info("no threshold exceeded",
			"projected_total", proj.ProjectedTotal,
			"threshold", j.threshold,
		)
	}

	if err := j.pinger.Ping(ctx); err != nil {
		logger.Error("health check signal failed", "error", err)
	}
}
