package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"
)

// Scheduler drives the billing job on a fixed schedule. Expressions use
// standard five-field cron syntax or the "@every <duration>" form. The first
// tick runs immediately on Start; a tick that comes due while the previous
// run is still in flight is skipped, since runs are idempotent.
type Scheduler struct {
	job      *Job
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
	mu       sync.Mutex
	running  bool
}

// NewScheduler creates a scheduler for the given job and schedule expression.
func NewScheduler(job *Job, schedule string, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		job:      job,
		schedule: schedule,
		cron: cron.New(
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger,
	}
}

// Start validates the schedule, registers the job, and begins ticking. The
// scheduler stops when ctx is cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", s.schedule, err)
	}

	if _, err := s.cron.AddFunc(s.schedule, func() {
		s.job.Run(ctx)
	}); err != nil {
		return fmt.Errorf("register billing job: %w", err)
	}

	s.cron.Start()
	s.running = true
	s.logger.Info("scheduler started", "schedule", s.schedule)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	// First check runs right away rather than waiting a full interval.
	go s.job.Run(ctx)

	return nil
}

// Stop halts scheduling and waits for an in-flight run to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.running = false
	s.logger.Info("scheduler stopped")
}
