package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/timmyb824/aws-cost-sentinel/pkg/monitor"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the cost monitor daemon",
	Long: `Start the scheduler and check AWS spend on the configured interval
until the process is terminated.`,
	RunE: runDaemon,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runDaemon(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	job, err := buildJob(ctx, cfg, logger)
	if err != nil {
		return err
	}

	scheduler := monitor.NewScheduler(job, cfg.Schedule, logger)
	if err := scheduler.Start(ctx); err != nil {
		return err
	}

	logger.Info("sentinel started",
		"schedule", cfg.Schedule,
		"threshold", cfg.Threshold,
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", "signal", sig.String())
	scheduler.Stop()
	return nil
}
