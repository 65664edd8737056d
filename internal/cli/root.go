package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/timmyb824/aws-cost-sentinel/internal/config"
	"github.com/timmyb824/aws-cost-sentinel/pkg/alerts"
	"github.com/timmyb824/aws-cost-sentinel/pkg/billing"
	"github.com/timmyb824/aws-cost-sentinel/pkg/monitor"
)

// Version is set at build time via ldflags.
var Version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "sentinel",
	Short: "AWS cost projection monitor",
	Long: `Sentinel watches month-to-date AWS spend, projects the end-of-month
total by linear extrapolation, and alerts Gotify, Discord and ntfy when the
projection crosses the configured threshold. Each completed check pings a
health-check URL.`,
	SilenceUsage: true,
	// Bare invocation starts the daemon.
	RunE: runDaemon,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.sentinel/config.yaml)")
}

// loadConfig loads and validates the configuration, failing fast on any
// missing required value.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger creates a structured logger from config, writing to stdout.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.Logging.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}

// buildJob wires the billing job from configuration.
func buildJob(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*monitor.Job, error) {
	source, err := billing.NewCostExplorer(ctx,
		cfg.Billing.Region,
		cfg.Billing.AccessKeyID,
		cfg.Billing.SecretAccessKey,
	)
	if err != nil {
		return nil, fmt.Errorf("init cost explorer: %w", err)
	}

	notifiers := []alerts.Notifier{
		alerts.NewGotifyNotifier(cfg.Alerts.Gotify.Host, cfg.Alerts.Gotify.Token),
		alerts.NewDiscordNotifier(cfg.Alerts.Discord.WebhookURL),
		alerts.NewNtfyNotifier(cfg.Alerts.Ntfy.BaseURL, cfg.Alerts.Ntfy.Topic, cfg.Alerts.Ntfy.Token),
	}
	dispatcher := alerts.NewDispatcher(notifiers, logger)
	pinger := monitor.NewPinger(cfg.Healthcheck.URL)

	return monitor.NewJob(source, dispatcher, pinger, cfg.Threshold, logger), nil
}
