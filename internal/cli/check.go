package cli

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a single billing check and exit",
	Long: `Execute one check immediately: fetch month-to-date spend, project the
end-of-month total, alert if over threshold, and ping the health check.
Useful for smoke tests or driving the check from an external cron.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	job, err := buildJob(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	job.Run(cmd.Context())
	return nil
}
