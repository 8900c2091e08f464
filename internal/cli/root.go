package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pulseboard/pulse/internal/config"
	"github.com/pulseboard/pulse/internal/errors"
)

// Global flags shared by every command
var (
	configFlag  string
	apiURLFlag  string
	refreshFlag string
	timeoutFlag string
)

// rootCmd is the base command. Running pulse with no subcommand opens
// the dashboard.
var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "Business metrics dashboard for your terminal",
	Long: `pulse is a terminal dashboard for business metrics.

It connects to your metrics service and displays KPI cards, revenue
trends, data source health, and generated insights, refreshing on a
configurable interval.

Examples:
  pulse                   Open the dashboard
  pulse metrics           Print the current KPI snapshot
  pulse status            Print data source health
  pulse init              Create a .pulse.yaml config file`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashCommand()
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "dashboard service base URL")
	rootCmd.PersistentFlags().StringVar(&refreshFlag, "refresh", "", "refresh interval (e.g., 10s, 1m)")
	rootCmd.PersistentFlags().StringVar(&timeoutFlag, "timeout", "", "per-request timeout (e.g., 5s)")
}

// loadConfig resolves the effective config: file (or defaults) with
// command-line flags layered on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, err
	}

	if apiURLFlag != "" {
		cfg.API.URL = apiURLFlag
	}
	if refreshFlag != "" {
		d, err := parseDurationFlag("refresh", refreshFlag)
		if err != nil {
			return nil, err
		}
		cfg.Refresh = d
	}
	if timeoutFlag != "" {
		d, err := parseDurationFlag("timeout", timeoutFlag)
		if err != nil {
			return nil, err
		}
		cfg.API.Timeout = d
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseDurationFlag parses a duration flag value into a duration.
func parseDurationFlag(name, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrInput,
			fmt.Sprintf("'%s' doesn't look like a valid --%s value", value, name),
			"Try something like 5s, 30s, or 1m.")
	}
	return d, nil
}
