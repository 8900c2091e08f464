package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pulseboard/pulse/internal/api"
	"github.com/pulseboard/pulse/internal/config"
	"github.com/pulseboard/pulse/internal/errors"
	"github.com/pulseboard/pulse/internal/logger"
	"github.com/pulseboard/pulse/internal/ui"
)

// Command-specific flags
var (
	initURLFlag       string
	initWorkspaceFlag string
	initForce         bool
)

// dashCmd opens the dashboard explicitly (same as running pulse bare).
var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Open the metrics dashboard",
	Long: `Start the interactive TUI dashboard.

Displays KPI cards, a revenue chart, data source health, and generated
insights, refreshing on the configured interval.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  r           Refresh all panels now
  u           Toggle the user menu
  Esc         Close open overlays
  ?           Show help

Examples:
  pulse dash
  pulse dash --refresh 10s
  pulse dash --api-url http://metrics.internal:8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashCommand()
	},
}

// metricsCmd prints the current KPI snapshot and exits.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Print the current KPI snapshot",
	Long: `Fetch the current KPI snapshot and print it as a table.

Useful for scripts and quick checks without opening the dashboard.

Examples:
  pulse metrics
  pulse metrics --api-url http://metrics.internal:8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return metricsCommand()
	},
}

// statusCmd prints data source health and exits.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print data source health",
	Long: `Fetch the health of every reporting data source and print it
as a table.

Examples:
  pulse status`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statusCommand()
	},
}

// initCmd creates a new .pulse.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .pulse.yaml configuration",
	Long: `Initialize a new pulse configuration file.

Creates a .pulse.yaml file in the current directory. Guides you through
service URL and workspace setup with interactive prompts.

Examples:
  pulse init
  pulse init --url http://metrics.internal:8080
  pulse init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initURLFlag, initWorkspaceFlag, initForce)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for pulse.

Examples:
  # Bash
  pulse completion bash > /etc/bash_completion.d/pulse

  # Zsh
  pulse completion zsh > "${fpath[1]}/_pulse"

  # Fish
  pulse completion fish > ~/.config/fish/completions/pulse.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrInput,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

// newClient builds an API client from the effective config.
func newClient(cfg *config.Config) api.Client {
	return api.NewHTTPClient(cfg.API.URL, cfg.API.Timeout, logger.NewEnvLogger("[api]"))
}

// metricsCommand fetches and prints the KPI snapshot.
func metricsCommand() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	record, err := newClient(cfg).Metrics(ctx)
	if err != nil {
		return err
	}

	ui.PrintHeader(ui.HeaderInfo{Version: formatVersion(version), Workspace: cfg.Workspace})
	fmt.Println(ui.RenderMetricsTable(record))
	return nil
}

// statusCommand fetches and prints data source health.
func statusCommand() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	sources, err := newClient(cfg).Health(ctx)
	if err != nil {
		return err
	}

	ui.PrintHeader(ui.HeaderInfo{Version: formatVersion(version), Workspace: cfg.Workspace})
	fmt.Println(ui.RenderStatusTable(sources))
	return nil
}

func init() {
	// init command flags
	initCmd.Flags().StringVar(&initURLFlag, "url", "", "pre-specify the service URL")
	initCmd.Flags().StringVar(&initWorkspaceFlag, "workspace", "", "pre-specify the workspace name")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	// Register all commands
	rootCmd.AddCommand(dashCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
