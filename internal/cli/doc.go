// Package cli implements the pulse command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a small command function for the actual work. The
// general structure follows a clean separation between:
//
//   - Command definitions (cobra.Command instances)
//   - Command functions (dashCommand, metricsCommand, ...)
//   - Implementation details (in other internal packages)
//
// # Command Structure
//
// The root command is "pulse"; running it bare opens the dashboard.
// Subcommands cover one-shot output and setup:
//
//	pulse dash      - Open the metrics dashboard (same as bare pulse)
//	pulse metrics   - Print the current KPI snapshot
//	pulse status    - Print data source health
//	pulse init      - Create .pulse.yaml config
//	pulse version   - Print version information
//
// # Flag Handling
//
// Global flags (--config, --api-url, --refresh, --timeout) are defined
// on the root command and available to all subcommands. They layer on
// top of the config file: file values apply first, then any flag that
// was set overrides the corresponding field.
package cli
