package cli

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/pulseboard/pulse/internal/api"
	"github.com/pulseboard/pulse/internal/config"
	"github.com/pulseboard/pulse/internal/errors"
	"github.com/pulseboard/pulse/internal/logger"
	"github.com/pulseboard/pulse/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	URL            string // Pre-specified service URL
	Workspace      string // Pre-specified workspace name
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use provided values
}

// Init creates a new .pulse.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		var overwrite bool

		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	// Collect configuration values
	serviceURL := opts.URL
	workspace := opts.Workspace
	var user string

	if opts.NonInteractive {
		if serviceURL == "" {
			return errors.New(errors.ErrConfig,
				"Service URL is required in non-interactive mode",
				"Provide --url or run interactively")
		}
	} else {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Service URL").
					Description("Base URL of your metrics service").
					Placeholder("http://localhost:8080").
					Value(&serviceURL).
					Validate(validateServiceURL),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Workspace name").
					Description("Shown in the dashboard header").
					Placeholder("Acme Inc").
					Value(&workspace),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Your name (optional)").
					Description("Used for the avatar in the dashboard").
					Placeholder("Dana").
					Value(&user),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --url for non-interactive setup")
		}
	}

	// Test the service before saving
	fmt.Println()
	spinner := ui.NewSpinner("Checking " + serviceURL)
	spinner.Start()

	if err := probeService(serviceURL); err != nil {
		spinner.Fail()

		// Service unreachable, but still offer to save config
		var saveAnyway bool
		if opts.NonInteractive {
			return errors.WrapWithCode(err, errors.ErrFetch,
				fmt.Sprintf("Cannot reach service at '%s'", serviceURL),
				"Check the URL and that the service is running")
		}

		fmt.Printf("\n%s Cannot reach '%s': %v\n\n", ui.SymbolFail, serviceURL, errors.Summary(err))

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Save config anyway? (You can fix the URL later)").
					Value(&saveAnyway),
			),
		)

		if formErr := form.Run(); formErr != nil || !saveAnyway {
			return errors.WrapWithCode(err, errors.ErrFetch,
				fmt.Sprintf("Cannot reach service at '%s'", serviceURL),
				"Check the URL and that the service is running")
		}
	} else {
		spinner.Success()
		fmt.Println()
	}

	// Build config
	cfg := config.Default()
	cfg.API.URL = strings.TrimRight(serviceURL, "/")
	if workspace != "" {
		cfg.Workspace = workspace
	}
	cfg.User = user

	// Durations are written as strings ("30s") so the file stays
	// hand-editable.
	type apiFile struct {
		URL     string `yaml:"url"`
		Timeout string `yaml:"timeout"`
	}
	type configFile struct {
		Version   int     `yaml:"version"`
		Workspace string  `yaml:"workspace"`
		User      string  `yaml:"user,omitempty"`
		API       apiFile `yaml:"api"`
		Refresh   string  `yaml:"refresh"`
	}

	data, err := yaml.Marshal(configFile{
		Version:   cfg.Version,
		Workspace: cfg.Workspace,
		User:      cfg.User,
		API: apiFile{
			URL:     cfg.API.URL,
			Timeout: cfg.API.Timeout.String(),
		},
		Refresh: cfg.Refresh.String(),
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	// Add a header comment
	header := `# pulse configuration
# Run 'pulse' to open the dashboard
# See: https://github.com/pulseboard/pulse for documentation

`
	content := header + string(data)

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Println("Next steps:")
	fmt.Println("  pulse           - Open the dashboard")
	fmt.Println("  pulse metrics   - Print the current KPI snapshot")
	fmt.Println("  pulse status    - Check data source health")

	return nil
}

// validateServiceURL checks that the input is a usable http(s) URL.
func validateServiceURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("service URL is required")
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("enter a full URL like http://localhost:8080")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL must use http or https")
	}
	return nil
}

// probeService checks that the service answers its health endpoint.
func probeService(serviceURL string) error {
	client := api.NewHTTPClient(serviceURL, 5*time.Second, logger.Noop())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.Health(ctx)
	return err
}

// initCommand is the implementation called by the cobra command.
func initCommand(urlFlag, workspaceFlag string, force bool) error {
	return Init(InitOptions{
		URL:            urlFlag,
		Workspace:      workspaceFlag,
		Overwrite:      force,
		NonInteractive: urlFlag != "",
	})
}
