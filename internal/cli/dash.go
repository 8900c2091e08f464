package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/pulseboard/pulse/internal/api"
	"github.com/pulseboard/pulse/internal/dash"
	"github.com/pulseboard/pulse/internal/errors"
	"github.com/pulseboard/pulse/internal/logger"
)

// dashCommand starts the TUI dashboard.
func dashCommand() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrInput,
			"The dashboard needs an interactive terminal",
			"Run pulse from a terminal, or use 'pulse metrics' and 'pulse status' for plain output.")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client := api.NewHTTPClient(cfg.API.URL, cfg.API.Timeout, logger.NewEnvLogger("[api]"))

	model := dash.NewModel(client, dash.Options{
		Workspace: cfg.Workspace,
		User:      cfg.User,
		Version:   GetVersion(),
		Interval:  cfg.Refresh,
		Timeout:   cfg.API.Timeout,
		Log:       logger.NewEnvLogger("[dash]"),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
