package dash

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusStrip renders the one-line source health strip: one
// colored indicator per source, in the order the API reported them.
func (m Model) renderStatusStrip() string {
	switch m.healthPanel.state {
	case panelLoading, panelUnfetched:
		return MutedStyle.Render(m.LoadingSpinner() + " checking sources")

	case panelErrored:
		return ErrorStyle.Render("✗ " + m.healthPanel.err)
	}

	if len(m.sources) == 0 {
		return MutedStyle.Render("no data sources reported")
	}

	parts := make([]string, 0, len(m.sources))
	for _, src := range m.sources {
		indicator := lipgloss.NewStyle().
			Foreground(StatusColor(src.Status)).
			Render(StatusIndicator(src.Status))
		parts = append(parts, indicator+" "+LabelStyle.Render(src.Name))
	}

	return strings.Join(parts, MutedStyle.Render("  │  "))
}
