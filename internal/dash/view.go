package dash

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.showUserMenu {
		b.WriteString(m.renderUserMenu())
		b.WriteString("\n\n")
	}

	if m.showHelp {
		b.WriteString(m.renderHelp())
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderKPICards())
	b.WriteString("\n")

	panelWidth := m.panelWidth()
	chart := m.renderChartPanel(panelWidth)
	insights := m.renderInsightPanel(panelWidth)

	if m.LayoutMode() == LayoutWide && chart != "" {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().MarginRight(4).Render(chart), insights))
	} else {
		if chart != "" {
			b.WriteString(chart)
			b.WriteString("\n\n")
		}
		b.WriteString(insights)
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderStatusStrip())

	if m.ShowFooter() {
		b.WriteString("\n\n")
		b.WriteString(m.renderFooter())
	}

	return b.String()
}

// renderHeader renders the dashboard header with workspace, freshness
// and the user avatar.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("pulse")

	workspace := m.workspace
	if workspace == "" {
		workspace = "dashboard"
	}

	lastUpdate := m.SecondsSinceUpdate()
	var updateText string
	switch {
	case m.lastUpdate.IsZero():
		updateText = "loading"
	case lastUpdate == 0:
		updateText = "just now"
	case lastUpdate == 1:
		updateText = "1s ago"
	default:
		updateText = fmt.Sprintf("%ds ago", lastUpdate)
	}

	stats := lipgloss.NewStyle().
		Foreground(ColorTextSecondary).
		Render(fmt.Sprintf(" | %s | updated %s ", workspace, updateText))

	return HeaderStyle.Render(title+stats) + " " + m.renderUserNav()
}

// panelWidth returns the width budget for the chart and insight panels.
func (m Model) panelWidth() int {
	if m.width == 0 {
		return 60
	}
	if m.LayoutMode() == LayoutWide {
		return m.width/2 - 4
	}
	return m.width - 2
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	hints := []string{
		"q quit",
		"r refresh",
		"u user",
		"? help",
	}

	return FooterStyle.Render(strings.Join(hints, " | "))
}

// renderHelp renders the expanded keybinding help overlay.
func (m Model) renderHelp() string {
	rows := []struct {
		key  string
		desc string
	}{
		{KeyRefresh, "refresh all panels now"},
		{KeyUserMenu, "toggle the user menu"},
		{KeyToggleHelp, "toggle this help"},
		{KeyDismiss, "close open overlays"},
		{KeyQuit + " / " + KeyQuitAlt, "quit"},
	}

	var lines []string
	for _, r := range rows {
		key := lipgloss.NewStyle().Foreground(ColorAccent).Width(10).Render(r.key)
		lines = append(lines, key+LabelStyle.Render(r.desc))
	}

	return userMenuStyle.Render(strings.Join(lines, "\n"))
}
