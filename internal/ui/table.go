package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/pulseboard/pulse/internal/metrics"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	// Apply styling
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(string(ColorMuted))).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color(string(ColorPrimary)))
	s.Cell = s.Cell.
		Foreground(lipgloss.Color(string(ColorPrimary)))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(string(ColorPrimary))).
		Background(lipgloss.Color(string(ColorMuted))).
		Bold(false)

	t.SetStyles(s)
	return t
}

// RenderMetricsTable renders a KPI snapshot as a formatted table,
// one row per metric key in display order.
func RenderMetricsTable(record *metrics.Record) string {
	if record == nil {
		return "No metrics available"
	}

	rows := make([]table.Row, 0, len(metrics.Keys()))
	for _, k := range metrics.Keys() {
		value := "-"
		if v, ok := record.Value(k); ok {
			value = k.Format(v)
		}
		rows = append(rows, table.Row{k.Label(), value})
	}

	columns := []TableColumn{
		{Title: "METRIC", Width: 22},
		{Title: "VALUE", Width: 10},
	}
	return NewTable(columns, rows).View()
}

// RenderStatusTable renders source health as a formatted table,
// one row per source in input order.
func RenderStatusTable(sources []metrics.SourceStatus) string {
	if len(sources) == 0 {
		return "No data sources reported"
	}

	successStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorSuccess)))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorError)))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorWarning)))
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(string(ColorPrimary))).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color(string(ColorMuted)))

	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ColorMuted)))

	var output string
	output += headerStyle.Render("  STATUS   SOURCE               STATE") + "\n"

	for _, src := range sources {
		var icon string
		switch src.Status {
		case metrics.StatusOK:
			icon = successStyle.Render(SymbolSuccess)
		case metrics.StatusError:
			icon = errorStyle.Render(SymbolFail)
		default:
			icon = warnStyle.Render(SymbolPending)
		}

		output += "  " + icon + "        " +
			padRight(src.Name, 21) +
			mutedStyle.Render(src.Status.String()) + "\n"
	}

	return output
}

// padRight pads a string to the specified width.
func padRight(s string, width int) string {
	// Account for ANSI codes when calculating visible length
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	padding := width - visibleLen
	for i := 0; i < padding; i++ {
		s += " "
	}
	return s
}
