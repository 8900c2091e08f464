package dash

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var insightTitleStyle = lipgloss.NewStyle().
	Foreground(ColorTextSecondary).
	Bold(true)

// renderInsightPanel renders the insight feed: a category badge, title
// and body per insight, in the order the API returned them.
func (m Model) renderInsightPanel(width int) string {
	title := insightTitleStyle.Render("Insights")

	var body string
	switch m.insightPanel.state {
	case panelLoading, panelUnfetched:
		body = MutedStyle.Render(m.LoadingSpinner() + " loading insights")

	case panelErrored:
		body = ErrorStyle.Render("✗ " + m.insightPanel.err)

	case panelLoaded:
		if len(m.advice) == 0 {
			body = MutedStyle.Render("no insights right now")
			break
		}

		innerWidth := width - 4
		var lines []string
		for i, ins := range m.advice {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, CategoryBadge(ins.Category)+" "+
				ValueStyle.Render(truncateWithEllipsis(ins.Title, innerWidth)))
			lines = append(lines, wrapText(ins.Body, innerWidth, LabelStyle)...)
		}
		body = strings.Join(lines, "\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, body)
}

// wrapText word-wraps text to the given width and styles each line.
func wrapText(text string, width int, style lipgloss.Style) []string {
	if width <= 0 {
		return []string{style.Render(text)}
	}

	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			lines = append(lines, style.Render(current))
			current = word
		}
	}
	if current != "" {
		lines = append(lines, style.Render(current))
	}
	return lines
}
