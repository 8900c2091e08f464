package dash

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pulseboard/pulse/internal/metrics"
)

// Card layout constants
const (
	cardMinWidth   = 22 // narrowest useful KPI card
	cardTrendWidth = 16 // sparkline characters inside a card
)

// cardDividerStyle creates a subtle divider line
var cardDividerStyle = lipgloss.NewStyle().
	Foreground(ColorBorder)

// renderCardDivider creates a subtle thin divider line
func renderCardDivider(width int) string {
	return cardDividerStyle.Render(strings.Repeat("─", width))
}

// truncateWithEllipsis truncates a string to maxLen, adding ellipsis if needed.
func truncateWithEllipsis(s string, maxLen int) string {
	if maxLen <= 3 {
		return s
	}
	if len(s) > maxLen {
		return s[:maxLen-3] + "..."
	}
	return s
}

// renderKPICard renders a single KPI card: label, formatted value and a
// short trend sparkline once at least two snapshots are recorded.
func (m Model) renderKPICard(key metrics.Key, width int) string {
	innerWidth := width - 4

	var lines []string
	lines = append(lines, CardTitleStyle.Render(truncateWithEllipsis(key.Label(), innerWidth)))

	switch m.kpiPanel.state {
	case panelLoading, panelUnfetched:
		lines = append(lines, MutedStyle.Render(m.LoadingSpinner()+" loading"))

	case panelErrored:
		lines = append(lines, ErrorStyle.Render("✗ unavailable"))
		lines = append(lines, MutedStyle.Render(truncateWithEllipsis(m.kpiPanel.err, innerWidth)))

	case panelLoaded:
		v, ok := float64(0), false
		if m.record != nil {
			v, ok = m.record.Value(key)
		}
		if !ok {
			lines = append(lines, MutedStyle.Render("-"))
			break
		}
		lines = append(lines, ValueStyleFor(key, v).Render(key.Format(v)))

		trendWidth := cardTrendWidth
		if trendWidth > innerWidth {
			trendWidth = innerWidth
		}
		if trend := m.history.Trend(key, trendWidth); len(trend) >= 2 {
			lines = append(lines, RenderMiniSparkline(trend, trendWidth, ColorAccentDim))
		}
	}

	return CardStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// renderKPICards renders the four KPI cards in fixed display order,
// arranged into rows according to the current layout.
func (m Model) renderKPICards() string {
	keys := metrics.Keys()
	cardWidth := m.calculateCardWidth()

	cards := make([]string, 0, len(keys))
	for _, k := range keys {
		cards = append(cards, m.renderKPICard(k, cardWidth))
	}

	perRow := len(keys)
	switch m.LayoutMode() {
	case LayoutMinimal:
		perRow = 1
	case LayoutCompact:
		perRow = 2
	}

	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := i + perRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// calculateCardWidth determines KPI card width from terminal width.
func (m Model) calculateCardWidth() int {
	if m.width == 0 {
		return 28 // Default before the first WindowSizeMsg
	}

	perRow := 4
	switch m.LayoutMode() {
	case LayoutMinimal:
		perRow = 1
	case LayoutCompact:
		perRow = 2
	}

	// Account for card borders and margins
	w := m.width/perRow - 3
	if w < cardMinWidth {
		w = cardMinWidth
	}
	return w
}
