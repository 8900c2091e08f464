package dash

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/pulseboard/pulse/internal/metrics"
)

// Chart layout constants
const (
	chartHeight   = 4  // braille rows
	chartMinWidth = 20 // narrowest useful chart
)

var chartTitleStyle = lipgloss.NewStyle().
	Foreground(ColorTextSecondary).
	Bold(true)

// RenderRevenueChart renders a revenue series as a braille chart with
// period labels along the bottom. Returns an empty string when there is
// no series to plot.
func RenderRevenueChart(series *metrics.Series, width, height int) string {
	if series == nil || series.Len() == 0 || width <= 0 || height <= 0 {
		return ""
	}

	plot := RenderBrailleSparkline(series.Revenue, width, height, ColorGraph)
	axis := renderAxisLabels(series.Labels, width)

	return lipgloss.JoinVertical(lipgloss.Left, plot, axis)
}

// renderAxisLabels spreads period labels across the chart width, first
// label left-aligned and last label right-aligned. Labels that would
// collide with a neighbor are dropped rather than truncated.
func renderAxisLabels(labels []string, width int) string {
	if len(labels) == 0 || width <= 0 {
		return ""
	}

	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}

	place := func(label string, col int) {
		runes := []rune(label)
		if col < 0 {
			col = 0
		}
		if col+len(runes) > width {
			col = width - len(runes)
			if col < 0 {
				return
			}
		}
		// Require a gap so adjacent labels stay readable
		for i := col; i < col+len(runes); i++ {
			if row[i] != ' ' {
				return
			}
		}
		for i, r := range runes {
			row[col+i] = r
		}
	}

	if len(labels) == 1 {
		place(labels[0], 0)
	} else {
		step := float64(width-1) / float64(len(labels)-1)
		for i, label := range labels {
			col := int(float64(i) * step)
			if i == len(labels)-1 {
				col = width - len([]rune(label))
			}
			place(label, col)
		}
	}

	return MutedStyle.Render(string(row))
}

// renderChartPanel renders the revenue section of the dashboard,
// including the loading and error states for the series fetch.
func (m Model) renderChartPanel(width int) string {
	title := chartTitleStyle.Render("Revenue")

	var body string
	switch m.chartPanel.state {
	case panelLoading, panelUnfetched:
		body = MutedStyle.Render(m.LoadingSpinner() + " loading revenue data")

	case panelErrored:
		body = ErrorStyle.Render("✗ " + m.chartPanel.err)

	case panelLoaded:
		chartWidth := width - 4
		if chartWidth < chartMinWidth {
			chartWidth = chartMinWidth
		}
		body = RenderRevenueChart(m.series, chartWidth, chartHeight)
		if body == "" {
			return ""
		}
		body = lipgloss.JoinVertical(lipgloss.Left, body, renderChartLegend(m.series))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, body)
}

// renderChartLegend renders the low/high bounds of the plotted series.
func renderChartLegend(series *metrics.Series) string {
	if series == nil || series.Len() == 0 {
		return ""
	}

	low, high := series.Revenue[0], series.Revenue[0]
	for _, v := range series.Revenue {
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}

	return MutedStyle.Render(fmt.Sprintf("low %.0f · high %.0f", low, high))
}
