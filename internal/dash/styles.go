package dash

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pulseboard/pulse/internal/metrics"
)

// Dashboard color palette
const (
	// Background colors
	ColorDarkBg    = lipgloss.Color("#0A0A0F") // Deep void
	ColorSurfaceBg = lipgloss.Color("#12121A") // Dark surface
	ColorBorder    = lipgloss.Color("#2A2A4A") // Glass border (purple tint)

	// Semantic colors for source health and metric goodness
	ColorHealthy  = lipgloss.Color("#39FF14") // Neon green
	ColorWarning  = lipgloss.Color("#FFAA00") // Electric amber
	ColorCritical = lipgloss.Color("#FF0055") // Hot red-pink

	// Text colors
	ColorTextPrimary   = lipgloss.Color("#FFFFFF") // Pure white
	ColorTextSecondary = lipgloss.Color("#B4B4D0") // Lavender gray
	ColorTextMuted     = lipgloss.Color("#6B6B8D") // Purple-gray

	// Accent colors
	ColorAccent    = lipgloss.Color("#FF2E97") // Neon pink
	ColorAccentDim = lipgloss.Color("#BF40FF") // Neon purple

	// Chart color
	ColorGraph = lipgloss.Color("#00FFFF") // Neon cyan
)

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginRight(1).
			MarginBottom(1)

	// Text styles
	CardTitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorCritical)

	// Insight category badges
	RiskBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	OpportunityBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorHealthy).
				Bold(true)
)

// Status indicator characters
const (
	IndicatorOK      = "◉" // Filled target - source healthy
	IndicatorError   = "◌" // Dashed circle - source failing
	IndicatorUnknown = "◔" // Partially filled - state unclear
)

// LoadingSpinnerFrames are the animation frames for panels waiting on data.
var LoadingSpinnerFrames = []string{"◐", "◓", "◑", "◒"}

// StatusColor returns the deterministic color for a source health state:
// green iff ok, red iff error, yellow for everything else.
func StatusColor(s metrics.Status) lipgloss.Color {
	switch s {
	case metrics.StatusOK:
		return ColorHealthy
	case metrics.StatusError:
		return ColorCritical
	default:
		return ColorWarning
	}
}

// StatusIndicator returns the glyph for a source health state.
func StatusIndicator(s metrics.Status) string {
	switch s {
	case metrics.StatusOK:
		return IndicatorOK
	case metrics.StatusError:
		return IndicatorError
	default:
		return IndicatorUnknown
	}
}

// ValueColor returns the color for a KPI value. Business metrics are
// good-high: growth below zero is critical, scores degrade through amber.
func ValueColor(key metrics.Key, v float64) lipgloss.Color {
	if key == metrics.KeyRevenueGrowth {
		switch {
		case v < 0:
			return ColorCritical
		case v < 5:
			return ColorWarning
		default:
			return ColorHealthy
		}
	}

	switch {
	case v < 50:
		return ColorCritical
	case v < 80:
		return ColorWarning
	default:
		return ColorHealthy
	}
}

// ValueStyleFor returns a bold style colored for the KPI value.
func ValueStyleFor(key metrics.Key, v float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ValueColor(key, v)).Bold(true)
}

// CategoryBadge returns the rendered badge text for an insight category.
func CategoryBadge(c metrics.InsightCategory) string {
	switch c {
	case metrics.CategoryRisk:
		return RiskBadgeStyle.Render("▲ risk")
	case metrics.CategoryOpportunity:
		return OpportunityBadgeStyle.Render("● opportunity")
	default:
		return MutedStyle.Render(string(c))
	}
}
