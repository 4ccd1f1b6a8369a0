package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alwayselse/trackbuddy/internal/model"
)

// Palette colors, adaptive for light and dark terminals.
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#5a56e0", Dark: "#7d79f6"}
	ColorSubtle  = lipgloss.AdaptiveColor{Light: "#9b9b9b", Dark: "#5c5c5c"}
	ColorText    = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}
	ColorDanger  = lipgloss.AdaptiveColor{Light: "#d70000", Dark: "#ff5f5f"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#5fd75f"}
	ColorWarn    = lipgloss.AdaptiveColor{Light: "#af8700", Dark: "#d7af5f"}

	ColorLearning = lipgloss.AdaptiveColor{Light: "#0087af", Dark: "#5fafd7"}
	ColorProject  = lipgloss.AdaptiveColor{Light: "#875fd7", Dark: "#af87ff"}
	ColorIncome   = lipgloss.AdaptiveColor{Light: "#00875f", Dark: "#5fd7af"}
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorSubtle)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	PanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorSubtle).
			Padding(0, 1)

	InactiveStyle = lipgloss.NewStyle().
			Faint(true).
			Foreground(ColorSubtle)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	TabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(ColorSubtle)

	ActiveTabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(ColorPrimary)
)

// CategoryStyle returns the label style for a goal category.
func CategoryStyle(category string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch category {
	case model.CategoryLearning:
		return base.Foreground(ColorLearning)
	case model.CategoryProject:
		return base.Foreground(ColorProject)
	case model.CategoryIncome:
		return base.Foreground(ColorIncome)
	default:
		return base.Foreground(ColorText)
	}
}

// CompletionStyle colors a completion percentage: red below half,
// yellow up to the target, green at or above it.
func CompletionStyle(pct float64) lipgloss.Style {
	s := lipgloss.NewStyle()
	switch {
	case pct >= 100:
		return s.Foreground(ColorSuccess)
	case pct >= 50:
		return s.Foreground(ColorWarn)
	default:
		return s.Foreground(ColorDanger)
	}
}

// Heatmap intensity ramp, lowest to highest.
var heatmapRamp = []lipgloss.AdaptiveColor{
	{Light: "#ebedf0", Dark: "#2d333b"},
	{Light: "#9be9a8", Dark: "#0e4429"},
	{Light: "#40c463", Dark: "#006d32"},
	{Light: "#30a14e", Dark: "#26a641"},
	{Light: "#216e39", Dark: "#39d353"},
}

// HeatmapStyle maps logged hours to a cell style.
func HeatmapStyle(hours float64) lipgloss.Style {
	var idx int
	switch {
	case hours <= 0:
		idx = 0
	case hours < 2:
		idx = 1
	case hours < 4:
		idx = 2
	case hours < 6:
		idx = 3
	default:
		idx = 4
	}
	return lipgloss.NewStyle().Foreground(heatmapRamp[idx])
}
