package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Adaptive colors that work on both light and dark terminals.
// First value is for dark backgrounds, second for light.
var (
	colorPrimary = lipgloss.AdaptiveColor{Dark: "#AF87FF", Light: "#7B5FBF"}
	colorGreen   = lipgloss.AdaptiveColor{Dark: "#5FD75F", Light: "#2E8B2E"}
	colorRed     = lipgloss.AdaptiveColor{Dark: "#FF5F5F", Light: "#CC3333"}
	colorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD75F", Light: "#B8860B"}
	colorDim     = lipgloss.AdaptiveColor{Dark: "#585858", Light: "#999999"}
	colorSubtle  = lipgloss.AdaptiveColor{Dark: "#444444", Light: "#AAAAAA"}
	colorFg      = lipgloss.AdaptiveColor{Dark: "#E0E0E0", Light: "#1A1A1A"}
	colorBorder  = lipgloss.AdaptiveColor{Dark: "#3A3A3A", Light: "#CCCCCC"}
)

// BannerStyle colors the ASCII banner.
var BannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorPrimary)

// SubtitleStyle is dimmed subtitle text.
var SubtitleStyle = lipgloss.NewStyle().
	Foreground(colorSubtle).
	Italic(true)

// SuccessStyle is green text for completed stages.
var SuccessStyle = lipgloss.NewStyle().
	Foreground(colorGreen).
	Bold(true)

// ErrorStyle is red text for failures.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(colorRed).
	Bold(true)

// WarningStyle is yellow text for warnings.
var WarningStyle = lipgloss.NewStyle().
	Foreground(colorYellow)

// ActiveStyle is the currently running stage.
var ActiveStyle = lipgloss.NewStyle().
	Foreground(colorPrimary).
	Bold(true)

// DimStyle is de-emphasized text.
var DimStyle = lipgloss.NewStyle().
	Foreground(colorDim)

// FooterStyle is bottom help text, dimmed.
var FooterStyle = lipgloss.NewStyle().
	Foreground(colorDim).
	Padding(1, 0, 0, 0)

// PanelStyle is the outer bordered panel wrapping the dashboard.
var PanelStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(colorBorder).
	Padding(1, 2)

// LogStyle frames the recent output lines.
var LogStyle = lipgloss.NewStyle().
	Foreground(colorFg)
