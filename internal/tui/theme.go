package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha subset used for chrome around the rating row.
// Star and label colors come from rating.Config.
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
)

const (
	colorAccent  = colorPink
	colorSuccess = colorGreen
	colorMuted   = colorOverlay1
	colorFocus   = colorSurface1
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
)
