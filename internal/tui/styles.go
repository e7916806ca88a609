// Package tui provides the interactive menu shown when the tool runs
// without a subcommand on a terminal.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorAccent = lipgloss.Color("#E8743B") // Suricata orange for accents
	ColorMuted  = lipgloss.Color("#6c757d") // Muted text
	ColorText   = lipgloss.Color("#E0E0E0") // Primary text
	ColorAlert  = lipgloss.Color("#FF6B6B") // Red for errors
	ColorGood   = lipgloss.Color("#4ECDC4") // Green for success
)

// Styles
var (
	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	StyleStatusGood = lipgloss.NewStyle().Foreground(ColorGood).Bold(true)
	StyleStatusBad  = lipgloss.NewStyle().Foreground(ColorAlert).Bold(true)
)
