package ui

import "github.com/charmbracelet/lipgloss"

// Chrome palette using standard ANSI terminal colors (0-15) so it adapts
// to the user's terminal theme; the trail itself is drawn in the
// user-selected truecolor gradient.
var (
	colorBorder = lipgloss.ANSIColor(8)  // bright black (dark gray)
	colorTitle  = lipgloss.ANSIColor(10) // bright green
	colorText   = lipgloss.ANSIColor(7)  // white (light gray)
	colorDim    = lipgloss.ANSIColor(8)  // bright black (dark gray)
	colorAccent = lipgloss.ANSIColor(11) // bright yellow
)

// Lip Gloss styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorTitle).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorText)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	symbolStyle = lipgloss.NewStyle().
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.ANSIColor(9)) // bright red
)
