package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const sliderWidth = 16

// View renders the trail canvas with the settings panel and help line
// stacked above and below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "starting..."
	}

	top := m.renderTitle()
	if m.showPanel {
		top += "\n" + m.renderPanel()
	}
	bottom := m.renderFooter()

	reserved := lipgloss.Height(top) + lipgloss.Height(bottom)
	canvasH := m.height - reserved
	if canvasH < 3 {
		canvasH = 3
	}
	m.canvas.Resize(m.width, canvasH)

	s := m.pipe.Settings()
	trail := m.canvas.Render(m.pipe.Frame(), s.LeftColor, s.RightColor)

	return top + "\n" + trail + "\n" + bottom
}

func (m Model) renderTitle() string {
	return titleStyle.Render(" TAB VISUALIZER")
}

func (m Model) renderPanel() string {
	s := m.pipe.Settings()

	rows := []string{
		m.panelRow(rowPower, "Power threshold  ",
			renderSlider(s.PowerThreshold/5)+fmt.Sprintf(" %.1f", s.PowerThreshold)),
		m.panelRow(rowClarity, "Clarity threshold",
			renderSlider(s.ClarityThreshold)+fmt.Sprintf(" %.2f", s.ClarityThreshold)),
		m.panelRow(rowKey, "Key              ", fmt.Sprintf("< %s >", s.Key)),
		m.panelRow(rowTuning, "Tuning           ", fmt.Sprintf("< %s >", s.Tuning)),
		m.panelRow(rowLeftColor, "Left color       ", renderSwatch(s.LeftColor)),
		m.panelRow(rowRightColor, "Right color      ", renderSwatch(s.RightColor)),
		m.panelRow(rowBounds, "Bounds from key  ", renderToggle(s.BoundsFromKey)),
		m.panelRow(rowReset, "Reset            ", "[ clear trail ]"),
	}

	return panelStyle.Render(strings.Join(rows, "\n"))
}

// panelRow renders one settings line, highlighting the focused row.
func (m Model) panelRow(row int, label, value string) string {
	style := labelStyle
	prefix := "  "
	if m.cursor == row {
		style = selectedStyle
		prefix = "> "
	}
	return style.Render(prefix+label) + " " + style.Render(value)
}

func renderSlider(frac float64) string {
	frac = max(0, min(1, frac))
	filled := int(frac * float64(sliderWidth))
	return strings.Repeat("█", filled) + strings.Repeat("░", sliderWidth-filled)
}

func renderSwatch(hex string) string {
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
	return swatch + " " + hex
}

func renderToggle(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m Model) renderFooter() string {
	help := helpStyle.Render(" [↑↓]Select [←→]Adjust [Tab]Panel [R]Reset [Q]Quit")
	if m.errMsg != "" {
		return help + "\n" + errorStyle.Render(" ERR: "+m.errMsg)
	}
	return help
}
