// Package ui implements the Bubbletea TUI for the tab visualizer: a
// scrolling trail canvas plus an interactive settings panel.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Seebass22/tab-visualizer/pipeline"
	"github.com/Seebass22/tab-visualizer/tab"
)

// Settings panel rows, top to bottom.
const (
	rowPower = iota
	rowClarity
	rowKey
	rowTuning
	rowLeftColor
	rowRightColor
	rowBounds
	rowReset
	numRows
)

// trailPalette is the set of colors the left/right endpoints cycle
// through.
var trailPalette = []string{
	"#001ACC", "#FF1ACC", "#00CC66", "#FFD700",
	"#FF4500", "#00CED1", "#F8F8FF",
}

type tickMsg time.Time

// Model is the Bubbletea model for the visualizer.
type Model struct {
	pipe      *pipeline.Pipeline
	canvas    *Canvas
	showPanel bool
	cursor    int
	errMsg    string
	quitting  bool
	width     int
	height    int
}

// NewModel creates a Model wired to the given pipeline.
func NewModel(pipe *pipeline.Pipeline) Model {
	return Model{
		pipe:      pipe,
		canvas:    NewCanvas(),
		showPanel: true,
	}
}

// Init starts the tick timer and requests the terminal size.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.WindowSize())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*50, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages: key presses, ticks, and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)
		if m.quitting {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		// Drain the relay and process any completed analysis windows.
		m.pipe.Tick()
		return m, tickCmd()
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
	case "f1", "tab":
		m.showPanel = !m.showPanel
	case "r":
		m.pipe.Reset()
	case "up", "k":
		if m.showPanel && m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.showPanel && m.cursor < numRows-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "enter", " ":
		switch m.cursor {
		case rowReset:
			m.pipe.Reset()
		case rowBounds:
			m.adjust(1)
		}
	}
}

// adjust changes the focused setting by one step in the given direction.
// Configuration errors are shown in the footer; the previous valid state
// is kept.
func (m *Model) adjust(delta int) {
	if !m.showPanel {
		return
	}
	s := m.pipe.Settings()
	m.errMsg = ""
	switch m.cursor {
	case rowPower:
		m.pipe.SetPowerThreshold(s.PowerThreshold + 0.1*float64(delta))
	case rowClarity:
		m.pipe.SetClarityThreshold(s.ClarityThreshold + 0.05*float64(delta))
	case rowKey:
		if err := m.pipe.SetKey(cycle(tab.Keys(), s.Key, delta)); err != nil {
			m.errMsg = err.Error()
		}
	case rowTuning:
		if err := m.pipe.SetTuning(cycle(tab.Tunings(), s.Tuning, delta)); err != nil {
			m.errMsg = err.Error()
		}
	case rowLeftColor:
		m.pipe.SetColors(cycle(trailPalette, s.LeftColor, delta), s.RightColor)
	case rowRightColor:
		m.pipe.SetColors(s.LeftColor, cycle(trailPalette, s.RightColor, delta))
	case rowBounds:
		m.pipe.SetBoundsFromKey(!s.BoundsFromKey)
	}
}

// cycle steps through list from the current entry, wrapping at both ends.
// An entry not in the list starts from the beginning.
func cycle(list []string, current string, delta int) string {
	idx := 0
	for i, v := range list {
		if v == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(list)) % len(list)
	return list[idx]
}
