package tui

import (
	"github.com/MikeBiancalana/datekit/internal/logger"
	"github.com/MikeBiancalana/datekit/internal/selection"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Keyboard Handlers
//
// While a popover is open every key except ctrl+c belongs to the focused
// picker. Otherwise the showcase keys are checked first and anything else
// is forwarded.

// handleKeyPress is the main keyboard input dispatcher
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.handleQuit()
	}

	focused := m.examples[m.focus]
	if focused.IsOpen() {
		return m, focused.update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.handleQuit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case msg.String() == "tab":
		m.moveFocus(1)
		return m, nil
	case msg.String() == "shift+tab":
		m.moveFocus(-1)
		return m, nil
	}

	return m, focused.update(msg)
}

// moveFocus cycles the focused example by delta, wrapping around.
func (m *Model) moveFocus(delta int) {
	n := len(m.examples)
	m.examples[m.focus].Blur()
	m.focus = ((m.focus+delta)%n + n) % n
	m.examples[m.focus].Focus()
	m.statusBar.SetMessage("")
}

func (m *Model) handleQuit() (tea.Model, tea.Cmd) {
	m.render.LogStats()
	for _, e := range m.examples {
		s := e.State()
		events := e.shell().Events()
		args := []any{"id", s.Props.ID, "value", selection.Format(s.Value)}
		for _, name := range events.Names() {
			args = append(args, name, events.Value(name))
		}
		logger.Debug("tui: picker events", args...)
	}
	if m.watcher != nil {
		m.watcher.Stop()
	}
	return m, tea.Quit
}
