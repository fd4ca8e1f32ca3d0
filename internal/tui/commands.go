package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Commands capture what they need before returning the closure, so a
// later change to the model cannot leak into a running command.

// waitForConfigChange blocks on the watcher channel and delivers the next
// reload as a configReloadedMsg. Stopping the watcher ends the wait with a
// nil message.
func (m *Model) waitForConfigChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}

	capturedChanges := m.watcher.Changes()
	capturedDone := m.watcher.Done()
	return func() tea.Msg {
		select {
		case event := <-capturedChanges:
			return configReloadedMsg{event: event}
		case <-capturedDone:
			return nil
		}
	}
}
