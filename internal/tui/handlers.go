package tui

import (
	"fmt"

	"github.com/MikeBiancalana/datekit/internal/datemath"
	"github.com/MikeBiancalana/datekit/internal/logger"
	"github.com/MikeBiancalana/datekit/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
)

// One handler per message type, each returning (tea.Model, tea.Cmd) like
// Update itself.

// handleWindowSize handles terminal resize events
func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	m.terminalTooSmall = msg.Width < MinTerminalWidth || msg.Height < MinTerminalHeight

	m.statusBar.SetWidth(msg.Width)
	m.help.Width = msg.Width

	return m, nil
}

// handleDateChanged reports a new single-date value
func (m *Model) handleDateChanged(msg components.DateChangedMsg) (tea.Model, tea.Cmd) {
	logger.Info("tui: date changed", "id", msg.ID, "date", datemath.FormatISO(msg.Date))

	if msg.Date.IsZero() {
		m.statusBar.SetMessage(fmt.Sprintf("%s: cleared", msg.ID))
	} else {
		m.statusBar.SetMessage(fmt.Sprintf("%s: %s", msg.ID, datemath.FormatDate(msg.Date)))
	}
	return m, nil
}

// handleRangeChanged reports a new range value, including open ranges
func (m *Model) handleRangeChanged(msg components.RangeChangedMsg) (tea.Model, tea.Cmd) {
	r := msg.Range
	logger.Info("tui: range changed",
		"id", msg.ID,
		"start", datemath.FormatISO(r.Start),
		"end", datemath.FormatISO(r.End))

	switch {
	case r.IsEmpty():
		m.statusBar.SetMessage(fmt.Sprintf("%s: cleared", msg.ID))
	case r.IsOpen():
		m.statusBar.SetMessage(fmt.Sprintf("%s: %s (pick an end date)", msg.ID, datemath.FormatRange(r.Start, r.End)))
	default:
		m.statusBar.SetMessage(fmt.Sprintf("%s: %s", msg.ID, datemath.FormatRange(r.Start, r.End)))
	}
	return m, nil
}

// handlePopover logs popover transitions
func (m *Model) handlePopover(msg components.PopoverMsg) (tea.Model, tea.Cmd) {
	logger.Debug("tui: popover", "id", msg.ID, "open", msg.Open)
	return m, nil
}

// handleConfigReloaded applies settings after the config file changed
func (m *Model) handleConfigReloaded(msg configReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.event.Err != nil {
		logger.Warn("tui: keeping previous settings", "error", msg.event.Err)
		m.statusBar.SetMessage("config error: " + msg.event.Err.Error())
		return m, m.waitForConfigChange()
	}

	m.settings = msg.event.Settings
	m.applySettings()
	m.statusBar.SetMessage("config reloaded")
	return m, m.waitForConfigChange()
}
