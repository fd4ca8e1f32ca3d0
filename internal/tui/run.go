package tui

import (
	"fmt"
	"time"

	"github.com/MikeBiancalana/datekit/internal/config"
	"github.com/MikeBiancalana/datekit/internal/datemath"
	"github.com/MikeBiancalana/datekit/internal/logger"
	"github.com/MikeBiancalana/datekit/internal/picker"
	"github.com/MikeBiancalana/datekit/internal/selection"
	"github.com/MikeBiancalana/datekit/internal/sync"
	"github.com/MikeBiancalana/datekit/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
)

// RunShowcase runs the interactive showcase until the user quits.
// watcher may be nil.
func RunShowcase(settings config.Settings, watcher *sync.Watcher) error {
	p := tea.NewProgram(NewModel(settings, watcher), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("showcase: %w", err)
	}
	return nil
}

// pickerModel runs one picker full screen and quits when its popover
// closes. Esc and ctrl+c mark the run as cancelled.
type pickerModel struct {
	single *components.DatePicker
	rng    *components.DateRangePicker

	cancelled bool
}

func newPickerModel(single *components.DatePicker, rng *components.DateRangePicker) *pickerModel {
	return &pickerModel{single: single, rng: rng}
}

func (m *pickerModel) isOpen() bool {
	if m.rng != nil {
		return m.rng.IsOpen()
	}
	return m.single.IsOpen()
}

func (m *pickerModel) Init() tea.Cmd {
	var cmd tea.Cmd
	if m.rng != nil {
		m.rng.Focus()
		cmd = m.rng.Open()
	} else {
		m.single.Focus()
		cmd = m.single.Open()
	}
	if !m.isOpen() {
		// disabled pickers never open
		m.cancelled = true
		return tea.Quit
	}
	return cmd
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "esc":
			// esc inside typed entry only leaves the text field
			if m.single == nil || !m.single.IsTyping() {
				m.cancelled = true
			}
		}
	case components.PopoverMsg:
		if !msg.Open && !m.isOpen() {
			return m, tea.Quit
		}
		return m, nil
	case components.DateChangedMsg, components.RangeChangedMsg:
		return m, nil
	}

	var cmd tea.Cmd
	if m.rng != nil {
		_, cmd = m.rng.Update(msg)
	} else {
		_, cmd = m.single.Update(msg)
	}
	if m.cancelled && !m.isOpen() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m *pickerModel) View() string {
	if m.rng != nil {
		return m.rng.View() + "\n"
	}
	return m.single.View() + "\n"
}

func applyRunSettings(settings config.Settings) (*components.Theme, bool) {
	return components.NewTheme(settings.Theme), settings.ShortMonths
}

// RunSingle runs a single-date picker and returns the committed date.
// ok is false when the user cancelled.
func RunSingle(props picker.Props, value datemath.Date, settings config.Settings) (datemath.Date, bool, error) {
	dp := components.NewDatePicker(props, value)
	theme, short := applyRunSettings(settings)
	dp.SetTheme(theme)
	dp.SetShortMonths(short)
	dp.SetClock(time.Now)

	m := newPickerModel(dp, nil)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return datemath.Date{}, false, fmt.Errorf("pick: %w", err)
	}
	if m.cancelled {
		logger.Debug("tui: pick cancelled", "id", dp.State().Props.ID)
		return value, false, nil
	}
	return dp.Value(), true, nil
}

// RunRange runs a range picker and returns the committed range.
// ok is false when the user cancelled or left the range open.
func RunRange(props picker.Props, value selection.Range, settings config.Settings) (selection.Range, bool, error) {
	rp := components.NewDateRangePicker(props, value)
	theme, short := applyRunSettings(settings)
	rp.SetTheme(theme)
	rp.SetShortMonths(short)
	rp.SetClock(time.Now)

	m := newPickerModel(nil, rp)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return selection.Range{}, false, fmt.Errorf("range: %w", err)
	}
	r := rp.Value()
	if m.cancelled || !r.IsComplete() {
		logger.Debug("tui: range cancelled", "id", rp.State().Props.ID)
		return value, false, nil
	}
	return r, true, nil
}
