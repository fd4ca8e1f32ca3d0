package components

import (
	"strings"
	"time"

	"github.com/MikeBiancalana/datekit/internal/datemath"
	"github.com/MikeBiancalana/datekit/internal/picker"
	"github.com/MikeBiancalana/datekit/internal/selection"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const rangePlaceholder = "Select date range"

// focusPresets is the focus index of the preset list, after the panels.
const focusPresets = picker.PanelCount

// RangeChangedMsg is sent when a DateRangePicker's value changes, including
// the open range left by the first click.
type RangeChangedMsg struct {
	ID    string
	Range selection.Range
}

// DateRangePicker is a TUI component for selecting a date range across two
// linked month panels, with a list of preset ranges.
type DateRangePicker struct {
	shell *picker.Shell
	views [picker.PanelCount]*CalendarView

	keys        KeyMap
	theme       *Theme
	now         func() time.Time
	shortMonths bool

	focused      bool
	focus        int
	presetCursor int
	outbox       []tea.Msg
}

// NewDateRangePicker creates a new range picker component
func NewDateRangePicker(props picker.Props, value selection.Range) *DateRangePicker {
	rp := &DateRangePicker{
		shell: picker.NewShell(picker.NewRange(props, value)),
		keys:  DefaultKeyMap(),
		theme: DefaultTheme(),
		now:   time.Now,
	}
	for i := range rp.views {
		rp.views[i] = NewCalendarView(rp.keys, rp.theme)
		wireCalendar(rp.shell, rp.views[i], i)
	}

	rp.shell.OnChange = func(sel selection.Selection) {
		r := sel.(selection.Range)
		rp.outbox = append(rp.outbox, RangeChangedMsg{ID: rp.shell.State().Props.ID, Range: r})
	}
	rp.shell.OnOpenChange = func(open bool) {
		rp.outbox = append(rp.outbox, PopoverMsg{ID: rp.shell.State().Props.ID, Open: open})
	}
	rp.syncViews()
	return rp
}

// SetClock replaces the time source used for "today" and the presets.
func (rp *DateRangePicker) SetClock(now func() time.Time) {
	rp.now = now
	rp.syncViews()
}

// SetTheme switches the styles used by View.
func (rp *DateRangePicker) SetTheme(theme *Theme) {
	if theme == nil {
		return
	}
	rp.theme = theme
	for _, v := range rp.views {
		v.SetTheme(theme)
	}
}

// SetShortMonths selects 3-letter month names in the months view.
func (rp *DateRangePicker) SetShortMonths(short bool) {
	rp.shortMonths = short
	rp.syncViews()
}

// Focus gives the picker keyboard focus.
func (rp *DateRangePicker) Focus() {
	rp.focused = true
	rp.applyFocus()
}

// Blur removes keyboard focus and closes the popover.
func (rp *DateRangePicker) Blur() {
	rp.focused = false
	rp.applyFocus()
	rp.shell.Dispatch(picker.Close{})
	rp.outbox = nil
}

// Focused reports whether the picker has keyboard focus.
func (rp *DateRangePicker) Focused() bool {
	return rp.focused
}

// FocusIndex returns the focused part of the popover: a panel index or the
// preset list.
func (rp *DateRangePicker) FocusIndex() int {
	return rp.focus
}

// IsOpen returns whether the calendar popover is open
func (rp *DateRangePicker) IsOpen() bool {
	return rp.shell.State().Open
}

// Value returns the selected range.
func (rp *DateRangePicker) Value() selection.Range {
	return rp.shell.State().Range()
}

// SetValue replaces the value from the host without emitting a change.
func (rp *DateRangePicker) SetValue(r selection.Range) {
	rp.shell.Dispatch(picker.SetValue{Value: r})
	rp.syncViews()
}

// State returns the underlying picker state.
func (rp *DateRangePicker) State() picker.State {
	return rp.shell.State()
}

// Shell returns the underlying picker shell.
func (rp *DateRangePicker) Shell() *picker.Shell {
	return rp.shell
}

// Presets returns the preset ranges relative to the picker's clock.
func (rp *DateRangePicker) Presets() []datemath.Preset {
	return datemath.ComputePresetRanges(rp.now()).All()
}

// Open opens the popover with focus on the first panel.
func (rp *DateRangePicker) Open() tea.Cmd {
	rp.shell.Dispatch(picker.Open{Now: rp.now()})
	rp.syncViews()
	if rp.IsOpen() {
		rp.focus = 0
		rp.presetCursor = 0
		if start := rp.Value().Start; !start.IsZero() {
			rp.views[0].SetCursor(start)
		}
		rp.applyFocus()
	}
	return rp.flush()
}

// Close closes the popover without changing the value.
func (rp *DateRangePicker) Close() tea.Cmd {
	rp.shell.Dispatch(picker.Close{})
	rp.applyFocus()
	rp.syncViews()
	return rp.flush()
}

// ApplyPreset commits one of the preset ranges.
func (rp *DateRangePicker) ApplyPreset(p datemath.Preset) tea.Cmd {
	rp.shell.Dispatch(picker.ApplyPreset{Preset: p})
	rp.applyFocus()
	rp.syncViews()
	return rp.flush()
}

// Update handles Bubble Tea messages
func (rp *DateRangePicker) Update(msg tea.Msg) (*DateRangePicker, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !rp.focused || rp.State().Props.Disabled {
		return rp, nil
	}

	if !rp.IsOpen() {
		if key.Matches(keyMsg, rp.keys.Select) {
			return rp, rp.Open()
		}
		return rp, nil
	}

	switch {
	case key.Matches(keyMsg, rp.keys.Close):
		return rp, rp.Close()
	case key.Matches(keyMsg, rp.keys.Focus):
		rp.focus = (rp.focus + 1) % (focusPresets + 1)
		rp.applyFocus()
	case key.Matches(keyMsg, rp.keys.Today):
		rp.shell.Dispatch(picker.Today{Now: rp.now()})
	case key.Matches(keyMsg, rp.keys.Clear):
		rp.shell.Dispatch(picker.Clear{})
	case rp.focus == focusPresets:
		return rp, rp.updatePresets(keyMsg)
	default:
		rp.views[rp.focus].Update(keyMsg)
	}

	rp.applyFocus()
	rp.syncViews()
	return rp, rp.flush()
}

func (rp *DateRangePicker) updatePresets(msg tea.KeyMsg) tea.Cmd {
	presets := rp.Presets()
	switch {
	case key.Matches(msg, rp.keys.Up):
		if rp.presetCursor > 0 {
			rp.presetCursor--
		}
	case key.Matches(msg, rp.keys.Down):
		if rp.presetCursor < len(presets)-1 {
			rp.presetCursor++
		}
	case key.Matches(msg, rp.keys.Select):
		return rp.ApplyPreset(presets[rp.presetCursor])
	}
	return nil
}

// applyFocus focuses at most one panel, and none while closed.
func (rp *DateRangePicker) applyFocus() {
	for i, v := range rp.views {
		if rp.focused && rp.IsOpen() && i == rp.focus {
			v.Focus()
		} else {
			v.Blur()
		}
	}
}

func (rp *DateRangePicker) flush() tea.Cmd {
	cmd := emit(rp.outbox)
	rp.outbox = nil
	return cmd
}

func (rp *DateRangePicker) syncViews() {
	s := rp.shell.State()
	today := datemath.Today(rp.now())
	for i, v := range rp.views {
		v.SetProps(CalendarProps{
			Anchor:      s.PanelAnchor(i),
			Mode:        s.Views[i],
			Value:       s.Value,
			Hover:       s.Hover,
			Today:       today,
			ShortMonths: rp.shortMonths,
			Linked:      i > 0,
		})
	}
}

// View renders the range picker
func (rp *DateRangePicker) View() string {
	s := rp.shell.State()
	t := rp.theme
	r := s.Range()

	var b strings.Builder
	if s.Props.Label != "" {
		b.WriteString(t.Label.Render(s.Props.Label))
		b.WriteString("\n")
	}

	b.WriteString(renderTrigger(t, datemath.FormatRange(r.Start, r.End), rangePlaceholder, rp.focused, s.Props.Disabled))
	b.WriteString("\n")

	if s.Props.Error != "" {
		b.WriteString(t.Error.Render(s.Props.Error))
		b.WriteString("\n")
	}

	if !s.Open {
		return strings.TrimRight(b.String(), "\n")
	}

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		rp.views[0].View(),
		"   ",
		rp.views[1].View(),
		"   ",
		rp.renderPresets(),
	)

	hint := "tab: focus  t: today  c: clear  esc: close"
	if s.Phase == selection.AwaitingEnd {
		hint = "pick an end date  " + hint
	}

	b.WriteString(t.Box.Render(panels + "\n\n" + t.Hint.Render(hint)))
	return b.String()
}

func (rp *DateRangePicker) renderPresets() string {
	t := rp.theme
	lines := []string{t.Header.Render("Presets")}
	for i, p := range rp.Presets() {
		label := "  " + p.Label
		style := t.Day
		if rp.focus == focusPresets && i == rp.presetCursor {
			label = "> " + p.Label
			style = t.Current
		}
		lines = append(lines, style.Render(label))
	}
	return strings.Join(lines, "\n")
}
