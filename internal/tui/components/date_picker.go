package components

import (
	"strings"
	"time"

	"github.com/MikeBiancalana/datekit/internal/datemath"
	"github.com/MikeBiancalana/datekit/internal/grid"
	"github.com/MikeBiancalana/datekit/internal/picker"
	"github.com/MikeBiancalana/datekit/internal/selection"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const singlePlaceholder = "Select date"

// DateChangedMsg is sent when a DatePicker's value changes.
type DateChangedMsg struct {
	ID   string
	Date datemath.Date
}

// PopoverMsg is sent when a picker popover opens or closes.
type PopoverMsg struct {
	ID   string
	Open bool
}

// DatePicker is a TUI component for selecting a single date from a calendar
// popover, with an optional typed-entry box.
type DatePicker struct {
	shell *picker.Shell
	view  *CalendarView
	input textinput.Model

	keys        KeyMap
	theme       *Theme
	now         func() time.Time
	shortMonths bool

	focused bool
	typing  bool
	error   string
	preview string
	outbox  []tea.Msg
}

// NewDatePicker creates a new date picker component
func NewDatePicker(props picker.Props, value datemath.Date) *DatePicker {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD, t, tm, mon-sun, +3d, +2w"
	ti.CharLimit = 100
	ti.Width = 30

	dp := &DatePicker{
		shell: picker.NewShell(picker.NewSingle(props, value)),
		input: ti,
		keys:  DefaultKeyMap(),
		theme: DefaultTheme(),
		now:   time.Now,
	}
	dp.view = NewCalendarView(dp.keys, dp.theme)
	wireCalendar(dp.shell, dp.view, 0)

	dp.shell.OnChange = func(sel selection.Selection) {
		d := sel.(selection.Single).Date
		dp.outbox = append(dp.outbox, DateChangedMsg{ID: dp.shell.State().Props.ID, Date: d})
	}
	dp.shell.OnOpenChange = func(open bool) {
		dp.outbox = append(dp.outbox, PopoverMsg{ID: dp.shell.State().Props.ID, Open: open})
	}
	dp.syncView()
	return dp
}

// wireCalendar routes a calendar view's callbacks into shell events for panel.
func wireCalendar(sh *picker.Shell, cv *CalendarView, panel int) {
	cv.OnAnchorChange = func(a grid.Anchor) {
		sh.Dispatch(picker.SetAnchor{Panel: panel, Anchor: a})
	}
	cv.OnDateSelect = func(d datemath.Date) {
		sh.Dispatch(picker.SelectDate{Date: d})
	}
	cv.OnDateHover = func(d datemath.Date) {
		if d.IsZero() {
			sh.Dispatch(picker.HoverLeave{})
			return
		}
		sh.Dispatch(picker.HoverDate{Date: d})
	}
	cv.OnViewChange = func(grid.ViewMode) {
		sh.Dispatch(picker.DrillUp{Panel: panel})
	}
	cv.OnMonthSelect = func(m time.Month) {
		sh.Dispatch(picker.PickMonth{Panel: panel, Month: m})
	}
	cv.OnYearSelect = func(y int) {
		sh.Dispatch(picker.PickYear{Panel: panel, Year: y})
	}
}

// SetClock replaces the time source used for "today".
func (dp *DatePicker) SetClock(now func() time.Time) {
	dp.now = now
	dp.syncView()
}

// SetTheme switches the styles used by View.
func (dp *DatePicker) SetTheme(theme *Theme) {
	if theme == nil {
		return
	}
	dp.theme = theme
	dp.view.SetTheme(theme)
}

// SetShortMonths selects 3-letter month names in the months view.
func (dp *DatePicker) SetShortMonths(short bool) {
	dp.shortMonths = short
	dp.syncView()
}

// Focus gives the picker keyboard focus.
func (dp *DatePicker) Focus() {
	dp.focused = true
	if dp.IsOpen() {
		dp.view.Focus()
	}
}

// Blur removes keyboard focus and closes the popover.
func (dp *DatePicker) Blur() {
	dp.focused = false
	dp.view.Blur()
	dp.stopTyping()
	dp.shell.Dispatch(picker.Close{})
	dp.outbox = nil
}

// Focused reports whether the picker has keyboard focus.
func (dp *DatePicker) Focused() bool {
	return dp.focused
}

// IsOpen returns whether the calendar popover is open
func (dp *DatePicker) IsOpen() bool {
	return dp.shell.State().Open
}

// IsTyping returns whether the typed-entry box is active
func (dp *DatePicker) IsTyping() bool {
	return dp.typing
}

// Value returns the selected date, or the zero date.
func (dp *DatePicker) Value() datemath.Date {
	return dp.shell.State().Single()
}

// SetValue replaces the value from the host without emitting a change.
func (dp *DatePicker) SetValue(d datemath.Date) {
	dp.shell.Dispatch(picker.SetValue{Value: selection.Single{Date: d}})
	dp.syncView()
}

// State returns the underlying picker state.
func (dp *DatePicker) State() picker.State {
	return dp.shell.State()
}

// Shell returns the underlying picker shell.
func (dp *DatePicker) Shell() *picker.Shell {
	return dp.shell
}

// Open opens the popover.
func (dp *DatePicker) Open() tea.Cmd {
	dp.shell.Dispatch(picker.Open{Now: dp.now()})
	dp.syncView()
	if dp.IsOpen() {
		if v := dp.Value(); !v.IsZero() {
			dp.view.SetCursor(v)
		}
		if dp.focused {
			dp.view.Focus()
		}
	}
	return dp.flush()
}

// Close closes the popover without changing the value.
func (dp *DatePicker) Close() tea.Cmd {
	dp.stopTyping()
	dp.shell.Dispatch(picker.Close{})
	dp.syncView()
	return dp.flush()
}

// Update handles Bubble Tea messages
func (dp *DatePicker) Update(msg tea.Msg) (*DatePicker, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if dp.typing {
			var cmd tea.Cmd
			dp.input, cmd = dp.input.Update(msg)
			return dp, cmd
		}
		return dp, nil
	}
	if !dp.focused || dp.State().Props.Disabled {
		return dp, nil
	}

	if dp.typing {
		return dp, dp.updateTyping(keyMsg)
	}

	if !dp.IsOpen() {
		if key.Matches(keyMsg, dp.keys.Select) {
			return dp, dp.Open()
		}
		return dp, nil
	}

	now := dp.now()
	switch {
	case key.Matches(keyMsg, dp.keys.Close):
		return dp, dp.Close()
	case key.Matches(keyMsg, dp.keys.Today):
		dp.shell.Dispatch(picker.Today{Now: now})
	case key.Matches(keyMsg, dp.keys.Clear):
		dp.shell.Dispatch(picker.Clear{})
	case key.Matches(keyMsg, dp.keys.Type):
		dp.typing = true
		dp.error = ""
		dp.preview = ""
		dp.input.SetValue("")
		dp.syncView()
		return dp, dp.input.Focus()
	default:
		dp.view.Update(keyMsg)
	}

	if !dp.IsOpen() {
		dp.view.Blur()
	}
	dp.syncView()
	return dp, dp.flush()
}

func (dp *DatePicker) updateTyping(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		dp.stopTyping()
		return nil
	case tea.KeyEnter:
		input := strings.TrimSpace(dp.input.Value())
		if input == "" {
			dp.error = "Please enter a date"
			return nil
		}

		date, err := datemath.ParseDate(input, dp.now())
		if err != nil {
			dp.error = "Invalid date: " + err.Error()
			return nil
		}

		dp.stopTyping()
		dp.shell.Dispatch(picker.SetAnchor{Anchor: grid.AnchorOf(date)})
		dp.shell.Dispatch(picker.SelectDate{Date: date})
		dp.view.Blur()
		dp.syncView()
		return dp.flush()
	}

	var cmd tea.Cmd
	dp.input, cmd = dp.input.Update(msg)
	dp.updatePreview()
	return cmd
}

func (dp *DatePicker) stopTyping() {
	dp.typing = false
	dp.input.Blur()
	dp.input.SetValue("")
	dp.error = ""
	dp.preview = ""
}

// updatePreview updates the preview and error messages based on current input
func (dp *DatePicker) updatePreview() {
	input := strings.TrimSpace(dp.input.Value())

	if input == "" {
		dp.error = ""
		dp.preview = ""
		return
	}

	now := dp.now()
	date, err := datemath.ParseDate(input, now)
	if err != nil {
		dp.error = err.Error()
		dp.preview = ""
		return
	}

	dp.error = ""
	dp.preview = datemath.FormatDate(date) + " (" + datemath.Describe(date, now) + ")"
}

// flush turns the messages queued by shell callbacks into a command.
func (dp *DatePicker) flush() tea.Cmd {
	cmd := emit(dp.outbox)
	dp.outbox = nil
	return cmd
}

func emit(msgs []tea.Msg) tea.Cmd {
	switch len(msgs) {
	case 0:
		return nil
	case 1:
		capturedMsg := msgs[0]
		return func() tea.Msg { return capturedMsg }
	}

	cmds := make([]tea.Cmd, 0, len(msgs))
	for _, m := range msgs {
		capturedMsg := m
		cmds = append(cmds, func() tea.Msg { return capturedMsg })
	}
	return tea.Batch(cmds...)
}

func (dp *DatePicker) syncView() {
	s := dp.shell.State()
	dp.view.SetProps(CalendarProps{
		Anchor:      s.Anchor,
		Mode:        s.Views[0],
		Value:       s.Value,
		Hover:       s.Hover,
		Today:       datemath.Today(dp.now()),
		ShortMonths: dp.shortMonths,
	})
}

// View renders the date picker
func (dp *DatePicker) View() string {
	s := dp.shell.State()
	t := dp.theme

	var b strings.Builder
	if s.Props.Label != "" {
		b.WriteString(t.Label.Render(s.Props.Label))
		b.WriteString("\n")
	}

	b.WriteString(renderTrigger(t, datemath.FormatDate(s.Single()), singlePlaceholder, dp.focused, s.Props.Disabled))
	b.WriteString("\n")

	if s.Props.Error != "" {
		b.WriteString(t.Error.Render(s.Props.Error))
		b.WriteString("\n")
	}

	if !s.Open {
		return strings.TrimRight(b.String(), "\n")
	}

	var pop strings.Builder
	pop.WriteString(dp.view.View())
	pop.WriteString("\n\n")

	if dp.typing {
		pop.WriteString("Date: " + dp.input.View() + "\n")
		switch {
		case dp.error != "":
			pop.WriteString(t.Error.Render("✗ "+dp.error) + "\n")
		case dp.preview != "":
			pop.WriteString(t.Today.Render("→ "+dp.preview) + "\n")
		default:
			pop.WriteString("\n")
		}
		pop.WriteString(t.Hint.Render("ESC: cancel  ENTER: confirm"))
	} else {
		pop.WriteString(t.Hint.Render("t: today  c: clear  /: type  esc: close"))
	}

	b.WriteString(t.Box.Render(pop.String()))
	return b.String()
}

// renderTrigger draws the closed-state control showing value or placeholder.
func renderTrigger(t *Theme, value, placeholder string, focused, disabled bool) string {
	text := value
	if text == "" {
		text = t.Hint.Render(placeholder)
	}
	text += " ▾"

	switch {
	case disabled:
		return t.Trigger.Render(t.Disabled.Render(text))
	case focused:
		return t.Focused.Render(text)
	default:
		return t.Trigger.Render(text)
	}
}
