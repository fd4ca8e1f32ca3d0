package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/MikeBiancalana/datekit/internal/datemath"
	"github.com/MikeBiancalana/datekit/internal/grid"
	"github.com/MikeBiancalana/datekit/internal/selection"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	dayCellWidth  = 2
	calendarWidth = 7*dayCellWidth + 6
	calendarRows  = 6
)

const weekdayHeader = "Su Mo Tu We Th Fr Sa"

// CalendarProps is everything the owner passes down to a CalendarView.
type CalendarProps struct {
	Anchor      grid.Anchor
	Mode        grid.ViewMode
	Value       selection.Selection
	Hover       datemath.Date
	Today       datemath.Date
	ShortMonths bool
	// Linked views follow another panel and ignore prev/next in days view.
	Linked bool
}

// CalendarView renders one month, year or decade grid and turns keys into
// callbacks. It owns only its keyboard cursor; anchor, view mode, value and
// hover come from the owner through SetProps.
type CalendarView struct {
	props   CalendarProps
	keys    KeyMap
	theme   *Theme
	focused bool

	cursor      datemath.Date
	monthCursor time.Month
	yearCursor  int
	lastMode    grid.ViewMode

	OnAnchorChange func(grid.Anchor)
	OnDateSelect   func(datemath.Date)
	// OnDateHover receives the date under the cursor, or the zero date when
	// the cursor leaves the grid.
	OnDateHover   func(datemath.Date)
	OnViewChange  func(grid.ViewMode)
	OnMonthSelect func(time.Month)
	OnYearSelect  func(int)
}

// NewCalendarView creates a calendar view
func NewCalendarView(keys KeyMap, theme *Theme) *CalendarView {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &CalendarView{keys: keys, theme: theme}
}

// SetProps replaces the owner-controlled state and keeps the cursor inside
// the visible grid.
func (cv *CalendarView) SetProps(p CalendarProps) {
	if p.Value == nil {
		p.Value = selection.Single{}
	}
	cv.props = p
	cv.syncCursor()
}

// Props returns the last props set.
func (cv *CalendarView) Props() CalendarProps {
	return cv.props
}

// SetTheme switches the styles used by View.
func (cv *CalendarView) SetTheme(theme *Theme) {
	if theme != nil {
		cv.theme = theme
	}
}

// Focus gives the view keyboard focus.
func (cv *CalendarView) Focus() {
	cv.focused = true
}

// Blur removes focus and reports that the cursor left the grid.
func (cv *CalendarView) Blur() {
	if cv.focused && cv.props.Mode == grid.Days {
		cv.hover(datemath.Date{})
	}
	cv.focused = false
}

// Focused reports whether the view has keyboard focus.
func (cv *CalendarView) Focused() bool {
	return cv.focused
}

// Cursor returns the day under the keyboard cursor.
func (cv *CalendarView) Cursor() datemath.Date {
	return cv.cursor
}

// SetCursor moves the day cursor without firing callbacks.
func (cv *CalendarView) SetCursor(d datemath.Date) {
	if d.IsZero() {
		return
	}
	cv.cursor = d
	cv.syncCursor()
}

func (cv *CalendarView) syncCursor() {
	p := cv.props
	if p.Mode != cv.lastMode {
		cv.monthCursor = p.Anchor.Month
		cv.yearCursor = p.Anchor.Year
		cv.lastMode = p.Mode
	}

	if cv.cursor.IsZero() || grid.AnchorOf(cv.cursor) != p.Anchor {
		day := cv.cursor.Day
		switch {
		case !p.Today.IsZero() && grid.AnchorOf(p.Today) == p.Anchor && cv.cursor.IsZero():
			day = p.Today.Day
		case day < 1:
			day = 1
		}
		if max := datemath.DaysInMonth(p.Anchor.Year, p.Anchor.Month); day > max {
			day = max
		}
		cv.cursor = datemath.Date{Year: p.Anchor.Year, Month: p.Anchor.Month, Day: day}
	}

	if cv.monthCursor < time.January || cv.monthCursor > time.December {
		cv.monthCursor = p.Anchor.Month
	}
	start := grid.DecadeStart(p.Anchor.Year)
	if cv.yearCursor < start || cv.yearCursor >= start+grid.YearsPerPage {
		cv.yearCursor = p.Anchor.Year
	}
}

// Update handles Bubble Tea messages
func (cv *CalendarView) Update(msg tea.Msg) (*CalendarView, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !cv.focused {
		return cv, nil
	}

	switch cv.props.Mode {
	case grid.Months:
		cv.updateMonths(keyMsg)
	case grid.Years:
		cv.updateYears(keyMsg)
	default:
		cv.updateDays(keyMsg)
	}
	return cv, nil
}

func (cv *CalendarView) updateDays(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, cv.keys.Left):
		cv.moveDay(-1)
	case key.Matches(msg, cv.keys.Right):
		cv.moveDay(1)
	case key.Matches(msg, cv.keys.Up):
		cv.moveDay(-7)
	case key.Matches(msg, cv.keys.Down):
		cv.moveDay(7)
	case key.Matches(msg, cv.keys.Select):
		if cv.OnDateSelect != nil {
			cv.OnDateSelect(cv.cursor)
		}
	case key.Matches(msg, cv.keys.Prev):
		cv.shift(grid.Prev)
	case key.Matches(msg, cv.keys.Next):
		cv.shift(grid.Next)
	case key.Matches(msg, cv.keys.DrillUp):
		cv.drillUp()
	}
}

func (cv *CalendarView) updateMonths(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, cv.keys.Left):
		cv.moveMonth(-1)
	case key.Matches(msg, cv.keys.Right):
		cv.moveMonth(1)
	case key.Matches(msg, cv.keys.Up):
		cv.moveMonth(-3)
	case key.Matches(msg, cv.keys.Down):
		cv.moveMonth(3)
	case key.Matches(msg, cv.keys.Select):
		if cv.OnMonthSelect != nil {
			cv.OnMonthSelect(cv.monthCursor)
		}
	case key.Matches(msg, cv.keys.Prev):
		cv.shift(grid.Prev)
	case key.Matches(msg, cv.keys.Next):
		cv.shift(grid.Next)
	case key.Matches(msg, cv.keys.DrillUp):
		cv.drillUp()
	}
}

func (cv *CalendarView) updateYears(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, cv.keys.Left):
		cv.moveYear(-1)
	case key.Matches(msg, cv.keys.Right):
		cv.moveYear(1)
	case key.Matches(msg, cv.keys.Up):
		cv.moveYear(-3)
	case key.Matches(msg, cv.keys.Down):
		cv.moveYear(3)
	case key.Matches(msg, cv.keys.Select):
		if cv.OnYearSelect != nil {
			cv.OnYearSelect(cv.yearCursor)
		}
	case key.Matches(msg, cv.keys.Prev):
		cv.yearCursor -= grid.YearsPerPage
		cv.shift(grid.Prev)
	case key.Matches(msg, cv.keys.Next):
		cv.yearCursor += grid.YearsPerPage
		cv.shift(grid.Next)
	}
}

func (cv *CalendarView) moveDay(n int) {
	next := datemath.AddDays(cv.cursor, n)
	cv.cursor = next
	if a := grid.AnchorOf(next); a != cv.props.Anchor {
		cv.anchor(a)
	}
	cv.hover(next)
}

func (cv *CalendarView) moveMonth(n int) {
	m := cv.monthCursor + time.Month(n)
	if m < time.January || m > time.December {
		return
	}
	cv.monthCursor = m
}

func (cv *CalendarView) moveYear(n int) {
	cv.yearCursor += n
	start := grid.DecadeStart(cv.props.Anchor.Year)
	if cv.yearCursor < start || cv.yearCursor >= start+grid.YearsPerPage {
		cv.anchor(grid.Anchor{Year: cv.yearCursor, Month: cv.props.Anchor.Month})
	}
}

func (cv *CalendarView) shift(dir grid.Direction) {
	mode := cv.props.Mode
	if cv.props.Linked && mode == grid.Days {
		return
	}
	next := grid.Shift(cv.props.Anchor, mode, dir)
	if mode == grid.Days {
		day := cv.cursor.Day
		if max := datemath.DaysInMonth(next.Year, next.Month); day > max {
			day = max
		}
		cv.cursor = datemath.Date{Year: next.Year, Month: next.Month, Day: day}
	}
	cv.anchor(next)
	if mode == grid.Days {
		cv.hover(cv.cursor)
	}
}

func (cv *CalendarView) drillUp() {
	next, ok := grid.DrillUp(cv.props.Mode)
	if !ok {
		return
	}
	if cv.OnViewChange != nil {
		cv.OnViewChange(next)
	}
}

func (cv *CalendarView) anchor(a grid.Anchor) {
	if cv.OnAnchorChange != nil {
		cv.OnAnchorChange(a)
	}
}

func (cv *CalendarView) hover(d datemath.Date) {
	if cv.OnDateHover != nil {
		cv.OnDateHover(d)
	}
}

// View renders the calendar
func (cv *CalendarView) View() string {
	p := cv.props
	g := grid.Layout(p.Anchor, p.Mode, grid.Options{ShortMonths: p.ShortMonths})

	var b strings.Builder
	b.WriteString(cv.renderTitle(g))
	b.WriteString("\n")

	switch g.Mode {
	case grid.Days:
		b.WriteString(cv.theme.Weekday.Render(weekdayHeader))
		b.WriteString("\n")
		b.WriteString(cv.renderDays(g))
	default:
		b.WriteString(cv.renderPicks(g))
	}
	return b.String()
}

func (cv *CalendarView) renderTitle(g grid.Grid) string {
	title := g.Title
	if cv.focused && g.HeaderClickable {
		title = cv.theme.Cursor.Render(title)
	}
	title = cv.theme.Title.Render(title)

	prev, next := "‹", "›"
	if cv.props.Linked && g.Mode == grid.Days {
		prev, next = " ", " "
	}
	inner := calendarWidth - 4
	return prev + " " + lipgloss.PlaceHorizontal(inner, lipgloss.Center, title) + " " + next
}

func (cv *CalendarView) renderDays(g grid.Grid) string {
	p := cv.props
	dates := make([]datemath.Date, 0, len(g.Cells))
	for _, c := range g.DayCells() {
		dates = append(dates, c.Date)
	}
	states := selection.ClassifyAll(p.Value, p.Hover, dates)

	rows := g.Rows()
	lines := make([]string, 0, calendarRows)
	for _, row := range rows {
		var line strings.Builder
		for i, c := range row {
			if i > 0 {
				line.WriteString(cv.renderGap(states, row[i-1], c))
			}
			if c.Kind != grid.CellDay {
				line.WriteString(strings.Repeat(" ", dayCellWidth))
				continue
			}
			line.WriteString(cv.renderDay(c, states[c.Date]))
		}
		lines = append(lines, line.String())
	}
	for len(lines) < calendarRows {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// renderGap draws the space between two cells, filled when the range bar
// runs through it.
func (cv *CalendarView) renderGap(states map[datemath.Date]selection.CellState, left, right grid.Cell) string {
	if left.Kind != grid.CellDay || right.Kind != grid.CellDay {
		return " "
	}
	ls, rs := states[left.Date], states[right.Date]
	if ls.Fill && rs.Fill && !ls.RoundRight && !rs.RoundLeft {
		if ls.Preview || rs.Preview {
			return cv.theme.Preview.Render(" ")
		}
		return cv.theme.RangeFill.Render(" ")
	}
	return " "
}

func (cv *CalendarView) renderDay(c grid.Cell, st selection.CellState) string {
	t := cv.theme
	label := fmt.Sprintf("%*s", dayCellWidth, c.Label)

	var style lipgloss.Style
	switch {
	case st.Selected:
		style = t.Selected
	case st.Fill && st.Preview:
		style = t.Preview
	case st.Fill:
		style = t.RangeFill
	case datemath.IsSameDay(c.Date, cv.props.Today):
		style = t.Today
	default:
		style = t.Day
	}
	if cv.focused && datemath.IsSameDay(c.Date, cv.cursor) {
		style = style.Underline(true).Bold(true)
	}
	return style.Render(label)
}

func (cv *CalendarView) renderPicks(g grid.Grid) string {
	t := cv.theme
	width := 0
	for _, c := range g.Cells {
		width = max(width, lipgloss.Width(c.Label))
	}

	var lines []string
	for _, row := range g.Rows() {
		parts := make([]string, 0, len(row))
		for _, c := range row {
			label := fmt.Sprintf("%-*s", width, c.Label)

			style := t.Day
			if c.Current {
				style = t.Current
			}
			if cv.focused && cv.isPickCursor(c) {
				style = style.Underline(true).Bold(true)
			}
			parts = append(parts, style.Render(label))
		}
		lines = append(lines, strings.Join(parts, "  "))
	}
	for len(lines) < calendarRows+1 {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (cv *CalendarView) isPickCursor(c grid.Cell) bool {
	switch c.Kind {
	case grid.CellMonth:
		return c.Month == cv.monthCursor
	case grid.CellYear:
		return c.Year == cv.yearCursor
	}
	return false
}
