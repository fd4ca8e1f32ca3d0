package components

import (
	"strings"
	"testing"
	"time"

	"github.com/MikeBiancalana/datekit/internal/datemath"
	"github.com/MikeBiancalana/datekit/internal/grid"
	"github.com/MikeBiancalana/datekit/internal/selection"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

type calendarRecorder struct {
	anchors []grid.Anchor
	selects []datemath.Date
	hovers  []datemath.Date
	views   []grid.ViewMode
	months  []time.Month
	years   []int
}

func newRecordedView(props CalendarProps) (*CalendarView, *calendarRecorder) {
	rec := &calendarRecorder{}
	cv := NewCalendarView(DefaultKeyMap(), nil)
	cv.OnAnchorChange = func(a grid.Anchor) { rec.anchors = append(rec.anchors, a) }
	cv.OnDateSelect = func(d datemath.Date) { rec.selects = append(rec.selects, d) }
	cv.OnDateHover = func(d datemath.Date) { rec.hovers = append(rec.hovers, d) }
	cv.OnViewChange = func(v grid.ViewMode) { rec.views = append(rec.views, v) }
	cv.OnMonthSelect = func(m time.Month) { rec.months = append(rec.months, m) }
	cv.OnYearSelect = func(y int) { rec.years = append(rec.years, y) }
	cv.SetProps(props)
	cv.Focus()
	return cv, rec
}

func june2024() CalendarProps {
	return CalendarProps{
		Anchor: grid.Anchor{Year: 2024, Month: time.June},
		Mode:   grid.Days,
		Value:  selection.Single{},
		Today:  datemath.MustValid(2024, time.June, 15),
	}
}

func TestCalendarCursorStartsOnToday(t *testing.T) {
	cv, _ := newRecordedView(june2024())
	assert.Equal(t, datemath.MustValid(2024, time.June, 15), cv.Cursor())

	props := june2024()
	props.Anchor = grid.Anchor{Year: 2024, Month: time.February}
	other := NewCalendarView(DefaultKeyMap(), nil)
	other.SetProps(props)
	assert.Equal(t, datemath.MustValid(2024, time.February, 1), other.Cursor())
}

func TestCalendarMoveAndSelect(t *testing.T) {
	cv, rec := newRecordedView(june2024())

	cv.Update(keyRunes("l"))
	cv.Update(keyType(tea.KeyDown))
	cv.Update(keyType(tea.KeyEnter))

	assert.Equal(t, []datemath.Date{
		datemath.MustValid(2024, time.June, 16),
		datemath.MustValid(2024, time.June, 23),
	}, rec.hovers)
	assert.Equal(t, []datemath.Date{datemath.MustValid(2024, time.June, 23)}, rec.selects)
	assert.Empty(t, rec.anchors)
}

func TestCalendarCursorLeavingMonthMovesAnchor(t *testing.T) {
	props := june2024()
	cv, rec := newRecordedView(props)
	cv.SetCursor(datemath.MustValid(2024, time.June, 30))

	cv.Update(keyType(tea.KeyRight))

	require.Len(t, rec.anchors, 1)
	assert.Equal(t, grid.Anchor{Year: 2024, Month: time.July}, rec.anchors[0])
	assert.Equal(t, datemath.MustValid(2024, time.July, 1), cv.Cursor())
}

func TestCalendarPrevNext(t *testing.T) {
	cv, rec := newRecordedView(june2024())
	cv.SetCursor(datemath.MustValid(2024, time.May, 31))
	// cursor outside the anchor month is pulled back in
	assert.Equal(t, time.June, cv.Cursor().Month)

	cv.SetCursor(datemath.MustValid(2024, time.June, 30))
	cv.Update(keyRunes("["))
	cv.Update(keyType(tea.KeyPgDown))

	assert.Equal(t, []grid.Anchor{
		{Year: 2024, Month: time.May},
		{Year: 2024, Month: time.July},
	}, rec.anchors)
}

func TestCalendarLinkedIgnoresPrevNext(t *testing.T) {
	props := june2024()
	props.Linked = true
	cv, rec := newRecordedView(props)

	cv.Update(keyRunes("]"))
	cv.Update(keyRunes("["))
	assert.Empty(t, rec.anchors)

	props.Mode = grid.Months
	cv.SetProps(props)
	cv.Update(keyRunes("]"))
	assert.Equal(t, []grid.Anchor{{Year: 2025, Month: time.June}}, rec.anchors)
}

func TestCalendarDrillUp(t *testing.T) {
	props := june2024()
	cv, rec := newRecordedView(props)

	cv.Update(keyRunes("v"))
	props.Mode = grid.Months
	cv.SetProps(props)
	cv.Update(keyRunes("v"))
	props.Mode = grid.Years
	cv.SetProps(props)
	cv.Update(keyRunes("v"))

	assert.Equal(t, []grid.ViewMode{grid.Months, grid.Years}, rec.views)
}

func TestCalendarMonthPick(t *testing.T) {
	props := june2024()
	props.Mode = grid.Months
	cv, rec := newRecordedView(props)

	cv.Update(keyRunes("j"))
	cv.Update(keyRunes("l"))
	cv.Update(keyType(tea.KeyEnter))

	assert.Equal(t, []time.Month{time.October}, rec.months)
	assert.Empty(t, rec.hovers, "months view never hovers days")
}

func TestCalendarYearPick(t *testing.T) {
	props := june2024()
	props.Mode = grid.Years
	cv, rec := newRecordedView(props)

	cv.Update(keyRunes("h"))
	cv.Update(keyType(tea.KeyEnter))
	assert.Equal(t, []int{2023}, rec.years)

	// 2023 sits in the 2016 - 2027 page; 2029 does not
	cv.Update(keyRunes("j"))
	assert.Empty(t, rec.anchors)
	cv.Update(keyRunes("j"))
	require.NotEmpty(t, rec.anchors)
	assert.Equal(t, 2029, rec.anchors[len(rec.anchors)-1].Year)
}

func TestCalendarIgnoresKeysWhenBlurred(t *testing.T) {
	cv, rec := newRecordedView(june2024())
	cv.Blur()
	require.Len(t, rec.hovers, 1)
	assert.True(t, rec.hovers[0].IsZero(), "blur reports the cursor leaving")

	cv.Update(keyType(tea.KeyEnter))
	cv.Update(keyRunes("]"))
	assert.Empty(t, rec.selects)
	assert.Empty(t, rec.anchors)
}

func TestCalendarView(t *testing.T) {
	props := june2024()
	props.Value = selection.Range{
		Start: datemath.MustValid(2024, time.June, 10),
		End:   datemath.MustValid(2024, time.June, 12),
	}
	cv, _ := newRecordedView(props)

	view := cv.View()
	assert.Contains(t, view, "June 2024")
	assert.Contains(t, view, weekdayHeader)
	assert.Contains(t, view, "30")
	assert.Contains(t, view, "‹")

	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 2+calendarRows)

	props.Mode = grid.Years
	cv.SetProps(props)
	assert.Contains(t, cv.View(), "2016 - 2027")

	props.Mode = grid.Months
	props.ShortMonths = true
	cv.SetProps(props)
	view = cv.View()
	assert.Contains(t, view, "2024")
	assert.Contains(t, view, "Sep")
	assert.NotContains(t, view, "September")
}

func TestCalendarLinkedHidesArrows(t *testing.T) {
	props := june2024()
	props.Linked = true
	cv, _ := newRecordedView(props)
	assert.NotContains(t, cv.View(), "‹")
}
