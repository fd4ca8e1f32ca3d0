package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShift(t *testing.T) {
	tests := []struct {
		name   string
		anchor Anchor
		mode   ViewMode
		dir    Direction
		want   Anchor
	}{
		{"next month", Anchor{2024, time.January}, Days, Next, Anchor{2024, time.February}},
		{"prev month across year", Anchor{2024, time.January}, Days, Prev, Anchor{2023, time.December}},
		{"next month across year", Anchor{2023, time.December}, Days, Next, Anchor{2024, time.January}},
		{"next year", Anchor{2024, time.March}, Months, Next, Anchor{2025, time.March}},
		{"prev year", Anchor{2024, time.March}, Months, Prev, Anchor{2023, time.March}},
		{"next decade page", Anchor{2024, time.March}, Years, Next, Anchor{2036, time.March}},
		{"prev decade page", Anchor{2024, time.March}, Years, Prev, Anchor{2012, time.March}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Shift(tt.anchor, tt.mode, tt.dir))
		})
	}
}

func TestShiftNeverOverflowsDay(t *testing.T) {
	// Navigating back from a month whose selection sits on the 31st
	a := Anchor{2024, time.March}
	for i := 0; i < 24; i++ {
		a = Shift(a, Days, Prev)
		g := Layout(a, Days, Options{})
		assert.Equal(t, a.Month, g.DayCells()[0].Date.Month)
	}
	assert.Equal(t, Anchor{2022, time.March}, a)
}

func TestShiftUnbounded(t *testing.T) {
	a := Anchor{Year: 1, Month: time.January}
	a = Shift(a, Years, Prev)
	assert.Equal(t, -11, a.Year)
	g := Layout(a, Years, Options{})
	assert.Equal(t, -12, g.Cells[0].Year)
}

func TestDrillUp(t *testing.T) {
	next, ok := DrillUp(Days)
	assert.True(t, ok)
	assert.Equal(t, Months, next)

	next, ok = DrillUp(Months)
	assert.True(t, ok)
	assert.Equal(t, Years, next)

	next, ok = DrillUp(Years)
	assert.False(t, ok)
	assert.Equal(t, Years, next)
}

func TestDrillDown(t *testing.T) {
	anchor, mode := SelectYear(Anchor{2024, time.May}, 2031)
	assert.Equal(t, Anchor{2031, time.May}, anchor)
	assert.Equal(t, Months, mode)

	anchor, mode = SelectMonth(anchor, time.November)
	assert.Equal(t, Anchor{2031, time.November}, anchor)
	assert.Equal(t, Days, mode)
}
