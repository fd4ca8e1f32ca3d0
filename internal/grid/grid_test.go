package grid

import (
	"testing"
	"time"

	"github.com/MikeBiancalana/datekit/internal/datemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutDaysMonthLength(t *testing.T) {
	for _, year := range []int{2023, 2024} {
		for m := time.January; m <= time.December; m++ {
			g := Layout(Anchor{Year: year, Month: m}, Days, Options{})
			want := time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
			assert.Len(t, g.DayCells(), want, "%d-%02d", year, m)
		}
	}

	assert.Len(t, Layout(Anchor{2024, time.February}, Days, Options{}).DayCells(), 29)
	assert.Len(t, Layout(Anchor{2023, time.February}, Days, Options{}).DayCells(), 28)
	assert.Len(t, Layout(Anchor{2024, time.April}, Days, Options{}).DayCells(), 30)
}

func TestLayoutDaysPadding(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		g := Layout(Anchor{Year: 2024, Month: m}, Days, Options{})
		first := time.Date(2024, m, 1, 0, 0, 0, 0, time.UTC).Weekday()

		assert.Equal(t, int(first), g.Leading, "month %s", m)
		for i := 0; i < g.Leading; i++ {
			assert.Equal(t, CellPadding, g.Cells[i].Kind)
		}
		assert.Equal(t, CellDay, g.Cells[g.Leading].Kind)
		assert.Equal(t, 1, g.Cells[g.Leading].Date.Day)
	}
}

func TestLayoutDaysOrderAndTitle(t *testing.T) {
	g := Layout(Anchor{Year: 2024, Month: time.September}, Days, Options{})

	assert.Equal(t, "September 2024", g.Title)
	assert.True(t, g.HeaderClickable)
	assert.Equal(t, 0, g.Leading, "Sep 1 2024 is a Sunday")

	days := g.DayCells()
	for i, c := range days {
		assert.Equal(t, i+1, c.Date.Day)
		assert.Equal(t, fmtInt(i+1), c.Label)
	}
	assert.Equal(t, 7, g.Columns())
	rows := g.Rows()
	require.Len(t, rows, 5)
	assert.Len(t, rows[4], 2)
}

func TestLayoutMonths(t *testing.T) {
	g := Layout(Anchor{Year: 2024, Month: time.March}, Months, Options{})

	require.Len(t, g.Cells, 12)
	assert.Equal(t, "2024", g.Title)
	assert.True(t, g.HeaderClickable)
	assert.Equal(t, "January", g.Cells[0].Label)
	assert.True(t, g.Cells[2].Current)
	assert.False(t, g.Cells[3].Current)

	short := Layout(Anchor{Year: 2024, Month: time.March}, Months, Options{ShortMonths: true})
	assert.Equal(t, "Sep", short.Cells[8].Label)
}

func TestLayoutYearsWindow(t *testing.T) {
	for _, year := range []int{1, 11, 12, 2015, 2016, 2024, 2027, 2028, 9999} {
		g := Layout(Anchor{Year: year, Month: time.June}, Years, Options{})
		start := (year / 12) * 12

		require.Len(t, g.Cells, 12, "year %d", year)
		assert.Equal(t, start, g.Cells[0].Year)
		assert.Equal(t, start+11, g.Cells[11].Year)
		assert.False(t, g.HeaderClickable)
	}

	g := Layout(Anchor{Year: 2024, Month: time.June}, Years, Options{})
	assert.Equal(t, "2016 - 2027", g.Title)
	assert.True(t, g.Cells[8].Current)
}

func TestDecadeStartNegativeYears(t *testing.T) {
	assert.Equal(t, -12, DecadeStart(-1))
	assert.Equal(t, -12, DecadeStart(-12))
	assert.Equal(t, -24, DecadeStart(-13))
	assert.Equal(t, 0, DecadeStart(0))
}

func TestLayoutNormalisesAnchor(t *testing.T) {
	g := Layout(Anchor{Year: 2024, Month: 13}, Days, Options{})
	assert.Equal(t, Anchor{Year: 2025, Month: time.January}, g.Anchor)
	assert.Equal(t, datemath.MustValid(2025, time.January, 1), g.DayCells()[0].Date)
}

func TestParseViewMode(t *testing.T) {
	for in, want := range map[string]ViewMode{"days": Days, "Months": Months, " years ": Years, "y": Years} {
		got, err := ParseViewMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseViewMode("weeks")
	assert.Error(t, err)
}

func fmtInt(n int) string {
	return time.Date(2000, 1, n, 0, 0, 0, 0, time.UTC).Format("2")
}
