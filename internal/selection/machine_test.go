package selection

import (
	"testing"
	"time"

	"github.com/MikeBiancalana/datekit/internal/datemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) datemath.Date {
	return datemath.MustValid(y, m, d)
}

func TestClickRangeTwoClickCycle(t *testing.T) {
	var sel Selection = Range{}
	phase := AwaitingStart

	tr := Click(sel, phase, day(2024, time.March, 5))
	assert.Equal(t, Range{Start: day(2024, time.March, 5)}, tr.Selection)
	assert.Equal(t, AwaitingEnd, tr.Phase)
	assert.False(t, tr.Committed)

	tr = Click(tr.Selection, tr.Phase, day(2024, time.March, 10))
	assert.Equal(t, Range{Start: day(2024, time.March, 5), End: day(2024, time.March, 10)}, tr.Selection)
	assert.Equal(t, AwaitingStart, tr.Phase)
	assert.True(t, tr.Committed)

	tr = Click(tr.Selection, tr.Phase, day(2024, time.March, 1))
	assert.Equal(t, Range{Start: day(2024, time.March, 1)}, tr.Selection)
	assert.Equal(t, AwaitingEnd, tr.Phase)
	assert.False(t, tr.Committed)
}

func TestClickEarlierThanStartRestarts(t *testing.T) {
	open := Range{Start: day(2024, time.March, 5)}

	tr := Click(open, AwaitingEnd, day(2024, time.March, 1))
	assert.Equal(t, Range{Start: day(2024, time.March, 1)}, tr.Selection)
	assert.Equal(t, AwaitingEnd, tr.Phase)
	assert.False(t, tr.Committed)
}

func TestClickSameDayClosesRange(t *testing.T) {
	open := Range{Start: day(2024, time.March, 5)}

	tr := Click(open, AwaitingEnd, day(2024, time.March, 5))
	assert.Equal(t, Range{Start: day(2024, time.March, 5), End: day(2024, time.March, 5)}, tr.Selection)
	assert.True(t, tr.Committed)
}

func TestClickAwaitingEndWithoutStartSetsStart(t *testing.T) {
	tr := Click(Range{}, AwaitingEnd, day(2024, time.March, 5))
	assert.Equal(t, Range{Start: day(2024, time.March, 5)}, tr.Selection)
	assert.Equal(t, AwaitingEnd, tr.Phase)
}

func TestClickSingleAlwaysReplaces(t *testing.T) {
	tr := Click(Single{}, AwaitingStart, day(2024, time.March, 5))
	assert.Equal(t, Single{Date: day(2024, time.March, 5)}, tr.Selection)
	assert.True(t, tr.Committed)

	tr = Click(tr.Selection, AwaitingEnd, day(2023, time.January, 1))
	assert.Equal(t, Single{Date: day(2023, time.January, 1)}, tr.Selection)
	assert.Equal(t, AwaitingStart, tr.Phase)
}

func TestPhaseFor(t *testing.T) {
	assert.Equal(t, AwaitingStart, PhaseFor(Single{Date: day(2024, time.March, 5)}))
	assert.Equal(t, AwaitingStart, PhaseFor(Range{}))
	assert.Equal(t, AwaitingEnd, PhaseFor(Range{Start: day(2024, time.March, 5)}))
	assert.Equal(t, AwaitingStart, PhaseFor(Range{Start: day(2024, time.March, 5), End: day(2024, time.March, 6)}))
}

func TestClearIsIdempotent(t *testing.T) {
	r := Range{Start: day(2024, time.March, 5), End: day(2024, time.March, 10)}

	once := Clear(r)
	twice := Clear(once)
	require.Equal(t, Range{}, once)
	assert.Equal(t, once, twice)
	assert.True(t, twice.IsEmpty())

	assert.Equal(t, Single{}, Clear(Clear(Single{Date: day(2024, time.March, 5)})))
}

func TestRangeNormalize(t *testing.T) {
	r := Range{End: day(2024, time.March, 5)}
	assert.Equal(t, Range{Start: day(2024, time.March, 5)}, r.Normalize())
	assert.True(t, r.Normalize().IsOpen())
}

func TestEqualAndFormat(t *testing.T) {
	a := Range{Start: day(2024, time.March, 5)}
	assert.True(t, Equal(a, Range{Start: day(2024, time.March, 5)}))
	assert.False(t, Equal(a, Single{Date: day(2024, time.March, 5)}))
	assert.Equal(t, "Mar 5, 2024 -", Format(a))
	assert.Equal(t, "", Format(Single{}))
}
