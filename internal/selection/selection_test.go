package selection

import (
	"testing"
	"time"

	"github.com/MikeBiancalana/datekit/internal/datemath"
	"github.com/stretchr/testify/assert"
)

var (
	mar5  = datemath.MustValid(2024, time.March, 5)
	mar10 = datemath.MustValid(2024, time.March, 10)
)

func TestRangeStates(t *testing.T) {
	assert.True(t, Range{}.IsEmpty())
	assert.False(t, Range{}.IsOpen())

	open := Range{Start: mar5}
	assert.True(t, open.IsOpen())
	assert.False(t, open.IsComplete())

	full := Range{Start: mar5, End: mar10}
	assert.True(t, full.IsComplete())
	assert.False(t, full.IsOpen())
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Range{Start: mar10}, Range{End: mar10}.Normalize())
	assert.Equal(t, Range{Start: mar5, End: mar10}, Range{Start: mar5, End: mar10}.Normalize())
	assert.Equal(t, Range{}, Range{}.Normalize())
}

func TestEffective(t *testing.T) {
	tests := []struct {
		name      string
		r         Range
		hover     datemath.Date
		wantStart datemath.Date
		wantEnd   datemath.Date
		wantOK    bool
	}{
		{"empty", Range{}, mar10, datemath.Date{}, datemath.Date{}, false},
		{"open without hover", Range{Start: mar5}, datemath.Date{}, mar5, datemath.Date{}, true},
		{"hover extends", Range{Start: mar5}, mar10, mar5, mar10, true},
		{"hover before start is ordered", Range{Start: mar10}, mar5, mar5, mar10, true},
		{"complete ignores hover", Range{Start: mar5, End: mar10}, datemath.MustValid(2024, time.April, 1), mar5, mar10, true},
		{"end only", Range{End: mar10}, datemath.Date{}, mar10, datemath.Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := tt.r.Effective(tt.hover)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestClearAndEqual(t *testing.T) {
	assert.Equal(t, Single{}, Clear(Single{Date: mar5}))
	assert.Equal(t, Range{}, Clear(Range{Start: mar5, End: mar10}))
	assert.Equal(t, Range{}, Clear(Range{}))
	assert.Equal(t, Single{}, Clear(nil))

	assert.True(t, Equal(Single{Date: mar5}, Single{Date: mar5}))
	assert.False(t, Equal(Single{Date: mar5}, Range{Start: mar5}))
	assert.True(t, Equal(Range{Start: mar5}, Range{Start: mar5}))
	assert.False(t, Equal(Range{Start: mar5}, Range{Start: mar5, End: mar10}))
	assert.True(t, Equal(nil, nil))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "Mar 5, 2024", Format(Single{Date: mar5}))
	assert.Equal(t, "", Format(Single{}))
	assert.Equal(t, "Mar 5, 2024 - Mar 10, 2024", Format(Range{Start: mar5, End: mar10}))
	assert.Equal(t, "Mar 5, 2024 -", Format(Range{Start: mar5}))
	assert.Equal(t, "", Format(Range{}))
	assert.Equal(t, "", Format(nil))
}

func TestEmptyKinds(t *testing.T) {
	assert.Equal(t, KindSingle, Empty(KindSingle).Kind())
	assert.Equal(t, KindRange, Empty(KindRange).Kind())
	assert.Equal(t, "range", KindRange.String())
	assert.Equal(t, "single", KindSingle.String())
}
