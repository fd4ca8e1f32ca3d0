package selection

import (
	"time"

	"github.com/MikeBiancalana/datekit/internal/datemath"
)

// CellState is the visual classification of a day cell.
type CellState struct {
	Selected   bool
	RangeStart bool
	RangeEnd   bool
	InRange    bool
	// SingleDay is set when the effective range starts and ends on the same day.
	SingleDay bool
	// Fill draws the in-range bar; false for single-day ranges.
	Fill bool
	// RoundLeft and RoundRight close the bar at the range ends and at week
	// row edges, since the bar is drawn one week row at a time.
	RoundLeft  bool
	RoundRight bool
	// Preview is set when the classification depends on the hovered date.
	Preview bool
}

// Classify computes the state of cell under sel with the pointer on hover.
func Classify(sel Selection, hover, cell datemath.Date) CellState {
	switch v := sel.(type) {
	case Single:
		return CellState{Selected: !v.Date.IsZero() && datemath.IsSameDay(cell, v.Date)}
	case Range:
		return classifyRange(v, hover, cell)
	}
	return CellState{}
}

func classifyRange(r Range, hover, cell datemath.Date) CellState {
	start, end, ok := r.Effective(hover)
	if !ok {
		return CellState{}
	}

	var st CellState
	if end.IsZero() {
		st.RangeStart = datemath.IsSameDay(cell, start)
		st.Selected = st.RangeStart
		return st
	}

	st.RangeStart = datemath.IsSameDay(cell, start)
	st.RangeEnd = datemath.IsSameDay(cell, end)
	st.InRange = !cell.Before(start) && !cell.After(end)
	st.Selected = st.RangeStart || st.RangeEnd
	st.SingleDay = datemath.IsSameDay(start, end)
	st.Fill = st.InRange && !st.SingleDay

	if st.Fill {
		wd := cell.Weekday()
		st.RoundLeft = st.RangeStart || wd == time.Sunday
		st.RoundRight = st.RangeEnd || wd == time.Saturday
	}

	st.Preview = st.InRange && r.Normalize().End.IsZero() && !hover.IsZero()
	return st
}

// ClassifyAll classifies every date in cells, keyed by date.
func ClassifyAll(sel Selection, hover datemath.Date, cells []datemath.Date) map[datemath.Date]CellState {
	out := make(map[datemath.Date]CellState, len(cells))
	for _, c := range cells {
		out[c] = Classify(sel, hover, c)
	}
	return out
}
