package selection

import (
	"github.com/MikeBiancalana/datekit/internal/datemath"
)

// Phase is the range picker's position in the two-click cycle.
type Phase int

const (
	AwaitingStart Phase = iota
	AwaitingEnd
)

func (p Phase) String() string {
	if p == AwaitingEnd {
		return "awaiting-end"
	}
	return "awaiting-start"
}

// PhaseFor returns the phase implied by a selection: an open range waits for
// its end, everything else for a start.
func PhaseFor(sel Selection) Phase {
	if r, ok := sel.(Range); ok && r.IsOpen() {
		return AwaitingEnd
	}
	return AwaitingStart
}

// Transition is the outcome of a click.
type Transition struct {
	Selection Selection
	Phase     Phase
	// Committed is true when the click produced a final value: any single
	// pick, or the second click of a range.
	Committed bool
}

// Click computes the selection after the user clicks d.
//
// Single mode replaces the value. Range mode alternates between setting the
// start and setting the end; clicking before the current start while waiting
// for the end starts a new range at d instead of swapping.
func Click(sel Selection, phase Phase, d datemath.Date) Transition {
	r, isRange := sel.(Range)
	if !isRange {
		return Transition{Selection: Single{Date: d}, Phase: AwaitingStart, Committed: true}
	}

	r = r.Normalize()
	if phase == AwaitingStart || r.Start.IsZero() || d.Before(r.Start) {
		return Transition{Selection: Range{Start: d}, Phase: AwaitingEnd}
	}

	return Transition{
		Selection: Range{Start: r.Start, End: d},
		Phase:     AwaitingStart,
		Committed: true,
	}
}
