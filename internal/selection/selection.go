// Package selection holds the calendar selection values and the state
// machine that turns clicks into the next selection.
package selection

import (
	"github.com/MikeBiancalana/datekit/internal/datemath"
)

// Kind distinguishes single-date pickers from range pickers.
type Kind int

const (
	KindSingle Kind = iota
	KindRange
)

func (k Kind) String() string {
	if k == KindRange {
		return "range"
	}
	return "single"
}

// Selection is either a Single or a Range.
type Selection interface {
	Kind() Kind
	IsEmpty() bool
	sealed()
}

// Single is a single-date selection. A zero Date means nothing is selected.
type Single struct {
	Date datemath.Date
}

func (Single) Kind() Kind { return KindSingle }

func (s Single) IsEmpty() bool { return s.Date.IsZero() }

func (Single) sealed() {}

// Range is a date-range selection. Start set with End zero is an open range
// waiting for its second click.
type Range struct {
	Start datemath.Date
	End   datemath.Date
}

func (Range) Kind() Kind { return KindRange }

func (r Range) IsEmpty() bool { return r.Start.IsZero() && r.End.IsZero() }

func (Range) sealed() {}

// IsOpen reports whether the range has a start but no end yet.
func (r Range) IsOpen() bool {
	return !r.Start.IsZero() && r.End.IsZero()
}

// IsComplete reports whether both ends are set.
func (r Range) IsComplete() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}

// Normalize repairs a range with an end but no start by promoting the end.
func (r Range) Normalize() Range {
	if r.Start.IsZero() && !r.End.IsZero() {
		return Range{Start: r.End}
	}
	return r
}

// Effective returns the range to display: End falls back to hover while the
// range is open, and the pair is ordered. The stored range is never changed.
// ok is false when there is nothing to display.
func (r Range) Effective(hover datemath.Date) (start, end datemath.Date, ok bool) {
	r = r.Normalize()
	start, end = r.Start, r.End
	if end.IsZero() {
		end = hover
	}
	if start.IsZero() {
		return datemath.Date{}, datemath.Date{}, false
	}
	if end.IsZero() {
		return start, datemath.Date{}, true
	}
	if start.After(end) {
		start, end = end, start
	}
	return start, end, true
}

// Empty returns the empty selection of kind k.
func Empty(k Kind) Selection {
	if k == KindRange {
		return Range{}
	}
	return Single{}
}

// Clear resets sel to the empty value of the same kind. Clearing an empty
// selection is a no-op.
func Clear(sel Selection) Selection {
	if sel == nil {
		return Single{}
	}
	return Empty(sel.Kind())
}

// Equal compares two selections by value.
func Equal(a, b Selection) bool {
	switch av := a.(type) {
	case Single:
		bv, ok := b.(Single)
		return ok && av.Date == bv.Date
	case Range:
		bv, ok := b.(Range)
		return ok && av.Start == bv.Start && av.End == bv.End
	}
	return a == nil && b == nil
}

// Format renders sel for display.
func Format(sel Selection) string {
	switch v := sel.(type) {
	case Single:
		return datemath.FormatDate(v.Date)
	case Range:
		return datemath.FormatRange(v.Start, v.End)
	}
	return ""
}
