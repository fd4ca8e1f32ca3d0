// Package picker is the state owner behind the date and range pickers: it
// keeps the popover lifecycle, the browsing anchor, the per-panel view modes,
// the hover position and the selection, and evolves them with a pure reducer.
package picker

import (
	"github.com/MikeBiancalana/datekit/internal/datemath"
	"github.com/MikeBiancalana/datekit/internal/grid"
	"github.com/MikeBiancalana/datekit/internal/selection"
	"github.com/rs/xid"
)

// PanelCount is the number of calendar panels a range picker renders.
const PanelCount = 2

// Props are passed through to the rendering layer untouched.
type Props struct {
	ID       string
	Label    string
	Disabled bool
	// Error is displayed verbatim below the control.
	Error string
}

// WithDefaults fills in a generated ID when none was given.
func (p Props) WithDefaults() Props {
	if p.ID == "" {
		p.ID = "datekit-" + xid.New().String()
	}
	return p
}

// State is the complete picker state. It is a value: Reduce never mutates
// the state it is given.
type State struct {
	Props  Props
	Kind   selection.Kind
	Open   bool
	Anchor grid.Anchor
	// Views holds each panel's view mode. Single pickers only use Views[0].
	Views [PanelCount]grid.ViewMode
	Value selection.Selection
	Phase selection.Phase
	Hover datemath.Date
}

// NewSingle returns a closed single-date picker holding value.
func NewSingle(props Props, value datemath.Date) State {
	return State{
		Props: props.WithDefaults(),
		Kind:  selection.KindSingle,
		Value: selection.Single{Date: value},
		Phase: selection.AwaitingStart,
	}
}

// NewRange returns a closed range picker holding value.
func NewRange(props Props, value selection.Range) State {
	value = value.Normalize()
	return State{
		Props: props.WithDefaults(),
		Kind:  selection.KindRange,
		Value: value,
		Phase: selection.PhaseFor(value),
	}
}

// Panels returns how many calendar panels the state renders.
func (s State) Panels() int {
	if s.Kind == selection.KindRange {
		return PanelCount
	}
	return 1
}

// PanelAnchor returns the anchor rendered by panel. The second range panel is
// always one month after the first.
func (s State) PanelAnchor(panel int) grid.Anchor {
	if panel <= 0 {
		return s.Anchor
	}
	return s.Anchor.AddMonths(panel)
}

// Single returns the selected date of a single picker.
func (s State) Single() datemath.Date {
	if v, ok := s.Value.(selection.Single); ok {
		return v.Date
	}
	return datemath.Date{}
}

// Range returns the selected range of a range picker.
func (s State) Range() selection.Range {
	if v, ok := s.Value.(selection.Range); ok {
		return v
	}
	return selection.Range{}
}

// seedAnchor picks the month to show when the popover opens.
func (s State) seedAnchor(now datemath.Date) grid.Anchor {
	switch v := s.Value.(type) {
	case selection.Single:
		if !v.Date.IsZero() {
			return grid.AnchorOf(v.Date)
		}
	case selection.Range:
		if r := v.Normalize(); !r.Start.IsZero() {
			return grid.AnchorOf(r.Start)
		}
	}
	return grid.AnchorOf(now)
}
