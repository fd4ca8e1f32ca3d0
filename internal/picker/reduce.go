package picker

import (
	"github.com/MikeBiancalana/datekit/internal/datemath"
	"github.com/MikeBiancalana/datekit/internal/grid"
	"github.com/MikeBiancalana/datekit/internal/selection"
)

// Effect reports what a reduction did beyond the new state.
type Effect struct {
	// Changed is set when the selection value changed.
	Changed bool
	// Opened and Closed report popover transitions.
	Opened bool
	Closed bool
}

// Reduce returns the state after ev. It is pure: the same inputs always give
// the same output and s is never modified.
func Reduce(s State, ev Event) (State, Effect) {
	if s.Value == nil {
		s.Value = selection.Empty(s.Kind)
	}

	switch e := ev.(type) {
	case Open:
		if s.Open || s.Props.Disabled {
			return s, Effect{}
		}
		s.Open = true
		s.Anchor = s.seedAnchor(datemath.Today(e.Now))
		s.Views = [PanelCount]grid.ViewMode{grid.Days, grid.Days}
		s.Hover = datemath.Date{}
		s.Phase = selection.PhaseFor(s.Value)
		return s, Effect{Opened: true}

	case Close:
		if !s.Open {
			return s, Effect{}
		}
		s.Open = false
		s.Hover = datemath.Date{}
		return s, Effect{Closed: true}

	case SelectDate:
		if !s.Open || e.Date.IsZero() {
			return s, Effect{}
		}
		tr := selection.Click(s.Value, s.Phase, e.Date)
		eff := Effect{Changed: !selection.Equal(s.Value, tr.Selection)}
		s.Value = tr.Selection
		s.Phase = tr.Phase
		if tr.Committed {
			s.Open = false
			s.Hover = datemath.Date{}
			eff.Closed = true
		}
		return s, eff

	case HoverDate:
		if s.Open {
			s.Hover = e.Date
		}
		return s, Effect{}

	case HoverLeave:
		s.Hover = datemath.Date{}
		return s, Effect{}

	case Navigate:
		if !s.validPanel(e.Panel) {
			return s, Effect{}
		}
		mode := s.Views[e.Panel]
		if e.Panel > 0 && mode == grid.Days {
			// the linked panel follows panel 0
			return s, Effect{}
		}
		s.Anchor = grid.Shift(s.PanelAnchor(e.Panel), mode, e.Dir).AddMonths(-e.Panel)
		return s, Effect{}

	case SetAnchor:
		if !s.validPanel(e.Panel) {
			return s, Effect{}
		}
		s.Anchor = e.Anchor.AddMonths(-e.Panel)
		return s, Effect{}

	case DrillUp:
		if !s.validPanel(e.Panel) {
			return s, Effect{}
		}
		if next, ok := grid.DrillUp(s.Views[e.Panel]); ok {
			s.Views[e.Panel] = next
		}
		return s, Effect{}

	case PickMonth:
		if !s.validPanel(e.Panel) || s.Views[e.Panel] != grid.Months {
			return s, Effect{}
		}
		anchor, mode := grid.SelectMonth(s.PanelAnchor(e.Panel), e.Month)
		s.Anchor = anchor.AddMonths(-e.Panel)
		s.Views[e.Panel] = mode
		return s, Effect{}

	case PickYear:
		if !s.validPanel(e.Panel) || s.Views[e.Panel] != grid.Years {
			return s, Effect{}
		}
		anchor, mode := grid.SelectYear(s.PanelAnchor(e.Panel), e.Year)
		s.Anchor = anchor.AddMonths(-e.Panel)
		s.Views[e.Panel] = mode
		return s, Effect{}

	case Today:
		today := datemath.Today(e.Now)
		s.Anchor = grid.AnchorOf(today)
		s.Views = [PanelCount]grid.ViewMode{grid.Days, grid.Days}
		if s.Kind != selection.KindSingle {
			return s, Effect{}
		}
		next := selection.Single{Date: today}
		eff := Effect{Changed: !selection.Equal(s.Value, next), Closed: s.Open}
		s.Value = next
		s.Phase = selection.AwaitingStart
		s.Open = false
		s.Hover = datemath.Date{}
		return s, eff

	case Clear:
		next := selection.Clear(s.Value)
		eff := Effect{Changed: !selection.Equal(s.Value, next)}
		s.Value = next
		s.Phase = selection.AwaitingStart
		s.Hover = datemath.Date{}
		return s, eff

	case ApplyPreset:
		if s.Kind != selection.KindRange || e.Preset.Start.IsZero() {
			return s, Effect{}
		}
		next := selection.Range{Start: e.Preset.Start, End: e.Preset.End}.Normalize()
		eff := Effect{Changed: true, Closed: s.Open}
		s.Value = next
		s.Phase = selection.PhaseFor(next)
		s.Anchor = grid.AnchorOf(next.Start)
		s.Open = false
		s.Hover = datemath.Date{}
		return s, eff

	case SetValue:
		if e.Value == nil || e.Value.Kind() != s.Kind {
			return s, Effect{}
		}
		if r, ok := e.Value.(selection.Range); ok {
			e.Value = r.Normalize()
		}
		s.Value = e.Value
		s.Phase = selection.PhaseFor(e.Value)
		return s, Effect{}
	}

	return s, Effect{}
}

func (s State) validPanel(panel int) bool {
	return panel >= 0 && panel < s.Panels()
}
