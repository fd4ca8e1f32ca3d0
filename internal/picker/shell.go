package picker

import (
	"github.com/MikeBiancalana/datekit/internal/logger"
	"github.com/MikeBiancalana/datekit/internal/perf"
	"github.com/MikeBiancalana/datekit/internal/selection"
)

// Shell owns a picker State and reports changes to its host through
// synchronous callbacks. It is not safe for concurrent use; UI events are
// dispatched from a single goroutine.
type Shell struct {
	state State

	// OnChange receives every new selection value.
	OnChange func(selection.Selection)
	// OnOpenChange receives popover open/close transitions.
	OnOpenChange func(open bool)

	events *perf.Counters
}

// NewShell wraps an initial state.
func NewShell(initial State) *Shell {
	if initial.Value == nil {
		initial.Value = selection.Empty(initial.Kind)
	}
	return &Shell{state: initial, events: perf.NewCounters()}
}

// State returns a copy of the current state.
func (s *Shell) State() State {
	return s.state
}

// Events returns the per-event dispatch counters.
func (s *Shell) Events() *perf.Counters {
	return s.events
}

// Dispatch applies ev and fires callbacks for its effects.
func (s *Shell) Dispatch(ev Event) Effect {
	name := EventName(ev)
	s.events.Inc(name)

	next, eff := Reduce(s.state, ev)
	s.state = next

	if eff != (Effect{}) {
		logger.Debug("picker_event",
			"id", next.Props.ID,
			"event", name,
			"kind", next.Kind.String(),
			"value", selection.Format(next.Value),
			"phase", next.Phase.String(),
			"open", next.Open,
		)
	}

	if eff.Changed && s.OnChange != nil {
		s.OnChange(next.Value)
	}
	if (eff.Opened || eff.Closed) && s.OnOpenChange != nil {
		s.OnOpenChange(next.Open)
	}
	return eff
}
