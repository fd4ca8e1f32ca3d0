package picker

import (
	"fmt"
	"time"

	"github.com/MikeBiancalana/datekit/internal/datemath"
	"github.com/MikeBiancalana/datekit/internal/grid"
	"github.com/MikeBiancalana/datekit/internal/selection"
)

// Event is something the user (or the host) did to the picker.
type Event interface {
	event()
}

// Open opens the popover. Now seeds the anchor when there is no value.
type Open struct{ Now time.Time }

// Close closes the popover without changing the value.
type Close struct{}

// SelectDate is a click on a day cell.
type SelectDate struct{ Date datemath.Date }

// HoverDate moves the pointer (or keyboard cursor) onto a day cell.
type HoverDate struct{ Date datemath.Date }

// HoverLeave is the pointer leaving the calendar.
type HoverLeave struct{}

// Navigate is a prev/next click on a panel header.
type Navigate struct {
	Panel int
	Dir   grid.Direction
}

// SetAnchor moves the display to a given month, e.g. when keyboard movement
// crosses a month edge.
type SetAnchor struct {
	Panel  int
	Anchor grid.Anchor
}

// DrillUp is a click on a panel title.
type DrillUp struct{ Panel int }

// PickMonth is a click on a month cell in Months view.
type PickMonth struct {
	Panel int
	Month time.Month
}

// PickYear is a click on a year cell in Years view.
type PickYear struct {
	Panel int
	Year  int
}

// Today is the "Today" action.
type Today struct{ Now time.Time }

// Clear is the "Clear" action.
type Clear struct{}

// ApplyPreset commits a preset range in one step.
type ApplyPreset struct{ Preset datemath.Preset }

// SetValue replaces the value from the host side (controlled component).
type SetValue struct{ Value selection.Selection }

func (Open) event()        {}
func (Close) event()       {}
func (SelectDate) event()  {}
func (HoverDate) event()   {}
func (HoverLeave) event()  {}
func (Navigate) event()    {}
func (SetAnchor) event()   {}
func (DrillUp) event()     {}
func (PickMonth) event()   {}
func (PickYear) event()    {}
func (Today) event()       {}
func (Clear) event()       {}
func (ApplyPreset) event() {}
func (SetValue) event()    {}

// EventName returns a short name for logging.
func EventName(ev Event) string {
	switch ev.(type) {
	case Open:
		return "open"
	case Close:
		return "close"
	case SelectDate:
		return "select"
	case HoverDate:
		return "hover"
	case HoverLeave:
		return "hover-leave"
	case Navigate:
		return "navigate"
	case SetAnchor:
		return "set-anchor"
	case DrillUp:
		return "drill-up"
	case PickMonth:
		return "pick-month"
	case PickYear:
		return "pick-year"
	case Today:
		return "today"
	case Clear:
		return "clear"
	case ApplyPreset:
		return "preset"
	case SetValue:
		return "set-value"
	}
	return fmt.Sprintf("%T", ev)
}
