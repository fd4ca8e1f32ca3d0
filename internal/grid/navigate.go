package grid

import "time"

// Direction of a prev/next navigation.
type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

// Shift moves the anchor one unit of the view's granularity: a month in Days,
// a year in Months, twelve years in Years. Anchors always stay on day 1, so a
// Jan 31 selection never turns into an invalid Feb 31.
func Shift(anchor Anchor, mode ViewMode, dir Direction) Anchor {
	switch mode {
	case Months:
		return anchor.AddYears(int(dir))
	case Years:
		return anchor.AddYears(int(dir) * YearsPerPage)
	default:
		return anchor.AddMonths(int(dir))
	}
}

// DrillUp returns the coarser view reached by clicking the header. Years is
// terminal and reports false.
func DrillUp(mode ViewMode) (ViewMode, bool) {
	switch mode {
	case Days:
		return Months, true
	case Months:
		return Years, true
	default:
		return mode, false
	}
}

// SelectMonth handles a month cell pick in Months view.
func SelectMonth(anchor Anchor, month time.Month) (Anchor, ViewMode) {
	return Anchor{Year: anchor.Year, Month: month}.AddMonths(0), Days
}

// SelectYear handles a year cell pick in Years view.
func SelectYear(anchor Anchor, year int) (Anchor, ViewMode) {
	return Anchor{Year: year, Month: anchor.Month}, Months
}
