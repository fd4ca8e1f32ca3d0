// Package grid turns a display anchor and a view mode into the cells a
// calendar renders, and computes navigation between anchors.
package grid

import (
	"fmt"
	"strings"
	"time"

	"github.com/MikeBiancalana/datekit/internal/datemath"
)

// ViewMode selects what the calendar grid enumerates.
type ViewMode int

const (
	Days ViewMode = iota
	Months
	Years
)

// YearsPerPage is the size of the Years view window. It matches the twelve
// cells of the Months view.
const YearsPerPage = 12

func (v ViewMode) String() string {
	switch v {
	case Days:
		return "days"
	case Months:
		return "months"
	case Years:
		return "years"
	default:
		return "unknown"
	}
}

// ParseViewMode parses "days", "months" or "years".
func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "days", "day", "d":
		return Days, nil
	case "months", "month", "m":
		return Months, nil
	case "years", "year", "y":
		return Years, nil
	}
	return Days, fmt.Errorf("unknown view mode %q (supported: days, months, years)", s)
}

// Anchor is the year and month currently driving the rendered grid.
type Anchor struct {
	Year  int
	Month time.Month
}

// AnchorOf returns the anchor for the month containing d.
func AnchorOf(d datemath.Date) Anchor {
	return Anchor{Year: d.Year, Month: d.Month}
}

// First returns day 1 of the anchor month.
func (a Anchor) First() datemath.Date {
	return datemath.FirstOfMonth(a.Year, a.Month)
}

// AddMonths shifts the anchor by n months, rolling years as needed.
func (a Anchor) AddMonths(n int) Anchor {
	return AnchorOf(datemath.FirstOfMonth(a.Year, a.Month+time.Month(n)))
}

// AddYears shifts the anchor by n years keeping the month.
func (a Anchor) AddYears(n int) Anchor {
	return Anchor{Year: a.Year + n, Month: a.Month}
}

func (a Anchor) String() string {
	return fmt.Sprintf("%04d-%02d", a.Year, int(a.Month))
}

// CellKind tells padding cells apart from the enumerable ones.
type CellKind int

const (
	CellPadding CellKind = iota
	CellDay
	CellMonth
	CellYear
)

// Cell is a single slot of a grid.
type Cell struct {
	Kind  CellKind
	Label string

	// Date is set for CellDay.
	Date datemath.Date
	// Month is set for CellMonth.
	Month time.Month
	// Year is set for CellYear and CellMonth.
	Year int
	// Current marks the month or year cell matching the anchor.
	Current bool
}

// Options tweak labels only; the cell layout never changes.
type Options struct {
	ShortMonths bool
}

// Grid is a renderable layout.
type Grid struct {
	Mode            ViewMode
	Anchor          Anchor
	Title           string
	Leading         int
	Cells           []Cell
	HeaderClickable bool
}

// Columns returns how many cells make up one display row.
func (g Grid) Columns() int {
	if g.Mode == Days {
		return 7
	}
	return 3
}

// DayCells returns only the day cells of a Days grid.
func (g Grid) DayCells() []Cell {
	var out []Cell
	for _, c := range g.Cells {
		if c.Kind == CellDay {
			out = append(out, c)
		}
	}
	return out
}

// Rows splits the cells into display rows. The last row may be short.
func (g Grid) Rows() [][]Cell {
	cols := g.Columns()
	var rows [][]Cell
	for i := 0; i < len(g.Cells); i += cols {
		end := i + cols
		if end > len(g.Cells) {
			end = len(g.Cells)
		}
		rows = append(rows, g.Cells[i:end])
	}
	return rows
}

// DecadeStart returns the first year of the twelve-year window holding year.
func DecadeStart(year int) int {
	q := year / YearsPerPage
	if year%YearsPerPage != 0 && year < 0 {
		q--
	}
	return q * YearsPerPage
}

// Layout computes the grid for anchor in mode.
func Layout(anchor Anchor, mode ViewMode, opts Options) Grid {
	anchor = anchor.AddMonths(0)
	g := Grid{Mode: mode, Anchor: anchor, HeaderClickable: mode != Years}

	switch mode {
	case Months:
		g.Title = fmt.Sprintf("%d", anchor.Year)
		g.Cells = make([]Cell, 0, 12)
		for m := time.January; m <= time.December; m++ {
			g.Cells = append(g.Cells, Cell{
				Kind:    CellMonth,
				Label:   MonthLabel(m, opts.ShortMonths),
				Month:   m,
				Year:    anchor.Year,
				Current: m == anchor.Month,
			})
		}

	case Years:
		start := DecadeStart(anchor.Year)
		g.Title = fmt.Sprintf("%d - %d", start, start+YearsPerPage-1)
		g.Cells = make([]Cell, 0, YearsPerPage)
		for y := start; y < start+YearsPerPage; y++ {
			g.Cells = append(g.Cells, Cell{
				Kind:    CellYear,
				Label:   fmt.Sprintf("%d", y),
				Year:    y,
				Current: y == anchor.Year,
			})
		}

	default:
		g.Mode = Days
		first := anchor.First()
		daysInMonth := datemath.DaysInMonth(anchor.Year, anchor.Month)
		g.Title = fmt.Sprintf("%s %d", anchor.Month, anchor.Year)
		g.Leading = int(first.Weekday())
		g.Cells = make([]Cell, 0, g.Leading+daysInMonth)
		for i := 0; i < g.Leading; i++ {
			g.Cells = append(g.Cells, Cell{Kind: CellPadding})
		}
		for day := 1; day <= daysInMonth; day++ {
			g.Cells = append(g.Cells, Cell{
				Kind:  CellDay,
				Label: fmt.Sprintf("%d", day),
				Date:  datemath.Date{Year: anchor.Year, Month: anchor.Month, Day: day},
				Year:  anchor.Year,
				Month: anchor.Month,
			})
		}
	}

	return g
}

// MonthLabel returns the month name, truncated to three letters when short.
func MonthLabel(m time.Month, short bool) string {
	name := m.String()
	if short {
		return name[:3]
	}
	return name
}
