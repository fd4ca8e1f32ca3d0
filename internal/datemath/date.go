// Package datemath provides wall-clock calendar dates and the pure helpers the
// calendar widgets build on: comparison, month arithmetic, formatting and
// preset ranges.
package datemath

import (
	"fmt"
	"time"

	"zombiezen.com/go/gregorian"
)

// Date is a wall-clock calendar day with no time-of-day or timezone.
// The zero value means "no date". Calendar arithmetic goes through
// gregorian.Date; the fields stay exported so dates work as map keys and
// literals.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New builds a date, normalising out-of-range values
// (New(2024, time.February, 30) is March 1, 2024).
func New(year int, month time.Month, day int) Date {
	return FromGregorian(gregorian.NewDate(year, month, day))
}

// FromGregorian converts g. The zero gregorian.Date is the zero Date.
func FromGregorian(g gregorian.Date) Date {
	if g == (gregorian.Date{}) {
		return Date{}
	}
	return Date{Year: g.Year(), Month: g.Month(), Day: g.Day()}
}

// Gregorian returns d as a gregorian.Date.
func (d Date) Gregorian() gregorian.Date {
	if d.IsZero() {
		return gregorian.Date{}
	}
	return gregorian.NewDate(d.Year, d.Month, d.Day)
}

// FromTime returns the calendar day of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return New(y, m, d)
}

// Today returns the calendar day of now.
func Today(now time.Time) Date {
	return FromTime(now)
}

// IsZero reports whether d is the "no date" value.
func (d Date) IsZero() bool {
	return d.Month == 0
}

// Time returns midnight of d in loc. A nil loc means UTC.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Weekday returns the day of the week, Sunday being 0.
func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return Compare(d, other) < 0
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return Compare(d, other) > 0
}

// String returns the ISO form, or "" for the zero date.
func (d Date) String() string {
	return FormatISO(d)
}

// IsSameDay reports whether a and b fall on the same calendar day.
func IsSameDay(a, b Date) bool {
	return a.Year == b.Year && a.Month == b.Month && a.Day == b.Day
}

// Compare returns -1, 0 or +1 depending on whether a is before, on, or after b.
func Compare(a, b Date) int {
	switch {
	case a.Year != b.Year:
		return sign(a.Year - b.Year)
	case a.Month != b.Month:
		return sign(int(a.Month) - int(b.Month))
	default:
		return sign(a.Day - b.Day)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// Min returns the earlier of a and b.
func Min(a, b Date) Date {
	if b.Before(a) {
		return b
	}
	return a
}

// Max returns the later of a and b.
func Max(a, b Date) Date {
	if b.After(a) {
		return b
	}
	return a
}

// AddDays shifts d by n calendar days.
func AddDays(d Date, n int) Date {
	return New(d.Year, d.Month, d.Day+n)
}

// DaysInMonth returns the number of days in the given month, using day 0 of
// the following month.
func DaysInMonth(year int, month time.Month) int {
	return gregorian.NewDate(year, month+1, 0).Day()
}

// FirstOfMonth returns day 1 of the month, normalising month overflow.
func FirstOfMonth(year int, month time.Month) Date {
	return New(year, month, 1)
}

// LastOfMonth returns the final day of the month, normalising month overflow.
func LastOfMonth(year int, month time.Month) Date {
	return New(year, month+1, 0)
}

// MustValid panics unless year/month/day form a real calendar date. Only
// used for literals in tests and examples.
func MustValid(year int, month time.Month, day int) Date {
	d, err := newStrictDate(year, month, day)
	if err != nil {
		panic(fmt.Sprintf("datemath: invalid date %04d-%02d-%02d", year, month, day))
	}
	return d
}

// newStrictDate is New without normalisation: overflowing fields are an
// error.
func newStrictDate(year int, month time.Month, day int) (Date, error) {
	g := gregorian.NewDate(year, month, day)
	if g.Year() != year || g.Month() != month || g.Day() != day {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d does not exist", ErrInvalidDate, year, month, day)
	}
	return FromGregorian(g), nil
}
