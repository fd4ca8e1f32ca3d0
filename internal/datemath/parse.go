package datemath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"zombiezen.com/go/gregorian"
)

// ErrInvalidDate is wrapped by every parse failure.
var ErrInvalidDate = errors.New("invalid date")

var weekdayShortcuts = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// ParseDate parses typed date input relative to now.
// Supports:
// - "YYYY-MM-DD" - absolute date
// - "t" or "today", "y" or "yesterday", "tm" or "tomorrow"
// - "+3d" / "-3d" - days from now
// - "+2w" / "-2w" - weeks from now
// - "mon" .. "sun" - next occurrence of that weekday
func ParseDate(input string, now time.Time) (Date, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	today := Today(now)

	if input == "" {
		return Date{}, fmt.Errorf("%w: empty input", ErrInvalidDate)
	}

	if len(input) == 10 && input[4] == '-' && input[7] == '-' {
		return parseISO(input)
	}

	switch input {
	case "t", "today":
		return today, nil
	case "y", "yesterday":
		return AddDays(today, -1), nil
	case "tm", "tomorrow":
		return AddDays(today, 1), nil
	}

	if wd, ok := weekdayShortcuts[input]; ok {
		daysUntil := int(wd - today.Weekday())
		if daysUntil <= 0 {
			daysUntil += 7
		}
		return AddDays(today, daysUntil), nil
	}

	if len(input) >= 3 && (input[0] == '+' || input[0] == '-') {
		unit := input[len(input)-1]
		n, err := strconv.Atoi(input[1 : len(input)-1])
		if err != nil || n < 0 {
			return Date{}, fmt.Errorf("%w: bad offset %q", ErrInvalidDate, input)
		}
		if input[0] == '-' {
			n = -n
		}
		switch unit {
		case 'd':
			return AddDays(today, n), nil
		case 'w':
			return AddDays(today, n*7), nil
		}
	}

	return Date{}, fmt.Errorf("%w: unrecognised format %q", ErrInvalidDate, input)
}

// parseISO parses "YYYY-MM-DD", rejecting days the month does not have.
func parseISO(input string) (Date, error) {
	g, err := gregorian.ParseDate(input)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %s", ErrInvalidDate, input)
	}
	year, errY := strconv.Atoi(input[:4])
	month, errM := strconv.Atoi(input[5:7])
	day, errD := strconv.Atoi(input[8:])
	if errY != nil || errM != nil || errD != nil {
		return Date{}, fmt.Errorf("%w: %s", ErrInvalidDate, input)
	}
	if g.Year() != year || int(g.Month()) != month || g.Day() != day {
		return Date{}, fmt.Errorf("%w: %s does not exist", ErrInvalidDate, input)
	}
	return FromGregorian(g), nil
}

// ParseMonth parses "YYYY-MM".
func ParseMonth(input string) (int, time.Month, error) {
	parsed, err := time.Parse("2006-01", strings.TrimSpace(input))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: month must be YYYY-MM, got %q", ErrInvalidDate, input)
	}
	return parsed.Year(), parsed.Month(), nil
}
