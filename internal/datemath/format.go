package datemath

import (
	"fmt"
	"time"
)

const (
	shortLayout = "Jan 2, 2006"
	isoLayout   = "2006-01-02"
)

// FormatDate renders d as "Jan 5, 2024". The zero date renders as "".
func FormatDate(d Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Time(time.UTC).Format(shortLayout)
}

// FormatISO renders d as "2024-01-05". The zero date renders as "".
func FormatISO(d Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Time(time.UTC).Format(isoLayout)
}

// FormatRange renders a start/end pair. An open range renders as "Jan 5, 2024 -".
func FormatRange(start, end Date) string {
	switch {
	case start.IsZero() && end.IsZero():
		return ""
	case end.IsZero():
		return FormatDate(start) + " -"
	case start.IsZero():
		return "- " + FormatDate(end)
	}
	return FormatDate(start) + " - " + FormatDate(end)
}

// Describe returns a short description of d relative to now
// ("today", "tomorrow", "Friday", "in 2 weeks", "3 days ago", "Jan 5, 2024").
func Describe(d Date, now time.Time) string {
	if d.IsZero() {
		return ""
	}
	today := Today(now)
	daysDiff := int(d.Time(time.UTC).Sub(today.Time(time.UTC)).Hours() / 24)

	switch {
	case daysDiff == 0:
		return "today"
	case daysDiff == 1:
		return "tomorrow"
	case daysDiff == -1:
		return "yesterday"
	case daysDiff >= 2 && daysDiff <= 6:
		return d.Weekday().String()
	case daysDiff <= -2 && daysDiff >= -6:
		return fmt.Sprintf("%d days ago", -daysDiff)
	case daysDiff >= 7 && daysDiff < 28:
		weeks := daysDiff / 7
		if weeks == 1 {
			return "in 1 week"
		}
		return fmt.Sprintf("in %d weeks", weeks)
	}

	return FormatDate(d)
}
