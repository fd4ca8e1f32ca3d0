package datemath

import (
	"fmt"
	"time"
)

// Preset keys accepted by PresetByKey.
const (
	PresetToday     = "today"
	PresetYesterday = "yesterday"
	PresetThisWeek  = "this-week"
	PresetLast7Days = "last-7-days"
	PresetThisMonth = "this-month"
	PresetLastMonth = "last-month"
)

// Preset is a named, closed date range.
type Preset struct {
	Key   string
	Label string
	Start Date
	End   Date
}

// Presets holds the quick-pick ranges offered next to the range picker.
type Presets struct {
	Today     Preset
	Yesterday Preset
	ThisWeek  Preset
	Last7Days Preset
	ThisMonth Preset
	LastMonth Preset
}

// ComputePresetRanges computes every preset relative to now. Weeks start on
// Sunday. Nothing is cached: call it again when "now" moves.
func ComputePresetRanges(now time.Time) Presets {
	today := Today(now)
	yesterday := AddDays(today, -1)
	weekStart := AddDays(today, -int(today.Weekday()))

	return Presets{
		Today:     Preset{Key: PresetToday, Label: "Today", Start: today, End: today},
		Yesterday: Preset{Key: PresetYesterday, Label: "Yesterday", Start: yesterday, End: yesterday},
		ThisWeek: Preset{
			Key:   PresetThisWeek,
			Label: "This Week",
			Start: weekStart,
			End:   AddDays(weekStart, 6),
		},
		Last7Days: Preset{
			Key:   PresetLast7Days,
			Label: "Last 7 Days",
			Start: AddDays(today, -6),
			End:   today,
		},
		ThisMonth: Preset{
			Key:   PresetThisMonth,
			Label: "This Month",
			Start: FirstOfMonth(today.Year, today.Month),
			End:   LastOfMonth(today.Year, today.Month),
		},
		LastMonth: Preset{
			Key:   PresetLastMonth,
			Label: "Last Month",
			Start: FirstOfMonth(today.Year, today.Month-1),
			End:   LastOfMonth(today.Year, today.Month-1),
		},
	}
}

// All returns the presets in display order.
func (p Presets) All() []Preset {
	return []Preset{p.Today, p.Yesterday, p.ThisWeek, p.Last7Days, p.ThisMonth, p.LastMonth}
}

// PresetByKey computes the preset named key relative to now.
func PresetByKey(now time.Time, key string) (Preset, error) {
	for _, p := range ComputePresetRanges(now).All() {
		if p.Key == key {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset %q", key)
}
