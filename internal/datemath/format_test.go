package datemath

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	if got := FormatDate(MustValid(2024, time.January, 5)); got != "Jan 5, 2024" {
		t.Errorf("FormatDate() = %q, want %q", got, "Jan 5, 2024")
	}
	if got := FormatDate(Date{}); got != "" {
		t.Errorf("FormatDate(zero) = %q, want empty string", got)
	}
	if got := FormatISO(MustValid(2024, time.January, 5)); got != "2024-01-05" {
		t.Errorf("FormatISO() = %q", got)
	}
}

func TestFormatRange(t *testing.T) {
	start := MustValid(2024, time.March, 5)
	end := MustValid(2024, time.March, 10)

	tests := []struct {
		name       string
		start, end Date
		want       string
	}{
		{"empty", Date{}, Date{}, ""},
		{"open", start, Date{}, "Mar 5, 2024 -"},
		{"closed", start, end, "Mar 5, 2024 - Mar 10, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRange(tt.start, tt.end); got != tt.want {
				t.Errorf("FormatRange() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	// Sunday
	now := time.Date(2025, 1, 12, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		date Date
		want string
	}{
		{MustValid(2025, time.January, 12), "today"},
		{MustValid(2025, time.January, 13), "tomorrow"},
		{MustValid(2025, time.January, 11), "yesterday"},
		{MustValid(2025, time.January, 15), "Wednesday"},
		{MustValid(2025, time.January, 9), "3 days ago"},
		{MustValid(2025, time.January, 19), "in 1 week"},
		{MustValid(2025, time.January, 26), "in 2 weeks"},
		{MustValid(2025, time.March, 1), "Mar 1, 2025"},
		{Date{}, ""},
	}

	for _, tt := range tests {
		if got := Describe(tt.date, now); got != tt.want {
			t.Errorf("Describe(%s) = %q, want %q", tt.date, got, tt.want)
		}
	}
}
