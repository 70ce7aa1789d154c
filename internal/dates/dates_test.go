package dates

import (
	"testing"
	"time"
)

func TestWeekOf_KnownWeek(t *testing.T) {
	// Wednesday 2024-06-12; its week runs Sunday 06-09 through Saturday 06-15
	ref, err := ParseDay("2024-06-12")
	if err != nil {
		t.Fatalf("ParseDay failed: %v", err)
	}

	w := WeekOf(ref)
	if got := FormatDay(w.Start); got != "2024-06-09" {
		t.Errorf("expected week start 2024-06-09, got %s", got)
	}
	if w.Start.Weekday() != time.Sunday {
		t.Errorf("week must start on Sunday, got %v", w.Start.Weekday())
	}
	if got := FormatDay(w.End); got != "2024-06-15" {
		t.Errorf("expected week end on 2024-06-15, got %s", got)
	}
	for i, day := range w.Days {
		if day.Weekday() != time.Weekday(i) {
			t.Errorf("day %d: expected weekday %v, got %v", i, time.Weekday(i), day.Weekday())
		}
	}
}

func TestWeekOf_SundayIsItsOwnStart(t *testing.T) {
	sun, _ := ParseDay("2024-06-09")
	w := WeekOf(sun)
	if !SameDay(w.Start, sun) {
		t.Errorf("a Sunday must anchor its own week, got start %s", FormatDay(w.Start))
	}
}

func TestWeekNavigation(t *testing.T) {
	ref, _ := ParseDay("2024-06-12")
	w := WeekOf(ref)

	next := w.Next()
	if got := FormatDay(next.Start); got != "2024-06-16" {
		t.Errorf("expected next week start 2024-06-16, got %s", got)
	}
	prev := w.Previous()
	if got := FormatDay(prev.Start); got != "2024-06-02" {
		t.Errorf("expected previous week start 2024-06-02, got %s", got)
	}
	if back := next.Previous(); !SameDay(back.Start, w.Start) {
		t.Error("Next then Previous must return to the original week")
	}
}

func TestWeekContains(t *testing.T) {
	ref, _ := ParseDay("2024-06-12")
	w := WeekOf(ref)

	tests := []struct {
		date string
		want bool
	}{
		{"2024-06-09", true},  // first day
		{"2024-06-15", true},  // last day
		{"2024-06-08", false}, // Saturday before
		{"2024-06-16", false}, // Sunday after
	}
	for _, tt := range tests {
		day, _ := ParseDay(tt.date)
		if got := w.Contains(day); got != tt.want {
			t.Errorf("Contains(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}

	// late evening inside the window still counts
	evening := time.Date(2024, 6, 15, 23, 30, 0, 0, time.Local)
	if !w.Contains(evening) {
		t.Error("late Saturday evening must still be inside the week")
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, s := range []string{"2024-01-01", "2024-06-12", "2024-12-31", "2025-02-28"} {
		day, err := ParseDay(s)
		if err != nil {
			t.Fatalf("ParseDay(%q) failed: %v", s, err)
		}
		if got := FormatDay(day); got != s {
			t.Errorf("round trip of %q gave %q", s, got)
		}
		if day.Location() != time.Local {
			t.Errorf("ParseDay(%q) must produce a local time, got %v", s, day.Location())
		}
	}
}

func TestParseDay_Invalid(t *testing.T) {
	for _, s := range []string{"", "June 12", "2024/06/12", "2024-13-01"} {
		if _, err := ParseDay(s); err == nil {
			t.Errorf("ParseDay(%q) should fail", s)
		}
	}
}

func TestSameDayAsString(t *testing.T) {
	day, _ := ParseDay("2024-06-11")

	tests := []struct {
		s    string
		want bool
	}{
		{"2024-06-11", true},
		{"2024-06-11T00:00:00", true},  // timestamp truncated to its date part
		{"2024-06-11 15:04:05", true},
		{"2024-06-12", false},
		{"garbage", false},
	}
	for _, tt := range tests {
		if got := SameDayAsString(day, tt.s); got != tt.want {
			t.Errorf("SameDayAsString(2024-06-11, %q) = %v, want %v", tt.s, got, tt.want)
		}
	}

	// a late-evening instant matches its own calendar day, not the UTC one
	evening := time.Date(2024, 6, 11, 23, 30, 0, 0, time.Local)
	if !SameDayAsString(evening, "2024-06-11") {
		t.Error("late evening must match its local calendar day")
	}
}

func TestStartOfDay(t *testing.T) {
	evening := time.Date(2024, 6, 11, 23, 30, 45, 123, time.Local)
	start := StartOfDay(evening)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		t.Errorf("StartOfDay left time-of-day fields: %v", start)
	}
	if !SameDay(start, evening) {
		t.Error("StartOfDay must stay on the same calendar day")
	}
}
