package models

import (
	"testing"
	"time"
)

func TestRequiredDays_ScheduledOn(t *testing.T) {
	// 36 = Tuesday (bit 2) + Friday (bit 5)
	d := RequiredDays(36)

	want := map[time.Weekday]bool{
		time.Sunday:    false,
		time.Monday:    false,
		time.Tuesday:   true,
		time.Wednesday: false,
		time.Thursday:  false,
		time.Friday:    true,
		time.Saturday:  false,
	}
	for day, expected := range want {
		if got := d.ScheduledOn(day); got != expected {
			t.Errorf("ScheduledOn(%v) = %v, want %v", day, got, expected)
		}
	}
}

func TestRequiredDays_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		days []time.Weekday
		mask RequiredDays
	}{
		{"tue+fri", []time.Weekday{time.Tuesday, time.Friday}, 36},
		{"every day", []time.Weekday{
			time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		}, 127},
		{"sunday only", []time.Weekday{time.Sunday}, 1},
		{"saturday only", []time.Weekday{time.Saturday}, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := RequiredDaysFrom(tt.days...)
			if d != tt.mask {
				t.Errorf("RequiredDaysFrom(%v) = %d, want %d", tt.days, d, tt.mask)
			}
			got := d.Weekdays()
			if len(got) != len(tt.days) {
				t.Fatalf("Weekdays() returned %d days, want %d", len(got), len(tt.days))
			}
			if d.Count() != len(tt.days) {
				t.Errorf("Count() = %d, want %d", d.Count(), len(tt.days))
			}
		})
	}
}

func TestRequiredDaysFrom_DuplicatesAndOutOfRange(t *testing.T) {
	d := RequiredDaysFrom(time.Tuesday, time.Tuesday, time.Weekday(9), time.Weekday(-1))
	if d != 4 {
		t.Errorf("expected just the Tuesday bit, got %d", d)
	}
}

func TestRequiredDays_String(t *testing.T) {
	tests := []struct {
		mask RequiredDays
		want string
	}{
		{0, "none"},
		{36, "Tue, Fri"},
		{1, "Sun"},
		{127, "Sun, Mon, Tue, Wed, Thu, Fri, Sat"},
	}
	for _, tt := range tests {
		if got := tt.mask.String(); got != tt.want {
			t.Errorf("RequiredDays(%d).String() = %q, want %q", tt.mask, got, tt.want)
		}
	}
}

func TestParseRequiredDays(t *testing.T) {
	tests := []struct {
		in   string
		mask RequiredDays
		ok   bool
	}{
		{"tue,fri", 36, true},
		{"Tuesday, Friday", 36, true},
		{"fri,tue", 36, true}, // order-insensitive
		{"mon", 2, true},
		{"", 0, true},
		{"tue,blah", 0, false},
	}
	for _, tt := range tests {
		mask, ok := ParseRequiredDays(tt.in)
		if ok != tt.ok || mask != tt.mask {
			t.Errorf("ParseRequiredDays(%q) = (%d, %v), want (%d, %v)", tt.in, mask, ok, tt.mask, tt.ok)
		}
	}
}
