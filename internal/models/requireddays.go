package models

import (
	"sort"
	"strings"
	"time"
)

// RequiredDays is the canonical weekly schedule encoding: a day-of-week
// bitmask where bit i is set iff the chore is scheduled on weekday i
// (0=Sunday .. 6=Saturday). All conversions to and from explicit weekday
// lists go through this type; the list form never crosses the wire.
type RequiredDays int

// ScheduledOn reports whether the schedule includes the given weekday.
func (d RequiredDays) ScheduledOn(day time.Weekday) bool {
	return d&(1<<uint(day)) != 0
}

// Weekdays expands the bitmask into an ascending weekday list.
func (d RequiredDays) Weekdays() []time.Weekday {
	var days []time.Weekday
	for day := time.Sunday; day <= time.Saturday; day++ {
		if d.ScheduledOn(day) {
			days = append(days, day)
		}
	}
	return days
}

// Count returns the number of scheduled days per week.
func (d RequiredDays) Count() int {
	n := 0
	for day := time.Sunday; day <= time.Saturday; day++ {
		if d.ScheduledOn(day) {
			n++
		}
	}
	return n
}

// String renders the schedule as short day names, e.g. "Tue, Fri".
func (d RequiredDays) String() string {
	if d == 0 {
		return "none"
	}
	names := make([]string, 0, 7)
	for _, day := range d.Weekdays() {
		names = append(names, day.String()[:3])
	}
	return strings.Join(names, ", ")
}

// RequiredDaysFrom builds the bitmask from an explicit weekday list.
// Duplicates are harmless.
func RequiredDaysFrom(days ...time.Weekday) RequiredDays {
	var d RequiredDays
	for _, day := range days {
		if day < time.Sunday || day > time.Saturday {
			continue
		}
		d |= 1 << uint(day)
	}
	return d
}

var dayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// ParseRequiredDays parses a comma-separated weekday list ("mon,wed,fri")
// into the bitmask. Used by CLI flags and forms.
func ParseRequiredDays(s string) (RequiredDays, bool) {
	var days []time.Weekday
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		day, ok := dayNames[part]
		if !ok {
			return 0, false
		}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return RequiredDaysFrom(days...), true
}
