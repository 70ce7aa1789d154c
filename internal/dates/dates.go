// Package dates holds the calendar-day and week-window arithmetic shared by
// the grid, the services, and the CLI. Completion dates are local calendar
// days serialized as YYYY-MM-DD; everything here works in local wall-clock
// terms, never UTC, so a completion never drifts across a day boundary.
package dates

import (
	"fmt"
	"time"

	"github.com/example/choreboard/internal/constants"
)

// Week is the displayed seven-day window anchored on a Sunday.
type Week struct {
	Start time.Time // Sunday 00:00:00.000 local
	End   time.Time // Saturday 23:59:59.999... local
	Days  [constants.DaysPerWeek]time.Time
}

// WeekStart returns the most recent Sunday at local midnight for the
// reference date.
func WeekStart(ref time.Time) time.Time {
	day := StartOfDay(ref)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// WeekOf computes the full week window containing the reference date.
func WeekOf(ref time.Time) Week {
	start := WeekStart(ref)
	w := Week{
		Start: start,
		End:   start.AddDate(0, 0, constants.DaysPerWeek).Add(-time.Millisecond),
	}
	for i := range w.Days {
		w.Days[i] = start.AddDate(0, 0, i)
	}
	return w
}

// Next returns the week window seven days later.
func (w Week) Next() Week {
	return WeekOf(w.Start.AddDate(0, 0, constants.DaysPerWeek))
}

// Previous returns the week window seven days earlier.
func (w Week) Previous() Week {
	return WeekOf(w.Start.AddDate(0, 0, -constants.DaysPerWeek))
}

// Contains reports whether t falls on one of the week's seven days.
func (w Week) Contains(t time.Time) bool {
	day := StartOfDay(t)
	return !day.Before(w.Start) && day.Before(w.Start.AddDate(0, 0, constants.DaysPerWeek))
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatDay serializes a date for the wire using its local calendar fields.
func FormatDay(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDay parses a YYYY-MM-DD string as a local calendar day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// SameDay reports whether two instants fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameDayAsString compares an instant against a wire date string. Completion
// records carry their day as a string; this is the one comparison rule used
// everywhere. Timestamps (anything longer than a bare date) are truncated to
// their date part before comparison.
func SameDayAsString(t time.Time, s string) bool {
	if len(s) > len(constants.DateFormat) {
		s = s[:len(constants.DateFormat)]
	}
	day, err := ParseDay(s)
	if err != nil {
		return false
	}
	return SameDay(t, day)
}

// FormatDisplay renders a date for headers and lists, e.g. "Wed, Jun 12".
func FormatDisplay(t time.Time) string {
	return t.Format(constants.DisplayDateFormat)
}
