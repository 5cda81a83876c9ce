// Package timeline converts dated tasks into proportionally positioned bars
// on a normalized horizontal axis. All math is day-granularity: dates are
// naive calendar days, time-of-day and timezones are ignored.
package timeline

import "time"

// dayLayout is the wire format for calendar dates throughout the app.
const dayLayout = "2006-01-02"

// ParseDay parses a YYYY-MM-DD string as a naive calendar day.
// Returns false for empty or unparseable input; callers substitute their
// own fallback rather than propagating a zero time into layout math.
func ParseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDay renders a calendar day back to its YYYY-MM-DD form.
func FormatDay(t time.Time) string {
	return t.Format(dayLayout)
}

// SpanDays returns the inclusive day count between two calendar days,
// never less than 1. A reversed interval (end before start) degrades to 1
// instead of failing; the source is allowed to hand us inconsistent dates.
func SpanDays(start, end time.Time) int {
	days := DayOffset(end, start) + 1
	if days < 1 {
		return 1
	}
	return days
}

// DayOffset returns the signed whole-day distance from origin to date.
func DayOffset(date, origin time.Time) int {
	return int(date.Sub(origin).Hours() / 24)
}
