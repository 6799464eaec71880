// ABOUTME: Calendar-date helpers for YYYY-MM-DD date strings.
// ABOUTME: Day arithmetic works on calendar days, not millisecond deltas.
package dates

import (
	"fmt"
	"time"
)

// Layout is the canonical calendar date format.
const Layout = "2006-01-02"

// Today returns the current local calendar date.
func Today() string {
	return Format(time.Now())
}

// Format renders a time as a calendar date in its own location.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse parses a YYYY-MM-DD date string.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// DaysBetween returns the absolute number of calendar days between two dates.
// Both arguments must be valid YYYY-MM-DD strings; invalid input counts as an
// unbounded gap so malformed state can never extend a streak.
func DaysBetween(a, b string) int {
	ta, err := Parse(a)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	tb, err := Parse(b)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	days := int(tb.Sub(ta).Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}

// AddDays returns the date n calendar days after (or before, if negative) the
// given date.
func AddDays(date string, n int) (string, error) {
	t, err := Parse(date)
	if err != nil {
		return "", err
	}
	return Format(t.AddDate(0, 0, n)), nil
}

// LastN returns the n calendar dates ending at and including end, oldest
// first.
func LastN(end string, n int) ([]string, error) {
	t, err := Parse(end)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, Format(t.AddDate(0, 0, -i)))
	}
	return out, nil
}

// Weekday returns the short weekday label for a date, or an empty string for
// invalid input.
func Weekday(date string) string {
	t, err := Parse(date)
	if err != nil {
		return ""
	}
	return t.Format("Mon")
}
