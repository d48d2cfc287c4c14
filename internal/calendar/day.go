// Package calendar turns flat lists of dated records into calendar views:
// UTC day keys, gap-free day ranges, per-day buckets, completion streaks and stats.
//
// Every function here is pure. Callers pass "today" explicitly.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DayLayout is the canonical day key format.
const DayLayout = "2006-01-02"

// ErrInvalidDate is returned for unparsable dates and out-of-range year/month anchors.
var ErrInvalidDate = errors.New("invalid date")

var parseLayouts = []string{
	DayLayout,
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// ParseDay parses a date or datetime and returns the UTC midnight of its UTC calendar day.
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return StartOfDay(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q, use YYYY-MM-DD or RFC3339", ErrInvalidDate, s)
}

// StartOfDay returns 00:00:00.000 UTC of t's UTC calendar day.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns 23:59:59.999 UTC of t's UTC calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Millisecond)
}

// DayKey formats t's UTC calendar day as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// AddDays moves a UTC day by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	d := StartOfDay(t)
	return time.Date(d.Year(), d.Month(), d.Day()+n, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole number of calendar days from a to b (negative when b is earlier).
func DaysBetween(a, b time.Time) int {
	return int(StartOfDay(b).Sub(StartOfDay(a)) / (24 * time.Hour))
}

// WeekStart returns the Sunday on or before t.
func WeekStart(t time.Time) time.Time {
	d := StartOfDay(t)
	return AddDays(d, -int(d.Weekday()))
}

// DaysInMonth returns the length of month in year, leap years included.
func DaysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
