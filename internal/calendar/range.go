package calendar

import (
	"fmt"
	"time"
)

// Range is an inclusive span of UTC calendar days.
type Range struct {
	Start time.Time // first day, UTC midnight
	Last  time.Time // last day, UTC midnight
}

// End returns the last instant of the range (23:59:59.999 of Last).
func (r Range) End() time.Time { return EndOfDay(r.Last) }

// Len returns the number of days in the range.
func (r Range) Len() int { return DaysBetween(r.Start, r.Last) + 1 }

// Days lists every day of the range in ascending order.
func (r Range) Days() []time.Time {
	n := r.Len()
	if n <= 0 {
		return nil
	}
	days := make([]time.Time, n)
	for i := range days {
		days[i] = AddDays(r.Start, i)
	}
	return days
}

// Contains reports whether t falls on one of the range's days.
func (r Range) Contains(t time.Time) bool {
	d := StartOfDay(t)
	return !d.Before(r.Start) && !d.After(r.Last)
}

// DayRange covers the single day of t.
func DayRange(t time.Time) Range {
	d := StartOfDay(t)
	return Range{Start: d, Last: d}
}

// WeekRange covers sunday through six days later. The anchor is not checked to be a Sunday.
func WeekRange(sunday time.Time) Range {
	start := StartOfDay(sunday)
	return Range{Start: start, Last: AddDays(start, 6)}
}

// MonthRange covers the 1st through the last day of the month.
func MonthRange(year int, month time.Month) (Range, error) {
	if month < time.January || month > time.December {
		return Range{}, fmt.Errorf("%w: month %d out of range 1-12", ErrInvalidDate, month)
	}
	if err := checkYear(year); err != nil {
		return Range{}, err
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Range{Start: start, Last: time.Date(year, month, DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)}, nil
}

// YearRange covers Jan 1 through Dec 31.
func YearRange(year int) (Range, error) {
	if err := checkYear(year); err != nil {
		return Range{}, err
	}
	return Range{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		Last:  time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}, nil
}

func checkYear(year int) error {
	if year < 1 || year > 9999 {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidDate, year)
	}
	return nil
}
