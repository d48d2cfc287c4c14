package calendar

import (
	"sort"
	"time"
)

// Streak summarises runs of consecutive active days.
type Streak struct {
	Current    int
	Longest    int
	LastActive *time.Time // most recent active day
	StartedAt  *time.Time // first day of the current run, nil when Current is 0
}

// ComputeStreak derives streak figures from the days an owner completed something.
// Dates may repeat and carry any time of day. The current run may end today or
// yesterday relative to base; it breaks only once a whole day is skipped.
func ComputeStreak(activeDates []time.Time, base time.Time) Streak {
	active := make(map[string]struct{}, len(activeDates))
	days := make([]time.Time, 0, len(activeDates))
	for _, t := range activeDates {
		d := StartOfDay(t)
		key := DayKey(d)
		if _, ok := active[key]; ok {
			continue
		}
		active[key] = struct{}{}
		days = append(days, d)
	}
	if len(days) == 0 {
		return Streak{}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	var s Streak
	last := days[len(days)-1]
	s.LastActive = &last

	isActive := func(d time.Time) bool {
		_, ok := active[DayKey(d)]
		return ok
	}

	cursor := StartOfDay(base)
	if !isActive(cursor) {
		cursor = AddDays(cursor, -1)
	}
	for isActive(cursor) {
		s.Current++
		started := cursor
		s.StartedAt = &started
		cursor = AddDays(cursor, -1)
	}

	run := 1
	s.Longest = 1
	for i := 1; i < len(days); i++ {
		if DaysBetween(days[i-1], days[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > s.Longest {
			s.Longest = run
		}
	}
	if s.Current > s.Longest {
		s.Longest = s.Current
	}
	return s
}
