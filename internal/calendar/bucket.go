package calendar

import "time"

// Day is one calendar day of a materialized range.
type Day[T any] struct {
	Date  time.Time
	Key   string
	Items []T
}

// GroupByDay buckets items by the UTC day of dateOf(item). Time of day is discarded;
// items keep their input order inside a bucket.
func GroupByDay[T any](items []T, dateOf func(T) time.Time) map[string][]T {
	buckets := make(map[string][]T)
	for _, it := range items {
		key := DayKey(dateOf(it))
		buckets[key] = append(buckets[key], it)
	}
	return buckets
}

// Materialize returns one entry per day of r in ascending order. Days without a bucket
// get an empty, non-nil Items slice.
func Materialize[T any](r Range, buckets map[string][]T) []Day[T] {
	days := r.Days()
	out := make([]Day[T], len(days))
	for i, d := range days {
		key := DayKey(d)
		items := buckets[key]
		if items == nil {
			items = []T{}
		}
		out[i] = Day[T]{Date: d, Key: key, Items: items}
	}
	return out
}

// Build groups items and materializes them over r in one step.
func Build[T any](r Range, items []T, dateOf func(T) time.Time) []Day[T] {
	return Materialize(r, GroupByDay(items, dateOf))
}
