package calendar

import "math"

// DayStats is the completion tally of one day.
type DayStats struct {
	Date           string  `json:"date"`
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completion_rate"` // percent, one decimal
}

// Summary aggregates DayStats over a range.
type Summary struct {
	TotalDays      int // days with at least one item
	TotalTodos     int
	CompletedTodos int
	AverageRate    float64 // mean CompletionRate of the counted days
}

// Rate returns completed/total as a percentage rounded to one decimal; 0 when total is 0.
func Rate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(completed) * 100 / float64(total))
}

// Tally computes per-day stats for days. Empty days are reported only when keepEmpty is set;
// they never count towards Summary.TotalDays or the average.
func Tally[T any](days []Day[T], done func(T) bool, keepEmpty bool) ([]DayStats, Summary) {
	stats := make([]DayStats, 0, len(days))
	var sum Summary
	var rateSum float64
	for _, d := range days {
		completed := 0
		for _, it := range d.Items {
			if done(it) {
				completed++
			}
		}
		total := len(d.Items)
		if total == 0 && !keepEmpty {
			continue
		}
		ds := DayStats{Date: d.Key, Total: total, Completed: completed, CompletionRate: Rate(completed, total)}
		stats = append(stats, ds)
		if total == 0 {
			continue
		}
		sum.TotalDays++
		sum.TotalTodos += total
		sum.CompletedTodos += completed
		rateSum += ds.CompletionRate
	}
	if sum.TotalDays > 0 {
		sum.AverageRate = round1(rateSum / float64(sum.TotalDays))
	}
	return stats, sum
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
