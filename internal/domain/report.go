package domain

import (
	"time"

	"qbit/internal/calendar"
)

// WeeklyReport is the stored AI review of one Sunday-to-Saturday week.
type WeeklyReport struct {
	ID                   string
	UserID               string
	WeekStart            time.Time
	WeekEnd              time.Time
	TotalTodos           int
	CompletedTodos       int
	WeeklyCompletionRate float64
	DailyStats           []calendar.DayStats
	Summary              string
	Achievements         []string
	Improvements         []string
	NextWeekSuggestions  []string
	Encouragement        string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
