package dto

import (
	"encoding/json"
	"strings"
	"time"

	"qbit/internal/calendar"
)

// Day parses a JSON date as either date-only ("2006-01-02") or RFC3339.
// The value is the start of that day in UTC.
type Day struct{ t *time.Time }

func (d *Day) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	parsed, err := calendar.ParseDay(*raw)
	if err != nil {
		return err
	}
	d.t = &parsed
	return nil
}

// Ptr returns *time.Time for use in service/domain. Nil when the field was empty.
func (d Day) Ptr() *time.Time { return d.t }

type TodoItemRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	IsCompleted bool    `json:"is_completed"`
	CertID      *string `json:"cert_id"`
}

// ReplaceDayRequest is the body of POST /todos. The day's todos become exactly Todos.
type ReplaceDayRequest struct {
	Date  Day               `json:"date"`
	Todos []TodoItemRequest `json:"todos" binding:"required,min=1"`
	Memo  *string           `json:"memo"`
}

// CreateTodoRequest is the body of POST /todos/item. Other todos of the day are kept.
type CreateTodoRequest struct {
	Date        Day     `json:"date"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	IsCompleted bool    `json:"is_completed"`
	CertID      *string `json:"cert_id"`
}

type UpdateTodoRequest struct {
	Date        *Day    `json:"date"` // nil = keep the day
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsCompleted *bool   `json:"is_completed"`
	CertID      *string `json:"cert_id"` // "" detaches the cert
}

type CompleteTodoRequest struct {
	IsCompleted *bool `json:"is_completed" binding:"required"`
}

type TodoResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	ScheduledDate string    `json:"scheduled_date"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	IsCompleted   bool      `json:"is_completed"`
	CertID        *string   `json:"cert_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ListTodosResponse struct {
	Items []TodoResponse `json:"items"`
}

// DayResponse is one calendar day. Days without todos have an empty list.
type DayResponse struct {
	ScheduledDate    time.Time      `json:"scheduled_date"`
	ScheduledDateStr string         `json:"scheduled_date_str"`
	Todos            []TodoResponse `json:"todos"`
	Memo             *MemoResponse  `json:"memo"`
}

type DaysResponse struct {
	Days []DayResponse `json:"days"`
}

type YearStatsResponse struct {
	Year                  int                 `json:"year"`
	Stats                 []calendar.DayStats `json:"stats"`
	TotalDays             int                 `json:"total_days"`
	TotalTodos            int                 `json:"total_todos"`
	CompletedTodos        int                 `json:"completed_todos"`
	AverageCompletionRate float64             `json:"average_completion_rate"`
}

type StreakResponse struct {
	CurrentStreak  int     `json:"current_streak"`
	LongestStreak  int     `json:"longest_streak"`
	LastActiveDate *string `json:"last_active_date"`
	StreakStart    *string `json:"streak_start_date"`
}

type ExistsResponse struct {
	Date   string `json:"date"`
	Exists bool   `json:"exists"`
}
