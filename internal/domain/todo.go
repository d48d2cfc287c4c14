package domain

import "time"

// Todo is a task scheduled on one UTC calendar day for one user.
// Не зависит от Gin, Postgres, Redis.
type Todo struct {
	ID          string
	UserID      string
	Date        time.Time // UTC midnight
	Title       string
	Description string
	IsCompleted bool
	CertID      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TodoDate and TodoDone adapt Todo to the calendar helpers.
func TodoDate(t Todo) time.Time { return t.Date }
func TodoDone(t Todo) bool      { return t.IsCompleted }

// Memo is the free-text note a user keeps for a day. At most one per user and day.
type Memo struct {
	ID        string
	UserID    string
	Date      time.Time
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func MemoDate(m Memo) time.Time { return m.Date }
