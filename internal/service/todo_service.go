package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"qbit/internal/calendar"
	dom "qbit/internal/domain"
	"qbit/internal/repo"
	"qbit/internal/utils"

	"github.com/jackc/pgx/v5"
)

const (
	maxTitleLen       = 255
	maxDescriptionLen = 1000
)

// TodoInput is one todo of a ReplaceDay or Create call.
type TodoInput struct {
	Title       string
	Description string
	IsCompleted bool
	CertID      *string
}

// TodoPatch holds the fields of a partial update. Nil means unchanged.
type TodoPatch struct {
	Date        *time.Time
	Title       *string
	Description *string
	IsCompleted *bool
	CertID      *string
}

// DayView is one calendar day with its todos and memo.
type DayView struct {
	Date  time.Time
	Key   string
	Todos []dom.Todo
	Memo  *dom.Memo
}

// YearStats is the per-day completion report of one year.
type YearStats struct {
	Year    int
	Days    []calendar.DayStats
	Summary calendar.Summary
}

// TodoService builds calendar views over a user's todos.
// Dates passed in are normalized to their UTC day; callers decide what "today" is.
type TodoService struct {
	todos repo.TodoRepo
	memos repo.MemoRepo
}

// NewTodoService creates a TodoService. If memos is nil, day views carry no memo.
func NewTodoService(todos repo.TodoRepo, memos repo.MemoRepo) *TodoService {
	return &TodoService{todos: todos, memos: memos}
}

// ReplaceDay swaps every todo of the day for items in one transaction. A non-nil memo
// with content is upserted in the same transaction. items must not be empty.
// On failure nothing changes. An unknown cert_id is ErrInvalidInput, an unreachable
// store is returned as is, anything else wraps ErrReplaceAborted.
func (s *TodoService) ReplaceDay(ctx context.Context, userID string, day time.Time, items []TodoInput, memo *string) ([]dom.Todo, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: todos must hold at least one item", ErrInvalidInput)
	}
	day = calendar.StartOfDay(day)
	todos := make([]dom.Todo, len(items))
	for i, in := range items {
		t, err := newTodo(userID, day, in)
		if err != nil {
			return nil, fmt.Errorf("todos[%d]: %w", i, err)
		}
		todos[i] = t
	}
	var memoContent string
	if memo != nil {
		memoContent = strings.TrimSpace(*memo)
		if err := checkMemo(memoContent, true); err != nil {
			return nil, err
		}
	}

	var created []dom.Todo
	err := s.todos.InTx(ctx, func(tx repo.TodoTx) error {
		if _, err := tx.DeleteDay(ctx, userID, day); err != nil {
			return err
		}
		out, err := tx.InsertMany(ctx, todos)
		if err != nil {
			return err
		}
		if memoContent != "" {
			if _, err := tx.UpsertMemo(ctx, dom.Memo{UserID: userID, Date: day, Content: memoContent}); err != nil {
				return err
			}
		}
		created = out
		return nil
	})
	switch {
	case err == nil:
		return created, nil
	case utils.IsPGForeignKeyViolation(err):
		return nil, certRef(err)
	case utils.IsPGUnavailable(err):
		return nil, fmt.Errorf("replace day: %w", err)
	default:
		return nil, fmt.Errorf("%w: %w", ErrReplaceAborted, err)
	}
}

// GetDay returns the todos and memo of one day.
func (s *TodoService) GetDay(ctx context.Context, userID string, day time.Time) (DayView, error) {
	views, err := s.views(ctx, userID, calendar.DayRange(day))
	if err != nil {
		return DayView{}, err
	}
	return views[0], nil
}

// GetWeek returns the seven days starting at sunday. The anchor is used as given.
func (s *TodoService) GetWeek(ctx context.Context, userID string, sunday time.Time) ([]DayView, error) {
	return s.views(ctx, userID, calendar.WeekRange(sunday))
}

// GetMonth returns every day of the month, empty days included.
func (s *TodoService) GetMonth(ctx context.Context, userID string, year int, month time.Month) ([]DayView, error) {
	r, err := calendar.MonthRange(year, month)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, userID, r)
}

// GetYearStats tallies completion for each day of the year that has todos.
func (s *TodoService) GetYearStats(ctx context.Context, userID string, year int) (YearStats, error) {
	r, err := calendar.YearRange(year)
	if err != nil {
		return YearStats{}, err
	}
	todos, err := s.todos.ListRange(ctx, userID, r.Start, r.Last)
	if err != nil {
		return YearStats{}, err
	}
	days, sum := calendar.Tally(calendar.Build(r, todos, dom.TodoDate), dom.TodoDone, false)
	return YearStats{Year: year, Days: days, Summary: sum}, nil
}

// GetStreak re-reads the full set of completed days on every call.
func (s *TodoService) GetStreak(ctx context.Context, userID string, base time.Time) (calendar.Streak, error) {
	days, err := s.todos.CompletedDays(ctx, userID)
	if err != nil {
		return calendar.Streak{}, err
	}
	return calendar.ComputeStreak(days, base), nil
}

// ExistsForDate reports whether the day has any todo or a memo.
func (s *TodoService) ExistsForDate(ctx context.Context, userID string, day time.Time) (bool, error) {
	day = calendar.StartOfDay(day)
	n, err := s.todos.CountRange(ctx, userID, day, day)
	if err != nil {
		return false, err
	}
	if n > 0 || s.memos == nil {
		return n > 0, nil
	}
	if _, err := s.memos.GetByDate(ctx, userID, day); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// List returns the user's todos matching f, oldest day first.
func (s *TodoService) List(ctx context.Context, userID string, f repo.TodoFilter) ([]dom.Todo, error) {
	if f.Date != nil {
		d := calendar.StartOfDay(*f.Date)
		f.Date = &d
	}
	return s.todos.List(ctx, userID, f)
}

func (s *TodoService) GetByID(ctx context.Context, userID, id string) (dom.Todo, error) {
	t, err := s.todos.GetByID(ctx, userID, id)
	if err != nil {
		return dom.Todo{}, notFound(err)
	}
	return t, nil
}

// Create adds a single todo to a day without touching the others.
func (s *TodoService) Create(ctx context.Context, userID string, day time.Time, in TodoInput) (dom.Todo, error) {
	t, err := newTodo(userID, calendar.StartOfDay(day), in)
	if err != nil {
		return dom.Todo{}, err
	}
	created, err := s.todos.Create(ctx, t)
	if err != nil {
		return dom.Todo{}, certRef(err)
	}
	return created, nil
}

// Update applies a partial patch. Moving the todo to another day is allowed.
func (s *TodoService) Update(ctx context.Context, userID, id string, p TodoPatch) (dom.Todo, error) {
	existing, err := s.todos.GetByID(ctx, userID, id)
	if err != nil {
		return dom.Todo{}, notFound(err)
	}
	patch := existing
	if p.Date != nil {
		patch.Date = calendar.StartOfDay(*p.Date)
	}
	if p.Title != nil {
		patch.Title = *p.Title
	}
	if p.Description != nil {
		patch.Description = *p.Description
	}
	if p.IsCompleted != nil {
		patch.IsCompleted = *p.IsCompleted
	}
	if p.CertID != nil {
		patch.CertID = p.CertID
		if *p.CertID == "" {
			patch.CertID = nil
		}
	}
	checked, err := newTodo(userID, patch.Date, TodoInput{
		Title: patch.Title, Description: patch.Description, IsCompleted: patch.IsCompleted, CertID: patch.CertID,
	})
	if err != nil {
		return dom.Todo{}, err
	}
	patch.Title, patch.Description = checked.Title, checked.Description

	t, err := s.todos.Update(ctx, userID, id, patch)
	if err != nil {
		return dom.Todo{}, certRef(notFound(err))
	}
	return t, nil
}

// SetCompleted toggles completion of one todo.
func (s *TodoService) SetCompleted(ctx context.Context, userID, id string, done bool) (dom.Todo, error) {
	t, err := s.todos.MarkCompleted(ctx, userID, id, done)
	if err != nil {
		return dom.Todo{}, notFound(err)
	}
	return t, nil
}

// Delete removes one todo for good.
func (s *TodoService) Delete(ctx context.Context, userID, id string) error {
	return notFound(s.todos.Delete(ctx, userID, id))
}

func (s *TodoService) views(ctx context.Context, userID string, r calendar.Range) ([]DayView, error) {
	todos, err := s.todos.ListRange(ctx, userID, r.Start, r.Last)
	if err != nil {
		return nil, err
	}
	var memos map[string][]dom.Memo
	if s.memos != nil {
		list, err := s.memos.ListRange(ctx, userID, r.Start, r.Last)
		if err != nil {
			return nil, err
		}
		memos = calendar.GroupByDay(list, dom.MemoDate)
	}
	days := calendar.Build(r, todos, dom.TodoDate)
	out := make([]DayView, len(days))
	for i, d := range days {
		out[i] = DayView{Date: d.Date, Key: d.Key, Todos: d.Items}
		if m := memos[d.Key]; len(m) > 0 {
			memo := m[0]
			out[i].Memo = &memo
		}
	}
	return out, nil
}

func newTodo(userID string, day time.Time, in TodoInput) (dom.Todo, error) {
	title := strings.TrimSpace(in.Title)
	desc := strings.TrimSpace(in.Description)
	switch {
	case title == "":
		return dom.Todo{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	case utf8.RuneCountInString(title) > maxTitleLen:
		return dom.Todo{}, fmt.Errorf("%w: title longer than %d characters", ErrInvalidInput, maxTitleLen)
	case utf8.RuneCountInString(desc) > maxDescriptionLen:
		return dom.Todo{}, fmt.Errorf("%w: description longer than %d characters", ErrInvalidInput, maxDescriptionLen)
	}
	certID := in.CertID
	if certID != nil && strings.TrimSpace(*certID) == "" {
		certID = nil
	}
	return dom.Todo{
		UserID:      userID,
		Date:        day,
		Title:       title,
		Description: desc,
		IsCompleted: in.IsCompleted,
		CertID:      certID,
	}, nil
}

// certRef turns a foreign key violation on cert_id into a client error.
func certRef(err error) error {
	if utils.IsPGForeignKeyViolation(err) {
		return fmt.Errorf("%w: unknown cert_id", ErrInvalidInput)
	}
	return err
}
