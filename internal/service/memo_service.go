package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"qbit/internal/calendar"
	dom "qbit/internal/domain"
	"qbit/internal/repo"
	"qbit/internal/utils"
)

const maxMemoLen = 1000

// MemoPatch holds the fields of a partial memo update. Nil means unchanged.
type MemoPatch struct {
	Date    *time.Time
	Content *string
}

// MemoService manages the one-per-day memos.
type MemoService struct {
	repo repo.MemoRepo
}

func NewMemoService(r repo.MemoRepo) *MemoService {
	return &MemoService{repo: r}
}

// Upsert writes the memo of a day, replacing an existing one.
func (s *MemoService) Upsert(ctx context.Context, userID string, day time.Time, content string) (dom.Memo, error) {
	content = strings.TrimSpace(content)
	if err := checkMemo(content, false); err != nil {
		return dom.Memo{}, err
	}
	return s.repo.Upsert(ctx, dom.Memo{UserID: userID, Date: calendar.StartOfDay(day), Content: content})
}

func (s *MemoService) GetByDate(ctx context.Context, userID string, day time.Time) (dom.Memo, error) {
	m, err := s.repo.GetByDate(ctx, userID, calendar.StartOfDay(day))
	if err != nil {
		return dom.Memo{}, notFound(err)
	}
	return m, nil
}

// List returns all memos, or only the one of day when set.
func (s *MemoService) List(ctx context.Context, userID string, day *time.Time) ([]dom.Memo, error) {
	if day != nil {
		d := calendar.StartOfDay(*day)
		day = &d
	}
	return s.repo.List(ctx, userID, day)
}

// Update patches a memo. Moving it onto a day that already has a memo is ErrConflict.
func (s *MemoService) Update(ctx context.Context, userID, id string, p MemoPatch) (dom.Memo, error) {
	existing, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return dom.Memo{}, notFound(err)
	}
	patch := existing
	if p.Date != nil {
		patch.Date = calendar.StartOfDay(*p.Date)
	}
	if p.Content != nil {
		patch.Content = strings.TrimSpace(*p.Content)
		if err := checkMemo(patch.Content, false); err != nil {
			return dom.Memo{}, err
		}
	}
	m, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.Memo{}, fmt.Errorf("%w: a memo already exists for %s", ErrConflict, calendar.DayKey(patch.Date))
		}
		return dom.Memo{}, notFound(err)
	}
	return m, nil
}

func (s *MemoService) Delete(ctx context.Context, userID, id string) error {
	return notFound(s.repo.Delete(ctx, userID, id))
}

func checkMemo(content string, allowEmpty bool) error {
	if content == "" && !allowEmpty {
		return fmt.Errorf("%w: memo content is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(content) > maxMemoLen {
		return fmt.Errorf("%w: memo longer than %d characters", ErrInvalidInput, maxMemoLen)
	}
	return nil
}
