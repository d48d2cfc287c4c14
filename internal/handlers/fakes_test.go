package handlers

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"qbit/internal/auth"
	dom "qbit/internal/domain"
	"qbit/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

const owner = "user-1"

// asUser stands in for RequireSession.
func asUser(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.SetUserID(c, id)
		c.Next()
	}
}

type memTodoRepo struct {
	todos      []dom.Todo
	memos      []dom.Memo
	seq        int
	failInsert error
}

func (r *memTodoRepo) ListRange(_ context.Context, userID string, from, to time.Time) ([]dom.Todo, error) {
	out := []dom.Todo{}
	for _, t := range r.todos {
		if t.UserID == userID && !t.Date.Before(from) && !t.Date.After(to) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTodoRepo) List(ctx context.Context, userID string, f repo.TodoFilter) ([]dom.Todo, error) {
	out := []dom.Todo{}
	for _, t := range r.todos {
		if t.UserID != userID || (f.Date != nil && !t.Date.Equal(*f.Date)) {
			continue
		}
		if f.IsCompleted != nil && t.IsCompleted != *f.IsCompleted {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *memTodoRepo) CountRange(ctx context.Context, userID string, from, to time.Time) (int, error) {
	list, _ := r.ListRange(ctx, userID, from, to)
	return len(list), nil
}

func (r *memTodoRepo) CompletedDays(_ context.Context, userID string) ([]time.Time, error) {
	var out []time.Time
	for _, t := range r.todos {
		if t.UserID == userID && t.IsCompleted {
			out = append(out, t.Date)
		}
	}
	return out, nil
}

func (r *memTodoRepo) index(userID, id string) int {
	return slices.IndexFunc(r.todos, func(t dom.Todo) bool { return t.UserID == userID && t.ID == id })
}

func (r *memTodoRepo) GetByID(_ context.Context, userID, id string) (dom.Todo, error) {
	i := r.index(userID, id)
	if i < 0 {
		return dom.Todo{}, pgx.ErrNoRows
	}
	return r.todos[i], nil
}

func (r *memTodoRepo) Create(_ context.Context, t dom.Todo) (dom.Todo, error) {
	r.seq++
	t.ID = fmt.Sprintf("todo-%d", r.seq)
	r.todos = append(r.todos, t)
	return t, nil
}

func (r *memTodoRepo) Update(_ context.Context, userID, id string, patch dom.Todo) (dom.Todo, error) {
	i := r.index(userID, id)
	if i < 0 {
		return dom.Todo{}, pgx.ErrNoRows
	}
	r.todos[i] = patch
	return patch, nil
}

func (r *memTodoRepo) MarkCompleted(_ context.Context, userID, id string, done bool) (dom.Todo, error) {
	i := r.index(userID, id)
	if i < 0 {
		return dom.Todo{}, pgx.ErrNoRows
	}
	r.todos[i].IsCompleted = done
	return r.todos[i], nil
}

func (r *memTodoRepo) Delete(_ context.Context, userID, id string) error {
	i := r.index(userID, id)
	if i < 0 {
		return pgx.ErrNoRows
	}
	r.todos = slices.Delete(r.todos, i, i+1)
	return nil
}

func (r *memTodoRepo) InTx(_ context.Context, fn func(tx repo.TodoTx) error) error {
	todos, memos := slices.Clone(r.todos), slices.Clone(r.memos)
	if err := fn(memTodoTx{r}); err != nil {
		r.todos, r.memos = todos, memos
		return err
	}
	return nil
}

type memTodoTx struct{ r *memTodoRepo }

func (tx memTodoTx) DeleteDay(_ context.Context, userID string, d time.Time) (int64, error) {
	before := len(tx.r.todos)
	tx.r.todos = slices.DeleteFunc(tx.r.todos, func(t dom.Todo) bool { return t.UserID == userID && t.Date.Equal(d) })
	return int64(before - len(tx.r.todos)), nil
}

func (tx memTodoTx) InsertMany(ctx context.Context, todos []dom.Todo) ([]dom.Todo, error) {
	if tx.r.failInsert != nil {
		return nil, tx.r.failInsert
	}
	out := make([]dom.Todo, 0, len(todos))
	for _, t := range todos {
		created, _ := tx.r.Create(ctx, t)
		out = append(out, created)
	}
	return out, nil
}

func (tx memTodoTx) UpsertMemo(_ context.Context, m dom.Memo) (dom.Memo, error) {
	if i := slices.IndexFunc(tx.r.memos, func(x dom.Memo) bool { return x.UserID == m.UserID && x.Date.Equal(m.Date) }); i >= 0 {
		tx.r.memos[i].Content = m.Content
		return tx.r.memos[i], nil
	}
	m.ID = fmt.Sprintf("memo-%d", len(tx.r.memos)+1)
	tx.r.memos = append(tx.r.memos, m)
	return m, nil
}

// memoView exposes memTodoRepo's memos as a repo.MemoRepo for day views.
type memoView struct{ r *memTodoRepo }

func (v memoView) ListRange(_ context.Context, userID string, from, to time.Time) ([]dom.Memo, error) {
	out := []dom.Memo{}
	for _, m := range v.r.memos {
		if m.UserID == userID && !m.Date.Before(from) && !m.Date.After(to) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (v memoView) GetByDate(_ context.Context, userID string, d time.Time) (dom.Memo, error) {
	for _, m := range v.r.memos {
		if m.UserID == userID && m.Date.Equal(d) {
			return m, nil
		}
	}
	return dom.Memo{}, pgx.ErrNoRows
}

func (v memoView) Upsert(ctx context.Context, m dom.Memo) (dom.Memo, error) {
	return memTodoTx(v).UpsertMemo(ctx, m)
}

func (v memoView) GetByID(context.Context, string, string) (dom.Memo, error) {
	return dom.Memo{}, pgx.ErrNoRows
}

func (v memoView) List(ctx context.Context, userID string, d *time.Time) ([]dom.Memo, error) {
	return v.ListRange(ctx, userID, *d, *d)
}

func (v memoView) Update(context.Context, string, string, dom.Memo) (dom.Memo, error) {
	return dom.Memo{}, pgx.ErrNoRows
}

func (v memoView) Delete(context.Context, string, string) error { return pgx.ErrNoRows }

type memUserRepo struct {
	users []dom.User
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (dom.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r *memUserRepo) UpsertKakao(_ context.Context, u dom.User) (dom.User, bool, error) {
	for _, existing := range r.users {
		if existing.KakaoID == u.KakaoID {
			return existing, false, nil
		}
	}
	u.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	r.users = append(r.users, u)
	return u, true, nil
}

func (r *memUserRepo) UpdateNickname(_ context.Context, id, nickname string) (dom.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].Nickname = nickname
			return r.users[i], nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

type fakeSessions struct {
	sessions map[string]string
	states   map[string]bool
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: map[string]string{}, states: map[string]bool{}}
}

func (f *fakeSessions) Create(_ context.Context, userID string) (string, error) {
	id := fmt.Sprintf("sess-%d", len(f.sessions)+1)
	f.sessions[id] = userID
	return id, nil
}

func (f *fakeSessions) Delete(_ context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessions) CreateState(context.Context) (string, error) {
	s := fmt.Sprintf("state-%d", len(f.states)+1)
	f.states[s] = true
	return s, nil
}

func (f *fakeSessions) ConsumeState(_ context.Context, state string) error {
	if !f.states[state] {
		return auth.ErrInvalidState
	}
	delete(f.states, state)
	return nil
}

type fakeKakao struct {
	profile dom.User
	err     error
}

func (k fakeKakao) AuthCodeURL(state string) string {
	return "https://kauth.kakao.com/oauth/authorize?state=" + state
}

func (k fakeKakao) Exchange(context.Context, string) (dom.User, error) {
	return k.profile, k.err
}

var errBoom = errors.New("boom")
