package service

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"qbit/internal/calendar"
	dom "qbit/internal/domain"
	"qbit/internal/llm"
	"qbit/internal/repo"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func day(s string) time.Time {
	t, err := time.Parse(calendar.DayLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// memTodoRepo is an in-memory repo.TodoRepo. InTx snapshots state and restores it on error.
type memTodoRepo struct {
	todos      []dom.Todo
	memos      *memMemoRepo
	seq        int
	txCalls    int
	failInsert error
}

func newMemTodoRepo(memos *memMemoRepo) *memTodoRepo {
	return &memTodoRepo{memos: memos}
}

func (r *memTodoRepo) seed(userID, date, title string, done bool) dom.Todo {
	t, _ := r.Create(context.Background(), dom.Todo{UserID: userID, Date: day(date), Title: title, IsCompleted: done})
	return t
}

func (r *memTodoRepo) ListRange(_ context.Context, userID string, from, to time.Time) ([]dom.Todo, error) {
	out := []dom.Todo{}
	for _, t := range r.todos {
		if t.UserID == userID && !t.Date.Before(from) && !t.Date.After(to) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *memTodoRepo) List(_ context.Context, userID string, f repo.TodoFilter) ([]dom.Todo, error) {
	out := []dom.Todo{}
	for _, t := range r.todos {
		if t.UserID != userID {
			continue
		}
		if f.Date != nil && !t.Date.Equal(*f.Date) {
			continue
		}
		if f.IsCompleted != nil && t.IsCompleted != *f.IsCompleted {
			continue
		}
		if q := strings.ToLower(f.Search); q != "" &&
			!strings.Contains(strings.ToLower(t.Title), q) && !strings.Contains(strings.ToLower(t.Description), q) {
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
	seen := map[time.Time]bool{}
	var out []time.Time
	for _, t := range r.todos {
		if t.UserID == userID && t.IsCompleted && !seen[t.Date] {
			seen[t.Date] = true
			out = append(out, t.Date)
		}
	}
	return out, nil
}

func (r *memTodoRepo) index(userID, id string) int {
	for i, t := range r.todos {
		if t.ID == id && t.UserID == userID {
			return i
		}
	}
	return -1
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
	patch.ID, patch.UserID = id, userID
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
	r.txCalls++
	todos := slices.Clone(r.todos)
	var memos []dom.Memo
	if r.memos != nil {
		memos = slices.Clone(r.memos.memos)
	}
	if err := fn(memTodoTx{r}); err != nil {
		r.todos = todos
		if r.memos != nil {
			r.memos.memos = memos
		}
		return err
	}
	return nil
}

type memTodoTx struct{ r *memTodoRepo }

func (tx memTodoTx) DeleteDay(_ context.Context, userID string, d time.Time) (int64, error) {
	var n int64
	kept := tx.r.todos[:0:0]
	for _, t := range tx.r.todos {
		if t.UserID == userID && t.Date.Equal(d) {
			n++
			continue
		}
		kept = append(kept, t)
	}
	tx.r.todos = kept
	return n, nil
}

func (tx memTodoTx) InsertMany(ctx context.Context, todos []dom.Todo) ([]dom.Todo, error) {
	out := make([]dom.Todo, 0, len(todos))
	for i, t := range todos {
		if tx.r.failInsert != nil && i == len(todos)-1 {
			return nil, tx.r.failInsert
		}
		created, _ := tx.r.Create(ctx, t)
		out = append(out, created)
	}
	return out, nil
}

func (tx memTodoTx) UpsertMemo(ctx context.Context, m dom.Memo) (dom.Memo, error) {
	return tx.r.memos.Upsert(ctx, m)
}

// memMemoRepo is an in-memory repo.MemoRepo with the (user, day) uniqueness of the real table.
type memMemoRepo struct {
	memos []dom.Memo
	seq   int
}

func (r *memMemoRepo) find(match func(dom.Memo) bool) int {
	for i, m := range r.memos {
		if match(m) {
			return i
		}
	}
	return -1
}

func (r *memMemoRepo) Upsert(_ context.Context, m dom.Memo) (dom.Memo, error) {
	i := r.find(func(x dom.Memo) bool { return x.UserID == m.UserID && x.Date.Equal(m.Date) })
	if i >= 0 {
		r.memos[i].Content = m.Content
		return r.memos[i], nil
	}
	r.seq++
	m.ID = fmt.Sprintf("memo-%d", r.seq)
	r.memos = append(r.memos, m)
	return m, nil
}

func (r *memMemoRepo) GetByDate(_ context.Context, userID string, d time.Time) (dom.Memo, error) {
	i := r.find(func(x dom.Memo) bool { return x.UserID == userID && x.Date.Equal(d) })
	if i < 0 {
		return dom.Memo{}, pgx.ErrNoRows
	}
	return r.memos[i], nil
}

func (r *memMemoRepo) GetByID(_ context.Context, userID, id string) (dom.Memo, error) {
	i := r.find(func(x dom.Memo) bool { return x.UserID == userID && x.ID == id })
	if i < 0 {
		return dom.Memo{}, pgx.ErrNoRows
	}
	return r.memos[i], nil
}

func (r *memMemoRepo) List(ctx context.Context, userID string, d *time.Time) ([]dom.Memo, error) {
	if d != nil {
		return r.ListRange(ctx, userID, *d, *d)
	}
	return r.ListRange(ctx, userID, time.Time{}, time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC))
}

func (r *memMemoRepo) ListRange(_ context.Context, userID string, from, to time.Time) ([]dom.Memo, error) {
	out := []dom.Memo{}
	for _, m := range r.memos {
		if m.UserID == userID && !m.Date.Before(from) && !m.Date.After(to) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMemoRepo) Update(_ context.Context, userID, id string, patch dom.Memo) (dom.Memo, error) {
	i := r.find(func(x dom.Memo) bool { return x.UserID == userID && x.ID == id })
	if i < 0 {
		return dom.Memo{}, pgx.ErrNoRows
	}
	if j := r.find(func(x dom.Memo) bool { return x.UserID == userID && x.Date.Equal(patch.Date) }); j >= 0 && j != i {
		return dom.Memo{}, &pgconn.PgError{Code: "23505"}
	}
	r.memos[i].Date, r.memos[i].Content = patch.Date, patch.Content
	return r.memos[i], nil
}

func (r *memMemoRepo) Delete(_ context.Context, userID, id string) error {
	i := r.find(func(x dom.Memo) bool { return x.UserID == userID && x.ID == id })
	if i < 0 {
		return pgx.ErrNoRows
	}
	r.memos = slices.Delete(r.memos, i, i+1)
	return nil
}

// memCertRepo is an in-memory repo.CertRepo.
type memCertRepo struct {
	certs    []dom.Cert
	reminded map[string][]string
	searches atomic.Int32
	popular  atomic.Int32
}

func (r *memCertRepo) Search(_ context.Context, f repo.CertFilter) ([]dom.Cert, error) {
	r.searches.Add(1)
	out := []dom.Cert{}
	for _, c := range r.certs {
		if f.Keyword != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(f.Keyword)) {
			continue
		}
		if f.Agency != "" && c.Agency != f.Agency {
			continue
		}
		out = append(out, c)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}

func (r *memCertRepo) GetByID(_ context.Context, id string) (dom.Cert, error) {
	for _, c := range r.certs {
		if c.ID == id {
			return c, nil
		}
	}
	return dom.Cert{}, pgx.ErrNoRows
}

func (r *memCertRepo) ListByNames(_ context.Context, names []string) ([]dom.Cert, error) {
	r.popular.Add(1)
	out := []dom.Cert{}
	for _, n := range names {
		for _, c := range r.certs {
			if c.Name == n {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

func (r *memCertRepo) ListScheduled(_ context.Context) ([]dom.Cert, error) {
	out := []dom.Cert{}
	for _, c := range r.certs {
		if len(c.Schedule) > 0 {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCertRepo) ListAll(_ context.Context) ([]dom.Cert, error) {
	return slices.Clone(r.certs), nil
}

func (r *memCertRepo) Upsert(_ context.Context, c dom.Cert) (dom.Cert, bool, error) {
	for i, existing := range r.certs {
		if existing.Code == c.Code {
			c.ID = existing.ID
			r.certs[i] = c
			return c, false, nil
		}
	}
	c.ID = "cert-" + c.Code
	r.certs = append(r.certs, c)
	return c, true, nil
}

func (r *memCertRepo) SetSchedule(_ context.Context, agency, series string, rounds []dom.ExamRound) (int64, error) {
	var n int64
	for i, c := range r.certs {
		if c.Agency == agency && c.SeriesName == series {
			r.certs[i].Schedule = rounds
			n++
		}
	}
	return n, nil
}

func (r *memCertRepo) ListReminded(ctx context.Context, userID string) ([]dom.Cert, error) {
	out := []dom.Cert{}
	for _, id := range r.reminded[userID] {
		c, _ := r.GetByID(ctx, id)
		out = append(out, c)
	}
	return out, nil
}

func (r *memCertRepo) AddRemind(ctx context.Context, userID, certID string) error {
	if _, err := r.GetByID(ctx, certID); err != nil {
		return &pgconn.PgError{Code: "23503"}
	}
	if r.reminded == nil {
		r.reminded = map[string][]string{}
	}
	if !slices.Contains(r.reminded[userID], certID) {
		r.reminded[userID] = append(r.reminded[userID], certID)
	}
	return nil
}

func (r *memCertRepo) RemoveRemind(_ context.Context, userID, certID string) error {
	ids := r.reminded[userID]
	i := slices.Index(ids, certID)
	if i < 0 {
		return pgx.ErrNoRows
	}
	r.reminded[userID] = slices.Delete(ids, i, i+1)
	return nil
}

// memReportRepo is an in-memory repo.ReportRepo.
type memReportRepo struct {
	reports map[string]dom.WeeklyReport
	upserts int
}

func reportKey(userID string, weekStart time.Time) string {
	return userID + "/" + calendar.DayKey(weekStart)
}

func (r *memReportRepo) Get(_ context.Context, userID string, weekStart time.Time) (dom.WeeklyReport, error) {
	rep, ok := r.reports[reportKey(userID, weekStart)]
	if !ok {
		return dom.WeeklyReport{}, pgx.ErrNoRows
	}
	return rep, nil
}

func (r *memReportRepo) Upsert(_ context.Context, rep dom.WeeklyReport) (dom.WeeklyReport, error) {
	if r.reports == nil {
		r.reports = map[string]dom.WeeklyReport{}
	}
	r.upserts++
	rep.ID = "report-" + reportKey(rep.UserID, rep.WeekStart)
	r.reports[reportKey(rep.UserID, rep.WeekStart)] = rep
	return rep, nil
}

// fakeGen replays a canned completion and records what it was asked.
type fakeGen struct {
	reply      string
	err        error
	calls      int
	lastSystem string
	lastPrompt string
	lastChat   []llm.Message
}

func (g *fakeGen) Generate(_ context.Context, system, prompt string) (string, error) {
	g.calls++
	g.lastSystem, g.lastPrompt = system, prompt
	return g.reply, g.err
}

func (g *fakeGen) Chat(_ context.Context, system string, history []llm.Message) (string, error) {
	g.calls++
	g.lastSystem, g.lastChat = system, history
	return g.reply, g.err
}

type memCatalogCache struct {
	mu          sync.Mutex
	search      map[string][]dom.Cert
	popular     []dom.Cert
	invalidated int
	getErr      error
}

func newMemCatalogCache() *memCatalogCache {
	return &memCatalogCache{search: map[string][]dom.Cert{}}
}

func (c *memCatalogCache) GetSearch(_ context.Context, key string) ([]dom.Cert, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.search[key], nil
}

func (c *memCatalogCache) SetSearch(_ context.Context, key string, list []dom.Cert) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search[key] = list
	return nil
}

func (c *memCatalogCache) GetPopular(context.Context) ([]dom.Cert, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.popular, nil
}

func (c *memCatalogCache) SetPopular(_ context.Context, list []dom.Cert) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.popular = list
	return nil
}

func (c *memCatalogCache) InvalidateAll(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = map[string][]dom.Cert{}
	c.popular = nil
	c.invalidated++
	return nil
}

func (c *memCatalogCache) keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.search))
	for k := range c.search {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
