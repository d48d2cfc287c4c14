package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"qbit/internal/dto"
	"qbit/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTodoRouter(r *memTodoRepo, now time.Time) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTodoHandler(service.NewTodoService(r, memoView{r}))
	h.now = func() time.Time { return now }

	router := gin.New()
	g := router.Group("/todos", asUser(owner))
	g.POST("", h.ReplaceDay)
	g.POST("/item", h.Create)
	g.GET("", h.List)
	g.GET("/date", h.GetDay)
	g.GET("/week", h.GetWeek)
	g.GET("/month", h.GetMonth)
	g.GET("/year-stats", h.GetYearStats)
	g.GET("/streak", h.GetStreak)
	g.GET("/exists", h.Exists)
	g.GET("/:id", h.GetByID)
	g.PATCH("/:id", h.Update)
	g.PATCH("/:id/complete", h.Complete)
	g.DELETE("/:id", h.Delete)
	return router
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return v
}

var testNow = time.Date(2024, 3, 13, 15, 0, 0, 0, time.UTC) // Wednesday

func TestReplaceDayThenGetDay(t *testing.T) {
	r := &memTodoRepo{}
	router := newTodoRouter(r, testNow)

	w := do(router, http.MethodPost, "/todos",
		`{"date":"2024-03-10","todos":[{"title":"read ch.1"},{"title":"quiz","is_completed":true}],"memo":"good day"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("replace: status %d body %s", w.Code, w.Body.String())
	}
	if got := decode[dto.ListTodosResponse](t, w); len(got.Items) != 2 || got.Items[0].ScheduledDate != "2024-03-10" {
		t.Fatalf("replace response = %+v", got)
	}

	w = do(router, http.MethodPost, "/todos", `{"date":"2024-03-10T22:30:00Z","todos":[{"title":"only one"}]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("second replace: status %d", w.Code)
	}

	w = do(router, http.MethodGet, "/todos/date?date=2024-03-10", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get day: status %d", w.Code)
	}
	dayResp := decode[dto.DayResponse](t, w)
	if dayResp.ScheduledDateStr != "2024-03-10" || len(dayResp.Todos) != 1 || dayResp.Todos[0].Title != "only one" {
		t.Errorf("day = %+v", dayResp)
	}
	if dayResp.Memo == nil || dayResp.Memo.Content != "good day" {
		t.Errorf("memo should survive a replace without memo, got %+v", dayResp.Memo)
	}
}

func TestReplaceDayErrors(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		fail   error
		status int
	}{
		{"missing date", `{"todos":[{"title":"a"}]}`, nil, http.StatusBadRequest},
		{"bad date", `{"date":"10/03/2024","todos":[]}`, nil, http.StatusBadRequest},
		{"blank title", `{"date":"2024-03-10","todos":[{"title":"  "}]}`, nil, http.StatusBadRequest},
		{"store failure", `{"date":"2024-03-10","todos":[{"title":"a"}]}`, errBoom, http.StatusConflict},
		{"unknown cert", `{"date":"2024-03-10","todos":[{"title":"a","cert_id":"nope"}]}`, &pgconn.PgError{Code: "23503"}, http.StatusBadRequest},
		{"store timeout", `{"date":"2024-03-10","todos":[{"title":"a"}]}`, context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &memTodoRepo{failInsert: tc.fail}
			router := newTodoRouter(r, testNow)
			w := do(router, http.MethodPost, "/todos", tc.body)
			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tc.status, w.Body.String())
			}
		})
	}
}

func TestReplaceDayFailureKeepsPreviousTodos(t *testing.T) {
	r := &memTodoRepo{}
	router := newTodoRouter(r, testNow)
	do(router, http.MethodPost, "/todos", `{"date":"2024-03-10","todos":[{"title":"keep me"}]}`)

	r.failInsert = errBoom
	if w := do(router, http.MethodPost, "/todos", `{"date":"2024-03-10","todos":[{"title":"new"}]}`); w.Code != http.StatusConflict {
		t.Fatalf("status = %d", w.Code)
	}
	got := decode[dto.DayResponse](t, do(router, http.MethodGet, "/todos/date?date=2024-03-10", ""))
	if len(got.Todos) != 1 || got.Todos[0].Title != "keep me" {
		t.Errorf("todos after aborted replace = %+v", got.Todos)
	}
}

func TestReplaceDayRequiresTodos(t *testing.T) {
	for _, body := range []string{`{"date":"2024-03-10"}`, `{"date":"2024-03-10","todos":[]}`, `{"date":"2024-03-10","todos":null}`} {
		r := &memTodoRepo{}
		router := newTodoRouter(r, testNow)
		do(router, http.MethodPost, "/todos", `{"date":"2024-03-10","todos":[{"title":"keep me"},{"title":"me too"}]}`)

		if w := do(router, http.MethodPost, "/todos", body); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", body, w.Code)
		}
		got := decode[dto.DayResponse](t, do(router, http.MethodGet, "/todos/date?date=2024-03-10", ""))
		if len(got.Todos) != 2 {
			t.Errorf("%s: day now holds %+v", body, got.Todos)
		}
	}
}

func TestCreateTodoItem(t *testing.T) {
	r := &memTodoRepo{}
	router := newTodoRouter(r, testNow)
	do(router, http.MethodPost, "/todos", `{"date":"2024-03-10","todos":[{"title":"existing"}]}`)

	w := do(router, http.MethodPost, "/todos/item", `{"date":"2024-03-10T21:00:00Z","title":" mock exam ","is_completed":true}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d body %s", w.Code, w.Body.String())
	}
	created := decode[dto.TodoResponse](t, w)
	if created.ID == "" || created.Title != "mock exam" || created.ScheduledDate != "2024-03-10" || !created.IsCompleted {
		t.Errorf("created = %+v", created)
	}

	day := decode[dto.DayResponse](t, do(router, http.MethodGet, "/todos/date?date=2024-03-10", ""))
	if len(day.Todos) != 2 {
		t.Errorf("day = %+v, want the existing todo kept", day.Todos)
	}

	for _, body := range []string{`{"title":"no date"}`, `{"date":"2024-03-10"}`, `{"date":"2024-03-10","title":"   "}`} {
		if w := do(router, http.MethodPost, "/todos/item", body); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", body, w.Code)
		}
	}
}

func TestGetWeekDefaultsToCurrentSunday(t *testing.T) {
	router := newTodoRouter(&memTodoRepo{}, testNow)
	w := do(router, http.MethodGet, "/todos/week", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	got := decode[dto.DaysResponse](t, w)
	if len(got.Days) != 7 || got.Days[0].ScheduledDateStr != "2024-03-10" || got.Days[6].ScheduledDateStr != "2024-03-16" {
		t.Errorf("week = %+v", got.Days)
	}
	for _, d := range got.Days {
		if d.Todos == nil {
			t.Errorf("%s: todos should be an empty list", d.ScheduledDateStr)
		}
	}
}

func TestGetMonth(t *testing.T) {
	router := newTodoRouter(&memTodoRepo{}, testNow)
	cases := []struct {
		query  string
		status int
		days   int
	}{
		{"", http.StatusOK, 31},
		{"?year=2024&month=2", http.StatusOK, 29},
		{"?year=2023&month=2", http.StatusOK, 28},
		{"?year=2024&month=13", http.StatusBadRequest, 0},
		{"?year=abc", http.StatusBadRequest, 0},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			w := do(router, http.MethodGet, "/todos/month"+tc.query, "")
			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d", w.Code, tc.status)
			}
			if tc.status == http.StatusOK {
				if got := decode[dto.DaysResponse](t, w); len(got.Days) != tc.days {
					t.Errorf("days = %d, want %d", len(got.Days), tc.days)
				}
			}
		})
	}
}

func TestYearStatsAndStreak(t *testing.T) {
	r := &memTodoRepo{}
	router := newTodoRouter(r, testNow)
	do(router, http.MethodPost, "/todos", `{"date":"2024-03-12","todos":[{"title":"a","is_completed":true},{"title":"b"}]}`)
	do(router, http.MethodPost, "/todos", `{"date":"2024-03-13","todos":[{"title":"c","is_completed":true}]}`)

	stats := decode[dto.YearStatsResponse](t, do(router, http.MethodGet, "/todos/year-stats", ""))
	if stats.Year != 2024 || stats.TotalDays != 2 || stats.TotalTodos != 3 || stats.CompletedTodos != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AverageCompletionRate != 75 {
		t.Errorf("average = %v, want 75", stats.AverageCompletionRate)
	}

	streak := decode[dto.StreakResponse](t, do(router, http.MethodGet, "/todos/streak", ""))
	if streak.CurrentStreak != 2 || streak.LongestStreak != 2 {
		t.Errorf("streak = %+v", streak)
	}
	if streak.StreakStart == nil || *streak.StreakStart != "2024-03-12" {
		t.Errorf("streak start = %v", streak.StreakStart)
	}
}

func TestExists(t *testing.T) {
	r := &memTodoRepo{}
	router := newTodoRouter(r, testNow)
	do(router, http.MethodPost, "/todos", `{"date":"2024-03-10","todos":[{"title":"a"}]}`)

	for date, want := range map[string]bool{"2024-03-10": true, "2024-03-11": false} {
		got := decode[dto.ExistsResponse](t, do(router, http.MethodGet, "/todos/exists?date="+date, ""))
		if got.Exists != want {
			t.Errorf("exists(%s) = %v, want %v", date, got.Exists, want)
		}
	}
	if w := do(router, http.MethodGet, "/todos/exists", ""); w.Code != http.StatusBadRequest {
		t.Errorf("missing date: status %d", w.Code)
	}
}

func TestTodoItemRoutes(t *testing.T) {
	r := &memTodoRepo{}
	router := newTodoRouter(r, testNow)
	created := decode[dto.ListTodosResponse](t, do(router, http.MethodPost, "/todos", `{"date":"2024-03-10","todos":[{"title":"a"}]}`))
	id := created.Items[0].ID

	w := do(router, http.MethodPatch, "/todos/"+id+"/complete", `{"is_completed":true}`)
	if w.Code != http.StatusOK || !decode[dto.TodoResponse](t, w).IsCompleted {
		t.Fatalf("complete: %d %s", w.Code, w.Body.String())
	}
	if w := do(router, http.MethodPatch, "/todos/"+id+"/complete", `{}`); w.Code != http.StatusBadRequest {
		t.Errorf("complete without flag: status %d", w.Code)
	}

	w = do(router, http.MethodPatch, "/todos/"+id, `{"date":"2024-03-11","title":"moved"}`)
	moved := decode[dto.TodoResponse](t, w)
	if w.Code != http.StatusOK || moved.ScheduledDate != "2024-03-11" || moved.Title != "moved" {
		t.Fatalf("update: %d %+v", w.Code, moved)
	}

	list := decode[dto.ListTodosResponse](t, do(router, http.MethodGet, "/todos?is_completed=true", ""))
	if len(list.Items) != 1 {
		t.Errorf("completed list = %+v", list.Items)
	}

	if w := do(router, http.MethodDelete, "/todos/"+id, ""); w.Code != http.StatusNoContent {
		t.Errorf("delete: status %d", w.Code)
	}
	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		if w := do(router, method, "/todos/"+id, ""); w.Code != http.StatusNotFound {
			t.Errorf("%s after delete: status %d", method, w.Code)
		}
	}
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
