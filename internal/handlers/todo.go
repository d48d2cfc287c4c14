package handlers

import (
	"net/http"
	"time"

	"qbit/internal/auth"
	"qbit/internal/calendar"
	"qbit/internal/dto"
	"qbit/internal/repo"
	"qbit/internal/service"

	"github.com/gin-gonic/gin"
)

type TodoHandler struct {
	svc *service.TodoService
	now func() time.Time
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc, now: time.Now}
}

// ReplaceDay godoc
// @Summary      Replace all todos of a day
// @Description  The day's todos become exactly the given list, which must not be empty. Nothing changes if any item fails.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.ReplaceDayRequest  true  "Day and its todos"
// @Success      201   {object}  dto.ListTodosResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /todos [post]
func (h *TodoHandler) ReplaceDay(c *gin.Context) {
	var req dto.ReplaceDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	day, ok := requiredDay(c, "date", req.Date.Ptr())
	if !ok {
		return
	}
	items := make([]service.TodoInput, len(req.Todos))
	for i, t := range req.Todos {
		items[i] = service.TodoInput{Title: t.Title, Description: t.Description, IsCompleted: t.IsCompleted, CertID: t.CertID}
	}
	list, err := h.svc.ReplaceDay(c.Request.Context(), auth.UserIDFromContext(c), day, items, req.Memo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ListTodosResponse{Items: todosToResponses(list)})
}

// Create godoc
// @Summary      Add one todo to a day
// @Description  The other todos of the day are kept.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateTodoRequest  true  "Todo"
// @Success      201   {object}  dto.TodoResponse
// @Failure      400   {object}  map[string]string
// @Router       /todos/item [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	day, ok := requiredDay(c, "date", req.Date.Ptr())
	if !ok {
		return
	}
	in := service.TodoInput{Title: req.Title, Description: req.Description, IsCompleted: req.IsCompleted, CertID: req.CertID}
	t, err := h.svc.Create(c.Request.Context(), auth.UserIDFromContext(c), day, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todoToResponse(t))
}

// GetDay godoc
// @Summary      Todos and memo of one day
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Param        date  query     string  true  "YYYY-MM-DD or RFC3339"
// @Success      200   {object}  dto.DayResponse
// @Failure      400   {object}  map[string]string
// @Router       /todos/date [get]
func (h *TodoHandler) GetDay(c *gin.Context) {
	day, ok := queryDay(c, "date")
	if !ok {
		return
	}
	view, err := h.svc.GetDay(c.Request.Context(), auth.UserIDFromContext(c), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dayToResponse(view))
}

// GetWeek godoc
// @Summary      Seven days starting at a Sunday
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Param        sunday  query     string  false  "First day of the week, defaults to this week's Sunday"
// @Success      200     {object}  dto.DaysResponse
// @Failure      400     {object}  map[string]string
// @Router       /todos/week [get]
func (h *TodoHandler) GetWeek(c *gin.Context) {
	sunday, ok := queryDayOr(c, "sunday", calendar.WeekStart(h.now()))
	if !ok {
		return
	}
	days, err := h.svc.GetWeek(c.Request.Context(), auth.UserIDFromContext(c), sunday)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, daysToResponse(days))
}

// GetMonth godoc
// @Summary      Every day of a month
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Param        year   query     int  false  "Year, defaults to the current one"
// @Param        month  query     int  false  "Month 1-12, defaults to the current one"
// @Success      200    {object}  dto.DaysResponse
// @Failure      400    {object}  map[string]string
// @Router       /todos/month [get]
func (h *TodoHandler) GetMonth(c *gin.Context) {
	now := h.now().UTC()
	year, ok := queryInt(c, "year", now.Year())
	if !ok {
		return
	}
	month, ok := queryInt(c, "month", int(now.Month()))
	if !ok {
		return
	}
	days, err := h.svc.GetMonth(c.Request.Context(), auth.UserIDFromContext(c), year, time.Month(month))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, daysToResponse(days))
}

// GetYearStats godoc
// @Summary      Completion stats per day of a year
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Param        year  query     int  false  "Year, defaults to the current one"
// @Success      200   {object}  dto.YearStatsResponse
// @Failure      400   {object}  map[string]string
// @Router       /todos/year-stats [get]
func (h *TodoHandler) GetYearStats(c *gin.Context) {
	year, ok := queryInt(c, "year", h.now().UTC().Year())
	if !ok {
		return
	}
	st, err := h.svc.GetYearStats(c.Request.Context(), auth.UserIDFromContext(c), year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.YearStatsResponse{
		Year:                  st.Year,
		Stats:                 nonNilStats(st.Days),
		TotalDays:             st.Summary.TotalDays,
		TotalTodos:            st.Summary.TotalTodos,
		CompletedTodos:        st.Summary.CompletedTodos,
		AverageCompletionRate: st.Summary.AverageRate,
	})
}

// GetStreak godoc
// @Summary      Current and longest run of days with a completed todo
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Param        base  query     string  false  "Reference day, defaults to today"
// @Success      200   {object}  dto.StreakResponse
// @Failure      400   {object}  map[string]string
// @Router       /todos/streak [get]
func (h *TodoHandler) GetStreak(c *gin.Context) {
	base, ok := queryDayOr(c, "base", h.now())
	if !ok {
		return
	}
	st, err := h.svc.GetStreak(c.Request.Context(), auth.UserIDFromContext(c), base)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, streakToResponse(st))
}

// Exists godoc
// @Summary      Whether a day has any todo or memo
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Param        date  query     string  true  "YYYY-MM-DD or RFC3339"
// @Success      200   {object}  dto.ExistsResponse
// @Failure      400   {object}  map[string]string
// @Router       /todos/exists [get]
func (h *TodoHandler) Exists(c *gin.Context) {
	day, ok := queryDay(c, "date")
	if !ok {
		return
	}
	exists, err := h.svc.ExistsForDate(c.Request.Context(), auth.UserIDFromContext(c), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ExistsResponse{Date: calendar.DayKey(day), Exists: exists})
}

// List godoc
// @Summary      List todos
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Param        date          query     string  false  "Only this day"
// @Param        is_completed  query     bool    false  "Filter by completion"
// @Param        search        query     string  false  "Substring of title or description"
// @Success      200           {object}  dto.ListTodosResponse
// @Failure      400           {object}  map[string]string
// @Router       /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	var f repo.TodoFilter
	if c.Query("date") != "" {
		day, ok := queryDay(c, "date")
		if !ok {
			return
		}
		f.Date = &day
	}
	done, ok := queryBool(c, "is_completed")
	if !ok {
		return
	}
	f.IsCompleted = done
	f.Search = c.Query("search")
	list, err := h.svc.List(c.Request.Context(), auth.UserIDFromContext(c), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListTodosResponse{Items: todosToResponses(list)})
}

// GetByID godoc
// @Summary      Get a todo by ID
// @Tags         todos
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      string  true  "Todo ID"
// @Success      200  {object}  dto.TodoResponse
// @Failure      404  {object}  map[string]string
// @Router       /todos/{id} [get]
func (h *TodoHandler) GetByID(c *gin.Context) {
	t, err := h.svc.GetByID(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todoToResponse(t))
}

// Update godoc
// @Summary      Update a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string                 true  "Todo ID"
// @Param        body  body      dto.UpdateTodoRequest  true  "Partial update"
// @Success      200   {object}  dto.TodoResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /todos/{id} [patch]
func (h *TodoHandler) Update(c *gin.Context) {
	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	p := service.TodoPatch{
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
		CertID:      req.CertID,
	}
	if req.Date != nil {
		p.Date = req.Date.Ptr()
	}
	t, err := h.svc.Update(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id"), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todoToResponse(t))
}

// Complete godoc
// @Summary      Set completion of a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string                   true  "Todo ID"
// @Param        body  body      dto.CompleteTodoRequest  true  "Completion flag"
// @Success      200   {object}  dto.TodoResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /todos/{id}/complete [patch]
func (h *TodoHandler) Complete(c *gin.Context) {
	var req dto.CompleteTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	t, err := h.svc.SetCompleted(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id"), *req.IsCompleted)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todoToResponse(t))
}

// Delete godoc
// @Summary      Delete a todo
// @Tags         todos
// @Security     CookieAuth
// @Param        id   path  string  true  "Todo ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
