package handlers

import (
	"net/http"
	"time"

	"qbit/internal/auth"
	"qbit/internal/dto"
	"qbit/internal/service"

	"github.com/gin-gonic/gin"
)

type MemoHandler struct {
	svc *service.MemoService
}

func NewMemoHandler(svc *service.MemoService) *MemoHandler {
	return &MemoHandler{svc: svc}
}

// Upsert godoc
// @Summary      Write the memo of a day
// @Tags         memos
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.UpsertMemoRequest  true  "Day and content"
// @Success      200   {object}  dto.MemoResponse
// @Failure      400   {object}  map[string]string
// @Router       /memos [post]
func (h *MemoHandler) Upsert(c *gin.Context) {
	var req dto.UpsertMemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	day, ok := requiredDay(c, "scheduled_date", req.ScheduledDate.Ptr())
	if !ok {
		return
	}
	m, err := h.svc.Upsert(c.Request.Context(), auth.UserIDFromContext(c), day, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, memoToResponse(m))
}

// List godoc
// @Summary      List memos
// @Tags         memos
// @Produce      json
// @Security     CookieAuth
// @Param        date  query     string  false  "Only this day"
// @Success      200   {object}  dto.ListMemosResponse
// @Failure      400   {object}  map[string]string
// @Router       /memos [get]
func (h *MemoHandler) List(c *gin.Context) {
	var dayFilter *time.Time
	if c.Query("date") != "" {
		day, ok := queryDay(c, "date")
		if !ok {
			return
		}
		dayFilter = &day
	}
	list, err := h.svc.List(c.Request.Context(), auth.UserIDFromContext(c), dayFilter)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.MemoResponse, len(list))
	for i := range list {
		out[i] = memoToResponse(list[i])
	}
	c.JSON(http.StatusOK, dto.ListMemosResponse{Items: out})
}

// GetByDate godoc
// @Summary      Memo of one day
// @Tags         memos
// @Produce      json
// @Security     CookieAuth
// @Param        date  query     string  true  "YYYY-MM-DD or RFC3339"
// @Success      200   {object}  dto.MemoResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /memos/date [get]
func (h *MemoHandler) GetByDate(c *gin.Context) {
	day, ok := queryDay(c, "date")
	if !ok {
		return
	}
	m, err := h.svc.GetByDate(c.Request.Context(), auth.UserIDFromContext(c), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, memoToResponse(m))
}

// Update godoc
// @Summary      Update a memo
// @Tags         memos
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string                 true  "Memo ID"
// @Param        body  body      dto.UpdateMemoRequest  true  "Partial update"
// @Success      200   {object}  dto.MemoResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /memos/{id} [patch]
func (h *MemoHandler) Update(c *gin.Context) {
	var req dto.UpdateMemoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	p := service.MemoPatch{Content: req.Content}
	if req.ScheduledDate != nil {
		p.Date = req.ScheduledDate.Ptr()
	}
	m, err := h.svc.Update(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id"), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, memoToResponse(m))
}

// Delete godoc
// @Summary      Delete a memo
// @Tags         memos
// @Security     CookieAuth
// @Param        id   path  string  true  "Memo ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /memos/{id} [delete]
func (h *MemoHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
