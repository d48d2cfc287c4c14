package handlers

import (
	"net/http"
	"time"

	"qbit/internal/auth"
	"qbit/internal/calendar"
	"qbit/internal/dto"
	"qbit/internal/llm"
	"qbit/internal/service"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	svc *service.AIService
	now func() time.Time
}

func NewAIHandler(svc *service.AIService) *AIHandler {
	return &AIHandler{svc: svc, now: time.Now}
}

// Generate godoc
// @Summary      Answer a free prompt
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.GenerateRequest  true  "Prompt"
// @Success      200   {object}  dto.TextResponse
// @Failure      400   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /ai/generate [post]
func (h *AIHandler) Generate(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	text, err := h.svc.Generate(c.Request.Context(), req.Prompt, req.SystemMessage)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TextResponse{Text: text})
}

// Chat godoc
// @Summary      Continue a conversation
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.ChatRequest  true  "Whole conversation, last turn from the user"
// @Success      200   {object}  dto.TextResponse
// @Failure      400   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /ai/chat [post]
func (h *AIHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	history := make([]llm.Message, len(req.Messages))
	for i, m := range req.Messages {
		history[i] = llm.Message{Role: llm.Role(m.Role), Content: m.Content}
	}
	text, err := h.svc.Chat(c.Request.Context(), history)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TextResponse{Text: text})
}

// Recommend godoc
// @Summary      Recommend certifications for a profile
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.RecommendRequest  true  "Profile"
// @Success      200   {object}  dto.RecommendResponse
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /ai/recommend [post]
func (h *AIHandler) Recommend(c *gin.Context) {
	var req dto.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	rec, err := h.svc.Recommend(c.Request.Context(), service.RecommendProfile{
		Age:            req.Age,
		Education:      req.Education,
		Field:          req.Field,
		Experience:     req.Experience,
		Goal:           req.Goal,
		AdditionalInfo: req.AdditionalInfo,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	items := make([]dto.RecommendationItem, len(rec.Recommendations))
	for i, r := range rec.Recommendations {
		items[i] = dto.RecommendationItem{
			CertID:         r.CertID,
			Name:           r.Name,
			Reason:         r.Reason,
			Difficulty:     r.Difficulty,
			ExpectedPeriod: r.ExpectedPeriod,
			MatchScore:     r.MatchScore,
		}
	}
	c.JSON(http.StatusOK, dto.RecommendResponse{Recommendations: items, Summary: rec.Summary, AIMessage: rec.AIMessage})
}

// WeeklyReport godoc
// @Summary      AI review of a week of todos
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.WeeklyReportRequest  false  "Week and refresh flag"
// @Success      200   {object}  dto.WeeklyReportResponse
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /ai/weekly-report [post]
func (h *AIHandler) WeeklyReport(c *gin.Context) {
	var req dto.WeeklyReportRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
	}
	sunday := calendar.WeekStart(h.now())
	if d := req.SundayDate.Ptr(); d != nil {
		sunday = *d
	}
	rep, err := h.svc.WeeklyReport(c.Request.Context(), auth.UserIDFromContext(c), sunday, req.Refresh)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reportToResponse(rep))
}
