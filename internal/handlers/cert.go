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

const (
	defaultKeywordLimit  = 10
	defaultUpcomingLimit = 3
)

type CertHandler struct {
	svc *service.CertService
	now func() time.Time
}

func NewCertHandler(svc *service.CertService) *CertHandler {
	return &CertHandler{svc: svc, now: time.Now}
}

// Search godoc
// @Summary      Search the certification catalog
// @Tags         certs
// @Produce      json
// @Param        keyword          query     string  false  "Substring of the name"
// @Param        agency           query     string  false  "Exact agency"
// @Param        series           query     string  false  "Exact series name"
// @Param        oblig_field      query     string  false  "Exact field name"
// @Param        mid_oblig_field  query     string  false  "Exact sub-field name"
// @Success      200              {object}  dto.ListCertsResponse
// @Router       /certs/search [get]
func (h *CertHandler) Search(c *gin.Context) {
	list, err := h.svc.Search(c.Request.Context(), repo.CertFilter{
		Keyword:       c.Query("keyword"),
		Agency:        c.Query("agency"),
		Series:        c.Query("series"),
		ObligField:    c.Query("oblig_field"),
		MidObligField: c.Query("mid_oblig_field"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, certsToResponse(list))
}

// SearchKeyword godoc
// @Summary      Search certifications by name
// @Tags         certs
// @Produce      json
// @Param        q      query     string  true   "Substring of the name"
// @Param        limit  query     int     false  "1-50, default 10"
// @Success      200    {object}  dto.ListCertsResponse
// @Failure      400    {object}  map[string]string
// @Router       /certs/search/keyword [get]
func (h *CertHandler) SearchKeyword(c *gin.Context) {
	limit, ok := queryInt(c, "limit", defaultKeywordLimit)
	if !ok {
		return
	}
	list, err := h.svc.SearchKeyword(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, certsToResponse(list))
}

// Popular godoc
// @Summary      Popular certifications
// @Tags         certs
// @Produce      json
// @Success      200  {object}  dto.ListCertsResponse
// @Router       /certs/popular [get]
func (h *CertHandler) Popular(c *gin.Context) {
	list, err := h.svc.Popular(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, certsToResponse(list))
}

// Upcoming godoc
// @Summary      Certifications with an exam in the next seven days
// @Tags         certs
// @Produce      json
// @Param        limit  query     int  false  "Default 3"
// @Success      200    {object}  dto.ListUpcomingResponse
// @Failure      400    {object}  map[string]string
// @Router       /certs/upcoming [get]
func (h *CertHandler) Upcoming(c *gin.Context) {
	limit, ok := queryInt(c, "limit", defaultUpcomingLimit)
	if !ok {
		return
	}
	list, err := h.svc.Upcoming(c.Request.Context(), h.now(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.UpcomingCertResponse, len(list))
	for i, u := range list {
		out[i] = dto.UpcomingCertResponse{
			CertResponse:  certToResponse(u.Cert),
			ExamDate:      calendar.DayKey(u.ExamDate),
			DaysUntilExam: u.DaysUntilExam,
		}
	}
	c.JSON(http.StatusOK, dto.ListUpcomingResponse{Items: out})
}

// GetByID godoc
// @Summary      Get a certification
// @Tags         certs
// @Produce      json
// @Param        id   path      string  true  "Cert ID"
// @Success      200  {object}  dto.CertResponse
// @Failure      404  {object}  map[string]string
// @Router       /certs/{id} [get]
func (h *CertHandler) GetByID(c *gin.Context) {
	cert, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, certToResponse(cert))
}

// ListReminded godoc
// @Summary      Certifications on the user's reminder list
// @Tags         certs
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListCertsResponse
// @Router       /certs/remind/list [get]
func (h *CertHandler) ListReminded(c *gin.Context) {
	list, err := h.svc.ListReminded(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, certsToResponse(list))
}

// AddRemind godoc
// @Summary      Add a certification to the reminder list
// @Tags         certs
// @Security     CookieAuth
// @Param        id   path  string  true  "Cert ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /certs/remind/{id} [post]
func (h *CertHandler) AddRemind(c *gin.Context) {
	if err := h.svc.AddRemind(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveRemind godoc
// @Summary      Remove a certification from the reminder list
// @Tags         certs
// @Security     CookieAuth
// @Param        id   path  string  true  "Cert ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /certs/remind/{id} [delete]
func (h *CertHandler) RemoveRemind(c *gin.Context) {
	if err := h.svc.RemoveRemind(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
