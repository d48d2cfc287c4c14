package handlers

import (
	"net/http"

	"qbit/internal/auth"
	dom "qbit/internal/domain"
	"qbit/internal/dto"
	"qbit/internal/repo"
	"qbit/internal/service"

	"github.com/gin-gonic/gin"
)

type PassedCertHandler struct {
	svc *service.PassedCertService
}

func NewPassedCertHandler(svc *service.PassedCertService) *PassedCertHandler {
	return &PassedCertHandler{svc: svc}
}

// Create godoc
// @Summary      Record a passed exam
// @Tags         passed-certs
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreatePassedCertRequest  true  "Passed exam"
// @Success      201   {object}  dto.PassedCertResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /passed-certs [post]
func (h *PassedCertHandler) Create(c *gin.Context) {
	var req dto.CreatePassedCertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	day, ok := requiredDay(c, "passed_date", req.PassedDate.Ptr())
	if !ok {
		return
	}
	p, err := h.svc.Create(c.Request.Context(), auth.UserIDFromContext(c), service.PassedCertInput{
		CertID:     req.CertID,
		PassedDate: day,
		Score:      req.Score,
		Type:       dom.PassedCertType(req.Type),
		Memo:       req.Memo,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, passedCertToResponse(p))
}

// List godoc
// @Summary      List passed exams, newest first
// @Tags         passed-certs
// @Produce      json
// @Security     CookieAuth
// @Param        cert_id  query     string  false  "Only this cert"
// @Param        type     query     string  false  "written, practical or final"
// @Success      200      {object}  dto.ListPassedCertsResponse
// @Router       /passed-certs [get]
func (h *PassedCertHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), auth.UserIDFromContext(c), repo.PassedCertFilter{
		CertID: c.Query("cert_id"),
		Type:   dom.PassedCertType(c.Query("type")),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.PassedCertResponse, len(list))
	for i := range list {
		out[i] = passedCertToResponse(list[i])
	}
	c.JSON(http.StatusOK, dto.ListPassedCertsResponse{Items: out})
}

// GetByID godoc
// @Summary      Get a passed exam
// @Tags         passed-certs
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      string  true  "Record ID"
// @Success      200  {object}  dto.PassedCertResponse
// @Failure      404  {object}  map[string]string
// @Router       /passed-certs/{id} [get]
func (h *PassedCertHandler) GetByID(c *gin.Context) {
	p, err := h.svc.GetByID(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, passedCertToResponse(p))
}

// Update godoc
// @Summary      Update a passed exam
// @Tags         passed-certs
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string                       true  "Record ID"
// @Param        body  body      dto.UpdatePassedCertRequest  true  "Partial update"
// @Success      200   {object}  dto.PassedCertResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /passed-certs/{id} [patch]
func (h *PassedCertHandler) Update(c *gin.Context) {
	var req dto.UpdatePassedCertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	p := service.PassedCertPatch{
		CertID:     req.CertID,
		Score:      req.Score,
		ClearScore: req.ClearScore,
		Memo:       req.Memo,
	}
	if req.PassedDate != nil {
		p.PassedDate = req.PassedDate.Ptr()
	}
	if req.Type != nil {
		t := dom.PassedCertType(*req.Type)
		p.Type = &t
	}
	out, err := h.svc.Update(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id"), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, passedCertToResponse(out))
}

// Delete godoc
// @Summary      Delete a passed exam
// @Tags         passed-certs
// @Security     CookieAuth
// @Param        id   path  string  true  "Record ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /passed-certs/{id} [delete]
func (h *PassedCertHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), auth.UserIDFromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
