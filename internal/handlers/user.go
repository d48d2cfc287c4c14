package handlers

import (
	"net/http"

	"qbit/internal/auth"
	"qbit/internal/dto"
	"qbit/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UpdateMe godoc
// @Summary      Update the current user's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.UpdateProfileRequest  true  "Profile fields"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  map[string]string
// @Router       /users/me [patch]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	userID := auth.UserIDFromContext(c)
	if req.Nickname == nil {
		u, err := h.svc.GetByID(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, userToResponse(u))
		return
	}
	u, err := h.svc.UpdateNickname(c.Request.Context(), userID, *req.Nickname)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(u))
}
