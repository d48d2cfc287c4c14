package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"qbit/internal/auth"
	dom "qbit/internal/domain"
	"qbit/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
)

// SessionStore is the session and OAuth state storage the auth handlers need.
type SessionStore interface {
	Create(ctx context.Context, userID string) (string, error)
	Delete(ctx context.Context, id string) error
	CreateState(ctx context.Context) (string, error)
	ConsumeState(ctx context.Context, state string) error
}

// OAuthProvider runs the Kakao authorization code flow.
type OAuthProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (dom.User, error)
}

// CookieConfig controls the session cookie and where the browser lands after login.
type CookieConfig struct {
	TTL       time.Duration
	Secure    bool
	ClientURL string
}

// AuthHandler handles Kakao login, logout and the current user.
type AuthHandler struct {
	sessions SessionStore
	kakao    OAuthProvider
	userSvc  *service.UserService
	cookie   CookieConfig
	log      hclog.Logger
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(sessions SessionStore, kakao OAuthProvider, userSvc *service.UserService, cookie CookieConfig, logger hclog.Logger) *AuthHandler {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	cookie.ClientURL = strings.TrimRight(cookie.ClientURL, "/")
	return &AuthHandler{sessions: sessions, kakao: kakao, userSvc: userSvc, cookie: cookie, log: logger}
}

// KakaoLogin godoc
// @Summary      Start Kakao login
// @Tags         auth
// @Success      307
// @Failure      500  {object}  map[string]string
// @Router       /auth/kakao [get]
func (h *AuthHandler) KakaoLogin(c *gin.Context) {
	state, err := h.sessions.CreateState(c.Request.Context())
	if err != nil {
		h.log.Error("oauth state", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start login"})
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, h.kakao.AuthCodeURL(state))
}

// KakaoCallback godoc
// @Summary      Kakao login callback
// @Tags         auth
// @Param        code   query  string  true  "Authorization code"
// @Param        state  query  string  true  "State issued by /auth/kakao"
// @Success      302
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/kakao/callback [get]
func (h *AuthHandler) KakaoCallback(c *gin.Context) {
	ctx := c.Request.Context()
	code := c.Query("code")
	if code == "" {
		badRequest(c, "code is required")
		return
	}
	if err := h.sessions.ConsumeState(ctx, c.Query("state")); err != nil {
		if errors.Is(err, auth.ErrInvalidState) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid login state"})
			return
		}
		h.log.Error("oauth state", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	profile, err := h.kakao.Exchange(ctx, code)
	if err != nil {
		h.log.Warn("kakao exchange failed", "error", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "kakao login failed"})
		return
	}
	user, isNew, err := h.userSvc.LoginKakao(ctx, profile)
	if err != nil {
		respondError(c, err)
		return
	}
	sessionID, err := h.sessions.Create(ctx, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	h.setSessionCookie(c, sessionID, int(h.cookie.TTL.Seconds()))
	h.log.Info("user logged in", "user_id", user.ID, "new", isNew)
	if isNew {
		c.Redirect(http.StatusFound, h.cookie.ClientURL+"/onboarding")
		return
	}
	c.Redirect(http.StatusFound, h.cookie.ClientURL+"/?isAuth=true")
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.userSvc.GetByID(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(u))
}

// Logout godoc
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(auth.SessionCookieName)
	if err == nil && sessionID != "" {
		_ = h.sessions.Delete(c.Request.Context(), sessionID)
	}
	h.setSessionCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookieName, value, maxAge, "/", "", h.cookie.Secure, true)
}
