package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie holding the session ID.
const SessionCookieName = "session_id"

const contextKeyUserID = "user_id"

// SessionLookup resolves a session ID to a user ID.
type SessionLookup interface {
	GetUserID(ctx context.Context, sessionID string) (string, bool)
}

// UserIDFromContext returns the current user ID set by RequireSession. Empty if not set.
func UserIDFromContext(c *gin.Context) string {
	return c.GetString(contextKeyUserID)
}

// SetUserID marks the request as made by userID.
func SetUserID(c *gin.Context, userID string) {
	c.Set(contextKeyUserID, userID)
}

// RequireSession returns a middleware that checks for a valid session cookie
// and sets the current user ID in context. If missing or invalid, responds with 401.
func RequireSession(sessions SessionLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		userID, ok := sessions.GetUserID(c.Request.Context(), sessionID)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		SetUserID(c, userID)
		c.Next()
	}
}
