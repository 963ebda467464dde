// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/session"
)

const sessionContextKey = "session_id"

// Session resolves the anonymous storefront session for every request. A
// valid session cookie is honored; anything else (missing, expired,
// tampered) silently mints a fresh session instead of failing the request.
func Session(cfg *config.Config, manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := ""

		if token, err := c.Cookie(cfg.Session.CookieName); err == nil && token != "" {
			if id, err := manager.Verify(token); err == nil {
				sessionID = id
			}
		}

		if sessionID == "" {
			id, token, err := manager.Issue()
			if err != nil {
				c.JSON(500, gin.H{"error": "Failed to establish session"})
				c.Abort()
				return
			}
			sessionID = id
			c.SetCookie(cfg.Session.CookieName, token, int(cfg.Session.TTL.Seconds()), "/", "", false, true)
		}

		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// GetSessionID returns the session id resolved for the request
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
