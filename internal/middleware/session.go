package middleware

import (
	"net/http"

	"pizzeria/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	SessionCookie = "pizzeria_session"
	sessionKey    = "sessionID"
)

// Session makes sure every request carries a session id. A missing, expired
// or tampered cookie starts a new session instead of failing the request.
func Session(signer *token.Signer, secure bool, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		if raw, err := c.Cookie(SessionCookie); err == nil {
			if sid, err := signer.Parse(raw); err == nil {
				c.Set(sessionKey, sid)
				c.Next()
				return
			}
			logger.Debug("discarding session cookie", zap.String("path", c.Request.URL.Path))
		}

		sid := uuid.New().String()
		tok, err := signer.Issue(sid)
		if err != nil {
			logger.Error("issue session token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not start session"})
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, tok, int(signer.TTL().Seconds()), "/", "", secure, true)
		c.Set(sessionKey, sid)
		c.Next()
	}
}

// SessionID returns the id attached by Session.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
