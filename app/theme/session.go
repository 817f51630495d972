package theme

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/travel-explorer/internal/logger"
	"github.com/joefazee/travel-explorer/internal/security"
)

const sessionContextKey = "sessionID"

// SessionMiddleware attaches a session id to every request. The id travels
// in an encrypted cookie; a missing, forged or expired cookie starts a new
// session. Sessions only key the theme, they authenticate nothing.
func SessionMiddleware(maker security.Maker, cfg *Config, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, err := c.Cookie(cfg.CookieName); err == nil && raw != "" {
			if payload, err := maker.VerifyToken(raw); err == nil {
				c.Set(sessionContextKey, payload.SessionID)
				c.Next()
				return
			}
		}

		sessionID := uuid.New()
		token, _, err := maker.CreateToken(sessionID, cfg.SessionTTL)
		if err != nil {
			log.Error(err, map[string]interface{}{"component": "theme.session"})
		} else {
			setCookie(c, cfg, token)
		}
		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// SessionID returns the session attached by SessionMiddleware
func SessionID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func setCookie(c *gin.Context, cfg *Config, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, token, int(cfg.SessionTTL/time.Second), "/", "", cfg.SecureCookie, true)
}
