package httpserver

import (
	"net/http"

	"coffee-storefront/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionIDKey = "session_id"

// sessionMiddleware resolves the visitor session from its cookie, issuing a
// new one when the cookie is missing or malformed.
func sessionMiddleware(visitors visitorService, cookieName string, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, _ := c.Cookie(cookieName)
		id, err := visitors.Validate(raw)
		if err != nil {
			id, err = visitors.Issue()
			if err != nil {
				logger.FromGin(c).Error("issue session id", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
				return
			}
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookieName, id, visitors.TTLSeconds(), "/", "", secure, true)
		c.Set(sessionIDKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
