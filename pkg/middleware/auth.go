package middleware

import (
	"net/http"

	"github.com/mithuan2002/testisimple/internal/session"
	"github.com/mithuan2002/testisimple/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminIDKey is the gin context key carrying the authenticated admin's ID.
const AdminIDKey = "adminID"

// RequireSession guards admin routes behind a valid session cookie. On
// success the admin ID is stored in the request context under AdminIDKey.
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := sessions.Current(c)
		if err != nil {
			logger.Error("Failed to resolve session", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			c.Abort()
			return
		}
		if sess == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		c.Set(AdminIDKey, sess.AdminID)
		c.Next()
	}
}

// AdminID returns the authenticated admin's ID set by RequireSession.
func AdminID(c *gin.Context) (int, bool) {
	v, exists := c.Get(AdminIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}
