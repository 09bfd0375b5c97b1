package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ProtocolNetwork/shop-portal/internal/roles"
)

// RequireRole gates a route group to one role. An authenticated principal
// with the wrong role gets a 403 message, never a crash.
func RequireRole(role roles.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get(ContextUserRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
			return
		}

		current, ok := val.(roles.Role)
		if !ok || current != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "role_required"})
			return
		}

		c.Next()
	}
}
