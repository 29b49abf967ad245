package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moviweb/internal/domain"
	"moviweb/internal/pkg/response"
)

// RequireRole ensures the authenticated actor has the given role.
func RequireRole(required domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := Actor(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Actor not found in context")
			c.Abort()
			return
		}

		if actor.Role != required {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly guards the admin route group.
func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}

// UserOnly guards routes that only act on a user's own data.
func UserOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleUser)
}
