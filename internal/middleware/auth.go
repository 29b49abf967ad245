package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"moviweb/internal/domain"
	jwtsvc "moviweb/internal/pkg/jwt"
	"moviweb/internal/pkg/response"
)

const actorKey = "actor"

// JWTAuth validates the bearer token and stores the resulting actor in
// the request context. Services never look at session state directly;
// they receive this actor explicitly.
func JWTAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		c.Set(actorKey, domain.Actor{
			ID:   claims.ActorID,
			Role: domain.Role(claims.Role),
		})

		c.Next()
	}
}

// Actor returns the authenticated actor placed by JWTAuth. The second
// return is false on routes that skipped the auth middleware.
func Actor(c *gin.Context) (domain.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}
