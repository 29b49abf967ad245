package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"moviweb/internal/domain"
	"moviweb/internal/pkg/jwt"
)

func protectedRouter(jwtService *jwt.Service) *gin.Engine {
	router := gin.New()
	router.Use(JWTAuth(jwtService))
	router.GET("/protected", func(c *gin.Context) {
		actor, _ := Actor(c)
		c.JSON(http.StatusOK, gin.H{
			"actor_id": actor.ID,
			"role":     actor.Role,
		})
	})
	return router
}

func TestJWTAuth_ValidToken(t *testing.T) {
	jwtService := jwt.New("test-secret-123", 1*time.Hour)
	validToken, _ := jwtService.GenerateToken(42, string(domain.RoleUser))

	router := protectedRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+validToken)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
	assert.Contains(t, w.Body.String(), "user")
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	jwtService := jwt.New("secret", 1*time.Hour)

	router := protectedRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	jwtService := jwt.New("secret", 1*time.Hour)

	router := protectedRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly_RejectsUserRole(t *testing.T) {
	jwtService := jwt.New("secret", 1*time.Hour)
	userToken, _ := jwtService.GenerateToken(7, string(domain.RoleUser))

	router := gin.New()
	router.Use(JWTAuth(jwtService), AdminOnly())
	router.GET("/admin", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
