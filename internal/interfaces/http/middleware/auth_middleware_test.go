package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"localserve.backend/pkg/jwt"
)

func TestAuthMiddleware_BearerFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := jwt.NewJWTService("secret", time.Hour)

	r := gin.New()
	r.Use(AuthMiddleware(jwtService))
	r.GET("/me", func(c *gin.Context) {
		id, ok := GetUserID(c)
		require.True(t, ok)
		require.NotEqual(t, uuid.Nil, id)
		c.Status(http.StatusNoContent)
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("not bearer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer invalid")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := jwtService.GenerateToken(uuid.New(), "kumar@example.com", "user")
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := jwt.NewJWTService("secret", -time.Minute)

	token, err := jwtService.GenerateToken(uuid.New(), "kumar@example.com", "user")
	require.NoError(t, err)

	r := gin.New()
	r.Use(AuthMiddleware(jwtService))
	r.GET("/me", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "expired")
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := jwt.NewJWTService("secret", time.Hour)

	r := gin.New()
	r.Use(AuthMiddleware(jwtService))
	admin := r.Group("/admin", RequireAdmin())
	admin.GET("/links", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	provider := r.Group("/providers", RequireRole("provider", "admin"))
	provider.GET("/services", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	user := r.Group("/cart", RequireUser())
	user.GET("", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	doGet := func(path, role string) int {
		token, err := jwtService.GenerateToken(uuid.New(), "x@example.com", role)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusForbidden, doGet("/admin/links", "user"))
	require.Equal(t, http.StatusNoContent, doGet("/admin/links", "admin"))
	require.Equal(t, http.StatusForbidden, doGet("/providers/services", "user"))
	require.Equal(t, http.StatusNoContent, doGet("/providers/services", "provider"))
	require.Equal(t, http.StatusNoContent, doGet("/providers/services", "admin"))
	require.Equal(t, http.StatusNoContent, doGet("/cart", "user"))
	require.Equal(t, http.StatusForbidden, doGet("/cart", "provider"))
}

func TestRequireRole_NoAuthContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/x", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUserHelpers_Empty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetUserID(c)
	require.False(t, ok)
	_, ok = GetUserEmail(c)
	require.False(t, ok)
	_, ok = GetUserRole(c)
	require.False(t, ok)
}
