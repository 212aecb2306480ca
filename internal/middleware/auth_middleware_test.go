package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smartbus/booking-backend/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(jwtService *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/protected", AuthMiddleware(jwtService), func(c *gin.Context) {
		operator, ok := GetOperatorContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing operator context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": operator.UserID, "email": operator.Email, "role": operator.Role})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := jwt.NewService("test-secret", 1*time.Hour)
	router := setupAuthRouter(jwtService)

	t.Run("Valid Token", func(t *testing.T) {
		token, err := jwtService.GenerateToken(42, "operator@example.com", "operator")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 42.0, response["id"])
		assert.Equal(t, "operator@example.com", response["email"])
		assert.Equal(t, "operator", response["role"])
	})

	t.Run("Missing Authorization Header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "unauthorized", response["error"])
	})

	t.Run("Malformed Header", func(t *testing.T) {
		for _, header := range []string{"Bearer", "Basic abc123", "Bearer "} {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/protected", nil)
			req.Header.Set("Authorization", header)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q should be rejected", header)
		}
	})

	t.Run("Invalid Token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "invalid_token", response["error"])
	})

	t.Run("Expired Token", func(t *testing.T) {
		expiredService := jwt.NewService("test-secret", -1*time.Minute)
		token, err := expiredService.GenerateToken(42, "operator@example.com", "operator")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "token_expired", response["error"])
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		otherService := jwt.NewService("different-secret", 1*time.Hour)
		token, err := otherService.GenerateToken(42, "operator@example.com", "operator")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetOperatorContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Context Not Set", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		_, ok := GetOperatorContext(c)
		assert.False(t, ok)
	})

	t.Run("Context Set", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(OperatorContextKey, OperatorContext{UserID: 7, Email: "op@example.com", Role: "operator"})

		operator, ok := GetOperatorContext(c)
		require.True(t, ok)
		assert.Equal(t, int64(7), operator.UserID)
	})
}
