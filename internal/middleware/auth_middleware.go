package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smartbus/booking-backend/pkg/jwt"
)

// OperatorContextKey is the key used to store operator information in the
// Gin context
const OperatorContextKey = "operator"

// OperatorContext represents the authenticated operator's identity, taken
// from the token issued by the external identity service.
type OperatorContext struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// AuthMiddleware creates a middleware that validates identity tokens on the
// operator console endpoints (walk-on booking, passenger drop).
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Authorization header is required",
			})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Invalid authorization header format. Expected: Bearer <token>",
			})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			reason := "invalid_token"
			if jwtService.IsTokenExpired(parts[1]) {
				reason = "token_expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   reason,
				"message": "Identity token was rejected",
			})
			c.Abort()
			return
		}

		c.Set(OperatorContextKey, OperatorContext{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		})

		c.Next()
	}
}

// GetOperatorContext retrieves the operator context set by AuthMiddleware.
func GetOperatorContext(c *gin.Context) (OperatorContext, bool) {
	value, exists := c.Get(OperatorContextKey)
	if !exists {
		return OperatorContext{}, false
	}

	ctx, ok := value.(OperatorContext)
	return ctx, ok
}
