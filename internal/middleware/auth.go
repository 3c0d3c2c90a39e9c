package middleware

import (
	"net/http"
	"strings"

	"internhub_backend/internal/auth"
	"internhub_backend/internal/logger"
	"internhub_backend/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ContextAccountID   = "accountID"
	ContextAccountKind = "accountKind"
	ContextDisplayName = "displayName"
)

// AuthMiddleware verifies the bearer token and stores its claims in the
// Gin context. Ownership checks downstream read these claims, never a
// body or query field.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		ctx := logger.WithAccountID(c.Request.Context(), claims.Subject)
		c.Request = c.Request.WithContext(ctx)

		c.Set(ContextAccountID, claims.AccountID)
		c.Set(ContextAccountKind, claims.Kind)
		c.Set(ContextDisplayName, claims.DisplayName)
		c.Next()
	}
}

// RequireKind gates a route group to one account kind.
func RequireKind(kind models.AccountKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		kindVal, exists := c.Get(ContextAccountKind)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied: no account kind"})
			return
		}

		kindStr, ok := kindVal.(string)
		if !ok || kindStr != string(kind) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied: wrong account kind"})
			return
		}

		c.Next()
	}
}

// GetAccountID extracts the authenticated account's id from the context.
func GetAccountID(c *gin.Context) (uint, bool) {
	val, exists := c.Get(ContextAccountID)
	if !exists {
		return 0, false
	}
	id, ok := val.(uint)
	return id, ok
}
