package auth

import (
	"context"
	"net/http"
	"strings"

	"teampulse-backend/internal/access"
	"teampulse-backend/internal/database/models"
	apperrors "teampulse-backend/internal/errors"
	"teampulse-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const callerKey = "caller"

// UserLookup loads the user behind a token so deactivated or deleted accounts are rejected
type UserLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
	users   UserLookup
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService, users UserLookup) *AuthMiddleware {
	return &AuthMiddleware{service: service, users: users}
}

// RequireAuth validates the access token and sets the caller on the context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingToken.Error()})
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := m.service.ValidateAccessToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidAccessToken.Error()})
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidAccessToken.Error()})
			return
		}

		// Role and status come from the database, not the token
		user, err := m.users.GetByID(c.Request.Context(), userID)
		if err != nil || user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}
		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User account is disabled"})
			return
		}

		SetCaller(c, access.Caller{
			UserID:   user.ID,
			Username: user.Username,
			IsStaff:  user.IsStaff,
		})
		c.Next()
	}
}

// RequireAdmin rejects callers that are not staff. It must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingToken.Error()})
			return
		}
		if !caller.IsStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrAdminRequired.Error()})
			return
		}
		c.Next()
	}
}

// SetCaller stores the caller on the gin context and the request context
func SetCaller(c *gin.Context, caller access.Caller) {
	c.Set(callerKey, caller)
	c.Set("username", caller.Username)
	c.Request = c.Request.WithContext(logger.ContextWithUsername(c.Request.Context(), caller.Username))
}

// GetCaller is a helper function to extract the authenticated caller from context
func GetCaller(c *gin.Context) (access.Caller, bool) {
	value, exists := c.Get(callerKey)
	if !exists {
		return access.Caller{}, false
	}

	caller, ok := value.(access.Caller)
	return caller, ok
}
