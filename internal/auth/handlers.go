package auth

import (
	"net/http"

	apperrors "teampulse-backend/internal/errors"
	"teampulse-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// RefreshResponse is the body returned by the refresh endpoint
type RefreshResponse struct {
	Access string `json:"access"`
}

// AuthHandler serves the token lifecycle endpoints
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Refresh handles POST /api/v1/auth/refresh
// @Summary Refresh access token
// @Description Exchange a refresh token for a new access token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} RefreshResponse
// @Failure 400 {object} map[string]interface{} "Missing refresh token"
// @Failure 401 {object} map[string]interface{} "Invalid, expired or revoked token"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refresh token is required", "fields": gin.H{"refresh": "This field is required."}})
		return
	}

	access, err := h.service.RefreshAccessToken(c.Request.Context(), req.Refresh)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.WithContext(c.Request.Context()).WithError(err).Error("token refresh failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token refresh failed"})
		return
	}

	c.JSON(http.StatusOK, RefreshResponse{Access: access})
}

// Logout handles POST /api/v1/auth/logout
// @Summary Logout
// @Description Revoke the given refresh token
// @Tags authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RefreshRequest true "Refresh token"
// @Success 204 "Logged out"
// @Failure 400 {object} map[string]interface{} "Invalid or expired token"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refresh token is required", "fields": gin.H{"refresh": "This field is required."}})
		return
	}

	if err := h.service.RevokeRefreshToken(c.Request.Context(), req.Refresh); err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token", "fields": apperrors.Fields(err)})
			return
		}
		logger.WithContext(c.Request.Context()).WithError(err).Error("logout failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}

	c.Status(http.StatusNoContent)
}
