package handlers

import (
	"net/http"

	"teampulse-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AccountHandler serves registration and login
type AccountHandler struct {
	userService service.UserServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(userService service.UserServiceInterface) *AccountHandler {
	return &AccountHandler{
		userService: userService,
	}
}

// Register handles POST /auth/register
// @Summary Register a new account
// @Description Create a user account and return it together with an access/refresh token pair
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body service.RegisterRequest true "Account data"
// @Success 201 {object} service.RegisterResponse "Account created"
// @Failure 400 {object} ErrorResponse "Invalid input or username/email taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AccountHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /auth/login
// @Summary Log in
// @Description Authenticate with email or username and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body service.LoginRequest true "Credentials"
// @Success 200 {object} service.LoginResponse "Authenticated"
// @Failure 400 {object} ErrorResponse "Missing credentials"
// @Failure 401 {object} ErrorResponse "Invalid credentials or disabled account"
// @Router /auth/login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.userService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
