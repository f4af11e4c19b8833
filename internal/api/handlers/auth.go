package handlers

import (
	"net/http"

	"parts-tracking-backend/internal/auth"
	"parts-tracking-backend/internal/database/models"
	apperrors "parts-tracking-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login, logout and session inspection
type AuthHandler struct {
	authenticator auth.AuthenticatorInterface
	sessions      *auth.SessionManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authenticator auth.AuthenticatorInterface, sessions *auth.SessionManager) *AuthHandler {
	return &AuthHandler{
		authenticator: authenticator,
		sessions:      sessions,
	}
}

// LoginRequest represents the login form
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"ravi"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// LoginResponse carries the new session identity. The token is also set as
// the session cookie.
type LoginResponse struct {
	Identity  *auth.Identity `json:"identity"`
	Token     string         `json:"token"`
	ExpiresIn int64          `json:"expires_in" example:"604800"`
}

// AdminLogin handles POST /api/auth/admin/login
// @Summary Administrator login
// @Description Verify administrator credentials and start a session. Five consecutive failures lock the account for 15 minutes.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Invalid username or password"
// @Failure 429 {object} ErrorResponse "Account temporarily locked"
// @Router /auth/admin/login [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	h.login(c, models.RoleAdmin)
}

// EmployeeLogin handles POST /api/auth/employee/login
// @Summary Employee login
// @Description Verify employee credentials and start a session. Five consecutive failures lock the account for 15 minutes.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Invalid username or password"
// @Failure 429 {object} ErrorResponse "Account temporarily locked"
// @Router /auth/employee/login [post]
func (h *AuthHandler) EmployeeLogin(c *gin.Context) {
	h.login(c, models.RoleEmployee)
}

func (h *AuthHandler) login(c *gin.Context, role models.Role) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "", "username and password are required")
		return
	}

	identity, err := h.authenticator.Authenticate(c.Request.Context(), role, req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.sessions.Issue(identity)
	if err != nil {
		respondError(c, err)
		return
	}
	h.sessions.SetCookie(c, token)

	c.JSON(http.StatusOK, LoginResponse{
		Identity:  identity,
		Token:     token,
		ExpiresIn: int64(h.sessions.TTL().Seconds()),
	})
}

// Logout handles POST /api/auth/logout
// @Summary Logout
// @Description Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.ClearCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me handles GET /api/auth/me
// @Summary Current identity
// @Description Return the identity of the current session
// @Tags auth
// @Produce json
// @Success 200 {object} auth.Identity
// @Failure 401 {object} ErrorResponse
// @Security SessionCookie
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := auth.GetIdentity(c)
	if !ok {
		respondError(c, apperrors.ErrSessionMissing)
		return
	}
	c.JSON(http.StatusOK, identity)
}
