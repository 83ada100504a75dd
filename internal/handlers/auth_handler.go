package handlers

import (
	"errors"
	"net/http"

	"github.com/mithuan2002/testisimple/internal/models"
	"github.com/mithuan2002/testisimple/internal/services"
	"github.com/mithuan2002/testisimple/internal/session"
	"github.com/mithuan2002/testisimple/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoginRequest is the credential payload for POST /api/auth/login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthHandler handles admin login, logout and session status
type AuthHandler struct {
	authService AuthServiceInterface
	sessions    *session.Manager
	activity    ActivityServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthServiceInterface, sessions *session.Manager, activity ActivityServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		activity:    activity,
	}
}

// Login verifies credentials and issues a session cookie (POST /api/auth/login)
func (h *AuthHandler) Login(c *gin.Context) {
	logger.Info("Auth login endpoint called")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	admin, err := h.authService.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			logger.Warn("Login failed", zap.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		logger.Error("Login lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if _, err := h.sessions.Issue(c, admin.ID); err != nil {
		logger.Error("Failed to issue session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.activity.Record(models.ActivityTypeAuth,
		`Admin <span class="font-medium">%s</span> logged in`, admin.Username)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    admin.ToResponse(),
	})
}

// Logout destroys the current session (POST /api/auth/logout)
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Clear(c); err != nil {
		logger.Error("Failed to clear session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Status reports whether the request carries a valid session (GET /api/auth/status)
func (h *AuthHandler) Status(c *gin.Context) {
	sess, err := h.sessions.Current(c)
	if err != nil {
		logger.Error("Failed to resolve session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}
