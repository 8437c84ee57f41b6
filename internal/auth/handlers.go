package auth

import (
	"errors"
	"net/http"

	apperrors "equipment-assignment-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandlers provides HTTP handlers for the login gate
type AuthHandlers struct {
	service *AuthService
}

// NewAuthHandlers creates new authentication handlers
func NewAuthHandlers(service *AuthService) *AuthHandlers {
	return &AuthHandlers{service: service}
}

// Login handles POST /api/auth/login
// @Summary Log in with the shared password
// @Description Exchange the office password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse "Successfully logged in"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid password"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Validate handles GET /api/auth/validate
// @Summary Validate the current token
// @Description Check whether the presented bearer token is still valid
// @Tags auth
// @Produce json
// @Success 200 {object} AuthValidateResponse "Token is valid"
// @Failure 401 {object} map[string]interface{} "Token is missing or invalid"
// @Security BearerAuth
// @Router /auth/validate [get]
func (h *AuthHandlers) Validate(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}
