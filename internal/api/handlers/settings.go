package handlers

import (
	"net/http"

	apperrors "equipment-assignment-backend/internal/errors"
	"equipment-assignment-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SettingsHandler handles HTTP requests for application settings
type SettingsHandler struct {
	service service.SettingsServiceInterface
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(service service.SettingsServiceInterface) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// ChangePassword handles PUT /api/v1/settings/password
// @Summary Change the shared login password
// @Description Replace the office password used for login
// @Tags settings
// @Accept json
// @Produce json
// @Param password body service.ChangePasswordRequest true "New password"
// @Success 204 "Password changed"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /settings/password [put]
func (h *SettingsHandler) ChangePassword(c *gin.Context) {
	var req service.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.ChangeAppPassword(&req); err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
