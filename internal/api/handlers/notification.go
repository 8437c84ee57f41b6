package handlers

import (
	"net/http"

	apperrors "equipment-assignment-backend/internal/errors"
	"equipment-assignment-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles HTTP requests for notification emails
type NotificationHandler struct {
	service service.NotifierServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(service service.NotifierServiceInterface) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// SendNotification handles POST /api/v1/notifications
// @Summary Send a notification email
// @Description Send an email to the given recipients through the configured provider
// @Tags notifications
// @Accept json
// @Produce json
// @Param notification body service.SendNotificationRequest true "Notification data"
// @Success 200 {object} service.SendNotificationResponse "Notification sent"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 502 {object} map[string]interface{} "Provider rejected the notification"
// @Security BearerAuth
// @Router /notifications [post]
func (h *NotificationHandler) SendNotification(c *gin.Context) {
	var req service.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.SendNotification(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send notification", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
