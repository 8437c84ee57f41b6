package handlers

import (
	"errors"
	"net/http"

	apperrors "equipment-assignment-backend/internal/errors"
	"equipment-assignment-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OperativeUnitHandler handles HTTP requests for operative units
type OperativeUnitHandler struct {
	service service.OperativeUnitServiceInterface
}

// NewOperativeUnitHandler creates a new operative unit handler
func NewOperativeUnitHandler(service service.OperativeUnitServiceInterface) *OperativeUnitHandler {
	return &OperativeUnitHandler{service: service}
}

// CreateUnit handles POST /api/v1/operative-units
// @Summary Create an operative unit
// @Tags operative-units
// @Accept json
// @Produce json
// @Param unit body service.CreateLookupRequest true "Unit data"
// @Success 201 {object} service.LookupResponse "Successfully created operative unit"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Operative unit already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /operative-units [post]
func (h *OperativeUnitHandler) CreateUnit(c *gin.Context) {
	var req service.CreateLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.CreateUnit(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrOperativeUnitExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create operative unit", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListUnits handles GET /api/v1/operative-units
// @Summary List all operative units
// @Tags operative-units
// @Produce json
// @Success 200 {array} service.LookupResponse "Successfully retrieved operative units"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /operative-units [get]
func (h *OperativeUnitHandler) ListUnits(c *gin.Context) {
	resp, err := h.service.GetAllUnits()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get operative units", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RenameUnit handles PUT /api/v1/operative-units/:id
// @Summary Rename an operative unit
// @Tags operative-units
// @Accept json
// @Produce json
// @Param id path string true "Operative unit ID (UUID)"
// @Param unit body service.RenameLookupRequest true "New name"
// @Success 200 {object} service.LookupResponse "Successfully renamed operative unit"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Operative unit not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /operative-units/{id} [put]
func (h *OperativeUnitHandler) RenameUnit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid operative unit ID: invalid UUID format"})
		return
	}

	var req service.RenameLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.RenameUnit(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrOperativeUnitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rename operative unit", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteUnit handles DELETE /api/v1/operative-units/:id
// @Summary Delete an operative unit
// @Tags operative-units
// @Produce json
// @Param id path string true "Operative unit ID (UUID)"
// @Success 204 "Operative unit deleted"
// @Failure 400 {object} map[string]interface{} "Invalid operative unit ID"
// @Failure 404 {object} map[string]interface{} "Operative unit not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /operative-units/{id} [delete]
func (h *OperativeUnitHandler) DeleteUnit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid operative unit ID: invalid UUID format"})
		return
	}

	if err := h.service.DeleteUnit(id); err != nil {
		if errors.Is(err, apperrors.ErrOperativeUnitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete operative unit", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
