package handlers

import (
	"errors"
	"net/http"

	apperrors "equipment-assignment-backend/internal/errors"
	"equipment-assignment-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssetHandler handles HTTP requests for fleet assets
type AssetHandler struct {
	service service.AssetServiceInterface
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(service service.AssetServiceInterface) *AssetHandler {
	return &AssetHandler{service: service}
}

// CreateAsset handles POST /api/v1/assets
// @Summary Register an asset
// @Description Register a new owned asset in the fleet
// @Tags assets
// @Accept json
// @Produce json
// @Param asset body service.CreateAssetRequest true "Asset data"
// @Success 201 {object} service.AssetResponse "Successfully registered asset"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Asset already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /assets [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req service.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.CreateAsset(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssetExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register asset", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetAsset handles GET /api/v1/assets/:id
// @Summary Get an asset by ID
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID (UUID)"
// @Success 200 {object} service.AssetResponse "Successfully retrieved asset"
// @Failure 400 {object} map[string]interface{} "Invalid asset ID"
// @Failure 404 {object} map[string]interface{} "Asset not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /assets/{id} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset ID: invalid UUID format"})
		return
	}

	resp, err := h.service.GetAssetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get asset", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListAssets handles GET /api/v1/assets
// @Summary List all assets
// @Tags assets
// @Produce json
// @Success 200 {array} service.AssetResponse "Successfully retrieved assets"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /assets [get]
func (h *AssetHandler) ListAssets(c *gin.Context) {
	resp, err := h.service.GetAllAssets()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get assets", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateAsset handles PATCH /api/v1/assets/:id
// @Summary Update an asset
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID (UUID)"
// @Param asset body service.UpdateAssetRequest true "Partial updates"
// @Success 200 {object} service.AssetResponse "Successfully updated asset"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Asset not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /assets/{id} [patch]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset ID: invalid UUID format"})
		return
	}

	var req service.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.UpdateAsset(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update asset", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteAsset handles DELETE /api/v1/assets/:id
// @Summary Delete an asset
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID (UUID)"
// @Success 204 "Asset deleted"
// @Failure 400 {object} map[string]interface{} "Invalid asset ID"
// @Failure 404 {object} map[string]interface{} "Asset not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /assets/{id} [delete]
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset ID: invalid UUID format"})
		return
	}

	if err := h.service.DeleteAsset(id); err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete asset", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
