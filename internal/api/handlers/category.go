package handlers

import (
	"errors"
	"net/http"

	apperrors "equipment-assignment-backend/internal/errors"
	"equipment-assignment-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CategoryHandler handles HTTP requests for equipment categories
type CategoryHandler struct {
	service service.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(service service.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// CreateCategory handles POST /api/v1/categories
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body service.CreateLookupRequest true "Category data"
// @Success 201 {object} service.LookupResponse "Successfully created category"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Category already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req service.CreateLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.CreateCategory(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCategoryExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListCategories handles GET /api/v1/categories
// @Summary List all categories
// @Tags categories
// @Produce json
// @Success 200 {array} service.LookupResponse "Successfully retrieved categories"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	resp, err := h.service.GetAllCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get categories", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RenameCategory handles PUT /api/v1/categories/:id
// @Summary Rename a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Param category body service.RenameLookupRequest true "New name"
// @Success 200 {object} service.LookupResponse "Successfully renamed category"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /categories/{id} [put]
func (h *CategoryHandler) RenameCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID: invalid UUID format"})
		return
	}

	var req service.RenameLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.RenameCategory(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rename category", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteCategory handles DELETE /api/v1/categories/:id
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Success 204 "Category deleted"
// @Failure 400 {object} map[string]interface{} "Invalid category ID"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID: invalid UUID format"})
		return
	}

	if err := h.service.DeleteCategory(id); err != nil {
		if errors.Is(err, apperrors.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
