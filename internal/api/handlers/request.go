package handlers

import (
	"errors"
	"net/http"

	apperrors "equipment-assignment-backend/internal/errors"
	"equipment-assignment-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestHandler handles HTTP requests for the fulfillment ledger
type RequestHandler struct {
	service service.LedgerServiceInterface
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(service service.LedgerServiceInterface) *RequestHandler {
	return &RequestHandler{service: service}
}

// CreateRequest handles POST /api/v1/requests
// @Summary Create an equipment request
// @Description Register a new PENDING request raised by an operative unit
// @Tags requests
// @Accept json
// @Produce json
// @Param request body service.CreateRequestRequest true "Request data"
// @Success 201 {object} service.RequestResponse "Successfully created request"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Operative unit or category not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req service.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.CreateRequest(&req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create request", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetRequest handles GET /api/v1/requests/:id
// @Summary Get a request by ID
// @Description Get a request with its fulfillment records
// @Tags requests
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Success 200 {object} service.RequestResponse "Successfully retrieved request"
// @Failure 400 {object} map[string]interface{} "Invalid request ID"
// @Failure 404 {object} map[string]interface{} "Request not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /requests/{id} [get]
func (h *RequestHandler) GetRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID: invalid UUID format"})
		return
	}

	resp, err := h.service.GetRequest(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get request", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AssignOwned handles POST /api/v1/requests/:id/assign/owned
// @Summary Assign owned assets
// @Description Cover part of a request with owned assets, one unit per item
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param assignment body service.AssignOwnedRequest true "Owned assignment items"
// @Success 200 {object} service.RequestResponse "Request after the assignment"
// @Failure 400 {object} map[string]interface{} "Invalid assignment"
// @Failure 404 {object} map[string]interface{} "Request or asset not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /requests/{id}/assign/owned [post]
func (h *RequestHandler) AssignOwned(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID: invalid UUID format"})
		return
	}

	var req service.AssignOwnedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.AssignOwned(id, &req)
	if err != nil {
		h.respondAssignmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AssignRental handles POST /api/v1/requests/:id/assign/rental
// @Summary Arrange rentals
// @Description Cover part of a request with rentals, one unit per duration entry
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param assignment body service.AssignRentalRequest true "Rental durations in months"
// @Success 200 {object} service.RequestResponse "Request after the assignment"
// @Failure 400 {object} map[string]interface{} "Invalid assignment"
// @Failure 404 {object} map[string]interface{} "Request not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /requests/{id}/assign/rental [post]
func (h *RequestHandler) AssignRental(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID: invalid UUID format"})
		return
	}

	var req service.AssignRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.AssignRental(id, &req)
	if err != nil {
		h.respondAssignmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AssignPurchase handles POST /api/v1/requests/:id/assign/purchase
// @Summary Open a purchase
// @Description Cover the entire unfulfilled remainder of a request with one purchase
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param assignment body service.AssignPurchaseRequest true "Purchase details"
// @Success 200 {object} service.RequestResponse "Request after the assignment"
// @Failure 400 {object} map[string]interface{} "Invalid assignment"
// @Failure 404 {object} map[string]interface{} "Request not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /requests/{id}/assign/purchase [post]
func (h *RequestHandler) AssignPurchase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID: invalid UUID format"})
		return
	}

	var req service.AssignPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.AssignPurchase(id, &req)
	if err != nil {
		h.respondAssignmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MarkCompleted handles POST /api/v1/requests/:id/complete
// @Summary Mark a request completed
// @Description Close a request regardless of its fulfilled quantity
// @Tags requests
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Success 204 "Request marked completed"
// @Failure 400 {object} map[string]interface{} "Invalid request ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /requests/{id}/complete [post]
func (h *RequestHandler) MarkCompleted(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID: invalid UUID format"})
		return
	}

	if err := h.service.MarkCompleted(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark request completed", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// RevertCompleted handles POST /api/v1/requests/:id/reopen
// @Summary Reopen a completed request
// @Description Revert a completed request to in-progress, keeping its records
// @Tags requests
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Success 204 "Request reopened"
// @Failure 400 {object} map[string]interface{} "Invalid request ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /requests/{id}/reopen [post]
func (h *RequestHandler) RevertCompleted(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID: invalid UUID format"})
		return
	}

	if err := h.service.RevertCompleted(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reopen request", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// ListRows handles GET /api/v1/rows
// @Summary List dashboard rows
// @Description Get the flattened view: one row per fulfillment record plus pending remainders
// @Tags rows
// @Produce json
// @Param search query string false "Free text filter"
// @Param operative_unit_id query string false "Operative unit filter (UUID)"
// @Param category_id query string false "Category filter (UUID)"
// @Param status query string false "Row status filter" Enums(PENDING, OWNED, RENTAL, PURCHASE, COMPLETED)
// @Success 200 {object} service.RequestRowListResponse "Successfully retrieved rows"
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /rows [get]
func (h *RequestHandler) ListRows(c *gin.Context) {
	filters := service.ListRowsFilters{Search: c.Query("search")}

	if raw := c.Query("operative_unit_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid operative unit ID: invalid UUID format"})
			return
		}
		filters.OperativeUnitID = &id
	}
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID: invalid UUID format"})
			return
		}
		filters.CategoryID = &id
	}
	if raw := c.Query("status"); raw != "" {
		status := service.RowStatus(raw)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}
		filters.Status = &status
	}

	resp, err := h.service.ListRows(filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rows", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// EditRow handles PATCH /api/v1/rows/:id
// @Summary Edit a dashboard row
// @Description Apply partial updates; shared fields land on the owning request, channel fields on the record
// @Tags rows
// @Accept json
// @Produce json
// @Param id path string true "Row ID (UUID)"
// @Param updates body service.EditRowRequest true "Partial updates"
// @Success 204 "Row updated"
// @Failure 400 {object} map[string]interface{} "Invalid updates"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /rows/{id} [patch]
func (h *RequestHandler) EditRow(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid row ID: invalid UUID format"})
		return
	}

	var req service.EditRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.EditRow(id, &req); err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to edit row", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteRow handles DELETE /api/v1/rows/:id
// @Summary Delete a dashboard row
// @Description Delete a fulfillment record, or a whole request while it has no records
// @Tags rows
// @Produce json
// @Param id path string true "Row ID (UUID)"
// @Success 204 "Row deleted"
// @Failure 400 {object} map[string]interface{} "Request still has fulfillment records"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /rows/{id} [delete]
func (h *RequestHandler) DeleteRow(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid row ID: invalid UUID format"})
		return
	}

	if err := h.service.DeleteRow(id); err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete row", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// respondAssignmentError maps assignment failures to HTTP codes
func (h *RequestHandler) respondAssignmentError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply assignment", "details": err.Error()})
	}
}
