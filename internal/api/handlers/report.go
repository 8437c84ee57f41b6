package handlers

import (
	"net/http"

	"equipment-assignment-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles HTTP requests for PDF reports
type ReportHandler struct {
	service service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(service service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{service: service}
}

// GenerateReport handles GET /api/v1/reports/requests
// @Summary Download the request report
// @Description Render the dashboard as a PDF, unified or restricted to one status
// @Tags reports
// @Produce application/pdf
// @Param status query string false "Restrict the report to one row status" Enums(PENDING, OWNED, RENTAL, PURCHASE, COMPLETED)
// @Success 200 {file} binary "PDF report"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /reports/requests [get]
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	var status *service.RowStatus
	if raw := c.Query("status"); raw != "" {
		s := service.RowStatus(raw)
		if !s.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}
		status = &s
	}

	pdf, filename, err := h.service.GenerateReport(status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report", "details": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
