package handlers

import (
	"net/http"
	"strconv"

	"compliance-portal-backend/internal/auth"
	"compliance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ComplianceHandler handles HTTP requests for compliance dashboards
type ComplianceHandler struct {
	complianceService *service.ComplianceService
}

// NewComplianceHandler creates a new compliance handler
func NewComplianceHandler(complianceService *service.ComplianceService) *ComplianceHandler {
	return &ComplianceHandler{
		complianceService: complianceService,
	}
}

// GetSummary handles GET /compliance/summary
// @Summary Compliance summary
// @Description Get the company's live compliance counts and rate across all assignments
// @Tags compliance
// @Accept json
// @Produce json
// @Success 200 {object} service.SummaryResponse "Current compliance summary"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /compliance/summary [get]
func (h *ComplianceHandler) GetSummary(c *gin.Context) {
	companyID, _ := auth.CompanyID(c)

	summary, err := h.complianceService.Summary(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetTrend handles GET /compliance/trend
// @Summary Compliance trend
// @Description Get daily compliance snapshots for the requested window, backfilling history when needed
// @Tags compliance
// @Accept json
// @Produce json
// @Param days query int false "Window size in days (1-365)" default(30)
// @Success 200 {object} service.TrendResponse "Compliance trend points"
// @Failure 400 {object} ErrorResponse "Invalid days parameter"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /compliance/trend [get]
func (h *ComplianceHandler) GetTrend(c *gin.Context) {
	companyID, _ := auth.CompanyID(c)

	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days parameter"})
		return
	}

	trend, err := h.complianceService.GetTrend(c.Request.Context(), companyID, days)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, trend)
}

// Recompute handles POST /compliance/recompute
// @Summary Recompute today's snapshot
// @Description Force an immediate recomputation of today's compliance snapshot
// @Tags compliance
// @Accept json
// @Produce json
// @Success 200 {object} models.ComplianceSnapshot "Recomputed snapshot"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /compliance/recompute [post]
func (h *ComplianceHandler) Recompute(c *gin.Context) {
	companyID, _ := auth.CompanyID(c)

	snapshot, err := h.complianceService.ComputeToday(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
