package handlers

import (
	"net/http"

	"compliance-portal-backend/internal/auth"
	"compliance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CommunicationHandler handles HTTP requests for outbound subcontractor emails
type CommunicationHandler struct {
	communicationService *service.CommunicationService
	auditService         *service.AuditService
}

// NewCommunicationHandler creates a new communication handler
func NewCommunicationHandler(communicationService *service.CommunicationService, auditService *service.AuditService) *CommunicationHandler {
	return &CommunicationHandler{
		communicationService: communicationService,
		auditService:         auditService,
	}
}

// SendCommunication handles POST /communications
// @Summary Email a subcontractor
// @Description Send a certificate request, reminder, or expiry notice to a subcontractor's contact email
// @Tags communications
// @Accept json
// @Produce json
// @Param communication body service.SendCommunicationRequest true "Message data"
// @Success 201 {object} models.Communication "Message sent and logged"
// @Failure 400 {object} ErrorResponse "Invalid request or subcontractor has no contact email"
// @Failure 404 {object} ErrorResponse "Subcontractor not found"
// @Failure 502 {object} ErrorResponse "Mail delivery failed"
// @Security BearerAuth
// @Router /communications [post]
func (h *CommunicationHandler) SendCommunication(c *gin.Context) {
	var req service.SendCommunicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	communication, err := h.communicationService.Send(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	companyID, _ := auth.CompanyID(c)
	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "communication.sent", "communication", &communication.ID, gin.H{"subcontractor_id": req.SubcontractorID, "type": req.Type})

	c.JSON(http.StatusCreated, communication)
}

// ListCommunications handles GET /communications
// @Summary List communications
// @Description Get the company's outbound message log, newest first
// @Tags communications
// @Accept json
// @Produce json
// @Param subcontractor_id query string false "Filter by subcontractor ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.CommunicationListResponse "Successfully retrieved communications"
// @Failure 400 {object} ErrorResponse "Invalid subcontractor ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /communications [get]
func (h *CommunicationHandler) ListCommunications(c *gin.Context) {
	companyID, _ := auth.CompanyID(c)
	page, pageSize := parsePaging(c)

	if raw := c.Query("subcontractor_id"); raw != "" {
		subcontractorID, ok := parseQueryID(c, raw, "subcontractor_id")
		if !ok {
			return
		}
		communications, err := h.communicationService.GetBySubcontractorID(subcontractorID, page, pageSize)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, communications)
		return
	}

	communications, err := h.communicationService.GetByCompanyID(companyID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, communications)
}
