package handlers

import (
	"net/http"

	"compliance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// IntegrationHandler handles HTTP requests for the Microsoft 365 mail integration
type IntegrationHandler struct {
	graphService *service.GraphService
}

// NewIntegrationHandler creates a new integration handler
func NewIntegrationHandler(graphService *service.GraphService) *IntegrationHandler {
	return &IntegrationHandler{
		graphService: graphService,
	}
}

// TestMailConnection handles POST /integrations/m365/test
// @Summary Test the Microsoft 365 connection
// @Description Verify that the configured Graph credentials can reach the sender mailbox
// @Tags integrations
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Connection is working"
// @Failure 502 {object} ErrorResponse "Graph request failed"
// @Failure 503 {object} ErrorResponse "Graph credentials not configured"
// @Security BearerAuth
// @Router /integrations/m365/test [post]
func (h *IntegrationHandler) TestMailConnection(c *gin.Context) {
	if err := h.graphService.TestConnection(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
