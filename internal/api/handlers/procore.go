package handlers

import (
	"net/http"

	"compliance-portal-backend/internal/auth"
	"compliance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProcoreHandler handles HTTP requests for the Procore integration
type ProcoreHandler struct {
	procoreService *service.ProcoreService
	auditService   *service.AuditService
}

// NewProcoreHandler creates a new Procore handler
func NewProcoreHandler(procoreService *service.ProcoreService, auditService *service.AuditService) *ProcoreHandler {
	return &ProcoreHandler{
		procoreService: procoreService,
		auditService:   auditService,
	}
}

// Connect handles GET /procore/connect
// @Summary Start Procore OAuth flow
// @Description Get the Procore authorization URL to redirect the user to
// @Tags procore
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Authorization URL"
// @Failure 502 {object} ErrorResponse "Procore integration not configured"
// @Security BearerAuth
// @Router /procore/connect [get]
func (h *ProcoreHandler) Connect(c *gin.Context) {
	companyID, _ := auth.CompanyID(c)

	url, err := h.procoreService.ConnectURL(companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// Callback handles GET /procore/callback
// @Summary Procore OAuth callback
// @Description Exchange the authorization code and store the company's Procore tokens
// @Tags procore
// @Accept json
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "State issued at connect time"
// @Success 200 {object} map[string]string "Connection established"
// @Failure 400 {object} ErrorResponse "Missing code or state"
// @Failure 502 {object} ErrorResponse "Token exchange failed"
// @Router /procore/callback [get]
func (h *ProcoreHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code and state are required"})
		return
	}

	if err := h.procoreService.HandleCallback(c.Request.Context(), state, code); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "connected"})
}

// Status handles GET /procore/status
// @Summary Procore connection status
// @Description Check whether the company has a live Procore connection
// @Tags procore
// @Accept json
// @Produce json
// @Success 200 {object} service.ConnectionStatus "Connection status"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /procore/status [get]
func (h *ProcoreHandler) Status(c *gin.Context) {
	companyID, _ := auth.CompanyID(c)

	status, err := h.procoreService.Status(companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// Disconnect handles DELETE /procore/connection
// @Summary Disconnect Procore
// @Description Remove the company's stored Procore tokens
// @Tags procore
// @Accept json
// @Produce json
// @Success 204 "Disconnected"
// @Failure 404 {object} ErrorResponse "No connection to remove"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /procore/connection [delete]
func (h *ProcoreHandler) Disconnect(c *gin.Context) {
	companyID, _ := auth.CompanyID(c)

	if err := h.procoreService.Disconnect(companyID); err != nil {
		respondError(c, err)
		return
	}

	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "procore.disconnected", "integration", nil, nil)

	c.Status(http.StatusNoContent)
}

// SyncVendors handles POST /procore/sync/vendors
// @Summary Import Procore vendors
// @Description Import the company's Procore vendor directory as subcontractors
// @Tags procore
// @Accept json
// @Produce json
// @Success 200 {object} service.SyncResult "Import outcome"
// @Failure 400 {object} ErrorResponse "Procore not connected"
// @Failure 502 {object} ErrorResponse "Procore request failed"
// @Security BearerAuth
// @Router /procore/sync/vendors [post]
func (h *ProcoreHandler) SyncVendors(c *gin.Context) {
	companyID, _ := auth.CompanyID(c)

	result, err := h.procoreService.SyncVendors(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "procore.vendors_synced", "integration", nil, result)

	c.JSON(http.StatusOK, result)
}

// SyncProjects handles POST /procore/sync/projects
// @Summary Import Procore projects
// @Description Import the company's Procore projects
// @Tags procore
// @Accept json
// @Produce json
// @Success 200 {object} service.SyncResult "Import outcome"
// @Failure 400 {object} ErrorResponse "Procore not connected"
// @Failure 502 {object} ErrorResponse "Procore request failed"
// @Security BearerAuth
// @Router /procore/sync/projects [post]
func (h *ProcoreHandler) SyncProjects(c *gin.Context) {
	companyID, _ := auth.CompanyID(c)

	result, err := h.procoreService.SyncProjects(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "procore.projects_synced", "integration", nil, result)

	c.JSON(http.StatusOK, result)
}
