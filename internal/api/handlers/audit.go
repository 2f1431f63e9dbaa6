package handlers

import (
	"net/http"

	"compliance-portal-backend/internal/auth"
	"compliance-portal-backend/internal/repository"
	"compliance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuditHandler handles HTTP requests for the audit trail
type AuditHandler struct {
	auditService *service.AuditService
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
	}
}

// ListAuditLogs handles GET /audit-logs
// @Summary List audit logs
// @Description Get the company's audit trail, newest first, with optional filters
// @Tags audit
// @Accept json
// @Produce json
// @Param actor_id query string false "Filter by acting user ID (UUID)"
// @Param entity_type query string false "Filter by entity type"
// @Param action query string false "Filter by action"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AuditListResponse "Successfully retrieved audit logs"
// @Failure 400 {object} ErrorResponse "Invalid actor ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	companyID, _ := auth.CompanyID(c)
	page, pageSize := parsePaging(c)

	filter := repository.AuditLogFilter{
		EntityType: c.Query("entity_type"),
		Action:     c.Query("action"),
	}
	if raw := c.Query("actor_id"); raw != "" {
		actorID, ok := parseQueryID(c, raw, "actor_id")
		if !ok {
			return
		}
		filter.ActorID = &actorID
	}

	logs, err := h.auditService.GetByCompanyID(companyID, filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}
