package handlers

import (
	"net/http"

	"compliance-portal-backend/internal/auth"
	"compliance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RequirementHandler handles HTTP requests for insurance requirements
type RequirementHandler struct {
	requirementService *service.RequirementService
	auditService       *service.AuditService
}

// NewRequirementHandler creates a new requirement handler
func NewRequirementHandler(requirementService *service.RequirementService, auditService *service.AuditService) *RequirementHandler {
	return &RequirementHandler{
		requirementService: requirementService,
		auditService:       auditService,
	}
}

// CreateRequirement handles POST /requirements
// @Summary Add an insurance requirement
// @Description Add a coverage requirement to a project, one per coverage type
// @Tags requirements
// @Accept json
// @Produce json
// @Param requirement body service.CreateRequirementRequest true "Requirement data"
// @Success 201 {object} models.InsuranceRequirement "Successfully created requirement"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 409 {object} ErrorResponse "Coverage type already required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /requirements [post]
func (h *RequirementHandler) CreateRequirement(c *gin.Context) {
	var req service.CreateRequirementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requirement, err := h.requirementService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	companyID, _ := auth.CompanyID(c)
	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "requirement.created", "requirement", &requirement.ID, req)

	c.JSON(http.StatusCreated, requirement)
}

// ListProjectRequirements handles GET /projects/:id/requirements
// @Summary List a project's requirements
// @Description Get the insurance requirements configured on a project
// @Tags requirements
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} models.InsuranceRequirement "Successfully retrieved requirements"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/requirements [get]
func (h *RequirementHandler) ListProjectRequirements(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	requirements, err := h.requirementService.GetByProjectID(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requirements)
}

// UpdateRequirement handles PUT /requirements/:id
// @Summary Update a requirement
// @Description Update a requirement's minimum amount or mandatory flag
// @Tags requirements
// @Accept json
// @Produce json
// @Param id path string true "Requirement ID (UUID)"
// @Param requirement body service.UpdateRequirementRequest true "Requirement data"
// @Success 200 {object} models.InsuranceRequirement "Successfully updated requirement"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Requirement not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /requirements/{id} [put]
func (h *RequirementHandler) UpdateRequirement(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateRequirementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requirement, err := h.requirementService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	companyID, _ := auth.CompanyID(c)
	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "requirement.updated", "requirement", &id, req)

	c.JSON(http.StatusOK, requirement)
}

// DeleteRequirement handles DELETE /requirements/:id
// @Summary Delete a requirement
// @Description Remove a coverage requirement from a project
// @Tags requirements
// @Accept json
// @Produce json
// @Param id path string true "Requirement ID (UUID)"
// @Success 204 "Successfully deleted requirement"
// @Failure 400 {object} ErrorResponse "Invalid requirement ID"
// @Failure 404 {object} ErrorResponse "Requirement not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /requirements/{id} [delete]
func (h *RequirementHandler) DeleteRequirement(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.requirementService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	companyID, _ := auth.CompanyID(c)
	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "requirement.deleted", "requirement", &id, nil)

	c.Status(http.StatusNoContent)
}
