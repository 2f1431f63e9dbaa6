package handlers

import (
	"net/http"

	"compliance-portal-backend/internal/auth"
	"compliance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssignmentHandler handles HTTP requests for project-subcontractor assignments
type AssignmentHandler struct {
	assignmentService *service.AssignmentService
	complianceService *service.ComplianceService
	auditService      *service.AuditService
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService *service.AssignmentService, complianceService *service.ComplianceService, auditService *service.AuditService) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
		complianceService: complianceService,
		auditService:      auditService,
	}
}

// scoped resolves an assignment's company and checks it matches the caller's
func (h *AssignmentHandler) scoped(c *gin.Context, id uuid.UUID) (uuid.UUID, bool) {
	companyID, err := h.assignmentService.CompanyIDForAssignment(id)
	if err != nil {
		respondError(c, err)
		return uuid.Nil, false
	}

	callerCompanyID, _ := auth.CompanyID(c)
	if companyID != callerCompanyID {
		c.JSON(http.StatusNotFound, gin.H{"error": "assignment not found"})
		return uuid.Nil, false
	}
	return companyID, true
}

// AssignSubcontractor handles POST /assignments
// @Summary Assign a subcontractor to a project
// @Description Create a project-subcontractor assignment with an initial pending status
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body service.AssignSubcontractorRequest true "Assignment data"
// @Success 201 {object} service.AssignmentResponse "Successfully created assignment"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Project or subcontractor not found"
// @Failure 409 {object} ErrorResponse "Subcontractor already assigned"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /assignments [post]
func (h *AssignmentHandler) AssignSubcontractor(c *gin.Context) {
	var req service.AssignSubcontractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.Assign(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	companyID, _ := auth.CompanyID(c)
	h.complianceService.Invalidate(c.Request.Context(), companyID)

	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "assignment.created", "assignment", &assignment.ID, req)

	c.JSON(http.StatusCreated, assignment)
}

// ListProjectAssignments handles GET /projects/:id/assignments
// @Summary List a project's assignments
// @Description Get all subcontractors assigned to a project with their compliance status
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AssignmentListResponse "Successfully retrieved assignments"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/assignments [get]
func (h *AssignmentHandler) ListProjectAssignments(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := parsePaging(c)

	assignments, err := h.assignmentService.GetByProjectID(projectID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// ListSubcontractorAssignments handles GET /subcontractors/:id/assignments
// @Summary List a subcontractor's assignments
// @Description Get every project assignment for a subcontractor
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Subcontractor ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AssignmentListResponse "Successfully retrieved assignments"
// @Failure 400 {object} ErrorResponse "Invalid subcontractor ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /subcontractors/{id}/assignments [get]
func (h *AssignmentHandler) ListSubcontractorAssignments(c *gin.Context) {
	subcontractorID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := parsePaging(c)

	assignments, err := h.assignmentService.GetBySubcontractorID(subcontractorID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// SetAssignmentStatus handles PUT /assignments/:id/status
// @Summary Set an assignment's compliance status
// @Description Change an assignment's status; the exception status requires a reason
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Param status body service.SetAssignmentStatusRequest true "Status change"
// @Success 200 {object} service.AssignmentResponse "Successfully updated status"
// @Failure 400 {object} ErrorResponse "Invalid status or missing exception reason"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /assignments/{id}/status [put]
func (h *AssignmentHandler) SetAssignmentStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	companyID, ok := h.scoped(c, id)
	if !ok {
		return
	}

	var req service.SetAssignmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.SetStatus(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	// Status changes move the compliance numbers, so cached trends go stale
	h.complianceService.Invalidate(c.Request.Context(), companyID)

	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "assignment.status_changed", "assignment", &id, req)

	c.JSON(http.StatusOK, assignment)
}

// RemoveAssignment handles DELETE /assignments/:id
// @Summary Remove an assignment
// @Description Remove a subcontractor from a project
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 204 "Successfully removed assignment"
// @Failure 400 {object} ErrorResponse "Invalid assignment ID"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /assignments/{id} [delete]
func (h *AssignmentHandler) RemoveAssignment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	companyID, ok := h.scoped(c, id)
	if !ok {
		return
	}

	if err := h.assignmentService.Remove(id); err != nil {
		respondError(c, err)
		return
	}

	h.complianceService.Invalidate(c.Request.Context(), companyID)

	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "assignment.removed", "assignment", &id, nil)

	c.Status(http.StatusNoContent)
}
