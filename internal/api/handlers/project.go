package handlers

import (
	"net/http"

	"compliance-portal-backend/internal/auth"
	"compliance-portal-backend/internal/database/models"
	"compliance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	projectService *service.ProjectService
	auditService   *service.AuditService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *service.ProjectService, auditService *service.AuditService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		auditService:   auditService,
	}
}

// ApplyTemplateRequest represents the request to apply a requirement template
type ApplyTemplateRequest struct {
	TemplateID uuid.UUID `json:"template_id" binding:"required"`
}

// scoped loads a project and checks it belongs to the caller's company
func (h *ProjectHandler) scoped(c *gin.Context, id uuid.UUID) (*service.ProjectResponse, bool) {
	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}

	companyID, _ := auth.CompanyID(c)
	if project.CompanyID != companyID {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return nil, false
	}
	return project, true
}

// CreateProject handles POST /projects
// @Summary Create a new project
// @Description Create a project, optionally applying a requirement template
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} service.ProjectResponse "Successfully created project"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Failure 409 {object} ErrorResponse "Project name already in use"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	companyID, _ := auth.CompanyID(c)

	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.CompanyID = companyID

	project, err := h.projectService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "project.created", "project", &project.ID, gin.H{"name": project.Name})

	c.JSON(http.StatusCreated, project)
}

// ListProjects handles GET /projects
// @Summary List projects
// @Description List the company's projects with optional status filter and search
// @Tags projects
// @Accept json
// @Produce json
// @Param status query string false "Filter by status" Enums(active, completed, archived)
// @Param q query string false "Search by name or address"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ProjectListResponse "Successfully retrieved projects"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	companyID, _ := auth.CompanyID(c)
	page, pageSize := parsePaging(c)

	if query := c.Query("q"); query != "" {
		projects, err := h.projectService.Search(companyID, query, page, pageSize)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, projects)
		return
	}

	status := models.ProjectStatus(c.Query("status"))
	projects, err := h.projectService.GetByCompanyID(companyID, status, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject handles GET /projects/:id
// @Summary Get project by ID
// @Description Get a project including its insurance requirements
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.ProjectResponse "Successfully retrieved project"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	project, ok := h.scoped(c, id)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProject handles PUT /projects/:id
// @Summary Update project
// @Description Update a project's details or status
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param project body service.UpdateProjectRequest true "Project data"
// @Success 200 {object} service.ProjectResponse "Successfully updated project"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 409 {object} ErrorResponse "Project name already in use"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, ok := h.scoped(c, id); !ok {
		return
	}

	var req service.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	companyID, _ := auth.CompanyID(c)
	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "project.updated", "project", &id, req)

	c.JSON(http.StatusOK, project)
}

// ApplyTemplate handles POST /projects/:id/apply-template
// @Summary Apply a requirement template
// @Description Copy a template's coverage lines onto the project, skipping coverage types already present
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param request body ApplyTemplateRequest true "Template to apply"
// @Success 200 {object} service.ProjectResponse "Template applied"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Project or template not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/apply-template [post]
func (h *ProjectHandler) ApplyTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, ok := h.scoped(c, id); !ok {
		return
	}

	var req ApplyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.projectService.ApplyTemplate(id, req.TemplateID); err != nil {
		respondError(c, err)
		return
	}

	companyID, _ := auth.CompanyID(c)
	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "project.template_applied", "project", &id, gin.H{"template_id": req.TemplateID})

	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /projects/:id
// @Summary Delete project
// @Description Delete a project along with its requirements and assignments
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 204 "Successfully deleted project"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, ok := h.scoped(c, id); !ok {
		return
	}

	if err := h.projectService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	companyID, _ := auth.CompanyID(c)
	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "project.deleted", "project", &id, nil)

	c.Status(http.StatusNoContent)
}
