package handlers

import (
	"net/http"

	"compliance-portal-backend/internal/auth"
	"compliance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TemplateHandler handles HTTP requests for requirement templates
type TemplateHandler struct {
	templateService *service.TemplateService
	auditService    *service.AuditService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateService *service.TemplateService, auditService *service.AuditService) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
		auditService:    auditService,
	}
}

// scoped loads a template and checks it belongs to the caller's company
func (h *TemplateHandler) scoped(c *gin.Context, id uuid.UUID) (*service.TemplateResponse, bool) {
	template, err := h.templateService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}

	companyID, _ := auth.CompanyID(c)
	if template.CompanyID != companyID {
		c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		return nil, false
	}
	return template, true
}

// CreateTemplate handles POST /templates
// @Summary Create a requirement template
// @Description Create a reusable set of coverage requirement lines
// @Tags templates
// @Accept json
// @Produce json
// @Param template body service.CreateTemplateRequest true "Template data"
// @Success 201 {object} service.TemplateResponse "Successfully created template"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Template name already in use"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates [post]
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	companyID, _ := auth.CompanyID(c)

	var req service.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.CompanyID = companyID

	template, err := h.templateService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "template.created", "template", &template.ID, gin.H{"name": template.Name})

	c.JSON(http.StatusCreated, template)
}

// ListTemplates handles GET /templates
// @Summary List templates
// @Description Get the company's requirement templates
// @Tags templates
// @Accept json
// @Produce json
// @Success 200 {array} service.TemplateResponse "Successfully retrieved templates"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	companyID, _ := auth.CompanyID(c)

	templates, err := h.templateService.GetByCompanyID(companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, templates)
}

// GetTemplate handles GET /templates/:id
// @Summary Get template by ID
// @Description Get a requirement template including its coverage lines
// @Tags templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID (UUID)"
// @Success 200 {object} service.TemplateResponse "Successfully retrieved template"
// @Failure 400 {object} ErrorResponse "Invalid template ID"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates/{id} [get]
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	template, ok := h.scoped(c, id)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, template)
}

// UpdateTemplate handles PUT /templates/:id
// @Summary Update template
// @Description Replace a template's name and coverage lines
// @Tags templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID (UUID)"
// @Param template body service.UpdateTemplateRequest true "Template data"
// @Success 200 {object} service.TemplateResponse "Successfully updated template"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates/{id} [put]
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, ok := h.scoped(c, id); !ok {
		return
	}

	var req service.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.templateService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	companyID, _ := auth.CompanyID(c)
	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "template.updated", "template", &id, gin.H{"name": req.Name})

	c.JSON(http.StatusOK, template)
}

// DeleteTemplate handles DELETE /templates/:id
// @Summary Delete template
// @Description Delete a requirement template; existing projects keep their copied requirements
// @Tags templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID (UUID)"
// @Success 204 "Successfully deleted template"
// @Failure 400 {object} ErrorResponse "Invalid template ID"
// @Failure 404 {object} ErrorResponse "Template not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /templates/{id} [delete]
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, ok := h.scoped(c, id); !ok {
		return
	}

	if err := h.templateService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	companyID, _ := auth.CompanyID(c)
	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "template.deleted", "template", &id, nil)

	c.Status(http.StatusNoContent)
}
