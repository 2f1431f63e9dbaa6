package handlers

import (
	"net/http"

	"compliance-portal-backend/internal/auth"
	"compliance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubcontractorHandler handles HTTP requests for subcontractor operations
type SubcontractorHandler struct {
	subcontractorService *service.SubcontractorService
	auditService         *service.AuditService
}

// NewSubcontractorHandler creates a new subcontractor handler
func NewSubcontractorHandler(subcontractorService *service.SubcontractorService, auditService *service.AuditService) *SubcontractorHandler {
	return &SubcontractorHandler{
		subcontractorService: subcontractorService,
		auditService:         auditService,
	}
}

// scoped loads a subcontractor and checks it belongs to the caller's company
func (h *SubcontractorHandler) scoped(c *gin.Context, id uuid.UUID) (*service.SubcontractorResponse, bool) {
	sub, err := h.subcontractorService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}

	companyID, _ := auth.CompanyID(c)
	if sub.CompanyID != companyID {
		c.JSON(http.StatusNotFound, gin.H{"error": "subcontractor not found"})
		return nil, false
	}
	return sub, true
}

// CreateSubcontractor handles POST /subcontractors
// @Summary Register a subcontractor
// @Description Register a subcontractor with a validated ABN
// @Tags subcontractors
// @Accept json
// @Produce json
// @Param subcontractor body service.CreateSubcontractorRequest true "Subcontractor data"
// @Success 201 {object} service.SubcontractorResponse "Successfully created subcontractor"
// @Failure 400 {object} ErrorResponse "Invalid request or ABN"
// @Failure 409 {object} ErrorResponse "ABN already registered"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /subcontractors [post]
func (h *SubcontractorHandler) CreateSubcontractor(c *gin.Context) {
	companyID, _ := auth.CompanyID(c)

	var req service.CreateSubcontractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.CompanyID = companyID

	sub, err := h.subcontractorService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "subcontractor.created", "subcontractor", &sub.ID, gin.H{"business_name": sub.BusinessName, "abn": sub.ABN})

	c.JSON(http.StatusCreated, sub)
}

// ImportSubcontractors handles POST /subcontractors/import
// @Summary Bulk import subcontractors
// @Description Import up to 1000 subcontractors, reporting a per-row outcome
// @Tags subcontractors
// @Accept json
// @Produce json
// @Param import body service.ImportSubcontractorsRequest true "Import rows"
// @Success 200 {object} service.ImportSubcontractorsResponse "Import processed"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /subcontractors/import [post]
func (h *SubcontractorHandler) ImportSubcontractors(c *gin.Context) {
	companyID, _ := auth.CompanyID(c)

	var req service.ImportSubcontractorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.CompanyID = companyID

	result, err := h.subcontractorService.Import(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "subcontractor.imported", "subcontractor", nil, gin.H{"imported": result.Imported, "skipped": result.Skipped})

	c.JSON(http.StatusOK, result)
}

// ListSubcontractors handles GET /subcontractors
// @Summary List subcontractors
// @Description List the company's subcontractors, optionally filtered by a search query
// @Tags subcontractors
// @Accept json
// @Produce json
// @Param q query string false "Search by business name, trade, or ABN"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.SubcontractorListResponse "Successfully retrieved subcontractors"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /subcontractors [get]
func (h *SubcontractorHandler) ListSubcontractors(c *gin.Context) {
	companyID, _ := auth.CompanyID(c)
	page, pageSize := parsePaging(c)

	subs, err := h.subcontractorService.Search(companyID, c.Query("q"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subs)
}

// GetSubcontractor handles GET /subcontractors/:id
// @Summary Get subcontractor by ID
// @Description Get a specific subcontractor by its UUID
// @Tags subcontractors
// @Accept json
// @Produce json
// @Param id path string true "Subcontractor ID (UUID)"
// @Success 200 {object} service.SubcontractorResponse "Successfully retrieved subcontractor"
// @Failure 400 {object} ErrorResponse "Invalid subcontractor ID"
// @Failure 404 {object} ErrorResponse "Subcontractor not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /subcontractors/{id} [get]
func (h *SubcontractorHandler) GetSubcontractor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sub, ok := h.scoped(c, id)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, sub)
}

// UpdateSubcontractor handles PUT /subcontractors/:id
// @Summary Update subcontractor
// @Description Update a subcontractor's details
// @Tags subcontractors
// @Accept json
// @Produce json
// @Param id path string true "Subcontractor ID (UUID)"
// @Param subcontractor body service.UpdateSubcontractorRequest true "Subcontractor data"
// @Success 200 {object} service.SubcontractorResponse "Successfully updated subcontractor"
// @Failure 400 {object} ErrorResponse "Invalid request or ABN"
// @Failure 404 {object} ErrorResponse "Subcontractor not found"
// @Failure 409 {object} ErrorResponse "ABN already registered"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /subcontractors/{id} [put]
func (h *SubcontractorHandler) UpdateSubcontractor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, ok := h.scoped(c, id); !ok {
		return
	}

	var req service.UpdateSubcontractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.subcontractorService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	companyID, _ := auth.CompanyID(c)
	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "subcontractor.updated", "subcontractor", &id, req)

	c.JSON(http.StatusOK, sub)
}

// DeleteSubcontractor handles DELETE /subcontractors/:id
// @Summary Delete subcontractor
// @Description Delete a subcontractor and its project assignments
// @Tags subcontractors
// @Accept json
// @Produce json
// @Param id path string true "Subcontractor ID (UUID)"
// @Success 204 "Successfully deleted subcontractor"
// @Failure 400 {object} ErrorResponse "Invalid subcontractor ID"
// @Failure 404 {object} ErrorResponse "Subcontractor not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /subcontractors/{id} [delete]
func (h *SubcontractorHandler) DeleteSubcontractor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, ok := h.scoped(c, id); !ok {
		return
	}

	if err := h.subcontractorService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	companyID, _ := auth.CompanyID(c)
	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "subcontractor.deleted", "subcontractor", &id, nil)

	c.Status(http.StatusNoContent)
}
