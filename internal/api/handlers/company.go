package handlers

import (
	"net/http"

	"compliance-portal-backend/internal/auth"
	"compliance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CompanyHandler handles HTTP requests for company operations
type CompanyHandler struct {
	companyService *service.CompanyService
	auditService   *service.AuditService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *service.CompanyService, auditService *service.AuditService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		auditService:   auditService,
	}
}

// GetCompany handles GET /company
// @Summary Get the caller's company
// @Description Get the company the authenticated user belongs to
// @Tags companies
// @Accept json
// @Produce json
// @Success 200 {object} service.CompanyResponse "Successfully retrieved company"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /company [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	companyID, ok := auth.CompanyID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
		return
	}

	company, err := h.companyService.GetByID(companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// UpdateCompany handles PUT /company
// @Summary Update the caller's company
// @Description Update company profile details
// @Tags companies
// @Accept json
// @Produce json
// @Param company body service.UpdateCompanyRequest true "Company data"
// @Success 200 {object} service.CompanyResponse "Successfully updated company"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /company [put]
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	companyID, ok := auth.CompanyID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
		return
	}

	var req service.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.companyService.Update(companyID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	userID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &userID, "company.updated", "company", &companyID, req)

	c.JSON(http.StatusOK, company)
}
