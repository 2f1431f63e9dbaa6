package handlers

import (
	"net/http"

	"compliance-portal-backend/internal/auth"
	"compliance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// VerificationHandler handles HTTP requests for document verifications
type VerificationHandler struct {
	verificationService *service.VerificationService
	complianceService   *service.ComplianceService
	documentService     *service.DocumentService
	auditService        *service.AuditService
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(verificationService *service.VerificationService, complianceService *service.ComplianceService, documentService *service.DocumentService, auditService *service.AuditService) *VerificationHandler {
	return &VerificationHandler{
		verificationService: verificationService,
		complianceService:   complianceService,
		documentService:     documentService,
		auditService:        auditService,
	}
}

// RecordVerification handles POST /verifications
// @Summary Record a verification outcome
// @Description Record a pass or fail verdict for a document, updating the document and assignment statuses
// @Tags verifications
// @Accept json
// @Produce json
// @Param verification body service.RecordVerificationRequest true "Verification data"
// @Success 201 {object} models.Verification "Successfully recorded verification"
// @Failure 400 {object} ErrorResponse "Invalid request or missing failure reasons"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /verifications [post]
func (h *VerificationHandler) RecordVerification(c *gin.Context) {
	var req service.RecordVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.VerifiedByID == nil {
		if actorID, ok := auth.UserID(c); ok {
			req.VerifiedByID = &actorID
		}
	}

	verification, err := h.verificationService.Record(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	// Verdicts flip assignment statuses, so the cached compliance numbers are stale
	companyID, _ := auth.CompanyID(c)
	h.complianceService.Invalidate(c.Request.Context(), companyID)

	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "verification.recorded", "verification", &verification.ID, gin.H{"document_id": req.DocumentID, "outcome": req.Outcome})

	c.JSON(http.StatusCreated, verification)
}

// ListDocumentVerifications handles GET /documents/:id/verifications
// @Summary List a document's verifications
// @Description Get the verification history for a document, most recent first
// @Tags verifications
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {array} models.Verification "Successfully retrieved verifications"
// @Failure 400 {object} ErrorResponse "Invalid document ID"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /documents/{id}/verifications [get]
func (h *VerificationHandler) ListDocumentVerifications(c *gin.Context) {
	documentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	doc, err := h.documentService.GetByID(documentID)
	if err != nil {
		respondError(c, err)
		return
	}
	companyID, _ := auth.CompanyID(c)
	if doc.CompanyID != companyID {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}

	verifications, err := h.verificationService.GetByDocumentID(documentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, verifications)
}
