package handlers

import (
	"net/http"

	"compliance-portal-backend/internal/auth"
	"compliance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles HTTP requests for certificate documents
type DocumentHandler struct {
	documentService *service.DocumentService
	auditService    *service.AuditService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService, auditService *service.AuditService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		auditService:    auditService,
	}
}

// scoped loads a document and checks it belongs to the caller's company
func (h *DocumentHandler) scoped(c *gin.Context, id uuid.UUID) (*service.DocumentResponse, bool) {
	doc, err := h.documentService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}

	companyID, _ := auth.CompanyID(c)
	if doc.CompanyID != companyID {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return nil, false
	}
	return doc, true
}

// UploadDocument handles POST /documents
// @Summary Upload a certificate document
// @Description Upload a Certificate of Currency file (PDF, JPEG, or PNG, up to 25 MB) for a subcontractor
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Certificate file"
// @Param subcontractor_id formData string true "Subcontractor ID (UUID)"
// @Param project_id formData string false "Project ID (UUID)"
// @Success 201 {object} service.DocumentResponse "Successfully uploaded document"
// @Failure 400 {object} ErrorResponse "Invalid file or metadata"
// @Failure 404 {object} ErrorResponse "Subcontractor or project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /documents [post]
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	subcontractorID, err := uuid.Parse(c.PostForm("subcontractor_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subcontractor_id"})
		return
	}

	var projectID *uuid.UUID
	if raw := c.PostForm("project_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project_id"})
			return
		}
		projectID = &id
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	doc, err := h.documentService.Upload(c.Request.Context(), &service.UploadDocumentRequest{
		SubcontractorID: subcontractorID,
		ProjectID:       projectID,
		FileName:        fileHeader.Filename,
		FileSize:        fileHeader.Size,
		ContentType:     fileHeader.Header.Get("Content-Type"),
		Reader:          file,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	companyID, _ := auth.CompanyID(c)
	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "document.uploaded", "document", &doc.ID, gin.H{"file_name": doc.FileName, "subcontractor_id": subcontractorID})

	c.JSON(http.StatusCreated, doc)
}

// GetDocument handles GET /documents/:id
// @Summary Get document metadata
// @Description Get a document's metadata and verification status
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} service.DocumentResponse "Successfully retrieved document"
// @Failure 400 {object} ErrorResponse "Invalid document ID"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	doc, ok := h.scoped(c, id)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, doc)
}

// DownloadDocument handles GET /documents/:id/download
// @Summary Get a document download link
// @Description Get a short-lived presigned URL for downloading the original file
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} map[string]string "Download URL"
// @Failure 400 {object} ErrorResponse "Invalid document ID"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Failure 502 {object} ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /documents/{id}/download [get]
func (h *DocumentHandler) DownloadDocument(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, ok := h.scoped(c, id); !ok {
		return
	}

	url, err := h.documentService.DownloadURL(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// ListSubcontractorDocuments handles GET /subcontractors/:id/documents
// @Summary List a subcontractor's documents
// @Description Get all certificate documents uploaded for a subcontractor
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Subcontractor ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.DocumentListResponse "Successfully retrieved documents"
// @Failure 400 {object} ErrorResponse "Invalid subcontractor ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /subcontractors/{id}/documents [get]
func (h *DocumentHandler) ListSubcontractorDocuments(c *gin.Context) {
	subcontractorID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := parsePaging(c)

	docs, err := h.documentService.GetBySubcontractorID(subcontractorID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, docs)
}

// ListProjectDocuments handles GET /projects/:id/documents
// @Summary List a project's documents
// @Description Get all certificate documents tied to a project
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.DocumentListResponse "Successfully retrieved documents"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/documents [get]
func (h *DocumentHandler) ListProjectDocuments(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := parsePaging(c)

	docs, err := h.documentService.GetByProjectID(projectID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, docs)
}

// DeleteDocument handles DELETE /documents/:id
// @Summary Delete document
// @Description Delete a document's record and its stored file
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 204 "Successfully deleted document"
// @Failure 400 {object} ErrorResponse "Invalid document ID"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, ok := h.scoped(c, id); !ok {
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	companyID, _ := auth.CompanyID(c)
	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "document.deleted", "document", &id, nil)

	c.Status(http.StatusNoContent)
}
