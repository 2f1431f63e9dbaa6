package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"compliance-portal-backend/internal/database/models"
	apperrors "compliance-portal-backend/internal/errors"
	"compliance-portal-backend/internal/logger"
	"compliance-portal-backend/internal/repository"
	"compliance-portal-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	maxDocumentSize   = 25 << 20 // 25 MiB
	downloadURLExpiry = 15 * time.Minute
)

var allowedDocumentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

// DocumentService handles upload, listing, and retrieval of certificate documents
type DocumentService struct {
	repo     repository.CocDocumentRepositoryInterface
	subRepo  repository.SubcontractorRepositoryInterface
	projRepo repository.ProjectRepositoryInterface
	store    storage.ObjectStore
}

// NewDocumentService creates a new document service
func NewDocumentService(repo repository.CocDocumentRepositoryInterface, subRepo repository.SubcontractorRepositoryInterface, projRepo repository.ProjectRepositoryInterface, store storage.ObjectStore) *DocumentService {
	return &DocumentService{
		repo:     repo,
		subRepo:  subRepo,
		projRepo: projRepo,
		store:    store,
	}
}

// UploadDocumentRequest represents a certificate upload
type UploadDocumentRequest struct {
	SubcontractorID uuid.UUID
	ProjectID       *uuid.UUID
	FileName        string
	FileSize        int64
	ContentType     string
	Reader          io.Reader
}

// DocumentResponse represents the response for document operations
type DocumentResponse struct {
	ID              uuid.UUID             `json:"id"`
	CompanyID       uuid.UUID             `json:"company_id"`
	SubcontractorID uuid.UUID             `json:"subcontractor_id"`
	ProjectID       *uuid.UUID            `json:"project_id,omitempty"`
	FileName        string                `json:"file_name"`
	FileSize        int64                 `json:"file_size"`
	ContentType     string                `json:"content_type,omitempty"`
	Status          models.DocumentStatus `json:"status"`
	ExpiryDate      *time.Time            `json:"expiry_date,omitempty"`
	CreatedAt       string                `json:"created_at"`
	UpdatedAt       string                `json:"updated_at"`
}

// DocumentListResponse represents a paginated list of documents
type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Upload stores a certificate in object storage and records it
func (s *DocumentService) Upload(ctx context.Context, req *UploadDocumentRequest) (*DocumentResponse, error) {
	if req.FileName == "" {
		return nil, apperrors.NewValidationError("file name is required")
	}
	if req.FileSize <= 0 || req.FileSize > maxDocumentSize {
		return nil, apperrors.NewValidationError("file size must be between 1 byte and 25 MiB")
	}
	if !allowedDocumentTypes[req.ContentType] {
		return nil, apperrors.NewValidationError("unsupported content type, expected PDF or image")
	}

	sub, err := s.subRepo.GetByID(req.SubcontractorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubcontractorNotFound
		}
		return nil, fmt.Errorf("failed to verify subcontractor: %w", err)
	}

	if req.ProjectID != nil {
		project, err := s.projRepo.GetByID(*req.ProjectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrProjectNotFound
			}
			return nil, fmt.Errorf("failed to verify project: %w", err)
		}
		if project.CompanyID != sub.CompanyID {
			return nil, apperrors.ErrCompanyMismatch
		}
	}

	doc := &models.CocDocument{
		CompanyID:       sub.CompanyID,
		SubcontractorID: req.SubcontractorID,
		ProjectID:       req.ProjectID,
		FileName:        req.FileName,
		FileSize:        req.FileSize,
		ContentType:     req.ContentType,
		Status:          models.DocumentStatusUploaded,
	}
	doc.ID = uuid.New()
	doc.StorageKey = path.Join("companies", sub.CompanyID.String(), "documents", doc.ID.String(), req.FileName)

	if err := s.store.Upload(ctx, doc.StorageKey, req.Reader, req.FileSize, req.ContentType); err != nil {
		return nil, apperrors.NewIntegrationError("object storage", err)
	}

	if err := s.repo.Create(doc); err != nil {
		// Best effort cleanup of the orphaned object.
		if removeErr := s.store.Delete(ctx, doc.StorageKey); removeErr != nil {
			logger.New().WithError(removeErr).WithField("storage_key", doc.StorageKey).Warn("Failed to remove orphaned object")
		}
		return nil, fmt.Errorf("failed to record document: %w", err)
	}

	return s.toResponse(doc), nil
}

// GetByID retrieves a document by ID
func (s *DocumentService) GetByID(id uuid.UUID) (*DocumentResponse, error) {
	doc, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return s.toResponse(doc), nil
}

// DownloadURL returns a short-lived presigned URL for a document
func (s *DocumentService) DownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	doc, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrDocumentNotFound
		}
		return "", fmt.Errorf("failed to get document: %w", err)
	}

	url, err := s.store.PresignedDownloadURL(ctx, doc.StorageKey, doc.FileName, downloadURLExpiry)
	if err != nil {
		return "", apperrors.NewIntegrationError("object storage", err)
	}
	return url, nil
}

// GetBySubcontractorID lists a subcontractor's documents
func (s *DocumentService) GetBySubcontractorID(subcontractorID uuid.UUID, page, pageSize int) (*DocumentListResponse, error) {
	page, pageSize = normalizePaging(page, pageSize)

	docs, total, err := s.repo.GetBySubcontractorID(subcontractorID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return s.toListResponse(docs, total, page, pageSize), nil
}

// GetByProjectID lists documents attached to a project
func (s *DocumentService) GetByProjectID(projectID uuid.UUID, page, pageSize int) (*DocumentListResponse, error) {
	page, pageSize = normalizePaging(page, pageSize)

	docs, total, err := s.repo.GetByProjectID(projectID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return s.toListResponse(docs, total, page, pageSize), nil
}

// Delete removes a document record and its stored object
func (s *DocumentService) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDocumentNotFound
		}
		return fmt.Errorf("failed to get document: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if err := s.store.Delete(ctx, doc.StorageKey); err != nil {
		logger.New().WithError(err).WithField("storage_key", doc.StorageKey).Warn("Failed to delete stored object")
	}
	return nil
}

func (s *DocumentService) toResponse(doc *models.CocDocument) *DocumentResponse {
	return &DocumentResponse{
		ID:              doc.ID,
		CompanyID:       doc.CompanyID,
		SubcontractorID: doc.SubcontractorID,
		ProjectID:       doc.ProjectID,
		FileName:        doc.FileName,
		FileSize:        doc.FileSize,
		ContentType:     doc.ContentType,
		Status:          doc.Status,
		ExpiryDate:      doc.ExpiryDate,
		CreatedAt:       doc.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       doc.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (s *DocumentService) toListResponse(docs []models.CocDocument, total int64, page, pageSize int) *DocumentListResponse {
	resp := &DocumentListResponse{
		Documents: make([]DocumentResponse, 0, len(docs)),
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}
	for i := range docs {
		resp.Documents = append(resp.Documents, *s.toResponse(&docs[i]))
	}
	return resp
}
