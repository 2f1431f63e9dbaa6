package repository

import (
	"time"

	"compliance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CocDocumentRepository handles database operations for certificate documents
type CocDocumentRepository struct {
	db *gorm.DB
}

// NewCocDocumentRepository creates a new document repository
func NewCocDocumentRepository(db *gorm.DB) *CocDocumentRepository {
	return &CocDocumentRepository{db: db}
}

// Create creates a new document record
func (r *CocDocumentRepository) Create(doc *models.CocDocument) error {
	return r.db.Create(doc).Error
}

// GetByID retrieves a document by ID
func (r *CocDocumentRepository) GetByID(id uuid.UUID) (*models.CocDocument, error) {
	var doc models.CocDocument
	err := r.db.First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetBySubcontractorID retrieves documents for a subcontractor with pagination
func (r *CocDocumentRepository) GetBySubcontractorID(subcontractorID uuid.UUID, limit, offset int) ([]models.CocDocument, int64, error) {
	var docs []models.CocDocument
	var total int64

	query := r.db.Model(&models.CocDocument{}).Where("subcontractor_id = ?", subcontractorID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&docs).Error
	if err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}

// GetByProjectID retrieves documents attached to a project with pagination
func (r *CocDocumentRepository) GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.CocDocument, int64, error) {
	var docs []models.CocDocument
	var total int64

	query := r.db.Model(&models.CocDocument{}).Where("project_id = ?", projectID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&docs).Error
	if err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}

// GetExpiringBefore retrieves verified documents whose expiry date falls before the cutoff
func (r *CocDocumentRepository) GetExpiringBefore(cutoff time.Time) ([]models.CocDocument, error) {
	var docs []models.CocDocument
	err := r.db.Preload("Subcontractor").
		Where("status = ? AND expiry_date IS NOT NULL AND expiry_date < ?", models.DocumentStatusVerified, cutoff).
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// GetWithVerifications retrieves a document with its verification history
func (r *CocDocumentRepository) GetWithVerifications(id uuid.UUID) (*models.CocDocument, error) {
	var doc models.CocDocument
	err := r.db.Preload("Verifications").First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// SetStatus sets the status of a document
func (r *CocDocumentRepository) SetStatus(id uuid.UUID, status models.DocumentStatus) error {
	return r.db.Model(&models.CocDocument{}).Where("id = ?", id).Update("status", status).Error
}

// SetExpiry sets the expiry date of a document
func (r *CocDocumentRepository) SetExpiry(id uuid.UUID, expiry *time.Time) error {
	return r.db.Model(&models.CocDocument{}).Where("id = ?", id).Update("expiry_date", expiry).Error
}

// Update updates a document
func (r *CocDocumentRepository) Update(doc *models.CocDocument) error {
	return r.db.Save(doc).Error
}

// Delete deletes a document record
func (r *CocDocumentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.CocDocument{}, "id = ?", id).Error
}
