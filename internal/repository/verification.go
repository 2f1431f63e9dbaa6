package repository

import (
	"compliance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VerificationRepository handles database operations for verifications
type VerificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository creates a new verification repository
func NewVerificationRepository(db *gorm.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

// Create creates a new verification
func (r *VerificationRepository) Create(v *models.Verification) error {
	return r.db.Create(v).Error
}

// GetByID retrieves a verification by ID
func (r *VerificationRepository) GetByID(id uuid.UUID) (*models.Verification, error) {
	var v models.Verification
	err := r.db.First(&v, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// GetByDocumentID retrieves all verifications for a document, newest first
func (r *VerificationRepository) GetByDocumentID(documentID uuid.UUID) ([]models.Verification, error) {
	var vs []models.Verification
	err := r.db.Where("document_id = ?", documentID).Order("created_at DESC").Find(&vs).Error
	if err != nil {
		return nil, err
	}
	return vs, nil
}

// GetLatestByDocumentID retrieves the most recent verification for a document
func (r *VerificationRepository) GetLatestByDocumentID(documentID uuid.UUID) (*models.Verification, error) {
	var v models.Verification
	err := r.db.Where("document_id = ?", documentID).Order("created_at DESC").First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Delete deletes a verification
func (r *VerificationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Verification{}, "id = ?", id).Error
}
