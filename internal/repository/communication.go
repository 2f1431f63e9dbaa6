package repository

import (
	"compliance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommunicationRepository handles database operations for communications
type CommunicationRepository struct {
	db *gorm.DB
}

// NewCommunicationRepository creates a new communication repository
func NewCommunicationRepository(db *gorm.DB) *CommunicationRepository {
	return &CommunicationRepository{db: db}
}

// Create creates a new communication record
func (r *CommunicationRepository) Create(c *models.Communication) error {
	return r.db.Create(c).Error
}

// GetByID retrieves a communication by ID
func (r *CommunicationRepository) GetByID(id uuid.UUID) (*models.Communication, error) {
	var c models.Communication
	err := r.db.First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByCompanyID retrieves communications for a company with pagination
func (r *CommunicationRepository) GetByCompanyID(companyID uuid.UUID, limit, offset int) ([]models.Communication, int64, error) {
	var cs []models.Communication
	var total int64

	query := r.db.Model(&models.Communication{}).Where("company_id = ?", companyID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&cs).Error
	if err != nil {
		return nil, 0, err
	}

	return cs, total, nil
}

// GetBySubcontractorID retrieves communications sent to a subcontractor
func (r *CommunicationRepository) GetBySubcontractorID(subcontractorID uuid.UUID, limit, offset int) ([]models.Communication, int64, error) {
	var cs []models.Communication
	var total int64

	query := r.db.Model(&models.Communication{}).Where("subcontractor_id = ?", subcontractorID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&cs).Error
	if err != nil {
		return nil, 0, err
	}

	return cs, total, nil
}

// Update updates a communication record
func (r *CommunicationRepository) Update(c *models.Communication) error {
	return r.db.Save(c).Error
}
