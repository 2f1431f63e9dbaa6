package repository

import (
	"compliance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequirementTemplateRepository handles database operations for requirement templates
type RequirementTemplateRepository struct {
	db *gorm.DB
}

// NewRequirementTemplateRepository creates a new template repository
func NewRequirementTemplateRepository(db *gorm.DB) *RequirementTemplateRepository {
	return &RequirementTemplateRepository{db: db}
}

// Create creates a new template
func (r *RequirementTemplateRepository) Create(t *models.RequirementTemplate) error {
	return r.db.Create(t).Error
}

// GetByID retrieves a template by ID
func (r *RequirementTemplateRepository) GetByID(id uuid.UUID) (*models.RequirementTemplate, error) {
	var t models.RequirementTemplate
	err := r.db.First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByName retrieves a template by name within a company
func (r *RequirementTemplateRepository) GetByName(companyID uuid.UUID, name string) (*models.RequirementTemplate, error) {
	var t models.RequirementTemplate
	err := r.db.First(&t, "company_id = ? AND name = ?", companyID, name).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByCompanyID retrieves all templates for a company
func (r *RequirementTemplateRepository) GetByCompanyID(companyID uuid.UUID) ([]models.RequirementTemplate, error) {
	var ts []models.RequirementTemplate
	err := r.db.Where("company_id = ?", companyID).Order("name").Find(&ts).Error
	if err != nil {
		return nil, err
	}
	return ts, nil
}

// Update updates a template
func (r *RequirementTemplateRepository) Update(t *models.RequirementTemplate) error {
	return r.db.Save(t).Error
}

// Delete deletes a template
func (r *RequirementTemplateRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.RequirementTemplate{}, "id = ?", id).Error
}
