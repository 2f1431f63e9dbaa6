package repository

import (
	"compliance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InsuranceRequirementRepository handles database operations for insurance requirements
type InsuranceRequirementRepository struct {
	db *gorm.DB
}

// NewInsuranceRequirementRepository creates a new requirement repository
func NewInsuranceRequirementRepository(db *gorm.DB) *InsuranceRequirementRepository {
	return &InsuranceRequirementRepository{db: db}
}

// Create creates a new requirement
func (r *InsuranceRequirementRepository) Create(req *models.InsuranceRequirement) error {
	return r.db.Create(req).Error
}

// CreateBatch inserts multiple requirements in one transaction
func (r *InsuranceRequirementRepository) CreateBatch(reqs []models.InsuranceRequirement) error {
	if len(reqs) == 0 {
		return nil
	}
	return r.db.Create(&reqs).Error
}

// GetByID retrieves a requirement by ID
func (r *InsuranceRequirementRepository) GetByID(id uuid.UUID) (*models.InsuranceRequirement, error) {
	var req models.InsuranceRequirement
	err := r.db.First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetByProjectID retrieves all requirements for a project
func (r *InsuranceRequirementRepository) GetByProjectID(projectID uuid.UUID) ([]models.InsuranceRequirement, error) {
	var reqs []models.InsuranceRequirement
	err := r.db.Where("project_id = ?", projectID).Order("coverage_type").Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

// CheckCoverageExists checks if a coverage type is already required on a project
func (r *InsuranceRequirementRepository) CheckCoverageExists(projectID uuid.UUID, coverage models.CoverageType, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.InsuranceRequirement{}).
		Where("project_id = ? AND coverage_type = ?", projectID, coverage)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// Update updates a requirement
func (r *InsuranceRequirementRepository) Update(req *models.InsuranceRequirement) error {
	return r.db.Save(req).Error
}

// Delete deletes a requirement
func (r *InsuranceRequirementRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.InsuranceRequirement{}, "id = ?", id).Error
}
