package repository

import (
	"compliance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubcontractorRepository handles database operations for subcontractors
type SubcontractorRepository struct {
	db *gorm.DB
}

// NewSubcontractorRepository creates a new subcontractor repository
func NewSubcontractorRepository(db *gorm.DB) *SubcontractorRepository {
	return &SubcontractorRepository{db: db}
}

// Create creates a new subcontractor
func (r *SubcontractorRepository) Create(sub *models.Subcontractor) error {
	return r.db.Create(sub).Error
}

// CreateBatch inserts multiple subcontractors in one transaction
func (r *SubcontractorRepository) CreateBatch(subs []models.Subcontractor) error {
	if len(subs) == 0 {
		return nil
	}
	return r.db.Create(&subs).Error
}

// GetByID retrieves a subcontractor by ID
func (r *SubcontractorRepository) GetByID(id uuid.UUID) (*models.Subcontractor, error) {
	var sub models.Subcontractor
	err := r.db.First(&sub, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetByABN retrieves a subcontractor by ABN within a company
func (r *SubcontractorRepository) GetByABN(companyID uuid.UUID, abn string) (*models.Subcontractor, error) {
	var sub models.Subcontractor
	err := r.db.First(&sub, "company_id = ? AND abn = ?", companyID, abn).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetByProcoreVendorID retrieves a subcontractor by its Procore vendor ID within a company
func (r *SubcontractorRepository) GetByProcoreVendorID(companyID uuid.UUID, vendorID string) (*models.Subcontractor, error) {
	var sub models.Subcontractor
	err := r.db.First(&sub, "company_id = ? AND procore_vendor_id = ?", companyID, vendorID).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetByCompanyID retrieves all subcontractors for a company with pagination
func (r *SubcontractorRepository) GetByCompanyID(companyID uuid.UUID, limit, offset int) ([]models.Subcontractor, int64, error) {
	var subs []models.Subcontractor
	var total int64

	query := r.db.Model(&models.Subcontractor{}).Where("company_id = ?", companyID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("business_name").Find(&subs).Error
	if err != nil {
		return nil, 0, err
	}

	return subs, total, nil
}

// Search searches subcontractors by business name, trade or ABN within a company
func (r *SubcontractorRepository) Search(companyID uuid.UUID, query string, limit, offset int) ([]models.Subcontractor, int64, error) {
	var subs []models.Subcontractor
	var total int64

	searchQuery := r.db.Model(&models.Subcontractor{}).
		Where("company_id = ? AND (business_name ILIKE ? OR trade ILIKE ? OR abn LIKE ?)",
			companyID, "%"+query+"%", "%"+query+"%", "%"+query+"%")

	if err := searchQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := searchQuery.Limit(limit).Offset(offset).Order("business_name").Find(&subs).Error
	if err != nil {
		return nil, 0, err
	}

	return subs, total, nil
}

// CheckABNExists checks if an ABN is already registered within a company
func (r *SubcontractorRepository) CheckABNExists(companyID uuid.UUID, abn string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Subcontractor{}).Where("company_id = ? AND abn = ?", companyID, abn)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// GetWithDocuments retrieves a subcontractor with its certificate documents
func (r *SubcontractorRepository) GetWithDocuments(id uuid.UUID) (*models.Subcontractor, error) {
	var sub models.Subcontractor
	err := r.db.Preload("Documents").First(&sub, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetWithAssignments retrieves a subcontractor with its project assignments
func (r *SubcontractorRepository) GetWithAssignments(id uuid.UUID) (*models.Subcontractor, error) {
	var sub models.Subcontractor
	err := r.db.Preload("Assignments").Preload("Assignments.Project").First(&sub, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Update updates a subcontractor
func (r *SubcontractorRepository) Update(sub *models.Subcontractor) error {
	return r.db.Save(sub).Error
}

// Delete deletes a subcontractor
func (r *SubcontractorRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Subcontractor{}, "id = ?", id).Error
}
