package repository

import (
	"time"

	"compliance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ComplianceSnapshotRepository handles database operations for compliance snapshots
type ComplianceSnapshotRepository struct {
	db *gorm.DB
}

// NewComplianceSnapshotRepository creates a new snapshot repository
func NewComplianceSnapshotRepository(db *gorm.DB) *ComplianceSnapshotRepository {
	return &ComplianceSnapshotRepository{db: db}
}

// Upsert inserts a snapshot or replaces the counts for an existing (company, date) row
func (r *ComplianceSnapshotRepository) Upsert(s *models.ComplianceSnapshot) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "company_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"compliant", "non_compliant", "pending", "exception", "total", "compliance_rate", "updated_at",
		}),
	}).Create(s).Error
}

// UpsertBatch upserts multiple snapshots in one statement
func (r *ComplianceSnapshotRepository) UpsertBatch(snapshots []models.ComplianceSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "company_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"compliant", "non_compliant", "pending", "exception", "total", "compliance_rate", "updated_at",
		}),
	}).Create(&snapshots).Error
}

// GetByCompanyAndDate retrieves the snapshot for a company on a given day
func (r *ComplianceSnapshotRepository) GetByCompanyAndDate(companyID uuid.UUID, date time.Time) (*models.ComplianceSnapshot, error) {
	var s models.ComplianceSnapshot
	err := r.db.First(&s, "company_id = ? AND date = ?", companyID, date.Format("2006-01-02")).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetRange retrieves snapshots for a company between two dates inclusive, oldest first
func (r *ComplianceSnapshotRepository) GetRange(companyID uuid.UUID, from, to time.Time) ([]models.ComplianceSnapshot, error) {
	var snapshots []models.ComplianceSnapshot
	err := r.db.Where("company_id = ? AND date >= ? AND date <= ?",
		companyID, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date").Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}

// Count returns the number of snapshots stored for a company
func (r *ComplianceSnapshotRepository) Count(companyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ComplianceSnapshot{}).Where("company_id = ?", companyID).Count(&count).Error
	return count, err
}
