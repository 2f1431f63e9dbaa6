package repository

import (
	"compliance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusCounts aggregates project-subcontractor pairs by compliance status
type StatusCounts struct {
	Compliant    int
	NonCompliant int
	Pending      int
	Exception    int
}

// Total returns the sum of all status buckets
func (c StatusCounts) Total() int {
	return c.Compliant + c.NonCompliant + c.Pending + c.Exception
}

// ProjectSubcontractorRepository handles database operations for project-subcontractor assignments
type ProjectSubcontractorRepository struct {
	db *gorm.DB
}

// NewProjectSubcontractorRepository creates a new assignment repository
func NewProjectSubcontractorRepository(db *gorm.DB) *ProjectSubcontractorRepository {
	return &ProjectSubcontractorRepository{db: db}
}

// Create creates a new assignment
func (r *ProjectSubcontractorRepository) Create(ps *models.ProjectSubcontractor) error {
	return r.db.Create(ps).Error
}

// GetByID retrieves an assignment by ID
func (r *ProjectSubcontractorRepository) GetByID(id uuid.UUID) (*models.ProjectSubcontractor, error) {
	var ps models.ProjectSubcontractor
	err := r.db.First(&ps, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ps, nil
}

// GetByPair retrieves the assignment for a project-subcontractor pair
func (r *ProjectSubcontractorRepository) GetByPair(projectID, subcontractorID uuid.UUID) (*models.ProjectSubcontractor, error) {
	var ps models.ProjectSubcontractor
	err := r.db.First(&ps, "project_id = ? AND subcontractor_id = ?", projectID, subcontractorID).Error
	if err != nil {
		return nil, err
	}
	return &ps, nil
}

// GetByProjectID retrieves assignments for a project with subcontractor preloaded
func (r *ProjectSubcontractorRepository) GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.ProjectSubcontractor, int64, error) {
	var assignments []models.ProjectSubcontractor
	var total int64

	query := r.db.Model(&models.ProjectSubcontractor{}).Where("project_id = ?", projectID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Subcontractor").Where("project_id = ?", projectID).
		Limit(limit).Offset(offset).Order("created_at").Find(&assignments).Error
	if err != nil {
		return nil, 0, err
	}

	return assignments, total, nil
}

// GetBySubcontractorID retrieves assignments for a subcontractor with project preloaded
func (r *ProjectSubcontractorRepository) GetBySubcontractorID(subcontractorID uuid.UUID, limit, offset int) ([]models.ProjectSubcontractor, int64, error) {
	var assignments []models.ProjectSubcontractor
	var total int64

	query := r.db.Model(&models.ProjectSubcontractor{}).Where("subcontractor_id = ?", subcontractorID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Project").Where("subcontractor_id = ?", subcontractorID).
		Limit(limit).Offset(offset).Order("created_at").Find(&assignments).Error
	if err != nil {
		return nil, 0, err
	}

	return assignments, total, nil
}

// CheckPairExists checks whether a subcontractor is already assigned to a project
func (r *ProjectSubcontractorRepository) CheckPairExists(projectID, subcontractorID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ProjectSubcontractor{}).
		Where("project_id = ? AND subcontractor_id = ?", projectID, subcontractorID).Count(&count).Error
	return count > 0, err
}

// SetStatus sets the compliance status of an assignment
func (r *ProjectSubcontractorRepository) SetStatus(id uuid.UUID, status models.ComplianceStatus, exceptionReason string) error {
	return r.db.Model(&models.ProjectSubcontractor{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":           status,
		"exception_reason": exceptionReason,
	}).Error
}

// SetStatusForSubcontractor updates the status of every assignment of a
// subcontractor. Exception rows are manual overrides and are left untouched.
func (r *ProjectSubcontractorRepository) SetStatusForSubcontractor(subcontractorID uuid.UUID, status models.ComplianceStatus) error {
	return r.db.Model(&models.ProjectSubcontractor{}).
		Where("subcontractor_id = ? AND status <> ?", subcontractorID, models.ComplianceStatusException).
		Update("status", status).Error
}

// CountByStatus counts a company's assignments grouped by compliance status.
// Pairs are scoped to the company through the project.
func (r *ProjectSubcontractorRepository) CountByStatus(companyID uuid.UUID) (*StatusCounts, error) {
	type row struct {
		Status string
		Count  int
	}
	var rows []row

	err := r.db.Raw(`
		SELECT ps.status AS status, COUNT(*) AS count
		FROM project_subcontractors ps
		JOIN projects p ON p.id = ps.project_id
		WHERE p.company_id = ?
		GROUP BY ps.status
	`, companyID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := &StatusCounts{}
	for _, r := range rows {
		switch models.ComplianceStatus(r.Status) {
		case models.ComplianceStatusCompliant:
			counts.Compliant = r.Count
		case models.ComplianceStatusNonCompliant:
			counts.NonCompliant = r.Count
		case models.ComplianceStatusPending:
			counts.Pending = r.Count
		case models.ComplianceStatusException:
			counts.Exception = r.Count
		}
	}

	return counts, nil
}

// Delete deletes an assignment
func (r *ProjectSubcontractorRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectSubcontractor{}, "id = ?", id).Error
}
