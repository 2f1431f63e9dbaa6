package repository

import (
	"compliance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByName retrieves a project by name within a company
func (r *ProjectRepository) GetByName(companyID uuid.UUID, name string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "company_id = ? AND name = ?", companyID, name).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByProcoreProjectID retrieves a project by its Procore ID within a company
func (r *ProjectRepository) GetByProcoreProjectID(companyID uuid.UUID, procoreID string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "company_id = ? AND procore_project_id = ?", companyID, procoreID).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByCompanyID retrieves all projects for a company with pagination
func (r *ProjectRepository) GetByCompanyID(companyID uuid.UUID, limit, offset int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	query := r.db.Model(&models.Project{}).Where("company_id = ?", companyID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// GetByStatus retrieves projects with a specific status in a company
func (r *ProjectRepository) GetByStatus(companyID uuid.UUID, status models.ProjectStatus, limit, offset int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	query := r.db.Model(&models.Project{}).Where("company_id = ? AND status = ?", companyID, status)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// Search searches projects by name or address within a company
func (r *ProjectRepository) Search(companyID uuid.UUID, query string, limit, offset int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	searchQuery := r.db.Model(&models.Project{}).
		Where("company_id = ? AND (name ILIKE ? OR address ILIKE ?)", companyID, "%"+query+"%", "%"+query+"%")

	if err := searchQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := searchQuery.Limit(limit).Offset(offset).Order("name").Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// GetWithRequirements retrieves a project with its insurance requirements
func (r *ProjectRepository) GetWithRequirements(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Requirements").First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetWithAssignments retrieves a project with its subcontractor assignments
func (r *ProjectRepository) GetWithAssignments(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Assignments").Preload("Assignments.Subcontractor").First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// CheckNameExists checks if a project name exists within a company
func (r *ProjectRepository) CheckNameExists(companyID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Project{}).Where("company_id = ? AND name = ?", companyID, name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// Update updates a project
func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// SetStatus sets the status of a project
func (r *ProjectRepository) SetStatus(projectID uuid.UUID, status models.ProjectStatus) error {
	return r.db.Model(&models.Project{}).Where("id = ?", projectID).Update("status", status).Error
}

// Delete deletes a project
func (r *ProjectRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
