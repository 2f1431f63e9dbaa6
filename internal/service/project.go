package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"compliance-portal-backend/internal/database/models"
	apperrors "compliance-portal-backend/internal/errors"
	"compliance-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	repo            repository.ProjectRepositoryInterface
	companyRepo     repository.CompanyRepositoryInterface
	requirementRepo repository.InsuranceRequirementRepositoryInterface
	templateRepo    repository.RequirementTemplateRepositoryInterface
	validator       *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, companyRepo repository.CompanyRepositoryInterface, requirementRepo repository.InsuranceRequirementRepositoryInterface, templateRepo repository.RequirementTemplateRepositoryInterface, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		repo:            repo,
		companyRepo:     companyRepo,
		requirementRepo: requirementRepo,
		templateRepo:    templateRepo,
		validator:       validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	CompanyID  uuid.UUID            `json:"company_id" validate:"required"`
	Name       string               `json:"name" validate:"required,min=1,max=200"`
	Address    string               `json:"address,omitempty" validate:"max=500"`
	Status     models.ProjectStatus `json:"status,omitempty" validate:"omitempty,oneof=active completed archived"`
	StartDate  *time.Time           `json:"start_date,omitempty"`
	EndDate    *time.Time           `json:"end_date,omitempty"`
	TemplateID *uuid.UUID           `json:"template_id,omitempty"`
}

// UpdateProjectRequest represents the request to update a project
type UpdateProjectRequest struct {
	Name      string                `json:"name" validate:"required,min=1,max=200"`
	Address   string                `json:"address,omitempty" validate:"max=500"`
	Status    *models.ProjectStatus `json:"status,omitempty" validate:"omitempty,oneof=active completed archived"`
	StartDate *time.Time            `json:"start_date,omitempty"`
	EndDate   *time.Time            `json:"end_date,omitempty"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID               uuid.UUID                     `json:"id"`
	CompanyID        uuid.UUID                     `json:"company_id"`
	Name             string                        `json:"name"`
	Address          string                        `json:"address,omitempty"`
	Status           models.ProjectStatus          `json:"status"`
	StartDate        *time.Time                    `json:"start_date,omitempty"`
	EndDate          *time.Time                    `json:"end_date,omitempty"`
	ProcoreProjectID string                        `json:"procore_project_id,omitempty"`
	Requirements     []models.InsuranceRequirement `json:"requirements,omitempty"`
	CreatedAt        string                        `json:"created_at"`
	UpdatedAt        string                        `json:"updated_at"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create creates a new project, optionally applying a requirement template
func (s *ProjectService) Create(req *CreateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.companyRepo.GetByID(req.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to verify company: %w", err)
	}

	exists, err := s.repo.CheckNameExists(req.CompanyID, req.Name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing project: %w", err)
	}
	if exists {
		return nil, apperrors.ErrProjectExists
	}

	status := req.Status
	if status == "" {
		status = models.ProjectStatusActive
	}

	project := &models.Project{
		CompanyID: req.CompanyID,
		Name:      req.Name,
		Address:   req.Address,
		Status:    status,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	if req.TemplateID != nil {
		if err := s.ApplyTemplate(project.ID, *req.TemplateID); err != nil {
			return nil, err
		}
	}

	return s.toResponse(project), nil
}

// ApplyTemplate creates insurance requirements on a project from a template's
// lines. Coverage types the project already requires are left untouched.
func (s *ProjectService) ApplyTemplate(projectID, templateID uuid.UUID) error {
	project, err := s.repo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}

	template, err := s.templateRepo.GetByID(templateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTemplateNotFound
		}
		return fmt.Errorf("failed to get template: %w", err)
	}
	if template.CompanyID != project.CompanyID {
		return apperrors.ErrCompanyMismatch
	}

	var lines []models.TemplateLine
	if err := json.Unmarshal(template.Lines, &lines); err != nil {
		return fmt.Errorf("failed to parse template lines: %w", err)
	}

	var requirements []models.InsuranceRequirement
	for _, line := range lines {
		exists, err := s.requirementRepo.CheckCoverageExists(projectID, line.CoverageType, nil)
		if err != nil {
			return fmt.Errorf("failed to check existing requirement: %w", err)
		}
		if exists {
			continue
		}
		requirements = append(requirements, models.InsuranceRequirement{
			ProjectID:     projectID,
			CoverageType:  line.CoverageType,
			MinimumAmount: line.MinimumAmount,
			Mandatory:     line.Mandatory,
		})
	}

	if len(requirements) == 0 {
		return nil
	}
	if err := s.requirementRepo.CreateBatch(requirements); err != nil {
		return fmt.Errorf("failed to create requirements: %w", err)
	}
	return nil
}

// GetByID retrieves a project by ID with its requirements
func (s *ProjectService) GetByID(id uuid.UUID) (*ProjectResponse, error) {
	project, err := s.repo.GetWithRequirements(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return s.toResponse(project), nil
}

// GetByCompanyID retrieves projects for a company with pagination
func (s *ProjectService) GetByCompanyID(companyID uuid.UUID, status models.ProjectStatus, page, pageSize int) (*ProjectListResponse, error) {
	page, pageSize = normalizePaging(page, pageSize)

	var (
		projects []models.Project
		total    int64
		err      error
	)
	if status != "" {
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("invalid project status")
		}
		projects, total, err = s.repo.GetByStatus(companyID, status, pageSize, (page-1)*pageSize)
	} else {
		projects, total, err = s.repo.GetByCompanyID(companyID, pageSize, (page-1)*pageSize)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return s.toListResponse(projects, total, page, pageSize), nil
}

// Search searches projects by name or address
func (s *ProjectService) Search(companyID uuid.UUID, query string, page, pageSize int) (*ProjectListResponse, error) {
	if query == "" {
		return s.GetByCompanyID(companyID, "", page, pageSize)
	}
	page, pageSize = normalizePaging(page, pageSize)

	projects, total, err := s.repo.Search(companyID, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to search projects: %w", err)
	}
	return s.toListResponse(projects, total, page, pageSize), nil
}

// Update updates a project
func (s *ProjectService) Update(id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if req.Name != project.Name {
		exists, err := s.repo.CheckNameExists(project.CompanyID, req.Name, &project.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing project: %w", err)
		}
		if exists {
			return nil, apperrors.ErrProjectExists
		}
	}

	project.Name = req.Name
	project.Address = req.Address
	if req.Status != nil {
		project.Status = *req.Status
	}
	project.StartDate = req.StartDate
	project.EndDate = req.EndDate

	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return s.toResponse(project), nil
}

// Delete deletes a project
func (s *ProjectService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (s *ProjectService) toResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:               project.ID,
		CompanyID:        project.CompanyID,
		Name:             project.Name,
		Address:          project.Address,
		Status:           project.Status,
		StartDate:        project.StartDate,
		EndDate:          project.EndDate,
		ProcoreProjectID: project.ProcoreProjectID,
		Requirements:     project.Requirements,
		CreatedAt:        project.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:        project.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (s *ProjectService) toListResponse(projects []models.Project, total int64, page, pageSize int) *ProjectListResponse {
	resp := &ProjectListResponse{
		Projects: make([]ProjectResponse, 0, len(projects)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range projects {
		resp.Projects = append(resp.Projects, *s.toResponse(&projects[i]))
	}
	return resp
}
