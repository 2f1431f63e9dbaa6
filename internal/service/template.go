package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"compliance-portal-backend/internal/database/models"
	apperrors "compliance-portal-backend/internal/errors"
	"compliance-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TemplateService handles business logic for requirement templates
type TemplateService struct {
	repo        repository.RequirementTemplateRepositoryInterface
	companyRepo repository.CompanyRepositoryInterface
	validator   *validator.Validate
}

// NewTemplateService creates a new template service
func NewTemplateService(repo repository.RequirementTemplateRepositoryInterface, companyRepo repository.CompanyRepositoryInterface, validator *validator.Validate) *TemplateService {
	return &TemplateService{
		repo:        repo,
		companyRepo: companyRepo,
		validator:   validator,
	}
}

// CreateTemplateRequest represents the request to create a requirement template
type CreateTemplateRequest struct {
	CompanyID uuid.UUID             `json:"company_id" validate:"required"`
	Name      string                `json:"name" validate:"required,min=1,max=100"`
	Lines     []models.TemplateLine `json:"lines" validate:"required,min=1,dive"`
}

// UpdateTemplateRequest represents the request to update a requirement template
type UpdateTemplateRequest struct {
	Name  string                `json:"name" validate:"required,min=1,max=100"`
	Lines []models.TemplateLine `json:"lines" validate:"required,min=1,dive"`
}

// TemplateResponse represents the response for template operations
type TemplateResponse struct {
	ID        uuid.UUID             `json:"id"`
	CompanyID uuid.UUID             `json:"company_id"`
	Name      string                `json:"name"`
	Lines     []models.TemplateLine `json:"lines"`
	CreatedAt string                `json:"created_at"`
	UpdatedAt string                `json:"updated_at"`
}

// Create creates a requirement template
func (s *TemplateService) Create(req *CreateTemplateRequest) (*TemplateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateTemplateLines(req.Lines); err != nil {
		return nil, err
	}

	if _, err := s.companyRepo.GetByID(req.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to verify company: %w", err)
	}

	existing, err := s.repo.GetByName(req.CompanyID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing template: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTemplateExists
	}

	lines, err := json.Marshal(req.Lines)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal template lines: %w", err)
	}

	template := &models.RequirementTemplate{
		CompanyID: req.CompanyID,
		Name:      req.Name,
		Lines:     lines,
	}

	if err := s.repo.Create(template); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return s.toResponse(template)
}

// GetByID retrieves a template by ID
func (s *TemplateService) GetByID(id uuid.UUID) (*TemplateResponse, error) {
	template, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return s.toResponse(template)
}

// GetByCompanyID lists a company's templates
func (s *TemplateService) GetByCompanyID(companyID uuid.UUID) ([]TemplateResponse, error) {
	templates, err := s.repo.GetByCompanyID(companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	responses := make([]TemplateResponse, 0, len(templates))
	for i := range templates {
		resp, err := s.toResponse(&templates[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// Update updates a template's name and lines
func (s *TemplateService) Update(id uuid.UUID, req *UpdateTemplateRequest) (*TemplateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateTemplateLines(req.Lines); err != nil {
		return nil, err
	}

	template, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	if req.Name != template.Name {
		existing, err := s.repo.GetByName(template.CompanyID, req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing template: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrTemplateExists
		}
	}

	lines, err := json.Marshal(req.Lines)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal template lines: %w", err)
	}

	template.Name = req.Name
	template.Lines = lines

	if err := s.repo.Update(template); err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	return s.toResponse(template)
}

// Delete deletes a template
func (s *TemplateService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTemplateNotFound
		}
		return fmt.Errorf("failed to get template: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return nil
}

// validateTemplateLines rejects unknown coverage types and duplicate lines
func validateTemplateLines(lines []models.TemplateLine) error {
	seen := make(map[models.CoverageType]bool, len(lines))
	for _, line := range lines {
		if !line.CoverageType.IsValid() {
			return apperrors.NewValidationError(fmt.Sprintf("invalid coverage type: %s", line.CoverageType))
		}
		if seen[line.CoverageType] {
			return apperrors.NewValidationError(fmt.Sprintf("duplicate coverage type: %s", line.CoverageType))
		}
		seen[line.CoverageType] = true
	}
	return nil
}

func (s *TemplateService) toResponse(template *models.RequirementTemplate) (*TemplateResponse, error) {
	var lines []models.TemplateLine
	if err := json.Unmarshal(template.Lines, &lines); err != nil {
		return nil, fmt.Errorf("failed to parse template lines: %w", err)
	}
	return &TemplateResponse{
		ID:        template.ID,
		CompanyID: template.CompanyID,
		Name:      template.Name,
		Lines:     lines,
		CreatedAt: template.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: template.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}
