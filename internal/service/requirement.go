package service

import (
	"errors"
	"fmt"

	"compliance-portal-backend/internal/database/models"
	apperrors "compliance-portal-backend/internal/errors"
	"compliance-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequirementService handles business logic for per-project insurance requirements
type RequirementService struct {
	repo      repository.InsuranceRequirementRepositoryInterface
	projRepo  repository.ProjectRepositoryInterface
	validator *validator.Validate
}

// NewRequirementService creates a new requirement service
func NewRequirementService(repo repository.InsuranceRequirementRepositoryInterface, projRepo repository.ProjectRepositoryInterface, validator *validator.Validate) *RequirementService {
	return &RequirementService{
		repo:      repo,
		projRepo:  projRepo,
		validator: validator,
	}
}

// CreateRequirementRequest represents the request to create an insurance requirement
type CreateRequirementRequest struct {
	ProjectID     uuid.UUID          `json:"project_id" validate:"required"`
	CoverageType  models.CoverageType `json:"coverage_type" validate:"required,oneof=public_liability workers_compensation professional_indemnity contract_works plant_and_equipment"`
	MinimumAmount int64              `json:"minimum_amount" validate:"required,gt=0"`
	Mandatory     *bool              `json:"mandatory,omitempty"`
}

// UpdateRequirementRequest represents the request to update an insurance requirement
type UpdateRequirementRequest struct {
	MinimumAmount int64 `json:"minimum_amount" validate:"required,gt=0"`
	Mandatory     *bool `json:"mandatory,omitempty"`
}

// Create creates an insurance requirement on a project
func (s *RequirementService) Create(req *CreateRequirementRequest) (*models.InsuranceRequirement, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.projRepo.GetByID(req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	exists, err := s.repo.CheckCoverageExists(req.ProjectID, req.CoverageType, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing requirement: %w", err)
	}
	if exists {
		return nil, apperrors.ErrRequirementExists
	}

	mandatory := true
	if req.Mandatory != nil {
		mandatory = *req.Mandatory
	}

	requirement := &models.InsuranceRequirement{
		ProjectID:     req.ProjectID,
		CoverageType:  req.CoverageType,
		MinimumAmount: req.MinimumAmount,
		Mandatory:     mandatory,
	}

	if err := s.repo.Create(requirement); err != nil {
		return nil, fmt.Errorf("failed to create requirement: %w", err)
	}
	return requirement, nil
}

// GetByProjectID lists a project's requirements
func (s *RequirementService) GetByProjectID(projectID uuid.UUID) ([]models.InsuranceRequirement, error) {
	if _, err := s.projRepo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}
	requirements, err := s.repo.GetByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requirements: %w", err)
	}
	return requirements, nil
}

// Update updates a requirement's minimum amount or mandatory flag
func (s *RequirementService) Update(id uuid.UUID, req *UpdateRequirementRequest) (*models.InsuranceRequirement, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	requirement, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRequirementNotFound
		}
		return nil, fmt.Errorf("failed to get requirement: %w", err)
	}

	requirement.MinimumAmount = req.MinimumAmount
	if req.Mandatory != nil {
		requirement.Mandatory = *req.Mandatory
	}

	if err := s.repo.Update(requirement); err != nil {
		return nil, fmt.Errorf("failed to update requirement: %w", err)
	}
	return requirement, nil
}

// Delete deletes a requirement
func (s *RequirementService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRequirementNotFound
		}
		return fmt.Errorf("failed to get requirement: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete requirement: %w", err)
	}
	return nil
}
