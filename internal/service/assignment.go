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

// AssignmentService handles business logic for project-subcontractor assignments
type AssignmentService struct {
	repo      repository.ProjectSubcontractorRepositoryInterface
	projRepo  repository.ProjectRepositoryInterface
	subRepo   repository.SubcontractorRepositoryInterface
	validator *validator.Validate
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(repo repository.ProjectSubcontractorRepositoryInterface, projRepo repository.ProjectRepositoryInterface, subRepo repository.SubcontractorRepositoryInterface, validator *validator.Validate) *AssignmentService {
	return &AssignmentService{
		repo:      repo,
		projRepo:  projRepo,
		subRepo:   subRepo,
		validator: validator,
	}
}

// AssignSubcontractorRequest represents the request to assign a subcontractor to a project
type AssignSubcontractorRequest struct {
	ProjectID       uuid.UUID `json:"project_id" validate:"required"`
	SubcontractorID uuid.UUID `json:"subcontractor_id" validate:"required"`
	TradeOnSite     string    `json:"trade_on_site,omitempty" validate:"max=100"`
}

// SetAssignmentStatusRequest represents the request to change an assignment's compliance status
type SetAssignmentStatusRequest struct {
	Status          models.ComplianceStatus `json:"status" validate:"required,oneof=compliant non_compliant pending exception"`
	ExceptionReason string                  `json:"exception_reason,omitempty" validate:"max=500"`
}

// AssignmentResponse represents the response for assignment operations
type AssignmentResponse struct {
	ID              uuid.UUID               `json:"id"`
	ProjectID       uuid.UUID               `json:"project_id"`
	SubcontractorID uuid.UUID               `json:"subcontractor_id"`
	Status          models.ComplianceStatus `json:"status"`
	ExceptionReason string                  `json:"exception_reason,omitempty"`
	TradeOnSite     string                  `json:"trade_on_site,omitempty"`
	Subcontractor   *SubcontractorResponse  `json:"subcontractor,omitempty"`
	CreatedAt       string                  `json:"created_at"`
	UpdatedAt       string                  `json:"updated_at"`
}

// AssignmentListResponse represents a paginated list of assignments
type AssignmentListResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// Assign attaches a subcontractor to a project with a pending status
func (s *AssignmentService) Assign(req *AssignSubcontractorRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	project, err := s.projRepo.GetByID(req.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	sub, err := s.subRepo.GetByID(req.SubcontractorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubcontractorNotFound
		}
		return nil, fmt.Errorf("failed to verify subcontractor: %w", err)
	}

	if project.CompanyID != sub.CompanyID {
		return nil, apperrors.ErrCompanyMismatch
	}

	exists, err := s.repo.CheckPairExists(req.ProjectID, req.SubcontractorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing assignment: %w", err)
	}
	if exists {
		return nil, apperrors.ErrAssignmentExists
	}

	assignment := &models.ProjectSubcontractor{
		ProjectID:       req.ProjectID,
		SubcontractorID: req.SubcontractorID,
		Status:          models.ComplianceStatusPending,
		TradeOnSite:     req.TradeOnSite,
	}

	if err := s.repo.Create(assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	return s.toResponse(assignment), nil
}

// GetByID retrieves an assignment by ID
func (s *AssignmentService) GetByID(id uuid.UUID) (*AssignmentResponse, error) {
	assignment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return s.toResponse(assignment), nil
}

// GetByProjectID lists assignments on a project
func (s *AssignmentService) GetByProjectID(projectID uuid.UUID, page, pageSize int) (*AssignmentListResponse, error) {
	page, pageSize = normalizePaging(page, pageSize)

	assignments, total, err := s.repo.GetByProjectID(projectID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return s.toListResponse(assignments, total, page, pageSize), nil
}

// GetBySubcontractorID lists a subcontractor's project assignments
func (s *AssignmentService) GetBySubcontractorID(subcontractorID uuid.UUID, page, pageSize int) (*AssignmentListResponse, error) {
	page, pageSize = normalizePaging(page, pageSize)

	assignments, total, err := s.repo.GetBySubcontractorID(subcontractorID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return s.toListResponse(assignments, total, page, pageSize), nil
}

// SetStatus changes an assignment's compliance status. An exception status
// requires a reason; switching away from exception clears the stored reason.
func (s *AssignmentService) SetStatus(id uuid.UUID, req *SetAssignmentStatusRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.Status == models.ComplianceStatusException && req.ExceptionReason == "" {
		return nil, apperrors.ErrExceptionReasonRequired
	}

	assignment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	reason := req.ExceptionReason
	if req.Status != models.ComplianceStatusException {
		reason = ""
	}

	if err := s.repo.SetStatus(id, req.Status, reason); err != nil {
		return nil, fmt.Errorf("failed to set assignment status: %w", err)
	}

	assignment.Status = req.Status
	assignment.ExceptionReason = reason
	return s.toResponse(assignment), nil
}

// Remove detaches a subcontractor from a project
func (s *AssignmentService) Remove(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to get assignment: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

// CompanyIDForAssignment resolves the owning company of an assignment, used
// for cache invalidation after status changes.
func (s *AssignmentService) CompanyIDForAssignment(id uuid.UUID) (uuid.UUID, error) {
	assignment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, apperrors.ErrAssignmentNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	project, err := s.projRepo.GetByID(assignment.ProjectID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project.CompanyID, nil
}

func (s *AssignmentService) toResponse(assignment *models.ProjectSubcontractor) *AssignmentResponse {
	resp := &AssignmentResponse{
		ID:              assignment.ID,
		ProjectID:       assignment.ProjectID,
		SubcontractorID: assignment.SubcontractorID,
		Status:          assignment.Status,
		ExceptionReason: assignment.ExceptionReason,
		TradeOnSite:     assignment.TradeOnSite,
		CreatedAt:       assignment.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       assignment.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if assignment.Subcontractor.ID != uuid.Nil {
		sub := assignment.Subcontractor
		resp.Subcontractor = &SubcontractorResponse{
			ID:              sub.ID,
			CompanyID:       sub.CompanyID,
			BusinessName:    sub.BusinessName,
			ABN:             sub.ABN,
			Trade:           sub.Trade,
			ContactName:     sub.ContactName,
			ContactEmail:    sub.ContactEmail,
			ContactPhone:    sub.ContactPhone,
			ProcoreVendorID: sub.ProcoreVendorID,
			CreatedAt:       sub.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			UpdatedAt:       sub.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}
	return resp
}

func (s *AssignmentService) toListResponse(assignments []models.ProjectSubcontractor, total int64, page, pageSize int) *AssignmentListResponse {
	resp := &AssignmentListResponse{
		Assignments: make([]AssignmentResponse, 0, len(assignments)),
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}
	for i := range assignments {
		resp.Assignments = append(resp.Assignments, *s.toResponse(&assignments[i]))
	}
	return resp
}
