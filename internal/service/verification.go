package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"compliance-portal-backend/internal/database/models"
	apperrors "compliance-portal-backend/internal/errors"
	"compliance-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VerificationService records certificate check outcomes and propagates them
// to assignment compliance statuses
type VerificationService struct {
	repo           repository.VerificationRepositoryInterface
	documentRepo   repository.CocDocumentRepositoryInterface
	assignmentRepo repository.ProjectSubcontractorRepositoryInterface
	validator      *validator.Validate
}

// NewVerificationService creates a new verification service
func NewVerificationService(repo repository.VerificationRepositoryInterface, documentRepo repository.CocDocumentRepositoryInterface, assignmentRepo repository.ProjectSubcontractorRepositoryInterface, validator *validator.Validate) *VerificationService {
	return &VerificationService{
		repo:           repo,
		documentRepo:   documentRepo,
		assignmentRepo: assignmentRepo,
		validator:      validator,
	}
}

// RecordVerificationRequest represents a manual or extracted verification result
type RecordVerificationRequest struct {
	DocumentID     uuid.UUID                  `json:"document_id" validate:"required"`
	Insurer        string                     `json:"insurer,omitempty" validate:"max=200"`
	PolicyNumber   string                     `json:"policy_number,omitempty" validate:"max=100"`
	CoverageType   models.CoverageType        `json:"coverage_type" validate:"required,oneof=public_liability workers_compensation professional_indemnity contract_works plant_and_equipment"`
	CoverageAmount int64                      `json:"coverage_amount" validate:"gte=0"`
	EffectiveDate  *time.Time                 `json:"effective_date,omitempty"`
	ExpiryDate     *time.Time                 `json:"expiry_date,omitempty"`
	Outcome        models.VerificationOutcome `json:"outcome" validate:"required,oneof=passed failed"`
	FailureReasons []string                   `json:"failure_reasons,omitempty"`
	VerifiedByID   *uuid.UUID                 `json:"verified_by_id,omitempty"`
}

// Record stores a verification and updates the document and the
// subcontractor's assignment statuses accordingly.
func (s *VerificationService) Record(req *RecordVerificationRequest) (*models.Verification, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.Outcome == models.VerificationOutcomeFailed && len(req.FailureReasons) == 0 {
		return nil, apperrors.NewValidationError("failure reasons are required for a failed verification")
	}

	doc, err := s.documentRepo.GetByID(req.DocumentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	verification := &models.Verification{
		DocumentID:     req.DocumentID,
		Insurer:        req.Insurer,
		PolicyNumber:   req.PolicyNumber,
		CoverageType:   req.CoverageType,
		CoverageAmount: req.CoverageAmount,
		EffectiveDate:  req.EffectiveDate,
		ExpiryDate:     req.ExpiryDate,
		Outcome:        req.Outcome,
		FailureReasons: strings.Join(req.FailureReasons, "; "),
		VerifiedByID:   req.VerifiedByID,
	}

	if err := s.repo.Create(verification); err != nil {
		return nil, fmt.Errorf("failed to record verification: %w", err)
	}

	docStatus := models.DocumentStatusVerified
	pairStatus := models.ComplianceStatusCompliant
	if req.Outcome == models.VerificationOutcomeFailed {
		docStatus = models.DocumentStatusRejected
		pairStatus = models.ComplianceStatusNonCompliant
	}

	if err := s.documentRepo.SetStatus(doc.ID, docStatus); err != nil {
		return nil, fmt.Errorf("failed to update document status: %w", err)
	}
	if req.Outcome == models.VerificationOutcomePassed && req.ExpiryDate != nil {
		if err := s.documentRepo.SetExpiry(doc.ID, req.ExpiryDate); err != nil {
			return nil, fmt.Errorf("failed to update document expiry: %w", err)
		}
	}

	if err := s.assignmentRepo.SetStatusForSubcontractor(doc.SubcontractorID, pairStatus); err != nil {
		return nil, fmt.Errorf("failed to update assignment statuses: %w", err)
	}

	return verification, nil
}

// GetByDocumentID lists every verification recorded against a document
func (s *VerificationService) GetByDocumentID(documentID uuid.UUID) ([]models.Verification, error) {
	if _, err := s.documentRepo.GetByID(documentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	verifications, err := s.repo.GetByDocumentID(documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list verifications: %w", err)
	}
	return verifications, nil
}

// GetLatest returns the most recent verification for a document
func (s *VerificationService) GetLatest(documentID uuid.UUID) (*models.Verification, error) {
	verification, err := s.repo.GetLatestByDocumentID(documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVerificationNotFound
		}
		return nil, fmt.Errorf("failed to get verification: %w", err)
	}
	return verification, nil
}
