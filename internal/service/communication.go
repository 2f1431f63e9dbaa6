package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"compliance-portal-backend/internal/database/models"
	apperrors "compliance-portal-backend/internal/errors"
	"compliance-portal-backend/internal/logger"
	"compliance-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommunicationService logs and sends outbound notices to subcontractors
type CommunicationService struct {
	repo      repository.CommunicationRepositoryInterface
	subRepo   repository.SubcontractorRepositoryInterface
	mailer    Mailer
	validator *validator.Validate
}

// NewCommunicationService creates a new communication service
func NewCommunicationService(repo repository.CommunicationRepositoryInterface, subRepo repository.SubcontractorRepositoryInterface, mailer Mailer, validator *validator.Validate) *CommunicationService {
	return &CommunicationService{
		repo:      repo,
		subRepo:   subRepo,
		mailer:    mailer,
		validator: validator,
	}
}

// SendCommunicationRequest represents a notice to send to a subcontractor
type SendCommunicationRequest struct {
	SubcontractorID uuid.UUID                `json:"subcontractor_id" validate:"required"`
	Type            models.CommunicationType `json:"type" validate:"required,oneof=request reminder expiry_notice"`
	Subject         string                   `json:"subject" validate:"required,max=255"`
	Body            string                   `json:"body" validate:"required"`
}

// CommunicationListResponse represents a paginated list of communications
type CommunicationListResponse struct {
	Communications []models.Communication `json:"communications"`
	Total          int64                  `json:"total"`
	Page           int                    `json:"page"`
	PageSize       int                    `json:"page_size"`
}

// Send logs a communication and delivers it to the subcontractor's contact
// email. The log row is written first so a delivery failure still leaves an
// audit trail with no sent_at timestamp.
func (s *CommunicationService) Send(ctx context.Context, req *SendCommunicationRequest) (*models.Communication, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	sub, err := s.subRepo.GetByID(req.SubcontractorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubcontractorNotFound
		}
		return nil, fmt.Errorf("failed to get subcontractor: %w", err)
	}
	if sub.ContactEmail == "" {
		return nil, apperrors.NewValidationError("subcontractor has no contact email")
	}

	comm := &models.Communication{
		CompanyID:       sub.CompanyID,
		SubcontractorID: sub.ID,
		Type:            req.Type,
		Subject:         req.Subject,
		Body:            req.Body,
	}
	if err := s.repo.Create(comm); err != nil {
		return nil, fmt.Errorf("failed to log communication: %w", err)
	}

	messageID, err := s.mailer.SendMail(ctx, sub.ContactEmail, req.Subject, req.Body)
	if err != nil {
		logger.New().WithError(err).WithField("subcontractor_id", sub.ID).Warn("Failed to deliver communication")
		return comm, err
	}

	now := time.Now().UTC()
	comm.SentAt = &now
	comm.ProviderMessageID = messageID
	if err := s.repo.Update(comm); err != nil {
		return nil, fmt.Errorf("failed to update communication: %w", err)
	}

	return comm, nil
}

// GetByCompanyID lists a company's communications
func (s *CommunicationService) GetByCompanyID(companyID uuid.UUID, page, pageSize int) (*CommunicationListResponse, error) {
	page, pageSize = normalizePaging(page, pageSize)

	comms, total, err := s.repo.GetByCompanyID(companyID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list communications: %w", err)
	}
	return &CommunicationListResponse{Communications: comms, Total: total, Page: page, PageSize: pageSize}, nil
}

// GetBySubcontractorID lists communications sent to one subcontractor
func (s *CommunicationService) GetBySubcontractorID(subcontractorID uuid.UUID, page, pageSize int) (*CommunicationListResponse, error) {
	page, pageSize = normalizePaging(page, pageSize)

	comms, total, err := s.repo.GetBySubcontractorID(subcontractorID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list communications: %w", err)
	}
	return &CommunicationListResponse{Communications: comms, Total: total, Page: page, PageSize: pageSize}, nil
}
