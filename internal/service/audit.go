package service

import (
	"encoding/json"
	"fmt"

	"compliance-portal-backend/internal/database/models"
	"compliance-portal-backend/internal/logger"
	"compliance-portal-backend/internal/repository"

	"github.com/google/uuid"
)

// AuditService records and lists tenant audit trail entries
type AuditService struct {
	repo repository.AuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repository.AuditLogRepositoryInterface) *AuditService {
	return &AuditService{repo: repo}
}

// AuditListResponse represents a paginated list of audit entries
type AuditListResponse struct {
	Entries  []models.AuditLog `json:"entries"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Record writes an audit entry. Failures are logged, never surfaced, so an
// audit problem cannot fail the operation being audited.
func (s *AuditService) Record(companyID uuid.UUID, actorID *uuid.UUID, action, entityType string, entityID *uuid.UUID, detail interface{}) {
	var detailJSON json.RawMessage
	if detail != nil {
		data, err := json.Marshal(detail)
		if err != nil {
			logger.New().WithError(err).WithField("action", action).Warn("Failed to marshal audit detail")
		} else {
			detailJSON = data
		}
	}

	entry := &models.AuditLog{
		CompanyID:  companyID,
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detailJSON,
	}
	if err := s.repo.Create(entry); err != nil {
		logger.New().WithError(err).WithField("action", action).Warn("Failed to write audit entry")
	}
}

// GetByCompanyID lists audit entries with optional filters
func (s *AuditService) GetByCompanyID(companyID uuid.UUID, filter repository.AuditLogFilter, page, pageSize int) (*AuditListResponse, error) {
	page, pageSize = normalizePaging(page, pageSize)

	entries, total, err := s.repo.GetByCompanyID(companyID, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return &AuditListResponse{Entries: entries, Total: total, Page: page, PageSize: pageSize}, nil
}
