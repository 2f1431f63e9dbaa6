package repository

import (
	"compliance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLogFilter narrows audit log listings
type AuditLogFilter struct {
	ActorID    *uuid.UUID
	EntityType string
	Action     string
}

// AuditLogRepository handles database operations for audit logs
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create creates a new audit log entry
func (r *AuditLogRepository) Create(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

// GetByCompanyID retrieves audit entries for a company with optional filters, newest first
func (r *AuditLogRepository) GetByCompanyID(companyID uuid.UUID, filter AuditLogFilter, limit, offset int) ([]models.AuditLog, int64, error) {
	var entries []models.AuditLog
	var total int64

	query := r.db.Model(&models.AuditLog{}).Where("company_id = ?", companyID)
	if filter.ActorID != nil {
		query = query.Where("actor_id = ?", *filter.ActorID)
	}
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
