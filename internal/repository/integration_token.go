package repository

import (
	"compliance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IntegrationTokenRepository handles database operations for integration tokens
type IntegrationTokenRepository struct {
	db *gorm.DB
}

// NewIntegrationTokenRepository creates a new integration token repository
func NewIntegrationTokenRepository(db *gorm.DB) *IntegrationTokenRepository {
	return &IntegrationTokenRepository{db: db}
}

// Upsert stores credentials for a (company, provider) pair, replacing any existing row
func (r *IntegrationTokenRepository) Upsert(t *models.IntegrationToken) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "company_id"}, {Name: "provider"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"access_token", "refresh_token", "expires_at", "updated_at",
		}),
	}).Create(t).Error
}

// Get retrieves the stored credentials for a (company, provider) pair
func (r *IntegrationTokenRepository) Get(companyID uuid.UUID, provider models.IntegrationProvider) (*models.IntegrationToken, error) {
	var t models.IntegrationToken
	err := r.db.First(&t, "company_id = ? AND provider = ?", companyID, provider).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes the stored credentials for a (company, provider) pair
func (r *IntegrationTokenRepository) Delete(companyID uuid.UUID, provider models.IntegrationProvider) error {
	return r.db.Delete(&models.IntegrationToken{}, "company_id = ? AND provider = ?", companyID, provider).Error
}
