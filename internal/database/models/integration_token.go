package models

import (
	"time"

	"github.com/google/uuid"
)

// IntegrationProvider identifies an external system a company is connected to
type IntegrationProvider string

const (
	IntegrationProviderProcore   IntegrationProvider = "procore"
	IntegrationProviderMicrosoft IntegrationProvider = "microsoft365"
)

// IntegrationToken stores per-company OAuth credentials for an external provider
type IntegrationToken struct {
	BaseModel
	CompanyID    uuid.UUID           `json:"company_id" gorm:"type:uuid;not null;uniqueIndex:idx_integration_company_provider;index" validate:"required"`
	Provider     IntegrationProvider `json:"provider" gorm:"type:varchar(20);not null;uniqueIndex:idx_integration_company_provider" validate:"required"`
	AccessToken  string              `json:"-" gorm:"not null;size:2000"`
	RefreshToken string              `json:"-" gorm:"size:2000"`
	ExpiresAt    time.Time           `json:"expires_at"`
}

// TableName returns the table name for IntegrationToken
func (IntegrationToken) TableName() string {
	return "integration_tokens"
}
