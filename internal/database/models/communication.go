package models

import (
	"time"

	"github.com/google/uuid"
)

// CommunicationType classifies an outbound notice to a subcontractor
type CommunicationType string

const (
	CommunicationTypeRequest      CommunicationType = "request"
	CommunicationTypeReminder     CommunicationType = "reminder"
	CommunicationTypeExpiryNotice CommunicationType = "expiry_notice"
)

// IsValid checks if the CommunicationType is valid
func (t CommunicationType) IsValid() bool {
	switch t {
	case CommunicationTypeRequest, CommunicationTypeReminder, CommunicationTypeExpiryNotice:
		return true
	}
	return false
}

// Communication logs an email sent to a subcontractor
type Communication struct {
	BaseModel
	CompanyID         uuid.UUID         `json:"company_id" gorm:"type:uuid;not null;index" validate:"required"`
	SubcontractorID   uuid.UUID         `json:"subcontractor_id" gorm:"type:uuid;not null;index" validate:"required"`
	Type              CommunicationType `json:"type" gorm:"type:varchar(20);not null" validate:"required"`
	Subject           string            `json:"subject" gorm:"not null;size:255" validate:"required,max=255"`
	Body              string            `json:"body" gorm:"type:text"`
	SentAt            *time.Time        `json:"sent_at,omitempty"`
	ProviderMessageID string            `json:"provider_message_id,omitempty" gorm:"size:200"`

	// Relationships
	Subcontractor Subcontractor `json:"subcontractor,omitempty" gorm:"foreignKey:SubcontractorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Communication
func (Communication) TableName() string {
	return "communications"
}
