package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// AuditLog records a mutating action performed by a user
type AuditLog struct {
	BaseModel
	CompanyID  uuid.UUID       `json:"company_id" gorm:"type:uuid;not null;index" validate:"required"`
	ActorID    *uuid.UUID      `json:"actor_id,omitempty" gorm:"type:uuid;index"`
	Action     string          `json:"action" gorm:"not null;size:100" validate:"required,max=100"`
	EntityType string          `json:"entity_type" gorm:"not null;size:50" validate:"required,max=50"`
	EntityID   *uuid.UUID      `json:"entity_id,omitempty" gorm:"type:uuid"`
	Detail     json.RawMessage `json:"detail,omitempty" gorm:"type:jsonb"`

	// Relationships
	Actor *User `json:"actor,omitempty" gorm:"foreignKey:ActorID"`
}

// TableName returns the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}
