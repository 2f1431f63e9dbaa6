package models

import (
	"github.com/google/uuid"
)

// NotificationType classifies an in-app notification
type NotificationType string

const (
	NotificationTypeDocumentExpiring NotificationType = "document_expiring"
	NotificationTypeDocumentExpired  NotificationType = "document_expired"
	NotificationTypeStatusChanged    NotificationType = "status_changed"
	NotificationTypeImportCompleted  NotificationType = "import_completed"
	NotificationTypeSyncCompleted    NotificationType = "sync_completed"
)

// Notification is an in-app message addressed to a single user
type Notification struct {
	BaseModel
	UserID     uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Type       NotificationType `json:"type" gorm:"type:varchar(30);not null" validate:"required"`
	Title      string           `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Body       string           `json:"body" gorm:"size:1000"`
	Read       bool             `json:"read" gorm:"not null;default:false;index"`
	EntityType string           `json:"entity_type,omitempty" gorm:"size:50"`
	EntityID   *uuid.UUID       `json:"entity_id,omitempty" gorm:"type:uuid"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
