package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the role of a user within a company
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleManager UserRole = "manager"
	UserRoleViewer  UserRole = "viewer"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleManager, UserRoleViewer:
		return true
	}
	return false
}

// User represents an account belonging to a company
type User struct {
	BaseModel
	CompanyID    uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index" validate:"required"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string     `json:"-" gorm:"not null;size:100"`
	FirstName    string     `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName     string     `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Role         UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'viewer'"`
	Active       bool       `json:"active" gorm:"not null;default:true"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`

	// Relationships
	Company Company `json:"company,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
