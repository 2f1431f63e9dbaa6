package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus represents the status of a project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusCompleted, ProjectStatusArchived:
		return true
	}
	return false
}

// Project represents a construction project with company context
type Project struct {
	BaseModel
	CompanyID        uuid.UUID     `json:"company_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name             string        `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Address          string        `json:"address" gorm:"size:500"`
	Status           ProjectStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	StartDate        *time.Time    `json:"start_date,omitempty"`
	EndDate          *time.Time    `json:"end_date,omitempty"`
	ProcoreProjectID string        `json:"procore_project_id,omitempty" gorm:"size:50;index"`

	// Relationships
	Company      Company                `json:"company,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Assignments  []ProjectSubcontractor `json:"assignments,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Requirements []InsuranceRequirement `json:"requirements,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
