package models

import (
	"github.com/google/uuid"
)

// ComplianceStatus represents the compliance state of a subcontractor on a project
type ComplianceStatus string

const (
	ComplianceStatusCompliant    ComplianceStatus = "compliant"
	ComplianceStatusNonCompliant ComplianceStatus = "non_compliant"
	ComplianceStatusPending      ComplianceStatus = "pending"
	ComplianceStatusException    ComplianceStatus = "exception"
)

// IsValid checks if the ComplianceStatus is valid
func (s ComplianceStatus) IsValid() bool {
	switch s {
	case ComplianceStatusCompliant, ComplianceStatusNonCompliant, ComplianceStatusPending, ComplianceStatusException:
		return true
	}
	return false
}

// ProjectSubcontractor joins a subcontractor to a project with its compliance status
type ProjectSubcontractor struct {
	BaseModel
	ProjectID       uuid.UUID        `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_subcontractor;index" validate:"required"`
	SubcontractorID uuid.UUID        `json:"subcontractor_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_subcontractor;index" validate:"required"`
	Status          ComplianceStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	ExceptionReason string           `json:"exception_reason,omitempty" gorm:"size:500"`
	TradeOnSite     string           `json:"trade_on_site,omitempty" gorm:"size:100"`

	// Relationships
	Project       Project       `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Subcontractor Subcontractor `json:"subcontractor,omitempty" gorm:"foreignKey:SubcontractorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ProjectSubcontractor
func (ProjectSubcontractor) TableName() string {
	return "project_subcontractors"
}
