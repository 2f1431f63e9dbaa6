package models

import (
	"github.com/google/uuid"
)

// InsuranceRequirement defines the minimum cover a project demands for one coverage type
type InsuranceRequirement struct {
	BaseModel
	ProjectID     uuid.UUID    `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_requirement_project_coverage;index" validate:"required"`
	CoverageType  CoverageType `json:"coverage_type" gorm:"type:varchar(50);not null;uniqueIndex:idx_requirement_project_coverage" validate:"required"`
	MinimumAmount int64        `json:"minimum_amount" gorm:"not null" validate:"required,gt=0"`
	Mandatory     bool         `json:"mandatory" gorm:"not null;default:true"`

	// Relationships
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for InsuranceRequirement
func (InsuranceRequirement) TableName() string {
	return "insurance_requirements"
}
