package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// RequirementTemplate is a named set of requirement lines applied to new projects.
// Lines is a JSON array of {coverage_type, minimum_amount, mandatory}.
type RequirementTemplate struct {
	BaseModel
	CompanyID uuid.UUID       `json:"company_id" gorm:"type:uuid;not null;uniqueIndex:idx_templates_company_name;index" validate:"required"`
	Name      string          `json:"name" gorm:"not null;size:100;uniqueIndex:idx_templates_company_name" validate:"required,min=1,max=100"`
	Lines     json.RawMessage `json:"lines" gorm:"type:jsonb;not null" validate:"required"`

	// Relationships
	Company Company `json:"company,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// TemplateLine is the shape of a single entry in RequirementTemplate.Lines
type TemplateLine struct {
	CoverageType  CoverageType `json:"coverage_type" validate:"required"`
	MinimumAmount int64        `json:"minimum_amount" validate:"required,gt=0"`
	Mandatory     bool         `json:"mandatory"`
}

// TableName returns the table name for RequirementTemplate
func (RequirementTemplate) TableName() string {
	return "requirement_templates"
}
