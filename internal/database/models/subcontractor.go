package models

import (
	"github.com/google/uuid"
)

// Subcontractor represents a trade business whose insurance is tracked
type Subcontractor struct {
	BaseModel
	CompanyID       uuid.UUID `json:"company_id" gorm:"type:uuid;not null;uniqueIndex:idx_subcontractors_company_abn;index" validate:"required"`
	BusinessName    string    `json:"business_name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	ABN             string    `json:"abn" gorm:"not null;size:11;uniqueIndex:idx_subcontractors_company_abn" validate:"required,len=11,numeric"`
	Trade           string    `json:"trade" gorm:"size:100"`
	ContactName     string    `json:"contact_name" gorm:"size:150"`
	ContactEmail    string    `json:"contact_email" gorm:"size:255" validate:"omitempty,email,max=255"`
	ContactPhone    string    `json:"contact_phone" gorm:"size:20"`
	ProcoreVendorID string    `json:"procore_vendor_id,omitempty" gorm:"size:50;index"`

	// Relationships
	Company     Company                `json:"company,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Assignments []ProjectSubcontractor `json:"assignments,omitempty" gorm:"foreignKey:SubcontractorID;constraint:OnDelete:CASCADE"`
	Documents   []CocDocument          `json:"documents,omitempty" gorm:"foreignKey:SubcontractorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Subcontractor
func (Subcontractor) TableName() string {
	return "subcontractors"
}
