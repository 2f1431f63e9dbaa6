package models

import (
	"time"

	"github.com/google/uuid"
)

// VerificationOutcome represents the result of checking a certificate
type VerificationOutcome string

const (
	VerificationOutcomePassed VerificationOutcome = "passed"
	VerificationOutcomeFailed VerificationOutcome = "failed"
)

// IsValid checks if the VerificationOutcome is valid
func (o VerificationOutcome) IsValid() bool {
	switch o {
	case VerificationOutcomePassed, VerificationOutcomeFailed:
		return true
	}
	return false
}

// CoverageType identifies the class of insurance on a certificate
type CoverageType string

const (
	CoverageTypePublicLiability    CoverageType = "public_liability"
	CoverageTypeWorkersComp        CoverageType = "workers_compensation"
	CoverageTypeProfessionalIndem  CoverageType = "professional_indemnity"
	CoverageTypeContractWorks      CoverageType = "contract_works"
	CoverageTypePlantAndEquipment  CoverageType = "plant_and_equipment"
)

// IsValid checks if the CoverageType is valid
func (c CoverageType) IsValid() bool {
	switch c {
	case CoverageTypePublicLiability, CoverageTypeWorkersComp, CoverageTypeProfessionalIndem,
		CoverageTypeContractWorks, CoverageTypePlantAndEquipment:
		return true
	}
	return false
}

// Verification holds the data extracted from a certificate and the check result
type Verification struct {
	BaseModel
	DocumentID     uuid.UUID           `json:"document_id" gorm:"type:uuid;not null;index" validate:"required"`
	Insurer        string              `json:"insurer" gorm:"size:200"`
	PolicyNumber   string              `json:"policy_number" gorm:"size:100"`
	CoverageType   CoverageType        `json:"coverage_type" gorm:"type:varchar(50)" validate:"required"`
	CoverageAmount int64               `json:"coverage_amount" gorm:"not null;default:0" validate:"gte=0"`
	EffectiveDate  *time.Time          `json:"effective_date,omitempty"`
	ExpiryDate     *time.Time          `json:"expiry_date,omitempty"`
	Outcome        VerificationOutcome `json:"outcome" gorm:"type:varchar(20);not null" validate:"required"`
	FailureReasons string              `json:"failure_reasons,omitempty" gorm:"size:1000"`
	VerifiedByID   *uuid.UUID          `json:"verified_by_id,omitempty" gorm:"type:uuid"`

	// Relationships
	Document   CocDocument `json:"document,omitempty" gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
	VerifiedBy *User       `json:"verified_by,omitempty" gorm:"foreignKey:VerifiedByID"`
}

// TableName returns the table name for Verification
func (Verification) TableName() string {
	return "verifications"
}
