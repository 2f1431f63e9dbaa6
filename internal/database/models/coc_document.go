package models

import (
	"time"

	"github.com/google/uuid"
)

// DocumentStatus represents the processing state of a certificate document
type DocumentStatus string

const (
	DocumentStatusUploaded   DocumentStatus = "uploaded"
	DocumentStatusProcessing DocumentStatus = "processing"
	DocumentStatusVerified   DocumentStatus = "verified"
	DocumentStatusRejected   DocumentStatus = "rejected"
	DocumentStatusExpired    DocumentStatus = "expired"
)

// IsValid checks if the DocumentStatus is valid
func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusUploaded, DocumentStatusProcessing, DocumentStatusVerified, DocumentStatusRejected, DocumentStatusExpired:
		return true
	}
	return false
}

// CocDocument represents an uploaded Certificate of Currency
type CocDocument struct {
	BaseModel
	CompanyID       uuid.UUID      `json:"company_id" gorm:"type:uuid;not null;index" validate:"required"`
	SubcontractorID uuid.UUID      `json:"subcontractor_id" gorm:"type:uuid;not null;index" validate:"required"`
	ProjectID       *uuid.UUID     `json:"project_id,omitempty" gorm:"type:uuid;index"`
	StorageKey      string         `json:"storage_key" gorm:"not null;size:500"`
	FileName        string         `json:"file_name" gorm:"not null;size:255" validate:"required,max=255"`
	FileSize        int64          `json:"file_size" gorm:"not null"`
	ContentType     string         `json:"content_type" gorm:"size:100"`
	Status          DocumentStatus `json:"status" gorm:"type:varchar(20);not null;default:'uploaded'"`
	ExpiryDate      *time.Time     `json:"expiry_date,omitempty" gorm:"index"`

	// Relationships
	Subcontractor Subcontractor  `json:"subcontractor,omitempty" gorm:"foreignKey:SubcontractorID;constraint:OnDelete:CASCADE"`
	Verifications []Verification `json:"verifications,omitempty" gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CocDocument
func (CocDocument) TableName() string {
	return "coc_documents"
}
