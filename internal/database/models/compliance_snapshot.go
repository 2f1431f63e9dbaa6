package models

import (
	"time"

	"github.com/google/uuid"
)

// ComplianceSnapshot is the daily aggregate of pair statuses for a company.
// Date is stored at midnight UTC; one row per company per day.
type ComplianceSnapshot struct {
	BaseModel
	CompanyID      uuid.UUID `json:"company_id" gorm:"type:uuid;not null;uniqueIndex:idx_snapshots_company_date;index" validate:"required"`
	Date           time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:idx_snapshots_company_date"`
	Compliant      int       `json:"compliant" gorm:"not null;default:0"`
	NonCompliant   int       `json:"non_compliant" gorm:"not null;default:0"`
	Pending        int       `json:"pending" gorm:"not null;default:0"`
	Exception      int       `json:"exception" gorm:"not null;default:0"`
	Total          int       `json:"total" gorm:"not null;default:0"`
	ComplianceRate int       `json:"compliance_rate" gorm:"not null;default:0"`
}

// TableName returns the table name for ComplianceSnapshot
func (ComplianceSnapshot) TableName() string {
	return "compliance_snapshots"
}
