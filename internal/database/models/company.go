package models

import (
	"encoding/json"
)

// BillingPlan represents the subscription plan a company is on
type BillingPlan string

const (
	BillingPlanTrial    BillingPlan = "trial"
	BillingPlanStarter  BillingPlan = "starter"
	BillingPlanBusiness BillingPlan = "business"
	BillingPlanPro      BillingPlan = "pro"
)

// IsValid checks if the BillingPlan is valid
func (p BillingPlan) IsValid() bool {
	switch p {
	case BillingPlanTrial, BillingPlanStarter, BillingPlanBusiness, BillingPlanPro:
		return true
	}
	return false
}

// Company represents the root entity for multi-tenancy
type Company struct {
	BaseModel
	Name         string          `json:"name" gorm:"uniqueIndex;not null;size:200" validate:"required,min=1,max=200"`
	ABN          string          `json:"abn" gorm:"size:11;index" validate:"omitempty,len=11,numeric"`
	ContactEmail string          `json:"contact_email" gorm:"not null;size:255" validate:"required,email,max=255"`
	Phone        string          `json:"phone" gorm:"size:20"`
	Plan         BillingPlan     `json:"plan" gorm:"type:varchar(20);not null;default:'trial'"`
	StripeCustomerID     string  `json:"stripe_customer_id,omitempty" gorm:"size:100;index"`
	StripeSubscriptionID string  `json:"stripe_subscription_id,omitempty" gorm:"size:100"`
	Settings     json.RawMessage `json:"settings" gorm:"type:jsonb"`

	// Relationships
	Users          []User          `json:"users,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Subcontractors []Subcontractor `json:"subcontractors,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Projects       []Project       `json:"projects,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}
