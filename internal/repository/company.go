package repository

import (
	"compliance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create creates a new company
func (r *CompanyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(id uuid.UUID) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetByName retrieves a company by name
func (r *CompanyRepository) GetByName(name string) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetByStripeCustomerID retrieves a company by its Stripe customer ID
func (r *CompanyRepository) GetByStripeCustomerID(customerID string) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "stripe_customer_id = ?", customerID).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetAll retrieves all companies with pagination
func (r *CompanyRepository) GetAll(limit, offset int) ([]models.Company, int64, error) {
	var companies []models.Company
	var total int64

	if err := r.db.Model(&models.Company{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Find(&companies).Error
	if err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

// Update updates a company
func (r *CompanyRepository) Update(company *models.Company) error {
	return r.db.Save(company).Error
}

// UpdateBilling sets the Stripe subscription fields and plan for a company
func (r *CompanyRepository) UpdateBilling(id uuid.UUID, plan models.BillingPlan, customerID, subscriptionID string) error {
	return r.db.Model(&models.Company{}).Where("id = ?", id).Updates(map[string]interface{}{
		"plan":                   plan,
		"stripe_customer_id":     customerID,
		"stripe_subscription_id": subscriptionID,
	}).Error
}

// Delete deletes a company
func (r *CompanyRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Company{}, "id = ?", id).Error
}
