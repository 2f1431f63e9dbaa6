package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"compliance-portal-backend/internal/database/models"
	apperrors "compliance-portal-backend/internal/errors"
	"compliance-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyService handles business logic for companies
type CompanyService struct {
	repo      repository.CompanyRepositoryInterface
	validator *validator.Validate
}

// NewCompanyService creates a new company service
func NewCompanyService(repo repository.CompanyRepositoryInterface, validator *validator.Validate) *CompanyService {
	return &CompanyService{
		repo:      repo,
		validator: validator,
	}
}

// CreateCompanyRequest represents the request to create a company
type CreateCompanyRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	ABN          string          `json:"abn,omitempty"`
	ContactEmail string          `json:"contact_email" validate:"required,email"`
	Settings     json.RawMessage `json:"settings,omitempty" swaggertype:"object"`
}

// UpdateCompanyRequest represents the request to update a company
type UpdateCompanyRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	ABN          string          `json:"abn,omitempty"`
	ContactEmail string          `json:"contact_email" validate:"required,email"`
	Settings     json.RawMessage `json:"settings,omitempty" swaggertype:"object"`
}

// CompanyResponse represents the response for company operations
type CompanyResponse struct {
	ID                   uuid.UUID          `json:"id"`
	Name                 string             `json:"name"`
	ABN                  string             `json:"abn,omitempty"`
	ContactEmail         string             `json:"contact_email"`
	Plan                 models.BillingPlan `json:"plan"`
	StripeCustomerID     string             `json:"stripe_customer_id,omitempty"`
	StripeSubscriptionID string             `json:"stripe_subscription_id,omitempty"`
	Settings             json.RawMessage    `json:"settings,omitempty" swaggertype:"object"`
	CreatedAt            string             `json:"created_at"`
	UpdatedAt            string             `json:"updated_at"`
}

// Create creates a new company
func (s *CompanyService) Create(req *CreateCompanyRequest) (*CompanyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.ABN != "" {
		if err := ValidateABN(req.ABN); err != nil {
			return nil, err
		}
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing company: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCompanyExists
	}

	company := &models.Company{
		Name:         req.Name,
		ABN:          NormalizeABN(req.ABN),
		ContactEmail: req.ContactEmail,
		Plan:         models.BillingPlanTrial,
		Settings:     req.Settings,
	}

	if err := s.repo.Create(company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return s.toResponse(company), nil
}

// GetByID retrieves a company by ID
func (s *CompanyService) GetByID(id uuid.UUID) (*CompanyResponse, error) {
	company, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return s.toResponse(company), nil
}

// Update updates a company's details and settings
func (s *CompanyService) Update(id uuid.UUID, req *UpdateCompanyRequest) (*CompanyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.ABN != "" {
		if err := ValidateABN(req.ABN); err != nil {
			return nil, err
		}
	}

	company, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	if req.Name != company.Name {
		existing, err := s.repo.GetByName(req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing company: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrCompanyExists
		}
	}

	company.Name = req.Name
	company.ABN = NormalizeABN(req.ABN)
	company.ContactEmail = req.ContactEmail
	if req.Settings != nil {
		company.Settings = req.Settings
	}

	if err := s.repo.Update(company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	return s.toResponse(company), nil
}

// Delete deletes a company and all tenant-scoped data under it
func (s *CompanyService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCompanyNotFound
		}
		return fmt.Errorf("failed to get company: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}

func (s *CompanyService) toResponse(company *models.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:                   company.ID,
		Name:                 company.Name,
		ABN:                  company.ABN,
		ContactEmail:         company.ContactEmail,
		Plan:                 company.Plan,
		StripeCustomerID:     company.StripeCustomerID,
		StripeSubscriptionID: company.StripeSubscriptionID,
		Settings:             company.Settings,
		CreatedAt:            company.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:            company.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
