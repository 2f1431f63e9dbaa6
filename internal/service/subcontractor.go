package service

import (
	"errors"
	"fmt"

	"compliance-portal-backend/internal/database/models"
	apperrors "compliance-portal-backend/internal/errors"
	"compliance-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubcontractorService handles business logic for subcontractors
type SubcontractorService struct {
	repo        repository.SubcontractorRepositoryInterface
	companyRepo repository.CompanyRepositoryInterface
	validator   *validator.Validate
}

// NewSubcontractorService creates a new subcontractor service
func NewSubcontractorService(repo repository.SubcontractorRepositoryInterface, companyRepo repository.CompanyRepositoryInterface, validator *validator.Validate) *SubcontractorService {
	return &SubcontractorService{
		repo:        repo,
		companyRepo: companyRepo,
		validator:   validator,
	}
}

// CreateSubcontractorRequest represents the request to create a subcontractor
type CreateSubcontractorRequest struct {
	CompanyID    uuid.UUID `json:"company_id" validate:"required"`
	BusinessName string    `json:"business_name" validate:"required,min=1,max=200"`
	ABN          string    `json:"abn" validate:"required"`
	Trade        string    `json:"trade,omitempty" validate:"max=100"`
	ContactName  string    `json:"contact_name,omitempty" validate:"max=200"`
	ContactEmail string    `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone string    `json:"contact_phone,omitempty" validate:"max=30"`
}

// UpdateSubcontractorRequest represents the request to update a subcontractor
type UpdateSubcontractorRequest struct {
	BusinessName string `json:"business_name" validate:"required,min=1,max=200"`
	ABN          string `json:"abn" validate:"required"`
	Trade        string `json:"trade,omitempty" validate:"max=100"`
	ContactName  string `json:"contact_name,omitempty" validate:"max=200"`
	ContactEmail string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone,omitempty" validate:"max=30"`
}

// ImportSubcontractorRow represents one row of a bulk import
type ImportSubcontractorRow struct {
	BusinessName string `json:"business_name"`
	ABN          string `json:"abn"`
	Trade        string `json:"trade,omitempty"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
}

// ImportSubcontractorsRequest represents a bulk import request
type ImportSubcontractorsRequest struct {
	CompanyID uuid.UUID                `json:"company_id" validate:"required"`
	Rows      []ImportSubcontractorRow `json:"rows" validate:"required,min=1,max=1000"`
}

// ImportRowResult reports the outcome of a single import row
type ImportRowResult struct {
	Row          int    `json:"row"`
	BusinessName string `json:"business_name"`
	ABN          string `json:"abn"`
	Imported     bool   `json:"imported"`
	Error        string `json:"error,omitempty"`
}

// ImportSubcontractorsResponse summarizes a bulk import
type ImportSubcontractorsResponse struct {
	Imported int               `json:"imported"`
	Skipped  int               `json:"skipped"`
	Results  []ImportRowResult `json:"results"`
}

// SubcontractorResponse represents the response for subcontractor operations
type SubcontractorResponse struct {
	ID              uuid.UUID `json:"id"`
	CompanyID       uuid.UUID `json:"company_id"`
	BusinessName    string    `json:"business_name"`
	ABN             string    `json:"abn"`
	Trade           string    `json:"trade,omitempty"`
	ContactName     string    `json:"contact_name,omitempty"`
	ContactEmail    string    `json:"contact_email,omitempty"`
	ContactPhone    string    `json:"contact_phone,omitempty"`
	ProcoreVendorID string    `json:"procore_vendor_id,omitempty"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       string    `json:"updated_at"`
}

// SubcontractorListResponse represents a paginated list of subcontractors
type SubcontractorListResponse struct {
	Subcontractors []SubcontractorResponse `json:"subcontractors"`
	Total          int64                   `json:"total"`
	Page           int                     `json:"page"`
	PageSize       int                     `json:"page_size"`
}

// Create creates a new subcontractor
func (s *SubcontractorService) Create(req *CreateSubcontractorRequest) (*SubcontractorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := ValidateABN(req.ABN); err != nil {
		return nil, err
	}
	abn := NormalizeABN(req.ABN)

	if _, err := s.companyRepo.GetByID(req.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to verify company: %w", err)
	}

	exists, err := s.repo.CheckABNExists(req.CompanyID, abn, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing ABN: %w", err)
	}
	if exists {
		return nil, apperrors.ErrSubcontractorExists
	}

	sub := &models.Subcontractor{
		CompanyID:    req.CompanyID,
		BusinessName: req.BusinessName,
		ABN:          abn,
		Trade:        req.Trade,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	}

	if err := s.repo.Create(sub); err != nil {
		return nil, fmt.Errorf("failed to create subcontractor: %w", err)
	}

	return s.toResponse(sub), nil
}

// Import bulk-creates subcontractors, reporting per-row validity. Rows with
// an invalid ABN or a duplicate ABN are skipped, not fatal.
func (s *SubcontractorService) Import(req *ImportSubcontractorsRequest) (*ImportSubcontractorsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.companyRepo.GetByID(req.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to verify company: %w", err)
	}

	resp := &ImportSubcontractorsResponse{Results: make([]ImportRowResult, 0, len(req.Rows))}
	seen := make(map[string]bool, len(req.Rows))

	for i, row := range req.Rows {
		result := ImportRowResult{Row: i + 1, BusinessName: row.BusinessName, ABN: row.ABN}

		abn := NormalizeABN(row.ABN)
		switch {
		case row.BusinessName == "":
			result.Error = "business name is required"
		case ValidateABN(abn) != nil:
			result.Error = "invalid ABN checksum"
		case seen[abn]:
			result.Error = "duplicate ABN in import"
		default:
			exists, err := s.repo.CheckABNExists(req.CompanyID, abn, nil)
			if err != nil {
				return nil, fmt.Errorf("failed to check existing ABN: %w", err)
			}
			if exists {
				result.Error = "ABN already registered"
			}
		}

		if result.Error != "" {
			resp.Skipped++
			resp.Results = append(resp.Results, result)
			continue
		}

		sub := models.Subcontractor{
			CompanyID:    req.CompanyID,
			BusinessName: row.BusinessName,
			ABN:          abn,
			Trade:        row.Trade,
			ContactName:  row.ContactName,
			ContactEmail: row.ContactEmail,
			ContactPhone: row.ContactPhone,
		}
		if err := s.repo.Create(&sub); err != nil {
			return nil, fmt.Errorf("failed to import row %d: %w", i+1, err)
		}

		seen[abn] = true
		result.Imported = true
		resp.Imported++
		resp.Results = append(resp.Results, result)
	}

	return resp, nil
}

// GetByID retrieves a subcontractor by ID
func (s *SubcontractorService) GetByID(id uuid.UUID) (*SubcontractorResponse, error) {
	sub, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubcontractorNotFound
		}
		return nil, fmt.Errorf("failed to get subcontractor: %w", err)
	}
	return s.toResponse(sub), nil
}

// GetByCompanyID retrieves subcontractors for a company with pagination
func (s *SubcontractorService) GetByCompanyID(companyID uuid.UUID, page, pageSize int) (*SubcontractorListResponse, error) {
	page, pageSize = normalizePaging(page, pageSize)

	subs, total, err := s.repo.GetByCompanyID(companyID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list subcontractors: %w", err)
	}
	return s.toListResponse(subs, total, page, pageSize), nil
}

// Search searches subcontractors by business name, ABN, or trade
func (s *SubcontractorService) Search(companyID uuid.UUID, query string, page, pageSize int) (*SubcontractorListResponse, error) {
	if query == "" {
		return s.GetByCompanyID(companyID, page, pageSize)
	}
	page, pageSize = normalizePaging(page, pageSize)

	subs, total, err := s.repo.Search(companyID, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to search subcontractors: %w", err)
	}
	return s.toListResponse(subs, total, page, pageSize), nil
}

// Update updates a subcontractor
func (s *SubcontractorService) Update(id uuid.UUID, req *UpdateSubcontractorRequest) (*SubcontractorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := ValidateABN(req.ABN); err != nil {
		return nil, err
	}
	abn := NormalizeABN(req.ABN)

	sub, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubcontractorNotFound
		}
		return nil, fmt.Errorf("failed to get subcontractor: %w", err)
	}

	if abn != sub.ABN {
		exists, err := s.repo.CheckABNExists(sub.CompanyID, abn, &sub.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing ABN: %w", err)
		}
		if exists {
			return nil, apperrors.ErrSubcontractorExists
		}
	}

	sub.BusinessName = req.BusinessName
	sub.ABN = abn
	sub.Trade = req.Trade
	sub.ContactName = req.ContactName
	sub.ContactEmail = req.ContactEmail
	sub.ContactPhone = req.ContactPhone

	if err := s.repo.Update(sub); err != nil {
		return nil, fmt.Errorf("failed to update subcontractor: %w", err)
	}

	return s.toResponse(sub), nil
}

// Delete deletes a subcontractor
func (s *SubcontractorService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSubcontractorNotFound
		}
		return fmt.Errorf("failed to get subcontractor: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete subcontractor: %w", err)
	}
	return nil
}

func (s *SubcontractorService) toResponse(sub *models.Subcontractor) *SubcontractorResponse {
	return &SubcontractorResponse{
		ID:              sub.ID,
		CompanyID:       sub.CompanyID,
		BusinessName:    sub.BusinessName,
		ABN:             sub.ABN,
		Trade:           sub.Trade,
		ContactName:     sub.ContactName,
		ContactEmail:    sub.ContactEmail,
		ContactPhone:    sub.ContactPhone,
		ProcoreVendorID: sub.ProcoreVendorID,
		CreatedAt:       sub.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       sub.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (s *SubcontractorService) toListResponse(subs []models.Subcontractor, total int64, page, pageSize int) *SubcontractorListResponse {
	resp := &SubcontractorListResponse{
		Subcontractors: make([]SubcontractorResponse, 0, len(subs)),
		Total:          total,
		Page:           page,
		PageSize:       pageSize,
	}
	for i := range subs {
		resp.Subcontractors = append(resp.Subcontractors, *s.toResponse(&subs[i]))
	}
	return resp
}

func normalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
