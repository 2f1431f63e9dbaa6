package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"compliance-portal-backend/internal/config"
	"compliance-portal-backend/internal/database/models"
	apperrors "compliance-portal-backend/internal/errors"
	"compliance-portal-backend/internal/logger"
	"compliance-portal-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

// ProcoreService connects companies to Procore and imports vendors and
// projects. Tokens are stored per company and refreshed through the oauth2
// token source when expired.
type ProcoreService struct {
	cfg        *config.Config
	oauth      *oauth2.Config
	tokenRepo  repository.IntegrationTokenRepositoryInterface
	subRepo    repository.SubcontractorRepositoryInterface
	projRepo   repository.ProjectRepositoryInterface
	httpClient *http.Client
}

// NewProcoreService creates a new Procore service
func NewProcoreService(cfg *config.Config, tokenRepo repository.IntegrationTokenRepositoryInterface, subRepo repository.SubcontractorRepositoryInterface, projRepo repository.ProjectRepositoryInterface) *ProcoreService {
	return &ProcoreService{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.ProcoreClientID,
			ClientSecret: cfg.ProcoreClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.ProcoreBaseURL + "/oauth/authorize",
				TokenURL: cfg.ProcoreBaseURL + "/oauth/token",
			},
			RedirectURL: cfg.BaseURL + "/api/v1/procore/callback",
		},
		tokenRepo:  tokenRepo,
		subRepo:    subRepo,
		projRepo:   projRepo,
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

// SyncResult summarizes an import run
type SyncResult struct {
	Created int `json:"created"`
	Matched int `json:"matched"`
	Skipped int `json:"skipped"`
}

// ConnectionStatus reports whether a company has a live Procore connection
type ConnectionStatus struct {
	Connected bool       `json:"connected"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// procoreVendor is the subset of Procore's vendor payload the import uses
type procoreVendor struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ABN           string `json:"business_register,omitempty"`
	Trade         string `json:"trade_name,omitempty"`
	EmailAddress  string `json:"email_address,omitempty"`
	BusinessPhone string `json:"business_phone,omitempty"`
}

// procoreProject is the subset of Procore's project payload the import uses
type procoreProject struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Active  bool   `json:"active"`
}

func (s *ProcoreService) configured() bool {
	return s.cfg.ProcoreClientID != "" && s.cfg.ProcoreClientSecret != ""
}

// ConnectURL builds the authorization URL for a company. The company ID
// travels as the OAuth state and is validated on callback.
func (s *ProcoreService) ConnectURL(companyID uuid.UUID) (string, error) {
	if !s.configured() {
		return "", apperrors.NewAuthorizationError("Procore credentials not configured")
	}
	return s.oauth.AuthCodeURL(companyID.String(), oauth2.AccessTypeOffline), nil
}

// HandleCallback exchanges the authorization code and stores the company's tokens
func (s *ProcoreService) HandleCallback(ctx context.Context, state, code string) error {
	companyID, err := uuid.Parse(state)
	if err != nil {
		return apperrors.NewValidationError("invalid OAuth state")
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return apperrors.NewIntegrationError("procore", fmt.Errorf("code exchange failed: %w", err))
	}

	return s.storeToken(companyID, token)
}

// Status reports a company's connection state
func (s *ProcoreService) Status(companyID uuid.UUID) (*ConnectionStatus, error) {
	token, err := s.tokenRepo.Get(companyID, models.IntegrationProviderProcore)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ConnectionStatus{Connected: false}, nil
		}
		return nil, fmt.Errorf("failed to get integration token: %w", err)
	}
	expires := token.ExpiresAt
	return &ConnectionStatus{Connected: true, ExpiresAt: &expires}, nil
}

// Disconnect removes a company's stored Procore tokens
func (s *ProcoreService) Disconnect(companyID uuid.UUID) error {
	if _, err := s.tokenRepo.Get(companyID, models.IntegrationProviderProcore); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrIntegrationNotFound
		}
		return fmt.Errorf("failed to get integration token: %w", err)
	}
	if err := s.tokenRepo.Delete(companyID, models.IntegrationProviderProcore); err != nil {
		return fmt.Errorf("failed to delete integration token: %w", err)
	}
	return nil
}

// SyncVendors imports Procore vendors as subcontractors. Vendors already
// linked by Procore ID are counted as matched; vendors without a valid ABN
// are created with the ABN left blank for later correction, unless another
// subcontractor already holds that ABN.
func (s *ProcoreService) SyncVendors(ctx context.Context, companyID uuid.UUID) (*SyncResult, error) {
	var vendors []procoreVendor
	if err := s.get(ctx, companyID, "/rest/v1.0/vendors", &vendors); err != nil {
		return nil, err
	}

	result := &SyncResult{}
	for _, vendor := range vendors {
		if vendor.Name == "" {
			result.Skipped++
			continue
		}
		vendorID := strconv.FormatInt(vendor.ID, 10)

		existing, err := s.subRepo.GetByProcoreVendorID(companyID, vendorID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up vendor link: %w", err)
		}
		if existing != nil {
			result.Matched++
			continue
		}

		abn := NormalizeABN(vendor.ABN)
		if abn != "" {
			if ValidateABN(abn) != nil {
				abn = ""
			} else {
				taken, err := s.subRepo.CheckABNExists(companyID, abn, nil)
				if err != nil {
					return nil, fmt.Errorf("failed to check existing ABN: %w", err)
				}
				if taken {
					result.Skipped++
					continue
				}
			}
		}

		sub := &models.Subcontractor{
			CompanyID:       companyID,
			BusinessName:    vendor.Name,
			ABN:             abn,
			Trade:           vendor.Trade,
			ContactEmail:    vendor.EmailAddress,
			ContactPhone:    vendor.BusinessPhone,
			ProcoreVendorID: vendorID,
		}
		if err := s.subRepo.Create(sub); err != nil {
			return nil, fmt.Errorf("failed to create subcontractor from vendor: %w", err)
		}
		result.Created++
	}

	logger.New().WithFields(map[string]interface{}{
		"company_id": companyID,
		"created":    result.Created,
		"matched":    result.Matched,
		"skipped":    result.Skipped,
	}).Info("Procore vendor sync completed")
	return result, nil
}

// SyncProjects imports Procore projects, matched by Procore project ID
func (s *ProcoreService) SyncProjects(ctx context.Context, companyID uuid.UUID) (*SyncResult, error) {
	var projects []procoreProject
	if err := s.get(ctx, companyID, "/rest/v1.0/projects", &projects); err != nil {
		return nil, err
	}

	result := &SyncResult{}
	for _, proj := range projects {
		if proj.Name == "" {
			result.Skipped++
			continue
		}
		procoreID := strconv.FormatInt(proj.ID, 10)

		existing, err := s.projRepo.GetByProcoreProjectID(companyID, procoreID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up project link: %w", err)
		}
		if existing != nil {
			result.Matched++
			continue
		}

		nameTaken, err := s.projRepo.CheckNameExists(companyID, proj.Name, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing project: %w", err)
		}
		if nameTaken {
			result.Skipped++
			continue
		}

		status := models.ProjectStatusActive
		if !proj.Active {
			status = models.ProjectStatusCompleted
		}
		project := &models.Project{
			CompanyID:        companyID,
			Name:             proj.Name,
			Address:          proj.Address,
			Status:           status,
			ProcoreProjectID: procoreID,
		}
		if err := s.projRepo.Create(project); err != nil {
			return nil, fmt.Errorf("failed to create project from Procore: %w", err)
		}
		result.Created++
	}

	logger.New().WithFields(map[string]interface{}{
		"company_id": companyID,
		"created":    result.Created,
		"matched":    result.Matched,
		"skipped":    result.Skipped,
	}).Info("Procore project sync completed")
	return result, nil
}

// get performs an authenticated GET against the Procore API and decodes the body
func (s *ProcoreService) get(ctx context.Context, companyID uuid.UUID, path string, dest interface{}) error {
	client, err := s.clientFor(ctx, companyID)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.ProcoreBaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return apperrors.NewIntegrationError("procore", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return apperrors.NewIntegrationError("procore", fmt.Errorf("request failed: status=%d body=%s", resp.StatusCode, string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode Procore response: %w", err)
	}
	return nil
}

// clientFor builds an authenticated HTTP client for a company, persisting a
// refreshed token when the oauth2 source rotates it.
func (s *ProcoreService) clientFor(ctx context.Context, companyID uuid.UUID) (*http.Client, error) {
	stored, err := s.tokenRepo.Get(companyID, models.IntegrationProviderProcore)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProcoreNotConnected
		}
		return nil, fmt.Errorf("failed to get integration token: %w", err)
	}

	token := &oauth2.Token{
		AccessToken:  stored.AccessToken,
		RefreshToken: stored.RefreshToken,
		Expiry:       stored.ExpiresAt,
	}

	source := s.oauth.TokenSource(ctx, token)
	fresh, err := source.Token()
	if err != nil {
		return nil, apperrors.NewIntegrationError("procore", fmt.Errorf("token refresh failed: %w", err))
	}
	if fresh.AccessToken != token.AccessToken {
		if err := s.storeToken(companyID, fresh); err != nil {
			return nil, err
		}
	}

	base := &http.Client{Timeout: 20 * time.Second}
	ctxWithClient := context.WithValue(ctx, oauth2.HTTPClient, base)
	return oauth2.NewClient(ctxWithClient, oauth2.StaticTokenSource(fresh)), nil
}

func (s *ProcoreService) storeToken(companyID uuid.UUID, token *oauth2.Token) error {
	record := &models.IntegrationToken{
		CompanyID:    companyID,
		Provider:     models.IntegrationProviderProcore,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.Expiry,
	}
	if err := s.tokenRepo.Upsert(record); err != nil {
		return fmt.Errorf("failed to store integration token: %w", err)
	}
	return nil
}
