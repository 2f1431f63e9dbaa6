package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"compliance-portal-backend/internal/config"
	"compliance-portal-backend/internal/database/models"
	apperrors "compliance-portal-backend/internal/errors"
	"compliance-portal-backend/internal/logger"
	"compliance-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	stripeBaseURL = "https://api.stripe.com/v1"

	// webhookTolerance bounds how stale a signed webhook timestamp may be.
	webhookTolerance = 5 * time.Minute
)

// StripeService drives plan upgrades through Stripe Checkout and keeps
// company billing state in sync from webhooks. Calls use Stripe's
// form-encoded REST API directly.
type StripeService struct {
	cfg         *config.Config
	companyRepo repository.CompanyRepositoryInterface
	httpClient  *http.Client
	now         func() time.Time
}

// NewStripeService creates a new Stripe service
func NewStripeService(cfg *config.Config, companyRepo repository.CompanyRepositoryInterface) *StripeService {
	return &StripeService{
		cfg:         cfg,
		companyRepo: companyRepo,
		httpClient:  &http.Client{Timeout: 20 * time.Second},
		now:         time.Now,
	}
}

// CheckoutSessionResponse carries the hosted checkout URL
type CheckoutSessionResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// PortalSessionResponse carries the hosted billing portal URL
type PortalSessionResponse struct {
	URL string `json:"url"`
}

// stripeEvent is the decoded webhook envelope
type stripeEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

func (s *StripeService) configured() bool {
	return s.cfg.StripeSecretKey != ""
}

func (s *StripeService) priceFor(plan models.BillingPlan) (string, error) {
	var price string
	switch plan {
	case models.BillingPlanStarter:
		price = s.cfg.StripePriceStarter
	case models.BillingPlanBusiness:
		price = s.cfg.StripePriceBusiness
	case models.BillingPlanPro:
		price = s.cfg.StripePricePro
	default:
		return "", apperrors.NewValidationError("plan is not purchasable")
	}
	if price == "" {
		return "", apperrors.ErrStripeNotConfigured
	}
	return price, nil
}

// CreateCheckoutSession starts a subscription checkout for a plan upgrade.
// The company is created as a Stripe customer on first purchase.
func (s *StripeService) CreateCheckoutSession(ctx context.Context, companyID uuid.UUID, plan models.BillingPlan, successURL, cancelURL string) (*CheckoutSessionResponse, error) {
	if !s.configured() {
		return nil, apperrors.ErrStripeNotConfigured
	}
	price, err := s.priceFor(plan)
	if err != nil {
		return nil, err
	}

	company, err := s.companyRepo.GetByID(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	customerID := company.StripeCustomerID
	if customerID == "" {
		customerID, err = s.createCustomer(ctx, company)
		if err != nil {
			return nil, err
		}
		if err := s.companyRepo.UpdateBilling(companyID, company.Plan, customerID, company.StripeSubscriptionID); err != nil {
			return nil, fmt.Errorf("failed to store customer ID: %w", err)
		}
	}

	form := url.Values{}
	form.Set("mode", "subscription")
	form.Set("customer", customerID)
	form.Set("line_items[0][price]", price)
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", successURL)
	form.Set("cancel_url", cancelURL)
	form.Set("metadata[company_id]", companyID.String())
	form.Set("metadata[plan]", string(plan))
	form.Set("subscription_data[metadata][company_id]", companyID.String())
	form.Set("subscription_data[metadata][plan]", string(plan))

	var session struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := s.post(ctx, "/checkout/sessions", form, &session); err != nil {
		return nil, err
	}
	return &CheckoutSessionResponse{SessionID: session.ID, URL: session.URL}, nil
}

// CreatePortalSession returns a billing portal link for an existing customer
func (s *StripeService) CreatePortalSession(ctx context.Context, companyID uuid.UUID, returnURL string) (*PortalSessionResponse, error) {
	if !s.configured() {
		return nil, apperrors.ErrStripeNotConfigured
	}

	company, err := s.companyRepo.GetByID(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	if company.StripeCustomerID == "" {
		return nil, apperrors.NewValidationError("company has no billing account yet")
	}

	form := url.Values{}
	form.Set("customer", company.StripeCustomerID)
	form.Set("return_url", returnURL)

	var session struct {
		URL string `json:"url"`
	}
	if err := s.post(ctx, "/billing_portal/sessions", form, &session); err != nil {
		return nil, err
	}
	return &PortalSessionResponse{URL: session.URL}, nil
}

// HandleWebhook verifies the signature header and applies billing state
// changes. Unhandled event types are acknowledged and ignored.
func (s *StripeService) HandleWebhook(payload []byte, signatureHeader string) error {
	if s.cfg.StripeWebhookSecret == "" {
		return apperrors.ErrStripeNotConfigured
	}
	if err := s.verifySignature(payload, signatureHeader); err != nil {
		return err
	}

	var event stripeEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return apperrors.NewValidationError("malformed webhook payload")
	}

	log := logger.New().WithFields(map[string]interface{}{
		"event_id":   event.ID,
		"event_type": event.Type,
	})

	switch event.Type {
	case "checkout.session.completed":
		var session struct {
			Customer     string `json:"customer"`
			Subscription string `json:"subscription"`
			Metadata     struct {
				CompanyID string `json:"company_id"`
				Plan      string `json:"plan"`
			} `json:"metadata"`
		}
		if err := json.Unmarshal(event.Data.Object, &session); err != nil {
			return apperrors.NewValidationError("malformed checkout session object")
		}
		return s.applyPlan(session.Metadata.CompanyID, session.Customer, session.Subscription, models.BillingPlan(session.Metadata.Plan))

	case "customer.subscription.deleted":
		var sub struct {
			Customer string `json:"customer"`
		}
		if err := json.Unmarshal(event.Data.Object, &sub); err != nil {
			return apperrors.NewValidationError("malformed subscription object")
		}
		company, err := s.companyRepo.GetByStripeCustomerID(sub.Customer)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warn("Webhook for unknown Stripe customer")
				return nil
			}
			return fmt.Errorf("failed to resolve customer: %w", err)
		}
		return s.companyRepo.UpdateBilling(company.ID, models.BillingPlanTrial, company.StripeCustomerID, "")

	default:
		log.Debug("Ignoring unhandled Stripe event")
		return nil
	}
}

func (s *StripeService) applyPlan(companyIDStr, customerID, subscriptionID string, plan models.BillingPlan) error {
	companyID, err := uuid.Parse(companyIDStr)
	if err != nil {
		return apperrors.NewValidationError("webhook metadata has no valid company ID")
	}
	if !plan.IsValid() {
		return apperrors.NewValidationError("webhook metadata has no valid plan")
	}
	if err := s.companyRepo.UpdateBilling(companyID, plan, customerID, subscriptionID); err != nil {
		return fmt.Errorf("failed to update billing state: %w", err)
	}
	logger.New().WithFields(map[string]interface{}{
		"company_id": companyID,
		"plan":       plan,
	}).Info("Company plan updated from Stripe webhook")
	return nil
}

// verifySignature checks Stripe's "t=...,v1=..." signature header with a
// timestamp tolerance against replay.
func (s *StripeService) verifySignature(payload []byte, header string) error {
	var timestamp string
	var signatures []string
	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			timestamp = kv[1]
		case "v1":
			signatures = append(signatures, kv[1])
		}
	}
	if timestamp == "" || len(signatures) == 0 {
		return apperrors.ErrWebhookSignatureInvalid
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return apperrors.ErrWebhookSignatureInvalid
	}
	age := s.now().UTC().Sub(time.Unix(ts, 0))
	if age > webhookTolerance || age < -webhookTolerance {
		return apperrors.ErrWebhookSignatureInvalid
	}

	mac := hmac.New(sha256.New, []byte(s.cfg.StripeWebhookSecret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	for _, sig := range signatures {
		if hmac.Equal([]byte(expected), []byte(sig)) {
			return nil
		}
	}
	return apperrors.ErrWebhookSignatureInvalid
}

func (s *StripeService) createCustomer(ctx context.Context, company *models.Company) (string, error) {
	form := url.Values{}
	form.Set("name", company.Name)
	form.Set("email", company.ContactEmail)
	form.Set("metadata[company_id]", company.ID.String())

	var customer struct {
		ID string `json:"id"`
	}
	if err := s.post(ctx, "/customers", form, &customer); err != nil {
		return "", err
	}
	return customer.ID, nil
}

func (s *StripeService) post(ctx context.Context, path string, form url.Values, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, stripeBaseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(s.cfg.StripeSecretKey, "")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return apperrors.NewIntegrationError("stripe", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return apperrors.NewIntegrationError("stripe", fmt.Errorf("request failed: status=%d body=%s", resp.StatusCode, string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode Stripe response: %w", err)
	}
	return nil
}
