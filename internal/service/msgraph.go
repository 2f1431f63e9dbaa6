package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"compliance-portal-backend/internal/config"
	apperrors "compliance-portal-backend/internal/errors"

	"golang.org/x/oauth2/clientcredentials"
)

const graphBaseURL = "https://graph.microsoft.com/v1.0"

// Mailer sends outbound email on behalf of the platform
type Mailer interface {
	SendMail(ctx context.Context, to, subject, body string) (string, error)
}

// GraphService sends email through the Microsoft Graph API using the
// client-credentials flow. Tokens are fetched and refreshed lazily by the
// oauth2 token source.
type GraphService struct {
	cfg        *config.Config
	httpClient *http.Client
	sender     string
}

// NewGraphService creates a new Microsoft Graph service. The returned
// http.Client injects the bearer token on every request.
func NewGraphService(cfg *config.Config) *GraphService {
	s := &GraphService{cfg: cfg, sender: cfg.GraphSenderEmail}
	if !s.configured() {
		return s
	}

	creds := &clientcredentials.Config{
		ClientID:     cfg.GraphClientID,
		ClientSecret: cfg.GraphClientSecret,
		TokenURL:     fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", cfg.GraphTenantID),
		Scopes:       []string{"https://graph.microsoft.com/.default"},
	}
	s.httpClient = creds.Client(context.Background())
	s.httpClient.Timeout = 15 * time.Second
	return s
}

func (s *GraphService) configured() bool {
	return s.cfg.GraphTenantID != "" && s.cfg.GraphClientID != "" && s.cfg.GraphClientSecret != "" && s.cfg.GraphSenderEmail != ""
}

// graphMessage is the sendMail request shape
type graphMessage struct {
	Message struct {
		Subject string `json:"subject"`
		Body    struct {
			ContentType string `json:"contentType"`
			Content     string `json:"content"`
		} `json:"body"`
		ToRecipients []struct {
			EmailAddress struct {
				Address string `json:"address"`
			} `json:"emailAddress"`
		} `json:"toRecipients"`
	} `json:"message"`
	SaveToSentItems bool `json:"saveToSentItems"`
}

// SendMail delivers a message via the sender mailbox. Graph's sendMail
// endpoint returns 202 with no body, so the returned message ID is the
// request's client tracking ID when available.
func (s *GraphService) SendMail(ctx context.Context, to, subject, body string) (string, error) {
	if !s.configured() {
		return "", apperrors.ErrGraphNotConfigured
	}

	var msg graphMessage
	msg.Message.Subject = subject
	msg.Message.Body.ContentType = "HTML"
	msg.Message.Body.Content = body
	msg.SaveToSentItems = true
	recipient := struct {
		EmailAddress struct {
			Address string `json:"address"`
		} `json:"emailAddress"`
	}{}
	recipient.EmailAddress.Address = to
	msg.Message.ToRecipients = append(msg.Message.ToRecipients, recipient)

	payload, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal mail payload: %w", err)
	}

	url := fmt.Sprintf("%s/users/%s/sendMail", graphBaseURL, s.sender)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create sendMail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", apperrors.NewIntegrationError("microsoft365", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return "", apperrors.NewIntegrationError("microsoft365", fmt.Errorf("sendMail failed: status=%d body=%s", resp.StatusCode, string(respBody)))
	}

	return resp.Header.Get("request-id"), nil
}

// TestConnection verifies the credentials by fetching the sender's profile
func (s *GraphService) TestConnection(ctx context.Context) error {
	if !s.configured() {
		return apperrors.ErrGraphNotConfigured
	}

	url := fmt.Sprintf("%s/users/%s", graphBaseURL, s.sender)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return apperrors.NewIntegrationError("microsoft365", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return apperrors.NewIntegrationError("microsoft365", fmt.Errorf("profile lookup failed: status=%d body=%s", resp.StatusCode, string(respBody)))
	}
	return nil
}
