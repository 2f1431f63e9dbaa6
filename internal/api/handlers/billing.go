package handlers

import (
	"errors"
	"io"
	"net/http"

	"compliance-portal-backend/internal/auth"
	apperrors "compliance-portal-backend/internal/errors"
	"compliance-portal-backend/internal/database/models"
	"compliance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// maxWebhookBody bounds how much of a webhook payload is read
const maxWebhookBody = 1 << 20

// BillingHandler handles HTTP requests for subscription billing
type BillingHandler struct {
	stripeService *service.StripeService
	auditService  *service.AuditService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(stripeService *service.StripeService, auditService *service.AuditService) *BillingHandler {
	return &BillingHandler{
		stripeService: stripeService,
		auditService:  auditService,
	}
}

// CheckoutRequest represents the request to start a subscription checkout
type CheckoutRequest struct {
	Plan       models.BillingPlan `json:"plan" binding:"required,oneof=starter business pro"`
	SuccessURL string             `json:"success_url" binding:"required,url"`
	CancelURL  string             `json:"cancel_url" binding:"required,url"`
}

// PortalRequest represents the request to open the billing portal
type PortalRequest struct {
	ReturnURL string `json:"return_url" binding:"required,url"`
}

// CreateCheckout handles POST /billing/checkout
// @Summary Start a subscription checkout
// @Description Create a hosted checkout session for the chosen plan
// @Tags billing
// @Accept json
// @Produce json
// @Param checkout body CheckoutRequest true "Checkout data"
// @Success 200 {object} service.CheckoutSessionResponse "Checkout session created"
// @Failure 400 {object} ErrorResponse "Invalid plan or URLs"
// @Failure 502 {object} ErrorResponse "Billing provider request failed"
// @Failure 503 {object} ErrorResponse "Billing not configured"
// @Security BearerAuth
// @Router /billing/checkout [post]
func (h *BillingHandler) CreateCheckout(c *gin.Context) {
	companyID, _ := auth.CompanyID(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.stripeService.CreateCheckoutSession(c.Request.Context(), companyID, req.Plan, req.SuccessURL, req.CancelURL)
	if err != nil {
		respondError(c, err)
		return
	}

	actorID, _ := auth.UserID(c)
	h.auditService.Record(companyID, &actorID, "billing.checkout_started", "company", &companyID, gin.H{"plan": req.Plan})

	c.JSON(http.StatusOK, session)
}

// CreatePortal handles POST /billing/portal
// @Summary Open the billing portal
// @Description Create a billing portal session for managing the subscription
// @Tags billing
// @Accept json
// @Produce json
// @Param portal body PortalRequest true "Portal data"
// @Success 200 {object} service.PortalSessionResponse "Portal session created"
// @Failure 400 {object} ErrorResponse "Invalid return URL or no billing customer"
// @Failure 502 {object} ErrorResponse "Billing provider request failed"
// @Failure 503 {object} ErrorResponse "Billing not configured"
// @Security BearerAuth
// @Router /billing/portal [post]
func (h *BillingHandler) CreatePortal(c *gin.Context) {
	companyID, _ := auth.CompanyID(c)

	var req PortalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.stripeService.CreatePortalSession(c.Request.Context(), companyID, req.ReturnURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// Webhook handles POST /billing/webhook
// @Summary Billing webhook
// @Description Receive billing events; the signature header is verified before any processing
// @Tags billing
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Webhook signature"
// @Success 200 {object} map[string]string "Event processed"
// @Failure 400 {object} ErrorResponse "Invalid signature or payload"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /billing/webhook [post]
func (h *BillingHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read payload"})
		return
	}

	if err := h.stripeService.HandleWebhook(payload, c.GetHeader("Stripe-Signature")); err != nil {
		if errors.Is(err, apperrors.ErrWebhookSignatureInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": "true"})
}
