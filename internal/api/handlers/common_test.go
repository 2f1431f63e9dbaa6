package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	apperrors "compliance-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return ctx, recorder
}

// wrappedStructValidationError builds the error shape services return when
// request struct validation fails.
func wrappedStructValidationError() error {
	type req struct {
		Name string `validate:"required"`
	}
	err := validator.New().Struct(&req{})
	return fmt.Errorf("validation failed: %w", err)
}

func TestRespondErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", apperrors.ErrSubcontractorNotFound, http.StatusNotFound},
		{"already exists", apperrors.ErrSubcontractorExists, http.StatusConflict},
		{"validation", apperrors.NewValidationError("bad input"), http.StatusBadRequest},
		{"wrapped struct validation", wrappedStructValidationError(), http.StatusBadRequest},
		{"invalid abn", apperrors.ErrInvalidABN, http.StatusBadRequest},
		{"exception without reason", apperrors.ErrExceptionReasonRequired, http.StatusBadRequest},
		{"invalid trend window", apperrors.ErrInvalidDateRange, http.StatusBadRequest},
		{"authentication", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"authorization", apperrors.ErrCompanyMismatch, http.StatusForbidden},
		{"integration", apperrors.NewIntegrationError("procore", fmt.Errorf("upstream 500")), http.StatusBadGateway},
		{"configuration", apperrors.ErrStripeNotConfigured, http.StatusServiceUnavailable},
		{"unknown", fmt.Errorf("database exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, recorder := newTestContext()

			respondError(ctx, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Contains(t, recorder.Body.String(), "error")
		})
	}
}

func TestParseIDParam(t *testing.T) {
	ctx, recorder := newTestContext()
	id := uuid.New()
	ctx.Params = gin.Params{{Key: "id", Value: id.String()}}

	parsed, ok := parseIDParam(ctx, "id")
	assert.True(t, ok)
	assert.Equal(t, id, parsed)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestParseIDParamInvalid(t *testing.T) {
	ctx, recorder := newTestContext()
	ctx.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	_, ok := parseIDParam(ctx, "id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "invalid id")
}

func TestParsePagingDefaults(t *testing.T) {
	ctx, _ := newTestContext()

	page, pageSize := parsePaging(ctx)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, pageSize)
}

func TestParsePagingClampsPageSize(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.Request.URL = &url.URL{RawQuery: "page=3&page_size=500"}

	page, pageSize := parsePaging(ctx)
	assert.Equal(t, 3, page)
	assert.Equal(t, 20, pageSize)
}
