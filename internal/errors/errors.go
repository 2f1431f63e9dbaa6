package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in company"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// IntegrationError represents a failure of an upstream provider call
type IntegrationError struct {
	Provider string
	Message  string
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// Is enables errors.Is() comparison for IntegrationError
func (e *IntegrationError) Is(target error) bool {
	t, ok := target.(*IntegrationError)
	if !ok {
		return false
	}
	return e.Provider == t.Provider
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrCompanyNotFound       = &NotFoundError{Entity: "company"}
	ErrUserNotFound          = &NotFoundError{Entity: "user"}
	ErrSubcontractorNotFound = &NotFoundError{Entity: "subcontractor"}
	ErrProjectNotFound       = &NotFoundError{Entity: "project"}
	ErrAssignmentNotFound    = &NotFoundError{Entity: "project-subcontractor assignment"}
	ErrDocumentNotFound      = &NotFoundError{Entity: "certificate document"}
	ErrVerificationNotFound  = &NotFoundError{Entity: "verification"}
	ErrRequirementNotFound   = &NotFoundError{Entity: "insurance requirement"}
	ErrTemplateNotFound      = &NotFoundError{Entity: "requirement template"}
	ErrNotificationNotFound  = &NotFoundError{Entity: "notification"}
	ErrIntegrationNotFound   = &NotFoundError{Entity: "integration connection"}
)

// Already Exists Errors
var (
	ErrCompanyExists       = &AlreadyExistsError{Entity: "company", Context: "with this name"}
	ErrUserExists          = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrSubcontractorExists = &AlreadyExistsError{Entity: "subcontractor", Context: "with this ABN in the company"}
	ErrProjectExists       = &AlreadyExistsError{Entity: "project", Context: "with this name in the company"}
	ErrAssignmentExists    = &AlreadyExistsError{Entity: "assignment", Context: "for this project and subcontractor"}
	ErrRequirementExists   = &AlreadyExistsError{Entity: "insurance requirement", Context: "for this coverage type on the project"}
	ErrTemplateExists      = &AlreadyExistsError{Entity: "requirement template", Context: "with this name in the company"}
)

// Business Logic Errors
var (
	ErrInvalidABN              = &ValidationError{Field: "abn", Message: "invalid ABN checksum"}
	ErrExceptionReasonRequired = &ValidationError{Field: "exception_reason", Message: "exception status requires a reason"}
	ErrInvalidDateRange        = &ValidationError{Field: "days", Message: "must be between 1 and 365"}
)

// Authentication Errors
var (
	ErrInvalidCredentials  = &AuthenticationError{Message: "invalid email or password"}
	ErrUserInactive        = &AuthenticationError{Message: "user account is disabled"}
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
	ErrInsufficientRole    = &AuthorizationError{Message: "insufficient role for this operation"}
	ErrCompanyMismatch     = &AuthorizationError{Message: "resource belongs to another company"}
)

// Integration Errors
var (
	ErrProcoreNotConnected     = &IntegrationError{Provider: "procore", Message: "company has no Procore connection"}
	ErrGraphNotConfigured      = &ConfigurationError{Message: "Microsoft Graph credentials not configured"}
	ErrStripeNotConfigured     = &ConfigurationError{Message: "Stripe credentials not configured"}
	ErrWebhookSignatureInvalid = errors.New("webhook signature verification failed")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsIntegration checks if an error is an IntegrationError
func IsIntegration(err error) bool {
	var intErr *IntegrationError
	return errors.As(err, &intErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var confErr *ConfigurationError
	return errors.As(err, &confErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// NewFieldValidationError creates a new ValidationError scoped to a field
func NewFieldValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewIntegrationError creates a new IntegrationError from an upstream failure
func NewIntegrationError(provider string, err error) error {
	return &IntegrationError{Provider: provider, Message: err.Error()}
}
