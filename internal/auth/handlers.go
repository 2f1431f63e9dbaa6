package auth

import (
	"errors"
	"net/http"

	"compliance-portal-backend/internal/database/models"
	apperrors "compliance-portal-backend/internal/errors"
	"compliance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service        *AuthService
	companyService *service.CompanyService
	userService    *service.UserService
	config         *AuthConfig
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService *AuthService, companyService *service.CompanyService, userService *service.UserService, config *AuthConfig) *AuthHandler {
	return &AuthHandler{
		service:        authService,
		companyService: companyService,
		userService:    userService,
		config:         config,
	}
}

// RegisterRequest creates a company together with its first admin user
type RegisterRequest struct {
	CompanyName  string `json:"company_name" binding:"required"`
	ABN          string `json:"abn,omitempty"`
	ContactEmail string `json:"contact_email" binding:"required,email"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8,max=72"`
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents the request for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest revokes a refresh token
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken,omitempty"`
}

// ValidateResponse reports token validity
type ValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims,omitempty"`
}

// Register handles POST /api/auth/register
// @Summary Register a company
// @Description Create a new company and its first admin user, returning a token pair
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} TokenPairResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 409 {object} map[string]interface{} "Company or user already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.companyService.Create(&service.CreateCompanyRequest{
		Name:         req.CompanyName,
		ABN:          req.ABN,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidABN) || apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create company"})
		return
	}

	if _, err := h.userService.Create(&service.CreateUserRequest{
		CompanyID: company.ID,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.UserRoleAdmin,
	}); err != nil {
		// Roll the registration back so the email can be retried.
		_ = h.companyService.Delete(company.ID)
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	tokens, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue tokens"})
		return
	}

	h.setSessionCookie(c, tokens.AccessToken)
	c.JSON(http.StatusCreated, tokens)
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Verify credentials and issue a token pair; the access token is also set as an HTTP-only cookie
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} TokenPairResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	h.setSessionCookie(c, tokens.AccessToken)
	c.JSON(http.StatusOK, tokens)
}

// Refresh handles POST /api/auth/refresh
// @Summary Refresh tokens
// @Description Rotate a refresh token and issue a new token pair
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} TokenPairResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 401 {object} map[string]interface{} "Invalid or expired refresh token"
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, err := h.service.RefreshToken(req.RefreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidRefreshToken) || errors.Is(err, apperrors.ErrRefreshTokenExpired) || apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Refresh failed"})
		return
	}

	h.setSessionCookie(c, tokens.AccessToken)
	c.JSON(http.StatusOK, tokens)
}

// Logout handles POST /api/auth/logout
// @Summary Log out
// @Description Revoke a refresh token and clear the session cookie
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body LogoutRequest false "Refresh token to revoke"
// @Success 200 {object} map[string]interface{}
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req LogoutRequest
	_ = c.ShouldBindJSON(&req)

	h.service.Logout(req.RefreshToken)
	c.SetCookie(SessionCookieName, "", -1, "/", h.config.CookieDomain, h.config.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me handles GET /api/auth/me
// @Summary Current user
// @Description Return the authenticated user's profile
// @Tags authentication
// @Produce json
// @Success 200 {object} service.UserResponse
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Security BearerAuth
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := h.userService.GetByID(userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Validate handles GET /api/auth/validate
// @Summary Validate token
// @Description Check whether the presented access token is valid
// @Tags authentication
// @Produce json
// @Success 200 {object} ValidateResponse
// @Router /api/auth/validate [get]
func (h *AuthHandler) Validate(c *gin.Context) {
	tokenString := extractToken(c)
	if tokenString == "" {
		c.JSON(http.StatusOK, ValidateResponse{Valid: false})
		return
	}

	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusOK, ValidateResponse{Valid: false})
		return
	}
	c.JSON(http.StatusOK, ValidateResponse{Valid: true, Claims: claims})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(SessionCookieName, token, int(accessTokenTTL.Seconds()), "/", h.config.CookieDomain, h.config.CookieSecure, true)
}
