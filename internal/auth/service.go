package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"compliance-portal-backend/internal/database/models"
	apperrors "compliance-portal-backend/internal/errors"
	"compliance-portal-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour

	// SessionCookieName carries the access token for browser clients.
	SessionCookieName = "cp_session"
)

// RefreshTokenData stores information about an issued refresh token
type RefreshTokenData struct {
	UserID    uuid.UUID       `json:"user_id"`
	CompanyID uuid.UUID       `json:"company_id"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	ExpiresAt time.Time       `json:"expires_at"`
	CreatedAt time.Time       `json:"created_at"`
}

// AuthService provides authentication functionality
type AuthService struct {
	config        *AuthConfig
	userRepo      repository.UserRepositoryInterface
	refreshTokens map[string]*RefreshTokenData // In-memory store for refresh tokens
	tokenMutex    sync.RWMutex
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID    uuid.UUID       `json:"user_id"`
	CompanyID uuid.UUID       `json:"company_id"`
	Email     string          `json:"email" example:"admin@example.com"`
	Role      models.UserRole `json:"role" example:"admin"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// TokenPairResponse represents an issued access/refresh token pair
type TokenPairResponse struct {
	AccessToken  string       `json:"accessToken"`
	TokenType    string       `json:"tokenType"`
	ExpiresIn    int64        `json:"expiresIn"`
	RefreshToken string       `json:"refreshToken"`
	User         *UserProfile `json:"user"`
}

// UserProfile is the authenticated user's identity as returned to clients
type UserProfile struct {
	ID        uuid.UUID       `json:"id"`
	CompanyID uuid.UUID       `json:"company_id"`
	Email     string          `json:"email"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Role      models.UserRole `json:"role"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, userRepo repository.UserRepositoryInterface) (*AuthService, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{
		config:        config,
		userRepo:      userRepo,
		refreshTokens: make(map[string]*RefreshTokenData),
	}, nil
}

// Login verifies credentials and issues a token pair. Disabled accounts are
// rejected even with a correct password.
func (s *AuthService) Login(email, password string) (*TokenPairResponse, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Equalize timing between unknown email and wrong password.
			_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$N9qo8uLOickgx2ZMRZoMye"), []byte(password))
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, apperrors.ErrUserInactive
	}

	if err := s.userRepo.SetLastLogin(user.ID, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	return s.issueTokenPair(user)
}

// RefreshToken rotates a refresh token and issues a new token pair
func (s *AuthService) RefreshToken(refreshToken string) (*TokenPairResponse, error) {
	s.tokenMutex.RLock()
	tokenData, exists := s.refreshTokens[refreshToken]
	s.tokenMutex.RUnlock()

	if !exists {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if time.Now().After(tokenData.ExpiresAt) {
		s.tokenMutex.Lock()
		delete(s.refreshTokens, refreshToken)
		s.tokenMutex.Unlock()
		return nil, apperrors.ErrRefreshTokenExpired
	}

	user, err := s.userRepo.GetByID(tokenData.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.Active {
		return nil, apperrors.ErrUserInactive
	}

	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()

	return s.issueTokenPair(user)
}

// Logout revokes a refresh token
func (s *AuthService) Logout(refreshToken string) {
	if refreshToken == "" {
		return
	}
	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()
}

// GenerateJWT creates a signed access token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:    user.ID,
		CompanyID: user.CompanyID,
		Email:     user.Email,
		Role:      user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "compliance-portal-backend",
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses an access token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

func (s *AuthService) issueTokenPair(user *models.User) (*TokenPairResponse, error) {
	accessToken, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	refreshToken, err := generateRandomString(64)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := time.Now()
	s.tokenMutex.Lock()
	s.refreshTokens[refreshToken] = &RefreshTokenData{
		UserID:    user.ID,
		CompanyID: user.CompanyID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: now.Add(refreshTokenTTL),
		CreatedAt: now,
	}
	s.tokenMutex.Unlock()

	return &TokenPairResponse{
		AccessToken:  accessToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(accessTokenTTL.Seconds()),
		RefreshToken: refreshToken,
		User: &UserProfile{
			ID:        user.ID,
			CompanyID: user.CompanyID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Role:      user.Role,
		},
	}, nil
}

func generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
