package auth

import (
	"testing"
	"time"

	"compliance-portal-backend/internal/database/models"
	apperrors "compliance-portal-backend/internal/errors"
	"compliance-portal-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	userRepo *mocks.MockUserRepositoryInterface
	service  *AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = mocks.NewMockUserRepositoryInterface(s.ctrl)

	svc, err := NewAuthService(&AuthConfig{JWTSecret: "test-secret-at-least-16-chars"}, s.userRepo)
	s.Require().NoError(err)
	s.service = svc
}

func (s *AuthServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthServiceTestSuite) activeUser(password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.Require().NoError(err)
	return &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		CompanyID:    uuid.New(),
		Email:        "admin@buildco.example",
		PasswordHash: string(hash),
		FirstName:    "Dana",
		LastName:     "Wu",
		Role:         models.UserRoleAdmin,
		Active:       true,
	}
}

func (s *AuthServiceTestSuite) TestNewAuthService_RejectsShortSecret() {
	_, err := NewAuthService(&AuthConfig{JWTSecret: "short"}, s.userRepo)
	s.Error(err)
	s.Contains(err.Error(), "at least 16 characters")
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	user := s.activeUser("correct horse battery")

	s.userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)
	s.userRepo.EXPECT().SetLastLogin(user.ID, gomock.Any()).Return(nil)

	pair, err := s.service.Login(user.Email, "correct horse battery")

	s.NoError(err)
	s.Require().NotNil(pair)
	s.Equal("Bearer", pair.TokenType)
	s.Equal(int64(3600), pair.ExpiresIn)
	s.NotEmpty(pair.AccessToken)
	s.NotEmpty(pair.RefreshToken)
	s.Require().NotNil(pair.User)
	s.Equal(user.ID, pair.User.ID)
	s.Equal(user.CompanyID, pair.User.CompanyID)
	s.Equal(models.UserRoleAdmin, pair.User.Role)

	claims, err := s.service.ValidateJWT(pair.AccessToken)
	s.NoError(err)
	s.Equal(user.ID, claims.UserID)
	s.Equal(user.CompanyID, claims.CompanyID)
	s.Equal(user.Email, claims.Email)
}

func (s *AuthServiceTestSuite) TestLogin_WrongPassword() {
	user := s.activeUser("correct horse battery")

	s.userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)

	pair, err := s.service.Login(user.Email, "wrong password")

	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
	s.Nil(pair)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	s.userRepo.EXPECT().GetByEmail("nobody@buildco.example").Return(nil, gorm.ErrRecordNotFound)

	pair, err := s.service.Login("nobody@buildco.example", "whatever")

	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
	s.Nil(pair)
}

func (s *AuthServiceTestSuite) TestLogin_InactiveUser() {
	user := s.activeUser("correct horse battery")
	user.Active = false

	s.userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)

	pair, err := s.service.Login(user.Email, "correct horse battery")

	s.ErrorIs(err, apperrors.ErrUserInactive)
	s.Nil(pair)
}

func (s *AuthServiceTestSuite) TestRefreshToken_RotatesToken() {
	user := s.activeUser("correct horse battery")

	s.userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)
	s.userRepo.EXPECT().SetLastLogin(user.ID, gomock.Any()).Return(nil)

	pair, err := s.service.Login(user.Email, "correct horse battery")
	s.Require().NoError(err)

	s.userRepo.EXPECT().GetByID(user.ID).Return(user, nil)

	rotated, err := s.service.RefreshToken(pair.RefreshToken)
	s.NoError(err)
	s.Require().NotNil(rotated)
	s.NotEqual(pair.RefreshToken, rotated.RefreshToken)

	// The old token is single-use.
	_, err = s.service.RefreshToken(pair.RefreshToken)
	s.ErrorIs(err, apperrors.ErrInvalidRefreshToken)
}

func (s *AuthServiceTestSuite) TestRefreshToken_Unknown() {
	pair, err := s.service.RefreshToken("never-issued")

	s.ErrorIs(err, apperrors.ErrInvalidRefreshToken)
	s.Nil(pair)
}

func (s *AuthServiceTestSuite) TestRefreshToken_Expired() {
	user := s.activeUser("correct horse battery")

	s.service.refreshTokens["stale"] = &RefreshTokenData{
		UserID:    user.ID,
		CompanyID: user.CompanyID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(-time.Minute),
		CreatedAt: time.Now().Add(-31 * 24 * time.Hour),
	}

	pair, err := s.service.RefreshToken("stale")

	s.ErrorIs(err, apperrors.ErrRefreshTokenExpired)
	s.Nil(pair)

	_, exists := s.service.refreshTokens["stale"]
	s.False(exists, "expired token should be purged")
}

func (s *AuthServiceTestSuite) TestRefreshToken_UserDeactivatedSinceIssue() {
	user := s.activeUser("correct horse battery")

	s.userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)
	s.userRepo.EXPECT().SetLastLogin(user.ID, gomock.Any()).Return(nil)

	pair, err := s.service.Login(user.Email, "correct horse battery")
	s.Require().NoError(err)

	deactivated := *user
	deactivated.Active = false
	s.userRepo.EXPECT().GetByID(user.ID).Return(&deactivated, nil)

	rotated, err := s.service.RefreshToken(pair.RefreshToken)

	s.ErrorIs(err, apperrors.ErrUserInactive)
	s.Nil(rotated)
}

func (s *AuthServiceTestSuite) TestLogout_RevokesRefreshToken() {
	user := s.activeUser("correct horse battery")

	s.userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)
	s.userRepo.EXPECT().SetLastLogin(user.ID, gomock.Any()).Return(nil)

	pair, err := s.service.Login(user.Email, "correct horse battery")
	s.Require().NoError(err)

	s.service.Logout(pair.RefreshToken)

	_, err = s.service.RefreshToken(pair.RefreshToken)
	s.ErrorIs(err, apperrors.ErrInvalidRefreshToken)
}

func (s *AuthServiceTestSuite) TestValidateJWT_RejectsWrongSecret() {
	other, err := NewAuthService(&AuthConfig{JWTSecret: "a-completely-different-secret"}, s.userRepo)
	s.Require().NoError(err)

	user := s.activeUser("correct horse battery")
	token, err := other.GenerateJWT(user)
	s.Require().NoError(err)

	claims, err := s.service.ValidateJWT(token)
	s.Error(err)
	s.Nil(claims)
}

func (s *AuthServiceTestSuite) TestValidateJWT_RejectsGarbage() {
	claims, err := s.service.ValidateJWT("not.a.jwt")
	s.Error(err)
	s.Nil(claims)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
