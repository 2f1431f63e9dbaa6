package service

import (
	"testing"

	"compliance-portal-backend/internal/database/models"
	apperrors "compliance-portal-backend/internal/errors"
	"compliance-portal-backend/internal/mocks"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	repo        *mocks.MockUserRepositoryInterface
	companyRepo *mocks.MockCompanyRepositoryInterface
	service     *UserService
	companyID   uuid.UUID
}

func (s *UserServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.companyRepo = mocks.NewMockCompanyRepositoryInterface(s.ctrl)
	s.service = NewUserService(s.repo, s.companyRepo, validator.New())
	s.companyID = uuid.New()
}

func (s *UserServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *UserServiceTestSuite) existingUser(password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.Require().NoError(err)
	return &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		CompanyID:    s.companyID,
		Email:        "site.manager@buildco.example",
		PasswordHash: string(hash),
		FirstName:    "Priya",
		LastName:     "Nair",
		Role:         models.UserRoleManager,
		Active:       true,
	}
}

func (s *UserServiceTestSuite) TestCreate_Success() {
	req := &CreateUserRequest{
		CompanyID: s.companyID,
		Email:     "new.viewer@buildco.example",
		Password:  "long enough password",
		FirstName: "Tom",
		LastName:  "Healy",
		Role:      models.UserRoleViewer,
	}

	s.companyRepo.EXPECT().GetByID(s.companyID).Return(&models.Company{}, nil)
	s.repo.EXPECT().GetByEmail(req.Email).Return(nil, gorm.ErrRecordNotFound)
	s.repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		s.Equal(req.Email, user.Email)
		s.True(user.Active)
		s.NotEqual(req.Password, user.PasswordHash)
		s.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)))
		return nil
	})

	resp, err := s.service.Create(req)

	s.NoError(err)
	s.Require().NotNil(resp)
	s.Equal(models.UserRoleViewer, resp.Role)
	s.True(resp.Active)
}

func (s *UserServiceTestSuite) TestCreate_DuplicateEmail() {
	req := &CreateUserRequest{
		CompanyID: s.companyID,
		Email:     "site.manager@buildco.example",
		Password:  "long enough password",
		FirstName: "Priya",
		LastName:  "Nair",
		Role:      models.UserRoleManager,
	}

	s.companyRepo.EXPECT().GetByID(s.companyID).Return(&models.Company{}, nil)
	s.repo.EXPECT().GetByEmail(req.Email).Return(s.existingUser("whatever password"), nil)

	resp, err := s.service.Create(req)

	s.ErrorIs(err, apperrors.ErrUserExists)
	s.Nil(resp)
}

func (s *UserServiceTestSuite) TestCreate_InvalidRole() {
	req := &CreateUserRequest{
		CompanyID: s.companyID,
		Email:     "new.user@buildco.example",
		Password:  "long enough password",
		FirstName: "Tom",
		LastName:  "Healy",
		Role:      models.UserRole("superadmin"),
	}

	resp, err := s.service.Create(req)

	s.Error(err)
	s.Contains(err.Error(), "validation failed")
	s.Nil(resp)
}

func (s *UserServiceTestSuite) TestChangePassword_Success() {
	user := s.existingUser("old password 123")

	s.repo.EXPECT().GetByID(user.ID).Return(user, nil)
	s.repo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.User) error {
		s.NoError(bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new password 456")))
		return nil
	})

	err := s.service.ChangePassword(user.ID, "old password 123", "new password 456")
	s.NoError(err)
}

func (s *UserServiceTestSuite) TestChangePassword_WrongCurrentPassword() {
	user := s.existingUser("old password 123")

	s.repo.EXPECT().GetByID(user.ID).Return(user, nil)

	err := s.service.ChangePassword(user.ID, "not the password", "new password 456")
	s.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (s *UserServiceTestSuite) TestChangePassword_NewPasswordTooShort() {
	err := s.service.ChangePassword(uuid.New(), "old password 123", "short")
	s.True(apperrors.IsValidation(err))
}

func (s *UserServiceTestSuite) TestUpdate_TogglesActiveAndRole() {
	user := s.existingUser("old password 123")
	inactive := false
	admin := models.UserRoleAdmin

	s.repo.EXPECT().GetByID(user.ID).Return(user, nil)
	s.repo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.User) error {
		s.False(updated.Active)
		s.Equal(models.UserRoleAdmin, updated.Role)
		return nil
	})

	resp, err := s.service.Update(user.ID, &UpdateUserRequest{
		FirstName: "Priya",
		LastName:  "Nair",
		Role:      &admin,
		Active:    &inactive,
	})

	s.NoError(err)
	s.Require().NotNil(resp)
	s.False(resp.Active)
}

func (s *UserServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	s.repo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := s.service.Delete(id)
	s.ErrorIs(err, apperrors.ErrUserNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
