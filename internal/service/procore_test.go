package service

import (
	"testing"
	"time"

	"compliance-portal-backend/internal/config"
	"compliance-portal-backend/internal/database/models"
	apperrors "compliance-portal-backend/internal/errors"
	"compliance-portal-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ProcoreServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	tokenRepo *mocks.MockIntegrationTokenRepositoryInterface
	subRepo   *mocks.MockSubcontractorRepositoryInterface
	projRepo  *mocks.MockProjectRepositoryInterface
	service   *ProcoreService
	companyID uuid.UUID
}

func (s *ProcoreServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tokenRepo = mocks.NewMockIntegrationTokenRepositoryInterface(s.ctrl)
	s.subRepo = mocks.NewMockSubcontractorRepositoryInterface(s.ctrl)
	s.projRepo = mocks.NewMockProjectRepositoryInterface(s.ctrl)
	s.service = NewProcoreService(&config.Config{
		ProcoreClientID:     "client-id",
		ProcoreClientSecret: "client-secret",
		ProcoreBaseURL:      "https://procore.example.com",
		BaseURL:             "https://portal.example.com",
	}, s.tokenRepo, s.subRepo, s.projRepo)
	s.companyID = uuid.New()
}

func (s *ProcoreServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ProcoreServiceTestSuite) TestStatus_Connected() {
	expires := time.Now().Add(time.Hour).Truncate(time.Second)
	s.tokenRepo.EXPECT().Get(s.companyID, models.IntegrationProviderProcore).Return(&models.IntegrationToken{
		CompanyID: s.companyID,
		Provider:  models.IntegrationProviderProcore,
		ExpiresAt: expires,
	}, nil)

	status, err := s.service.Status(s.companyID)
	s.NoError(err)
	s.True(status.Connected)
	s.Equal(expires, *status.ExpiresAt)
}

func (s *ProcoreServiceTestSuite) TestStatus_NotConnected() {
	s.tokenRepo.EXPECT().Get(s.companyID, models.IntegrationProviderProcore).Return(nil, gorm.ErrRecordNotFound)

	status, err := s.service.Status(s.companyID)
	s.NoError(err)
	s.False(status.Connected)
	s.Nil(status.ExpiresAt)
}

func (s *ProcoreServiceTestSuite) TestDisconnect_RemovesToken() {
	s.tokenRepo.EXPECT().Get(s.companyID, models.IntegrationProviderProcore).Return(&models.IntegrationToken{
		CompanyID: s.companyID,
		Provider:  models.IntegrationProviderProcore,
	}, nil)
	s.tokenRepo.EXPECT().Delete(s.companyID, models.IntegrationProviderProcore).Return(nil)

	s.NoError(s.service.Disconnect(s.companyID))
}

func (s *ProcoreServiceTestSuite) TestDisconnect_NotConnected() {
	s.tokenRepo.EXPECT().Get(s.companyID, models.IntegrationProviderProcore).Return(nil, gorm.ErrRecordNotFound)

	err := s.service.Disconnect(s.companyID)
	s.ErrorIs(err, apperrors.ErrIntegrationNotFound)
}

func TestProcoreServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProcoreServiceTestSuite))
}
