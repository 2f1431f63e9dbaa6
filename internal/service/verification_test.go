package service_test

import (
	"testing"
	"time"

	"compliance-portal-backend/internal/database/models"
	apperrors "compliance-portal-backend/internal/errors"
	"compliance-portal-backend/internal/mocks"
	"compliance-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type VerificationServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRepo           *mocks.MockVerificationRepositoryInterface
	mockDocumentRepo   *mocks.MockCocDocumentRepositoryInterface
	mockAssignmentRepo *mocks.MockProjectSubcontractorRepositoryInterface
	svc                *service.VerificationService
}

func (suite *VerificationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockVerificationRepositoryInterface(suite.ctrl)
	suite.mockDocumentRepo = mocks.NewMockCocDocumentRepositoryInterface(suite.ctrl)
	suite.mockAssignmentRepo = mocks.NewMockProjectSubcontractorRepositoryInterface(suite.ctrl)
	suite.svc = service.NewVerificationService(suite.mockRepo, suite.mockDocumentRepo, suite.mockAssignmentRepo, validator.New())
}

func (suite *VerificationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *VerificationServiceTestSuite) TestRecord_Passed() {
	documentID := uuid.New()
	subID := uuid.New()
	expiry := time.Now().AddDate(1, 0, 0)

	doc := &models.CocDocument{SubcontractorID: subID}
	doc.ID = documentID

	suite.mockDocumentRepo.EXPECT().GetByID(documentID).Return(doc, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockDocumentRepo.EXPECT().SetStatus(documentID, models.DocumentStatusVerified).Return(nil)
	suite.mockDocumentRepo.EXPECT().SetExpiry(documentID, &expiry).Return(nil)
	suite.mockAssignmentRepo.EXPECT().SetStatusForSubcontractor(subID, models.ComplianceStatusCompliant).Return(nil)

	verification, err := suite.svc.Record(&service.RecordVerificationRequest{
		DocumentID:     documentID,
		Insurer:        "QBE Insurance",
		PolicyNumber:   "POL-1234",
		CoverageType:   models.CoverageTypePublicLiability,
		CoverageAmount: 20_000_000,
		ExpiryDate:     &expiry,
		Outcome:        models.VerificationOutcomePassed,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.VerificationOutcomePassed, verification.Outcome)
	assert.Empty(suite.T(), verification.FailureReasons)
}

func (suite *VerificationServiceTestSuite) TestRecord_Failed() {
	documentID := uuid.New()
	subID := uuid.New()

	doc := &models.CocDocument{SubcontractorID: subID}
	doc.ID = documentID

	suite.mockDocumentRepo.EXPECT().GetByID(documentID).Return(doc, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockDocumentRepo.EXPECT().SetStatus(documentID, models.DocumentStatusRejected).Return(nil)
	suite.mockAssignmentRepo.EXPECT().SetStatusForSubcontractor(subID, models.ComplianceStatusNonCompliant).Return(nil)

	verification, err := suite.svc.Record(&service.RecordVerificationRequest{
		DocumentID:     documentID,
		CoverageType:   models.CoverageTypePublicLiability,
		CoverageAmount: 5_000_000,
		Outcome:        models.VerificationOutcomeFailed,
		FailureReasons: []string{"coverage below required minimum", "certificate expired"},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "coverage below required minimum; certificate expired", verification.FailureReasons)
}

func (suite *VerificationServiceTestSuite) TestRecord_FailedWithoutReasons() {
	verification, err := suite.svc.Record(&service.RecordVerificationRequest{
		DocumentID:   uuid.New(),
		CoverageType: models.CoverageTypePublicLiability,
		Outcome:      models.VerificationOutcomeFailed,
	})

	assert.Nil(suite.T(), verification)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *VerificationServiceTestSuite) TestRecord_DocumentNotFound() {
	documentID := uuid.New()

	suite.mockDocumentRepo.EXPECT().GetByID(documentID).Return(nil, gorm.ErrRecordNotFound)

	verification, err := suite.svc.Record(&service.RecordVerificationRequest{
		DocumentID:   documentID,
		CoverageType: models.CoverageTypePublicLiability,
		Outcome:      models.VerificationOutcomePassed,
	})

	assert.Nil(suite.T(), verification)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDocumentNotFound)
}

func (suite *VerificationServiceTestSuite) TestRecord_PassedWithoutExpirySkipsSetExpiry() {
	documentID := uuid.New()
	subID := uuid.New()

	doc := &models.CocDocument{SubcontractorID: subID}
	doc.ID = documentID

	suite.mockDocumentRepo.EXPECT().GetByID(documentID).Return(doc, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockDocumentRepo.EXPECT().SetStatus(documentID, models.DocumentStatusVerified).Return(nil)
	suite.mockAssignmentRepo.EXPECT().SetStatusForSubcontractor(subID, models.ComplianceStatusCompliant).Return(nil)

	_, err := suite.svc.Record(&service.RecordVerificationRequest{
		DocumentID:   documentID,
		CoverageType: models.CoverageTypeWorkersComp,
		Outcome:      models.VerificationOutcomePassed,
	})

	assert.NoError(suite.T(), err)
}

func TestVerificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VerificationServiceTestSuite))
}
