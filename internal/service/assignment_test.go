package service_test

import (
	"testing"

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

type AssignmentServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockProjectSubcontractorRepositoryInterface
	mockProjRepo *mocks.MockProjectRepositoryInterface
	mockSubRepo  *mocks.MockSubcontractorRepositoryInterface
	svc          *service.AssignmentService
}

func (suite *AssignmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockProjectSubcontractorRepositoryInterface(suite.ctrl)
	suite.mockProjRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockSubRepo = mocks.NewMockSubcontractorRepositoryInterface(suite.ctrl)
	suite.svc = service.NewAssignmentService(suite.mockRepo, suite.mockProjRepo, suite.mockSubRepo, validator.New())
}

func (suite *AssignmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssignmentServiceTestSuite) TestAssign_Success() {
	companyID := uuid.New()
	projectID := uuid.New()
	subID := uuid.New()

	project := &models.Project{CompanyID: companyID}
	sub := &models.Subcontractor{CompanyID: companyID}

	suite.mockProjRepo.EXPECT().GetByID(projectID).Return(project, nil)
	suite.mockSubRepo.EXPECT().GetByID(subID).Return(sub, nil)
	suite.mockRepo.EXPECT().CheckPairExists(projectID, subID).Return(false, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(ps *models.ProjectSubcontractor) error {
		assert.Equal(suite.T(), models.ComplianceStatusPending, ps.Status)
		return nil
	})

	resp, err := suite.svc.Assign(&service.AssignSubcontractorRequest{
		ProjectID:       projectID,
		SubcontractorID: subID,
		TradeOnSite:     "Electrical",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ComplianceStatusPending, resp.Status)
	assert.Equal(suite.T(), "Electrical", resp.TradeOnSite)
}

func (suite *AssignmentServiceTestSuite) TestAssign_CompanyMismatch() {
	projectID := uuid.New()
	subID := uuid.New()

	suite.mockProjRepo.EXPECT().GetByID(projectID).Return(&models.Project{CompanyID: uuid.New()}, nil)
	suite.mockSubRepo.EXPECT().GetByID(subID).Return(&models.Subcontractor{CompanyID: uuid.New()}, nil)

	resp, err := suite.svc.Assign(&service.AssignSubcontractorRequest{
		ProjectID:       projectID,
		SubcontractorID: subID,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCompanyMismatch)
}

func (suite *AssignmentServiceTestSuite) TestAssign_PairAlreadyExists() {
	companyID := uuid.New()
	projectID := uuid.New()
	subID := uuid.New()

	suite.mockProjRepo.EXPECT().GetByID(projectID).Return(&models.Project{CompanyID: companyID}, nil)
	suite.mockSubRepo.EXPECT().GetByID(subID).Return(&models.Subcontractor{CompanyID: companyID}, nil)
	suite.mockRepo.EXPECT().CheckPairExists(projectID, subID).Return(true, nil)

	resp, err := suite.svc.Assign(&service.AssignSubcontractorRequest{
		ProjectID:       projectID,
		SubcontractorID: subID,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAssignmentExists)
}

func (suite *AssignmentServiceTestSuite) TestSetStatus_ExceptionRequiresReason() {
	resp, err := suite.svc.SetStatus(uuid.New(), &service.SetAssignmentStatusRequest{
		Status: models.ComplianceStatusException,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrExceptionReasonRequired)
}

func (suite *AssignmentServiceTestSuite) TestSetStatus_ExceptionWithReason() {
	id := uuid.New()
	assignment := &models.ProjectSubcontractor{Status: models.ComplianceStatusPending}
	assignment.ID = id

	suite.mockRepo.EXPECT().GetByID(id).Return(assignment, nil)
	suite.mockRepo.EXPECT().SetStatus(id, models.ComplianceStatusException, "owner-approved waiver").Return(nil)

	resp, err := suite.svc.SetStatus(id, &service.SetAssignmentStatusRequest{
		Status:          models.ComplianceStatusException,
		ExceptionReason: "owner-approved waiver",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ComplianceStatusException, resp.Status)
	assert.Equal(suite.T(), "owner-approved waiver", resp.ExceptionReason)
}

func (suite *AssignmentServiceTestSuite) TestSetStatus_LeavingExceptionClearsReason() {
	id := uuid.New()
	assignment := &models.ProjectSubcontractor{
		Status:          models.ComplianceStatusException,
		ExceptionReason: "owner-approved waiver",
	}
	assignment.ID = id

	suite.mockRepo.EXPECT().GetByID(id).Return(assignment, nil)
	suite.mockRepo.EXPECT().SetStatus(id, models.ComplianceStatusCompliant, "").Return(nil)

	resp, err := suite.svc.SetStatus(id, &service.SetAssignmentStatusRequest{
		Status: models.ComplianceStatusCompliant,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ComplianceStatusCompliant, resp.Status)
	assert.Empty(suite.T(), resp.ExceptionReason)
}

func (suite *AssignmentServiceTestSuite) TestSetStatus_InvalidStatusValue() {
	resp, err := suite.svc.SetStatus(uuid.New(), &service.SetAssignmentStatusRequest{
		Status: models.ComplianceStatus("approved"),
	})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
}

func (suite *AssignmentServiceTestSuite) TestCompanyIDForAssignment() {
	id := uuid.New()
	projectID := uuid.New()
	companyID := uuid.New()

	assignment := &models.ProjectSubcontractor{ProjectID: projectID}
	assignment.ID = id

	suite.mockRepo.EXPECT().GetByID(id).Return(assignment, nil)
	suite.mockProjRepo.EXPECT().GetByID(projectID).Return(&models.Project{CompanyID: companyID}, nil)

	got, err := suite.svc.CompanyIDForAssignment(id)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), companyID, got)
}

func (suite *AssignmentServiceTestSuite) TestRemove_NotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.svc.Remove(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAssignmentNotFound)
}

func TestAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentServiceTestSuite))
}
