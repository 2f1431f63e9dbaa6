package service_test

import (
	"errors"
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

type SubcontractorServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockSubcontractorRepositoryInterface
	mockCompanyRepo *mocks.MockCompanyRepositoryInterface
	svc             *service.SubcontractorService
}

func (suite *SubcontractorServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockSubcontractorRepositoryInterface(suite.ctrl)
	suite.mockCompanyRepo = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)
	suite.svc = service.NewSubcontractorService(suite.mockRepo, suite.mockCompanyRepo, validator.New())
}

func (suite *SubcontractorServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SubcontractorServiceTestSuite) TestCreate_Success() {
	companyID := uuid.New()
	req := &service.CreateSubcontractorRequest{
		CompanyID:    companyID,
		BusinessName: "Apex Scaffolding Pty Ltd",
		ABN:          "51 824 753 556",
		Trade:        "Scaffolding",
	}

	suite.mockCompanyRepo.EXPECT().GetByID(companyID).Return(&models.Company{}, nil)
	suite.mockRepo.EXPECT().CheckABNExists(companyID, "51824753556", nil).Return(false, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(sub *models.Subcontractor) error {
		assert.Equal(suite.T(), "51824753556", sub.ABN)
		assert.Equal(suite.T(), "Apex Scaffolding Pty Ltd", sub.BusinessName)
		return nil
	})

	resp, err := suite.svc.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "51824753556", resp.ABN)
	assert.Equal(suite.T(), companyID, resp.CompanyID)
}

func (suite *SubcontractorServiceTestSuite) TestCreate_InvalidABN() {
	req := &service.CreateSubcontractorRequest{
		CompanyID:    uuid.New(),
		BusinessName: "Apex Scaffolding Pty Ltd",
		ABN:          "51824753557",
	}

	resp, err := suite.svc.Create(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidABN)
}

func (suite *SubcontractorServiceTestSuite) TestCreate_DuplicateABN() {
	companyID := uuid.New()
	req := &service.CreateSubcontractorRequest{
		CompanyID:    companyID,
		BusinessName: "Apex Scaffolding Pty Ltd",
		ABN:          "51824753556",
	}

	suite.mockCompanyRepo.EXPECT().GetByID(companyID).Return(&models.Company{}, nil)
	suite.mockRepo.EXPECT().CheckABNExists(companyID, "51824753556", nil).Return(true, nil)

	resp, err := suite.svc.Create(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSubcontractorExists)
}

func (suite *SubcontractorServiceTestSuite) TestCreate_CompanyNotFound() {
	companyID := uuid.New()
	req := &service.CreateSubcontractorRequest{
		CompanyID:    companyID,
		BusinessName: "Apex Scaffolding Pty Ltd",
		ABN:          "51824753556",
	}

	suite.mockCompanyRepo.EXPECT().GetByID(companyID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.Create(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCompanyNotFound)
}

func (suite *SubcontractorServiceTestSuite) TestImport_MixedRows() {
	companyID := uuid.New()
	req := &service.ImportSubcontractorsRequest{
		CompanyID: companyID,
		Rows: []service.ImportSubcontractorRow{
			{BusinessName: "Apex Scaffolding", ABN: "51 824 753 556"},
			{BusinessName: "", ABN: "53004085616"},
			{BusinessName: "Bad Checksum Pty Ltd", ABN: "51824753557"},
			{BusinessName: "Apex Again", ABN: "51824753556"},
			{BusinessName: "Registered Already", ABN: "53004085616"},
		},
	}

	suite.mockCompanyRepo.EXPECT().GetByID(companyID).Return(&models.Company{}, nil)
	suite.mockRepo.EXPECT().CheckABNExists(companyID, "51824753556", nil).Return(false, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockRepo.EXPECT().CheckABNExists(companyID, "53004085616", nil).Return(true, nil)

	resp, err := suite.svc.Import(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Imported)
	assert.Equal(suite.T(), 4, resp.Skipped)
	assert.Len(suite.T(), resp.Results, 5)

	assert.True(suite.T(), resp.Results[0].Imported)
	assert.Empty(suite.T(), resp.Results[0].Error)
	assert.Equal(suite.T(), "business name is required", resp.Results[1].Error)
	assert.Equal(suite.T(), "invalid ABN checksum", resp.Results[2].Error)
	assert.Equal(suite.T(), "duplicate ABN in import", resp.Results[3].Error)
	assert.Equal(suite.T(), "ABN already registered", resp.Results[4].Error)
}

func (suite *SubcontractorServiceTestSuite) TestImport_EmptyRowsRejected() {
	req := &service.ImportSubcontractorsRequest{
		CompanyID: uuid.New(),
		Rows:      []service.ImportSubcontractorRow{},
	}

	resp, err := suite.svc.Import(req)

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
}

func (suite *SubcontractorServiceTestSuite) TestUpdate_ABNChangedToTakenValue() {
	id := uuid.New()
	companyID := uuid.New()
	existing := &models.Subcontractor{
		CompanyID: companyID,
		ABN:       "51824753556",
	}
	existing.ID = id

	req := &service.UpdateSubcontractorRequest{
		BusinessName: "Apex Scaffolding Pty Ltd",
		ABN:          "53004085616",
	}

	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil)
	suite.mockRepo.EXPECT().CheckABNExists(companyID, "53004085616", &id).Return(true, nil)

	resp, err := suite.svc.Update(id, req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSubcontractorExists)
}

func (suite *SubcontractorServiceTestSuite) TestSearch_EmptyQueryFallsBackToList() {
	companyID := uuid.New()

	suite.mockRepo.EXPECT().GetByCompanyID(companyID, 20, 0).Return([]models.Subcontractor{}, int64(0), nil)

	resp, err := suite.svc.Search(companyID, "", 1, 20)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), resp.Total)
}

func (suite *SubcontractorServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.svc.Delete(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrSubcontractorNotFound)
}

func (suite *SubcontractorServiceTestSuite) TestDelete_RepoError() {
	id := uuid.New()
	sub := &models.Subcontractor{}
	sub.ID = id

	suite.mockRepo.EXPECT().GetByID(id).Return(sub, nil)
	suite.mockRepo.EXPECT().Delete(id).Return(errors.New("connection reset"))

	err := suite.svc.Delete(id)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to delete subcontractor")
}

func TestSubcontractorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SubcontractorServiceTestSuite))
}
