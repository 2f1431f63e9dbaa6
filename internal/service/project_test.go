package service

import (
	"encoding/json"
	"testing"

	"compliance-portal-backend/internal/database/models"
	apperrors "compliance-portal-backend/internal/errors"
	"compliance-portal-backend/internal/mocks"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ProjectServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	repo            *mocks.MockProjectRepositoryInterface
	companyRepo     *mocks.MockCompanyRepositoryInterface
	requirementRepo *mocks.MockInsuranceRequirementRepositoryInterface
	templateRepo    *mocks.MockRequirementTemplateRepositoryInterface
	service         *ProjectService
	companyID       uuid.UUID
}

func (s *ProjectServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mocks.NewMockProjectRepositoryInterface(s.ctrl)
	s.companyRepo = mocks.NewMockCompanyRepositoryInterface(s.ctrl)
	s.requirementRepo = mocks.NewMockInsuranceRequirementRepositoryInterface(s.ctrl)
	s.templateRepo = mocks.NewMockRequirementTemplateRepositoryInterface(s.ctrl)
	s.service = NewProjectService(s.repo, s.companyRepo, s.requirementRepo, s.templateRepo, validator.New())
	s.companyID = uuid.New()
}

func (s *ProjectServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ProjectServiceTestSuite) project() *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{ID: uuid.New()},
		CompanyID: s.companyID,
		Name:      "Westside Tower Stage 2",
		Status:    models.ProjectStatusActive,
	}
}

func (s *ProjectServiceTestSuite) template(lines []models.TemplateLine) *models.RequirementTemplate {
	raw, err := json.Marshal(lines)
	s.Require().NoError(err)
	return &models.RequirementTemplate{
		BaseModel: models.BaseModel{ID: uuid.New()},
		CompanyID: s.companyID,
		Name:      "Commercial standard",
		Lines:     raw,
	}
}

func (s *ProjectServiceTestSuite) TestApplyTemplate_CreatesMissingRequirements() {
	project := s.project()
	template := s.template([]models.TemplateLine{
		{CoverageType: models.CoverageTypePublicLiability, MinimumAmount: 20_000_000, Mandatory: true},
		{CoverageType: models.CoverageTypeWorkersComp, MinimumAmount: 10_000_000, Mandatory: true},
		{CoverageType: models.CoverageTypeContractWorks, MinimumAmount: 5_000_000, Mandatory: false},
	})

	s.repo.EXPECT().GetByID(project.ID).Return(project, nil)
	s.templateRepo.EXPECT().GetByID(template.ID).Return(template, nil)

	// Workers comp is already required on the project and must be skipped.
	s.requirementRepo.EXPECT().CheckCoverageExists(project.ID, models.CoverageTypePublicLiability, nil).Return(false, nil)
	s.requirementRepo.EXPECT().CheckCoverageExists(project.ID, models.CoverageTypeWorkersComp, nil).Return(true, nil)
	s.requirementRepo.EXPECT().CheckCoverageExists(project.ID, models.CoverageTypeContractWorks, nil).Return(false, nil)

	s.requirementRepo.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(reqs []models.InsuranceRequirement) error {
		s.Len(reqs, 2)
		s.Equal(models.CoverageTypePublicLiability, reqs[0].CoverageType)
		s.Equal(int64(20_000_000), reqs[0].MinimumAmount)
		s.True(reqs[0].Mandatory)
		s.Equal(models.CoverageTypeContractWorks, reqs[1].CoverageType)
		s.False(reqs[1].Mandatory)
		return nil
	})

	err := s.service.ApplyTemplate(project.ID, template.ID)
	s.NoError(err)
}

func (s *ProjectServiceTestSuite) TestApplyTemplate_AllCoveragesPresentSkipsBatch() {
	project := s.project()
	template := s.template([]models.TemplateLine{
		{CoverageType: models.CoverageTypePublicLiability, MinimumAmount: 20_000_000, Mandatory: true},
	})

	s.repo.EXPECT().GetByID(project.ID).Return(project, nil)
	s.templateRepo.EXPECT().GetByID(template.ID).Return(template, nil)
	s.requirementRepo.EXPECT().CheckCoverageExists(project.ID, models.CoverageTypePublicLiability, nil).Return(true, nil)

	// No CreateBatch expectation: an empty batch must not hit the repository.
	err := s.service.ApplyTemplate(project.ID, template.ID)
	s.NoError(err)
}

func (s *ProjectServiceTestSuite) TestApplyTemplate_TemplateFromAnotherCompany() {
	project := s.project()
	template := s.template([]models.TemplateLine{
		{CoverageType: models.CoverageTypePublicLiability, MinimumAmount: 20_000_000, Mandatory: true},
	})
	template.CompanyID = uuid.New()

	s.repo.EXPECT().GetByID(project.ID).Return(project, nil)
	s.templateRepo.EXPECT().GetByID(template.ID).Return(template, nil)

	err := s.service.ApplyTemplate(project.ID, template.ID)
	s.ErrorIs(err, apperrors.ErrCompanyMismatch)
}

func (s *ProjectServiceTestSuite) TestApplyTemplate_ProjectNotFound() {
	projectID := uuid.New()
	s.repo.EXPECT().GetByID(projectID).Return(nil, gorm.ErrRecordNotFound)

	err := s.service.ApplyTemplate(projectID, uuid.New())
	s.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func (s *ProjectServiceTestSuite) TestApplyTemplate_TemplateNotFound() {
	project := s.project()
	templateID := uuid.New()

	s.repo.EXPECT().GetByID(project.ID).Return(project, nil)
	s.templateRepo.EXPECT().GetByID(templateID).Return(nil, gorm.ErrRecordNotFound)

	err := s.service.ApplyTemplate(project.ID, templateID)
	s.ErrorIs(err, apperrors.ErrTemplateNotFound)
}

func (s *ProjectServiceTestSuite) TestCreate_CompanyNotFound() {
	req := &CreateProjectRequest{
		CompanyID: s.companyID,
		Name:      "Westside Tower Stage 2",
	}

	s.companyRepo.EXPECT().GetByID(s.companyID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := s.service.Create(req)
	s.ErrorIs(err, apperrors.ErrCompanyNotFound)
	s.Nil(resp)
}

func (s *ProjectServiceTestSuite) TestCreate_DuplicateName() {
	req := &CreateProjectRequest{
		CompanyID: s.companyID,
		Name:      "Westside Tower Stage 2",
	}

	s.companyRepo.EXPECT().GetByID(s.companyID).Return(&models.Company{BaseModel: models.BaseModel{ID: s.companyID}}, nil)
	s.repo.EXPECT().CheckNameExists(s.companyID, req.Name, nil).Return(true, nil)

	resp, err := s.service.Create(req)
	s.ErrorIs(err, apperrors.ErrProjectExists)
	s.Nil(resp)
}

func (s *ProjectServiceTestSuite) TestUpdate_RenameToExistingName() {
	project := s.project()

	s.repo.EXPECT().GetByID(project.ID).Return(project, nil)
	s.repo.EXPECT().CheckNameExists(s.companyID, "Gladesville Terraces", &project.ID).Return(true, nil)

	resp, err := s.service.Update(project.ID, &UpdateProjectRequest{Name: "Gladesville Terraces"})
	s.ErrorIs(err, apperrors.ErrProjectExists)
	s.Nil(resp)
}

func (s *ProjectServiceTestSuite) TestCreate_InvalidStatus() {
	req := &CreateProjectRequest{
		CompanyID: s.companyID,
		Name:      "Westside Tower Stage 2",
		Status:    models.ProjectStatus("paused"),
	}

	resp, err := s.service.Create(req)
	s.Error(err)
	s.Contains(err.Error(), "validation failed")
	s.Nil(resp)
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
