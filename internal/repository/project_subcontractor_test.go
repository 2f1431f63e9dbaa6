//go:build integration
// +build integration

package repository

import (
	"testing"

	"compliance-portal-backend/internal/database/models"
	"compliance-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectSubcontractorRepositoryTestSuite tests the assignment repository
type ProjectSubcontractorRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	repo          *ProjectSubcontractorRepository
	company       *models.Company
	project       *models.Project
	sub           *models.Subcontractor
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectSubcontractorRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.repo = NewProjectSubcontractorRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectSubcontractorRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds a company, project, and subcontractor
func (suite *ProjectSubcontractorRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.company = suite.factories.Company.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.company).Error)
	suite.project = suite.factories.Project.WithCompany(suite.company.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.project).Error)
	suite.sub = suite.factories.Subcontractor.WithCompany(suite.company.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.sub).Error)
}

// TearDownTest runs after each test
func (suite *ProjectSubcontractorRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ProjectSubcontractorRepositoryTestSuite) createAssignment(projectID, subID uuid.UUID, status models.ComplianceStatus) *models.ProjectSubcontractor {
	assignment := suite.factories.Assignment.WithPair(projectID, subID)
	assignment.Status = status
	suite.NoError(suite.baseTestSuite.DB.Create(assignment).Error)
	return assignment
}

// TestCreateAndGetByPair tests creating an assignment and looking it up by pair
func (suite *ProjectSubcontractorRepositoryTestSuite) TestCreateAndGetByPair() {
	assignment := suite.factories.Assignment.WithPair(suite.project.ID, suite.sub.ID)

	err := suite.repo.Create(assignment)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByPair(suite.project.ID, suite.sub.ID)
	suite.NoError(err)
	suite.Equal(assignment.ID, retrieved.ID)
	suite.Equal(models.ComplianceStatusPending, retrieved.Status)
}

// TestCheckPairExists tests the duplicate-assignment check
func (suite *ProjectSubcontractorRepositoryTestSuite) TestCheckPairExists() {
	exists, err := suite.repo.CheckPairExists(suite.project.ID, suite.sub.ID)
	suite.NoError(err)
	suite.False(exists)

	suite.createAssignment(suite.project.ID, suite.sub.ID, models.ComplianceStatusPending)

	exists, err = suite.repo.CheckPairExists(suite.project.ID, suite.sub.ID)
	suite.NoError(err)
	suite.True(exists)
}

// TestSetStatusWritesReason tests setting status with an exception reason
func (suite *ProjectSubcontractorRepositoryTestSuite) TestSetStatusWritesReason() {
	assignment := suite.createAssignment(suite.project.ID, suite.sub.ID, models.ComplianceStatusPending)

	err := suite.repo.SetStatus(assignment.ID, models.ComplianceStatusException, "owner-approved waiver")
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(assignment.ID)
	suite.NoError(err)
	suite.Equal(models.ComplianceStatusException, retrieved.Status)
	suite.Equal("owner-approved waiver", retrieved.ExceptionReason)

	// Leaving exception clears the reason.
	err = suite.repo.SetStatus(assignment.ID, models.ComplianceStatusCompliant, "")
	suite.NoError(err)

	retrieved, err = suite.repo.GetByID(assignment.ID)
	suite.NoError(err)
	suite.Equal(models.ComplianceStatusCompliant, retrieved.Status)
	suite.Empty(retrieved.ExceptionReason)
}

// TestSetStatusForSubcontractorSkipsExceptions tests that manual exception
// overrides survive a bulk status flip
func (suite *ProjectSubcontractorRepositoryTestSuite) TestSetStatusForSubcontractorSkipsExceptions() {
	secondProject := suite.factories.Project.WithCompany(suite.company.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(secondProject).Error)

	pending := suite.createAssignment(suite.project.ID, suite.sub.ID, models.ComplianceStatusPending)
	excepted := suite.createAssignment(secondProject.ID, suite.sub.ID, models.ComplianceStatusException)

	err := suite.repo.SetStatusForSubcontractor(suite.sub.ID, models.ComplianceStatusNonCompliant)
	suite.NoError(err)

	flipped, err := suite.repo.GetByID(pending.ID)
	suite.NoError(err)
	suite.Equal(models.ComplianceStatusNonCompliant, flipped.Status)

	untouched, err := suite.repo.GetByID(excepted.ID)
	suite.NoError(err)
	suite.Equal(models.ComplianceStatusException, untouched.Status)
}

// TestCountByStatus tests aggregating statuses across a company's projects
func (suite *ProjectSubcontractorRepositoryTestSuite) TestCountByStatus() {
	secondProject := suite.factories.Project.WithCompany(suite.company.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(secondProject).Error)
	secondSub := suite.factories.Subcontractor.WithCompany(suite.company.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(secondSub).Error)

	suite.createAssignment(suite.project.ID, suite.sub.ID, models.ComplianceStatusCompliant)
	suite.createAssignment(secondProject.ID, suite.sub.ID, models.ComplianceStatusPending)
	suite.createAssignment(suite.project.ID, secondSub.ID, models.ComplianceStatusPending)

	// Another tenant's assignment must not leak into the counts.
	otherCompany := suite.factories.Company.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(otherCompany).Error)
	otherProject := suite.factories.Project.WithCompany(otherCompany.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(otherProject).Error)
	otherSub := suite.factories.Subcontractor.WithCompany(otherCompany.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(otherSub).Error)
	suite.createAssignment(otherProject.ID, otherSub.ID, models.ComplianceStatusNonCompliant)

	counts, err := suite.repo.CountByStatus(suite.company.ID)

	suite.NoError(err)
	suite.Equal(1, counts.Compliant)
	suite.Equal(2, counts.Pending)
	suite.Equal(0, counts.NonCompliant)
	suite.Equal(0, counts.Exception)
	suite.Equal(3, counts.Total())
}

// TestGetByProjectIDPreloadsSubcontractor tests listing with preloads
func (suite *ProjectSubcontractorRepositoryTestSuite) TestGetByProjectIDPreloadsSubcontractor() {
	suite.createAssignment(suite.project.ID, suite.sub.ID, models.ComplianceStatusPending)

	assignments, total, err := suite.repo.GetByProjectID(suite.project.ID, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(assignments, 1)
	suite.Equal(suite.sub.BusinessName, assignments[0].Subcontractor.BusinessName)
}

// TestDelete tests removing an assignment
func (suite *ProjectSubcontractorRepositoryTestSuite) TestDelete() {
	assignment := suite.createAssignment(suite.project.ID, suite.sub.ID, models.ComplianceStatusPending)

	err := suite.repo.Delete(assignment.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(assignment.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

func TestProjectSubcontractorRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectSubcontractorRepositoryTestSuite))
}
