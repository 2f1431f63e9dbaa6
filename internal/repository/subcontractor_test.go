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

// SubcontractorRepositoryTestSuite tests the SubcontractorRepository
type SubcontractorRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	repo          *SubcontractorRepository
	company       *models.Company
}

// SetupSuite runs before all tests in the suite
func (suite *SubcontractorRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.repo = NewSubcontractorRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *SubcontractorRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SubcontractorRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.company = suite.factories.Company.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.company).Error)
}

// TearDownTest runs after each test
func (suite *SubcontractorRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *SubcontractorRepositoryTestSuite) createSubcontractor(name, trade string) *models.Subcontractor {
	sub := suite.factories.Subcontractor.WithCompany(suite.company.ID)
	sub.BusinessName = name
	sub.Trade = trade
	suite.NoError(suite.baseTestSuite.DB.Create(sub).Error)
	return sub
}

// TestCreateAndGetByID tests creating and retrieving a subcontractor
func (suite *SubcontractorRepositoryTestSuite) TestCreateAndGetByID() {
	sub := suite.factories.Subcontractor.WithCompany(suite.company.ID)

	err := suite.repo.Create(sub)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(sub.ID)
	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(sub.BusinessName, retrieved.BusinessName)
	suite.Equal(sub.ABN, retrieved.ABN)
	suite.Equal(suite.company.ID, retrieved.CompanyID)
}

// TestGetByIDNotFound tests retrieving a non-existent subcontractor
func (suite *SubcontractorRepositoryTestSuite) TestGetByIDNotFound() {
	sub, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(sub)
}

// TestGetByCompanyIDOrdersByBusinessName tests listing with ordering
func (suite *SubcontractorRepositoryTestSuite) TestGetByCompanyIDOrdersByBusinessName() {
	suite.createSubcontractor("Zenith Plumbing", "Plumbing")
	suite.createSubcontractor("Apex Electrical", "Electrical")
	suite.createSubcontractor("Midway Concreting", "Concreting")

	subs, total, err := suite.repo.GetByCompanyID(suite.company.ID, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Require().Len(subs, 3)
	suite.Equal("Apex Electrical", subs[0].BusinessName)
	suite.Equal("Midway Concreting", subs[1].BusinessName)
	suite.Equal("Zenith Plumbing", subs[2].BusinessName)
}

// TestGetByCompanyIDScopesToTenant tests that another company's rows are invisible
func (suite *SubcontractorRepositoryTestSuite) TestGetByCompanyIDScopesToTenant() {
	suite.createSubcontractor("Apex Electrical", "Electrical")

	other := suite.factories.Company.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(other).Error)
	otherSub := suite.factories.Subcontractor.WithCompany(other.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(otherSub).Error)

	subs, total, err := suite.repo.GetByCompanyID(suite.company.ID, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(subs, 1)
	suite.Equal("Apex Electrical", subs[0].BusinessName)
}

// TestSearchMatchesNameTradeAndABN tests the search filter
func (suite *SubcontractorRepositoryTestSuite) TestSearchMatchesNameTradeAndABN() {
	apex := suite.createSubcontractor("Apex Electrical", "Electrical")
	suite.createSubcontractor("Zenith Plumbing", "Plumbing")

	byName, _, err := suite.repo.Search(suite.company.ID, "apex", 10, 0)
	suite.NoError(err)
	suite.Require().Len(byName, 1)
	suite.Equal(apex.ID, byName[0].ID)

	byTrade, _, err := suite.repo.Search(suite.company.ID, "plumb", 10, 0)
	suite.NoError(err)
	suite.Require().Len(byTrade, 1)
	suite.Equal("Zenith Plumbing", byTrade[0].BusinessName)

	byABN, _, err := suite.repo.Search(suite.company.ID, apex.ABN, 10, 0)
	suite.NoError(err)
	suite.Require().Len(byABN, 1)
	suite.Equal(apex.ID, byABN[0].ID)
}

// TestCheckABNExists tests the duplicate-ABN check with and without exclusion
func (suite *SubcontractorRepositoryTestSuite) TestCheckABNExists() {
	sub := suite.createSubcontractor("Apex Electrical", "Electrical")

	exists, err := suite.repo.CheckABNExists(suite.company.ID, sub.ABN, nil)
	suite.NoError(err)
	suite.True(exists)

	// The row itself is excluded when updating in place.
	exists, err = suite.repo.CheckABNExists(suite.company.ID, sub.ABN, &sub.ID)
	suite.NoError(err)
	suite.False(exists)

	// Same ABN under a different company does not collide.
	other := suite.factories.Company.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(other).Error)
	exists, err = suite.repo.CheckABNExists(other.ID, sub.ABN, nil)
	suite.NoError(err)
	suite.False(exists)
}

// TestCreateBatch tests bulk inserting subcontractors
func (suite *SubcontractorRepositoryTestSuite) TestCreateBatch() {
	batch := []models.Subcontractor{
		*suite.factories.Subcontractor.WithCompany(suite.company.ID),
		*suite.factories.Subcontractor.WithCompany(suite.company.ID),
		*suite.factories.Subcontractor.WithCompany(suite.company.ID),
	}

	err := suite.repo.CreateBatch(batch)
	suite.NoError(err)

	_, total, err := suite.repo.GetByCompanyID(suite.company.ID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
}

// TestDelete tests deleting a subcontractor
func (suite *SubcontractorRepositoryTestSuite) TestDelete() {
	sub := suite.createSubcontractor("Apex Electrical", "Electrical")

	err := suite.repo.Delete(sub.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(sub.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

func TestSubcontractorRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SubcontractorRepositoryTestSuite))
}
