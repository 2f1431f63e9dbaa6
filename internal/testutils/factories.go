package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"compliance-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

var abnCounter atomic.Int64

var abnWeights = [11]int{10, 1, 3, 5, 7, 9, 11, 13, 15, 17, 19}

// NextValidABN returns a unique ABN that passes the modulus-89 check. The
// counter keeps the last six digits unique per call; digits two, four, and
// five (weights 1, 5, 7) are then set to bring the weighted sum to a
// multiple of 89.
func NextValidABN() string {
	tail := abnCounter.Add(1) % 1_000_000
	digits := []byte("50000" + fmt.Sprintf("%06d", tail))

	sum := 0
	for i, b := range digits {
		d := int(b - '0')
		if i == 0 {
			d--
		}
		sum += d * abnWeights[i]
	}
	needed := (89 - sum%89) % 89

	// Decompose needed as a + 5c + 7d with single-digit a, c, d.
	d := needed / 7
	if d > 9 {
		d = 9
	}
	r := needed - 7*d
	c := r / 5
	a := r - 5*c

	digits[1] = '0' + byte(a)
	digits[3] = '0' + byte(c)
	digits[4] = '0' + byte(d)
	return string(digits)
}

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a test Company with default values
func (f *CompanyFactory) Create() *models.Company {
	id := uuid.New()
	return &models.Company{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Test Builder " + id.String()[:8],
		ABN:          NextValidABN(),
		ContactEmail: "office@" + id.String()[:8] + ".example.com",
		Plan:         models.BillingPlanTrial,
		Settings:     nil,
	}
}

// WithName sets a custom name for the company
func (f *CompanyFactory) WithName(name string) *models.Company {
	company := f.Create()
	company.Name = name
	return company
}

// WithPlan sets a custom billing plan for the company
func (f *CompanyFactory) WithPlan(plan models.BillingPlan) *models.Company {
	company := f.Create()
	company.Plan = plan
	return company
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID: uuid.New(),
		// Unique per call so the email unique index never trips across tests.
		Email:        "user-" + id.String()[:8] + "@test.example.com",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		FirstName:    "Jane",
		LastName:     "Tester",
		Role:         models.UserRoleManager,
		Active:       true,
	}
}

// WithCompany sets the company ID for the user
func (f *UserFactory) WithCompany(companyID uuid.UUID) *models.User {
	user := f.Create()
	user.CompanyID = companyID
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// SubcontractorFactory provides methods to create test Subcontractor data
type SubcontractorFactory struct{}

// NewSubcontractorFactory creates a new SubcontractorFactory
func NewSubcontractorFactory() *SubcontractorFactory {
	return &SubcontractorFactory{}
}

// Create creates a test Subcontractor with default values
func (f *SubcontractorFactory) Create() *models.Subcontractor {
	id := uuid.New()
	return &models.Subcontractor{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID:    uuid.New(),
		BusinessName: "Test Trade Services " + id.String()[:8],
		ABN:          NextValidABN(),
		Trade:        "Electrical",
		ContactName:  "Sam Sparks",
		ContactEmail: "sam@" + id.String()[:8] + ".example.com",
		ContactPhone: "+61 2 5550 0123",
	}
}

// WithCompany sets the company ID for the subcontractor
func (f *SubcontractorFactory) WithCompany(companyID uuid.UUID) *models.Subcontractor {
	sub := f.Create()
	sub.CompanyID = companyID
	return sub
}

// WithTrade sets a custom trade for the subcontractor
func (f *SubcontractorFactory) WithTrade(trade string) *models.Subcontractor {
	sub := f.Create()
	sub.Trade = trade
	return sub
}

// WithABN sets a custom ABN for the subcontractor
func (f *SubcontractorFactory) WithABN(abn string) *models.Subcontractor {
	sub := f.Create()
	sub.ABN = abn
	return sub
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	id := uuid.New()
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID: uuid.New(),
		Name:      "Test Project " + id.String()[:8],
		Address:   "1 Test Street, Sydney NSW 2000",
		Status:    models.ProjectStatusActive,
	}
}

// WithCompany sets the company ID for the project
func (f *ProjectFactory) WithCompany(companyID uuid.UUID) *models.Project {
	project := f.Create()
	project.CompanyID = companyID
	return project
}

// WithStatus sets a custom status for the project
func (f *ProjectFactory) WithStatus(status models.ProjectStatus) *models.Project {
	project := f.Create()
	project.Status = status
	return project
}

// RequirementFactory provides methods to create test InsuranceRequirement data
type RequirementFactory struct{}

// NewRequirementFactory creates a new RequirementFactory
func NewRequirementFactory() *RequirementFactory {
	return &RequirementFactory{}
}

// Create creates a test InsuranceRequirement with default values
func (f *RequirementFactory) Create() *models.InsuranceRequirement {
	return &models.InsuranceRequirement{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID:     uuid.New(),
		CoverageType:  models.CoverageTypePublicLiability,
		MinimumAmount: 20_000_000,
		Mandatory:     true,
	}
}

// WithProject sets the project ID for the requirement
func (f *RequirementFactory) WithProject(projectID uuid.UUID) *models.InsuranceRequirement {
	req := f.Create()
	req.ProjectID = projectID
	return req
}

// WithCoverage sets the coverage type for the requirement
func (f *RequirementFactory) WithCoverage(coverage models.CoverageType) *models.InsuranceRequirement {
	req := f.Create()
	req.CoverageType = coverage
	return req
}

// AssignmentFactory provides methods to create test ProjectSubcontractor data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates a test ProjectSubcontractor with default values
func (f *AssignmentFactory) Create() *models.ProjectSubcontractor {
	return &models.ProjectSubcontractor{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID:       uuid.New(),
		SubcontractorID: uuid.New(),
		Status:          models.ComplianceStatusPending,
		TradeOnSite:     "Electrical",
	}
}

// WithPair sets the project and subcontractor IDs for the assignment
func (f *AssignmentFactory) WithPair(projectID, subcontractorID uuid.UUID) *models.ProjectSubcontractor {
	assignment := f.Create()
	assignment.ProjectID = projectID
	assignment.SubcontractorID = subcontractorID
	return assignment
}

// WithStatus sets the compliance status for the assignment
func (f *AssignmentFactory) WithStatus(status models.ComplianceStatus) *models.ProjectSubcontractor {
	assignment := f.Create()
	assignment.Status = status
	return assignment
}

// DocumentFactory provides methods to create test CocDocument data
type DocumentFactory struct{}

// NewDocumentFactory creates a new DocumentFactory
func NewDocumentFactory() *DocumentFactory {
	return &DocumentFactory{}
}

// Create creates a test CocDocument with default values
func (f *DocumentFactory) Create() *models.CocDocument {
	id := uuid.New()
	return &models.CocDocument{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID:       uuid.New(),
		SubcontractorID: uuid.New(),
		StorageKey:      "coc/" + id.String() + "/certificate.pdf",
		FileName:        "certificate.pdf",
		FileSize:        204800,
		ContentType:     "application/pdf",
		Status:          models.DocumentStatusUploaded,
	}
}

// WithSubcontractor sets the company and subcontractor IDs for the document
func (f *DocumentFactory) WithSubcontractor(companyID, subcontractorID uuid.UUID) *models.CocDocument {
	doc := f.Create()
	doc.CompanyID = companyID
	doc.SubcontractorID = subcontractorID
	return doc
}

// WithStatus sets the document status
func (f *DocumentFactory) WithStatus(status models.DocumentStatus) *models.CocDocument {
	doc := f.Create()
	doc.Status = status
	return doc
}

// FactorySet provides access to all factories
type FactorySet struct {
	Company       *CompanyFactory
	User          *UserFactory
	Subcontractor *SubcontractorFactory
	Project       *ProjectFactory
	Requirement   *RequirementFactory
	Assignment    *AssignmentFactory
	Document      *DocumentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Company:       NewCompanyFactory(),
		User:          NewUserFactory(),
		Subcontractor: NewSubcontractorFactory(),
		Project:       NewProjectFactory(),
		Requirement:   NewRequirementFactory(),
		Assignment:    NewAssignmentFactory(),
		Document:      NewDocumentFactory(),
	}
}

// CreateFullTenant creates a company with a user, a project, and a
// subcontractor assigned to that project.
func (fs *FactorySet) CreateFullTenant() (*models.Company, *models.User, *models.Project, *models.Subcontractor, *models.ProjectSubcontractor) {
	company := fs.Company.Create()
	user := fs.User.WithCompany(company.ID)
	project := fs.Project.WithCompany(company.ID)
	sub := fs.Subcontractor.WithCompany(company.ID)
	assignment := fs.Assignment.WithPair(project.ID, sub.ID)
	return company, user, project, sub, assignment
}
