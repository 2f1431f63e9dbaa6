package repository

import (
	"time"

	"compliance-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CompanyRepositoryInterface defines the interface for company repository operations
type CompanyRepositoryInterface interface {
	Create(company *models.Company) error
	GetByID(id uuid.UUID) (*models.Company, error)
	GetByName(name string) (*models.Company, error)
	GetByStripeCustomerID(customerID string) (*models.Company, error)
	GetAll(limit, offset int) ([]models.Company, int64, error)
	Update(company *models.Company) error
	UpdateBilling(id uuid.UUID, plan models.BillingPlan, customerID, subscriptionID string) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByCompanyID(companyID uuid.UUID, limit, offset int) ([]models.User, int64, error)
	GetActiveByCompanyID(companyID uuid.UUID) ([]models.User, error)
	Update(user *models.User) error
	SetLastLogin(id uuid.UUID, at time.Time) error
	Delete(id uuid.UUID) error
}

// SubcontractorRepositoryInterface defines the interface for subcontractor repository operations
type SubcontractorRepositoryInterface interface {
	Create(sub *models.Subcontractor) error
	CreateBatch(subs []models.Subcontractor) error
	GetByID(id uuid.UUID) (*models.Subcontractor, error)
	GetByABN(companyID uuid.UUID, abn string) (*models.Subcontractor, error)
	GetByProcoreVendorID(companyID uuid.UUID, vendorID string) (*models.Subcontractor, error)
	GetByCompanyID(companyID uuid.UUID, limit, offset int) ([]models.Subcontractor, int64, error)
	Search(companyID uuid.UUID, query string, limit, offset int) ([]models.Subcontractor, int64, error)
	CheckABNExists(companyID uuid.UUID, abn string, excludeID *uuid.UUID) (bool, error)
	GetWithDocuments(id uuid.UUID) (*models.Subcontractor, error)
	GetWithAssignments(id uuid.UUID) (*models.Subcontractor, error)
	Update(sub *models.Subcontractor) error
	Delete(id uuid.UUID) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetByName(companyID uuid.UUID, name string) (*models.Project, error)
	GetByProcoreProjectID(companyID uuid.UUID, procoreID string) (*models.Project, error)
	GetByCompanyID(companyID uuid.UUID, limit, offset int) ([]models.Project, int64, error)
	GetByStatus(companyID uuid.UUID, status models.ProjectStatus, limit, offset int) ([]models.Project, int64, error)
	Search(companyID uuid.UUID, query string, limit, offset int) ([]models.Project, int64, error)
	GetWithRequirements(id uuid.UUID) (*models.Project, error)
	GetWithAssignments(id uuid.UUID) (*models.Project, error)
	CheckNameExists(companyID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error)
	Update(project *models.Project) error
	SetStatus(projectID uuid.UUID, status models.ProjectStatus) error
	Delete(id uuid.UUID) error
}

// ProjectSubcontractorRepositoryInterface defines the interface for assignment repository operations
type ProjectSubcontractorRepositoryInterface interface {
	Create(ps *models.ProjectSubcontractor) error
	GetByID(id uuid.UUID) (*models.ProjectSubcontractor, error)
	GetByPair(projectID, subcontractorID uuid.UUID) (*models.ProjectSubcontractor, error)
	GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.ProjectSubcontractor, int64, error)
	GetBySubcontractorID(subcontractorID uuid.UUID, limit, offset int) ([]models.ProjectSubcontractor, int64, error)
	CheckPairExists(projectID, subcontractorID uuid.UUID) (bool, error)
	SetStatus(id uuid.UUID, status models.ComplianceStatus, exceptionReason string) error
	SetStatusForSubcontractor(subcontractorID uuid.UUID, status models.ComplianceStatus) error
	CountByStatus(companyID uuid.UUID) (*StatusCounts, error)
	Delete(id uuid.UUID) error
}

// CocDocumentRepositoryInterface defines the interface for document repository operations
type CocDocumentRepositoryInterface interface {
	Create(doc *models.CocDocument) error
	GetByID(id uuid.UUID) (*models.CocDocument, error)
	GetBySubcontractorID(subcontractorID uuid.UUID, limit, offset int) ([]models.CocDocument, int64, error)
	GetByProjectID(projectID uuid.UUID, limit, offset int) ([]models.CocDocument, int64, error)
	GetExpiringBefore(cutoff time.Time) ([]models.CocDocument, error)
	GetWithVerifications(id uuid.UUID) (*models.CocDocument, error)
	SetStatus(id uuid.UUID, status models.DocumentStatus) error
	SetExpiry(id uuid.UUID, expiry *time.Time) error
	Update(doc *models.CocDocument) error
	Delete(id uuid.UUID) error
}

// VerificationRepositoryInterface defines the interface for verification repository operations
type VerificationRepositoryInterface interface {
	Create(v *models.Verification) error
	GetByID(id uuid.UUID) (*models.Verification, error)
	GetByDocumentID(documentID uuid.UUID) ([]models.Verification, error)
	GetLatestByDocumentID(documentID uuid.UUID) (*models.Verification, error)
	Delete(id uuid.UUID) error
}

// InsuranceRequirementRepositoryInterface defines the interface for requirement repository operations
type InsuranceRequirementRepositoryInterface interface {
	Create(req *models.InsuranceRequirement) error
	CreateBatch(reqs []models.InsuranceRequirement) error
	GetByID(id uuid.UUID) (*models.InsuranceRequirement, error)
	GetByProjectID(projectID uuid.UUID) ([]models.InsuranceRequirement, error)
	CheckCoverageExists(projectID uuid.UUID, coverage models.CoverageType, excludeID *uuid.UUID) (bool, error)
	Update(req *models.InsuranceRequirement) error
	Delete(id uuid.UUID) error
}

// RequirementTemplateRepositoryInterface defines the interface for template repository operations
type RequirementTemplateRepositoryInterface interface {
	Create(t *models.RequirementTemplate) error
	GetByID(id uuid.UUID) (*models.RequirementTemplate, error)
	GetByName(companyID uuid.UUID, name string) (*models.RequirementTemplate, error)
	GetByCompanyID(companyID uuid.UUID) ([]models.RequirementTemplate, error)
	Update(t *models.RequirementTemplate) error
	Delete(id uuid.UUID) error
}

// CommunicationRepositoryInterface defines the interface for communication repository operations
type CommunicationRepositoryInterface interface {
	Create(c *models.Communication) error
	GetByID(id uuid.UUID) (*models.Communication, error)
	GetByCompanyID(companyID uuid.UUID, limit, offset int) ([]models.Communication, int64, error)
	GetBySubcontractorID(subcontractorID uuid.UUID, limit, offset int) ([]models.Communication, int64, error)
	Update(c *models.Communication) error
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(n *models.Notification) error
	CreateBatch(ns []models.Notification) error
	GetByID(id uuid.UUID) (*models.Notification, error)
	GetByUserID(userID uuid.UUID, limit, offset int) ([]models.Notification, int64, error)
	CountUnread(userID uuid.UUID) (int64, error)
	MarkRead(id uuid.UUID) error
	MarkAllRead(userID uuid.UUID) error
	Delete(id uuid.UUID) error
}

// AuditLogRepositoryInterface defines the interface for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(entry *models.AuditLog) error
	GetByCompanyID(companyID uuid.UUID, filter AuditLogFilter, limit, offset int) ([]models.AuditLog, int64, error)
}

// ComplianceSnapshotRepositoryInterface defines the interface for snapshot repository operations
type ComplianceSnapshotRepositoryInterface interface {
	Upsert(s *models.ComplianceSnapshot) error
	UpsertBatch(snapshots []models.ComplianceSnapshot) error
	GetByCompanyAndDate(companyID uuid.UUID, date time.Time) (*models.ComplianceSnapshot, error)
	GetRange(companyID uuid.UUID, from, to time.Time) ([]models.ComplianceSnapshot, error)
	Count(companyID uuid.UUID) (int64, error)
}

// IntegrationTokenRepositoryInterface defines the interface for integration token repository operations
type IntegrationTokenRepositoryInterface interface {
	Upsert(t *models.IntegrationToken) error
	Get(companyID uuid.UUID, provider models.IntegrationProvider) (*models.IntegrationToken, error)
	Delete(companyID uuid.UUID, provider models.IntegrationProvider) error
}
