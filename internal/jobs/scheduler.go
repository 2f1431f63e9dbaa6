package jobs

import (
	"context"
	"fmt"
	"time"

	"compliance-portal-backend/internal/database/models"
	"compliance-portal-backend/internal/logger"
	"compliance-portal-backend/internal/repository"
	"compliance-portal-backend/internal/service"

	"github.com/go-co-op/gocron/v2"
)

const (
	// reminderHorizon is how far ahead of expiry reminder notices go out.
	reminderHorizon = 30 * 24 * time.Hour

	companyPageSize = 100
)

// Scheduler runs the recurring tenant maintenance jobs: daily compliance
// snapshots, certificate expiry marking, and expiry reminder notices.
type Scheduler struct {
	scheduler gocron.Scheduler
	log       *logger.Logger

	companyRepo    repository.CompanyRepositoryInterface
	documentRepo   repository.CocDocumentRepositoryInterface
	assignmentRepo repository.ProjectSubcontractorRepositoryInterface

	compliance    *service.ComplianceService
	notifications *service.NotificationService
	communication *service.CommunicationService
}

// New creates the scheduler and registers all jobs
func New(companyRepo repository.CompanyRepositoryInterface, documentRepo repository.CocDocumentRepositoryInterface, assignmentRepo repository.ProjectSubcontractorRepositoryInterface, compliance *service.ComplianceService, notifications *service.NotificationService, communication *service.CommunicationService) (*Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	s := &Scheduler{
		scheduler:      scheduler,
		log:            logger.New(),
		companyRepo:    companyRepo,
		documentRepo:   documentRepo,
		assignmentRepo: assignmentRepo,
		compliance:     compliance,
		notifications:  notifications,
		communication:  communication,
	}

	if err := s.registerJobs(); err != nil {
		return nil, err
	}
	return s, nil
}

// Start begins running the registered jobs
func (s *Scheduler) Start() {
	s.log.Info("Starting background job scheduler")
	s.scheduler.Start()
}

// Stop shuts the scheduler down, waiting for running jobs
func (s *Scheduler) Stop() error {
	s.log.Info("Stopping background job scheduler")
	return s.scheduler.Shutdown()
}

func (s *Scheduler) registerJobs() error {
	jobs := []struct {
		name string
		def  gocron.JobDefinition
		task func(context.Context)
	}{
		{
			name: "daily-compliance-snapshots",
			def:  gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 30, 0))),
			task: s.runDailySnapshots,
		},
		{
			name: "document-expiry-scan",
			def:  gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(1, 0, 0))),
			task: s.runExpiryScan,
		},
		{
			name: "expiry-reminders",
			def:  gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(8, 0, 0))),
			task: s.runExpiryReminders,
		},
	}

	for _, job := range jobs {
		_, err := s.scheduler.NewJob(
			job.def,
			gocron.NewTask(job.task, context.Background()),
			gocron.WithName(job.name),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return fmt.Errorf("failed to register job %s: %w", job.name, err)
		}
	}
	return nil
}

// runDailySnapshots computes today's compliance snapshot for every company
func (s *Scheduler) runDailySnapshots(ctx context.Context) {
	s.log.Info("Running daily snapshot job")

	processed := 0
	for offset := 0; ; offset += companyPageSize {
		companies, _, err := s.companyRepo.GetAll(companyPageSize, offset)
		if err != nil {
			s.log.WithError(err).Error("Failed to list companies for snapshot job")
			return
		}
		if len(companies) == 0 {
			break
		}
		for _, company := range companies {
			if _, err := s.compliance.ComputeToday(ctx, company.ID); err != nil {
				s.log.WithError(err).WithField("company_id", company.ID).Error("Snapshot computation failed")
				continue
			}
			processed++
		}
		if len(companies) < companyPageSize {
			break
		}
	}
	s.log.WithField("companies", processed).Info("Daily snapshot job completed")
}

// runExpiryScan marks lapsed certificates as expired and flips the affected
// subcontractors' assignments to non-compliant.
func (s *Scheduler) runExpiryScan(ctx context.Context) {
	s.log.Info("Running document expiry scan")

	docs, err := s.documentRepo.GetExpiringBefore(time.Now().UTC())
	if err != nil {
		s.log.WithError(err).Error("Failed to list expired documents")
		return
	}

	for _, doc := range docs {
		log := s.log.WithField("document_id", doc.ID)

		if err := s.documentRepo.SetStatus(doc.ID, models.DocumentStatusExpired); err != nil {
			log.WithError(err).Error("Failed to mark document expired")
			continue
		}
		if err := s.assignmentRepo.SetStatusForSubcontractor(doc.SubcontractorID, models.ComplianceStatusNonCompliant); err != nil {
			log.WithError(err).Error("Failed to flip assignment statuses")
			continue
		}

		title := fmt.Sprintf("Certificate expired: %s", doc.Subcontractor.BusinessName)
		body := fmt.Sprintf("The certificate %q for %s expired and the subcontractor is now non-compliant.", doc.FileName, doc.Subcontractor.BusinessName)
		docID := doc.ID
		if err := s.notifications.NotifyCompany(doc.CompanyID, models.NotificationTypeDocumentExpired, title, body, "coc_document", &docID); err != nil {
			log.WithError(err).Warn("Failed to notify company of expiry")
		}

		s.compliance.Invalidate(ctx, doc.CompanyID)
	}

	s.log.WithField("documents", len(docs)).Info("Document expiry scan completed")
}

// runExpiryReminders emails subcontractors whose certificates lapse within
// the reminder horizon and raises in-app notifications.
func (s *Scheduler) runExpiryReminders(ctx context.Context) {
	s.log.Info("Running expiry reminder job")

	now := time.Now().UTC()
	docs, err := s.documentRepo.GetExpiringBefore(now.Add(reminderHorizon))
	if err != nil {
		s.log.WithError(err).Error("Failed to list expiring documents")
		return
	}

	sent := 0
	for _, doc := range docs {
		if doc.ExpiryDate == nil || doc.ExpiryDate.Before(now) {
			continue
		}
		log := s.log.WithField("document_id", doc.ID)

		daysLeft := int(doc.ExpiryDate.Sub(now).Hours() / 24)
		subject := fmt.Sprintf("Certificate of Currency expiring in %d days", daysLeft)
		body := fmt.Sprintf("Your certificate %q expires on %s. Please provide an updated Certificate of Currency.", doc.FileName, doc.ExpiryDate.Format("2 January 2006"))

		if _, err := s.communication.Send(ctx, &service.SendCommunicationRequest{
			SubcontractorID: doc.SubcontractorID,
			Type:            models.CommunicationTypeExpiryNotice,
			Subject:         subject,
			Body:            body,
		}); err != nil {
			log.WithError(err).Warn("Failed to send expiry reminder")
		} else {
			sent++
		}

		title := fmt.Sprintf("Certificate expiring: %s", doc.Subcontractor.BusinessName)
		docID := doc.ID
		if err := s.notifications.NotifyCompany(doc.CompanyID, models.NotificationTypeDocumentExpiring, title, body, "coc_document", &docID); err != nil {
			log.WithError(err).Warn("Failed to notify company of upcoming expiry")
		}
	}

	s.log.WithField("reminders", sent).Info("Expiry reminder job completed")
}
