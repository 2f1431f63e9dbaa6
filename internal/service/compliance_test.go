package service

import (
	"context"
	"testing"
	"time"

	apperrors "compliance-portal-backend/internal/errors"
	"compliance-portal-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTrendRejectsBadWindow(t *testing.T) {
	svc := NewComplianceService(nil, nil, nil, nil)
	for _, days := range []int{0, -1, 366} {
		_, err := svc.GetTrend(context.Background(), uuid.New(), days)
		assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)
	}
}

func TestComplianceRate(t *testing.T) {
	tests := []struct {
		name      string
		compliant int
		exception int
		total     int
		want      int
	}{
		{"zero total", 0, 0, 0, 0},
		{"all compliant", 10, 0, 10, 100},
		{"none compliant", 0, 0, 10, 0},
		{"exceptions count toward rate", 5, 2, 10, 70},
		{"rounds up", 2, 0, 3, 67},
		{"rounds down", 1, 0, 3, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, complianceRate(tt.compliant, tt.exception, tt.total))
		})
	}
}

func TestSynthesizeHistory(t *testing.T) {
	companyID := uuid.New()
	today := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	counts := &repository.StatusCounts{
		Compliant:    12,
		NonCompliant: 4,
		Pending:      3,
		Exception:    1,
	}

	snapshots := synthesizeHistory(companyID, counts, today, 30)
	require.Len(t, snapshots, 30)

	total := counts.Total()
	for i, snap := range snapshots {
		assert.Equal(t, companyID, snap.CompanyID)
		assert.Equal(t, total, snap.Total)

		// Counts never leave [0, total] and always sum to total.
		for _, v := range []int{snap.Compliant, snap.NonCompliant, snap.Pending, snap.Exception} {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, total)
		}
		assert.Equal(t, total, snap.Compliant+snap.NonCompliant+snap.Pending+snap.Exception)

		assert.Equal(t, complianceRate(snap.Compliant, snap.Exception, total), snap.ComplianceRate)
		assert.GreaterOrEqual(t, snap.ComplianceRate, 0)
		assert.LessOrEqual(t, snap.ComplianceRate, 100)

		// Oldest first, one day apart, ending the day before today.
		wantDate := today.AddDate(0, 0, i-30)
		assert.True(t, snap.Date.Equal(wantDate), "expected %s got %s", wantDate, snap.Date)
	}
}

func TestSynthesizeHistoryDeterministic(t *testing.T) {
	companyID := uuid.New()
	today := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	counts := &repository.StatusCounts{Compliant: 7, NonCompliant: 2, Pending: 1}

	first := synthesizeHistory(companyID, counts, today, 14)
	second := synthesizeHistory(companyID, counts, today, 14)
	assert.Equal(t, first, second)
}

func TestSynthesizeHistoryZeroTotal(t *testing.T) {
	companyID := uuid.New()
	today := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	snapshots := synthesizeHistory(companyID, &repository.StatusCounts{}, today, 7)
	require.Len(t, snapshots, 7)
	for _, snap := range snapshots {
		assert.Zero(t, snap.Total)
		assert.Zero(t, snap.Compliant)
		assert.Zero(t, snap.ComplianceRate)
	}
}

func TestSynthesizeHistoryExtremeRatios(t *testing.T) {
	companyID := uuid.New()
	today := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("fully compliant", func(t *testing.T) {
		counts := &repository.StatusCounts{Compliant: 5}
		for _, snap := range synthesizeHistory(companyID, counts, today, 30) {
			assert.GreaterOrEqual(t, snap.Compliant, 0)
			assert.LessOrEqual(t, snap.Compliant, 5)
			assert.Equal(t, 5, snap.Compliant+snap.NonCompliant+snap.Pending+snap.Exception)
		}
	})

	t.Run("fully non-compliant", func(t *testing.T) {
		counts := &repository.StatusCounts{NonCompliant: 5}
		for _, snap := range synthesizeHistory(companyID, counts, today, 30) {
			assert.GreaterOrEqual(t, snap.NonCompliant, 0)
			assert.LessOrEqual(t, snap.NonCompliant, 5)
			assert.Equal(t, 5, snap.Compliant+snap.NonCompliant+snap.Pending+snap.Exception)
		}
	})
}
