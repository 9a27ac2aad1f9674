package store

import (
	"context"
	"fmt"
	"time"

	"insights-server/internal/scope"

	"github.com/google/uuid"
)

const sqlCountLeads = `
SELECT COUNT(*)::int
FROM leads
WHERE ($1::uuid IS NULL OR tenant_id = $1)
    AND archived_at IS NULL
    AND created_at >= $2
    AND created_at <= $3
`

// CountLeads counts leads created inside the scope's window
func (s *Store) CountLeads(ctx context.Context, sc scope.Scope) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountLeads, sc.TenantID(), sc.Start, sc.End)
	if err != nil {
		s.logger.Error(ctx, "failed to count leads", err)
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return count, nil
}

const sqlCountHotLeads = `
SELECT COUNT(*)::int
FROM leads
WHERE ($1::uuid IS NULL OR tenant_id = $1)
    AND archived_at IS NULL
    AND marked_hot_at IS NOT NULL
    AND marked_hot_at >= $2
    AND marked_hot_at <= $3
`

// CountHotLeads counts leads marked hot inside the scope's window
func (s *Store) CountHotLeads(ctx context.Context, sc scope.Scope) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountHotLeads, sc.TenantID(), sc.Start, sc.End)
	if err != nil {
		s.logger.Error(ctx, "failed to count hot leads", err)
		return 0, fmt.Errorf("failed to count hot leads: %w", err)
	}
	return count, nil
}

const sqlCountCampaignLeads = `
SELECT COUNT(*)::int
FROM leads
WHERE ($1::uuid IS NULL OR tenant_id = $1)
    AND campaign_id = $2
    AND archived_at IS NULL
    AND created_at >= $3
    AND created_at <= $4
`

// CountCampaignLeads counts a campaign's leads created inside the window
func (s *Store) CountCampaignLeads(ctx context.Context, sc scope.Scope, campaignID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountCampaignLeads, sc.TenantID(), campaignID, sc.Start, sc.End)
	if err != nil {
		s.logger.Error(ctx, "failed to count campaign leads", err)
		return 0, fmt.Errorf("failed to count campaign leads: %w", err)
	}
	return count, nil
}

const sqlCountCampaignHotLeads = `
SELECT COUNT(*)::int
FROM leads
WHERE ($1::uuid IS NULL OR tenant_id = $1)
    AND campaign_id = $2
    AND archived_at IS NULL
    AND marked_hot_at IS NOT NULL
    AND marked_hot_at >= $3
    AND marked_hot_at <= $4
`

// CountCampaignHotLeads counts a campaign's leads marked hot inside the window
func (s *Store) CountCampaignHotLeads(ctx context.Context, sc scope.Scope, campaignID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountCampaignHotLeads, sc.TenantID(), campaignID, sc.Start, sc.End)
	if err != nil {
		s.logger.Error(ctx, "failed to count campaign hot leads", err)
		return 0, fmt.Errorf("failed to count campaign hot leads: %w", err)
	}
	return count, nil
}

// MonthCount is a per-calendar-month count used by the cost estimator
type MonthCount struct {
	Month time.Time `db:"month" json:"month"`
	Count int       `db:"count" json:"count"`
}

const sqlGetMonthlyHotLeadCounts = `
SELECT
    DATE_TRUNC('month', marked_hot_at) as month,
    COUNT(*)::int as count
FROM leads
WHERE ($1::uuid IS NULL OR tenant_id = $1)
    AND archived_at IS NULL
    AND marked_hot_at IS NOT NULL
    AND marked_hot_at >= $2
    AND marked_hot_at <= $3
GROUP BY 1
ORDER BY month ASC
`

// GetMonthlyHotLeadCounts retrieves hot-lead counts grouped by calendar month
func (s *Store) GetMonthlyHotLeadCounts(ctx context.Context, sc scope.Scope) ([]MonthCount, error) {
	var results []MonthCount
	err := s.db.SelectContext(ctx, &results, sqlGetMonthlyHotLeadCounts, sc.TenantID(), sc.Start, sc.End)
	if err != nil {
		s.logger.Error(ctx, "failed to get monthly hot lead counts", err)
		return nil, fmt.Errorf("failed to get monthly hot lead counts: %w", err)
	}
	return results, nil
}
