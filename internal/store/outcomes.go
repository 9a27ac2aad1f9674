package store

import (
	"context"
	"fmt"

	"insights-server/internal/scope"

	"github.com/google/uuid"
)

// CampaignRevenueRow joins a campaign's lead count to its closed
// deal revenue
type CampaignRevenueRow struct {
	CampaignID   uuid.UUID `db:"campaign_id" json:"campaign_id"`
	CampaignName string    `db:"campaign_name" json:"campaign_name"`
	Leads        int       `db:"leads" json:"leads"`
	Revenue      float64   `db:"revenue" json:"revenue"`
}

const sqlGetCampaignRevenue = `
SELECT
    c.id as campaign_id,
    c.name as campaign_name,
    COUNT(DISTINCT l.id)::int as leads,
    COALESCE(SUM(so.deal_amount), 0) as revenue
FROM campaigns c
LEFT JOIN leads l ON l.campaign_id = c.id
    AND l.archived_at IS NULL
    AND l.created_at >= $2
    AND l.created_at <= $3
LEFT JOIN sales_outcomes so ON so.campaign_id = c.id
    AND so.created_at >= $2
    AND so.created_at <= $3
WHERE ($1::uuid IS NULL OR c.tenant_id = $1)
    AND c.archived = false
GROUP BY c.id, c.name
ORDER BY revenue DESC
`

// GetCampaignRevenue retrieves per-campaign lead counts and summed
// deal amounts inside the scope's window
func (s *Store) GetCampaignRevenue(ctx context.Context, sc scope.Scope) ([]CampaignRevenueRow, error) {
	var results []CampaignRevenueRow
	err := s.db.SelectContext(ctx, &results, sqlGetCampaignRevenue, sc.TenantID(), sc.Start, sc.End)
	if err != nil {
		s.logger.Error(ctx, "failed to get campaign revenue", err)
		return nil, fmt.Errorf("failed to get campaign revenue: %w", err)
	}
	return results, nil
}

const sqlGetReportSubscriptions = `
SELECT id, tenant_id, email, name
FROM report_subscriptions
ORDER BY tenant_id ASC
`

// GetReportSubscriptions retrieves every digest recipient across tenants.
// The digest worker scopes each tenant's metrics individually.
func (s *Store) GetReportSubscriptions(ctx context.Context) ([]ReportSubscription, error) {
	var results []ReportSubscription
	err := s.db.SelectContext(ctx, &results, sqlGetReportSubscriptions)
	if err != nil {
		s.logger.Error(ctx, "failed to get report subscriptions", err)
		return nil, fmt.Errorf("failed to get report subscriptions: %w", err)
	}
	return results, nil
}
