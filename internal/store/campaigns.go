package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"insights-server/internal/scope"

	"github.com/google/uuid"
)

const sqlGetActiveCampaigns = `
SELECT id, tenant_id, name, is_active, archived, start_date, end_date
FROM campaigns
WHERE ($1::uuid IS NULL OR tenant_id = $1)
    AND is_active = true
    AND archived = false
ORDER BY name ASC
`

// GetActiveCampaigns retrieves all active, non-archived campaigns
// visible to the scope
func (s *Store) GetActiveCampaigns(ctx context.Context, sc scope.Scope) ([]Campaign, error) {
	var results []Campaign
	err := s.db.SelectContext(ctx, &results, sqlGetActiveCampaigns, sc.TenantID())
	if err != nil {
		s.logger.Error(ctx, "failed to get active campaigns", err)
		return nil, fmt.Errorf("failed to get active campaigns: %w", err)
	}
	return results, nil
}

const sqlGetCampaignByID = `
SELECT id, tenant_id, name, is_active, archived, start_date, end_date
FROM campaigns
WHERE id = $1
    AND ($2::uuid IS NULL OR tenant_id = $2)
`

// GetCampaignByID retrieves a single campaign, respecting the tenant filter
func (s *Store) GetCampaignByID(ctx context.Context, sc scope.Scope, campaignID uuid.UUID) (Campaign, error) {
	var result Campaign
	err := s.db.GetContext(ctx, &result, sqlGetCampaignByID, campaignID, sc.TenantID())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign", err)
		return Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return result, nil
}
