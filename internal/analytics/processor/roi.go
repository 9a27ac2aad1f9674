package processor

import (
	"context"

	"insights-server/internal/scope"
)

// CampaignROI is one row of the campaign ROI table.
type CampaignROI struct {
	Campaign      string  `json:"campaign"`
	Leads         int     `json:"leads"`
	Revenue       float64 `json:"revenue"`
	EstimatedCost float64 `json:"estimated_cost"`
	ROI           float64 `json:"roi"`
}

// GetCampaignROI computes return on investment per campaign against
// the modeled cost proxy. The proxy has a floor, so the denominator is
// never zero.
func (p *AnalyticsProcessor) GetCampaignROI(ctx context.Context, sc scope.Scope) ([]CampaignROI, error) {
	revenueRows, err := p.store.GetCampaignRevenue(ctx, sc)
	if err != nil {
		p.logger.Error(ctx, "failed to get campaign revenue", err)
		return nil, err
	}

	rows := make([]CampaignROI, 0, len(revenueRows))
	for _, row := range revenueRows {
		cost := p.costs.CampaignCostProxy(row.Revenue)
		rows = append(rows, CampaignROI{
			Campaign:      row.CampaignName,
			Leads:         row.Leads,
			Revenue:       round2(row.Revenue),
			EstimatedCost: round2(cost),
			ROI:           round1((row.Revenue - cost) / cost * 100),
		})
	}
	return rows, nil
}
