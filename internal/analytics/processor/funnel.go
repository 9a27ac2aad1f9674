package processor

import (
	"context"
	"math"

	"insights-server/internal/observability"
	"insights-server/internal/scope"
	"insights-server/internal/store"
)

// FunnelOverview reports tenant-level counts at each stage of the
// fixed funnel: leads added, outbound messages, inbound responses,
// hot-lead conversions.
type FunnelOverview struct {
	TotalLeads     int     `json:"total_leads"`
	HotLeads       int     `json:"hot_leads"`
	MessagesSent   int     `json:"messages_sent"`
	Responses      int     `json:"responses"`
	ConversionRate float64 `json:"conversion_rate"`
}

// CampaignPerformanceRow is one row of the campaign funnel table
type CampaignPerformanceRow struct {
	Campaign  string  `json:"campaign"`
	Sent      int     `json:"sent"`
	Opened    int     `json:"opened"`
	Replied   int     `json:"replied"`
	Converted int     `json:"converted"`
	Rate      float64 `json:"rate"`
}

// estimatedOpenRate stands in for real open tracking.
// TODO: replace with measured opens once message open events are
// recorded; 0.7 is a placeholder ratio, not observed data.
const estimatedOpenRate = 0.7

// GetFunnelOverview computes the tenant-level funnel for the scope's
// window
func (p *AnalyticsProcessor) GetFunnelOverview(ctx context.Context, sc scope.Scope) (FunnelOverview, error) {
	totalLeads, err := p.store.CountLeads(ctx, sc)
	if err != nil {
		p.logger.Error(ctx, "failed to count leads", err)
		return FunnelOverview{}, err
	}

	hotLeads, err := p.store.CountHotLeads(ctx, sc)
	if err != nil {
		p.logger.Error(ctx, "failed to count hot leads", err)
		return FunnelOverview{}, err
	}

	messagesSent, err := p.store.CountMessages(ctx, sc, store.DirectionOutbound)
	if err != nil {
		p.logger.Error(ctx, "failed to count outbound messages", err)
		return FunnelOverview{}, err
	}

	responses, err := p.store.CountMessages(ctx, sc, store.DirectionInbound)
	if err != nil {
		p.logger.Error(ctx, "failed to count inbound messages", err)
		return FunnelOverview{}, err
	}

	overview := FunnelOverview{
		TotalLeads:   totalLeads,
		HotLeads:     hotLeads,
		MessagesSent: messagesSent,
		Responses:    responses,
	}
	if totalLeads > 0 {
		overview.ConversionRate = round1(float64(hotLeads) / float64(totalLeads) * 100)
	}

	return overview, nil
}

// GetCampaignPerformance computes the per-campaign funnel table.
// Campaigns with no outbound activity in the window are excluded. A
// campaign whose counts fail to load is logged and skipped so the rest
// of the table still renders.
func (p *AnalyticsProcessor) GetCampaignPerformance(ctx context.Context, sc scope.Scope) ([]CampaignPerformanceRow, error) {
	campaigns, err := p.store.GetActiveCampaigns(ctx, sc)
	if err != nil {
		p.logger.Error(ctx, "failed to get active campaigns", err)
		return nil, err
	}

	rows := make([]CampaignPerformanceRow, 0, len(campaigns))
	for _, campaign := range campaigns {
		cctx := observability.WithFields(ctx,
			observability.Field{Key: "campaign_id", Value: campaign.ID.String()},
		)

		sent, err := p.store.CountCampaignMessages(cctx, sc, campaign.ID, store.DirectionOutbound)
		if err != nil {
			p.logger.Error(cctx, "failed to count campaign outbound messages", err)
			continue
		}
		// Activity threshold: campaigns that sent nothing in the
		// window stay out of the table.
		if sent == 0 {
			continue
		}

		replied, err := p.store.CountCampaignMessages(cctx, sc, campaign.ID, store.DirectionInbound)
		if err != nil {
			p.logger.Error(cctx, "failed to count campaign inbound messages", err)
			continue
		}

		leads, err := p.store.CountCampaignLeads(cctx, sc, campaign.ID)
		if err != nil {
			p.logger.Error(cctx, "failed to count campaign leads", err)
			continue
		}

		converted, err := p.store.CountCampaignHotLeads(cctx, sc, campaign.ID)
		if err != nil {
			p.logger.Error(cctx, "failed to count campaign hot leads", err)
			continue
		}

		row := CampaignPerformanceRow{
			Campaign:  campaign.Name,
			Sent:      sent,
			Opened:    int(math.Floor(float64(sent) * estimatedOpenRate)),
			Replied:   replied,
			Converted: converted,
		}
		if leads > 0 {
			row.Rate = round1(float64(converted) / float64(leads) * 100)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
