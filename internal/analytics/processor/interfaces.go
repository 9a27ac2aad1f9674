package processor

import (
	"context"

	"insights-server/internal/scope"
	"insights-server/internal/store"

	"github.com/google/uuid"
)

// AnalyticsStore defines the database operations required by AnalyticsProcessor
type AnalyticsStore interface {
	GetActiveCampaigns(ctx context.Context, sc scope.Scope) ([]store.Campaign, error)
	CountLeads(ctx context.Context, sc scope.Scope) (int, error)
	CountHotLeads(ctx context.Context, sc scope.Scope) (int, error)
	CountCampaignLeads(ctx context.Context, sc scope.Scope, campaignID uuid.UUID) (int, error)
	CountCampaignHotLeads(ctx context.Context, sc scope.Scope, campaignID uuid.UUID) (int, error)
	CountMessages(ctx context.Context, sc scope.Scope, direction string) (int, error)
	CountCampaignMessages(ctx context.Context, sc scope.Scope, campaignID uuid.UUID, direction string) (int, error)
	GetLeadMessageTimeline(ctx context.Context, sc scope.Scope) ([]store.LeadMessage, error)
	GetResponseIntervals(ctx context.Context, sc scope.Scope) ([]string, error)
	GetConfidenceOutcomes(ctx context.Context, sc scope.Scope) ([]store.ConfidenceOutcome, error)
	GetMonthlyOutboundCounts(ctx context.Context, sc scope.Scope) ([]store.MonthCount, error)
	GetMonthlyHotLeadCounts(ctx context.Context, sc scope.Scope) ([]store.MonthCount, error)
	GetCampaignRevenue(ctx context.Context, sc scope.Scope) ([]store.CampaignRevenueRow, error)
}

// CostModel supplies cost figures for metrics that have no backing
// cost ledger. Isolated behind an interface so a real cost-tracking
// source can replace the heuristics without touching aggregator call
// sites.
type CostModel interface {
	// MonthlyCost estimates the spend for one calendar month given
	// the number of outbound messages sent in it.
	MonthlyCost(messagesSent int) float64
	// CampaignCostProxy estimates a campaign's cost from its revenue.
	CampaignCostProxy(revenue float64) float64
}
