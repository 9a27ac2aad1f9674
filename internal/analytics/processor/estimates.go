package processor

// Billing does not expose per-tenant spend yet, so all cost figures in
// this package are modeled estimates, not invoiced amounts. Keeping the
// formulas behind CostModel means swapping in real billing data later
// touches nothing but this file.

const (
	// costPerMessage approximates per-message delivery spend in USD.
	costPerMessage = 0.10
	// monthlyBaseCost is the flat platform fee applied to every month
	// that has any activity at all.
	monthlyBaseCost = 50.0
	// minCampaignCost floors the campaign cost proxy so ROI on small
	// campaigns does not explode against a near-zero denominator.
	minCampaignCost = 1000.0
	// campaignCostRate scales revenue into a spend proxy for campaigns
	// without recorded cost data.
	campaignCostRate = 0.1
)

// HeuristicCostModel estimates spend from message volume and revenue.
type HeuristicCostModel struct{}

func NewHeuristicCostModel() *HeuristicCostModel {
	return &HeuristicCostModel{}
}

// MonthlyCost estimates a month's spend from outbound message volume.
func (m *HeuristicCostModel) MonthlyCost(messagesSent int) float64 {
	return float64(messagesSent)*costPerMessage + monthlyBaseCost
}

// CampaignCostProxy derives a campaign spend proxy from its attributed
// revenue, floored at minCampaignCost.
func (m *HeuristicCostModel) CampaignCostProxy(revenue float64) float64 {
	proxy := revenue * campaignCostRate
	if proxy < minCampaignCost {
		return minCampaignCost
	}
	return proxy
}
