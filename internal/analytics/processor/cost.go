package processor

import (
	"context"
	"time"

	"insights-server/internal/scope"
)

// MonthlyCostRow is one month of the cost-per-hot-lead trend.
type MonthlyCostRow struct {
	Month         string  `json:"month"`
	MessagesSent  int     `json:"messages_sent"`
	HotLeads      int     `json:"hot_leads"`
	EstimatedCost float64 `json:"estimated_cost"`
	CostPerHot    float64 `json:"cost_per_hot"`
}

// GetCostPerHotLead builds the trailing-six-calendar-month cost trend
// ending at the scope's reference time. Months with no hot leads report
// a cost-per-hot of 0 rather than dividing by zero.
func (p *AnalyticsProcessor) GetCostPerHotLead(ctx context.Context, sc scope.Scope) ([]MonthlyCostRow, error) {
	end := sc.End
	firstMonth := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location()).AddDate(0, -5, 0)
	monthScope := sc.Between(firstMonth, end)

	sentByMonth, err := p.store.GetMonthlyOutboundCounts(ctx, monthScope)
	if err != nil {
		p.logger.Error(ctx, "failed to get monthly outbound counts", err)
		return nil, err
	}
	hotByMonth, err := p.store.GetMonthlyHotLeadCounts(ctx, monthScope)
	if err != nil {
		p.logger.Error(ctx, "failed to get monthly hot lead counts", err)
		return nil, err
	}

	sent := make(map[string]int, len(sentByMonth))
	for _, row := range sentByMonth {
		sent[monthKey(row.Month)] = row.Count
	}
	hot := make(map[string]int, len(hotByMonth))
	for _, row := range hotByMonth {
		hot[monthKey(row.Month)] = row.Count
	}

	rows := make([]MonthlyCostRow, 0, 6)
	for i := 0; i < 6; i++ {
		month := firstMonth.AddDate(0, i, 0)
		key := monthKey(month)
		messagesSent := sent[key]
		hotLeads := hot[key]
		cost := round2(p.costs.MonthlyCost(messagesSent))

		perHot := 0.0
		if hotLeads > 0 {
			perHot = round2(cost / float64(hotLeads))
		}

		rows = append(rows, MonthlyCostRow{
			Month:         month.Format("Jan"),
			MessagesSent:  messagesSent,
			HotLeads:      hotLeads,
			EstimatedCost: cost,
			CostPerHot:    perHot,
		})
	}

	return rows, nil
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}
