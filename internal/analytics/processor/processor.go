package processor

import (
	"math"

	"insights-server/internal/observability"
)

// NoDataSentinel is what formatted metrics report when the underlying
// sample is empty. Consumers treat it as "insufficient data", not as
// an error or a zero.
const NoDataSentinel = "—"

type AnalyticsProcessor struct {
	store  AnalyticsStore
	costs  CostModel
	logger *observability.Logger
}

func New(store AnalyticsStore, costs CostModel, logger *observability.Logger) AnalyticsProcessor {
	return AnalyticsProcessor{
		store:  store,
		costs:  costs,
		logger: logger,
	}
}

// round1 rounds to one decimal place, the precision every rate in the
// API reports.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 rounds to cents.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
