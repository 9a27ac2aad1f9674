package processor

import (
	"context"

	"insights-server/internal/scope"
	"insights-server/internal/store"
)

// CalibrationBin compares the model's stated confidence against how
// often leads in that confidence band actually went hot.
type CalibrationBin struct {
	Bin       float64 `json:"bin"`
	Count     int     `json:"count"`
	ActualHot int     `json:"actual_hot"`
}

// calibrationBins are [lo, hi) half-open bands. Bounds are spelled out
// as literals so a score of exactly 0.7 lands in the 0.7 bin instead of
// falling to float arithmetic on 0.6+0.1. The top band is unbounded.
var calibrationBins = []struct {
	bin, lo, hi float64
}{
	{0.5, 0.5, 0.6},
	{0.6, 0.6, 0.7},
	{0.7, 0.7, 0.8},
	{0.8, 0.8, 0.9},
	{0.9, 0.9, 2.0},
}

// GetConfidenceCalibration buckets scored conversations by confidence
// band and counts how many converted to hot. Scores below 0.5 are
// low-signal and excluded.
func (p *AnalyticsProcessor) GetConfidenceCalibration(ctx context.Context, sc scope.Scope) ([]CalibrationBin, error) {
	outcomes, err := p.store.GetConfidenceOutcomes(ctx, sc)
	if err != nil {
		p.logger.Error(ctx, "failed to get confidence outcomes", err)
		return nil, err
	}
	return computeCalibration(outcomes), nil
}

func computeCalibration(outcomes []store.ConfidenceOutcome) []CalibrationBin {
	bins := make([]CalibrationBin, len(calibrationBins))
	for i, b := range calibrationBins {
		bins[i] = CalibrationBin{Bin: b.bin}
	}

	for _, outcome := range outcomes {
		for i, b := range calibrationBins {
			if outcome.Confidence >= b.lo && outcome.Confidence < b.hi {
				bins[i].Count++
				if outcome.WentHot {
					bins[i].ActualHot++
				}
				break
			}
		}
	}
	return bins
}
