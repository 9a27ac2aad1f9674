package processor

import (
	"testing"

	"insights-server/internal/store"

	"github.com/stretchr/testify/assert"
)

func TestComputeCalibration_ExactBoundaryLandsInOwnBin(t *testing.T) {
	bins := computeCalibration([]store.ConfidenceOutcome{
		{Confidence: 0.70, WentHot: true},
	})

	// 0.70 belongs to the 0.7 bin, not 0.6.
	assert.Equal(t, 0.7, bins[2].Bin)
	assert.Equal(t, 1, bins[2].Count)
	assert.Equal(t, 1, bins[2].ActualHot)
	assert.Equal(t, 0, bins[1].Count)
}

func TestComputeCalibration_LowScoresExcluded(t *testing.T) {
	bins := computeCalibration([]store.ConfidenceOutcome{
		{Confidence: 0.49, WentHot: true},
		{Confidence: 0.10, WentHot: false},
	})

	for _, b := range bins {
		assert.Equal(t, 0, b.Count)
	}
}

func TestComputeCalibration_TopBinUnbounded(t *testing.T) {
	bins := computeCalibration([]store.ConfidenceOutcome{
		{Confidence: 0.95, WentHot: true},
		{Confidence: 1.0, WentHot: false},
	})

	assert.Equal(t, 0.9, bins[4].Bin)
	assert.Equal(t, 2, bins[4].Count)
	assert.Equal(t, 1, bins[4].ActualHot)
}

func TestComputeCalibration_CountsPerBand(t *testing.T) {
	bins := computeCalibration([]store.ConfidenceOutcome{
		{Confidence: 0.55, WentHot: false},
		{Confidence: 0.58, WentHot: true},
		{Confidence: 0.62, WentHot: false},
		{Confidence: 0.85, WentHot: true},
	})

	assert.Equal(t, 2, bins[0].Count)
	assert.Equal(t, 1, bins[0].ActualHot)
	assert.Equal(t, 1, bins[1].Count)
	assert.Equal(t, 1, bins[3].Count)
	assert.Equal(t, 1, bins[3].ActualHot)
}
