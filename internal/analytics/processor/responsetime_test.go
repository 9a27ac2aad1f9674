package processor

import (
	"context"
	"testing"

	"insights-server/internal/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestParseIntervalMinutes(t *testing.T) {
	tests := []struct {
		name     string
		interval string
		want     int
	}{
		{"hours and minutes", "1:30:00", 90},
		{"minutes only", "0:05:00", 5},
		{"seconds dropped", "0:10:59", 10},
		{"multi hour", "12:00:00", 720},
		{"no seconds field", "2:15", 135},
		{"empty", "", 0},
		{"garbage", "soon", 0},
		{"non-numeric hours", "x:30:00", 0},
		{"non-numeric minutes", "1:y:00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseIntervalMinutes(tt.interval))
		})
	}
}

func TestSummarizeIntervals(t *testing.T) {
	summary := summarizeIntervals([]string{"1:30:00", "0:05:00", "0:55:30"})

	assert.Equal(t, "50m", summary.AvgResponse)
	assert.Equal(t, "5m", summary.FastestResponse)
	assert.Equal(t, "1h 30m", summary.SlowestResponse)
}

func TestSummarizeIntervals_EmptySampleUsesSentinel(t *testing.T) {
	summary := summarizeIntervals(nil)

	assert.Equal(t, NoDataSentinel, summary.AvgResponse)
	assert.Equal(t, NoDataSentinel, summary.FastestResponse)
	assert.Equal(t, NoDataSentinel, summary.SlowestResponse)
}

func TestSummarizeIntervals_BlankEntriesExcluded(t *testing.T) {
	// Blank recordings must not drag the average toward zero.
	summary := summarizeIntervals([]string{"", "1:00:00", "  "})

	assert.Equal(t, "1h 0m", summary.AvgResponse)
	assert.Equal(t, "1h 0m", summary.FastestResponse)
}

func TestGetResponseTimes_WindowsQueriedSeparately(t *testing.T) {
	mockStore := new(MockAnalyticsStore)
	logger := observability.NewLogger()
	proc := New(mockStore, NewHeuristicCostModel(), logger)
	sc := testScope(t)

	mockStore.On("GetResponseIntervals", mock.Anything, sc.Window(7)).Return([]string{"0:10:00"}, nil)
	mockStore.On("GetResponseIntervals", mock.Anything, sc.Window(30)).Return([]string{"0:10:00", "0:30:00"}, nil)
	mockStore.On("GetResponseIntervals", mock.Anything, sc.Window(90)).Return([]string{}, nil)

	report, err := proc.GetResponseTimes(context.Background(), sc)

	assert.NoError(t, err)
	assert.Equal(t, "10m", report.Last7Days.AvgResponse)
	assert.Equal(t, "20m", report.Last30Days.AvgResponse)
	assert.Equal(t, NoDataSentinel, report.Last90Days.AvgResponse)
	mockStore.AssertExpectations(t)
}
