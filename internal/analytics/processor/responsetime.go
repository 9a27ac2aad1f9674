package processor

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"insights-server/internal/scope"
)

// ResponseTimeSummary carries formatted interval strings for one
// rolling window. When the window holds no recorded intervals every
// field is the no-data sentinel.
type ResponseTimeSummary struct {
	AvgResponse     string `json:"avg_response"`
	FastestResponse string `json:"fastest_response"`
	SlowestResponse string `json:"slowest_response"`
}

// ResponseTimeReport covers the three rolling windows the dashboard
// shows side by side.
type ResponseTimeReport struct {
	Last7Days  ResponseTimeSummary `json:"last_7_days"`
	Last30Days ResponseTimeSummary `json:"last_30_days"`
	Last90Days ResponseTimeSummary `json:"last_90_days"`
}

// GetResponseTimes aggregates recorded response intervals over rolling
// 7/30/90-day windows ending at the scope's reference time
func (p *AnalyticsProcessor) GetResponseTimes(ctx context.Context, sc scope.Scope) (ResponseTimeReport, error) {
	var report ResponseTimeReport
	windows := []struct {
		days int
		dst  *ResponseTimeSummary
	}{
		{7, &report.Last7Days},
		{30, &report.Last30Days},
		{90, &report.Last90Days},
	}

	for _, w := range windows {
		intervals, err := p.store.GetResponseIntervals(ctx, sc.Window(w.days))
		if err != nil {
			p.logger.Error(ctx, "failed to get response intervals", err)
			return ResponseTimeReport{}, err
		}
		*w.dst = summarizeIntervals(intervals)
	}

	return report, nil
}

// parseIntervalMinutes converts an HH:MM:SS duration string to whole
// minutes. Seconds are discarded. Malformed input parses to 0.
func parseIntervalMinutes(interval string) int {
	parts := strings.Split(interval, ":")
	if len(parts) < 2 {
		return 0
	}
	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0
	}
	return hours*60 + minutes
}

// summarizeIntervals computes mean/min/max minutes over the sample.
// Empty strings are missing recordings and stay out of the sample
// rather than dragging the average toward zero.
func summarizeIntervals(intervals []string) ResponseTimeSummary {
	sample := make([]int, 0, len(intervals))
	for _, interval := range intervals {
		if strings.TrimSpace(interval) == "" {
			continue
		}
		sample = append(sample, parseIntervalMinutes(interval))
	}

	if len(sample) == 0 {
		return ResponseTimeSummary{
			AvgResponse:     NoDataSentinel,
			FastestResponse: NoDataSentinel,
			SlowestResponse: NoDataSentinel,
		}
	}

	sum := 0
	fastest := sample[0]
	slowest := sample[0]
	for _, minutes := range sample {
		sum += minutes
		if minutes < fastest {
			fastest = minutes
		}
		if minutes > slowest {
			slowest = minutes
		}
	}
	avg := int(math.Round(float64(sum) / float64(len(sample))))

	return ResponseTimeSummary{
		AvgResponse:     formatMinutes(avg),
		FastestResponse: formatMinutes(fastest),
		SlowestResponse: formatMinutes(slowest),
	}
}

// formatMinutes renders minutes the way the dashboard cards show them
func formatMinutes(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}
