package processor

import (
	"context"
	"sync"

	"insights-server/internal/scope"
)

// Dashboard bundles every analytics section in one response. Sections
// that failed are nil and named in Errors, so one bad aggregate never
// blanks the whole page.
type Dashboard struct {
	Overview            *FunnelOverview          `json:"overview,omitempty"`
	CampaignPerformance []CampaignPerformanceRow `json:"campaign_performance,omitempty"`
	ResponseTimes       *ResponseTimeReport      `json:"response_times,omitempty"`
	FollowUpTiming      []FollowUpBucket         `json:"follow_up_timing,omitempty"`
	Calibration         []CalibrationBin         `json:"confidence_calibration,omitempty"`
	ROI                 []CampaignROI            `json:"roi,omitempty"`
	CostPerHotLead      []MonthlyCostRow         `json:"cost_per_hot_lead,omitempty"`
	Errors              map[string]string        `json:"errors,omitempty"`
}

// GetDashboard fans out to every aggregator concurrently and collects
// whatever succeeded.
func (p *AnalyticsProcessor) GetDashboard(ctx context.Context, sc scope.Scope) Dashboard {
	var (
		dashboard Dashboard
		mu        sync.Mutex
		wg        sync.WaitGroup
	)
	fail := func(section string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if dashboard.Errors == nil {
			dashboard.Errors = make(map[string]string)
		}
		dashboard.Errors[section] = err.Error()
	}

	sections := []func(){
		func() {
			overview, err := p.GetFunnelOverview(ctx, sc)
			if err != nil {
				fail("overview", err)
				return
			}
			mu.Lock()
			dashboard.Overview = &overview
			mu.Unlock()
		},
		func() {
			rows, err := p.GetCampaignPerformance(ctx, sc)
			if err != nil {
				fail("campaign_performance", err)
				return
			}
			mu.Lock()
			dashboard.CampaignPerformance = rows
			mu.Unlock()
		},
		func() {
			report, err := p.GetResponseTimes(ctx, sc)
			if err != nil {
				fail("response_times", err)
				return
			}
			mu.Lock()
			dashboard.ResponseTimes = &report
			mu.Unlock()
		},
		func() {
			buckets, err := p.GetFollowUpTiming(ctx, sc)
			if err != nil {
				fail("follow_up_timing", err)
				return
			}
			mu.Lock()
			dashboard.FollowUpTiming = buckets
			mu.Unlock()
		},
		func() {
			bins, err := p.GetConfidenceCalibration(ctx, sc)
			if err != nil {
				fail("confidence_calibration", err)
				return
			}
			mu.Lock()
			dashboard.Calibration = bins
			mu.Unlock()
		},
		func() {
			rows, err := p.GetCampaignROI(ctx, sc)
			if err != nil {
				fail("roi", err)
				return
			}
			mu.Lock()
			dashboard.ROI = rows
			mu.Unlock()
		},
		func() {
			rows, err := p.GetCostPerHotLead(ctx, sc)
			if err != nil {
				fail("cost_per_hot_lead", err)
				return
			}
			mu.Lock()
			dashboard.CostPerHotLead = rows
			mu.Unlock()
		},
	}

	wg.Add(len(sections))
	for _, section := range sections {
		go func(run func()) {
			defer wg.Done()
			run()
		}(section)
	}
	wg.Wait()

	return dashboard
}
