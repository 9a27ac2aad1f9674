package processor

import (
	"context"
	"errors"
	"testing"

	"insights-server/internal/observability"
	"insights-server/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetDashboard_PartialFailure(t *testing.T) {
	mockStore := new(MockAnalyticsStore)
	logger := observability.NewLogger()
	proc := New(mockStore, NewHeuristicCostModel(), logger)
	sc := testScope(t)

	// Overview succeeds.
	mockStore.On("CountLeads", mock.Anything, sc).Return(10, nil)
	mockStore.On("CountHotLeads", mock.Anything, sc).Return(2, nil)
	mockStore.On("CountMessages", mock.Anything, sc, store.DirectionOutbound).Return(20, nil)
	mockStore.On("CountMessages", mock.Anything, sc, store.DirectionInbound).Return(5, nil)

	// Everything else succeeds with empty data except the timeline,
	// which fails.
	mockStore.On("GetActiveCampaigns", mock.Anything, sc).Return([]store.Campaign{}, nil)
	mockStore.On("GetResponseIntervals", mock.Anything, mock.Anything).Return([]string{}, nil)
	mockStore.On("GetLeadMessageTimeline", mock.Anything, sc).
		Return([]store.LeadMessage(nil), errors.New("connection reset"))
	mockStore.On("GetConfidenceOutcomes", mock.Anything, sc).Return([]store.ConfidenceOutcome{}, nil)
	mockStore.On("GetCampaignRevenue", mock.Anything, sc).Return([]store.CampaignRevenueRow{}, nil)
	mockStore.On("GetMonthlyOutboundCounts", mock.Anything, mock.Anything).Return([]store.MonthCount{}, nil)
	mockStore.On("GetMonthlyHotLeadCounts", mock.Anything, mock.Anything).Return([]store.MonthCount{}, nil)

	dashboard := proc.GetDashboard(context.Background(), sc)

	assert.NotNil(t, dashboard.Overview)
	assert.Equal(t, 20.0, dashboard.Overview.ConversionRate)
	assert.NotNil(t, dashboard.ResponseTimes)
	assert.Nil(t, dashboard.FollowUpTiming)
	assert.Contains(t, dashboard.Errors, "follow_up_timing")
	assert.Equal(t, "connection reset", dashboard.Errors["follow_up_timing"])
	assert.NotContains(t, dashboard.Errors, "overview")
}

func TestGetDashboard_AllSectionsPresentOnSuccess(t *testing.T) {
	mockStore := new(MockAnalyticsStore)
	logger := observability.NewLogger()
	proc := New(mockStore, NewHeuristicCostModel(), logger)
	sc := testScope(t)

	mockStore.On("CountLeads", mock.Anything, sc).Return(0, nil)
	mockStore.On("CountHotLeads", mock.Anything, sc).Return(0, nil)
	mockStore.On("CountMessages", mock.Anything, sc, mock.Anything).Return(0, nil)
	mockStore.On("GetActiveCampaigns", mock.Anything, sc).Return([]store.Campaign{}, nil)
	mockStore.On("GetResponseIntervals", mock.Anything, mock.Anything).Return([]string{}, nil)
	mockStore.On("GetLeadMessageTimeline", mock.Anything, sc).Return([]store.LeadMessage{}, nil)
	mockStore.On("GetConfidenceOutcomes", mock.Anything, sc).Return([]store.ConfidenceOutcome{}, nil)
	mockStore.On("GetCampaignRevenue", mock.Anything, sc).Return([]store.CampaignRevenueRow{}, nil)
	mockStore.On("GetMonthlyOutboundCounts", mock.Anything, mock.Anything).Return([]store.MonthCount{}, nil)
	mockStore.On("GetMonthlyHotLeadCounts", mock.Anything, mock.Anything).Return([]store.MonthCount{}, nil)

	dashboard := proc.GetDashboard(context.Background(), sc)

	assert.Empty(t, dashboard.Errors)
	assert.NotNil(t, dashboard.Overview)
	assert.NotNil(t, dashboard.ResponseTimes)
	assert.NotNil(t, dashboard.FollowUpTiming)
	assert.NotNil(t, dashboard.Calibration)
	assert.NotNil(t, dashboard.CostPerHotLead)
}
