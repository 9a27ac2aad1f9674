package processor

import (
	"context"
	"errors"
	"testing"

	"insights-server/internal/observability"
	"insights-server/internal/scope"
	"insights-server/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testScope(t *testing.T) scope.Scope {
	t.Helper()
	sc, err := scope.New(scope.RoleMember, uuid.New(), 30)
	assert.NoError(t, err)
	return sc
}

func TestGetFunnelOverview_ConversionRate(t *testing.T) {
	mockStore := new(MockAnalyticsStore)
	logger := observability.NewLogger()
	proc := New(mockStore, NewHeuristicCostModel(), logger)
	sc := testScope(t)

	mockStore.On("CountLeads", mock.Anything, sc).Return(100, nil)
	mockStore.On("CountHotLeads", mock.Anything, sc).Return(20, nil)
	mockStore.On("CountMessages", mock.Anything, sc, store.DirectionOutbound).Return(150, nil)
	mockStore.On("CountMessages", mock.Anything, sc, store.DirectionInbound).Return(30, nil)

	overview, err := proc.GetFunnelOverview(context.Background(), sc)

	assert.NoError(t, err)
	assert.Equal(t, 100, overview.TotalLeads)
	assert.Equal(t, 20, overview.HotLeads)
	assert.Equal(t, 150, overview.MessagesSent)
	assert.Equal(t, 30, overview.Responses)
	assert.Equal(t, 20.0, overview.ConversionRate)
	mockStore.AssertExpectations(t)
}

func TestGetFunnelOverview_NoLeads(t *testing.T) {
	mockStore := new(MockAnalyticsStore)
	logger := observability.NewLogger()
	proc := New(mockStore, NewHeuristicCostModel(), logger)
	sc := testScope(t)

	mockStore.On("CountLeads", mock.Anything, sc).Return(0, nil)
	mockStore.On("CountHotLeads", mock.Anything, sc).Return(0, nil)
	mockStore.On("CountMessages", mock.Anything, sc, store.DirectionOutbound).Return(0, nil)
	mockStore.On("CountMessages", mock.Anything, sc, store.DirectionInbound).Return(0, nil)

	overview, err := proc.GetFunnelOverview(context.Background(), sc)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, overview.ConversionRate)
}

func TestGetCampaignPerformance_ExcludesInactiveCampaigns(t *testing.T) {
	mockStore := new(MockAnalyticsStore)
	logger := observability.NewLogger()
	proc := New(mockStore, NewHeuristicCostModel(), logger)
	sc := testScope(t)

	active := store.Campaign{ID: uuid.New(), Name: "Spring Outreach"}
	idle := store.Campaign{ID: uuid.New(), Name: "Paused Pilot"}

	mockStore.On("GetActiveCampaigns", mock.Anything, sc).
		Return([]store.Campaign{active, idle}, nil)
	mockStore.On("CountCampaignMessages", mock.Anything, sc, active.ID, store.DirectionOutbound).Return(200, nil)
	mockStore.On("CountCampaignMessages", mock.Anything, sc, active.ID, store.DirectionInbound).Return(40, nil)
	mockStore.On("CountCampaignLeads", mock.Anything, sc, active.ID).Return(50, nil)
	mockStore.On("CountCampaignHotLeads", mock.Anything, sc, active.ID).Return(10, nil)
	mockStore.On("CountCampaignMessages", mock.Anything, sc, idle.ID, store.DirectionOutbound).Return(0, nil)

	rows, err := proc.GetCampaignPerformance(context.Background(), sc)

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Spring Outreach", rows[0].Campaign)
	assert.Equal(t, 200, rows[0].Sent)
	// estimated opens: floor(200 * 0.7)
	assert.Equal(t, 140, rows[0].Opened)
	assert.Equal(t, 40, rows[0].Replied)
	assert.Equal(t, 10, rows[0].Converted)
	assert.Equal(t, 20.0, rows[0].Rate)
	mockStore.AssertExpectations(t)
}

func TestGetCampaignPerformance_SkipsFailingCampaign(t *testing.T) {
	mockStore := new(MockAnalyticsStore)
	logger := observability.NewLogger()
	proc := New(mockStore, NewHeuristicCostModel(), logger)
	sc := testScope(t)

	healthy := store.Campaign{ID: uuid.New(), Name: "Healthy"}
	broken := store.Campaign{ID: uuid.New(), Name: "Broken"}

	mockStore.On("GetActiveCampaigns", mock.Anything, sc).
		Return([]store.Campaign{broken, healthy}, nil)
	mockStore.On("CountCampaignMessages", mock.Anything, sc, broken.ID, store.DirectionOutbound).
		Return(0, errors.New("query timeout"))
	mockStore.On("CountCampaignMessages", mock.Anything, sc, healthy.ID, store.DirectionOutbound).Return(10, nil)
	mockStore.On("CountCampaignMessages", mock.Anything, sc, healthy.ID, store.DirectionInbound).Return(2, nil)
	mockStore.On("CountCampaignLeads", mock.Anything, sc, healthy.ID).Return(4, nil)
	mockStore.On("CountCampaignHotLeads", mock.Anything, sc, healthy.ID).Return(1, nil)

	rows, err := proc.GetCampaignPerformance(context.Background(), sc)

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Healthy", rows[0].Campaign)
}
