package processor

import (
	"context"
	"testing"

	"insights-server/internal/observability"
	"insights-server/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetCampaignROI(t *testing.T) {
	mockStore := new(MockAnalyticsStore)
	logger := observability.NewLogger()
	proc := New(mockStore, NewHeuristicCostModel(), logger)
	sc := testScope(t)

	mockStore.On("GetCampaignRevenue", mock.Anything, sc).Return([]store.CampaignRevenueRow{
		{CampaignID: uuid.New(), CampaignName: "Big", Leads: 40, Revenue: 50000},
		{CampaignID: uuid.New(), CampaignName: "Small", Leads: 3, Revenue: 500},
	}, nil)

	rows, err := proc.GetCampaignROI(context.Background(), sc)

	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	// cost proxy 10% of revenue: 5000, roi (50000-5000)/5000 = 900%
	assert.Equal(t, "Big", rows[0].Campaign)
	assert.Equal(t, 5000.0, rows[0].EstimatedCost)
	assert.Equal(t, 900.0, rows[0].ROI)

	// proxy floored at 1000, roi (500-1000)/1000 = -50%
	assert.Equal(t, "Small", rows[1].Campaign)
	assert.Equal(t, 1000.0, rows[1].EstimatedCost)
	assert.Equal(t, -50.0, rows[1].ROI)
}
