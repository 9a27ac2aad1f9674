package processor

import (
	"context"
	"testing"
	"time"

	"insights-server/internal/observability"
	"insights-server/internal/scope"
	"insights-server/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHeuristicCostModel(t *testing.T) {
	model := NewHeuristicCostModel()

	assert.Equal(t, 50.0, model.MonthlyCost(0))
	assert.Equal(t, 150.0, model.MonthlyCost(1000))

	assert.Equal(t, 1000.0, model.CampaignCostProxy(0))
	assert.Equal(t, 1000.0, model.CampaignCostProxy(5000))
	assert.Equal(t, 2000.0, model.CampaignCostProxy(20000))
}

func TestGetCostPerHotLead_TrailingSixMonths(t *testing.T) {
	mockStore := new(MockAnalyticsStore)
	logger := observability.NewLogger()
	proc := New(mockStore, NewHeuristicCostModel(), logger)

	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	sc, err := scope.NewAt(scope.RoleMember, uuid.New(), 30, now)
	assert.NoError(t, err)

	march := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	june := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	monthScope := sc.Between(march, now)

	mockStore.On("GetMonthlyOutboundCounts", mock.Anything, monthScope).
		Return([]store.MonthCount{{Month: june, Count: 500}}, nil)
	mockStore.On("GetMonthlyHotLeadCounts", mock.Anything, monthScope).
		Return([]store.MonthCount{{Month: june, Count: 10}}, nil)

	rows, err := proc.GetCostPerHotLead(context.Background(), sc)

	assert.NoError(t, err)
	assert.Len(t, rows, 6)
	assert.Equal(t, "Mar", rows[0].Month)
	assert.Equal(t, "Aug", rows[5].Month)

	jun := rows[3]
	assert.Equal(t, "Jun", jun.Month)
	assert.Equal(t, 500, jun.MessagesSent)
	assert.Equal(t, 10, jun.HotLeads)
	// 500 * 0.10 + 50 base
	assert.Equal(t, 100.0, jun.EstimatedCost)
	assert.Equal(t, 10.0, jun.CostPerHot)
	mockStore.AssertExpectations(t)
}

func TestGetCostPerHotLead_NoHotLeadsReportsZero(t *testing.T) {
	mockStore := new(MockAnalyticsStore)
	logger := observability.NewLogger()
	proc := New(mockStore, NewHeuristicCostModel(), logger)

	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	sc, err := scope.NewAt(scope.RoleMember, uuid.New(), 30, now)
	assert.NoError(t, err)

	mockStore.On("GetMonthlyOutboundCounts", mock.Anything, mock.Anything).
		Return([]store.MonthCount{{Month: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), Count: 100}}, nil)
	mockStore.On("GetMonthlyHotLeadCounts", mock.Anything, mock.Anything).
		Return([]store.MonthCount{}, nil)

	rows, err := proc.GetCostPerHotLead(context.Background(), sc)

	assert.NoError(t, err)
	jul := rows[4]
	assert.Equal(t, "Jul", jul.Month)
	assert.Equal(t, 100, jul.MessagesSent)
	assert.Equal(t, 0, jul.HotLeads)
	assert.Equal(t, 0.0, jul.CostPerHot)
}
