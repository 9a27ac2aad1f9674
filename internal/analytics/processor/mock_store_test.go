package processor

import (
	"context"

	"insights-server/internal/scope"
	"insights-server/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAnalyticsStore is a mock implementation of AnalyticsStore
type MockAnalyticsStore struct {
	mock.Mock
}

func (m *MockAnalyticsStore) GetActiveCampaigns(ctx context.Context, sc scope.Scope) ([]store.Campaign, error) {
	args := m.Called(ctx, sc)
	return args.Get(0).([]store.Campaign), args.Error(1)
}

func (m *MockAnalyticsStore) CountLeads(ctx context.Context, sc scope.Scope) (int, error) {
	args := m.Called(ctx, sc)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalyticsStore) CountHotLeads(ctx context.Context, sc scope.Scope) (int, error) {
	args := m.Called(ctx, sc)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalyticsStore) CountCampaignLeads(ctx context.Context, sc scope.Scope, campaignID uuid.UUID) (int, error) {
	args := m.Called(ctx, sc, campaignID)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalyticsStore) CountCampaignHotLeads(ctx context.Context, sc scope.Scope, campaignID uuid.UUID) (int, error) {
	args := m.Called(ctx, sc, campaignID)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalyticsStore) CountMessages(ctx context.Context, sc scope.Scope, direction string) (int, error) {
	args := m.Called(ctx, sc, direction)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalyticsStore) CountCampaignMessages(ctx context.Context, sc scope.Scope, campaignID uuid.UUID, direction string) (int, error) {
	args := m.Called(ctx, sc, campaignID, direction)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalyticsStore) GetLeadMessageTimeline(ctx context.Context, sc scope.Scope) ([]store.LeadMessage, error) {
	args := m.Called(ctx, sc)
	return args.Get(0).([]store.LeadMessage), args.Error(1)
}

func (m *MockAnalyticsStore) GetResponseIntervals(ctx context.Context, sc scope.Scope) ([]string, error) {
	args := m.Called(ctx, sc)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAnalyticsStore) GetConfidenceOutcomes(ctx context.Context, sc scope.Scope) ([]store.ConfidenceOutcome, error) {
	args := m.Called(ctx, sc)
	return args.Get(0).([]store.ConfidenceOutcome), args.Error(1)
}

func (m *MockAnalyticsStore) GetMonthlyOutboundCounts(ctx context.Context, sc scope.Scope) ([]store.MonthCount, error) {
	args := m.Called(ctx, sc)
	return args.Get(0).([]store.MonthCount), args.Error(1)
}

func (m *MockAnalyticsStore) GetMonthlyHotLeadCounts(ctx context.Context, sc scope.Scope) ([]store.MonthCount, error) {
	args := m.Called(ctx, sc)
	return args.Get(0).([]store.MonthCount), args.Error(1)
}

func (m *MockAnalyticsStore) GetCampaignRevenue(ctx context.Context, sc scope.Scope) ([]store.CampaignRevenueRow, error) {
	args := m.Called(ctx, sc)
	return args.Get(0).([]store.CampaignRevenueRow), args.Error(1)
}
