package store

import (
	"context"
	"fmt"
	"time"

	"insights-server/internal/scope"

	"github.com/google/uuid"
)

const sqlCountMessages = `
SELECT COUNT(*)::int
FROM messages
WHERE ($1::uuid IS NULL OR tenant_id = $1)
    AND direction = $2
    AND created_at >= $3
    AND created_at <= $4
`

// CountMessages counts messages in the scope's window for one direction
func (s *Store) CountMessages(ctx context.Context, sc scope.Scope, direction string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountMessages, sc.TenantID(), direction, sc.Start, sc.End)
	if err != nil {
		s.logger.Error(ctx, "failed to count messages", err)
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return count, nil
}

const sqlCountCampaignMessages = `
SELECT COUNT(*)::int
FROM messages m
JOIN leads l ON l.id = m.lead_id
WHERE ($1::uuid IS NULL OR m.tenant_id = $1)
    AND l.campaign_id = $2
    AND m.direction = $3
    AND m.created_at >= $4
    AND m.created_at <= $5
`

// CountCampaignMessages counts messages belonging to a campaign's leads
func (s *Store) CountCampaignMessages(ctx context.Context, sc scope.Scope, campaignID uuid.UUID, direction string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountCampaignMessages,
		sc.TenantID(), campaignID, direction, sc.Start, sc.End)
	if err != nil {
		s.logger.Error(ctx, "failed to count campaign messages", err)
		return 0, fmt.Errorf("failed to count campaign messages: %w", err)
	}
	return count, nil
}

// LeadMessage is a slim timeline row consumed by the follow-up
// timing aggregator
type LeadMessage struct {
	LeadID    uuid.UUID `db:"lead_id" json:"lead_id"`
	Direction string    `db:"direction" json:"direction"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

const sqlGetLeadMessageTimeline = `
SELECT lead_id, direction, created_at
FROM messages
WHERE ($1::uuid IS NULL OR tenant_id = $1)
    AND created_at >= $2
    AND created_at <= $3
ORDER BY lead_id ASC, created_at ASC
`

// GetLeadMessageTimeline retrieves all messages in the window ordered
// per lead chronologically
func (s *Store) GetLeadMessageTimeline(ctx context.Context, sc scope.Scope) ([]LeadMessage, error) {
	var results []LeadMessage
	err := s.db.SelectContext(ctx, &results, sqlGetLeadMessageTimeline, sc.TenantID(), sc.Start, sc.End)
	if err != nil {
		s.logger.Error(ctx, "failed to get lead message timeline", err)
		return nil, fmt.Errorf("failed to get lead message timeline: %w", err)
	}
	return results, nil
}

const sqlGetMonthlyOutboundCounts = `
SELECT
    DATE_TRUNC('month', created_at) as month,
    COUNT(*)::int as count
FROM messages
WHERE ($1::uuid IS NULL OR tenant_id = $1)
    AND direction = 'outbound'
    AND created_at >= $2
    AND created_at <= $3
GROUP BY 1
ORDER BY month ASC
`

// GetMonthlyOutboundCounts retrieves outbound message counts grouped
// by calendar month
func (s *Store) GetMonthlyOutboundCounts(ctx context.Context, sc scope.Scope) ([]MonthCount, error) {
	var results []MonthCount
	err := s.db.SelectContext(ctx, &results, sqlGetMonthlyOutboundCounts, sc.TenantID(), sc.Start, sc.End)
	if err != nil {
		s.logger.Error(ctx, "failed to get monthly outbound counts", err)
		return nil, fmt.Errorf("failed to get monthly outbound counts: %w", err)
	}
	return results, nil
}

const sqlGetLeadTranscript = `
SELECT lead_id, direction, created_at, body
FROM messages
WHERE lead_id = $1
ORDER BY created_at ASC
LIMIT $2
`

// TranscriptMessage is one line of a lead's conversation transcript
type TranscriptMessage struct {
	LeadID    uuid.UUID `db:"lead_id" json:"lead_id"`
	Direction string    `db:"direction" json:"direction"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Body      string    `db:"body" json:"body"`
}

// GetLeadTranscript retrieves a lead's message bodies in order, capped
// at limit rows. Used by the confidence scoring backfill.
func (s *Store) GetLeadTranscript(ctx context.Context, leadID uuid.UUID, limit int) ([]TranscriptMessage, error) {
	var results []TranscriptMessage
	err := s.db.SelectContext(ctx, &results, sqlGetLeadTranscript, leadID, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to get lead transcript", err)
		return nil, fmt.Errorf("failed to get lead transcript: %w", err)
	}
	return results, nil
}
