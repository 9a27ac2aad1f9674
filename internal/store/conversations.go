package store

import (
	"context"
	"fmt"

	"insights-server/internal/scope"

	"github.com/google/uuid"
)

// ConfidenceOutcome pairs an AI confidence score with whether the lead
// eventually reached hot status
type ConfidenceOutcome struct {
	Confidence float64 `db:"confidence" json:"confidence"`
	WentHot    bool    `db:"went_hot" json:"went_hot"`
}

const sqlGetConfidenceOutcomes = `
SELECT
    ca.confidence_score as confidence,
    (l.marked_hot_at IS NOT NULL) as went_hot
FROM conversation_analytics ca
JOIN leads l ON l.id = ca.lead_id
WHERE ($1::uuid IS NULL OR ca.tenant_id = $1)
    AND ca.confidence_score IS NOT NULL
    AND l.created_at >= $2
    AND l.created_at <= $3
`

// GetConfidenceOutcomes retrieves scored conversations joined against
// the lead's eventual hot status, for calibration
func (s *Store) GetConfidenceOutcomes(ctx context.Context, sc scope.Scope) ([]ConfidenceOutcome, error) {
	var results []ConfidenceOutcome
	err := s.db.SelectContext(ctx, &results, sqlGetConfidenceOutcomes, sc.TenantID(), sc.Start, sc.End)
	if err != nil {
		s.logger.Error(ctx, "failed to get confidence outcomes", err)
		return nil, fmt.Errorf("failed to get confidence outcomes: %w", err)
	}
	return results, nil
}

const sqlGetUnscoredConversations = `
SELECT id, tenant_id, lead_id, confidence_score, content_analysis, call_logged, marked_hot_at
FROM conversation_analytics
WHERE confidence_score IS NULL
ORDER BY id ASC
LIMIT $1
`

// GetUnscoredConversations retrieves conversations the scoring worker
// has not yet assigned a confidence to
func (s *Store) GetUnscoredConversations(ctx context.Context, limit int) ([]ConversationRecord, error) {
	var results []ConversationRecord
	err := s.db.SelectContext(ctx, &results, sqlGetUnscoredConversations, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to get unscored conversations", err)
		return nil, fmt.Errorf("failed to get unscored conversations: %w", err)
	}
	return results, nil
}

const sqlUpdateConversationConfidence = `
UPDATE conversation_analytics
SET confidence_score = $2
WHERE id = $1
`

// UpdateConversationConfidence stores a computed confidence score
func (s *Store) UpdateConversationConfidence(ctx context.Context, conversationID uuid.UUID, score float64) error {
	result, err := s.db.ExecContext(ctx, sqlUpdateConversationConfidence, conversationID, score)
	if err != nil {
		s.logger.Error(ctx, "failed to update conversation confidence", err)
		return fmt.Errorf("failed to update conversation confidence: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
