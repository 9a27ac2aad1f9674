package scoring

import (
	"context"
	"fmt"
	"strings"

	"insights-server/internal/clients/openai"
	"insights-server/internal/observability"
	"insights-server/internal/store"
)

const transcriptMessageLimit = 50

// ScoringProcessor backfills confidence scores on conversations that
// never got one at ingest time. Scored conversations feed the
// calibration report.
type ScoringProcessor struct {
	store  *store.Store
	client *openai.ScoringClient
	logger *observability.Logger
}

func New(store *store.Store, client *openai.ScoringClient, logger *observability.Logger) *ScoringProcessor {
	return &ScoringProcessor{
		store:  store,
		client: client,
		logger: logger,
	}
}

// ScoreBatch scores up to batchSize unscored conversations. A
// conversation that fails to score is logged and left unscored for the
// next run.
func (p *ScoringProcessor) ScoreBatch(ctx context.Context, batchSize int) (int, error) {
	conversations, err := p.store.GetUnscoredConversations(ctx, batchSize)
	if err != nil {
		p.logger.Error(ctx, "failed to get unscored conversations", err)
		return 0, err
	}

	scored := 0
	for _, conversation := range conversations {
		convCtx := observability.WithFields(ctx,
			observability.Field{Key: "conversation_id", Value: conversation.ID.String()},
			observability.Field{Key: "lead_id", Value: conversation.LeadID.String()},
		)

		if err := p.scoreOne(convCtx, conversation); err != nil {
			p.logger.Error(convCtx, "failed to score conversation", err)
			continue
		}
		scored++
	}

	return scored, nil
}

func (p *ScoringProcessor) scoreOne(ctx context.Context, conversation store.ConversationRecord) error {
	messages, err := p.store.GetLeadTranscript(ctx, conversation.LeadID, transcriptMessageLimit)
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		return fmt.Errorf("no transcript for lead %s", conversation.LeadID)
	}

	var transcript strings.Builder
	for _, msg := range messages {
		speaker := "Rep"
		if msg.Direction == store.DirectionInbound {
			speaker = "Lead"
		}
		fmt.Fprintf(&transcript, "%s: %s\n", speaker, msg.Body)
	}

	score, err := p.client.ScoreConversation(ctx, transcript.String())
	if err != nil {
		return err
	}

	return p.store.UpdateConversationConfidence(ctx, conversation.ID, score)
}
