package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"insights-server/internal/observability"

	"github.com/openai/openai-go"
	openaiOption "github.com/openai/openai-go/option"
)

const scoringSystemPrompt = `You score sales conversations. Given a transcript, respond with a JSON object of the form {"confidence": <number between 0 and 1>} where confidence is the probability that this lead converts to a hot lead. Respond with the JSON object only.`

var ErrNoScore = errors.New("model returned no usable score")

// ScoringClient scores conversation transcripts for hot-lead
// likelihood.
type ScoringClient struct {
	apiKey string
	logger *observability.Logger
}

func NewScoringClient(apiKey string, logger *observability.Logger) (*ScoringClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	return &ScoringClient{apiKey: apiKey, logger: logger}, nil
}

type scorePayload struct {
	Confidence float64 `json:"confidence"`
}

// ScoreConversation asks the model for a conversion confidence score
// in [0, 1] for the given transcript.
func (c *ScoringClient) ScoreConversation(ctx context.Context, transcript string) (float64, error) {
	client := openai.NewClient(
		openaiOption.WithAPIKey(c.apiKey),
	)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4oMini,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(scoringSystemPrompt),
			openai.UserMessage(transcript),
		},
	})
	if err != nil {
		c.logger.Error(ctx, "failed to score conversation", err)
		return 0, fmt.Errorf("failed to score conversation: %w", err)
	}

	if len(resp.Choices) == 0 {
		return 0, ErrNoScore
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	// Models occasionally wrap JSON in a code fence despite the prompt.
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var payload scorePayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &payload); err != nil {
		c.logger.Error(ctx, "failed to parse score response", err)
		return 0, ErrNoScore
	}

	if payload.Confidence < 0 || payload.Confidence > 1 {
		return 0, ErrNoScore
	}
	return payload.Confidence, nil
}
