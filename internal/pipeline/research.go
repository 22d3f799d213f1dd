package pipeline

import (
	"context"
	"encoding/json"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/sponsor-gap-api/internal/extract"
	"github.com/sells-group/sponsor-gap-api/internal/logging"
	"github.com/sells-group/sponsor-gap-api/internal/model"
	"github.com/sells-group/sponsor-gap-api/internal/prompt"
	"github.com/sells-group/sponsor-gap-api/pkg/perplexity"
)

// ResearchStage runs the web-search-grounded deal research call (stage 1).
type ResearchStage struct {
	client perplexity.Client
	model  string
}

// NewResearchStage creates the research stage against the given client and
// model identifier.
func NewResearchStage(client perplexity.Client, modelName string) *ResearchStage {
	return &ResearchStage{client: client, model: modelName}
}

// Run renders the research prompts, invokes the model once (no retry, no
// deadline) and recovers the deal array from the completion text.
//
// When the text yields no array, the stage degrades instead of failing:
// deals come back empty and rawFallback carries the full completion for
// manual inspection. The only fatal condition is a completion with zero
// choices, reported as *EmptyResponseError.
func (s *ResearchStage) Run(ctx context.Context, clubName string) (deals []model.Deal, supplementary string, rawFallback *string, err error) {
	log := logging.FromContext(ctx).With(zap.String("club", clubName))

	system, err := prompt.Render(prompt.ResearchSystem, nil)
	if err != nil {
		return nil, "", nil, err
	}
	user, err := prompt.Render(prompt.ResearchUser, map[string]string{"club_name": clubName})
	if err != nil {
		return nil, "", nil, err
	}

	log.Info("research: querying model", zap.String("model", s.model))
	resp, err := s.client.ChatCompletion(ctx, perplexity.ChatCompletionRequest{
		Model: s.model,
		Messages: []perplexity.Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return nil, "", nil, eris.Wrap(err, "research: chat completion")
	}
	if len(resp.Choices) == 0 {
		return nil, "", nil, &EmptyResponseError{Club: clubName}
	}

	text := resp.Choices[0].Message.Content

	raw, remainder, ok := extract.Array(text)
	if ok {
		if unmarshalErr := json.Unmarshal(raw, &deals); unmarshalErr != nil {
			log.Warn("research: recovered array does not decode as deals, keeping raw text",
				zap.Int("response_chars", len(text)),
				zap.Error(unmarshalErr),
			)
			ok = false
		}
	}
	if !ok {
		log.Warn("research: no deal array recovered, keeping raw text",
			zap.Int("response_chars", len(text)),
		)
		fallback := text
		return []model.Deal{}, "", &fallback, nil
	}

	log.Info("research: deals extracted",
		zap.Int("deal_count", len(deals)),
		zap.Int("response_chars", len(text)),
	)
	return deals, remainder, nil, nil
}
