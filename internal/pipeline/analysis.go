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
	"github.com/sells-group/sponsor-gap-api/pkg/anthropic"
)

// analysisMaxTokens bounds the gap-analysis completion. The object for a
// large portfolio runs long but stays well under this.
const analysisMaxTokens = 8192

// snippetLen caps the response excerpt logged on extraction failure.
const snippetLen = 300

// AnalysisStage runs the segmentation and gap-analysis call (stage 2).
type AnalysisStage struct {
	client anthropic.Client
	model  string
}

// NewAnalysisStage creates the analysis stage against the given client and
// model identifier.
func NewAnalysisStage(client anthropic.Client, modelName string) *AnalysisStage {
	return &AnalysisStage{client: client, model: modelName}
}

// Run serializes the researched deals into the analysis prompt, invokes the
// model once and decodes the single gap-analysis object from its text.
//
// Unlike the research stage there is no degraded path: if no non-empty
// object fitting the gap-analysis shape can be recovered, Run fails with
// *ExtractionError carrying a truncated response snippet.
func (s *AnalysisStage) Run(ctx context.Context, clubName string, deals []model.Deal) (*model.GapAnalysis, error) {
	log := logging.FromContext(ctx).With(zap.String("club", clubName))

	dealsJSON, err := json.MarshalIndent(deals, "", "  ")
	if err != nil {
		return nil, eris.Wrap(err, "analysis: marshal deals")
	}

	system, err := prompt.Render(prompt.AnalysisSystem, nil)
	if err != nil {
		return nil, err
	}
	user, err := prompt.Render(prompt.AnalysisUser, map[string]string{
		"club_name":  clubName,
		"deals_json": string(dealsJSON),
	})
	if err != nil {
		return nil, err
	}

	log.Info("analysis: querying model",
		zap.String("model", s.model),
		zap.Int("deal_count", len(deals)),
	)
	resp, err := s.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     s.model,
		MaxTokens: analysisMaxTokens,
		System:    system,
		Messages:  []anthropic.Message{{Role: "user", Content: user}},
	})
	if err != nil {
		return nil, eris.Wrap(err, "analysis: create message")
	}
	resp.Usage.Log(s.model, "analysis")

	text := resp.Text()

	analysis, ok := decodeGapAnalysis(text)
	if !ok {
		extractionErr := &ExtractionError{Club: clubName, Snippet: snippet(text, snippetLen)}
		log.Error("analysis: no gap-analysis object recovered",
			zap.Int("response_chars", len(text)),
			zap.String("response_snippet", extractionErr.Snippet),
		)
		return nil, extractionErr
	}

	log.Info("analysis: gap analysis extracted",
		zap.Int("segment_count", len(analysis.IndustrySegments)),
		zap.Int("gap_count", len(analysis.Gaps)),
	)
	return analysis, nil
}

// decodeGapAnalysis recovers the gap-analysis object from model text. An
// empty object is a failure: the extractor's failure sentinel and a
// genuinely structureless analysis are equally worthless.
func decodeGapAnalysis(text string) (*model.GapAnalysis, bool) {
	raw, ok := extract.Object(text)
	if !ok {
		return nil, false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || len(fields) == 0 {
		return nil, false
	}

	var analysis model.GapAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return nil, false
	}
	return &analysis, true
}

// snippet returns the first n bytes of text for diagnostics.
func snippet(text string, n int) string {
	if len(text) <= n {
		return text
	}
	return text[:n]
}
