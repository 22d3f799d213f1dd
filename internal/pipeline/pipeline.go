// Package pipeline implements the two-stage sponsorship gap-analysis run:
// deal research against a web-search-grounded model, then vertical
// segmentation and gap identification against an analysis model. One inbound
// request drives exactly one run; nothing is shared or persisted across runs.
package pipeline

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/sponsor-gap-api/internal/logging"
	"github.com/sells-group/sponsor-gap-api/internal/model"
)

// Version is stamped into every result's meta section.
const Version = "1.0.0"

// Pipeline sequences the research and analysis stages for one club name and
// assembles the final result document.
type Pipeline struct {
	research *ResearchStage
	analysis *AnalysisStage

	researchModel string
	analysisModel string
}

// New creates a Pipeline. The model identifiers are echoed into the result's
// meta section; they come from configuration, never from the stages'
// responses.
func New(research *ResearchStage, analysis *AnalysisStage, researchModel, analysisModel string) *Pipeline {
	return &Pipeline{
		research:      research,
		analysis:      analysis,
		researchModel: researchModel,
		analysisModel: analysisModel,
	}
}

// Run executes both stages in sequence. The analysis stage always receives
// whatever deals research produced, including an empty list after a
// research-side extraction fallback; it is never skipped. Stage errors
// propagate to the caller wrapped with context only; the typed cause stays
// reachable through errors.As.
func (p *Pipeline) Run(ctx context.Context, clubName string) (*model.PipelineResult, error) {
	log := logging.FromContext(ctx).With(zap.String("club", clubName))
	log.Info("pipeline: starting gap analysis")
	start := time.Now()

	deals, supplementary, rawFallback, err := p.research.Run(ctx, clubName)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: research stage")
	}

	analysis, err := p.analysis.Run(ctx, clubName, deals)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: analysis stage")
	}

	result := &model.PipelineResult{
		ClubName:    clubName,
		GeneratedAt: time.Now().UTC(),
		Research: model.ResearchSection{
			TotalDealsFound:       len(deals),
			Deals:                 deals,
			SupplementaryAnalysis: supplementary,
			RawResponseFallback:   rawFallback,
		},
		GapAnalysis: *analysis,
		Meta: model.Meta{
			ResearchModel:   p.researchModel,
			AnalysisModel:   p.analysisModel,
			PipelineVersion: Version,
		},
	}
	if result.Research.Deals == nil {
		result.Research.Deals = []model.Deal{}
	}

	log.Info("pipeline: complete",
		zap.Int("deal_count", len(deals)),
		zap.Int("total_verticals", analysis.Summary.TotalVerticals),
		zap.Int("gap_count", len(analysis.Gaps)),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return result, nil
}
