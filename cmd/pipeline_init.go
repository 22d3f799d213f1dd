package main

import (
	"github.com/sells-group/sponsor-gap-api/internal/pipeline"
	anthropicpkg "github.com/sells-group/sponsor-gap-api/pkg/anthropic"
	"github.com/sells-group/sponsor-gap-api/pkg/perplexity"
)

// initPipeline builds both model clients and wires them into the
// two-stage pipeline. Both API keys must be present in config.
func initPipeline() (*pipeline.Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	perplexityClient := perplexity.NewClient(cfg.Perplexity.Key,
		perplexity.WithBaseURL(cfg.Perplexity.BaseURL),
		perplexity.WithModel(cfg.Perplexity.Model),
	)

	var anthropicOpts []anthropicpkg.Option
	if cfg.Anthropic.BaseURL != "" {
		anthropicOpts = append(anthropicOpts, anthropicpkg.WithBaseURL(cfg.Anthropic.BaseURL))
	}
	anthropicClient := anthropicpkg.NewClient(cfg.Anthropic.Key, anthropicOpts...)

	research := pipeline.NewResearchStage(perplexityClient, cfg.Perplexity.Model)
	analysis := pipeline.NewAnalysisStage(anthropicClient, cfg.Anthropic.Model)

	return pipeline.New(research, analysis, cfg.Perplexity.Model, cfg.Anthropic.Model), nil
}
