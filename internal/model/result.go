package model

import "time"

// ResearchSection holds the research stage's contribution to the result.
// RawResponseFallback is non-nil only when no deal array could be recovered
// from the model text; the raw completion is kept for manual inspection.
type ResearchSection struct {
	TotalDealsFound       int     `json:"total_deals_found"`
	Deals                 []Deal  `json:"deals"`
	SupplementaryAnalysis string  `json:"supplementary_analysis"`
	RawResponseFallback   *string `json:"raw_response_fallback"`
}

// Meta echoes the configured model identifiers and the pipeline version.
type Meta struct {
	ResearchModel   string `json:"research_model"`
	AnalysisModel   string `json:"analysis_model"`
	PipelineVersion string `json:"pipeline_version"`
}

// PipelineResult is the terminal artifact of one pipeline run.
type PipelineResult struct {
	ClubName    string          `json:"club_name"`
	GeneratedAt time.Time       `json:"generated_at"`
	Research    ResearchSection `json:"research"`
	GapAnalysis GapAnalysis     `json:"gap_analysis"`
	Meta        Meta            `json:"meta"`
}
