package pipeline

import "fmt"

// EmptyResponseError indicates the research model returned no completion
// choices. Fatal to the request; the pipeline performs no recovery.
type EmptyResponseError struct {
	Club string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("research model returned no completion choices for %q", e.Club)
}

// ExtractionError indicates no usable gap-analysis object could be recovered
// from the analysis model's text. Fatal to the request: a gap analysis with
// no structure has no residual value, unlike the research stage's degraded
// raw-text fallback.
type ExtractionError struct {
	Club    string
	Snippet string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("no gap-analysis object recovered from analysis response for %q", e.Club)
}
