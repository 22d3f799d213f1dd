package model

// Gap status labels produced by the exclusivity-blocker assessment.
const (
	GapStatusOpen             = "OPEN"
	GapStatusPartiallyBlocked = "PARTIALLY BLOCKED"
	GapStatusBlocked          = "BLOCKED"
)

// CurrentSponsor is an active sponsor inside an industry vertical.
type CurrentSponsor struct {
	Brand     string `json:"brand"`
	AssetType string `json:"asset_type"`
	Since     string `json:"since"`
}

// HistoricalSponsor is a past sponsor inside an industry vertical.
type HistoricalSponsor struct {
	Brand       string `json:"brand"`
	AssetType   string `json:"asset_type"`
	ActiveYears string `json:"active_years"`
}

// IndustrySegment groups a club's sponsors by industry vertical. A vertical
// with historical sponsors and no current ones is a gap candidate.
type IndustrySegment struct {
	Vertical           string              `json:"vertical"`
	CurrentSponsors    []CurrentSponsor    `json:"current_sponsors"`
	HistoricalSponsors []HistoricalSponsor `json:"historical_sponsors"`
}

// Gap is one identified vertical-level opportunity.
type Gap struct {
	Vertical         string  `json:"vertical"`
	LastSponsor      string  `json:"last_sponsor"`
	LastActive       string  `json:"last_active"`
	Status           string  `json:"status"` // OPEN, PARTIALLY BLOCKED or BLOCKED
	Blocker          *string `json:"blocker,omitempty"`
	OpportunityNotes string  `json:"opportunity_notes"`
}

// GapSummary holds the analysis model's own counts. The pipeline carries
// these through as reported and never recomputes them from the gaps list.
type GapSummary struct {
	TotalVerticals    int `json:"total_verticals"`
	VerticalsWithGaps int `json:"verticals_with_gaps"`
	OpenGaps          int `json:"open_gaps"`
	BlockedGaps       int `json:"blocked_gaps"`
}

// GapAnalysis is the structured output of the analysis stage.
type GapAnalysis struct {
	IndustrySegments []IndustrySegment `json:"industry_segments"`
	Gaps             []Gap             `json:"gaps"`
	Summary          GapSummary        `json:"summary"`
}
