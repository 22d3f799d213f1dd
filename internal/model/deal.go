package model

// Deal represents one sponsorship relationship between a club and a brand.
//
// Only Club and PartnerBrand are expected to be present; everything else is
// whatever the research model could find. Optional attributes are pointers so
// "not reported" stays distinguishable from an empty value, and decoding is
// lenient: a deal is never rejected for missing fields.
type Deal struct {
	Club         string `json:"club"`
	PartnerBrand string `json:"partner_brand"`

	ParentCompany *string  `json:"parent_company,omitempty"`
	Category      *string  `json:"category,omitempty"`
	AssetType     *string  `json:"asset_type,omitempty"`
	RightsSummary *string  `json:"rights_summary,omitempty"`
	Exclusivity   *string  `json:"exclusivity,omitempty"`
	Geography     *string  `json:"geography,omitempty"`
	StartDate     *string  `json:"start_date,omitempty"`
	EndDate       *string  `json:"end_date,omitempty"`
	AnnouncedAt   *string  `json:"announced_at,omitempty"`
	Status        *string  `json:"status,omitempty"`
	AnnualValue   *float64 `json:"annual_value,omitempty"`
	TotalValue    *float64 `json:"total_value,omitempty"`
	Currency      *string  `json:"currency,omitempty"`
	ValueBasis    *string  `json:"value_basis,omitempty"` // reported vs estimated figure
	Sources       []string `json:"sources,omitempty"`
	Confidence    *string  `json:"confidence,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}
