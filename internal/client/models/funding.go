package models

import (
	"encoding/json"
	"time"
)

// FundingOpportunity is a scraped funding programme. Read-only from the
// client's perspective: fetched, never mutated locally.
type FundingOpportunity struct {
	FundingID   string   `json:"funding_id"`
	Title       string   `json:"title"`
	Provider    string   `json:"provider,omitempty"`
	Region      string   `json:"region,omitempty"`
	FundingArea string   `json:"funding_area,omitempty"`
	Description string   `json:"description,omitempty"`
	CleanedText string   `json:"cleaned_text,omitempty"`
	MinAmount   *float64 `json:"min_funding_amount,omitempty"`
	MaxAmount   *float64 `json:"max_funding_amount,omitempty"`
	Deadline    *Date    `json:"deadline,omitempty"`

	Requirements []string `json:"requirements,omitempty"`
	Eligibility  []string `json:"eligibility,omitempty"`
	TargetGroups []string `json:"target_groups,omitempty"`
	Tags         []string `json:"tags,omitempty"`

	SourceURL string     `json:"source_url,omitempty"`
	ScrapedAt *time.Time `json:"scraped_at,omitempty"`
}

// ResolveFundingID picks a funding identity from the heterogeneous id
// fields different backend revisions emit. Priority order:
// funding_id, id, uuid, slug. Returns "" when none is set.
//
// Every call site that needs to identify a funding record goes through
// this function; the fallback chain is not reimplemented elsewhere.
func ResolveFundingID(fundingID, id, uuid, slug string) string {
	for _, candidate := range []string{fundingID, id, uuid, slug} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

func (f *FundingOpportunity) UnmarshalJSON(data []byte) error {
	type plain FundingOpportunity
	aux := struct {
		*plain
		ID   string `json:"id"`
		UUID string `json:"uuid"`
		Slug string `json:"slug"`
	}{plain: (*plain)(f)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	f.FundingID = ResolveFundingID(f.FundingID, aux.ID, aux.UUID, aux.Slug)
	return nil
}

// FilterOptions lists the filter values the backend can serve.
type FilterOptions struct {
	Regions      []string `json:"regions"`
	FundingAreas []string `json:"funding_areas"`
	Providers    []string `json:"providers"`
}
