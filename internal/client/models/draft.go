package models

import "time"

// ApplicationDraft is an AI-generated proposal text attached to an
// application. Immutable once generated; an application can accumulate
// several drafts, ordered most-recent-first by the backend.
type ApplicationDraft struct {
	DraftID          string    `json:"draft_id"`
	ApplicationID    string    `json:"application_id"`
	FundingID        string    `json:"funding_id,omitempty"`
	GeneratedContent string    `json:"generated_content"`
	ModelUsed        string    `json:"model_used,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	ConfidenceScore  *float64  `json:"confidence_score,omitempty"`
}
