package api

import (
	"context"
	"net/http"

	"github.com/Annomy111/foerder-finder/internal/client/models"
)

// DraftsService drives AI draft generation and feedback.
type DraftsService struct {
	service
}

type GenerateDraftRequest struct {
	ApplicationID string `json:"application_id"`
	FundingID     string `json:"funding_id"`
	UserQuery     string `json:"user_query"`
}

// Generate asks the backend to produce a new draft. Long-running: the
// call uses the client's generate timeout and the caller is expected to
// show a pending state meanwhile.
func (s *DraftsService) Generate(ctx context.Context, req GenerateDraftRequest) (*models.ApplicationDraft, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.client.generateTimeout)
		defer cancel()
	}

	var out models.ApplicationDraft
	if err := s.client.do(ctx, http.MethodPost, "drafts/generate", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetForApplication lists an application's drafts, most recent first.
func (s *DraftsService) GetForApplication(ctx context.Context, applicationID string) ([]models.ApplicationDraft, error) {
	var out []models.ApplicationDraft
	if err := s.client.do(ctx, http.MethodGet, "drafts/application/"+applicationID, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitFeedback records whether a draft was helpful.
func (s *DraftsService) SubmitFeedback(ctx context.Context, draftID, feedback string) error {
	body := map[string]string{"draft_id": draftID, "feedback": feedback}
	return s.client.do(ctx, http.MethodPost, "drafts/feedback", nil, body, nil)
}
