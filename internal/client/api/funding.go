package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Annomy111/foerder-finder/internal/client/models"
)

// FundingService reads funding opportunities. Everything here is
// read-only; the client never mutates funding data.
type FundingService struct {
	service
}

// List fetches opportunities matching the given filters. Only non-empty
// values become query parameters; an empty (or nil) map fetches the
// unfiltered list.
func (s *FundingService) List(ctx context.Context, filters map[string]string) ([]models.FundingOpportunity, error) {
	query := url.Values{}
	for key, value := range filters {
		if value != "" {
			query.Set(key, value)
		}
	}

	var out []models.FundingOpportunity
	if err := s.client.do(ctx, http.MethodGet, "funding/", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one opportunity. Absent ids surface as ErrNotFound.
func (s *FundingService) GetByID(ctx context.Context, fundingID string) (*models.FundingOpportunity, error) {
	var out models.FundingOpportunity
	if err := s.client.do(ctx, http.MethodGet, "funding/"+fundingID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FilterOptions returns the filter values the backend can serve.
func (s *FundingService) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	var out models.FilterOptions
	if err := s.client.do(ctx, http.MethodGet, "funding/filters/options", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
