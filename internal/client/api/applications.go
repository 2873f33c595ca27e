package api

import (
	"context"
	"net/http"

	"github.com/Annomy111/foerder-finder/internal/client/models"
)

// ApplicationsService manages grant applications for the caller's school.
type ApplicationsService struct {
	service
}

type CreateApplicationRequest struct {
	FundingID           string `json:"funding_id"`
	Title               string `json:"title"`
	Projektbeschreibung string `json:"projektbeschreibung"`
}

// UpdateApplicationRequest is a partial update; nil fields stay untouched.
type UpdateApplicationRequest struct {
	Title               *string                   `json:"title,omitempty"`
	Projektbeschreibung *string                   `json:"projektbeschreibung,omitempty"`
	Status              *models.ApplicationStatus `json:"status,omitempty"`
}

func (s *ApplicationsService) List(ctx context.Context) ([]models.Application, error) {
	var out []models.Application
	if err := s.client.do(ctx, http.MethodGet, "applications/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ApplicationsService) GetByID(ctx context.Context, applicationID string) (*models.Application, error) {
	var out models.Application
	if err := s.client.do(ctx, http.MethodGet, "applications/"+applicationID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create opens a new application for a funding opportunity. The backend
// assigns the initial entwurf status.
func (s *ApplicationsService) Create(ctx context.Context, req CreateApplicationRequest) (*models.Application, error) {
	var out models.Application
	if err := s.client.do(ctx, http.MethodPost, "applications/", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ApplicationsService) Update(ctx context.Context, applicationID string, req UpdateApplicationRequest) (*models.Application, error) {
	var out models.Application
	if err := s.client.do(ctx, http.MethodPatch, "applications/"+applicationID, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an application. The backend rejects anything that is not
// in entwurf status; callers check models.ApplicationStatus.Deletable
// first so the request is not even sent.
func (s *ApplicationsService) Delete(ctx context.Context, applicationID string) error {
	return s.client.do(ctx, http.MethodDelete, "applications/"+applicationID, nil, nil, nil)
}
