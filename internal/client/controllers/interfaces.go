package controllers

import (
	"context"

	"github.com/Annomy111/foerder-finder/internal/client/api"
	"github.com/Annomy111/foerder-finder/internal/client/models"
)

// The controller-facing slices of the endpoint modules. api.Client's
// services satisfy these.

type FundingAPI interface {
	List(ctx context.Context, filters map[string]string) ([]models.FundingOpportunity, error)
	GetByID(ctx context.Context, fundingID string) (*models.FundingOpportunity, error)
	FilterOptions(ctx context.Context) (*models.FilterOptions, error)
}

type ApplicationsAPI interface {
	List(ctx context.Context) ([]models.Application, error)
	GetByID(ctx context.Context, applicationID string) (*models.Application, error)
	Create(ctx context.Context, req api.CreateApplicationRequest) (*models.Application, error)
	Update(ctx context.Context, applicationID string, req api.UpdateApplicationRequest) (*models.Application, error)
	Delete(ctx context.Context, applicationID string) error
}

type DraftsAPI interface {
	Generate(ctx context.Context, req api.GenerateDraftRequest) (*models.ApplicationDraft, error)
	GetForApplication(ctx context.Context, applicationID string) ([]models.ApplicationDraft, error)
	SubmitFeedback(ctx context.Context, draftID, feedback string) error
}

type SearchAPI interface {
	Search(ctx context.Context, req api.SearchRequest) (*models.SearchResponse, error)
	QuickSearch(ctx context.Context, query string, limit int) (*models.SearchResponse, error)
}
