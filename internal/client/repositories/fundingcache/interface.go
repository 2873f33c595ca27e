// Package fundingcache stores the most recently fetched unfiltered funding
// list so browsing keeps working while the backend is unreachable.
package fundingcache

import (
	"context"

	"github.com/Annomy111/foerder-finder/internal/client/models"
)

type Repository interface {
	// ReplaceAll atomically swaps the cache contents for items.
	ReplaceAll(ctx context.Context, items []models.FundingOpportunity) error
	List(ctx context.Context) ([]models.FundingOpportunity, error)
	Get(ctx context.Context, fundingID string) (*models.FundingOpportunity, error)
}
