package controllers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Annomy111/foerder-finder/internal/client/api"
	"github.com/Annomy111/foerder-finder/internal/client/models"
	"github.com/Annomy111/foerder-finder/internal/client/repositories/fundingcache"
	"github.com/Annomy111/foerder-finder/internal/logging"
)

// FilterKeys are the funding list filters, in display order.
// An empty string value means "no filter applied".
var FilterKeys = []string{"region", "funding_area", "provider"}

// FundingListController drives the funding list view: filter state, the
// fetched list, and the derived aggregates. When the backend is down and
// no filters are active it serves the last cached unfiltered list.
type FundingListController struct {
	api   FundingAPI
	cache fundingcache.Repository
	log   logging.Logger
	now   func() time.Time

	mu      sync.Mutex
	filters map[string]string
	items   []models.FundingOpportunity
	offline bool
}

// NewFundingList builds a controller. cache may be nil to disable the
// offline fallback.
func NewFundingList(fundingAPI FundingAPI, cache fundingcache.Repository, log logging.Logger) *FundingListController {
	filters := make(map[string]string, len(FilterKeys))
	for _, key := range FilterKeys {
		filters[key] = ""
	}
	return &FundingListController{
		api:     fundingAPI,
		cache:   cache,
		log:     log.With("component", "funding-list"),
		now:     time.Now,
		filters: filters,
	}
}

// SetFilter updates one filter key and re-fetches. Unknown keys are
// rejected so typos do not silently produce unfiltered queries.
func (c *FundingListController) SetFilter(ctx context.Context, key, value string) error {
	c.mu.Lock()
	if _, ok := c.filters[key]; !ok {
		c.mu.Unlock()
		return errors.New("unknown filter key: " + key)
	}
	c.filters[key] = value
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// ClearFilters resets every key to empty in one state update and issues a
// single unfiltered fetch, not one fetch per key.
func (c *FundingListController) ClearFilters(ctx context.Context) error {
	c.mu.Lock()
	for key := range c.filters {
		c.filters[key] = ""
	}
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// ActiveFilterCount is the number of non-empty filter values.
func (c *FundingListController) ActiveFilterCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, value := range c.filters {
		if value != "" {
			n++
		}
	}
	return n
}

// Filters returns a copy of the current filter state.
func (c *FundingListController) Filters() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]string, len(c.filters))
	for key, value := range c.filters {
		out[key] = value
	}
	return out
}

// activeFilters returns only the non-empty entries; this is exactly what
// goes into the request.
func (c *FundingListController) activeFilters() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]string)
	for key, value := range c.filters {
		if value != "" {
			out[key] = value
		}
	}
	return out
}

// Refresh fetches the list for the current filters. On ErrUnavailable
// with no active filters it falls back to the local cache and flags the
// view as offline.
func (c *FundingListController) Refresh(ctx context.Context) error {
	active := c.activeFilters()

	items, err := c.api.List(ctx, active)
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) && len(active) == 0 && c.cache != nil {
			cached, cacheErr := c.cache.List(ctx)
			if cacheErr == nil && len(cached) > 0 {
				c.log.Warn(ctx, "backend unavailable, serving cached funding list", "items", len(cached))
				c.mu.Lock()
				c.items = cached
				c.offline = true
				c.mu.Unlock()
				return nil
			}
		}
		return err
	}

	c.mu.Lock()
	c.items = items
	c.offline = false
	c.mu.Unlock()

	if len(active) == 0 && c.cache != nil {
		if err := c.cache.ReplaceAll(ctx, items); err != nil {
			c.log.Warn(ctx, "funding cache update failed", "error", err)
		}
	}
	return nil
}

// Items returns the currently loaded list.
func (c *FundingListController) Items() []models.FundingOpportunity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.FundingOpportunity(nil), c.items...)
}

// Offline reports whether Items came from the local cache.
func (c *FundingListController) Offline() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offline
}

// TotalMaxFunding sums the maximum funding amounts of the loaded list.
func (c *FundingListController) TotalMaxFunding() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.items {
		if item.MaxAmount != nil {
			total += *item.MaxAmount
		}
	}
	return total
}

// DeadlinesSoonCount counts items whose deadline falls within the
// 30-day list threshold. Card-level urgency uses the separate 7-day
// window; the two are not interchangeable.
func (c *FundingListController) DeadlinesSoonCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := 0
	for _, item := range c.items {
		if models.DeadlineWithin(item.Deadline, now, models.DeadlineSoonDays) {
			n++
		}
	}
	return n
}

// FilterOptions exposes the backend's available filter values.
func (c *FundingListController) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	return c.api.FilterOptions(ctx)
}
