package controllers

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Annomy111/foerder-finder/internal/client/models"
	"github.com/Annomy111/foerder-finder/internal/logging"
)

// DashboardFundingLimit caps how many opportunities the dashboard teaser
// requests.
const DashboardFundingLimit = 8

// DashboardController loads the start page in one shot: the user's
// applications and a short funding teaser, fetched concurrently, plus the
// aggregates derived from them.
type DashboardController struct {
	apps    ApplicationsAPI
	funding FundingAPI
	log     logging.Logger
	now     func() time.Time

	mu            sync.Mutex
	applications  []models.Application
	opportunities []models.FundingOpportunity
	loaded        bool
}

func NewDashboard(apps ApplicationsAPI, funding FundingAPI, log logging.Logger) *DashboardController {
	return &DashboardController{
		apps:    apps,
		funding: funding,
		log:     log.With("component", "dashboard"),
		now:     time.Now,
	}
}

// Refresh fetches applications and the funding teaser concurrently. If
// either fetch fails the whole refresh fails and the previous state is
// kept.
func (c *DashboardController) Refresh(ctx context.Context) error {
	var (
		applications  []models.Application
		opportunities []models.FundingOpportunity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		applications, err = c.apps.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		opportunities, err = c.funding.List(gctx, map[string]string{
			"limit": strconv.Itoa(DashboardFundingLimit),
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	c.mu.Lock()
	c.applications = applications
	c.opportunities = opportunities
	c.loaded = true
	c.mu.Unlock()
	return nil
}

func (c *DashboardController) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

func (c *DashboardController) Applications() []models.Application {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Application(nil), c.applications...)
}

func (c *DashboardController) Opportunities() []models.FundingOpportunity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.FundingOpportunity(nil), c.opportunities...)
}

// StatusCounts tallies the user's applications per status.
func (c *DashboardController) StatusCounts() map[models.ApplicationStatus]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	counts := make(map[models.ApplicationStatus]int)
	for _, app := range c.applications {
		counts[app.Status]++
	}
	return counts
}

// DeadlinesSoonCount counts teaser opportunities closing within the
// 30-day window.
func (c *DashboardController) DeadlinesSoonCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := 0
	for _, item := range c.opportunities {
		if models.DeadlineWithin(item.Deadline, now, models.DeadlineSoonDays) {
			n++
		}
	}
	return n
}

// TotalMaxFunding sums the maximum amounts across the teaser list.
func (c *DashboardController) TotalMaxFunding() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.opportunities {
		if item.MaxAmount != nil {
			total += *item.MaxAmount
		}
	}
	return total
}
