package controllers

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Annomy111/foerder-finder/internal/client/api"
	"github.com/Annomy111/foerder-finder/internal/client/models"
	"github.com/Annomy111/foerder-finder/internal/logging"
)

// SearchMode selects which search endpoint a query hits. Switching modes
// never changes the debounce behavior.
type SearchMode string

const (
	ModeAdvanced SearchMode = "advanced"
	ModeQuick    SearchMode = "quick"
)

const (
	// Queries below this length never reach the network.
	MinQueryLength = 3

	DefaultDebounce = 500 * time.Millisecond
	DefaultTopK     = 10
)

// SearchController implements the search view's state machine: debounced
// query input, advanced/quick mode, and stale-response rejection via a
// generation counter. A scheduled fetch is superseded by the next
// keystroke; an in-flight response for an outdated query is discarded
// instead of being applied.
type SearchController struct {
	api      SearchAPI
	log      logging.Logger
	debounce time.Duration

	mu         sync.Mutex
	timer      *time.Timer
	generation uint64

	query  string
	mode   SearchMode
	region string
	topK   int
	expand bool
	rerank bool

	results  []models.SearchResult
	last     *models.SearchResponse
	loading  bool
	lastErr  error
	onUpdate func()
}

func NewSearch(searchAPI SearchAPI, log logging.Logger) *SearchController {
	return &SearchController{
		api:      searchAPI,
		log:      log.With("component", "search"),
		debounce: DefaultDebounce,
		mode:     ModeAdvanced,
		topK:     DefaultTopK,
		expand:   true,
		rerank:   true,
	}
}

// SetDebounce overrides the quiescence delay (primarily a test seam).
func (c *SearchController) SetDebounce(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.debounce = d
}

// SetOnUpdate registers a callback fired whenever results change.
func (c *SearchController) SetOnUpdate(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUpdate = fn
}

func (c *SearchController) SetMode(mode SearchMode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = mode
}

func (c *SearchController) SetRegion(region string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.region = region
}

func (c *SearchController) SetTopK(topK int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if topK > 0 {
		c.topK = topK
	}
}

func (c *SearchController) SetPipeline(expand, rerank bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expand = expand
	c.rerank = rerank
}

// SetQuery feeds one keystroke's worth of input. Short queries cancel any
// pending trigger and do nothing else; longer ones (re)arm the debounce
// timer, superseding the previous not-yet-fired trigger.
func (c *SearchController) SetQuery(ctx context.Context, query string) {
	query = strings.TrimSpace(query)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.query = query
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if len([]rune(query)) < MinQueryLength {
		return
	}

	c.timer = time.AfterFunc(c.debounce, func() {
		if err := c.run(ctx); err != nil {
			c.log.Warn(ctx, "search failed", "error", err)
		}
	})
}

// SearchNow runs the current query immediately (e.g., on Enter), skipping
// the debounce window but not the minimum-length rule.
func (c *SearchController) SearchNow(ctx context.Context) error {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	short := len([]rune(c.query)) < MinQueryLength
	c.mu.Unlock()

	if short {
		return nil
	}
	return c.run(ctx)
}

// Clear resets query and results and cancels any pending trigger.
func (c *SearchController) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.generation++
	c.query = ""
	c.results = nil
	c.last = nil
	c.lastErr = nil
	c.loading = false
}

// run issues one fetch for the current parameters. The generation counter
// taken before the call must still be current when the response arrives;
// otherwise a newer query has started and the response is dropped.
func (c *SearchController) run(ctx context.Context) error {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	query := c.query
	mode := c.mode
	region := c.region
	topK := c.topK
	expand := c.expand
	rerank := c.rerank
	c.loading = true
	c.mu.Unlock()

	var resp *models.SearchResponse
	var err error
	if mode == ModeQuick {
		resp, err = c.api.QuickSearch(ctx, query, topK)
	} else {
		resp, err = c.api.Search(ctx, api.SearchRequest{
			Query:         query,
			TopK:          topK,
			Region:        region,
			ExpandQueries: expand,
			RerankResults: rerank,
		})
	}

	c.mu.Lock()
	if gen != c.generation {
		// A newer query superseded this one while it was in flight.
		c.mu.Unlock()
		c.log.Debug(ctx, "discarding stale search response", "query", query)
		return nil
	}
	c.loading = false
	c.lastErr = err
	if err == nil {
		c.last = resp
		c.results = resp.Results
	}
	notify := c.onUpdate
	c.mu.Unlock()

	if notify != nil {
		notify()
	}
	return err
}

func (c *SearchController) Results() []models.SearchResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.SearchResult(nil), c.results...)
}

func (c *SearchController) LastResponse() *models.SearchResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

func (c *SearchController) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *SearchController) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}
