package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Annomy111/foerder-finder/internal/client/controllers"
)

// runSearch executes "search <query...>" or "quick <query...>". The REPL
// submits whole lines, so the query runs immediately instead of waiting
// for the debounce window.
func (a *App) runSearch(ctx context.Context, mode controllers.SearchMode, args []string) {
	query := strings.Join(args, " ")
	if len([]rune(query)) < controllers.MinQueryLength {
		fmt.Fprintf(a.out, "Query must be at least %d characters.\n", controllers.MinQueryLength)
		return
	}

	a.search.SetMode(mode)
	a.search.SetQuery(ctx, query)
	if err := a.search.SearchNow(ctx); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	resp := a.search.LastResponse()
	if resp == nil || len(resp.Results) == 0 {
		fmt.Fprintln(a.out, "No results.")
		return
	}

	for i, result := range resp.Results {
		text := result.Text
		if runes := []rune(text); len(runes) > 160 {
			text = string(runes[:160]) + "..."
		}
		fmt.Fprintf(a.out, "%2d. [%.2f] %s\n    %s\n", i+1, result.Score, result.FundingID, text)
	}
	fmt.Fprintf(a.out, "%d results in %.0f ms\n", resp.TotalResults, resp.RetrievalTimeMs)
	if len(resp.ExpandedQueries) > 0 {
		fmt.Fprintln(a.out, "Expanded queries:", strings.Join(resp.ExpandedQueries, "; "))
	}
}

// searchHealth prints the state of the backend search index.
func (a *App) searchHealth(ctx context.Context) {
	health, err := a.api.Search.Health(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintf(a.out, "Status: %s, %d chunks indexed\n", health.Status, health.CollectionCount)
	fmt.Fprintf(a.out, "Embedder: %s, Reranker: %s\n", health.EmbedderModel, health.RerankerModel)
}
