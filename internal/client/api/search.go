package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Annomy111/foerder-finder/internal/client/models"
)

// SearchService talks to the semantic search backend. The retrieval
// pipeline itself (embeddings, expansion, reranking) lives server-side;
// this module only encodes the wire contract.
type SearchService struct {
	service
}

// SearchRequest is the advanced-mode payload.
type SearchRequest struct {
	Query         string `json:"query"`
	TopK          int    `json:"top_k"`
	Region        string `json:"region,omitempty"`
	FundingID     string `json:"funding_id,omitempty"`
	ExpandQueries bool   `json:"expand_queries"`
	RerankResults bool   `json:"rerank_results"`
}

// Search runs the full RAG pipeline.
func (s *SearchService) Search(ctx context.Context, req SearchRequest) (*models.SearchResponse, error) {
	var out models.SearchResponse
	if err := s.client.do(ctx, http.MethodPost, "search/", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// QuickSearch is the fast mode: no query expansion, no reranking.
func (s *SearchService) QuickSearch(ctx context.Context, query string, limit int) (*models.SearchResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var out models.SearchResponse
	if err := s.client.do(ctx, http.MethodGet, "search/quick", params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health reports the state of the backend search index.
func (s *SearchService) Health(ctx context.Context) (*models.RAGHealth, error) {
	var out models.RAGHealth
	if err := s.client.do(ctx, http.MethodGet, "search/health", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
