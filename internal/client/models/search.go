package models

import "encoding/json"

// SearchResultMetadata is the subset of chunk metadata the client renders.
type SearchResultMetadata struct {
	Region      string `json:"region,omitempty"`
	Provider    string `json:"provider,omitempty"`
	FundingArea string `json:"funding_area,omitempty"`
}

// SearchResult is one retrieved chunk. Ephemeral: re-fetched per query,
// never persisted.
type SearchResult struct {
	ChunkID   string               `json:"chunk_id"`
	FundingID string               `json:"funding_id"`
	Text      string               `json:"text"`
	Score     float64              `json:"score"`
	Metadata  SearchResultMetadata `json:"metadata"`
}

func (r *SearchResult) UnmarshalJSON(data []byte) error {
	type plain SearchResult
	aux := struct {
		*plain
		ID string `json:"id"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if r.FundingID == "" {
		// Some index revisions only set funding identity in the metadata.
		r.FundingID = ResolveFundingID("", aux.ID, "", "")
	}
	return nil
}

// SearchResponse is the advanced-search envelope.
type SearchResponse struct {
	Query           string          `json:"query"`
	Results         []SearchResult  `json:"results"`
	TotalResults    int             `json:"total_results"`
	RetrievalTimeMs float64         `json:"retrieval_time_ms"`
	ExpandedQueries []string        `json:"expanded_queries,omitempty"`
	PipelineConfig  map[string]bool `json:"pipeline_config,omitempty"`
}

// RAGHealth describes the state of the backend search index.
type RAGHealth struct {
	Status               string `json:"status"`
	CollectionCount      int    `json:"chromadb_collection_count"`
	EmbedderModel        string `json:"embedder_model"`
	RerankerModel        string `json:"reranker_model"`
	QueryExpanderEnabled bool   `json:"query_expander_enabled"`
	CompressionEnabled   bool   `json:"compression_enabled"`
	CRAGEnabled          bool   `json:"crag_enabled"`
}
