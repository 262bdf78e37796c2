package search

import "context"

// Result is a single item returned by a search provider.
type Result struct {
	Title      string  `json:"title"`
	URL        string  `json:"url"`
	Content    string  `json:"content"`
	RawContent string  `json:"raw_content,omitempty"`
	Score      float64 `json:"score,omitempty"`
}

// Query describes one search request. Zero values for the optional fields
// mean the provider's defaults apply.
type Query struct {
	Query             string `json:"query"`
	MaxResults        int    `json:"max_results,omitempty"`
	Topic             string `json:"topic,omitempty"`
	IncludeRawContent bool   `json:"include_raw_content,omitempty"`
}

// Provider executes a web search.
type Provider interface {
	Search(ctx context.Context, q Query) ([]Result, error)
}
