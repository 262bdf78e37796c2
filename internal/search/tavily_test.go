package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NiteeshPutla/investment-analysis-deep-agent/internal/config"
)

func tavilyConfig(endpoint string) *config.TavilyConfig {
	return &config.TavilyConfig{
		APIKey:   "test-key",
		Endpoint: endpoint,
		Depth:    "basic",
		Timeout:  5 * time.Second,
	}
}

func TestTavilySearch(t *testing.T) {
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/search", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [
				{"title": "Acme Q3 results", "url": "https://example.com/q3", "content": "revenue up", "score": 0.91},
				{"title": "Acme balance sheet", "url": "https://example.com/bs", "content": "cash strong", "score": 0.84}
			]
		}`))
	}))
	defer ts.Close()

	tavily := NewTavily(tavilyConfig(ts.URL))
	results, err := tavily.Search(context.Background(), Query{Query: "Acme Corp financials"})
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotBody["api_key"])
	assert.Equal(t, "Acme Corp financials", gotBody["query"])
	assert.Equal(t, "basic", gotBody["search_depth"])
	assert.Equal(t, float64(7), gotBody["max_results"], "default result count should apply")
	assert.Equal(t, "finance", gotBody["topic"], "default topic should apply")

	require.Len(t, results, 2)
	assert.Equal(t, "Acme Q3 results", results[0].Title)
	assert.Equal(t, "https://example.com/q3", results[0].URL)
	assert.Equal(t, "revenue up", results[0].Content)
	assert.InDelta(t, 0.91, results[0].Score, 1e-9)
}

func TestTavilySearchCapsResults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{"results": []map[string]any{
			{"title": "a", "url": "u1", "content": "c"},
			{"title": "b", "url": "u2", "content": "c"},
			{"title": "c", "url": "u3", "content": "c"},
		}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	tavily := NewTavily(tavilyConfig(ts.URL))
	results, err := tavily.Search(context.Background(), Query{Query: "q", MaxResults: 2})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestTavilySearchRetriesRateLimit(t *testing.T) {
	attempts := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"results": [{"title": "t", "url": "u", "content": "c"}]}`))
	}))
	defer ts.Close()

	tavily := NewTavily(tavilyConfig(ts.URL))
	tavily.retryDelay = time.Millisecond

	results, err := tavily.Search(context.Background(), Query{Query: "q"})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Len(t, results, 1)
}

func TestTavilySearchHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	tavily := NewTavily(tavilyConfig(ts.URL))
	_, err := tavily.Search(context.Background(), Query{Query: "q"})
	assert.ErrorContains(t, err, "tavily http 500")
}

func TestTavilySearchMissingKey(t *testing.T) {
	cfg := tavilyConfig("http://unused")
	cfg.APIKey = "  "
	tavily := NewTavily(cfg)

	_, err := tavily.Search(context.Background(), Query{Query: "q"})
	assert.ErrorContains(t, err, "API key is missing")
}
