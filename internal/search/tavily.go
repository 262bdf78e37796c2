package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/NiteeshPutla/investment-analysis-deep-agent/internal/config"
)

const (
	defaultMaxResults = 7
	defaultTopic      = "finance"
)

// Tavily calls the Tavily search API.
type Tavily struct {
	cfg    *config.TavilyConfig
	client *http.Client

	// initial delay before retrying a rate-limited request
	retryDelay time.Duration
}

// NewTavily constructs a Tavily search provider.
func NewTavily(cfg *config.TavilyConfig) *Tavily {
	return &Tavily{
		cfg:        cfg,
		client:     &http.Client{Timeout: cfg.Timeout},
		retryDelay: 1 * time.Second,
	}
}

// Search posts a query to Tavily. Rate-limited responses (429) are retried
// with a doubling delay capped at 30 s; any other non-200 status is an error.
func (t *Tavily) Search(ctx context.Context, q Query) ([]Result, error) {
	if strings.TrimSpace(t.cfg.APIKey) == "" {
		return nil, errors.New("tavily: API key is missing")
	}
	if q.MaxResults <= 0 {
		q.MaxResults = defaultMaxResults
	}
	if q.Topic == "" {
		q.Topic = defaultTopic
	}

	body := map[string]any{
		"query":               q.Query,
		"api_key":             t.cfg.APIKey,
		"search_depth":        t.cfg.Depth,
		"max_results":         q.MaxResults,
		"topic":               q.Topic,
		"include_raw_content": q.IncludeRawContent,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	var resp *http.Response
	delay := t.retryDelay
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.cfg.Endpoint+"/search", bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err = t.client.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			break
		}
		resp.Body.Close()

		// Back off and retry on 429, doubling the delay each time up to 30 s.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		if delay < 30*time.Second {
			delay *= 2
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily http %d", resp.StatusCode)
	}

	var response struct {
		Results []struct {
			Title      string  `json:"title"`
			URL        string  `json:"url"`
			Content    string  `json:"content"`
			RawContent string  `json:"raw_content"`
			Score      float64 `json:"score"`
		} `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(response.Results))
	for _, r := range response.Results {
		results = append(results, Result{
			Title:      r.Title,
			URL:        r.URL,
			Content:    r.Content,
			RawContent: r.RawContent,
			Score:      r.Score,
		})
		if len(results) >= q.MaxResults {
			break
		}
	}
	return results, nil
}
