// Package seodata talks to a DataForSEO-compatible keyword and SERP API.
// Requests are JSON arrays of task objects; responses come wrapped in the
// provider's {tasks: [{result: [...]}]} envelope, decoded here into
// explicit typed structs with an explicit empty-result branch.
package seodata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"seoscope/internal/models"
)

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://api.dataforseo.com/v3"

// ErrNoResult is returned when the provider answers successfully but the
// task carries no result rows. Callers must branch on it rather than
// treating an empty slice as data.
var ErrNoResult = errors.New("provider returned no result")

// ErrNotConfigured is returned when no provider credentials exist and the
// environment does not permit the mock.
var ErrNotConfigured = errors.New("seo data provider not configured")

// KeywordMetrics is one keyword row from the provider.
type KeywordMetrics struct {
	Keyword      string  `json:"keyword"`
	SearchVolume int     `json:"search_volume"`
	Difficulty   int     `json:"difficulty"` // 0-100
	CPC          float64 `json:"cpc"`
}

// Provider is the surface the handlers and jobs consume. Client implements
// it against the real API; Mock implements it for development mode.
type Provider interface {
	KeywordMetrics(ctx context.Context, keywords []string, language, country string) ([]KeywordMetrics, error)
	Competitors(ctx context.Context, keyword, language, country string) ([]models.CompetitorRow, error)
}

// Client calls the provider over HTTP with basic auth.
type Client struct {
	httpClient *http.Client
	baseURL    string
	login      string
	password   string
}

// NewClient creates a provider client. An empty baseURL falls back to the
// production endpoint.
func NewClient(baseURL, login, password string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		login:      login,
		password:   password,
	}
}

// envelope is the provider's outer response shape.
type envelope[T any] struct {
	StatusCode    int       `json:"status_code"`
	StatusMessage string    `json:"status_message"`
	Tasks         []task[T] `json:"tasks"`
}

type task[T any] struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Tag           string `json:"tag"`
	Result        []T    `json:"result"`
}

// keywordResult is one row of the keyword metrics endpoint.
type keywordResult struct {
	Keyword      string  `json:"keyword"`
	SearchVolume int     `json:"search_volume"`
	Competition  float64 `json:"competition"` // 0..1
	CPC          float64 `json:"cpc"`
}

// serpResult is one result block of the SERP endpoint.
type serpResult struct {
	Keyword string     `json:"keyword"`
	Items   []serpItem `json:"items"`
}

type serpItem struct {
	RankAbsolute int    `json:"rank_absolute"`
	Domain       string `json:"domain"`
	URL          string `json:"url"`
	Title        string `json:"title"`
}

// KeywordMetrics fetches search volume, competition, and CPC for keywords.
func (c *Client) KeywordMetrics(ctx context.Context, keywords []string, language, country string) ([]KeywordMetrics, error) {
	payload := []map[string]any{{
		"keywords":      keywords,
		"language_code": language,
		"location_name": country,
		"tag":           uuid.NewString(),
	}}

	var env envelope[keywordResult]
	if err := c.post(ctx, "/keywords_data/google_ads/search_volume/live", payload, &env); err != nil {
		return nil, err
	}

	rows, err := firstTaskResult(env)
	if err != nil {
		return nil, err
	}

	metrics := make([]KeywordMetrics, 0, len(rows))
	for _, r := range rows {
		metrics = append(metrics, KeywordMetrics{
			Keyword:      r.Keyword,
			SearchVolume: r.SearchVolume,
			Difficulty:   int(r.Competition * 100),
			CPC:          r.CPC,
		})
	}
	return metrics, nil
}

// Competitors fetches the top organic SERP entries for a keyword.
func (c *Client) Competitors(ctx context.Context, keyword, language, country string) ([]models.CompetitorRow, error) {
	payload := []map[string]any{{
		"keyword":       keyword,
		"language_code": language,
		"location_name": country,
		"depth":         10,
		"tag":           uuid.NewString(),
	}}

	var env envelope[serpResult]
	if err := c.post(ctx, "/serp/google/organic/live/regular", payload, &env); err != nil {
		return nil, err
	}

	results, err := firstTaskResult(env)
	if err != nil {
		return nil, err
	}
	if len(results[0].Items) == 0 {
		return nil, ErrNoResult
	}

	rows := make([]models.CompetitorRow, 0, len(results[0].Items))
	for _, item := range results[0].Items {
		rows = append(rows, models.CompetitorRow{
			Position: item.RankAbsolute,
			Domain:   item.Domain,
			URL:      item.URL,
			Title:    item.Title,
			Score:    rankScore(item.RankAbsolute),
		})
	}
	return rows, nil
}

// post sends one task array and decodes the envelope.
func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.login, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("provider request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// firstTaskResult unwraps the envelope down to the first task's result rows,
// converting every flavor of "nothing there" into ErrNoResult.
func firstTaskResult[T any](env envelope[T]) ([]T, error) {
	if len(env.Tasks) == 0 {
		return nil, ErrNoResult
	}
	t := env.Tasks[0]
	if t.StatusCode != 0 && t.StatusCode != 20000 {
		// The tag is the one we stamped on the outgoing task, echoed back by
		// the provider. It ties a failure to the request log line.
		if t.Tag != "" {
			return nil, fmt.Errorf("provider task failed: %d %s (tag %s)", t.StatusCode, t.StatusMessage, t.Tag)
		}
		return nil, fmt.Errorf("provider task failed: %d %s", t.StatusCode, t.StatusMessage)
	}
	if len(t.Result) == 0 {
		return nil, ErrNoResult
	}
	return t.Result, nil
}

// rankScore converts a SERP position into a 0-100 comparison score.
func rankScore(position int) int {
	if position < 1 {
		return 0
	}
	score := 100 - (position-1)*10
	if score < 10 {
		score = 10
	}
	return score
}
