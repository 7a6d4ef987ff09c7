package research

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/copymill/copymill/pkg/config"
)

// Client is an HTTP wrapper around the keyword research API (DataForSEO wire
// shape: POST with a task array, basic auth, per-task cost accounting). It is
// a process-wide singleton safe for concurrent use.
type Client struct {
	cfg        *config.ResearchConfig
	httpClient *http.Client
	cache      *cache
}

var _ Source = (*Client)(nil)

// NewClient creates a research client from config. Credentials are read from
// the configured environment variables at call time, so a missing login only
// fails requests, not startup.
func NewClient(cfg *config.ResearchConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cache:      newCache(cfg.CacheTTL, cfg.CacheSize),
	}
}

// HasCredentials reports whether both credential variables are set. Used for
// the startup warning; requests without credentials fail with HTTP 401.
func (c *Client) HasCredentials() bool {
	return os.Getenv(c.cfg.LoginEnv) != "" && os.Getenv(c.cfg.PasswordEnv) != ""
}

// apiEnvelope is the common response wrapper: one task per request, with the
// billed cost and a result array.
type apiEnvelope struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Tasks         []struct {
		Cost          float64           `json:"cost"`
		StatusCode    int               `json:"status_code"`
		StatusMessage string            `json:"status_message"`
		Result        []json.RawMessage `json:"result"`
	} `json:"tasks"`
}

const apiStatusOK = 20000

// post sends one task to an API path and returns the first task's results
// plus its billed cost.
func (c *Client) post(ctx context.Context, path string, task any) ([]json.RawMessage, float64, error) {
	payload, err := json.Marshal([]any{task})
	if err != nil {
		return nil, 0, fmt.Errorf("marshal task: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimSuffix(c.cfg.BaseURL, "/")+path, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(os.Getenv(c.cfg.LoginEnv), os.Getenv(c.cfg.PasswordEnv))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("research API %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, 0, fmt.Errorf("read response from %s: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("research API %s returned HTTP %d", path, resp.StatusCode)
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, 0, fmt.Errorf("decode response from %s: %w", path, err)
	}
	if envelope.StatusCode != apiStatusOK {
		return nil, 0, fmt.Errorf("research API %s: %d %s", path, envelope.StatusCode, envelope.StatusMessage)
	}
	if len(envelope.Tasks) == 0 {
		return nil, 0, fmt.Errorf("research API %s: empty task list", path)
	}

	task0 := envelope.Tasks[0]
	if task0.StatusCode != apiStatusOK {
		return nil, task0.Cost, fmt.Errorf("research API %s task: %d %s", path, task0.StatusCode, task0.StatusMessage)
	}
	return task0.Result, task0.Cost, nil
}

// keywordOverviewItem is one keyword metrics row.
type keywordOverviewItem struct {
	Keyword      string `json:"keyword"`
	KeywordInfo  *struct {
		SearchVolume int     `json:"search_volume"`
		CPC          float64 `json:"cpc"`
		Competition  float64 `json:"competition"`
	} `json:"keyword_info"`
	KeywordProperties *struct {
		KeywordDifficulty int `json:"keyword_difficulty"`
	} `json:"keyword_properties"`
	SearchIntentInfo *struct {
		MainIntent string `json:"main_intent"`
	} `json:"search_intent_info"`
}

// KeywordOverview fetches search metrics for one or more keywords.
func (c *Client) KeywordOverview(ctx context.Context, keywords []string) (map[string]KeywordMetrics, float64, error) {
	results, cost, err := c.post(ctx, "/v3/dataforseo_labs/google/keyword_overview/live", map[string]any{
		"keywords":      keywords,
		"language_code": "en",
		"location_code": 2840,
	})
	if err != nil {
		return nil, cost, err
	}

	metrics := make(map[string]KeywordMetrics, len(keywords))
	for _, raw := range results {
		var page struct {
			Items []keywordOverviewItem `json:"items"`
		}
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, cost, fmt.Errorf("decode keyword overview: %w", err)
		}
		for _, item := range page.Items {
			m := KeywordMetrics{}
			if item.KeywordInfo != nil {
				m.SearchVolume = item.KeywordInfo.SearchVolume
				m.CPC = item.KeywordInfo.CPC
				m.Competition = item.KeywordInfo.Competition
			}
			if item.KeywordProperties != nil {
				m.Difficulty = item.KeywordProperties.KeywordDifficulty
			}
			if item.SearchIntentInfo != nil {
				m.Intent = item.SearchIntentInfo.MainIntent
			}
			metrics[item.Keyword] = m
		}
	}
	return metrics, cost, nil
}

// serpItem is one SERP entry; type discriminates organic results from
// people-also-ask blocks.
type serpItem struct {
	Type        string `json:"type"`
	RankAbsolute int   `json:"rank_absolute"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Items       []struct {
		Title string `json:"title"`
	} `json:"items"`
}

// SERP fetches organic results and people-also-ask questions for a keyword.
func (c *Client) SERP(ctx context.Context, keyword string, depth int) ([]SERPResult, []string, float64, error) {
	results, cost, err := c.post(ctx, "/v3/serp/google/organic/live/advanced", map[string]any{
		"keyword":       keyword,
		"language_code": "en",
		"location_code": 2840,
		"depth":         depth,
	})
	if err != nil {
		return nil, nil, cost, err
	}

	var organic []SERPResult
	var paa []string
	for _, raw := range results {
		var page struct {
			Items []serpItem `json:"items"`
		}
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, nil, cost, fmt.Errorf("decode SERP: %w", err)
		}
		for _, item := range page.Items {
			switch item.Type {
			case "organic":
				if len(organic) >= depth {
					continue
				}
				organic = append(organic, SERPResult{
					Position:    item.RankAbsolute,
					URL:         item.URL,
					Title:       item.Title,
					Description: item.Description,
				})
			case "people_also_ask":
				for _, q := range item.Items {
					if q.Title != "" {
						paa = append(paa, q.Title)
					}
				}
			}
		}
	}
	return organic, paa, cost, nil
}

// keywordList decodes endpoints whose items carry a keyword (related
// keywords, suggestions).
func (c *Client) keywordList(ctx context.Context, path, keyword string, limit int) ([]string, float64, error) {
	results, cost, err := c.post(ctx, path, map[string]any{
		"keyword":       keyword,
		"language_code": "en",
		"location_code": 2840,
		"limit":         limit,
	})
	if err != nil {
		return nil, cost, err
	}

	var keywords []string
	for _, raw := range results {
		var page struct {
			Items []struct {
				Keyword     string `json:"keyword"`
				KeywordData *struct {
					Keyword string `json:"keyword"`
				} `json:"keyword_data"`
			} `json:"items"`
		}
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, cost, fmt.Errorf("decode keyword list from %s: %w", path, err)
		}
		for _, item := range page.Items {
			kw := item.Keyword
			if kw == "" && item.KeywordData != nil {
				kw = item.KeywordData.Keyword
			}
			if kw != "" && kw != keyword && len(keywords) < limit {
				keywords = append(keywords, kw)
			}
		}
	}
	return keywords, cost, nil
}

// RelatedKeywords fetches keywords semantically related to the seed keyword.
func (c *Client) RelatedKeywords(ctx context.Context, keyword string, limit int) ([]string, float64, error) {
	return c.keywordList(ctx, "/v3/dataforseo_labs/google/related_keywords/live", keyword, limit)
}

// KeywordSuggestions fetches long-tail variants containing the seed keyword.
func (c *Client) KeywordSuggestions(ctx context.Context, keyword string, limit int) ([]string, float64, error) {
	return c.keywordList(ctx, "/v3/dataforseo_labs/google/keyword_suggestions/live", keyword, limit)
}

// SearchIntent classifies the dominant intent for a keyword.
func (c *Client) SearchIntent(ctx context.Context, keyword string) (string, float64, error) {
	results, cost, err := c.post(ctx, "/v3/dataforseo_labs/google/search_intent/live", map[string]any{
		"keywords":      []string{keyword},
		"language_code": "en",
	})
	if err != nil {
		return "", cost, err
	}

	for _, raw := range results {
		var page struct {
			Items []struct {
				KeywordIntent *struct {
					Label string `json:"label"`
				} `json:"keyword_intent"`
			} `json:"items"`
		}
		if err := json.Unmarshal(raw, &page); err != nil {
			return "", cost, fmt.Errorf("decode search intent: %w", err)
		}
		for _, item := range page.Items {
			if item.KeywordIntent != nil && item.KeywordIntent.Label != "" {
				return item.KeywordIntent.Label, cost, nil
			}
		}
	}
	return "", cost, nil
}

// PerformResearch aggregates all endpoints for one keyword. Results are
// cached per keyword; partial upstream failures in the auxiliary calls
// (related, suggestions, intent) degrade to empty lists rather than failing
// the pipeline, since the SERP and metrics carry the research agent.
func (c *Client) PerformResearch(ctx context.Context, keyword string, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	cacheKey := fmt.Sprintf("%s|%d|%d|%d", strings.ToLower(keyword), opts.SERPDepth, opts.RelatedLimit, opts.SuggestionsLimit)
	if cached, ok := c.cache.get(cacheKey); ok {
		return cached, nil
	}

	result := &Result{
		Keyword:            keyword,
		SERPResults:        []SERPResult{},
		PAAQuestions:       []string{},
		RelatedKeywords:    []string{},
		KeywordSuggestions: []string{},
	}

	metrics, cost, err := c.KeywordOverview(ctx, []string{keyword})
	result.TotalCost += cost
	if err != nil {
		return nil, fmt.Errorf("keyword overview: %w", err)
	}
	if m, ok := metrics[keyword]; ok {
		result.KeywordData = m
	}

	organic, paa, cost, err := c.SERP(ctx, keyword, opts.SERPDepth)
	result.TotalCost += cost
	if err != nil {
		return nil, fmt.Errorf("serp: %w", err)
	}
	result.SERPResults = organic
	result.PAAQuestions = paa

	if related, cost, err := c.RelatedKeywords(ctx, keyword, opts.RelatedLimit); err == nil {
		result.RelatedKeywords = related
		result.TotalCost += cost
	}
	if suggestions, cost, err := c.KeywordSuggestions(ctx, keyword, opts.SuggestionsLimit); err == nil {
		result.KeywordSuggestions = suggestions
		result.TotalCost += cost
	}
	if result.KeywordData.Intent == "" {
		if intent, cost, err := c.SearchIntent(ctx, keyword); err == nil {
			result.KeywordData.Intent = intent
			result.TotalCost += cost
		}
	}

	c.cache.set(cacheKey, result)
	return result, nil
}
