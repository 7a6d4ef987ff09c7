// Package research wraps the keyword research data source: keyword metrics,
// SERP analysis with "people also ask" extraction, related keywords and
// suggestions, and search intent, aggregated by PerformResearch for the
// research agent. Responses are cached in memory with a TTL.
package research

import "context"

// KeywordMetrics are the search metrics for one keyword.
type KeywordMetrics struct {
	SearchVolume int     `json:"searchVolume"`
	Difficulty   int     `json:"difficulty"`
	CPC          float64 `json:"cpc"`
	Intent       string  `json:"intent"`
	Competition  float64 `json:"competition"`
}

// SERPResult is one organic search result.
type SERPResult struct {
	Position    int    `json:"position"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Result is the aggregated research for one keyword.
type Result struct {
	Keyword            string         `json:"keyword"`
	KeywordData        KeywordMetrics `json:"keywordData"`
	SERPResults        []SERPResult   `json:"serpResults"`
	PAAQuestions       []string       `json:"paaQuestions"`
	RelatedKeywords    []string       `json:"relatedKeywords"`
	KeywordSuggestions []string       `json:"keywordSuggestions"`
	TotalCost          float64        `json:"totalCost"`
}

// Options tune the composite research call.
type Options struct {
	SERPDepth        int
	RelatedLimit     int
	SuggestionsLimit int
}

func (o Options) withDefaults() Options {
	if o.SERPDepth <= 0 {
		o.SERPDepth = 10
	}
	if o.RelatedLimit <= 0 {
		o.RelatedLimit = 20
	}
	if o.SuggestionsLimit <= 0 {
		o.SuggestionsLimit = 20
	}
	return o
}

// Source is the research capability handed to the research agent. *Client is
// the production implementation; tests substitute scripted fakes.
type Source interface {
	PerformResearch(ctx context.Context, keyword string, opts Options) (*Result, error)
}
