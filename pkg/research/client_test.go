package research

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/pkg/config"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	t.Setenv("SEO_API_LOGIN", "login")
	t.Setenv("SEO_API_PASSWORD", "password")

	cfg := config.DefaultResearchConfig()
	cfg.BaseURL = server.URL
	cfg.Timeout = 5 * time.Second
	return NewClient(cfg), server
}

func envelope(results ...any) map[string]any {
	raw := make([]any, 0, len(results))
	raw = append(raw, results...)
	return map[string]any{
		"status_code": 20000,
		"tasks": []map[string]any{
			{"status_code": 20000, "cost": 0.01, "result": raw},
		},
	}
}

// researchHandler serves canned responses for every endpoint PerformResearch hits.
func researchHandler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	write := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(v))
	}

	mux.HandleFunc("/v3/dataforseo_labs/google/keyword_overview/live", func(w http.ResponseWriter, r *http.Request) {
		if _, _, ok := r.BasicAuth(); !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		write(w, envelope(map[string]any{
			"items": []map[string]any{{
				"keyword": "concrete driveway cost",
				"keyword_info": map[string]any{
					"search_volume": 8100,
					"cpc":           4.25,
					"competition":   0.42,
				},
				"keyword_properties": map[string]any{"keyword_difficulty": 38},
				"search_intent_info": map[string]any{"main_intent": "commercial"},
			}},
		}))
	})
	mux.HandleFunc("/v3/serp/google/organic/live/advanced", func(w http.ResponseWriter, _ *http.Request) {
		write(w, envelope(map[string]any{
			"items": []map[string]any{
				{"type": "organic", "rank_absolute": 1, "url": "https://a.example/post", "title": "Driveway Cost Guide", "description": "How much..."},
				{"type": "organic", "rank_absolute": 2, "url": "https://b.example/post", "title": "Concrete Pricing", "description": "Prices..."},
				{"type": "people_also_ask", "items": []map[string]any{
					{"title": "How thick should a concrete driveway be?"},
					{"title": "Is concrete cheaper than asphalt?"},
				}},
			},
		}))
	})
	mux.HandleFunc("/v3/dataforseo_labs/google/related_keywords/live", func(w http.ResponseWriter, _ *http.Request) {
		write(w, envelope(map[string]any{
			"items": []map[string]any{
				{"keyword_data": map[string]any{"keyword": "driveway paving cost"}},
				{"keyword_data": map[string]any{"keyword": "concrete slab price"}},
			},
		}))
	})
	mux.HandleFunc("/v3/dataforseo_labs/google/keyword_suggestions/live", func(w http.ResponseWriter, _ *http.Request) {
		write(w, envelope(map[string]any{
			"items": []map[string]any{
				{"keyword": "concrete driveway cost per square foot"},
			},
		}))
	})
	mux.HandleFunc("/v3/dataforseo_labs/google/search_intent/live", func(w http.ResponseWriter, _ *http.Request) {
		write(w, envelope(map[string]any{
			"items": []map[string]any{
				{"keyword_intent": map[string]any{"label": "commercial"}},
			},
		}))
	})
	return mux
}

func TestPerformResearch_Aggregates(t *testing.T) {
	client, _ := newTestClient(t, researchHandler(t))

	result, err := client.PerformResearch(context.Background(), "concrete driveway cost", Options{})
	require.NoError(t, err)

	assert.Equal(t, "concrete driveway cost", result.Keyword)
	assert.Equal(t, 8100, result.KeywordData.SearchVolume)
	assert.Equal(t, 38, result.KeywordData.Difficulty)
	assert.Equal(t, "commercial", result.KeywordData.Intent)
	assert.InDelta(t, 4.25, result.KeywordData.CPC, 0.001)

	require.Len(t, result.SERPResults, 2)
	assert.Equal(t, "https://a.example/post", result.SERPResults[0].URL)
	assert.Equal(t, []string{
		"How thick should a concrete driveway be?",
		"Is concrete cheaper than asphalt?",
	}, result.PAAQuestions)
	assert.Equal(t, []string{"driveway paving cost", "concrete slab price"}, result.RelatedKeywords)
	assert.Equal(t, []string{"concrete driveway cost per square foot"}, result.KeywordSuggestions)

	// overview + serp + related + suggestions (intent already known from overview)
	assert.InDelta(t, 0.04, result.TotalCost, 0.001)
}

func TestPerformResearch_CachesByKeyword(t *testing.T) {
	var calls atomic.Int64
	inner := researchHandler(t)
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		inner.ServeHTTP(w, r)
	}))

	_, err := client.PerformResearch(context.Background(), "concrete driveway cost", Options{})
	require.NoError(t, err)
	first := calls.Load()

	_, err = client.PerformResearch(context.Background(), "concrete driveway cost", Options{})
	require.NoError(t, err)
	assert.Equal(t, first, calls.Load(), "second call should be served from cache")
}

func TestPerformResearch_SERPFailureFailsCall(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v3/dataforseo_labs/google/keyword_overview/live", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(envelope(map[string]any{"items": []map[string]any{}}))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	client, _ := newTestClient(t, mux)

	_, err := client.PerformResearch(context.Background(), "kw", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "serp")
}

func TestPerformResearch_AuxiliaryFailureDegrades(t *testing.T) {
	inner := researchHandler(t).(*http.ServeMux)
	mux := http.NewServeMux()
	mux.HandleFunc("/v3/dataforseo_labs/google/keyword_overview/live", inner.ServeHTTP)
	mux.HandleFunc("/v3/serp/google/organic/live/advanced", inner.ServeHTTP)
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	client, _ := newTestClient(t, mux)

	result, err := client.PerformResearch(context.Background(), "concrete driveway cost", Options{})
	require.NoError(t, err)
	assert.Empty(t, result.RelatedKeywords)
	assert.Empty(t, result.KeywordSuggestions)
	assert.Len(t, result.SERPResults, 2)
}

func TestPost_TaskErrorSurfaces(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"status_code":20000,"tasks":[{"status_code":40101,"status_message":"Auth error","cost":0}]}`)
	}))

	_, _, err := client.KeywordOverview(context.Background(), []string{"kw"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40101")
}
