package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/pkg/config"
)

func testLLMConfig(baseURL string, providerType config.ProviderType) *config.LLMConfig {
	return &config.LLMConfig{
		Providers: map[string]*config.ProviderConfig{
			"test": {
				Type:      providerType,
				APIKeyEnv: "TEST_LLM_KEY",
				BaseURL:   baseURL,
				Timeout:   5 * time.Second,
			},
		},
		Pricing: map[string]config.ModelPricing{
			"gpt-4o":      {InputPer1M: 2.50, OutputPer1M: 10.00},
			"gpt-4o-mini": {InputPer1M: 0.15, OutputPer1M: 0.60},
		},
		Retry: config.RetryConfig{
			MaxRetries: 2,
			BaseDelay:  time.Millisecond,
			MaxDelay:   5 * time.Millisecond,
		},
		StreamingThresholdTokens: 8000,
	}
}

func newTestClient(t *testing.T, baseURL string, providerType config.ProviderType) *Client {
	t.Helper()
	t.Setenv("TEST_LLM_KEY", "sk-test-0123456789abcdef")
	client, err := NewClient(testLLMConfig(baseURL, providerType))
	require.NoError(t, err)
	return client
}

func openAIChatResponse(content string, promptTokens, completionTokens int, finishReason string) map[string]any {
	return map[string]any{
		"model": "gpt-4o",
		"choices": []map[string]any{{
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finishReason,
		}},
		"usage": map[string]any{
			"prompt_tokens":     promptTokens,
			"completion_tokens": completionTokens,
			"total_tokens":      promptTokens + completionTokens,
		},
	}
}

func TestClient_Complete_OpenAI(t *testing.T) {
	var gotReq chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test-0123456789abcdef", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(openAIChatResponse("The article body.", 120, 40, "stop"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.ProviderTypeOpenAI)
	temp := 0.7
	result, err := client.Complete(context.Background(), CompletionRequest{
		Provider:     "test",
		Model:        "gpt-4o",
		SystemPrompt: "You are a writer.",
		Messages:     []Message{{Role: RoleUser, Content: "Write about Go."}},
		Temperature:  &temp,
		MaxTokens:    2048,
	})
	require.NoError(t, err)

	assert.Equal(t, "The article body.", result.Content)
	assert.Equal(t, StopReasonStop, result.StopReason)
	assert.Equal(t, 160, result.Usage.TotalTokens)
	// 120 prompt tokens at $2.50/1M plus 40 completion at $10.00/1M
	assert.InDelta(t, 120*2.50/1e6+40*10.00/1e6, result.CostUSD, 1e-9)

	assert.False(t, gotReq.Stream)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "You are a writer.", gotReq.Messages[0].Content)
	require.NotNil(t, gotReq.MaxTokens)
	assert.Equal(t, 2048, *gotReq.MaxTokens)
}

func TestClient_Complete_RetriesRateLimit(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"rate limit exceeded"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(openAIChatResponse("ok", 10, 5, "stop"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.ProviderTypeOpenAI)
	result, err := client.Complete(context.Background(), CompletionRequest{
		Provider: "test",
		Model:    "gpt-4o",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Content)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_Complete_AuthFailureNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.ProviderTypeOpenAI)
	_, err := client.Complete(context.Background(), CompletionRequest{
		Provider: "test",
		Model:    "gpt-4o",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.Error(t, err)

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrKindAuthFailed, pe.Kind)
	assert.Contains(t, pe.Message, "invalid api key")
	assert.Equal(t, int32(1), calls.Load(), "auth failures must not retry")
}

func TestClient_Complete_UnknownProvider(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:1", config.ProviderTypeOpenAI)
	_, err := client.Complete(context.Background(), CompletionRequest{
		Provider: "nonexistent",
		Model:    "gpt-4o",
	})
	require.ErrorIs(t, err, config.ErrProviderNotFound)
}

func openAIStreamHandler(t *testing.T, wantStream bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if wantStream {
			assert.Equal(t, true, req["stream"])
		}

		w.Header().Set("Content-Type", "text/event-stream")
		chunks := []string{
			`{"model":"gpt-4o","choices":[{"delta":{"content":"Hello"}}]}`,
			`{"choices":[{"delta":{"content":" world"},"finish_reason":"stop"}]}`,
			`{"choices":[],"usage":{"prompt_tokens":10,"completion_tokens":2,"total_tokens":12}}`,
		}
		for _, c := range chunks {
			fmt.Fprintf(w, "data: %s\n\n", c)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}
}

func TestClient_Stream_OpenAI(t *testing.T) {
	server := httptest.NewServer(openAIStreamHandler(t, true))
	defer server.Close()

	client := newTestClient(t, server.URL, config.ProviderTypeOpenAI)
	var deltas []string
	result, err := client.Stream(context.Background(), CompletionRequest{
		Provider: "test",
		Model:    "gpt-4o",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	}, func(chunk StreamChunk) {
		deltas = append(deltas, chunk.Delta)
	})
	require.NoError(t, err)

	assert.Equal(t, "Hello world", result.Content)
	assert.Equal(t, []string{"Hello", " world"}, deltas)
	assert.Equal(t, 12, result.Usage.TotalTokens)
	assert.Equal(t, StopReasonStop, result.StopReason)
}

func TestClient_Complete_ForcesStreamingAboveThreshold(t *testing.T) {
	server := httptest.NewServer(openAIStreamHandler(t, true))
	defer server.Close()

	t.Setenv("TEST_LLM_KEY", "sk-test-0123456789abcdef")
	cfg := testLLMConfig(server.URL, config.ProviderTypeOpenAI)
	cfg.StreamingThresholdTokens = 100
	client, err := NewClient(cfg)
	require.NoError(t, err)

	result, err := client.Complete(context.Background(), CompletionRequest{
		Provider:  "test",
		Model:     "gpt-4o",
		Messages:  []Message{{Role: RoleUser, Content: "hi"}},
		MaxTokens: 101,
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello world", result.Content)
}

func TestClient_Stream_Anthropic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "sk-test-0123456789abcdef", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))

		var req anthropicRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.Stream)
		assert.Equal(t, "Be brief.", req.System)

		w.Header().Set("Content-Type", "text/event-stream")
		events := []string{
			`{"type":"message_start","message":{"model":"claude-3-5-sonnet-20241022","usage":{"input_tokens":25}}}`,
			`{"type":"content_block_delta","delta":{"type":"text_delta","text":"Short"}}`,
			`{"type":"content_block_delta","delta":{"type":"text_delta","text":" answer."}}`,
			`{"type":"message_delta","delta":{"stop_reason":"end_turn"},"usage":{"output_tokens":4}}`,
			`{"type":"message_stop"}`,
		}
		for _, e := range events {
			fmt.Fprintf(w, "data: %s\n\n", e)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.ProviderTypeAnthropic)
	result, err := client.Stream(context.Background(), CompletionRequest{
		Provider:     "test",
		Model:        "claude-3-5-sonnet-20241022",
		SystemPrompt: "Be brief.",
		Messages:     []Message{{Role: RoleUser, Content: "hi"}},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Short answer.", result.Content)
	assert.Equal(t, 25, result.Usage.PromptTokens)
	assert.Equal(t, 4, result.Usage.CompletionTokens)
	assert.Equal(t, 29, result.Usage.TotalTokens)
	assert.Equal(t, StopReasonStop, result.StopReason)
}

func TestClient_Complete_Anthropic_Truncated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"model":       "claude-3-5-haiku-20241022",
			"content":     []map[string]any{{"type": "text", "text": "cut off mid"}},
			"stop_reason": "max_tokens",
			"usage":       map[string]any{"input_tokens": 10, "output_tokens": 100},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.ProviderTypeAnthropic)
	result, err := client.Complete(context.Background(), CompletionRequest{
		Provider:  "test",
		Model:     "claude-3-5-haiku-20241022",
		Messages:  []Message{{Role: RoleUser, Content: "hi"}},
		MaxTokens: 100,
	})
	require.NoError(t, err)
	assert.True(t, result.Truncated())
	assert.Equal(t, StopReasonMaxTokens, result.StopReason)
}

type fieldSchema struct {
	field string
}

func (s fieldSchema) Name() string { return "TestOutput" }

func (s fieldSchema) Validate(raw json.RawMessage) error {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return err
	}
	if _, ok := m[s.field]; !ok {
		return fmt.Errorf("missing required field %q", s.field)
	}
	return nil
}

func TestClient_GenerateJSON(t *testing.T) {
	var gotReq chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		fenced := "```json\n{\"title\":\"Go Routines\",\"words\":1200,}\n```"
		_ = json.NewEncoder(w).Encode(openAIChatResponse(fenced, 200, 80, "stop"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.ProviderTypeOpenAI)
	result, err := client.GenerateJSON(context.Background(), JSONRequest{
		Provider:     "test",
		Model:        "gpt-4o",
		Prompt:       "Write the article.",
		SystemPrompt: "You are a writer.",
		Schema:       fieldSchema{field: "title"},
	})
	require.NoError(t, err)

	var out struct {
		Title string `json:"title"`
		Words int    `json:"words"`
	}
	require.NoError(t, json.Unmarshal(result.Value, &out))
	assert.Equal(t, "Go Routines", out.Title)
	assert.Equal(t, 1200, out.Words)
	assert.Equal(t, 280, result.Usage.TotalTokens)
	assert.Greater(t, result.CostUSD, 0.0)

	require.Len(t, gotReq.Messages, 2)
	assert.Contains(t, gotReq.Messages[0].Content, "Respond with valid JSON only")
	assert.Contains(t, gotReq.Messages[0].Content, "You are a writer.")
	require.NotNil(t, gotReq.Temperature)
	assert.InDelta(t, 0.3, *gotReq.Temperature, 1e-9)
}

func TestClient_GenerateJSON_RetriesOnSchemaFailure(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		content := `{"wrong":"shape"}`
		if calls.Add(1) > 1 {
			content = `{"title":"fixed"}`
		}
		_ = json.NewEncoder(w).Encode(openAIChatResponse(content, 50, 10, "stop"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.ProviderTypeOpenAI)
	result, err := client.GenerateJSON(context.Background(), JSONRequest{
		Provider: "test",
		Model:    "gpt-4o",
		Prompt:   "go",
		Schema:   fieldSchema{field: "title"},
	})
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.JSONEq(t, `{"title":"fixed"}`, string(result.Value))
	assert.Equal(t, 120, result.Usage.TotalTokens, "usage accumulates across attempts")
}

func TestClient_GenerateJSON_SurfacesLastValidationError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_ = json.NewEncoder(w).Encode(openAIChatResponse(`{"wrong":"shape"}`, 30, 5, "stop"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.ProviderTypeOpenAI)
	result, err := client.GenerateJSON(context.Background(), JSONRequest{
		Provider:   "test",
		Model:      "gpt-4o",
		Prompt:     "go",
		Schema:     fieldSchema{field: "title"},
		MaxRetries: 1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required field")
	assert.Contains(t, err.Error(), "after 2 attempts")
	assert.Equal(t, int32(2), calls.Load())
	assert.Nil(t, result.Value)
	assert.Equal(t, 70, result.Usage.TotalTokens, "usage reported even on failure")
}

func TestClient_CalculateCost(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:1", config.ProviderTypeOpenAI)
	usage := Usage{PromptTokens: 1_000_000, CompletionTokens: 1_000_000}

	t.Run("exact match", func(t *testing.T) {
		assert.InDelta(t, 2.50+10.00, client.CalculateCost("gpt-4o", usage), 1e-9)
	})
	t.Run("longest prefix wins", func(t *testing.T) {
		assert.InDelta(t, 0.15+0.60, client.CalculateCost("gpt-4o-mini-2024-07-18", usage), 1e-9)
	})
	t.Run("dated variant uses base pricing", func(t *testing.T) {
		assert.InDelta(t, 2.50+10.00, client.CalculateCost("gpt-4o-2024-08-06", usage), 1e-9)
	})
	t.Run("unknown model is free", func(t *testing.T) {
		assert.Zero(t, client.CalculateCost("some-local-model", usage))
	})
}

func TestEstimateTokens(t *testing.T) {
	assert.Zero(t, EstimateTokens(""))

	text := strings.Repeat("the quick brown fox jumps over the lazy dog ", 20)
	got := EstimateTokens(text)
	assert.Greater(t, got, 0)
	// Whether the real encoder or the len/4 fallback runs, the estimate
	// stays within a sane band for English prose.
	assert.Less(t, got, len(text))
	assert.Greater(t, got, len(text)/10)
}

func TestClient_EstimateTokens(t *testing.T) {
	// The method must be reachable through the Provider interface.
	var p Provider = newTestClient(t, "http://127.0.0.1:1", config.ProviderTypeOpenAI)
	text := strings.Repeat("the quick brown fox jumps over the lazy dog ", 20)
	assert.Equal(t, EstimateTokens(text), p.EstimateTokens(text))
	assert.Greater(t, p.EstimateTokens(text), 0)
}
