package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/copymill/copymill/pkg/config"
	"github.com/copymill/copymill/pkg/jsonrepair"
	"github.com/copymill/copymill/pkg/metrics"
)

// The directive appended to every GenerateJSON system prompt.
const jsonDirective = "Respond with valid JSON only, no code fences, no prose."

const (
	defaultProvider        = "openai"
	defaultJSONTemperature = 0.3
	defaultJSONRetries     = 2
)

// Client routes completion requests to configured vendor transports. It is a
// process-wide singleton, safe for concurrent use, and holds no per-job state.
type Client struct {
	cfg      *config.LLMConfig
	vendors  map[string]vendor
	unpriced sync.Map
}

var _ Provider = (*Client)(nil)

// NewClient builds vendor transports for every configured provider. Missing
// API keys are logged, not fatal: calls against that provider fail with
// AuthFailed when attempted.
func NewClient(cfg *config.LLMConfig) (*Client, error) {
	vendors := make(map[string]vendor, len(cfg.Providers))
	for name, pc := range cfg.Providers {
		switch pc.Type {
		case config.ProviderTypeOpenAI:
			vendors[name] = newOpenAIVendor(name, pc)
		case config.ProviderTypeAnthropic:
			vendors[name] = newAnthropicVendor(name, pc)
		default:
			return nil, fmt.Errorf("provider %q: unsupported type %q", name, pc.Type)
		}
		if os.Getenv(pc.APIKeyEnv) == "" {
			slog.Warn("provider API key not set", "provider", name, "env", pc.APIKeyEnv)
		}
	}
	return &Client{cfg: cfg, vendors: vendors}, nil
}

func (c *Client) resolveVendor(name string) (vendor, string, error) {
	if name == "" {
		name = defaultProvider
	}
	v, ok := c.vendors[name]
	if !ok {
		return nil, name, fmt.Errorf("%w: %s", config.ErrProviderNotFound, name)
	}
	return v, name, nil
}

// Complete runs a text completion. Requests whose maxTokens exceeds the
// streaming threshold take the streaming path even without a chunk callback,
// since upstreams may require it for long generations.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error) {
	forceStream := c.cfg.StreamingThresholdTokens > 0 && req.MaxTokens > c.cfg.StreamingThresholdTokens
	return c.run(ctx, req, nil, forceStream)
}

// Stream runs a completion over the streaming path, delivering deltas to
// onChunk as they arrive. onChunk may be nil.
func (c *Client) Stream(ctx context.Context, req CompletionRequest, onChunk OnChunk) (*CompletionResult, error) {
	return c.run(ctx, req, onChunk, true)
}

func (c *Client) run(ctx context.Context, req CompletionRequest, onChunk OnChunk, streaming bool) (*CompletionResult, error) {
	v, providerName, err := c.resolveVendor(req.Provider)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var result *CompletionResult
	err = WithRetry(ctx, c.cfg.Retry, func() error {
		var callErr error
		if streaming {
			result, callErr = v.stream(ctx, req, onChunk)
		} else {
			result, callErr = v.complete(ctx, req)
		}
		return callErr
	})
	duration := time.Since(start)

	if err != nil {
		metrics.ObserveLLMRequest(providerName, req.Model, "error", duration)
		return nil, err
	}

	// Some compatible endpoints omit usage; estimate so accounting never
	// reports zero for real work.
	if result.Usage.TotalTokens == 0 {
		result.Usage.PromptTokens = estimateRequestTokens(req)
		result.Usage.CompletionTokens = EstimateTokens(result.Content)
		result.Usage.TotalTokens = result.Usage.PromptTokens + result.Usage.CompletionTokens
	}
	result.CostUSD = c.CalculateCost(req.Model, result.Usage)

	metrics.ObserveLLMRequest(providerName, req.Model, "success", duration)
	metrics.ObserveLLMUsage(providerName, req.Model, result.Usage.PromptTokens, result.Usage.CompletionTokens, result.CostUSD)

	if result.Truncated() {
		slog.Warn("completion truncated at max tokens",
			"provider", providerName,
			"model", req.Model,
			"completion_tokens", result.Usage.CompletionTokens)
	}
	return result, nil
}

// GenerateJSON asks for a completion, repairs the output, and validates it
// against req.Schema. Repair or validation failures trigger fresh calls up
// to req.MaxRetries; the last validation error surfaces if all fail. The
// returned result always carries the usage and cost accumulated across
// attempts, even on error.
func (c *Client) GenerateJSON(ctx context.Context, req JSONRequest) (*JSONResult, error) {
	maxRetries := req.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultJSONRetries
	}
	temperature := req.Temperature
	if temperature == nil {
		t := defaultJSONTemperature
		temperature = &t
	}

	systemPrompt := jsonDirective
	if req.SystemPrompt != "" {
		systemPrompt = strings.TrimSpace(req.SystemPrompt) + "\n\n" + jsonDirective
	}

	result := &JSONResult{}
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			slog.Warn("retrying JSON generation",
				"schema", req.Schema.Name(),
				"attempt", attempt+1,
				"error", lastErr)
		}

		completion, err := c.Complete(ctx, CompletionRequest{
			Provider:     req.Provider,
			Model:        req.Model,
			Messages:     []Message{{Role: RoleUser, Content: req.Prompt}},
			SystemPrompt: systemPrompt,
			Temperature:  temperature,
			MaxTokens:    req.MaxTokens,
		})
		if err != nil {
			return result, err
		}
		result.Usage = result.Usage.Add(completion.Usage)
		result.CostUSD += completion.CostUSD
		result.Model = completion.Model

		repaired := json.RawMessage(jsonrepair.Repair(completion.Content))
		if !json.Valid(repaired) {
			lastErr = fmt.Errorf("response is not valid JSON after repair")
			continue
		}
		if err := req.Schema.Validate(repaired); err != nil {
			lastErr = err
			continue
		}

		result.Value = repaired
		return result, nil
	}

	return result, fmt.Errorf("%s generation failed after %d attempts: %w",
		req.Schema.Name(), maxRetries+1, lastErr)
}
