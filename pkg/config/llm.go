package config

import (
	"fmt"
	"sync"
	"time"
)

// ProviderConfig defines one LLM vendor endpoint.
type ProviderConfig struct {
	// Provider type (required)
	Type ProviderType `yaml:"type"`

	// Environment variable name holding the API key
	APIKeyEnv string `yaml:"api_key_env"`

	// Optional custom endpoint base URL
	BaseURL string `yaml:"base_url,omitempty"`

	// Request timeout for a single completion call
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// ModelPricing holds USD prices per million tokens.
type ModelPricing struct {
	InputPer1M  float64 `yaml:"input_per_1m"`
	OutputPer1M float64 `yaml:"output_per_1m"`
}

// RetryConfig controls the LLM retry wrapper.
type RetryConfig struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int `yaml:"max_retries"`

	// BaseDelay is the starting backoff delay; grows exponentially with
	// full jitter.
	BaseDelay time.Duration `yaml:"base_delay"`

	// MaxDelay caps a single backoff interval.
	MaxDelay time.Duration `yaml:"max_delay"`
}

// LLMConfig groups all LLM-related settings.
type LLMConfig struct {
	// Providers maps vendor key (persona.provider) to endpoint config.
	Providers map[string]*ProviderConfig `yaml:"providers"`

	// Pricing maps model name (or prefix) to per-token prices. Unknown
	// models cost 0 and log a warning.
	Pricing map[string]ModelPricing `yaml:"pricing"`

	// Retry wraps every completion call.
	Retry RetryConfig `yaml:"retry"`

	// StreamingThresholdTokens forces the streaming path when a request's
	// max_tokens exceeds it.
	StreamingThresholdTokens int `yaml:"streaming_threshold_tokens"`
}

// DefaultLLMConfig returns the built-in LLM defaults: the two stock vendors,
// a pricing table for their common models, and the retry policy.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Providers: map[string]*ProviderConfig{
			"openai": {
				Type:      ProviderTypeOpenAI,
				APIKeyEnv: "OPENAI_API_KEY",
				BaseURL:   "https://api.openai.com/v1",
				Timeout:   120 * time.Second,
			},
			"anthropic": {
				Type:      ProviderTypeAnthropic,
				APIKeyEnv: "ANTHROPIC_API_KEY",
				BaseURL:   "https://api.anthropic.com",
				Timeout:   120 * time.Second,
			},
		},
		Pricing: map[string]ModelPricing{
			"gpt-4o":            {InputPer1M: 2.50, OutputPer1M: 10.00},
			"gpt-4o-mini":       {InputPer1M: 0.15, OutputPer1M: 0.60},
			"gpt-4-turbo":       {InputPer1M: 10.00, OutputPer1M: 30.00},
			"claude-3-5-sonnet": {InputPer1M: 3.00, OutputPer1M: 15.00},
			"claude-3-5-haiku":  {InputPer1M: 0.80, OutputPer1M: 4.00},
			"claude-3-opus":     {InputPer1M: 15.00, OutputPer1M: 75.00},
		},
		Retry: RetryConfig{
			MaxRetries: 3,
			BaseDelay:  1 * time.Second,
			MaxDelay:   30 * time.Second,
		},
		StreamingThresholdTokens: 8000,
	}
}

// ProviderRegistry stores provider configurations with thread-safe access.
type ProviderRegistry struct {
	providers map[string]*ProviderConfig
	mu        sync.RWMutex
}

// NewProviderRegistry creates a provider registry from a config map.
func NewProviderRegistry(providers map[string]*ProviderConfig) *ProviderRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*ProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &ProviderRegistry{providers: copied}
}

// Get retrieves a provider configuration by name (thread-safe).
func (r *ProviderRegistry) Get(name string) (*ProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotFound, name)
	}
	return provider, nil
}

// Has checks if a provider exists in the registry (thread-safe).
func (r *ProviderRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.providers[name]
	return exists
}

// GetAll returns all provider configurations (thread-safe, returns copy).
func (r *ProviderRegistry) GetAll() map[string]*ProviderConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*ProviderConfig, len(r.providers))
	for k, v := range r.providers {
		result[k] = v
	}
	return result
}

// Len returns the number of providers in the registry (thread-safe).
func (r *ProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
