package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTestConfig returns a fully valid config for mutation in tests.
func validTestConfig() *Config {
	llm := DefaultLLMConfig()
	return &Config{
		Server:           DefaultServerConfig(),
		Queue:            DefaultQueueConfig(),
		LLM:              llm,
		Research:         DefaultResearchConfig(),
		QA:               DefaultQAConfig(),
		Defaults:         DefaultDefaults(),
		Retention:        DefaultRetentionConfig(),
		ProviderRegistry: NewProviderRegistry(llm.Providers),
	}
}

func TestValidateAll_Defaults(t *testing.T) {
	cfg := validTestConfig()
	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateAll_Failures(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		contains string
	}{
		{
			name:     "port out of range",
			mutate:   func(c *Config) { c.Server.Port = 0 },
			contains: "port",
		},
		{
			name:     "zero workers",
			mutate:   func(c *Config) { c.Queue.WorkerCount = 0 },
			contains: "worker_count",
		},
		{
			name:     "jitter not below poll interval",
			mutate:   func(c *Config) { c.Queue.PollIntervalJitter = 2 * time.Second },
			contains: "poll_interval_jitter",
		},
		{
			name:     "heartbeat slower than job timeout",
			mutate:   func(c *Config) { c.Queue.HeartbeatInterval = time.Hour },
			contains: "heartbeat_interval",
		},
		{
			name:     "unknown stuck job policy",
			mutate:   func(c *Config) { c.Queue.StuckJobPolicy = "discard" },
			contains: "stuck_job_policy",
		},
		{
			name:     "no providers",
			mutate:   func(c *Config) { c.LLM.Providers = nil },
			contains: "providers",
		},
		{
			name: "provider with bad type",
			mutate: func(c *Config) {
				c.LLM.Providers["bad"] = &ProviderConfig{Type: "vertexai", APIKeyEnv: "X", BaseURL: "http://x"}
			},
			contains: "type",
		},
		{
			name: "provider missing api key env",
			mutate: func(c *Config) {
				c.LLM.Providers["bad"] = &ProviderConfig{Type: ProviderTypeOpenAI, BaseURL: "http://x"}
			},
			contains: "api_key_env",
		},
		{
			name:     "negative pricing",
			mutate:   func(c *Config) { c.LLM.Pricing["m"] = ModelPricing{InputPer1M: -1} },
			contains: "llm_pricing",
		},
		{
			name:     "zero streaming threshold",
			mutate:   func(c *Config) { c.LLM.StreamingThresholdTokens = 0 },
			contains: "streaming_threshold_tokens",
		},
		{
			name:     "research base url missing",
			mutate:   func(c *Config) { c.Research.BaseURL = "" },
			contains: "base_url",
		},
		{
			name:     "qa threshold above 100",
			mutate:   func(c *Config) { c.QA.PassThreshold = 101 },
			contains: "pass_threshold",
		},
		{
			name:     "max iterations above bound",
			mutate:   func(c *Config) { c.Defaults.MaxIterations = 11 },
			contains: "max_iterations",
		},
		{
			name:     "target word count below bound",
			mutate:   func(c *Config) { c.Defaults.TargetWordCount = 100 },
			contains: "target_word_count",
		},
		{
			name:     "negative job retention",
			mutate:   func(c *Config) { c.Retention.JobRetentionDays = -1 },
			contains: "job_retention_days",
		},
		{
			name:     "zero cleanup interval",
			mutate:   func(c *Config) { c.Retention.CleanupInterval = 0 },
			contains: "cleanup_interval",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)
			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestProviderTypeIsValid(t *testing.T) {
	assert.True(t, ProviderTypeOpenAI.IsValid())
	assert.True(t, ProviderTypeAnthropic.IsValid())
	assert.False(t, ProviderType("google").IsValid())
	assert.False(t, ProviderType("").IsValid())
}

func TestStuckJobPolicyIsValid(t *testing.T) {
	assert.True(t, StuckJobPolicyRequeue.IsValid())
	assert.True(t, StuckJobPolicyFail.IsValid())
	assert.False(t, StuckJobPolicy("retry").IsValid())
}
