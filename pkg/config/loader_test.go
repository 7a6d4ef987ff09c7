package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "copymill.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitialize_DefaultsOnly(t *testing.T) {
	cfg, err := Initialize(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)
	assert.Equal(t, 250*time.Millisecond, cfg.Queue.PollIntervalJitter)
	assert.Equal(t, 30*time.Minute, cfg.Queue.JobTimeout)
	assert.Equal(t, StuckJobPolicyRequeue, cfg.Queue.StuckJobPolicy)
	assert.Equal(t, 5, cfg.Defaults.MaxIterations)
	assert.Equal(t, 1500, cfg.Defaults.TargetWordCount)
	assert.Equal(t, 70, cfg.QA.PassThreshold)
	assert.Equal(t, 8000, cfg.LLM.StreamingThresholdTokens)
	assert.True(t, cfg.ProviderRegistry.Has("openai"))
	assert.True(t, cfg.ProviderRegistry.Has("anthropic"))
}

func TestInitialize_ExplicitMissingPathErrors(t *testing.T) {
	_, err := Initialize(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_YAMLOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
queue:
  worker_count: 2
  job_timeout: 10m
  stuck_job_policy: fail
llm:
  providers:
    local:
      type: openai
      api_key_env: LOCAL_API_KEY
      base_url: http://localhost:11434/v1
  pricing:
    local-model:
      input_per_1m: 0
      output_per_1m: 0
  retry:
    max_retries: 1
qa:
  pass_threshold: 80
defaults:
  max_iterations: 3
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 10*time.Minute, cfg.Queue.JobTimeout)
	assert.Equal(t, StuckJobPolicyFail, cfg.Queue.StuckJobPolicy)
	// Unset queue fields keep defaults
	assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)

	// User provider added next to built-ins
	assert.True(t, cfg.ProviderRegistry.Has("local"))
	assert.True(t, cfg.ProviderRegistry.Has("openai"))
	local, err := cfg.GetProvider("local")
	require.NoError(t, err)
	assert.Equal(t, ProviderTypeOpenAI, local.Type)
	assert.Equal(t, 120*time.Second, local.Timeout, "omitted timeout gets the default")

	// Pricing entry added, built-ins retained
	_, hasBuiltin := cfg.LLM.Pricing["gpt-4o"]
	assert.True(t, hasBuiltin)
	_, hasLocal := cfg.LLM.Pricing["local-model"]
	assert.True(t, hasLocal)

	assert.Equal(t, 1, cfg.LLM.Retry.MaxRetries)
	assert.Equal(t, 1*time.Second, cfg.LLM.Retry.BaseDelay, "unset retry fields keep defaults")

	assert.Equal(t, 80, cfg.QA.PassThreshold)
	assert.Equal(t, 3, cfg.Defaults.MaxIterations)
}

func TestInitialize_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("MAX_CONCURRENT_JOBS", "7")
	t.Setenv("JOB_TIMEOUT_MINUTES", "45")

	cfg, err := Initialize(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 7, cfg.Queue.WorkerCount)
	assert.Equal(t, 45*time.Minute, cfg.Queue.JobTimeout)
}

func TestInitialize_InvalidEnvOverridesIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("MAX_CONCURRENT_JOBS", "-1")

	cfg, err := Initialize(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Queue.WorkerCount)
}

func TestInitialize_EnvExpansionInYAML(t *testing.T) {
	t.Setenv("RESEARCH_BASE", "https://sandbox.dataforseo.com")
	path := writeConfig(t, `
research:
  base_url: "{{.RESEARCH_BASE}}"
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "https://sandbox.dataforseo.com", cfg.Research.BaseURL)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "queue:\n  worker_count: [not an int\n")

	_, err := Initialize(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitialize_ValidationFailure(t *testing.T) {
	path := writeConfig(t, `
defaults:
  max_iterations: 99
`)

	_, err := Initialize(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "max_iterations")
}
