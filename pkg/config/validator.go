package config

import "fmt"

// ConfigValidator validates configuration comprehensively with clear error
// messages.
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast, stops at first error).
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateServer(); err != nil {
		return fmt.Errorf("server validation failed: %w", err)
	}
	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}
	if err := v.validateLLM(); err != nil {
		return fmt.Errorf("llm validation failed: %w", err)
	}
	if err := v.validateResearch(); err != nil {
		return fmt.Errorf("research validation failed: %w", err)
	}
	if err := v.validateQA(); err != nil {
		return fmt.Errorf("qa validation failed: %w", err)
	}
	if err := v.validateDefaults(); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}
	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}
	return nil
}

func (v *ConfigValidator) validateServer() error {
	s := v.cfg.Server
	if s.Port < 1 || s.Port > 65535 {
		return NewValidationError("server", "", "port", fmt.Errorf("%w: %d", ErrInvalidValue, s.Port))
	}
	if s.RunnerSecretEnv == "" {
		return NewValidationError("server", "", "runner_secret_env", ErrMissingRequiredField)
	}
	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue
	if q.WorkerCount < 1 {
		return NewValidationError("queue", "", "worker_count", fmt.Errorf("must be at least 1"))
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue", "", "poll_interval", fmt.Errorf("must be positive"))
	}
	if q.PollIntervalJitter < 0 || q.PollIntervalJitter >= q.PollInterval {
		return NewValidationError("queue", "", "poll_interval_jitter",
			fmt.Errorf("must be in [0, poll_interval)"))
	}
	if q.JobTimeout <= 0 {
		return NewValidationError("queue", "", "job_timeout", fmt.Errorf("must be positive"))
	}
	if q.HeartbeatInterval <= 0 || q.HeartbeatInterval >= q.JobTimeout {
		return NewValidationError("queue", "", "heartbeat_interval",
			fmt.Errorf("must be in (0, job_timeout)"))
	}
	if q.StuckSweepInterval <= 0 {
		return NewValidationError("queue", "", "stuck_sweep_interval", fmt.Errorf("must be positive"))
	}
	if !q.StuckJobPolicy.IsValid() {
		return NewValidationError("queue", "", "stuck_job_policy",
			fmt.Errorf("%w: %s", ErrInvalidValue, q.StuckJobPolicy))
	}
	if q.GracefulShutdownTimeout <= 0 {
		return NewValidationError("queue", "", "graceful_shutdown_timeout", fmt.Errorf("must be positive"))
	}
	return nil
}

func (v *ConfigValidator) validateLLM() error {
	l := v.cfg.LLM
	if len(l.Providers) == 0 {
		return NewValidationError("llm", "", "providers", fmt.Errorf("at least one provider required"))
	}
	for name, provider := range l.Providers {
		if !provider.Type.IsValid() {
			return NewValidationError("llm_provider", name, "type",
				fmt.Errorf("%w: %s", ErrInvalidValue, provider.Type))
		}
		if provider.APIKeyEnv == "" {
			return NewValidationError("llm_provider", name, "api_key_env", ErrMissingRequiredField)
		}
		if provider.BaseURL == "" {
			return NewValidationError("llm_provider", name, "base_url", ErrMissingRequiredField)
		}
	}
	for model, pricing := range l.Pricing {
		if pricing.InputPer1M < 0 || pricing.OutputPer1M < 0 {
			return NewValidationError("llm_pricing", model, "",
				fmt.Errorf("prices must not be negative"))
		}
	}
	if l.Retry.MaxRetries < 0 {
		return NewValidationError("llm", "", "retry.max_retries", fmt.Errorf("must not be negative"))
	}
	if l.Retry.BaseDelay <= 0 {
		return NewValidationError("llm", "", "retry.base_delay", fmt.Errorf("must be positive"))
	}
	if l.StreamingThresholdTokens < 1 {
		return NewValidationError("llm", "", "streaming_threshold_tokens", fmt.Errorf("must be at least 1"))
	}
	return nil
}

func (v *ConfigValidator) validateResearch() error {
	r := v.cfg.Research
	if r.BaseURL == "" {
		return NewValidationError("research", "", "base_url", ErrMissingRequiredField)
	}
	if r.LoginEnv == "" || r.PasswordEnv == "" {
		return NewValidationError("research", "", "login_env", ErrMissingRequiredField)
	}
	if r.Timeout <= 0 {
		return NewValidationError("research", "", "timeout", fmt.Errorf("must be positive"))
	}
	if r.CacheTTL < 0 {
		return NewValidationError("research", "", "cache_ttl", fmt.Errorf("must not be negative"))
	}
	if r.CacheSize < 1 {
		return NewValidationError("research", "", "cache_size", fmt.Errorf("must be at least 1"))
	}
	return nil
}

func (v *ConfigValidator) validateQA() error {
	q := v.cfg.QA
	if q.PassThreshold < 0 || q.PassThreshold > 100 {
		return NewValidationError("qa", "", "pass_threshold", fmt.Errorf("must be in [0,100]"))
	}
	if q.CriticalPenalty < 0 || q.HighPenalty < 0 {
		return NewValidationError("qa", "", "penalties", fmt.Errorf("must not be negative"))
	}
	return nil
}

func (v *ConfigValidator) validateDefaults() error {
	d := v.cfg.Defaults
	// The feedback loop bound mirrors the per-job validation range.
	if d.MaxIterations < 1 || d.MaxIterations > 10 {
		return NewValidationError("defaults", "", "max_iterations", fmt.Errorf("must be in [1,10]"))
	}
	if d.TargetWordCount < 300 || d.TargetWordCount > 5000 {
		return NewValidationError("defaults", "", "target_word_count", fmt.Errorf("must be in [300,5000]"))
	}
	return nil
}

func (v *ConfigValidator) validateRetention() error {
	r := v.cfg.Retention
	if r.JobRetentionDays < 0 {
		return NewValidationError("retention", "", "job_retention_days", fmt.Errorf("must not be negative"))
	}
	if r.SystemLogTTL < 0 {
		return NewValidationError("retention", "", "system_log_ttl", fmt.Errorf("must not be negative"))
	}
	if r.CleanupInterval <= 0 {
		return NewValidationError("retention", "", "cleanup_interval", fmt.Errorf("must be positive"))
	}
	return nil
}
