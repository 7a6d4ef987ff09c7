package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used when COPYMILL_CONFIG is unset. A missing file at
// this path is not an error; the built-in defaults apply.
const DefaultConfigPath = "config/copymill.yaml"

// CopymillYAMLConfig represents the complete copymill.yaml file structure.
type CopymillYAMLConfig struct {
	Server    *ServerConfig    `yaml:"server"`
	Queue     *QueueConfig     `yaml:"queue"`
	LLM       *LLMYAMLConfig   `yaml:"llm"`
	Research  *ResearchConfig  `yaml:"research"`
	QA        *QAConfig        `yaml:"qa"`
	Defaults  *Defaults        `yaml:"defaults"`
	Retention *RetentionConfig `yaml:"retention"`
}

// LLMYAMLConfig is the llm section as written in YAML. Provider and pricing
// entries replace built-ins wholesale; retry fields merge over defaults.
type LLMYAMLConfig struct {
	Providers                map[string]ProviderConfig `yaml:"providers"`
	Pricing                  map[string]ModelPricing   `yaml:"pricing"`
	Retry                    *RetryConfig              `yaml:"retry"`
	StreamingThresholdTokens int                       `yaml:"streaming_threshold_tokens"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Read the YAML file (optional unless explicitly named)
//  2. Expand {{.VAR}} environment references
//  3. Merge user values over built-in defaults
//  4. Apply environment variable overrides for deploy-critical knobs
//  5. Validate everything
func Initialize(ctx context.Context, configPath string) (*Config, error) {
	explicit := configPath != ""
	if !explicit {
		configPath = DefaultConfigPath
	}
	log := slog.With("config_path", configPath)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configPath, explicit)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"providers", stats.Providers,
		"priced_models", stats.PricedModels,
		"worker_count", stats.WorkerCount,
		"default_max_iterations", stats.MaxIterations)

	return cfg, nil
}

// load is the internal loader (not exported).
func load(_ context.Context, configPath string, required bool) (*Config, error) {
	var yamlCfg CopymillYAMLConfig

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		data = ExpandEnv(data)
		if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
			return nil, NewLoadError(configPath, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
		}
	case os.IsNotExist(err) && !required:
		slog.Info("No config file found, using built-in defaults", "path", configPath)
		configPath = ""
	case os.IsNotExist(err):
		return nil, NewLoadError(configPath, ErrConfigNotFound)
	default:
		return nil, NewLoadError(configPath, err)
	}

	// Merge each section over its built-in defaults; non-zero user values
	// win, unset values keep the default.
	serverCfg := DefaultServerConfig()
	if yamlCfg.Server != nil {
		if err := mergo.Merge(serverCfg, yamlCfg.Server, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge server config: %w", err)
		}
	}

	queueCfg := DefaultQueueConfig()
	if yamlCfg.Queue != nil {
		if err := mergo.Merge(queueCfg, yamlCfg.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	researchCfg := DefaultResearchConfig()
	if yamlCfg.Research != nil {
		if err := mergo.Merge(researchCfg, yamlCfg.Research, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge research config: %w", err)
		}
	}

	qaCfg := DefaultQAConfig()
	if yamlCfg.QA != nil {
		if err := mergo.Merge(qaCfg, yamlCfg.QA, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge qa config: %w", err)
		}
	}

	defaults := DefaultDefaults()
	if yamlCfg.Defaults != nil {
		if err := mergo.Merge(defaults, yamlCfg.Defaults, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge defaults: %w", err)
		}
	}

	retentionCfg := DefaultRetentionConfig()
	if yamlCfg.Retention != nil {
		if err := mergo.Merge(retentionCfg, yamlCfg.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	llmCfg := DefaultLLMConfig()
	if yamlCfg.LLM != nil {
		llmCfg.Providers = mergeProviders(llmCfg.Providers, yamlCfg.LLM.Providers)
		llmCfg.Pricing = mergePricing(llmCfg.Pricing, yamlCfg.LLM.Pricing)
		if yamlCfg.LLM.Retry != nil {
			retry := llmCfg.Retry
			if err := mergo.Merge(&retry, yamlCfg.LLM.Retry, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("failed to merge llm retry config: %w", err)
			}
			llmCfg.Retry = retry
		}
		if yamlCfg.LLM.StreamingThresholdTokens > 0 {
			llmCfg.StreamingThresholdTokens = yamlCfg.LLM.StreamingThresholdTokens
		}
	}

	// User-provided providers may omit the request timeout.
	for _, provider := range llmCfg.Providers {
		if provider.Timeout == 0 {
			provider.Timeout = 120 * time.Second
		}
	}

	return &Config{
		configPath:       configPath,
		Server:           serverCfg,
		Queue:            queueCfg,
		LLM:              llmCfg,
		Research:         researchCfg,
		QA:               qaCfg,
		Defaults:         defaults,
		Retention:        retentionCfg,
		ProviderRegistry: NewProviderRegistry(llmCfg.Providers),
	}, nil
}

// applyEnvOverrides applies deploy-critical environment variables on top of
// the merged configuration. Invalid values are logged and skipped.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Server.Port = port
		} else {
			slog.Warn("Ignoring invalid PORT override", "value", v)
		}
	}

	if v := os.Getenv("MAX_CONCURRENT_JOBS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Queue.WorkerCount = n
		} else {
			slog.Warn("Ignoring invalid MAX_CONCURRENT_JOBS override", "value", v)
		}
	}

	if v := os.Getenv("JOB_TIMEOUT_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Queue.JobTimeout = time.Duration(n) * time.Minute
		} else {
			slog.Warn("Ignoring invalid JOB_TIMEOUT_MINUTES override", "value", v)
		}
	}
}

// validate performs comprehensive validation on loaded configuration.
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}
