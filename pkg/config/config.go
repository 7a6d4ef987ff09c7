package config

// Config is the umbrella configuration object returned by Initialize() and
// used throughout the application.
type Config struct {
	configPath string // YAML file path actually loaded ("" if defaults only)

	Server    *ServerConfig
	Queue     *QueueConfig
	LLM       *LLMConfig
	Research  *ResearchConfig
	QA        *QAConfig
	Defaults  *Defaults
	Retention *RetentionConfig

	// ProviderRegistry resolves persona.provider keys to endpoint configs.
	ProviderRegistry *ProviderRegistry
}

// Stats contains statistics about loaded configuration
type Stats struct {
	Providers     int
	PricedModels  int
	WorkerCount   int
	MaxIterations int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.ProviderRegistry != nil {
		s.Providers = c.ProviderRegistry.Len()
	}
	if c.LLM != nil {
		s.PricedModels = len(c.LLM.Pricing)
	}
	if c.Queue != nil {
		s.WorkerCount = c.Queue.WorkerCount
	}
	if c.Defaults != nil {
		s.MaxIterations = c.Defaults.MaxIterations
	}
	return s
}

// ConfigPath returns the configuration file path ("" when running on
// built-in defaults).
func (c *Config) ConfigPath() string {
	return c.configPath
}

// GetProvider retrieves an LLM provider configuration by name.
// Convenience wrapper over ProviderRegistry.Get().
func (c *Config) GetProvider(name string) (*ProviderConfig, error) {
	return c.ProviderRegistry.Get(name)
}
