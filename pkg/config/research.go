package config

import "time"

// ResearchConfig holds settings for the keyword research data source.
type ResearchConfig struct {
	// BaseURL of the research API
	BaseURL string `yaml:"base_url"`

	// Environment variable names for the API credentials (basic auth)
	LoginEnv    string `yaml:"login_env"`
	PasswordEnv string `yaml:"password_env"`

	// Timeout for a single research API call
	Timeout time.Duration `yaml:"timeout"`

	// CacheTTL bounds how long keyword research responses are reused
	CacheTTL time.Duration `yaml:"cache_ttl"`

	// CacheSize caps the number of cached keyword entries
	CacheSize int `yaml:"cache_size"`
}

// DefaultResearchConfig returns the built-in research defaults.
func DefaultResearchConfig() *ResearchConfig {
	return &ResearchConfig{
		BaseURL:     "https://api.dataforseo.com",
		LoginEnv:    "SEO_API_LOGIN",
		PasswordEnv: "SEO_API_PASSWORD",
		Timeout:     30 * time.Second,
		CacheTTL:    15 * time.Minute,
		CacheSize:   256,
	}
}
