package config

// QAConfig holds quality gate settings.
type QAConfig struct {
	// PassThreshold is the minimum overall score for QA to pass (paired
	// with a no-critical-issues requirement).
	PassThreshold int `yaml:"pass_threshold"`

	// Penalties subtracted from the dimension mean per open issue.
	CriticalPenalty int `yaml:"critical_penalty"`
	HighPenalty     int `yaml:"high_penalty"`
}

// DefaultQAConfig returns the built-in quality gate defaults.
func DefaultQAConfig() *QAConfig {
	return &QAConfig{
		PassThreshold:   70,
		CriticalPenalty: 15,
		HighPenalty:     5,
	}
}
