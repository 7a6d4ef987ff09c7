package config

import "time"

// RetentionConfig controls background cleanup of old data.
type RetentionConfig struct {
	// JobRetentionDays is how long terminal jobs (and their steps and
	// evaluations, via cascade) are kept after completion. Zero disables
	// job purging.
	JobRetentionDays int `yaml:"job_retention_days"`

	// SystemLogTTL is how long system log rows are kept.
	// Zero disables log purging.
	SystemLogTTL time.Duration `yaml:"system_log_ttl"`

	// CleanupInterval is how often the cleanup service runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		JobRetentionDays: 90,
		SystemLogTTL:     30 * 24 * time.Hour,
		CleanupInterval:  1 * time.Hour,
	}
}
