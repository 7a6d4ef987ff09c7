package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how jobs are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker slots per replica/pod. It doubles
	// as the per-pod concurrency cap: at most this many jobs run at once.
	WorkerCount int `yaml:"worker_count"`

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// JobTimeout is the maximum time a job can stay in processing before
	// the sweeper treats it as stuck.
	JobTimeout time.Duration `yaml:"job_timeout"`

	// HeartbeatInterval is how often a claiming worker refreshes
	// jobs.heartbeat_at while a job runs.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// StuckSweepInterval is how often to scan for stuck jobs.
	StuckSweepInterval time.Duration `yaml:"stuck_sweep_interval"`

	// StuckJobPolicy decides whether stuck jobs are requeued or failed.
	StuckJobPolicy StuckJobPolicy `yaml:"stuck_job_policy"`

	// GracefulShutdownTimeout is the max time to wait for active jobs to
	// finish their current agent during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      250 * time.Millisecond,
		JobTimeout:              30 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		StuckSweepInterval:      1 * time.Minute,
		StuckJobPolicy:          StuckJobPolicyRequeue,
		GracefulShutdownTimeout: 30 * time.Second,
	}
}
