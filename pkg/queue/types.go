// Package queue provides the job queue worker pool: claiming pending jobs
// from the store, running them through the orchestrator, heartbeating, and
// recovering jobs abandoned by crashed workers.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/copymill/copymill/ent"
	"github.com/copymill/copymill/ent/job"
	"github.com/copymill/copymill/pkg/orchestrator"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no pending jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the concurrent job limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// JobExecutor runs a claimed job to a terminal status. The executor owns all
// job-row writes after the claim, including the terminal transition; the
// worker only claims, heartbeats, and reports. Satisfied by
// orchestrator.Executor.
type JobExecutor interface {
	Execute(ctx context.Context, j *ent.Job) *orchestrator.Result
}

// JobStore is the store surface the queue needs. Satisfied by
// services.JobService.
type JobStore interface {
	ClaimNextPendingJob(ctx context.Context, podID string) (*ent.Job, error)
	Heartbeat(ctx context.Context, jobID string) error
	CountByStatus(ctx context.Context, status job.Status) (int, error)
	CountProcessingForPod(ctx context.Context, podID string) (int, error)
	FinishJob(ctx context.Context, jobID string, status job.Status, lastError string) error
	FindStuckJobs(ctx context.Context, timeout time.Duration) ([]*ent.Job, error)
	ResetStuckJob(ctx context.Context, jobID string, toStatus job.Status, reason string) (bool, error)
	ListProcessingJobsByPod(ctx context.Context, podID string) ([]*ent.Job, error)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy      bool           `json:"is_healthy"`
	DBReachable    bool           `json:"db_reachable"`
	DBError        string         `json:"db_error,omitempty"`
	PodID          string         `json:"pod_id"`
	ActiveWorkers  int            `json:"active_workers"`
	TotalWorkers   int            `json:"total_workers"`
	ActiveJobs     int            `json:"active_jobs"`
	MaxConcurrent  int            `json:"max_concurrent"`
	QueueDepth     int            `json:"queue_depth"`
	WorkerStats    []WorkerHealth `json:"worker_stats"`
	LastStuckSweep time.Time      `json:"last_stuck_sweep"`
	StuckRecovered int            `json:"stuck_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
