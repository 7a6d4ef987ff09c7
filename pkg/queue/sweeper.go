package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/copymill/copymill/ent"
	"github.com/copymill/copymill/ent/job"
	"github.com/copymill/copymill/pkg/config"
)

// sweepState tracks stuck-job sweeper metrics (thread-safe).
type sweepState struct {
	mu        sync.Mutex
	lastScan  time.Time
	recovered int
}

// runStuckSweeper periodically scans for stuck processing jobs. All pods run
// it independently; ResetStuckJob's conditional update keeps the operation
// idempotent across pods.
func (p *WorkerPool) runStuckSweeper(ctx context.Context) {
	ticker := time.NewTicker(p.config.StuckSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.sweepStuckJobs(ctx); err != nil {
				slog.Error("Stuck-job sweep failed", "error", err)
			}
		}
	}
}

// sweepStuckJobs finds processing jobs with stale heartbeats and applies the
// configured policy: requeue to pending or mark failed.
func (p *WorkerPool) sweepStuckJobs(ctx context.Context) error {
	stuck, err := p.store.FindStuckJobs(ctx, p.config.JobTimeout)
	if err != nil {
		return fmt.Errorf("failed to query stuck jobs: %w", err)
	}

	p.sweep.mu.Lock()
	p.sweep.lastScan = time.Now()
	p.sweep.mu.Unlock()

	if len(stuck) == 0 {
		return nil
	}

	slog.Warn("Detected stuck jobs", "count", len(stuck))

	recovered := 0
	for _, j := range stuck {
		if resetStuckJob(ctx, p.store, j, p.config.StuckJobPolicy) {
			recovered++
		}
	}

	p.sweep.mu.Lock()
	p.sweep.recovered += recovered
	p.sweep.mu.Unlock()

	return nil
}

// resetStuckJob applies the stuck policy to a single job. Returns true if
// this pod won the conditional reset.
func resetStuckJob(ctx context.Context, store JobStore, j *ent.Job, policy config.StuckJobPolicy) bool {
	podID := "unknown"
	if j.PodID != nil {
		podID = *j.PodID
	}
	lastHeartbeat := "unknown"
	if j.HeartbeatAt != nil {
		lastHeartbeat = j.HeartbeatAt.Format(time.RFC3339)
	}

	toStatus := job.StatusPending
	if policy == config.StuckJobPolicyFail {
		toStatus = job.StatusFailed
	}
	reason := fmt.Sprintf("stuck: no heartbeat from pod %s since %s", podID, lastHeartbeat)

	reset, err := store.ResetStuckJob(ctx, j.ID, toStatus, reason)
	if err != nil {
		slog.Error("Failed to reset stuck job", "job_id", j.ID, "error", err)
		return false
	}
	if reset {
		slog.Warn("Stuck job recovered", "job_id", j.ID, "to_status", toStatus, "last_heartbeat", lastHeartbeat)
	}
	return reset
}

// RecoverStartupJobs performs a one-time sweep of jobs this pod still owns
// from a previous run. Called during startup, before the pool begins
// claiming: anything in processing under this pod's id was abandoned when
// the process died.
func RecoverStartupJobs(ctx context.Context, store JobStore, podID string, policy config.StuckJobPolicy) error {
	abandoned, err := store.ListProcessingJobsByPod(ctx, podID)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}
	if len(abandoned) == 0 {
		return nil
	}

	slog.Warn("Found abandoned jobs from previous run", "pod_id", podID, "count", len(abandoned))

	toStatus := job.StatusPending
	if policy == config.StuckJobPolicyFail {
		toStatus = job.StatusFailed
	}

	for _, j := range abandoned {
		reason := fmt.Sprintf("stuck: pod %s restarted while job was in progress", podID)
		if _, err := store.ResetStuckJob(ctx, j.ID, toStatus, reason); err != nil {
			slog.Error("Failed to recover abandoned job", "job_id", j.ID, "error", err)
			continue
		}
		slog.Info("Abandoned job recovered", "job_id", j.ID, "to_status", toStatus)
	}

	return nil
}
