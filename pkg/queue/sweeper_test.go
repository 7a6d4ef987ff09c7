package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/ent"
	"github.com/copymill/copymill/ent/job"
	"github.com/copymill/copymill/pkg/config"
)

func stuckJob(id, podID string, heartbeat time.Time) *ent.Job {
	return &ent.Job{
		ID:          id,
		Keyword:     "concrete driveway cost",
		Status:      job.StatusProcessing,
		PodID:       &podID,
		HeartbeatAt: &heartbeat,
	}
}

func TestSweepRequeuesStuckJobs(t *testing.T) {
	hb := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	store := &fakeStore{
		stuckJobs:   []*ent.Job{stuckJob("job-1", "dead-pod", hb)},
		resetResult: true,
	}
	pool := NewWorkerPool("pod-1", store, testQueueConfig(), &fakeExecutor{})

	err := pool.sweepStuckJobs(context.Background())
	require.NoError(t, err)

	require.Len(t, store.resetCalls, 1)
	assert.Equal(t, "job-1", store.resetCalls[0].jobID)
	assert.Equal(t, job.StatusPending, store.resetCalls[0].toStatus)
	assert.Equal(t, "stuck: no heartbeat from pod dead-pod since 2026-08-25T10:00:00Z", store.resetCalls[0].reason)

	h := pool.Health()
	assert.Equal(t, 1, h.StuckRecovered)
	assert.False(t, h.LastStuckSweep.IsZero())
}

func TestSweepFailPolicy(t *testing.T) {
	cfg := testQueueConfig()
	cfg.StuckJobPolicy = config.StuckJobPolicyFail
	store := &fakeStore{
		stuckJobs:   []*ent.Job{stuckJob("job-1", "dead-pod", time.Now())},
		resetResult: true,
	}
	pool := NewWorkerPool("pod-1", store, cfg, &fakeExecutor{})

	err := pool.sweepStuckJobs(context.Background())
	require.NoError(t, err)

	require.Len(t, store.resetCalls, 1)
	assert.Equal(t, job.StatusFailed, store.resetCalls[0].toStatus)
}

func TestSweepLostRaceNotCounted(t *testing.T) {
	// Another pod reset the job first; the conditional update returns false.
	store := &fakeStore{
		stuckJobs:   []*ent.Job{stuckJob("job-1", "dead-pod", time.Now())},
		resetResult: false,
	}
	pool := NewWorkerPool("pod-1", store, testQueueConfig(), &fakeExecutor{})

	err := pool.sweepStuckJobs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, pool.Health().StuckRecovered)
}

func TestSweepNoStuckJobs(t *testing.T) {
	store := &fakeStore{}
	pool := NewWorkerPool("pod-1", store, testQueueConfig(), &fakeExecutor{})

	err := pool.sweepStuckJobs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, store.resetCalls)
	assert.False(t, pool.Health().LastStuckSweep.IsZero(), "scan time recorded even when nothing is stuck")
}

func TestSweepMissingPodMetadata(t *testing.T) {
	store := &fakeStore{
		stuckJobs:   []*ent.Job{{ID: "job-1", Status: job.StatusProcessing}},
		resetResult: true,
	}
	pool := NewWorkerPool("pod-1", store, testQueueConfig(), &fakeExecutor{})

	err := pool.sweepStuckJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, store.resetCalls, 1)
	assert.Equal(t, "stuck: no heartbeat from pod unknown since unknown", store.resetCalls[0].reason)
}

func TestRecoverStartupJobs(t *testing.T) {
	podID := "pod-1"
	store := &fakeStore{
		podJobs: []*ent.Job{
			{ID: "job-1", Status: job.StatusProcessing, PodID: &podID},
			{ID: "job-2", Status: job.StatusProcessing, PodID: &podID},
		},
		resetResult: true,
	}

	err := RecoverStartupJobs(context.Background(), store, podID, config.StuckJobPolicyRequeue)
	require.NoError(t, err)

	require.Len(t, store.resetCalls, 2)
	assert.Equal(t, "job-1", store.resetCalls[0].jobID)
	assert.Equal(t, job.StatusPending, store.resetCalls[0].toStatus)
	assert.Equal(t, "stuck: pod pod-1 restarted while job was in progress", store.resetCalls[0].reason)
	assert.Equal(t, "job-2", store.resetCalls[1].jobID)
}

func TestRecoverStartupJobsFailPolicy(t *testing.T) {
	podID := "pod-1"
	store := &fakeStore{
		podJobs:     []*ent.Job{{ID: "job-1", Status: job.StatusProcessing, PodID: &podID}},
		resetResult: true,
	}

	err := RecoverStartupJobs(context.Background(), store, podID, config.StuckJobPolicyFail)
	require.NoError(t, err)

	require.Len(t, store.resetCalls, 1)
	assert.Equal(t, job.StatusFailed, store.resetCalls[0].toStatus)
}

func TestRecoverStartupJobsEmpty(t *testing.T) {
	store := &fakeStore{}
	err := RecoverStartupJobs(context.Background(), store, "pod-1", config.StuckJobPolicyRequeue)
	require.NoError(t, err)
	assert.Empty(t, store.resetCalls)
}
