package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRegisterAndCancelJob(t *testing.T) {
	pool := &WorkerPool{
		activeJobs: make(map[string]context.CancelFunc),
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterJob("job-1", cancel)

	// Cancel should succeed for a registered job
	assert.True(t, pool.CancelJob("job-1"))
	assert.Error(t, ctx.Err()) // Context should be cancelled

	// Cancel should return false for unknown job
	assert.False(t, pool.CancelJob("unknown"))
}

func TestPoolUnregisterJob(t *testing.T) {
	pool := &WorkerPool{
		activeJobs: make(map[string]context.CancelFunc),
	}

	_, cancel := context.WithCancel(context.Background())
	pool.RegisterJob("job-1", cancel)
	assert.True(t, pool.CancelJob("job-1"))

	pool.UnregisterJob("job-1")
	assert.False(t, pool.CancelJob("job-1"))
}

func TestPoolActiveJobIDs(t *testing.T) {
	pool := &WorkerPool{
		activeJobs: make(map[string]context.CancelFunc),
	}

	assert.Empty(t, pool.activeJobIDs())

	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	pool.RegisterJob("job-a", cancel1)
	pool.RegisterJob("job-b", cancel2)

	ids := pool.activeJobIDs()
	require.Len(t, ids, 2)
	assert.Contains(t, ids, "job-a")
	assert.Contains(t, ids, "job-b")
}

func TestPoolStopTwiceDoesNotPanic(t *testing.T) {
	pool := &WorkerPool{
		stopCh:     make(chan struct{}),
		activeJobs: make(map[string]context.CancelFunc),
	}

	pool.Stop()

	// Second call must not panic (sync.Once guards the close).
	assert.NotPanics(t, func() { pool.Stop() })
}

func TestPoolHealthBeforeStart(t *testing.T) {
	store := &fakeStore{pendingCount: 3}
	pool := NewWorkerPool("pod-1", store, testQueueConfig(), &fakeExecutor{})

	h := pool.Health()
	assert.False(t, h.IsHealthy, "pool with no workers is unhealthy")
	assert.True(t, h.DBReachable)
	assert.Equal(t, "pod-1", h.PodID)
	assert.Equal(t, 0, h.TotalWorkers)
	assert.Equal(t, 0, h.ActiveJobs)
	assert.Equal(t, 5, h.MaxConcurrent)
	assert.Equal(t, 3, h.QueueDepth)
}

func TestPoolHealthDBError(t *testing.T) {
	store := &fakeStore{countErr: assert.AnError}
	pool := NewWorkerPool("pod-1", store, testQueueConfig(), &fakeExecutor{})

	h := pool.Health()
	assert.False(t, h.IsHealthy)
	assert.False(t, h.DBReachable)
	assert.Contains(t, h.DBError, "queue depth query failed")
}
