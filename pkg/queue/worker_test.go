package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/ent"
	"github.com/copymill/copymill/ent/job"
	"github.com/copymill/copymill/pkg/config"
	"github.com/copymill/copymill/pkg/orchestrator"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		JobTimeout:              30 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		StuckSweepInterval:      1 * time.Minute,
		StuckJobPolicy:          config.StuckJobPolicyRequeue,
		GracefulShutdownTimeout: 30 * time.Second,
	}
}

type finishCall struct {
	jobID     string
	status    job.Status
	lastError string
}

type resetCall struct {
	jobID    string
	toStatus job.Status
	reason   string
}

// fakeStore implements JobStore in memory.
type fakeStore struct {
	mu              sync.Mutex
	pendingCount    int
	processingByPod map[string]int
	countErr        error
	claimJob        *ent.Job
	claimErr        error
	heartbeats      []string
	finishCalls     []finishCall
	stuckJobs       []*ent.Job
	stuckErr        error
	resetCalls      []resetCall
	resetResult     bool
	resetErr        error
	podJobs         []*ent.Job
	podErr          error
}

func (s *fakeStore) ClaimNextPendingJob(_ context.Context, podID string) (*ent.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.claimErr != nil {
		return nil, s.claimErr
	}
	j := s.claimJob
	s.claimJob = nil // single claim per test
	if j != nil {
		j.PodID = &podID
	}
	return j, nil
}

func (s *fakeStore) Heartbeat(_ context.Context, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heartbeats = append(s.heartbeats, jobID)
	return nil
}

func (s *fakeStore) CountByStatus(_ context.Context, status job.Status) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.countErr != nil {
		return 0, s.countErr
	}
	if status == job.StatusPending {
		return s.pendingCount, nil
	}
	return 0, nil
}

func (s *fakeStore) CountProcessingForPod(_ context.Context, podID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.countErr != nil {
		return 0, s.countErr
	}
	return s.processingByPod[podID], nil
}

func (s *fakeStore) FinishJob(_ context.Context, jobID string, status job.Status, lastError string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finishCalls = append(s.finishCalls, finishCall{jobID, status, lastError})
	return nil
}

func (s *fakeStore) FindStuckJobs(_ context.Context, _ time.Duration) ([]*ent.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stuckJobs, s.stuckErr
}

func (s *fakeStore) ResetStuckJob(_ context.Context, jobID string, toStatus job.Status, reason string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetCalls = append(s.resetCalls, resetCall{jobID, toStatus, reason})
	return s.resetResult, s.resetErr
}

func (s *fakeStore) ListProcessingJobsByPod(_ context.Context, _ string) ([]*ent.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.podJobs, s.podErr
}

// fakeExecutor returns a scripted result and records the jobs it saw.
type fakeExecutor struct {
	mu     sync.Mutex
	jobIDs []string
	result *orchestrator.Result
}

func (e *fakeExecutor) Execute(_ context.Context, j *ent.Job) *orchestrator.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.jobIDs = append(e.jobIDs, j.ID)
	return e.result
}

// fakeRegistry records cancel-function registration.
type fakeRegistry struct {
	mu           sync.Mutex
	registered   []string
	unregistered []string
}

func (r *fakeRegistry) RegisterJob(jobID string, _ context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registered = append(r.registered, jobID)
}

func (r *fakeRegistry) UnregisterJob(jobID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unregistered = append(r.unregistered, jobID)
}

func pendingJob(id string) *ent.Job {
	return &ent.Job{
		ID:      id,
		Keyword: "concrete driveway cost",
		Status:  job.StatusPending,
	}
}

func TestWorkerPollInterval(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil)

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond, "poll interval below minimum")
		assert.LessOrEqual(t, d, 1500*time.Millisecond, "poll interval above maximum")
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollIntervalJitter = 0
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil)

	for i := 0; i < 10; i++ {
		d := w.pollInterval()
		assert.Equal(t, 1*time.Second, d, "poll interval should equal base when jitter is 0")
	}
}

func TestWorkerHealth(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("worker-1", "pod-1", nil, cfg, nil, nil)

	h := w.Health()
	assert.Equal(t, "worker-1", h.ID)
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentJobID)
	assert.Equal(t, 0, h.JobsProcessed)

	w.setStatus(WorkerStatusWorking, "job-abc")
	h = w.Health()
	assert.Equal(t, "working", h.Status)
	assert.Equal(t, "job-abc", h.CurrentJobID)

	w.setStatus(WorkerStatusIdle, "")
	h = w.Health()
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentJobID)
}

func TestPollAndProcessNoJobs(t *testing.T) {
	store := &fakeStore{}
	w := NewWorker("worker-1", "pod-1", store, testQueueConfig(), &fakeExecutor{}, &fakeRegistry{})

	err := w.pollAndProcess(context.Background())
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestPollAndProcessAtCapacity(t *testing.T) {
	store := &fakeStore{
		processingByPod: map[string]int{"pod-1": 5},
		claimJob:        pendingJob("job-1"),
	}
	w := NewWorker("worker-1", "pod-1", store, testQueueConfig(), &fakeExecutor{}, &fakeRegistry{})

	err := w.pollAndProcess(context.Background())
	assert.ErrorIs(t, err, ErrAtCapacity)
	assert.NotNil(t, store.claimJob, "job must not be claimed at capacity")
}

func TestPollAndProcessCapacityIsPerPod(t *testing.T) {
	// Another pod running at its limit must not throttle this one.
	store := &fakeStore{
		processingByPod: map[string]int{"pod-2": 5},
		claimJob:        pendingJob("job-1"),
	}
	executor := &fakeExecutor{result: &orchestrator.Result{
		JobID:      "job-1",
		Success:    true,
		Iterations: 1,
	}}
	w := NewWorker("worker-1", "pod-1", store, testQueueConfig(), executor, &fakeRegistry{})

	err := w.pollAndProcess(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"job-1"}, executor.jobIDs)
}

func TestPollAndProcessRunsClaimedJob(t *testing.T) {
	store := &fakeStore{claimJob: pendingJob("job-1")}
	executor := &fakeExecutor{result: &orchestrator.Result{
		JobID:      "job-1",
		Success:    true,
		Iterations: 1,
	}}
	registry := &fakeRegistry{}
	w := NewWorker("worker-1", "pod-1", store, testQueueConfig(), executor, registry)

	err := w.pollAndProcess(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"job-1"}, executor.jobIDs)
	assert.Equal(t, []string{"job-1"}, registry.registered)
	assert.Equal(t, []string{"job-1"}, registry.unregistered)
	assert.Empty(t, store.finishCalls, "executor owns terminal writes")

	h := w.Health()
	assert.Equal(t, 1, h.JobsProcessed)
	assert.Equal(t, "idle", h.Status)
}

func TestPollAndProcessNilResultFailsJob(t *testing.T) {
	store := &fakeStore{claimJob: pendingJob("job-1")}
	executor := &fakeExecutor{result: nil}
	w := NewWorker("worker-1", "pod-1", store, testQueueConfig(), executor, &fakeRegistry{})

	err := w.pollAndProcess(context.Background())
	require.NoError(t, err)

	require.Len(t, store.finishCalls, 1)
	assert.Equal(t, "job-1", store.finishCalls[0].jobID)
	assert.Equal(t, job.StatusFailed, store.finishCalls[0].status)
	assert.Equal(t, "Internal orchestrator error", store.finishCalls[0].lastError)
}

func TestPollAndProcessFailedResult(t *testing.T) {
	store := &fakeStore{claimJob: pendingJob("job-1")}
	executor := &fakeExecutor{result: &orchestrator.Result{
		JobID:      "job-1",
		Iterations: 2,
		Err:        assert.AnError,
	}}
	w := NewWorker("worker-1", "pod-1", store, testQueueConfig(), executor, &fakeRegistry{})

	err := w.pollAndProcess(context.Background())
	require.NoError(t, err)

	// Failure was already persisted by the executor; the worker only logs.
	assert.Empty(t, store.finishCalls)
	assert.Equal(t, 1, w.Health().JobsProcessed)
}
