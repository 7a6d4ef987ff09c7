package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/ent/job"
	"github.com/copymill/copymill/pkg/models"
	testdb "github.com/copymill/copymill/test/database"
)

func TestCreateJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	t.Run("defaults applied", func(t *testing.T) {
		j, err := svc.CreateJob(ctx, models.CreateJobRequest{Keyword: "concrete driveway cost"})
		require.NoError(t, err)
		assert.Equal(t, job.StatusPending, j.Status)
		assert.Equal(t, 5, j.MaxIterations)
		assert.Equal(t, 1, j.CurrentIteration)
		assert.Equal(t, 0, j.ProgressPercent)
		assert.False(t, j.CancelRequested)
	})

	t.Run("explicit settings preserved", func(t *testing.T) {
		j, err := svc.CreateJob(ctx, models.CreateJobRequest{
			Keyword:  "deck stain reviews",
			Settings: models.JobSettings{MaxIterations: 3, TargetWordCount: 1500},
			Priority: 7,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, j.MaxIterations)
		assert.Equal(t, 7, j.Priority)
		assert.Equal(t, 1500, j.Settings.TargetWordCount)
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name string
			req  models.CreateJobRequest
		}{
			{"empty keyword", models.CreateJobRequest{}},
			{"max iterations too high", models.CreateJobRequest{
				Keyword:  "k",
				Settings: models.JobSettings{MaxIterations: 11},
			}},
			{"negative word count", models.CreateJobRequest{
				Keyword:  "k",
				Settings: models.JobSettings{TargetWordCount: -1},
			}},
			{"unknown skip agent", models.CreateJobRequest{
				Keyword:  "k",
				Settings: models.JobSettings{SkipAgents: []models.AgentType{"reviewer"}},
			}},
			{"unknown persona override agent", models.CreateJobRequest{
				Keyword: "k",
				Settings: models.JobSettings{
					PersonaOverrides: map[models.AgentType]string{"reviewer": "p-1"},
				},
			}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.CreateJob(ctx, tc.req)
				assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
			})
		}
	})
}

func TestListJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.CreateJob(ctx, models.CreateJobRequest{
			Keyword:   "concrete driveway cost",
			CreatedBy: "alice",
		})
		require.NoError(t, err)
	}
	failed, err := svc.CreateJob(ctx, models.CreateJobRequest{Keyword: "deck stain reviews"})
	require.NoError(t, err)
	require.NoError(t, svc.FinishJob(ctx, failed.ID, job.StatusFailed, "boom"))

	t.Run("status filter", func(t *testing.T) {
		jobs, total, err := svc.ListJobs(ctx, models.JobFilters{Status: "failed"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, jobs, 1)
		assert.Equal(t, failed.ID, jobs[0].ID)
	})

	t.Run("created_by filter", func(t *testing.T) {
		_, total, err := svc.ListJobs(ctx, models.JobFilters{CreatedBy: "alice"})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
	})

	t.Run("pagination keeps total", func(t *testing.T) {
		jobs, total, err := svc.ListJobs(ctx, models.JobFilters{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		assert.Len(t, jobs, 2)
	})

	t.Run("unknown order field rejected", func(t *testing.T) {
		_, _, err := svc.ListJobs(ctx, models.JobFilters{OrderBy: "keyword"})
		assert.True(t, IsValidationError(err))
	})
}

func TestGetJobNotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)

	_, err := svc.GetJob(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	t.Run("pending job cancelled", func(t *testing.T) {
		j, err := svc.CreateJob(ctx, models.CreateJobRequest{Keyword: "concrete driveway cost"})
		require.NoError(t, err)

		cancelled, err := svc.CancelJob(ctx, j.ID, "tester")
		require.NoError(t, err)
		assert.Equal(t, job.StatusCancelled, cancelled.Status)
		assert.NotNil(t, cancelled.CompletedAt)

		// Idempotent.
		again, err := svc.CancelJob(ctx, j.ID, "tester")
		require.NoError(t, err)
		assert.Equal(t, job.StatusCancelled, again.Status)
	})

	t.Run("processing job rejected", func(t *testing.T) {
		j, err := svc.CreateJob(ctx, models.CreateJobRequest{Keyword: "deck stain reviews"})
		require.NoError(t, err)
		claimed, err := svc.ClaimNextPendingJob(ctx, "pod-1")
		require.NoError(t, err)
		require.Equal(t, j.ID, claimed.ID)

		_, err = svc.CancelJob(ctx, j.ID, "tester")
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})
}

func TestRequestCancelAndIsCancelled(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	j, err := svc.CreateJob(ctx, models.CreateJobRequest{Keyword: "concrete driveway cost"})
	require.NoError(t, err)

	cancelled, err := svc.IsCancelled(ctx, j.ID)
	require.NoError(t, err)
	assert.False(t, cancelled)

	require.NoError(t, svc.RequestCancel(ctx, j.ID))

	cancelled, err = svc.IsCancelled(ctx, j.ID)
	require.NoError(t, err)
	assert.True(t, cancelled)

	assert.ErrorIs(t, svc.RequestCancel(ctx, "nope"), ErrNotFound)
}

func TestRetryJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	j, err := svc.CreateJob(ctx, models.CreateJobRequest{Keyword: "concrete driveway cost"})
	require.NoError(t, err)

	t.Run("only failed jobs retry", func(t *testing.T) {
		_, err := svc.RetryJob(ctx, j.ID)
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})

	claimed, err := svc.ClaimNextPendingJob(ctx, "pod-1")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	require.NoError(t, svc.FinishJob(ctx, j.ID, job.StatusFailed, "llm unavailable"))

	t.Run("retry resets run state", func(t *testing.T) {
		retried, err := svc.RetryJob(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusPending, retried.Status)
		assert.Equal(t, 1, retried.CurrentIteration)
		assert.Equal(t, 0, retried.ProgressPercent)
		assert.Nil(t, retried.LastError)
		assert.Nil(t, retried.StartedAt)
		assert.Nil(t, retried.CompletedAt)
		assert.Nil(t, retried.PodID)
		assert.Nil(t, retried.HeartbeatAt)
	})
}

func TestClaimNextPendingJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	t.Run("empty queue returns nil", func(t *testing.T) {
		claimed, err := svc.ClaimNextPendingJob(ctx, "pod-1")
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})

	low, err := svc.CreateJob(ctx, models.CreateJobRequest{Keyword: "low priority"})
	require.NoError(t, err)
	high, err := svc.CreateJob(ctx, models.CreateJobRequest{Keyword: "high priority", Priority: 5})
	require.NoError(t, err)

	t.Run("priority wins over age", func(t *testing.T) {
		claimed, err := svc.ClaimNextPendingJob(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, high.ID, claimed.ID)
		assert.Equal(t, job.StatusProcessing, claimed.Status)
		require.NotNil(t, claimed.PodID)
		assert.Equal(t, "pod-1", *claimed.PodID)
		assert.NotNil(t, claimed.StartedAt)
		assert.NotNil(t, claimed.HeartbeatAt)
	})

	t.Run("remaining job claimed next", func(t *testing.T) {
		claimed, err := svc.ClaimNextPendingJob(ctx, "pod-2")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, low.ID, claimed.ID)
	})
}

func TestFinishJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	j, err := svc.CreateJob(ctx, models.CreateJobRequest{Keyword: "concrete driveway cost"})
	require.NoError(t, err)

	t.Run("non-terminal status rejected", func(t *testing.T) {
		err := svc.FinishJob(ctx, j.ID, job.StatusProcessing, "")
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})

	t.Run("completed stamps progress and completed_at", func(t *testing.T) {
		require.NoError(t, svc.FinishJob(ctx, j.ID, job.StatusCompleted, ""))

		finished, err := svc.GetJob(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCompleted, finished.Status)
		assert.Equal(t, 100, finished.ProgressPercent)
		assert.NotNil(t, finished.CompletedAt)
		assert.Nil(t, finished.CurrentAgent)
		assert.Nil(t, finished.HeartbeatAt)
	})
}

func TestAddTokenUsage(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	j, err := svc.CreateJob(ctx, models.CreateJobRequest{Keyword: "concrete driveway cost"})
	require.NoError(t, err)

	require.NoError(t, svc.AddTokenUsage(ctx, j.ID, 300, 0.01))
	require.NoError(t, svc.AddTokenUsage(ctx, j.ID, 200, 0.005))

	updated, err := svc.GetJob(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, 500, updated.TotalTokensUsed)
	assert.InDelta(t, 0.015, updated.EstimatedCostUsd, 1e-9)
}

func TestFindAndResetStuckJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	j, err := svc.CreateJob(ctx, models.CreateJobRequest{Keyword: "concrete driveway cost"})
	require.NoError(t, err)
	claimed, err := svc.ClaimNextPendingJob(ctx, "dead-pod")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	// Backdate the liveness markers past the timeout.
	stale := time.Now().Add(-10 * time.Minute)
	require.NoError(t, client.Job.UpdateOneID(j.ID).
		SetHeartbeatAt(stale).
		SetUpdatedAt(stale).
		Exec(ctx))

	stuck, err := svc.FindStuckJobs(ctx, 5*time.Minute)
	require.NoError(t, err)
	require.Len(t, stuck, 1)
	assert.Equal(t, j.ID, stuck[0].ID)

	t.Run("requeue", func(t *testing.T) {
		reset, err := svc.ResetStuckJob(ctx, j.ID, job.StatusPending, "stuck: no heartbeat from pod dead-pod")
		require.NoError(t, err)
		assert.True(t, reset)

		requeued, err := svc.GetJob(ctx, j.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusPending, requeued.Status)
		assert.Nil(t, requeued.PodID)
		assert.Nil(t, requeued.StartedAt)
		require.NotNil(t, requeued.LastError)
		assert.Contains(t, *requeued.LastError, "stuck")
	})

	t.Run("conditional update loses race", func(t *testing.T) {
		// Job is pending again, so the processing predicate no longer matches.
		reset, err := svc.ResetStuckJob(ctx, j.ID, job.StatusFailed, "stuck")
		require.NoError(t, err)
		assert.False(t, reset)
	})

	t.Run("invalid target status", func(t *testing.T) {
		_, err := svc.ResetStuckJob(ctx, j.ID, job.StatusCompleted, "stuck")
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})
}

func TestCountByStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.CreateJob(ctx, models.CreateJobRequest{Keyword: "concrete driveway cost"})
		require.NoError(t, err)
	}

	count, err := svc.CountByStatus(ctx, job.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = svc.CountByStatus(ctx, job.StatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCountProcessingForPod(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.CreateJob(ctx, models.CreateJobRequest{Keyword: "concrete driveway cost"})
		require.NoError(t, err)
	}

	// pod-a claims two jobs, pod-b claims one.
	for _, podID := range []string{"pod-a", "pod-a", "pod-b"} {
		claimed, err := svc.ClaimNextPendingJob(ctx, podID)
		require.NoError(t, err)
		require.NotNil(t, claimed)
	}

	count, err := svc.CountProcessingForPod(ctx, "pod-a")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = svc.CountProcessingForPod(ctx, "pod-b")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = svc.CountProcessingForPod(ctx, "pod-c")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
