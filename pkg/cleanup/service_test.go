package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/ent"
	"github.com/copymill/copymill/ent/job"
	"github.com/copymill/copymill/ent/systemlog"
	"github.com/copymill/copymill/pkg/config"
	"github.com/copymill/copymill/pkg/database"
	"github.com/copymill/copymill/pkg/masking"
	"github.com/copymill/copymill/pkg/models"
	"github.com/copymill/copymill/pkg/services"
	testdb "github.com/copymill/copymill/test/database"
)

func setupCleanupServices(t *testing.T) (*database.Client, *services.JobService, *services.SystemLogService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	jobService := services.NewJobService(client.Client)
	logService := services.NewSystemLogService(client.Client, masking.NewService())
	return client, jobService, logService
}

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		JobRetentionDays: 90,
		SystemLogTTL:     30 * 24 * time.Hour,
		CleanupInterval:  1 * time.Hour,
	}
}

func createJob(t *testing.T, jobService *services.JobService, keyword string) *ent.Job {
	t.Helper()
	j, err := jobService.CreateJob(context.Background(), models.CreateJobRequest{
		Keyword:   keyword,
		CreatedBy: "cleanup-test",
	})
	require.NoError(t, err)
	return j
}

func TestService_PurgesOldCompletedJobs(t *testing.T) {
	client, jobService, logService := setupCleanupServices(t)
	ctx := context.Background()

	j := createJob(t, jobService, "patio paver cost")

	err := client.Job.UpdateOneID(j.ID).
		SetStatus(job.StatusCompleted).
		SetCompletedAt(time.Now().Add(-100 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), jobService, logService)
	svc.runAll(ctx)

	_, err = jobService.GetJob(ctx, j.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestService_PurgesOldFailedJobs(t *testing.T) {
	client, jobService, logService := setupCleanupServices(t)
	ctx := context.Background()

	j := createJob(t, jobService, "deck stain reviews")

	err := client.Job.UpdateOneID(j.ID).
		SetStatus(job.StatusFailed).
		SetLastError("article generation failed").
		SetCompletedAt(time.Now().Add(-100 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), jobService, logService)
	svc.runAll(ctx)

	_, err = jobService.GetJob(ctx, j.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestService_PreservesRecentJobs(t *testing.T) {
	client, jobService, logService := setupCleanupServices(t)
	ctx := context.Background()

	j := createJob(t, jobService, "garage door sizes")

	err := client.Job.UpdateOneID(j.ID).
		SetStatus(job.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), jobService, logService)
	svc.runAll(ctx)

	got, err := jobService.GetJob(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, got.Status)
}

func TestService_PreservesPendingJobsRegardlessOfAge(t *testing.T) {
	client, jobService, logService := setupCleanupServices(t)
	ctx := context.Background()

	j := createJob(t, jobService, "gutter guard install")

	// A pending job is queued work, never retention fodder, even with a
	// stale completed_at left over from a retry.
	err := client.Job.UpdateOneID(j.ID).
		SetCompletedAt(time.Now().Add(-400 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), jobService, logService)
	svc.runAll(ctx)

	got, err := jobService.GetJob(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, got.Status)
}

func TestService_PurgesOldLogs(t *testing.T) {
	client, jobService, logService := setupCleanupServices(t)
	ctx := context.Background()

	j := createJob(t, jobService, "fence height rules")

	_, err := client.SystemLog.Create().
		SetID(uuid.New().String()).
		SetEntityType(services.EntityTypeJob).
		SetEntityID(j.ID).
		SetLevel(systemlog.LevelInfo).
		SetMessage("old entry").
		SetCreatedAt(time.Now().Add(-40 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.SystemLog.Create().
		SetID(uuid.New().String()).
		SetEntityType(services.EntityTypeJob).
		SetEntityID(j.ID).
		SetLevel(systemlog.LevelInfo).
		SetMessage("recent entry").
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), jobService, logService)
	svc.runAll(ctx)

	rows, err := logService.ListForEntity(ctx, services.EntityTypeJob, j.ID, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1, "old log should be deleted, recent log preserved")
	assert.Equal(t, "recent entry", rows[0].Message)
}

func TestService_ZeroRetentionDisablesPurging(t *testing.T) {
	client, jobService, logService := setupCleanupServices(t)
	ctx := context.Background()

	j := createJob(t, jobService, "driveway sealer cost")

	err := client.Job.UpdateOneID(j.ID).
		SetStatus(job.StatusCancelled).
		SetCompletedAt(time.Now().Add(-1000 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	cfg := &config.RetentionConfig{
		JobRetentionDays: 0,
		SystemLogTTL:     0,
		CleanupInterval:  1 * time.Hour,
	}
	svc := NewService(cfg, jobService, logService)
	svc.runAll(ctx)

	_, err = jobService.GetJob(ctx, j.ID)
	require.NoError(t, err)
}

func TestService_StartStop(t *testing.T) {
	_, jobService, logService := setupCleanupServices(t)

	svc := NewService(retentionConfig(), jobService, logService)
	svc.Start(context.Background())
	svc.Stop()

	// Stop on a never-started (or already stopped) service must not hang.
	idle := NewService(retentionConfig(), jobService, logService)
	idle.Stop()
}
