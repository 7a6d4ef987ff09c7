package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/ent"
	"github.com/copymill/copymill/ent/jobstep"
	"github.com/copymill/copymill/pkg/models"
	testdb "github.com/copymill/copymill/test/database"
)

func setupStepServices(t *testing.T) (*JobService, *StepService, *ent.Job) {
	t.Helper()
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client.Client)
	steps := NewStepService(client.Client)

	j, err := jobs.CreateJob(context.Background(), models.CreateJobRequest{Keyword: "concrete driveway cost"})
	require.NoError(t, err)
	return jobs, steps, j
}

func TestCreateStep(t *testing.T) {
	_, svc, j := setupStepServices(t)
	ctx := context.Background()

	t.Run("starts running with timestamps", func(t *testing.T) {
		step, err := svc.CreateStep(ctx, models.CreateStepRequest{
			JobID:     j.ID,
			AgentType: models.AgentTypeResearch,
			Iteration: 1,
			Input:     map[string]interface{}{"keyword": j.Keyword},
		})
		require.NoError(t, err)
		assert.Equal(t, jobstep.StatusRunning, step.Status)
		assert.NotNil(t, step.StartedAt)
		assert.Nil(t, step.CompletedAt)
		assert.Equal(t, 1, step.Iteration)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.CreateStep(ctx, models.CreateStepRequest{AgentType: models.AgentTypeWriter, Iteration: 1})
		assert.True(t, IsValidationError(err), "missing job id: %v", err)

		_, err = svc.CreateStep(ctx, models.CreateStepRequest{JobID: j.ID, AgentType: "reviewer", Iteration: 1})
		assert.True(t, IsValidationError(err), "unknown agent type: %v", err)

		_, err = svc.CreateStep(ctx, models.CreateStepRequest{JobID: j.ID, AgentType: models.AgentTypeWriter})
		assert.True(t, IsValidationError(err), "zero iteration: %v", err)
	})
}

func TestStepLifecycle(t *testing.T) {
	_, svc, j := setupStepServices(t)
	ctx := context.Background()

	step, err := svc.CreateStep(ctx, models.CreateStepRequest{
		JobID:     j.ID,
		AgentType: models.AgentTypeWriter,
		Iteration: 1,
	})
	require.NoError(t, err)

	t.Run("completed", func(t *testing.T) {
		done, err := svc.MarkStepCompleted(ctx, step.ID,
			map[string]interface{}{"wordCount": 2050}, 300, 100, 200, 1200)
		require.NoError(t, err)
		assert.Equal(t, jobstep.StatusCompleted, done.Status)
		assert.Equal(t, 300, done.TokensUsed)
		assert.Equal(t, 100, done.PromptTokens)
		assert.Equal(t, 200, done.CompletionTokens)
		require.NotNil(t, done.DurationMs)
		assert.Equal(t, 1200, *done.DurationMs)
		assert.NotNil(t, done.CompletedAt)
		assert.EqualValues(t, 2050, done.Output["wordCount"])
	})

	t.Run("failed keeps partial usage", func(t *testing.T) {
		failing, err := svc.CreateStep(ctx, models.CreateStepRequest{
			JobID:     j.ID,
			AgentType: models.AgentTypeWriter,
			Iteration: 2,
		})
		require.NoError(t, err)

		failed, err := svc.MarkStepFailed(ctx, failing.ID, "article generation failed: timeout", 120, 900)
		require.NoError(t, err)
		assert.Equal(t, jobstep.StatusFailed, failed.Status)
		require.NotNil(t, failed.ErrorMessage)
		assert.Equal(t, "article generation failed: timeout", *failed.ErrorMessage)
		assert.Equal(t, 120, failed.TokensUsed)
		assert.NotNil(t, failed.CompletedAt)
	})
}

func TestCreateSkippedStep(t *testing.T) {
	_, svc, j := setupStepServices(t)
	ctx := context.Background()

	step, err := svc.CreateSkippedStep(ctx, j.ID, models.AgentTypeSEO, 1)
	require.NoError(t, err)
	assert.Equal(t, jobstep.StatusSkipped, step.Status)
	assert.Equal(t, 0, step.TokensUsed)
	require.NotNil(t, step.DurationMs)
	assert.Equal(t, 0, *step.DurationMs)
	assert.NotNil(t, step.CompletedAt)
}

func TestListStepsOrder(t *testing.T) {
	_, svc, j := setupStepServices(t)
	ctx := context.Background()

	order := []models.AgentType{models.AgentTypeResearch, models.AgentTypeWriter, models.AgentTypeSEO}
	for _, agentType := range order {
		_, err := svc.CreateStep(ctx, models.CreateStepRequest{
			JobID:     j.ID,
			AgentType: agentType,
			Iteration: 1,
		})
		require.NoError(t, err)
	}

	steps, err := svc.ListSteps(ctx, j.ID)
	require.NoError(t, err)
	require.Len(t, steps, 3)
	for i, agentType := range order {
		assert.Equal(t, jobstep.AgentType(agentType), steps[i].AgentType)
	}
}

func TestAppendStepLogs(t *testing.T) {
	_, svc, j := setupStepServices(t)
	ctx := context.Background()

	step, err := svc.CreateStep(ctx, models.CreateStepRequest{
		JobID:     j.ID,
		AgentType: models.AgentTypeQA,
		Iteration: 1,
	})
	require.NoError(t, err)

	require.NoError(t, svc.AppendStepLogs(ctx, step.ID, []string{"scoring started"}))
	require.NoError(t, svc.AppendStepLogs(ctx, step.ID, []string{"scoring finished"}))
	require.NoError(t, svc.AppendStepLogs(ctx, step.ID, nil)) // no-op

	got, err := svc.GetStep(ctx, step.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"scoring started", "scoring finished"}, got.Logs)

	assert.ErrorIs(t, svc.AppendStepLogs(ctx, "nope", []string{"x"}), ErrNotFound)
}
