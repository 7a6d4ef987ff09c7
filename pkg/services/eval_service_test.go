package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/pkg/models"
	testdb "github.com/copymill/copymill/test/database"
)

func TestInsertEval(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client.Client)
	steps := NewStepService(client.Client)
	svc := NewEvalService(client.Client)
	ctx := context.Background()

	j, err := jobs.CreateJob(ctx, models.CreateJobRequest{Keyword: "concrete driveway cost"})
	require.NoError(t, err)
	step, err := steps.CreateStep(ctx, models.CreateStepRequest{
		JobID:     j.ID,
		AgentType: models.AgentTypeQA,
		Iteration: 1,
	})
	require.NoError(t, err)

	t.Run("records scores and issues", func(t *testing.T) {
		eval, err := svc.InsertEval(ctx, models.CreateEvalRequest{
			JobID:            j.ID,
			StepID:           step.ID,
			Iteration:        1,
			OverallScore:     55,
			ReadabilityScore: 60,
			SEOScore:         60,
			AccuracyScore:    60,
			EngagementScore:  60,
			BrandVoiceScore:  60,
			Passed:           false,
			Issues: []models.Issue{{
				Category:    "readability",
				Severity:    models.SeverityHigh,
				Description: "Paragraphs are too long and hard to scan",
			}},
			Feedback: "Needs revision.",
		})
		require.NoError(t, err)
		assert.Equal(t, 55, eval.OverallScore)
		assert.False(t, eval.Passed)
		require.Len(t, eval.Issues, 1)
		assert.Equal(t, "readability", eval.Issues[0].Category)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.InsertEval(ctx, models.CreateEvalRequest{StepID: step.ID, OverallScore: 80})
		assert.True(t, IsValidationError(err), "missing job id: %v", err)

		_, err = svc.InsertEval(ctx, models.CreateEvalRequest{JobID: j.ID, OverallScore: 80})
		assert.True(t, IsValidationError(err), "missing step id: %v", err)

		_, err = svc.InsertEval(ctx, models.CreateEvalRequest{JobID: j.ID, StepID: step.ID, OverallScore: 101})
		assert.True(t, IsValidationError(err), "score out of range: %v", err)
	})
}

func TestListEvalsOrder(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client.Client)
	steps := NewStepService(client.Client)
	svc := NewEvalService(client.Client)
	ctx := context.Background()

	j, err := jobs.CreateJob(ctx, models.CreateJobRequest{Keyword: "concrete driveway cost"})
	require.NoError(t, err)

	for iteration := 1; iteration <= 3; iteration++ {
		step, err := steps.CreateStep(ctx, models.CreateStepRequest{
			JobID:     j.ID,
			AgentType: models.AgentTypeQA,
			Iteration: iteration,
		})
		require.NoError(t, err)
		_, err = svc.InsertEval(ctx, models.CreateEvalRequest{
			JobID:        j.ID,
			StepID:       step.ID,
			Iteration:    iteration,
			OverallScore: 50 + iteration*10,
			Passed:       iteration == 3,
			Feedback:     fmt.Sprintf("iteration %d", iteration),
		})
		require.NoError(t, err)
	}

	evals, err := svc.ListEvals(ctx, j.ID)
	require.NoError(t, err)
	require.Len(t, evals, 3)
	for i, eval := range evals {
		assert.Equal(t, i+1, eval.Iteration)
	}
	assert.True(t, evals[2].Passed)
}
