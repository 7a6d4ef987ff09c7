package e2e

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/ent/jobstep"
	"github.com/copymill/copymill/pkg/models"
)

// TestAgentFailurePropagates verifies an upstream failure marks the step and
// the job failed with the agent's error message preserved verbatim, and that
// retry then reruns the pipeline from scratch.
func TestAgentFailurePropagates(t *testing.T) {
	app := NewTestApp(t)

	app.LLM.ScriptError("WriterOutput", errors.New("upstream rate limited"))
	app.LLM.SetDefault("SEOOutput", seoResult(85))
	app.LLM.SetDefault("QAScoring", qaPassing(85))

	jobID := app.CreateJob(t, "concrete driveway cost", models.JobSettings{})
	detail := app.WaitForStatus(t, jobID, "failed", pipelineWait)

	jobPayload := detail["job"].(map[string]any)
	assert.Equal(t, "article generation failed: upstream rate limited", jobPayload["lastError"])

	writerSteps := app.StepsByAgent(t, jobID, "writer")
	require.Len(t, writerSteps, 1)
	assert.Equal(t, jobstep.StatusFailed, writerSteps[0].Status)
	require.NotNil(t, writerSteps[0].ErrorMessage)
	assert.Equal(t, "article generation failed: upstream rate limited", *writerSteps[0].ErrorMessage)

	// Retry resets the job; the next attempt succeeds.
	app.LLM.SetDefault("WriterOutput", cleanArticle(2050))

	resp := app.postJSON(t, "/jobs/"+jobID+"/retry", nil, http.StatusOK)
	assert.Contains(t, []any{"pending", "processing", "completed"}, resp["status"])

	retried := app.WaitForStatus(t, jobID, "completed", pipelineWait)
	retriedPayload := retried["job"].(map[string]any)
	assert.Nil(t, retriedPayload["lastError"])
	assert.NotNil(t, retriedPayload["finalOutput"])
}

// TestRetryRejectedForNonFailedJob verifies the transition guard on retry.
func TestRetryRejectedForNonFailedJob(t *testing.T) {
	app := NewTestApp(t)

	app.LLM.Script("WriterOutput", cleanArticle(2050))
	app.LLM.Script("SEOOutput", seoResult(85))
	app.LLM.Script("QAScoring", qaPassing(85))

	jobID := app.CreateJob(t, "concrete driveway cost", models.JobSettings{})
	app.WaitForStatus(t, jobID, "completed", pipelineWait)

	raw, err := http.Post(app.BaseURL+"/jobs/"+jobID+"/retry", "application/json", nil)
	require.NoError(t, err)
	defer func() { _ = raw.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, raw.StatusCode)
}
