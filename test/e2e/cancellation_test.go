package e2e

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/pkg/models"
)

func TestCancelMidPipeline(t *testing.T) {
	app := NewTestApp(t)

	// Would carry the pipeline to completion if cancellation failed.
	app.LLM.SetDefault("WriterOutput", cleanArticle(2050))
	app.LLM.SetDefault("SEOOutput", seoResult(85))
	app.LLM.SetDefault("QAScoring", qaPassing(85))

	// Flip the cooperative flag between research and writer. The executor
	// must observe it at the next checkpoint without running the writer.
	jobIDCh := make(chan string, 1)
	app.Research.AfterResearch = func() {
		jobID := <-jobIDCh
		require.NoError(t, app.Jobs.RequestCancel(context.Background(), jobID))
	}

	jobID := app.CreateJob(t, "concrete driveway cost", models.JobSettings{})
	jobIDCh <- jobID

	detail := app.WaitForStatus(t, jobID, "cancelled", pipelineWait)
	jobPayload := detail["job"].(map[string]any)
	assert.NotNil(t, jobPayload["completedAt"])

	// Research ran; the writer step was never created.
	assert.Len(t, app.StepsByAgent(t, jobID, "research"), 1)
	assert.Empty(t, app.StepsByAgent(t, jobID, "writer"))
	assert.Empty(t, app.LLM.Prompts("WriterOutput"))

	assert.Equal(t, []string{jobID}, app.CancelledJobs())

	// A stream opened on the cancelled job emits one terminal frame.
	frames := app.streamJobEvents(t, jobID, 2*time.Second)
	require.Len(t, frames, 1)
	assert.Equal(t, "cancelled", frames[0].event)
}

func TestCancelPendingJobViaAPI(t *testing.T) {
	app := NewTestApp(t, WithWorkerCount(1))

	// Jam the single worker with a job that blocks in research until
	// released, keeping the second job pending.
	release := make(chan struct{})
	started := make(chan struct{}, 2)
	app.Research.AfterResearch = func() {
		started <- struct{}{}
		<-release
	}
	app.LLM.SetDefault("WriterOutput", cleanArticle(2050))
	app.LLM.SetDefault("SEOOutput", seoResult(85))
	app.LLM.SetDefault("QAScoring", qaPassing(85))

	blocker := app.CreateJob(t, "concrete driveway cost", models.JobSettings{})
	select {
	case <-started:
	case <-time.After(pipelineWait):
		t.Fatal("blocker job never started research")
	}

	pending := app.CreateJob(t, "deck stain reviews", models.JobSettings{})

	resp := app.postJSON(t, "/jobs/"+pending+"/cancel", nil, http.StatusOK)
	assert.Equal(t, "cancelled", resp["status"])

	// Idempotent: cancelling again returns the cancelled job.
	resp = app.postJSON(t, "/jobs/"+pending+"/cancel", nil, http.StatusOK)
	assert.Equal(t, "cancelled", resp["status"])

	close(release)
	app.WaitForStatus(t, blocker, "completed", pipelineWait)

	// Cancelling a completed job is an illegal transition.
	raw, err := http.Post(app.BaseURL+"/jobs/"+blocker+"/cancel", "application/json", nil)
	require.NoError(t, err)
	defer func() { _ = raw.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, raw.StatusCode)
}
