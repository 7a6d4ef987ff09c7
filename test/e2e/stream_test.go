package e2e

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/pkg/models"
)

func TestJobStreamEmitsProgressThenComplete(t *testing.T) {
	app := NewTestApp(t, WithWorkerCount(1))

	// Hold the pipeline in research so the stream observes a processing job.
	release := make(chan struct{})
	app.Research.AfterResearch = func() { <-release }
	app.LLM.SetDefault("WriterOutput", cleanArticle(2050))
	app.LLM.SetDefault("SEOOutput", seoResult(85))
	app.LLM.SetDefault("QAScoring", qaPassing(85))

	jobID := app.CreateJob(t, "concrete driveway cost", models.JobSettings{})

	framesCh := make(chan []sseFrame, 1)
	go func() {
		framesCh <- app.streamJobEvents(t, jobID, pipelineWait)
	}()

	// Give the stream a moment to connect and see pre-terminal state.
	time.Sleep(300 * time.Millisecond)
	close(release)

	var frames []sseFrame
	select {
	case frames = <-framesCh:
	case <-time.After(pipelineWait):
		t.Fatal("job stream never closed")
	}

	require.NotEmpty(t, frames)
	last := frames[len(frames)-1]
	assert.Equal(t, "complete", last.event)
	for _, frame := range frames[:len(frames)-1] {
		assert.Equal(t, "progress", frame.event)
	}
	assert.Contains(t, last.data, jobID)
}

func TestGlobalStreamTracksActiveJobs(t *testing.T) {
	app := NewTestApp(t, WithWorkerCount(1))

	release := make(chan struct{})
	app.Research.AfterResearch = func() { <-release }
	defer close(release)
	app.LLM.SetDefault("WriterOutput", cleanArticle(2050))
	app.LLM.SetDefault("SEOOutput", seoResult(85))
	app.LLM.SetDefault("QAScoring", qaPassing(85))

	jobID := app.CreateJob(t, "concrete driveway cost", models.JobSettings{})

	// The global stream never closes on its own; read a bounded window.
	framesCh := make(chan []sseFrame, 1)
	go func() {
		framesCh <- app.streamGlobalEvents(t, 2*time.Second)
	}()

	frames := <-framesCh
	require.NotEmpty(t, frames, "global stream emitted no frames")

	seen := false
	for _, frame := range frames {
		assert.Equal(t, "jobs", frame.event)
		if strings.Contains(frame.data, jobID) {
			seen = true
		}
	}
	assert.True(t, seen, "active job %s never appeared on the global stream", jobID)
}

// streamGlobalEvents reads the all-jobs SSE stream for the given window.
func (app *TestApp) streamGlobalEvents(t *testing.T, window time.Duration) []sseFrame {
	t.Helper()
	return app.streamSSE(t, app.BaseURL+"/jobs/stream", window)
}
