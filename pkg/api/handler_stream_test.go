package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/ent"
	"github.com/copymill/copymill/ent/job"
	"github.com/copymill/copymill/pkg/services"
)

type sseFrame struct {
	event string
	data  string
}

// parseSSE splits a recorded SSE body into event frames.
func parseSSE(t *testing.T, body string) []sseFrame {
	t.Helper()
	var frames []sseFrame
	for _, block := range strings.Split(strings.TrimSpace(body), "\n\n") {
		if block == "" {
			continue
		}
		var frame sseFrame
		for _, line := range strings.Split(block, "\n") {
			if v, ok := strings.CutPrefix(line, "event: "); ok {
				frame.event = v
			}
			if v, ok := strings.CutPrefix(line, "data: "); ok {
				frame.data = v
			}
		}
		require.NotEmpty(t, frame.event, "frame missing event name: %q", block)
		frames = append(frames, frame)
	}
	return frames
}

func TestJobStreamTerminalAtConnect(t *testing.T) {
	f := newTestServer("")
	f.jobs.getFn = func(id string) (*ent.Job, error) {
		return sampleJob(id, job.StatusCompleted), nil
	}

	w := f.do(http.MethodGet, "/jobs/job-1/stream", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))
	assert.Equal(t, "keep-alive", w.Header().Get("Connection"))

	frames := parseSSE(t, w.Body.String())
	require.Len(t, frames, 1)
	assert.Equal(t, "complete", frames[0].event)

	var payload JobResponse
	require.NoError(t, json.Unmarshal([]byte(frames[0].data), &payload))
	assert.Equal(t, "job-1", payload.JobID)
}

func TestJobStreamProgressThenTerminal(t *testing.T) {
	f := newTestServer("")
	calls := 0
	f.jobs.getFn = func(id string) (*ent.Job, error) {
		calls++
		if calls == 1 {
			j := sampleJob(id, job.StatusProcessing)
			j.ProgressPercent = 50
			return j, nil
		}
		j := sampleJob(id, job.StatusFailed)
		lastErr := "article generation failed: rate limited"
		j.LastError = &lastErr
		return j, nil
	}

	w := f.do(http.MethodGet, "/jobs/job-1/stream", nil)

	frames := parseSSE(t, w.Body.String())
	require.Len(t, frames, 2)
	assert.Equal(t, "progress", frames[0].event)
	assert.Equal(t, "failed", frames[1].event)

	var terminal JobResponse
	require.NoError(t, json.Unmarshal([]byte(frames[1].data), &terminal))
	require.NotNil(t, terminal.LastError)
	assert.Equal(t, "article generation failed: rate limited", *terminal.LastError)
}

func TestJobStreamUnknownJob(t *testing.T) {
	f := newTestServer("")
	w := f.do(http.MethodGet, "/jobs/missing/stream", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJobStreamFetchError(t *testing.T) {
	f := newTestServer("")
	calls := 0
	f.jobs.getFn = func(id string) (*ent.Job, error) {
		calls++
		if calls == 1 {
			return sampleJob(id, job.StatusProcessing), nil
		}
		return nil, services.ErrNotFound
	}

	w := f.do(http.MethodGet, "/jobs/job-1/stream", nil)

	frames := parseSSE(t, w.Body.String())
	require.Len(t, frames, 2)
	assert.Equal(t, "progress", frames[0].event)
	assert.Equal(t, "error", frames[1].event)
}

type globalStreamPayload struct {
	Jobs          []JobResponse `json:"jobs"`
	RemovedJobIDs []string      `json:"removedJobIds"`
}

func TestGlobalStreamChangeDetection(t *testing.T) {
	f := newTestServer("")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	f.jobs.activeFn = func() ([]*ent.Job, error) {
		calls++
		switch calls {
		case 1, 2:
			// Identical snapshots: only the first tick may emit.
			j := sampleJob("job-1", job.StatusProcessing)
			j.ProgressPercent = 15
			return []*ent.Job{j}, nil
		default:
			cancel() // exit after this tick is processed
			return nil, nil
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/jobs/stream", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	f.server.Router().ServeHTTP(w, req)

	frames := parseSSE(t, w.Body.String())
	require.Len(t, frames, 2, "unchanged tick must not emit")

	var initial globalStreamPayload
	require.NoError(t, json.Unmarshal([]byte(frames[0].data), &initial))
	assert.Equal(t, "jobs", frames[0].event)
	require.Len(t, initial.Jobs, 1)
	assert.Equal(t, "job-1", initial.Jobs[0].JobID)
	assert.Empty(t, initial.RemovedJobIDs)

	var final globalStreamPayload
	require.NoError(t, json.Unmarshal([]byte(frames[1].data), &final))
	assert.Empty(t, final.Jobs)
	assert.Equal(t, []string{"job-1"}, final.RemovedJobIDs)
}

func TestGlobalStreamEmitsOnProgressChange(t *testing.T) {
	f := newTestServer("")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	f.jobs.activeFn = func() ([]*ent.Job, error) {
		calls++
		j := sampleJob("job-1", job.StatusProcessing)
		if calls >= 2 {
			j.ProgressPercent = 50
			cancel()
		} else {
			j.ProgressPercent = 15
		}
		return []*ent.Job{j}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/jobs/stream", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	f.server.Router().ServeHTTP(w, req)

	frames := parseSSE(t, w.Body.String())
	require.Len(t, frames, 2)

	var second globalStreamPayload
	require.NoError(t, json.Unmarshal([]byte(frames[1].data), &second))
	require.Len(t, second.Jobs, 1)
	assert.Equal(t, 50, second.Jobs[0].ProgressPercent)
}

func TestGlobalStreamListError(t *testing.T) {
	f := newTestServer("")
	f.jobs.activeFn = func() ([]*ent.Job, error) {
		return nil, assert.AnError
	}

	w := f.do(http.MethodGet, "/jobs/stream", nil)

	frames := parseSSE(t, w.Body.String())
	require.Len(t, frames, 1)
	assert.Equal(t, "error", frames[0].event)
}
