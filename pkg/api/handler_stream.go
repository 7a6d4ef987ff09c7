package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/copymill/copymill/ent"
	"github.com/copymill/copymill/ent/job"
)

// Poll cadences for the SSE streams.
const (
	jobStreamPollInterval    = 500 * time.Millisecond
	globalStreamPollInterval = 1000 * time.Millisecond
)

// sseHeaders prepares the response for server-sent events.
func sseHeaders(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()
}

// sseEvent writes one event frame and flushes it to the client.
func sseEvent(c *gin.Context, name string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshalling %s event: %w", name, err)
	}
	if _, err := fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", name, data); err != nil {
		return err
	}
	c.Writer.Flush()
	return nil
}

// terminalEventName maps a terminal job status to its SSE event name.
func terminalEventName(status job.Status) (string, bool) {
	switch status {
	case job.StatusCompleted:
		return "complete", true
	case job.StatusFailed:
		return "failed", true
	case job.StatusCancelled:
		return "cancelled", true
	}
	return "", false
}

// handleJobStream handles GET /jobs/:id/stream: a per-job SSE progress
// feed. Emits progress events while the job is live and exactly one
// terminal event, then closes.
func (s *Server) handleJobStream(c *gin.Context) {
	jobID := c.Param("id")
	ctx := c.Request.Context()

	j, err := s.jobs.GetJob(ctx, jobID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	sseHeaders(c)

	// The job may already be terminal at connect time; emit the terminal
	// event immediately and close.
	if name, terminal := terminalEventName(j.Status); terminal {
		_ = sseEvent(c, name, toJobResponse(j))
		return
	}
	if err := sseEvent(c, "progress", toJobResponse(j)); err != nil {
		return
	}

	ticker := time.NewTicker(jobStreamPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j, err := s.jobs.GetJob(ctx, jobID)
			if err != nil {
				_ = sseEvent(c, "error", gin.H{"error": err.Error()})
				return
			}
			if name, terminal := terminalEventName(j.Status); terminal {
				_ = sseEvent(c, name, toJobResponse(j))
				return
			}
			if err := sseEvent(c, "progress", toJobResponse(j)); err != nil {
				return
			}
		}
	}
}

// jobSnapshot is the per-client change-detection state for one tracked job.
type jobSnapshot struct {
	status   job.Status
	progress int
	agent    string
}

func snapshotOf(j *ent.Job) jobSnapshot {
	snap := jobSnapshot{status: j.Status, progress: j.ProgressPercent}
	if j.CurrentAgent != nil {
		snap.agent = *j.CurrentAgent
	}
	return snap
}

// handleGlobalStream handles GET /jobs/stream: an SSE feed of all active
// (pending or processing) jobs. A jobs event fires only when a tracked job
// changed, appeared, or left the active set; the payload carries the full
// current active set plus the IDs that left. State is per client.
func (s *Server) handleGlobalStream(c *gin.Context) {
	ctx := c.Request.Context()
	sseHeaders(c)

	tracked := make(map[string]jobSnapshot)
	first := true

	ticker := time.NewTicker(globalStreamPollInterval)
	defer ticker.Stop()

	for {
		active, err := s.jobs.ListActiveJobs(ctx)
		if err != nil {
			_ = sseEvent(c, "error", gin.H{"error": err.Error()})
			return
		}

		current := make(map[string]jobSnapshot, len(active))
		changed := first
		for _, j := range active {
			snap := snapshotOf(j)
			current[j.ID] = snap
			if prev, ok := tracked[j.ID]; !ok || prev != snap {
				changed = true
			}
		}

		var removed []string
		for id := range tracked {
			if _, ok := current[id]; !ok {
				removed = append(removed, id)
				changed = true
			}
		}

		if changed {
			payload := gin.H{
				"jobs":          toJobResponses(active),
				"removedJobIds": removed,
			}
			if removed == nil {
				payload["removedJobIds"] = []string{}
			}
			if err := sseEvent(c, "jobs", payload); err != nil {
				return
			}
		}

		tracked = current
		first = false

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
