package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/copymill/copymill/ent/job"
	"github.com/copymill/copymill/pkg/models"
	"github.com/copymill/copymill/pkg/services"
)

// handleCreateJob handles POST /jobs.
func (s *Server) handleCreateJob(c *gin.Context) {
	var req models.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.CreatedBy == "" {
		req.CreatedBy = extractAuthor(c)
	}

	created, err := s.jobs.CreateJob(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	slog.Info("Job created", "job_id", created.ID, "keyword", created.Keyword, "created_by", created.CreatedBy)
	c.JSON(http.StatusOK, toJobResponse(created))
}

// handleListJobs handles GET /jobs with status/creator filters and paging.
func (s *Server) handleListJobs(c *gin.Context) {
	status := c.Query("status")
	if status != "" {
		if err := job.StatusValidator(job.Status(status)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + status})
			return
		}
	}

	filters := models.JobFilters{
		Status:         status,
		CreatedBy:      c.Query("created_by"),
		Limit:          intQuery(c, "limit", 20),
		Offset:         intQuery(c, "offset", 0),
		OrderBy:        c.Query("order_by"),
		OrderDirection: c.Query("order_direction"),
	}

	jobs, total, err := s.jobs.ListJobs(c.Request.Context(), filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":  toJobResponses(jobs),
		"total": total,
	})
}

// handleGetJob handles GET /jobs/:id. The detail view includes the step log
// and QA evaluations.
func (s *Server) handleGetJob(c *gin.Context) {
	jobID := c.Param("id")

	j, err := s.jobs.GetJob(c.Request.Context(), jobID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	steps, err := s.steps.ListSteps(c.Request.Context(), jobID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	evals, err := s.evals.ListEvals(c.Request.Context(), jobID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job":   toJobResponse(j),
		"steps": toStepResponses(steps),
		"evals": toEvalResponses(evals),
	})
}

// handleCancelJob handles POST /jobs/:id/cancel. Pending jobs cancel
// directly; processing jobs get the cooperative flag plus a best-effort
// local context cancel, and the orchestrator finishes the job at its next
// checkpoint.
func (s *Server) handleCancelJob(c *gin.Context) {
	jobID := c.Param("id")
	ctx := c.Request.Context()

	j, err := s.jobs.GetJob(ctx, jobID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	if j.Status == job.StatusProcessing {
		if err := s.jobs.RequestCancel(ctx, jobID); err != nil {
			mapServiceError(c, err)
			return
		}
		if s.pool.CancelJob(jobID) {
			slog.Info("Cancelled local job context", "job_id", jobID)
		}
		j, err = s.jobs.GetJob(ctx, jobID)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		slog.Info("Job cancellation requested", "job_id", jobID, "requested_by", extractAuthor(c))
		c.JSON(http.StatusOK, toJobResponse(j))
		return
	}

	cancelled, err := s.jobs.CancelJob(ctx, jobID, extractAuthor(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	slog.Info("Job cancelled", "job_id", jobID, "requested_by", extractAuthor(c))
	c.JSON(http.StatusOK, toJobResponse(cancelled))
}

// handleRetryJob handles POST /jobs/:id/retry.
func (s *Server) handleRetryJob(c *gin.Context) {
	jobID := c.Param("id")

	retried, err := s.jobs.RetryJob(c.Request.Context(), jobID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	slog.Info("Job retried", "job_id", jobID, "requested_by", extractAuthor(c))
	c.JSON(http.StatusOK, toJobResponse(retried))
}

// handleJobLogs handles GET /jobs/:id/logs. Returns the last 100 system-log
// rows for the job, newest first.
func (s *Server) handleJobLogs(c *gin.Context) {
	jobID := c.Param("id")
	ctx := c.Request.Context()

	if _, err := s.jobs.GetJob(ctx, jobID); err != nil {
		mapServiceError(c, err)
		return
	}

	rows, err := s.logs.ListForEntity(ctx, services.EntityTypeJob, jobID, 100)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": toLogResponses(rows)})
}

// intQuery parses an integer query parameter, falling back on absence or
// garbage.
func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
