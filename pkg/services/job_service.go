package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/copymill/copymill/ent"
	"github.com/copymill/copymill/ent/job"
	"github.com/copymill/copymill/pkg/models"
)

const (
	maxIterationsFloor   = 1
	maxIterationsCeiling = 10
	maxContextLength     = 2000
)

// JobService manages job lifecycle and the queue claim/cancel coordination.
// All multi-writer coordination goes through atomic conditional updates so
// the store stays the single source of truth.
type JobService struct {
	client *ent.Client
}

// NewJobService creates a new JobService
func NewJobService(client *ent.Client) *JobService {
	return &JobService{client: client}
}

// CreateJob creates a new pending job.
func (s *JobService) CreateJob(httpCtx context.Context, req models.CreateJobRequest) (*ent.Job, error) {
	if req.Keyword == "" {
		return nil, NewValidationError("keyword", "required")
	}
	if req.Settings.MaxIterations != 0 &&
		(req.Settings.MaxIterations < maxIterationsFloor || req.Settings.MaxIterations > maxIterationsCeiling) {
		return nil, NewValidationError("settings.maxIterations", fmt.Sprintf("must be between %d and %d", maxIterationsFloor, maxIterationsCeiling))
	}
	if req.Settings.TargetWordCount < 0 {
		return nil, NewValidationError("settings.targetWordCount", "must be >= 0")
	}
	if len(req.Settings.Context) > maxContextLength {
		return nil, NewValidationError("settings.context", fmt.Sprintf("must be at most %d characters", maxContextLength))
	}
	for agentType := range req.Settings.PersonaOverrides {
		if !models.ValidAgentType(string(agentType)) {
			return nil, NewValidationError("settings.personaOverrides", fmt.Sprintf("unknown agent type %q", agentType))
		}
	}
	for _, agentType := range req.Settings.SkipAgents {
		if !models.ValidAgentType(string(agentType)) {
			return nil, NewValidationError("settings.skipAgents", fmt.Sprintf("unknown agent type %q", agentType))
		}
	}

	maxIterations := req.Settings.MaxIterations
	if maxIterations == 0 {
		maxIterations = 5
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Job.Create().
		SetID(uuid.New().String()).
		SetKeyword(req.Keyword).
		SetStatus(job.StatusPending).
		SetSettings(req.Settings).
		SetMaxIterations(maxIterations).
		SetPriority(req.Priority)

	if req.CreatedBy != "" {
		builder = builder.SetCreatedBy(req.CreatedBy)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	return created, nil
}

// GetJob retrieves a job by ID.
func (s *JobService) GetJob(ctx context.Context, jobID string) (*ent.Job, error) {
	j, err := s.client.Job.Query().Where(job.IDEQ(jobID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

// ListJobs lists jobs with filtering and pagination. Returns the page and
// the total count matching the filters.
func (s *JobService) ListJobs(ctx context.Context, filters models.JobFilters) ([]*ent.Job, int, error) {
	query := s.client.Job.Query()

	if filters.Status != "" {
		query = query.Where(job.StatusEQ(job.Status(filters.Status)))
	}
	if filters.CreatedBy != "" {
		query = query.Where(job.CreatedByEQ(filters.CreatedBy))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	orderField := job.FieldCreatedAt
	switch filters.OrderBy {
	case "", "created_at":
	case "updated_at":
		orderField = job.FieldUpdatedAt
	case "priority":
		orderField = job.FieldPriority
	default:
		return nil, 0, NewValidationError("order_by", fmt.Sprintf("unsupported field %q", filters.OrderBy))
	}

	order := ent.Desc(orderField)
	if filters.OrderDirection == "asc" {
		order = ent.Asc(orderField)
	}

	jobs, err := query.
		Limit(limit).
		Offset(offset).
		Order(order).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, totalCount, nil
}

// ListActiveJobs returns all pending and processing jobs, oldest first.
// Used by the global progress stream poller.
func (s *JobService) ListActiveJobs(ctx context.Context) ([]*ent.Job, error) {
	jobs, err := s.client.Job.Query().
		Where(job.StatusIn(job.StatusPending, job.StatusProcessing)).
		Order(ent.Asc(job.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active jobs: %w", err)
	}
	return jobs, nil
}

// UpdateJob applies a partial patch to a job. Nil patch fields are ignored.
func (s *JobService) UpdateJob(ctx context.Context, jobID string, patch models.JobPatch) (*ent.Job, error) {
	update := s.client.Job.UpdateOneID(jobID)

	if patch.Status != nil {
		update = update.SetStatus(job.Status(*patch.Status))
	}
	if patch.ClearCurrentAgent {
		update = update.ClearCurrentAgent()
	} else if patch.CurrentAgent != nil {
		update = update.SetCurrentAgent(*patch.CurrentAgent)
	}
	if patch.CurrentIteration != nil {
		update = update.SetCurrentIteration(*patch.CurrentIteration)
	}
	if patch.ProgressPercent != nil {
		update = update.SetProgressPercent(*patch.ProgressPercent)
	}
	if patch.FinalOutput != nil {
		update = update.SetFinalOutput(patch.FinalOutput)
	}
	if patch.PageID != nil {
		update = update.SetPageID(*patch.PageID)
	}
	if patch.LastError != nil {
		update = update.SetLastError(*patch.LastError)
	}
	if patch.CancelRequested != nil {
		update = update.SetCancelRequested(*patch.CancelRequested)
	}
	if patch.StartedAt != nil {
		update = update.SetStartedAt(*patch.StartedAt)
	}
	if patch.CompletedAt != nil {
		update = update.SetCompletedAt(*patch.CompletedAt)
	}
	if patch.HeartbeatAt != nil {
		update = update.SetHeartbeatAt(*patch.HeartbeatAt)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return updated, nil
}

// CancelJob cancels a pending job. Cancelling an already-cancelled job is
// idempotent and returns the job unchanged. Any other status is rejected
// with a transition error; processing jobs are only cancellable through the
// cooperative flag (RequestCancel).
func (s *JobService) CancelJob(ctx context.Context, jobID, userID string) (*ent.Job, error) {
	j, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	switch j.Status {
	case job.StatusCancelled:
		return j, nil
	case job.StatusPending:
		// fallthrough to the conditional update below
	default:
		return nil, NewTransitionError(fmt.Sprintf("Cannot cancel job in status: %s", j.Status))
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Conditional update: only cancel if still pending. A worker may claim
	// the job between the read above and this write.
	count, err := s.client.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(job.StatusPending),
		).
		SetStatus(job.StatusCancelled).
		SetCancelRequested(true).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel job: %w", err)
	}
	if count == 0 {
		// Lost the race; report the transition that actually applies now.
		j, err = s.GetJob(writeCtx, jobID)
		if err != nil {
			return nil, err
		}
		if j.Status == job.StatusCancelled {
			return j, nil
		}
		return nil, NewTransitionError(fmt.Sprintf("Cannot cancel job in status: %s", j.Status))
	}

	return s.GetJob(writeCtx, jobID)
}

// RequestCancel sets the cooperative cancellation flag on a processing job.
// The orchestrator observes the flag between agents and finishes the job as
// cancelled at the next checkpoint. Pending jobs should use CancelJob.
func (s *JobService) RequestCancel(ctx context.Context, jobID string) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Job.UpdateOneID(jobID).
		SetCancelRequested(true).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to request cancellation: %w", err)
	}
	return nil
}

// IsCancelled is the cheap cancellation check the orchestrator runs between
// agents. True when the flag is set or the job already reached cancelled.
func (s *JobService) IsCancelled(ctx context.Context, jobID string) (bool, error) {
	j, err := s.client.Job.Query().
		Where(job.IDEQ(jobID)).
		Select(job.FieldCancelRequested, job.FieldStatus).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to read cancellation flag: %w", err)
	}
	return j.CancelRequested || j.Status == job.StatusCancelled, nil
}

// RetryJob resets a failed job back to pending. Only failed jobs can be
// retried; partial downstream artifacts are not compensated.
func (s *JobService) RetryJob(ctx context.Context, jobID string) (*ent.Job, error) {
	j, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.Status != job.StatusFailed {
		return nil, NewTransitionError("Can only retry failed jobs")
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(job.StatusFailed),
		).
		SetStatus(job.StatusPending).
		SetCurrentIteration(1).
		SetProgressPercent(0).
		SetCancelRequested(false).
		ClearCurrentAgent().
		ClearLastError().
		ClearFinalOutput().
		ClearPageID().
		ClearStartedAt().
		ClearCompletedAt().
		ClearPodID().
		ClearHeartbeatAt().
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to retry job: %w", err)
	}
	if count == 0 {
		return nil, NewTransitionError("Can only retry failed jobs")
	}

	return s.GetJob(writeCtx, jobID)
}

// ClaimNextPendingJob atomically claims the next pending job for podID and
// transitions it to processing. Returns nil when no job is claimable.
// Highest priority wins; FIFO within a priority. Row locking with SKIP
// LOCKED keeps concurrent workers from double-claiming.
func (s *JobService) ClaimNextPendingJob(ctx context.Context, podID string) (*ent.Job, error) {
	// Use background context with timeout: a claim must not be torn by an
	// HTTP client disconnect mid-transaction.
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	candidate, err := tx.Job.Query().
		Where(job.StatusEQ(job.StatusPending)).
		Order(ent.Desc(job.FieldPriority), ent.Asc(job.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // Nothing pending
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	now := time.Now()
	claimed, err := tx.Job.UpdateOneID(candidate.ID).
		SetStatus(job.StatusProcessing).
		SetPodID(podID).
		SetStartedAt(now).
		SetHeartbeatAt(now).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return claimed, nil
}

// Heartbeat refreshes the liveness marker on a processing job.
func (s *JobService) Heartbeat(ctx context.Context, jobID string) error {
	err := s.client.Job.UpdateOneID(jobID).
		SetHeartbeatAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update heartbeat: %w", err)
	}
	return nil
}

// AddTokenUsage accumulates token and cost totals on the job row. Totals
// only grow; the orchestrator owning the job is the single writer.
func (s *JobService) AddTokenUsage(ctx context.Context, jobID string, tokens int, costUSD float64) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Job.UpdateOneID(jobID).
		AddTotalTokensUsed(tokens).
		AddEstimatedCostUsd(costUSD).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to add token usage: %w", err)
	}
	return nil
}

// FinishJob moves a job to a terminal status, stamping completed_at and
// clearing the in-flight markers. Uses a background context so terminal
// writes survive a cancelled request context.
func (s *JobService) FinishJob(ctx context.Context, jobID string, status job.Status, lastError string) error {
	if status != job.StatusCompleted && status != job.StatusFailed && status != job.StatusCancelled {
		return NewTransitionError(fmt.Sprintf("status %s is not terminal", status))
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Job.UpdateOneID(jobID).
		SetStatus(status).
		SetCompletedAt(time.Now()).
		ClearCurrentAgent().
		ClearHeartbeatAt()

	if lastError != "" {
		update = update.SetLastError(lastError)
	}
	if status == job.StatusCompleted {
		update = update.SetProgressPercent(100)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to finish job: %w", err)
	}
	return nil
}

// ListProcessingJobsByPod returns the processing jobs claimed by a pod.
// Used by the startup recovery sweep: after a restart, anything this pod
// still "owns" was abandoned mid-flight.
func (s *JobService) ListProcessingJobsByPod(ctx context.Context, podID string) ([]*ent.Job, error) {
	jobs, err := s.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusProcessing),
			job.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processing jobs for pod: %w", err)
	}
	return jobs, nil
}

// FindStuckJobs returns processing jobs whose heartbeat and last update are
// both older than timeout. These were abandoned by a crashed worker.
func (s *JobService) FindStuckJobs(ctx context.Context, timeout time.Duration) ([]*ent.Job, error) {
	threshold := time.Now().Add(-timeout)

	jobs, err := s.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusProcessing),
			job.HeartbeatAtNotNil(),
			job.HeartbeatAtLT(threshold),
			job.UpdatedAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find stuck jobs: %w", err)
	}
	return jobs, nil
}

// ResetStuckJob returns an abandoned processing job to the queue (or fails
// it, per policy), marking last_error with a stuck notice. The conditional
// predicate keeps a live worker's finish from being overwritten.
func (s *JobService) ResetStuckJob(ctx context.Context, jobID string, toStatus job.Status, reason string) (bool, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(job.StatusProcessing),
		).
		SetLastError(reason).
		ClearPodID().
		ClearHeartbeatAt().
		ClearCurrentAgent()

	switch toStatus {
	case job.StatusPending:
		update = update.
			SetStatus(job.StatusPending).
			SetProgressPercent(0).
			ClearStartedAt()
	case job.StatusFailed:
		update = update.
			SetStatus(job.StatusFailed).
			SetCompletedAt(time.Now())
	default:
		return false, NewTransitionError(fmt.Sprintf("stuck jobs cannot be reset to %s", toStatus))
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to reset stuck job: %w", err)
	}
	return count > 0, nil
}

// PurgeOldJobs deletes terminal jobs whose completed_at is older than the
// retention window. Steps and evaluations go with them via cascade.
// Returns the number of jobs deleted.
func (s *JobService) PurgeOldJobs(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	count, err := s.client.Job.Delete().
		Where(
			job.StatusIn(job.StatusCompleted, job.StatusFailed, job.StatusCancelled),
			job.CompletedAtNotNil(),
			job.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge old jobs: %w", err)
	}
	return count, nil
}

// CountByStatus returns the number of jobs in the given status.
func (s *JobService) CountByStatus(ctx context.Context, status job.Status) (int, error) {
	count, err := s.client.Job.Query().
		Where(job.StatusEQ(status)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return count, nil
}

// CountProcessingForPod returns the number of processing jobs claimed by the
// given pod. Used by workers for the per-pod capacity gate.
func (s *JobService) CountProcessingForPod(ctx context.Context, podID string) (int, error) {
	count, err := s.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusProcessing),
			job.PodIDEQ(podID),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count processing jobs for pod: %w", err)
	}
	return count, nil
}
