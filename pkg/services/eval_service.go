package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/copymill/copymill/ent"
	"github.com/copymill/copymill/ent/jobeval"
	"github.com/copymill/copymill/pkg/models"
)

// EvalService persists QA evaluation records.
type EvalService struct {
	client *ent.Client
}

// NewEvalService creates a new EvalService
func NewEvalService(client *ent.Client) *EvalService {
	return &EvalService{client: client}
}

// InsertEval records one QA evaluation, linked to the QA step that ran it.
func (s *EvalService) InsertEval(httpCtx context.Context, req models.CreateEvalRequest) (*ent.JobEval, error) {
	if req.JobID == "" {
		return nil, NewValidationError("job_id", "required")
	}
	if req.StepID == "" {
		return nil, NewValidationError("step_id", "required")
	}
	if req.OverallScore < 0 || req.OverallScore > 100 {
		return nil, NewValidationError("overall_score", "must be between 0 and 100")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.JobEval.Create().
		SetID(uuid.New().String()).
		SetJobID(req.JobID).
		SetStepID(req.StepID).
		SetIteration(req.Iteration).
		SetOverallScore(req.OverallScore).
		SetReadabilityScore(req.ReadabilityScore).
		SetSeoScore(req.SEOScore).
		SetAccuracyScore(req.AccuracyScore).
		SetEngagementScore(req.EngagementScore).
		SetBrandVoiceScore(req.BrandVoiceScore).
		SetPassed(req.Passed).
		SetFeedback(req.Feedback)

	if req.Issues != nil {
		builder = builder.SetIssues(req.Issues)
	}
	if req.FixedIssueIDs != nil {
		builder = builder.SetFixedIssueIds(req.FixedIssueIDs)
	}
	if req.PersistingIssueIDs != nil {
		builder = builder.SetPersistingIssueIds(req.PersistingIssueIDs)
	}

	eval, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to insert eval: %w", err)
	}
	return eval, nil
}

// ListEvals returns all evals for a job, oldest first.
func (s *EvalService) ListEvals(ctx context.Context, jobID string) ([]*ent.JobEval, error) {
	evals, err := s.client.JobEval.Query().
		Where(jobeval.JobIDEQ(jobID)).
		Order(ent.Asc(jobeval.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list evals: %w", err)
	}
	return evals, nil
}
