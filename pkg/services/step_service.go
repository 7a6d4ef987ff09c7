package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/copymill/copymill/ent"
	"github.com/copymill/copymill/ent/jobstep"
	"github.com/copymill/copymill/pkg/models"
)

// StepService manages the append-only per-job step log.
type StepService struct {
	client *ent.Client
}

// NewStepService creates a new StepService
func NewStepService(client *ent.Client) *StepService {
	return &StepService{client: client}
}

// CreateStep appends a running step for an agent invocation and returns it.
// The step id is handed to the agent context so the agent's log sink and the
// QA eval row can reference it.
func (s *StepService) CreateStep(httpCtx context.Context, req models.CreateStepRequest) (*ent.JobStep, error) {
	if req.JobID == "" {
		return nil, NewValidationError("job_id", "required")
	}
	if !models.ValidAgentType(string(req.AgentType)) {
		return nil, NewValidationError("agent_type", fmt.Sprintf("unknown agent type %q", req.AgentType))
	}
	if req.Iteration < 1 {
		return nil, NewValidationError("iteration", "must be >= 1")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.JobStep.Create().
		SetID(uuid.New().String()).
		SetJobID(req.JobID).
		SetAgentType(jobstep.AgentType(req.AgentType)).
		SetIteration(req.Iteration).
		SetStatus(jobstep.StatusRunning).
		SetStartedAt(time.Now())

	if req.Input != nil {
		builder = builder.SetInput(req.Input)
	}

	step, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create step: %w", err)
	}
	return step, nil
}

// CreateSkippedStep records that an agent was deliberately skipped via
// settings.skipAgents. Zero tokens, no input or output.
func (s *StepService) CreateSkippedStep(httpCtx context.Context, jobID string, agentType models.AgentType, iteration int) (*ent.JobStep, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	step, err := s.client.JobStep.Create().
		SetID(uuid.New().String()).
		SetJobID(jobID).
		SetAgentType(jobstep.AgentType(agentType)).
		SetIteration(iteration).
		SetStatus(jobstep.StatusSkipped).
		SetStartedAt(now).
		SetCompletedAt(now).
		SetDurationMs(0).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create skipped step: %w", err)
	}
	return step, nil
}

// UpdateStep applies a partial patch to a step. Nil patch fields are ignored.
// Terminal updates run on a background context so they land even when the
// job's context was cancelled.
func (s *StepService) UpdateStep(ctx context.Context, stepID string, patch models.StepPatch) (*ent.JobStep, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := s.client.JobStep.UpdateOneID(stepID)

	if patch.Status != nil {
		update = update.SetStatus(jobstep.Status(*patch.Status))
	}
	if patch.TokensUsed != nil {
		update = update.SetTokensUsed(*patch.TokensUsed)
	}
	if patch.PromptTokens != nil {
		update = update.SetPromptTokens(*patch.PromptTokens)
	}
	if patch.CompletionTokens != nil {
		update = update.SetCompletionTokens(*patch.CompletionTokens)
	}
	if patch.DurationMs != nil {
		update = update.SetDurationMs(*patch.DurationMs)
	}
	if patch.Output != nil {
		update = update.SetOutput(patch.Output)
	}
	if len(patch.AppendLogs) > 0 {
		update = update.AppendLogs(patch.AppendLogs)
	}
	if patch.ErrorMessage != nil {
		update = update.SetErrorMessage(*patch.ErrorMessage)
	}
	if patch.StartedAt != nil {
		update = update.SetStartedAt(*patch.StartedAt)
	}
	if patch.CompletedAt != nil {
		update = update.SetCompletedAt(*patch.CompletedAt)
	}

	step, err := update.Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update step: %w", err)
	}
	return step, nil
}

// MarkStepCompleted finalizes a successful step with its output and usage.
func (s *StepService) MarkStepCompleted(ctx context.Context, stepID string, output map[string]interface{}, tokensUsed, promptTokens, completionTokens, durationMs int) (*ent.JobStep, error) {
	status := string(jobstep.StatusCompleted)
	now := time.Now()
	return s.UpdateStep(ctx, stepID, models.StepPatch{
		Status:           &status,
		Output:           output,
		TokensUsed:       &tokensUsed,
		PromptTokens:     &promptTokens,
		CompletionTokens: &completionTokens,
		DurationMs:       &durationMs,
		CompletedAt:      &now,
	})
}

// MarkStepFailed finalizes a failed step, preserving partial token usage.
func (s *StepService) MarkStepFailed(ctx context.Context, stepID, errorMessage string, tokensUsed, durationMs int) (*ent.JobStep, error) {
	status := string(jobstep.StatusFailed)
	now := time.Now()
	return s.UpdateStep(ctx, stepID, models.StepPatch{
		Status:       &status,
		ErrorMessage: &errorMessage,
		TokensUsed:   &tokensUsed,
		DurationMs:   &durationMs,
		CompletedAt:  &now,
	})
}

// GetStep retrieves a step by ID.
func (s *StepService) GetStep(ctx context.Context, stepID string) (*ent.JobStep, error) {
	step, err := s.client.JobStep.Query().Where(jobstep.IDEQ(stepID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get step: %w", err)
	}
	return step, nil
}

// ListSteps returns all steps for a job in execution order.
func (s *StepService) ListSteps(ctx context.Context, jobID string) ([]*ent.JobStep, error) {
	steps, err := s.client.JobStep.Query().
		Where(jobstep.JobIDEQ(jobID)).
		Order(ent.Asc(jobstep.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}
	return steps, nil
}

// AppendStepLogs appends log lines to a step's append-only log.
func (s *StepService) AppendStepLogs(ctx context.Context, stepID string, lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	err := s.client.JobStep.UpdateOneID(stepID).
		AppendLogs(lines).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to append step logs: %w", err)
	}
	return nil
}
