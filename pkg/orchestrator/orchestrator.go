// Package orchestrator drives a claimed job through the agent pipeline:
// research → writer → seo → qa → project_manager, with the QA→writer
// back-edge bounded by max_iterations. It owns every job-row write after the
// claim, including the terminal transition, so the queue worker only claims,
// heartbeats, and reports.
package orchestrator

import (
	"context"

	"github.com/copymill/copymill/ent"
	"github.com/copymill/copymill/ent/job"
	"github.com/copymill/copymill/pkg/models"
)

// JobStore is the job-row surface the orchestrator needs. Satisfied by
// services.JobService.
type JobStore interface {
	UpdateJob(ctx context.Context, jobID string, patch models.JobPatch) (*ent.Job, error)
	IsCancelled(ctx context.Context, jobID string) (bool, error)
	FinishJob(ctx context.Context, jobID string, status job.Status, lastError string) error
	AddTokenUsage(ctx context.Context, jobID string, tokens int, costUSD float64) error
}

// StepStore persists step rows. Satisfied by services.StepService.
type StepStore interface {
	CreateStep(ctx context.Context, req models.CreateStepRequest) (*ent.JobStep, error)
	CreateSkippedStep(ctx context.Context, jobID string, agentType models.AgentType, iteration int) (*ent.JobStep, error)
	MarkStepCompleted(ctx context.Context, stepID string, output map[string]interface{}, tokensUsed, promptTokens, completionTokens, durationMs int) (*ent.JobStep, error)
	MarkStepFailed(ctx context.Context, stepID, errorMessage string, tokensUsed, durationMs int) (*ent.JobStep, error)
}

// PersonaResolver resolves the persona an agent runs under. Satisfied by
// services.PersonaService.
type PersonaResolver interface {
	ResolvePersona(ctx context.Context, agentType models.AgentType, overrideID string) (*ent.Persona, error)
}

// Result is the outcome of one orchestrated job execution.
type Result struct {
	JobID      string
	Success    bool
	Iterations int
	Cancelled  bool
	Err        error
}
