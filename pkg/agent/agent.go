// Package agent contains the five pipeline agents (research, writer, seo,
// qa, project_manager) and the registry that dispatches them. Agents are
// stateless process-wide singletons: all per-job state travels through the
// Input and RunContext of a single Execute call, so concurrent execution for
// different jobs is safe.
package agent

import (
	"context"

	"github.com/copymill/copymill/ent"
	"github.com/copymill/copymill/pkg/llm"
	"github.com/copymill/copymill/pkg/models"
	"github.com/copymill/copymill/pkg/research"
)

// Input carries the pipeline artifacts an agent may consume. The orchestrator
// fills the fields relevant to each agent; ValidateInput rejects inputs
// missing what that agent needs.
type Input struct {
	Keyword         string
	Context         string
	TargetWordCount int
	Settings        models.JobSettings
	Iteration       int

	Research *models.ResearchOutput
	Article  *models.WriterOutput
	SEO      *models.SEOOutput
	QA       *models.QAOutput

	// Feedback-loop state, set on iteration > 1.
	QAFeedback      string
	IssuesToFix     []models.Issue
	PreviousArticle *models.WriterOutput

	// PreviousIssues are the prior iteration's QA issues, for the QA agent's
	// fixed/persisting bookkeeping.
	PreviousIssues []models.Issue
}

// Result is the uniform outcome of one agent invocation. Usage and cost are
// populated even on failure (partial tokens from failed LLM attempts).
type Result struct {
	Success bool

	// Output is the agent's typed output (one of the models.*Output structs).
	// Non-nil iff Success.
	Output any

	Usage   llm.Usage
	CostUSD float64

	// ContinueToNext tells the orchestrator whether the pipeline should
	// advance. QA sets it false when the article needs another writer pass.
	ContinueToNext bool

	Err      error
	Feedback string
}

func failure(err error) *Result {
	return &Result{Err: err}
}

// LogSink receives structured log lines scoped to a job. Satisfied by
// services.SystemLogService.
type LogSink interface {
	Info(jobID, message string, data map[string]any)
	Warn(jobID, message string, data map[string]any)
	Error(jobID, message string, data map[string]any)
}

// EvalRecorder persists QA evaluation rows. Satisfied by services.EvalService.
type EvalRecorder interface {
	InsertEval(ctx context.Context, req models.CreateEvalRequest) (*ent.JobEval, error)
}

// RunContext is the per-invocation environment handed to an agent alongside
// its input. It carries handles, never mutable agent state.
type RunContext struct {
	Job       *ent.Job
	Persona   *ent.Persona
	Iteration int
	StepID    string

	LLM      llm.Provider
	Research research.Source
	Evals    EvalRecorder
	Log      LogSink

	// Progress reports sub-step progress messages. May be nil.
	Progress func(message string)
}

func (rc *RunContext) progress(message string) {
	if rc.Progress != nil {
		rc.Progress(message)
	}
}

func (rc *RunContext) logInfo(message string, data map[string]any) {
	if rc.Log != nil && rc.Job != nil {
		rc.Log.Info(rc.Job.ID, message, data)
	}
}

func (rc *RunContext) logWarn(message string, data map[string]any) {
	if rc.Log != nil && rc.Job != nil {
		rc.Log.Warn(rc.Job.ID, message, data)
	}
}

// Agent is the uniform contract all five pipeline agents implement.
type Agent interface {
	AgentType() models.AgentType
	Name() string
	Description() string

	// ValidateInput rejects inputs missing required fields before a step row
	// is even created.
	ValidateInput(in Input) error

	// OutputSchema describes the shape Execute's output must conform to.
	OutputSchema() llm.Schema

	Execute(ctx context.Context, in Input, rc *RunContext) *Result
}
