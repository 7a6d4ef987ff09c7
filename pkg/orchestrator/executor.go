package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/copymill/copymill/ent"
	"github.com/copymill/copymill/ent/job"
	"github.com/copymill/copymill/pkg/agent"
	"github.com/copymill/copymill/pkg/llm"
	"github.com/copymill/copymill/pkg/metrics"
	"github.com/copymill/copymill/pkg/models"
	"github.com/copymill/copymill/pkg/research"
	"github.com/copymill/copymill/pkg/services"
)

// internalErrorMessage is what lands in last_error when the orchestrator
// itself breaks; the real detail goes to the log sink only.
const internalErrorMessage = "Internal orchestrator error"

// Dependencies are the collaborators an Executor needs.
type Dependencies struct {
	Registry *agent.Registry
	Jobs     JobStore
	Steps    StepStore
	Personas PersonaResolver
	LLM      llm.Provider
	Research research.Source
	Evals    agent.EvalRecorder
	Logs     agent.LogSink

	// OnCancelled fires exactly once per execution that ends in cancelled.
	// May be nil.
	OnCancelled func(jobID string)
}

// Executor runs the pipeline state machine for one claimed job at a time.
// It is stateless across jobs and safe for concurrent Execute calls.
type Executor struct {
	deps Dependencies
}

// NewExecutor creates the pipeline executor.
func NewExecutor(deps Dependencies) *Executor {
	return &Executor{deps: deps}
}

// artifacts carries the inter-agent pipeline state for one job.
type artifacts struct {
	research *models.ResearchOutput
	article  *models.WriterOutput
	seo      *models.SEOOutput
	qa       *models.QAOutput
	pm       *models.ProjectManagerOutput

	// Feedback-loop state, valid from the second iteration on.
	qaFeedback      string
	issuesToFix     []models.Issue
	previousArticle *models.WriterOutput
	previousIssues  []models.Issue
}

// Execute drives a claimed (status=processing) job to a terminal status.
// All persistence happens here; the caller only claims and heartbeats.
func (e *Executor) Execute(ctx context.Context, j *ent.Job) (res *Result) {
	res = &Result{JobID: j.ID}
	log := slog.With("job_id", j.ID, "keyword", j.Keyword)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			log.Error("Orchestrator panic", "panic", r, "stack", string(debug.Stack()))
			e.logError(j.ID, internalErrorMessage, map[string]any{"panic": fmt.Sprint(r)})
			_ = e.deps.Jobs.FinishJob(context.Background(), j.ID, job.StatusFailed, internalErrorMessage)
			metrics.JobFinished(string(job.StatusFailed), time.Since(start))
			res = &Result{JobID: j.ID, Iterations: res.Iterations, Err: errors.New(internalErrorMessage)}
		}
	}()

	settings := j.Settings
	skip := settings.SkipSet()
	iteration := j.CurrentIteration
	if iteration < 1 {
		iteration = 1
	}
	res.Iterations = iteration

	if len(skip) >= len(models.PipelineOrder) {
		err := services.NewValidationError("settings.skipAgents", "every agent is skipped; nothing to execute")
		return e.fail(j.ID, res, err, time.Since(start))
	}

	if cancelled := e.isCancelled(ctx, j.ID); cancelled {
		return e.finishCancelled(j.ID, res, time.Since(start))
	}

	maxIterations := j.MaxIterations
	if maxIterations < 1 {
		maxIterations = 1
	}

	tracker := newProgressTracker()
	var art artifacts

	idx := 0
	for idx < len(models.PipelineOrder) {
		agentType := models.PipelineOrder[idx]

		if skip[agentType] {
			if _, err := e.deps.Steps.CreateSkippedStep(ctx, j.ID, agentType, iteration); err != nil {
				return e.fail(j.ID, res, fmt.Errorf("record skipped step %s: %w", agentType, err), time.Since(start))
			}
			e.reportProgress(j.ID, tracker.complete(agentType))
			idx++
			continue
		}

		// Cancellation checkpoint: the only observation point inside a job.
		if e.isCancelled(ctx, j.ID) {
			return e.finishCancelled(j.ID, res, time.Since(start))
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return e.fail(j.ID, res, errors.New("Job timed out"), time.Since(start))
		}
		if errors.Is(ctx.Err(), context.Canceled) {
			// Shutdown without a cancel request: leave the job in processing
			// for the crash-recovery sweep to requeue.
			log.Warn("Execution interrupted by shutdown", "agent", agentType)
			res.Err = ctx.Err()
			return res
		}

		ag, err := e.deps.Registry.Get(agentType)
		if err != nil {
			return e.fail(j.ID, res, fmt.Errorf("agent not found: %s", agentType), time.Since(start))
		}
		persona, err := e.deps.Personas.ResolvePersona(ctx, agentType, settings.PersonaOverrides[agentType])
		if err != nil {
			return e.fail(j.ID, res, fmt.Errorf("persona not found for agent %s: %w", agentType, err), time.Since(start))
		}

		in := buildInput(j, settings, iteration, &art)

		stepResult, cancelled, err := e.runStep(ctx, j, ag, agentType, persona, in, iteration)
		if cancelled {
			return e.finishCancelled(j.ID, res, time.Since(start))
		}
		if err != nil {
			return e.fail(j.ID, res, err, time.Since(start))
		}

		art.store(stepResult.Output)
		e.reportProgress(j.ID, tracker.complete(agentType))

		if agentType == models.AgentTypeQA && art.qa != nil &&
			!art.qa.Passed && iteration < maxIterations && !skip[models.AgentTypeWriter] {
			iteration++
			res.Iterations = iteration
			art.qaFeedback = art.qa.Feedback
			art.issuesToFix = art.qa.Issues
			art.previousIssues = art.qa.Issues
			art.previousArticle = art.article
			tracker.restartIteration()

			if _, err := e.deps.Jobs.UpdateJob(ctx, j.ID, models.JobPatch{CurrentIteration: &iteration}); err != nil {
				log.Warn("Failed to persist iteration counter", "error", err)
			}
			log.Info("QA rejected draft, looping back to writer",
				"iteration", iteration, "score", art.qa.OverallScore, "issues", len(art.qa.Issues))

			idx = pipelineIndex(models.AgentTypeWriter)
			continue
		}

		idx++
	}

	if art.pm != nil {
		if _, err := e.deps.Jobs.UpdateJob(ctx, j.ID, models.JobPatch{FinalOutput: toMap(art.pm)}); err != nil {
			return e.fail(j.ID, res, fmt.Errorf("persist final output: %w", err), time.Since(start))
		}
	}
	if err := e.deps.Jobs.FinishJob(ctx, j.ID, job.StatusCompleted, ""); err != nil {
		res.Err = fmt.Errorf("finish job: %w", err)
		return res
	}

	metrics.JobFinished(string(job.StatusCompleted), time.Since(start))
	e.logInfo(j.ID, "Job completed", map[string]any{
		"iterations": res.Iterations,
		"duration":   time.Since(start).String(),
	})
	res.Success = true
	return res
}

// runStep records a step row, invokes the agent, and persists the outcome.
// cancelled=true means the failure came from a cooperative cancel and the
// step was marked failed with a cancelled marker.
func (e *Executor) runStep(ctx context.Context, j *ent.Job, ag agent.Agent, agentType models.AgentType, persona *ent.Persona, in agent.Input, iteration int) (result *agent.Result, cancelled bool, err error) {
	step, err := e.deps.Steps.CreateStep(ctx, models.CreateStepRequest{
		JobID:     j.ID,
		AgentType: agentType,
		Iteration: iteration,
		Input: map[string]interface{}{
			"keyword":   j.Keyword,
			"iteration": iteration,
			"personaId": persona.ID,
		},
	})
	if err != nil {
		return nil, false, fmt.Errorf("create step %s: %w", agentType, err)
	}

	if verr := ag.ValidateInput(in); verr != nil {
		msg := fmt.Sprintf("invalid input for %s agent: %v", agentType, verr)
		if _, ferr := e.deps.Steps.MarkStepFailed(ctx, step.ID, msg, 0, 0); ferr != nil {
			slog.Warn("Failed to mark step failed", "step_id", step.ID, "error", ferr)
		}
		return nil, false, services.NewValidationError(string(agentType), verr.Error())
	}

	currentAgent := string(agentType)
	if _, uerr := e.deps.Jobs.UpdateJob(ctx, j.ID, models.JobPatch{CurrentAgent: &currentAgent}); uerr != nil {
		slog.Warn("Failed to set current agent", "job_id", j.ID, "error", uerr)
	}

	runCtx := &agent.RunContext{
		Job:       j,
		Persona:   persona,
		Iteration: iteration,
		StepID:    step.ID,
		LLM:       e.deps.LLM,
		Research:  e.deps.Research,
		Evals:     e.deps.Evals,
		Log:       e.deps.Logs,
		Progress: func(message string) {
			e.logInfo(j.ID, message, map[string]any{"agent": string(agentType), "iteration": iteration})
		},
	}

	started := time.Now()
	result = ag.Execute(ctx, in, runCtx)
	duration := time.Since(started)
	metrics.ObserveAgent(string(agentType), duration)

	if result == nil {
		result = &agent.Result{Err: fmt.Errorf("%s agent returned no result", agentType)}
	}
	if result.Usage.TotalTokens > 0 || result.CostUSD > 0 {
		if uerr := e.deps.Jobs.AddTokenUsage(ctx, j.ID, result.Usage.TotalTokens, result.CostUSD); uerr != nil {
			slog.Warn("Failed to record token usage", "job_id", j.ID, "error", uerr)
		}
	}

	durationMs := int(duration.Milliseconds())

	if result.Err != nil {
		// An error surfacing while the cancel flag is set (or the context
		// was cancelled under it) is the cancellation interrupting the
		// agent, not a real failure.
		if e.isCancelled(ctx, j.ID) || errors.Is(ctx.Err(), context.Canceled) {
			msg := fmt.Sprintf("cancelled: %v", result.Err)
			if _, ferr := e.deps.Steps.MarkStepFailed(ctx, step.ID, msg, result.Usage.TotalTokens, durationMs); ferr != nil {
				slog.Warn("Failed to mark step failed", "step_id", step.ID, "error", ferr)
			}
			return nil, true, nil
		}
		if _, ferr := e.deps.Steps.MarkStepFailed(ctx, step.ID, result.Err.Error(), result.Usage.TotalTokens, durationMs); ferr != nil {
			slog.Warn("Failed to mark step failed", "step_id", step.ID, "error", ferr)
		}
		return nil, false, result.Err
	}

	if _, cerr := e.deps.Steps.MarkStepCompleted(ctx, step.ID, toMap(result.Output),
		result.Usage.TotalTokens, result.Usage.PromptTokens, result.Usage.CompletionTokens, durationMs); cerr != nil {
		return nil, false, fmt.Errorf("complete step %s: %w", agentType, cerr)
	}

	return result, false, nil
}

// store files a typed agent output into the pipeline state.
func (a *artifacts) store(output any) {
	switch out := output.(type) {
	case *models.ResearchOutput:
		a.research = out
	case *models.WriterOutput:
		a.article = out
	case *models.SEOOutput:
		a.seo = out
	case *models.QAOutput:
		a.qa = out
	case *models.ProjectManagerOutput:
		a.pm = out
	}
}

// buildInput assembles the full input record; each agent validates the
// subset it needs.
func buildInput(j *ent.Job, settings models.JobSettings, iteration int, art *artifacts) agent.Input {
	return agent.Input{
		Keyword:         j.Keyword,
		Context:         settings.Context,
		TargetWordCount: settings.TargetWordCount,
		Settings:        settings,
		Iteration:       iteration,
		Research:        art.research,
		Article:         art.article,
		SEO:             art.seo,
		QA:              art.qa,
		QAFeedback:      art.qaFeedback,
		IssuesToFix:     art.issuesToFix,
		PreviousArticle: art.previousArticle,
		PreviousIssues:  art.previousIssues,
	}
}

// fail moves the job to failed, preserving the error message verbatim.
func (e *Executor) fail(jobID string, res *Result, cause error, elapsed time.Duration) *Result {
	e.logError(jobID, "Job failed", map[string]any{"error": cause.Error(), "iteration": res.Iterations})
	if err := e.deps.Jobs.FinishJob(context.Background(), jobID, job.StatusFailed, cause.Error()); err != nil {
		slog.Error("Failed to mark job failed", "job_id", jobID, "error", err)
	}
	metrics.JobFinished(string(job.StatusFailed), elapsed)
	res.Err = cause
	return res
}

// finishCancelled moves the job to cancelled and fires the callback once.
func (e *Executor) finishCancelled(jobID string, res *Result, elapsed time.Duration) *Result {
	if err := e.deps.Jobs.FinishJob(context.Background(), jobID, job.StatusCancelled, ""); err != nil {
		slog.Error("Failed to mark job cancelled", "job_id", jobID, "error", err)
	}
	metrics.JobFinished(string(job.StatusCancelled), elapsed)
	e.logInfo(jobID, "Job cancelled", map[string]any{"iteration": res.Iterations})
	if e.deps.OnCancelled != nil {
		e.deps.OnCancelled(jobID)
	}
	res.Cancelled = true
	return res
}

// isCancelled reads the cooperative cancel flag. Read failures are treated
// as not-cancelled; the next checkpoint retries.
func (e *Executor) isCancelled(ctx context.Context, jobID string) bool {
	cancelled, err := e.deps.Jobs.IsCancelled(ctx, jobID)
	if err != nil {
		slog.Warn("Cancellation check failed", "job_id", jobID, "error", err)
		return false
	}
	return cancelled
}

func (e *Executor) reportProgress(jobID string, percent int) {
	if _, err := e.deps.Jobs.UpdateJob(context.Background(), jobID, models.JobPatch{ProgressPercent: &percent}); err != nil {
		slog.Warn("Failed to update progress", "job_id", jobID, "error", err)
	}
}

func (e *Executor) logInfo(jobID, message string, data map[string]any) {
	if e.deps.Logs != nil {
		e.deps.Logs.Info(jobID, message, data)
	}
}

func (e *Executor) logError(jobID, message string, data map[string]any) {
	if e.deps.Logs != nil {
		e.deps.Logs.Error(jobID, message, data)
	}
}

func pipelineIndex(agentType models.AgentType) int {
	for i, a := range models.PipelineOrder {
		if a == agentType {
			return i
		}
	}
	return 0
}

// toMap converts a typed output struct into the JSON-shaped map stored on
// step and job rows.
func toMap(v any) map[string]interface{} {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to encode output", "error", err)
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}
