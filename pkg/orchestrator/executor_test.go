package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/ent"
	"github.com/copymill/copymill/ent/job"
	"github.com/copymill/copymill/pkg/agent"
	"github.com/copymill/copymill/pkg/llm"
	"github.com/copymill/copymill/pkg/models"
	"github.com/copymill/copymill/pkg/services"
)

// fakeJobs is an in-memory JobStore recording every write.
type fakeJobs struct {
	mu           sync.Mutex
	patches      []models.JobPatch
	finishStatus job.Status
	finishError  string
	finishCalls  int
	tokens       int
	cost         float64
	cancelledFn  func(checks int) bool
	cancelChecks int
	iterationLog []int
	progressLog  []int
	finalOutput  map[string]interface{}
	updateJobErr error
	finishJobErr error
	isCancelled  bool
}

func (f *fakeJobs) UpdateJob(ctx context.Context, jobID string, patch models.JobPatch) (*ent.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateJobErr != nil {
		return nil, f.updateJobErr
	}
	f.patches = append(f.patches, patch)
	if patch.CurrentIteration != nil {
		f.iterationLog = append(f.iterationLog, *patch.CurrentIteration)
	}
	if patch.ProgressPercent != nil {
		f.progressLog = append(f.progressLog, *patch.ProgressPercent)
	}
	if patch.FinalOutput != nil {
		f.finalOutput = patch.FinalOutput
	}
	return &ent.Job{ID: jobID}, nil
}

func (f *fakeJobs) IsCancelled(ctx context.Context, jobID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelChecks++
	if f.cancelledFn != nil {
		return f.cancelledFn(f.cancelChecks), nil
	}
	return f.isCancelled, nil
}

func (f *fakeJobs) FinishJob(ctx context.Context, jobID string, status job.Status, lastError string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.finishJobErr != nil {
		return f.finishJobErr
	}
	f.finishCalls++
	f.finishStatus = status
	f.finishError = lastError
	return nil
}

func (f *fakeJobs) AddTokenUsage(ctx context.Context, jobID string, tokens int, costUSD float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens += tokens
	f.cost += costUSD
	return nil
}

// stepRecord captures one step's lifecycle in fakeSteps.
type stepRecord struct {
	id        string
	agentType models.AgentType
	iteration int
	status    string
	errorMsg  string
	output    map[string]interface{}
}

type fakeSteps struct {
	mu    sync.Mutex
	steps []*stepRecord
	next  int
}

func (f *fakeSteps) CreateStep(ctx context.Context, req models.CreateStepRequest) (*ent.JobStep, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	rec := &stepRecord{
		id:        fmt.Sprintf("step-%d", f.next),
		agentType: req.AgentType,
		iteration: req.Iteration,
		status:    "running",
	}
	f.steps = append(f.steps, rec)
	return &ent.JobStep{ID: rec.id}, nil
}

func (f *fakeSteps) CreateSkippedStep(ctx context.Context, jobID string, agentType models.AgentType, iteration int) (*ent.JobStep, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	rec := &stepRecord{
		id:        fmt.Sprintf("step-%d", f.next),
		agentType: agentType,
		iteration: iteration,
		status:    "skipped",
	}
	f.steps = append(f.steps, rec)
	return &ent.JobStep{ID: rec.id}, nil
}

func (f *fakeSteps) MarkStepCompleted(ctx context.Context, stepID string, output map[string]interface{}, tokensUsed, promptTokens, completionTokens, durationMs int) (*ent.JobStep, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec := f.find(stepID)
	rec.status = "completed"
	rec.output = output
	return &ent.JobStep{ID: stepID}, nil
}

func (f *fakeSteps) MarkStepFailed(ctx context.Context, stepID, errorMessage string, tokensUsed, durationMs int) (*ent.JobStep, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec := f.find(stepID)
	rec.status = "failed"
	rec.errorMsg = errorMessage
	return &ent.JobStep{ID: stepID}, nil
}

func (f *fakeSteps) find(stepID string) *stepRecord {
	for _, rec := range f.steps {
		if rec.id == stepID {
			return rec
		}
	}
	panic("unknown step " + stepID)
}

func (f *fakeSteps) byAgent(agentType models.AgentType) []*stepRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*stepRecord
	for _, rec := range f.steps {
		if rec.agentType == agentType {
			out = append(out, rec)
		}
	}
	return out
}

type fakePersonas struct {
	missing map[models.AgentType]bool
}

func (f *fakePersonas) ResolvePersona(ctx context.Context, agentType models.AgentType, overrideID string) (*ent.Persona, error) {
	if f.missing[agentType] {
		return nil, fmt.Errorf("default persona for agent %s: %w", agentType, services.ErrNotFound)
	}
	return &ent.Persona{ID: "persona-" + string(agentType), Provider: "openai", Model: "gpt-4o"}, nil
}

type nopLog struct{}

func (nopLog) Info(string, string, map[string]any)  {}
func (nopLog) Warn(string, string, map[string]any)  {}
func (nopLog) Error(string, string, map[string]any) {}

// scriptedAgent returns its scripted results in order, recording the inputs
// it was invoked with.
type scriptedAgent struct {
	agentType models.AgentType
	results   []*agent.Result
	inputs    []agent.Input
	calls     int
}

func (s *scriptedAgent) AgentType() models.AgentType { return s.agentType }
func (s *scriptedAgent) Name() string                { return string(s.agentType) }
func (s *scriptedAgent) Description() string         { return "scripted" }
func (s *scriptedAgent) ValidateInput(agent.Input) error {
	return nil
}
func (s *scriptedAgent) OutputSchema() llm.Schema { return nil }
func (s *scriptedAgent) Execute(ctx context.Context, in agent.Input, rc *agent.RunContext) *agent.Result {
	s.inputs = append(s.inputs, in)
	result := s.results[s.calls]
	if s.calls < len(s.results)-1 {
		s.calls++
	}
	return result
}

func success(output any) *agent.Result {
	return &agent.Result{
		Success:        true,
		Output:         output,
		Usage:          llm.Usage{PromptTokens: 100, CompletionTokens: 200, TotalTokens: 300},
		CostUSD:        0.01,
		ContinueToNext: true,
	}
}

func researchOut() *models.ResearchOutput {
	return &models.ResearchOutput{Keyword: "concrete driveway cost", RecommendedWordCount: 2000}
}

func articleOut(words int) *models.WriterOutput {
	return &models.WriterOutput{Title: "T", Slug: "t", Content: "body", Excerpt: "e", WordCount: words}
}

func seoOut(score int) *models.SEOOutput {
	return &models.SEOOutput{MetaTitle: "T", MetaDescription: "D", OptimizationScore: score}
}

func qaOut(passed bool, score int, issues ...models.Issue) *models.QAOutput {
	return &models.QAOutput{Passed: passed, OverallScore: score, Issues: issues, Feedback: "feedback"}
}

func pmOut() *models.ProjectManagerOutput {
	return &models.ProjectManagerOutput{
		ReadyForPublish:  true,
		ValidationErrors: []string{},
		FinalArticle:     models.FinalArticle{Title: "T", Status: models.ArticleStatusDraft},
	}
}

// harness bundles an executor wired to fakes and scripted agents.
type harness struct {
	exec      *Executor
	jobs      *fakeJobs
	steps     *fakeSteps
	agents    map[models.AgentType]*scriptedAgent
	cancelled []string
}

func newHarness(t *testing.T, results map[models.AgentType][]*agent.Result) *harness {
	t.Helper()
	h := &harness{
		jobs:   &fakeJobs{},
		steps:  &fakeSteps{},
		agents: make(map[models.AgentType]*scriptedAgent),
	}

	registry := agent.NewRegistry()
	for _, agentType := range models.PipelineOrder {
		sa := &scriptedAgent{agentType: agentType, results: results[agentType]}
		h.agents[agentType] = sa
		require.NoError(t, registry.Register(sa))
	}

	h.exec = NewExecutor(Dependencies{
		Registry: registry,
		Jobs:     h.jobs,
		Steps:    h.steps,
		Personas: &fakePersonas{},
		Logs:     nopLog{},
		OnCancelled: func(jobID string) {
			h.cancelled = append(h.cancelled, jobID)
		},
	})
	return h
}

func happyResults() map[models.AgentType][]*agent.Result {
	return map[models.AgentType][]*agent.Result{
		models.AgentTypeResearch:       {success(researchOut())},
		models.AgentTypeWriter:         {success(articleOut(2050))},
		models.AgentTypeSEO:            {success(seoOut(85))},
		models.AgentTypeQA:             {success(qaOut(true, 85))},
		models.AgentTypeProjectManager: {success(pmOut())},
	}
}

func testJob(settings models.JobSettings, maxIterations int) *ent.Job {
	return &ent.Job{
		ID:               "job-1",
		Keyword:          "concrete driveway cost",
		Status:           job.StatusProcessing,
		CurrentIteration: 1,
		MaxIterations:    maxIterations,
		Settings:         settings,
	}
}

func TestExecuteHappyPath(t *testing.T) {
	h := newHarness(t, happyResults())

	res := h.exec.Execute(context.Background(), testJob(models.JobSettings{}, 5))

	require.NoError(t, res.Err)
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.Iterations)
	assert.False(t, res.Cancelled)
	assert.Equal(t, "job-1", res.JobID)

	require.Len(t, h.steps.steps, 5)
	for i, agentType := range models.PipelineOrder {
		assert.Equal(t, agentType, h.steps.steps[i].agentType)
		assert.Equal(t, "completed", h.steps.steps[i].status)
		assert.Equal(t, 1, h.steps.steps[i].iteration)
	}

	assert.Equal(t, job.StatusCompleted, h.jobs.finishStatus)
	assert.Equal(t, 1, h.jobs.finishCalls)
	assert.NotNil(t, h.jobs.finalOutput)
	assert.Equal(t, true, h.jobs.finalOutput["readyForPublish"])

	// Five agents at 300 tokens / $0.01 each.
	assert.Equal(t, 1500, h.jobs.tokens)
	assert.InDelta(t, 0.05, h.jobs.cost, 0.0001)

	assert.Equal(t, []int{15, 50, 65, 80, 100}, h.jobs.progressLog)
	assert.Empty(t, h.cancelled)
}

func TestExecuteFeedbackLoop(t *testing.T) {
	issue := models.NewIssue("readability", models.SeverityHigh, "intro too dense", "")
	results := happyResults()
	results[models.AgentTypeWriter] = []*agent.Result{success(articleOut(2050)), success(articleOut(2100))}
	results[models.AgentTypeSEO] = []*agent.Result{success(seoOut(80)), success(seoOut(88))}
	results[models.AgentTypeQA] = []*agent.Result{
		success(qaOut(false, 55, issue)),
		success(qaOut(true, 85)),
	}
	// QA fails the first round, so the pipeline must not continue past it.
	results[models.AgentTypeQA][0].ContinueToNext = false

	h := newHarness(t, results)
	res := h.exec.Execute(context.Background(), testJob(models.JobSettings{}, 5))

	require.NoError(t, res.Err)
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Iterations)

	// research + 2x(writer,seo,qa) + pm = 8 step rows.
	require.Len(t, h.steps.steps, 8)
	writerSteps := h.steps.byAgent(models.AgentTypeWriter)
	require.Len(t, writerSteps, 2)
	assert.Equal(t, 1, writerSteps[0].iteration)
	assert.Equal(t, 2, writerSteps[1].iteration)

	// Second writer invocation carries the QA feedback state.
	writer := h.agents[models.AgentTypeWriter]
	require.Len(t, writer.inputs, 2)
	second := writer.inputs[1]
	assert.Equal(t, 2, second.Iteration)
	assert.Equal(t, "feedback", second.QAFeedback)
	require.Len(t, second.IssuesToFix, 1)
	assert.Equal(t, issue.IssueID, second.IssuesToFix[0].IssueID)
	require.NotNil(t, second.PreviousArticle)
	assert.Equal(t, 2050, second.PreviousArticle.WordCount)

	// Second QA invocation receives the first round's issues.
	qa := h.agents[models.AgentTypeQA]
	require.Len(t, qa.inputs, 2)
	assert.Empty(t, qa.inputs[0].PreviousIssues)
	require.Len(t, qa.inputs[1].PreviousIssues, 1)

	assert.Equal(t, []int{2}, h.jobs.iterationLog)
	assert.Equal(t, job.StatusCompleted, h.jobs.finishStatus)
}

func TestExecuteMaxIterationsExhausted(t *testing.T) {
	issue := models.NewIssue("readability", models.SeverityHigh, "intro too dense", "")
	results := happyResults()
	results[models.AgentTypeQA] = []*agent.Result{
		success(qaOut(false, 55, issue)),
		success(qaOut(false, 58, issue)),
	}

	h := newHarness(t, results)
	res := h.exec.Execute(context.Background(), testJob(models.JobSettings{}, 2))

	require.NoError(t, res.Err)
	assert.True(t, res.Success, "exhausted iterations still complete the job")
	assert.Equal(t, 2, res.Iterations)

	require.Len(t, h.steps.byAgent(models.AgentTypeQA), 2)
	require.Len(t, h.steps.byAgent(models.AgentTypeProjectManager), 1)

	// PM sees the failing QA output.
	pm := h.agents[models.AgentTypeProjectManager]
	require.Len(t, pm.inputs, 1)
	require.NotNil(t, pm.inputs[0].QA)
	assert.False(t, pm.inputs[0].QA.Passed)
	assert.Equal(t, job.StatusCompleted, h.jobs.finishStatus)
}

func TestExecuteSingleIterationNeverLoops(t *testing.T) {
	results := happyResults()
	results[models.AgentTypeQA] = []*agent.Result{success(qaOut(false, 40))}

	h := newHarness(t, results)
	res := h.exec.Execute(context.Background(), testJob(models.JobSettings{}, 1))

	require.NoError(t, res.Err)
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.Iterations)
	require.Len(t, h.steps.byAgent(models.AgentTypeWriter), 1)
	require.Len(t, h.steps.steps, 5)
}

func TestExecuteCancelledBeforeStart(t *testing.T) {
	h := newHarness(t, happyResults())
	h.jobs.isCancelled = true

	res := h.exec.Execute(context.Background(), testJob(models.JobSettings{}, 5))

	assert.True(t, res.Cancelled)
	assert.False(t, res.Success)
	assert.NoError(t, res.Err)
	assert.Empty(t, h.steps.steps)
	assert.Equal(t, job.StatusCancelled, h.jobs.finishStatus)
	assert.Equal(t, []string{"job-1"}, h.cancelled)
}

func TestExecuteCancelledBetweenAgents(t *testing.T) {
	h := newHarness(t, happyResults())
	// First checkpoint (before research) passes; second (before writer) trips.
	h.jobs.cancelledFn = func(checks int) bool { return checks >= 3 }

	res := h.exec.Execute(context.Background(), testJob(models.JobSettings{}, 5))

	assert.True(t, res.Cancelled)
	assert.False(t, res.Success)

	// Research completed, writer never started.
	require.Len(t, h.steps.steps, 1)
	assert.Equal(t, models.AgentTypeResearch, h.steps.steps[0].agentType)
	assert.Equal(t, "completed", h.steps.steps[0].status)
	assert.Empty(t, h.steps.byAgent(models.AgentTypeWriter))

	assert.Equal(t, job.StatusCancelled, h.jobs.finishStatus)
	assert.Len(t, h.cancelled, 1, "onCancelled fires exactly once")
}

func TestExecuteAgentFailure(t *testing.T) {
	results := happyResults()
	results[models.AgentTypeWriter] = []*agent.Result{{
		Err:   errors.New("article generation failed: rate limited"),
		Usage: llm.Usage{TotalTokens: 120},
	}}

	h := newHarness(t, results)
	res := h.exec.Execute(context.Background(), testJob(models.JobSettings{}, 5))

	require.Error(t, res.Err)
	assert.False(t, res.Success)
	assert.Equal(t, job.StatusFailed, h.jobs.finishStatus)
	assert.Equal(t, "article generation failed: rate limited", h.jobs.finishError)

	writerSteps := h.steps.byAgent(models.AgentTypeWriter)
	require.Len(t, writerSteps, 1)
	assert.Equal(t, "failed", writerSteps[0].status)
	assert.Equal(t, "article generation failed: rate limited", writerSteps[0].errorMsg)

	// Pipeline stopped: no SEO/QA/PM steps.
	assert.Len(t, h.steps.steps, 2)
	// Partial tokens from the failed attempt are still accounted.
	assert.Equal(t, 420, h.jobs.tokens)
}

func TestExecuteSkipAgents(t *testing.T) {
	results := happyResults()
	h := newHarness(t, results)

	settings := models.JobSettings{SkipAgents: []models.AgentType{models.AgentTypeSEO, models.AgentTypeQA}}
	res := h.exec.Execute(context.Background(), testJob(settings, 5))

	require.NoError(t, res.Err)
	assert.True(t, res.Success)

	require.Len(t, h.steps.steps, 5)
	assert.Equal(t, "skipped", h.steps.byAgent(models.AgentTypeSEO)[0].status)
	assert.Equal(t, "skipped", h.steps.byAgent(models.AgentTypeQA)[0].status)

	// PM runs without QA data when QA was skipped.
	pm := h.agents[models.AgentTypeProjectManager]
	require.Len(t, pm.inputs, 1)
	assert.Nil(t, pm.inputs[0].QA)
	assert.Nil(t, pm.inputs[0].SEO)
}

func TestExecuteAllAgentsSkipped(t *testing.T) {
	h := newHarness(t, happyResults())

	settings := models.JobSettings{SkipAgents: models.PipelineOrder}
	res := h.exec.Execute(context.Background(), testJob(settings, 5))

	require.Error(t, res.Err)
	assert.True(t, services.IsValidationError(res.Err))
	assert.Empty(t, h.steps.steps)
	assert.Equal(t, job.StatusFailed, h.jobs.finishStatus)
}

func TestExecutePersonaNotFound(t *testing.T) {
	h := newHarness(t, happyResults())
	h.exec.deps.Personas = &fakePersonas{missing: map[models.AgentType]bool{models.AgentTypeWriter: true}}

	res := h.exec.Execute(context.Background(), testJob(models.JobSettings{}, 5))

	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "persona not found for agent writer")
	assert.Equal(t, job.StatusFailed, h.jobs.finishStatus)
	// Research completed before the writer persona lookup failed.
	assert.Len(t, h.steps.steps, 1)
}

type panickingAgent struct{ scriptedAgent }

func (p *panickingAgent) Execute(ctx context.Context, in agent.Input, rc *agent.RunContext) *agent.Result {
	panic("nil map write")
}

func TestExecutePanicRecovery(t *testing.T) {
	h := newHarness(t, happyResults())
	registry := agent.NewRegistry()
	for _, agentType := range models.PipelineOrder {
		if agentType == models.AgentTypeWriter {
			registry.Replace(&panickingAgent{scriptedAgent{agentType: agentType}})
			continue
		}
		registry.Replace(h.agents[agentType])
	}
	h.exec.deps.Registry = registry

	res := h.exec.Execute(context.Background(), testJob(models.JobSettings{}, 5))

	require.Error(t, res.Err)
	assert.Equal(t, internalErrorMessage, res.Err.Error())
	assert.Equal(t, job.StatusFailed, h.jobs.finishStatus)
	assert.Equal(t, internalErrorMessage, h.jobs.finishError)
}

func TestExecuteDeadlineExceeded(t *testing.T) {
	h := newHarness(t, happyResults())
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	res := h.exec.Execute(ctx, testJob(models.JobSettings{}, 5))

	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "timed out")
	assert.Equal(t, job.StatusFailed, h.jobs.finishStatus)
}

func TestProgressTracker(t *testing.T) {
	p := newProgressTracker()

	assert.Equal(t, 15, p.complete(models.AgentTypeResearch))
	assert.Equal(t, 50, p.complete(models.AgentTypeWriter))
	assert.Equal(t, 65, p.complete(models.AgentTypeSEO))
	assert.Equal(t, 80, p.complete(models.AgentTypeQA))

	// Back-edge: the percentage plateaus, never decreases.
	p.restartIteration()
	assert.Equal(t, 80, p.complete(models.AgentTypeWriter))
	assert.Equal(t, 80, p.complete(models.AgentTypeSEO))
	assert.Equal(t, 80, p.complete(models.AgentTypeQA))

	assert.Equal(t, 100, p.complete(models.AgentTypeProjectManager))
}
