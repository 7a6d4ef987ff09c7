package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/ent"
	"github.com/copymill/copymill/ent/job"
	"github.com/copymill/copymill/ent/jobstep"
	"github.com/copymill/copymill/pkg/config"
	"github.com/copymill/copymill/pkg/models"
	"github.com/copymill/copymill/pkg/queue"
	"github.com/copymill/copymill/pkg/services"
)

// fakeJobService implements JobService via function fields; unset functions
// report not-found.
type fakeJobService struct {
	createFn        func(models.CreateJobRequest) (*ent.Job, error)
	getFn           func(string) (*ent.Job, error)
	listFn          func(models.JobFilters) ([]*ent.Job, int, error)
	activeFn        func() ([]*ent.Job, error)
	cancelFn        func(jobID, userID string) (*ent.Job, error)
	requestCancelFn func(string) error
	retryFn         func(string) (*ent.Job, error)

	cancelRequests []string
}

func (f *fakeJobService) CreateJob(_ context.Context, req models.CreateJobRequest) (*ent.Job, error) {
	if f.createFn == nil {
		return nil, services.ErrNotFound
	}
	return f.createFn(req)
}

func (f *fakeJobService) GetJob(_ context.Context, jobID string) (*ent.Job, error) {
	if f.getFn == nil {
		return nil, services.ErrNotFound
	}
	return f.getFn(jobID)
}

func (f *fakeJobService) ListJobs(_ context.Context, filters models.JobFilters) ([]*ent.Job, int, error) {
	if f.listFn == nil {
		return nil, 0, nil
	}
	return f.listFn(filters)
}

func (f *fakeJobService) ListActiveJobs(_ context.Context) ([]*ent.Job, error) {
	if f.activeFn == nil {
		return nil, nil
	}
	return f.activeFn()
}

func (f *fakeJobService) CancelJob(_ context.Context, jobID, userID string) (*ent.Job, error) {
	if f.cancelFn == nil {
		return nil, services.ErrNotFound
	}
	return f.cancelFn(jobID, userID)
}

func (f *fakeJobService) RequestCancel(_ context.Context, jobID string) error {
	f.cancelRequests = append(f.cancelRequests, jobID)
	if f.requestCancelFn == nil {
		return nil
	}
	return f.requestCancelFn(jobID)
}

func (f *fakeJobService) RetryJob(_ context.Context, jobID string) (*ent.Job, error) {
	if f.retryFn == nil {
		return nil, services.ErrNotFound
	}
	return f.retryFn(jobID)
}

type fakeStepService struct {
	steps []*ent.JobStep
}

func (f *fakeStepService) ListSteps(_ context.Context, _ string) ([]*ent.JobStep, error) {
	return f.steps, nil
}

type fakeEvalService struct {
	evals []*ent.JobEval
}

func (f *fakeEvalService) ListEvals(_ context.Context, _ string) ([]*ent.JobEval, error) {
	return f.evals, nil
}

type fakePersonaService struct {
	personas []*ent.Persona
}

func (f *fakePersonaService) ListPersonas(_ context.Context, agentType string) ([]*ent.Persona, error) {
	if agentType != "" && !models.ValidAgentType(agentType) {
		return nil, services.NewValidationError("agent_type", "unknown agent type")
	}
	return f.personas, nil
}

func (f *fakePersonaService) GetPersona(_ context.Context, personaID string) (*ent.Persona, error) {
	for _, p := range f.personas {
		if p.ID == personaID {
			return p, nil
		}
	}
	return nil, services.ErrNotFound
}

type fakeLogService struct {
	rows []*ent.SystemLog
}

func (f *fakeLogService) ListForEntity(_ context.Context, _, _ string, _ int) ([]*ent.SystemLog, error) {
	return f.rows, nil
}

type fakePool struct {
	health    *queue.PoolHealth
	cancelled []string
	cancelOK  bool
}

func (f *fakePool) Health() *queue.PoolHealth {
	if f.health == nil {
		return &queue.PoolHealth{IsHealthy: true, PodID: "pod-1", TotalWorkers: 5, MaxConcurrent: 5}
	}
	return f.health
}

func (f *fakePool) CancelJob(jobID string) bool {
	f.cancelled = append(f.cancelled, jobID)
	return f.cancelOK
}

type serverFixture struct {
	server   *Server
	jobs     *fakeJobService
	steps    *fakeStepService
	evals    *fakeEvalService
	personas *fakePersonaService
	logs     *fakeLogService
	pool     *fakePool
}

func newTestServer(secret string) *serverFixture {
	f := &serverFixture{
		jobs:     &fakeJobService{},
		steps:    &fakeStepService{},
		evals:    &fakeEvalService{},
		personas: &fakePersonaService{},
		logs:     &fakeLogService{},
		pool:     &fakePool{},
	}
	f.server = NewServer(
		config.DefaultServerConfig(),
		f.jobs, f.steps, f.evals, f.personas, f.logs, f.pool,
		services.NewSystemWarningsService(),
		nil,
		secret,
	)
	return f
}

func (f *serverFixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.server.Router().ServeHTTP(w, req)
	return w
}

func sampleJob(id string, status job.Status) *ent.Job {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	return &ent.Job{
		ID:               id,
		Keyword:          "concrete driveway cost",
		Status:           status,
		CurrentIteration: 1,
		MaxIterations:    5,
		Settings:         models.JobSettings{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestCreateJob(t *testing.T) {
	f := newTestServer("")
	f.jobs.createFn = func(req models.CreateJobRequest) (*ent.Job, error) {
		assert.Equal(t, "concrete driveway cost", req.Keyword)
		assert.Equal(t, "api-client", req.CreatedBy)
		return sampleJob("job-1", job.StatusPending), nil
	}

	w := f.do(http.MethodPost, "/jobs", models.CreateJobRequest{Keyword: "concrete driveway cost"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp JobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "job-1", resp.JobID)
	assert.Equal(t, "pending", resp.Status)
}

func TestCreateJobValidationError(t *testing.T) {
	f := newTestServer("")
	f.jobs.createFn = func(models.CreateJobRequest) (*ent.Job, error) {
		return nil, services.NewValidationError("keyword", "required")
	}

	w := f.do(http.MethodPost, "/jobs", models.CreateJobRequest{})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "keyword")
}

func TestCreateJobMalformedBody(t *testing.T) {
	f := newTestServer("")

	req := httptest.NewRequest(http.MethodPost, "/jobs", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	f.server.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListJobs(t *testing.T) {
	f := newTestServer("")
	f.jobs.listFn = func(filters models.JobFilters) ([]*ent.Job, int, error) {
		assert.Equal(t, "pending", filters.Status)
		assert.Equal(t, 10, filters.Limit)
		assert.Equal(t, 5, filters.Offset)
		return []*ent.Job{sampleJob("job-1", job.StatusPending)}, 42, nil
	}

	w := f.do(http.MethodGet, "/jobs?status=pending&limit=10&offset=5", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Jobs  []JobResponse `json:"jobs"`
		Total int           `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, 42, resp.Total)
}

func TestListJobsInvalidStatus(t *testing.T) {
	f := newTestServer("")
	w := f.do(http.MethodGet, "/jobs?status=bogus", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid status")
}

func TestGetJobDetail(t *testing.T) {
	f := newTestServer("")
	f.jobs.getFn = func(id string) (*ent.Job, error) {
		return sampleJob(id, job.StatusCompleted), nil
	}
	f.steps.steps = []*ent.JobStep{
		{ID: "step-1", JobID: "job-1", AgentType: jobstep.AgentTypeResearch, Iteration: 1, Status: jobstep.StatusCompleted},
	}

	w := f.do(http.MethodGet, "/jobs/job-1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Job   JobResponse    `json:"job"`
		Steps []StepResponse `json:"steps"`
		Evals []EvalResponse `json:"evals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "job-1", resp.Job.JobID)
	require.Len(t, resp.Steps, 1)
	assert.Equal(t, "research", resp.Steps[0].AgentType)
	assert.Empty(t, resp.Evals)
}

func TestGetJobNotFound(t *testing.T) {
	f := newTestServer("")
	w := f.do(http.MethodGet, "/jobs/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelPendingJob(t *testing.T) {
	f := newTestServer("")
	f.jobs.getFn = func(id string) (*ent.Job, error) {
		return sampleJob(id, job.StatusPending), nil
	}
	f.jobs.cancelFn = func(jobID, userID string) (*ent.Job, error) {
		assert.Equal(t, "api-client", userID)
		return sampleJob(jobID, job.StatusCancelled), nil
	}

	w := f.do(http.MethodPost, "/jobs/job-1/cancel", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp JobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
	assert.Empty(t, f.jobs.cancelRequests, "pending jobs cancel directly, no cooperative flag")
}

func TestCancelProcessingJobSetsFlag(t *testing.T) {
	f := newTestServer("")
	f.pool.cancelOK = true
	f.jobs.getFn = func(id string) (*ent.Job, error) {
		return sampleJob(id, job.StatusProcessing), nil
	}

	w := f.do(http.MethodPost, "/jobs/job-1/cancel", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"job-1"}, f.jobs.cancelRequests)
	assert.Equal(t, []string{"job-1"}, f.pool.cancelled)
}

func TestCancelCompletedJobRejected(t *testing.T) {
	f := newTestServer("")
	f.jobs.getFn = func(id string) (*ent.Job, error) {
		return sampleJob(id, job.StatusCompleted), nil
	}
	f.jobs.cancelFn = func(jobID, userID string) (*ent.Job, error) {
		return nil, services.NewTransitionError("Cannot cancel job in status: completed")
	}

	w := f.do(http.MethodPost, "/jobs/job-1/cancel", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cannot cancel job in status: completed")
}

func TestRetryJob(t *testing.T) {
	f := newTestServer("")
	f.jobs.retryFn = func(jobID string) (*ent.Job, error) {
		return sampleJob(jobID, job.StatusPending), nil
	}

	w := f.do(http.MethodPost, "/jobs/job-1/retry", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp JobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestRetryNonFailedJobRejected(t *testing.T) {
	f := newTestServer("")
	f.jobs.retryFn = func(string) (*ent.Job, error) {
		return nil, services.NewTransitionError("Can only retry failed jobs")
	}

	w := f.do(http.MethodPost, "/jobs/job-1/retry", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Can only retry failed jobs")
}

func TestJobLogs(t *testing.T) {
	f := newTestServer("")
	f.jobs.getFn = func(id string) (*ent.Job, error) {
		return sampleJob(id, job.StatusProcessing), nil
	}
	f.logs.rows = []*ent.SystemLog{
		{ID: "log-1", EntityType: "job", EntityID: "job-1", Message: "Starting research agent"},
	}

	w := f.do(http.MethodGet, "/jobs/job-1/logs", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Logs []LogResponse `json:"logs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Logs, 1)
	assert.Equal(t, "Starting research agent", resp.Logs[0].Message)
}

func TestJobLogsUnknownJob(t *testing.T) {
	f := newTestServer("")
	w := f.do(http.MethodGet, "/jobs/missing/logs", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPersonas(t *testing.T) {
	f := newTestServer("")
	f.personas.personas = []*ent.Persona{
		{ID: "p-1", Name: "Default Writer", Provider: "openai", Model: "gpt-4o"},
	}

	w := f.do(http.MethodGet, "/personas", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Personas []PersonaResponse `json:"personas"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Personas, 1)
	assert.Equal(t, "Default Writer", resp.Personas[0].Name)
}

func TestGetPersonaNotFound(t *testing.T) {
	f := newTestServer("")
	w := f.do(http.MethodGet, "/personas/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSystemHealth(t *testing.T) {
	f := newTestServer("")
	w := f.do(http.MethodGet, "/system/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp queue.PoolHealth
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pod-1", resp.PodID)
	assert.True(t, resp.IsHealthy)
}

func TestSystemWarnings(t *testing.T) {
	f := newTestServer("")
	w := f.do(http.MethodGet, "/system/warnings", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "warnings")
}
