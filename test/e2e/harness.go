// Package e2e exercises the full pipeline through the public surfaces: the
// HTTP API in front, a real PostgreSQL schema underneath, and the worker
// pool driving scripted LLM and research sources.
package e2e

import (
	"context"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/pkg/agent"
	"github.com/copymill/copymill/pkg/api"
	"github.com/copymill/copymill/pkg/config"
	"github.com/copymill/copymill/pkg/database"
	"github.com/copymill/copymill/pkg/masking"
	"github.com/copymill/copymill/pkg/models"
	"github.com/copymill/copymill/pkg/orchestrator"
	"github.com/copymill/copymill/pkg/queue"
	"github.com/copymill/copymill/pkg/services"
	testdb "github.com/copymill/copymill/test/database"
)

// TestApp boots a complete copymill instance against a scripted LLM and
// research source.
type TestApp struct {
	Config   *config.Config
	DB       *database.Client
	LLM      *ScriptedLLM
	Research *ScriptedResearch

	Jobs     *services.JobService
	Steps    *services.StepService
	Evals    *services.EvalService
	Personas *services.PersonaService
	Pool     *queue.WorkerPool

	Server  *httptest.Server
	BaseURL string

	mu        sync.Mutex
	cancelled []string // job IDs reported by OnCancelled

	t *testing.T
}

type testAppConfig struct {
	db          *database.Client
	podID       string
	workerCount int
	startServer bool
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithDBClient injects a database client, for multi-replica tests sharing
// one schema.
func WithDBClient(db *database.Client) TestAppOption {
	return func(c *testAppConfig) { c.db = db }
}

// WithPodID sets a custom pod identifier.
func WithPodID(podID string) TestAppOption {
	return func(c *testAppConfig) { c.podID = podID }
}

// WithWorkerCount sets the worker pool size.
func WithWorkerCount(n int) TestAppOption {
	return func(c *testAppConfig) { c.workerCount = n }
}

// WithoutServer skips the HTTP server, for tests that drive services
// directly.
func WithoutServer() TestAppOption {
	return func(c *testAppConfig) { c.startServer = false }
}

// testQueueConfig returns queue settings tuned for fast test turnaround.
func testQueueConfig(workers int) *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             workers,
		PollInterval:            50 * time.Millisecond,
		PollIntervalJitter:      10 * time.Millisecond,
		JobTimeout:              30 * time.Second,
		HeartbeatInterval:       100 * time.Millisecond,
		StuckSweepInterval:      1 * time.Second,
		StuckJobPolicy:          config.StuckJobPolicyRequeue,
		GracefulShutdownTimeout: 5 * time.Second,
	}
}

// NewTestApp creates and starts a full test instance. Everything is torn
// down via t.Cleanup.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()
	ctx := context.Background()

	cfg := &testAppConfig{
		podID:       "e2e-pod",
		workerCount: 2,
		startServer: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	db := cfg.db
	if db == nil {
		db = testdb.NewTestClient(t)
	}

	appCfg := &config.Config{
		Server:    config.DefaultServerConfig(),
		Queue:     testQueueConfig(cfg.workerCount),
		QA:        config.DefaultQAConfig(),
		Defaults:  config.DefaultDefaults(),
		Retention: config.DefaultRetentionConfig(),
	}

	app := &TestApp{
		Config:   appCfg,
		DB:       db,
		LLM:      NewScriptedLLM(),
		Research: NewScriptedResearch("concrete driveway cost"),
		Jobs:     services.NewJobService(db.Client),
		Steps:    services.NewStepService(db.Client),
		Evals:    services.NewEvalService(db.Client),
		Personas: services.NewPersonaService(db.Client),
		Pool:     nil,
		t:        t,
	}

	logService := services.NewSystemLogService(db.Client, masking.NewService())
	warnings := services.NewSystemWarningsService()

	app.seedPersonas(t)

	registry, err := agent.NewDefaultRegistry(agent.Dependencies{
		LLM:      app.LLM,
		Research: app.Research,
		QA:       appCfg.QA,
	})
	require.NoError(t, err)

	executor := orchestrator.NewExecutor(orchestrator.Dependencies{
		Registry: registry,
		Jobs:     app.Jobs,
		Steps:    app.Steps,
		Personas: app.Personas,
		LLM:      app.LLM,
		Research: app.Research,
		Evals:    app.Evals,
		Logs:     logService,
		OnCancelled: func(jobID string) {
			app.mu.Lock()
			app.cancelled = append(app.cancelled, jobID)
			app.mu.Unlock()
		},
	})

	app.Pool = queue.NewWorkerPool(cfg.podID, app.Jobs, appCfg.Queue, executor)
	require.NoError(t, app.Pool.Start(ctx))
	t.Cleanup(app.Pool.Stop)

	if cfg.startServer {
		server := api.NewServer(appCfg.Server,
			app.Jobs, app.Steps, app.Evals, app.Personas, logService,
			app.Pool, warnings, db, "")
		app.Server = httptest.NewServer(server.Router())
		t.Cleanup(app.Server.Close)
		app.BaseURL = app.Server.URL
	}

	return app
}

// seedPersonas inserts one enabled default persona per agent type, matching
// what the seed migration provides in production. Skips agent types that
// already have a default so replicas sharing a schema can boot in any order.
func (app *TestApp) seedPersonas(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	for _, agentType := range models.PipelineOrder {
		if _, err := app.Personas.ResolvePersona(ctx, agentType, ""); err == nil {
			continue
		}
		_, err := app.Personas.CreatePersona(ctx, services.CreatePersonaRequest{
			AgentType:    agentType,
			Name:         fmt.Sprintf("Default %s", agentType),
			SystemPrompt: fmt.Sprintf("You are the %s agent.", agentType),
			Provider:     "openai",
			Model:        "gpt-4o",
			Temperature:  0.7,
			MaxTokens:    4096,
			IsDefault:    true,
		})
		require.NoError(t, err)
	}
}

// CancelledJobs returns the job IDs reported through OnCancelled.
func (app *TestApp) CancelledJobs() []string {
	app.mu.Lock()
	defer app.mu.Unlock()
	return append([]string(nil), app.cancelled...)
}
