// Copymill orchestrator server — serves the jobs API, runs the queue worker
// pool, and drives the content generation pipeline.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/copymill/copymill/pkg/agent"
	"github.com/copymill/copymill/pkg/api"
	"github.com/copymill/copymill/pkg/cleanup"
	"github.com/copymill/copymill/pkg/config"
	"github.com/copymill/copymill/pkg/database"
	"github.com/copymill/copymill/pkg/llm"
	"github.com/copymill/copymill/pkg/masking"
	"github.com/copymill/copymill/pkg/metrics"
	"github.com/copymill/copymill/pkg/models"
	"github.com/copymill/copymill/pkg/orchestrator"
	"github.com/copymill/copymill/pkg/queue"
	"github.com/copymill/copymill/pkg/research"
	"github.com/copymill/copymill/pkg/services"
	"github.com/copymill/copymill/pkg/version"
)

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > generated.
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "pod-" + uuid.New().String()[:8]
}

// setupLogging configures the process logger from LOG_FORMAT and LOG_LEVEL.
func setupLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func main() {
	configPath := flag.String("config",
		os.Getenv("COPYMILL_CONFIG"),
		"Path to copymill.yaml (optional; built-in defaults apply)")
	flag.Parse()

	// Load .env best-effort; a missing file is the normal case in containers.
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	setupLogging()

	podID := resolvePodID()
	slog.Info("Starting copymill",
		"version", version.Full(),
		"pod_id", podID)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configPath)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (migrations run inside NewClient)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	metrics.Init()

	// 3. Domain services
	maskingService := masking.NewService()
	jobService := services.NewJobService(dbClient.Client)
	stepService := services.NewStepService(dbClient.Client)
	evalService := services.NewEvalService(dbClient.Client)
	personaService := services.NewPersonaService(dbClient.Client)
	logService := services.NewSystemLogService(dbClient.Client, maskingService)
	warningsService := services.NewSystemWarningsService()
	slog.Info("Services initialized")

	// 4. LLM and research clients
	llmClient, err := llm.NewClient(cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}

	researchClient := research.NewClient(cfg.Research)

	// 5. Startup checks surface as warnings, not fatals: jobs that hit a
	// missing dependency fail individually with a clear error.
	for name, provider := range cfg.ProviderRegistry.GetAll() {
		if os.Getenv(provider.APIKeyEnv) == "" {
			warningsService.AddWarning(services.WarningCategoryLLMCreds,
				"LLM provider has no API key",
				"set "+provider.APIKeyEnv, name)
		}
	}
	if !researchClient.HasCredentials() {
		warningsService.AddWarning(services.WarningCategoryResearchCreds,
			"Research API credentials missing",
			"set "+cfg.Research.LoginEnv+" and "+cfg.Research.PasswordEnv,
			"dataforseo")
	}
	for _, agentType := range models.PipelineOrder {
		if _, err := personaService.ResolvePersona(ctx, agentType, ""); err != nil {
			warningsService.AddWarning(services.WarningCategoryPersonaConfig,
				"No enabled default persona for agent",
				err.Error(), string(agentType))
		}
	}

	// 6. Pipeline executor
	registry, err := agent.NewDefaultRegistry(agent.Dependencies{
		LLM:      llmClient,
		Research: researchClient,
		QA:       cfg.QA,
	})
	if err != nil {
		slog.Error("Failed to build agent registry", "error", err)
		os.Exit(1)
	}

	executor := orchestrator.NewExecutor(orchestrator.Dependencies{
		Registry: registry,
		Jobs:     jobService,
		Steps:    stepService,
		Personas: personaService,
		LLM:      llmClient,
		Research: researchClient,
		Evals:    evalService,
		Logs:     logService,
		OnCancelled: func(jobID string) {
			slog.Info("Job cancelled", "job_id", jobID)
		},
	})

	// 7. Crash recovery before the pool starts claiming
	if err := queue.RecoverStartupJobs(ctx, jobService, podID, cfg.Queue.StuckJobPolicy); err != nil {
		slog.Error("Startup job recovery failed", "error", err)
		// Non-fatal — the sweeper catches anything left behind
	}

	// 8. Worker pool
	workerPool := queue.NewWorkerPool(podID, jobService, cfg.Queue, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Retention
	cleanupService := cleanup.NewService(cfg.Retention, jobService, logService)
	cleanupService.Start(ctx)

	// 10. HTTP server
	secret := os.Getenv(cfg.Server.RunnerSecretEnv)
	if secret == "" {
		slog.Warn("API authentication disabled", "secret_env", cfg.Server.RunnerSecretEnv)
	}
	httpServer := api.NewServer(cfg.Server,
		jobService, stepService, evalService, personaService, logService,
		workerPool, warningsService, dbClient, secret)

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("Copymill started successfully",
		"pod_id", podID,
		"port", cfg.Server.Port,
		"workers", cfg.Queue.WorkerCount)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: stop accepting requests, then drain workers.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	poolShutdownCtx, poolCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer poolCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-poolShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — in-flight jobs will be recovered as stuck")
	}

	cleanupService.Stop()

	slog.Info("Shutdown complete")
}
