// Package api exposes the HTTP control surface: job CRUD and lifecycle,
// persona administration, SSE progress streams, health, and metrics.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/copymill/copymill/ent"
	"github.com/copymill/copymill/pkg/config"
	"github.com/copymill/copymill/pkg/database"
	"github.com/copymill/copymill/pkg/models"
	"github.com/copymill/copymill/pkg/queue"
	"github.com/copymill/copymill/pkg/services"
)

// JobService is the job surface the handlers need. Satisfied by
// services.JobService.
type JobService interface {
	CreateJob(ctx context.Context, req models.CreateJobRequest) (*ent.Job, error)
	GetJob(ctx context.Context, jobID string) (*ent.Job, error)
	ListJobs(ctx context.Context, filters models.JobFilters) ([]*ent.Job, int, error)
	ListActiveJobs(ctx context.Context) ([]*ent.Job, error)
	CancelJob(ctx context.Context, jobID, userID string) (*ent.Job, error)
	RequestCancel(ctx context.Context, jobID string) error
	RetryJob(ctx context.Context, jobID string) (*ent.Job, error)
}

// StepService lists the per-job step log. Satisfied by services.StepService.
type StepService interface {
	ListSteps(ctx context.Context, jobID string) ([]*ent.JobStep, error)
}

// EvalService lists QA evaluations. Satisfied by services.EvalService.
type EvalService interface {
	ListEvals(ctx context.Context, jobID string) ([]*ent.JobEval, error)
}

// PersonaService is the persona read surface. Satisfied by
// services.PersonaService.
type PersonaService interface {
	ListPersonas(ctx context.Context, agentType string) ([]*ent.Persona, error)
	GetPersona(ctx context.Context, personaID string) (*ent.Persona, error)
}

// LogService reads the system log sink. Satisfied by
// services.SystemLogService.
type LogService interface {
	ListForEntity(ctx context.Context, entityType, entityID string, limit int) ([]*ent.SystemLog, error)
}

// Pool is the worker pool surface: health reporting plus best-effort local
// hard cancellation. Satisfied by queue.WorkerPool.
type Pool interface {
	Health() *queue.PoolHealth
	CancelJob(jobID string) bool
}

// Server holds the HTTP server and its dependencies.
type Server struct {
	config   *config.ServerConfig
	jobs     JobService
	steps    StepService
	evals    EvalService
	personas PersonaService
	logs     LogService
	pool     Pool
	warnings *services.SystemWarningsService
	db       *database.Client
	secret   string

	httpServer *http.Server
}

// NewServer creates the API server. secret is the bearer token for admin
// endpoints; an empty secret disables auth (local development).
func NewServer(
	cfg *config.ServerConfig,
	jobs JobService,
	steps StepService,
	evals EvalService,
	personas PersonaService,
	logs LogService,
	pool Pool,
	warnings *services.SystemWarningsService,
	db *database.Client,
	secret string,
) *Server {
	return &Server{
		config:   cfg,
		jobs:     jobs,
		steps:    steps,
		evals:    evals,
		personas: personas,
		logs:     logs,
		pool:     pool,
		warnings: warnings,
		db:       db,
		secret:   secret,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	// Unauthenticated probes
	router.GET("/health", s.handleHealth)
	router.GET("/health/ready", s.handleReady)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	admin := router.Group("/", requireBearer(s.secret))
	{
		admin.POST("/jobs", s.handleCreateJob)
		admin.GET("/jobs", s.handleListJobs)
		admin.GET("/jobs/stream", s.handleGlobalStream)
		admin.GET("/jobs/:id", s.handleGetJob)
		admin.POST("/jobs/:id/cancel", s.handleCancelJob)
		admin.POST("/jobs/:id/retry", s.handleRetryJob)
		admin.GET("/jobs/:id/logs", s.handleJobLogs)
		admin.GET("/jobs/:id/stream", s.handleJobStream)

		admin.GET("/personas", s.handleListPersonas)
		admin.GET("/personas/:id", s.handleGetPersona)

		admin.GET("/system/health", s.handleSystemHealth)
		admin.GET("/system/warnings", s.handleSystemWarnings)
	}

	return router
}

// Start begins serving. Blocks until the listener fails or Shutdown runs.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:        fmt.Sprintf(":%d", s.config.Port),
		Handler:     s.Router(),
		ReadTimeout: s.config.ReadTimeout,
		// WriteTimeout stays zero: SSE streams hold writers open.
		WriteTimeout: s.config.WriteTimeout,
	}

	slog.Info("API server listening", "port", s.config.Port)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// requestLogger logs each request with method, path, status, and latency.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
