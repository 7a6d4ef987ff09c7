// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/copymill/copymill/pkg/config"
	"github.com/copymill/copymill/pkg/services"
)

// Service periodically enforces retention policies:
//   - Deletes terminal jobs past the retention window (steps and
//     evaluations follow via cascade)
//   - Deletes system log rows past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config     *config.RetentionConfig
	jobService *services.JobService
	logService *services.SystemLogService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	jobService *services.JobService,
	logService *services.SystemLogService,
) *Service {
	return &Service{
		config:     cfg,
		jobService: jobService,
		logService: logService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"job_retention_days", s.config.JobRetentionDays,
		"system_log_ttl", s.config.SystemLogTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeOldJobs(ctx)
	s.purgeOldLogs(ctx)
}

func (s *Service) purgeOldJobs(_ context.Context) {
	count, err := s.jobService.PurgeOldJobs(context.Background(), s.config.JobRetentionDays)
	if err != nil {
		slog.Error("Retention: job purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old jobs", "count", count)
	}
}

func (s *Service) purgeOldLogs(_ context.Context) {
	count, err := s.logService.PurgeOldLogs(context.Background(), s.config.SystemLogTTL)
	if err != nil {
		slog.Error("Retention: system log purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old system logs", "count", count)
	}
}
