package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/copymill/copymill/ent"
	"github.com/copymill/copymill/ent/systemlog"
	"github.com/copymill/copymill/pkg/masking"
)

// SystemLogService persists structured log rows for jobs and mirrors them to
// slog. It is the sink behind GET /jobs/{id}/logs. Credentials are masked
// before persistence.
type SystemLogService struct {
	client *ent.Client
	masker *masking.Service
}

// NewSystemLogService creates a new system log service.
func NewSystemLogService(client *ent.Client, masker *masking.Service) *SystemLogService {
	return &SystemLogService{client: client, masker: masker}
}

// Write persists a log row and mirrors it to slog. Insert failures are
// logged and swallowed: the sink must never fail the pipeline. Uses a
// background context so writes survive caller cancellation.
func (s *SystemLogService) Write(entityType, entityID string, level systemlog.Level, message string, data map[string]any) {
	masked := s.masker.Mask(message)
	maskedData := s.masker.MaskMap(data)

	s.mirror(level, masked, entityType, entityID, maskedData)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.SystemLog.Create().
		SetID(uuid.New().String()).
		SetEntityType(entityType).
		SetEntityID(entityID).
		SetLevel(level).
		SetMessage(masked)
	if len(maskedData) > 0 {
		builder.SetData(maskedData)
	}
	if _, err := builder.Save(ctx); err != nil {
		slog.Warn("Failed to persist system log row",
			"entity_type", entityType, "entity_id", entityID, "error", err)
	}
}

// Debug writes a debug-level row for a job.
func (s *SystemLogService) Debug(jobID, message string, data map[string]any) {
	s.Write(EntityTypeJob, jobID, systemlog.LevelDebug, message, data)
}

// Info writes an info-level row for a job.
func (s *SystemLogService) Info(jobID, message string, data map[string]any) {
	s.Write(EntityTypeJob, jobID, systemlog.LevelInfo, message, data)
}

// Warn writes a warn-level row for a job.
func (s *SystemLogService) Warn(jobID, message string, data map[string]any) {
	s.Write(EntityTypeJob, jobID, systemlog.LevelWarn, message, data)
}

// Error writes an error-level row for a job.
func (s *SystemLogService) Error(jobID, message string, data map[string]any) {
	s.Write(EntityTypeJob, jobID, systemlog.LevelError, message, data)
}

// EntityTypeJob is the entity type under which job pipeline logs are filed.
const EntityTypeJob = "job"

// ListForEntity returns the most recent log rows for an entity, newest
// first. Limit is capped at 100; zero or negative means 100.
func (s *SystemLogService) ListForEntity(ctx context.Context, entityType, entityID string, limit int) ([]*ent.SystemLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	rows, err := s.client.SystemLog.Query().
		Where(
			systemlog.EntityTypeEQ(entityType),
			systemlog.EntityIDEQ(entityID),
		).
		Order(ent.Desc(systemlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list system logs: %w", err)
	}
	return rows, nil
}

// PurgeOldLogs deletes log rows older than the TTL. Returns the number of
// rows deleted.
func (s *SystemLogService) PurgeOldLogs(ctx context.Context, ttl time.Duration) (int, error) {
	if ttl <= 0 {
		return 0, nil
	}
	cutoff := time.Now().Add(-ttl)

	count, err := s.client.SystemLog.Delete().
		Where(systemlog.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge old logs: %w", err)
	}
	return count, nil
}

// mirror emits the row to the process logger at the matching level.
func (s *SystemLogService) mirror(level systemlog.Level, message, entityType, entityID string, data map[string]any) {
	attrs := []any{"entity_type", entityType, "entity_id", entityID}
	if len(data) > 0 {
		attrs = append(attrs, "data", data)
	}
	switch level {
	case systemlog.LevelDebug:
		slog.Debug(message, attrs...)
	case systemlog.LevelWarn:
		slog.Warn(message, attrs...)
	case systemlog.LevelError:
		slog.Error(message, attrs...)
	default:
		slog.Info(message, attrs...)
	}
}
