package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// EnsureClaimIndex creates the ordered claim index used by the worker pool's
// FOR UPDATE SKIP LOCKED query. The DESC/ASC column ordering cannot be
// expressed in the Ent schema, so it is created here with raw SQL. Also
// called by test helpers after Ent creates a bare schema.
func EnsureClaimIndex(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_jobs_claim
		ON jobs (status, priority DESC, created_at ASC)`)
	if err != nil {
		return fmt.Errorf("failed to create jobs claim index: %w", err)
	}

	return nil
}
