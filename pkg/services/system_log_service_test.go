package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/ent/systemlog"
	"github.com/copymill/copymill/pkg/masking"
	testdb "github.com/copymill/copymill/test/database"
)

func TestSystemLogWrite(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSystemLogService(client.Client, masking.NewService())
	ctx := context.Background()

	t.Run("persists row with level and data", func(t *testing.T) {
		svc.Info("job-1", "Agent completed", map[string]any{"agent": "writer"})

		rows, err := svc.ListForEntity(ctx, EntityTypeJob, "job-1", 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, systemlog.LevelInfo, rows[0].Level)
		assert.Equal(t, "Agent completed", rows[0].Message)
		assert.Equal(t, "writer", rows[0].Data["agent"])
	})

	t.Run("credentials masked before persistence", func(t *testing.T) {
		svc.Error("job-2", "LLM call failed with key sk-abcdefghij0123456789", map[string]any{
			"api_key": "sk-abcdefghij0123456789",
		})

		rows, err := svc.ListForEntity(ctx, EntityTypeJob, "job-2", 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.NotContains(t, rows[0].Message, "sk-abcdefghij0123456789")
		assert.Contains(t, rows[0].Message, "***MASKED_API_KEY***")
		if v, ok := rows[0].Data["api_key"].(string); ok {
			assert.NotContains(t, v, "sk-abcdefghij0123456789")
		}
	})
}

func TestListForEntity(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSystemLogService(client.Client, masking.NewService())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		svc.Debug("job-1", fmt.Sprintf("line %d", i), nil)
	}
	svc.Info("job-2", "other job", nil)

	t.Run("scoped to entity", func(t *testing.T) {
		rows, err := svc.ListForEntity(ctx, EntityTypeJob, "job-1", 0)
		require.NoError(t, err)
		assert.Len(t, rows, 5)
	})

	t.Run("limit applies", func(t *testing.T) {
		rows, err := svc.ListForEntity(ctx, EntityTypeJob, "job-1", 2)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})
}
