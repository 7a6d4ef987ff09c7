package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/pkg/models"
	testdb "github.com/copymill/copymill/test/database"
)

func writerPersona(name string, isDefault bool) CreatePersonaRequest {
	return CreatePersonaRequest{
		AgentType:    models.AgentTypeWriter,
		Name:         name,
		SystemPrompt: "You write long-form articles.",
		Provider:     "openai",
		Model:        "gpt-4o",
		Temperature:  0.7,
		MaxTokens:    4096,
		IsDefault:    isDefault,
	}
}

func TestCreatePersona(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPersonaService(client.Client)
	ctx := context.Background()

	t.Run("created with fields", func(t *testing.T) {
		p, err := svc.CreatePersona(ctx, writerPersona("Default writer", true))
		require.NoError(t, err)
		assert.Equal(t, "Default writer", p.Name)
		assert.True(t, p.IsDefault)
		assert.True(t, p.IsEnabled)
		assert.InDelta(t, 0.7, p.Temperature, 1e-9)
	})

	t.Run("second default rejected", func(t *testing.T) {
		_, err := svc.CreatePersona(ctx, writerPersona("Another default", true))
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("non-default variant allowed", func(t *testing.T) {
		_, err := svc.CreatePersona(ctx, writerPersona("Casual writer", false))
		require.NoError(t, err)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.CreatePersona(ctx, CreatePersonaRequest{
			AgentType: "reviewer", Name: "x", Provider: "openai", Model: "gpt-4o",
		})
		assert.True(t, IsValidationError(err), "unknown agent type: %v", err)

		_, err = svc.CreatePersona(ctx, CreatePersonaRequest{
			AgentType: models.AgentTypeWriter, Provider: "openai", Model: "gpt-4o",
		})
		assert.True(t, IsValidationError(err), "missing name: %v", err)
	})
}

func TestResolvePersona(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPersonaService(client.Client)
	ctx := context.Background()

	def, err := svc.CreatePersona(ctx, writerPersona("Default writer", true))
	require.NoError(t, err)
	variant, err := svc.CreatePersona(ctx, writerPersona("Casual writer", false))
	require.NoError(t, err)

	t.Run("default resolves without override", func(t *testing.T) {
		p, err := svc.ResolvePersona(ctx, models.AgentTypeWriter, "")
		require.NoError(t, err)
		assert.Equal(t, def.ID, p.ID)
	})

	t.Run("override wins", func(t *testing.T) {
		p, err := svc.ResolvePersona(ctx, models.AgentTypeWriter, variant.ID)
		require.NoError(t, err)
		assert.Equal(t, variant.ID, p.ID)
	})

	t.Run("override must match agent type", func(t *testing.T) {
		_, err := svc.ResolvePersona(ctx, models.AgentTypeQA, variant.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("no default configured", func(t *testing.T) {
		_, err := svc.ResolvePersona(ctx, models.AgentTypeQA, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("soft-deleted override never resolves", func(t *testing.T) {
		require.NoError(t, svc.SoftDeletePersona(ctx, variant.ID))
		_, err := svc.ResolvePersona(ctx, models.AgentTypeWriter, variant.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListPersonas(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPersonaService(client.Client)
	ctx := context.Background()

	_, err := svc.CreatePersona(ctx, writerPersona("Default writer", true))
	require.NoError(t, err)
	qa, err := svc.CreatePersona(ctx, CreatePersonaRequest{
		AgentType: models.AgentTypeQA,
		Name:      "Default QA",
		Provider:  "openai",
		Model:     "gpt-4o",
		IsDefault: true,
	})
	require.NoError(t, err)

	t.Run("all personas", func(t *testing.T) {
		personas, err := svc.ListPersonas(ctx, "")
		require.NoError(t, err)
		assert.Len(t, personas, 2)
	})

	t.Run("agent type filter", func(t *testing.T) {
		personas, err := svc.ListPersonas(ctx, "qa")
		require.NoError(t, err)
		require.Len(t, personas, 1)
		assert.Equal(t, qa.ID, personas[0].ID)
	})

	t.Run("unknown agent type rejected", func(t *testing.T) {
		_, err := svc.ListPersonas(ctx, "reviewer")
		assert.True(t, IsValidationError(err))
	})

	t.Run("soft-deleted hidden", func(t *testing.T) {
		require.NoError(t, svc.SoftDeletePersona(ctx, qa.ID))
		personas, err := svc.ListPersonas(ctx, "")
		require.NoError(t, err)
		assert.Len(t, personas, 1)

		_, err = svc.GetPersona(ctx, qa.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
