package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copymill/copymill/pkg/llm"
	"github.com/copymill/copymill/pkg/models"
)

type stubAgent struct {
	agentType models.AgentType
}

func (s *stubAgent) AgentType() models.AgentType { return s.agentType }
func (s *stubAgent) Name() string                { return "stub" }
func (s *stubAgent) Description() string         { return "stub" }
func (s *stubAgent) ValidateInput(Input) error   { return nil }
func (s *stubAgent) OutputSchema() llm.Schema    { return staticSchema("stub") }
func (s *stubAgent) Execute(ctx context.Context, in Input, rc *RunContext) *Result {
	return &Result{Success: true, ContinueToNext: true}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	stub := &stubAgent{agentType: models.AgentTypeWriter}

	require.NoError(t, r.Register(stub))

	got, err := r.Get(models.AgentTypeWriter)
	require.NoError(t, err)
	assert.Same(t, Agent(stub), got)
}

func TestRegistryDuplicateRegistration(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubAgent{agentType: models.AgentTypeWriter}))

	err := r.Register(&stubAgent{agentType: models.AgentTypeWriter})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistryGetUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get(models.AgentTypeQA)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAgentNotFound)
}

func TestRegistryReplace(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(NewWriterAgent()))

	stub := &stubAgent{agentType: models.AgentTypeWriter}
	r.Replace(stub)

	got, err := r.Get(models.AgentTypeWriter)
	require.NoError(t, err)
	assert.Same(t, Agent(stub), got)
}

func TestNewDefaultRegistry(t *testing.T) {
	r, err := NewDefaultRegistry(Dependencies{
		LLM:      newFakeLLM(),
		Research: &fakeResearchSource{},
	})
	require.NoError(t, err)

	assert.Len(t, r.Types(), 5)
	for _, agentType := range []models.AgentType{
		models.AgentTypeResearch,
		models.AgentTypeWriter,
		models.AgentTypeSEO,
		models.AgentTypeQA,
		models.AgentTypeProjectManager,
	} {
		a, err := r.Get(agentType)
		require.NoError(t, err, "agent %s", agentType)
		assert.Equal(t, agentType, a.AgentType())
	}
}
