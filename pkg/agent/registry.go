package agent

import (
	"errors"
	"fmt"
	"sync"

	"github.com/copymill/copymill/pkg/config"
	"github.com/copymill/copymill/pkg/llm"
	"github.com/copymill/copymill/pkg/models"
	"github.com/copymill/copymill/pkg/research"
)

// ErrAgentNotFound is returned by Registry.Get for unregistered agent types.
var ErrAgentNotFound = errors.New("agent not found")

// Registry maps agent types to their singleton implementations. Registration
// happens at startup; lookups are read-only and safe for concurrent use.
// Tests swap individual agents with Replace.
type Registry struct {
	mu     sync.RWMutex
	agents map[models.AgentType]Agent
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{agents: make(map[models.AgentType]Agent)}
}

// Register adds an agent. Registering the same type twice is a startup bug
// and returns an error.
func (r *Registry) Register(a Agent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.agents[a.AgentType()]; exists {
		return fmt.Errorf("agent %q already registered", a.AgentType())
	}
	r.agents[a.AgentType()] = a
	return nil
}

// Replace swaps the agent for a type unconditionally. Test injection point.
func (r *Registry) Replace(a Agent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.agents[a.AgentType()] = a
}

// Get returns the agent for a type, or ErrAgentNotFound.
func (r *Registry) Get(agentType models.AgentType) (Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.agents[agentType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAgentNotFound, agentType)
	}
	return a, nil
}

// Types returns the registered agent types.
func (r *Registry) Types() []models.AgentType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]models.AgentType, 0, len(r.agents))
	for t := range r.agents {
		types = append(types, t)
	}
	return types
}

// Dependencies are the shared collaborators the production agents need.
type Dependencies struct {
	LLM      llm.Provider
	Research research.Source
	QA       *config.QAConfig
}

// NewDefaultRegistry builds a registry with all five pipeline agents.
func NewDefaultRegistry(deps Dependencies) (*Registry, error) {
	r := NewRegistry()
	all := []Agent{
		NewResearchAgent(deps.Research),
		NewWriterAgent(),
		NewSEOAgent(),
		NewQAAgent(deps.QA),
		NewProjectManagerAgent(),
	}
	for _, a := range all {
		if err := r.Register(a); err != nil {
			return nil, err
		}
	}
	return r, nil
}
