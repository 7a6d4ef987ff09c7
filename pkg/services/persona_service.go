package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/copymill/copymill/ent"
	"github.com/copymill/copymill/ent/persona"
	"github.com/copymill/copymill/pkg/models"
)

// PersonaService manages agent personas (prompt/model configuration).
type PersonaService struct {
	client *ent.Client
}

// NewPersonaService creates a new PersonaService
func NewPersonaService(client *ent.Client) *PersonaService {
	return &PersonaService{client: client}
}

// CreatePersonaRequest contains fields for creating a persona.
type CreatePersonaRequest struct {
	AgentType    models.AgentType `json:"agent_type"`
	Name         string           `json:"name"`
	SystemPrompt string           `json:"system_prompt"`
	Provider     string           `json:"provider"`
	Model        string           `json:"model"`
	Temperature  float64          `json:"temperature"`
	MaxTokens    int              `json:"max_tokens"`
	IsDefault    bool             `json:"is_default"`
}

// CreatePersona creates a persona. The partial unique index on
// (agent_type) WHERE is_default rejects a second live default.
func (s *PersonaService) CreatePersona(httpCtx context.Context, req CreatePersonaRequest) (*ent.Persona, error) {
	if !models.ValidAgentType(string(req.AgentType)) {
		return nil, NewValidationError("agent_type", fmt.Sprintf("unknown agent type %q", req.AgentType))
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Provider == "" {
		return nil, NewValidationError("provider", "required")
	}
	if req.Model == "" {
		return nil, NewValidationError("model", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Persona.Create().
		SetID(uuid.New().String()).
		SetAgentType(persona.AgentType(req.AgentType)).
		SetName(req.Name).
		SetSystemPrompt(req.SystemPrompt).
		SetProvider(req.Provider).
		SetModel(req.Model).
		SetIsDefault(req.IsDefault)

	if req.Temperature != 0 {
		builder = builder.SetTemperature(req.Temperature)
	}
	if req.MaxTokens != 0 {
		builder = builder.SetMaxTokens(req.MaxTokens)
	}

	p, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create persona: %w", err)
	}
	return p, nil
}

// GetPersona retrieves a persona by ID. Soft-deleted personas are invisible.
func (s *PersonaService) GetPersona(ctx context.Context, personaID string) (*ent.Persona, error) {
	p, err := s.client.Persona.Query().
		Where(
			persona.IDEQ(personaID),
			persona.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get persona: %w", err)
	}
	return p, nil
}

// ListPersonas lists live personas, optionally filtered by agent type.
func (s *PersonaService) ListPersonas(ctx context.Context, agentType string) ([]*ent.Persona, error) {
	query := s.client.Persona.Query().
		Where(persona.DeletedAtIsNil())

	if agentType != "" {
		if !models.ValidAgentType(agentType) {
			return nil, NewValidationError("agent_type", fmt.Sprintf("unknown agent type %q", agentType))
		}
		query = query.Where(persona.AgentTypeEQ(persona.AgentType(agentType)))
	}

	personas, err := query.
		Order(ent.Asc(persona.FieldAgentType), ent.Desc(persona.FieldIsDefault)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list personas: %w", err)
	}
	return personas, nil
}

// ResolvePersona returns the persona a job should use for an agent:
// the settings override when present, otherwise the enabled default for the
// agent type. Disabled or soft-deleted personas never resolve.
func (s *PersonaService) ResolvePersona(ctx context.Context, agentType models.AgentType, overrideID string) (*ent.Persona, error) {
	if overrideID != "" {
		p, err := s.client.Persona.Query().
			Where(
				persona.IDEQ(overrideID),
				persona.AgentTypeEQ(persona.AgentType(agentType)),
				persona.IsEnabled(true),
				persona.DeletedAtIsNil(),
			).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("persona override %q for agent %s: %w", overrideID, agentType, ErrNotFound)
			}
			return nil, fmt.Errorf("failed to resolve persona override: %w", err)
		}
		return p, nil
	}

	p, err := s.client.Persona.Query().
		Where(
			persona.AgentTypeEQ(persona.AgentType(agentType)),
			persona.IsDefault(true),
			persona.IsEnabled(true),
			persona.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("default persona for agent %s: %w", agentType, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve default persona: %w", err)
	}
	return p, nil
}

// SoftDeletePersona hides a persona without breaking historical references.
func (s *PersonaService) SoftDeletePersona(ctx context.Context, personaID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Persona.UpdateOneID(personaID).
		SetDeletedAt(time.Now()).
		SetIsDefault(false).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete persona: %w", err)
	}
	return nil
}
