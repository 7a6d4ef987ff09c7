// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/copymill/copymill/ent/persona"
)

// PersonaCreate is the builder for creating a Persona entity.
type PersonaCreate struct {
	config
	mutation *PersonaMutation
	hooks    []Hook
}

// SetAgentType sets the "agent_type" field.
func (pc *PersonaCreate) SetAgentType(pt persona.AgentType) *PersonaCreate {
	pc.mutation.SetAgentType(pt)
	return pc
}

// SetName sets the "name" field.
func (pc *PersonaCreate) SetName(s string) *PersonaCreate {
	pc.mutation.SetName(s)
	return pc
}

// SetSystemPrompt sets the "system_prompt" field.
func (pc *PersonaCreate) SetSystemPrompt(s string) *PersonaCreate {
	pc.mutation.SetSystemPrompt(s)
	return pc
}

// SetProvider sets the "provider" field.
func (pc *PersonaCreate) SetProvider(s string) *PersonaCreate {
	pc.mutation.SetProvider(s)
	return pc
}

// SetModel sets the "model" field.
func (pc *PersonaCreate) SetModel(s string) *PersonaCreate {
	pc.mutation.SetModel(s)
	return pc
}

// SetTemperature sets the "temperature" field.
func (pc *PersonaCreate) SetTemperature(f float64) *PersonaCreate {
	pc.mutation.SetTemperature(f)
	return pc
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (pc *PersonaCreate) SetNillableTemperature(f *float64) *PersonaCreate {
	if f != nil {
		pc.SetTemperature(*f)
	}
	return pc
}

// SetMaxTokens sets the "max_tokens" field.
func (pc *PersonaCreate) SetMaxTokens(i int) *PersonaCreate {
	pc.mutation.SetMaxTokens(i)
	return pc
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (pc *PersonaCreate) SetNillableMaxTokens(i *int) *PersonaCreate {
	if i != nil {
		pc.SetMaxTokens(*i)
	}
	return pc
}

// SetIsDefault sets the "is_default" field.
func (pc *PersonaCreate) SetIsDefault(b bool) *PersonaCreate {
	pc.mutation.SetIsDefault(b)
	return pc
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (pc *PersonaCreate) SetNillableIsDefault(b *bool) *PersonaCreate {
	if b != nil {
		pc.SetIsDefault(*b)
	}
	return pc
}

// SetIsEnabled sets the "is_enabled" field.
func (pc *PersonaCreate) SetIsEnabled(b bool) *PersonaCreate {
	pc.mutation.SetIsEnabled(b)
	return pc
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (pc *PersonaCreate) SetNillableIsEnabled(b *bool) *PersonaCreate {
	if b != nil {
		pc.SetIsEnabled(*b)
	}
	return pc
}

// SetCreatedAt sets the "created_at" field.
func (pc *PersonaCreate) SetCreatedAt(t time.Time) *PersonaCreate {
	pc.mutation.SetCreatedAt(t)
	return pc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (pc *PersonaCreate) SetNillableCreatedAt(t *time.Time) *PersonaCreate {
	if t != nil {
		pc.SetCreatedAt(*t)
	}
	return pc
}

// SetUpdatedAt sets the "updated_at" field.
func (pc *PersonaCreate) SetUpdatedAt(t time.Time) *PersonaCreate {
	pc.mutation.SetUpdatedAt(t)
	return pc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (pc *PersonaCreate) SetNillableUpdatedAt(t *time.Time) *PersonaCreate {
	if t != nil {
		pc.SetUpdatedAt(*t)
	}
	return pc
}

// SetDeletedAt sets the "deleted_at" field.
func (pc *PersonaCreate) SetDeletedAt(t time.Time) *PersonaCreate {
	pc.mutation.SetDeletedAt(t)
	return pc
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (pc *PersonaCreate) SetNillableDeletedAt(t *time.Time) *PersonaCreate {
	if t != nil {
		pc.SetDeletedAt(*t)
	}
	return pc
}

// SetID sets the "id" field.
func (pc *PersonaCreate) SetID(s string) *PersonaCreate {
	pc.mutation.SetID(s)
	return pc
}

// Mutation returns the PersonaMutation object of the builder.
func (pc *PersonaCreate) Mutation() *PersonaMutation {
	return pc.mutation
}

// Save creates the Persona in the database.
func (pc *PersonaCreate) Save(ctx context.Context) (*Persona, error) {
	pc.defaults()
	return withHooks(ctx, pc.sqlSave, pc.mutation, pc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (pc *PersonaCreate) SaveX(ctx context.Context) *Persona {
	v, err := pc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pc *PersonaCreate) Exec(ctx context.Context) error {
	_, err := pc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pc *PersonaCreate) ExecX(ctx context.Context) {
	if err := pc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pc *PersonaCreate) defaults() {
	if _, ok := pc.mutation.Temperature(); !ok {
		v := persona.DefaultTemperature
		pc.mutation.SetTemperature(v)
	}
	if _, ok := pc.mutation.MaxTokens(); !ok {
		v := persona.DefaultMaxTokens
		pc.mutation.SetMaxTokens(v)
	}
	if _, ok := pc.mutation.IsDefault(); !ok {
		v := persona.DefaultIsDefault
		pc.mutation.SetIsDefault(v)
	}
	if _, ok := pc.mutation.IsEnabled(); !ok {
		v := persona.DefaultIsEnabled
		pc.mutation.SetIsEnabled(v)
	}
	if _, ok := pc.mutation.CreatedAt(); !ok {
		v := persona.DefaultCreatedAt()
		pc.mutation.SetCreatedAt(v)
	}
	if _, ok := pc.mutation.UpdatedAt(); !ok {
		v := persona.DefaultUpdatedAt()
		pc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pc *PersonaCreate) check() error {
	if _, ok := pc.mutation.AgentType(); !ok {
		return &ValidationError{Name: "agent_type", err: errors.New(`ent: missing required field "Persona.agent_type"`)}
	}
	if v, ok := pc.mutation.AgentType(); ok {
		if err := persona.AgentTypeValidator(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "Persona.agent_type": %w`, err)}
		}
	}
	if _, ok := pc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Persona.name"`)}
	}
	if v, ok := pc.mutation.Name(); ok {
		if err := persona.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Persona.name": %w`, err)}
		}
	}
	if _, ok := pc.mutation.SystemPrompt(); !ok {
		return &ValidationError{Name: "system_prompt", err: errors.New(`ent: missing required field "Persona.system_prompt"`)}
	}
	if _, ok := pc.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "Persona.provider"`)}
	}
	if _, ok := pc.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "Persona.model"`)}
	}
	if _, ok := pc.mutation.Temperature(); !ok {
		return &ValidationError{Name: "temperature", err: errors.New(`ent: missing required field "Persona.temperature"`)}
	}
	if _, ok := pc.mutation.MaxTokens(); !ok {
		return &ValidationError{Name: "max_tokens", err: errors.New(`ent: missing required field "Persona.max_tokens"`)}
	}
	if _, ok := pc.mutation.IsDefault(); !ok {
		return &ValidationError{Name: "is_default", err: errors.New(`ent: missing required field "Persona.is_default"`)}
	}
	if _, ok := pc.mutation.IsEnabled(); !ok {
		return &ValidationError{Name: "is_enabled", err: errors.New(`ent: missing required field "Persona.is_enabled"`)}
	}
	if _, ok := pc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Persona.created_at"`)}
	}
	if _, ok := pc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Persona.updated_at"`)}
	}
	return nil
}

func (pc *PersonaCreate) sqlSave(ctx context.Context) (*Persona, error) {
	if err := pc.check(); err != nil {
		return nil, err
	}
	_node, _spec := pc.createSpec()
	if err := sqlgraph.CreateNode(ctx, pc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Persona.ID type: %T", _spec.ID.Value)
		}
	}
	pc.mutation.id = &_node.ID
	pc.mutation.done = true
	return _node, nil
}

func (pc *PersonaCreate) createSpec() (*Persona, *sqlgraph.CreateSpec) {
	var (
		_node = &Persona{config: pc.config}
		_spec = sqlgraph.NewCreateSpec(persona.Table, sqlgraph.NewFieldSpec(persona.FieldID, field.TypeString))
	)
	if id, ok := pc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := pc.mutation.AgentType(); ok {
		_spec.SetField(persona.FieldAgentType, field.TypeEnum, value)
		_node.AgentType = value
	}
	if value, ok := pc.mutation.Name(); ok {
		_spec.SetField(persona.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := pc.mutation.SystemPrompt(); ok {
		_spec.SetField(persona.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = value
	}
	if value, ok := pc.mutation.Provider(); ok {
		_spec.SetField(persona.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := pc.mutation.Model(); ok {
		_spec.SetField(persona.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := pc.mutation.Temperature(); ok {
		_spec.SetField(persona.FieldTemperature, field.TypeFloat64, value)
		_node.Temperature = value
	}
	if value, ok := pc.mutation.MaxTokens(); ok {
		_spec.SetField(persona.FieldMaxTokens, field.TypeInt, value)
		_node.MaxTokens = value
	}
	if value, ok := pc.mutation.IsDefault(); ok {
		_spec.SetField(persona.FieldIsDefault, field.TypeBool, value)
		_node.IsDefault = value
	}
	if value, ok := pc.mutation.IsEnabled(); ok {
		_spec.SetField(persona.FieldIsEnabled, field.TypeBool, value)
		_node.IsEnabled = value
	}
	if value, ok := pc.mutation.CreatedAt(); ok {
		_spec.SetField(persona.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := pc.mutation.UpdatedAt(); ok {
		_spec.SetField(persona.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := pc.mutation.DeletedAt(); ok {
		_spec.SetField(persona.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	return _node, _spec
}

// PersonaCreateBulk is the builder for creating many Persona entities in bulk.
type PersonaCreateBulk struct {
	config
	err      error
	builders []*PersonaCreate
}

// Save creates the Persona entities in the database.
func (pcb *PersonaCreateBulk) Save(ctx context.Context) ([]*Persona, error) {
	if pcb.err != nil {
		return nil, pcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pcb.builders))
	nodes := make([]*Persona, len(pcb.builders))
	mutators := make([]Mutator, len(pcb.builders))
	for i := range pcb.builders {
		func(i int, root context.Context) {
			builder := pcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PersonaMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, pcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, pcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pcb *PersonaCreateBulk) SaveX(ctx context.Context) []*Persona {
	v, err := pcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pcb *PersonaCreateBulk) Exec(ctx context.Context) error {
	_, err := pcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pcb *PersonaCreateBulk) ExecX(ctx context.Context) {
	if err := pcb.Exec(ctx); err != nil {
		panic(err)
	}
}
