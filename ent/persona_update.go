// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/copymill/copymill/ent/persona"
	"github.com/copymill/copymill/ent/predicate"
)

// PersonaUpdate is the builder for updating Persona entities.
type PersonaUpdate struct {
	config
	hooks    []Hook
	mutation *PersonaMutation
}

// Where appends a list predicates to the PersonaUpdate builder.
func (pu *PersonaUpdate) Where(ps ...predicate.Persona) *PersonaUpdate {
	pu.mutation.Where(ps...)
	return pu
}

// SetAgentType sets the "agent_type" field.
func (pu *PersonaUpdate) SetAgentType(pt persona.AgentType) *PersonaUpdate {
	pu.mutation.SetAgentType(pt)
	return pu
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (pu *PersonaUpdate) SetNillableAgentType(pt *persona.AgentType) *PersonaUpdate {
	if pt != nil {
		pu.SetAgentType(*pt)
	}
	return pu
}

// SetName sets the "name" field.
func (pu *PersonaUpdate) SetName(s string) *PersonaUpdate {
	pu.mutation.SetName(s)
	return pu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (pu *PersonaUpdate) SetNillableName(s *string) *PersonaUpdate {
	if s != nil {
		pu.SetName(*s)
	}
	return pu
}

// SetSystemPrompt sets the "system_prompt" field.
func (pu *PersonaUpdate) SetSystemPrompt(s string) *PersonaUpdate {
	pu.mutation.SetSystemPrompt(s)
	return pu
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (pu *PersonaUpdate) SetNillableSystemPrompt(s *string) *PersonaUpdate {
	if s != nil {
		pu.SetSystemPrompt(*s)
	}
	return pu
}

// SetProvider sets the "provider" field.
func (pu *PersonaUpdate) SetProvider(s string) *PersonaUpdate {
	pu.mutation.SetProvider(s)
	return pu
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (pu *PersonaUpdate) SetNillableProvider(s *string) *PersonaUpdate {
	if s != nil {
		pu.SetProvider(*s)
	}
	return pu
}

// SetModel sets the "model" field.
func (pu *PersonaUpdate) SetModel(s string) *PersonaUpdate {
	pu.mutation.SetModel(s)
	return pu
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (pu *PersonaUpdate) SetNillableModel(s *string) *PersonaUpdate {
	if s != nil {
		pu.SetModel(*s)
	}
	return pu
}

// SetTemperature sets the "temperature" field.
func (pu *PersonaUpdate) SetTemperature(f float64) *PersonaUpdate {
	pu.mutation.ResetTemperature()
	pu.mutation.SetTemperature(f)
	return pu
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (pu *PersonaUpdate) SetNillableTemperature(f *float64) *PersonaUpdate {
	if f != nil {
		pu.SetTemperature(*f)
	}
	return pu
}

// AddTemperature adds f to the "temperature" field.
func (pu *PersonaUpdate) AddTemperature(f float64) *PersonaUpdate {
	pu.mutation.AddTemperature(f)
	return pu
}

// SetMaxTokens sets the "max_tokens" field.
func (pu *PersonaUpdate) SetMaxTokens(i int) *PersonaUpdate {
	pu.mutation.ResetMaxTokens()
	pu.mutation.SetMaxTokens(i)
	return pu
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (pu *PersonaUpdate) SetNillableMaxTokens(i *int) *PersonaUpdate {
	if i != nil {
		pu.SetMaxTokens(*i)
	}
	return pu
}

// AddMaxTokens adds i to the "max_tokens" field.
func (pu *PersonaUpdate) AddMaxTokens(i int) *PersonaUpdate {
	pu.mutation.AddMaxTokens(i)
	return pu
}

// SetIsDefault sets the "is_default" field.
func (pu *PersonaUpdate) SetIsDefault(b bool) *PersonaUpdate {
	pu.mutation.SetIsDefault(b)
	return pu
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (pu *PersonaUpdate) SetNillableIsDefault(b *bool) *PersonaUpdate {
	if b != nil {
		pu.SetIsDefault(*b)
	}
	return pu
}

// SetIsEnabled sets the "is_enabled" field.
func (pu *PersonaUpdate) SetIsEnabled(b bool) *PersonaUpdate {
	pu.mutation.SetIsEnabled(b)
	return pu
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (pu *PersonaUpdate) SetNillableIsEnabled(b *bool) *PersonaUpdate {
	if b != nil {
		pu.SetIsEnabled(*b)
	}
	return pu
}

// SetUpdatedAt sets the "updated_at" field.
func (pu *PersonaUpdate) SetUpdatedAt(t time.Time) *PersonaUpdate {
	pu.mutation.SetUpdatedAt(t)
	return pu
}

// SetDeletedAt sets the "deleted_at" field.
func (pu *PersonaUpdate) SetDeletedAt(t time.Time) *PersonaUpdate {
	pu.mutation.SetDeletedAt(t)
	return pu
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (pu *PersonaUpdate) SetNillableDeletedAt(t *time.Time) *PersonaUpdate {
	if t != nil {
		pu.SetDeletedAt(*t)
	}
	return pu
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (pu *PersonaUpdate) ClearDeletedAt() *PersonaUpdate {
	pu.mutation.ClearDeletedAt()
	return pu
}

// Mutation returns the PersonaMutation object of the builder.
func (pu *PersonaUpdate) Mutation() *PersonaMutation {
	return pu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pu *PersonaUpdate) Save(ctx context.Context) (int, error) {
	pu.defaults()
	return withHooks(ctx, pu.sqlSave, pu.mutation, pu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pu *PersonaUpdate) SaveX(ctx context.Context) int {
	affected, err := pu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pu *PersonaUpdate) Exec(ctx context.Context) error {
	_, err := pu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pu *PersonaUpdate) ExecX(ctx context.Context) {
	if err := pu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pu *PersonaUpdate) defaults() {
	if _, ok := pu.mutation.UpdatedAt(); !ok {
		v := persona.UpdateDefaultUpdatedAt()
		pu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pu *PersonaUpdate) check() error {
	if v, ok := pu.mutation.AgentType(); ok {
		if err := persona.AgentTypeValidator(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "Persona.agent_type": %w`, err)}
		}
	}
	if v, ok := pu.mutation.Name(); ok {
		if err := persona.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Persona.name": %w`, err)}
		}
	}
	return nil
}

func (pu *PersonaUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := pu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(persona.Table, persona.Columns, sqlgraph.NewFieldSpec(persona.FieldID, field.TypeString))
	if ps := pu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pu.mutation.AgentType(); ok {
		_spec.SetField(persona.FieldAgentType, field.TypeEnum, value)
	}
	if value, ok := pu.mutation.Name(); ok {
		_spec.SetField(persona.FieldName, field.TypeString, value)
	}
	if value, ok := pu.mutation.SystemPrompt(); ok {
		_spec.SetField(persona.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := pu.mutation.Provider(); ok {
		_spec.SetField(persona.FieldProvider, field.TypeString, value)
	}
	if value, ok := pu.mutation.Model(); ok {
		_spec.SetField(persona.FieldModel, field.TypeString, value)
	}
	if value, ok := pu.mutation.Temperature(); ok {
		_spec.SetField(persona.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := pu.mutation.AddedTemperature(); ok {
		_spec.AddField(persona.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := pu.mutation.MaxTokens(); ok {
		_spec.SetField(persona.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := pu.mutation.AddedMaxTokens(); ok {
		_spec.AddField(persona.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := pu.mutation.IsDefault(); ok {
		_spec.SetField(persona.FieldIsDefault, field.TypeBool, value)
	}
	if value, ok := pu.mutation.IsEnabled(); ok {
		_spec.SetField(persona.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := pu.mutation.UpdatedAt(); ok {
		_spec.SetField(persona.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := pu.mutation.DeletedAt(); ok {
		_spec.SetField(persona.FieldDeletedAt, field.TypeTime, value)
	}
	if pu.mutation.DeletedAtCleared() {
		_spec.ClearField(persona.FieldDeletedAt, field.TypeTime)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, pu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{persona.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pu.mutation.done = true
	return n, nil
}

// PersonaUpdateOne is the builder for updating a single Persona entity.
type PersonaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PersonaMutation
}

// SetAgentType sets the "agent_type" field.
func (puo *PersonaUpdateOne) SetAgentType(pt persona.AgentType) *PersonaUpdateOne {
	puo.mutation.SetAgentType(pt)
	return puo
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (puo *PersonaUpdateOne) SetNillableAgentType(pt *persona.AgentType) *PersonaUpdateOne {
	if pt != nil {
		puo.SetAgentType(*pt)
	}
	return puo
}

// SetName sets the "name" field.
func (puo *PersonaUpdateOne) SetName(s string) *PersonaUpdateOne {
	puo.mutation.SetName(s)
	return puo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (puo *PersonaUpdateOne) SetNillableName(s *string) *PersonaUpdateOne {
	if s != nil {
		puo.SetName(*s)
	}
	return puo
}

// SetSystemPrompt sets the "system_prompt" field.
func (puo *PersonaUpdateOne) SetSystemPrompt(s string) *PersonaUpdateOne {
	puo.mutation.SetSystemPrompt(s)
	return puo
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (puo *PersonaUpdateOne) SetNillableSystemPrompt(s *string) *PersonaUpdateOne {
	if s != nil {
		puo.SetSystemPrompt(*s)
	}
	return puo
}

// SetProvider sets the "provider" field.
func (puo *PersonaUpdateOne) SetProvider(s string) *PersonaUpdateOne {
	puo.mutation.SetProvider(s)
	return puo
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (puo *PersonaUpdateOne) SetNillableProvider(s *string) *PersonaUpdateOne {
	if s != nil {
		puo.SetProvider(*s)
	}
	return puo
}

// SetModel sets the "model" field.
func (puo *PersonaUpdateOne) SetModel(s string) *PersonaUpdateOne {
	puo.mutation.SetModel(s)
	return puo
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (puo *PersonaUpdateOne) SetNillableModel(s *string) *PersonaUpdateOne {
	if s != nil {
		puo.SetModel(*s)
	}
	return puo
}

// SetTemperature sets the "temperature" field.
func (puo *PersonaUpdateOne) SetTemperature(f float64) *PersonaUpdateOne {
	puo.mutation.ResetTemperature()
	puo.mutation.SetTemperature(f)
	return puo
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (puo *PersonaUpdateOne) SetNillableTemperature(f *float64) *PersonaUpdateOne {
	if f != nil {
		puo.SetTemperature(*f)
	}
	return puo
}

// AddTemperature adds f to the "temperature" field.
func (puo *PersonaUpdateOne) AddTemperature(f float64) *PersonaUpdateOne {
	puo.mutation.AddTemperature(f)
	return puo
}

// SetMaxTokens sets the "max_tokens" field.
func (puo *PersonaUpdateOne) SetMaxTokens(i int) *PersonaUpdateOne {
	puo.mutation.ResetMaxTokens()
	puo.mutation.SetMaxTokens(i)
	return puo
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (puo *PersonaUpdateOne) SetNillableMaxTokens(i *int) *PersonaUpdateOne {
	if i != nil {
		puo.SetMaxTokens(*i)
	}
	return puo
}

// AddMaxTokens adds i to the "max_tokens" field.
func (puo *PersonaUpdateOne) AddMaxTokens(i int) *PersonaUpdateOne {
	puo.mutation.AddMaxTokens(i)
	return puo
}

// SetIsDefault sets the "is_default" field.
func (puo *PersonaUpdateOne) SetIsDefault(b bool) *PersonaUpdateOne {
	puo.mutation.SetIsDefault(b)
	return puo
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (puo *PersonaUpdateOne) SetNillableIsDefault(b *bool) *PersonaUpdateOne {
	if b != nil {
		puo.SetIsDefault(*b)
	}
	return puo
}

// SetIsEnabled sets the "is_enabled" field.
func (puo *PersonaUpdateOne) SetIsEnabled(b bool) *PersonaUpdateOne {
	puo.mutation.SetIsEnabled(b)
	return puo
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (puo *PersonaUpdateOne) SetNillableIsEnabled(b *bool) *PersonaUpdateOne {
	if b != nil {
		puo.SetIsEnabled(*b)
	}
	return puo
}

// SetUpdatedAt sets the "updated_at" field.
func (puo *PersonaUpdateOne) SetUpdatedAt(t time.Time) *PersonaUpdateOne {
	puo.mutation.SetUpdatedAt(t)
	return puo
}

// SetDeletedAt sets the "deleted_at" field.
func (puo *PersonaUpdateOne) SetDeletedAt(t time.Time) *PersonaUpdateOne {
	puo.mutation.SetDeletedAt(t)
	return puo
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (puo *PersonaUpdateOne) SetNillableDeletedAt(t *time.Time) *PersonaUpdateOne {
	if t != nil {
		puo.SetDeletedAt(*t)
	}
	return puo
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (puo *PersonaUpdateOne) ClearDeletedAt() *PersonaUpdateOne {
	puo.mutation.ClearDeletedAt()
	return puo
}

// Mutation returns the PersonaMutation object of the builder.
func (puo *PersonaUpdateOne) Mutation() *PersonaMutation {
	return puo.mutation
}

// Where appends a list predicates to the PersonaUpdate builder.
func (puo *PersonaUpdateOne) Where(ps ...predicate.Persona) *PersonaUpdateOne {
	puo.mutation.Where(ps...)
	return puo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (puo *PersonaUpdateOne) Select(field string, fields ...string) *PersonaUpdateOne {
	puo.fields = append([]string{field}, fields...)
	return puo
}

// Save executes the query and returns the updated Persona entity.
func (puo *PersonaUpdateOne) Save(ctx context.Context) (*Persona, error) {
	puo.defaults()
	return withHooks(ctx, puo.sqlSave, puo.mutation, puo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (puo *PersonaUpdateOne) SaveX(ctx context.Context) *Persona {
	node, err := puo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (puo *PersonaUpdateOne) Exec(ctx context.Context) error {
	_, err := puo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (puo *PersonaUpdateOne) ExecX(ctx context.Context) {
	if err := puo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (puo *PersonaUpdateOne) defaults() {
	if _, ok := puo.mutation.UpdatedAt(); !ok {
		v := persona.UpdateDefaultUpdatedAt()
		puo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (puo *PersonaUpdateOne) check() error {
	if v, ok := puo.mutation.AgentType(); ok {
		if err := persona.AgentTypeValidator(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "Persona.agent_type": %w`, err)}
		}
	}
	if v, ok := puo.mutation.Name(); ok {
		if err := persona.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Persona.name": %w`, err)}
		}
	}
	return nil
}

func (puo *PersonaUpdateOne) sqlSave(ctx context.Context) (_node *Persona, err error) {
	if err := puo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(persona.Table, persona.Columns, sqlgraph.NewFieldSpec(persona.FieldID, field.TypeString))
	id, ok := puo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Persona.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := puo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, persona.FieldID)
		for _, f := range fields {
			if !persona.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != persona.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := puo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := puo.mutation.AgentType(); ok {
		_spec.SetField(persona.FieldAgentType, field.TypeEnum, value)
	}
	if value, ok := puo.mutation.Name(); ok {
		_spec.SetField(persona.FieldName, field.TypeString, value)
	}
	if value, ok := puo.mutation.SystemPrompt(); ok {
		_spec.SetField(persona.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := puo.mutation.Provider(); ok {
		_spec.SetField(persona.FieldProvider, field.TypeString, value)
	}
	if value, ok := puo.mutation.Model(); ok {
		_spec.SetField(persona.FieldModel, field.TypeString, value)
	}
	if value, ok := puo.mutation.Temperature(); ok {
		_spec.SetField(persona.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := puo.mutation.AddedTemperature(); ok {
		_spec.AddField(persona.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := puo.mutation.MaxTokens(); ok {
		_spec.SetField(persona.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := puo.mutation.AddedMaxTokens(); ok {
		_spec.AddField(persona.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := puo.mutation.IsDefault(); ok {
		_spec.SetField(persona.FieldIsDefault, field.TypeBool, value)
	}
	if value, ok := puo.mutation.IsEnabled(); ok {
		_spec.SetField(persona.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := puo.mutation.UpdatedAt(); ok {
		_spec.SetField(persona.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := puo.mutation.DeletedAt(); ok {
		_spec.SetField(persona.FieldDeletedAt, field.TypeTime, value)
	}
	if puo.mutation.DeletedAtCleared() {
		_spec.ClearField(persona.FieldDeletedAt, field.TypeTime)
	}
	_node = &Persona{config: puo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, puo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{persona.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	puo.mutation.done = true
	return _node, nil
}
