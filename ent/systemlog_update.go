// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/copymill/copymill/ent/predicate"
	"github.com/copymill/copymill/ent/systemlog"
)

// SystemLogUpdate is the builder for updating SystemLog entities.
type SystemLogUpdate struct {
	config
	hooks    []Hook
	mutation *SystemLogMutation
}

// Where appends a list predicates to the SystemLogUpdate builder.
func (slu *SystemLogUpdate) Where(ps ...predicate.SystemLog) *SystemLogUpdate {
	slu.mutation.Where(ps...)
	return slu
}

// SetEntityType sets the "entity_type" field.
func (slu *SystemLogUpdate) SetEntityType(s string) *SystemLogUpdate {
	slu.mutation.SetEntityType(s)
	return slu
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (slu *SystemLogUpdate) SetNillableEntityType(s *string) *SystemLogUpdate {
	if s != nil {
		slu.SetEntityType(*s)
	}
	return slu
}

// SetEntityID sets the "entity_id" field.
func (slu *SystemLogUpdate) SetEntityID(s string) *SystemLogUpdate {
	slu.mutation.SetEntityID(s)
	return slu
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (slu *SystemLogUpdate) SetNillableEntityID(s *string) *SystemLogUpdate {
	if s != nil {
		slu.SetEntityID(*s)
	}
	return slu
}

// SetLevel sets the "level" field.
func (slu *SystemLogUpdate) SetLevel(s systemlog.Level) *SystemLogUpdate {
	slu.mutation.SetLevel(s)
	return slu
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (slu *SystemLogUpdate) SetNillableLevel(s *systemlog.Level) *SystemLogUpdate {
	if s != nil {
		slu.SetLevel(*s)
	}
	return slu
}

// SetMessage sets the "message" field.
func (slu *SystemLogUpdate) SetMessage(s string) *SystemLogUpdate {
	slu.mutation.SetMessage(s)
	return slu
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (slu *SystemLogUpdate) SetNillableMessage(s *string) *SystemLogUpdate {
	if s != nil {
		slu.SetMessage(*s)
	}
	return slu
}

// SetData sets the "data" field.
func (slu *SystemLogUpdate) SetData(m map[string]interface{}) *SystemLogUpdate {
	slu.mutation.SetData(m)
	return slu
}

// ClearData clears the value of the "data" field.
func (slu *SystemLogUpdate) ClearData() *SystemLogUpdate {
	slu.mutation.ClearData()
	return slu
}

// Mutation returns the SystemLogMutation object of the builder.
func (slu *SystemLogUpdate) Mutation() *SystemLogMutation {
	return slu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (slu *SystemLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, slu.sqlSave, slu.mutation, slu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (slu *SystemLogUpdate) SaveX(ctx context.Context) int {
	affected, err := slu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (slu *SystemLogUpdate) Exec(ctx context.Context) error {
	_, err := slu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (slu *SystemLogUpdate) ExecX(ctx context.Context) {
	if err := slu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (slu *SystemLogUpdate) check() error {
	if v, ok := slu.mutation.Level(); ok {
		if err := systemlog.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "SystemLog.level": %w`, err)}
		}
	}
	return nil
}

func (slu *SystemLogUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := slu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(systemlog.Table, systemlog.Columns, sqlgraph.NewFieldSpec(systemlog.FieldID, field.TypeString))
	if ps := slu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := slu.mutation.EntityType(); ok {
		_spec.SetField(systemlog.FieldEntityType, field.TypeString, value)
	}
	if value, ok := slu.mutation.EntityID(); ok {
		_spec.SetField(systemlog.FieldEntityID, field.TypeString, value)
	}
	if value, ok := slu.mutation.Level(); ok {
		_spec.SetField(systemlog.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := slu.mutation.Message(); ok {
		_spec.SetField(systemlog.FieldMessage, field.TypeString, value)
	}
	if value, ok := slu.mutation.Data(); ok {
		_spec.SetField(systemlog.FieldData, field.TypeJSON, value)
	}
	if slu.mutation.DataCleared() {
		_spec.ClearField(systemlog.FieldData, field.TypeJSON)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, slu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{systemlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	slu.mutation.done = true
	return n, nil
}

// SystemLogUpdateOne is the builder for updating a single SystemLog entity.
type SystemLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SystemLogMutation
}

// SetEntityType sets the "entity_type" field.
func (sluo *SystemLogUpdateOne) SetEntityType(s string) *SystemLogUpdateOne {
	sluo.mutation.SetEntityType(s)
	return sluo
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (sluo *SystemLogUpdateOne) SetNillableEntityType(s *string) *SystemLogUpdateOne {
	if s != nil {
		sluo.SetEntityType(*s)
	}
	return sluo
}

// SetEntityID sets the "entity_id" field.
func (sluo *SystemLogUpdateOne) SetEntityID(s string) *SystemLogUpdateOne {
	sluo.mutation.SetEntityID(s)
	return sluo
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (sluo *SystemLogUpdateOne) SetNillableEntityID(s *string) *SystemLogUpdateOne {
	if s != nil {
		sluo.SetEntityID(*s)
	}
	return sluo
}

// SetLevel sets the "level" field.
func (sluo *SystemLogUpdateOne) SetLevel(s systemlog.Level) *SystemLogUpdateOne {
	sluo.mutation.SetLevel(s)
	return sluo
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (sluo *SystemLogUpdateOne) SetNillableLevel(s *systemlog.Level) *SystemLogUpdateOne {
	if s != nil {
		sluo.SetLevel(*s)
	}
	return sluo
}

// SetMessage sets the "message" field.
func (sluo *SystemLogUpdateOne) SetMessage(s string) *SystemLogUpdateOne {
	sluo.mutation.SetMessage(s)
	return sluo
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (sluo *SystemLogUpdateOne) SetNillableMessage(s *string) *SystemLogUpdateOne {
	if s != nil {
		sluo.SetMessage(*s)
	}
	return sluo
}

// SetData sets the "data" field.
func (sluo *SystemLogUpdateOne) SetData(m map[string]interface{}) *SystemLogUpdateOne {
	sluo.mutation.SetData(m)
	return sluo
}

// ClearData clears the value of the "data" field.
func (sluo *SystemLogUpdateOne) ClearData() *SystemLogUpdateOne {
	sluo.mutation.ClearData()
	return sluo
}

// Mutation returns the SystemLogMutation object of the builder.
func (sluo *SystemLogUpdateOne) Mutation() *SystemLogMutation {
	return sluo.mutation
}

// Where appends a list predicates to the SystemLogUpdate builder.
func (sluo *SystemLogUpdateOne) Where(ps ...predicate.SystemLog) *SystemLogUpdateOne {
	sluo.mutation.Where(ps...)
	return sluo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (sluo *SystemLogUpdateOne) Select(field string, fields ...string) *SystemLogUpdateOne {
	sluo.fields = append([]string{field}, fields...)
	return sluo
}

// Save executes the query and returns the updated SystemLog entity.
func (sluo *SystemLogUpdateOne) Save(ctx context.Context) (*SystemLog, error) {
	return withHooks(ctx, sluo.sqlSave, sluo.mutation, sluo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sluo *SystemLogUpdateOne) SaveX(ctx context.Context) *SystemLog {
	node, err := sluo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (sluo *SystemLogUpdateOne) Exec(ctx context.Context) error {
	_, err := sluo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sluo *SystemLogUpdateOne) ExecX(ctx context.Context) {
	if err := sluo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sluo *SystemLogUpdateOne) check() error {
	if v, ok := sluo.mutation.Level(); ok {
		if err := systemlog.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "SystemLog.level": %w`, err)}
		}
	}
	return nil
}

func (sluo *SystemLogUpdateOne) sqlSave(ctx context.Context) (_node *SystemLog, err error) {
	if err := sluo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(systemlog.Table, systemlog.Columns, sqlgraph.NewFieldSpec(systemlog.FieldID, field.TypeString))
	id, ok := sluo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SystemLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := sluo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, systemlog.FieldID)
		for _, f := range fields {
			if !systemlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != systemlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := sluo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := sluo.mutation.EntityType(); ok {
		_spec.SetField(systemlog.FieldEntityType, field.TypeString, value)
	}
	if value, ok := sluo.mutation.EntityID(); ok {
		_spec.SetField(systemlog.FieldEntityID, field.TypeString, value)
	}
	if value, ok := sluo.mutation.Level(); ok {
		_spec.SetField(systemlog.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := sluo.mutation.Message(); ok {
		_spec.SetField(systemlog.FieldMessage, field.TypeString, value)
	}
	if value, ok := sluo.mutation.Data(); ok {
		_spec.SetField(systemlog.FieldData, field.TypeJSON, value)
	}
	if sluo.mutation.DataCleared() {
		_spec.ClearField(systemlog.FieldData, field.TypeJSON)
	}
	_node = &SystemLog{config: sluo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, sluo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{systemlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	sluo.mutation.done = true
	return _node, nil
}
