// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/copymill/copymill/ent/systemlog"
)

// SystemLogCreate is the builder for creating a SystemLog entity.
type SystemLogCreate struct {
	config
	mutation *SystemLogMutation
	hooks    []Hook
}

// SetEntityType sets the "entity_type" field.
func (slc *SystemLogCreate) SetEntityType(s string) *SystemLogCreate {
	slc.mutation.SetEntityType(s)
	return slc
}

// SetEntityID sets the "entity_id" field.
func (slc *SystemLogCreate) SetEntityID(s string) *SystemLogCreate {
	slc.mutation.SetEntityID(s)
	return slc
}

// SetLevel sets the "level" field.
func (slc *SystemLogCreate) SetLevel(s systemlog.Level) *SystemLogCreate {
	slc.mutation.SetLevel(s)
	return slc
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (slc *SystemLogCreate) SetNillableLevel(s *systemlog.Level) *SystemLogCreate {
	if s != nil {
		slc.SetLevel(*s)
	}
	return slc
}

// SetMessage sets the "message" field.
func (slc *SystemLogCreate) SetMessage(s string) *SystemLogCreate {
	slc.mutation.SetMessage(s)
	return slc
}

// SetData sets the "data" field.
func (slc *SystemLogCreate) SetData(m map[string]interface{}) *SystemLogCreate {
	slc.mutation.SetData(m)
	return slc
}

// SetCreatedAt sets the "created_at" field.
func (slc *SystemLogCreate) SetCreatedAt(t time.Time) *SystemLogCreate {
	slc.mutation.SetCreatedAt(t)
	return slc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (slc *SystemLogCreate) SetNillableCreatedAt(t *time.Time) *SystemLogCreate {
	if t != nil {
		slc.SetCreatedAt(*t)
	}
	return slc
}

// SetID sets the "id" field.
func (slc *SystemLogCreate) SetID(s string) *SystemLogCreate {
	slc.mutation.SetID(s)
	return slc
}

// Mutation returns the SystemLogMutation object of the builder.
func (slc *SystemLogCreate) Mutation() *SystemLogMutation {
	return slc.mutation
}

// Save creates the SystemLog in the database.
func (slc *SystemLogCreate) Save(ctx context.Context) (*SystemLog, error) {
	slc.defaults()
	return withHooks(ctx, slc.sqlSave, slc.mutation, slc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (slc *SystemLogCreate) SaveX(ctx context.Context) *SystemLog {
	v, err := slc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (slc *SystemLogCreate) Exec(ctx context.Context) error {
	_, err := slc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (slc *SystemLogCreate) ExecX(ctx context.Context) {
	if err := slc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (slc *SystemLogCreate) defaults() {
	if _, ok := slc.mutation.Level(); !ok {
		v := systemlog.DefaultLevel
		slc.mutation.SetLevel(v)
	}
	if _, ok := slc.mutation.CreatedAt(); !ok {
		v := systemlog.DefaultCreatedAt()
		slc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (slc *SystemLogCreate) check() error {
	if _, ok := slc.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "SystemLog.entity_type"`)}
	}
	if _, ok := slc.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "SystemLog.entity_id"`)}
	}
	if _, ok := slc.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "SystemLog.level"`)}
	}
	if v, ok := slc.mutation.Level(); ok {
		if err := systemlog.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "SystemLog.level": %w`, err)}
		}
	}
	if _, ok := slc.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "SystemLog.message"`)}
	}
	if _, ok := slc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SystemLog.created_at"`)}
	}
	return nil
}

func (slc *SystemLogCreate) sqlSave(ctx context.Context) (*SystemLog, error) {
	if err := slc.check(); err != nil {
		return nil, err
	}
	_node, _spec := slc.createSpec()
	if err := sqlgraph.CreateNode(ctx, slc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SystemLog.ID type: %T", _spec.ID.Value)
		}
	}
	slc.mutation.id = &_node.ID
	slc.mutation.done = true
	return _node, nil
}

func (slc *SystemLogCreate) createSpec() (*SystemLog, *sqlgraph.CreateSpec) {
	var (
		_node = &SystemLog{config: slc.config}
		_spec = sqlgraph.NewCreateSpec(systemlog.Table, sqlgraph.NewFieldSpec(systemlog.FieldID, field.TypeString))
	)
	if id, ok := slc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := slc.mutation.EntityType(); ok {
		_spec.SetField(systemlog.FieldEntityType, field.TypeString, value)
		_node.EntityType = value
	}
	if value, ok := slc.mutation.EntityID(); ok {
		_spec.SetField(systemlog.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := slc.mutation.Level(); ok {
		_spec.SetField(systemlog.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	if value, ok := slc.mutation.Message(); ok {
		_spec.SetField(systemlog.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := slc.mutation.Data(); ok {
		_spec.SetField(systemlog.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := slc.mutation.CreatedAt(); ok {
		_spec.SetField(systemlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SystemLogCreateBulk is the builder for creating many SystemLog entities in bulk.
type SystemLogCreateBulk struct {
	config
	err      error
	builders []*SystemLogCreate
}

// Save creates the SystemLog entities in the database.
func (slcb *SystemLogCreateBulk) Save(ctx context.Context) ([]*SystemLog, error) {
	if slcb.err != nil {
		return nil, slcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(slcb.builders))
	nodes := make([]*SystemLog, len(slcb.builders))
	mutators := make([]Mutator, len(slcb.builders))
	for i := range slcb.builders {
		func(i int, root context.Context) {
			builder := slcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SystemLogMutation)
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
					_, err = mutators[i+1].Mutate(root, slcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, slcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, slcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (slcb *SystemLogCreateBulk) SaveX(ctx context.Context) []*SystemLog {
	v, err := slcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (slcb *SystemLogCreateBulk) Exec(ctx context.Context) error {
	_, err := slcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (slcb *SystemLogCreateBulk) ExecX(ctx context.Context) {
	if err := slcb.Exec(ctx); err != nil {
		panic(err)
	}
}
