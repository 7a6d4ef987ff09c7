// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/copymill/copymill/ent/jobstep"
	"github.com/copymill/copymill/ent/predicate"
)

// JobStepDelete is the builder for deleting a JobStep entity.
type JobStepDelete struct {
	config
	hooks    []Hook
	mutation *JobStepMutation
}

// Where appends a list predicates to the JobStepDelete builder.
func (jsd *JobStepDelete) Where(ps ...predicate.JobStep) *JobStepDelete {
	jsd.mutation.Where(ps...)
	return jsd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (jsd *JobStepDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, jsd.sqlExec, jsd.mutation, jsd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (jsd *JobStepDelete) ExecX(ctx context.Context) int {
	n, err := jsd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (jsd *JobStepDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(jobstep.Table, sqlgraph.NewFieldSpec(jobstep.FieldID, field.TypeString))
	if ps := jsd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, jsd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	jsd.mutation.done = true
	return affected, err
}

// JobStepDeleteOne is the builder for deleting a single JobStep entity.
type JobStepDeleteOne struct {
	jsd *JobStepDelete
}

// Where appends a list predicates to the JobStepDelete builder.
func (jsdo *JobStepDeleteOne) Where(ps ...predicate.JobStep) *JobStepDeleteOne {
	jsdo.jsd.mutation.Where(ps...)
	return jsdo
}

// Exec executes the deletion query.
func (jsdo *JobStepDeleteOne) Exec(ctx context.Context) error {
	n, err := jsdo.jsd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{jobstep.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (jsdo *JobStepDeleteOne) ExecX(ctx context.Context) {
	if err := jsdo.Exec(ctx); err != nil {
		panic(err)
	}
}
