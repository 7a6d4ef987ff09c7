// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/copymill/copymill/ent/jobeval"
	"github.com/copymill/copymill/ent/predicate"
)

// JobEvalDelete is the builder for deleting a JobEval entity.
type JobEvalDelete struct {
	config
	hooks    []Hook
	mutation *JobEvalMutation
}

// Where appends a list predicates to the JobEvalDelete builder.
func (jed *JobEvalDelete) Where(ps ...predicate.JobEval) *JobEvalDelete {
	jed.mutation.Where(ps...)
	return jed
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (jed *JobEvalDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, jed.sqlExec, jed.mutation, jed.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (jed *JobEvalDelete) ExecX(ctx context.Context) int {
	n, err := jed.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (jed *JobEvalDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(jobeval.Table, sqlgraph.NewFieldSpec(jobeval.FieldID, field.TypeString))
	if ps := jed.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, jed.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	jed.mutation.done = true
	return affected, err
}

// JobEvalDeleteOne is the builder for deleting a single JobEval entity.
type JobEvalDeleteOne struct {
	jed *JobEvalDelete
}

// Where appends a list predicates to the JobEvalDelete builder.
func (jedo *JobEvalDeleteOne) Where(ps ...predicate.JobEval) *JobEvalDeleteOne {
	jedo.jed.mutation.Where(ps...)
	return jedo
}

// Exec executes the deletion query.
func (jedo *JobEvalDeleteOne) Exec(ctx context.Context) error {
	n, err := jedo.jed.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{jobeval.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (jedo *JobEvalDeleteOne) ExecX(ctx context.Context) {
	if err := jedo.Exec(ctx); err != nil {
		panic(err)
	}
}
