// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/copymill/copymill/ent/job"
	"github.com/copymill/copymill/ent/jobeval"
	"github.com/copymill/copymill/ent/jobstep"
)

// JobStepCreate is the builder for creating a JobStep entity.
type JobStepCreate struct {
	config
	mutation *JobStepMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (jsc *JobStepCreate) SetJobID(s string) *JobStepCreate {
	jsc.mutation.SetJobID(s)
	return jsc
}

// SetAgentType sets the "agent_type" field.
func (jsc *JobStepCreate) SetAgentType(jt jobstep.AgentType) *JobStepCreate {
	jsc.mutation.SetAgentType(jt)
	return jsc
}

// SetIteration sets the "iteration" field.
func (jsc *JobStepCreate) SetIteration(i int) *JobStepCreate {
	jsc.mutation.SetIteration(i)
	return jsc
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (jsc *JobStepCreate) SetNillableIteration(i *int) *JobStepCreate {
	if i != nil {
		jsc.SetIteration(*i)
	}
	return jsc
}

// SetStatus sets the "status" field.
func (jsc *JobStepCreate) SetStatus(j jobstep.Status) *JobStepCreate {
	jsc.mutation.SetStatus(j)
	return jsc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (jsc *JobStepCreate) SetNillableStatus(j *jobstep.Status) *JobStepCreate {
	if j != nil {
		jsc.SetStatus(*j)
	}
	return jsc
}

// SetTokensUsed sets the "tokens_used" field.
func (jsc *JobStepCreate) SetTokensUsed(i int) *JobStepCreate {
	jsc.mutation.SetTokensUsed(i)
	return jsc
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (jsc *JobStepCreate) SetNillableTokensUsed(i *int) *JobStepCreate {
	if i != nil {
		jsc.SetTokensUsed(*i)
	}
	return jsc
}

// SetPromptTokens sets the "prompt_tokens" field.
func (jsc *JobStepCreate) SetPromptTokens(i int) *JobStepCreate {
	jsc.mutation.SetPromptTokens(i)
	return jsc
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (jsc *JobStepCreate) SetNillablePromptTokens(i *int) *JobStepCreate {
	if i != nil {
		jsc.SetPromptTokens(*i)
	}
	return jsc
}

// SetCompletionTokens sets the "completion_tokens" field.
func (jsc *JobStepCreate) SetCompletionTokens(i int) *JobStepCreate {
	jsc.mutation.SetCompletionTokens(i)
	return jsc
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (jsc *JobStepCreate) SetNillableCompletionTokens(i *int) *JobStepCreate {
	if i != nil {
		jsc.SetCompletionTokens(*i)
	}
	return jsc
}

// SetDurationMs sets the "duration_ms" field.
func (jsc *JobStepCreate) SetDurationMs(i int) *JobStepCreate {
	jsc.mutation.SetDurationMs(i)
	return jsc
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (jsc *JobStepCreate) SetNillableDurationMs(i *int) *JobStepCreate {
	if i != nil {
		jsc.SetDurationMs(*i)
	}
	return jsc
}

// SetInput sets the "input" field.
func (jsc *JobStepCreate) SetInput(m map[string]interface{}) *JobStepCreate {
	jsc.mutation.SetInput(m)
	return jsc
}

// SetOutput sets the "output" field.
func (jsc *JobStepCreate) SetOutput(m map[string]interface{}) *JobStepCreate {
	jsc.mutation.SetOutput(m)
	return jsc
}

// SetLogs sets the "logs" field.
func (jsc *JobStepCreate) SetLogs(s []string) *JobStepCreate {
	jsc.mutation.SetLogs(s)
	return jsc
}

// SetErrorMessage sets the "error_message" field.
func (jsc *JobStepCreate) SetErrorMessage(s string) *JobStepCreate {
	jsc.mutation.SetErrorMessage(s)
	return jsc
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (jsc *JobStepCreate) SetNillableErrorMessage(s *string) *JobStepCreate {
	if s != nil {
		jsc.SetErrorMessage(*s)
	}
	return jsc
}

// SetStartedAt sets the "started_at" field.
func (jsc *JobStepCreate) SetStartedAt(t time.Time) *JobStepCreate {
	jsc.mutation.SetStartedAt(t)
	return jsc
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (jsc *JobStepCreate) SetNillableStartedAt(t *time.Time) *JobStepCreate {
	if t != nil {
		jsc.SetStartedAt(*t)
	}
	return jsc
}

// SetCompletedAt sets the "completed_at" field.
func (jsc *JobStepCreate) SetCompletedAt(t time.Time) *JobStepCreate {
	jsc.mutation.SetCompletedAt(t)
	return jsc
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (jsc *JobStepCreate) SetNillableCompletedAt(t *time.Time) *JobStepCreate {
	if t != nil {
		jsc.SetCompletedAt(*t)
	}
	return jsc
}

// SetCreatedAt sets the "created_at" field.
func (jsc *JobStepCreate) SetCreatedAt(t time.Time) *JobStepCreate {
	jsc.mutation.SetCreatedAt(t)
	return jsc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (jsc *JobStepCreate) SetNillableCreatedAt(t *time.Time) *JobStepCreate {
	if t != nil {
		jsc.SetCreatedAt(*t)
	}
	return jsc
}

// SetID sets the "id" field.
func (jsc *JobStepCreate) SetID(s string) *JobStepCreate {
	jsc.mutation.SetID(s)
	return jsc
}

// SetJob sets the "job" edge to the Job entity.
func (jsc *JobStepCreate) SetJob(j *Job) *JobStepCreate {
	return jsc.SetJobID(j.ID)
}

// AddEvalIDs adds the "evals" edge to the JobEval entity by IDs.
func (jsc *JobStepCreate) AddEvalIDs(ids ...string) *JobStepCreate {
	jsc.mutation.AddEvalIDs(ids...)
	return jsc
}

// AddEvals adds the "evals" edges to the JobEval entity.
func (jsc *JobStepCreate) AddEvals(j ...*JobEval) *JobStepCreate {
	ids := make([]string, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return jsc.AddEvalIDs(ids...)
}

// Mutation returns the JobStepMutation object of the builder.
func (jsc *JobStepCreate) Mutation() *JobStepMutation {
	return jsc.mutation
}

// Save creates the JobStep in the database.
func (jsc *JobStepCreate) Save(ctx context.Context) (*JobStep, error) {
	jsc.defaults()
	return withHooks(ctx, jsc.sqlSave, jsc.mutation, jsc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (jsc *JobStepCreate) SaveX(ctx context.Context) *JobStep {
	v, err := jsc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (jsc *JobStepCreate) Exec(ctx context.Context) error {
	_, err := jsc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (jsc *JobStepCreate) ExecX(ctx context.Context) {
	if err := jsc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (jsc *JobStepCreate) defaults() {
	if _, ok := jsc.mutation.Iteration(); !ok {
		v := jobstep.DefaultIteration
		jsc.mutation.SetIteration(v)
	}
	if _, ok := jsc.mutation.Status(); !ok {
		v := jobstep.DefaultStatus
		jsc.mutation.SetStatus(v)
	}
	if _, ok := jsc.mutation.TokensUsed(); !ok {
		v := jobstep.DefaultTokensUsed
		jsc.mutation.SetTokensUsed(v)
	}
	if _, ok := jsc.mutation.PromptTokens(); !ok {
		v := jobstep.DefaultPromptTokens
		jsc.mutation.SetPromptTokens(v)
	}
	if _, ok := jsc.mutation.CompletionTokens(); !ok {
		v := jobstep.DefaultCompletionTokens
		jsc.mutation.SetCompletionTokens(v)
	}
	if _, ok := jsc.mutation.CreatedAt(); !ok {
		v := jobstep.DefaultCreatedAt()
		jsc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (jsc *JobStepCreate) check() error {
	if _, ok := jsc.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "JobStep.job_id"`)}
	}
	if _, ok := jsc.mutation.AgentType(); !ok {
		return &ValidationError{Name: "agent_type", err: errors.New(`ent: missing required field "JobStep.agent_type"`)}
	}
	if v, ok := jsc.mutation.AgentType(); ok {
		if err := jobstep.AgentTypeValidator(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "JobStep.agent_type": %w`, err)}
		}
	}
	if _, ok := jsc.mutation.Iteration(); !ok {
		return &ValidationError{Name: "iteration", err: errors.New(`ent: missing required field "JobStep.iteration"`)}
	}
	if _, ok := jsc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "JobStep.status"`)}
	}
	if v, ok := jsc.mutation.Status(); ok {
		if err := jobstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobStep.status": %w`, err)}
		}
	}
	if _, ok := jsc.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "JobStep.tokens_used"`)}
	}
	if _, ok := jsc.mutation.PromptTokens(); !ok {
		return &ValidationError{Name: "prompt_tokens", err: errors.New(`ent: missing required field "JobStep.prompt_tokens"`)}
	}
	if _, ok := jsc.mutation.CompletionTokens(); !ok {
		return &ValidationError{Name: "completion_tokens", err: errors.New(`ent: missing required field "JobStep.completion_tokens"`)}
	}
	if _, ok := jsc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "JobStep.created_at"`)}
	}
	if len(jsc.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "JobStep.job"`)}
	}
	return nil
}

func (jsc *JobStepCreate) sqlSave(ctx context.Context) (*JobStep, error) {
	if err := jsc.check(); err != nil {
		return nil, err
	}
	_node, _spec := jsc.createSpec()
	if err := sqlgraph.CreateNode(ctx, jsc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected JobStep.ID type: %T", _spec.ID.Value)
		}
	}
	jsc.mutation.id = &_node.ID
	jsc.mutation.done = true
	return _node, nil
}

func (jsc *JobStepCreate) createSpec() (*JobStep, *sqlgraph.CreateSpec) {
	var (
		_node = &JobStep{config: jsc.config}
		_spec = sqlgraph.NewCreateSpec(jobstep.Table, sqlgraph.NewFieldSpec(jobstep.FieldID, field.TypeString))
	)
	if id, ok := jsc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := jsc.mutation.AgentType(); ok {
		_spec.SetField(jobstep.FieldAgentType, field.TypeEnum, value)
		_node.AgentType = value
	}
	if value, ok := jsc.mutation.Iteration(); ok {
		_spec.SetField(jobstep.FieldIteration, field.TypeInt, value)
		_node.Iteration = value
	}
	if value, ok := jsc.mutation.Status(); ok {
		_spec.SetField(jobstep.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := jsc.mutation.TokensUsed(); ok {
		_spec.SetField(jobstep.FieldTokensUsed, field.TypeInt, value)
		_node.TokensUsed = value
	}
	if value, ok := jsc.mutation.PromptTokens(); ok {
		_spec.SetField(jobstep.FieldPromptTokens, field.TypeInt, value)
		_node.PromptTokens = value
	}
	if value, ok := jsc.mutation.CompletionTokens(); ok {
		_spec.SetField(jobstep.FieldCompletionTokens, field.TypeInt, value)
		_node.CompletionTokens = value
	}
	if value, ok := jsc.mutation.DurationMs(); ok {
		_spec.SetField(jobstep.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := jsc.mutation.Input(); ok {
		_spec.SetField(jobstep.FieldInput, field.TypeJSON, value)
		_node.Input = value
	}
	if value, ok := jsc.mutation.Output(); ok {
		_spec.SetField(jobstep.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := jsc.mutation.Logs(); ok {
		_spec.SetField(jobstep.FieldLogs, field.TypeJSON, value)
		_node.Logs = value
	}
	if value, ok := jsc.mutation.ErrorMessage(); ok {
		_spec.SetField(jobstep.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := jsc.mutation.StartedAt(); ok {
		_spec.SetField(jobstep.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := jsc.mutation.CompletedAt(); ok {
		_spec.SetField(jobstep.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := jsc.mutation.CreatedAt(); ok {
		_spec.SetField(jobstep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := jsc.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobstep.JobTable,
			Columns: []string{jobstep.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := jsc.mutation.EvalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   jobstep.EvalsTable,
			Columns: []string{jobstep.EvalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobeval.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobStepCreateBulk is the builder for creating many JobStep entities in bulk.
type JobStepCreateBulk struct {
	config
	err      error
	builders []*JobStepCreate
}

// Save creates the JobStep entities in the database.
func (jscb *JobStepCreateBulk) Save(ctx context.Context) ([]*JobStep, error) {
	if jscb.err != nil {
		return nil, jscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(jscb.builders))
	nodes := make([]*JobStep, len(jscb.builders))
	mutators := make([]Mutator, len(jscb.builders))
	for i := range jscb.builders {
		func(i int, root context.Context) {
			builder := jscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobStepMutation)
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
					_, err = mutators[i+1].Mutate(root, jscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, jscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, jscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (jscb *JobStepCreateBulk) SaveX(ctx context.Context) []*JobStep {
	v, err := jscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (jscb *JobStepCreateBulk) Exec(ctx context.Context) error {
	_, err := jscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (jscb *JobStepCreateBulk) ExecX(ctx context.Context) {
	if err := jscb.Exec(ctx); err != nil {
		panic(err)
	}
}
