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
	"github.com/copymill/copymill/pkg/models"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
}

// SetKeyword sets the "keyword" field.
func (jc *JobCreate) SetKeyword(s string) *JobCreate {
	jc.mutation.SetKeyword(s)
	return jc
}

// SetStatus sets the "status" field.
func (jc *JobCreate) SetStatus(j job.Status) *JobCreate {
	jc.mutation.SetStatus(j)
	return jc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (jc *JobCreate) SetNillableStatus(j *job.Status) *JobCreate {
	if j != nil {
		jc.SetStatus(*j)
	}
	return jc
}

// SetCurrentAgent sets the "current_agent" field.
func (jc *JobCreate) SetCurrentAgent(s string) *JobCreate {
	jc.mutation.SetCurrentAgent(s)
	return jc
}

// SetNillableCurrentAgent sets the "current_agent" field if the given value is not nil.
func (jc *JobCreate) SetNillableCurrentAgent(s *string) *JobCreate {
	if s != nil {
		jc.SetCurrentAgent(*s)
	}
	return jc
}

// SetCurrentIteration sets the "current_iteration" field.
func (jc *JobCreate) SetCurrentIteration(i int) *JobCreate {
	jc.mutation.SetCurrentIteration(i)
	return jc
}

// SetNillableCurrentIteration sets the "current_iteration" field if the given value is not nil.
func (jc *JobCreate) SetNillableCurrentIteration(i *int) *JobCreate {
	if i != nil {
		jc.SetCurrentIteration(*i)
	}
	return jc
}

// SetMaxIterations sets the "max_iterations" field.
func (jc *JobCreate) SetMaxIterations(i int) *JobCreate {
	jc.mutation.SetMaxIterations(i)
	return jc
}

// SetNillableMaxIterations sets the "max_iterations" field if the given value is not nil.
func (jc *JobCreate) SetNillableMaxIterations(i *int) *JobCreate {
	if i != nil {
		jc.SetMaxIterations(*i)
	}
	return jc
}

// SetTotalTokensUsed sets the "total_tokens_used" field.
func (jc *JobCreate) SetTotalTokensUsed(i int) *JobCreate {
	jc.mutation.SetTotalTokensUsed(i)
	return jc
}

// SetNillableTotalTokensUsed sets the "total_tokens_used" field if the given value is not nil.
func (jc *JobCreate) SetNillableTotalTokensUsed(i *int) *JobCreate {
	if i != nil {
		jc.SetTotalTokensUsed(*i)
	}
	return jc
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (jc *JobCreate) SetEstimatedCostUsd(f float64) *JobCreate {
	jc.mutation.SetEstimatedCostUsd(f)
	return jc
}

// SetNillableEstimatedCostUsd sets the "estimated_cost_usd" field if the given value is not nil.
func (jc *JobCreate) SetNillableEstimatedCostUsd(f *float64) *JobCreate {
	if f != nil {
		jc.SetEstimatedCostUsd(*f)
	}
	return jc
}

// SetProgressPercent sets the "progress_percent" field.
func (jc *JobCreate) SetProgressPercent(i int) *JobCreate {
	jc.mutation.SetProgressPercent(i)
	return jc
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (jc *JobCreate) SetNillableProgressPercent(i *int) *JobCreate {
	if i != nil {
		jc.SetProgressPercent(*i)
	}
	return jc
}

// SetPriority sets the "priority" field.
func (jc *JobCreate) SetPriority(i int) *JobCreate {
	jc.mutation.SetPriority(i)
	return jc
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (jc *JobCreate) SetNillablePriority(i *int) *JobCreate {
	if i != nil {
		jc.SetPriority(*i)
	}
	return jc
}

// SetSettings sets the "settings" field.
func (jc *JobCreate) SetSettings(ms models.JobSettings) *JobCreate {
	jc.mutation.SetSettings(ms)
	return jc
}

// SetFinalOutput sets the "final_output" field.
func (jc *JobCreate) SetFinalOutput(m map[string]interface{}) *JobCreate {
	jc.mutation.SetFinalOutput(m)
	return jc
}

// SetPageID sets the "page_id" field.
func (jc *JobCreate) SetPageID(s string) *JobCreate {
	jc.mutation.SetPageID(s)
	return jc
}

// SetNillablePageID sets the "page_id" field if the given value is not nil.
func (jc *JobCreate) SetNillablePageID(s *string) *JobCreate {
	if s != nil {
		jc.SetPageID(*s)
	}
	return jc
}

// SetLastError sets the "last_error" field.
func (jc *JobCreate) SetLastError(s string) *JobCreate {
	jc.mutation.SetLastError(s)
	return jc
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (jc *JobCreate) SetNillableLastError(s *string) *JobCreate {
	if s != nil {
		jc.SetLastError(*s)
	}
	return jc
}

// SetCancelRequested sets the "cancel_requested" field.
func (jc *JobCreate) SetCancelRequested(b bool) *JobCreate {
	jc.mutation.SetCancelRequested(b)
	return jc
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (jc *JobCreate) SetNillableCancelRequested(b *bool) *JobCreate {
	if b != nil {
		jc.SetCancelRequested(*b)
	}
	return jc
}

// SetCreatedAt sets the "created_at" field.
func (jc *JobCreate) SetCreatedAt(t time.Time) *JobCreate {
	jc.mutation.SetCreatedAt(t)
	return jc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (jc *JobCreate) SetNillableCreatedAt(t *time.Time) *JobCreate {
	if t != nil {
		jc.SetCreatedAt(*t)
	}
	return jc
}

// SetStartedAt sets the "started_at" field.
func (jc *JobCreate) SetStartedAt(t time.Time) *JobCreate {
	jc.mutation.SetStartedAt(t)
	return jc
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (jc *JobCreate) SetNillableStartedAt(t *time.Time) *JobCreate {
	if t != nil {
		jc.SetStartedAt(*t)
	}
	return jc
}

// SetCompletedAt sets the "completed_at" field.
func (jc *JobCreate) SetCompletedAt(t time.Time) *JobCreate {
	jc.mutation.SetCompletedAt(t)
	return jc
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (jc *JobCreate) SetNillableCompletedAt(t *time.Time) *JobCreate {
	if t != nil {
		jc.SetCompletedAt(*t)
	}
	return jc
}

// SetUpdatedAt sets the "updated_at" field.
func (jc *JobCreate) SetUpdatedAt(t time.Time) *JobCreate {
	jc.mutation.SetUpdatedAt(t)
	return jc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (jc *JobCreate) SetNillableUpdatedAt(t *time.Time) *JobCreate {
	if t != nil {
		jc.SetUpdatedAt(*t)
	}
	return jc
}

// SetCreatedBy sets the "created_by" field.
func (jc *JobCreate) SetCreatedBy(s string) *JobCreate {
	jc.mutation.SetCreatedBy(s)
	return jc
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (jc *JobCreate) SetNillableCreatedBy(s *string) *JobCreate {
	if s != nil {
		jc.SetCreatedBy(*s)
	}
	return jc
}

// SetPodID sets the "pod_id" field.
func (jc *JobCreate) SetPodID(s string) *JobCreate {
	jc.mutation.SetPodID(s)
	return jc
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (jc *JobCreate) SetNillablePodID(s *string) *JobCreate {
	if s != nil {
		jc.SetPodID(*s)
	}
	return jc
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (jc *JobCreate) SetHeartbeatAt(t time.Time) *JobCreate {
	jc.mutation.SetHeartbeatAt(t)
	return jc
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (jc *JobCreate) SetNillableHeartbeatAt(t *time.Time) *JobCreate {
	if t != nil {
		jc.SetHeartbeatAt(*t)
	}
	return jc
}

// SetID sets the "id" field.
func (jc *JobCreate) SetID(s string) *JobCreate {
	jc.mutation.SetID(s)
	return jc
}

// AddStepIDs adds the "steps" edge to the JobStep entity by IDs.
func (jc *JobCreate) AddStepIDs(ids ...string) *JobCreate {
	jc.mutation.AddStepIDs(ids...)
	return jc
}

// AddSteps adds the "steps" edges to the JobStep entity.
func (jc *JobCreate) AddSteps(j ...*JobStep) *JobCreate {
	ids := make([]string, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return jc.AddStepIDs(ids...)
}

// AddEvalIDs adds the "evals" edge to the JobEval entity by IDs.
func (jc *JobCreate) AddEvalIDs(ids ...string) *JobCreate {
	jc.mutation.AddEvalIDs(ids...)
	return jc
}

// AddEvals adds the "evals" edges to the JobEval entity.
func (jc *JobCreate) AddEvals(j ...*JobEval) *JobCreate {
	ids := make([]string, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return jc.AddEvalIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (jc *JobCreate) Mutation() *JobMutation {
	return jc.mutation
}

// Save creates the Job in the database.
func (jc *JobCreate) Save(ctx context.Context) (*Job, error) {
	jc.defaults()
	return withHooks(ctx, jc.sqlSave, jc.mutation, jc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (jc *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := jc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (jc *JobCreate) Exec(ctx context.Context) error {
	_, err := jc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (jc *JobCreate) ExecX(ctx context.Context) {
	if err := jc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (jc *JobCreate) defaults() {
	if _, ok := jc.mutation.Status(); !ok {
		v := job.DefaultStatus
		jc.mutation.SetStatus(v)
	}
	if _, ok := jc.mutation.CurrentIteration(); !ok {
		v := job.DefaultCurrentIteration
		jc.mutation.SetCurrentIteration(v)
	}
	if _, ok := jc.mutation.MaxIterations(); !ok {
		v := job.DefaultMaxIterations
		jc.mutation.SetMaxIterations(v)
	}
	if _, ok := jc.mutation.TotalTokensUsed(); !ok {
		v := job.DefaultTotalTokensUsed
		jc.mutation.SetTotalTokensUsed(v)
	}
	if _, ok := jc.mutation.EstimatedCostUsd(); !ok {
		v := job.DefaultEstimatedCostUsd
		jc.mutation.SetEstimatedCostUsd(v)
	}
	if _, ok := jc.mutation.ProgressPercent(); !ok {
		v := job.DefaultProgressPercent
		jc.mutation.SetProgressPercent(v)
	}
	if _, ok := jc.mutation.Priority(); !ok {
		v := job.DefaultPriority
		jc.mutation.SetPriority(v)
	}
	if _, ok := jc.mutation.CancelRequested(); !ok {
		v := job.DefaultCancelRequested
		jc.mutation.SetCancelRequested(v)
	}
	if _, ok := jc.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		jc.mutation.SetCreatedAt(v)
	}
	if _, ok := jc.mutation.UpdatedAt(); !ok {
		v := job.DefaultUpdatedAt()
		jc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (jc *JobCreate) check() error {
	if _, ok := jc.mutation.Keyword(); !ok {
		return &ValidationError{Name: "keyword", err: errors.New(`ent: missing required field "Job.keyword"`)}
	}
	if v, ok := jc.mutation.Keyword(); ok {
		if err := job.KeywordValidator(v); err != nil {
			return &ValidationError{Name: "keyword", err: fmt.Errorf(`ent: validator failed for field "Job.keyword": %w`, err)}
		}
	}
	if _, ok := jc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Job.status"`)}
	}
	if v, ok := jc.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if _, ok := jc.mutation.CurrentIteration(); !ok {
		return &ValidationError{Name: "current_iteration", err: errors.New(`ent: missing required field "Job.current_iteration"`)}
	}
	if _, ok := jc.mutation.MaxIterations(); !ok {
		return &ValidationError{Name: "max_iterations", err: errors.New(`ent: missing required field "Job.max_iterations"`)}
	}
	if _, ok := jc.mutation.TotalTokensUsed(); !ok {
		return &ValidationError{Name: "total_tokens_used", err: errors.New(`ent: missing required field "Job.total_tokens_used"`)}
	}
	if _, ok := jc.mutation.EstimatedCostUsd(); !ok {
		return &ValidationError{Name: "estimated_cost_usd", err: errors.New(`ent: missing required field "Job.estimated_cost_usd"`)}
	}
	if _, ok := jc.mutation.ProgressPercent(); !ok {
		return &ValidationError{Name: "progress_percent", err: errors.New(`ent: missing required field "Job.progress_percent"`)}
	}
	if _, ok := jc.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Job.priority"`)}
	}
	if _, ok := jc.mutation.Settings(); !ok {
		return &ValidationError{Name: "settings", err: errors.New(`ent: missing required field "Job.settings"`)}
	}
	if _, ok := jc.mutation.CancelRequested(); !ok {
		return &ValidationError{Name: "cancel_requested", err: errors.New(`ent: missing required field "Job.cancel_requested"`)}
	}
	if _, ok := jc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	if _, ok := jc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Job.updated_at"`)}
	}
	return nil
}

func (jc *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
	if err := jc.check(); err != nil {
		return nil, err
	}
	_node, _spec := jc.createSpec()
	if err := sqlgraph.CreateNode(ctx, jc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Job.ID type: %T", _spec.ID.Value)
		}
	}
	jc.mutation.id = &_node.ID
	jc.mutation.done = true
	return _node, nil
}

func (jc *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: jc.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	)
	if id, ok := jc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := jc.mutation.Keyword(); ok {
		_spec.SetField(job.FieldKeyword, field.TypeString, value)
		_node.Keyword = value
	}
	if value, ok := jc.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := jc.mutation.CurrentAgent(); ok {
		_spec.SetField(job.FieldCurrentAgent, field.TypeString, value)
		_node.CurrentAgent = &value
	}
	if value, ok := jc.mutation.CurrentIteration(); ok {
		_spec.SetField(job.FieldCurrentIteration, field.TypeInt, value)
		_node.CurrentIteration = value
	}
	if value, ok := jc.mutation.MaxIterations(); ok {
		_spec.SetField(job.FieldMaxIterations, field.TypeInt, value)
		_node.MaxIterations = value
	}
	if value, ok := jc.mutation.TotalTokensUsed(); ok {
		_spec.SetField(job.FieldTotalTokensUsed, field.TypeInt, value)
		_node.TotalTokensUsed = value
	}
	if value, ok := jc.mutation.EstimatedCostUsd(); ok {
		_spec.SetField(job.FieldEstimatedCostUsd, field.TypeFloat64, value)
		_node.EstimatedCostUsd = value
	}
	if value, ok := jc.mutation.ProgressPercent(); ok {
		_spec.SetField(job.FieldProgressPercent, field.TypeInt, value)
		_node.ProgressPercent = value
	}
	if value, ok := jc.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := jc.mutation.Settings(); ok {
		_spec.SetField(job.FieldSettings, field.TypeJSON, value)
		_node.Settings = value
	}
	if value, ok := jc.mutation.FinalOutput(); ok {
		_spec.SetField(job.FieldFinalOutput, field.TypeJSON, value)
		_node.FinalOutput = value
	}
	if value, ok := jc.mutation.PageID(); ok {
		_spec.SetField(job.FieldPageID, field.TypeString, value)
		_node.PageID = &value
	}
	if value, ok := jc.mutation.LastError(); ok {
		_spec.SetField(job.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := jc.mutation.CancelRequested(); ok {
		_spec.SetField(job.FieldCancelRequested, field.TypeBool, value)
		_node.CancelRequested = value
	}
	if value, ok := jc.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := jc.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := jc.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := jc.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := jc.mutation.CreatedBy(); ok {
		_spec.SetField(job.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := jc.mutation.PodID(); ok {
		_spec.SetField(job.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := jc.mutation.HeartbeatAt(); ok {
		_spec.SetField(job.FieldHeartbeatAt, field.TypeTime, value)
		_node.HeartbeatAt = &value
	}
	if nodes := jc.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.StepsTable,
			Columns: []string{job.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := jc.mutation.EvalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EvalsTable,
			Columns: []string{job.EvalsColumn},
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

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
}

// Save creates the Job entities in the database.
func (jcb *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if jcb.err != nil {
		return nil, jcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(jcb.builders))
	nodes := make([]*Job, len(jcb.builders))
	mutators := make([]Mutator, len(jcb.builders))
	for i := range jcb.builders {
		func(i int, root context.Context) {
			builder := jcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
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
					_, err = mutators[i+1].Mutate(root, jcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, jcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, jcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (jcb *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := jcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (jcb *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := jcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (jcb *JobCreateBulk) ExecX(ctx context.Context) {
	if err := jcb.Exec(ctx); err != nil {
		panic(err)
	}
}
