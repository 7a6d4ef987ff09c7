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
	"github.com/copymill/copymill/ent/job"
	"github.com/copymill/copymill/ent/jobeval"
	"github.com/copymill/copymill/ent/jobstep"
	"github.com/copymill/copymill/ent/predicate"
	"github.com/copymill/copymill/pkg/models"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (ju *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	ju.mutation.Where(ps...)
	return ju
}

// SetKeyword sets the "keyword" field.
func (ju *JobUpdate) SetKeyword(s string) *JobUpdate {
	ju.mutation.SetKeyword(s)
	return ju
}

// SetNillableKeyword sets the "keyword" field if the given value is not nil.
func (ju *JobUpdate) SetNillableKeyword(s *string) *JobUpdate {
	if s != nil {
		ju.SetKeyword(*s)
	}
	return ju
}

// SetStatus sets the "status" field.
func (ju *JobUpdate) SetStatus(j job.Status) *JobUpdate {
	ju.mutation.SetStatus(j)
	return ju
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ju *JobUpdate) SetNillableStatus(j *job.Status) *JobUpdate {
	if j != nil {
		ju.SetStatus(*j)
	}
	return ju
}

// SetCurrentAgent sets the "current_agent" field.
func (ju *JobUpdate) SetCurrentAgent(s string) *JobUpdate {
	ju.mutation.SetCurrentAgent(s)
	return ju
}

// SetNillableCurrentAgent sets the "current_agent" field if the given value is not nil.
func (ju *JobUpdate) SetNillableCurrentAgent(s *string) *JobUpdate {
	if s != nil {
		ju.SetCurrentAgent(*s)
	}
	return ju
}

// ClearCurrentAgent clears the value of the "current_agent" field.
func (ju *JobUpdate) ClearCurrentAgent() *JobUpdate {
	ju.mutation.ClearCurrentAgent()
	return ju
}

// SetCurrentIteration sets the "current_iteration" field.
func (ju *JobUpdate) SetCurrentIteration(i int) *JobUpdate {
	ju.mutation.ResetCurrentIteration()
	ju.mutation.SetCurrentIteration(i)
	return ju
}

// SetNillableCurrentIteration sets the "current_iteration" field if the given value is not nil.
func (ju *JobUpdate) SetNillableCurrentIteration(i *int) *JobUpdate {
	if i != nil {
		ju.SetCurrentIteration(*i)
	}
	return ju
}

// AddCurrentIteration adds i to the "current_iteration" field.
func (ju *JobUpdate) AddCurrentIteration(i int) *JobUpdate {
	ju.mutation.AddCurrentIteration(i)
	return ju
}

// SetMaxIterations sets the "max_iterations" field.
func (ju *JobUpdate) SetMaxIterations(i int) *JobUpdate {
	ju.mutation.ResetMaxIterations()
	ju.mutation.SetMaxIterations(i)
	return ju
}

// SetNillableMaxIterations sets the "max_iterations" field if the given value is not nil.
func (ju *JobUpdate) SetNillableMaxIterations(i *int) *JobUpdate {
	if i != nil {
		ju.SetMaxIterations(*i)
	}
	return ju
}

// AddMaxIterations adds i to the "max_iterations" field.
func (ju *JobUpdate) AddMaxIterations(i int) *JobUpdate {
	ju.mutation.AddMaxIterations(i)
	return ju
}

// SetTotalTokensUsed sets the "total_tokens_used" field.
func (ju *JobUpdate) SetTotalTokensUsed(i int) *JobUpdate {
	ju.mutation.ResetTotalTokensUsed()
	ju.mutation.SetTotalTokensUsed(i)
	return ju
}

// SetNillableTotalTokensUsed sets the "total_tokens_used" field if the given value is not nil.
func (ju *JobUpdate) SetNillableTotalTokensUsed(i *int) *JobUpdate {
	if i != nil {
		ju.SetTotalTokensUsed(*i)
	}
	return ju
}

// AddTotalTokensUsed adds i to the "total_tokens_used" field.
func (ju *JobUpdate) AddTotalTokensUsed(i int) *JobUpdate {
	ju.mutation.AddTotalTokensUsed(i)
	return ju
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (ju *JobUpdate) SetEstimatedCostUsd(f float64) *JobUpdate {
	ju.mutation.ResetEstimatedCostUsd()
	ju.mutation.SetEstimatedCostUsd(f)
	return ju
}

// SetNillableEstimatedCostUsd sets the "estimated_cost_usd" field if the given value is not nil.
func (ju *JobUpdate) SetNillableEstimatedCostUsd(f *float64) *JobUpdate {
	if f != nil {
		ju.SetEstimatedCostUsd(*f)
	}
	return ju
}

// AddEstimatedCostUsd adds f to the "estimated_cost_usd" field.
func (ju *JobUpdate) AddEstimatedCostUsd(f float64) *JobUpdate {
	ju.mutation.AddEstimatedCostUsd(f)
	return ju
}

// SetProgressPercent sets the "progress_percent" field.
func (ju *JobUpdate) SetProgressPercent(i int) *JobUpdate {
	ju.mutation.ResetProgressPercent()
	ju.mutation.SetProgressPercent(i)
	return ju
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (ju *JobUpdate) SetNillableProgressPercent(i *int) *JobUpdate {
	if i != nil {
		ju.SetProgressPercent(*i)
	}
	return ju
}

// AddProgressPercent adds i to the "progress_percent" field.
func (ju *JobUpdate) AddProgressPercent(i int) *JobUpdate {
	ju.mutation.AddProgressPercent(i)
	return ju
}

// SetPriority sets the "priority" field.
func (ju *JobUpdate) SetPriority(i int) *JobUpdate {
	ju.mutation.ResetPriority()
	ju.mutation.SetPriority(i)
	return ju
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (ju *JobUpdate) SetNillablePriority(i *int) *JobUpdate {
	if i != nil {
		ju.SetPriority(*i)
	}
	return ju
}

// AddPriority adds i to the "priority" field.
func (ju *JobUpdate) AddPriority(i int) *JobUpdate {
	ju.mutation.AddPriority(i)
	return ju
}

// SetSettings sets the "settings" field.
func (ju *JobUpdate) SetSettings(ms models.JobSettings) *JobUpdate {
	ju.mutation.SetSettings(ms)
	return ju
}

// SetNillableSettings sets the "settings" field if the given value is not nil.
func (ju *JobUpdate) SetNillableSettings(ms *models.JobSettings) *JobUpdate {
	if ms != nil {
		ju.SetSettings(*ms)
	}
	return ju
}

// SetFinalOutput sets the "final_output" field.
func (ju *JobUpdate) SetFinalOutput(m map[string]interface{}) *JobUpdate {
	ju.mutation.SetFinalOutput(m)
	return ju
}

// ClearFinalOutput clears the value of the "final_output" field.
func (ju *JobUpdate) ClearFinalOutput() *JobUpdate {
	ju.mutation.ClearFinalOutput()
	return ju
}

// SetPageID sets the "page_id" field.
func (ju *JobUpdate) SetPageID(s string) *JobUpdate {
	ju.mutation.SetPageID(s)
	return ju
}

// SetNillablePageID sets the "page_id" field if the given value is not nil.
func (ju *JobUpdate) SetNillablePageID(s *string) *JobUpdate {
	if s != nil {
		ju.SetPageID(*s)
	}
	return ju
}

// ClearPageID clears the value of the "page_id" field.
func (ju *JobUpdate) ClearPageID() *JobUpdate {
	ju.mutation.ClearPageID()
	return ju
}

// SetLastError sets the "last_error" field.
func (ju *JobUpdate) SetLastError(s string) *JobUpdate {
	ju.mutation.SetLastError(s)
	return ju
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (ju *JobUpdate) SetNillableLastError(s *string) *JobUpdate {
	if s != nil {
		ju.SetLastError(*s)
	}
	return ju
}

// ClearLastError clears the value of the "last_error" field.
func (ju *JobUpdate) ClearLastError() *JobUpdate {
	ju.mutation.ClearLastError()
	return ju
}

// SetCancelRequested sets the "cancel_requested" field.
func (ju *JobUpdate) SetCancelRequested(b bool) *JobUpdate {
	ju.mutation.SetCancelRequested(b)
	return ju
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (ju *JobUpdate) SetNillableCancelRequested(b *bool) *JobUpdate {
	if b != nil {
		ju.SetCancelRequested(*b)
	}
	return ju
}

// SetStartedAt sets the "started_at" field.
func (ju *JobUpdate) SetStartedAt(t time.Time) *JobUpdate {
	ju.mutation.SetStartedAt(t)
	return ju
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (ju *JobUpdate) SetNillableStartedAt(t *time.Time) *JobUpdate {
	if t != nil {
		ju.SetStartedAt(*t)
	}
	return ju
}

// ClearStartedAt clears the value of the "started_at" field.
func (ju *JobUpdate) ClearStartedAt() *JobUpdate {
	ju.mutation.ClearStartedAt()
	return ju
}

// SetCompletedAt sets the "completed_at" field.
func (ju *JobUpdate) SetCompletedAt(t time.Time) *JobUpdate {
	ju.mutation.SetCompletedAt(t)
	return ju
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (ju *JobUpdate) SetNillableCompletedAt(t *time.Time) *JobUpdate {
	if t != nil {
		ju.SetCompletedAt(*t)
	}
	return ju
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (ju *JobUpdate) ClearCompletedAt() *JobUpdate {
	ju.mutation.ClearCompletedAt()
	return ju
}

// SetUpdatedAt sets the "updated_at" field.
func (ju *JobUpdate) SetUpdatedAt(t time.Time) *JobUpdate {
	ju.mutation.SetUpdatedAt(t)
	return ju
}

// SetCreatedBy sets the "created_by" field.
func (ju *JobUpdate) SetCreatedBy(s string) *JobUpdate {
	ju.mutation.SetCreatedBy(s)
	return ju
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (ju *JobUpdate) SetNillableCreatedBy(s *string) *JobUpdate {
	if s != nil {
		ju.SetCreatedBy(*s)
	}
	return ju
}

// ClearCreatedBy clears the value of the "created_by" field.
func (ju *JobUpdate) ClearCreatedBy() *JobUpdate {
	ju.mutation.ClearCreatedBy()
	return ju
}

// SetPodID sets the "pod_id" field.
func (ju *JobUpdate) SetPodID(s string) *JobUpdate {
	ju.mutation.SetPodID(s)
	return ju
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (ju *JobUpdate) SetNillablePodID(s *string) *JobUpdate {
	if s != nil {
		ju.SetPodID(*s)
	}
	return ju
}

// ClearPodID clears the value of the "pod_id" field.
func (ju *JobUpdate) ClearPodID() *JobUpdate {
	ju.mutation.ClearPodID()
	return ju
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (ju *JobUpdate) SetHeartbeatAt(t time.Time) *JobUpdate {
	ju.mutation.SetHeartbeatAt(t)
	return ju
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (ju *JobUpdate) SetNillableHeartbeatAt(t *time.Time) *JobUpdate {
	if t != nil {
		ju.SetHeartbeatAt(*t)
	}
	return ju
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (ju *JobUpdate) ClearHeartbeatAt() *JobUpdate {
	ju.mutation.ClearHeartbeatAt()
	return ju
}

// AddStepIDs adds the "steps" edge to the JobStep entity by IDs.
func (ju *JobUpdate) AddStepIDs(ids ...string) *JobUpdate {
	ju.mutation.AddStepIDs(ids...)
	return ju
}

// AddSteps adds the "steps" edges to the JobStep entity.
func (ju *JobUpdate) AddSteps(j ...*JobStep) *JobUpdate {
	ids := make([]string, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return ju.AddStepIDs(ids...)
}

// AddEvalIDs adds the "evals" edge to the JobEval entity by IDs.
func (ju *JobUpdate) AddEvalIDs(ids ...string) *JobUpdate {
	ju.mutation.AddEvalIDs(ids...)
	return ju
}

// AddEvals adds the "evals" edges to the JobEval entity.
func (ju *JobUpdate) AddEvals(j ...*JobEval) *JobUpdate {
	ids := make([]string, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return ju.AddEvalIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (ju *JobUpdate) Mutation() *JobMutation {
	return ju.mutation
}

// ClearSteps clears all "steps" edges to the JobStep entity.
func (ju *JobUpdate) ClearSteps() *JobUpdate {
	ju.mutation.ClearSteps()
	return ju
}

// RemoveStepIDs removes the "steps" edge to JobStep entities by IDs.
func (ju *JobUpdate) RemoveStepIDs(ids ...string) *JobUpdate {
	ju.mutation.RemoveStepIDs(ids...)
	return ju
}

// RemoveSteps removes "steps" edges to JobStep entities.
func (ju *JobUpdate) RemoveSteps(j ...*JobStep) *JobUpdate {
	ids := make([]string, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return ju.RemoveStepIDs(ids...)
}

// ClearEvals clears all "evals" edges to the JobEval entity.
func (ju *JobUpdate) ClearEvals() *JobUpdate {
	ju.mutation.ClearEvals()
	return ju
}

// RemoveEvalIDs removes the "evals" edge to JobEval entities by IDs.
func (ju *JobUpdate) RemoveEvalIDs(ids ...string) *JobUpdate {
	ju.mutation.RemoveEvalIDs(ids...)
	return ju
}

// RemoveEvals removes "evals" edges to JobEval entities.
func (ju *JobUpdate) RemoveEvals(j ...*JobEval) *JobUpdate {
	ids := make([]string, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return ju.RemoveEvalIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ju *JobUpdate) Save(ctx context.Context) (int, error) {
	ju.defaults()
	return withHooks(ctx, ju.sqlSave, ju.mutation, ju.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ju *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := ju.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ju *JobUpdate) Exec(ctx context.Context) error {
	_, err := ju.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ju *JobUpdate) ExecX(ctx context.Context) {
	if err := ju.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ju *JobUpdate) defaults() {
	if _, ok := ju.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		ju.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ju *JobUpdate) check() error {
	if v, ok := ju.mutation.Keyword(); ok {
		if err := job.KeywordValidator(v); err != nil {
			return &ValidationError{Name: "keyword", err: fmt.Errorf(`ent: validator failed for field "Job.keyword": %w`, err)}
		}
	}
	if v, ok := ju.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	return nil
}

func (ju *JobUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ju.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	if ps := ju.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ju.mutation.Keyword(); ok {
		_spec.SetField(job.FieldKeyword, field.TypeString, value)
	}
	if value, ok := ju.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := ju.mutation.CurrentAgent(); ok {
		_spec.SetField(job.FieldCurrentAgent, field.TypeString, value)
	}
	if ju.mutation.CurrentAgentCleared() {
		_spec.ClearField(job.FieldCurrentAgent, field.TypeString)
	}
	if value, ok := ju.mutation.CurrentIteration(); ok {
		_spec.SetField(job.FieldCurrentIteration, field.TypeInt, value)
	}
	if value, ok := ju.mutation.AddedCurrentIteration(); ok {
		_spec.AddField(job.FieldCurrentIteration, field.TypeInt, value)
	}
	if value, ok := ju.mutation.MaxIterations(); ok {
		_spec.SetField(job.FieldMaxIterations, field.TypeInt, value)
	}
	if value, ok := ju.mutation.AddedMaxIterations(); ok {
		_spec.AddField(job.FieldMaxIterations, field.TypeInt, value)
	}
	if value, ok := ju.mutation.TotalTokensUsed(); ok {
		_spec.SetField(job.FieldTotalTokensUsed, field.TypeInt, value)
	}
	if value, ok := ju.mutation.AddedTotalTokensUsed(); ok {
		_spec.AddField(job.FieldTotalTokensUsed, field.TypeInt, value)
	}
	if value, ok := ju.mutation.EstimatedCostUsd(); ok {
		_spec.SetField(job.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := ju.mutation.AddedEstimatedCostUsd(); ok {
		_spec.AddField(job.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := ju.mutation.ProgressPercent(); ok {
		_spec.SetField(job.FieldProgressPercent, field.TypeInt, value)
	}
	if value, ok := ju.mutation.AddedProgressPercent(); ok {
		_spec.AddField(job.FieldProgressPercent, field.TypeInt, value)
	}
	if value, ok := ju.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeInt, value)
	}
	if value, ok := ju.mutation.AddedPriority(); ok {
		_spec.AddField(job.FieldPriority, field.TypeInt, value)
	}
	if value, ok := ju.mutation.Settings(); ok {
		_spec.SetField(job.FieldSettings, field.TypeJSON, value)
	}
	if value, ok := ju.mutation.FinalOutput(); ok {
		_spec.SetField(job.FieldFinalOutput, field.TypeJSON, value)
	}
	if ju.mutation.FinalOutputCleared() {
		_spec.ClearField(job.FieldFinalOutput, field.TypeJSON)
	}
	if value, ok := ju.mutation.PageID(); ok {
		_spec.SetField(job.FieldPageID, field.TypeString, value)
	}
	if ju.mutation.PageIDCleared() {
		_spec.ClearField(job.FieldPageID, field.TypeString)
	}
	if value, ok := ju.mutation.LastError(); ok {
		_spec.SetField(job.FieldLastError, field.TypeString, value)
	}
	if ju.mutation.LastErrorCleared() {
		_spec.ClearField(job.FieldLastError, field.TypeString)
	}
	if value, ok := ju.mutation.CancelRequested(); ok {
		_spec.SetField(job.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := ju.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if ju.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := ju.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if ju.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := ju.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := ju.mutation.CreatedBy(); ok {
		_spec.SetField(job.FieldCreatedBy, field.TypeString, value)
	}
	if ju.mutation.CreatedByCleared() {
		_spec.ClearField(job.FieldCreatedBy, field.TypeString)
	}
	if value, ok := ju.mutation.PodID(); ok {
		_spec.SetField(job.FieldPodID, field.TypeString, value)
	}
	if ju.mutation.PodIDCleared() {
		_spec.ClearField(job.FieldPodID, field.TypeString)
	}
	if value, ok := ju.mutation.HeartbeatAt(); ok {
		_spec.SetField(job.FieldHeartbeatAt, field.TypeTime, value)
	}
	if ju.mutation.HeartbeatAtCleared() {
		_spec.ClearField(job.FieldHeartbeatAt, field.TypeTime)
	}
	if ju.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ju.mutation.RemovedStepsIDs(); len(nodes) > 0 && !ju.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ju.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if ju.mutation.EvalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ju.mutation.RemovedEvalsIDs(); len(nodes) > 0 && !ju.mutation.EvalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ju.mutation.EvalsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ju.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ju.mutation.done = true
	return n, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetKeyword sets the "keyword" field.
func (juo *JobUpdateOne) SetKeyword(s string) *JobUpdateOne {
	juo.mutation.SetKeyword(s)
	return juo
}

// SetNillableKeyword sets the "keyword" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableKeyword(s *string) *JobUpdateOne {
	if s != nil {
		juo.SetKeyword(*s)
	}
	return juo
}

// SetStatus sets the "status" field.
func (juo *JobUpdateOne) SetStatus(j job.Status) *JobUpdateOne {
	juo.mutation.SetStatus(j)
	return juo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableStatus(j *job.Status) *JobUpdateOne {
	if j != nil {
		juo.SetStatus(*j)
	}
	return juo
}

// SetCurrentAgent sets the "current_agent" field.
func (juo *JobUpdateOne) SetCurrentAgent(s string) *JobUpdateOne {
	juo.mutation.SetCurrentAgent(s)
	return juo
}

// SetNillableCurrentAgent sets the "current_agent" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableCurrentAgent(s *string) *JobUpdateOne {
	if s != nil {
		juo.SetCurrentAgent(*s)
	}
	return juo
}

// ClearCurrentAgent clears the value of the "current_agent" field.
func (juo *JobUpdateOne) ClearCurrentAgent() *JobUpdateOne {
	juo.mutation.ClearCurrentAgent()
	return juo
}

// SetCurrentIteration sets the "current_iteration" field.
func (juo *JobUpdateOne) SetCurrentIteration(i int) *JobUpdateOne {
	juo.mutation.ResetCurrentIteration()
	juo.mutation.SetCurrentIteration(i)
	return juo
}

// SetNillableCurrentIteration sets the "current_iteration" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableCurrentIteration(i *int) *JobUpdateOne {
	if i != nil {
		juo.SetCurrentIteration(*i)
	}
	return juo
}

// AddCurrentIteration adds i to the "current_iteration" field.
func (juo *JobUpdateOne) AddCurrentIteration(i int) *JobUpdateOne {
	juo.mutation.AddCurrentIteration(i)
	return juo
}

// SetMaxIterations sets the "max_iterations" field.
func (juo *JobUpdateOne) SetMaxIterations(i int) *JobUpdateOne {
	juo.mutation.ResetMaxIterations()
	juo.mutation.SetMaxIterations(i)
	return juo
}

// SetNillableMaxIterations sets the "max_iterations" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableMaxIterations(i *int) *JobUpdateOne {
	if i != nil {
		juo.SetMaxIterations(*i)
	}
	return juo
}

// AddMaxIterations adds i to the "max_iterations" field.
func (juo *JobUpdateOne) AddMaxIterations(i int) *JobUpdateOne {
	juo.mutation.AddMaxIterations(i)
	return juo
}

// SetTotalTokensUsed sets the "total_tokens_used" field.
func (juo *JobUpdateOne) SetTotalTokensUsed(i int) *JobUpdateOne {
	juo.mutation.ResetTotalTokensUsed()
	juo.mutation.SetTotalTokensUsed(i)
	return juo
}

// SetNillableTotalTokensUsed sets the "total_tokens_used" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableTotalTokensUsed(i *int) *JobUpdateOne {
	if i != nil {
		juo.SetTotalTokensUsed(*i)
	}
	return juo
}

// AddTotalTokensUsed adds i to the "total_tokens_used" field.
func (juo *JobUpdateOne) AddTotalTokensUsed(i int) *JobUpdateOne {
	juo.mutation.AddTotalTokensUsed(i)
	return juo
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (juo *JobUpdateOne) SetEstimatedCostUsd(f float64) *JobUpdateOne {
	juo.mutation.ResetEstimatedCostUsd()
	juo.mutation.SetEstimatedCostUsd(f)
	return juo
}

// SetNillableEstimatedCostUsd sets the "estimated_cost_usd" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableEstimatedCostUsd(f *float64) *JobUpdateOne {
	if f != nil {
		juo.SetEstimatedCostUsd(*f)
	}
	return juo
}

// AddEstimatedCostUsd adds f to the "estimated_cost_usd" field.
func (juo *JobUpdateOne) AddEstimatedCostUsd(f float64) *JobUpdateOne {
	juo.mutation.AddEstimatedCostUsd(f)
	return juo
}

// SetProgressPercent sets the "progress_percent" field.
func (juo *JobUpdateOne) SetProgressPercent(i int) *JobUpdateOne {
	juo.mutation.ResetProgressPercent()
	juo.mutation.SetProgressPercent(i)
	return juo
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableProgressPercent(i *int) *JobUpdateOne {
	if i != nil {
		juo.SetProgressPercent(*i)
	}
	return juo
}

// AddProgressPercent adds i to the "progress_percent" field.
func (juo *JobUpdateOne) AddProgressPercent(i int) *JobUpdateOne {
	juo.mutation.AddProgressPercent(i)
	return juo
}

// SetPriority sets the "priority" field.
func (juo *JobUpdateOne) SetPriority(i int) *JobUpdateOne {
	juo.mutation.ResetPriority()
	juo.mutation.SetPriority(i)
	return juo
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillablePriority(i *int) *JobUpdateOne {
	if i != nil {
		juo.SetPriority(*i)
	}
	return juo
}

// AddPriority adds i to the "priority" field.
func (juo *JobUpdateOne) AddPriority(i int) *JobUpdateOne {
	juo.mutation.AddPriority(i)
	return juo
}

// SetSettings sets the "settings" field.
func (juo *JobUpdateOne) SetSettings(ms models.JobSettings) *JobUpdateOne {
	juo.mutation.SetSettings(ms)
	return juo
}

// SetNillableSettings sets the "settings" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableSettings(ms *models.JobSettings) *JobUpdateOne {
	if ms != nil {
		juo.SetSettings(*ms)
	}
	return juo
}

// SetFinalOutput sets the "final_output" field.
func (juo *JobUpdateOne) SetFinalOutput(m map[string]interface{}) *JobUpdateOne {
	juo.mutation.SetFinalOutput(m)
	return juo
}

// ClearFinalOutput clears the value of the "final_output" field.
func (juo *JobUpdateOne) ClearFinalOutput() *JobUpdateOne {
	juo.mutation.ClearFinalOutput()
	return juo
}

// SetPageID sets the "page_id" field.
func (juo *JobUpdateOne) SetPageID(s string) *JobUpdateOne {
	juo.mutation.SetPageID(s)
	return juo
}

// SetNillablePageID sets the "page_id" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillablePageID(s *string) *JobUpdateOne {
	if s != nil {
		juo.SetPageID(*s)
	}
	return juo
}

// ClearPageID clears the value of the "page_id" field.
func (juo *JobUpdateOne) ClearPageID() *JobUpdateOne {
	juo.mutation.ClearPageID()
	return juo
}

// SetLastError sets the "last_error" field.
func (juo *JobUpdateOne) SetLastError(s string) *JobUpdateOne {
	juo.mutation.SetLastError(s)
	return juo
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableLastError(s *string) *JobUpdateOne {
	if s != nil {
		juo.SetLastError(*s)
	}
	return juo
}

// ClearLastError clears the value of the "last_error" field.
func (juo *JobUpdateOne) ClearLastError() *JobUpdateOne {
	juo.mutation.ClearLastError()
	return juo
}

// SetCancelRequested sets the "cancel_requested" field.
func (juo *JobUpdateOne) SetCancelRequested(b bool) *JobUpdateOne {
	juo.mutation.SetCancelRequested(b)
	return juo
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableCancelRequested(b *bool) *JobUpdateOne {
	if b != nil {
		juo.SetCancelRequested(*b)
	}
	return juo
}

// SetStartedAt sets the "started_at" field.
func (juo *JobUpdateOne) SetStartedAt(t time.Time) *JobUpdateOne {
	juo.mutation.SetStartedAt(t)
	return juo
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableStartedAt(t *time.Time) *JobUpdateOne {
	if t != nil {
		juo.SetStartedAt(*t)
	}
	return juo
}

// ClearStartedAt clears the value of the "started_at" field.
func (juo *JobUpdateOne) ClearStartedAt() *JobUpdateOne {
	juo.mutation.ClearStartedAt()
	return juo
}

// SetCompletedAt sets the "completed_at" field.
func (juo *JobUpdateOne) SetCompletedAt(t time.Time) *JobUpdateOne {
	juo.mutation.SetCompletedAt(t)
	return juo
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableCompletedAt(t *time.Time) *JobUpdateOne {
	if t != nil {
		juo.SetCompletedAt(*t)
	}
	return juo
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (juo *JobUpdateOne) ClearCompletedAt() *JobUpdateOne {
	juo.mutation.ClearCompletedAt()
	return juo
}

// SetUpdatedAt sets the "updated_at" field.
func (juo *JobUpdateOne) SetUpdatedAt(t time.Time) *JobUpdateOne {
	juo.mutation.SetUpdatedAt(t)
	return juo
}

// SetCreatedBy sets the "created_by" field.
func (juo *JobUpdateOne) SetCreatedBy(s string) *JobUpdateOne {
	juo.mutation.SetCreatedBy(s)
	return juo
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableCreatedBy(s *string) *JobUpdateOne {
	if s != nil {
		juo.SetCreatedBy(*s)
	}
	return juo
}

// ClearCreatedBy clears the value of the "created_by" field.
func (juo *JobUpdateOne) ClearCreatedBy() *JobUpdateOne {
	juo.mutation.ClearCreatedBy()
	return juo
}

// SetPodID sets the "pod_id" field.
func (juo *JobUpdateOne) SetPodID(s string) *JobUpdateOne {
	juo.mutation.SetPodID(s)
	return juo
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillablePodID(s *string) *JobUpdateOne {
	if s != nil {
		juo.SetPodID(*s)
	}
	return juo
}

// ClearPodID clears the value of the "pod_id" field.
func (juo *JobUpdateOne) ClearPodID() *JobUpdateOne {
	juo.mutation.ClearPodID()
	return juo
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (juo *JobUpdateOne) SetHeartbeatAt(t time.Time) *JobUpdateOne {
	juo.mutation.SetHeartbeatAt(t)
	return juo
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (juo *JobUpdateOne) SetNillableHeartbeatAt(t *time.Time) *JobUpdateOne {
	if t != nil {
		juo.SetHeartbeatAt(*t)
	}
	return juo
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (juo *JobUpdateOne) ClearHeartbeatAt() *JobUpdateOne {
	juo.mutation.ClearHeartbeatAt()
	return juo
}

// AddStepIDs adds the "steps" edge to the JobStep entity by IDs.
func (juo *JobUpdateOne) AddStepIDs(ids ...string) *JobUpdateOne {
	juo.mutation.AddStepIDs(ids...)
	return juo
}

// AddSteps adds the "steps" edges to the JobStep entity.
func (juo *JobUpdateOne) AddSteps(j ...*JobStep) *JobUpdateOne {
	ids := make([]string, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return juo.AddStepIDs(ids...)
}

// AddEvalIDs adds the "evals" edge to the JobEval entity by IDs.
func (juo *JobUpdateOne) AddEvalIDs(ids ...string) *JobUpdateOne {
	juo.mutation.AddEvalIDs(ids...)
	return juo
}

// AddEvals adds the "evals" edges to the JobEval entity.
func (juo *JobUpdateOne) AddEvals(j ...*JobEval) *JobUpdateOne {
	ids := make([]string, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return juo.AddEvalIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (juo *JobUpdateOne) Mutation() *JobMutation {
	return juo.mutation
}

// ClearSteps clears all "steps" edges to the JobStep entity.
func (juo *JobUpdateOne) ClearSteps() *JobUpdateOne {
	juo.mutation.ClearSteps()
	return juo
}

// RemoveStepIDs removes the "steps" edge to JobStep entities by IDs.
func (juo *JobUpdateOne) RemoveStepIDs(ids ...string) *JobUpdateOne {
	juo.mutation.RemoveStepIDs(ids...)
	return juo
}

// RemoveSteps removes "steps" edges to JobStep entities.
func (juo *JobUpdateOne) RemoveSteps(j ...*JobStep) *JobUpdateOne {
	ids := make([]string, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return juo.RemoveStepIDs(ids...)
}

// ClearEvals clears all "evals" edges to the JobEval entity.
func (juo *JobUpdateOne) ClearEvals() *JobUpdateOne {
	juo.mutation.ClearEvals()
	return juo
}

// RemoveEvalIDs removes the "evals" edge to JobEval entities by IDs.
func (juo *JobUpdateOne) RemoveEvalIDs(ids ...string) *JobUpdateOne {
	juo.mutation.RemoveEvalIDs(ids...)
	return juo
}

// RemoveEvals removes "evals" edges to JobEval entities.
func (juo *JobUpdateOne) RemoveEvals(j ...*JobEval) *JobUpdateOne {
	ids := make([]string, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return juo.RemoveEvalIDs(ids...)
}

// Where appends a list predicates to the JobUpdate builder.
func (juo *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	juo.mutation.Where(ps...)
	return juo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (juo *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	juo.fields = append([]string{field}, fields...)
	return juo
}

// Save executes the query and returns the updated Job entity.
func (juo *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	juo.defaults()
	return withHooks(ctx, juo.sqlSave, juo.mutation, juo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (juo *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := juo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (juo *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := juo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (juo *JobUpdateOne) ExecX(ctx context.Context) {
	if err := juo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (juo *JobUpdateOne) defaults() {
	if _, ok := juo.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		juo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (juo *JobUpdateOne) check() error {
	if v, ok := juo.mutation.Keyword(); ok {
		if err := job.KeywordValidator(v); err != nil {
			return &ValidationError{Name: "keyword", err: fmt.Errorf(`ent: validator failed for field "Job.keyword": %w`, err)}
		}
	}
	if v, ok := juo.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	return nil
}

func (juo *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := juo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	id, ok := juo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := juo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := juo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := juo.mutation.Keyword(); ok {
		_spec.SetField(job.FieldKeyword, field.TypeString, value)
	}
	if value, ok := juo.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := juo.mutation.CurrentAgent(); ok {
		_spec.SetField(job.FieldCurrentAgent, field.TypeString, value)
	}
	if juo.mutation.CurrentAgentCleared() {
		_spec.ClearField(job.FieldCurrentAgent, field.TypeString)
	}
	if value, ok := juo.mutation.CurrentIteration(); ok {
		_spec.SetField(job.FieldCurrentIteration, field.TypeInt, value)
	}
	if value, ok := juo.mutation.AddedCurrentIteration(); ok {
		_spec.AddField(job.FieldCurrentIteration, field.TypeInt, value)
	}
	if value, ok := juo.mutation.MaxIterations(); ok {
		_spec.SetField(job.FieldMaxIterations, field.TypeInt, value)
	}
	if value, ok := juo.mutation.AddedMaxIterations(); ok {
		_spec.AddField(job.FieldMaxIterations, field.TypeInt, value)
	}
	if value, ok := juo.mutation.TotalTokensUsed(); ok {
		_spec.SetField(job.FieldTotalTokensUsed, field.TypeInt, value)
	}
	if value, ok := juo.mutation.AddedTotalTokensUsed(); ok {
		_spec.AddField(job.FieldTotalTokensUsed, field.TypeInt, value)
	}
	if value, ok := juo.mutation.EstimatedCostUsd(); ok {
		_spec.SetField(job.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := juo.mutation.AddedEstimatedCostUsd(); ok {
		_spec.AddField(job.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := juo.mutation.ProgressPercent(); ok {
		_spec.SetField(job.FieldProgressPercent, field.TypeInt, value)
	}
	if value, ok := juo.mutation.AddedProgressPercent(); ok {
		_spec.AddField(job.FieldProgressPercent, field.TypeInt, value)
	}
	if value, ok := juo.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeInt, value)
	}
	if value, ok := juo.mutation.AddedPriority(); ok {
		_spec.AddField(job.FieldPriority, field.TypeInt, value)
	}
	if value, ok := juo.mutation.Settings(); ok {
		_spec.SetField(job.FieldSettings, field.TypeJSON, value)
	}
	if value, ok := juo.mutation.FinalOutput(); ok {
		_spec.SetField(job.FieldFinalOutput, field.TypeJSON, value)
	}
	if juo.mutation.FinalOutputCleared() {
		_spec.ClearField(job.FieldFinalOutput, field.TypeJSON)
	}
	if value, ok := juo.mutation.PageID(); ok {
		_spec.SetField(job.FieldPageID, field.TypeString, value)
	}
	if juo.mutation.PageIDCleared() {
		_spec.ClearField(job.FieldPageID, field.TypeString)
	}
	if value, ok := juo.mutation.LastError(); ok {
		_spec.SetField(job.FieldLastError, field.TypeString, value)
	}
	if juo.mutation.LastErrorCleared() {
		_spec.ClearField(job.FieldLastError, field.TypeString)
	}
	if value, ok := juo.mutation.CancelRequested(); ok {
		_spec.SetField(job.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := juo.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if juo.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := juo.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if juo.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := juo.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := juo.mutation.CreatedBy(); ok {
		_spec.SetField(job.FieldCreatedBy, field.TypeString, value)
	}
	if juo.mutation.CreatedByCleared() {
		_spec.ClearField(job.FieldCreatedBy, field.TypeString)
	}
	if value, ok := juo.mutation.PodID(); ok {
		_spec.SetField(job.FieldPodID, field.TypeString, value)
	}
	if juo.mutation.PodIDCleared() {
		_spec.ClearField(job.FieldPodID, field.TypeString)
	}
	if value, ok := juo.mutation.HeartbeatAt(); ok {
		_spec.SetField(job.FieldHeartbeatAt, field.TypeTime, value)
	}
	if juo.mutation.HeartbeatAtCleared() {
		_spec.ClearField(job.FieldHeartbeatAt, field.TypeTime)
	}
	if juo.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := juo.mutation.RemovedStepsIDs(); len(nodes) > 0 && !juo.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := juo.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if juo.mutation.EvalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := juo.mutation.RemovedEvalsIDs(); len(nodes) > 0 && !juo.mutation.EvalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := juo.mutation.EvalsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Job{config: juo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, juo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	juo.mutation.done = true
	return _node, nil
}
