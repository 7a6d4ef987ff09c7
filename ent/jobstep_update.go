// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/copymill/copymill/ent/jobeval"
	"github.com/copymill/copymill/ent/jobstep"
	"github.com/copymill/copymill/ent/predicate"
)

// JobStepUpdate is the builder for updating JobStep entities.
type JobStepUpdate struct {
	config
	hooks    []Hook
	mutation *JobStepMutation
}

// Where appends a list predicates to the JobStepUpdate builder.
func (jsu *JobStepUpdate) Where(ps ...predicate.JobStep) *JobStepUpdate {
	jsu.mutation.Where(ps...)
	return jsu
}

// SetAgentType sets the "agent_type" field.
func (jsu *JobStepUpdate) SetAgentType(jt jobstep.AgentType) *JobStepUpdate {
	jsu.mutation.SetAgentType(jt)
	return jsu
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (jsu *JobStepUpdate) SetNillableAgentType(jt *jobstep.AgentType) *JobStepUpdate {
	if jt != nil {
		jsu.SetAgentType(*jt)
	}
	return jsu
}

// SetIteration sets the "iteration" field.
func (jsu *JobStepUpdate) SetIteration(i int) *JobStepUpdate {
	jsu.mutation.ResetIteration()
	jsu.mutation.SetIteration(i)
	return jsu
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (jsu *JobStepUpdate) SetNillableIteration(i *int) *JobStepUpdate {
	if i != nil {
		jsu.SetIteration(*i)
	}
	return jsu
}

// AddIteration adds i to the "iteration" field.
func (jsu *JobStepUpdate) AddIteration(i int) *JobStepUpdate {
	jsu.mutation.AddIteration(i)
	return jsu
}

// SetStatus sets the "status" field.
func (jsu *JobStepUpdate) SetStatus(j jobstep.Status) *JobStepUpdate {
	jsu.mutation.SetStatus(j)
	return jsu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (jsu *JobStepUpdate) SetNillableStatus(j *jobstep.Status) *JobStepUpdate {
	if j != nil {
		jsu.SetStatus(*j)
	}
	return jsu
}

// SetTokensUsed sets the "tokens_used" field.
func (jsu *JobStepUpdate) SetTokensUsed(i int) *JobStepUpdate {
	jsu.mutation.ResetTokensUsed()
	jsu.mutation.SetTokensUsed(i)
	return jsu
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (jsu *JobStepUpdate) SetNillableTokensUsed(i *int) *JobStepUpdate {
	if i != nil {
		jsu.SetTokensUsed(*i)
	}
	return jsu
}

// AddTokensUsed adds i to the "tokens_used" field.
func (jsu *JobStepUpdate) AddTokensUsed(i int) *JobStepUpdate {
	jsu.mutation.AddTokensUsed(i)
	return jsu
}

// SetPromptTokens sets the "prompt_tokens" field.
func (jsu *JobStepUpdate) SetPromptTokens(i int) *JobStepUpdate {
	jsu.mutation.ResetPromptTokens()
	jsu.mutation.SetPromptTokens(i)
	return jsu
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (jsu *JobStepUpdate) SetNillablePromptTokens(i *int) *JobStepUpdate {
	if i != nil {
		jsu.SetPromptTokens(*i)
	}
	return jsu
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (jsu *JobStepUpdate) AddPromptTokens(i int) *JobStepUpdate {
	jsu.mutation.AddPromptTokens(i)
	return jsu
}

// SetCompletionTokens sets the "completion_tokens" field.
func (jsu *JobStepUpdate) SetCompletionTokens(i int) *JobStepUpdate {
	jsu.mutation.ResetCompletionTokens()
	jsu.mutation.SetCompletionTokens(i)
	return jsu
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (jsu *JobStepUpdate) SetNillableCompletionTokens(i *int) *JobStepUpdate {
	if i != nil {
		jsu.SetCompletionTokens(*i)
	}
	return jsu
}

// AddCompletionTokens adds i to the "completion_tokens" field.
func (jsu *JobStepUpdate) AddCompletionTokens(i int) *JobStepUpdate {
	jsu.mutation.AddCompletionTokens(i)
	return jsu
}

// SetDurationMs sets the "duration_ms" field.
func (jsu *JobStepUpdate) SetDurationMs(i int) *JobStepUpdate {
	jsu.mutation.ResetDurationMs()
	jsu.mutation.SetDurationMs(i)
	return jsu
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (jsu *JobStepUpdate) SetNillableDurationMs(i *int) *JobStepUpdate {
	if i != nil {
		jsu.SetDurationMs(*i)
	}
	return jsu
}

// AddDurationMs adds i to the "duration_ms" field.
func (jsu *JobStepUpdate) AddDurationMs(i int) *JobStepUpdate {
	jsu.mutation.AddDurationMs(i)
	return jsu
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (jsu *JobStepUpdate) ClearDurationMs() *JobStepUpdate {
	jsu.mutation.ClearDurationMs()
	return jsu
}

// SetInput sets the "input" field.
func (jsu *JobStepUpdate) SetInput(m map[string]interface{}) *JobStepUpdate {
	jsu.mutation.SetInput(m)
	return jsu
}

// ClearInput clears the value of the "input" field.
func (jsu *JobStepUpdate) ClearInput() *JobStepUpdate {
	jsu.mutation.ClearInput()
	return jsu
}

// SetOutput sets the "output" field.
func (jsu *JobStepUpdate) SetOutput(m map[string]interface{}) *JobStepUpdate {
	jsu.mutation.SetOutput(m)
	return jsu
}

// ClearOutput clears the value of the "output" field.
func (jsu *JobStepUpdate) ClearOutput() *JobStepUpdate {
	jsu.mutation.ClearOutput()
	return jsu
}

// SetLogs sets the "logs" field.
func (jsu *JobStepUpdate) SetLogs(s []string) *JobStepUpdate {
	jsu.mutation.SetLogs(s)
	return jsu
}

// AppendLogs appends s to the "logs" field.
func (jsu *JobStepUpdate) AppendLogs(s []string) *JobStepUpdate {
	jsu.mutation.AppendLogs(s)
	return jsu
}

// ClearLogs clears the value of the "logs" field.
func (jsu *JobStepUpdate) ClearLogs() *JobStepUpdate {
	jsu.mutation.ClearLogs()
	return jsu
}

// SetErrorMessage sets the "error_message" field.
func (jsu *JobStepUpdate) SetErrorMessage(s string) *JobStepUpdate {
	jsu.mutation.SetErrorMessage(s)
	return jsu
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (jsu *JobStepUpdate) SetNillableErrorMessage(s *string) *JobStepUpdate {
	if s != nil {
		jsu.SetErrorMessage(*s)
	}
	return jsu
}

// ClearErrorMessage clears the value of the "error_message" field.
func (jsu *JobStepUpdate) ClearErrorMessage() *JobStepUpdate {
	jsu.mutation.ClearErrorMessage()
	return jsu
}

// SetStartedAt sets the "started_at" field.
func (jsu *JobStepUpdate) SetStartedAt(t time.Time) *JobStepUpdate {
	jsu.mutation.SetStartedAt(t)
	return jsu
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (jsu *JobStepUpdate) SetNillableStartedAt(t *time.Time) *JobStepUpdate {
	if t != nil {
		jsu.SetStartedAt(*t)
	}
	return jsu
}

// ClearStartedAt clears the value of the "started_at" field.
func (jsu *JobStepUpdate) ClearStartedAt() *JobStepUpdate {
	jsu.mutation.ClearStartedAt()
	return jsu
}

// SetCompletedAt sets the "completed_at" field.
func (jsu *JobStepUpdate) SetCompletedAt(t time.Time) *JobStepUpdate {
	jsu.mutation.SetCompletedAt(t)
	return jsu
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (jsu *JobStepUpdate) SetNillableCompletedAt(t *time.Time) *JobStepUpdate {
	if t != nil {
		jsu.SetCompletedAt(*t)
	}
	return jsu
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (jsu *JobStepUpdate) ClearCompletedAt() *JobStepUpdate {
	jsu.mutation.ClearCompletedAt()
	return jsu
}

// AddEvalIDs adds the "evals" edge to the JobEval entity by IDs.
func (jsu *JobStepUpdate) AddEvalIDs(ids ...string) *JobStepUpdate {
	jsu.mutation.AddEvalIDs(ids...)
	return jsu
}

// AddEvals adds the "evals" edges to the JobEval entity.
func (jsu *JobStepUpdate) AddEvals(j ...*JobEval) *JobStepUpdate {
	ids := make([]string, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return jsu.AddEvalIDs(ids...)
}

// Mutation returns the JobStepMutation object of the builder.
func (jsu *JobStepUpdate) Mutation() *JobStepMutation {
	return jsu.mutation
}

// ClearEvals clears all "evals" edges to the JobEval entity.
func (jsu *JobStepUpdate) ClearEvals() *JobStepUpdate {
	jsu.mutation.ClearEvals()
	return jsu
}

// RemoveEvalIDs removes the "evals" edge to JobEval entities by IDs.
func (jsu *JobStepUpdate) RemoveEvalIDs(ids ...string) *JobStepUpdate {
	jsu.mutation.RemoveEvalIDs(ids...)
	return jsu
}

// RemoveEvals removes "evals" edges to JobEval entities.
func (jsu *JobStepUpdate) RemoveEvals(j ...*JobEval) *JobStepUpdate {
	ids := make([]string, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return jsu.RemoveEvalIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (jsu *JobStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, jsu.sqlSave, jsu.mutation, jsu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (jsu *JobStepUpdate) SaveX(ctx context.Context) int {
	affected, err := jsu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (jsu *JobStepUpdate) Exec(ctx context.Context) error {
	_, err := jsu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (jsu *JobStepUpdate) ExecX(ctx context.Context) {
	if err := jsu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (jsu *JobStepUpdate) check() error {
	if v, ok := jsu.mutation.AgentType(); ok {
		if err := jobstep.AgentTypeValidator(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "JobStep.agent_type": %w`, err)}
		}
	}
	if v, ok := jsu.mutation.Status(); ok {
		if err := jobstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobStep.status": %w`, err)}
		}
	}
	if jsu.mutation.JobCleared() && len(jsu.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobStep.job"`)
	}
	return nil
}

func (jsu *JobStepUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := jsu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobstep.Table, jobstep.Columns, sqlgraph.NewFieldSpec(jobstep.FieldID, field.TypeString))
	if ps := jsu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := jsu.mutation.AgentType(); ok {
		_spec.SetField(jobstep.FieldAgentType, field.TypeEnum, value)
	}
	if value, ok := jsu.mutation.Iteration(); ok {
		_spec.SetField(jobstep.FieldIteration, field.TypeInt, value)
	}
	if value, ok := jsu.mutation.AddedIteration(); ok {
		_spec.AddField(jobstep.FieldIteration, field.TypeInt, value)
	}
	if value, ok := jsu.mutation.Status(); ok {
		_spec.SetField(jobstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := jsu.mutation.TokensUsed(); ok {
		_spec.SetField(jobstep.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := jsu.mutation.AddedTokensUsed(); ok {
		_spec.AddField(jobstep.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := jsu.mutation.PromptTokens(); ok {
		_spec.SetField(jobstep.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := jsu.mutation.AddedPromptTokens(); ok {
		_spec.AddField(jobstep.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := jsu.mutation.CompletionTokens(); ok {
		_spec.SetField(jobstep.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := jsu.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(jobstep.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := jsu.mutation.DurationMs(); ok {
		_spec.SetField(jobstep.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := jsu.mutation.AddedDurationMs(); ok {
		_spec.AddField(jobstep.FieldDurationMs, field.TypeInt, value)
	}
	if jsu.mutation.DurationMsCleared() {
		_spec.ClearField(jobstep.FieldDurationMs, field.TypeInt)
	}
	if value, ok := jsu.mutation.Input(); ok {
		_spec.SetField(jobstep.FieldInput, field.TypeJSON, value)
	}
	if jsu.mutation.InputCleared() {
		_spec.ClearField(jobstep.FieldInput, field.TypeJSON)
	}
	if value, ok := jsu.mutation.Output(); ok {
		_spec.SetField(jobstep.FieldOutput, field.TypeJSON, value)
	}
	if jsu.mutation.OutputCleared() {
		_spec.ClearField(jobstep.FieldOutput, field.TypeJSON)
	}
	if value, ok := jsu.mutation.Logs(); ok {
		_spec.SetField(jobstep.FieldLogs, field.TypeJSON, value)
	}
	if value, ok := jsu.mutation.AppendedLogs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobstep.FieldLogs, value)
		})
	}
	if jsu.mutation.LogsCleared() {
		_spec.ClearField(jobstep.FieldLogs, field.TypeJSON)
	}
	if value, ok := jsu.mutation.ErrorMessage(); ok {
		_spec.SetField(jobstep.FieldErrorMessage, field.TypeString, value)
	}
	if jsu.mutation.ErrorMessageCleared() {
		_spec.ClearField(jobstep.FieldErrorMessage, field.TypeString)
	}
	if value, ok := jsu.mutation.StartedAt(); ok {
		_spec.SetField(jobstep.FieldStartedAt, field.TypeTime, value)
	}
	if jsu.mutation.StartedAtCleared() {
		_spec.ClearField(jobstep.FieldStartedAt, field.TypeTime)
	}
	if value, ok := jsu.mutation.CompletedAt(); ok {
		_spec.SetField(jobstep.FieldCompletedAt, field.TypeTime, value)
	}
	if jsu.mutation.CompletedAtCleared() {
		_spec.ClearField(jobstep.FieldCompletedAt, field.TypeTime)
	}
	if jsu.mutation.EvalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := jsu.mutation.RemovedEvalsIDs(); len(nodes) > 0 && !jsu.mutation.EvalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := jsu.mutation.EvalsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, jsu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	jsu.mutation.done = true
	return n, nil
}

// JobStepUpdateOne is the builder for updating a single JobStep entity.
type JobStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobStepMutation
}

// SetAgentType sets the "agent_type" field.
func (jsuo *JobStepUpdateOne) SetAgentType(jt jobstep.AgentType) *JobStepUpdateOne {
	jsuo.mutation.SetAgentType(jt)
	return jsuo
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (jsuo *JobStepUpdateOne) SetNillableAgentType(jt *jobstep.AgentType) *JobStepUpdateOne {
	if jt != nil {
		jsuo.SetAgentType(*jt)
	}
	return jsuo
}

// SetIteration sets the "iteration" field.
func (jsuo *JobStepUpdateOne) SetIteration(i int) *JobStepUpdateOne {
	jsuo.mutation.ResetIteration()
	jsuo.mutation.SetIteration(i)
	return jsuo
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (jsuo *JobStepUpdateOne) SetNillableIteration(i *int) *JobStepUpdateOne {
	if i != nil {
		jsuo.SetIteration(*i)
	}
	return jsuo
}

// AddIteration adds i to the "iteration" field.
func (jsuo *JobStepUpdateOne) AddIteration(i int) *JobStepUpdateOne {
	jsuo.mutation.AddIteration(i)
	return jsuo
}

// SetStatus sets the "status" field.
func (jsuo *JobStepUpdateOne) SetStatus(j jobstep.Status) *JobStepUpdateOne {
	jsuo.mutation.SetStatus(j)
	return jsuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (jsuo *JobStepUpdateOne) SetNillableStatus(j *jobstep.Status) *JobStepUpdateOne {
	if j != nil {
		jsuo.SetStatus(*j)
	}
	return jsuo
}

// SetTokensUsed sets the "tokens_used" field.
func (jsuo *JobStepUpdateOne) SetTokensUsed(i int) *JobStepUpdateOne {
	jsuo.mutation.ResetTokensUsed()
	jsuo.mutation.SetTokensUsed(i)
	return jsuo
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (jsuo *JobStepUpdateOne) SetNillableTokensUsed(i *int) *JobStepUpdateOne {
	if i != nil {
		jsuo.SetTokensUsed(*i)
	}
	return jsuo
}

// AddTokensUsed adds i to the "tokens_used" field.
func (jsuo *JobStepUpdateOne) AddTokensUsed(i int) *JobStepUpdateOne {
	jsuo.mutation.AddTokensUsed(i)
	return jsuo
}

// SetPromptTokens sets the "prompt_tokens" field.
func (jsuo *JobStepUpdateOne) SetPromptTokens(i int) *JobStepUpdateOne {
	jsuo.mutation.ResetPromptTokens()
	jsuo.mutation.SetPromptTokens(i)
	return jsuo
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (jsuo *JobStepUpdateOne) SetNillablePromptTokens(i *int) *JobStepUpdateOne {
	if i != nil {
		jsuo.SetPromptTokens(*i)
	}
	return jsuo
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (jsuo *JobStepUpdateOne) AddPromptTokens(i int) *JobStepUpdateOne {
	jsuo.mutation.AddPromptTokens(i)
	return jsuo
}

// SetCompletionTokens sets the "completion_tokens" field.
func (jsuo *JobStepUpdateOne) SetCompletionTokens(i int) *JobStepUpdateOne {
	jsuo.mutation.ResetCompletionTokens()
	jsuo.mutation.SetCompletionTokens(i)
	return jsuo
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (jsuo *JobStepUpdateOne) SetNillableCompletionTokens(i *int) *JobStepUpdateOne {
	if i != nil {
		jsuo.SetCompletionTokens(*i)
	}
	return jsuo
}

// AddCompletionTokens adds i to the "completion_tokens" field.
func (jsuo *JobStepUpdateOne) AddCompletionTokens(i int) *JobStepUpdateOne {
	jsuo.mutation.AddCompletionTokens(i)
	return jsuo
}

// SetDurationMs sets the "duration_ms" field.
func (jsuo *JobStepUpdateOne) SetDurationMs(i int) *JobStepUpdateOne {
	jsuo.mutation.ResetDurationMs()
	jsuo.mutation.SetDurationMs(i)
	return jsuo
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (jsuo *JobStepUpdateOne) SetNillableDurationMs(i *int) *JobStepUpdateOne {
	if i != nil {
		jsuo.SetDurationMs(*i)
	}
	return jsuo
}

// AddDurationMs adds i to the "duration_ms" field.
func (jsuo *JobStepUpdateOne) AddDurationMs(i int) *JobStepUpdateOne {
	jsuo.mutation.AddDurationMs(i)
	return jsuo
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (jsuo *JobStepUpdateOne) ClearDurationMs() *JobStepUpdateOne {
	jsuo.mutation.ClearDurationMs()
	return jsuo
}

// SetInput sets the "input" field.
func (jsuo *JobStepUpdateOne) SetInput(m map[string]interface{}) *JobStepUpdateOne {
	jsuo.mutation.SetInput(m)
	return jsuo
}

// ClearInput clears the value of the "input" field.
func (jsuo *JobStepUpdateOne) ClearInput() *JobStepUpdateOne {
	jsuo.mutation.ClearInput()
	return jsuo
}

// SetOutput sets the "output" field.
func (jsuo *JobStepUpdateOne) SetOutput(m map[string]interface{}) *JobStepUpdateOne {
	jsuo.mutation.SetOutput(m)
	return jsuo
}

// ClearOutput clears the value of the "output" field.
func (jsuo *JobStepUpdateOne) ClearOutput() *JobStepUpdateOne {
	jsuo.mutation.ClearOutput()
	return jsuo
}

// SetLogs sets the "logs" field.
func (jsuo *JobStepUpdateOne) SetLogs(s []string) *JobStepUpdateOne {
	jsuo.mutation.SetLogs(s)
	return jsuo
}

// AppendLogs appends s to the "logs" field.
func (jsuo *JobStepUpdateOne) AppendLogs(s []string) *JobStepUpdateOne {
	jsuo.mutation.AppendLogs(s)
	return jsuo
}

// ClearLogs clears the value of the "logs" field.
func (jsuo *JobStepUpdateOne) ClearLogs() *JobStepUpdateOne {
	jsuo.mutation.ClearLogs()
	return jsuo
}

// SetErrorMessage sets the "error_message" field.
func (jsuo *JobStepUpdateOne) SetErrorMessage(s string) *JobStepUpdateOne {
	jsuo.mutation.SetErrorMessage(s)
	return jsuo
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (jsuo *JobStepUpdateOne) SetNillableErrorMessage(s *string) *JobStepUpdateOne {
	if s != nil {
		jsuo.SetErrorMessage(*s)
	}
	return jsuo
}

// ClearErrorMessage clears the value of the "error_message" field.
func (jsuo *JobStepUpdateOne) ClearErrorMessage() *JobStepUpdateOne {
	jsuo.mutation.ClearErrorMessage()
	return jsuo
}

// SetStartedAt sets the "started_at" field.
func (jsuo *JobStepUpdateOne) SetStartedAt(t time.Time) *JobStepUpdateOne {
	jsuo.mutation.SetStartedAt(t)
	return jsuo
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (jsuo *JobStepUpdateOne) SetNillableStartedAt(t *time.Time) *JobStepUpdateOne {
	if t != nil {
		jsuo.SetStartedAt(*t)
	}
	return jsuo
}

// ClearStartedAt clears the value of the "started_at" field.
func (jsuo *JobStepUpdateOne) ClearStartedAt() *JobStepUpdateOne {
	jsuo.mutation.ClearStartedAt()
	return jsuo
}

// SetCompletedAt sets the "completed_at" field.
func (jsuo *JobStepUpdateOne) SetCompletedAt(t time.Time) *JobStepUpdateOne {
	jsuo.mutation.SetCompletedAt(t)
	return jsuo
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (jsuo *JobStepUpdateOne) SetNillableCompletedAt(t *time.Time) *JobStepUpdateOne {
	if t != nil {
		jsuo.SetCompletedAt(*t)
	}
	return jsuo
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (jsuo *JobStepUpdateOne) ClearCompletedAt() *JobStepUpdateOne {
	jsuo.mutation.ClearCompletedAt()
	return jsuo
}

// AddEvalIDs adds the "evals" edge to the JobEval entity by IDs.
func (jsuo *JobStepUpdateOne) AddEvalIDs(ids ...string) *JobStepUpdateOne {
	jsuo.mutation.AddEvalIDs(ids...)
	return jsuo
}

// AddEvals adds the "evals" edges to the JobEval entity.
func (jsuo *JobStepUpdateOne) AddEvals(j ...*JobEval) *JobStepUpdateOne {
	ids := make([]string, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return jsuo.AddEvalIDs(ids...)
}

// Mutation returns the JobStepMutation object of the builder.
func (jsuo *JobStepUpdateOne) Mutation() *JobStepMutation {
	return jsuo.mutation
}

// ClearEvals clears all "evals" edges to the JobEval entity.
func (jsuo *JobStepUpdateOne) ClearEvals() *JobStepUpdateOne {
	jsuo.mutation.ClearEvals()
	return jsuo
}

// RemoveEvalIDs removes the "evals" edge to JobEval entities by IDs.
func (jsuo *JobStepUpdateOne) RemoveEvalIDs(ids ...string) *JobStepUpdateOne {
	jsuo.mutation.RemoveEvalIDs(ids...)
	return jsuo
}

// RemoveEvals removes "evals" edges to JobEval entities.
func (jsuo *JobStepUpdateOne) RemoveEvals(j ...*JobEval) *JobStepUpdateOne {
	ids := make([]string, len(j))
	for i := range j {
		ids[i] = j[i].ID
	}
	return jsuo.RemoveEvalIDs(ids...)
}

// Where appends a list predicates to the JobStepUpdate builder.
func (jsuo *JobStepUpdateOne) Where(ps ...predicate.JobStep) *JobStepUpdateOne {
	jsuo.mutation.Where(ps...)
	return jsuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (jsuo *JobStepUpdateOne) Select(field string, fields ...string) *JobStepUpdateOne {
	jsuo.fields = append([]string{field}, fields...)
	return jsuo
}

// Save executes the query and returns the updated JobStep entity.
func (jsuo *JobStepUpdateOne) Save(ctx context.Context) (*JobStep, error) {
	return withHooks(ctx, jsuo.sqlSave, jsuo.mutation, jsuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (jsuo *JobStepUpdateOne) SaveX(ctx context.Context) *JobStep {
	node, err := jsuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (jsuo *JobStepUpdateOne) Exec(ctx context.Context) error {
	_, err := jsuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (jsuo *JobStepUpdateOne) ExecX(ctx context.Context) {
	if err := jsuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (jsuo *JobStepUpdateOne) check() error {
	if v, ok := jsuo.mutation.AgentType(); ok {
		if err := jobstep.AgentTypeValidator(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "JobStep.agent_type": %w`, err)}
		}
	}
	if v, ok := jsuo.mutation.Status(); ok {
		if err := jobstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobStep.status": %w`, err)}
		}
	}
	if jsuo.mutation.JobCleared() && len(jsuo.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobStep.job"`)
	}
	return nil
}

func (jsuo *JobStepUpdateOne) sqlSave(ctx context.Context) (_node *JobStep, err error) {
	if err := jsuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobstep.Table, jobstep.Columns, sqlgraph.NewFieldSpec(jobstep.FieldID, field.TypeString))
	id, ok := jsuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := jsuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobstep.FieldID)
		for _, f := range fields {
			if !jobstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobstep.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := jsuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := jsuo.mutation.AgentType(); ok {
		_spec.SetField(jobstep.FieldAgentType, field.TypeEnum, value)
	}
	if value, ok := jsuo.mutation.Iteration(); ok {
		_spec.SetField(jobstep.FieldIteration, field.TypeInt, value)
	}
	if value, ok := jsuo.mutation.AddedIteration(); ok {
		_spec.AddField(jobstep.FieldIteration, field.TypeInt, value)
	}
	if value, ok := jsuo.mutation.Status(); ok {
		_spec.SetField(jobstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := jsuo.mutation.TokensUsed(); ok {
		_spec.SetField(jobstep.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := jsuo.mutation.AddedTokensUsed(); ok {
		_spec.AddField(jobstep.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := jsuo.mutation.PromptTokens(); ok {
		_spec.SetField(jobstep.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := jsuo.mutation.AddedPromptTokens(); ok {
		_spec.AddField(jobstep.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := jsuo.mutation.CompletionTokens(); ok {
		_spec.SetField(jobstep.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := jsuo.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(jobstep.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := jsuo.mutation.DurationMs(); ok {
		_spec.SetField(jobstep.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := jsuo.mutation.AddedDurationMs(); ok {
		_spec.AddField(jobstep.FieldDurationMs, field.TypeInt, value)
	}
	if jsuo.mutation.DurationMsCleared() {
		_spec.ClearField(jobstep.FieldDurationMs, field.TypeInt)
	}
	if value, ok := jsuo.mutation.Input(); ok {
		_spec.SetField(jobstep.FieldInput, field.TypeJSON, value)
	}
	if jsuo.mutation.InputCleared() {
		_spec.ClearField(jobstep.FieldInput, field.TypeJSON)
	}
	if value, ok := jsuo.mutation.Output(); ok {
		_spec.SetField(jobstep.FieldOutput, field.TypeJSON, value)
	}
	if jsuo.mutation.OutputCleared() {
		_spec.ClearField(jobstep.FieldOutput, field.TypeJSON)
	}
	if value, ok := jsuo.mutation.Logs(); ok {
		_spec.SetField(jobstep.FieldLogs, field.TypeJSON, value)
	}
	if value, ok := jsuo.mutation.AppendedLogs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobstep.FieldLogs, value)
		})
	}
	if jsuo.mutation.LogsCleared() {
		_spec.ClearField(jobstep.FieldLogs, field.TypeJSON)
	}
	if value, ok := jsuo.mutation.ErrorMessage(); ok {
		_spec.SetField(jobstep.FieldErrorMessage, field.TypeString, value)
	}
	if jsuo.mutation.ErrorMessageCleared() {
		_spec.ClearField(jobstep.FieldErrorMessage, field.TypeString)
	}
	if value, ok := jsuo.mutation.StartedAt(); ok {
		_spec.SetField(jobstep.FieldStartedAt, field.TypeTime, value)
	}
	if jsuo.mutation.StartedAtCleared() {
		_spec.ClearField(jobstep.FieldStartedAt, field.TypeTime)
	}
	if value, ok := jsuo.mutation.CompletedAt(); ok {
		_spec.SetField(jobstep.FieldCompletedAt, field.TypeTime, value)
	}
	if jsuo.mutation.CompletedAtCleared() {
		_spec.ClearField(jobstep.FieldCompletedAt, field.TypeTime)
	}
	if jsuo.mutation.EvalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := jsuo.mutation.RemovedEvalsIDs(); len(nodes) > 0 && !jsuo.mutation.EvalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := jsuo.mutation.EvalsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &JobStep{config: jsuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, jsuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	jsuo.mutation.done = true
	return _node, nil
}
