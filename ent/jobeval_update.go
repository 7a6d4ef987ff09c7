// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/copymill/copymill/ent/jobeval"
	"github.com/copymill/copymill/ent/predicate"
	"github.com/copymill/copymill/pkg/models"
)

// JobEvalUpdate is the builder for updating JobEval entities.
type JobEvalUpdate struct {
	config
	hooks    []Hook
	mutation *JobEvalMutation
}

// Where appends a list predicates to the JobEvalUpdate builder.
func (jeu *JobEvalUpdate) Where(ps ...predicate.JobEval) *JobEvalUpdate {
	jeu.mutation.Where(ps...)
	return jeu
}

// SetIteration sets the "iteration" field.
func (jeu *JobEvalUpdate) SetIteration(i int) *JobEvalUpdate {
	jeu.mutation.ResetIteration()
	jeu.mutation.SetIteration(i)
	return jeu
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (jeu *JobEvalUpdate) SetNillableIteration(i *int) *JobEvalUpdate {
	if i != nil {
		jeu.SetIteration(*i)
	}
	return jeu
}

// AddIteration adds i to the "iteration" field.
func (jeu *JobEvalUpdate) AddIteration(i int) *JobEvalUpdate {
	jeu.mutation.AddIteration(i)
	return jeu
}

// SetOverallScore sets the "overall_score" field.
func (jeu *JobEvalUpdate) SetOverallScore(i int) *JobEvalUpdate {
	jeu.mutation.ResetOverallScore()
	jeu.mutation.SetOverallScore(i)
	return jeu
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (jeu *JobEvalUpdate) SetNillableOverallScore(i *int) *JobEvalUpdate {
	if i != nil {
		jeu.SetOverallScore(*i)
	}
	return jeu
}

// AddOverallScore adds i to the "overall_score" field.
func (jeu *JobEvalUpdate) AddOverallScore(i int) *JobEvalUpdate {
	jeu.mutation.AddOverallScore(i)
	return jeu
}

// SetReadabilityScore sets the "readability_score" field.
func (jeu *JobEvalUpdate) SetReadabilityScore(i int) *JobEvalUpdate {
	jeu.mutation.ResetReadabilityScore()
	jeu.mutation.SetReadabilityScore(i)
	return jeu
}

// SetNillableReadabilityScore sets the "readability_score" field if the given value is not nil.
func (jeu *JobEvalUpdate) SetNillableReadabilityScore(i *int) *JobEvalUpdate {
	if i != nil {
		jeu.SetReadabilityScore(*i)
	}
	return jeu
}

// AddReadabilityScore adds i to the "readability_score" field.
func (jeu *JobEvalUpdate) AddReadabilityScore(i int) *JobEvalUpdate {
	jeu.mutation.AddReadabilityScore(i)
	return jeu
}

// SetSeoScore sets the "seo_score" field.
func (jeu *JobEvalUpdate) SetSeoScore(i int) *JobEvalUpdate {
	jeu.mutation.ResetSeoScore()
	jeu.mutation.SetSeoScore(i)
	return jeu
}

// SetNillableSeoScore sets the "seo_score" field if the given value is not nil.
func (jeu *JobEvalUpdate) SetNillableSeoScore(i *int) *JobEvalUpdate {
	if i != nil {
		jeu.SetSeoScore(*i)
	}
	return jeu
}

// AddSeoScore adds i to the "seo_score" field.
func (jeu *JobEvalUpdate) AddSeoScore(i int) *JobEvalUpdate {
	jeu.mutation.AddSeoScore(i)
	return jeu
}

// SetAccuracyScore sets the "accuracy_score" field.
func (jeu *JobEvalUpdate) SetAccuracyScore(i int) *JobEvalUpdate {
	jeu.mutation.ResetAccuracyScore()
	jeu.mutation.SetAccuracyScore(i)
	return jeu
}

// SetNillableAccuracyScore sets the "accuracy_score" field if the given value is not nil.
func (jeu *JobEvalUpdate) SetNillableAccuracyScore(i *int) *JobEvalUpdate {
	if i != nil {
		jeu.SetAccuracyScore(*i)
	}
	return jeu
}

// AddAccuracyScore adds i to the "accuracy_score" field.
func (jeu *JobEvalUpdate) AddAccuracyScore(i int) *JobEvalUpdate {
	jeu.mutation.AddAccuracyScore(i)
	return jeu
}

// SetEngagementScore sets the "engagement_score" field.
func (jeu *JobEvalUpdate) SetEngagementScore(i int) *JobEvalUpdate {
	jeu.mutation.ResetEngagementScore()
	jeu.mutation.SetEngagementScore(i)
	return jeu
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (jeu *JobEvalUpdate) SetNillableEngagementScore(i *int) *JobEvalUpdate {
	if i != nil {
		jeu.SetEngagementScore(*i)
	}
	return jeu
}

// AddEngagementScore adds i to the "engagement_score" field.
func (jeu *JobEvalUpdate) AddEngagementScore(i int) *JobEvalUpdate {
	jeu.mutation.AddEngagementScore(i)
	return jeu
}

// SetBrandVoiceScore sets the "brand_voice_score" field.
func (jeu *JobEvalUpdate) SetBrandVoiceScore(i int) *JobEvalUpdate {
	jeu.mutation.ResetBrandVoiceScore()
	jeu.mutation.SetBrandVoiceScore(i)
	return jeu
}

// SetNillableBrandVoiceScore sets the "brand_voice_score" field if the given value is not nil.
func (jeu *JobEvalUpdate) SetNillableBrandVoiceScore(i *int) *JobEvalUpdate {
	if i != nil {
		jeu.SetBrandVoiceScore(*i)
	}
	return jeu
}

// AddBrandVoiceScore adds i to the "brand_voice_score" field.
func (jeu *JobEvalUpdate) AddBrandVoiceScore(i int) *JobEvalUpdate {
	jeu.mutation.AddBrandVoiceScore(i)
	return jeu
}

// SetPassed sets the "passed" field.
func (jeu *JobEvalUpdate) SetPassed(b bool) *JobEvalUpdate {
	jeu.mutation.SetPassed(b)
	return jeu
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (jeu *JobEvalUpdate) SetNillablePassed(b *bool) *JobEvalUpdate {
	if b != nil {
		jeu.SetPassed(*b)
	}
	return jeu
}

// SetIssues sets the "issues" field.
func (jeu *JobEvalUpdate) SetIssues(m []models.Issue) *JobEvalUpdate {
	jeu.mutation.SetIssues(m)
	return jeu
}

// AppendIssues appends m to the "issues" field.
func (jeu *JobEvalUpdate) AppendIssues(m []models.Issue) *JobEvalUpdate {
	jeu.mutation.AppendIssues(m)
	return jeu
}

// ClearIssues clears the value of the "issues" field.
func (jeu *JobEvalUpdate) ClearIssues() *JobEvalUpdate {
	jeu.mutation.ClearIssues()
	return jeu
}

// SetFeedback sets the "feedback" field.
func (jeu *JobEvalUpdate) SetFeedback(s string) *JobEvalUpdate {
	jeu.mutation.SetFeedback(s)
	return jeu
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (jeu *JobEvalUpdate) SetNillableFeedback(s *string) *JobEvalUpdate {
	if s != nil {
		jeu.SetFeedback(*s)
	}
	return jeu
}

// ClearFeedback clears the value of the "feedback" field.
func (jeu *JobEvalUpdate) ClearFeedback() *JobEvalUpdate {
	jeu.mutation.ClearFeedback()
	return jeu
}

// SetFixedIssueIds sets the "fixed_issue_ids" field.
func (jeu *JobEvalUpdate) SetFixedIssueIds(s []string) *JobEvalUpdate {
	jeu.mutation.SetFixedIssueIds(s)
	return jeu
}

// AppendFixedIssueIds appends s to the "fixed_issue_ids" field.
func (jeu *JobEvalUpdate) AppendFixedIssueIds(s []string) *JobEvalUpdate {
	jeu.mutation.AppendFixedIssueIds(s)
	return jeu
}

// ClearFixedIssueIds clears the value of the "fixed_issue_ids" field.
func (jeu *JobEvalUpdate) ClearFixedIssueIds() *JobEvalUpdate {
	jeu.mutation.ClearFixedIssueIds()
	return jeu
}

// SetPersistingIssueIds sets the "persisting_issue_ids" field.
func (jeu *JobEvalUpdate) SetPersistingIssueIds(s []string) *JobEvalUpdate {
	jeu.mutation.SetPersistingIssueIds(s)
	return jeu
}

// AppendPersistingIssueIds appends s to the "persisting_issue_ids" field.
func (jeu *JobEvalUpdate) AppendPersistingIssueIds(s []string) *JobEvalUpdate {
	jeu.mutation.AppendPersistingIssueIds(s)
	return jeu
}

// ClearPersistingIssueIds clears the value of the "persisting_issue_ids" field.
func (jeu *JobEvalUpdate) ClearPersistingIssueIds() *JobEvalUpdate {
	jeu.mutation.ClearPersistingIssueIds()
	return jeu
}

// Mutation returns the JobEvalMutation object of the builder.
func (jeu *JobEvalUpdate) Mutation() *JobEvalMutation {
	return jeu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (jeu *JobEvalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, jeu.sqlSave, jeu.mutation, jeu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (jeu *JobEvalUpdate) SaveX(ctx context.Context) int {
	affected, err := jeu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (jeu *JobEvalUpdate) Exec(ctx context.Context) error {
	_, err := jeu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (jeu *JobEvalUpdate) ExecX(ctx context.Context) {
	if err := jeu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (jeu *JobEvalUpdate) check() error {
	if jeu.mutation.JobCleared() && len(jeu.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobEval.job"`)
	}
	if jeu.mutation.StepCleared() && len(jeu.mutation.StepIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobEval.step"`)
	}
	return nil
}

func (jeu *JobEvalUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := jeu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobeval.Table, jobeval.Columns, sqlgraph.NewFieldSpec(jobeval.FieldID, field.TypeString))
	if ps := jeu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := jeu.mutation.Iteration(); ok {
		_spec.SetField(jobeval.FieldIteration, field.TypeInt, value)
	}
	if value, ok := jeu.mutation.AddedIteration(); ok {
		_spec.AddField(jobeval.FieldIteration, field.TypeInt, value)
	}
	if value, ok := jeu.mutation.OverallScore(); ok {
		_spec.SetField(jobeval.FieldOverallScore, field.TypeInt, value)
	}
	if value, ok := jeu.mutation.AddedOverallScore(); ok {
		_spec.AddField(jobeval.FieldOverallScore, field.TypeInt, value)
	}
	if value, ok := jeu.mutation.ReadabilityScore(); ok {
		_spec.SetField(jobeval.FieldReadabilityScore, field.TypeInt, value)
	}
	if value, ok := jeu.mutation.AddedReadabilityScore(); ok {
		_spec.AddField(jobeval.FieldReadabilityScore, field.TypeInt, value)
	}
	if value, ok := jeu.mutation.SeoScore(); ok {
		_spec.SetField(jobeval.FieldSeoScore, field.TypeInt, value)
	}
	if value, ok := jeu.mutation.AddedSeoScore(); ok {
		_spec.AddField(jobeval.FieldSeoScore, field.TypeInt, value)
	}
	if value, ok := jeu.mutation.AccuracyScore(); ok {
		_spec.SetField(jobeval.FieldAccuracyScore, field.TypeInt, value)
	}
	if value, ok := jeu.mutation.AddedAccuracyScore(); ok {
		_spec.AddField(jobeval.FieldAccuracyScore, field.TypeInt, value)
	}
	if value, ok := jeu.mutation.EngagementScore(); ok {
		_spec.SetField(jobeval.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := jeu.mutation.AddedEngagementScore(); ok {
		_spec.AddField(jobeval.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := jeu.mutation.BrandVoiceScore(); ok {
		_spec.SetField(jobeval.FieldBrandVoiceScore, field.TypeInt, value)
	}
	if value, ok := jeu.mutation.AddedBrandVoiceScore(); ok {
		_spec.AddField(jobeval.FieldBrandVoiceScore, field.TypeInt, value)
	}
	if value, ok := jeu.mutation.Passed(); ok {
		_spec.SetField(jobeval.FieldPassed, field.TypeBool, value)
	}
	if value, ok := jeu.mutation.Issues(); ok {
		_spec.SetField(jobeval.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := jeu.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobeval.FieldIssues, value)
		})
	}
	if jeu.mutation.IssuesCleared() {
		_spec.ClearField(jobeval.FieldIssues, field.TypeJSON)
	}
	if value, ok := jeu.mutation.Feedback(); ok {
		_spec.SetField(jobeval.FieldFeedback, field.TypeString, value)
	}
	if jeu.mutation.FeedbackCleared() {
		_spec.ClearField(jobeval.FieldFeedback, field.TypeString)
	}
	if value, ok := jeu.mutation.FixedIssueIds(); ok {
		_spec.SetField(jobeval.FieldFixedIssueIds, field.TypeJSON, value)
	}
	if value, ok := jeu.mutation.AppendedFixedIssueIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobeval.FieldFixedIssueIds, value)
		})
	}
	if jeu.mutation.FixedIssueIdsCleared() {
		_spec.ClearField(jobeval.FieldFixedIssueIds, field.TypeJSON)
	}
	if value, ok := jeu.mutation.PersistingIssueIds(); ok {
		_spec.SetField(jobeval.FieldPersistingIssueIds, field.TypeJSON, value)
	}
	if value, ok := jeu.mutation.AppendedPersistingIssueIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobeval.FieldPersistingIssueIds, value)
		})
	}
	if jeu.mutation.PersistingIssueIdsCleared() {
		_spec.ClearField(jobeval.FieldPersistingIssueIds, field.TypeJSON)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, jeu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobeval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	jeu.mutation.done = true
	return n, nil
}

// JobEvalUpdateOne is the builder for updating a single JobEval entity.
type JobEvalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobEvalMutation
}

// SetIteration sets the "iteration" field.
func (jeuo *JobEvalUpdateOne) SetIteration(i int) *JobEvalUpdateOne {
	jeuo.mutation.ResetIteration()
	jeuo.mutation.SetIteration(i)
	return jeuo
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (jeuo *JobEvalUpdateOne) SetNillableIteration(i *int) *JobEvalUpdateOne {
	if i != nil {
		jeuo.SetIteration(*i)
	}
	return jeuo
}

// AddIteration adds i to the "iteration" field.
func (jeuo *JobEvalUpdateOne) AddIteration(i int) *JobEvalUpdateOne {
	jeuo.mutation.AddIteration(i)
	return jeuo
}

// SetOverallScore sets the "overall_score" field.
func (jeuo *JobEvalUpdateOne) SetOverallScore(i int) *JobEvalUpdateOne {
	jeuo.mutation.ResetOverallScore()
	jeuo.mutation.SetOverallScore(i)
	return jeuo
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (jeuo *JobEvalUpdateOne) SetNillableOverallScore(i *int) *JobEvalUpdateOne {
	if i != nil {
		jeuo.SetOverallScore(*i)
	}
	return jeuo
}

// AddOverallScore adds i to the "overall_score" field.
func (jeuo *JobEvalUpdateOne) AddOverallScore(i int) *JobEvalUpdateOne {
	jeuo.mutation.AddOverallScore(i)
	return jeuo
}

// SetReadabilityScore sets the "readability_score" field.
func (jeuo *JobEvalUpdateOne) SetReadabilityScore(i int) *JobEvalUpdateOne {
	jeuo.mutation.ResetReadabilityScore()
	jeuo.mutation.SetReadabilityScore(i)
	return jeuo
}

// SetNillableReadabilityScore sets the "readability_score" field if the given value is not nil.
func (jeuo *JobEvalUpdateOne) SetNillableReadabilityScore(i *int) *JobEvalUpdateOne {
	if i != nil {
		jeuo.SetReadabilityScore(*i)
	}
	return jeuo
}

// AddReadabilityScore adds i to the "readability_score" field.
func (jeuo *JobEvalUpdateOne) AddReadabilityScore(i int) *JobEvalUpdateOne {
	jeuo.mutation.AddReadabilityScore(i)
	return jeuo
}

// SetSeoScore sets the "seo_score" field.
func (jeuo *JobEvalUpdateOne) SetSeoScore(i int) *JobEvalUpdateOne {
	jeuo.mutation.ResetSeoScore()
	jeuo.mutation.SetSeoScore(i)
	return jeuo
}

// SetNillableSeoScore sets the "seo_score" field if the given value is not nil.
func (jeuo *JobEvalUpdateOne) SetNillableSeoScore(i *int) *JobEvalUpdateOne {
	if i != nil {
		jeuo.SetSeoScore(*i)
	}
	return jeuo
}

// AddSeoScore adds i to the "seo_score" field.
func (jeuo *JobEvalUpdateOne) AddSeoScore(i int) *JobEvalUpdateOne {
	jeuo.mutation.AddSeoScore(i)
	return jeuo
}

// SetAccuracyScore sets the "accuracy_score" field.
func (jeuo *JobEvalUpdateOne) SetAccuracyScore(i int) *JobEvalUpdateOne {
	jeuo.mutation.ResetAccuracyScore()
	jeuo.mutation.SetAccuracyScore(i)
	return jeuo
}

// SetNillableAccuracyScore sets the "accuracy_score" field if the given value is not nil.
func (jeuo *JobEvalUpdateOne) SetNillableAccuracyScore(i *int) *JobEvalUpdateOne {
	if i != nil {
		jeuo.SetAccuracyScore(*i)
	}
	return jeuo
}

// AddAccuracyScore adds i to the "accuracy_score" field.
func (jeuo *JobEvalUpdateOne) AddAccuracyScore(i int) *JobEvalUpdateOne {
	jeuo.mutation.AddAccuracyScore(i)
	return jeuo
}

// SetEngagementScore sets the "engagement_score" field.
func (jeuo *JobEvalUpdateOne) SetEngagementScore(i int) *JobEvalUpdateOne {
	jeuo.mutation.ResetEngagementScore()
	jeuo.mutation.SetEngagementScore(i)
	return jeuo
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (jeuo *JobEvalUpdateOne) SetNillableEngagementScore(i *int) *JobEvalUpdateOne {
	if i != nil {
		jeuo.SetEngagementScore(*i)
	}
	return jeuo
}

// AddEngagementScore adds i to the "engagement_score" field.
func (jeuo *JobEvalUpdateOne) AddEngagementScore(i int) *JobEvalUpdateOne {
	jeuo.mutation.AddEngagementScore(i)
	return jeuo
}

// SetBrandVoiceScore sets the "brand_voice_score" field.
func (jeuo *JobEvalUpdateOne) SetBrandVoiceScore(i int) *JobEvalUpdateOne {
	jeuo.mutation.ResetBrandVoiceScore()
	jeuo.mutation.SetBrandVoiceScore(i)
	return jeuo
}

// SetNillableBrandVoiceScore sets the "brand_voice_score" field if the given value is not nil.
func (jeuo *JobEvalUpdateOne) SetNillableBrandVoiceScore(i *int) *JobEvalUpdateOne {
	if i != nil {
		jeuo.SetBrandVoiceScore(*i)
	}
	return jeuo
}

// AddBrandVoiceScore adds i to the "brand_voice_score" field.
func (jeuo *JobEvalUpdateOne) AddBrandVoiceScore(i int) *JobEvalUpdateOne {
	jeuo.mutation.AddBrandVoiceScore(i)
	return jeuo
}

// SetPassed sets the "passed" field.
func (jeuo *JobEvalUpdateOne) SetPassed(b bool) *JobEvalUpdateOne {
	jeuo.mutation.SetPassed(b)
	return jeuo
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (jeuo *JobEvalUpdateOne) SetNillablePassed(b *bool) *JobEvalUpdateOne {
	if b != nil {
		jeuo.SetPassed(*b)
	}
	return jeuo
}

// SetIssues sets the "issues" field.
func (jeuo *JobEvalUpdateOne) SetIssues(m []models.Issue) *JobEvalUpdateOne {
	jeuo.mutation.SetIssues(m)
	return jeuo
}

// AppendIssues appends m to the "issues" field.
func (jeuo *JobEvalUpdateOne) AppendIssues(m []models.Issue) *JobEvalUpdateOne {
	jeuo.mutation.AppendIssues(m)
	return jeuo
}

// ClearIssues clears the value of the "issues" field.
func (jeuo *JobEvalUpdateOne) ClearIssues() *JobEvalUpdateOne {
	jeuo.mutation.ClearIssues()
	return jeuo
}

// SetFeedback sets the "feedback" field.
func (jeuo *JobEvalUpdateOne) SetFeedback(s string) *JobEvalUpdateOne {
	jeuo.mutation.SetFeedback(s)
	return jeuo
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (jeuo *JobEvalUpdateOne) SetNillableFeedback(s *string) *JobEvalUpdateOne {
	if s != nil {
		jeuo.SetFeedback(*s)
	}
	return jeuo
}

// ClearFeedback clears the value of the "feedback" field.
func (jeuo *JobEvalUpdateOne) ClearFeedback() *JobEvalUpdateOne {
	jeuo.mutation.ClearFeedback()
	return jeuo
}

// SetFixedIssueIds sets the "fixed_issue_ids" field.
func (jeuo *JobEvalUpdateOne) SetFixedIssueIds(s []string) *JobEvalUpdateOne {
	jeuo.mutation.SetFixedIssueIds(s)
	return jeuo
}

// AppendFixedIssueIds appends s to the "fixed_issue_ids" field.
func (jeuo *JobEvalUpdateOne) AppendFixedIssueIds(s []string) *JobEvalUpdateOne {
	jeuo.mutation.AppendFixedIssueIds(s)
	return jeuo
}

// ClearFixedIssueIds clears the value of the "fixed_issue_ids" field.
func (jeuo *JobEvalUpdateOne) ClearFixedIssueIds() *JobEvalUpdateOne {
	jeuo.mutation.ClearFixedIssueIds()
	return jeuo
}

// SetPersistingIssueIds sets the "persisting_issue_ids" field.
func (jeuo *JobEvalUpdateOne) SetPersistingIssueIds(s []string) *JobEvalUpdateOne {
	jeuo.mutation.SetPersistingIssueIds(s)
	return jeuo
}

// AppendPersistingIssueIds appends s to the "persisting_issue_ids" field.
func (jeuo *JobEvalUpdateOne) AppendPersistingIssueIds(s []string) *JobEvalUpdateOne {
	jeuo.mutation.AppendPersistingIssueIds(s)
	return jeuo
}

// ClearPersistingIssueIds clears the value of the "persisting_issue_ids" field.
func (jeuo *JobEvalUpdateOne) ClearPersistingIssueIds() *JobEvalUpdateOne {
	jeuo.mutation.ClearPersistingIssueIds()
	return jeuo
}

// Mutation returns the JobEvalMutation object of the builder.
func (jeuo *JobEvalUpdateOne) Mutation() *JobEvalMutation {
	return jeuo.mutation
}

// Where appends a list predicates to the JobEvalUpdate builder.
func (jeuo *JobEvalUpdateOne) Where(ps ...predicate.JobEval) *JobEvalUpdateOne {
	jeuo.mutation.Where(ps...)
	return jeuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (jeuo *JobEvalUpdateOne) Select(field string, fields ...string) *JobEvalUpdateOne {
	jeuo.fields = append([]string{field}, fields...)
	return jeuo
}

// Save executes the query and returns the updated JobEval entity.
func (jeuo *JobEvalUpdateOne) Save(ctx context.Context) (*JobEval, error) {
	return withHooks(ctx, jeuo.sqlSave, jeuo.mutation, jeuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (jeuo *JobEvalUpdateOne) SaveX(ctx context.Context) *JobEval {
	node, err := jeuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (jeuo *JobEvalUpdateOne) Exec(ctx context.Context) error {
	_, err := jeuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (jeuo *JobEvalUpdateOne) ExecX(ctx context.Context) {
	if err := jeuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (jeuo *JobEvalUpdateOne) check() error {
	if jeuo.mutation.JobCleared() && len(jeuo.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobEval.job"`)
	}
	if jeuo.mutation.StepCleared() && len(jeuo.mutation.StepIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobEval.step"`)
	}
	return nil
}

func (jeuo *JobEvalUpdateOne) sqlSave(ctx context.Context) (_node *JobEval, err error) {
	if err := jeuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobeval.Table, jobeval.Columns, sqlgraph.NewFieldSpec(jobeval.FieldID, field.TypeString))
	id, ok := jeuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobEval.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := jeuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobeval.FieldID)
		for _, f := range fields {
			if !jobeval.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobeval.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := jeuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := jeuo.mutation.Iteration(); ok {
		_spec.SetField(jobeval.FieldIteration, field.TypeInt, value)
	}
	if value, ok := jeuo.mutation.AddedIteration(); ok {
		_spec.AddField(jobeval.FieldIteration, field.TypeInt, value)
	}
	if value, ok := jeuo.mutation.OverallScore(); ok {
		_spec.SetField(jobeval.FieldOverallScore, field.TypeInt, value)
	}
	if value, ok := jeuo.mutation.AddedOverallScore(); ok {
		_spec.AddField(jobeval.FieldOverallScore, field.TypeInt, value)
	}
	if value, ok := jeuo.mutation.ReadabilityScore(); ok {
		_spec.SetField(jobeval.FieldReadabilityScore, field.TypeInt, value)
	}
	if value, ok := jeuo.mutation.AddedReadabilityScore(); ok {
		_spec.AddField(jobeval.FieldReadabilityScore, field.TypeInt, value)
	}
	if value, ok := jeuo.mutation.SeoScore(); ok {
		_spec.SetField(jobeval.FieldSeoScore, field.TypeInt, value)
	}
	if value, ok := jeuo.mutation.AddedSeoScore(); ok {
		_spec.AddField(jobeval.FieldSeoScore, field.TypeInt, value)
	}
	if value, ok := jeuo.mutation.AccuracyScore(); ok {
		_spec.SetField(jobeval.FieldAccuracyScore, field.TypeInt, value)
	}
	if value, ok := jeuo.mutation.AddedAccuracyScore(); ok {
		_spec.AddField(jobeval.FieldAccuracyScore, field.TypeInt, value)
	}
	if value, ok := jeuo.mutation.EngagementScore(); ok {
		_spec.SetField(jobeval.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := jeuo.mutation.AddedEngagementScore(); ok {
		_spec.AddField(jobeval.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := jeuo.mutation.BrandVoiceScore(); ok {
		_spec.SetField(jobeval.FieldBrandVoiceScore, field.TypeInt, value)
	}
	if value, ok := jeuo.mutation.AddedBrandVoiceScore(); ok {
		_spec.AddField(jobeval.FieldBrandVoiceScore, field.TypeInt, value)
	}
	if value, ok := jeuo.mutation.Passed(); ok {
		_spec.SetField(jobeval.FieldPassed, field.TypeBool, value)
	}
	if value, ok := jeuo.mutation.Issues(); ok {
		_spec.SetField(jobeval.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := jeuo.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobeval.FieldIssues, value)
		})
	}
	if jeuo.mutation.IssuesCleared() {
		_spec.ClearField(jobeval.FieldIssues, field.TypeJSON)
	}
	if value, ok := jeuo.mutation.Feedback(); ok {
		_spec.SetField(jobeval.FieldFeedback, field.TypeString, value)
	}
	if jeuo.mutation.FeedbackCleared() {
		_spec.ClearField(jobeval.FieldFeedback, field.TypeString)
	}
	if value, ok := jeuo.mutation.FixedIssueIds(); ok {
		_spec.SetField(jobeval.FieldFixedIssueIds, field.TypeJSON, value)
	}
	if value, ok := jeuo.mutation.AppendedFixedIssueIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobeval.FieldFixedIssueIds, value)
		})
	}
	if jeuo.mutation.FixedIssueIdsCleared() {
		_spec.ClearField(jobeval.FieldFixedIssueIds, field.TypeJSON)
	}
	if value, ok := jeuo.mutation.PersistingIssueIds(); ok {
		_spec.SetField(jobeval.FieldPersistingIssueIds, field.TypeJSON, value)
	}
	if value, ok := jeuo.mutation.AppendedPersistingIssueIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobeval.FieldPersistingIssueIds, value)
		})
	}
	if jeuo.mutation.PersistingIssueIdsCleared() {
		_spec.ClearField(jobeval.FieldPersistingIssueIds, field.TypeJSON)
	}
	_node = &JobEval{config: jeuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, jeuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobeval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	jeuo.mutation.done = true
	return _node, nil
}
