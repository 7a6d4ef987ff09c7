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

// JobEvalCreate is the builder for creating a JobEval entity.
type JobEvalCreate struct {
	config
	mutation *JobEvalMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (jec *JobEvalCreate) SetJobID(s string) *JobEvalCreate {
	jec.mutation.SetJobID(s)
	return jec
}

// SetStepID sets the "step_id" field.
func (jec *JobEvalCreate) SetStepID(s string) *JobEvalCreate {
	jec.mutation.SetStepID(s)
	return jec
}

// SetIteration sets the "iteration" field.
func (jec *JobEvalCreate) SetIteration(i int) *JobEvalCreate {
	jec.mutation.SetIteration(i)
	return jec
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (jec *JobEvalCreate) SetNillableIteration(i *int) *JobEvalCreate {
	if i != nil {
		jec.SetIteration(*i)
	}
	return jec
}

// SetOverallScore sets the "overall_score" field.
func (jec *JobEvalCreate) SetOverallScore(i int) *JobEvalCreate {
	jec.mutation.SetOverallScore(i)
	return jec
}

// SetReadabilityScore sets the "readability_score" field.
func (jec *JobEvalCreate) SetReadabilityScore(i int) *JobEvalCreate {
	jec.mutation.SetReadabilityScore(i)
	return jec
}

// SetSeoScore sets the "seo_score" field.
func (jec *JobEvalCreate) SetSeoScore(i int) *JobEvalCreate {
	jec.mutation.SetSeoScore(i)
	return jec
}

// SetAccuracyScore sets the "accuracy_score" field.
func (jec *JobEvalCreate) SetAccuracyScore(i int) *JobEvalCreate {
	jec.mutation.SetAccuracyScore(i)
	return jec
}

// SetEngagementScore sets the "engagement_score" field.
func (jec *JobEvalCreate) SetEngagementScore(i int) *JobEvalCreate {
	jec.mutation.SetEngagementScore(i)
	return jec
}

// SetBrandVoiceScore sets the "brand_voice_score" field.
func (jec *JobEvalCreate) SetBrandVoiceScore(i int) *JobEvalCreate {
	jec.mutation.SetBrandVoiceScore(i)
	return jec
}

// SetPassed sets the "passed" field.
func (jec *JobEvalCreate) SetPassed(b bool) *JobEvalCreate {
	jec.mutation.SetPassed(b)
	return jec
}

// SetIssues sets the "issues" field.
func (jec *JobEvalCreate) SetIssues(m []models.Issue) *JobEvalCreate {
	jec.mutation.SetIssues(m)
	return jec
}

// SetFeedback sets the "feedback" field.
func (jec *JobEvalCreate) SetFeedback(s string) *JobEvalCreate {
	jec.mutation.SetFeedback(s)
	return jec
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (jec *JobEvalCreate) SetNillableFeedback(s *string) *JobEvalCreate {
	if s != nil {
		jec.SetFeedback(*s)
	}
	return jec
}

// SetFixedIssueIds sets the "fixed_issue_ids" field.
func (jec *JobEvalCreate) SetFixedIssueIds(s []string) *JobEvalCreate {
	jec.mutation.SetFixedIssueIds(s)
	return jec
}

// SetPersistingIssueIds sets the "persisting_issue_ids" field.
func (jec *JobEvalCreate) SetPersistingIssueIds(s []string) *JobEvalCreate {
	jec.mutation.SetPersistingIssueIds(s)
	return jec
}

// SetCreatedAt sets the "created_at" field.
func (jec *JobEvalCreate) SetCreatedAt(t time.Time) *JobEvalCreate {
	jec.mutation.SetCreatedAt(t)
	return jec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (jec *JobEvalCreate) SetNillableCreatedAt(t *time.Time) *JobEvalCreate {
	if t != nil {
		jec.SetCreatedAt(*t)
	}
	return jec
}

// SetID sets the "id" field.
func (jec *JobEvalCreate) SetID(s string) *JobEvalCreate {
	jec.mutation.SetID(s)
	return jec
}

// SetJob sets the "job" edge to the Job entity.
func (jec *JobEvalCreate) SetJob(j *Job) *JobEvalCreate {
	return jec.SetJobID(j.ID)
}

// SetStep sets the "step" edge to the JobStep entity.
func (jec *JobEvalCreate) SetStep(j *JobStep) *JobEvalCreate {
	return jec.SetStepID(j.ID)
}

// Mutation returns the JobEvalMutation object of the builder.
func (jec *JobEvalCreate) Mutation() *JobEvalMutation {
	return jec.mutation
}

// Save creates the JobEval in the database.
func (jec *JobEvalCreate) Save(ctx context.Context) (*JobEval, error) {
	jec.defaults()
	return withHooks(ctx, jec.sqlSave, jec.mutation, jec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (jec *JobEvalCreate) SaveX(ctx context.Context) *JobEval {
	v, err := jec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (jec *JobEvalCreate) Exec(ctx context.Context) error {
	_, err := jec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (jec *JobEvalCreate) ExecX(ctx context.Context) {
	if err := jec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (jec *JobEvalCreate) defaults() {
	if _, ok := jec.mutation.Iteration(); !ok {
		v := jobeval.DefaultIteration
		jec.mutation.SetIteration(v)
	}
	if _, ok := jec.mutation.CreatedAt(); !ok {
		v := jobeval.DefaultCreatedAt()
		jec.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (jec *JobEvalCreate) check() error {
	if _, ok := jec.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "JobEval.job_id"`)}
	}
	if _, ok := jec.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "JobEval.step_id"`)}
	}
	if _, ok := jec.mutation.Iteration(); !ok {
		return &ValidationError{Name: "iteration", err: errors.New(`ent: missing required field "JobEval.iteration"`)}
	}
	if _, ok := jec.mutation.OverallScore(); !ok {
		return &ValidationError{Name: "overall_score", err: errors.New(`ent: missing required field "JobEval.overall_score"`)}
	}
	if _, ok := jec.mutation.ReadabilityScore(); !ok {
		return &ValidationError{Name: "readability_score", err: errors.New(`ent: missing required field "JobEval.readability_score"`)}
	}
	if _, ok := jec.mutation.SeoScore(); !ok {
		return &ValidationError{Name: "seo_score", err: errors.New(`ent: missing required field "JobEval.seo_score"`)}
	}
	if _, ok := jec.mutation.AccuracyScore(); !ok {
		return &ValidationError{Name: "accuracy_score", err: errors.New(`ent: missing required field "JobEval.accuracy_score"`)}
	}
	if _, ok := jec.mutation.EngagementScore(); !ok {
		return &ValidationError{Name: "engagement_score", err: errors.New(`ent: missing required field "JobEval.engagement_score"`)}
	}
	if _, ok := jec.mutation.BrandVoiceScore(); !ok {
		return &ValidationError{Name: "brand_voice_score", err: errors.New(`ent: missing required field "JobEval.brand_voice_score"`)}
	}
	if _, ok := jec.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "JobEval.passed"`)}
	}
	if _, ok := jec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "JobEval.created_at"`)}
	}
	if len(jec.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "JobEval.job"`)}
	}
	if len(jec.mutation.StepIDs()) == 0 {
		return &ValidationError{Name: "step", err: errors.New(`ent: missing required edge "JobEval.step"`)}
	}
	return nil
}

func (jec *JobEvalCreate) sqlSave(ctx context.Context) (*JobEval, error) {
	if err := jec.check(); err != nil {
		return nil, err
	}
	_node, _spec := jec.createSpec()
	if err := sqlgraph.CreateNode(ctx, jec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected JobEval.ID type: %T", _spec.ID.Value)
		}
	}
	jec.mutation.id = &_node.ID
	jec.mutation.done = true
	return _node, nil
}

func (jec *JobEvalCreate) createSpec() (*JobEval, *sqlgraph.CreateSpec) {
	var (
		_node = &JobEval{config: jec.config}
		_spec = sqlgraph.NewCreateSpec(jobeval.Table, sqlgraph.NewFieldSpec(jobeval.FieldID, field.TypeString))
	)
	if id, ok := jec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := jec.mutation.Iteration(); ok {
		_spec.SetField(jobeval.FieldIteration, field.TypeInt, value)
		_node.Iteration = value
	}
	if value, ok := jec.mutation.OverallScore(); ok {
		_spec.SetField(jobeval.FieldOverallScore, field.TypeInt, value)
		_node.OverallScore = value
	}
	if value, ok := jec.mutation.ReadabilityScore(); ok {
		_spec.SetField(jobeval.FieldReadabilityScore, field.TypeInt, value)
		_node.ReadabilityScore = value
	}
	if value, ok := jec.mutation.SeoScore(); ok {
		_spec.SetField(jobeval.FieldSeoScore, field.TypeInt, value)
		_node.SeoScore = value
	}
	if value, ok := jec.mutation.AccuracyScore(); ok {
		_spec.SetField(jobeval.FieldAccuracyScore, field.TypeInt, value)
		_node.AccuracyScore = value
	}
	if value, ok := jec.mutation.EngagementScore(); ok {
		_spec.SetField(jobeval.FieldEngagementScore, field.TypeInt, value)
		_node.EngagementScore = value
	}
	if value, ok := jec.mutation.BrandVoiceScore(); ok {
		_spec.SetField(jobeval.FieldBrandVoiceScore, field.TypeInt, value)
		_node.BrandVoiceScore = value
	}
	if value, ok := jec.mutation.Passed(); ok {
		_spec.SetField(jobeval.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := jec.mutation.Issues(); ok {
		_spec.SetField(jobeval.FieldIssues, field.TypeJSON, value)
		_node.Issues = value
	}
	if value, ok := jec.mutation.Feedback(); ok {
		_spec.SetField(jobeval.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := jec.mutation.FixedIssueIds(); ok {
		_spec.SetField(jobeval.FieldFixedIssueIds, field.TypeJSON, value)
		_node.FixedIssueIds = value
	}
	if value, ok := jec.mutation.PersistingIssueIds(); ok {
		_spec.SetField(jobeval.FieldPersistingIssueIds, field.TypeJSON, value)
		_node.PersistingIssueIds = value
	}
	if value, ok := jec.mutation.CreatedAt(); ok {
		_spec.SetField(jobeval.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := jec.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobeval.JobTable,
			Columns: []string{jobeval.JobColumn},
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
	if nodes := jec.mutation.StepIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobeval.StepTable,
			Columns: []string{jobeval.StepColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StepID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobEvalCreateBulk is the builder for creating many JobEval entities in bulk.
type JobEvalCreateBulk struct {
	config
	err      error
	builders []*JobEvalCreate
}

// Save creates the JobEval entities in the database.
func (jecb *JobEvalCreateBulk) Save(ctx context.Context) ([]*JobEval, error) {
	if jecb.err != nil {
		return nil, jecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(jecb.builders))
	nodes := make([]*JobEval, len(jecb.builders))
	mutators := make([]Mutator, len(jecb.builders))
	for i := range jecb.builders {
		func(i int, root context.Context) {
			builder := jecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobEvalMutation)
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
					_, err = mutators[i+1].Mutate(root, jecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, jecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, jecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (jecb *JobEvalCreateBulk) SaveX(ctx context.Context) []*JobEval {
	v, err := jecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (jecb *JobEvalCreateBulk) Exec(ctx context.Context) error {
	_, err := jecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (jecb *JobEvalCreateBulk) ExecX(ctx context.Context) {
	if err := jecb.Exec(ctx); err != nil {
		panic(err)
	}
}
