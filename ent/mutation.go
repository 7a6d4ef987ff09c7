// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/copymill/copymill/ent/job"
	"github.com/copymill/copymill/ent/jobeval"
	"github.com/copymill/copymill/ent/jobstep"
	"github.com/copymill/copymill/ent/persona"
	"github.com/copymill/copymill/ent/predicate"
	"github.com/copymill/copymill/ent/systemlog"
	"github.com/copymill/copymill/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeJob       = "Job"
	TypeJobEval   = "JobEval"
	TypeJobStep   = "JobStep"
	TypePersona   = "Persona"
	TypeSystemLog = "SystemLog"
)

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	keyword               *string
	status                *job.Status
	current_agent         *string
	current_iteration     *int
	addcurrent_iteration  *int
	max_iterations        *int
	addmax_iterations     *int
	total_tokens_used     *int
	addtotal_tokens_used  *int
	estimated_cost_usd    *float64
	addestimated_cost_usd *float64
	progress_percent      *int
	addprogress_percent   *int
	priority              *int
	addpriority           *int
	settings              *models.JobSettings
	final_output          *map[string]interface{}
	page_id               *string
	last_error            *string
	cancel_requested      *bool
	created_at            *time.Time
	started_at            *time.Time
	completed_at          *time.Time
	updated_at            *time.Time
	created_by            *string
	pod_id                *string
	heartbeat_at          *time.Time
	clearedFields         map[string]struct{}
	steps                 map[string]struct{}
	removedsteps          map[string]struct{}
	clearedsteps          bool
	evals                 map[string]struct{}
	removedevals          map[string]struct{}
	clearedevals          bool
	done                  bool
	oldValue              func(context.Context) (*Job, error)
	predicates            []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKeyword sets the "keyword" field.
func (m *JobMutation) SetKeyword(s string) {
	m.keyword = &s
}

// Keyword returns the value of the "keyword" field in the mutation.
func (m *JobMutation) Keyword() (r string, exists bool) {
	v := m.keyword
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyword returns the old "keyword" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldKeyword(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyword is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyword requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyword: %w", err)
	}
	return oldValue.Keyword, nil
}

// ResetKeyword resets all changes to the "keyword" field.
func (m *JobMutation) ResetKeyword() {
	m.keyword = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentAgent sets the "current_agent" field.
func (m *JobMutation) SetCurrentAgent(s string) {
	m.current_agent = &s
}

// CurrentAgent returns the value of the "current_agent" field in the mutation.
func (m *JobMutation) CurrentAgent() (r string, exists bool) {
	v := m.current_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentAgent returns the old "current_agent" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCurrentAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentAgent: %w", err)
	}
	return oldValue.CurrentAgent, nil
}

// ClearCurrentAgent clears the value of the "current_agent" field.
func (m *JobMutation) ClearCurrentAgent() {
	m.current_agent = nil
	m.clearedFields[job.FieldCurrentAgent] = struct{}{}
}

// CurrentAgentCleared returns if the "current_agent" field was cleared in this mutation.
func (m *JobMutation) CurrentAgentCleared() bool {
	_, ok := m.clearedFields[job.FieldCurrentAgent]
	return ok
}

// ResetCurrentAgent resets all changes to the "current_agent" field.
func (m *JobMutation) ResetCurrentAgent() {
	m.current_agent = nil
	delete(m.clearedFields, job.FieldCurrentAgent)
}

// SetCurrentIteration sets the "current_iteration" field.
func (m *JobMutation) SetCurrentIteration(i int) {
	m.current_iteration = &i
	m.addcurrent_iteration = nil
}

// CurrentIteration returns the value of the "current_iteration" field in the mutation.
func (m *JobMutation) CurrentIteration() (r int, exists bool) {
	v := m.current_iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentIteration returns the old "current_iteration" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCurrentIteration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentIteration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentIteration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentIteration: %w", err)
	}
	return oldValue.CurrentIteration, nil
}

// AddCurrentIteration adds i to the "current_iteration" field.
func (m *JobMutation) AddCurrentIteration(i int) {
	if m.addcurrent_iteration != nil {
		*m.addcurrent_iteration += i
	} else {
		m.addcurrent_iteration = &i
	}
}

// AddedCurrentIteration returns the value that was added to the "current_iteration" field in this mutation.
func (m *JobMutation) AddedCurrentIteration() (r int, exists bool) {
	v := m.addcurrent_iteration
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentIteration resets all changes to the "current_iteration" field.
func (m *JobMutation) ResetCurrentIteration() {
	m.current_iteration = nil
	m.addcurrent_iteration = nil
}

// SetMaxIterations sets the "max_iterations" field.
func (m *JobMutation) SetMaxIterations(i int) {
	m.max_iterations = &i
	m.addmax_iterations = nil
}

// MaxIterations returns the value of the "max_iterations" field in the mutation.
func (m *JobMutation) MaxIterations() (r int, exists bool) {
	v := m.max_iterations
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxIterations returns the old "max_iterations" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMaxIterations(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxIterations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxIterations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxIterations: %w", err)
	}
	return oldValue.MaxIterations, nil
}

// AddMaxIterations adds i to the "max_iterations" field.
func (m *JobMutation) AddMaxIterations(i int) {
	if m.addmax_iterations != nil {
		*m.addmax_iterations += i
	} else {
		m.addmax_iterations = &i
	}
}

// AddedMaxIterations returns the value that was added to the "max_iterations" field in this mutation.
func (m *JobMutation) AddedMaxIterations() (r int, exists bool) {
	v := m.addmax_iterations
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxIterations resets all changes to the "max_iterations" field.
func (m *JobMutation) ResetMaxIterations() {
	m.max_iterations = nil
	m.addmax_iterations = nil
}

// SetTotalTokensUsed sets the "total_tokens_used" field.
func (m *JobMutation) SetTotalTokensUsed(i int) {
	m.total_tokens_used = &i
	m.addtotal_tokens_used = nil
}

// TotalTokensUsed returns the value of the "total_tokens_used" field in the mutation.
func (m *JobMutation) TotalTokensUsed() (r int, exists bool) {
	v := m.total_tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokensUsed returns the old "total_tokens_used" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTotalTokensUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokensUsed: %w", err)
	}
	return oldValue.TotalTokensUsed, nil
}

// AddTotalTokensUsed adds i to the "total_tokens_used" field.
func (m *JobMutation) AddTotalTokensUsed(i int) {
	if m.addtotal_tokens_used != nil {
		*m.addtotal_tokens_used += i
	} else {
		m.addtotal_tokens_used = &i
	}
}

// AddedTotalTokensUsed returns the value that was added to the "total_tokens_used" field in this mutation.
func (m *JobMutation) AddedTotalTokensUsed() (r int, exists bool) {
	v := m.addtotal_tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokensUsed resets all changes to the "total_tokens_used" field.
func (m *JobMutation) ResetTotalTokensUsed() {
	m.total_tokens_used = nil
	m.addtotal_tokens_used = nil
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (m *JobMutation) SetEstimatedCostUsd(f float64) {
	m.estimated_cost_usd = &f
	m.addestimated_cost_usd = nil
}

// EstimatedCostUsd returns the value of the "estimated_cost_usd" field in the mutation.
func (m *JobMutation) EstimatedCostUsd() (r float64, exists bool) {
	v := m.estimated_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedCostUsd returns the old "estimated_cost_usd" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldEstimatedCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedCostUsd: %w", err)
	}
	return oldValue.EstimatedCostUsd, nil
}

// AddEstimatedCostUsd adds f to the "estimated_cost_usd" field.
func (m *JobMutation) AddEstimatedCostUsd(f float64) {
	if m.addestimated_cost_usd != nil {
		*m.addestimated_cost_usd += f
	} else {
		m.addestimated_cost_usd = &f
	}
}

// AddedEstimatedCostUsd returns the value that was added to the "estimated_cost_usd" field in this mutation.
func (m *JobMutation) AddedEstimatedCostUsd() (r float64, exists bool) {
	v := m.addestimated_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedCostUsd resets all changes to the "estimated_cost_usd" field.
func (m *JobMutation) ResetEstimatedCostUsd() {
	m.estimated_cost_usd = nil
	m.addestimated_cost_usd = nil
}

// SetProgressPercent sets the "progress_percent" field.
func (m *JobMutation) SetProgressPercent(i int) {
	m.progress_percent = &i
	m.addprogress_percent = nil
}

// ProgressPercent returns the value of the "progress_percent" field in the mutation.
func (m *JobMutation) ProgressPercent() (r int, exists bool) {
	v := m.progress_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressPercent returns the old "progress_percent" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldProgressPercent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressPercent: %w", err)
	}
	return oldValue.ProgressPercent, nil
}

// AddProgressPercent adds i to the "progress_percent" field.
func (m *JobMutation) AddProgressPercent(i int) {
	if m.addprogress_percent != nil {
		*m.addprogress_percent += i
	} else {
		m.addprogress_percent = &i
	}
}

// AddedProgressPercent returns the value that was added to the "progress_percent" field in this mutation.
func (m *JobMutation) AddedProgressPercent() (r int, exists bool) {
	v := m.addprogress_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgressPercent resets all changes to the "progress_percent" field.
func (m *JobMutation) ResetProgressPercent() {
	m.progress_percent = nil
	m.addprogress_percent = nil
}

// SetPriority sets the "priority" field.
func (m *JobMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *JobMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *JobMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *JobMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *JobMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetSettings sets the "settings" field.
func (m *JobMutation) SetSettings(ms models.JobSettings) {
	m.settings = &ms
}

// Settings returns the value of the "settings" field in the mutation.
func (m *JobMutation) Settings() (r models.JobSettings, exists bool) {
	v := m.settings
	if v == nil {
		return
	}
	return *v, true
}

// OldSettings returns the old "settings" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSettings(ctx context.Context) (v models.JobSettings, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettings: %w", err)
	}
	return oldValue.Settings, nil
}

// ResetSettings resets all changes to the "settings" field.
func (m *JobMutation) ResetSettings() {
	m.settings = nil
}

// SetFinalOutput sets the "final_output" field.
func (m *JobMutation) SetFinalOutput(value map[string]interface{}) {
	m.final_output = &value
}

// FinalOutput returns the value of the "final_output" field in the mutation.
func (m *JobMutation) FinalOutput() (r map[string]interface{}, exists bool) {
	v := m.final_output
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalOutput returns the old "final_output" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldFinalOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalOutput: %w", err)
	}
	return oldValue.FinalOutput, nil
}

// ClearFinalOutput clears the value of the "final_output" field.
func (m *JobMutation) ClearFinalOutput() {
	m.final_output = nil
	m.clearedFields[job.FieldFinalOutput] = struct{}{}
}

// FinalOutputCleared returns if the "final_output" field was cleared in this mutation.
func (m *JobMutation) FinalOutputCleared() bool {
	_, ok := m.clearedFields[job.FieldFinalOutput]
	return ok
}

// ResetFinalOutput resets all changes to the "final_output" field.
func (m *JobMutation) ResetFinalOutput() {
	m.final_output = nil
	delete(m.clearedFields, job.FieldFinalOutput)
}

// SetPageID sets the "page_id" field.
func (m *JobMutation) SetPageID(s string) {
	m.page_id = &s
}

// PageID returns the value of the "page_id" field in the mutation.
func (m *JobMutation) PageID() (r string, exists bool) {
	v := m.page_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPageID returns the old "page_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageID: %w", err)
	}
	return oldValue.PageID, nil
}

// ClearPageID clears the value of the "page_id" field.
func (m *JobMutation) ClearPageID() {
	m.page_id = nil
	m.clearedFields[job.FieldPageID] = struct{}{}
}

// PageIDCleared returns if the "page_id" field was cleared in this mutation.
func (m *JobMutation) PageIDCleared() bool {
	_, ok := m.clearedFields[job.FieldPageID]
	return ok
}

// ResetPageID resets all changes to the "page_id" field.
func (m *JobMutation) ResetPageID() {
	m.page_id = nil
	delete(m.clearedFields, job.FieldPageID)
}

// SetLastError sets the "last_error" field.
func (m *JobMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *JobMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *JobMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[job.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *JobMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[job.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *JobMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, job.FieldLastError)
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *JobMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *JobMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *JobMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *JobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[job.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, job.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *JobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[job.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, job.FieldCompletedAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *JobMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *JobMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *JobMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[job.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *JobMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[job.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *JobMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, job.FieldCreatedBy)
}

// SetPodID sets the "pod_id" field.
func (m *JobMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *JobMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *JobMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[job.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *JobMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[job.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *JobMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, job.FieldPodID)
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (m *JobMutation) SetHeartbeatAt(t time.Time) {
	m.heartbeat_at = &t
}

// HeartbeatAt returns the value of the "heartbeat_at" field in the mutation.
func (m *JobMutation) HeartbeatAt() (r time.Time, exists bool) {
	v := m.heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatAt returns the old "heartbeat_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatAt: %w", err)
	}
	return oldValue.HeartbeatAt, nil
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (m *JobMutation) ClearHeartbeatAt() {
	m.heartbeat_at = nil
	m.clearedFields[job.FieldHeartbeatAt] = struct{}{}
}

// HeartbeatAtCleared returns if the "heartbeat_at" field was cleared in this mutation.
func (m *JobMutation) HeartbeatAtCleared() bool {
	_, ok := m.clearedFields[job.FieldHeartbeatAt]
	return ok
}

// ResetHeartbeatAt resets all changes to the "heartbeat_at" field.
func (m *JobMutation) ResetHeartbeatAt() {
	m.heartbeat_at = nil
	delete(m.clearedFields, job.FieldHeartbeatAt)
}

// AddStepIDs adds the "steps" edge to the JobStep entity by ids.
func (m *JobMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the JobStep entity.
func (m *JobMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the JobStep entity was cleared.
func (m *JobMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the JobStep entity by IDs.
func (m *JobMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the JobStep entity.
func (m *JobMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *JobMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *JobMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// AddEvalIDs adds the "evals" edge to the JobEval entity by ids.
func (m *JobMutation) AddEvalIDs(ids ...string) {
	if m.evals == nil {
		m.evals = make(map[string]struct{})
	}
	for i := range ids {
		m.evals[ids[i]] = struct{}{}
	}
}

// ClearEvals clears the "evals" edge to the JobEval entity.
func (m *JobMutation) ClearEvals() {
	m.clearedevals = true
}

// EvalsCleared reports if the "evals" edge to the JobEval entity was cleared.
func (m *JobMutation) EvalsCleared() bool {
	return m.clearedevals
}

// RemoveEvalIDs removes the "evals" edge to the JobEval entity by IDs.
func (m *JobMutation) RemoveEvalIDs(ids ...string) {
	if m.removedevals == nil {
		m.removedevals = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.evals, ids[i])
		m.removedevals[ids[i]] = struct{}{}
	}
}

// RemovedEvals returns the removed IDs of the "evals" edge to the JobEval entity.
func (m *JobMutation) RemovedEvalsIDs() (ids []string) {
	for id := range m.removedevals {
		ids = append(ids, id)
	}
	return
}

// EvalsIDs returns the "evals" edge IDs in the mutation.
func (m *JobMutation) EvalsIDs() (ids []string) {
	for id := range m.evals {
		ids = append(ids, id)
	}
	return
}

// ResetEvals resets all changes to the "evals" edge.
func (m *JobMutation) ResetEvals() {
	m.evals = nil
	m.clearedevals = false
	m.removedevals = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.keyword != nil {
		fields = append(fields, job.FieldKeyword)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.current_agent != nil {
		fields = append(fields, job.FieldCurrentAgent)
	}
	if m.current_iteration != nil {
		fields = append(fields, job.FieldCurrentIteration)
	}
	if m.max_iterations != nil {
		fields = append(fields, job.FieldMaxIterations)
	}
	if m.total_tokens_used != nil {
		fields = append(fields, job.FieldTotalTokensUsed)
	}
	if m.estimated_cost_usd != nil {
		fields = append(fields, job.FieldEstimatedCostUsd)
	}
	if m.progress_percent != nil {
		fields = append(fields, job.FieldProgressPercent)
	}
	if m.priority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.settings != nil {
		fields = append(fields, job.FieldSettings)
	}
	if m.final_output != nil {
		fields = append(fields, job.FieldFinalOutput)
	}
	if m.page_id != nil {
		fields = append(fields, job.FieldPageID)
	}
	if m.last_error != nil {
		fields = append(fields, job.FieldLastError)
	}
	if m.cancel_requested != nil {
		fields = append(fields, job.FieldCancelRequested)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, job.FieldCompletedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, job.FieldCreatedBy)
	}
	if m.pod_id != nil {
		fields = append(fields, job.FieldPodID)
	}
	if m.heartbeat_at != nil {
		fields = append(fields, job.FieldHeartbeatAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldKeyword:
		return m.Keyword()
	case job.FieldStatus:
		return m.Status()
	case job.FieldCurrentAgent:
		return m.CurrentAgent()
	case job.FieldCurrentIteration:
		return m.CurrentIteration()
	case job.FieldMaxIterations:
		return m.MaxIterations()
	case job.FieldTotalTokensUsed:
		return m.TotalTokensUsed()
	case job.FieldEstimatedCostUsd:
		return m.EstimatedCostUsd()
	case job.FieldProgressPercent:
		return m.ProgressPercent()
	case job.FieldPriority:
		return m.Priority()
	case job.FieldSettings:
		return m.Settings()
	case job.FieldFinalOutput:
		return m.FinalOutput()
	case job.FieldPageID:
		return m.PageID()
	case job.FieldLastError:
		return m.LastError()
	case job.FieldCancelRequested:
		return m.CancelRequested()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldStartedAt:
		return m.StartedAt()
	case job.FieldCompletedAt:
		return m.CompletedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	case job.FieldCreatedBy:
		return m.CreatedBy()
	case job.FieldPodID:
		return m.PodID()
	case job.FieldHeartbeatAt:
		return m.HeartbeatAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldKeyword:
		return m.OldKeyword(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldCurrentAgent:
		return m.OldCurrentAgent(ctx)
	case job.FieldCurrentIteration:
		return m.OldCurrentIteration(ctx)
	case job.FieldMaxIterations:
		return m.OldMaxIterations(ctx)
	case job.FieldTotalTokensUsed:
		return m.OldTotalTokensUsed(ctx)
	case job.FieldEstimatedCostUsd:
		return m.OldEstimatedCostUsd(ctx)
	case job.FieldProgressPercent:
		return m.OldProgressPercent(ctx)
	case job.FieldPriority:
		return m.OldPriority(ctx)
	case job.FieldSettings:
		return m.OldSettings(ctx)
	case job.FieldFinalOutput:
		return m.OldFinalOutput(ctx)
	case job.FieldPageID:
		return m.OldPageID(ctx)
	case job.FieldLastError:
		return m.OldLastError(ctx)
	case job.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case job.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case job.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case job.FieldPodID:
		return m.OldPodID(ctx)
	case job.FieldHeartbeatAt:
		return m.OldHeartbeatAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldKeyword:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyword(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldCurrentAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentAgent(v)
		return nil
	case job.FieldCurrentIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentIteration(v)
		return nil
	case job.FieldMaxIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxIterations(v)
		return nil
	case job.FieldTotalTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokensUsed(v)
		return nil
	case job.FieldEstimatedCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedCostUsd(v)
		return nil
	case job.FieldProgressPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressPercent(v)
		return nil
	case job.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case job.FieldSettings:
		v, ok := value.(models.JobSettings)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettings(v)
		return nil
	case job.FieldFinalOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalOutput(v)
		return nil
	case job.FieldPageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageID(v)
		return nil
	case job.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case job.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case job.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case job.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case job.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case job.FieldHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_iteration != nil {
		fields = append(fields, job.FieldCurrentIteration)
	}
	if m.addmax_iterations != nil {
		fields = append(fields, job.FieldMaxIterations)
	}
	if m.addtotal_tokens_used != nil {
		fields = append(fields, job.FieldTotalTokensUsed)
	}
	if m.addestimated_cost_usd != nil {
		fields = append(fields, job.FieldEstimatedCostUsd)
	}
	if m.addprogress_percent != nil {
		fields = append(fields, job.FieldProgressPercent)
	}
	if m.addpriority != nil {
		fields = append(fields, job.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldCurrentIteration:
		return m.AddedCurrentIteration()
	case job.FieldMaxIterations:
		return m.AddedMaxIterations()
	case job.FieldTotalTokensUsed:
		return m.AddedTotalTokensUsed()
	case job.FieldEstimatedCostUsd:
		return m.AddedEstimatedCostUsd()
	case job.FieldProgressPercent:
		return m.AddedProgressPercent()
	case job.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldCurrentIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentIteration(v)
		return nil
	case job.FieldMaxIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxIterations(v)
		return nil
	case job.FieldTotalTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokensUsed(v)
		return nil
	case job.FieldEstimatedCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedCostUsd(v)
		return nil
	case job.FieldProgressPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgressPercent(v)
		return nil
	case job.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldCurrentAgent) {
		fields = append(fields, job.FieldCurrentAgent)
	}
	if m.FieldCleared(job.FieldFinalOutput) {
		fields = append(fields, job.FieldFinalOutput)
	}
	if m.FieldCleared(job.FieldPageID) {
		fields = append(fields, job.FieldPageID)
	}
	if m.FieldCleared(job.FieldLastError) {
		fields = append(fields, job.FieldLastError)
	}
	if m.FieldCleared(job.FieldStartedAt) {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.FieldCleared(job.FieldCompletedAt) {
		fields = append(fields, job.FieldCompletedAt)
	}
	if m.FieldCleared(job.FieldCreatedBy) {
		fields = append(fields, job.FieldCreatedBy)
	}
	if m.FieldCleared(job.FieldPodID) {
		fields = append(fields, job.FieldPodID)
	}
	if m.FieldCleared(job.FieldHeartbeatAt) {
		fields = append(fields, job.FieldHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldCurrentAgent:
		m.ClearCurrentAgent()
		return nil
	case job.FieldFinalOutput:
		m.ClearFinalOutput()
		return nil
	case job.FieldPageID:
		m.ClearPageID()
		return nil
	case job.FieldLastError:
		m.ClearLastError()
		return nil
	case job.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case job.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case job.FieldPodID:
		m.ClearPodID()
		return nil
	case job.FieldHeartbeatAt:
		m.ClearHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldKeyword:
		m.ResetKeyword()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldCurrentAgent:
		m.ResetCurrentAgent()
		return nil
	case job.FieldCurrentIteration:
		m.ResetCurrentIteration()
		return nil
	case job.FieldMaxIterations:
		m.ResetMaxIterations()
		return nil
	case job.FieldTotalTokensUsed:
		m.ResetTotalTokensUsed()
		return nil
	case job.FieldEstimatedCostUsd:
		m.ResetEstimatedCostUsd()
		return nil
	case job.FieldProgressPercent:
		m.ResetProgressPercent()
		return nil
	case job.FieldPriority:
		m.ResetPriority()
		return nil
	case job.FieldSettings:
		m.ResetSettings()
		return nil
	case job.FieldFinalOutput:
		m.ResetFinalOutput()
		return nil
	case job.FieldPageID:
		m.ResetPageID()
		return nil
	case job.FieldLastError:
		m.ResetLastError()
		return nil
	case job.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case job.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case job.FieldPodID:
		m.ResetPodID()
		return nil
	case job.FieldHeartbeatAt:
		m.ResetHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.steps != nil {
		edges = append(edges, job.EdgeSteps)
	}
	if m.evals != nil {
		edges = append(edges, job.EdgeEvals)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeEvals:
		ids := make([]ent.Value, 0, len(m.evals))
		for id := range m.evals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsteps != nil {
		edges = append(edges, job.EdgeSteps)
	}
	if m.removedevals != nil {
		edges = append(edges, job.EdgeEvals)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeEvals:
		ids := make([]ent.Value, 0, len(m.removedevals))
		for id := range m.removedevals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsteps {
		edges = append(edges, job.EdgeSteps)
	}
	if m.clearedevals {
		edges = append(edges, job.EdgeEvals)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeSteps:
		return m.clearedsteps
	case job.EdgeEvals:
		return m.clearedevals
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeSteps:
		m.ResetSteps()
		return nil
	case job.EdgeEvals:
		m.ResetEvals()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// JobEvalMutation represents an operation that mutates the JobEval nodes in the graph.
type JobEvalMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	iteration                  *int
	additeration               *int
	overall_score              *int
	addoverall_score           *int
	readability_score          *int
	addreadability_score       *int
	seo_score                  *int
	addseo_score               *int
	accuracy_score             *int
	addaccuracy_score          *int
	engagement_score           *int
	addengagement_score        *int
	brand_voice_score          *int
	addbrand_voice_score       *int
	passed                     *bool
	issues                     *[]models.Issue
	appendissues               []models.Issue
	feedback                   *string
	fixed_issue_ids            *[]string
	appendfixed_issue_ids      []string
	persisting_issue_ids       *[]string
	appendpersisting_issue_ids []string
	created_at                 *time.Time
	clearedFields              map[string]struct{}
	job                        *string
	clearedjob                 bool
	step                       *string
	clearedstep                bool
	done                       bool
	oldValue                   func(context.Context) (*JobEval, error)
	predicates                 []predicate.JobEval
}

var _ ent.Mutation = (*JobEvalMutation)(nil)

// jobevalOption allows management of the mutation configuration using functional options.
type jobevalOption func(*JobEvalMutation)

// newJobEvalMutation creates new mutation for the JobEval entity.
func newJobEvalMutation(c config, op Op, opts ...jobevalOption) *JobEvalMutation {
	m := &JobEvalMutation{
		config:        c,
		op:            op,
		typ:           TypeJobEval,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobEvalID sets the ID field of the mutation.
func withJobEvalID(id string) jobevalOption {
	return func(m *JobEvalMutation) {
		var (
			err   error
			once  sync.Once
			value *JobEval
		)
		m.oldValue = func(ctx context.Context) (*JobEval, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobEval.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobEval sets the old JobEval of the mutation.
func withJobEval(node *JobEval) jobevalOption {
	return func(m *JobEvalMutation) {
		m.oldValue = func(context.Context) (*JobEval, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobEvalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobEvalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobEval entities.
func (m *JobEvalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobEvalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobEvalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobEval.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobEvalMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobEvalMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the JobEval entity.
// If the JobEval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobEvalMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobEvalMutation) ResetJobID() {
	m.job = nil
}

// SetStepID sets the "step_id" field.
func (m *JobEvalMutation) SetStepID(s string) {
	m.step = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *JobEvalMutation) StepID() (r string, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the JobEval entity.
// If the JobEval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobEvalMutation) OldStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ResetStepID resets all changes to the "step_id" field.
func (m *JobEvalMutation) ResetStepID() {
	m.step = nil
}

// SetIteration sets the "iteration" field.
func (m *JobEvalMutation) SetIteration(i int) {
	m.iteration = &i
	m.additeration = nil
}

// Iteration returns the value of the "iteration" field in the mutation.
func (m *JobEvalMutation) Iteration() (r int, exists bool) {
	v := m.iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldIteration returns the old "iteration" field's value of the JobEval entity.
// If the JobEval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobEvalMutation) OldIteration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIteration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIteration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIteration: %w", err)
	}
	return oldValue.Iteration, nil
}

// AddIteration adds i to the "iteration" field.
func (m *JobEvalMutation) AddIteration(i int) {
	if m.additeration != nil {
		*m.additeration += i
	} else {
		m.additeration = &i
	}
}

// AddedIteration returns the value that was added to the "iteration" field in this mutation.
func (m *JobEvalMutation) AddedIteration() (r int, exists bool) {
	v := m.additeration
	if v == nil {
		return
	}
	return *v, true
}

// ResetIteration resets all changes to the "iteration" field.
func (m *JobEvalMutation) ResetIteration() {
	m.iteration = nil
	m.additeration = nil
}

// SetOverallScore sets the "overall_score" field.
func (m *JobEvalMutation) SetOverallScore(i int) {
	m.overall_score = &i
	m.addoverall_score = nil
}

// OverallScore returns the value of the "overall_score" field in the mutation.
func (m *JobEvalMutation) OverallScore() (r int, exists bool) {
	v := m.overall_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallScore returns the old "overall_score" field's value of the JobEval entity.
// If the JobEval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobEvalMutation) OldOverallScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallScore: %w", err)
	}
	return oldValue.OverallScore, nil
}

// AddOverallScore adds i to the "overall_score" field.
func (m *JobEvalMutation) AddOverallScore(i int) {
	if m.addoverall_score != nil {
		*m.addoverall_score += i
	} else {
		m.addoverall_score = &i
	}
}

// AddedOverallScore returns the value that was added to the "overall_score" field in this mutation.
func (m *JobEvalMutation) AddedOverallScore() (r int, exists bool) {
	v := m.addoverall_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallScore resets all changes to the "overall_score" field.
func (m *JobEvalMutation) ResetOverallScore() {
	m.overall_score = nil
	m.addoverall_score = nil
}

// SetReadabilityScore sets the "readability_score" field.
func (m *JobEvalMutation) SetReadabilityScore(i int) {
	m.readability_score = &i
	m.addreadability_score = nil
}

// ReadabilityScore returns the value of the "readability_score" field in the mutation.
func (m *JobEvalMutation) ReadabilityScore() (r int, exists bool) {
	v := m.readability_score
	if v == nil {
		return
	}
	return *v, true
}

// OldReadabilityScore returns the old "readability_score" field's value of the JobEval entity.
// If the JobEval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobEvalMutation) OldReadabilityScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadabilityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadabilityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadabilityScore: %w", err)
	}
	return oldValue.ReadabilityScore, nil
}

// AddReadabilityScore adds i to the "readability_score" field.
func (m *JobEvalMutation) AddReadabilityScore(i int) {
	if m.addreadability_score != nil {
		*m.addreadability_score += i
	} else {
		m.addreadability_score = &i
	}
}

// AddedReadabilityScore returns the value that was added to the "readability_score" field in this mutation.
func (m *JobEvalMutation) AddedReadabilityScore() (r int, exists bool) {
	v := m.addreadability_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetReadabilityScore resets all changes to the "readability_score" field.
func (m *JobEvalMutation) ResetReadabilityScore() {
	m.readability_score = nil
	m.addreadability_score = nil
}

// SetSeoScore sets the "seo_score" field.
func (m *JobEvalMutation) SetSeoScore(i int) {
	m.seo_score = &i
	m.addseo_score = nil
}

// SeoScore returns the value of the "seo_score" field in the mutation.
func (m *JobEvalMutation) SeoScore() (r int, exists bool) {
	v := m.seo_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSeoScore returns the old "seo_score" field's value of the JobEval entity.
// If the JobEval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobEvalMutation) OldSeoScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeoScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeoScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeoScore: %w", err)
	}
	return oldValue.SeoScore, nil
}

// AddSeoScore adds i to the "seo_score" field.
func (m *JobEvalMutation) AddSeoScore(i int) {
	if m.addseo_score != nil {
		*m.addseo_score += i
	} else {
		m.addseo_score = &i
	}
}

// AddedSeoScore returns the value that was added to the "seo_score" field in this mutation.
func (m *JobEvalMutation) AddedSeoScore() (r int, exists bool) {
	v := m.addseo_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeoScore resets all changes to the "seo_score" field.
func (m *JobEvalMutation) ResetSeoScore() {
	m.seo_score = nil
	m.addseo_score = nil
}

// SetAccuracyScore sets the "accuracy_score" field.
func (m *JobEvalMutation) SetAccuracyScore(i int) {
	m.accuracy_score = &i
	m.addaccuracy_score = nil
}

// AccuracyScore returns the value of the "accuracy_score" field in the mutation.
func (m *JobEvalMutation) AccuracyScore() (r int, exists bool) {
	v := m.accuracy_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAccuracyScore returns the old "accuracy_score" field's value of the JobEval entity.
// If the JobEval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobEvalMutation) OldAccuracyScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccuracyScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccuracyScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccuracyScore: %w", err)
	}
	return oldValue.AccuracyScore, nil
}

// AddAccuracyScore adds i to the "accuracy_score" field.
func (m *JobEvalMutation) AddAccuracyScore(i int) {
	if m.addaccuracy_score != nil {
		*m.addaccuracy_score += i
	} else {
		m.addaccuracy_score = &i
	}
}

// AddedAccuracyScore returns the value that was added to the "accuracy_score" field in this mutation.
func (m *JobEvalMutation) AddedAccuracyScore() (r int, exists bool) {
	v := m.addaccuracy_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccuracyScore resets all changes to the "accuracy_score" field.
func (m *JobEvalMutation) ResetAccuracyScore() {
	m.accuracy_score = nil
	m.addaccuracy_score = nil
}

// SetEngagementScore sets the "engagement_score" field.
func (m *JobEvalMutation) SetEngagementScore(i int) {
	m.engagement_score = &i
	m.addengagement_score = nil
}

// EngagementScore returns the value of the "engagement_score" field in the mutation.
func (m *JobEvalMutation) EngagementScore() (r int, exists bool) {
	v := m.engagement_score
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementScore returns the old "engagement_score" field's value of the JobEval entity.
// If the JobEval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobEvalMutation) OldEngagementScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementScore: %w", err)
	}
	return oldValue.EngagementScore, nil
}

// AddEngagementScore adds i to the "engagement_score" field.
func (m *JobEvalMutation) AddEngagementScore(i int) {
	if m.addengagement_score != nil {
		*m.addengagement_score += i
	} else {
		m.addengagement_score = &i
	}
}

// AddedEngagementScore returns the value that was added to the "engagement_score" field in this mutation.
func (m *JobEvalMutation) AddedEngagementScore() (r int, exists bool) {
	v := m.addengagement_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetEngagementScore resets all changes to the "engagement_score" field.
func (m *JobEvalMutation) ResetEngagementScore() {
	m.engagement_score = nil
	m.addengagement_score = nil
}

// SetBrandVoiceScore sets the "brand_voice_score" field.
func (m *JobEvalMutation) SetBrandVoiceScore(i int) {
	m.brand_voice_score = &i
	m.addbrand_voice_score = nil
}

// BrandVoiceScore returns the value of the "brand_voice_score" field in the mutation.
func (m *JobEvalMutation) BrandVoiceScore() (r int, exists bool) {
	v := m.brand_voice_score
	if v == nil {
		return
	}
	return *v, true
}

// OldBrandVoiceScore returns the old "brand_voice_score" field's value of the JobEval entity.
// If the JobEval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobEvalMutation) OldBrandVoiceScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrandVoiceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrandVoiceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrandVoiceScore: %w", err)
	}
	return oldValue.BrandVoiceScore, nil
}

// AddBrandVoiceScore adds i to the "brand_voice_score" field.
func (m *JobEvalMutation) AddBrandVoiceScore(i int) {
	if m.addbrand_voice_score != nil {
		*m.addbrand_voice_score += i
	} else {
		m.addbrand_voice_score = &i
	}
}

// AddedBrandVoiceScore returns the value that was added to the "brand_voice_score" field in this mutation.
func (m *JobEvalMutation) AddedBrandVoiceScore() (r int, exists bool) {
	v := m.addbrand_voice_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetBrandVoiceScore resets all changes to the "brand_voice_score" field.
func (m *JobEvalMutation) ResetBrandVoiceScore() {
	m.brand_voice_score = nil
	m.addbrand_voice_score = nil
}

// SetPassed sets the "passed" field.
func (m *JobEvalMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *JobEvalMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the JobEval entity.
// If the JobEval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobEvalMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *JobEvalMutation) ResetPassed() {
	m.passed = nil
}

// SetIssues sets the "issues" field.
func (m *JobEvalMutation) SetIssues(value []models.Issue) {
	m.issues = &value
	m.appendissues = nil
}

// Issues returns the value of the "issues" field in the mutation.
func (m *JobEvalMutation) Issues() (r []models.Issue, exists bool) {
	v := m.issues
	if v == nil {
		return
	}
	return *v, true
}

// OldIssues returns the old "issues" field's value of the JobEval entity.
// If the JobEval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobEvalMutation) OldIssues(ctx context.Context) (v []models.Issue, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssues: %w", err)
	}
	return oldValue.Issues, nil
}

// AppendIssues adds value to the "issues" field.
func (m *JobEvalMutation) AppendIssues(value []models.Issue) {
	m.appendissues = append(m.appendissues, value...)
}

// AppendedIssues returns the list of values that were appended to the "issues" field in this mutation.
func (m *JobEvalMutation) AppendedIssues() ([]models.Issue, bool) {
	if len(m.appendissues) == 0 {
		return nil, false
	}
	return m.appendissues, true
}

// ClearIssues clears the value of the "issues" field.
func (m *JobEvalMutation) ClearIssues() {
	m.issues = nil
	m.appendissues = nil
	m.clearedFields[jobeval.FieldIssues] = struct{}{}
}

// IssuesCleared returns if the "issues" field was cleared in this mutation.
func (m *JobEvalMutation) IssuesCleared() bool {
	_, ok := m.clearedFields[jobeval.FieldIssues]
	return ok
}

// ResetIssues resets all changes to the "issues" field.
func (m *JobEvalMutation) ResetIssues() {
	m.issues = nil
	m.appendissues = nil
	delete(m.clearedFields, jobeval.FieldIssues)
}

// SetFeedback sets the "feedback" field.
func (m *JobEvalMutation) SetFeedback(s string) {
	m.feedback = &s
}

// Feedback returns the value of the "feedback" field in the mutation.
func (m *JobEvalMutation) Feedback() (r string, exists bool) {
	v := m.feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedback returns the old "feedback" field's value of the JobEval entity.
// If the JobEval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobEvalMutation) OldFeedback(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedback: %w", err)
	}
	return oldValue.Feedback, nil
}

// ClearFeedback clears the value of the "feedback" field.
func (m *JobEvalMutation) ClearFeedback() {
	m.feedback = nil
	m.clearedFields[jobeval.FieldFeedback] = struct{}{}
}

// FeedbackCleared returns if the "feedback" field was cleared in this mutation.
func (m *JobEvalMutation) FeedbackCleared() bool {
	_, ok := m.clearedFields[jobeval.FieldFeedback]
	return ok
}

// ResetFeedback resets all changes to the "feedback" field.
func (m *JobEvalMutation) ResetFeedback() {
	m.feedback = nil
	delete(m.clearedFields, jobeval.FieldFeedback)
}

// SetFixedIssueIds sets the "fixed_issue_ids" field.
func (m *JobEvalMutation) SetFixedIssueIds(s []string) {
	m.fixed_issue_ids = &s
	m.appendfixed_issue_ids = nil
}

// FixedIssueIds returns the value of the "fixed_issue_ids" field in the mutation.
func (m *JobEvalMutation) FixedIssueIds() (r []string, exists bool) {
	v := m.fixed_issue_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldFixedIssueIds returns the old "fixed_issue_ids" field's value of the JobEval entity.
// If the JobEval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobEvalMutation) OldFixedIssueIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFixedIssueIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFixedIssueIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFixedIssueIds: %w", err)
	}
	return oldValue.FixedIssueIds, nil
}

// AppendFixedIssueIds adds s to the "fixed_issue_ids" field.
func (m *JobEvalMutation) AppendFixedIssueIds(s []string) {
	m.appendfixed_issue_ids = append(m.appendfixed_issue_ids, s...)
}

// AppendedFixedIssueIds returns the list of values that were appended to the "fixed_issue_ids" field in this mutation.
func (m *JobEvalMutation) AppendedFixedIssueIds() ([]string, bool) {
	if len(m.appendfixed_issue_ids) == 0 {
		return nil, false
	}
	return m.appendfixed_issue_ids, true
}

// ClearFixedIssueIds clears the value of the "fixed_issue_ids" field.
func (m *JobEvalMutation) ClearFixedIssueIds() {
	m.fixed_issue_ids = nil
	m.appendfixed_issue_ids = nil
	m.clearedFields[jobeval.FieldFixedIssueIds] = struct{}{}
}

// FixedIssueIdsCleared returns if the "fixed_issue_ids" field was cleared in this mutation.
func (m *JobEvalMutation) FixedIssueIdsCleared() bool {
	_, ok := m.clearedFields[jobeval.FieldFixedIssueIds]
	return ok
}

// ResetFixedIssueIds resets all changes to the "fixed_issue_ids" field.
func (m *JobEvalMutation) ResetFixedIssueIds() {
	m.fixed_issue_ids = nil
	m.appendfixed_issue_ids = nil
	delete(m.clearedFields, jobeval.FieldFixedIssueIds)
}

// SetPersistingIssueIds sets the "persisting_issue_ids" field.
func (m *JobEvalMutation) SetPersistingIssueIds(s []string) {
	m.persisting_issue_ids = &s
	m.appendpersisting_issue_ids = nil
}

// PersistingIssueIds returns the value of the "persisting_issue_ids" field in the mutation.
func (m *JobEvalMutation) PersistingIssueIds() (r []string, exists bool) {
	v := m.persisting_issue_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldPersistingIssueIds returns the old "persisting_issue_ids" field's value of the JobEval entity.
// If the JobEval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobEvalMutation) OldPersistingIssueIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersistingIssueIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersistingIssueIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersistingIssueIds: %w", err)
	}
	return oldValue.PersistingIssueIds, nil
}

// AppendPersistingIssueIds adds s to the "persisting_issue_ids" field.
func (m *JobEvalMutation) AppendPersistingIssueIds(s []string) {
	m.appendpersisting_issue_ids = append(m.appendpersisting_issue_ids, s...)
}

// AppendedPersistingIssueIds returns the list of values that were appended to the "persisting_issue_ids" field in this mutation.
func (m *JobEvalMutation) AppendedPersistingIssueIds() ([]string, bool) {
	if len(m.appendpersisting_issue_ids) == 0 {
		return nil, false
	}
	return m.appendpersisting_issue_ids, true
}

// ClearPersistingIssueIds clears the value of the "persisting_issue_ids" field.
func (m *JobEvalMutation) ClearPersistingIssueIds() {
	m.persisting_issue_ids = nil
	m.appendpersisting_issue_ids = nil
	m.clearedFields[jobeval.FieldPersistingIssueIds] = struct{}{}
}

// PersistingIssueIdsCleared returns if the "persisting_issue_ids" field was cleared in this mutation.
func (m *JobEvalMutation) PersistingIssueIdsCleared() bool {
	_, ok := m.clearedFields[jobeval.FieldPersistingIssueIds]
	return ok
}

// ResetPersistingIssueIds resets all changes to the "persisting_issue_ids" field.
func (m *JobEvalMutation) ResetPersistingIssueIds() {
	m.persisting_issue_ids = nil
	m.appendpersisting_issue_ids = nil
	delete(m.clearedFields, jobeval.FieldPersistingIssueIds)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobEvalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobEvalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the JobEval entity.
// If the JobEval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobEvalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobEvalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *JobEvalMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[jobeval.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *JobEvalMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *JobEvalMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *JobEvalMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// ClearStep clears the "step" edge to the JobStep entity.
func (m *JobEvalMutation) ClearStep() {
	m.clearedstep = true
	m.clearedFields[jobeval.FieldStepID] = struct{}{}
}

// StepCleared reports if the "step" edge to the JobStep entity was cleared.
func (m *JobEvalMutation) StepCleared() bool {
	return m.clearedstep
}

// StepIDs returns the "step" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StepID instead. It exists only for internal usage by the builders.
func (m *JobEvalMutation) StepIDs() (ids []string) {
	if id := m.step; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStep resets all changes to the "step" edge.
func (m *JobEvalMutation) ResetStep() {
	m.step = nil
	m.clearedstep = false
}

// Where appends a list predicates to the JobEvalMutation builder.
func (m *JobEvalMutation) Where(ps ...predicate.JobEval) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobEvalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobEvalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobEval, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobEvalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobEvalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobEval).
func (m *JobEvalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobEvalMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.job != nil {
		fields = append(fields, jobeval.FieldJobID)
	}
	if m.step != nil {
		fields = append(fields, jobeval.FieldStepID)
	}
	if m.iteration != nil {
		fields = append(fields, jobeval.FieldIteration)
	}
	if m.overall_score != nil {
		fields = append(fields, jobeval.FieldOverallScore)
	}
	if m.readability_score != nil {
		fields = append(fields, jobeval.FieldReadabilityScore)
	}
	if m.seo_score != nil {
		fields = append(fields, jobeval.FieldSeoScore)
	}
	if m.accuracy_score != nil {
		fields = append(fields, jobeval.FieldAccuracyScore)
	}
	if m.engagement_score != nil {
		fields = append(fields, jobeval.FieldEngagementScore)
	}
	if m.brand_voice_score != nil {
		fields = append(fields, jobeval.FieldBrandVoiceScore)
	}
	if m.passed != nil {
		fields = append(fields, jobeval.FieldPassed)
	}
	if m.issues != nil {
		fields = append(fields, jobeval.FieldIssues)
	}
	if m.feedback != nil {
		fields = append(fields, jobeval.FieldFeedback)
	}
	if m.fixed_issue_ids != nil {
		fields = append(fields, jobeval.FieldFixedIssueIds)
	}
	if m.persisting_issue_ids != nil {
		fields = append(fields, jobeval.FieldPersistingIssueIds)
	}
	if m.created_at != nil {
		fields = append(fields, jobeval.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobEvalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobeval.FieldJobID:
		return m.JobID()
	case jobeval.FieldStepID:
		return m.StepID()
	case jobeval.FieldIteration:
		return m.Iteration()
	case jobeval.FieldOverallScore:
		return m.OverallScore()
	case jobeval.FieldReadabilityScore:
		return m.ReadabilityScore()
	case jobeval.FieldSeoScore:
		return m.SeoScore()
	case jobeval.FieldAccuracyScore:
		return m.AccuracyScore()
	case jobeval.FieldEngagementScore:
		return m.EngagementScore()
	case jobeval.FieldBrandVoiceScore:
		return m.BrandVoiceScore()
	case jobeval.FieldPassed:
		return m.Passed()
	case jobeval.FieldIssues:
		return m.Issues()
	case jobeval.FieldFeedback:
		return m.Feedback()
	case jobeval.FieldFixedIssueIds:
		return m.FixedIssueIds()
	case jobeval.FieldPersistingIssueIds:
		return m.PersistingIssueIds()
	case jobeval.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobEvalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobeval.FieldJobID:
		return m.OldJobID(ctx)
	case jobeval.FieldStepID:
		return m.OldStepID(ctx)
	case jobeval.FieldIteration:
		return m.OldIteration(ctx)
	case jobeval.FieldOverallScore:
		return m.OldOverallScore(ctx)
	case jobeval.FieldReadabilityScore:
		return m.OldReadabilityScore(ctx)
	case jobeval.FieldSeoScore:
		return m.OldSeoScore(ctx)
	case jobeval.FieldAccuracyScore:
		return m.OldAccuracyScore(ctx)
	case jobeval.FieldEngagementScore:
		return m.OldEngagementScore(ctx)
	case jobeval.FieldBrandVoiceScore:
		return m.OldBrandVoiceScore(ctx)
	case jobeval.FieldPassed:
		return m.OldPassed(ctx)
	case jobeval.FieldIssues:
		return m.OldIssues(ctx)
	case jobeval.FieldFeedback:
		return m.OldFeedback(ctx)
	case jobeval.FieldFixedIssueIds:
		return m.OldFixedIssueIds(ctx)
	case jobeval.FieldPersistingIssueIds:
		return m.OldPersistingIssueIds(ctx)
	case jobeval.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown JobEval field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobEvalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobeval.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case jobeval.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case jobeval.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIteration(v)
		return nil
	case jobeval.FieldOverallScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallScore(v)
		return nil
	case jobeval.FieldReadabilityScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadabilityScore(v)
		return nil
	case jobeval.FieldSeoScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeoScore(v)
		return nil
	case jobeval.FieldAccuracyScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccuracyScore(v)
		return nil
	case jobeval.FieldEngagementScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementScore(v)
		return nil
	case jobeval.FieldBrandVoiceScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrandVoiceScore(v)
		return nil
	case jobeval.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case jobeval.FieldIssues:
		v, ok := value.([]models.Issue)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssues(v)
		return nil
	case jobeval.FieldFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedback(v)
		return nil
	case jobeval.FieldFixedIssueIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFixedIssueIds(v)
		return nil
	case jobeval.FieldPersistingIssueIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersistingIssueIds(v)
		return nil
	case jobeval.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown JobEval field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobEvalMutation) AddedFields() []string {
	var fields []string
	if m.additeration != nil {
		fields = append(fields, jobeval.FieldIteration)
	}
	if m.addoverall_score != nil {
		fields = append(fields, jobeval.FieldOverallScore)
	}
	if m.addreadability_score != nil {
		fields = append(fields, jobeval.FieldReadabilityScore)
	}
	if m.addseo_score != nil {
		fields = append(fields, jobeval.FieldSeoScore)
	}
	if m.addaccuracy_score != nil {
		fields = append(fields, jobeval.FieldAccuracyScore)
	}
	if m.addengagement_score != nil {
		fields = append(fields, jobeval.FieldEngagementScore)
	}
	if m.addbrand_voice_score != nil {
		fields = append(fields, jobeval.FieldBrandVoiceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobEvalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case jobeval.FieldIteration:
		return m.AddedIteration()
	case jobeval.FieldOverallScore:
		return m.AddedOverallScore()
	case jobeval.FieldReadabilityScore:
		return m.AddedReadabilityScore()
	case jobeval.FieldSeoScore:
		return m.AddedSeoScore()
	case jobeval.FieldAccuracyScore:
		return m.AddedAccuracyScore()
	case jobeval.FieldEngagementScore:
		return m.AddedEngagementScore()
	case jobeval.FieldBrandVoiceScore:
		return m.AddedBrandVoiceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobEvalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case jobeval.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIteration(v)
		return nil
	case jobeval.FieldOverallScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallScore(v)
		return nil
	case jobeval.FieldReadabilityScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReadabilityScore(v)
		return nil
	case jobeval.FieldSeoScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeoScore(v)
		return nil
	case jobeval.FieldAccuracyScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccuracyScore(v)
		return nil
	case jobeval.FieldEngagementScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEngagementScore(v)
		return nil
	case jobeval.FieldBrandVoiceScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBrandVoiceScore(v)
		return nil
	}
	return fmt.Errorf("unknown JobEval numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobEvalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(jobeval.FieldIssues) {
		fields = append(fields, jobeval.FieldIssues)
	}
	if m.FieldCleared(jobeval.FieldFeedback) {
		fields = append(fields, jobeval.FieldFeedback)
	}
	if m.FieldCleared(jobeval.FieldFixedIssueIds) {
		fields = append(fields, jobeval.FieldFixedIssueIds)
	}
	if m.FieldCleared(jobeval.FieldPersistingIssueIds) {
		fields = append(fields, jobeval.FieldPersistingIssueIds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobEvalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobEvalMutation) ClearField(name string) error {
	switch name {
	case jobeval.FieldIssues:
		m.ClearIssues()
		return nil
	case jobeval.FieldFeedback:
		m.ClearFeedback()
		return nil
	case jobeval.FieldFixedIssueIds:
		m.ClearFixedIssueIds()
		return nil
	case jobeval.FieldPersistingIssueIds:
		m.ClearPersistingIssueIds()
		return nil
	}
	return fmt.Errorf("unknown JobEval nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobEvalMutation) ResetField(name string) error {
	switch name {
	case jobeval.FieldJobID:
		m.ResetJobID()
		return nil
	case jobeval.FieldStepID:
		m.ResetStepID()
		return nil
	case jobeval.FieldIteration:
		m.ResetIteration()
		return nil
	case jobeval.FieldOverallScore:
		m.ResetOverallScore()
		return nil
	case jobeval.FieldReadabilityScore:
		m.ResetReadabilityScore()
		return nil
	case jobeval.FieldSeoScore:
		m.ResetSeoScore()
		return nil
	case jobeval.FieldAccuracyScore:
		m.ResetAccuracyScore()
		return nil
	case jobeval.FieldEngagementScore:
		m.ResetEngagementScore()
		return nil
	case jobeval.FieldBrandVoiceScore:
		m.ResetBrandVoiceScore()
		return nil
	case jobeval.FieldPassed:
		m.ResetPassed()
		return nil
	case jobeval.FieldIssues:
		m.ResetIssues()
		return nil
	case jobeval.FieldFeedback:
		m.ResetFeedback()
		return nil
	case jobeval.FieldFixedIssueIds:
		m.ResetFixedIssueIds()
		return nil
	case jobeval.FieldPersistingIssueIds:
		m.ResetPersistingIssueIds()
		return nil
	case jobeval.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown JobEval field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobEvalMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.job != nil {
		edges = append(edges, jobeval.EdgeJob)
	}
	if m.step != nil {
		edges = append(edges, jobeval.EdgeStep)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobEvalMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobeval.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case jobeval.EdgeStep:
		if id := m.step; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobEvalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobEvalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobEvalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedjob {
		edges = append(edges, jobeval.EdgeJob)
	}
	if m.clearedstep {
		edges = append(edges, jobeval.EdgeStep)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobEvalMutation) EdgeCleared(name string) bool {
	switch name {
	case jobeval.EdgeJob:
		return m.clearedjob
	case jobeval.EdgeStep:
		return m.clearedstep
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobEvalMutation) ClearEdge(name string) error {
	switch name {
	case jobeval.EdgeJob:
		m.ClearJob()
		return nil
	case jobeval.EdgeStep:
		m.ClearStep()
		return nil
	}
	return fmt.Errorf("unknown JobEval unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobEvalMutation) ResetEdge(name string) error {
	switch name {
	case jobeval.EdgeJob:
		m.ResetJob()
		return nil
	case jobeval.EdgeStep:
		m.ResetStep()
		return nil
	}
	return fmt.Errorf("unknown JobEval edge %s", name)
}

// JobStepMutation represents an operation that mutates the JobStep nodes in the graph.
type JobStepMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	agent_type           *jobstep.AgentType
	iteration            *int
	additeration         *int
	status               *jobstep.Status
	tokens_used          *int
	addtokens_used       *int
	prompt_tokens        *int
	addprompt_tokens     *int
	completion_tokens    *int
	addcompletion_tokens *int
	duration_ms          *int
	addduration_ms       *int
	input                *map[string]interface{}
	output               *map[string]interface{}
	logs                 *[]string
	appendlogs           []string
	error_message        *string
	started_at           *time.Time
	completed_at         *time.Time
	created_at           *time.Time
	clearedFields        map[string]struct{}
	job                  *string
	clearedjob           bool
	evals                map[string]struct{}
	removedevals         map[string]struct{}
	clearedevals         bool
	done                 bool
	oldValue             func(context.Context) (*JobStep, error)
	predicates           []predicate.JobStep
}

var _ ent.Mutation = (*JobStepMutation)(nil)

// jobstepOption allows management of the mutation configuration using functional options.
type jobstepOption func(*JobStepMutation)

// newJobStepMutation creates new mutation for the JobStep entity.
func newJobStepMutation(c config, op Op, opts ...jobstepOption) *JobStepMutation {
	m := &JobStepMutation{
		config:        c,
		op:            op,
		typ:           TypeJobStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobStepID sets the ID field of the mutation.
func withJobStepID(id string) jobstepOption {
	return func(m *JobStepMutation) {
		var (
			err   error
			once  sync.Once
			value *JobStep
		)
		m.oldValue = func(ctx context.Context) (*JobStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobStep sets the old JobStep of the mutation.
func withJobStep(node *JobStep) jobstepOption {
	return func(m *JobStepMutation) {
		m.oldValue = func(context.Context) (*JobStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobStep entities.
func (m *JobStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobStepMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobStepMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the JobStep entity.
// If the JobStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStepMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobStepMutation) ResetJobID() {
	m.job = nil
}

// SetAgentType sets the "agent_type" field.
func (m *JobStepMutation) SetAgentType(jt jobstep.AgentType) {
	m.agent_type = &jt
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *JobStepMutation) AgentType() (r jobstep.AgentType, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the JobStep entity.
// If the JobStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStepMutation) OldAgentType(ctx context.Context) (v jobstep.AgentType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *JobStepMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetIteration sets the "iteration" field.
func (m *JobStepMutation) SetIteration(i int) {
	m.iteration = &i
	m.additeration = nil
}

// Iteration returns the value of the "iteration" field in the mutation.
func (m *JobStepMutation) Iteration() (r int, exists bool) {
	v := m.iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldIteration returns the old "iteration" field's value of the JobStep entity.
// If the JobStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStepMutation) OldIteration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIteration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIteration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIteration: %w", err)
	}
	return oldValue.Iteration, nil
}

// AddIteration adds i to the "iteration" field.
func (m *JobStepMutation) AddIteration(i int) {
	if m.additeration != nil {
		*m.additeration += i
	} else {
		m.additeration = &i
	}
}

// AddedIteration returns the value that was added to the "iteration" field in this mutation.
func (m *JobStepMutation) AddedIteration() (r int, exists bool) {
	v := m.additeration
	if v == nil {
		return
	}
	return *v, true
}

// ResetIteration resets all changes to the "iteration" field.
func (m *JobStepMutation) ResetIteration() {
	m.iteration = nil
	m.additeration = nil
}

// SetStatus sets the "status" field.
func (m *JobStepMutation) SetStatus(j jobstep.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobStepMutation) Status() (r jobstep.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the JobStep entity.
// If the JobStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStepMutation) OldStatus(ctx context.Context) (v jobstep.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobStepMutation) ResetStatus() {
	m.status = nil
}

// SetTokensUsed sets the "tokens_used" field.
func (m *JobStepMutation) SetTokensUsed(i int) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *JobStepMutation) TokensUsed() (r int, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the JobStep entity.
// If the JobStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStepMutation) OldTokensUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *JobStepMutation) AddTokensUsed(i int) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *JobStepMutation) AddedTokensUsed() (r int, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *JobStepMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetPromptTokens sets the "prompt_tokens" field.
func (m *JobStepMutation) SetPromptTokens(i int) {
	m.prompt_tokens = &i
	m.addprompt_tokens = nil
}

// PromptTokens returns the value of the "prompt_tokens" field in the mutation.
func (m *JobStepMutation) PromptTokens() (r int, exists bool) {
	v := m.prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokens returns the old "prompt_tokens" field's value of the JobStep entity.
// If the JobStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStepMutation) OldPromptTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokens: %w", err)
	}
	return oldValue.PromptTokens, nil
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (m *JobStepMutation) AddPromptTokens(i int) {
	if m.addprompt_tokens != nil {
		*m.addprompt_tokens += i
	} else {
		m.addprompt_tokens = &i
	}
}

// AddedPromptTokens returns the value that was added to the "prompt_tokens" field in this mutation.
func (m *JobStepMutation) AddedPromptTokens() (r int, exists bool) {
	v := m.addprompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetPromptTokens resets all changes to the "prompt_tokens" field.
func (m *JobStepMutation) ResetPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
}

// SetCompletionTokens sets the "completion_tokens" field.
func (m *JobStepMutation) SetCompletionTokens(i int) {
	m.completion_tokens = &i
	m.addcompletion_tokens = nil
}

// CompletionTokens returns the value of the "completion_tokens" field in the mutation.
func (m *JobStepMutation) CompletionTokens() (r int, exists bool) {
	v := m.completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTokens returns the old "completion_tokens" field's value of the JobStep entity.
// If the JobStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStepMutation) OldCompletionTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTokens: %w", err)
	}
	return oldValue.CompletionTokens, nil
}

// AddCompletionTokens adds i to the "completion_tokens" field.
func (m *JobStepMutation) AddCompletionTokens(i int) {
	if m.addcompletion_tokens != nil {
		*m.addcompletion_tokens += i
	} else {
		m.addcompletion_tokens = &i
	}
}

// AddedCompletionTokens returns the value that was added to the "completion_tokens" field in this mutation.
func (m *JobStepMutation) AddedCompletionTokens() (r int, exists bool) {
	v := m.addcompletion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionTokens resets all changes to the "completion_tokens" field.
func (m *JobStepMutation) ResetCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *JobStepMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *JobStepMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the JobStep entity.
// If the JobStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStepMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *JobStepMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *JobStepMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *JobStepMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[jobstep.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *JobStepMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[jobstep.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *JobStepMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, jobstep.FieldDurationMs)
}

// SetInput sets the "input" field.
func (m *JobStepMutation) SetInput(value map[string]interface{}) {
	m.input = &value
}

// Input returns the value of the "input" field in the mutation.
func (m *JobStepMutation) Input() (r map[string]interface{}, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the JobStep entity.
// If the JobStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStepMutation) OldInput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ClearInput clears the value of the "input" field.
func (m *JobStepMutation) ClearInput() {
	m.input = nil
	m.clearedFields[jobstep.FieldInput] = struct{}{}
}

// InputCleared returns if the "input" field was cleared in this mutation.
func (m *JobStepMutation) InputCleared() bool {
	_, ok := m.clearedFields[jobstep.FieldInput]
	return ok
}

// ResetInput resets all changes to the "input" field.
func (m *JobStepMutation) ResetInput() {
	m.input = nil
	delete(m.clearedFields, jobstep.FieldInput)
}

// SetOutput sets the "output" field.
func (m *JobStepMutation) SetOutput(value map[string]interface{}) {
	m.output = &value
}

// Output returns the value of the "output" field in the mutation.
func (m *JobStepMutation) Output() (r map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the JobStep entity.
// If the JobStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStepMutation) OldOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *JobStepMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[jobstep.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *JobStepMutation) OutputCleared() bool {
	_, ok := m.clearedFields[jobstep.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *JobStepMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, jobstep.FieldOutput)
}

// SetLogs sets the "logs" field.
func (m *JobStepMutation) SetLogs(s []string) {
	m.logs = &s
	m.appendlogs = nil
}

// Logs returns the value of the "logs" field in the mutation.
func (m *JobStepMutation) Logs() (r []string, exists bool) {
	v := m.logs
	if v == nil {
		return
	}
	return *v, true
}

// OldLogs returns the old "logs" field's value of the JobStep entity.
// If the JobStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStepMutation) OldLogs(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogs: %w", err)
	}
	return oldValue.Logs, nil
}

// AppendLogs adds s to the "logs" field.
func (m *JobStepMutation) AppendLogs(s []string) {
	m.appendlogs = append(m.appendlogs, s...)
}

// AppendedLogs returns the list of values that were appended to the "logs" field in this mutation.
func (m *JobStepMutation) AppendedLogs() ([]string, bool) {
	if len(m.appendlogs) == 0 {
		return nil, false
	}
	return m.appendlogs, true
}

// ClearLogs clears the value of the "logs" field.
func (m *JobStepMutation) ClearLogs() {
	m.logs = nil
	m.appendlogs = nil
	m.clearedFields[jobstep.FieldLogs] = struct{}{}
}

// LogsCleared returns if the "logs" field was cleared in this mutation.
func (m *JobStepMutation) LogsCleared() bool {
	_, ok := m.clearedFields[jobstep.FieldLogs]
	return ok
}

// ResetLogs resets all changes to the "logs" field.
func (m *JobStepMutation) ResetLogs() {
	m.logs = nil
	m.appendlogs = nil
	delete(m.clearedFields, jobstep.FieldLogs)
}

// SetErrorMessage sets the "error_message" field.
func (m *JobStepMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *JobStepMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the JobStep entity.
// If the JobStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStepMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *JobStepMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[jobstep.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *JobStepMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[jobstep.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *JobStepMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, jobstep.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *JobStepMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobStepMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the JobStep entity.
// If the JobStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStepMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobStepMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[jobstep.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobStepMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[jobstep.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobStepMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, jobstep.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobStepMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobStepMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the JobStep entity.
// If the JobStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStepMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *JobStepMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[jobstep.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobStepMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[jobstep.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobStepMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, jobstep.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobStepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobStepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the JobStep entity.
// If the JobStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobStepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobStepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *JobStepMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[jobstep.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *JobStepMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *JobStepMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *JobStepMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// AddEvalIDs adds the "evals" edge to the JobEval entity by ids.
func (m *JobStepMutation) AddEvalIDs(ids ...string) {
	if m.evals == nil {
		m.evals = make(map[string]struct{})
	}
	for i := range ids {
		m.evals[ids[i]] = struct{}{}
	}
}

// ClearEvals clears the "evals" edge to the JobEval entity.
func (m *JobStepMutation) ClearEvals() {
	m.clearedevals = true
}

// EvalsCleared reports if the "evals" edge to the JobEval entity was cleared.
func (m *JobStepMutation) EvalsCleared() bool {
	return m.clearedevals
}

// RemoveEvalIDs removes the "evals" edge to the JobEval entity by IDs.
func (m *JobStepMutation) RemoveEvalIDs(ids ...string) {
	if m.removedevals == nil {
		m.removedevals = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.evals, ids[i])
		m.removedevals[ids[i]] = struct{}{}
	}
}

// RemovedEvals returns the removed IDs of the "evals" edge to the JobEval entity.
func (m *JobStepMutation) RemovedEvalsIDs() (ids []string) {
	for id := range m.removedevals {
		ids = append(ids, id)
	}
	return
}

// EvalsIDs returns the "evals" edge IDs in the mutation.
func (m *JobStepMutation) EvalsIDs() (ids []string) {
	for id := range m.evals {
		ids = append(ids, id)
	}
	return
}

// ResetEvals resets all changes to the "evals" edge.
func (m *JobStepMutation) ResetEvals() {
	m.evals = nil
	m.clearedevals = false
	m.removedevals = nil
}

// Where appends a list predicates to the JobStepMutation builder.
func (m *JobStepMutation) Where(ps ...predicate.JobStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobStep).
func (m *JobStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobStepMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.job != nil {
		fields = append(fields, jobstep.FieldJobID)
	}
	if m.agent_type != nil {
		fields = append(fields, jobstep.FieldAgentType)
	}
	if m.iteration != nil {
		fields = append(fields, jobstep.FieldIteration)
	}
	if m.status != nil {
		fields = append(fields, jobstep.FieldStatus)
	}
	if m.tokens_used != nil {
		fields = append(fields, jobstep.FieldTokensUsed)
	}
	if m.prompt_tokens != nil {
		fields = append(fields, jobstep.FieldPromptTokens)
	}
	if m.completion_tokens != nil {
		fields = append(fields, jobstep.FieldCompletionTokens)
	}
	if m.duration_ms != nil {
		fields = append(fields, jobstep.FieldDurationMs)
	}
	if m.input != nil {
		fields = append(fields, jobstep.FieldInput)
	}
	if m.output != nil {
		fields = append(fields, jobstep.FieldOutput)
	}
	if m.logs != nil {
		fields = append(fields, jobstep.FieldLogs)
	}
	if m.error_message != nil {
		fields = append(fields, jobstep.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, jobstep.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, jobstep.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, jobstep.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobstep.FieldJobID:
		return m.JobID()
	case jobstep.FieldAgentType:
		return m.AgentType()
	case jobstep.FieldIteration:
		return m.Iteration()
	case jobstep.FieldStatus:
		return m.Status()
	case jobstep.FieldTokensUsed:
		return m.TokensUsed()
	case jobstep.FieldPromptTokens:
		return m.PromptTokens()
	case jobstep.FieldCompletionTokens:
		return m.CompletionTokens()
	case jobstep.FieldDurationMs:
		return m.DurationMs()
	case jobstep.FieldInput:
		return m.Input()
	case jobstep.FieldOutput:
		return m.Output()
	case jobstep.FieldLogs:
		return m.Logs()
	case jobstep.FieldErrorMessage:
		return m.ErrorMessage()
	case jobstep.FieldStartedAt:
		return m.StartedAt()
	case jobstep.FieldCompletedAt:
		return m.CompletedAt()
	case jobstep.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobstep.FieldJobID:
		return m.OldJobID(ctx)
	case jobstep.FieldAgentType:
		return m.OldAgentType(ctx)
	case jobstep.FieldIteration:
		return m.OldIteration(ctx)
	case jobstep.FieldStatus:
		return m.OldStatus(ctx)
	case jobstep.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case jobstep.FieldPromptTokens:
		return m.OldPromptTokens(ctx)
	case jobstep.FieldCompletionTokens:
		return m.OldCompletionTokens(ctx)
	case jobstep.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case jobstep.FieldInput:
		return m.OldInput(ctx)
	case jobstep.FieldOutput:
		return m.OldOutput(ctx)
	case jobstep.FieldLogs:
		return m.OldLogs(ctx)
	case jobstep.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case jobstep.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case jobstep.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case jobstep.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown JobStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobstep.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case jobstep.FieldAgentType:
		v, ok := value.(jobstep.AgentType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case jobstep.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIteration(v)
		return nil
	case jobstep.FieldStatus:
		v, ok := value.(jobstep.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case jobstep.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case jobstep.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokens(v)
		return nil
	case jobstep.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTokens(v)
		return nil
	case jobstep.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case jobstep.FieldInput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case jobstep.FieldOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case jobstep.FieldLogs:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogs(v)
		return nil
	case jobstep.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case jobstep.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case jobstep.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case jobstep.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown JobStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobStepMutation) AddedFields() []string {
	var fields []string
	if m.additeration != nil {
		fields = append(fields, jobstep.FieldIteration)
	}
	if m.addtokens_used != nil {
		fields = append(fields, jobstep.FieldTokensUsed)
	}
	if m.addprompt_tokens != nil {
		fields = append(fields, jobstep.FieldPromptTokens)
	}
	if m.addcompletion_tokens != nil {
		fields = append(fields, jobstep.FieldCompletionTokens)
	}
	if m.addduration_ms != nil {
		fields = append(fields, jobstep.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case jobstep.FieldIteration:
		return m.AddedIteration()
	case jobstep.FieldTokensUsed:
		return m.AddedTokensUsed()
	case jobstep.FieldPromptTokens:
		return m.AddedPromptTokens()
	case jobstep.FieldCompletionTokens:
		return m.AddedCompletionTokens()
	case jobstep.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case jobstep.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIteration(v)
		return nil
	case jobstep.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	case jobstep.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokens(v)
		return nil
	case jobstep.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTokens(v)
		return nil
	case jobstep.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown JobStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(jobstep.FieldDurationMs) {
		fields = append(fields, jobstep.FieldDurationMs)
	}
	if m.FieldCleared(jobstep.FieldInput) {
		fields = append(fields, jobstep.FieldInput)
	}
	if m.FieldCleared(jobstep.FieldOutput) {
		fields = append(fields, jobstep.FieldOutput)
	}
	if m.FieldCleared(jobstep.FieldLogs) {
		fields = append(fields, jobstep.FieldLogs)
	}
	if m.FieldCleared(jobstep.FieldErrorMessage) {
		fields = append(fields, jobstep.FieldErrorMessage)
	}
	if m.FieldCleared(jobstep.FieldStartedAt) {
		fields = append(fields, jobstep.FieldStartedAt)
	}
	if m.FieldCleared(jobstep.FieldCompletedAt) {
		fields = append(fields, jobstep.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobStepMutation) ClearField(name string) error {
	switch name {
	case jobstep.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case jobstep.FieldInput:
		m.ClearInput()
		return nil
	case jobstep.FieldOutput:
		m.ClearOutput()
		return nil
	case jobstep.FieldLogs:
		m.ClearLogs()
		return nil
	case jobstep.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case jobstep.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case jobstep.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown JobStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobStepMutation) ResetField(name string) error {
	switch name {
	case jobstep.FieldJobID:
		m.ResetJobID()
		return nil
	case jobstep.FieldAgentType:
		m.ResetAgentType()
		return nil
	case jobstep.FieldIteration:
		m.ResetIteration()
		return nil
	case jobstep.FieldStatus:
		m.ResetStatus()
		return nil
	case jobstep.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case jobstep.FieldPromptTokens:
		m.ResetPromptTokens()
		return nil
	case jobstep.FieldCompletionTokens:
		m.ResetCompletionTokens()
		return nil
	case jobstep.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case jobstep.FieldInput:
		m.ResetInput()
		return nil
	case jobstep.FieldOutput:
		m.ResetOutput()
		return nil
	case jobstep.FieldLogs:
		m.ResetLogs()
		return nil
	case jobstep.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case jobstep.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case jobstep.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case jobstep.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown JobStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.job != nil {
		edges = append(edges, jobstep.EdgeJob)
	}
	if m.evals != nil {
		edges = append(edges, jobstep.EdgeEvals)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobstep.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case jobstep.EdgeEvals:
		ids := make([]ent.Value, 0, len(m.evals))
		for id := range m.evals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedevals != nil {
		edges = append(edges, jobstep.EdgeEvals)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobStepMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case jobstep.EdgeEvals:
		ids := make([]ent.Value, 0, len(m.removedevals))
		for id := range m.removedevals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedjob {
		edges = append(edges, jobstep.EdgeJob)
	}
	if m.clearedevals {
		edges = append(edges, jobstep.EdgeEvals)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobStepMutation) EdgeCleared(name string) bool {
	switch name {
	case jobstep.EdgeJob:
		return m.clearedjob
	case jobstep.EdgeEvals:
		return m.clearedevals
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobStepMutation) ClearEdge(name string) error {
	switch name {
	case jobstep.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown JobStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobStepMutation) ResetEdge(name string) error {
	switch name {
	case jobstep.EdgeJob:
		m.ResetJob()
		return nil
	case jobstep.EdgeEvals:
		m.ResetEvals()
		return nil
	}
	return fmt.Errorf("unknown JobStep edge %s", name)
}

// PersonaMutation represents an operation that mutates the Persona nodes in the graph.
type PersonaMutation struct {
	config
	op             Op
	typ            string
	id             *string
	agent_type     *persona.AgentType
	name           *string
	system_prompt  *string
	provider       *string
	model          *string
	temperature    *float64
	addtemperature *float64
	max_tokens     *int
	addmax_tokens  *int
	is_default     *bool
	is_enabled     *bool
	created_at     *time.Time
	updated_at     *time.Time
	deleted_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Persona, error)
	predicates     []predicate.Persona
}

var _ ent.Mutation = (*PersonaMutation)(nil)

// personaOption allows management of the mutation configuration using functional options.
type personaOption func(*PersonaMutation)

// newPersonaMutation creates new mutation for the Persona entity.
func newPersonaMutation(c config, op Op, opts ...personaOption) *PersonaMutation {
	m := &PersonaMutation{
		config:        c,
		op:            op,
		typ:           TypePersona,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPersonaID sets the ID field of the mutation.
func withPersonaID(id string) personaOption {
	return func(m *PersonaMutation) {
		var (
			err   error
			once  sync.Once
			value *Persona
		)
		m.oldValue = func(ctx context.Context) (*Persona, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Persona.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPersona sets the old Persona of the mutation.
func withPersona(node *Persona) personaOption {
	return func(m *PersonaMutation) {
		m.oldValue = func(context.Context) (*Persona, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PersonaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PersonaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Persona entities.
func (m *PersonaMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PersonaMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PersonaMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Persona.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentType sets the "agent_type" field.
func (m *PersonaMutation) SetAgentType(pt persona.AgentType) {
	m.agent_type = &pt
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *PersonaMutation) AgentType() (r persona.AgentType, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldAgentType(ctx context.Context) (v persona.AgentType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *PersonaMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetName sets the "name" field.
func (m *PersonaMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PersonaMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PersonaMutation) ResetName() {
	m.name = nil
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *PersonaMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *PersonaMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldSystemPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *PersonaMutation) ResetSystemPrompt() {
	m.system_prompt = nil
}

// SetProvider sets the "provider" field.
func (m *PersonaMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *PersonaMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *PersonaMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *PersonaMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *PersonaMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *PersonaMutation) ResetModel() {
	m.model = nil
}

// SetTemperature sets the "temperature" field.
func (m *PersonaMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *PersonaMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldTemperature(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *PersonaMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *PersonaMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *PersonaMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
}

// SetMaxTokens sets the "max_tokens" field.
func (m *PersonaMutation) SetMaxTokens(i int) {
	m.max_tokens = &i
	m.addmax_tokens = nil
}

// MaxTokens returns the value of the "max_tokens" field in the mutation.
func (m *PersonaMutation) MaxTokens() (r int, exists bool) {
	v := m.max_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxTokens returns the old "max_tokens" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldMaxTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxTokens: %w", err)
	}
	return oldValue.MaxTokens, nil
}

// AddMaxTokens adds i to the "max_tokens" field.
func (m *PersonaMutation) AddMaxTokens(i int) {
	if m.addmax_tokens != nil {
		*m.addmax_tokens += i
	} else {
		m.addmax_tokens = &i
	}
}

// AddedMaxTokens returns the value that was added to the "max_tokens" field in this mutation.
func (m *PersonaMutation) AddedMaxTokens() (r int, exists bool) {
	v := m.addmax_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxTokens resets all changes to the "max_tokens" field.
func (m *PersonaMutation) ResetMaxTokens() {
	m.max_tokens = nil
	m.addmax_tokens = nil
}

// SetIsDefault sets the "is_default" field.
func (m *PersonaMutation) SetIsDefault(b bool) {
	m.is_default = &b
}

// IsDefault returns the value of the "is_default" field in the mutation.
func (m *PersonaMutation) IsDefault() (r bool, exists bool) {
	v := m.is_default
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDefault returns the old "is_default" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldIsDefault(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDefault is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDefault requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDefault: %w", err)
	}
	return oldValue.IsDefault, nil
}

// ResetIsDefault resets all changes to the "is_default" field.
func (m *PersonaMutation) ResetIsDefault() {
	m.is_default = nil
}

// SetIsEnabled sets the "is_enabled" field.
func (m *PersonaMutation) SetIsEnabled(b bool) {
	m.is_enabled = &b
}

// IsEnabled returns the value of the "is_enabled" field in the mutation.
func (m *PersonaMutation) IsEnabled() (r bool, exists bool) {
	v := m.is_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldIsEnabled returns the old "is_enabled" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldIsEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsEnabled: %w", err)
	}
	return oldValue.IsEnabled, nil
}

// ResetIsEnabled resets all changes to the "is_enabled" field.
func (m *PersonaMutation) ResetIsEnabled() {
	m.is_enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PersonaMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PersonaMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PersonaMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PersonaMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PersonaMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PersonaMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *PersonaMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *PersonaMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *PersonaMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[persona.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *PersonaMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[persona.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *PersonaMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, persona.FieldDeletedAt)
}

// Where appends a list predicates to the PersonaMutation builder.
func (m *PersonaMutation) Where(ps ...predicate.Persona) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PersonaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PersonaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Persona, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PersonaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PersonaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Persona).
func (m *PersonaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PersonaMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.agent_type != nil {
		fields = append(fields, persona.FieldAgentType)
	}
	if m.name != nil {
		fields = append(fields, persona.FieldName)
	}
	if m.system_prompt != nil {
		fields = append(fields, persona.FieldSystemPrompt)
	}
	if m.provider != nil {
		fields = append(fields, persona.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, persona.FieldModel)
	}
	if m.temperature != nil {
		fields = append(fields, persona.FieldTemperature)
	}
	if m.max_tokens != nil {
		fields = append(fields, persona.FieldMaxTokens)
	}
	if m.is_default != nil {
		fields = append(fields, persona.FieldIsDefault)
	}
	if m.is_enabled != nil {
		fields = append(fields, persona.FieldIsEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, persona.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, persona.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, persona.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PersonaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case persona.FieldAgentType:
		return m.AgentType()
	case persona.FieldName:
		return m.Name()
	case persona.FieldSystemPrompt:
		return m.SystemPrompt()
	case persona.FieldProvider:
		return m.Provider()
	case persona.FieldModel:
		return m.Model()
	case persona.FieldTemperature:
		return m.Temperature()
	case persona.FieldMaxTokens:
		return m.MaxTokens()
	case persona.FieldIsDefault:
		return m.IsDefault()
	case persona.FieldIsEnabled:
		return m.IsEnabled()
	case persona.FieldCreatedAt:
		return m.CreatedAt()
	case persona.FieldUpdatedAt:
		return m.UpdatedAt()
	case persona.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PersonaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case persona.FieldAgentType:
		return m.OldAgentType(ctx)
	case persona.FieldName:
		return m.OldName(ctx)
	case persona.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case persona.FieldProvider:
		return m.OldProvider(ctx)
	case persona.FieldModel:
		return m.OldModel(ctx)
	case persona.FieldTemperature:
		return m.OldTemperature(ctx)
	case persona.FieldMaxTokens:
		return m.OldMaxTokens(ctx)
	case persona.FieldIsDefault:
		return m.OldIsDefault(ctx)
	case persona.FieldIsEnabled:
		return m.OldIsEnabled(ctx)
	case persona.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case persona.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case persona.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Persona field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case persona.FieldAgentType:
		v, ok := value.(persona.AgentType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case persona.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case persona.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case persona.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case persona.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case persona.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case persona.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxTokens(v)
		return nil
	case persona.FieldIsDefault:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDefault(v)
		return nil
	case persona.FieldIsEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsEnabled(v)
		return nil
	case persona.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case persona.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case persona.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Persona field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PersonaMutation) AddedFields() []string {
	var fields []string
	if m.addtemperature != nil {
		fields = append(fields, persona.FieldTemperature)
	}
	if m.addmax_tokens != nil {
		fields = append(fields, persona.FieldMaxTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PersonaMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case persona.FieldTemperature:
		return m.AddedTemperature()
	case persona.FieldMaxTokens:
		return m.AddedMaxTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonaMutation) AddField(name string, value ent.Value) error {
	switch name {
	case persona.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	case persona.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxTokens(v)
		return nil
	}
	return fmt.Errorf("unknown Persona numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PersonaMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(persona.FieldDeletedAt) {
		fields = append(fields, persona.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PersonaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PersonaMutation) ClearField(name string) error {
	switch name {
	case persona.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Persona nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PersonaMutation) ResetField(name string) error {
	switch name {
	case persona.FieldAgentType:
		m.ResetAgentType()
		return nil
	case persona.FieldName:
		m.ResetName()
		return nil
	case persona.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case persona.FieldProvider:
		m.ResetProvider()
		return nil
	case persona.FieldModel:
		m.ResetModel()
		return nil
	case persona.FieldTemperature:
		m.ResetTemperature()
		return nil
	case persona.FieldMaxTokens:
		m.ResetMaxTokens()
		return nil
	case persona.FieldIsDefault:
		m.ResetIsDefault()
		return nil
	case persona.FieldIsEnabled:
		m.ResetIsEnabled()
		return nil
	case persona.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case persona.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case persona.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Persona field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PersonaMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PersonaMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PersonaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PersonaMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PersonaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PersonaMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PersonaMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Persona unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PersonaMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Persona edge %s", name)
}

// SystemLogMutation represents an operation that mutates the SystemLog nodes in the graph.
type SystemLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	entity_type   *string
	entity_id     *string
	level         *systemlog.Level
	message       *string
	data          *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SystemLog, error)
	predicates    []predicate.SystemLog
}

var _ ent.Mutation = (*SystemLogMutation)(nil)

// systemlogOption allows management of the mutation configuration using functional options.
type systemlogOption func(*SystemLogMutation)

// newSystemLogMutation creates new mutation for the SystemLog entity.
func newSystemLogMutation(c config, op Op, opts ...systemlogOption) *SystemLogMutation {
	m := &SystemLogMutation{
		config:        c,
		op:            op,
		typ:           TypeSystemLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSystemLogID sets the ID field of the mutation.
func withSystemLogID(id string) systemlogOption {
	return func(m *SystemLogMutation) {
		var (
			err   error
			once  sync.Once
			value *SystemLog
		)
		m.oldValue = func(ctx context.Context) (*SystemLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SystemLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSystemLog sets the old SystemLog of the mutation.
func withSystemLog(node *SystemLog) systemlogOption {
	return func(m *SystemLogMutation) {
		m.oldValue = func(context.Context) (*SystemLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SystemLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SystemLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SystemLog entities.
func (m *SystemLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SystemLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SystemLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SystemLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntityType sets the "entity_type" field.
func (m *SystemLogMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *SystemLogMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the SystemLog entity.
// If the SystemLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemLogMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *SystemLogMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *SystemLogMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *SystemLogMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the SystemLog entity.
// If the SystemLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemLogMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *SystemLogMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetLevel sets the "level" field.
func (m *SystemLogMutation) SetLevel(s systemlog.Level) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *SystemLogMutation) Level() (r systemlog.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the SystemLog entity.
// If the SystemLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemLogMutation) OldLevel(ctx context.Context) (v systemlog.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *SystemLogMutation) ResetLevel() {
	m.level = nil
}

// SetMessage sets the "message" field.
func (m *SystemLogMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *SystemLogMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the SystemLog entity.
// If the SystemLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemLogMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *SystemLogMutation) ResetMessage() {
	m.message = nil
}

// SetData sets the "data" field.
func (m *SystemLogMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *SystemLogMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the SystemLog entity.
// If the SystemLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemLogMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *SystemLogMutation) ClearData() {
	m.data = nil
	m.clearedFields[systemlog.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *SystemLogMutation) DataCleared() bool {
	_, ok := m.clearedFields[systemlog.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *SystemLogMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, systemlog.FieldData)
}

// SetCreatedAt sets the "created_at" field.
func (m *SystemLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SystemLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SystemLog entity.
// If the SystemLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SystemLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SystemLogMutation builder.
func (m *SystemLogMutation) Where(ps ...predicate.SystemLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SystemLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SystemLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SystemLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SystemLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SystemLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SystemLog).
func (m *SystemLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SystemLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.entity_type != nil {
		fields = append(fields, systemlog.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, systemlog.FieldEntityID)
	}
	if m.level != nil {
		fields = append(fields, systemlog.FieldLevel)
	}
	if m.message != nil {
		fields = append(fields, systemlog.FieldMessage)
	}
	if m.data != nil {
		fields = append(fields, systemlog.FieldData)
	}
	if m.created_at != nil {
		fields = append(fields, systemlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SystemLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case systemlog.FieldEntityType:
		return m.EntityType()
	case systemlog.FieldEntityID:
		return m.EntityID()
	case systemlog.FieldLevel:
		return m.Level()
	case systemlog.FieldMessage:
		return m.Message()
	case systemlog.FieldData:
		return m.Data()
	case systemlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SystemLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case systemlog.FieldEntityType:
		return m.OldEntityType(ctx)
	case systemlog.FieldEntityID:
		return m.OldEntityID(ctx)
	case systemlog.FieldLevel:
		return m.OldLevel(ctx)
	case systemlog.FieldMessage:
		return m.OldMessage(ctx)
	case systemlog.FieldData:
		return m.OldData(ctx)
	case systemlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SystemLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SystemLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case systemlog.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case systemlog.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case systemlog.FieldLevel:
		v, ok := value.(systemlog.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case systemlog.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case systemlog.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case systemlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SystemLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SystemLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SystemLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SystemLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SystemLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SystemLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(systemlog.FieldData) {
		fields = append(fields, systemlog.FieldData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SystemLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SystemLogMutation) ClearField(name string) error {
	switch name {
	case systemlog.FieldData:
		m.ClearData()
		return nil
	}
	return fmt.Errorf("unknown SystemLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SystemLogMutation) ResetField(name string) error {
	switch name {
	case systemlog.FieldEntityType:
		m.ResetEntityType()
		return nil
	case systemlog.FieldEntityID:
		m.ResetEntityID()
		return nil
	case systemlog.FieldLevel:
		m.ResetLevel()
		return nil
	case systemlog.FieldMessage:
		m.ResetMessage()
		return nil
	case systemlog.FieldData:
		m.ResetData()
		return nil
	case systemlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SystemLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SystemLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SystemLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SystemLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SystemLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SystemLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SystemLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SystemLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SystemLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SystemLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SystemLog edge %s", name)
}
