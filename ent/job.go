// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/copymill/copymill/ent/job"
	"github.com/copymill/copymill/pkg/models"
)

// Job is the model entity for the Job schema.
type Job struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Target keyword the pipeline writes about
	Keyword string `json:"keyword,omitempty"`
	// Status holds the value of the "status" field.
	Status job.Status `json:"status,omitempty"`
	// Agent currently executing (null outside processing)
	CurrentAgent *string `json:"current_agent,omitempty"`
	// Writer/SEO/QA cycle counter, 1-based
	CurrentIteration int `json:"current_iteration,omitempty"`
	// MaxIterations holds the value of the "max_iterations" field.
	MaxIterations int `json:"max_iterations,omitempty"`
	// TotalTokensUsed holds the value of the "total_tokens_used" field.
	TotalTokensUsed int `json:"total_tokens_used,omitempty"`
	// EstimatedCostUsd holds the value of the "estimated_cost_usd" field.
	EstimatedCostUsd float64 `json:"estimated_cost_usd,omitempty"`
	// ProgressPercent holds the value of the "progress_percent" field.
	ProgressPercent int `json:"progress_percent,omitempty"`
	// Higher claims first
	Priority int `json:"priority,omitempty"`
	// Settings holds the value of the "settings" field.
	Settings models.JobSettings `json:"settings,omitempty"`
	// ProjectManagerOutput, set only on completed jobs
	FinalOutput map[string]interface{} `json:"final_output,omitempty"`
	// Link to the produced CMS artifact
	PageID *string `json:"page_id,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// Cooperative cancellation flag polled between agents
	CancelRequested bool `json:"cancel_requested,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Set when the job first leaves pending
	StartedAt *time.Time `json:"started_at,omitempty"`
	// Set when the job reaches a terminal status
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// Claiming worker identity, for crash recovery
	PodID *string `json:"pod_id,omitempty"`
	// Refreshed while processing; stale heartbeat marks a stuck job
	HeartbeatAt *time.Time `json:"heartbeat_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobQuery when eager-loading is set.
	Edges        JobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobEdges holds the relations/edges for other nodes in the graph.
type JobEdges struct {
	// Steps holds the value of the steps edge.
	Steps []*JobStep `json:"steps,omitempty"`
	// Evals holds the value of the evals edge.
	Evals []*JobEval `json:"evals,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e JobEdges) StepsOrErr() ([]*JobStep, error) {
	if e.loadedTypes[0] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// EvalsOrErr returns the Evals value or an error if the edge
// was not loaded in eager-loading.
func (e JobEdges) EvalsOrErr() ([]*JobEval, error) {
	if e.loadedTypes[1] {
		return e.Evals, nil
	}
	return nil, &NotLoadedError{edge: "evals"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Job) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case job.FieldSettings, job.FieldFinalOutput:
			values[i] = new([]byte)
		case job.FieldCancelRequested:
			values[i] = new(sql.NullBool)
		case job.FieldEstimatedCostUsd:
			values[i] = new(sql.NullFloat64)
		case job.FieldCurrentIteration, job.FieldMaxIterations, job.FieldTotalTokensUsed, job.FieldProgressPercent, job.FieldPriority:
			values[i] = new(sql.NullInt64)
		case job.FieldID, job.FieldKeyword, job.FieldStatus, job.FieldCurrentAgent, job.FieldPageID, job.FieldLastError, job.FieldCreatedBy, job.FieldPodID:
			values[i] = new(sql.NullString)
		case job.FieldCreatedAt, job.FieldStartedAt, job.FieldCompletedAt, job.FieldUpdatedAt, job.FieldHeartbeatAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Job fields.
func (j *Job) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case job.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				j.ID = value.String
			}
		case job.FieldKeyword:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field keyword", values[i])
			} else if value.Valid {
				j.Keyword = value.String
			}
		case job.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				j.Status = job.Status(value.String)
			}
		case job.FieldCurrentAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_agent", values[i])
			} else if value.Valid {
				j.CurrentAgent = new(string)
				*j.CurrentAgent = value.String
			}
		case job.FieldCurrentIteration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_iteration", values[i])
			} else if value.Valid {
				j.CurrentIteration = int(value.Int64)
			}
		case job.FieldMaxIterations:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_iterations", values[i])
			} else if value.Valid {
				j.MaxIterations = int(value.Int64)
			}
		case job.FieldTotalTokensUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens_used", values[i])
			} else if value.Valid {
				j.TotalTokensUsed = int(value.Int64)
			}
		case job.FieldEstimatedCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_cost_usd", values[i])
			} else if value.Valid {
				j.EstimatedCostUsd = value.Float64
			}
		case job.FieldProgressPercent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress_percent", values[i])
			} else if value.Valid {
				j.ProgressPercent = int(value.Int64)
			}
		case job.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				j.Priority = int(value.Int64)
			}
		case job.FieldSettings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field settings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &j.Settings); err != nil {
					return fmt.Errorf("unmarshal field settings: %w", err)
				}
			}
		case job.FieldFinalOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field final_output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &j.FinalOutput); err != nil {
					return fmt.Errorf("unmarshal field final_output: %w", err)
				}
			}
		case job.FieldPageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field page_id", values[i])
			} else if value.Valid {
				j.PageID = new(string)
				*j.PageID = value.String
			}
		case job.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				j.LastError = new(string)
				*j.LastError = value.String
			}
		case job.FieldCancelRequested:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cancel_requested", values[i])
			} else if value.Valid {
				j.CancelRequested = value.Bool
			}
		case job.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				j.CreatedAt = value.Time
			}
		case job.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				j.StartedAt = new(time.Time)
				*j.StartedAt = value.Time
			}
		case job.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				j.CompletedAt = new(time.Time)
				*j.CompletedAt = value.Time
			}
		case job.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				j.UpdatedAt = value.Time
			}
		case job.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				j.CreatedBy = value.String
			}
		case job.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				j.PodID = new(string)
				*j.PodID = value.String
			}
		case job.FieldHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field heartbeat_at", values[i])
			} else if value.Valid {
				j.HeartbeatAt = new(time.Time)
				*j.HeartbeatAt = value.Time
			}
		default:
			j.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Job.
// This includes values selected through modifiers, order, etc.
func (j *Job) Value(name string) (ent.Value, error) {
	return j.selectValues.Get(name)
}

// QuerySteps queries the "steps" edge of the Job entity.
func (j *Job) QuerySteps() *JobStepQuery {
	return NewJobClient(j.config).QuerySteps(j)
}

// QueryEvals queries the "evals" edge of the Job entity.
func (j *Job) QueryEvals() *JobEvalQuery {
	return NewJobClient(j.config).QueryEvals(j)
}

// Update returns a builder for updating this Job.
// Note that you need to call Job.Unwrap() before calling this method if this Job
// was returned from a transaction, and the transaction was committed or rolled back.
func (j *Job) Update() *JobUpdateOne {
	return NewJobClient(j.config).UpdateOne(j)
}

// Unwrap unwraps the Job entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (j *Job) Unwrap() *Job {
	_tx, ok := j.config.driver.(*txDriver)
	if !ok {
		panic("ent: Job is not a transactional entity")
	}
	j.config.driver = _tx.drv
	return j
}

// String implements the fmt.Stringer.
func (j *Job) String() string {
	var builder strings.Builder
	builder.WriteString("Job(")
	builder.WriteString(fmt.Sprintf("id=%v, ", j.ID))
	builder.WriteString("keyword=")
	builder.WriteString(j.Keyword)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", j.Status))
	builder.WriteString(", ")
	if v := j.CurrentAgent; v != nil {
		builder.WriteString("current_agent=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("current_iteration=")
	builder.WriteString(fmt.Sprintf("%v", j.CurrentIteration))
	builder.WriteString(", ")
	builder.WriteString("max_iterations=")
	builder.WriteString(fmt.Sprintf("%v", j.MaxIterations))
	builder.WriteString(", ")
	builder.WriteString("total_tokens_used=")
	builder.WriteString(fmt.Sprintf("%v", j.TotalTokensUsed))
	builder.WriteString(", ")
	builder.WriteString("estimated_cost_usd=")
	builder.WriteString(fmt.Sprintf("%v", j.EstimatedCostUsd))
	builder.WriteString(", ")
	builder.WriteString("progress_percent=")
	builder.WriteString(fmt.Sprintf("%v", j.ProgressPercent))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", j.Priority))
	builder.WriteString(", ")
	builder.WriteString("settings=")
	builder.WriteString(fmt.Sprintf("%v", j.Settings))
	builder.WriteString(", ")
	builder.WriteString("final_output=")
	builder.WriteString(fmt.Sprintf("%v", j.FinalOutput))
	builder.WriteString(", ")
	if v := j.PageID; v != nil {
		builder.WriteString("page_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := j.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("cancel_requested=")
	builder.WriteString(fmt.Sprintf("%v", j.CancelRequested))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(j.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := j.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := j.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(j.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(j.CreatedBy)
	builder.WriteString(", ")
	if v := j.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := j.HeartbeatAt; v != nil {
		builder.WriteString("heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Jobs is a parsable slice of Job.
type Jobs []*Job
