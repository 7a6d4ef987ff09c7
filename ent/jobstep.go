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
	"github.com/copymill/copymill/ent/jobstep"
)

// JobStep is the model entity for the JobStep schema.
type JobStep struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// AgentType holds the value of the "agent_type" field.
	AgentType jobstep.AgentType `json:"agent_type,omitempty"`
	// Iteration holds the value of the "iteration" field.
	Iteration int `json:"iteration,omitempty"`
	// Status holds the value of the "status" field.
	Status jobstep.Status `json:"status,omitempty"`
	// TokensUsed holds the value of the "tokens_used" field.
	TokensUsed int `json:"tokens_used,omitempty"`
	// PromptTokens holds the value of the "prompt_tokens" field.
	PromptTokens int `json:"prompt_tokens,omitempty"`
	// CompletionTokens holds the value of the "completion_tokens" field.
	CompletionTokens int `json:"completion_tokens,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int `json:"duration_ms,omitempty"`
	// Agent input snapshot
	Input map[string]interface{} `json:"input,omitempty"`
	// Agent output, present on completed steps
	Output map[string]interface{} `json:"output,omitempty"`
	// Append-only log lines for this invocation
	Logs []string `json:"logs,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobStepQuery when eager-loading is set.
	Edges        JobStepEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobStepEdges holds the relations/edges for other nodes in the graph.
type JobStepEdges struct {
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// Evals holds the value of the evals edge.
	Evals []*JobEval `json:"evals,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobStepEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// EvalsOrErr returns the Evals value or an error if the edge
// was not loaded in eager-loading.
func (e JobStepEdges) EvalsOrErr() ([]*JobEval, error) {
	if e.loadedTypes[1] {
		return e.Evals, nil
	}
	return nil, &NotLoadedError{edge: "evals"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JobStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case jobstep.FieldInput, jobstep.FieldOutput, jobstep.FieldLogs:
			values[i] = new([]byte)
		case jobstep.FieldIteration, jobstep.FieldTokensUsed, jobstep.FieldPromptTokens, jobstep.FieldCompletionTokens, jobstep.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case jobstep.FieldID, jobstep.FieldJobID, jobstep.FieldAgentType, jobstep.FieldStatus, jobstep.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case jobstep.FieldStartedAt, jobstep.FieldCompletedAt, jobstep.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobStep fields.
func (js *JobStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case jobstep.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				js.ID = value.String
			}
		case jobstep.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				js.JobID = value.String
			}
		case jobstep.FieldAgentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_type", values[i])
			} else if value.Valid {
				js.AgentType = jobstep.AgentType(value.String)
			}
		case jobstep.FieldIteration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field iteration", values[i])
			} else if value.Valid {
				js.Iteration = int(value.Int64)
			}
		case jobstep.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				js.Status = jobstep.Status(value.String)
			}
		case jobstep.FieldTokensUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_used", values[i])
			} else if value.Valid {
				js.TokensUsed = int(value.Int64)
			}
		case jobstep.FieldPromptTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_tokens", values[i])
			} else if value.Valid {
				js.PromptTokens = int(value.Int64)
			}
		case jobstep.FieldCompletionTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_tokens", values[i])
			} else if value.Valid {
				js.CompletionTokens = int(value.Int64)
			}
		case jobstep.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				js.DurationMs = new(int)
				*js.DurationMs = int(value.Int64)
			}
		case jobstep.FieldInput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field input", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &js.Input); err != nil {
					return fmt.Errorf("unmarshal field input: %w", err)
				}
			}
		case jobstep.FieldOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &js.Output); err != nil {
					return fmt.Errorf("unmarshal field output: %w", err)
				}
			}
		case jobstep.FieldLogs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field logs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &js.Logs); err != nil {
					return fmt.Errorf("unmarshal field logs: %w", err)
				}
			}
		case jobstep.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				js.ErrorMessage = new(string)
				*js.ErrorMessage = value.String
			}
		case jobstep.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				js.StartedAt = new(time.Time)
				*js.StartedAt = value.Time
			}
		case jobstep.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				js.CompletedAt = new(time.Time)
				*js.CompletedAt = value.Time
			}
		case jobstep.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				js.CreatedAt = value.Time
			}
		default:
			js.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JobStep.
// This includes values selected through modifiers, order, etc.
func (js *JobStep) Value(name string) (ent.Value, error) {
	return js.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the JobStep entity.
func (js *JobStep) QueryJob() *JobQuery {
	return NewJobStepClient(js.config).QueryJob(js)
}

// QueryEvals queries the "evals" edge of the JobStep entity.
func (js *JobStep) QueryEvals() *JobEvalQuery {
	return NewJobStepClient(js.config).QueryEvals(js)
}

// Update returns a builder for updating this JobStep.
// Note that you need to call JobStep.Unwrap() before calling this method if this JobStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (js *JobStep) Update() *JobStepUpdateOne {
	return NewJobStepClient(js.config).UpdateOne(js)
}

// Unwrap unwraps the JobStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (js *JobStep) Unwrap() *JobStep {
	_tx, ok := js.config.driver.(*txDriver)
	if !ok {
		panic("ent: JobStep is not a transactional entity")
	}
	js.config.driver = _tx.drv
	return js
}

// String implements the fmt.Stringer.
func (js *JobStep) String() string {
	var builder strings.Builder
	builder.WriteString("JobStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", js.ID))
	builder.WriteString("job_id=")
	builder.WriteString(js.JobID)
	builder.WriteString(", ")
	builder.WriteString("agent_type=")
	builder.WriteString(fmt.Sprintf("%v", js.AgentType))
	builder.WriteString(", ")
	builder.WriteString("iteration=")
	builder.WriteString(fmt.Sprintf("%v", js.Iteration))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", js.Status))
	builder.WriteString(", ")
	builder.WriteString("tokens_used=")
	builder.WriteString(fmt.Sprintf("%v", js.TokensUsed))
	builder.WriteString(", ")
	builder.WriteString("prompt_tokens=")
	builder.WriteString(fmt.Sprintf("%v", js.PromptTokens))
	builder.WriteString(", ")
	builder.WriteString("completion_tokens=")
	builder.WriteString(fmt.Sprintf("%v", js.CompletionTokens))
	builder.WriteString(", ")
	if v := js.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("input=")
	builder.WriteString(fmt.Sprintf("%v", js.Input))
	builder.WriteString(", ")
	builder.WriteString("output=")
	builder.WriteString(fmt.Sprintf("%v", js.Output))
	builder.WriteString(", ")
	builder.WriteString("logs=")
	builder.WriteString(fmt.Sprintf("%v", js.Logs))
	builder.WriteString(", ")
	if v := js.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := js.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := js.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(js.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// JobSteps is a parsable slice of JobStep.
type JobSteps []*JobStep
