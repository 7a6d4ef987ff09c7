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
	"github.com/copymill/copymill/ent/jobeval"
	"github.com/copymill/copymill/ent/jobstep"
	"github.com/copymill/copymill/pkg/models"
)

// JobEval is the model entity for the JobEval schema.
type JobEval struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// StepID holds the value of the "step_id" field.
	StepID string `json:"step_id,omitempty"`
	// Iteration holds the value of the "iteration" field.
	Iteration int `json:"iteration,omitempty"`
	// 0-100 after prohibited-pattern and severity penalties
	OverallScore int `json:"overall_score,omitempty"`
	// ReadabilityScore holds the value of the "readability_score" field.
	ReadabilityScore int `json:"readability_score,omitempty"`
	// SeoScore holds the value of the "seo_score" field.
	SeoScore int `json:"seo_score,omitempty"`
	// AccuracyScore holds the value of the "accuracy_score" field.
	AccuracyScore int `json:"accuracy_score,omitempty"`
	// EngagementScore holds the value of the "engagement_score" field.
	EngagementScore int `json:"engagement_score,omitempty"`
	// BrandVoiceScore holds the value of the "brand_voice_score" field.
	BrandVoiceScore int `json:"brand_voice_score,omitempty"`
	// Passed holds the value of the "passed" field.
	Passed bool `json:"passed,omitempty"`
	// Issues holds the value of the "issues" field.
	Issues []models.Issue `json:"issues,omitempty"`
	// Feedback holds the value of the "feedback" field.
	Feedback string `json:"feedback,omitempty"`
	// Issue fingerprints present in the prior iteration, absent now
	FixedIssueIds []string `json:"fixed_issue_ids,omitempty"`
	// Issue fingerprints carried over from the prior iteration
	PersistingIssueIds []string `json:"persisting_issue_ids,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobEvalQuery when eager-loading is set.
	Edges        JobEvalEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobEvalEdges holds the relations/edges for other nodes in the graph.
type JobEvalEdges struct {
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// Step holds the value of the step edge.
	Step *JobStep `json:"step,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobEvalEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// StepOrErr returns the Step value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobEvalEdges) StepOrErr() (*JobStep, error) {
	if e.Step != nil {
		return e.Step, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: jobstep.Label}
	}
	return nil, &NotLoadedError{edge: "step"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JobEval) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case jobeval.FieldIssues, jobeval.FieldFixedIssueIds, jobeval.FieldPersistingIssueIds:
			values[i] = new([]byte)
		case jobeval.FieldPassed:
			values[i] = new(sql.NullBool)
		case jobeval.FieldIteration, jobeval.FieldOverallScore, jobeval.FieldReadabilityScore, jobeval.FieldSeoScore, jobeval.FieldAccuracyScore, jobeval.FieldEngagementScore, jobeval.FieldBrandVoiceScore:
			values[i] = new(sql.NullInt64)
		case jobeval.FieldID, jobeval.FieldJobID, jobeval.FieldStepID, jobeval.FieldFeedback:
			values[i] = new(sql.NullString)
		case jobeval.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobEval fields.
func (je *JobEval) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case jobeval.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				je.ID = value.String
			}
		case jobeval.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				je.JobID = value.String
			}
		case jobeval.FieldStepID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_id", values[i])
			} else if value.Valid {
				je.StepID = value.String
			}
		case jobeval.FieldIteration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field iteration", values[i])
			} else if value.Valid {
				je.Iteration = int(value.Int64)
			}
		case jobeval.FieldOverallScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_score", values[i])
			} else if value.Valid {
				je.OverallScore = int(value.Int64)
			}
		case jobeval.FieldReadabilityScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field readability_score", values[i])
			} else if value.Valid {
				je.ReadabilityScore = int(value.Int64)
			}
		case jobeval.FieldSeoScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seo_score", values[i])
			} else if value.Valid {
				je.SeoScore = int(value.Int64)
			}
		case jobeval.FieldAccuracyScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy_score", values[i])
			} else if value.Valid {
				je.AccuracyScore = int(value.Int64)
			}
		case jobeval.FieldEngagementScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_score", values[i])
			} else if value.Valid {
				je.EngagementScore = int(value.Int64)
			}
		case jobeval.FieldBrandVoiceScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field brand_voice_score", values[i])
			} else if value.Valid {
				je.BrandVoiceScore = int(value.Int64)
			}
		case jobeval.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				je.Passed = value.Bool
			}
		case jobeval.FieldIssues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field issues", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &je.Issues); err != nil {
					return fmt.Errorf("unmarshal field issues: %w", err)
				}
			}
		case jobeval.FieldFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				je.Feedback = value.String
			}
		case jobeval.FieldFixedIssueIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field fixed_issue_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &je.FixedIssueIds); err != nil {
					return fmt.Errorf("unmarshal field fixed_issue_ids: %w", err)
				}
			}
		case jobeval.FieldPersistingIssueIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field persisting_issue_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &je.PersistingIssueIds); err != nil {
					return fmt.Errorf("unmarshal field persisting_issue_ids: %w", err)
				}
			}
		case jobeval.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				je.CreatedAt = value.Time
			}
		default:
			je.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JobEval.
// This includes values selected through modifiers, order, etc.
func (je *JobEval) Value(name string) (ent.Value, error) {
	return je.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the JobEval entity.
func (je *JobEval) QueryJob() *JobQuery {
	return NewJobEvalClient(je.config).QueryJob(je)
}

// QueryStep queries the "step" edge of the JobEval entity.
func (je *JobEval) QueryStep() *JobStepQuery {
	return NewJobEvalClient(je.config).QueryStep(je)
}

// Update returns a builder for updating this JobEval.
// Note that you need to call JobEval.Unwrap() before calling this method if this JobEval
// was returned from a transaction, and the transaction was committed or rolled back.
func (je *JobEval) Update() *JobEvalUpdateOne {
	return NewJobEvalClient(je.config).UpdateOne(je)
}

// Unwrap unwraps the JobEval entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (je *JobEval) Unwrap() *JobEval {
	_tx, ok := je.config.driver.(*txDriver)
	if !ok {
		panic("ent: JobEval is not a transactional entity")
	}
	je.config.driver = _tx.drv
	return je
}

// String implements the fmt.Stringer.
func (je *JobEval) String() string {
	var builder strings.Builder
	builder.WriteString("JobEval(")
	builder.WriteString(fmt.Sprintf("id=%v, ", je.ID))
	builder.WriteString("job_id=")
	builder.WriteString(je.JobID)
	builder.WriteString(", ")
	builder.WriteString("step_id=")
	builder.WriteString(je.StepID)
	builder.WriteString(", ")
	builder.WriteString("iteration=")
	builder.WriteString(fmt.Sprintf("%v", je.Iteration))
	builder.WriteString(", ")
	builder.WriteString("overall_score=")
	builder.WriteString(fmt.Sprintf("%v", je.OverallScore))
	builder.WriteString(", ")
	builder.WriteString("readability_score=")
	builder.WriteString(fmt.Sprintf("%v", je.ReadabilityScore))
	builder.WriteString(", ")
	builder.WriteString("seo_score=")
	builder.WriteString(fmt.Sprintf("%v", je.SeoScore))
	builder.WriteString(", ")
	builder.WriteString("accuracy_score=")
	builder.WriteString(fmt.Sprintf("%v", je.AccuracyScore))
	builder.WriteString(", ")
	builder.WriteString("engagement_score=")
	builder.WriteString(fmt.Sprintf("%v", je.EngagementScore))
	builder.WriteString(", ")
	builder.WriteString("brand_voice_score=")
	builder.WriteString(fmt.Sprintf("%v", je.BrandVoiceScore))
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", je.Passed))
	builder.WriteString(", ")
	builder.WriteString("issues=")
	builder.WriteString(fmt.Sprintf("%v", je.Issues))
	builder.WriteString(", ")
	builder.WriteString("feedback=")
	builder.WriteString(je.Feedback)
	builder.WriteString(", ")
	builder.WriteString("fixed_issue_ids=")
	builder.WriteString(fmt.Sprintf("%v", je.FixedIssueIds))
	builder.WriteString(", ")
	builder.WriteString("persisting_issue_ids=")
	builder.WriteString(fmt.Sprintf("%v", je.PersistingIssueIds))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(je.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// JobEvals is a parsable slice of JobEval.
type JobEvals []*JobEval
