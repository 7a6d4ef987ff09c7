// Code generated by ent, DO NOT EDIT.

package jobeval

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the jobeval type in the database.
	Label = "job_eval"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "eval_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldStepID holds the string denoting the step_id field in the database.
	FieldStepID = "step_id"
	// FieldIteration holds the string denoting the iteration field in the database.
	FieldIteration = "iteration"
	// FieldOverallScore holds the string denoting the overall_score field in the database.
	FieldOverallScore = "overall_score"
	// FieldReadabilityScore holds the string denoting the readability_score field in the database.
	FieldReadabilityScore = "readability_score"
	// FieldSeoScore holds the string denoting the seo_score field in the database.
	FieldSeoScore = "seo_score"
	// FieldAccuracyScore holds the string denoting the accuracy_score field in the database.
	FieldAccuracyScore = "accuracy_score"
	// FieldEngagementScore holds the string denoting the engagement_score field in the database.
	FieldEngagementScore = "engagement_score"
	// FieldBrandVoiceScore holds the string denoting the brand_voice_score field in the database.
	FieldBrandVoiceScore = "brand_voice_score"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldIssues holds the string denoting the issues field in the database.
	FieldIssues = "issues"
	// FieldFeedback holds the string denoting the feedback field in the database.
	FieldFeedback = "feedback"
	// FieldFixedIssueIds holds the string denoting the fixed_issue_ids field in the database.
	FieldFixedIssueIds = "fixed_issue_ids"
	// FieldPersistingIssueIds holds the string denoting the persisting_issue_ids field in the database.
	FieldPersistingIssueIds = "persisting_issue_ids"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// EdgeStep holds the string denoting the step edge name in mutations.
	EdgeStep = "step"
	// JobFieldID holds the string denoting the ID field of the Job.
	JobFieldID = "job_id"
	// JobStepFieldID holds the string denoting the ID field of the JobStep.
	JobStepFieldID = "step_id"
	// Table holds the table name of the jobeval in the database.
	Table = "job_evals"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "job_evals"
	// JobInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	JobInverseTable = "jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
	// StepTable is the table that holds the step relation/edge.
	StepTable = "job_evals"
	// StepInverseTable is the table name for the JobStep entity.
	// It exists in this package in order to avoid circular dependency with the "jobstep" package.
	StepInverseTable = "job_steps"
	// StepColumn is the table column denoting the step relation/edge.
	StepColumn = "step_id"
)

// Columns holds all SQL columns for jobeval fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldStepID,
	FieldIteration,
	FieldOverallScore,
	FieldReadabilityScore,
	FieldSeoScore,
	FieldAccuracyScore,
	FieldEngagementScore,
	FieldBrandVoiceScore,
	FieldPassed,
	FieldIssues,
	FieldFeedback,
	FieldFixedIssueIds,
	FieldPersistingIssueIds,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultIteration holds the default value on creation for the "iteration" field.
	DefaultIteration int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the JobEval queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByStepID orders the results by the step_id field.
func ByStepID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepID, opts...).ToFunc()
}

// ByIteration orders the results by the iteration field.
func ByIteration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIteration, opts...).ToFunc()
}

// ByOverallScore orders the results by the overall_score field.
func ByOverallScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallScore, opts...).ToFunc()
}

// ByReadabilityScore orders the results by the readability_score field.
func ByReadabilityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadabilityScore, opts...).ToFunc()
}

// BySeoScore orders the results by the seo_score field.
func BySeoScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeoScore, opts...).ToFunc()
}

// ByAccuracyScore orders the results by the accuracy_score field.
func ByAccuracyScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccuracyScore, opts...).ToFunc()
}

// ByEngagementScore orders the results by the engagement_score field.
func ByEngagementScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagementScore, opts...).ToFunc()
}

// ByBrandVoiceScore orders the results by the brand_voice_score field.
func ByBrandVoiceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrandVoiceScore, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByFeedback orders the results by the feedback field.
func ByFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedback, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}

// ByStepField orders the results by step field.
func ByStepField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, JobFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
func newStepStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepInverseTable, JobStepFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StepTable, StepColumn),
	)
}
