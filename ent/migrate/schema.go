// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "keyword", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "current_agent", Type: field.TypeString, Nullable: true},
		{Name: "current_iteration", Type: field.TypeInt, Default: 1},
		{Name: "max_iterations", Type: field.TypeInt, Default: 5},
		{Name: "total_tokens_used", Type: field.TypeInt, Default: 0},
		{Name: "estimated_cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "progress_percent", Type: field.TypeInt, Default: 0},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "settings", Type: field.TypeJSON},
		{Name: "final_output", Type: field.TypeJSON, Nullable: true},
		{Name: "page_id", Type: field.TypeString, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "heartbeat_at", Type: field.TypeTime, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2]},
			},
			{
				Name:    "job_created_by",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[19]},
			},
			{
				Name:    "job_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2], JobsColumns[9], JobsColumns[15]},
			},
			{
				Name:    "job_status_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2], JobsColumns[21]},
			},
		},
	}
	// JobEvalsColumns holds the columns for the "job_evals" table.
	JobEvalsColumns = []*schema.Column{
		{Name: "eval_id", Type: field.TypeString, Unique: true},
		{Name: "iteration", Type: field.TypeInt, Default: 1},
		{Name: "overall_score", Type: field.TypeInt},
		{Name: "readability_score", Type: field.TypeInt},
		{Name: "seo_score", Type: field.TypeInt},
		{Name: "accuracy_score", Type: field.TypeInt},
		{Name: "engagement_score", Type: field.TypeInt},
		{Name: "brand_voice_score", Type: field.TypeInt},
		{Name: "passed", Type: field.TypeBool},
		{Name: "issues", Type: field.TypeJSON, Nullable: true},
		{Name: "feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "fixed_issue_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "persisting_issue_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
		{Name: "step_id", Type: field.TypeString},
	}
	// JobEvalsTable holds the schema information for the "job_evals" table.
	JobEvalsTable = &schema.Table{
		Name:       "job_evals",
		Columns:    JobEvalsColumns,
		PrimaryKey: []*schema.Column{JobEvalsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_evals_jobs_evals",
				Columns:    []*schema.Column{JobEvalsColumns[14]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "job_evals_job_steps_evals",
				Columns:    []*schema.Column{JobEvalsColumns[15]},
				RefColumns: []*schema.Column{JobStepsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobeval_job_id_iteration",
				Unique:  false,
				Columns: []*schema.Column{JobEvalsColumns[14], JobEvalsColumns[1]},
			},
			{
				Name:    "jobeval_step_id",
				Unique:  false,
				Columns: []*schema.Column{JobEvalsColumns[15]},
			},
		},
	}
	// JobStepsColumns holds the columns for the "job_steps" table.
	JobStepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "agent_type", Type: field.TypeEnum, Enums: []string{"research", "writer", "seo", "qa", "project_manager"}},
		{Name: "iteration", Type: field.TypeInt, Default: 1},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "skipped"}, Default: "pending"},
		{Name: "tokens_used", Type: field.TypeInt, Default: 0},
		{Name: "prompt_tokens", Type: field.TypeInt, Default: 0},
		{Name: "completion_tokens", Type: field.TypeInt, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "input", Type: field.TypeJSON, Nullable: true},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "logs", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// JobStepsTable holds the schema information for the "job_steps" table.
	JobStepsTable = &schema.Table{
		Name:       "job_steps",
		Columns:    JobStepsColumns,
		PrimaryKey: []*schema.Column{JobStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_steps_jobs_steps",
				Columns:    []*schema.Column{JobStepsColumns[15]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobstep_job_id_iteration_agent_type",
				Unique:  true,
				Columns: []*schema.Column{JobStepsColumns[15], JobStepsColumns[2], JobStepsColumns[1]},
			},
			{
				Name:    "jobstep_job_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobStepsColumns[15], JobStepsColumns[14]},
			},
		},
	}
	// PersonasColumns holds the columns for the "personas" table.
	PersonasColumns = []*schema.Column{
		{Name: "persona_id", Type: field.TypeString, Unique: true},
		{Name: "agent_type", Type: field.TypeEnum, Enums: []string{"research", "writer", "seo", "qa", "project_manager"}},
		{Name: "name", Type: field.TypeString},
		{Name: "system_prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "temperature", Type: field.TypeFloat64, Default: 0.7},
		{Name: "max_tokens", Type: field.TypeInt, Default: 4096},
		{Name: "is_default", Type: field.TypeBool, Default: false},
		{Name: "is_enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// PersonasTable holds the schema information for the "personas" table.
	PersonasTable = &schema.Table{
		Name:       "personas",
		Columns:    PersonasColumns,
		PrimaryKey: []*schema.Column{PersonasColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "persona_agent_type",
				Unique:  false,
				Columns: []*schema.Column{PersonasColumns[1]},
			},
			{
				Name:    "persona_default_agent_type",
				Unique:  true,
				Columns: []*schema.Column{PersonasColumns[1]},
				Annotation: &entsql.IndexAnnotation{
					Where: "is_default AND deleted_at IS NULL",
				},
			},
			{
				Name:    "persona_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{PersonasColumns[12]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// SystemLogsColumns holds the columns for the "system_logs" table.
	SystemLogsColumns = []*schema.Column{
		{Name: "log_id", Type: field.TypeString, Unique: true},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"debug", "info", "warn", "error"}, Default: "info"},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SystemLogsTable holds the schema information for the "system_logs" table.
	SystemLogsTable = &schema.Table{
		Name:       "system_logs",
		Columns:    SystemLogsColumns,
		PrimaryKey: []*schema.Column{SystemLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "systemlog_entity_type_entity_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SystemLogsColumns[1], SystemLogsColumns[2], SystemLogsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		JobsTable,
		JobEvalsTable,
		JobStepsTable,
		PersonasTable,
		SystemLogsTable,
	}
)

func init() {
	JobEvalsTable.ForeignKeys[0].RefTable = JobsTable
	JobEvalsTable.ForeignKeys[1].RefTable = JobStepsTable
	JobStepsTable.ForeignKeys[0].RefTable = JobsTable
}
