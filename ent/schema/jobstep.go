package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JobStep holds the schema definition for the JobStep entity.
// One row per agent invocation; steps form an append-only per-job log.
type JobStep struct {
	ent.Schema
}

// Fields of the JobStep.
func (JobStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.Enum("agent_type").
			Values("research", "writer", "seo", "qa", "project_manager"),
		field.Int("iteration").
			Default(1),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "skipped").
			Default("pending"),
		field.Int("tokens_used").
			Default(0),
		field.Int("prompt_tokens").
			Default(0),
		field.Int("completion_tokens").
			Default(0),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.JSON("input", map[string]interface{}{}).
			Optional().
			Comment("Agent input snapshot"),
		field.JSON("output", map[string]interface{}{}).
			Optional().
			Comment("Agent output, present on completed steps"),
		field.JSON("logs", []string{}).
			Optional().
			Comment("Append-only log lines for this invocation"),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the JobStep.
func (JobStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("steps").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
		edge.To("evals", JobEval.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the JobStep.
func (JobStep) Indexes() []ent.Index {
	return []ent.Index{
		// (job_id, iteration, agent_type) identifies a unique step.
		index.Fields("job_id", "iteration", "agent_type").
			Unique(),
		index.Fields("job_id", "created_at"),
	}
}
