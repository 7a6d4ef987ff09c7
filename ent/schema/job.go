package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/copymill/copymill/pkg/models"
)

// Job holds the schema definition for the Job entity.
// A job is one content-generation request driven through the agent pipeline.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("keyword").
			NotEmpty().
			Comment("Target keyword the pipeline writes about"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed", "cancelled").
			Default("pending"),
		field.String("current_agent").
			Optional().
			Nillable().
			Comment("Agent currently executing (null outside processing)"),
		field.Int("current_iteration").
			Default(1).
			Comment("Writer/SEO/QA cycle counter, 1-based"),
		field.Int("max_iterations").
			Default(5),
		field.Int("total_tokens_used").
			Default(0),
		field.Float("estimated_cost_usd").
			Default(0),
		field.Int("progress_percent").
			Default(0),
		field.Int("priority").
			Default(0).
			Comment("Higher claims first"),
		field.JSON("settings", models.JobSettings{}),
		field.JSON("final_output", map[string]interface{}{}).
			Optional().
			Comment("ProjectManagerOutput, set only on completed jobs"),
		field.String("page_id").
			Optional().
			Nillable().
			Comment("Link to the produced CMS artifact"),
		field.Text("last_error").
			Optional().
			Nillable(),
		field.Bool("cancel_requested").
			Default(false).
			Comment("Cooperative cancellation flag polled between agents"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("Set when the job first leaves pending"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set when the job reaches a terminal status"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("created_by").
			Optional(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Claiming worker identity, for crash recovery"),
		field.Time("heartbeat_at").
			Optional().
			Nillable().
			Comment("Refreshed while processing; stale heartbeat marks a stuck job"),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", JobStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("evals", JobEval.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("created_by"),

		// Claim path: status + priority + created_at. The DESC/ASC ordering
		// variant lives in the SQL migration; this keeps ent's view aligned.
		index.Fields("status", "priority", "created_at"),
		index.Fields("status", "heartbeat_at"),
	}
}
