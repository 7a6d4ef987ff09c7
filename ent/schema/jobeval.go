package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/copymill/copymill/pkg/models"
)

// JobEval holds the schema definition for the JobEval entity.
// One row per QA run, linked to the QA step that produced it.
type JobEval struct {
	ent.Schema
}

// Fields of the JobEval.
func (JobEval) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("eval_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.String("step_id").
			Immutable(),
		field.Int("iteration").
			Default(1),
		field.Int("overall_score").
			Comment("0-100 after prohibited-pattern and severity penalties"),
		field.Int("readability_score"),
		field.Int("seo_score"),
		field.Int("accuracy_score"),
		field.Int("engagement_score"),
		field.Int("brand_voice_score"),
		field.Bool("passed"),
		field.JSON("issues", []models.Issue{}).
			Optional(),
		field.Text("feedback").
			Optional(),
		field.JSON("fixed_issue_ids", []string{}).
			Optional().
			Comment("Issue fingerprints present in the prior iteration, absent now"),
		field.JSON("persisting_issue_ids", []string{}).
			Optional().
			Comment("Issue fingerprints carried over from the prior iteration"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the JobEval.
func (JobEval) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("evals").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
		edge.From("step", JobStep.Type).
			Ref("evals").
			Field("step_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the JobEval.
func (JobEval) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "iteration"),
		index.Fields("step_id"),
	}
}
