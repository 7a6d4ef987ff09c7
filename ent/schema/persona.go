package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Persona holds the schema definition for the Persona entity.
// Static prompt/model configuration bound to an agent type. Personas are
// shared by reference; jobs never own them.
type Persona struct {
	ent.Schema
}

// Fields of the Persona.
func (Persona) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("persona_id").
			Unique().
			Immutable(),
		field.Enum("agent_type").
			Values("research", "writer", "seo", "qa", "project_manager"),
		field.String("name").
			NotEmpty(),
		field.Text("system_prompt"),
		field.String("provider").
			Comment("LLM vendor key, e.g. 'openai' or 'anthropic'"),
		field.String("model"),
		field.Float("temperature").
			Default(0.7),
		field.Int("max_tokens").
			Default(4096),
		field.Bool("is_default").
			Default(false),
		field.Bool("is_enabled").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete"),
	}
}

// Indexes of the Persona.
func (Persona) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_type"),

		// At most one live default per agent type.
		index.Fields("agent_type").
			Unique().
			StorageKey("persona_default_agent_type").
			Annotations(entsql.IndexWhere("is_default AND deleted_at IS NULL")),

		// Partial index for soft deletes
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
