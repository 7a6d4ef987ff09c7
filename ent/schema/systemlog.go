package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SystemLog holds the schema definition for the SystemLog entity.
// Structured log sink rows; the jobs API serves the last N per entity.
type SystemLog struct {
	ent.Schema
}

// Fields of the SystemLog.
func (SystemLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("log_id").
			Unique().
			Immutable(),
		field.String("entity_type").
			Comment("e.g. 'job'"),
		field.String("entity_id"),
		field.Enum("level").
			Values("debug", "info", "warn", "error").
			Default("info"),
		field.Text("message"),
		field.JSON("data", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the SystemLog.
func (SystemLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_type", "entity_id", "created_at"),
	}
}
