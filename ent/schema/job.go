package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Job holds the schema definition for the Job entity.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.UUID("enterprise_id", uuid.UUID{}).StorageKey("enterprise_id").Immutable(),

		// Title and description may be empty while the job is a draft;
		// publishing requires both to be non-empty.
		field.String("title").Optional(),
		field.Text("description").Optional(),
		field.String("location").Optional(),
		field.String("salary_range").Optional(),

		// Archived is reserved and not reachable through normal transitions.
		field.Enum("status").
			Values("draft", "published", "closed", "archived").
			Default("draft"),

		// Set once, on first publish. Re-publishing never resets it.
		field.Time("published_at").Optional().Nillable(),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		// Job belongs to exactly one enterprise. Required edge.
		edge.From("enterprise", Enterprise.Type).
			Ref("jobs").
			Required().
			Unique().
			Immutable().
			Field("enterprise_id"),

		// Job has multiple applications. No cascade: jobs carrying
		// applications are only deletable while still drafts.
		edge.To("applications", Application.Type),
	}
}
