package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Enterprise holds the schema definition for the Enterprise entity.
// An enterprise is the tenant that owns jobs and reviews applications.
type Enterprise struct {
	ent.Schema
}

// Fields of the Enterprise.
func (Enterprise) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.String("name").NotEmpty(),
		field.String("industry").Optional(),
		field.Text("description").Optional(),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the Enterprise.
func (Enterprise) Edges() []ent.Edge {
	return []ent.Edge{
		// Enterprise posts multiple jobs.
		edge.To("jobs", Job.Type),

		// Enterprise has member users (recruiters).
		edge.To("members", User.Type),
	}
}
