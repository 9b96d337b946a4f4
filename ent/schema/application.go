package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Application holds the schema definition for the Application entity.
// Exactly one of user_id / external_user_id identifies the applicant:
// user_id references an internal User, external_user_id is an opaque
// key issued by the conversational agent with no FK integrity.
type Application struct {
	ent.Schema
}

// Fields of the Application.
func (Application) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.UUID("job_id", uuid.UUID{}).StorageKey("job_id").Immutable(),

		field.UUID("user_id", uuid.UUID{}).StorageKey("user_id").Optional().Immutable(),
		field.String("external_user_id").Optional().Immutable(),

		field.UUID("resume_id", uuid.UUID{}).StorageKey("resume_id").Optional(),
		field.UUID("interview_id", uuid.UUID{}).StorageKey("interview_id").Optional(),

		field.Enum("status").
			Values("pending", "viewed", "interviewing", "offered", "rejected", "withdrawn").
			Default("pending"),

		// Opaque score supplied by the agent; never computed here.
		field.Float("match_score").Optional().Nillable(),

		field.Text("notes").Default(""),

		// Set once, on first transition into viewed.
		field.Time("viewed_at").Optional().Nillable(),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Application) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "application"},
	}
}

// Indexes of the Application. The two partial unique indexes carry the
// at-most-one-application-per-(identity, job) invariant: NULL columns are
// excluded from postgres unique indexes, so each index only constrains
// rows of its identity variant.
func (Application) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "user_id").Unique(),
		index.Fields("job_id", "external_user_id").Unique(),
	}
}

// Edges of the Application.
func (Application) Edges() []ent.Edge {
	return []ent.Edge{
		// Application targets a specific Job. Required edge.
		edge.From("job", Job.Type).
			Ref("applications").
			Required().
			Unique().
			Immutable().
			Field("job_id"),

		// Application may be filed by an internal user. External
		// applications carry no user edge at all.
		edge.From("applicant", User.Type).
			Ref("applications").
			Unique().
			Immutable().
			Field("user_id"),
	}
}
