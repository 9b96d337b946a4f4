package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.String("name").NotEmpty(),

		field.String("email").Unique().NotEmpty(),

		field.Text("password_hash").Sensitive().NotEmpty(),

		// Tenant role. Admins belong to no tenant; enterprise users belong to
		// an enterprise, school/student users to a school (never both).
		field.Enum("role").
			Values("admin", "enterprise", "school", "government", "student").
			Default("student"),

		field.UUID("enterprise_id", uuid.UUID{}).StorageKey("enterprise_id").Optional(),
		field.UUID("school_id", uuid.UUID{}).StorageKey("school_id").Optional(),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		// User may belong to an enterprise (recruiters).
		edge.From("enterprise", Enterprise.Type).
			Ref("members").
			Unique().
			Field("enterprise_id"),

		// User may belong to a school (students).
		edge.From("school", School.Type).
			Ref("students").
			Unique().
			Field("school_id"),

		// User can file multiple applications.
		edge.To("applications", Application.Type),
	}
}
