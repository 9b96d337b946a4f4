package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Resume holds the schema definition for the Resume entity. Resumes owned
// by external identities are keyed by external_user_id, which doubles as
// the upsert natural key for the open surface.
type Resume struct {
	ent.Schema
}

// Fields of the Resume.
func (Resume) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.UUID("user_id", uuid.UUID{}).StorageKey("user_id").Optional(),
		field.String("external_user_id").Optional().Unique(),

		field.Text("resume_text").Default(""),

		field.JSON("skills", []string{}).Optional(),
		field.JSON("education", []map[string]interface{}{}).Optional(),
		field.JSON("experience", []map[string]interface{}{}).Optional(),
		field.JSON("contact", map[string]interface{}{}).Optional(),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
