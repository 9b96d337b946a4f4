package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Interview holds the schema definition for the Interview entity. A
// multi-turn interview is persisted incrementally: the agent PATCHes the
// same interview id across turns instead of holding a connection open.
type Interview struct {
	ent.Schema
}

// Fields of the Interview.
func (Interview) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.UUID("user_id", uuid.UUID{}).StorageKey("user_id").Optional(),
		field.String("external_user_id").Optional(),
		field.UUID("job_id", uuid.UUID{}).StorageKey("job_id").Optional(),

		field.Enum("status").
			Values("in_progress", "completed").
			Default("in_progress"),

		// Index of the next question to ask; drives resumption.
		field.Int("current_index").Default(0).NonNegative(),

		field.JSON("questions", []string{}).Optional(),
		field.JSON("answers", []InterviewAnswer{}).Optional(),

		// Terminal evaluation, present only once completed.
		field.Float("score").Optional().Nillable(),
		field.Text("feedback").Default(""),

		// Set once, on transition to completed.
		field.Time("completed_at").Optional().Nillable(),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// InterviewAnswer is one recorded turn of an interview.
type InterviewAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
