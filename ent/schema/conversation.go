package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Conversation holds the schema definition for the Conversation entity.
// The natural key is external_id, a conversation id issued by the
// third-party agent; the internal row id never crosses the open surface.
type Conversation struct {
	ent.Schema
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.String("external_id").NotEmpty().Unique().Immutable(),

		field.UUID("user_id", uuid.UUID{}).StorageKey("user_id").Optional(),
		field.String("external_user_id").Optional(),

		field.String("title").Default(""),
		field.JSON("messages", []ConversationMessage{}).Optional(),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// ConversationMessage is one message of a persisted conversation transcript.
type ConversationMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	SentAt  string `json:"sent_at,omitempty"`
}
