package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records a closed telemetry session.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("session_id").
			NotEmpty().
			Comment("UUID assigned at session start"),
		field.String("context_type").
			NotEmpty().
			Comment("lesson, quiz, or review"),
		field.String("context_id").
			NotEmpty(),
		field.Int("duration_secs").
			Default(0),
		field.Int("interaction_count").
			Default(0),
		field.Bool("superseded").
			Default(false).
			Comment("True when the session was auto-closed by a newer start"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("session_id"),
	}
}
