package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionSummary is one element of a CognitiveState's bounded session history.
type SessionSummary struct {
	SessionID        string    `json:"session_id"`
	ContextType      string    `json:"context_type"`
	ContextID        string    `json:"context_id"`
	StartedAt        time.Time `json:"started_at"`
	EndedAt          time.Time `json:"ended_at"`
	DurationSeconds  int       `json:"duration_seconds"`
	InteractionCount int       `json:"interaction_count"`
}

// CognitiveState is the per-user singleton focus-score record. Created
// lazily on first interaction; mutated only by the cognitive tracker.
type CognitiveState struct {
	ent.Schema
}

func (CognitiveState) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique(),
		field.Float("focus_score").
			Default(50).
			Comment("Rolling focus score, clamped to [0, 100]"),
		field.Time("last_updated"),
		field.JSON("session_history", []SessionSummary{}).
			Optional().
			Comment("Append-only, capped session summaries"),
	}
}

func (CognitiveState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
