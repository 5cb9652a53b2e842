package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEntry is one element of a ProgressRecord's bounded review history.
type ReviewEntry struct {
	Date           time.Time `json:"date"`
	Quality        float64   `json:"quality"`
	IntervalDays   int       `json:"interval_days"`
	EasinessFactor float64   `json:"easiness_factor"`
}

// ProgressRecord holds per (user, lesson) completion status and SM-2 state.
// Mutated only by the SRS scheduler; never deleted.
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("lesson_id").
			NotEmpty(),
		field.Enum("status").
			Values("not_started", "completed", "mastered").
			Default("not_started"),
		field.Float("easiness_factor").
			Default(2.5).
			Comment("SM-2 easiness factor, floor 1.3"),
		field.Int("repetitions").
			Default(0).
			Comment("Consecutive successful recalls"),
		field.Int("interval_days").
			Default(1).
			Comment("Current review interval in calendar days"),
		field.Time("next_review_date"),
		field.Time("last_reviewed_date").
			Optional().
			Nillable(),
		field.JSON("review_history", []ReviewEntry{}).
			Optional().
			Comment("Append-only, capped review log"),
	}
}

func (ProgressRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "lesson_id").Unique(),
		// Range scans for the due-set query.
		index.Fields("user_id", "next_review_date"),
	}
}
