package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records a single spaced-repetition review submission.
// The append-only log backs analytics; the capped history on
// ProgressRecord is a convenience view of the tail.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("lesson_id").
			NotEmpty(),
		field.Float("quality").
			Comment("Recall quality score in [0, 5]"),
		field.Float("easiness_factor").
			Comment("Easiness factor after this review"),
		field.Int("repetitions").
			Comment("Repetition count after this review"),
		field.Int("interval_days").
			Comment("Interval after this review"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "lesson_id"),
	}
}
