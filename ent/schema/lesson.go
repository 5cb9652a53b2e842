package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lesson belongs to exactly one Subject. Subjects own an ordered
// collection of lessons; position is the ordering key.
type Lesson struct {
	ent.Schema
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.String("lesson_id").
			NotEmpty().
			Unique().
			Comment("Stable content identifier"),
		field.String("subject_id").
			NotEmpty().
			Comment("Owning subject"),
		field.String("title").
			NotEmpty().
			Comment("Display title"),
		field.Int("position").
			Comment("Order within the subject"),
		field.Bool("is_reviewable").
			Default(true).
			Comment("Whether the lesson enters spaced repetition after completion"),
		field.String("audio_preset").
			Optional().
			Comment("Optional audio/enhancement hint surfaced in recommendations"),
		field.Time("created_at").
			Immutable().
			Comment("When the lesson was authored"),
	}
}

func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id"),
		index.Fields("subject_id", "position"),
	}
}
