package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subject is a content-authored learning subject. Prerequisite edges point
// from prerequisite to dependent; the engine treats subjects as read-only.
type Subject struct {
	ent.Schema
}

func (Subject) Fields() []ent.Field {
	return []ent.Field{
		field.String("subject_id").
			NotEmpty().
			Unique().
			Comment("Stable content identifier"),
		field.String("title").
			NotEmpty().
			Comment("Display title"),
		field.JSON("prerequisites", []string{}).
			Optional().
			Comment("Subject IDs that must precede this subject"),
		field.Int("position").
			Comment("Creation order; used as the deterministic tie-break"),
		field.Time("created_at").
			Immutable().
			Comment("When the subject was authored"),
	}
}

func (Subject) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id"),
		index.Fields("position"),
	}
}
