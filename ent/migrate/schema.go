// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CognitiveStatesColumns holds the columns for the "cognitive_states" table.
	CognitiveStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "focus_score", Type: field.TypeFloat64, Default: 50},
		{Name: "last_updated", Type: field.TypeTime},
		{Name: "session_history", Type: field.TypeJSON, Nullable: true},
	}
	// CognitiveStatesTable holds the schema information for the "cognitive_states" table.
	CognitiveStatesTable = &schema.Table{
		Name:       "cognitive_states",
		Columns:    CognitiveStatesColumns,
		PrimaryKey: []*schema.Column{CognitiveStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cognitivestate_user_id",
				Unique:  false,
				Columns: []*schema.Column{CognitiveStatesColumns[1]},
			},
		},
	}
	// LessonsColumns holds the columns for the "lessons" table.
	LessonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "lesson_id", Type: field.TypeString, Unique: true},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "is_reviewable", Type: field.TypeBool, Default: true},
		{Name: "audio_preset", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LessonsTable holds the schema information for the "lessons" table.
	LessonsTable = &schema.Table{
		Name:       "lessons",
		Columns:    LessonsColumns,
		PrimaryKey: []*schema.Column{LessonsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lesson_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[1]},
			},
			{
				Name:    "lesson_subject_id_position",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[2], LessonsColumns[4]},
			},
		},
	}
	// ProgressRecordsColumns holds the columns for the "progress_records" table.
	ProgressRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"not_started", "completed", "mastered"}, Default: "not_started"},
		{Name: "easiness_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "repetitions", Type: field.TypeInt, Default: 0},
		{Name: "interval_days", Type: field.TypeInt, Default: 1},
		{Name: "next_review_date", Type: field.TypeTime},
		{Name: "last_reviewed_date", Type: field.TypeTime, Nullable: true},
		{Name: "review_history", Type: field.TypeJSON, Nullable: true},
	}
	// ProgressRecordsTable holds the schema information for the "progress_records" table.
	ProgressRecordsTable = &schema.Table{
		Name:       "progress_records",
		Columns:    ProgressRecordsColumns,
		PrimaryKey: []*schema.Column{ProgressRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressrecord_user_id_lesson_id",
				Unique:  true,
				Columns: []*schema.Column{ProgressRecordsColumns[1], ProgressRecordsColumns[2]},
			},
			{
				Name:    "progressrecord_user_id_next_review_date",
				Unique:  false,
				Columns: []*schema.Column{ProgressRecordsColumns[1], ProgressRecordsColumns[7]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "quality", Type: field.TypeFloat64},
		{Name: "easiness_factor", Type: field.TypeFloat64},
		{Name: "repetitions", Type: field.TypeInt},
		{Name: "interval_days", Type: field.TypeInt},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_user_id_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3], ReviewEventsColumns[4]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "context_type", Type: field.TypeString},
		{Name: "context_id", Type: field.TypeString},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "interaction_count", Type: field.TypeInt, Default: 0},
		{Name: "superseded", Type: field.TypeBool, Default: false},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// SubjectsColumns holds the columns for the "subjects" table.
	SubjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "subject_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "prerequisites", Type: field.TypeJSON, Nullable: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SubjectsTable holds the schema information for the "subjects" table.
	SubjectsTable = &schema.Table{
		Name:       "subjects",
		Columns:    SubjectsColumns,
		PrimaryKey: []*schema.Column{SubjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subject_subject_id",
				Unique:  false,
				Columns: []*schema.Column{SubjectsColumns[1]},
			},
			{
				Name:    "subject_position",
				Unique:  false,
				Columns: []*schema.Column{SubjectsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CognitiveStatesTable,
		LessonsTable,
		ProgressRecordsTable,
		ReviewEventsTable,
		SessionEventsTable,
		SubjectsTable,
	}
)

func init() {
}
