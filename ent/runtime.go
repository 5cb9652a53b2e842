// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/learnloop/ent/cognitivestate"
	"github.com/abhisek/learnloop/ent/lesson"
	"github.com/abhisek/learnloop/ent/progressrecord"
	"github.com/abhisek/learnloop/ent/reviewevent"
	"github.com/abhisek/learnloop/ent/schema"
	"github.com/abhisek/learnloop/ent/sessionevent"
	"github.com/abhisek/learnloop/ent/subject"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cognitivestateFields := schema.CognitiveState{}.Fields()
	_ = cognitivestateFields
	// cognitivestateDescUserID is the schema descriptor for user_id field.
	cognitivestateDescUserID := cognitivestateFields[0].Descriptor()
	// cognitivestate.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	cognitivestate.UserIDValidator = cognitivestateDescUserID.Validators[0].(func(string) error)
	// cognitivestateDescFocusScore is the schema descriptor for focus_score field.
	cognitivestateDescFocusScore := cognitivestateFields[1].Descriptor()
	// cognitivestate.DefaultFocusScore holds the default value on creation for the focus_score field.
	cognitivestate.DefaultFocusScore = cognitivestateDescFocusScore.Default.(float64)
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescLessonID is the schema descriptor for lesson_id field.
	lessonDescLessonID := lessonFields[0].Descriptor()
	// lesson.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lesson.LessonIDValidator = lessonDescLessonID.Validators[0].(func(string) error)
	// lessonDescSubjectID is the schema descriptor for subject_id field.
	lessonDescSubjectID := lessonFields[1].Descriptor()
	// lesson.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	lesson.SubjectIDValidator = lessonDescSubjectID.Validators[0].(func(string) error)
	// lessonDescTitle is the schema descriptor for title field.
	lessonDescTitle := lessonFields[2].Descriptor()
	// lesson.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	lesson.TitleValidator = lessonDescTitle.Validators[0].(func(string) error)
	// lessonDescIsReviewable is the schema descriptor for is_reviewable field.
	lessonDescIsReviewable := lessonFields[4].Descriptor()
	// lesson.DefaultIsReviewable holds the default value on creation for the is_reviewable field.
	lesson.DefaultIsReviewable = lessonDescIsReviewable.Default.(bool)
	progressrecordFields := schema.ProgressRecord{}.Fields()
	_ = progressrecordFields
	// progressrecordDescUserID is the schema descriptor for user_id field.
	progressrecordDescUserID := progressrecordFields[0].Descriptor()
	// progressrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	progressrecord.UserIDValidator = progressrecordDescUserID.Validators[0].(func(string) error)
	// progressrecordDescLessonID is the schema descriptor for lesson_id field.
	progressrecordDescLessonID := progressrecordFields[1].Descriptor()
	// progressrecord.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	progressrecord.LessonIDValidator = progressrecordDescLessonID.Validators[0].(func(string) error)
	// progressrecordDescEasinessFactor is the schema descriptor for easiness_factor field.
	progressrecordDescEasinessFactor := progressrecordFields[3].Descriptor()
	// progressrecord.DefaultEasinessFactor holds the default value on creation for the easiness_factor field.
	progressrecord.DefaultEasinessFactor = progressrecordDescEasinessFactor.Default.(float64)
	// progressrecordDescRepetitions is the schema descriptor for repetitions field.
	progressrecordDescRepetitions := progressrecordFields[4].Descriptor()
	// progressrecord.DefaultRepetitions holds the default value on creation for the repetitions field.
	progressrecord.DefaultRepetitions = progressrecordDescRepetitions.Default.(int)
	// progressrecordDescIntervalDays is the schema descriptor for interval_days field.
	progressrecordDescIntervalDays := progressrecordFields[5].Descriptor()
	// progressrecord.DefaultIntervalDays holds the default value on creation for the interval_days field.
	progressrecord.DefaultIntervalDays = progressrecordDescIntervalDays.Default.(int)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescUserID is the schema descriptor for user_id field.
	revieweventDescUserID := revieweventFields[0].Descriptor()
	// reviewevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	reviewevent.UserIDValidator = revieweventDescUserID.Validators[0].(func(string) error)
	// revieweventDescLessonID is the schema descriptor for lesson_id field.
	revieweventDescLessonID := revieweventFields[1].Descriptor()
	// reviewevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	reviewevent.LessonIDValidator = revieweventDescLessonID.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescUserID is the schema descriptor for user_id field.
	sessioneventDescUserID := sessioneventFields[0].Descriptor()
	// sessionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionevent.UserIDValidator = sessioneventDescUserID.Validators[0].(func(string) error)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[1].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescContextType is the schema descriptor for context_type field.
	sessioneventDescContextType := sessioneventFields[2].Descriptor()
	// sessionevent.ContextTypeValidator is a validator for the "context_type" field. It is called by the builders before save.
	sessionevent.ContextTypeValidator = sessioneventDescContextType.Validators[0].(func(string) error)
	// sessioneventDescContextID is the schema descriptor for context_id field.
	sessioneventDescContextID := sessioneventFields[3].Descriptor()
	// sessionevent.ContextIDValidator is a validator for the "context_id" field. It is called by the builders before save.
	sessionevent.ContextIDValidator = sessioneventDescContextID.Validators[0].(func(string) error)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	// sessioneventDescInteractionCount is the schema descriptor for interaction_count field.
	sessioneventDescInteractionCount := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultInteractionCount holds the default value on creation for the interaction_count field.
	sessionevent.DefaultInteractionCount = sessioneventDescInteractionCount.Default.(int)
	// sessioneventDescSuperseded is the schema descriptor for superseded field.
	sessioneventDescSuperseded := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultSuperseded holds the default value on creation for the superseded field.
	sessionevent.DefaultSuperseded = sessioneventDescSuperseded.Default.(bool)
	subjectFields := schema.Subject{}.Fields()
	_ = subjectFields
	// subjectDescSubjectID is the schema descriptor for subject_id field.
	subjectDescSubjectID := subjectFields[0].Descriptor()
	// subject.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	subject.SubjectIDValidator = subjectDescSubjectID.Validators[0].(func(string) error)
	// subjectDescTitle is the schema descriptor for title field.
	subjectDescTitle := subjectFields[1].Descriptor()
	// subject.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	subject.TitleValidator = subjectDescTitle.Validators[0].(func(string) error)
}
