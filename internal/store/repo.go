package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/learnloop/internal/content"
)

// ErrNotFound is returned when a point lookup finds no record.
// Callers check it with errors.Is.
var ErrNotFound = errors.New("store: record not found")

// Status is the completion status of a (user, lesson) pair.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusCompleted  Status = "completed"
	StatusMastered   Status = "mastered"
)

// ReviewEntry is one element of a ProgressRecord's bounded review history.
type ReviewEntry struct {
	Date           time.Time `json:"date"`
	Quality        float64   `json:"quality"`
	IntervalDays   int       `json:"interval_days"`
	EasinessFactor float64   `json:"easiness_factor"`
}

// ReviewHistoryCap bounds the per-record review history. The full log
// lives in the append-only ReviewEvent table; the record keeps the tail.
const ReviewHistoryCap = 50

// ProgressRecord is the per (user, lesson) SRS state. NextReviewDate is
// always derivable from the last review's inputs; there is no hidden
// scheduling state.
type ProgressRecord struct {
	UserID           string
	LessonID         string
	Status           Status
	EasinessFactor   float64
	Repetitions      int
	IntervalDays     int
	NextReviewDate   time.Time
	LastReviewedDate *time.Time
	ReviewHistory    []ReviewEntry
}

// SessionSummary is one element of a user's bounded session history.
type SessionSummary struct {
	SessionID        string    `json:"session_id"`
	ContextType      string    `json:"context_type"`
	ContextID        string    `json:"context_id"`
	StartedAt        time.Time `json:"started_at"`
	EndedAt          time.Time `json:"ended_at"`
	DurationSeconds  int       `json:"duration_seconds"`
	InteractionCount int       `json:"interaction_count"`
}

// SessionHistoryCap bounds the per-user session history.
const SessionHistoryCap = 50

// DefaultFocusScore is the neutral focus score assumed for users with
// no cognitive record yet.
const DefaultFocusScore = 50.0

// CognitiveRecord is the per-user singleton focus-score record.
type CognitiveRecord struct {
	UserID         string
	FocusScore     float64
	LastUpdated    time.Time
	SessionHistory []SessionSummary
}

// ContentRepo provides read access to the authored catalog plus the
// bulk import path. The engine treats content as read-only.
type ContentRepo interface {
	// Subjects returns all subjects in creation order.
	Subjects(ctx context.Context) ([]content.Subject, error)

	// Lessons returns a subject's lessons in stored order.
	Lessons(ctx context.Context, subjectID string) ([]content.Lesson, error)

	// Lesson returns a lesson by ID, or ErrNotFound.
	Lesson(ctx context.Context, lessonID string) (*content.Lesson, error)

	// ReplaceAll atomically swaps the stored catalog for cat and bumps
	// the content version.
	ReplaceAll(ctx context.Context, cat *content.Catalog) error

	// Version returns an opaque token that changes on every import.
	Version(ctx context.Context) (string, error)
}

// ProgressRepo manages ProgressRecords. Records are never deleted.
type ProgressRepo interface {
	// Get returns the record for (userID, lessonID), or ErrNotFound.
	Get(ctx context.Context, userID, lessonID string) (*ProgressRecord, error)

	// Create stores a new record. Fails if one already exists.
	Create(ctx context.Context, rec *ProgressRecord) error

	// Update applies mutate to the current record inside a transaction,
	// serializing concurrent read-modify-write cycles on the same
	// record. Returns ErrNotFound if no record exists.
	Update(ctx context.Context, userID, lessonID string, mutate func(*ProgressRecord) error) (*ProgressRecord, error)

	// Due returns records with NextReviewDate <= now, oldest first,
	// capped at limit (limit <= 0 means no cap).
	Due(ctx context.Context, userID string, now time.Time, limit int) ([]ProgressRecord, error)

	// CompletedLessonIDs returns the set of lesson IDs the user has
	// completed or mastered.
	CompletedLessonIDs(ctx context.Context, userID string) (map[string]bool, error)
}

// CognitiveRepo manages the per-user cognitive state singleton.
type CognitiveRepo interface {
	// Get returns the user's record, or ErrNotFound if none exists yet.
	Get(ctx context.Context, userID string) (*CognitiveRecord, error)

	// Upsert creates or replaces the user's record.
	Upsert(ctx context.Context, rec *CognitiveRecord) error

	// AppendSession appends a session summary to the user's bounded
	// history, creating the record if needed.
	AppendSession(ctx context.Context, userID string, sum SessionSummary) error

	// ListStale returns records whose LastUpdated is before cutoff.
	ListStale(ctx context.Context, cutoff time.Time) ([]CognitiveRecord, error)
}

// ReviewEventData captures one spaced-repetition review submission.
type ReviewEventData struct {
	UserID         string
	LessonID       string
	Quality        float64
	EasinessFactor float64
	Repetitions    int
	IntervalDays   int
}

// SessionEventData captures one closed telemetry session.
type SessionEventData struct {
	UserID           string
	SessionID        string
	ContextType      string
	ContextID        string
	DurationSecs     int
	InteractionCount int
	Superseded       bool
}

// EventRepo provides append access to the analytics event log.
type EventRepo interface {
	AppendReviewEvent(ctx context.Context, data ReviewEventData) error
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
}
