package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/learnloop/internal/cognitive"
	"github.com/abhisek/learnloop/internal/content"
	"github.com/abhisek/learnloop/internal/recommend"
	"github.com/abhisek/learnloop/internal/srs"
	"github.com/abhisek/learnloop/internal/store"
	"github.com/abhisek/learnloop/internal/subjectgraph"
)

// neverDue is the NextReviewDate for completed lessons that are not
// reviewable; they must not surface from due-range queries.
var neverDue = time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)

// Engine is the caller-facing facade over the path engine. All
// collaborators are injected through New; the engine holds no state of
// its own beyond the topological-order cache.
type Engine struct {
	content   store.ContentRepo
	progress  store.ProgressRepo
	scheduler *srs.Scheduler
	tracker   *cognitive.Tracker
	rec       *recommend.Recommender
	cache     *subjectgraph.Cache
	log       *zap.Logger
	now       srs.Clock
}

// New wires an engine from its storage repos. A nil clock defaults to
// time.Now; a nil logger is replaced with a no-op one.
func New(contentRepo store.ContentRepo, progress store.ProgressRepo, states store.CognitiveRepo, events store.EventRepo, log *zap.Logger, now srs.Clock) *Engine {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	cache := subjectgraph.NewCache(subjectgraph.DefaultCacheTTL)
	tracker := cognitive.NewTracker(states, events, log, cognitive.Clock(now))
	return &Engine{
		content:   contentRepo,
		progress:  progress,
		scheduler: srs.NewScheduler(progress, events, log, now),
		tracker:   tracker,
		rec:       recommend.NewRecommender(contentRepo, progress, tracker, cache, log),
		cache:     cache,
		log:       log,
		now:       now,
	}
}

// Tracker exposes the telemetry ingestion surface (session start,
// interaction, end events).
func (e *Engine) Tracker() *cognitive.Tracker { return e.tracker }

// NextLesson recommends the next lesson for the user. Graph problems
// degrade to a fallback recommendation rather than failing; only a
// storage outage returns an error.
func (e *Engine) NextLesson(ctx context.Context, userID string) (*recommend.Recommendation, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: empty user id", ErrInvalidInput)
	}
	rec, err := e.rec.SuggestNext(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return rec, nil
}

// SubmitReview applies a recall-quality score to the user's progress on
// a lesson and returns the updated record. The record must already
// exist; completing a lesson is what creates it.
func (e *Engine) SubmitReview(ctx context.Context, userID, lessonID string, quality float64) (*store.ProgressRecord, error) {
	if userID == "" || lessonID == "" {
		return nil, fmt.Errorf("%w: empty user or lesson id", ErrInvalidInput)
	}
	rec, err := e.scheduler.SubmitReview(ctx, userID, lessonID, quality)
	if err != nil {
		switch {
		case errors.Is(err, srs.ErrQualityOutOfRange):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		case errors.Is(err, store.ErrNotFound):
			return nil, fmt.Errorf("%w: no progress record for user %s lesson %s", ErrNotFound, userID, lessonID)
		default:
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
	}
	return rec, nil
}

// DueReviews returns the user's due ProgressRecords, oldest overdue
// first, capped at limit (limit <= 0 means no cap).
func (e *Engine) DueReviews(ctx context.Context, userID string, limit int) ([]store.ProgressRecord, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: empty user id", ErrInvalidInput)
	}
	recs, err := e.scheduler.DueItems(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return recs, nil
}

// CompleteLesson records the user's first completion of a lesson,
// creating its ProgressRecord and scheduling the first review for
// reviewable lessons. Repeat completions return the existing record
// unchanged.
func (e *Engine) CompleteLesson(ctx context.Context, userID, lessonID string) (*store.ProgressRecord, error) {
	if userID == "" || lessonID == "" {
		return nil, fmt.Errorf("%w: empty user or lesson id", ErrInvalidInput)
	}

	lesson, err := e.content.Lesson(ctx, lessonID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: lesson %s", ErrNotFound, lessonID)
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if existing, err := e.progress.Get(ctx, userID, lessonID); err == nil {
		return existing, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	now := e.now()
	state := srs.DefaultState()
	rec := &store.ProgressRecord{
		UserID:         userID,
		LessonID:       lessonID,
		Status:         store.StatusCompleted,
		EasinessFactor: state.EasinessFactor,
		Repetitions:    state.Repetitions,
		IntervalDays:   state.IntervalDays,
		NextReviewDate: srs.DueDate(now, state.IntervalDays),
	}
	if !lesson.Reviewable {
		rec.NextReviewDate = neverDue
	}
	if err := e.progress.Create(ctx, rec); err != nil {
		// A concurrent completion may have won the race; treat the
		// record it created as ours.
		if existing, getErr := e.progress.Get(ctx, userID, lessonID); getErr == nil {
			return existing, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return rec, nil
}

// ImportCatalog validates an authored catalog and atomically replaces
// the stored content with it, invalidating the ordering cache. Graph
// problems are returned as a GraphInconsistencyError and nothing is
// written.
func (e *Engine) ImportCatalog(ctx context.Context, cat *content.Catalog) error {
	if err := content.ValidateCatalog(cat); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := subjectgraph.Validate(cat.Subjects); err != nil {
		return &GraphInconsistencyError{Err: err}
	}
	if err := e.content.ReplaceAll(ctx, cat); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	e.cache.Invalidate()
	return nil
}

// DecaySweep runs one staleness-decay pass over all cognitive records.
func (e *Engine) DecaySweep(ctx context.Context) (int, error) {
	return e.tracker.DecaySweep(ctx)
}
