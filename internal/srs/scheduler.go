package srs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/learnloop/internal/store"
)

// Clock supplies the current time; injectable for tests.
type Clock func() time.Time

// Scheduler applies reviews to ProgressRecords and serves the due set.
// All persistence goes through the repos; the scheduler itself holds no
// per-user state.
type Scheduler struct {
	progress store.ProgressRepo
	events   store.EventRepo
	log      *zap.Logger
	now      Clock
}

// NewScheduler creates a scheduler. A nil clock defaults to time.Now.
func NewScheduler(progress store.ProgressRepo, events store.EventRepo, log *zap.Logger, now Clock) *Scheduler {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{progress: progress, events: events, log: log, now: now}
}

// SubmitReview applies one recall-quality score to the (userID, lessonID)
// ProgressRecord and returns the updated record. The quality score is
// validated before any storage is touched. The read-modify-write runs in
// a single transaction, so a failed write leaves the record untouched.
func (s *Scheduler) SubmitReview(ctx context.Context, userID, lessonID string, quality float64) (*store.ProgressRecord, error) {
	if err := CheckQuality(quality); err != nil {
		return nil, err
	}
	now := s.now()

	rec, err := s.progress.Update(ctx, userID, lessonID, func(rec *store.ProgressRecord) error {
		res, err := ComputeNext(State{
			EasinessFactor: rec.EasinessFactor,
			Repetitions:    rec.Repetitions,
			IntervalDays:   rec.IntervalDays,
		}, quality, now)
		if err != nil {
			return err
		}

		rec.EasinessFactor = res.EasinessFactor
		rec.Repetitions = res.Repetitions
		rec.IntervalDays = res.IntervalDays
		rec.NextReviewDate = res.NextReviewDate
		reviewed := now
		rec.LastReviewedDate = &reviewed
		if res.Mastered {
			rec.Status = store.StatusMastered
		} else if rec.Status == store.StatusNotStarted {
			rec.Status = store.StatusCompleted
		}

		rec.ReviewHistory = append(rec.ReviewHistory, store.ReviewEntry{
			Date:           now,
			Quality:        quality,
			IntervalDays:   res.IntervalDays,
			EasinessFactor: res.EasinessFactor,
		})
		if len(rec.ReviewHistory) > store.ReviewHistoryCap {
			rec.ReviewHistory = rec.ReviewHistory[len(rec.ReviewHistory)-store.ReviewHistoryCap:]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The event log is analytics, not scheduling state; a failed append
	// must not fail the review.
	if s.events != nil {
		if err := s.events.AppendReviewEvent(ctx, store.ReviewEventData{
			UserID:         userID,
			LessonID:       lessonID,
			Quality:        quality,
			EasinessFactor: rec.EasinessFactor,
			Repetitions:    rec.Repetitions,
			IntervalDays:   rec.IntervalDays,
		}); err != nil {
			s.log.Warn("failed to append review event",
				zap.String("user_id", userID),
				zap.String("lesson_id", lessonID),
				zap.Error(err))
		}
	}

	return rec, nil
}

// DueItems returns the user's ProgressRecords with NextReviewDate <= now,
// oldest overdue first, capped at limit.
func (s *Scheduler) DueItems(ctx context.Context, userID string, limit int) ([]store.ProgressRecord, error) {
	return s.progress.Due(ctx, userID, s.now(), limit)
}
