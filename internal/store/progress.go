package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/learnloop/ent"
	"github.com/abhisek/learnloop/ent/progressrecord"
	"github.com/abhisek/learnloop/ent/schema"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, userID, lessonID string) (*ProgressRecord, error) {
	row, err := r.client.ProgressRecord.Query().
		Where(
			progressrecord.UserID(userID),
			progressrecord.LessonID(lessonID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("progress for user %s lesson %s: %w", userID, lessonID, ErrNotFound)
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}
	return entProgressToRecord(row), nil
}

func (r *progressRepo) Create(ctx context.Context, rec *ProgressRecord) error {
	create := r.client.ProgressRecord.Create().
		SetUserID(rec.UserID).
		SetLessonID(rec.LessonID).
		SetStatus(progressrecord.Status(rec.Status)).
		SetEasinessFactor(rec.EasinessFactor).
		SetRepetitions(rec.Repetitions).
		SetIntervalDays(rec.IntervalDays).
		SetNextReviewDate(rec.NextReviewDate).
		SetReviewHistory(historyToSchema(rec.ReviewHistory))
	if rec.LastReviewedDate != nil {
		create.SetLastReviewedDate(*rec.LastReviewedDate)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("create progress record: %w", err)
	}
	return nil
}

// Update runs the read-modify-write inside a single transaction so
// concurrent reviews of the same (user, lesson) cannot interleave.
func (r *progressRepo) Update(ctx context.Context, userID, lessonID string, mutate func(*ProgressRecord) error) (*ProgressRecord, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin progress update: %w", err)
	}

	rec, err := func() (*ProgressRecord, error) {
		row, err := tx.ProgressRecord.Query().
			Where(
				progressrecord.UserID(userID),
				progressrecord.LessonID(lessonID),
			).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("progress for user %s lesson %s: %w", userID, lessonID, ErrNotFound)
			}
			return nil, fmt.Errorf("query progress: %w", err)
		}

		rec := entProgressToRecord(row)
		if err := mutate(rec); err != nil {
			return nil, err
		}

		update := tx.ProgressRecord.UpdateOne(row).
			SetStatus(progressrecord.Status(rec.Status)).
			SetEasinessFactor(rec.EasinessFactor).
			SetRepetitions(rec.Repetitions).
			SetIntervalDays(rec.IntervalDays).
			SetNextReviewDate(rec.NextReviewDate).
			SetReviewHistory(historyToSchema(rec.ReviewHistory))
		if rec.LastReviewedDate != nil {
			update.SetLastReviewedDate(*rec.LastReviewedDate)
		}
		if _, err := update.Save(ctx); err != nil {
			return nil, fmt.Errorf("save progress record: %w", err)
		}
		return rec, nil
	}()
	if err != nil {
		if rErr := tx.Rollback(); rErr != nil {
			err = errors.Join(err, fmt.Errorf("rollback: %w", rErr))
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit progress update: %w", err)
	}
	return rec, nil
}

func (r *progressRepo) Due(ctx context.Context, userID string, now time.Time, limit int) ([]ProgressRecord, error) {
	q := r.client.ProgressRecord.Query().
		Where(
			progressrecord.UserID(userID),
			progressrecord.NextReviewDateLTE(now),
		).
		Order(ent.Asc(progressrecord.FieldNextReviewDate))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due records: %w", err)
	}
	out := make([]ProgressRecord, len(rows))
	for i, row := range rows {
		out[i] = *entProgressToRecord(row)
	}
	return out, nil
}

func (r *progressRepo) CompletedLessonIDs(ctx context.Context, userID string) (map[string]bool, error) {
	ids, err := r.client.ProgressRecord.Query().
		Where(
			progressrecord.UserID(userID),
			progressrecord.StatusIn(progressrecord.StatusCompleted, progressrecord.StatusMastered),
		).
		Select(progressrecord.FieldLessonID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completed lessons: %w", err)
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func entProgressToRecord(row *ent.ProgressRecord) *ProgressRecord {
	rec := &ProgressRecord{
		UserID:           row.UserID,
		LessonID:         row.LessonID,
		Status:           Status(row.Status),
		EasinessFactor:   row.EasinessFactor,
		Repetitions:      row.Repetitions,
		IntervalDays:     row.IntervalDays,
		NextReviewDate:   row.NextReviewDate,
		LastReviewedDate: row.LastReviewedDate,
		ReviewHistory:    historyFromSchema(row.ReviewHistory),
	}
	return rec
}

func historyToSchema(entries []ReviewEntry) []schema.ReviewEntry {
	out := make([]schema.ReviewEntry, len(entries))
	for i, e := range entries {
		out[i] = schema.ReviewEntry{
			Date:           e.Date,
			Quality:        e.Quality,
			IntervalDays:   e.IntervalDays,
			EasinessFactor: e.EasinessFactor,
		}
	}
	return out
}

func historyFromSchema(entries []schema.ReviewEntry) []ReviewEntry {
	out := make([]ReviewEntry, len(entries))
	for i, e := range entries {
		out[i] = ReviewEntry{
			Date:           e.Date,
			Quality:        e.Quality,
			IntervalDays:   e.IntervalDays,
			EasinessFactor: e.EasinessFactor,
		}
	}
	return out
}
