package srs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/learnloop/internal/store"
)

// fakeProgressRepo is an in-memory ProgressRepo for scheduler tests.
type fakeProgressRepo struct {
	records map[string]*store.ProgressRecord
	ailing  bool
}

func key(userID, lessonID string) string { return userID + "/" + lessonID }

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{records: make(map[string]*store.ProgressRecord)}
}

var errStorageDown = errors.New("storage down")

func (f *fakeProgressRepo) Get(_ context.Context, userID, lessonID string) (*store.ProgressRecord, error) {
	if f.ailing {
		return nil, errStorageDown
	}
	rec, ok := f.records[key(userID, lessonID)]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeProgressRepo) Create(_ context.Context, rec *store.ProgressRecord) error {
	if f.ailing {
		return errStorageDown
	}
	cp := *rec
	f.records[key(rec.UserID, rec.LessonID)] = &cp
	return nil
}

func (f *fakeProgressRepo) Update(_ context.Context, userID, lessonID string, mutate func(*store.ProgressRecord) error) (*store.ProgressRecord, error) {
	if f.ailing {
		return nil, errStorageDown
	}
	rec, ok := f.records[key(userID, lessonID)]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *rec
	if err := mutate(&cp); err != nil {
		return nil, err
	}
	f.records[key(userID, lessonID)] = &cp
	out := cp
	return &out, nil
}

func (f *fakeProgressRepo) Due(_ context.Context, userID string, now time.Time, limit int) ([]store.ProgressRecord, error) {
	if f.ailing {
		return nil, errStorageDown
	}
	var due []store.ProgressRecord
	for _, rec := range f.records {
		if rec.UserID == userID && !rec.NextReviewDate.After(now) {
			due = append(due, *rec)
		}
	}
	// Oldest first.
	for i := 0; i < len(due); i++ {
		for j := i + 1; j < len(due); j++ {
			if due[j].NextReviewDate.Before(due[i].NextReviewDate) {
				due[i], due[j] = due[j], due[i]
			}
		}
	}
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (f *fakeProgressRepo) CompletedLessonIDs(_ context.Context, userID string) (map[string]bool, error) {
	if f.ailing {
		return nil, errStorageDown
	}
	set := make(map[string]bool)
	for _, rec := range f.records {
		if rec.UserID == userID && rec.Status != store.StatusNotStarted {
			set[rec.LessonID] = true
		}
	}
	return set, nil
}

// fakeEventRepo records appended events.
type fakeEventRepo struct {
	reviews  []store.ReviewEventData
	sessions []store.SessionEventData
	fail     bool
}

func (f *fakeEventRepo) AppendReviewEvent(_ context.Context, d store.ReviewEventData) error {
	if f.fail {
		return errStorageDown
	}
	f.reviews = append(f.reviews, d)
	return nil
}

func (f *fakeEventRepo) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	if f.fail {
		return errStorageDown
	}
	f.sessions = append(f.sessions, d)
	return nil
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func seedRecord(repo *fakeProgressRepo, userID, lessonID string, due time.Time) {
	repo.records[key(userID, lessonID)] = &store.ProgressRecord{
		UserID:         userID,
		LessonID:       lessonID,
		Status:         store.StatusCompleted,
		EasinessFactor: 2.5,
		Repetitions:    0,
		IntervalDays:   1,
		NextReviewDate: due,
	}
}

func TestSubmitReview_UpdatesRecord(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := newFakeProgressRepo()
	events := &fakeEventRepo{}
	seedRecord(repo, "u1", "l1", now)

	s := NewScheduler(repo, events, nil, fixedClock(now))
	rec, err := s.SubmitReview(context.Background(), "u1", "l1", 4)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Repetitions != 1 || rec.IntervalDays != 1 {
		t.Errorf("reps=%d interval=%d, want 1/1", rec.Repetitions, rec.IntervalDays)
	}
	if rec.LastReviewedDate == nil || !rec.LastReviewedDate.Equal(now) {
		t.Errorf("last reviewed = %v, want %v", rec.LastReviewedDate, now)
	}
	if len(rec.ReviewHistory) != 1 {
		t.Fatalf("history length = %d, want 1", len(rec.ReviewHistory))
	}
	if rec.ReviewHistory[0].Quality != 4 {
		t.Errorf("history quality = %v, want 4", rec.ReviewHistory[0].Quality)
	}
	if len(events.reviews) != 1 {
		t.Errorf("review events = %d, want 1", len(events.reviews))
	}
}

func TestSubmitReview_InvalidQualityTouchesNothing(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := newFakeProgressRepo()
	seedRecord(repo, "u1", "l1", now)

	s := NewScheduler(repo, &fakeEventRepo{}, nil, fixedClock(now))
	_, err := s.SubmitReview(context.Background(), "u1", "l1", 6)
	if !errors.Is(err, ErrQualityOutOfRange) {
		t.Fatalf("err = %v, want ErrQualityOutOfRange", err)
	}
	rec, _ := repo.Get(context.Background(), "u1", "l1")
	if rec.Repetitions != 0 || len(rec.ReviewHistory) != 0 {
		t.Error("invalid quality must not modify the record")
	}
}

func TestSubmitReview_MissingRecord(t *testing.T) {
	s := NewScheduler(newFakeProgressRepo(), &fakeEventRepo{}, nil, nil)
	_, err := s.SubmitReview(context.Background(), "u1", "nope", 4)
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want store.ErrNotFound", err)
	}
}

func TestSubmitReview_EventFailureDoesNotFailReview(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := newFakeProgressRepo()
	seedRecord(repo, "u1", "l1", now)

	s := NewScheduler(repo, &fakeEventRepo{fail: true}, nil, fixedClock(now))
	if _, err := s.SubmitReview(context.Background(), "u1", "l1", 5); err != nil {
		t.Fatalf("review should succeed despite event append failure: %v", err)
	}
}

func TestSubmitReview_HistoryCapped(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := newFakeProgressRepo()
	seedRecord(repo, "u1", "l1", now)

	s := NewScheduler(repo, nil, nil, fixedClock(now))
	for i := 0; i < store.ReviewHistoryCap+10; i++ {
		if _, err := s.SubmitReview(context.Background(), "u1", "l1", 3); err != nil {
			t.Fatal(err)
		}
	}
	rec, _ := repo.Get(context.Background(), "u1", "l1")
	if len(rec.ReviewHistory) != store.ReviewHistoryCap {
		t.Errorf("history length = %d, want cap %d", len(rec.ReviewHistory), store.ReviewHistoryCap)
	}
}

func TestDueItems_OrderAndCap(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := newFakeProgressRepo()
	seedRecord(repo, "u1", "old", now.AddDate(0, 0, -5))
	seedRecord(repo, "u1", "older", now.AddDate(0, 0, -9))
	seedRecord(repo, "u1", "today", now)
	seedRecord(repo, "u1", "future", now.AddDate(0, 0, 2))

	s := NewScheduler(repo, nil, nil, fixedClock(now))
	due, err := s.DueItems(context.Background(), "u1", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(due) != 2 {
		t.Fatalf("len = %d, want 2", len(due))
	}
	if due[0].LessonID != "older" || due[1].LessonID != "old" {
		t.Errorf("order = [%s %s], want [older old]", due[0].LessonID, due[1].LessonID)
	}
	for _, d := range due {
		if d.NextReviewDate.After(now) {
			t.Errorf("lesson %s due in the future", d.LessonID)
		}
	}
}
