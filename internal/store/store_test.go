package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/learnloop/internal/content"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestContentReplaceAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.ContentRepo()
	ctx := context.Background()

	before, err := repo.Version(ctx)
	if err != nil {
		t.Fatalf("version: %v", err)
	}

	cat := &content.Catalog{
		Subjects: []content.Subject{
			{ID: "algebra", Title: "Algebra", Position: 1, Prerequisites: []string{"basics"}},
			{ID: "basics", Title: "Basics", Position: 0},
		},
		Lessons: []content.Lesson{
			{ID: "b2", SubjectID: "basics", Title: "Shapes", Position: 1},
			{ID: "b1", SubjectID: "basics", Title: "Counting", Position: 0, Reviewable: true, AudioPreset: "calm"},
		},
	}
	if err := repo.ReplaceAll(ctx, cat); err != nil {
		t.Fatalf("replace all: %v", err)
	}

	subjects, err := repo.Subjects(ctx)
	if err != nil {
		t.Fatalf("subjects: %v", err)
	}
	if len(subjects) != 2 || subjects[0].ID != "basics" {
		t.Errorf("subjects = %+v, want basics first by position", subjects)
	}

	lessons, err := repo.Lessons(ctx, "basics")
	if err != nil {
		t.Fatalf("lessons: %v", err)
	}
	if len(lessons) != 2 || lessons[0].ID != "b1" {
		t.Errorf("lessons = %+v, want b1 first by position", lessons)
	}

	l, err := repo.Lesson(ctx, "b1")
	if err != nil {
		t.Fatalf("lesson: %v", err)
	}
	if l.AudioPreset != "calm" || !l.Reviewable {
		t.Errorf("lesson b1 = %+v, want audio preset calm and reviewable", l)
	}

	if _, err := repo.Lesson(ctx, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing lesson: err = %v, want ErrNotFound", err)
	}

	after, err := repo.Version(ctx)
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if after == before {
		t.Error("import must bump the content version")
	}
}

func TestProgressLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()
	due := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	if _, err := repo.Get(ctx, "u1", "l1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get before create: err = %v, want ErrNotFound", err)
	}

	err := repo.Create(ctx, &ProgressRecord{
		UserID:         "u1",
		LessonID:       "l1",
		Status:         StatusCompleted,
		EasinessFactor: 2.5,
		IntervalDays:   1,
		NextReviewDate: due,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := repo.Update(ctx, "u1", "l1", func(rec *ProgressRecord) error {
		rec.Repetitions = 1
		rec.Status = StatusMastered
		rec.ReviewHistory = append(rec.ReviewHistory, ReviewEntry{
			Date: due, Quality: 5, IntervalDays: 6, EasinessFactor: 2.6,
		})
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Repetitions != 1 || updated.Status != StatusMastered {
		t.Errorf("updated record = %+v", updated)
	}

	got, err := repo.Get(ctx, "u1", "l1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.ReviewHistory) != 1 || got.ReviewHistory[0].Quality != 5 {
		t.Errorf("review history = %+v, want one q=5 entry", got.ReviewHistory)
	}

	completed, err := repo.CompletedLessonIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("completed ids: %v", err)
	}
	if !completed["l1"] {
		t.Errorf("completed set = %v, want l1 present", completed)
	}
}

func TestProgressUpdate_MutateErrorRollsBack(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	err := repo.Create(ctx, &ProgressRecord{
		UserID: "u1", LessonID: "l1", Status: StatusCompleted,
		EasinessFactor: 2.5, NextReviewDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	boom := errors.New("boom")
	_, err = repo.Update(ctx, "u1", "l1", func(rec *ProgressRecord) error {
		rec.Repetitions = 99
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("update err = %v, want boom", err)
	}

	got, err := repo.Get(ctx, "u1", "l1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Repetitions != 0 {
		t.Errorf("repetitions = %d, want untouched 0 after rollback", got.Repetitions)
	}
}

func TestProgressDue(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	mk := func(lesson string, due time.Time) {
		t.Helper()
		err := repo.Create(ctx, &ProgressRecord{
			UserID: "u1", LessonID: lesson, Status: StatusCompleted,
			EasinessFactor: 2.5, NextReviewDate: due,
		})
		if err != nil {
			t.Fatalf("create %s: %v", lesson, err)
		}
	}
	mk("recent", now.AddDate(0, 0, -1))
	mk("oldest", now.AddDate(0, 0, -5))
	mk("future", now.AddDate(0, 0, 3))

	due, err := repo.Due(ctx, "u1", now, 0)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if len(due) != 2 || due[0].LessonID != "oldest" || due[1].LessonID != "recent" {
		t.Errorf("due = %+v, want [oldest recent]", due)
	}

	capped, err := repo.Due(ctx, "u1", now, 1)
	if err != nil {
		t.Fatalf("due capped: %v", err)
	}
	if len(capped) != 1 || capped[0].LessonID != "oldest" {
		t.Errorf("capped due = %+v, want [oldest]", capped)
	}
}

func TestCognitiveRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.CognitiveRepo()
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	if _, err := repo.Get(ctx, "u1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get before upsert: err = %v, want ErrNotFound", err)
	}

	err := repo.Upsert(ctx, &CognitiveRecord{UserID: "u1", FocusScore: 62, LastUpdated: now})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	err = repo.Upsert(ctx, &CognitiveRecord{UserID: "u1", FocusScore: 58, LastUpdated: now})
	if err != nil {
		t.Fatalf("upsert again: %v", err)
	}

	got, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.FocusScore != 58 {
		t.Errorf("focus score = %v, want 58", got.FocusScore)
	}

	err = repo.AppendSession(ctx, "u1", SessionSummary{
		SessionID: "s1", ContextType: "lesson", ContextID: "l1",
		StartedAt: now, EndedAt: now.Add(time.Minute), DurationSeconds: 60, InteractionCount: 4,
	})
	if err != nil {
		t.Fatalf("append session: %v", err)
	}
	got, _ = repo.Get(ctx, "u1")
	if len(got.SessionHistory) != 1 || got.SessionHistory[0].SessionID != "s1" {
		t.Errorf("session history = %+v", got.SessionHistory)
	}

	stale, err := repo.ListStale(ctx, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("list stale: %v", err)
	}
	if len(stale) != 1 {
		t.Errorf("stale records = %d, want 1", len(stale))
	}
	none, err := repo.ListStale(ctx, now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("list stale: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("stale records = %d, want 0", len(none))
	}
}

func TestEventSequenceIsGlobal(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendReviewEvent(ctx, ReviewEventData{
		UserID: "u1", LessonID: "l1", Quality: 4, EasinessFactor: 2.5, Repetitions: 1, IntervalDays: 1,
	})
	if err != nil {
		t.Fatalf("append review event: %v", err)
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		UserID: "u1", SessionID: "s1", ContextType: "lesson", ContextID: "l1", DurationSecs: 60,
	})
	if err != nil {
		t.Fatalf("append session event: %v", err)
	}

	// The two event types share one monotonic sequence.
	var reviewSeq, sessionSeq int64
	if err := s.DB().QueryRow(`SELECT sequence FROM review_events`).Scan(&reviewSeq); err != nil {
		t.Fatalf("read review sequence: %v", err)
	}
	if err := s.DB().QueryRow(`SELECT sequence FROM session_events`).Scan(&sessionSeq); err != nil {
		t.Fatalf("read session sequence: %v", err)
	}
	if sessionSeq != reviewSeq+1 {
		t.Errorf("sequences %d, %d: want consecutive across event types", reviewSeq, sessionSeq)
	}
}
