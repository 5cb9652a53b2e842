package cognitive

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/learnloop/internal/store"
)

// fakeCognitiveRepo is an in-memory CognitiveRepo.
type fakeCognitiveRepo struct {
	records map[string]*store.CognitiveRecord
}

func newFakeCognitiveRepo() *fakeCognitiveRepo {
	return &fakeCognitiveRepo{records: make(map[string]*store.CognitiveRecord)}
}

func (f *fakeCognitiveRepo) Get(_ context.Context, userID string) (*store.CognitiveRecord, error) {
	rec, ok := f.records[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *rec
	cp.SessionHistory = append([]store.SessionSummary(nil), rec.SessionHistory...)
	return &cp, nil
}

func (f *fakeCognitiveRepo) Upsert(_ context.Context, rec *store.CognitiveRecord) error {
	cp := *rec
	f.records[rec.UserID] = &cp
	return nil
}

func (f *fakeCognitiveRepo) AppendSession(ctx context.Context, userID string, sum store.SessionSummary) error {
	rec, err := f.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		rec = &store.CognitiveRecord{UserID: userID, FocusScore: NeutralFocusScore, LastUpdated: sum.EndedAt}
	}
	rec.SessionHistory = append(rec.SessionHistory, sum)
	if len(rec.SessionHistory) > store.SessionHistoryCap {
		rec.SessionHistory = rec.SessionHistory[len(rec.SessionHistory)-store.SessionHistoryCap:]
	}
	return f.Upsert(ctx, rec)
}

func (f *fakeCognitiveRepo) ListStale(_ context.Context, cutoff time.Time) ([]store.CognitiveRecord, error) {
	var out []store.CognitiveRecord
	for _, rec := range f.records {
		if rec.LastUpdated.Before(cutoff) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

// fakeEventRepo records appended session events.
type fakeEventRepo struct {
	sessions []store.SessionEventData
}

func (f *fakeEventRepo) AppendReviewEvent(_ context.Context, _ store.ReviewEventData) error {
	return nil
}

func (f *fakeEventRepo) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	f.sessions = append(f.sessions, d)
	return nil
}

func newTestTracker(repo *fakeCognitiveRepo, events *fakeEventRepo, now time.Time) *Tracker {
	return NewTracker(repo, events, nil, func() time.Time { return now })
}

var trackerNow = time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)

func TestStartSession_RequiresContext(t *testing.T) {
	tr := newTestTracker(newFakeCognitiveRepo(), &fakeEventRepo{}, trackerNow)
	if _, err := tr.StartSession(context.Background(), "u1", Context{Type: "lesson"}); !errors.Is(err, ErrInvalidContext) {
		t.Errorf("missing id: err = %v, want ErrInvalidContext", err)
	}
	if _, err := tr.StartSession(context.Background(), "u1", Context{ID: "l1"}); !errors.Is(err, ErrInvalidContext) {
		t.Errorf("missing type: err = %v, want ErrInvalidContext", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	repo := newFakeCognitiveRepo()
	events := &fakeEventRepo{}
	tr := newTestTracker(repo, events, trackerNow)
	ctx := context.Background()

	id, err := tr.StartSession(ctx, "u1", Context{Type: "lesson", ID: "l1"})
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("expected non-empty session id")
	}

	for i := 0; i < 3; i++ {
		if err := tr.LogInteraction(ctx, "u1", Context{Type: "lesson", ID: "l1"}, Interaction{Type: InteractionQuiz, Correct: true}); err != nil {
			t.Fatal(err)
		}
	}

	if err := tr.EndSession(ctx, "u1", Context{Type: "lesson", ID: "l1"}, 600); err != nil {
		t.Fatal(err)
	}

	rec, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.SessionHistory) != 1 {
		t.Fatalf("session history length = %d, want 1", len(rec.SessionHistory))
	}
	sum := rec.SessionHistory[0]
	if sum.InteractionCount != 3 {
		t.Errorf("interaction count = %d, want 3", sum.InteractionCount)
	}
	if sum.DurationSeconds != 600 {
		t.Errorf("duration = %d, want 600", sum.DurationSeconds)
	}
	if len(events.sessions) != 1 || events.sessions[0].Superseded {
		t.Errorf("expected one non-superseded session event, got %+v", events.sessions)
	}
	if _, active := tr.ActiveSessionID("u1"); active {
		t.Error("session should be cleared after end")
	}
}

func TestStartSession_SupersedesActiveSession(t *testing.T) {
	repo := newFakeCognitiveRepo()
	events := &fakeEventRepo{}
	tr := newTestTracker(repo, events, trackerNow)
	ctx := context.Background()

	first, _ := tr.StartSession(ctx, "u1", Context{Type: "lesson", ID: "l1"})
	second, _ := tr.StartSession(ctx, "u1", Context{Type: "quiz", ID: "q1"})
	if first == second {
		t.Fatal("expected a fresh session id")
	}

	// The first session was flushed, not dropped.
	if len(events.sessions) != 1 {
		t.Fatalf("session events = %d, want 1", len(events.sessions))
	}
	if !events.sessions[0].Superseded {
		t.Error("flushed session should be marked superseded")
	}
	rec, _ := repo.Get(ctx, "u1")
	if len(rec.SessionHistory) != 1 || rec.SessionHistory[0].SessionID != first {
		t.Errorf("durable history should hold the superseded session, got %+v", rec.SessionHistory)
	}
}

func TestEndSession_ContextMismatchIgnored(t *testing.T) {
	repo := newFakeCognitiveRepo()
	events := &fakeEventRepo{}
	tr := newTestTracker(repo, events, trackerNow)
	ctx := context.Background()

	tr.StartSession(ctx, "u1", Context{Type: "lesson", ID: "l1"})
	if err := tr.EndSession(ctx, "u1", Context{Type: "lesson", ID: "other"}, 60); err != nil {
		t.Fatalf("mismatch must not error: %v", err)
	}
	if len(events.sessions) != 0 {
		t.Error("mismatched end must not flush")
	}
	if _, active := tr.ActiveSessionID("u1"); !active {
		t.Error("active session should survive a mismatched end")
	}
}

func TestEndSession_NoActiveSessionIgnored(t *testing.T) {
	tr := newTestTracker(newFakeCognitiveRepo(), &fakeEventRepo{}, trackerNow)
	if err := tr.EndSession(context.Background(), "u1", Context{Type: "lesson", ID: "l1"}, 60); err != nil {
		t.Fatalf("missing session must not error: %v", err)
	}
}

func TestLogInteraction_UpdatesScoreWithoutSession(t *testing.T) {
	repo := newFakeCognitiveRepo()
	tr := newTestTracker(repo, &fakeEventRepo{}, trackerNow)
	ctx := context.Background()

	// No session active: the counter update is skipped with a warning,
	// but the durable score still moves.
	err := tr.LogInteraction(ctx, "u1", Context{Type: "review", ID: "l1"}, Interaction{Type: InteractionReview, Quality: 5})
	if err != nil {
		t.Fatal(err)
	}
	rec, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if rec.FocusScore != 55 {
		t.Errorf("score = %v, want 55 (50 + (5-2.5)*2)", rec.FocusScore)
	}
}

func TestLogInteraction_ClampsScore(t *testing.T) {
	repo := newFakeCognitiveRepo()
	repo.records["u1"] = &store.CognitiveRecord{UserID: "u1", FocusScore: 99, LastUpdated: trackerNow}
	tr := newTestTracker(repo, &fakeEventRepo{}, trackerNow)

	tr.LogInteraction(context.Background(), "u1", Context{Type: "review", ID: "l1"}, Interaction{Type: InteractionReview, Quality: 5})
	rec, _ := repo.Get(context.Background(), "u1")
	if rec.FocusScore != MaxFocusScore {
		t.Errorf("score = %v, want clamped to %v", rec.FocusScore, MaxFocusScore)
	}
}

func TestCurrentState_DefaultsToNeutral(t *testing.T) {
	tr := newTestTracker(newFakeCognitiveRepo(), &fakeEventRepo{}, trackerNow)
	snap, err := tr.CurrentState(context.Background(), "unknown")
	if err != nil {
		t.Fatal(err)
	}
	if snap.Recorded {
		t.Error("expected Recorded=false for unknown user")
	}
	if snap.FocusScore != NeutralFocusScore {
		t.Errorf("score = %v, want %v", snap.FocusScore, NeutralFocusScore)
	}
}

func TestCurrentState_IgnoresActiveSession(t *testing.T) {
	repo := newFakeCognitiveRepo()
	tr := newTestTracker(repo, &fakeEventRepo{}, trackerNow)
	ctx := context.Background()

	before, _ := tr.CurrentState(ctx, "u1")
	tr.StartSession(ctx, "u1", Context{Type: "lesson", ID: "l1"})
	after, _ := tr.CurrentState(ctx, "u1")
	if before != after {
		t.Errorf("starting a session changed the durable snapshot: %+v vs %+v", before, after)
	}
}

func TestDecaySweep(t *testing.T) {
	repo := newFakeCognitiveRepo()
	stale := trackerNow.Add(-10 * 24 * time.Hour)
	repo.records["idle"] = &store.CognitiveRecord{UserID: "idle", FocusScore: 90, LastUpdated: stale}
	repo.records["fresh"] = &store.CognitiveRecord{UserID: "fresh", FocusScore: 90, LastUpdated: trackerNow.Add(-time.Hour)}

	tr := newTestTracker(repo, &fakeEventRepo{}, trackerNow)
	updated, err := tr.DecaySweep(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if updated != 1 {
		t.Errorf("updated = %d, want 1", updated)
	}
	idle, _ := repo.Get(context.Background(), "idle")
	if idle.FocusScore >= 90 || idle.FocusScore <= NeutralFocusScore {
		t.Errorf("idle score = %v, want decayed into (50, 90)", idle.FocusScore)
	}
	fresh, _ := repo.Get(context.Background(), "fresh")
	if fresh.FocusScore != 90 {
		t.Errorf("fresh score = %v, want untouched 90", fresh.FocusScore)
	}

	// Running the sweep again immediately is a no-op.
	again, err := tr.DecaySweep(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if again != 0 {
		t.Errorf("second sweep updated %d records, want 0", again)
	}
}
