package engine

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/abhisek/learnloop/internal/content"
	"github.com/abhisek/learnloop/internal/store"
)

type fakeContentRepo struct {
	cat      content.Catalog
	replaced int
	version  string
}

func (f *fakeContentRepo) Subjects(context.Context) ([]content.Subject, error) {
	return f.cat.Subjects, nil
}

func (f *fakeContentRepo) Lessons(_ context.Context, subjectID string) ([]content.Lesson, error) {
	return f.cat.LessonsBySubject()[subjectID], nil
}

func (f *fakeContentRepo) Lesson(_ context.Context, lessonID string) (*content.Lesson, error) {
	for i := range f.cat.Lessons {
		if f.cat.Lessons[i].ID == lessonID {
			return &f.cat.Lessons[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeContentRepo) ReplaceAll(_ context.Context, cat *content.Catalog) error {
	f.cat = *cat
	f.replaced++
	return nil
}

func (f *fakeContentRepo) Version(context.Context) (string, error) {
	return f.version, nil
}

type progressKey struct{ userID, lessonID string }

type fakeProgressRepo struct {
	records map[progressKey]*store.ProgressRecord
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{records: make(map[progressKey]*store.ProgressRecord)}
}

func (f *fakeProgressRepo) Get(_ context.Context, userID, lessonID string) (*store.ProgressRecord, error) {
	rec, ok := f.records[progressKey{userID, lessonID}]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeProgressRepo) Create(_ context.Context, rec *store.ProgressRecord) error {
	key := progressKey{rec.UserID, rec.LessonID}
	if _, exists := f.records[key]; exists {
		return errors.New("duplicate record")
	}
	cp := *rec
	f.records[key] = &cp
	return nil
}

func (f *fakeProgressRepo) Update(ctx context.Context, userID, lessonID string, mutate func(*store.ProgressRecord) error) (*store.ProgressRecord, error) {
	rec, ok := f.records[progressKey{userID, lessonID}]
	if !ok {
		return nil, store.ErrNotFound
	}
	if err := mutate(rec); err != nil {
		return nil, err
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeProgressRepo) Due(_ context.Context, userID string, now time.Time, limit int) ([]store.ProgressRecord, error) {
	var due []store.ProgressRecord
	for key, rec := range f.records {
		if key.userID == userID && !rec.NextReviewDate.After(now) {
			due = append(due, *rec)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].NextReviewDate.Before(due[j].NextReviewDate) })
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (f *fakeProgressRepo) CompletedLessonIDs(_ context.Context, userID string) (map[string]bool, error) {
	out := make(map[string]bool)
	for key, rec := range f.records {
		if key.userID == userID && rec.Status != store.StatusNotStarted {
			out[key.lessonID] = true
		}
	}
	return out, nil
}

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
	return &cp, nil
}

func (f *fakeCognitiveRepo) Upsert(_ context.Context, rec *store.CognitiveRecord) error {
	cp := *rec
	f.records[rec.UserID] = &cp
	return nil
}

func (f *fakeCognitiveRepo) AppendSession(_ context.Context, userID string, sum store.SessionSummary) error {
	rec, ok := f.records[userID]
	if !ok {
		rec = &store.CognitiveRecord{UserID: userID, FocusScore: store.DefaultFocusScore}
		f.records[userID] = rec
	}
	rec.SessionHistory = append(rec.SessionHistory, sum)
	return nil
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

type fakeEventRepo struct{}

func (fakeEventRepo) AppendReviewEvent(context.Context, store.ReviewEventData) error   { return nil }
func (fakeEventRepo) AppendSessionEvent(context.Context, store.SessionEventData) error { return nil }

var engineNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testCatalog() content.Catalog {
	return content.Catalog{
		Subjects: []content.Subject{
			{ID: "basics", Title: "Basics", Position: 0},
			{ID: "algebra", Title: "Algebra", Position: 1, Prerequisites: []string{"basics"}},
		},
		Lessons: []content.Lesson{
			{ID: "b1", SubjectID: "basics", Title: "Counting", Position: 0, Reviewable: true},
			{ID: "b2", SubjectID: "basics", Title: "Shapes Tour", Position: 1, Reviewable: false},
			{ID: "a1", SubjectID: "algebra", Title: "Variables", Position: 0, Reviewable: true},
		},
	}
}

func newTestEngine() (*Engine, *fakeContentRepo, *fakeProgressRepo) {
	cr := &fakeContentRepo{cat: testCatalog(), version: "v1"}
	pr := newFakeProgressRepo()
	e := New(cr, pr, newFakeCognitiveRepo(), fakeEventRepo{}, nil, func() time.Time { return engineNow })
	return e, cr, pr
}

func TestNextLesson_EmptyUserRejected(t *testing.T) {
	e, _, _ := newTestEngine()
	if _, err := e.NextLesson(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestNextLesson_WalksPrerequisiteOrder(t *testing.T) {
	e, _, _ := newTestEngine()
	ctx := context.Background()

	rec, err := e.NextLesson(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if rec.LessonID != "b1" {
		t.Errorf("first recommendation = %s, want b1", rec.LessonID)
	}

	if _, err := e.CompleteLesson(ctx, "u1", "b1"); err != nil {
		t.Fatal(err)
	}
	rec, err = e.NextLesson(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if rec.LessonID != "b2" {
		t.Errorf("after b1, recommendation = %s, want b2", rec.LessonID)
	}
}

func TestCompleteLesson(t *testing.T) {
	e, _, _ := newTestEngine()
	ctx := context.Background()

	rec, err := e.CompleteLesson(ctx, "u1", "b1")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Status != store.StatusCompleted {
		t.Errorf("status = %s, want completed", rec.Status)
	}
	wantDue := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	if !rec.NextReviewDate.Equal(wantDue) {
		t.Errorf("next review = %v, want %v", rec.NextReviewDate, wantDue)
	}

	// Repeat completion is a no-op returning the existing record.
	again, err := e.CompleteLesson(ctx, "u1", "b1")
	if err != nil {
		t.Fatal(err)
	}
	if !again.NextReviewDate.Equal(rec.NextReviewDate) || again.Repetitions != rec.Repetitions {
		t.Errorf("repeat completion changed the record: %+v vs %+v", again, rec)
	}
}

func TestCompleteLesson_UnknownLesson(t *testing.T) {
	e, _, _ := newTestEngine()
	if _, err := e.CompleteLesson(context.Background(), "u1", "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCompleteLesson_NonReviewableNeverDue(t *testing.T) {
	e, _, _ := newTestEngine()
	ctx := context.Background()

	if _, err := e.CompleteLesson(ctx, "u1", "b2"); err != nil {
		t.Fatal(err)
	}
	due, err := e.DueReviews(ctx, "u1", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(due) != 0 {
		t.Errorf("non-reviewable completion surfaced as due: %+v", due)
	}
}

func TestSubmitReview(t *testing.T) {
	e, _, _ := newTestEngine()
	ctx := context.Background()

	if _, err := e.CompleteLesson(ctx, "u1", "b1"); err != nil {
		t.Fatal(err)
	}
	rec, err := e.SubmitReview(ctx, "u1", "b1", 4)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Repetitions != 1 {
		t.Errorf("repetitions = %d, want 1", rec.Repetitions)
	}
	if len(rec.ReviewHistory) != 1 {
		t.Errorf("review history length = %d, want 1", len(rec.ReviewHistory))
	}
}

func TestSubmitReview_ErrorTaxonomy(t *testing.T) {
	e, _, _ := newTestEngine()
	ctx := context.Background()

	if _, err := e.SubmitReview(ctx, "u1", "b1", 7); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("out-of-range quality: err = %v, want ErrInvalidInput", err)
	}
	if _, err := e.SubmitReview(ctx, "u1", "b1", 4); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing record: err = %v, want ErrNotFound", err)
	}
	if _, err := e.SubmitReview(ctx, "", "b1", 4); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty user: err = %v, want ErrInvalidInput", err)
	}
}

func TestDueReviews_OldestFirst(t *testing.T) {
	e, _, pr := newTestEngine()
	ctx := context.Background()

	older := engineNow.Add(-72 * time.Hour)
	newer := engineNow.Add(-24 * time.Hour)
	pr.Create(ctx, &store.ProgressRecord{UserID: "u1", LessonID: "a1", Status: store.StatusCompleted, NextReviewDate: newer})
	pr.Create(ctx, &store.ProgressRecord{UserID: "u1", LessonID: "b1", Status: store.StatusCompleted, NextReviewDate: older})

	due, err := e.DueReviews(ctx, "u1", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(due) != 2 || due[0].LessonID != "b1" || due[1].LessonID != "a1" {
		t.Errorf("due order = %+v, want oldest first", due)
	}
}

func TestImportCatalog(t *testing.T) {
	e, cr, _ := newTestEngine()
	ctx := context.Background()

	cat := testCatalog()
	if err := e.ImportCatalog(ctx, &cat); err != nil {
		t.Fatal(err)
	}
	if cr.replaced != 1 {
		t.Errorf("ReplaceAll calls = %d, want 1", cr.replaced)
	}
}

func TestImportCatalog_RejectsCycle(t *testing.T) {
	e, cr, _ := newTestEngine()

	cat := content.Catalog{
		Subjects: []content.Subject{
			{ID: "a", Title: "A", Position: 0, Prerequisites: []string{"b"}},
			{ID: "b", Title: "B", Position: 1, Prerequisites: []string{"a"}},
		},
		Lessons: []content.Lesson{
			{ID: "l1", SubjectID: "a", Title: "L", Position: 0},
		},
	}
	err := e.ImportCatalog(context.Background(), &cat)
	var gerr *GraphInconsistencyError
	if !errors.As(err, &gerr) {
		t.Fatalf("err = %v, want GraphInconsistencyError", err)
	}
	if cr.replaced != 0 {
		t.Error("cyclic catalog must not be written")
	}
}
