package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/learnloop/internal/cognitive"
	"github.com/abhisek/learnloop/internal/content"
)

type fakeContent struct {
	subjects    []content.Subject
	lessons     map[string][]content.Lesson
	subjectsErr error
	lessonsErr  map[string]error
	version     string
}

func (f *fakeContent) Subjects(context.Context) ([]content.Subject, error) {
	if f.subjectsErr != nil {
		return nil, f.subjectsErr
	}
	return f.subjects, nil
}

func (f *fakeContent) Lessons(_ context.Context, subjectID string) ([]content.Lesson, error) {
	if err := f.lessonsErr[subjectID]; err != nil {
		return nil, err
	}
	return f.lessons[subjectID], nil
}

func (f *fakeContent) Version(context.Context) (string, error) {
	return f.version, nil
}

type fakeProgress struct {
	completed map[string]bool
	err       error
}

func (f *fakeProgress) CompletedLessonIDs(context.Context, string) (map[string]bool, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.completed, nil
}

type fakeStates struct {
	snap cognitive.Snapshot
	err  error
}

func (f *fakeStates) CurrentState(context.Context, string) (cognitive.Snapshot, error) {
	if f.err != nil {
		return cognitive.Snapshot{}, f.err
	}
	return f.snap, nil
}

func subj(id, title string, pos int, prereqs ...string) content.Subject {
	return content.Subject{ID: id, Title: title, Position: pos, Prerequisites: prereqs}
}

func lesson(id, subjectID, title string, pos int) content.Lesson {
	return content.Lesson{ID: id, SubjectID: subjectID, Title: title, Position: pos, Reviewable: true}
}

// chainCatalog is a two-subject chain: basics then algebra, one lesson
// each, algebra requiring basics.
func chainCatalog() *fakeContent {
	return &fakeContent{
		subjects: []content.Subject{
			subj("algebra", "Algebra", 1, "basics"),
			subj("basics", "Basics", 0),
		},
		lessons: map[string][]content.Lesson{
			"basics":  {lesson("b1", "basics", "Counting", 0)},
			"algebra": {lesson("a1", "algebra", "Variables", 0)},
		},
		version: "v1",
	}
}

func newTestRecommender(cs *fakeContent, ps *fakeProgress, ss *fakeStates) *Recommender {
	return NewRecommender(cs, ps, ss, nil, nil)
}

func TestSuggestNext_RespectsPrerequisites(t *testing.T) {
	cs := chainCatalog()
	rec, err := newTestRecommender(cs, &fakeProgress{}, &fakeStates{}).SuggestNext(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if rec.LessonID != "b1" {
		t.Errorf("recommended %s, want b1 (prerequisite subject first)", rec.LessonID)
	}

	done := &fakeProgress{completed: map[string]bool{"b1": true}}
	rec, err = newTestRecommender(cs, done, &fakeStates{}).SuggestNext(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if rec.LessonID != "a1" {
		t.Errorf("recommended %s, want a1 after basics completed", rec.LessonID)
	}
	if rec.Degraded {
		t.Error("healthy graph must not produce a degraded result")
	}
}

func TestSuggestNext_NewUserFirstSteps(t *testing.T) {
	// Zero progress records and no cognitive state: the focus score
	// defaults to neutral and the rationale carries the first-steps marker.
	ss := &fakeStates{snap: cognitive.Snapshot{FocusScore: cognitive.NeutralFocusScore, Recorded: false}}
	rec, err := newTestRecommender(chainCatalog(), &fakeProgress{}, ss).SuggestNext(context.Background(), "new-user")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(rec.Rationale, "first steps") {
		t.Errorf("rationale %q missing first-steps marker", rec.Rationale)
	}
}

func TestSuggestNext_RationaleBands(t *testing.T) {
	tests := []struct {
		name string
		snap cognitive.Snapshot
		want string
	}{
		{"low focus prepends", cognitive.Snapshot{FocusScore: 10, Recorded: true}, "Performance suggests easing in."},
		{"high focus prepends", cognitive.Snapshot{FocusScore: 90, Recorded: true}, "Strong performance!"},
		{"neutral appends", cognitive.Snapshot{FocusScore: 50, Recorded: true}, "(steady progress.)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := newTestRecommender(chainCatalog(), &fakeProgress{}, &fakeStates{snap: tt.snap}).
				SuggestNext(context.Background(), "u1")
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(rec.Rationale, tt.want) {
				t.Errorf("rationale %q missing %q", rec.Rationale, tt.want)
			}
		})
	}
}

func TestSuggestNext_AudioPresetHint(t *testing.T) {
	cs := chainCatalog()
	cs.lessons["basics"][0].AudioPreset = "calm"
	rec, err := newTestRecommender(cs, &fakeProgress{}, &fakeStates{}).SuggestNext(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if rec.AudioPreset != "calm" {
		t.Errorf("audio preset = %q, want calm", rec.AudioPreset)
	}
	if !strings.Contains(rec.Rationale, "audio preset: calm") {
		t.Errorf("rationale %q missing audio hint", rec.Rationale)
	}
}

func TestSuggestNext_CycleFallsBackToCatalogOrder(t *testing.T) {
	// Subjects A and B are mutually prerequisite; C is independent with
	// one incomplete lesson. Fallback must still surface a lesson.
	cs := &fakeContent{
		subjects: []content.Subject{
			subj("a", "A", 0, "b"),
			subj("b", "B", 1, "a"),
			subj("c", "C", 2),
		},
		lessons: map[string][]content.Lesson{
			"a": {lesson("al1", "a", "A One", 0)},
			"b": {lesson("bl1", "b", "B One", 0)},
			"c": {lesson("cl1", "c", "C One", 0)},
		},
	}
	done := &fakeProgress{completed: map[string]bool{"al1": true, "bl1": true}}
	rec, err := newTestRecommender(cs, done, &fakeStates{}).SuggestNext(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if rec.LessonID != "cl1" {
		t.Errorf("recommended %s, want cl1 via fallback", rec.LessonID)
	}
	if !rec.Degraded {
		t.Error("cycle recovery must be marked degraded")
	}
	if !strings.Contains(rec.Rationale, "catalog order") {
		t.Errorf("rationale %q should state the degraded ordering", rec.Rationale)
	}
}

func TestSuggestNext_AllCompleted(t *testing.T) {
	done := &fakeProgress{completed: map[string]bool{"b1": true, "a1": true}}
	rec, err := newTestRecommender(chainCatalog(), done, &fakeStates{}).SuggestNext(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if !rec.AllCompleted {
		t.Fatal("expected the all-completed result, not an error")
	}
	if rec.Rationale != AllCompletedRationale {
		t.Errorf("rationale = %q, want canonical all-completed wording", rec.Rationale)
	}
}

func TestSuggestNext_Idempotent(t *testing.T) {
	r := newTestRecommender(chainCatalog(), &fakeProgress{}, &fakeStates{})
	first, err := r.SuggestNext(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.SuggestNext(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if *first != *second {
		t.Errorf("repeated calls disagree: %+v vs %+v", first, second)
	}
}

func TestSuggestNext_SnapshotErrorRecoversViaFallback(t *testing.T) {
	ss := &fakeStates{err: errors.New("state store down")}
	rec, err := newTestRecommender(chainCatalog(), &fakeProgress{}, ss).SuggestNext(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if rec.LessonID != "b1" || !rec.Degraded {
		t.Errorf("expected degraded b1 recommendation, got %+v", rec)
	}
}

func TestSuggestNext_ProgressErrorIsHardFailure(t *testing.T) {
	// The completed-lesson set is needed by both paths, so its outage
	// defeats the fallback too.
	cause := errors.New("progress store down")
	_, err := newTestRecommender(chainCatalog(), &fakeProgress{err: cause}, &fakeStates{}).
		SuggestNext(context.Background(), "u1")
	if !errors.Is(err, cause) {
		t.Errorf("err = %v, want wrapped %v", err, cause)
	}
}

func TestSuggestNext_SubjectsErrorIsHardFailure(t *testing.T) {
	cause := errors.New("content store down")
	cs := &fakeContent{subjectsErr: cause}
	_, err := newTestRecommender(cs, &fakeProgress{}, &fakeStates{}).SuggestNext(context.Background(), "u1")
	if !errors.Is(err, cause) {
		t.Errorf("err = %v, want wrapped %v", err, cause)
	}
}

func TestFallback_ScanIsCapped(t *testing.T) {
	// A cyclic graph where every lesson is completed: the fallback must
	// stop at the cap instead of walking the whole catalog.
	cs := &fakeContent{
		subjects: []content.Subject{
			subj("a", "A", 0, "b"),
			subj("b", "B", 1, "a"),
		},
		lessons: map[string][]content.Lesson{},
	}
	completed := make(map[string]bool)
	for i := 0; i < FallbackScanCap+10; i++ {
		id := fmt.Sprintf("al%d", i)
		cs.lessons["a"] = append(cs.lessons["a"], lesson(id, "a", "L", i))
		completed[id] = true
	}
	rec, err := newTestRecommender(cs, &fakeProgress{completed: completed}, &fakeStates{}).
		SuggestNext(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if !rec.AllCompleted || !rec.Degraded {
		t.Errorf("capped scan should report all-completed degraded, got %+v", rec)
	}
}
