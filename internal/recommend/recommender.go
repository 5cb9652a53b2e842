package recommend

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/learnloop/internal/cognitive"
	"github.com/abhisek/learnloop/internal/content"
	"github.com/abhisek/learnloop/internal/subjectgraph"
)

// FallbackScanCap bounds how many lessons a degraded-mode scan may
// visit, so a broken graph over a huge catalog cannot stall a request.
const FallbackScanCap = 512

// ContentSource is the catalog read surface the recommender needs.
type ContentSource interface {
	Subjects(ctx context.Context) ([]content.Subject, error)
	Lessons(ctx context.Context, subjectID string) ([]content.Lesson, error)
	Version(ctx context.Context) (string, error)
}

// ProgressSource supplies the user's completed-lesson set.
type ProgressSource interface {
	CompletedLessonIDs(ctx context.Context, userID string) (map[string]bool, error)
}

// StateSource supplies the durable cognitive snapshot.
type StateSource interface {
	CurrentState(ctx context.Context, userID string) (cognitive.Snapshot, error)
}

// Recommendation is the result of SuggestNext. Exactly one of the
// lesson fields or AllCompleted is meaningful; Degraded marks results
// produced via the fallback scan.
type Recommendation struct {
	SubjectID    string
	SubjectTitle string
	LessonID     string
	LessonTitle  string
	Rationale    string
	AudioPreset  string
	AllCompleted bool
	Degraded     bool
}

// Recommender picks the next lesson for a user. It composes the
// dependency ordering, the completed set, and the cognitive snapshot;
// it performs no writes of its own.
type Recommender struct {
	content  ContentSource
	progress ProgressSource
	states   StateSource
	cache    *subjectgraph.Cache
	log      *zap.Logger
}

// NewRecommender creates a recommender. A nil cache disables ordering
// reuse; a nil logger is replaced with a no-op one.
func NewRecommender(cs ContentSource, ps ProgressSource, ss StateSource, cache *subjectgraph.Cache, log *zap.Logger) *Recommender {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recommender{
		content:  cs,
		progress: ps,
		states:   ss,
		cache:    cache,
		log:      log,
	}
}

// SuggestNext returns the next lesson for the user. Graph problems
// degrade to a catalog-order fallback scan rather than failing; only a
// storage outage that also defeats the fallback propagates as an error.
func (r *Recommender) SuggestNext(ctx context.Context, userID string) (*Recommendation, error) {
	subjects, err := r.content.Subjects(ctx)
	if err != nil {
		// Without subjects the fallback cannot run either.
		return nil, fmt.Errorf("load subjects: %w", err)
	}

	g := subjectgraph.Build(subjects)
	if g.HasCycle() {
		r.log.Warn("subject graph has a cycle; serving fallback recommendation",
			zap.String("user_id", userID))
		return r.fallback(ctx, userID, subjects)
	}

	res := r.sortedOrder(ctx, g)
	if !res.Ordered() {
		// Both detectors must agree; reaching here means they do not.
		r.log.Warn("topological sort incomplete despite clean cycle check",
			zap.Strings("unordered", res.Unordered))
		return r.fallback(ctx, userID, subjects)
	}

	completed, err := r.progress.CompletedLessonIDs(ctx, userID)
	if err != nil {
		r.log.Warn("completed-lesson lookup failed; attempting fallback",
			zap.String("user_id", userID), zap.Error(err))
		return r.fallbackOrFail(ctx, userID, subjects, err)
	}

	// One snapshot per request, not one per subject.
	snap, err := r.states.CurrentState(ctx, userID)
	if err != nil {
		r.log.Warn("cognitive snapshot fetch failed; attempting fallback",
			zap.String("user_id", userID), zap.Error(err))
		return r.fallbackOrFail(ctx, userID, subjects, err)
	}

	for _, subject := range res.Order {
		lessons, err := r.content.Lessons(ctx, subject.ID)
		if err != nil {
			r.log.Warn("lesson listing failed mid-walk; attempting fallback",
				zap.String("subject_id", subject.ID), zap.Error(err))
			return r.fallbackOrFail(ctx, userID, subjects, err)
		}
		for _, lesson := range lessons {
			if completed[lesson.ID] {
				continue
			}
			return &Recommendation{
				SubjectID:    subject.ID,
				SubjectTitle: subject.Title,
				LessonID:     lesson.ID,
				LessonTitle:  lesson.Title,
				Rationale:    buildRationale(subject, lesson, snap),
				AudioPreset:  lesson.AudioPreset,
			}, nil
		}
	}

	return &Recommendation{AllCompleted: true, Rationale: AllCompletedRationale}, nil
}

// sortedOrder computes the topological order, reusing the cached result
// when the content version has not changed.
func (r *Recommender) sortedOrder(ctx context.Context, g *subjectgraph.Graph) *subjectgraph.SortResult {
	if r.cache == nil {
		return g.Sort()
	}
	version, err := r.content.Version(ctx)
	if err != nil {
		r.log.Warn("content version lookup failed; sorting without cache", zap.Error(err))
		return g.Sort()
	}
	return r.cache.Get(version, g.Sort)
}

// fallbackOrFail runs the fallback scan after a storage error. If the
// fallback fails too, the original error is reported as a hard failure.
func (r *Recommender) fallbackOrFail(ctx context.Context, userID string, subjects []content.Subject, cause error) (*Recommendation, error) {
	rec, err := r.fallback(ctx, userID, subjects)
	if err != nil {
		return nil, fmt.Errorf("recommendation failed (%v); fallback also failed: %w", err, cause)
	}
	return rec, nil
}

// fallback scans subjects in stored order and lessons in creation
// order, ignoring prerequisites, and returns the first incomplete
// lesson with a degraded rationale. The scan is capped so it stays
// bounded even over a large catalog.
func (r *Recommender) fallback(ctx context.Context, userID string, subjects []content.Subject) (*Recommendation, error) {
	completed, err := r.progress.CompletedLessonIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fallback: completed-lesson lookup: %w", err)
	}

	scanned := 0
	for _, subject := range subjects {
		lessons, err := r.content.Lessons(ctx, subject.ID)
		if err != nil {
			return nil, fmt.Errorf("fallback: list lessons for %s: %w", subject.ID, err)
		}
		for _, lesson := range lessons {
			scanned++
			if scanned > FallbackScanCap {
				r.log.Warn("fallback scan cap reached without an incomplete lesson",
					zap.String("user_id", userID), zap.Int("cap", FallbackScanCap))
				return &Recommendation{AllCompleted: true, Rationale: AllCompletedRationale, Degraded: true}, nil
			}
			if completed[lesson.ID] {
				continue
			}
			return &Recommendation{
				SubjectID:    subject.ID,
				SubjectTitle: subject.Title,
				LessonID:     lesson.ID,
				LessonTitle:  lesson.Title,
				Rationale:    withAudioHint(fallbackRationale, lesson),
				AudioPreset:  lesson.AudioPreset,
				Degraded:     true,
			}, nil
		}
	}

	return &Recommendation{AllCompleted: true, Rationale: AllCompletedRationale, Degraded: true}, nil
}
