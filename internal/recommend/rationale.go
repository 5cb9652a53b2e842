package recommend

import (
	"fmt"

	"github.com/abhisek/learnloop/internal/cognitive"
	"github.com/abhisek/learnloop/internal/content"
)

// Focus-score bands for rationale wording. The thresholds are policy
// and may be recalibrated; the three bands plus the no-score case are
// part of the contract.
const (
	LowFocusThreshold  = 25.0
	HighFocusThreshold = 80.0
)

// AllCompletedRationale is the canonical wording when no incomplete
// lesson exists anywhere.
const AllCompletedRationale = "All available lessons completed. Nothing left to learn!"

// fallbackRationale marks a recommendation produced in degraded mode.
const fallbackRationale = "Recommended in catalog order: the subject dependency data is currently inconsistent, so prerequisite ordering is unavailable."

// buildRationale assembles the recommendation rationale from a fixed
// decision table keyed on the user's focus score.
func buildRationale(subject content.Subject, lesson content.Lesson, snap cognitive.Snapshot) string {
	base := fmt.Sprintf("Next up: %q in %q.", lesson.Title, subject.Title)

	var out string
	switch {
	case !snap.Recorded:
		out = base + " (first steps — adapt as you go!)"
	case snap.FocusScore < LowFocusThreshold:
		out = "Performance suggests easing in. " + base
	case snap.FocusScore > HighFocusThreshold:
		out = "Strong performance! " + base
	default:
		out = base + " (steady progress.)"
	}

	return withAudioHint(out, lesson)
}

// withAudioHint appends the lesson's audio enhancement suggestion when
// the lesson carries one.
func withAudioHint(rationale string, lesson content.Lesson) string {
	if lesson.AudioPreset == "" {
		return rationale
	}
	return fmt.Sprintf("%s Recommended audio preset: %s.", rationale, lesson.AudioPreset)
}
