package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/learnloop/internal/cognitive"
	"github.com/abhisek/learnloop/internal/content"
)

func TestBuildRationale(t *testing.T) {
	subject := content.Subject{ID: "basics", Title: "Basics"}
	plain := content.Lesson{ID: "b1", Title: "Counting"}
	withAudio := content.Lesson{ID: "b2", Title: "Shapes", AudioPreset: "calm"}

	tests := []struct {
		name   string
		lesson content.Lesson
		snap   cognitive.Snapshot
		want   string
	}{
		{
			name:   "no prior score appends first-steps marker",
			lesson: plain,
			snap:   cognitive.Snapshot{FocusScore: cognitive.NeutralFocusScore},
			want:   `Next up: "Counting" in "Basics". (first steps — adapt as you go!)`,
		},
		{
			name:   "low focus prepends easing",
			lesson: plain,
			snap:   cognitive.Snapshot{FocusScore: 10, Recorded: true},
			want:   `Performance suggests easing in. Next up: "Counting" in "Basics".`,
		},
		{
			name:   "high focus prepends praise",
			lesson: plain,
			snap:   cognitive.Snapshot{FocusScore: 95, Recorded: true},
			want:   `Strong performance! Next up: "Counting" in "Basics".`,
		},
		{
			name:   "neutral appends steady progress",
			lesson: plain,
			snap:   cognitive.Snapshot{FocusScore: 50, Recorded: true},
			want:   `Next up: "Counting" in "Basics". (steady progress.)`,
		},
		{
			name:   "band boundaries fall in the neutral band",
			lesson: plain,
			snap:   cognitive.Snapshot{FocusScore: LowFocusThreshold, Recorded: true},
			want:   `Next up: "Counting" in "Basics". (steady progress.)`,
		},
		{
			name:   "audio preset hint is appended last",
			lesson: withAudio,
			snap:   cognitive.Snapshot{FocusScore: 50, Recorded: true},
			want:   `Next up: "Shapes" in "Basics". (steady progress.) Recommended audio preset: calm.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildRationale(subject, tt.lesson, tt.snap)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildRationale_HighBoundary(t *testing.T) {
	subject := content.Subject{ID: "s", Title: "S"}
	lesson := content.Lesson{ID: "l", Title: "L"}

	at := buildRationale(subject, lesson, cognitive.Snapshot{FocusScore: HighFocusThreshold, Recorded: true})
	require.Contains(t, at, "(steady progress.)")

	above := buildRationale(subject, lesson, cognitive.Snapshot{FocusScore: HighFocusThreshold + 1, Recorded: true})
	require.Contains(t, above, "Strong performance!")
}
