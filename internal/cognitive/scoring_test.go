package cognitive

import "testing"

func TestScoreDelta_Review(t *testing.T) {
	tests := []struct {
		quality float64
		want    float64
	}{
		{0, -5},
		{2.5, 0},
		{3, 1},
		{5, 5},
	}
	for _, tt := range tests {
		got := scoreDelta(Interaction{Type: InteractionReview, Quality: tt.quality})
		if got != tt.want {
			t.Errorf("review q=%v: delta = %v, want %v", tt.quality, got, tt.want)
		}
	}
}

func TestScoreDelta_Quiz(t *testing.T) {
	if got := scoreDelta(Interaction{Type: InteractionQuiz, Correct: true}); got != quizDelta {
		t.Errorf("correct quiz delta = %v, want %v", got, quizDelta)
	}
	if got := scoreDelta(Interaction{Type: InteractionQuiz, Correct: false}); got != -quizDelta {
		t.Errorf("incorrect quiz delta = %v, want %v", got, -quizDelta)
	}
}

func TestScoreDelta_UnknownTypeIsNeutral(t *testing.T) {
	if got := scoreDelta(Interaction{Type: "telemetry"}); got != 0 {
		t.Errorf("unknown type delta = %v, want 0", got)
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-4, 0},
		{0, 0},
		{55.5, 55.5},
		{100, 100},
		{130, 100},
	}
	for _, tt := range tests {
		if got := clampScore(tt.in); got != tt.want {
			t.Errorf("clampScore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
