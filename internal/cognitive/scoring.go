package cognitive

// Focus score bounds; the durable score is clamped after every update.
const (
	MinFocusScore     = 0.0
	MaxFocusScore     = 100.0
	NeutralFocusScore = 50.0
)

// InteractionType identifies the kind of telemetry interaction.
type InteractionType string

const (
	// InteractionReview is a spaced-repetition review submission;
	// Quality carries the 0-5 recall score.
	InteractionReview InteractionType = "review"
	// InteractionQuiz is a quiz answer; Correct carries the outcome.
	InteractionQuiz InteractionType = "quiz"
)

// Interaction is one telemetry event inside a session.
type Interaction struct {
	Type    InteractionType
	Quality float64
	Correct bool
}

// quizDelta is the fixed shift applied per quiz answer.
const quizDelta = 3.0

// scoreDelta maps an interaction to its focus-score shift. The mapping
// is deterministic: the same interaction always produces the same
// delta, keeping recommendation inputs reproducible.
func scoreDelta(in Interaction) float64 {
	switch in.Type {
	case InteractionReview:
		return (in.Quality - 2.5) * 2
	case InteractionQuiz:
		if in.Correct {
			return quizDelta
		}
		return -quizDelta
	default:
		return 0
	}
}

func clampScore(v float64) float64 {
	if v < MinFocusScore {
		return MinFocusScore
	}
	if v > MaxFocusScore {
		return MaxFocusScore
	}
	return v
}
