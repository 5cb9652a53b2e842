package cognitive

import (
	"math"
	"time"
)

// Staleness decay: long-idle focus scores drift back toward the neutral
// midpoint so an old burst of activity stops biasing recommendations.

const (
	// DecayGracePeriod is how long a score holds steady before decay.
	DecayGracePeriod = 3 * 24 * time.Hour

	// decayRatePerDay is the fraction of the distance to neutral
	// closed per idle day beyond the grace period.
	decayRatePerDay = 0.10
)

// Decay returns the score after elapsed idle time. It is a pure
// function of (score, elapsed): within the grace period the score is
// unchanged; beyond it the gap to neutral shrinks exponentially.
func Decay(score float64, elapsed time.Duration) float64 {
	if elapsed <= DecayGracePeriod {
		return score
	}
	idleDays := (elapsed - DecayGracePeriod).Hours() / 24
	gap := score - NeutralFocusScore
	return NeutralFocusScore + gap*math.Pow(1-decayRatePerDay, idleDays)
}
