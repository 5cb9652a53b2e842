package cognitive

import (
	"math"
	"testing"
	"time"
)

func TestDecay_WithinGracePeriod(t *testing.T) {
	for _, elapsed := range []time.Duration{0, time.Hour, DecayGracePeriod} {
		if got := Decay(80, elapsed); got != 80 {
			t.Errorf("elapsed %v: score = %v, want unchanged 80", elapsed, got)
		}
	}
}

func TestDecay_MovesTowardNeutral(t *testing.T) {
	week := DecayGracePeriod + 7*24*time.Hour

	high := Decay(90, week)
	if high >= 90 || high <= NeutralFocusScore {
		t.Errorf("high score decayed to %v, want in (50, 90)", high)
	}

	low := Decay(10, week)
	if low <= 10 || low >= NeutralFocusScore {
		t.Errorf("low score decayed to %v, want in (10, 50)", low)
	}
}

func TestDecay_NeutralIsFixedPoint(t *testing.T) {
	if got := Decay(NeutralFocusScore, 365*24*time.Hour); got != NeutralFocusScore {
		t.Errorf("neutral score decayed to %v", got)
	}
}

func TestDecay_Pure(t *testing.T) {
	elapsed := DecayGracePeriod + 48*time.Hour
	a := Decay(72.5, elapsed)
	b := Decay(72.5, elapsed)
	if a != b {
		t.Errorf("identical inputs gave %v and %v", a, b)
	}
}

func TestDecay_LongIdleApproachesNeutral(t *testing.T) {
	year := 365 * 24 * time.Hour
	got := Decay(100, year)
	if math.Abs(got-NeutralFocusScore) > 1 {
		t.Errorf("after a year, score = %v, want ~%v", got, NeutralFocusScore)
	}
}
