package srs

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// SM-2 constants. The easiness floor and the fixed early intervals come
// from the original SuperMemo-2 schedule.
const (
	MinEasiness    = 1.3
	MinQuality     = 0.0
	MaxQuality     = 5.0
	PassThreshold  = 3.0
	firstInterval  = 1
	secondInterval = 6
)

// Mastery promotion thresholds. Mastery is an informational status,
// never an input to the interval formula.
const (
	MasteryEasiness     = 4.0
	MasteryIntervalDays = 90
)

// ErrQualityOutOfRange is returned for quality scores outside [0, 5].
var ErrQualityOutOfRange = errors.New("srs: quality score out of range [0, 5]")

// CheckQuality validates a recall-quality score.
func CheckQuality(quality float64) error {
	if quality < MinQuality || quality > MaxQuality || math.IsNaN(quality) {
		return fmt.Errorf("%w: got %v", ErrQualityOutOfRange, quality)
	}
	return nil
}

// State is the scheduling state carried between reviews.
type State struct {
	EasinessFactor float64
	Repetitions    int
	IntervalDays   int
}

// DefaultState is the state assigned on first completion of a lesson.
func DefaultState() State {
	return State{EasinessFactor: 2.5, Repetitions: 0, IntervalDays: 1}
}

// Result is the outcome of a single review.
type Result struct {
	State
	NextReviewDate time.Time
	Mastered       bool
}

// ComputeNext applies one SM-2 review to state. It is a pure function of
// (state, quality, now): identical inputs always produce identical
// outputs, so now is injected rather than read from the wall clock.
//
// Failed recalls (quality < 3) reset repetitions and the interval, but
// the easiness factor still moves, so the next success starts from the
// updated difficulty.
func ComputeNext(state State, quality float64, now time.Time) (Result, error) {
	if err := CheckQuality(quality); err != nil {
		return Result{}, err
	}

	miss := MaxQuality - quality
	ef := state.EasinessFactor + (0.1 - miss*(0.08+miss*0.02))
	if ef < MinEasiness {
		ef = MinEasiness
	}

	next := State{EasinessFactor: ef}
	if quality < PassThreshold {
		next.Repetitions = 0
		next.IntervalDays = firstInterval
	} else {
		next.Repetitions = state.Repetitions + 1
		switch next.Repetitions {
		case 1:
			next.IntervalDays = firstInterval
		case 2:
			next.IntervalDays = secondInterval
		default:
			next.IntervalDays = int(math.Ceil(float64(state.IntervalDays) * ef))
		}
	}

	return Result{
		State:          next,
		NextReviewDate: DueDate(now, next.IntervalDays),
		Mastered:       ef > MasteryEasiness && next.IntervalDays > MasteryIntervalDays,
	}, nil
}

// DueDate returns the calendar due date: a review done at any hour of
// day D is due starting day D+interval, independent of time of day.
func DueDate(now time.Time, intervalDays int) time.Time {
	u := now.UTC()
	day := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, intervalDays)
}
