package srs

import (
	"errors"
	"math"
	"testing"
	"time"
)

var reviewTime = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

func TestComputeNext_RejectsOutOfRangeQuality(t *testing.T) {
	for _, q := range []float64{-0.1, -5, 5.1, 42, math.NaN()} {
		_, err := ComputeNext(DefaultState(), q, reviewTime)
		if !errors.Is(err, ErrQualityOutOfRange) {
			t.Errorf("quality %v: err = %v, want ErrQualityOutOfRange", q, err)
		}
	}
}

func TestComputeNext_AcceptsBoundaryQualities(t *testing.T) {
	for _, q := range []float64{0, 5, 2.5} {
		if _, err := ComputeNext(DefaultState(), q, reviewTime); err != nil {
			t.Errorf("quality %v: unexpected error %v", q, err)
		}
	}
}

func TestComputeNext_FirstSuccessfulReview(t *testing.T) {
	// {EF:2.5, reps:0, interval:1}, q=4 -> reps=1, interval=1, due
	// tomorrow. The q=4 easiness delta is exactly zero:
	// 0.1 - 1*(0.08 + 1*0.02) = 0.
	res, err := ComputeNext(State{EasinessFactor: 2.5, Repetitions: 0, IntervalDays: 1}, 4, reviewTime)
	if err != nil {
		t.Fatal(err)
	}
	if res.EasinessFactor < 2.5 || res.EasinessFactor > 2.6 {
		t.Errorf("EF = %v, want in [2.5, 2.6]", res.EasinessFactor)
	}
	if res.Repetitions != 1 {
		t.Errorf("repetitions = %d, want 1", res.Repetitions)
	}
	if res.IntervalDays != 1 {
		t.Errorf("interval = %d, want 1", res.IntervalDays)
	}
	wantDue := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	if !res.NextReviewDate.Equal(wantDue) {
		t.Errorf("next review = %v, want %v", res.NextReviewDate, wantDue)
	}
}

func TestComputeNext_SecondSuccessfulReview(t *testing.T) {
	first, err := ComputeNext(State{EasinessFactor: 2.5, Repetitions: 0, IntervalDays: 1}, 4, reviewTime)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ComputeNext(first.State, 5, reviewTime.AddDate(0, 0, 1))
	if err != nil {
		t.Fatal(err)
	}
	if second.Repetitions != 2 {
		t.Errorf("repetitions = %d, want 2", second.Repetitions)
	}
	if second.IntervalDays != secondInterval {
		t.Errorf("interval = %d, want %d", second.IntervalDays, secondInterval)
	}
}

func TestComputeNext_ThirdReviewUsesEasinessGrowth(t *testing.T) {
	state := State{EasinessFactor: 2.5, Repetitions: 2, IntervalDays: 6}
	res, err := ComputeNext(state, 5, reviewTime)
	if err != nil {
		t.Fatal(err)
	}
	// EF grows to 2.6; ceil(6 * 2.6) = 16.
	if res.IntervalDays != 16 {
		t.Errorf("interval = %d, want 16", res.IntervalDays)
	}
	if res.Repetitions != 3 {
		t.Errorf("repetitions = %d, want 3", res.Repetitions)
	}
}

func TestComputeNext_FailureResetsProgress(t *testing.T) {
	for _, q := range []float64{0, 1, 2, 2.9} {
		res, err := ComputeNext(State{EasinessFactor: 2.8, Repetitions: 7, IntervalDays: 120}, q, reviewTime)
		if err != nil {
			t.Fatal(err)
		}
		if res.Repetitions != 0 {
			t.Errorf("q=%v: repetitions = %d, want 0", q, res.Repetitions)
		}
		if res.IntervalDays != 1 {
			t.Errorf("q=%v: interval = %d, want 1", q, res.IntervalDays)
		}
	}
}

func TestComputeNext_FailureStillUpdatesEasiness(t *testing.T) {
	res, err := ComputeNext(State{EasinessFactor: 2.5, Repetitions: 3, IntervalDays: 15}, 0, reviewTime)
	if err != nil {
		t.Fatal(err)
	}
	// q=0: EF drops by 0.8, to 1.7: the next success starts harder.
	if math.Abs(res.EasinessFactor-1.7) > 1e-9 {
		t.Errorf("EF = %v, want ~1.7", res.EasinessFactor)
	}
}

func TestComputeNext_EasinessFloor(t *testing.T) {
	state := State{EasinessFactor: 1.3, Repetitions: 0, IntervalDays: 1}
	for i := 0; i < 10; i++ {
		res, err := ComputeNext(state, 0, reviewTime)
		if err != nil {
			t.Fatal(err)
		}
		if res.EasinessFactor < MinEasiness {
			t.Fatalf("EF = %v fell below floor %v", res.EasinessFactor, MinEasiness)
		}
		state = res.State
	}
}

func TestComputeNext_EasinessMonotonicInQuality(t *testing.T) {
	prior := State{EasinessFactor: 2.0, Repetitions: 2, IntervalDays: 6}
	var last float64 = -1
	for q := 0.0; q <= 5.0; q += 0.5 {
		res, err := ComputeNext(prior, q, reviewTime)
		if err != nil {
			t.Fatal(err)
		}
		if res.EasinessFactor < last {
			t.Fatalf("EF not monotone: q=%v gave %v after %v", q, res.EasinessFactor, last)
		}
		last = res.EasinessFactor
	}
}

func TestComputeNext_Deterministic(t *testing.T) {
	state := State{EasinessFactor: 2.2, Repetitions: 4, IntervalDays: 30}
	a, err := ComputeNext(state, 3.5, reviewTime)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ComputeNext(state, 3.5, reviewTime)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("identical inputs gave different outputs: %+v vs %+v", a, b)
	}
}

func TestComputeNext_MasteryPromotion(t *testing.T) {
	// High easiness and a long interval promote; the thresholds are
	// strict inequalities.
	res, err := ComputeNext(State{EasinessFactor: 4.2, Repetitions: 5, IntervalDays: 60}, 5, reviewTime)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Mastered {
		t.Errorf("expected mastery: EF=%v interval=%d", res.EasinessFactor, res.IntervalDays)
	}

	low, err := ComputeNext(State{EasinessFactor: 2.5, Repetitions: 1, IntervalDays: 1}, 4, reviewTime)
	if err != nil {
		t.Fatal(err)
	}
	if low.Mastered {
		t.Error("short-interval review should not promote to mastered")
	}
}

func TestDueDate_CalendarDays(t *testing.T) {
	// A review at 23:59 on day D is due at the start of day D+interval.
	lateNight := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	got := DueDate(lateNight, 3)
	want := time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DueDate = %v, want %v", got, want)
	}

	earlyMorning := time.Date(2025, 3, 10, 0, 1, 0, 0, time.UTC)
	if !DueDate(earlyMorning, 3).Equal(want) {
		t.Error("due date should not depend on the hour of review")
	}
}
