package subjectgraph

import (
	"testing"
	"time"

	"github.com/abhisek/learnloop/internal/content"
)

func TestCache_ReusesWithinTTL(t *testing.T) {
	c := NewCache(time.Minute)
	builds := 0
	build := func() *SortResult {
		builds++
		return Build([]content.Subject{subj("a", 0)}).Sort()
	}

	c.Get("v1", build)
	c.Get("v1", build)
	if builds != 1 {
		t.Errorf("builds = %d, want 1", builds)
	}
}

func TestCache_RebuildsOnVersionChange(t *testing.T) {
	c := NewCache(time.Minute)
	builds := 0
	build := func() *SortResult {
		builds++
		return Build(nil).Sort()
	}

	c.Get("v1", build)
	c.Get("v2", build)
	if builds != 2 {
		t.Errorf("builds = %d, want 2", builds)
	}
}

func TestCache_RebuildsAfterExpiry(t *testing.T) {
	c := NewCache(time.Minute)
	current := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	builds := 0
	build := func() *SortResult {
		builds++
		return Build(nil).Sort()
	}

	c.Get("v1", build)
	current = current.Add(2 * time.Minute)
	c.Get("v1", build)
	if builds != 2 {
		t.Errorf("builds = %d, want 2", builds)
	}
}

func TestCache_Invalidate(t *testing.T) {
	c := NewCache(time.Minute)
	builds := 0
	build := func() *SortResult {
		builds++
		return Build(nil).Sort()
	}

	c.Get("v1", build)
	c.Invalidate()
	c.Get("v1", build)
	if builds != 2 {
		t.Errorf("builds = %d, want 2", builds)
	}
}
