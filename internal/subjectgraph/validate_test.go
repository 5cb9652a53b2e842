package subjectgraph

import (
	"strings"
	"testing"

	"github.com/abhisek/learnloop/internal/content"
)

func TestValidate_CleanGraph(t *testing.T) {
	err := Validate([]content.Subject{
		subj("a", 0),
		subj("b", 1, "a"),
	})
	if err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidate_DuplicateID(t *testing.T) {
	err := Validate([]content.Subject{
		subj("a", 0),
		subj("a", 1),
	})
	if err == nil || !strings.Contains(err.Error(), "duplicate subject ID") {
		t.Fatalf("Validate() = %v, want duplicate ID error", err)
	}
}

func TestValidate_DanglingPrerequisite(t *testing.T) {
	err := Validate([]content.Subject{
		subj("a", 0, "ghost"),
	})
	if err == nil || !strings.Contains(err.Error(), "nonexistent prerequisite") {
		t.Fatalf("Validate() = %v, want dangling prerequisite error", err)
	}
}

func TestValidate_SelfPrerequisite(t *testing.T) {
	err := Validate([]content.Subject{
		subj("a", 0, "a"),
	})
	if err == nil || !strings.Contains(err.Error(), "lists itself") {
		t.Fatalf("Validate() = %v, want self-prerequisite error", err)
	}
}

func TestValidate_Cycle(t *testing.T) {
	err := Validate([]content.Subject{
		subj("a", 0, "b"),
		subj("b", 1, "a"),
	})
	if err == nil || !strings.Contains(err.Error(), "cycle detected") {
		t.Fatalf("Validate() = %v, want cycle error", err)
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	err := Validate([]content.Subject{
		subj("a", 0, "ghost"),
		subj("b", 1, "c"),
		subj("c", 2, "b"),
	})
	if err == nil {
		t.Fatal("expected combined validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "nonexistent prerequisite") || !strings.Contains(msg, "cycle detected") {
		t.Errorf("error should report every problem, got: %v", msg)
	}
}
