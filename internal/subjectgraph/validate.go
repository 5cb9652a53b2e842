package subjectgraph

import (
	"fmt"
	"strings"

	"github.com/abhisek/learnloop/internal/content"
)

// HasCycle runs a depth-first search with a recursion-stack set. It is
// intentionally independent of Kahn's sort so the two detection
// strategies cross-check each other; both must agree on DAG-ness.
func (g *Graph) HasCycle() bool {
	const (
		unvisited = iota
		inStack
		done
	)
	state := make(map[string]int, len(g.subjects))

	var visit func(id string) bool
	visit = func(id string) bool {
		switch state[id] {
		case inStack:
			return true
		case done:
			return false
		}
		state[id] = inStack
		for _, depID := range g.dependents[id] {
			if visit(depID) {
				return true
			}
		}
		state[id] = done
		return false
	}

	for i := range g.subjects {
		if state[g.subjects[i].ID] == unvisited {
			if visit(g.subjects[i].ID) {
				return true
			}
		}
	}
	return false
}

// Validate performs all structural checks on the given subject set:
// duplicate IDs, dangling prerequisite references, and cycles.
// Returns a combined error describing every problem found, or nil.
// A non-nil result is a content-authoring error, not an engine fault.
func Validate(subjects []content.Subject) error {
	var errs []string

	idSet := make(map[string]bool, len(subjects))
	for _, s := range subjects {
		if idSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate subject ID: %q", s.ID))
		}
		idSet[s.ID] = true
	}

	for _, s := range subjects {
		for _, prereqID := range s.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("subject %q references nonexistent prerequisite %q", s.ID, prereqID))
			}
			if prereqID == s.ID {
				errs = append(errs, fmt.Sprintf("subject %q lists itself as a prerequisite", s.ID))
			}
		}
	}

	if res := Build(subjects).Sort(); !res.Ordered() {
		errs = append(errs, fmt.Sprintf("cycle detected involving subjects: %s", strings.Join(res.Unordered, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("subject graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
