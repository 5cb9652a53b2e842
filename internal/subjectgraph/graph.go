package subjectgraph

import (
	"container/heap"
	"sort"

	"github.com/abhisek/learnloop/internal/content"
)

// Graph holds the subject dependency graph with precomputed indices.
// Edges point from prerequisite to dependent.
type Graph struct {
	subjects   []content.Subject
	byID       map[string]*content.Subject
	dependents map[string][]string
}

// Build constructs a graph from the given subjects. Subjects are kept in
// creation order (position ascending) so every derived ordering is
// deterministic regardless of input order.
func Build(subjects []content.Subject) *Graph {
	sorted := make([]content.Subject, len(subjects))
	copy(sorted, subjects)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	g := &Graph{
		subjects:   sorted,
		byID:       make(map[string]*content.Subject, len(sorted)),
		dependents: make(map[string][]string),
	}
	for i := range g.subjects {
		g.byID[g.subjects[i].ID] = &g.subjects[i]
	}
	for i := range g.subjects {
		for _, prereqID := range g.subjects[i].Prerequisites {
			g.dependents[prereqID] = append(g.dependents[prereqID], g.subjects[i].ID)
		}
	}
	return g
}

// Subjects returns all subjects in creation order.
func (g *Graph) Subjects() []content.Subject {
	out := make([]content.Subject, len(g.subjects))
	copy(out, g.subjects)
	return out
}

// Subject returns a subject by ID.
func (g *Graph) Subject(id string) (content.Subject, bool) {
	s, ok := g.byID[id]
	if !ok {
		return content.Subject{}, false
	}
	return *s, true
}

// SortResult is the outcome of a topological sort: either a complete
// ordering, or the set of subjects that could not be ordered because
// they sit on or behind a cycle.
type SortResult struct {
	Order     []content.Subject
	Unordered []string
}

// Ordered reports whether the sort produced a complete ordering.
func (r *SortResult) Ordered() bool {
	return len(r.Unordered) == 0
}

// Sort runs Kahn's algorithm over the graph. When multiple subjects have
// in-degree zero simultaneously, ties break by subject creation order so
// recommendations never flip between runs. A cycle is reported through
// the result, never as a panic or a hang.
func (g *Graph) Sort() *SortResult {
	inDegree := make(map[string]int, len(g.subjects))
	for i := range g.subjects {
		// Prerequisites pointing outside the graph are a validation
		// error, not an ordering input.
		n := 0
		for _, p := range g.subjects[i].Prerequisites {
			if _, ok := g.byID[p]; ok {
				n++
			}
		}
		inDegree[g.subjects[i].ID] = n
	}

	ready := &subjectHeap{}
	heap.Init(ready)
	for i := range g.subjects {
		if inDegree[g.subjects[i].ID] == 0 {
			heap.Push(ready, &g.subjects[i])
		}
	}

	order := make([]content.Subject, 0, len(g.subjects))
	for ready.Len() > 0 {
		s := heap.Pop(ready).(*content.Subject)
		order = append(order, *s)
		for _, depID := range g.dependents[s.ID] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				heap.Push(ready, g.byID[depID])
			}
		}
	}

	if len(order) == len(g.subjects) {
		return &SortResult{Order: order}
	}

	// Everything still holding in-degree sits on or behind a cycle.
	var unordered []string
	for i := range g.subjects {
		if inDegree[g.subjects[i].ID] > 0 {
			unordered = append(unordered, g.subjects[i].ID)
		}
	}
	return &SortResult{Order: order, Unordered: unordered}
}

// subjectHeap is a min-heap of subjects keyed by creation position.
type subjectHeap []*content.Subject

func (h subjectHeap) Len() int            { return len(h) }
func (h subjectHeap) Less(i, j int) bool  { return h[i].Position < h[j].Position }
func (h subjectHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *subjectHeap) Push(x any)         { *h = append(*h, x.(*content.Subject)) }
func (h *subjectHeap) Pop() any {
	old := *h
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return s
}
