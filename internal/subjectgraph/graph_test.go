package subjectgraph

import (
	"testing"

	"github.com/abhisek/learnloop/internal/content"
)

func subj(id string, pos int, prereqs ...string) content.Subject {
	return content.Subject{ID: id, Title: id, Position: pos, Prerequisites: prereqs}
}

func orderIDs(res *SortResult) []string {
	ids := make([]string, len(res.Order))
	for i, s := range res.Order {
		ids[i] = s.ID
	}
	return ids
}

func TestSort_LinearChain(t *testing.T) {
	g := Build([]content.Subject{
		subj("c", 2, "b"),
		subj("a", 0),
		subj("b", 1, "a"),
	})
	res := g.Sort()
	if !res.Ordered() {
		t.Fatalf("expected ordered result, got unordered %v", res.Unordered)
	}
	want := []string{"a", "b", "c"}
	got := orderIDs(res)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSort_TieBreakByCreationOrder(t *testing.T) {
	// Three roots created in the order z, m, a. Creation order wins,
	// not lexical order.
	g := Build([]content.Subject{
		subj("a", 30),
		subj("z", 10),
		subj("m", 20),
	})
	res := g.Sort()
	want := []string{"z", "m", "a"}
	got := orderIDs(res)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSort_PrerequisitesAlwaysPrecede(t *testing.T) {
	subjects := []content.Subject{
		subj("algebra", 0),
		subj("geometry", 1),
		subj("trig", 2, "algebra", "geometry"),
		subj("calculus", 3, "trig"),
		subj("stats", 4, "algebra"),
	}
	res := Build(subjects).Sort()
	if !res.Ordered() {
		t.Fatalf("expected DAG to order, got unordered %v", res.Unordered)
	}
	index := make(map[string]int)
	for i, s := range res.Order {
		index[s.ID] = i
	}
	for _, s := range subjects {
		for _, p := range s.Prerequisites {
			if index[p] >= index[s.ID] {
				t.Errorf("prerequisite %q at %d does not precede %q at %d", p, index[p], s.ID, index[s.ID])
			}
		}
	}
}

func TestSort_CycleReported(t *testing.T) {
	g := Build([]content.Subject{
		subj("a", 0, "b"),
		subj("b", 1, "a"),
		subj("c", 2),
	})
	res := g.Sort()
	if res.Ordered() {
		t.Fatal("expected cycle to be reported")
	}
	if len(res.Order) != 1 || res.Order[0].ID != "c" {
		t.Errorf("partial order = %v, want [c]", orderIDs(res))
	}
	inCycle := make(map[string]bool)
	for _, id := range res.Unordered {
		inCycle[id] = true
	}
	if !inCycle["a"] || !inCycle["b"] {
		t.Errorf("unordered set %v should include both cycle members", res.Unordered)
	}
}

func TestSort_CycleBehindCleanPrefix(t *testing.T) {
	// d depends on the a<->b cycle and must appear in the unordered set
	// even though it is not itself part of the cycle.
	g := Build([]content.Subject{
		subj("a", 0, "b"),
		subj("b", 1, "a"),
		subj("c", 2),
		subj("d", 3, "a"),
	})
	res := g.Sort()
	if res.Ordered() {
		t.Fatal("expected cycle to be reported")
	}
	found := false
	for _, id := range res.Unordered {
		if id == "d" {
			found = true
		}
	}
	if !found {
		t.Errorf("unordered set %v should include downstream subject d", res.Unordered)
	}
}

func TestSort_EmptyGraph(t *testing.T) {
	res := Build(nil).Sort()
	if !res.Ordered() {
		t.Fatal("empty graph should order trivially")
	}
	if len(res.Order) != 0 {
		t.Errorf("expected empty order, got %v", orderIDs(res))
	}
}

func TestHasCycle_AgreesWithKahn(t *testing.T) {
	cases := []struct {
		name     string
		subjects []content.Subject
	}{
		{"empty", nil},
		{"single", []content.Subject{subj("a", 0)}},
		{"chain", []content.Subject{subj("a", 0), subj("b", 1, "a"), subj("c", 2, "b")}},
		{"diamond", []content.Subject{subj("a", 0), subj("b", 1, "a"), subj("c", 2, "a"), subj("d", 3, "b", "c")}},
		{"two-cycle", []content.Subject{subj("a", 0, "b"), subj("b", 1, "a")}},
		{"self-loop", []content.Subject{subj("a", 0, "a")}},
		{"cycle-plus-island", []content.Subject{subj("a", 0, "b"), subj("b", 1, "a"), subj("c", 2)}},
		{"long-cycle", []content.Subject{subj("a", 0, "d"), subj("b", 1, "a"), subj("c", 2, "b"), subj("d", 3, "c")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := Build(tc.subjects)
			kahnCycle := !g.Sort().Ordered()
			dfsCycle := g.HasCycle()
			if kahnCycle != dfsCycle {
				t.Errorf("detection disagreement: kahn=%v dfs=%v", kahnCycle, dfsCycle)
			}
		})
	}
}

func TestSubjectLookup(t *testing.T) {
	g := Build([]content.Subject{subj("a", 0)})
	if _, ok := g.Subject("a"); !ok {
		t.Error("expected to find subject a")
	}
	if _, ok := g.Subject("missing"); ok {
		t.Error("did not expect to find missing subject")
	}
}
