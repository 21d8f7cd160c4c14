package resolve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractProofOrdersParentsBeforeChildren(t *testing.T) {
	c1 := &Clause{id: 1}
	c2 := &Clause{id: 2, inference: Inference{Name: "resolution", Parents: []int{1}}}
	c3 := &Clause{id: 3, inference: Inference{Name: "resolution", Parents: []int{1, 2}}}

	archive := map[int]*Clause{1: c1, 2: c2, 3: c3}
	order := ExtractProof(c3, archive)

	ids := make([]int, len(order))
	for i, c := range order {
		ids[i] = c.id
	}
	if diff := cmp.Diff([]int{1, 2, 3}, ids); diff != "" {
		t.Fatalf("derivation order mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractProofSkipsMissingArchiveEntries(t *testing.T) {
	c2 := &Clause{id: 2, inference: Inference{Name: "resolution", Parents: []int{1}}}
	order := ExtractProof(c2, map[int]*Clause{2: c2})
	if len(order) != 1 || order[0].id != 2 {
		t.Fatalf("a parent missing from the archive should be skipped, not error, got %v", order)
	}
}

func TestExtractProofVisitsEachClauseOnce(t *testing.T) {
	c1 := &Clause{id: 1}
	c2 := &Clause{id: 2, inference: Inference{Name: "resolution", Parents: []int{1}}}
	c3 := &Clause{id: 3, inference: Inference{Name: "resolution", Parents: []int{1, 2}}}
	archive := map[int]*Clause{1: c1, 2: c2, 3: c3}

	order := ExtractProof(c3, archive)
	seen := map[int]bool{}
	for _, c := range order {
		if seen[c.id] {
			t.Fatalf("clause %d visited twice", c.id)
		}
		seen[c.id] = true
	}
}

func TestInferenceStringFormatsRuleAndParents(t *testing.T) {
	inf := Inference{Name: "resolution", Parents: []int{3, 7}}
	if got := inf.String(); got != "resolution(3,7)" {
		t.Fatalf("expected %q, got %q", "resolution(3,7)", got)
	}
	if got := (Inference{}).String(); got != "" {
		t.Fatalf("an input clause's empty Inference should stringify to empty, got %q", got)
	}
}
