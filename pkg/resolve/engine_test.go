package resolve

import (
	"context"
	"testing"
)

func socratesProblem() []*Clause {
	var gen VarGen
	x := gen.Fresh("X")

	c1 := WithType(NewClause(NewLiteral(true, "man", NewConst("socrates"))), TypeAxiom)
	c2 := WithType(NewClause(
		NewLiteral(false, "man", x),
		NewLiteral(true, "mortal", x),
	), TypeAxiom)
	c3 := WithType(NewClause(NewLiteral(false, "mortal", NewConst("socrates"))), TypeNegatedConjecture)

	return []*Clause{c1, c2, c3}
}

func TestSaturateFindsRefutation(t *testing.T) {
	engine := NewEngine(DefaultConfig(), "test-run")
	result := engine.Saturate(context.Background(), socratesProblem())

	if result.Status != Refutation {
		t.Fatalf("expected Refutation, got %s", result.Status)
	}
	if result.Empty == nil || !result.Empty.IsEmpty() {
		t.Fatal("expected the result to carry the empty clause")
	}
	if SZSStatus(FOFProblem, result.Status) != "Theorem" {
		t.Fatalf("expected SZS status Theorem for a refuted FOF problem, got %s",
			SZSStatus(FOFProblem, result.Status))
	}
}

func TestSaturateEveryClauseCarriesRunID(t *testing.T) {
	engine := NewEngine(DefaultConfig(), "correlation-123")
	engine.Saturate(context.Background(), socratesProblem())

	for _, c := range engine.archive {
		if c.RunID() != "correlation-123" {
			t.Fatalf("clause %d has run id %q, want %q", c.ID(), c.RunID(), "correlation-123")
		}
	}
}

func TestProofExtractsAncestorChain(t *testing.T) {
	engine := NewEngine(DefaultConfig(), "")
	result := engine.Saturate(context.Background(), socratesProblem())

	proof := engine.Proof(result)
	if len(proof) == 0 {
		t.Fatal("expected a non-empty proof")
	}
	if !proof[len(proof)-1].IsEmpty() {
		t.Fatal("proof must end in the empty clause")
	}

	seen := map[int]bool{}
	for _, c := range proof {
		for _, p := range c.Inference().Parents {
			if !seen[p] {
				t.Fatalf("clause %d's parent %d appears after it in the proof", c.ID(), p)
			}
		}
		seen[c.ID()] = true
	}
}

func TestSaturateSatisfiableSetReportsSaturated(t *testing.T) {
	// A single unit clause with no negation to resolve against saturates
	// immediately with nothing left to derive.
	c := WithType(NewClause(NewLiteral(true, "p", NewConst("a"))), TypeAxiom)

	engine := NewEngine(DefaultConfig(), "")
	result := engine.Saturate(context.Background(), []*Clause{c})

	if result.Status != Saturated {
		t.Fatalf("expected Saturated, got %s", result.Status)
	}
	if SZSStatus(CNFProblem, result.Status) != "Satisfiable" {
		t.Fatalf("expected Satisfiable for a saturated CNF problem, got %s",
			SZSStatus(CNFProblem, result.Status))
	}
}

func TestSaturateRespectsMaxClausesBudget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxClauses = 1

	engine := NewEngine(cfg, "")
	result := engine.Saturate(context.Background(), socratesProblem())

	if result.Status != GaveUp {
		t.Fatalf("expected GaveUp under a tiny clause budget, got %s", result.Status)
	}
}

func TestSaturateWithSOSStillFindsRefutation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SOS = true

	engine := NewEngine(cfg, "")
	result := engine.Saturate(context.Background(), socratesProblem())

	if result.Status != Refutation {
		t.Fatalf("expected Refutation under set-of-support, got %s", result.Status)
	}
}

func TestSaturateEqualityAxiomsRefuteReflexivityViolation(t *testing.T) {
	// "a != a" is unsatisfiable only via the synthesized reflexivity axiom
	// x=x; nothing else in the clause set mentions equality at all.
	cfg := DefaultConfig()
	cfg.EqualityAxioms = true

	a := NewConst("a")
	nc := WithType(NewClause(NewEquality(false, a, a)), TypeNegatedConjecture)

	engine := NewEngine(cfg, "")
	result := engine.Saturate(context.Background(), []*Clause{nc})

	if result.Status != Refutation {
		t.Fatalf("expected Refutation via reflexivity, got %s", result.Status)
	}
}

func TestSaturateEqualityAxiomsRefuteViaSymmetry(t *testing.T) {
	// a=b is given and ~(b=a) is the negated conjecture. UnifyLiterals also
	// tries equality atoms in swapped order, so the two resolve directly to
	// the empty clause; the synthesized symmetry axiom is present as well.
	cfg := DefaultConfig()
	cfg.EqualityAxioms = true

	a, b := NewConst("a"), NewConst("b")
	axiom := WithType(NewClause(NewEquality(true, a, b)), TypeAxiom)
	nc := WithType(NewClause(NewEquality(false, b, a)), TypeNegatedConjecture)

	engine := NewEngine(cfg, "")
	result := engine.Saturate(context.Background(), []*Clause{axiom, nc})

	if result.Status != Refutation {
		t.Fatalf("expected Refutation via symmetry, got %s", result.Status)
	}
}

func TestSaturateIsDeterministicAcrossRuns(t *testing.T) {
	r1 := NewEngine(DefaultConfig(), "").Saturate(context.Background(), socratesProblem())
	r2 := NewEngine(DefaultConfig(), "").Saturate(context.Background(), socratesProblem())

	if r1.ClausesGenerated != r2.ClausesGenerated || r1.Iterations != r2.Iterations {
		t.Fatalf("two runs over the same input diverged: %+v vs %+v", r1, r2)
	}
}
