package resolve

import "testing"

func TestIsTautologyComplementaryLiterals(t *testing.T) {
	a := NewConst("a")
	c := NewClause(NewLiteral(true, "p", a), NewLiteral(false, "p", a))
	if !c.IsTautology() {
		t.Fatal("p(a) | ~p(a) must be a tautology")
	}
}

func TestIsTautologyReflexiveEquality(t *testing.T) {
	a := NewConst("a")
	c := NewClause(NewEquality(true, a, a))
	if !c.IsTautology() {
		t.Fatal("a=a must be a tautology")
	}
}

func TestIsTautologyOrdinaryClauseIsNot(t *testing.T) {
	a, b := NewConst("a"), NewConst("b")
	c := NewClause(NewLiteral(true, "p", a), NewLiteral(true, "q", b))
	if c.IsTautology() {
		t.Fatal("p(a) | q(b) must not be a tautology")
	}
}

func TestCanonicalKeyIgnoresVariableNames(t *testing.T) {
	var gen1, gen2 VarGen
	x := gen1.Fresh("X")
	y := gen2.Fresh("Y")

	c1 := NewClause(NewLiteral(true, "p", x))
	c2 := NewClause(NewLiteral(true, "p", y))

	if c1.CanonicalKey() != c2.CanonicalKey() {
		t.Fatalf("clauses differing only in variable name should share a canonical key: %q vs %q",
			c1.CanonicalKey(), c2.CanonicalKey())
	}
}

func TestCanonicalKeyDistinguishesDifferentClauses(t *testing.T) {
	a, b := NewConst("a"), NewConst("b")
	c1 := NewClause(NewLiteral(true, "p", a))
	c2 := NewClause(NewLiteral(true, "p", b))
	if c1.CanonicalKey() == c2.CanonicalKey() {
		t.Fatal("p(a) and p(b) must not share a canonical key")
	}
}

func TestWithTypePreservesLiteralsAndLeavesUnnumbered(t *testing.T) {
	a := NewConst("a")
	c := NewClause(NewLiteral(true, "p", a))
	typed := WithType(c, TypeAxiom)

	if typed.ID() != 0 {
		t.Fatalf("WithType must not assign an ID, got %d", typed.ID())
	}
	if typed.Type() != TypeAxiom {
		t.Fatalf("expected TypeAxiom, got %s", typed.Type())
	}
	if typed.String() != c.String() {
		t.Fatalf("WithType must not change the clause's literals")
	}
}

func TestWithSOSPreservesLiteralsAndLeavesUnnumbered(t *testing.T) {
	a := NewConst("a")
	c := WithType(NewClause(NewLiteral(true, "p", a)), TypeNegatedConjecture)
	tagged := WithSOS(c, true)

	if tagged.ID() != 0 {
		t.Fatalf("WithSOS must not assign an ID, got %d", tagged.ID())
	}
	if !tagged.SOS() {
		t.Fatal("expected SOS() true after WithSOS(c, true)")
	}
	if tagged.Type() != TypeNegatedConjecture {
		t.Fatalf("WithSOS must not change the clause's type, got %s", tagged.Type())
	}
	if c.SOS() {
		t.Fatal("WithSOS must not mutate the receiver")
	}
}

func TestRunIDDefaultsEmptyUntilNumbered(t *testing.T) {
	c := NewClause()
	if c.RunID() != "" {
		t.Fatalf("an unnumbered clause should have no run id, got %q", c.RunID())
	}
}

func TestSetSelectionTwicePanics(t *testing.T) {
	c := NewClause(NewLiteral(false, "p", NewConst("a")))
	c.SetSelection([]bool{true})

	defer func() {
		if recover() == nil {
			t.Fatal("setting selection twice must panic")
		}
	}()
	c.SetSelection([]bool{true})
}

func TestEmptyClauseStringIsFalse(t *testing.T) {
	c := NewClause()
	if !c.IsEmpty() {
		t.Fatal("clause with no literals must report IsEmpty")
	}
	if c.String() != "$false" {
		t.Fatalf("empty clause must render as $false, got %q", c.String())
	}
}
