package resolve

import "testing"

func TestSelectSmallestNegativePicksLightestNegativeLiteral(t *testing.T) {
	a := NewConst("a")
	var gen VarGen
	x := gen.Fresh("X")
	c := NewClause(
		NewLiteral(true, "p", a),
		NewLiteral(false, "q", NewCompound("f", a, a)),
		NewLiteral(false, "r", x),
	)
	bitmap := SelectSmallestNegative{}.Select(c)
	if bitmap[0] || bitmap[1] || !bitmap[2] {
		t.Fatalf("expected only r(X) (lightest negative literal) selected, got %v", bitmap)
	}
}

func TestSelectLargestNegativePicksHeaviestNegativeLiteral(t *testing.T) {
	a := NewConst("a")
	var gen VarGen
	x := gen.Fresh("X")
	c := NewClause(
		NewLiteral(true, "p", a),
		NewLiteral(false, "q", NewCompound("f", a, a)),
		NewLiteral(false, "r", x),
	)
	bitmap := SelectLargestNegative{}.Select(c)
	if bitmap[0] || !bitmap[1] || bitmap[2] {
		t.Fatalf("expected only q(f(a,a)) (heaviest negative literal) selected, got %v", bitmap)
	}
}

func TestSelectExtremeNegativeWithNoNegativeLiteralsSelectsNothing(t *testing.T) {
	a := NewConst("a")
	c := NewClause(NewLiteral(true, "p", a))
	bitmap := SelectSmallestNegative{}.Select(c)
	for i, b := range bitmap {
		if b {
			t.Fatalf("expected no literal selected when the clause has no negative literals, index %d was set", i)
		}
	}
}

func TestNoSelectionSelectsNothing(t *testing.T) {
	a := NewConst("a")
	c := NewClause(NewLiteral(false, "p", a), NewLiteral(false, "q", a))
	bitmap := NoSelection{}.Select(c)
	for i, b := range bitmap {
		if b {
			t.Fatalf("NoSelection should never select any literal, index %d was set", i)
		}
	}
}
