package resolve

import "testing"

func TestVarGenFreshProducesIncreasingIDs(t *testing.T) {
	var g VarGen
	x := g.Fresh("X")
	y := g.Fresh("Y")
	if x.ID() == y.ID() {
		t.Fatal("two calls to Fresh must produce distinct IDs")
	}
	if y.ID() <= x.ID() {
		t.Fatalf("expected monotonically increasing IDs, got %d then %d", x.ID(), y.ID())
	}
}

func TestVarGenResetRestartsNumbering(t *testing.T) {
	var g VarGen
	g.Fresh("X")
	g.Fresh("Y")
	g.Reset()
	z := g.Fresh("Z")
	if z.ID() != 1 {
		t.Fatalf("expected the first Fresh after Reset to have ID 1, got %d", z.ID())
	}
}

func TestCompoundEqualRequiresSameFunctorArityAndArgs(t *testing.T) {
	a, b := NewConst("a"), NewConst("b")
	f1 := NewCompound("f", a)
	f2 := NewCompound("f", a)
	f3 := NewCompound("f", b)
	g1 := NewCompound("g", a)

	if !f1.Equal(f2) {
		t.Fatal("f(a) should equal f(a)")
	}
	if f1.Equal(f3) {
		t.Fatal("f(a) should not equal f(b)")
	}
	if f1.Equal(g1) {
		t.Fatal("f(a) should not equal g(a)")
	}
}

func TestVarsReturnsDistinctVariablesInFirstSeenOrder(t *testing.T) {
	var gen VarGen
	x := gen.Fresh("X")
	y := gen.Fresh("Y")
	term := NewCompound("f", x, y, x)

	vars := Vars(term)
	if len(vars) != 2 || vars[0].ID() != x.ID() || vars[1].ID() != y.ID() {
		t.Fatalf("expected [X, Y] in first-seen order, got %v", vars)
	}
}

func TestGroundReportsVariableFreeTerms(t *testing.T) {
	a := NewConst("a")
	if !Ground(NewCompound("f", a)) {
		t.Fatal("f(a) should be ground")
	}
	var gen VarGen
	x := gen.Fresh("X")
	if Ground(NewCompound("f", x)) {
		t.Fatal("f(X) should not be ground")
	}
}

func TestSymbolCountAndVarOccurrences(t *testing.T) {
	a := NewConst("a")
	var gen VarGen
	x := gen.Fresh("X")
	term := NewCompound("f", a, x, x)

	if got := symbolCount(term); got != 2 {
		t.Fatalf("expected symbolCount 2 (f and a), got %d", got)
	}
	if got := varOccurrences(term); got != 2 {
		t.Fatalf("expected varOccurrences 2 (X appears twice), got %d", got)
	}
}

func TestCompoundStringFormatsNullaryAsConstant(t *testing.T) {
	a := NewConst("a")
	if got := a.String(); got != "a" {
		t.Fatalf("expected a nullary compound to render as its functor alone, got %q", got)
	}
}
