package resolve

import "testing"

func TestApplyChasesBoundVariableChain(t *testing.T) {
	var gen VarGen
	x, y := gen.Fresh("X"), gen.Fresh("Y")

	sub := NewSubstitution()
	sub = sub.extend(x, y)
	sub = sub.extend(y, NewConst("a"))

	result := Apply(sub, x)
	if result.String() != "a" {
		t.Fatalf("expected X to chase through Y to a, got %s", result.String())
	}
}

func TestComposeMatchesSequentialApply(t *testing.T) {
	var gen VarGen
	x, y := gen.Fresh("X"), gen.Fresh("Y")

	sigma := NewSubstitution().extend(x, y)
	tau := NewSubstitution().extend(y, NewConst("a"))

	rho := Compose(sigma, tau)

	direct := Apply(tau, Apply(sigma, x))
	composed := Apply(rho, x)
	if !direct.Equal(composed) {
		t.Fatalf("Compose result disagrees with sequential application: direct=%s composed=%s",
			direct.String(), composed.String())
	}
}

func TestFreshRenameProducesDistinctVariables(t *testing.T) {
	var gen VarGen
	x := gen.Fresh("X")
	c := NewClause(NewLiteral(true, "p", x), NewLiteral(false, "q", x))

	renamed, ren := FreshRename(c, &gen)

	if ren.Len() != 1 {
		t.Fatalf("expected exactly one variable renamed, got %d bindings", ren.Len())
	}

	origVars := clauseVars(c)
	newVars := clauseVars(renamed)
	if len(origVars) != 1 || len(newVars) != 1 {
		t.Fatalf("expected one distinct variable on each side")
	}
	if origVars[0].ID() == newVars[0].ID() {
		t.Fatal("FreshRename must mint a variable with a different ID")
	}
}

func TestWalkDoesNotDescendIntoCompounds(t *testing.T) {
	var gen VarGen
	x, y := gen.Fresh("X"), gen.Fresh("Y")
	sub := NewSubstitution().extend(x, NewCompound("f", y))

	walked := sub.Walk(x)
	c, ok := walked.(*Compound)
	if !ok || c.Functor() != "f" {
		t.Fatalf("Walk should return the bound compound unchanged, got %v", walked)
	}
	if !c.Args()[0].Equal(y) {
		t.Fatal("Walk must not recurse into the compound's arguments")
	}
}
