package tptp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCNFSimpleClause(t *testing.T) {
	p := NewParser(`cnf(c1, axiom, p(a) | ~q(X)).`)
	prob, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, prob.CNFClauses, 1)

	c := prob.CNFClauses[0]
	require.Equal(t, "c1", c.Name)
	require.Equal(t, RoleAxiom, c.Role)
	require.Len(t, c.Literals, 2)
	require.False(t, c.Literals[0].Negative)
	require.Equal(t, "p", c.Literals[0].Atom.Pred)
	require.True(t, c.Literals[1].Negative)
	require.Equal(t, "q", c.Literals[1].Atom.Pred)
}

func TestParseCNFEquationalLiteral(t *testing.T) {
	p := NewParser(`cnf(eq1, axiom, f(a) = b).`)
	prob, err := p.Parse()
	require.NoError(t, err)

	lit := prob.CNFClauses[0].Literals[0]
	require.False(t, lit.Negative)
	require.Equal(t, "=", lit.Atom.Pred)
}

func TestParseCNFNegatedEquationNormalizesPred(t *testing.T) {
	p := NewParser(`cnf(neq1, axiom, a != b).`)
	prob, err := p.Parse()
	require.NoError(t, err)

	lit := prob.CNFClauses[0].Literals[0]
	require.True(t, lit.Negative, "a != b should parse as a negative = literal")
	require.Equal(t, "=", lit.Atom.Pred)
}

func TestParseCNFParenthesizedDisjunction(t *testing.T) {
	p := NewParser(`cnf(c2, negated_conjecture, (p(a) | q(a))).`)
	prob, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, prob.CNFClauses[0].Literals, 2)
	require.Equal(t, RoleNegatedConjecture, prob.CNFClauses[0].Role)
}

func TestParseFOFWithConnectivesAndQuantifiers(t *testing.T) {
	p := NewParser(`fof(ax1, axiom, ![X]: (p(X) => ?[Y]: q(X,Y))).`)
	prob, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, prob.FOFFormulas, 1)
	require.Equal(t, ConnForall, prob.FOFFormulas[0].Formula.Kind)
}

func TestParseRejectsBareVariableAtom(t *testing.T) {
	p := NewParser(`cnf(bad, axiom, X).`)
	_, err := p.Parse()
	require.Error(t, err, "a bare variable used as an atom should be rejected")
}

func TestParseRejectsIncludeDirective(t *testing.T) {
	p := NewParser(`include('Axioms/SET001-0.ax').`)
	_, err := p.Parse()
	require.Error(t, err, "include(...) should be rejected")
}

func TestErrorLocationRecoversPosition(t *testing.T) {
	p := NewParser("cnf(bad axiom, p(a)).")
	_, err := p.Parse()
	require.Error(t, err)

	_, _, ok := ErrorLocation(err)
	require.True(t, ok, "ErrorLocation should recognize the parser's own error type")
}

func TestIsFOFDistinguishesProblemKind(t *testing.T) {
	cnfProb := &Problem{CNFClauses: []*CNFClause{{}}}
	require.False(t, cnfProb.IsFOF(), "a problem with only cnf clauses is not FOF")

	fofProb := &Problem{FOFFormulas: []*FOFFormula{{}}}
	require.True(t, fofProb.IsFOF(), "a problem with any fof formula is FOF")
}
