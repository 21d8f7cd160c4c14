package tptp

import "github.com/gitrdm/resolve/pkg/resolve"

// termEnv maps a parsed variable name to the resolve.Var that represents
// it within one clause — clause-scoped, since TPTP variable names are
// only meaningful within the formula/clause they occur in.
type termEnv map[string]*resolve.Var

func convertTerm(t *Term, env termEnv, gen *resolve.VarGen) resolve.Term {
	if t.IsVar {
		if v, ok := env[t.Functor]; ok {
			return v
		}
		v := gen.Fresh(t.Functor)
		env[t.Functor] = v
		return v
	}
	args := make([]resolve.Term, len(t.Args))
	for i, a := range t.Args {
		args[i] = convertTerm(a, env, gen)
	}
	return resolve.NewCompound(t.Functor, args...)
}

func convertLiteral(l *Literal, env termEnv, gen *resolve.VarGen) *resolve.Literal {
	if l.Atom.isEquational() {
		lhs := convertTerm(l.Atom.Args[0], env, gen)
		rhs := convertTerm(l.Atom.Args[1], env, gen)
		return resolve.NewEquality(!l.Negative, lhs, rhs)
	}
	args := make([]resolve.Term, len(l.Atom.Args))
	for i, a := range l.Atom.Args {
		args[i] = convertTerm(a, env, gen)
	}
	return resolve.NewLiteral(!l.Negative, l.Atom.Pred, args...)
}

func roleToClauseType(r Role) resolve.ClauseType {
	switch r {
	case RoleHypothesis:
		return resolve.TypeHypothesis
	case RoleNegatedConjecture:
		return resolve.TypeNegatedConjecture
	default:
		return resolve.TypeAxiom
	}
}

// ConvertCNFClause turns one parsed cnf(...) clause into a resolve.Clause
// tagged with the type its role implies, using gen for any fresh
// variables the literal conversion needs.
func ConvertCNFClause(c *CNFClause, gen *resolve.VarGen) *resolve.Clause {
	env := termEnv{}
	lits := make([]*resolve.Literal, len(c.Literals))
	for i, l := range c.Literals {
		lits[i] = convertLiteral(l, env, gen)
	}
	cl := resolve.NewClause(lits...)
	return resolve.WithType(cl, roleToClauseType(c.Role))
}

// ConvertFOFFormula negates a conjecture (per NegateIfConjecture),
// clausifies it via ToCNF, and returns one resolve.Clause per resulting
// disjunction, all tagged with the (possibly negated) role's clause type.
func ConvertFOFFormula(f *FOFFormula, gen *resolve.VarGen) []*resolve.Clause {
	formula, role := NegateIfConjecture(f.Formula, f.Role)
	disjunctions := ToCNF(formula)
	typ := roleToClauseType(role)

	out := make([]*resolve.Clause, 0, len(disjunctions))
	for _, lits := range disjunctions {
		env := termEnv{}
		converted := make([]*resolve.Literal, len(lits))
		for i, l := range lits {
			converted[i] = convertLiteral(l, env, gen)
		}
		out = append(out, resolve.WithType(resolve.NewClause(converted...), typ))
	}
	return out
}

// ConvertProblem converts every cnf and fof input in prob into a flat
// clause list ready for Engine.Saturate, and reports whether the problem
// is an FOF problem (for SZSStatus's cnf/fof distinction, §6).
func ConvertProblem(prob *Problem, gen *resolve.VarGen) ([]*resolve.Clause, resolve.ProblemKind) {
	var out []*resolve.Clause
	for _, c := range prob.CNFClauses {
		out = append(out, ConvertCNFClause(c, gen))
	}
	for _, f := range prob.FOFFormulas {
		out = append(out, ConvertFOFFormula(f, gen)...)
	}
	kind := resolve.CNFProblem
	if prob.IsFOF() {
		kind = resolve.FOFProblem
	}
	return out, kind
}
