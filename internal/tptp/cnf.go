package tptp

import "strconv"

// skolemGen hands out fresh Skolem function names for one formula's
// clausification. It is a local counter, not a package global — the same
// "no shared mutable counters" discipline pkg/resolve's VarGen follows —
// so clausifying two formulas concurrently never collides.
type skolemGen struct{ n int }

func (g *skolemGen) next() string {
	g.n++
	return "esk" + strconv.Itoa(g.n)
}

// renameGen hands out fresh bound-variable names when a quantifier
// shadows an outer one of the same name, so Skolemization's "replace by
// a term over the enclosing universal variables" step never captures the
// wrong variable.
type renameGen struct{ n int }

func (g *renameGen) next(base string) string {
	g.n++
	return base + "_" + strconv.Itoa(g.n)
}

// ToCNF turns one fof(...) formula, already negated if its role requires
// that (see NegateIfConjecture), into a list of clauses: negation normal
// form, then Skolemization of existentials over the enclosing universal
// variables, then dropping the now-redundant universal quantifiers, then
// distributing | over & (§4.7's clausification pipeline, grounded on
// formulacnf.py's stage sequence — NNF, miniscope/skolemize, CNF
// distribution — simplified to skip the miniscoping optimization since
// §1's Non-goals exclude indexing/performance machinery, not soundness).
func ToCNF(f *Formula) [][]*Literal {
	f = eliminateEquivAndImplies(f)
	f = toNNF(f, false)
	f = renameApart(f, &renameGen{})
	f = skolemize(f, nil, &skolemGen{})
	f = dropUniversals(f)
	return distribute(f)
}

// eliminateEquivAndImplies rewrites <=> and => in terms of & | ~, so
// toNNF only ever has to handle those three connectives plus quantifiers.
func eliminateEquivAndImplies(f *Formula) *Formula {
	switch f.Kind {
	case ConnAtomic:
		return f
	case ConnNot:
		return &Formula{Kind: ConnNot, Sub: eliminateEquivAndImplies(f.Sub)}
	case ConnForall, ConnExists:
		return &Formula{Kind: f.Kind, BoundVars: f.BoundVars, Sub: eliminateEquivAndImplies(f.Sub)}
	case ConnAnd, ConnOr:
		return &Formula{Kind: f.Kind, Left: eliminateEquivAndImplies(f.Left), Right: eliminateEquivAndImplies(f.Right)}
	case ConnImplies:
		l := eliminateEquivAndImplies(f.Left)
		r := eliminateEquivAndImplies(f.Right)
		return &Formula{Kind: ConnOr, Left: &Formula{Kind: ConnNot, Sub: l}, Right: r}
	case ConnEquiv:
		l := eliminateEquivAndImplies(f.Left)
		r := eliminateEquivAndImplies(f.Right)
		fwd := &Formula{Kind: ConnOr, Left: &Formula{Kind: ConnNot, Sub: l}, Right: r}
		bwd := &Formula{Kind: ConnOr, Left: &Formula{Kind: ConnNot, Sub: r}, Right: l}
		return &Formula{Kind: ConnAnd, Left: fwd, Right: bwd}
	default:
		return f
	}
}

// toNNF pushes negation down to the atoms, flipping quantifiers and
// connectives per De Morgan as it goes. neg tracks whether an odd number
// of negations are currently pending.
func toNNF(f *Formula, neg bool) *Formula {
	switch f.Kind {
	case ConnAtomic:
		return &Formula{Kind: ConnAtomic, Atom: f.Atom, Neg: neg != f.Neg}
	case ConnNot:
		return toNNF(f.Sub, !neg)
	case ConnAnd:
		if neg {
			return &Formula{Kind: ConnOr, Left: toNNF(f.Left, true), Right: toNNF(f.Right, true)}
		}
		return &Formula{Kind: ConnAnd, Left: toNNF(f.Left, false), Right: toNNF(f.Right, false)}
	case ConnOr:
		if neg {
			return &Formula{Kind: ConnAnd, Left: toNNF(f.Left, true), Right: toNNF(f.Right, true)}
		}
		return &Formula{Kind: ConnOr, Left: toNNF(f.Left, false), Right: toNNF(f.Right, false)}
	case ConnForall:
		kind := ConnForall
		if neg {
			kind = ConnExists
		}
		return &Formula{Kind: kind, BoundVars: f.BoundVars, Sub: toNNF(f.Sub, neg)}
	case ConnExists:
		kind := ConnExists
		if neg {
			kind = ConnForall
		}
		return &Formula{Kind: kind, BoundVars: f.BoundVars, Sub: toNNF(f.Sub, neg)}
	default:
		return f
	}
}

// renameApart gives every quantifier a fresh set of bound-variable names,
// so no two quantifiers in the formula bind the same name — a
// precondition skolemize relies on when it walks down accumulating the
// "enclosing universal variables" list.
func renameApart(f *Formula, gen *renameGen) *Formula {
	return renameApartEnv(f, gen, map[string]string{})
}

func renameApartEnv(f *Formula, gen *renameGen, env map[string]string) *Formula {
	switch f.Kind {
	case ConnAtomic:
		return &Formula{Kind: ConnAtomic, Atom: substAtomVars(f.Atom, env), Neg: f.Neg}
	case ConnNot:
		return &Formula{Kind: ConnNot, Sub: renameApartEnv(f.Sub, gen, env)}
	case ConnAnd, ConnOr:
		return &Formula{Kind: f.Kind, Left: renameApartEnv(f.Left, gen, env), Right: renameApartEnv(f.Right, gen, env)}
	case ConnForall, ConnExists:
		inner := make(map[string]string, len(env)+len(f.BoundVars))
		for k, v := range env {
			inner[k] = v
		}
		fresh := make([]string, len(f.BoundVars))
		for i, v := range f.BoundVars {
			nv := gen.next(v)
			inner[v] = nv
			fresh[i] = nv
		}
		return &Formula{Kind: f.Kind, BoundVars: fresh, Sub: renameApartEnv(f.Sub, gen, inner)}
	default:
		return f
	}
}

func substAtomVars(a *Atom, env map[string]string) *Atom {
	args := make([]*Term, len(a.Args))
	for i, t := range a.Args {
		args[i] = substTermVars(t, env)
	}
	return &Atom{Pred: a.Pred, Args: args}
}

func substTermVars(t *Term, env map[string]string) *Term {
	if t.IsVar {
		if nv, ok := env[t.Functor]; ok {
			return mkVar(nv)
		}
		return t
	}
	args := make([]*Term, len(t.Args))
	for i, a := range t.Args {
		args[i] = substTermVars(a, env)
	}
	return mkCompound(t.Functor, args...)
}

// skolemize replaces every existentially bound variable with a Skolem
// term over the universal variables currently in scope (outer []string),
// and every universally bound variable's uses are left untouched — its
// quantifier is stripped later by dropUniversals.
func skolemize(f *Formula, univ []string, gen *skolemGen) *Formula {
	switch f.Kind {
	case ConnAtomic:
		return f
	case ConnNot:
		return &Formula{Kind: ConnNot, Sub: skolemize(f.Sub, univ, gen)}
	case ConnAnd, ConnOr:
		return &Formula{Kind: f.Kind, Left: skolemize(f.Left, univ, gen), Right: skolemize(f.Right, univ, gen)}
	case ConnForall:
		return &Formula{Kind: ConnForall, BoundVars: f.BoundVars, Sub: skolemize(f.Sub, append(append([]string{}, univ...), f.BoundVars...), gen)}
	case ConnExists:
		args := make([]*Term, len(univ))
		for i, v := range univ {
			args[i] = mkVar(v)
		}
		// Each existential variable gets its own Skolem function symbol
		// over the full enclosing universal argument list.
		repl := map[string]*Term{}
		for _, v := range f.BoundVars {
			repl[v] = mkCompound(gen.next(), args...)
		}
		return substTermsInFormula(skolemize(f.Sub, univ, gen), repl)
	default:
		return f
	}
}

func substTermsInFormula(f *Formula, repl map[string]*Term) *Formula {
	switch f.Kind {
	case ConnAtomic:
		return &Formula{Kind: ConnAtomic, Atom: substAtomTerms(f.Atom, repl), Neg: f.Neg}
	case ConnNot:
		return &Formula{Kind: ConnNot, Sub: substTermsInFormula(f.Sub, repl)}
	case ConnAnd, ConnOr:
		return &Formula{Kind: f.Kind, Left: substTermsInFormula(f.Left, repl), Right: substTermsInFormula(f.Right, repl)}
	case ConnForall, ConnExists:
		return &Formula{Kind: f.Kind, BoundVars: f.BoundVars, Sub: substTermsInFormula(f.Sub, repl)}
	default:
		return f
	}
}

func substAtomTerms(a *Atom, repl map[string]*Term) *Atom {
	args := make([]*Term, len(a.Args))
	for i, t := range a.Args {
		args[i] = substTermTerms(t, repl)
	}
	return &Atom{Pred: a.Pred, Args: args}
}

func substTermTerms(t *Term, repl map[string]*Term) *Term {
	if t.IsVar {
		if r, ok := repl[t.Functor]; ok {
			return r
		}
		return t
	}
	args := make([]*Term, len(t.Args))
	for i, a := range t.Args {
		args[i] = substTermTerms(a, repl)
	}
	return mkCompound(t.Functor, args...)
}

// dropUniversals strips every ConnForall node, including ones nested under
// &/| (renameApart has already made every bound name unique), leaving a quantifier-free &/|/atom tree whose remaining variables are
// all implicitly universally quantified — exactly the clause semantics
// pkg/resolve.Clause assumes.
func dropUniversals(f *Formula) *Formula {
	switch f.Kind {
	case ConnForall:
		return dropUniversals(f.Sub)
	case ConnNot, ConnExists:
		return &Formula{Kind: f.Kind, Sub: dropUniversals(f.Sub)}
	case ConnAnd, ConnOr:
		return &Formula{Kind: f.Kind, Left: dropUniversals(f.Left), Right: dropUniversals(f.Right)}
	default:
		return f
	}
}

// distribute turns a quantifier-free NNF formula into a conjunction of
// disjunctions (a list of literal lists) by repeatedly applying
// distributivity of | over &.
func distribute(f *Formula) [][]*Literal {
	switch f.Kind {
	case ConnAtomic:
		return [][]*Literal{{&Literal{Negative: f.Neg, Atom: f.Atom}}}
	case ConnAnd:
		return append(distribute(f.Left), distribute(f.Right)...)
	case ConnOr:
		left := distribute(f.Left)
		right := distribute(f.Right)
		out := make([][]*Literal, 0, len(left)*len(right))
		for _, lc := range left {
			for _, rc := range right {
				merged := make([]*Literal, 0, len(lc)+len(rc))
				merged = append(merged, lc...)
				merged = append(merged, rc...)
				out = append(out, merged)
			}
		}
		return out
	default:
		return nil
	}
}

// NegateIfConjecture returns f negated when role is RoleConjecture —
// refutational saturation proves a conjecture by deriving the empty
// clause from its negation (§4.7) — and f unchanged for every other role.
func NegateIfConjecture(f *Formula, role Role) (*Formula, Role) {
	if role == RoleConjecture {
		return &Formula{Kind: ConnNot, Sub: f}, RoleNegatedConjecture
	}
	return f, role
}
