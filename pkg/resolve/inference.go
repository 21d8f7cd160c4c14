package resolve

// Resolvents returns every binary resolvent of c and d (§4.3). Both
// clauses are freshly renamed first so they never share a variable; for
// every pair of literals (i from c, j from d) of opposite polarity and
// equal predicate, subject to the selection restriction (only selected
// literals may participate if the clause has any selected literal at
// all), an MGU of their atoms yields one resolvent: the remaining
// literals of both clauses, with the MGU applied.
//
// Resolvents are returned unnumbered and untyped; the engine assigns
// identity via Engine.numberClause after the redundancy pipeline accepts them.
func Resolvents(c, d *Clause, gen *VarGen) []*Clause {
	rc, _ := FreshRename(c, gen)
	rd, _ := FreshRename(d, gen)

	var out []*Clause
	for i, li := range rc.lits {
		if !rc.Selected(i) {
			continue
		}
		for j, lj := range rd.lits {
			if !rd.Selected(j) {
				continue
			}
			if li.positive == lj.positive || li.pred != lj.pred {
				continue
			}
			sigma, ok := UnifyLiterals(li, lj, NewSubstitution())
			if !ok {
				continue
			}
			out = append(out, buildResolvent(rc, i, rd, j, sigma, c, d))
		}
	}
	return out
}

func buildResolvent(rc *Clause, i int, rd *Clause, j int, sigma *Substitution, origC, origD *Clause) *Clause {
	var lits []*Literal
	for k, l := range rc.lits {
		if k == i {
			continue
		}
		lits = append(lits, l.apply(sigma))
	}
	for k, l := range rd.lits {
		if k == j {
			continue
		}
		lits = append(lits, l.apply(sigma))
	}
	resolvent := NewClause(lits...)
	resolvent.sos = origC.sos || origD.sos
	resolvent.inference = Inference{Name: "resolution", Parents: []int{origC.id, origD.id}}
	return resolvent
}

// Factors returns every factor of c (§4.3): for every pair of distinct
// literals i, j of the same polarity and predicate, subject to the same
// selection restriction as resolution, an MGU of their atoms yields one
// factor: c with literal j dropped and the MGU applied. Factoring is
// applied only once, to the given clause itself (never to a processed
// clause), per the saturation loop in §4.6.
func Factors(c *Clause, gen *VarGen) []*Clause {
	rc, _ := FreshRename(c, gen)

	var out []*Clause
	for i, li := range rc.lits {
		if !rc.Selected(i) {
			continue
		}
		for j := i + 1; j < len(rc.lits); j++ {
			lj := rc.lits[j]
			if !rc.Selected(j) {
				continue
			}
			if li.positive != lj.positive || li.pred != lj.pred {
				continue
			}
			sigma, ok := UnifyLiterals(li, lj, NewSubstitution())
			if !ok {
				continue
			}
			var lits []*Literal
			for k, l := range rc.lits {
				if k == j {
					continue
				}
				lits = append(lits, l.apply(sigma))
			}
			factor := NewClause(lits...)
			factor.sos = c.sos
			factor.inference = Inference{Name: "factor", Parents: []int{c.id}}
			out = append(out, factor)
		}
	}
	return out
}

// EqualityAxioms synthesizes the standard congruence axioms for equality
// (§4.3), given the signature observed in a problem: the arity of every
// function symbol and of every predicate symbol other than "=". They are
// added exactly once, before saturation starts, iff "=" occurs anywhere in
// the input clause set.
//
//   - Reflexivity:  x = x
//   - Symmetry:     ~(x=y) | y=x
//   - Transitivity: ~(x=y) | ~(y=z) | x=z
//   - Congruence for each function symbol f/n:
//     ~(x1=y1) | ... | ~(xn=yn) | f(x...) = f(y...)
//   - Congruence for each predicate symbol p/n (p != "="):
//     ~(x1=y1) | ... | ~(xn=yn) | ~p(x...) | p(y...)
func EqualityAxioms(sig *Signature, gen *VarGen) []*Clause {
	var out []*Clause

	rx := gen.Fresh("X")
	out = append(out, NewClause(NewEquality(true, rx, rx)))

	sx, sy := gen.Fresh("X"), gen.Fresh("Y")
	out = append(out, NewClause(NewEquality(false, sx, sy), NewEquality(true, sy, sx)))

	tx, ty, tz := gen.Fresh("X"), gen.Fresh("Y"), gen.Fresh("Z")
	out = append(out, NewClause(
		NewEquality(false, tx, ty),
		NewEquality(false, ty, tz),
		NewEquality(true, tx, tz),
	))

	for _, fn := range sig.SortedFunctions() {
		out = append(out, functionCongruence(fn.Name, fn.Arity, gen))
	}
	for _, pr := range sig.SortedPredicates() {
		if pr.Name == EqPredicate {
			continue
		}
		out = append(out, predicateCongruence(pr.Name, pr.Arity, gen))
	}

	for _, c := range out {
		c.typ = TypeEqualityAxiom
	}
	return out
}

func functionCongruence(functor string, arity int, gen *VarGen) *Clause {
	xs := make([]Term, arity)
	ys := make([]Term, arity)
	var lits []*Literal
	for i := 0; i < arity; i++ {
		xv := gen.Fresh("X")
		yv := gen.Fresh("Y")
		xs[i], ys[i] = xv, yv
		lits = append(lits, NewEquality(false, xv, yv))
	}
	lits = append(lits, NewEquality(true, NewCompound(functor, xs...), NewCompound(functor, ys...)))
	return NewClause(lits...)
}

func predicateCongruence(pred string, arity int, gen *VarGen) *Clause {
	xs := make([]Term, arity)
	ys := make([]Term, arity)
	var lits []*Literal
	for i := 0; i < arity; i++ {
		xv := gen.Fresh("X")
		yv := gen.Fresh("Y")
		xs[i], ys[i] = xv, yv
		lits = append(lits, NewEquality(false, xv, yv))
	}
	lits = append(lits, NewLiteral(false, pred, xs...))
	lits = append(lits, NewLiteral(true, pred, ys...))
	return NewClause(lits...)
}
