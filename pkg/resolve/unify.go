package resolve

// Unify computes a most general unifier (MGU) of s and t, if one exists.
// It implements Robinson's algorithm (§4.2):
//
//  1. Walk both sides through the substitution built so far.
//  2. If either side is a variable x not syntactically equal to the other
//     side u, fail if x occurs in u (the occurs check); otherwise extend
//     the substitution with x -> u.
//  3. If both sides are compounds, they must share functor and arity, and
//     unification recurses pairwise over the arguments, threading the
//     substitution through each argument in turn.
//  4. Otherwise, fail.
//
// The zero value of Substitution (via NewSubstitution) is the starting
// point when unifying two fresh terms; Unify also accepts a non-empty
// starting substitution so callers can unify several term pairs in
// sequence (used by UnifyLiterals to unify two argument lists pairwise).
//
// The returned substitution is idempotent and most general: for the
// returned sigma, Apply(sigma, s) and Apply(sigma, t) are syntactically
// equal (see unify_test.go for the property check).
func Unify(s, t Term, in *Substitution) (*Substitution, bool) {
	if in == nil {
		in = NewSubstitution()
	}
	ws := in.Walk(s)
	wt := in.Walk(t)

	if ws.Equal(wt) {
		return in, true
	}

	if v, ok := ws.(*Var); ok {
		return bindVar(v, wt, in)
	}
	if v, ok := wt.(*Var); ok {
		return bindVar(v, ws, in)
	}

	cs, csOk := ws.(*Compound)
	ct, ctOk := wt.(*Compound)
	if !csOk || !ctOk || cs.functor != ct.functor || len(cs.args) != len(ct.args) {
		return nil, false
	}

	cur := in
	for i := range cs.args {
		var ok bool
		cur, ok = Unify(cs.args[i], ct.args[i], cur)
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// bindVar extends sub with x -> t, after checking the occurs-check
// invariant that x does not appear (after walking) inside t. Binding a
// variable to itself is a no-op success, matching the "identical variables
// on both sides are skipped" rule in §4.2 step 3. The new binding is x ->
// Apply(sub, t), composed onto sub so that x is also replaced inside the
// existing bindings; the result stays idempotent.
func bindVar(x *Var, t Term, sub *Substitution) (*Substitution, bool) {
	if v, ok := t.(*Var); ok && v.id == x.id {
		return sub, true
	}
	if occurs(x, t, sub) {
		return nil, false
	}
	return Compose(sub, NewSubstitution().extend(x, Apply(sub, t))), true
}

// occurs reports whether x occurs (after walking through sub) anywhere in
// t. This is the occurs check required by §4.2; without it, unify(X,
// f(X)) would "succeed" with a cyclic, non-idempotent substitution.
func occurs(x *Var, t Term, sub *Substitution) bool {
	wt := sub.Walk(t)
	switch c := wt.(type) {
	case *Var:
		return c.id == x.id
	case *Compound:
		for _, a := range c.args {
			if occurs(x, a, sub) {
				return true
			}
		}
	}
	return false
}

// UnifyLiterals succeeds iff l1 and l2 have the same predicate and their
// argument lists unify. Polarity is not compared: resolution wants
// opposite polarity, factoring wants equal polarity, and the caller checks
// it itself. Equality literals are tried both in argument order and swapped,
// since s=t and t=s are the same literal (§3); the first unifier found is
// returned.
func UnifyLiterals(l1, l2 *Literal, in *Substitution) (*Substitution, bool) {
	if l1.pred != l2.pred || len(l1.args) != len(l2.args) {
		return nil, false
	}
	if sub, ok := unifyArgs(l1.args, l2.args, in); ok {
		return sub, true
	}
	if l1.pred == EqPredicate {
		swapped := []Term{l2.args[1], l2.args[0]}
		return unifyArgs(l1.args, swapped, in)
	}
	return nil, false
}

func unifyArgs(a, b []Term, in *Substitution) (*Substitution, bool) {
	cur := in
	for i := range a {
		var ok bool
		cur, ok = Unify(a[i], b[i], cur)
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
