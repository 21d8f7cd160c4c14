package resolve

import "github.com/samber/lo"

// Substitution is a finite partial function from variables to terms. The
// zero value is the empty (identity) substitution. Substitutions are kept
// idempotent: no variable in the domain occurs in any term of the
// codomain. Unify (unify.go) builds substitutions binding by binding and
// preserves this invariant by construction (see bindVar and the occurs
// check); FreshRename and CanonicalKey build renamings whose new variables
// never occur in the clause being renamed.
type Substitution struct {
	bindings map[int64]Term
}

// NewSubstitution returns an empty substitution.
func NewSubstitution() *Substitution {
	return &Substitution{bindings: make(map[int64]Term)}
}

// Lookup returns the term bound to v, or nil if v is unbound.
func (s *Substitution) Lookup(v *Var) Term {
	if s == nil {
		return nil
	}
	return s.bindings[v.id]
}

// Len reports the number of bindings.
func (s *Substitution) Len() int {
	if s == nil {
		return 0
	}
	return len(s.bindings)
}

// Walk follows a chain of variable bindings to its end: if t is a bound
// variable it follows the binding (recursively, in case the binding is
// itself a variable bound elsewhere); otherwise it returns t unchanged.
// Unlike Apply it does not descend into compound arguments, which is what
// makes it cheap enough to call at every step of unify.go's recursion.
func (s *Substitution) Walk(t Term) Term {
	for {
		v, ok := t.(*Var)
		if !ok {
			return t
		}
		bound := s.Lookup(v)
		if bound == nil {
			return t
		}
		t = bound
	}
}

// extend returns a new Substitution equal to s plus the binding x -> t. The
// receiver is never mutated; callers that build up a substitution
// incrementally (unify.go) thread the returned value forward.
func (s *Substitution) extend(x *Var, t Term) *Substitution {
	out := &Substitution{bindings: make(map[int64]Term, len(s.bindings)+1)}
	for k, v := range s.bindings {
		out.bindings[k] = v
	}
	out.bindings[x.id] = t
	return out
}

// Apply is the total homomorphic extension of s to terms: for a variable x
// it returns Apply(s, s(x)) if s(x) is defined (chasing through chains of
// bound variables), else x itself; for a compound it applies s to every
// argument.
func Apply(s *Substitution, t Term) Term {
	switch x := t.(type) {
	case *Var:
		if bound := s.Lookup(x); bound != nil {
			return Apply(s, bound)
		}
		return x
	case *Compound:
		if len(x.args) == 0 {
			return x
		}
		newArgs := make([]Term, len(x.args))
		changed := false
		for i, a := range x.args {
			na := Apply(s, a)
			newArgs[i] = na
			if na != a {
				changed = true
			}
		}
		if !changed {
			return x
		}
		return &Compound{functor: x.functor, args: newArgs}
	default:
		return t
	}
}

// Compose returns rho such that for every x, Apply(rho, x) == Apply(tau,
// Apply(sigma, x)): applying sigma then tau in one step. Trivial bindings
// x -> x produced by the composition are dropped.
func Compose(sigma, tau *Substitution) *Substitution {
	out := NewSubstitution()
	for id, t := range sigma.bindings {
		nt := Apply(tau, t)
		if v, ok := nt.(*Var); ok && v.id == id {
			continue
		}
		out.bindings[id] = nt
	}
	for id, t := range tau.bindings {
		if _, already := sigma.bindings[id]; already {
			continue
		}
		if v, ok := t.(*Var); ok && v.id == id {
			continue
		}
		out.bindings[id] = t
	}
	return out
}

// FreshRename returns a copy of clause c with every distinct variable
// replaced by a fresh one minted from gen, together with the renaming
// substitution that performed the replacement. Used before every inference
// (§4.1) so that the two parent clauses never share a variable. IDs that
// already occur in c are skipped, since c may come from a different VarGen
// than gen; this keeps the renaming idempotent.
func FreshRename(c *Clause, gen *VarGen) (*Clause, *Substitution) {
	vars := clauseVars(c)
	inClause := make(map[int64]bool, len(vars))
	for _, v := range vars {
		inClause[v.id] = true
	}
	ren := NewSubstitution()
	for _, v := range vars {
		nv := gen.Fresh(v.name)
		for inClause[nv.id] {
			nv = gen.Fresh(v.name)
		}
		ren.bindings[v.id] = nv
	}
	return c.apply(ren), ren
}

// clauseVars collects the distinct variables across every literal of c, in
// first-seen order.
func clauseVars(c *Clause) []*Var {
	var all []*Var
	for _, lit := range c.lits {
		all = append(all, Vars(lit.atomTerm())...)
	}
	return lo.UniqBy(all, func(v *Var) int64 { return v.id })
}
