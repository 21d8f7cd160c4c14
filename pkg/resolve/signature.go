package resolve

import "sort"

// SymbolArity names a function or predicate symbol together with its
// (fixed, per-problem) arity — §3's "the arity of f is fixed per
// problem".
type SymbolArity struct {
	Name  string
	Arity int
}

// Signature is the set of function and predicate symbols observed while
// scanning a problem's clauses, collected once before saturation starts so
// EqualityAxioms (§4.3) can be synthesized deterministically.
type Signature struct {
	functions  map[SymbolArity]bool
	predicates map[SymbolArity]bool
	hasEq      bool
}

// NewSignature builds an empty signature.
func NewSignature() *Signature {
	return &Signature{functions: map[SymbolArity]bool{}, predicates: map[SymbolArity]bool{}}
}

// HasEquality reports whether "=" was observed anywhere in the scanned
// clauses — the trigger condition for EqualityAxioms (§4.3).
func (s *Signature) HasEquality() bool { return s.hasEq }

// Scan records every function and predicate symbol occurring in c.
func (s *Signature) Scan(c *Clause) {
	for _, l := range c.lits {
		if l.pred == EqPredicate {
			s.hasEq = true
		} else if !l.IsPropositional() {
			s.predicates[SymbolArity{l.pred, len(l.args)}] = true
		}
		for _, a := range l.args {
			s.scanTerm(a)
		}
	}
}

func (s *Signature) scanTerm(t Term) {
	c, ok := t.(*Compound)
	if !ok {
		return
	}
	s.functions[SymbolArity{c.functor, len(c.args)}] = true
	for _, a := range c.args {
		s.scanTerm(a)
	}
}

// SortedFunctions returns the observed function symbols in a deterministic
// (name, then arity) order, required so EqualityAxioms produces the same
// clause set — and hence the same derivation — across repeated runs (§8
// determinism property).
func (s *Signature) SortedFunctions() []SymbolArity {
	return sortedSymbols(s.functions)
}

// SortedPredicates returns the observed predicate symbols (excluding "=",
// which the caller filters) in deterministic order.
func (s *Signature) SortedPredicates() []SymbolArity {
	return sortedSymbols(s.predicates)
}

func sortedSymbols(m map[SymbolArity]bool) []SymbolArity {
	out := make([]SymbolArity, 0, len(m))
	for sa := range m {
		out = append(out, sa)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Arity < out[j].Arity
	})
	return out
}
