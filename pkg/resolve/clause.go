package resolve

import (
	"sort"
	"strings"
)

// ClauseType records where a clause came from, per §3's "type (axiom,
// negated conjecture, derived, …)".
type ClauseType int

const (
	TypeAxiom ClauseType = iota
	TypeHypothesis
	TypeNegatedConjecture
	TypeDerived
	TypeEqualityAxiom
)

func (t ClauseType) String() string {
	switch t {
	case TypeAxiom:
		return "axiom"
	case TypeHypothesis:
		return "hypothesis"
	case TypeNegatedConjecture:
		return "negated_conjecture"
	case TypeEqualityAxiom:
		return "equality_axiom"
	default:
		return "derived"
	}
}

// Inference names the rule and parent clauses that produced a derived
// clause, e.g. resolution(c1,i,c2,j) from §3.
type Inference struct {
	Name    string
	Parents []int
}

func (inf Inference) String() string {
	if inf.Name == "" {
		return ""
	}
	parts := make([]string, len(inf.Parents))
	for i, p := range inf.Parents {
		parts[i] = itoa(int64(p))
	}
	return inf.Name + "(" + strings.Join(parts, ",") + ")"
}

// Clause is a finite multiset of literals interpreted disjunctively. The
// empty clause (no literals) denotes falsum. Clauses are immutable after
// creation except for the one-time selection flag and evaluation weight,
// both of which are set exactly once when the clause enters the
// unprocessed set (§3's lifecycle invariant) via Engine.enqueue.
type Clause struct {
	id        int
	typ       ClauseType
	lits      []*Literal
	inference Inference
	sos       bool

	weightSet bool
	weight    int

	selectionSet bool
	selected     []bool // parallel to lits; meaningful only on negative literals

	// runID is an opaque per-engine-run correlation id (set once, from
	// Engine.runID, by numberClause) for log correlation only (§3). It
	// plays no role in Equal, CanonicalKey, subsumption, or String.
	runID string
}

// NewClause builds a clause from its literals. The clause has no ID and no
// type until Engine.numberClause (engine.go) assigns them, or WithType
// tags its type — this lets the parser and tests build clauses freely
// before they are ever registered with an Engine.
func NewClause(lits ...*Literal) *Clause {
	cp := make([]*Literal, len(lits))
	copy(cp, lits)
	return &Clause{lits: cp}
}

func (c *Clause) ID() int                { return c.id }
func (c *Clause) Type() ClauseType       { return c.typ }
func (c *Clause) Literals() []*Literal   { return c.lits }
func (c *Clause) Len() int               { return len(c.lits) }
func (c *Clause) IsEmpty() bool          { return len(c.lits) == 0 }
func (c *Clause) Inference() Inference   { return c.inference }
func (c *Clause) SOS() bool              { return c.sos }

// RunID returns the correlation id stamped by the Engine that numbered
// this clause, or "" for an unnumbered clause (§3 — log correlation
// only, never compared by Equal/CanonicalKey/subsumption).
func (c *Clause) RunID() string { return c.runID }

// WithType returns a copy of c tagged with typ, for front-ends (internal/tptp)
// that know a clause's provenance (axiom, hypothesis, negated conjecture)
// before it is ever registered with an Engine. The clause remains
// unnumbered until Engine.Saturate assigns it an ID.
func WithType(c *Clause, typ ClauseType) *Clause {
	return c.withMeta(0, typ, c.inference, c.sos)
}

// WithSOS returns a copy of c with its set-of-support tag set to sos, for
// front-ends and Engine.Saturate to mark the negated-conjecture clauses a
// set-of-support run must start from (§4.6). The clause remains unnumbered
// until Engine.Saturate assigns it an ID.
func WithSOS(c *Clause, sos bool) *Clause {
	return c.withMeta(0, c.typ, c.inference, sos)
}

// withMeta returns a shallow copy of c with the given identity/provenance
// fields set; used by Engine.numberClause, WithType and WithSOS so the
// literal slice is never mutated in place.
func (c *Clause) withMeta(id int, typ ClauseType, inf Inference, sos bool) *Clause {
	return &Clause{id: id, typ: typ, lits: c.lits, inference: inf, sos: sos, runID: c.runID}
}

// withRunID returns a shallow copy of c stamped with the engine's run
// correlation id; used only by Engine.numberClause.
func (c *Clause) withRunID(runID string) *Clause {
	cp := *c
	cp.runID = runID
	return &cp
}

// apply returns a new clause with the substitution applied to every
// literal, preserving identity/provenance metadata and, since the
// literal order never changes under substitution, the selection bitmap
// too. Used by FreshRename (variable renaming before an inference, which
// must still respect the parent's selection) and by CanonicalKey.
func (c *Clause) apply(s *Substitution) *Clause {
	newLits := make([]*Literal, len(c.lits))
	for i, l := range c.lits {
		newLits[i] = l.apply(s)
	}
	cp := &Clause{id: c.id, typ: c.typ, lits: newLits, inference: c.inference, sos: c.sos}
	if c.selectionSet {
		cp.selectionSet = true
		cp.selected = append([]bool(nil), c.selected...)
	}
	return cp
}

// SetSelection installs the one-time selection bitmap computed by a
// LiteralSelector (selection.go). Calling it twice panics: per §3 and §9,
// selection is computed exactly once, when a clause enters the
// unprocessed set.
func (c *Clause) SetSelection(bitmap []bool) {
	if c.selectionSet {
		panic("resolve: clause selection set twice (violates §3 lifecycle invariant)")
	}
	if len(bitmap) != len(c.lits) {
		panic("resolve: selection bitmap length mismatch")
	}
	c.selected = bitmap
	c.selectionSet = true
}

// Selected reports whether literal i may play the restricted role ("only
// selected literals may be resolved/factored upon", §4.3) in an inference.
// If the clause has no selection computed yet, or its selector marked no
// literal at all (the "none" policy — §4.5), there is no restriction and
// every literal is eligible.
func (c *Clause) Selected(i int) bool {
	if !c.HasSelection() {
		return true
	}
	return c.selected[i]
}

// HasSelection reports whether any literal is selected at all.
func (c *Clause) HasSelection() bool {
	if !c.selectionSet {
		return false
	}
	for _, s := range c.selected {
		if s {
			return true
		}
	}
	return false
}

// SetWeight installs the one-time evaluation weight computed by
// EvalWeight (heuristics.go).
func (c *Clause) SetWeight(w int) {
	if c.weightSet {
		panic("resolve: clause weight set twice (violates §3 lifecycle invariant)")
	}
	c.weight = w
	c.weightSet = true
}

func (c *Clause) Weight() int {
	return c.weight
}

// IsTautology reports whether the clause is rejected at creation per §4.4:
// it contains complementary literals, or a positive literal s=s.
func (c *Clause) IsTautology() bool {
	for _, l := range c.lits {
		if l.isReflexivityTautology() {
			return true
		}
	}
	for i := range c.lits {
		for j := i + 1; j < len(c.lits); j++ {
			if c.lits[i].Complementary(c.lits[j]) {
				return true
			}
		}
	}
	return false
}

// vars returns every distinct variable occurring in the clause.
func (c *Clause) vars() []*Var {
	return clauseVars(c)
}

// CanonicalKey returns a string that is equal for two clauses that are
// equal up to a consistent variable renaming — i.e. the "equal up to
// variable renaming" notion §4.4's backward subsumption step needs to
// distinguish "subsumed" from "subsumed and identical" (proper subsumption
// only discards the *other* clause when the two differ). Variables are
// renumbered -1, -2, ... in first-occurrence order (negative IDs never
// clash with a VarGen's) and the rendered literals are sorted, so ground
// clauses that differ only in literal order share a key; for clauses with
// variables the numbering, and so the key, can depend on literal order.
func (c *Clause) CanonicalKey() string {
	ren := NewSubstitution()
	gen := int64(0)
	for _, v := range c.vars() {
		gen--
		ren.bindings[v.id] = &Var{id: gen, name: ""}
	}
	canon := c.apply(ren)
	parts := make([]string, len(canon.lits))
	for i, l := range canon.lits {
		parts[i] = l.String()
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

func (c *Clause) String() string {
	if len(c.lits) == 0 {
		return "$false"
	}
	parts := make([]string, len(c.lits))
	for i, l := range c.lits {
		parts[i] = l.String()
	}
	return strings.Join(parts, " | ")
}
