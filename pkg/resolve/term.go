package resolve

import (
	"sort"
	"strings"
)

// Term is either a variable or a compound function application (a constant
// is a compound with zero arguments). Terms are immutable values: every
// operation that would "change" a term instead returns a new one.
type Term interface {
	// String renders the term in TPTP-ish notation, e.g. "f(X,a)".
	String() string

	// Equal reports structural identity: same variable id, or same functor,
	// arity and pairwise-equal arguments. It is NOT unification.
	Equal(other Term) bool

	// IsVar reports whether the term is a variable.
	IsVar() bool
}

// Var is a first-order variable. Two Vars are the same variable iff their
// IDs match; the Name is carried only for display and is never compared.
type Var struct {
	id   int64
	name string
}

// ID returns the variable's identity. IDs are unique within the VarGen that
// produced them. Clauses built with different VarGens (a front-end's and an
// Engine's) may reuse the same IDs; FreshRename renames both parents of
// every inference apart first, so such IDs never meet inside one clause.
func (v *Var) ID() int64 { return v.id }

// Name returns the variable's display name (possibly empty).
func (v *Var) Name() string { return v.name }

func (v *Var) String() string {
	if v.name != "" {
		return v.name
	}
	return "_G" + itoa(v.id)
}

func (v *Var) Equal(other Term) bool {
	o, ok := other.(*Var)
	return ok && o.id == v.id
}

func (v *Var) IsVar() bool { return true }

// Compound is a function application f(t1,...,tn). Arity 0 represents a
// constant. Predicates are represented the same way at the literal level
// (see literal.go); Compound itself carries no polarity.
type Compound struct {
	functor string
	args    []Term
}

// NewCompound builds a compound term. The args slice is copied defensively
// so the caller may reuse or mutate its own slice afterwards.
func NewCompound(functor string, args ...Term) *Compound {
	cp := make([]Term, len(args))
	copy(cp, args)
	return &Compound{functor: functor, args: cp}
}

// NewConst builds a 0-ary compound (a constant symbol).
func NewConst(name string) *Compound {
	return &Compound{functor: name}
}

func (c *Compound) Functor() string { return c.functor }
func (c *Compound) Arity() int      { return len(c.args) }
func (c *Compound) Args() []Term    { return c.args }

func (c *Compound) String() string {
	if len(c.args) == 0 {
		return c.functor
	}
	var b strings.Builder
	b.WriteString(c.functor)
	b.WriteByte('(')
	for i, a := range c.args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (c *Compound) Equal(other Term) bool {
	o, ok := other.(*Compound)
	if !ok || o.functor != c.functor || len(o.args) != len(c.args) {
		return false
	}
	for i := range c.args {
		if !c.args[i].Equal(o.args[i]) {
			return false
		}
	}
	return true
}

func (c *Compound) IsVar() bool { return false }

// VarGen mints fresh variables with monotonically increasing, engine-local
// identifiers. Per §5, the fresh-variable counter is process-wide mutable
// state owned by exactly one Engine and reset per problem — never a package
// global — so two VarGens never need to agree on numbering.
type VarGen struct {
	next int64
}

// Fresh returns a new variable with a unique ID and the given display name
// (which may be empty).
func (g *VarGen) Fresh(name string) *Var {
	g.next++
	return &Var{id: g.next, name: name}
}

// Reset returns the generator to its initial state, as required by §5 so
// that two runs over the same problem with the same flags are deterministic
// down to variable numbering.
func (g *VarGen) Reset() {
	g.next = 0
}

// Vars returns the set of distinct variables occurring in t, in first-seen
// order (stable, not alphabetic) to keep fresh_rename deterministic.
func Vars(t Term) []*Var {
	seen := map[int64]bool{}
	var order []*Var
	var walk func(Term)
	walk = func(t Term) {
		switch x := t.(type) {
		case *Var:
			if !seen[x.id] {
				seen[x.id] = true
				order = append(order, x)
			}
		case *Compound:
			for _, a := range x.args {
				walk(a)
			}
		}
	}
	walk(t)
	return order
}

// Ground reports whether t contains no variables.
func Ground(t Term) bool {
	switch x := t.(type) {
	case *Var:
		return false
	case *Compound:
		for _, a := range x.args {
			if !Ground(a) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// symbolCount returns the number of function-symbol occurrences in t,
// counting every compound node once (constants count as one symbol). Used
// by the weight-based heuristics in heuristics.go and selection.go.
func symbolCount(t Term) int {
	switch x := t.(type) {
	case *Compound:
		n := 1
		for _, a := range x.args {
			n += symbolCount(a)
		}
		return n
	default:
		return 0
	}
}

// varOccurrences returns the number of variable occurrences (with
// multiplicity) in t.
func varOccurrences(t Term) int {
	switch x := t.(type) {
	case *Var:
		return 1
	case *Compound:
		n := 0
		for _, a := range x.args {
			n += varOccurrences(a)
		}
		return n
	default:
		return 0
	}
}

// sortedVarIDs returns the IDs of vs in ascending order, a variable order
// independent of first-seen order. Nothing in the package calls it;
// CanonicalKey numbers variables in first-seen order.
func sortedVarIDs(vs []*Var) []int64 {
	ids := make([]int64, len(vs))
	for i, v := range vs {
		ids[i] = v.id
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func itoa(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
