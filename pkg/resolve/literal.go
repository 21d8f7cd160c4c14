package resolve

import "strings"

// EqPredicate is the distinguished binary predicate symbol used for
// equality literals (§3). It can never be the name of a user predicate —
// the parser (internal/tptp) rejects problems that declare a predicate
// named "=".
const EqPredicate = "="

// Literal is a signed atom: polarity, predicate symbol, and argument
// terms. Equality literals use EqPredicate with exactly two arguments and
// are symmetric for comparison (s=t and t=s are the same literal), but the
// original argument order is preserved for display.
type Literal struct {
	positive bool
	pred     string
	args     []Term
}

// NewLiteral builds a literal over an ordinary predicate.
func NewLiteral(positive bool, pred string, args ...Term) *Literal {
	cp := make([]Term, len(args))
	copy(cp, args)
	return &Literal{positive: positive, pred: pred, args: cp}
}

// NewEquality builds an equality literal lhs = rhs (or lhs != rhs when
// positive is false).
func NewEquality(positive bool, lhs, rhs Term) *Literal {
	return &Literal{positive: positive, pred: EqPredicate, args: []Term{lhs, rhs}}
}

func (l *Literal) Positive() bool   { return l.positive }
func (l *Literal) Predicate() string { return l.pred }
func (l *Literal) Args() []Term     { return l.args }
func (l *Literal) IsEquality() bool { return l.pred == EqPredicate }

// IsPropositional reports whether the literal is the nullary $true/$false
// marker used by the clausifier for trivially (un)satisfiable conjuncts.
func (l *Literal) IsPropositional() bool {
	return l.pred == "$true" || l.pred == "$false"
}

// atomTerm views the literal's atom as a plain compound term, which lets
// term.go's Vars operate on it (clauseVars in subst.go).
func (l *Literal) atomTerm() Term {
	return &Compound{functor: l.pred, args: l.args}
}

// Negate returns the literal with polarity flipped; everything else is
// shared (literals are immutable).
func (l *Literal) Negate() *Literal {
	return &Literal{positive: !l.positive, pred: l.pred, args: l.args}
}

// atomEqual reports whether two literals have the same predicate and,
// modulo equality symmetry, the same arguments — ignoring polarity. It is
// the building block for both literal equality and the complementary-pair
// check used by the tautology test.
func atomEqual(a, b *Literal) bool {
	if a.pred != b.pred || len(a.args) != len(b.args) {
		return false
	}
	if a.pred == EqPredicate {
		direct := a.args[0].Equal(b.args[0]) && a.args[1].Equal(b.args[1])
		swapped := a.args[0].Equal(b.args[1]) && a.args[1].Equal(b.args[0])
		return direct || swapped
	}
	for i := range a.args {
		if !a.args[i].Equal(b.args[i]) {
			return false
		}
	}
	return true
}

// Equal is full structural equality: same polarity plus atomEqual.
func (l *Literal) Equal(o *Literal) bool {
	return l.positive == o.positive && atomEqual(l, o)
}

// Complementary reports whether l and o are L and ¬L for the same atom.
func (l *Literal) Complementary(o *Literal) bool {
	return l.positive != o.positive && atomEqual(l, o)
}

// isReflexivityTautology reports whether l is the positive literal s=s.
func (l *Literal) isReflexivityTautology() bool {
	return l.positive && l.pred == EqPredicate && l.args[0].Equal(l.args[1])
}

// weight scores a literal for heuristics (§4.5): f times the number of
// function-symbol occurrences plus v times the number of variable
// occurrences, summed over the literal's arguments.
func (l *Literal) weight(f, v int) int {
	total := 0
	for _, a := range l.args {
		total += f*symbolCount(a) + v*varOccurrences(a)
	}
	return total
}

func (l *Literal) apply(s *Substitution) *Literal {
	newArgs := make([]Term, len(l.args))
	for i, a := range l.args {
		newArgs[i] = Apply(s, a)
	}
	return &Literal{positive: l.positive, pred: l.pred, args: newArgs}
}

func (l *Literal) String() string {
	var b strings.Builder
	if l.pred == EqPredicate {
		if !l.positive {
			b.WriteString(l.args[0].String())
			b.WriteString(" != ")
			b.WriteString(l.args[1].String())
			return b.String()
		}
		b.WriteString(l.args[0].String())
		b.WriteString(" = ")
		b.WriteString(l.args[1].String())
		return b.String()
	}
	if !l.positive {
		b.WriteByte('~')
	}
	b.WriteString(l.pred)
	if len(l.args) > 0 {
		b.WriteByte('(')
		for i, a := range l.args {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(a.String())
		}
		b.WriteByte(')')
	}
	return b.String()
}
