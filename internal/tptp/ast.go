package tptp

// Term is the parser's own term representation — a plain functor/args
// tree, kept separate from pkg/resolve.Term because variable identity
// here is by name (scoped to one formula) until convert.go assigns each
// distinct name a fresh engine-local *resolve.Var.
type Term struct {
	IsVar   bool
	Functor string // variable name, or function/constant symbol
	Args    []*Term
}

func mkVar(name string) *Term         { return &Term{IsVar: true, Functor: name} }
func mkCompound(f string, a ...*Term) *Term { return &Term{Functor: f, Args: a} }

// Atom is a term used in predicate position, or one of the two
// equational pseudo-atoms ("=" / "!=") produced by parseAtom.
type Atom struct {
	Pred string
	Args []*Term
}

func (a *Atom) isEquational() bool { return a.Pred == "=" || a.Pred == "!=" }

// Literal is a signed atom, exactly as clauses.py's Literal.
type Literal struct {
	Negative bool
	Atom     *Atom
}

// Connective enumerates FOF's propositional connectives and quantifiers
// (formulas.py), in the precedence order the parser implements:
// quantifiers bind tightest after negation, then &, then |, then
// =>, then <=>.
type Connective int

const (
	ConnAtomic Connective = iota
	ConnNot
	ConnAnd
	ConnOr
	ConnImplies
	ConnEquiv
	ConnForall
	ConnExists
)

// Formula is the recursive FOF formula tree. Exactly one of Atom (for
// ConnAtomic) or Left/Right (for binary connectives) or Sub (for
// ConnNot/quantifiers) is populated, per Kind.
type Formula struct {
	Kind Connective

	Atom *Atom // ConnAtomic
	Neg  bool  // ConnAtomic: atom is negated (from a bare ~p(X) literal)

	Sub *Formula // ConnNot, ConnForall, ConnExists

	Left, Right *Formula // ConnAnd, ConnOr, ConnImplies, ConnEquiv

	BoundVars []string // ConnForall, ConnExists
}

// ClauseRole and FormulaRole record the TPTP "role" field (hypothesis,
// axiom, negated_conjecture, conjecture, ...), used to assign a
// resolve.ClauseType and, for fof, to decide whether the formula must be
// negated before clausification (§4.7).
type Role string

const (
	RoleAxiom             Role = "axiom"
	RoleHypothesis        Role = "hypothesis"
	RoleConjecture        Role = "conjecture"
	RoleNegatedConjecture Role = "negated_conjecture"
)

// CNFClause is one parsed cnf(...) annotated formula: a flat disjunction
// of literals plus its name and role.
type CNFClause struct {
	Name    string
	Role    Role
	Literals []*Literal
}

// FOFFormula is one parsed fof(...) annotated formula.
type FOFFormula struct {
	Name    string
	Role    Role
	Formula *Formula
}

// Problem is everything Parse extracts from one TPTP source document: an
// ordered mix of cnf and fof inputs (§4.7 allows both, matching the
// reference implementation's mixed-syntax acceptance).
type Problem struct {
	CNFClauses []*CNFClause
	FOFFormulas []*FOFFormula
}

// IsFOF reports whether the problem contains any fof(...) input — the
// §6 SZS status table keys the CNF/FOF distinction off this.
func (p *Problem) IsFOF() bool { return len(p.FOFFormulas) > 0 }
