package resolve

// ProblemKind distinguishes a clause-normal-form problem (every input
// clause is a flat disjunction with an implicit universal closure, no
// conjecture to negate) from a first-order-form problem (a set of axioms
// plus one conjecture, which the front-end negates and clausifies before
// saturation ever sees it). §6's SZS status table keys off this
// distinction because "Unsatisfiable" and "Theorem" mean the same thing
// to the engine — the empty clause was derived — but mean different
// things to whoever submitted the problem.
type ProblemKind int

const (
	CNFProblem ProblemKind = iota
	FOFProblem
)

func (k ProblemKind) String() string {
	if k == FOFProblem {
		return "fof"
	}
	return "cnf"
}

// Status is the engine's own view of how a saturation run ended, before
// it is translated into an SZS ontology string.
type Status int

const (
	// Refutation means the empty clause was derived: the input clause set
	// is unsatisfiable.
	Refutation Status = iota
	// Saturated means U ran dry with no empty clause derived: the input
	// clause set is satisfiable (modulo the usual caveat that a
	// non-terminating problem's absence of a model is not observable).
	Saturated
	// GaveUp means the soft budget (§5) was exhausted, or the run was
	// cancelled, before either of the above was decided.
	GaveUp
)

func (s Status) String() string {
	switch s {
	case Refutation:
		return "refutation"
	case Saturated:
		return "saturated"
	default:
		return "gave_up"
	}
}

// Result is what Engine.Saturate returns: the engine's own outcome,
// enough of the derivation to extract a proof when Status is Refutation,
// and the bookkeeping §8's "ClausesGenerated / Kept / Discarded" figures
// in integration tests come from.
type Result struct {
	Status Status

	// Empty is the derived empty clause when Status == Refutation, else nil.
	Empty *Clause

	ClausesGenerated int
	ClausesKept      int
	ClausesDiscarded int
	Iterations       int
}

// SZSStatus maps an engine Result, interpreted against the kind of
// problem it was run on, to the six-row table in §6/§8:
//
//	kind  status      SZS
//	cnf   refutation  Unsatisfiable
//	cnf   saturated   Satisfiable
//	fof   refutation  Theorem
//	fof   saturated   CounterSatisfiable
//	*     gave_up     GaveUp
func SZSStatus(kind ProblemKind, status Status) string {
	if status == GaveUp {
		return "GaveUp"
	}
	if kind == FOFProblem {
		if status == Refutation {
			return "Theorem"
		}
		return "CounterSatisfiable"
	}
	if status == Refutation {
		return "Unsatisfiable"
	}
	return "Satisfiable"
}
