package resolve

import (
	"context"
	"time"
)

// Config configures a single Engine run. The zero value is not directly
// useful — use DefaultConfig, which matches PyRes's own defaults (no
// subsumption, no selection, FIFO, no set-of-support) per §4.6.
type Config struct {
	// Heuristic picks the given clause each iteration (§4.5/§9).
	Heuristic ClauseHeuristic
	// Selector computes each clause's one-time literal selection (§4.5/§9).
	Selector LiteralSelector

	// EqualityAxioms, when true and the problem's signature contains "=",
	// adds the congruence axioms (§4.3) before saturation starts.
	EqualityAxioms bool
	// ForwardSubsumption enables the §4.4 step-2 redundancy check.
	ForwardSubsumption bool
	// BackwardSubsumption enables the §4.4 step-3 redundancy check.
	BackwardSubsumption bool
	// SOS enables set-of-support restriction (§4.6): resolvents and
	// factors must have at least one ancestor tagged sos=true, which is
	// seeded onto every TypeNegatedConjecture input clause.
	SOS bool

	// MaxClauses is a soft cap (§5) on the number of clauses ever numbered
	// during the run; zero means unlimited.
	MaxClauses int
	// Timeout is a soft wall-clock budget (§5); zero means unlimited.
	Timeout time.Duration
}

// DefaultConfig returns the engine's baseline configuration: FIFO given-
// clause selection, no literal selection, no subsumption, no SOS — the
// simplest complete configuration described in §4.6.
func DefaultConfig() Config {
	return Config{
		Heuristic: FIFO{},
		Selector:  NoSelection{},
	}
}

// Engine owns one saturation run's mutable state: the fresh-variable
// generator, the clause-ID counter, the observed signature, and the
// clause set itself. None of this is package-level, per §5's determinism
// requirement — two Engines never share a counter, so two runs of the
// same problem on two Engines produce byte-identical clause numbering.
type Engine struct {
	cfg Config

	vars   VarGen
	nextID int
	sig    *Signature
	cs     *ClauseSet

	// archive holds every clause ever numbered, including ones later
	// discarded by backward subsumption, so ExtractProof can still find an
	// ancestor after it has left the active ClauseSet.
	archive map[int]*Clause

	observer Observer
	runID    string
}

// NewEngine builds an Engine ready to saturate one problem. runID is an
// opaque correlation string stamped onto every clause this Engine numbers
// (§3) — pass a uuid.String() from the CLI boundary, or "" if log
// correlation is not needed.
func NewEngine(cfg Config, runID string) *Engine {
	if cfg.Heuristic == nil {
		cfg.Heuristic = FIFO{}
	}
	if cfg.Selector == nil {
		cfg.Selector = NoSelection{}
	}
	return &Engine{
		cfg:      cfg,
		sig:      NewSignature(),
		cs:       NewClauseSet(),
		archive:  make(map[int]*Clause),
		observer: NoopObserver{},
		runID:    runID,
	}
}

// SetObserver installs o as the engine's iteration observer, replacing the
// no-op default.
func (e *Engine) SetObserver(o Observer) {
	if o == nil {
		o = NoopObserver{}
	}
	e.observer = o
}

// Signature returns the symbol signature observed so far.
func (e *Engine) Signature() *Signature { return e.sig }

// numberClause assigns the next clause ID and fixes typ/inf/sos, returning
// a new clause value (clauses are otherwise immutable, clause.go).
func (e *Engine) numberClause(c *Clause, typ ClauseType, inf Inference, sos bool) *Clause {
	e.nextID++
	numbered := c.withMeta(e.nextID, typ, inf, sos).withRunID(e.runID)
	e.archive[numbered.id] = numbered
	return numbered
}

// enqueueOutcome records why a candidate clause did or did not make it
// into U, for the observer's per-iteration bookkeeping.
type enqueueOutcome int

const (
	enqueueKept enqueueOutcome = iota
	enqueueDiscardedTautology
	enqueueDiscardedSubsumed
	enqueueRefutation
)

// enqueue runs the §4.4 redundancy pipeline over a freshly derived
// (unnumbered) clause and, if it survives, numbers it, sets its one-time
// weight and selection, and inserts it into U. It reports what happened,
// and — when the clause turned out to be the empty clause — the numbered
// clause itself so the caller can stop and extract a proof.
func (e *Engine) enqueue(cand *Clause, typ ClauseType, inf Inference, sos bool) (enqueueOutcome, *Clause) {
	// Reflexivity (x=x) and symmetry (~(x=y)|y=x), synthesized by
	// EqualityAxioms, are tautology-shaped on purpose; exempt them so the
	// redundancy filter doesn't drop them before they ever reach U.
	if typ != TypeEqualityAxiom && !cand.IsEmpty() && cand.IsTautology() {
		return enqueueDiscardedTautology, nil
	}
	if e.cfg.ForwardSubsumption && !cand.IsEmpty() && e.cs.ForwardSubsumed(cand) {
		return enqueueDiscardedSubsumed, nil
	}

	numbered := e.numberClause(cand, typ, inf, sos)

	if numbered.IsEmpty() {
		return enqueueRefutation, numbered
	}

	if e.cfg.BackwardSubsumption {
		e.cs.BackwardSubsume(numbered)
	}

	numbered.SetWeight(EvalWeight(numbered))
	numbered.SetSelection(e.cfg.Selector.Select(numbered))
	e.cs.InsertUnprocessed(numbered)
	return enqueueKept, numbered
}

// budgetExceeded reports whether the soft budget (§5) has been spent.
func (e *Engine) budgetExceeded(start time.Time) bool {
	if e.cfg.MaxClauses > 0 && e.nextID >= e.cfg.MaxClauses {
		return true
	}
	if e.cfg.Timeout > 0 && time.Since(start) > e.cfg.Timeout {
		return true
	}
	return false
}

// sosAllowed reports whether a derived clause satisfies the §4.6 set-of-
// support restriction: at least one of its parents carries the sos tag.
// When SOS is disabled the restriction never applies.
func (e *Engine) sosAllowed(participants ...*Clause) bool {
	if !e.cfg.SOS {
		return true
	}
	for _, c := range participants {
		if c.SOS() {
			return true
		}
	}
	return false
}

// Saturate runs the given-clause algorithm (§4.6) to completion, to the
// soft budget, or until ctx is cancelled, starting from an initial clause
// set. Clauses in initial should already carry their intended ClauseType
// (TypeAxiom, TypeHypothesis, or TypeNegatedConjecture); when the engine is
// configured for set-of-support, Saturate itself tags every negated-
// conjecture clause sos=true before seeding (§4.6/§9) — descendants inherit
// the tag from there (Resolvents, Factors).
func (e *Engine) Saturate(ctx context.Context, initial []*Clause) *Result {
	start := time.Now()
	res := &Result{Status: Saturated}

	for _, c := range initial {
		e.sig.Scan(c)
	}

	seed := make([]*Clause, 0, len(initial))
	for _, c := range initial {
		if e.cfg.SOS && c.Type() == TypeNegatedConjecture && !c.SOS() {
			c = WithSOS(c, true)
		}
		seed = append(seed, c)
	}
	if e.cfg.EqualityAxioms && e.sig.HasEquality() {
		seed = append(seed, EqualityAxioms(e.sig, &e.vars)...)
	}

	for _, c := range seed {
		outcome, numbered := e.enqueue(c, c.Type(), c.Inference(), c.SOS())
		e.tallyEnqueue(res, outcome)
		if outcome == enqueueRefutation {
			res.Status = Refutation
			res.Empty = numbered
			return res
		}
	}

	for {
		select {
		case <-ctx.Done():
			res.Status = GaveUp
			return res
		default:
		}

		if e.budgetExceeded(start) {
			res.Status = GaveUp
			return res
		}

		if len(e.cs.Unprocessed()) == 0 {
			res.Status = Saturated
			return res
		}

		g := e.cfg.Heuristic.PickGiven(e.cs)
		if g == nil {
			res.Status = Saturated
			return res
		}
		iterStart := time.Now()

		if e.cfg.ForwardSubsumption && e.cs.ForwardSubsumed(g) {
			res.ClausesDiscarded++
			continue
		}

		e.cs.AddProcessed(g)
		if e.cfg.BackwardSubsumption {
			e.cs.BackwardSubsume(g)
		}

		res.Iterations++
		iterGenerated, iterKept, iterDiscarded := 0, 0, 0

		for _, c := range e.cs.Processed() {
			for _, r := range Resolvents(g, c, &e.vars) {
				iterGenerated++
				if !e.sosAllowed(g, c) {
					iterDiscarded++
					continue
				}
				outcome, numbered := e.enqueue(r, TypeDerived, r.Inference(), r.SOS())
				e.tallyEnqueueLocal(&iterKept, &iterDiscarded, outcome)
				if outcome == enqueueRefutation {
					res.Status = Refutation
					res.Empty = numbered
					e.finish(res, iterStart, iterGenerated, iterKept, iterDiscarded, g)
					return res
				}
			}
		}

		for _, f := range Factors(g, &e.vars) {
			iterGenerated++
			if !e.sosAllowed(g) {
				iterDiscarded++
				continue
			}
			outcome, numbered := e.enqueue(f, TypeDerived, f.Inference(), f.SOS())
			e.tallyEnqueueLocal(&iterKept, &iterDiscarded, outcome)
			if outcome == enqueueRefutation {
				res.Status = Refutation
				res.Empty = numbered
				e.finish(res, iterStart, iterGenerated, iterKept, iterDiscarded, g)
				return res
			}
		}

		e.finish(res, iterStart, iterGenerated, iterKept, iterDiscarded, g)
	}
}

func (e *Engine) tallyEnqueue(res *Result, outcome enqueueOutcome) {
	res.ClausesGenerated++
	if outcome == enqueueKept || outcome == enqueueRefutation {
		res.ClausesKept++
	} else {
		res.ClausesDiscarded++
	}
}

func (e *Engine) tallyEnqueueLocal(kept, discarded *int, outcome enqueueOutcome) {
	if outcome == enqueueKept || outcome == enqueueRefutation {
		*kept++
	} else {
		*discarded++
	}
}

func (e *Engine) finish(res *Result, start time.Time, generated, kept, discarded int, given *Clause) {
	res.ClausesGenerated += generated
	res.ClausesKept += kept
	res.ClausesDiscarded += discarded
	e.observer.OnIteration(IterationStats{
		Given:       given,
		Generated:   generated,
		Kept:        kept,
		Discarded:   discarded,
		Elapsed:     time.Since(start),
		Unprocessed: len(e.cs.Unprocessed()),
		Processed:   len(e.cs.Processed()),
	})
}

// Proof returns the ancestor chain of res.Empty in derivation order, or
// nil if res is not a refutation. It may be called any time after
// Saturate returns — the archive it reads from outlives the ClauseSet's
// own bookkeeping.
func (e *Engine) Proof(res *Result) []*Clause {
	if res.Status != Refutation || res.Empty == nil {
		return nil
	}
	return ExtractProof(res.Empty, e.archive)
}
