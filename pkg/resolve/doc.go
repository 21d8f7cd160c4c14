// Package resolve provides a saturation-based theorem prover for first-order
// logic with equality.
//
// Given a set of axioms and a negated conjecture, the given-clause loop
// (Engine.Saturate) repeatedly selects a clause from the unprocessed set,
// moves it to the processed set, generates all binary resolvents and factors
// against the processed set, and simplifies and re-inserts the survivors.
// A refutation is found when the empty clause is derived; saturation is
// reached when the unprocessed set runs dry.
//
// The package models the classical resolution calculus directly:
//
//   - Term: variables and function applications (term.go)
//   - Substitution: idempotent variable bindings (subst.go)
//   - Unification: Robinson's algorithm with the occurs check (unify.go)
//   - Literal, Clause: the logical data model (literal.go, clause.go)
//   - Resolvents, Factors, EqualityAxioms: the inference rules (inference.go)
//   - Subsumes: redundancy (subsumption.go); ForwardSubsumed,
//     BackwardSubsume: the clause-set scans that use it (clauseset.go)
//   - Selection, evaluation heuristics (selection.go, heuristics.go)
//   - Engine: the given-clause loop itself (engine.go)
//
// Engine values are single-threaded and synchronous: Saturate never starts a
// goroutine and never blocks on anything but the caller's context. Two
// Engine values never share mutable state, so independent problems may be
// run concurrently by running one Engine per goroutine (see cmd/resolve's
// provecorpus command).
package resolve
