// Package tptp implements a front-end for a useful subset of the TPTP
// input language (§4.7 of SPEC_FULL.md): lexing, a recursive-descent
// parser for cnf(...) and fof(...) annotated formulas, and a CNF
// transform (negation normal form, renaming apart, Skolemization, dropping
// universal quantifiers, distribution)
// that turns an fof(...) axiom/conjecture set into the flat Clause values
// pkg/resolve operates on.
//
// The grammar and token set are grounded directly on the reference
// implementation's lexer.py/terms.py/clauses.py/formulacnf.py, not
// reinvented: Token kinds, the atom/literal/clause parse functions, and
// the Skolemization strategy all follow that source's structure, adapted
// to idiomatic Go (explicit error returns instead of exceptions, a
// recursive-descent parser instead of a hand-rolled one-token-lookahead
// loop wherever the two diverge).
//
// File layout:
//
//	lexer.go   — Token, Lexer: string -> token stream
//	ast.go     — Term/Formula AST distinct from pkg/resolve's Term, since
//	             a formula (with quantifiers and connectives) is not yet a
//	             clause
//	parser.go  — recursive-descent parser: Parse returns one Problem
//	cnf.go     — NNF, rename-apart, Skolemization, drop universals,
//	             distribution -> clause list
//	convert.go — AST Term -> resolve.Term, and Problem -> []*resolve.Clause
package tptp
