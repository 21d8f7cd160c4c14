package resolve

// Match performs one-sided "matching" unification: it extends sub so that
// Apply(sub, pattern) equals instance, but never binds a variable that
// occurs in instance — only variables occurring in pattern may be bound.
// This is exactly the restriction §4.4 calls for in subsumption's
// "backtracking matching (one-sided unification that refuses to bind
// variables of D)".
func Match(pattern, instance Term, sub *Substitution) (*Substitution, bool) {
	switch p := pattern.(type) {
	case *Var:
		if bound := sub.Lookup(p); bound != nil {
			if bound.Equal(instance) {
				return sub, true
			}
			return nil, false
		}
		return sub.extend(p, instance), true
	case *Compound:
		ic, ok := instance.(*Compound)
		if !ok || ic.functor != p.functor || len(ic.args) != len(p.args) {
			return nil, false
		}
		cur := sub
		for i := range p.args {
			var matched bool
			cur, matched = Match(p.args[i], ic.args[i], cur)
			if !matched {
				return nil, false
			}
		}
		return cur, true
	default:
		return nil, false
	}
}

// matchLiteral matches patternLit against instanceLit: same polarity, same
// predicate, and the argument lists match (equality literals are tried
// both as given and swapped, since s=t and t=s are the same literal).
func matchLiteral(patternLit, instanceLit *Literal, sub *Substitution) (*Substitution, bool) {
	if patternLit.positive != instanceLit.positive || patternLit.pred != instanceLit.pred {
		return nil, false
	}
	if patternLit.pred == EqPredicate {
		if s, ok := matchArgs(patternLit.args, instanceLit.args, sub); ok {
			return s, true
		}
		swapped := []Term{instanceLit.args[1], instanceLit.args[0]}
		return matchArgs(patternLit.args, swapped, sub)
	}
	return matchArgs(patternLit.args, instanceLit.args, sub)
}

func matchArgs(pattern, instance []Term, sub *Substitution) (*Substitution, bool) {
	cur := sub
	for i := range pattern {
		var ok bool
		cur, ok = Match(pattern[i], instance[i], cur)
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Subsumes reports whether subsumer subsumes subsumed (§4.4): some
// instance of subsumer is a sub-multiset of subsumed's literals. A clause
// subsumes itself (reflexive); the empty clause subsumes everything.
func Subsumes(subsumer, subsumed *Clause) bool {
	if len(subsumer.lits) > len(subsumed.lits) {
		return false
	}
	return subsumeLits(subsumer.lits, subsumed.lits, NewSubstitution())
}

// subsumeLits tries to extend sub so that subst(pattern) is a multi-subset
// of the remaining candidate literals, consuming one candidate occurrence
// per matched pattern literal (so a clause never subsumes one of its own
// proper factors — see original_source/subsumption.py's docstring).
func subsumeLits(pattern, candidates []*Literal, sub *Substitution) bool {
	if len(pattern) == 0 {
		return true
	}
	head := pattern[0]
	for i, cand := range candidates {
		if s, ok := matchLiteral(head, cand, sub); ok {
			rest := make([]*Literal, 0, len(candidates)-1)
			rest = append(rest, candidates[:i]...)
			rest = append(rest, candidates[i+1:]...)
			if subsumeLits(pattern[1:], rest, s) {
				return true
			}
		}
	}
	return false
}

// ProperlySubsumes reports whether subsumer subsumes subsumed and the two
// are not merely variable-renamings of each other — the distinction §4.4
// needs for backward subsumption, which must delete a properly-subsumed
// clause but must not delete a clause subsumed only by its own renaming
// (that would let mutual subsumption erase both clauses from the set).
func ProperlySubsumes(subsumer, subsumed *Clause) bool {
	if !Subsumes(subsumer, subsumed) {
		return false
	}
	return subsumer.CanonicalKey() != subsumed.CanonicalKey()
}
