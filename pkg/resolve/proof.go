package resolve

// ExtractProof walks the Inference.Parents links backward from the empty
// clause to every ancestor that actually contributed to it, and returns
// them in a valid derivation order: every clause appears after all of its
// parents. archive must contain every numbered clause ever produced during
// the run the empty clause came from, including ones later discarded by
// backward subsumption — a clause removed from the active ClauseSet can
// still be someone's parent.
func ExtractProof(empty *Clause, archive map[int]*Clause) []*Clause {
	visited := make(map[int]bool)
	var order []*Clause

	var visit func(c *Clause)
	visit = func(c *Clause) {
		if c == nil || visited[c.id] {
			return
		}
		visited[c.id] = true
		for _, pid := range c.inference.Parents {
			if p, ok := archive[pid]; ok {
				visit(p)
			}
		}
		order = append(order, c)
	}
	visit(empty)
	return order
}
