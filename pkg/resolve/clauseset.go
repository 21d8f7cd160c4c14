package resolve

// ClauseSet holds the two logical partitions of §3: the unprocessed set U
// and the processed set P. Both are kept as flat slices deliberately:
// performance comes from selection and subsumption heuristics, not
// sophisticated indexing, so there is no term index here, only a plain
// clause/literal list.
type ClauseSet struct {
	unprocessed []*Clause
	processed   []*Clause
}

// NewClauseSet returns an empty clause set.
func NewClauseSet() *ClauseSet {
	return &ClauseSet{}
}

// InsertUnprocessed adds c to U. Callers must have already run the
// redundancy pipeline (§4.4) and set c's selection/weight before calling
// this, since both are one-time-only fields.
func (cs *ClauseSet) InsertUnprocessed(c *Clause) {
	cs.unprocessed = append(cs.unprocessed, c)
}

// Unprocessed returns the current contents of U, in insertion order. The
// returned slice must not be mutated by the caller.
func (cs *ClauseSet) Unprocessed() []*Clause { return cs.unprocessed }

// Processed returns the current contents of P.
func (cs *ClauseSet) Processed() []*Clause { return cs.processed }

// MoveToProcessed removes c from U (by clause ID) and appends it to P.
// Panics if c is not present in U — a programming error (§7's "internal
// invariant violation"). The given-clause loop does not call it: its
// heuristic has already popped the given clause from U, so it uses
// AddProcessed instead.
func (cs *ClauseSet) MoveToProcessed(c *Clause) {
	if !cs.removeUnprocessed(c.id) {
		panic("resolve: MoveToProcessed called with a clause not in U")
	}
	cs.processed = append(cs.processed, c)
}

// AddProcessed appends c directly to P without touching U. Used by the
// given-clause loop (engine.go), which has already popped c out of U via a
// ClauseHeuristic before it decides c survives to become the given clause.
func (cs *ClauseSet) AddProcessed(c *Clause) {
	cs.processed = append(cs.processed, c)
}

// RemoveAny deletes a clause by ID from whichever of U or P currently
// contains it (used by backward subsumption, §4.4 step 3, which may need
// to discard members of either set). Reports whether anything was removed.
func (cs *ClauseSet) RemoveAny(id int) bool {
	if cs.removeUnprocessed(id) {
		return true
	}
	return cs.removeProcessed(id)
}

func (cs *ClauseSet) removeUnprocessed(id int) bool {
	for i, c := range cs.unprocessed {
		if c.id == id {
			cs.unprocessed = append(cs.unprocessed[:i], cs.unprocessed[i+1:]...)
			return true
		}
	}
	return false
}

func (cs *ClauseSet) removeProcessed(id int) bool {
	for i, c := range cs.processed {
		if c.id == id {
			cs.processed = append(cs.processed[:i], cs.processed[i+1:]...)
			return true
		}
	}
	return false
}

// PopUnprocessedByID removes and returns the clause with the given ID from
// U, or nil if absent. Used by the FIFO and PickGivenN heuristics once
// they've decided which clause ID is "oldest".
func (cs *ClauseSet) PopUnprocessedByID(id int) *Clause {
	for i, c := range cs.unprocessed {
		if c.id == id {
			cs.unprocessed = append(cs.unprocessed[:i], cs.unprocessed[i+1:]...)
			return c
		}
	}
	return nil
}

// AllForSubsumption iterates every clause currently in P union U, the
// search space §4.4's forward and backward subsumption checks range over.
func (cs *ClauseSet) AllForSubsumption(yield func(*Clause) bool) {
	for _, c := range cs.processed {
		if !yield(c) {
			return
		}
	}
	for _, c := range cs.unprocessed {
		if !yield(c) {
			return
		}
	}
}

// ForwardSubsumed reports whether some clause already in P∪U subsumes n
// (§4.4 step 2): if so, n is redundant and must be discarded.
func (cs *ClauseSet) ForwardSubsumed(n *Clause) bool {
	found := false
	cs.AllForSubsumption(func(c *Clause) bool {
		if Subsumes(c, n) {
			found = true
			return false
		}
		return true
	})
	return found
}

// BackwardSubsume removes every clause in P∪U that n properly subsumes
// (§4.4 step 3) and returns how many were removed.
func (cs *ClauseSet) BackwardSubsume(n *Clause) int {
	var victims []int
	cs.AllForSubsumption(func(c *Clause) bool {
		if c.id != n.id && ProperlySubsumes(n, c) {
			victims = append(victims, c.id)
		}
		return true
	})
	for _, id := range victims {
		cs.RemoveAny(id)
	}
	return len(victims)
}
