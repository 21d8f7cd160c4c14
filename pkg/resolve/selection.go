package resolve

// LiteralSelector computes the one-time selection bitmap for a clause as
// it enters the unprocessed set (§4.5, §9 "per-clause selection bitmap").
// Only negative literals are ever selected — §9's "negative selection"
// completeness requirement, which this package enforces by construction
// rather than trusting callers to respect it (per the Open Question in
// §9, -p positive-literal selection is out of scope and treated as
// mutually exclusive with negative selection).
type LiteralSelector interface {
	Select(c *Clause) []bool
	Name() string
}

// NoSelection never selects anything: every literal is eligible for every
// inference, i.e. ordinary unrestricted binary resolution.
type NoSelection struct{}

func (NoSelection) Name() string { return "none" }

func (NoSelection) Select(c *Clause) []bool {
	return make([]bool, len(c.lits))
}

// SelectFirstNegative selects the first negative literal in the clause, if
// any.
type SelectFirstNegative struct{}

func (SelectFirstNegative) Name() string { return "first" }

func (SelectFirstNegative) Select(c *Clause) []bool {
	bitmap := make([]bool, len(c.lits))
	for i, l := range c.lits {
		if !l.positive {
			bitmap[i] = true
			break
		}
	}
	return bitmap
}

// SelectSmallestNegative selects the negative literal with the smallest
// weight (§4.5's f/v-weighted literal weight), breaking ties by the first
// occurrence.
type SelectSmallestNegative struct{ F, V int }

func (SelectSmallestNegative) Name() string { return "smallest" }

func (s SelectSmallestNegative) Select(c *Clause) []bool {
	f, v := defaultWeightConsts(s.F, s.V)
	return selectExtremeNegativeFV(c, f, v, true)
}

// SelectLargestNegative selects the negative literal with the largest
// weight, breaking ties by the first occurrence.
type SelectLargestNegative struct{ F, V int }

func (SelectLargestNegative) Name() string { return "largest" }

func (s SelectLargestNegative) Select(c *Clause) []bool {
	f, v := defaultWeightConsts(s.F, s.V)
	return selectExtremeNegativeFV(c, f, v, false)
}

// defaultWeightConsts applies §4.5's defaults (f=2, v=1) whenever the
// caller leaves F or V at its zero value.
func defaultWeightConsts(f, v int) (int, int) {
	if f == 0 {
		f = 2
	}
	if v == 0 {
		v = 1
	}
	return f, v
}

func selectExtremeNegativeFV(c *Clause, f, v int, smallest bool) []bool {
	bitmap := make([]bool, len(c.lits))
	best := -1
	bestW := 0
	for i, l := range c.lits {
		if l.positive {
			continue
		}
		w := l.weight(f, v)
		if best == -1 || (smallest && w < bestW) || (!smallest && w > bestW) {
			best = i
			bestW = w
		}
	}
	if best >= 0 {
		bitmap[best] = true
	}
	return bitmap
}

// NamedSelector looks up a LiteralSelector by the §6 -n CLI name
// ({first,smallest,largest,none}); this is the "closed variant with a
// lookup" §9 calls for instead of dynamic loading.
func NamedSelector(name string) (LiteralSelector, bool) {
	switch name {
	case "", "none":
		return NoSelection{}, true
	case "first":
		return SelectFirstNegative{}, true
	case "smallest":
		return SelectSmallestNegative{}, true
	case "largest":
		return SelectLargestNegative{}, true
	default:
		return nil, false
	}
}
