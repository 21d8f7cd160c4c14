package resolve

import "testing"

func TestFIFOPicksOldestID(t *testing.T) {
	cs := NewClauseSet()
	c1 := &Clause{id: 1}
	c2 := &Clause{id: 2}
	cs.InsertUnprocessed(c2)
	cs.InsertUnprocessed(c1)

	got := FIFO{}.PickGiven(cs)
	if got.ID() != 1 {
		t.Fatalf("FIFO should pick the smallest ID, got %d", got.ID())
	}
}

func TestSymbolCountPicksLightest(t *testing.T) {
	cs := NewClauseSet()
	heavy := &Clause{id: 1, weight: 10}
	light := &Clause{id: 2, weight: 2}
	cs.InsertUnprocessed(heavy)
	cs.InsertUnprocessed(light)

	got := SymbolCount{}.PickGiven(cs)
	if got.ID() != 2 {
		t.Fatalf("SymbolCount should pick the lightest clause, got id %d", got.ID())
	}
}

func TestPickGivenNRoundRobins(t *testing.T) {
	p := NewPickGivenN(3)

	var picks []string
	for i := 0; i < 6; i++ {
		cs := NewClauseSet()
		cs.InsertUnprocessed(&Clause{id: 1, weight: 5})
		cs.InsertUnprocessed(&Clause{id: 2, weight: 1})
		g := p.PickGiven(cs)
		if g.id == 2 {
			picks = append(picks, "weight")
		} else {
			picks = append(picks, "fifo")
		}
	}
	want := []string{"weight", "weight", "fifo", "weight", "weight", "fifo"}
	for i := range want {
		if picks[i] != want[i] {
			t.Fatalf("pick %d: want %s, got %s (full sequence %v)", i, want[i], picks[i], picks)
		}
	}
}

func TestNamedHeuristicParsesPickGivenN(t *testing.T) {
	h, ok := NamedHeuristic("PickGiven7")
	if !ok {
		t.Fatal("expected PickGiven7 to parse")
	}
	if h.Name() != "PickGiven7" {
		t.Fatalf("unexpected name %q", h.Name())
	}
}

func TestNamedHeuristicRejectsUnknown(t *testing.T) {
	if _, ok := NamedHeuristic("NotAHeuristic"); ok {
		t.Fatal("expected unknown heuristic name to be rejected")
	}
}

func TestNamedSelectorRoundTrip(t *testing.T) {
	for _, name := range []string{"none", "first", "smallest", "largest"} {
		s, ok := NamedSelector(name)
		if !ok {
			t.Fatalf("expected %q to resolve to a selector", name)
		}
		if s.Name() != name {
			t.Fatalf("selector %q reports name %q", name, s.Name())
		}
	}
}

func TestSelectFirstNegative(t *testing.T) {
	a := NewConst("a")
	c := NewClause(
		NewLiteral(true, "p", a),
		NewLiteral(false, "q", a),
		NewLiteral(false, "r", a),
	)
	bitmap := SelectFirstNegative{}.Select(c)
	if bitmap != nil && (bitmap[0] || !bitmap[1] || bitmap[2]) {
		t.Fatalf("expected only the first negative literal selected, got %v", bitmap)
	}
}
