package maze

import (
	"errors"
	"testing"
)

func TestComputeDistancesPath(t *testing.T) {
	g := pathGraph(4)
	passable := []int{0, 1, 2}
	m, err := ComputeDistances(g, passable)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := m.At(0, 3); got != 3 {
		t.Errorf("expected distance(a,d) == 3, got %d", got)
	}
	for i := 0; i < m.NumSites(); i++ {
		if m.At(i, i) != 0 {
			t.Errorf("expected zero diagonal at %d, got %d", i, m.At(i, i))
		}
		for j := 0; j < m.NumSites(); j++ {
			if m.At(i, j) != m.At(j, i) {
				t.Errorf("asymmetry at (%d,%d): %d vs %d", i, j, m.At(i, j), m.At(j, i))
			}
			if m.At(i, j) == Unknown {
				t.Errorf("unresolved entry at (%d,%d)", i, j)
			}
		}
	}
	for _, ei := range passable {
		e := g.Edge(ei)
		if m.At(e.SiteA, e.SiteB) != 1 {
			t.Errorf("expected distance 1 across passable edge %d, got %d", ei, m.At(e.SiteA, e.SiteB))
		}
	}
}

func TestComputeDistancesSpanningTree(t *testing.T) {
	g := gridGraph(3, 3)
	// A comb-shaped spanning tree over the grid: bottom row plus columns.
	var passable []int
	for i := 0; i < g.NumEdges(); i++ {
		e := g.Edge(i)
		// Keep bottom-row horizontals and all verticals.
		if e.SiteB-e.SiteA == 3 || (e.SiteB < 3 && e.SiteB-e.SiteA == 1) {
			passable = append(passable, i)
		}
	}
	m, err := ComputeDistances(g, passable)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Corner-to-corner through the comb: down 2, across 2, up 2.
	if got := m.At(6, 8); got != 6 {
		t.Errorf("expected distance 6 between top corners, got %d", got)
	}
}

func TestComputeDistancesNotSpanning(t *testing.T) {
	g := pathGraph(4)
	if _, err := ComputeDistances(g, []int{0, 2}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput when passable edges do not span, got %v", err)
	}
}
