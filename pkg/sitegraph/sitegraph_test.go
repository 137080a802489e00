package sitegraph

import (
	"testing"

	"github.com/Timwi/KtaneVoronoiMaze/pkg/geo"
)

func triangleSub() *Subdivision {
	return &Subdivision{
		Points:   []geo.Point2D{geo.Pt(0.2, 0.2), geo.Pt(0.8, 0.2), geo.Pt(0.5, 0.8)},
		Polygons: make([]geo.Polygon, 3),
		Edges: []Edge{
			{Start: geo.Pt(0.5, 0), End: geo.Pt(0.5, 0.5), SiteA: 0, SiteB: 1},
			{Start: geo.Pt(0.5, 0.5), End: geo.Pt(0, 1), SiteA: 0, SiteB: 2},
			{Start: geo.Pt(0.5, 0.5), End: geo.Pt(1, 1), SiteA: 1, SiteB: 2},
		},
	}
}

func TestEdgeOtherAndTouches(t *testing.T) {
	e := Edge{SiteA: 3, SiteB: 7}
	if !e.Touches(3) || !e.Touches(7) || e.Touches(5) {
		t.Error("Touches misreports adjacency")
	}
	if e.Other(3) != 7 || e.Other(7) != 3 {
		t.Error("Other misreports opposite site")
	}
}

func TestGraphEdgesTouching(t *testing.T) {
	g := NewGraph(triangleSub())
	for site := 0; site < 3; site++ {
		touching := g.EdgesTouching(site)
		if len(touching) != 2 {
			t.Errorf("site %d: expected 2 touching edges, got %d", site, len(touching))
		}
		for _, ei := range touching {
			if !g.Edge(ei).Touches(site) {
				t.Errorf("site %d: edge %d does not touch it", site, ei)
			}
		}
	}
}

func TestGraphConnected(t *testing.T) {
	if !NewGraph(triangleSub()).Connected() {
		t.Error("expected triangle graph to be connected")
	}

	sub := triangleSub()
	sub.Edges = sub.Edges[:1] // drop edges to site 2
	if NewGraph(sub).Connected() {
		t.Error("expected graph with isolated site to be disconnected")
	}
}
