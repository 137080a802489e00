package layout

import (
	"math/rand"
	"testing"

	"github.com/Timwi/KtaneVoronoiMaze/pkg/geo"
	"github.com/Timwi/KtaneVoronoiMaze/pkg/sitegraph"
)

// stubGenerator cycles through canned subdivisions, ignoring the sampled
// points.
type stubGenerator struct {
	subs  []*sitegraph.Subdivision
	calls int
}

func (s *stubGenerator) Subdivide([]geo.Point2D, float64, float64, bool) (*sitegraph.Subdivision, error) {
	sub := s.subs[s.calls%len(s.subs)]
	s.calls++
	return sub, nil
}

// twoSiteSub builds a minimal connected subdivision with a single shared
// edge of the given length.
func twoSiteSub(edgeLen float64) *sitegraph.Subdivision {
	return &sitegraph.Subdivision{
		Points: []geo.Point2D{geo.Pt(0.25, 0.5), geo.Pt(0.75, 0.5)},
		Polygons: []geo.Polygon{
			geo.Rect(0, 0, 0.5, 1),
			geo.Rect(0.5, 0, 1, 1),
		},
		Edges: []sitegraph.Edge{
			{Start: geo.Pt(0.5, 0), End: geo.Pt(0.5, edgeLen), SiteA: 0, SiteB: 1},
		},
	}
}

func testOptions(trials int) Options {
	return Options{
		Sites:         2,
		Width:         1,
		Height:        1,
		MinSeparation: 0.1,
		Trials:        trials,
	}
}

func TestSelectKeepsBestScore(t *testing.T) {
	gen := &stubGenerator{subs: []*sitegraph.Subdivision{
		twoSiteSub(0.2),
		twoSiteSub(0.5),
		twoSiteSub(0.3),
	}}
	rnd := rand.New(rand.NewSource(1))

	sub, report, err := Select(testOptions(3), gen, rnd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.Valid {
		t.Errorf("expected valid report: %s", report.Summary)
	}
	if got := sub.Edges[0].Length(); got != 0.5 {
		t.Errorf("expected the candidate with shortest edge 0.5, got %f", got)
	}
}

func TestSelectExtendsTrialsUntilAccepted(t *testing.T) {
	// The anchor sits on the first candidate's edge; only the second
	// candidate's short edge stays clear of it.
	reject := twoSiteSub(1.0)
	accept := twoSiteSub(0.3)
	gen := &stubGenerator{subs: []*sitegraph.Subdivision{reject, reject, accept}}

	opts := testOptions(1)
	opts.Exclusion = AnchorExclusion(geo.Pt(0.5, 0.9), 0.1)
	rnd := rand.New(rand.NewSource(1))

	sub, _, err := Select(opts, gen, rnd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.calls != 3 {
		t.Errorf("expected selection to extend to 3 trials, got %d", gen.calls)
	}
	if got := sub.Edges[0].Length(); got != 0.3 {
		t.Errorf("expected the accepted candidate, got edge length %f", got)
	}
}

func TestSelectRejectsDisconnected(t *testing.T) {
	disconnected := &sitegraph.Subdivision{
		Points:   []geo.Point2D{geo.Pt(0.2, 0.5), geo.Pt(0.5, 0.5), geo.Pt(0.8, 0.5)},
		Polygons: make([]geo.Polygon, 3),
		Edges: []sitegraph.Edge{
			{Start: geo.Pt(0.35, 0), End: geo.Pt(0.35, 1), SiteA: 0, SiteB: 1},
		},
	}
	connected := twoSiteSub(0.4)
	gen := &stubGenerator{subs: []*sitegraph.Subdivision{disconnected, connected}}
	rnd := rand.New(rand.NewSource(1))

	sub, _, err := Select(testOptions(2), gen, rnd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.NumSites() != 2 {
		t.Error("expected the disconnected candidate to be rejected")
	}
}

func TestSamplePoints(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	pts := SamplePoints(20, 1, 1, 0.1, rnd)
	if len(pts) != 20 {
		t.Fatalf("expected 20 points, got %d", len(pts))
	}
	for i, p := range pts {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			t.Errorf("point %d (%v) outside unit square", i, p)
		}
		for j := 0; j < i; j++ {
			if p.Distance(pts[j]) < 0.1 {
				t.Errorf("points %d and %d closer than min separation: %f", j, i, p.Distance(pts[j]))
			}
		}
	}
}
