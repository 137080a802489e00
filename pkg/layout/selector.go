// Package layout selects the best site layout from repeated random trials.
//
// Each trial samples random seed points in the bounding rectangle, requests
// a planar subdivision for them, and scores the candidate by the length of
// its shortest boundary edge (longer is better: it avoids razor-thin rooms).
// Optional exclusion checks reject candidates whose edges crowd an anchor
// point or a site label.
package layout

import (
	"fmt"

	"github.com/Timwi/KtaneVoronoiMaze/pkg/geo"
	"github.com/Timwi/KtaneVoronoiMaze/pkg/seq"
	"github.com/Timwi/KtaneVoronoiMaze/pkg/sitegraph"
	"github.com/Timwi/KtaneVoronoiMaze/pkg/validation"
)

// Rand is the random source consumed by the selector.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// EdgeFilter rejects a candidate layout when it returns false for any of the
// layout's boundary edges.
type EdgeFilter func(e sitegraph.Edge) bool

// Options configures layout selection.
type Options struct {
	Sites         int
	Width, Height float64
	IncludeBorder bool
	MinSeparation float64
	Trials        int

	// Exclusion, when non-nil, must accept every boundary edge for a
	// candidate to be kept. Candidates failing it do not count against
	// Trials: selection keeps sampling until at least one candidate is
	// accepted, so a filter that can never be satisfied for the given
	// site count does not terminate.
	Exclusion EdgeFilter

	// LabelClearance, when positive, additionally rejects candidates where
	// any boundary edge passes within this distance of any site's label
	// point, guaranteeing label readability.
	LabelClearance float64
	LabelPrecision float64
}

// AnchorExclusion returns an EdgeFilter that rejects any edge passing within
// radius of the anchor point.
func AnchorExclusion(anchor geo.Point2D, radius float64) EdgeFilter {
	return func(e sitegraph.Edge) bool {
		return geo.DistanceToSegment(anchor, e.Start, e.End) >= radius
	}
}

// Select runs up to opts.Trials independent trials and returns the accepted
// candidate with the longest shortest-edge. When an exclusion filter is set
// and no candidate passed it within the budget, trials are extended until
// one does.
func Select(opts Options, gen sitegraph.Generator, rnd Rand) (*sitegraph.Subdivision, *validation.Report, error) {
	report := validation.NewReport()
	if opts.Trials < 1 {
		opts.Trials = 1
	}

	var best *sitegraph.Subdivision
	bestScore := 0.0
	trials := 0
	rejected := 0

	for trials < opts.Trials || best == nil {
		trials++
		points := SamplePoints(opts.Sites, opts.Width, opts.Height, opts.MinSeparation, rnd)
		sub, err := gen.Subdivide(points, opts.Width, opts.Height, opts.IncludeBorder)
		if err != nil {
			return nil, report, fmt.Errorf("subdividing trial %d: %w", trials, err)
		}

		score, ok := scoreCandidate(sub, opts)
		if !ok {
			rejected++
			continue
		}
		if best == nil || score > bestScore {
			best, bestScore = sub, score
		}
	}

	report.AddInfo(validation.Result{
		Level: validation.LevelGeneration,
		Message: fmt.Sprintf("selected layout after %d trials (%d rejected), shortest edge %.4f",
			trials, rejected, bestScore),
	})
	return best, report, nil
}

// scoreCandidate returns the candidate's score (shortest boundary edge
// length) and whether the candidate is acceptable.
func scoreCandidate(sub *sitegraph.Subdivision, opts Options) (float64, bool) {
	if len(sub.Edges) == 0 {
		return 0, false
	}
	if !sitegraph.NewGraph(sub).Connected() {
		return 0, false
	}

	if opts.Exclusion != nil {
		for _, e := range sub.Edges {
			if !opts.Exclusion(e) {
				return 0, false
			}
		}
	}

	if opts.LabelClearance > 0 && !labelsClear(sub, opts.LabelClearance, opts.LabelPrecision) {
		return 0, false
	}

	_, shortest, err := seq.MinBy(sub.Edges, func(e sitegraph.Edge) float64 {
		return e.Length()
	})
	if err != nil {
		return 0, false
	}
	return shortest.Length(), true
}

// labelsClear checks every boundary edge against every site's label point.
func labelsClear(sub *sitegraph.Subdivision, clearance, precision float64) bool {
	for _, poly := range sub.Polygons {
		if poly.IsEmpty() {
			continue
		}
		anchor, err := poly.LabelPoint(precision)
		if err != nil {
			return false
		}
		for _, e := range sub.Edges {
			if geo.DistanceToSegment(anchor, e.Start, e.End) < clearance {
				return false
			}
		}
	}
	return true
}

// SamplePoints draws n uniform points in the rectangle [0,w]x[0,h],
// rejecting and resampling any candidate closer than minSep to an accepted
// point, until exactly n points are accepted.
func SamplePoints(n int, w, h, minSep float64, rnd Rand) []geo.Point2D {
	points := make([]geo.Point2D, 0, n)
	for len(points) < n {
		cand := geo.Pt(rnd.Float64()*w, rnd.Float64()*h)
		tooClose := false
		for _, p := range points {
			if p.Distance(cand) < minSep {
				tooClose = true
				break
			}
		}
		if !tooClose {
			points = append(points, cand)
		}
	}
	return points
}
