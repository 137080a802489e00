package maze

import (
	"errors"
	"fmt"
	"time"

	"github.com/Timwi/KtaneVoronoiMaze/pkg/config"
	"github.com/Timwi/KtaneVoronoiMaze/pkg/geo"
	"github.com/Timwi/KtaneVoronoiMaze/pkg/layout"
	"github.com/Timwi/KtaneVoronoiMaze/pkg/sitegraph"
	"github.com/Timwi/KtaneVoronoiMaze/pkg/validation"
)

// Result is the complete output of one generation pass. All parts are
// internally consistent: the passable edges form a spanning tree over the
// subdivision's sites, the distances are exact over that tree, and the
// waypoints satisfy the pairwise distance constraint.
type Result struct {
	Subdivision *sitegraph.Subdivision `json:"subdivision"`
	Passable    []int                  `json:"passable"` // indices into Subdivision.Edges
	Distances   [][]int                `json:"distances"`
	Start       int                    `json:"start"`
	Waypoints   []int                  `json:"waypoints"` // first entry is Start
	LabelPoints []geo.Point2D          `json:"label_points"`
	Metadata    Metadata               `json:"metadata"`
}

// Metadata records how the result was produced.
type Metadata struct {
	Seed          int64  `json:"seed"`
	GeneratedAt   string `json:"generated_at"`
	Regenerations int    `json:"regenerations"`
}

// PassableEdges returns the geometry of the spanning tree's edges.
func (r *Result) PassableEdges() []sitegraph.Edge {
	edges := make([]sitegraph.Edge, len(r.Passable))
	for i, ei := range r.Passable {
		edges[i] = r.Subdivision.Edges[ei]
	}
	return edges
}

// Generate runs the full pipeline: layout selection, spanning-tree
// construction, distance resolution, and waypoint placement. When waypoint
// placement exhausts its retry budget the entire pipeline restarts from
// layout selection; there is no cap on restarts, so a configuration whose
// distance constraint can never be met does not terminate. The result is
// deterministic given the sequence of draws from rnd.
func Generate(cfg *config.Config, gen sitegraph.Generator, rnd Rand, seed int64) (*Result, *validation.Report, error) {
	report := validation.NewReport()

	opts := layout.Options{
		Sites:          cfg.Sites,
		Width:          cfg.Bounds.Width,
		Height:         cfg.Bounds.Height,
		IncludeBorder:  cfg.IncludeBorder,
		MinSeparation:  cfg.MinSeparation,
		Trials:         cfg.Trials,
		LabelClearance: cfg.Labels.Clearance,
		LabelPrecision: cfg.Labels.Precision,
	}
	if cfg.Exclusion.Radius > 0 {
		opts.Exclusion = layout.AnchorExclusion(
			geo.Pt(cfg.Exclusion.AnchorX, cfg.Exclusion.AnchorY), cfg.Exclusion.Radius)
	}

	regenerations := 0
	for {
		sub, layoutReport, err := layout.Select(opts, gen, rnd)
		report.Merge(layoutReport)
		if err != nil {
			return nil, report, fmt.Errorf("selecting layout: %w", err)
		}

		graph := sitegraph.NewGraph(sub)
		start := rnd.Intn(graph.NumSites())
		passable, err := BuildSpanningTree(graph, start, rnd)
		if err != nil {
			return nil, report, fmt.Errorf("building spanning tree: %w", err)
		}

		distances, err := ComputeDistances(graph, passable)
		if err != nil {
			return nil, report, fmt.Errorf("computing distances: %w", err)
		}

		waypoints, err := PlaceWaypoints(distances, cfg.Waypoints.Count,
			cfg.Waypoints.MinDistance, rnd, cfg.Waypoints.RetryBudget)
		if err == nil {
			labels, lerr := labelPoints(sub, cfg.Labels.Precision)
			if lerr != nil {
				return nil, report, fmt.Errorf("computing label points: %w", lerr)
			}
			if regenerations > 0 {
				report.AddInfo(validation.Result{
					Level:   validation.LevelGeneration,
					Message: fmt.Sprintf("regenerated layout %d times before placement succeeded", regenerations),
				})
			}
			return &Result{
				Subdivision: sub,
				Passable:    passable,
				Distances:   distances.Rows(),
				Start:       waypoints[0],
				Waypoints:   waypoints,
				LabelPoints: labels,
				Metadata: Metadata{
					Seed:          seed,
					GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
					Regenerations: regenerations,
				},
			}, report, nil
		}
		if !errors.Is(err, ErrPlacementExhausted) {
			return nil, report, fmt.Errorf("placing waypoints: %w", err)
		}
		regenerations++
	}
}

// labelPoints computes the pole of inaccessibility for every site polygon.
func labelPoints(sub *sitegraph.Subdivision, precision float64) ([]geo.Point2D, error) {
	points := make([]geo.Point2D, len(sub.Polygons))
	for i, poly := range sub.Polygons {
		if poly.IsEmpty() {
			continue
		}
		lp, err := poly.LabelPoint(precision)
		if err != nil {
			return nil, fmt.Errorf("site %d: %w", i, err)
		}
		points[i] = lp
	}
	return points, nil
}
