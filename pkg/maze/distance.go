package maze

import (
	"fmt"

	"github.com/Timwi/KtaneVoronoiMaze/pkg/sitegraph"
)

// Unknown marks a distance matrix entry that has not been resolved yet.
const Unknown = -1

// DistanceMatrix holds all-pairs shortest-path distances over the passable
// edges, counted in edges. It is symmetric with a zero diagonal.
type DistanceMatrix struct {
	n int
	d [][]int
}

// At returns the distance between sites a and b.
func (m *DistanceMatrix) At(a, b int) int {
	return m.d[a][b]
}

// NumSites returns the matrix dimension.
func (m *DistanceMatrix) NumSites() int {
	return m.n
}

// Rows returns the underlying table, row-major. Callers must not modify it.
func (m *DistanceMatrix) Rows() [][]int {
	return m.d
}

// ComputeDistances resolves the distance matrix for the given passable edges
// by iterative relaxation to a fixed point: any site adjacent (via a
// passable edge) to a site at known distance d from a reference site is at
// distance d+1, swept repeatedly until no entry is unknown. Over a spanning
// tree the fixed point is the exact unique-path distance.
func ComputeDistances(g *sitegraph.Graph, passable []int) (*DistanceMatrix, error) {
	n := g.NumSites()
	if n == 0 {
		return nil, fmt.Errorf("empty site graph: %w", ErrInvalidInput)
	}

	d := make([][]int, n)
	for i := range d {
		d[i] = make([]int, n)
		for j := range d[i] {
			d[i][j] = Unknown
		}
		d[i][i] = 0
	}
	for _, ei := range passable {
		e := g.Edge(ei)
		d[e.SiteA][e.SiteB] = 1
		d[e.SiteB][e.SiteA] = 1
	}

	unknown := n*n - n - 2*len(passable)
	for unknown > 0 {
		progressed := false
		for r := 0; r < n; r++ {
			for _, ei := range passable {
				e := g.Edge(ei)
				// Each resolution fills an entry and its mirror.
				if relax(d, r, e.SiteA, e.SiteB) {
					unknown -= 2
					progressed = true
				}
				if relax(d, r, e.SiteB, e.SiteA) {
					unknown -= 2
					progressed = true
				}
			}
		}
		if !progressed {
			return nil, fmt.Errorf("distance relaxation stalled with %d unresolved entries; passable edges do not span the sites: %w",
				unknown, ErrInvalidInput)
		}
	}

	return &DistanceMatrix{n: n, d: d}, nil
}

// relax sets d[r][to] (and its mirror) when d[r][from] is known and d[r][to]
// is not. Returns true if an entry was resolved.
func relax(d [][]int, r, from, to int) bool {
	if d[r][from] == Unknown || d[r][to] != Unknown {
		return false
	}
	d[r][to] = d[r][from] + 1
	d[to][r] = d[r][to]
	return true
}
