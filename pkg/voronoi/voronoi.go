// Package voronoi provides the default planar-subdivision generator: given
// distinct seed points in a bounding rectangle it returns one convex cell
// polygon per seed and the list of shared boundary edges tagged with the two
// cell indices they separate.
//
// Cell geometry uses half-plane intersection (robust for small n); adjacency
// uses Bowyer-Watson Delaunay triangulation.
package voronoi

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/Timwi/KtaneVoronoiMaze/pkg/geo"
	"github.com/Timwi/KtaneVoronoiMaze/pkg/sitegraph"
)

// ErrInvalidSeeds indicates the seed points are unusable: empty, coincident,
// or outside the bounding rectangle.
var ErrInvalidSeeds = errors.New("voronoi: invalid seed points")

// bisectorEps is the tolerance for deciding that a cell edge endpoint is
// equidistant from two seeds, i.e. lies on their perpendicular bisector.
const bisectorEps = 1e-6

// Generator computes subdivisions by half-plane intersection. The zero value
// is ready to use.
type Generator struct{}

// New returns a ready-to-use generator.
func New() *Generator {
	return &Generator{}
}

var _ sitegraph.Generator = (*Generator)(nil)

// Subdivide computes the subdivision of the rectangle [0,width]x[0,height]
// induced by the given seed points. With includeBorder unset, cells clamped
// by the bounding rectangle are left empty and their edges omitted.
func (g *Generator) Subdivide(points []geo.Point2D, width, height float64, includeBorder bool) (*sitegraph.Subdivision, error) {
	n := len(points)
	if n == 0 {
		return nil, fmt.Errorf("no seed points: %w", ErrInvalidSeeds)
	}
	for i, p := range points {
		if p.X < 0 || p.X > width || p.Y < 0 || p.Y > height {
			return nil, fmt.Errorf("seed %d (%v) outside bounds %gx%g: %w", i, p, width, height, ErrInvalidSeeds)
		}
		for j := 0; j < i; j++ {
			if p.Distance(points[j]) < bisectorEps {
				return nil, fmt.Errorf("seeds %d and %d coincide: %w", j, i, ErrInvalidSeeds)
			}
		}
	}

	bounds := geo.Rect(0, 0, width, height)
	polygons := make([]geo.Polygon, n)
	for i := 0; i < n; i++ {
		polygons[i] = cellByHalfPlanes(i, points, bounds)
	}

	border := make([]bool, n)
	if !includeBorder {
		for i, poly := range polygons {
			if touchesRect(poly, width, height) {
				border[i] = true
				polygons[i] = geo.Polygon{}
			}
		}
	}

	neighbors := delaunayNeighbors(points, bounds)
	var edges []sitegraph.Edge
	for i := 0; i < n; i++ {
		for _, j := range neighbors[i] {
			if j <= i || border[i] || border[j] {
				continue
			}
			if start, end, ok := sharedEdge(polygons[i], points[i], points[j]); ok {
				edges = append(edges, sitegraph.Edge{Start: start, End: end, SiteA: i, SiteB: j})
			}
		}
	}

	return &sitegraph.Subdivision{
		Points:   points,
		Polygons: polygons,
		Edges:    edges,
	}, nil
}

// cellByHalfPlanes computes one cell by clipping the bounds against the
// perpendicular bisector of the seed and every other seed.
func cellByHalfPlanes(seedIdx int, seeds []geo.Point2D, bounds geo.Polygon) geo.Polygon {
	cell := bounds
	seed := seeds[seedIdx]
	for j, other := range seeds {
		if j == seedIdx {
			continue
		}
		mid := geo.MidPoint(seed, other)
		dir := other.Sub(seed).Perp()
		cell = geo.ClipToHalfPlane(cell, mid, mid.Add(dir))
		if cell.IsEmpty() {
			break
		}
	}
	return cell
}

// sharedEdge finds the edge of cell that lies on the perpendicular bisector
// of seeds a and b: both endpoints equidistant from the two seeds.
func sharedEdge(cell geo.Polygon, a, b geo.Point2D) (geo.Point2D, geo.Point2D, bool) {
	n := cell.Len()
	for i := 0; i < n; i++ {
		start, end := cell.Edge(i)
		if onBisector(start, a, b) && onBisector(end, a, b) && start.Distance(end) > bisectorEps {
			return start, end, true
		}
	}
	return geo.Point2D{}, geo.Point2D{}, false
}

func onBisector(p, a, b geo.Point2D) bool {
	return math.Abs(p.Distance(a)-p.Distance(b)) < bisectorEps
}

// touchesRect reports whether any vertex of the polygon lies on the bounding
// rectangle, i.e. the cell was clamped rather than closed by bisectors.
func touchesRect(poly geo.Polygon, width, height float64) bool {
	for _, v := range poly.Vertices {
		if v.X < bisectorEps || v.X > width-bisectorEps ||
			v.Y < bisectorEps || v.Y > height-bisectorEps {
			return true
		}
	}
	return false
}

// delaunayNeighbors computes the Delaunay triangulation of the seeds via
// Bowyer-Watson and returns, per seed, the sorted indices of adjacent seeds.
func delaunayNeighbors(seeds []geo.Point2D, bounds geo.Polygon) [][]int {
	n := len(seeds)
	if n < 2 {
		return make([][]int, n)
	}

	// Jitter to avoid degeneracy.
	pts := make([]geo.Point2D, n)
	for i, s := range seeds {
		pts[i] = geo.Point2D{
			X: s.X + float64(i)*1e-8,
			Y: s.Y + float64(i)*1e-8,
		}
	}

	// Super-triangle.
	bbMin, bbMax := bounds.BoundingBox()
	dx := bbMax.X - bbMin.X
	dy := bbMax.Y - bbMin.Y
	maxD := math.Max(dx, dy) * 4

	superA := geo.Point2D{X: bbMin.X - maxD, Y: bbMin.Y - maxD}
	superB := geo.Point2D{X: bbMax.X + maxD, Y: bbMin.Y - maxD}
	superC := geo.Point2D{X: (bbMin.X + bbMax.X) / 2, Y: bbMax.Y + maxD}

	allPts := make([]geo.Point2D, n+3)
	copy(allPts, pts)
	allPts[n] = superA
	allPts[n+1] = superB
	allPts[n+2] = superC

	type triangle struct{ v [3]int }
	triangles := []triangle{{v: [3]int{n, n + 1, n + 2}}}

	for pi := 0; pi < n; pi++ {
		p := allPts[pi]
		bad := make([]int, 0)
		for ti, t := range triangles {
			if inCircumcircle(p, allPts[t.v[0]], allPts[t.v[1]], allPts[t.v[2]]) {
				bad = append(bad, ti)
			}
		}

		type edge struct{ a, b int }
		edgeCount := make(map[edge]int)
		for _, ti := range bad {
			t := triangles[ti]
			for k := 0; k < 3; k++ {
				e := edge{t.v[k], t.v[(k+1)%3]}
				if e.a > e.b {
					e.a, e.b = e.b, e.a
				}
				edgeCount[e]++
			}
		}

		boundaryEdges := make([]edge, 0)
		for _, ti := range bad {
			t := triangles[ti]
			for k := 0; k < 3; k++ {
				e := edge{t.v[k], t.v[(k+1)%3]}
				eNorm := e
				if eNorm.a > eNorm.b {
					eNorm.a, eNorm.b = eNorm.b, eNorm.a
				}
				if edgeCount[eNorm] == 1 {
					boundaryEdges = append(boundaryEdges, e)
				}
			}
		}

		sort.Sort(sort.Reverse(sort.IntSlice(bad)))
		for _, ti := range bad {
			triangles[ti] = triangles[len(triangles)-1]
			triangles = triangles[:len(triangles)-1]
		}

		for _, e := range boundaryEdges {
			triangles = append(triangles, triangle{v: [3]int{e.a, e.b, pi}})
		}
	}

	// Extract neighbor map from non-super triangles.
	neighborSet := make([]map[int]bool, n)
	for i := range neighborSet {
		neighborSet[i] = make(map[int]bool)
	}
	for _, t := range triangles {
		if t.v[0] >= n || t.v[1] >= n || t.v[2] >= n {
			continue
		}
		for k := 0; k < 3; k++ {
			a, b := t.v[k], t.v[(k+1)%3]
			neighborSet[a][b] = true
			neighborSet[b][a] = true
		}
	}

	result := make([][]int, n)
	for i, ns := range neighborSet {
		keys := make([]int, 0, len(ns))
		for k := range ns {
			keys = append(keys, k)
		}
		sort.Ints(keys)
		result[i] = keys
	}
	return result
}

// inCircumcircle returns true if point p is inside the circumcircle of
// triangle (a,b,c). Uses the determinant test.
func inCircumcircle(p, a, b, c geo.Point2D) bool {
	ax, ay := a.X-p.X, a.Y-p.Y
	bx, by := b.X-p.X, b.Y-p.Y
	cx, cy := c.X-p.X, c.Y-p.Y

	det := ax*(by*(cx*cx+cy*cy)-cy*(bx*bx+by*by)) -
		ay*(bx*(cx*cx+cy*cy)-cx*(bx*bx+by*by)) +
		(ax*ax+ay*ay)*(bx*cy-cx*by)

	orient := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if orient < 0 {
		det = -det
	}
	return det > 0
}
