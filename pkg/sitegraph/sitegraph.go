// Package sitegraph wraps a planar subdivision of labeled regions ("sites")
// as an explicit graph: sites are nodes and shared polygon boundaries are
// edges annotated with the two site indices they separate.
package sitegraph

import (
	"github.com/Timwi/KtaneVoronoiMaze/pkg/geo"
)

// Edge is one shared boundary between two sites. Point order is preserved
// for rendering; adjacency is undirected.
type Edge struct {
	Start geo.Point2D `json:"start"`
	End   geo.Point2D `json:"end"`
	SiteA int         `json:"site_a"`
	SiteB int         `json:"site_b"`
}

// Length returns the geometric length of the edge.
func (e Edge) Length() float64 {
	return e.Start.Distance(e.End)
}

// Touches reports whether the edge borders the given site.
func (e Edge) Touches(site int) bool {
	return e.SiteA == site || e.SiteB == site
}

// Other returns the site on the opposite side of the edge from the given
// site. The caller must ensure the edge touches site.
func (e Edge) Other(site int) int {
	if e.SiteA == site {
		return e.SiteB
	}
	return e.SiteA
}

// Midpoint returns the midpoint of the edge geometry.
func (e Edge) Midpoint() geo.Point2D {
	return geo.MidPoint(e.Start, e.End)
}

// Subdivision is an externally produced planar subdivision: one convex
// polygon per input point, plus the list of shared boundary edges.
type Subdivision struct {
	Points   []geo.Point2D `json:"points"`
	Polygons []geo.Polygon `json:"polygons"`
	Edges    []Edge        `json:"edges"`
}

// NumSites returns the number of sites in the subdivision.
func (s *Subdivision) NumSites() int {
	return len(s.Polygons)
}

// Generator produces a planar subdivision for a set of distinct points
// inside a bounding rectangle of the given width and height. With
// includeBorder set, polygons clamped by the bounding rectangle are
// included; otherwise unbounded border regions are omitted.
type Generator interface {
	Subdivide(points []geo.Point2D, width, height float64, includeBorder bool) (*Subdivision, error)
}

// Graph is the explicit adjacency view over a subdivision.
type Graph struct {
	sub         *Subdivision
	edgesBySite [][]int
}

// NewGraph builds the adjacency index for a subdivision.
func NewGraph(sub *Subdivision) *Graph {
	edgesBySite := make([][]int, sub.NumSites())
	for i, e := range sub.Edges {
		if e.SiteA >= 0 && e.SiteA < len(edgesBySite) {
			edgesBySite[e.SiteA] = append(edgesBySite[e.SiteA], i)
		}
		if e.SiteB >= 0 && e.SiteB < len(edgesBySite) {
			edgesBySite[e.SiteB] = append(edgesBySite[e.SiteB], i)
		}
	}
	return &Graph{sub: sub, edgesBySite: edgesBySite}
}

// Subdivision returns the wrapped subdivision.
func (g *Graph) Subdivision() *Subdivision {
	return g.sub
}

// NumSites returns the number of sites.
func (g *Graph) NumSites() int {
	return g.sub.NumSites()
}

// Edge returns the edge with the given index.
func (g *Graph) Edge(i int) Edge {
	return g.sub.Edges[i]
}

// NumEdges returns the number of boundary edges.
func (g *Graph) NumEdges() int {
	return len(g.sub.Edges)
}

// EdgesTouching returns the indices of all edges bordering the given site.
func (g *Graph) EdgesTouching(site int) []int {
	return g.edgesBySite[site]
}

// Connected reports whether every site is reachable from site 0 through
// shared edges.
func (g *Graph) Connected() bool {
	n := g.NumSites()
	if n == 0 {
		return true
	}
	visited := make([]bool, n)
	stack := []int{0}
	visited[0] = true
	seen := 1
	for len(stack) > 0 {
		site := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, ei := range g.edgesBySite[site] {
			next := g.sub.Edges[ei].Other(site)
			if next >= 0 && next < n && !visited[next] {
				visited[next] = true
				seen++
				stack = append(stack, next)
			}
		}
	}
	return seen == n
}
