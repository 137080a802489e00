package maze

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/Timwi/KtaneVoronoiMaze/pkg/geo"
	"github.com/Timwi/KtaneVoronoiMaze/pkg/sitegraph"
)

// gridGraph builds a cols x rows grid of sites with an edge between
// horizontal and vertical neighbors. Edge geometry is nominal.
func gridGraph(cols, rows int) *sitegraph.Graph {
	sub := &sitegraph.Subdivision{}
	site := func(c, r int) int { return r*cols + c }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			sub.Points = append(sub.Points, geo.Pt(float64(c), float64(r)))
			sub.Polygons = append(sub.Polygons, geo.Polygon{})
			if c > 0 {
				sub.Edges = append(sub.Edges, sitegraph.Edge{
					Start: geo.Pt(float64(c), float64(r)), End: geo.Pt(float64(c), float64(r)+1),
					SiteA: site(c-1, r), SiteB: site(c, r),
				})
			}
			if r > 0 {
				sub.Edges = append(sub.Edges, sitegraph.Edge{
					Start: geo.Pt(float64(c), float64(r)), End: geo.Pt(float64(c)+1, float64(r)),
					SiteA: site(c, r-1), SiteB: site(c, r),
				})
			}
		}
	}
	return sitegraph.NewGraph(sub)
}

// pathGraph builds n sites in a row connected consecutively.
func pathGraph(n int) *sitegraph.Graph {
	sub := &sitegraph.Subdivision{}
	for i := 0; i < n; i++ {
		sub.Points = append(sub.Points, geo.Pt(float64(i), 0))
		sub.Polygons = append(sub.Polygons, geo.Polygon{})
		if i > 0 {
			sub.Edges = append(sub.Edges, sitegraph.Edge{
				Start: geo.Pt(float64(i), 0), End: geo.Pt(float64(i), 1),
				SiteA: i - 1, SiteB: i,
			})
		}
	}
	return sitegraph.NewGraph(sub)
}

// reachable counts the sites reachable from start over the passable edges.
func reachable(g *sitegraph.Graph, passable []int, start int) int {
	adj := make(map[int][]int)
	for _, ei := range passable {
		e := g.Edge(ei)
		adj[e.SiteA] = append(adj[e.SiteA], e.SiteB)
		adj[e.SiteB] = append(adj[e.SiteB], e.SiteA)
	}
	visited := map[int]bool{start: true}
	stack := []int{start}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range adj[s] {
			if !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
		}
	}
	return len(visited)
}

func TestBuildSpanningTree(t *testing.T) {
	g := gridGraph(3, 3)
	for seed := int64(1); seed <= 5; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		passable, err := BuildSpanningTree(g, 0, rnd)
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		if len(passable) != g.NumSites()-1 {
			t.Errorf("seed %d: expected %d passable edges, got %d", seed, g.NumSites()-1, len(passable))
		}
		if got := reachable(g, passable, 0); got != g.NumSites() {
			t.Errorf("seed %d: expected all %d sites reachable, got %d", seed, g.NumSites(), got)
		}
		// N-1 edges + full reachability implies no cycle.
	}
}

func TestBuildSpanningTreeStartOutOfRange(t *testing.T) {
	g := pathGraph(3)
	rnd := rand.New(rand.NewSource(1))
	if _, err := BuildSpanningTree(g, 7, rnd); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestBuildSpanningTreeDisconnected(t *testing.T) {
	// Two components: 0-1 and 2-3.
	sub := &sitegraph.Subdivision{
		Points:   []geo.Point2D{{}, {}, {}, {}},
		Polygons: make([]geo.Polygon, 4),
		Edges: []sitegraph.Edge{
			{SiteA: 0, SiteB: 1},
			{SiteA: 2, SiteB: 3},
		},
	}
	g := sitegraph.NewGraph(sub)
	rnd := rand.New(rand.NewSource(1))
	if _, err := BuildSpanningTree(g, 0, rnd); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for disconnected graph, got %v", err)
	}
}
