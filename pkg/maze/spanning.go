package maze

import (
	"fmt"

	"github.com/Timwi/KtaneVoronoiMaze/pkg/sitegraph"
)

// BuildSpanningTree grows a random spanning tree over the site graph by
// frontier expansion: starting from startSite, it repeatedly commits a
// uniformly random frontier edge, absorbs the site on its far side, and
// extends the frontier with that site's edges, pruning any edge whose both
// sides are already absorbed. The returned edge indices form a spanning
// tree: exactly N-1 edges, no cycles, every site reachable.
func BuildSpanningTree(g *sitegraph.Graph, startSite int, rnd Rand) ([]int, error) {
	n := g.NumSites()
	if n == 0 {
		return nil, fmt.Errorf("empty site graph: %w", ErrInvalidInput)
	}
	if startSite < 0 || startSite >= n {
		return nil, fmt.Errorf("start site %d out of range [0,%d): %w", startSite, n, ErrInvalidInput)
	}

	visited := make([]bool, n)
	inFrontier := make([]bool, g.NumEdges())
	visited[startSite] = true

	var frontier []int
	extend := func(site int) {
		for _, ei := range g.EdgesTouching(site) {
			if !inFrontier[ei] {
				inFrontier[ei] = true
				frontier = append(frontier, ei)
			}
		}
	}
	extend(startSite)

	passable := make([]int, 0, n-1)
	for len(frontier) > 0 {
		pick := rnd.Intn(len(frontier))
		ei := frontier[pick]
		frontier[pick] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		e := g.Edge(ei)
		// Stale edges are pruned below, so exactly one side is unvisited.
		newSite := e.SiteA
		if visited[newSite] {
			newSite = e.SiteB
		}
		passable = append(passable, ei)
		visited[newSite] = true
		extend(newSite)

		// Drop frontier edges whose both sides are now visited; committing
		// one later would create a cycle.
		kept := frontier[:0]
		for _, fi := range frontier {
			fe := g.Edge(fi)
			if visited[fe.SiteA] && visited[fe.SiteB] {
				inFrontier[fi] = false
				continue
			}
			kept = append(kept, fi)
		}
		frontier = kept
	}

	if len(passable) != n-1 {
		return nil, fmt.Errorf("spanning tree covered %d of %d sites; site graph not connected: %w",
			len(passable)+1, n, ErrInvalidInput)
	}
	return passable, nil
}
