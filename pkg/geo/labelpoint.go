package geo

import (
	"fmt"
	"math"

	"github.com/Timwi/KtaneVoronoiMaze/pkg/seq"
)

// labelCell is one square cell in the label-point search: center, half-extent
// h, signed distance d from the center to the outline, and the upper bound
// max on the distance any point inside the cell could achieve.
type labelCell struct {
	center Point2D
	h      float64
	d      float64
	max    float64
}

func newLabelCell(p Polygon, center Point2D, h float64) labelCell {
	d := p.SignedDistanceToOutline(center)
	return labelCell{
		center: center,
		h:      h,
		d:      d,
		max:    d + h*math.Sqrt2,
	}
}

// LabelPoint returns the pole of inaccessibility: the point inside the
// polygon farthest from every edge, to within the given absolute precision.
// It runs a branch-and-bound search over square cells ordered by their best
// possible distance, subdividing any cell that could still beat the best
// candidate by more than precision.
func (p Polygon) LabelPoint(precision float64) (Point2D, error) {
	if p.IsEmpty() {
		return Point2D{}, fmt.Errorf("label point of %d vertices: %w", p.Len(), ErrDegenerateGeometry)
	}
	if precision <= 0 {
		precision = 1e-6
	}

	minP, maxP := p.BoundingBox()
	width := maxP.X - minP.X
	height := maxP.Y - minP.Y
	cellSize := math.Min(width, height) / 2
	if cellSize <= 0 {
		return Point2D{}, fmt.Errorf("label point of zero-extent polygon: %w", ErrDegenerateGeometry)
	}

	queue := seq.NewPriorityQueue[labelCell](seq.MaxFirst)
	h := cellSize / 2
	for x := minP.X; x < maxP.X; x += cellSize {
		for y := minP.Y; y < maxP.Y; y += cellSize {
			c := newLabelCell(p, Pt(x+h, y+h), h)
			queue.Push(c, c.max)
		}
	}

	// The raw bounding-box center seeds the search but is not assumed optimal.
	best := newLabelCell(p, Pt(minP.X+width/2, minP.Y+height/2), 0)

	for {
		cell, ok := queue.Pop()
		if !ok {
			break
		}
		if cell.d > best.d {
			best = cell
		}
		// No point inside this cell can improve on best by more than
		// precision, so it is pruned without subdividing.
		if cell.max-best.d <= precision {
			continue
		}
		half := cell.h / 2
		for _, dx := range []float64{-half, half} {
			for _, dy := range []float64{-half, half} {
				c := newLabelCell(p, cell.center.Add(Pt(dx, dy)), half)
				queue.Push(c, c.max)
			}
		}
	}
	return best.center, nil
}
