package geo

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateGeometry indicates a polygon too degenerate for the requested
// operation: fewer than 3 vertices, zero area where non-zero area is
// required, or all vertices collinear for a convexity query. Callers should
// treat it as a violated precondition, not a recoverable condition.
var ErrDegenerateGeometry = errors.New("geo: degenerate geometry")

const boundaryEps = 1e-9

// Polygon is a closed polygon defined by its vertices in order. The edge
// from the last vertex back to the first is implicit; edges are derived from
// the vertex slice on demand, so mutations are reflected immediately.
type Polygon struct {
	Vertices []Point2D
}

// NewPolygon creates a polygon from a list of vertices.
func NewPolygon(pts ...Point2D) Polygon {
	return Polygon{Vertices: pts}
}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.Vertices)
}

// IsEmpty returns true if the polygon has fewer than 3 vertices.
func (p Polygon) IsEmpty() bool {
	return len(p.Vertices) < 3
}

// Edge returns the i-th edge as (start, end). Wraps around.
func (p Polygon) Edge(i int) (Point2D, Point2D) {
	n := len(p.Vertices)
	return p.Vertices[i%n], p.Vertices[(i+1)%n]
}

// SignedArea returns the signed area using the shoelace formula.
// Positive for counterclockwise winding, negative for clockwise.
func (p Polygon) SignedArea() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p.Vertices[i].X * p.Vertices[j].Y
		area -= p.Vertices[j].X * p.Vertices[i].Y
	}
	return area / 2
}

// Area returns the unsigned area of the polygon.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Centroid returns the area-weighted centroid of the polygon. It fails with
// ErrDegenerateGeometry when the signed area is zero, where the formula is
// undefined.
func (p Polygon) Centroid() (Point2D, error) {
	n := len(p.Vertices)
	if n < 3 {
		return Point2D{}, fmt.Errorf("centroid of %d vertices: %w", n, ErrDegenerateGeometry)
	}
	a := p.SignedArea()
	if math.Abs(a) < 1e-12 {
		return Point2D{}, fmt.Errorf("centroid of zero-area polygon: %w", ErrDegenerateGeometry)
	}
	cx, cy := 0.0, 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p.Vertices[i].X*p.Vertices[j].Y - p.Vertices[j].X*p.Vertices[i].Y
		cx += (p.Vertices[i].X + p.Vertices[j].X) * cross
		cy += (p.Vertices[i].Y + p.Vertices[j].Y) * cross
	}
	f := 1.0 / (6.0 * a)
	return Point2D{cx * f, cy * f}, nil
}

// IsConvex reports whether the polygon is convex by scanning the cross
// products of consecutive edge-direction vectors. It fails with
// ErrDegenerateGeometry when fewer than 3 vertices are given or all vertices
// are collinear (every cross product exactly zero).
func (p Polygon) IsConvex() (bool, error) {
	n := len(p.Vertices)
	if n < 3 {
		return false, fmt.Errorf("convexity of %d vertices: %w", n, ErrDegenerateGeometry)
	}
	sawPositive, sawNegative, sawNonzero := false, false, false
	for i := 0; i < n; i++ {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%n]
		c := p.Vertices[(i+2)%n]
		cross := b.Sub(a).Cross(c.Sub(b))
		// Treat numerically-collinear turns as straight.
		if cross > 1e-12 {
			sawPositive, sawNonzero = true, true
		} else if cross < -1e-12 {
			sawNegative, sawNonzero = true, true
		}
	}
	if !sawNonzero {
		return false, fmt.Errorf("all vertices collinear: %w", ErrDegenerateGeometry)
	}
	return !(sawPositive && sawNegative), nil
}

// BoundingBox returns the axis-aligned bounding box as (min, max).
func (p Polygon) BoundingBox() (Point2D, Point2D) {
	if len(p.Vertices) == 0 {
		return Point2D{}, Point2D{}
	}
	minP := p.Vertices[0]
	maxP := p.Vertices[0]
	for _, v := range p.Vertices[1:] {
		if v.X < minP.X {
			minP.X = v.X
		}
		if v.Y < minP.Y {
			minP.Y = v.Y
		}
		if v.X > maxP.X {
			maxP.X = v.X
		}
		if v.Y > maxP.Y {
			maxP.Y = v.Y
		}
	}
	return minP, maxP
}

// Contains returns true if the point is inside the polygon or exactly on its
// boundary. Interior membership uses the even-odd horizontal-ray crossing
// rule.
func (p Polygon) Contains(pt Point2D) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a, b := p.Edge(i)
		if DistanceToSegment(pt, a, b) <= boundaryEps {
			return true
		}
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi := p.Vertices[i]
		vj := p.Vertices[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) &&
			pt.X < (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// DistanceToOutline returns the minimum distance from pt to any edge of the
// polygon, regardless of which side pt is on.
func (p Polygon) DistanceToOutline(pt Point2D) float64 {
	minDist := math.Inf(1)
	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		a, b := p.Edge(i)
		if d := DistanceToSegment(pt, a, b); d < minDist {
			minDist = d
		}
	}
	return minDist
}

// SignedDistanceToOutline returns the distance from pt to the nearest edge,
// positive when pt is inside the polygon, negative when outside, and exactly
// zero on the boundary.
func (p Polygon) SignedDistanceToOutline(pt Point2D) float64 {
	d := p.DistanceToOutline(pt)
	if d <= boundaryEps {
		return 0
	}
	if p.Contains(pt) {
		return d
	}
	return -d
}

// DistanceToSegment returns the distance from pt to the segment ab, using a
// clamped projection onto the segment.
func DistanceToSegment(pt, a, b Point2D) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq < 1e-24 {
		return pt.Distance(a)
	}
	t := pt.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return pt.Distance(a.Add(ab.Scale(t)))
}

// Perimeter returns the total perimeter length.
func (p Polygon) Perimeter() float64 {
	n := len(p.Vertices)
	if n < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		total += p.Vertices[i].Distance(p.Vertices[j])
	}
	return total
}
