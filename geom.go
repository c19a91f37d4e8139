package mr

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Size represents a 2D extent.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle described by its top-left corner
// and its extent. Callers normalize negative spans before constructing;
// RectFromPoints does this for arbitrary corner pairs.
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromPoints creates the normalized rectangle spanning two corners.
func RectFromPoints(p1, p2 Point) Rect {
	return Rect{
		X: math.Min(p1.X, p2.X),
		Y: math.Min(p1.Y, p2.Y),
		W: math.Abs(p1.X - p2.X),
		H: math.Abs(p1.Y - p2.Y),
	}
}

// Left returns the minimum x coordinate.
func (r Rect) Left() float64 { return r.X }

// Top returns the minimum y coordinate.
func (r Rect) Top() float64 { return r.Y }

// Right returns x + width.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns y + height.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() &&
		p.Y >= r.Y && p.Y <= r.Bottom()
}

// Intersects reports whether the two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Intersect returns the overlapping region of two rectangles.
// Disjoint rectangles produce a zero rectangle, which rejects
// all containment tests.
func (r Rect) Intersect(other Rect) Rect {
	x := math.Max(r.X, other.X)
	y := math.Max(r.Y, other.Y)
	right := math.Min(r.Right(), other.Right())
	bottom := math.Min(r.Bottom(), other.Bottom())
	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, W: right - x, H: bottom - y}
}

// Inset returns the rectangle shrunk by dx and dy on each side.
// The result never has a negative span.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{
		X: r.X + dx,
		Y: r.Y + dy,
		W: math.Max(r.W-2*dx, 0),
		H: math.Max(r.H-2*dy, 0),
	}
}
