package mr

import "math"

// PathElement represents a single drawing command in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing, starting a new contour.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current contour back to its starting point.
type Close struct{}

func (Close) isPathElement() {}

// Path is an ordered, appendable sequence of drawing commands.
// It carries no rendering state; Flatten converts it to polyline
// contours fresh on every draw call.
type Path struct {
	elements []PathElement
	start    Point // starting point of current contour
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) *Path {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	return p
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) *Path {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
	return p
}

// QuadTo draws a quadratic Bezier curve through one control point.
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	p.elements = append(p.elements, QuadTo{
		Control: Pt(cx, cy),
		Point:   Pt(x, y),
	})
	p.current = Pt(x, y)
	return p
}

// CubicTo draws a cubic Bezier curve through two control points.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
	return p
}

// Close closes the current contour by connecting back to the most
// recent MoveTo point.
func (p *Path) Close() *Path {
	p.elements = append(p.elements, Close{})
	p.current = p.start
	return p
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point cursor.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// AddRect adds a closed rectangular contour.
func (p *Path) AddRect(x, y, w, h float64) *Path {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	return p.Close()
}

// kappa is the control point distance for approximating a quarter
// circle with a single cubic Bezier: 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// AddRoundRect adds a rectangle with a uniform corner radius.
// The radius is clamped to half of the smaller dimension.
func (p *Path) AddRoundRect(x, y, w, h, r float64) *Path {
	return p.AddRoundRectCorners(x, y, w, h, r, r, r, r)
}

// AddRoundRectCorners adds a rectangle with per-corner radii, given
// clockwise from the top-left. Each radius is clamped to half of the
// smaller dimension.
func (p *Path) AddRoundRectCorners(x, y, w, h, tl, tr, br, bl float64) *Path {
	maxR := math.Min(w, h) / 2
	clampR := func(r float64) float64 {
		if r < 0 {
			return 0
		}
		return math.Min(r, maxR)
	}
	tl, tr, br, bl = clampR(tl), clampR(tr), clampR(br), clampR(bl)

	p.MoveTo(x+tl, y)
	p.LineTo(x+w-tr, y)
	if tr > 0 {
		k := kappa * tr
		p.CubicTo(x+w-tr+k, y, x+w, y+tr-k, x+w, y+tr)
	}
	p.LineTo(x+w, y+h-br)
	if br > 0 {
		k := kappa * br
		p.CubicTo(x+w, y+h-br+k, x+w-br+k, y+h, x+w-br, y+h)
	}
	p.LineTo(x+bl, y+h)
	if bl > 0 {
		k := kappa * bl
		p.CubicTo(x+bl-k, y+h, x, y+h-bl+k, x, y+h-bl)
	}
	p.LineTo(x, y+tl)
	if tl > 0 {
		k := kappa * tl
		p.CubicTo(x, y+tl-k, x+tl-k, y, x+tl, y)
	}
	return p.Close()
}

// AddOval adds a closed ellipse centered at (cx, cy).
func (p *Path) AddOval(cx, cy, rx, ry float64) *Path {
	kx := kappa * rx
	ky := kappa * ry

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	return p.Close()
}

// AddCircle adds a closed circle centered at (cx, cy).
func (p *Path) AddCircle(cx, cy, r float64) *Path {
	return p.AddOval(cx, cy, r, r)
}

// Arc adds a circular arc from angle1 to angle2 (radians) around
// (cx, cy), approximated by one cubic segment per 90 degrees of sweep.
// If the path is empty the arc starts with a MoveTo, otherwise it
// continues from the current point.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) *Path {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil((angle2 - angle1) / maxAngle))
	if numSegments < 1 {
		numSegments = 1
	}
	angleStep := (angle2 - angle1) / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		a1 := angle1 + float64(i)*angleStep
		p.arcSegment(cx, cy, r, a1, a1+angleStep)
	}
	return p
}

// arcSegment adds a single cubic approximating an arc of at most 90 degrees.
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	half := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*half*half) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	c1x := x1 - alpha*r*sin1
	c1y := y1 + alpha*r*cos1
	c2x := x2 + alpha*r*sin2
	c2y := y2 - alpha*r*cos2

	if len(p.elements) == 0 {
		p.MoveTo(x1, y1)
	}
	p.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
}
