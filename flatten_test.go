package mr

import (
	"math"
	"testing"
)

func TestFlattenEndpointFidelity(t *testing.T) {
	// The flattened polyline must start and end exactly on the
	// curve's start and end control points.
	tests := []struct {
		name  string
		build func(*Path)
		start Point
		end   Point
	}{
		{
			name: "quadratic",
			build: func(p *Path) {
				p.MoveTo(1.5, 2.25)
				p.QuadTo(40, 80, 33.75, 10.125)
			},
			start: Pt(1.5, 2.25),
			end:   Pt(33.75, 10.125),
		},
		{
			name: "cubic",
			build: func(p *Path) {
				p.MoveTo(-7, 0.3)
				p.CubicTo(10, 90, 80, -40, 61.5, 27.125)
			},
			start: Pt(-7, 0.3),
			end:   Pt(61.5, 27.125),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			tt.build(p)
			contours := p.Flatten(1.0)
			if len(contours) != 1 {
				t.Fatalf("contour count = %d", len(contours))
			}
			c := contours[0]
			if c[0] != tt.start {
				t.Errorf("first point = %v, want exactly %v", c[0], tt.start)
			}
			if c[len(c)-1] != tt.end {
				t.Errorf("last point = %v, want exactly %v", c[len(c)-1], tt.end)
			}
		})
	}
}

func TestFlattenStepClamps(t *testing.T) {
	// Degenerate zero-length curve still yields the minimum two steps.
	p := NewPath()
	p.MoveTo(5, 5)
	p.QuadTo(5, 5, 5, 5)
	c := p.Flatten(1.0)[0]
	if len(c) != 3 { // MoveTo point + 2 steps
		t.Errorf("degenerate quad produced %d points, want 3", len(c))
	}

	// A huge curve is clamped to 100 steps.
	p = NewPath()
	p.MoveTo(0, 0)
	p.CubicTo(10000, 0, 10000, 10000, 0, 10000)
	c = p.Flatten(0.001)[0]
	if len(c) != 101 { // MoveTo point + 100 steps
		t.Errorf("huge cubic produced %d points, want 101", len(c))
	}
}

func TestFlattenMoveToStartsNewContour(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.MoveTo(20, 20)
	p.LineTo(30, 20)

	contours := p.Flatten(1.0)
	if len(contours) != 2 {
		t.Fatalf("contour count = %d, want 2", len(contours))
	}
	if contours[0][0] != Pt(0, 0) || contours[1][0] != Pt(20, 20) {
		t.Errorf("contour starts = %v, %v", contours[0][0], contours[1][0])
	}
}

func TestFlattenCloseSkipsDegenerateSegment(t *testing.T) {
	// Closing when the current point already equals the start must not
	// append a zero-length segment.
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(0, 0)
	p.Close()

	c := p.Flatten(1.0)[0]
	if len(c) != 3 {
		t.Errorf("point count = %d, want 3 (no duplicate close point)", len(c))
	}

	// Closing an open triangle appends the start point once.
	p = NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.Close()

	c = p.Flatten(1.0)[0]
	if len(c) != 4 || c[3] != Pt(0, 0) {
		t.Errorf("closed triangle = %v", c)
	}
}

func TestFlattenRoundRectClosedAndDense(t *testing.T) {
	p := NewPath()
	p.AddRoundRect(0, 0, 100, 50, 10)

	contours := p.Flatten(1.0)
	if len(contours) != 1 {
		t.Fatalf("contour count = %d, want 1", len(contours))
	}
	c := contours[0]

	if c[0] != c[len(c)-1] {
		t.Errorf("round rect contour not closed: %v vs %v", c[0], c[len(c)-1])
	}

	// Points along each corner curve must be spaced no farther apart
	// than the tolerance plus curve-segment slack. Straight edges are
	// single long segments; a corner point is within the corner radius
	// of the nearest rounding center.
	centers := []Point{{10, 10}, {90, 10}, {90, 40}, {10, 40}}
	cornerOf := func(pt Point) (Point, bool) {
		for _, c := range centers {
			if pt.Distance(c) < 10+1e-6 {
				return c, true
			}
		}
		return Point{}, false
	}
	for i := 0; i+1 < len(c); i++ {
		c0, ok0 := cornerOf(c[i])
		c1, ok1 := cornerOf(c[i+1])
		if ok0 && ok1 && c0 == c1 {
			if d := c[i].Distance(c[i+1]); d > 1.5 {
				t.Errorf("corner points %v -> %v spaced %v apart", c[i], c[i+1], d)
			}
		}
	}
}

func TestFlattenMatchesBernsteinEvaluation(t *testing.T) {
	// Spot-check interior samples against the closed-form quadratic.
	p0, p1, p2 := Pt(0, 0), Pt(10, 20), Pt(20, 0)
	p := NewPath()
	p.MoveTo(p0.X, p0.Y)
	p.QuadTo(p1.X, p1.Y, p2.X, p2.Y)

	c := p.Flatten(1.0)[0]
	steps := len(c) - 1
	for i := 1; i < steps; i++ {
		tt := float64(i) / float64(steps)
		mt := 1 - tt
		want := Pt(
			mt*mt*p0.X+2*mt*tt*p1.X+tt*tt*p2.X,
			mt*mt*p0.Y+2*mt*tt*p1.Y+tt*tt*p2.Y,
		)
		if math.Abs(c[i].X-want.X) > 1e-9 || math.Abs(c[i].Y-want.Y) > 1e-9 {
			t.Fatalf("sample %d = %v, want %v", i, c[i], want)
		}
	}
}
