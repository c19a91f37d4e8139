package mr

import "testing"

// fillPath flattens and fills a path on a fresh canvas.
func fillPath(size int, build func(*Path), paint Paint) *Canvas {
	c := New(size, size)
	p := NewPath()
	build(p)
	c.DrawPath(p, paint)
	return c
}

func TestScanlineFillRectMatchesDrawRect(t *testing.T) {
	// A path-filled rectangle lands on the same pixels as the
	// analytic rect fill.
	paint := NewPaint().WithColor(Blue).WithAntiAlias(false)
	got := fillPath(10, func(p *Path) { p.AddRect(2, 2, 4, 4) }, paint)

	want := New(10, 10)
	want.DrawRect(NewRect(2, 2, 4, 4), paint)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if got.GetPixel(x, y) != want.GetPixel(x, y) {
				t.Fatalf("pixel (%d, %d): path=%v rect=%v", x, y,
					got.GetPixel(x, y), want.GetPixel(x, y))
			}
		}
	}
}

func TestScanlineEvenOddHole(t *testing.T) {
	// Outer rect with an inner rect produces a hole under the
	// even-odd rule.
	paint := NewPaint().WithColor(Red).WithAntiAlias(false)
	c := fillPath(20, func(p *Path) {
		p.AddRect(2, 2, 16, 16)
		p.AddRect(6, 6, 8, 8)
	}, paint)

	if c.GetPixel(4, 10) != Red {
		t.Error("ring region not filled")
	}
	if c.GetPixel(10, 10) != Transparent {
		t.Errorf("hole filled: %v", c.GetPixel(10, 10))
	}
	if c.GetPixel(0, 0) != Transparent {
		t.Errorf("outside filled: %v", c.GetPixel(0, 0))
	}
}

func TestScanlineAACoverageConservation(t *testing.T) {
	// Fully covered pixels reach coverage ~1 (alpha within 1 of 255);
	// pixels with zero geometric overlap stay at coverage 0.
	paint := NewPaint().WithColor(Black)
	c := fillPath(12, func(p *Path) { p.AddRect(2, 2, 6, 6) }, paint)

	if a := c.GetPixel(4, 4).A; a < 254 {
		t.Errorf("fully covered pixel alpha = %d, want >= 254", a)
	}
	if a := c.GetPixel(4, 2).A; a < 254 {
		t.Errorf("edge-interior pixel alpha = %d, want >= 254", a)
	}
	if got := c.GetPixel(0, 0); got != Transparent {
		t.Errorf("uncovered pixel = %v", got)
	}
	if got := c.GetPixel(9, 9); got != Transparent {
		t.Errorf("uncovered pixel past edge = %v", got)
	}
}

func TestScanlineAAHalfCoveredColumn(t *testing.T) {
	// A rectangle whose left edge splits pixel column 2 in half gives
	// those pixels ~50% alpha.
	paint := NewPaint().WithColor(Black)
	c := fillPath(12, func(p *Path) { p.AddRect(2.5, 2, 5.5, 6) }, paint)

	a := c.GetPixel(2, 4).A
	if a < 120 || a > 135 {
		t.Errorf("half-covered pixel alpha = %d, want ~127", a)
	}
	if a := c.GetPixel(4, 4).A; a < 254 {
		t.Errorf("interior pixel alpha = %d", a)
	}
}

func TestScanlineAADiagonalEdgeRamp(t *testing.T) {
	// A triangle's sloped edge produces monotonically varying partial
	// coverage along a row crossing it.
	paint := NewPaint().WithColor(Black)
	c := fillPath(20, func(p *Path) {
		p.MoveTo(2, 2)
		p.LineTo(18, 18)
		p.LineTo(2, 18)
		p.Close()
	}, paint)

	// Row 10: interior to the left of the hypotenuse, partial at the
	// crossing, empty to the right.
	if a := c.GetPixel(3, 10).A; a < 254 {
		t.Errorf("interior alpha = %d", a)
	}
	if got := c.GetPixel(16, 10); got != Transparent {
		t.Errorf("exterior pixel = %v", got)
	}
	partial := false
	for x := 8; x < 13; x++ {
		a := c.GetPixel(x, 10).A
		if a > 10 && a < 245 {
			partial = true
		}
	}
	if !partial {
		t.Error("no partial coverage found along hypotenuse")
	}
}

func TestScanlineOpenContourTreatedClosed(t *testing.T) {
	// Filling treats every contour as closed by wrapping the edge
	// list, so an unclosed triangle still fills.
	paint := NewPaint().WithColor(Green).WithAntiAlias(false)
	c := fillPath(20, func(p *Path) {
		p.MoveTo(2, 2)
		p.LineTo(18, 2)
		p.LineTo(2, 18)
	}, paint)

	if c.GetPixel(5, 5) != Green {
		t.Errorf("open contour interior not filled: %v", c.GetPixel(5, 5))
	}
}
