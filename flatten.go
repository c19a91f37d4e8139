package mr

import "math"

// Contour is one polyline produced by flattening a path between
// successive MoveTo/Close boundaries.
type Contour []Point

// Flatten converts the path into polyline contours by walking the
// command list with a current-point cursor. Curves are subdivided
// uniformly; the step count is derived from the chord length of the
// control polygon divided by tolerance and clamped to [2, 100].
//
// Flatten is pure: it never mutates the path and is re-run on every
// draw call.
func (p *Path) Flatten(tolerance float64) []Contour {
	var contours []Contour
	var contour Contour
	var current, start Point

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if len(contour) > 0 {
				contours = append(contours, contour)
				contour = nil
			}
			current = e.Point
			start = e.Point
			contour = append(contour, e.Point)
		case LineTo:
			contour = append(contour, e.Point)
			current = e.Point
		case QuadTo:
			contour = flattenQuad(current, e.Control, e.Point, tolerance, contour)
			current = e.Point
		case CubicTo:
			contour = flattenCubic(current, e.Control1, e.Control2, e.Point, tolerance, contour)
			current = e.Point
		case Close:
			if current != start {
				contour = append(contour, start)
			}
			current = start
		}
	}

	if len(contour) > 0 {
		contours = append(contours, contour)
	}
	return contours
}

// curveSteps derives the subdivision count from the control polygon
// chord length. The lower clamp guards degenerate zero-length curves,
// the upper clamp bounds pathological inputs.
func curveSteps(chord, tolerance float64) int {
	steps := int(math.Ceil(chord / tolerance))
	if steps < 2 {
		return 2
	}
	if steps > 100 {
		return 100
	}
	return steps
}

// flattenQuad appends the quadratic Bezier (p0, p1, p2) to out as line
// segments, evaluating the Bernstein form at uniform parameter steps.
// The final step lands exactly on p2.
func flattenQuad(p0, p1, p2 Point, tolerance float64, out Contour) Contour {
	steps := curveSteps(p0.Distance(p1)+p1.Distance(p2), tolerance)

	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		mt := 1 - t
		out = append(out, Point{
			X: mt*mt*p0.X + 2*mt*t*p1.X + t*t*p2.X,
			Y: mt*mt*p0.Y + 2*mt*t*p1.Y + t*t*p2.Y,
		})
	}
	// Exact endpoint, free of accumulated float error.
	out[len(out)-1] = p2
	return out
}

// flattenCubic appends the cubic Bezier (p0, p1, p2, p3) to out as
// line segments at uniform parameter steps.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, out Contour) Contour {
	steps := curveSteps(p0.Distance(p1)+p1.Distance(p2)+p2.Distance(p3), tolerance)

	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		t2 := t * t
		mt := 1 - t
		mt2 := mt * mt
		out = append(out, Point{
			X: mt2*mt*p0.X + 3*mt2*t*p1.X + 3*mt*t2*p2.X + t2*t*p3.X,
			Y: mt2*mt*p0.Y + 3*mt2*t*p1.Y + 3*mt*t2*p2.Y + t2*t*p3.Y,
		})
	}
	out[len(out)-1] = p3
	return out
}
