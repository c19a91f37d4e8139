package mr

import (
	"math"
	"sort"
)

// subScanlines is the number of evenly spaced sub-scanline samples
// evaluated per pixel row when filling with anti-aliasing.
const subScanlines = 4

// fillContours rasterizes flattened contours with an even-odd
// scanline fill. Contours are in device coordinates.
func (c *Canvas) fillContours(contours []Contour, paint Paint) {
	minY := math.Inf(1)
	maxY := math.Inf(-1)
	for _, contour := range contours {
		for _, p := range contour {
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if minY > maxY {
		return
	}

	y0 := int(math.Floor(minY - 1))
	y1 := int(math.Ceil(maxY + 1))

	if paint.AntiAlias {
		c.fillContoursAA(contours, paint, y0, y1)
	} else {
		c.fillContoursAliased(contours, paint, y0, y1)
	}
}

// scanIntersections appends to out the x coordinates where contour
// edges cross the horizontal line at scanY, sorted ascending. Every
// contour is treated as closed: the edge list wraps from the last
// point back to the first.
func scanIntersections(contours []Contour, scanY float64, out []float64) []float64 {
	out = out[:0]
	for _, contour := range contours {
		n := len(contour)
		for i := 0; i < n; i++ {
			p0 := contour[i]
			p1 := contour[(i+1)%n]

			if (p0.Y <= scanY && p1.Y > scanY) || (p1.Y <= scanY && p0.Y > scanY) {
				t := (scanY - p0.Y) / (p1.Y - p0.Y)
				out = append(out, p0.X+t*(p1.X-p0.X))
			}
		}
	}
	sort.Float64s(out)
	return out
}

// fillContoursAliased fills pixel spans between successive
// intersection pairs at each row's center line. A pixel belongs to a
// span when its center falls inside the [left, right) interval.
func (c *Canvas) fillContoursAliased(contours []Contour, paint Paint, y0, y1 int) {
	var intersections []float64
	for y := y0; y <= y1; y++ {
		intersections = scanIntersections(contours, float64(y)+0.5, intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			left := intersections[i]
			right := intersections[i+1]
			x0 := int(math.Ceil(left - 0.5))
			x1 := int(math.Ceil(right - 0.5))
			for x := x0; x < x1; x++ {
				c.SetPixel(x, y, paint.Color)
			}
		}
	}
}

// fillContoursAA samples subScanlines horizontal lines per pixel row,
// accumulates for every candidate pixel column the fraction of each
// sub-scanline's spans overlapping the pixel's [x, x+1) interval, and
// averages the samples into a coverage value driving the blended
// alpha.
func (c *Canvas) fillContoursAA(contours []Contour, paint Paint, y0, y1 int) {
	samples := make([][]float64, subScanlines)

	for y := y0; y <= y1; y++ {
		xMin := math.Inf(1)
		xMax := math.Inf(-1)
		for sub := 0; sub < subScanlines; sub++ {
			scanY := float64(y) + (float64(sub)+0.5)/subScanlines
			samples[sub] = scanIntersections(contours, scanY, samples[sub])
			for _, x := range samples[sub] {
				xMin = math.Min(xMin, x)
				xMax = math.Max(xMax, x)
			}
		}
		if xMin > xMax {
			continue
		}

		x0 := int(math.Floor(xMin - 1))
		x1 := int(math.Ceil(xMax + 1))

		for x := x0; x <= x1; x++ {
			pixelLeft := float64(x)
			pixelRight := pixelLeft + 1

			coverage := 0.0
			for sub := 0; sub < subScanlines; sub++ {
				intersections := samples[sub]
				for i := 0; i+1 < len(intersections); i += 2 {
					left := intersections[i]
					right := intersections[i+1]

					switch {
					case pixelRight <= left || pixelLeft >= right:
						// outside the span
					case pixelLeft >= left && pixelRight <= right:
						coverage += 1
					default:
						overlapLeft := math.Max(pixelLeft, left)
						overlapRight := math.Min(pixelRight, right)
						coverage += overlapRight - overlapLeft
					}
				}
			}
			coverage /= subScanlines

			if coverage > 0 {
				c.setPixelAA(x, y, paint.Color, math.Min(coverage, 1))
			}
		}
	}
}
