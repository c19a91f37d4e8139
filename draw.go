package mr

import "math"

// DrawRect draws a rectangle according to the paint's style.
// The stroke is drawn as four filled bands of StrokeWidth; corners are
// double-covered, which is visually inert for solid colors.
func (c *Canvas) DrawRect(rect Rect, paint Paint) {
	switch paint.Style {
	case StyleFill:
		c.fillRect(rect, paint.Color)
	case StyleStroke:
		c.strokeRect(rect, paint)
	case StyleFillAndStroke:
		c.fillRect(rect, paint.Color)
		c.strokeRect(rect, paint)
	}
}

func (c *Canvas) fillRect(rect Rect, col Color) {
	x0 := int(math.Max(rect.X+c.tx, 0))
	y0 := int(math.Max(rect.Y+c.ty, 0))
	x1 := int(math.Min(rect.Right()+c.tx, float64(c.width)))
	y1 := int(math.Min(rect.Bottom()+c.ty, float64(c.height)))

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.SetPixel(x, y, col)
		}
	}
}

func (c *Canvas) strokeRect(rect Rect, paint Paint) {
	w := paint.StrokeWidth
	if w <= 0 {
		return
	}
	col := paint.Color
	c.fillRect(NewRect(rect.X, rect.Y, rect.W, w), col)                 // top
	c.fillRect(NewRect(rect.X, rect.Bottom()-w, rect.W, w), col)        // bottom
	c.fillRect(NewRect(rect.X, rect.Y, w, rect.H), col)                 // left
	c.fillRect(NewRect(rect.Right()-w, rect.Y, w, rect.H), col)         // right
}

// DrawCircle draws a circle centered at (cx, cy) according to the
// paint's style. With anti-aliasing enabled, the edge gets a one-pixel
// analytic coverage ramp; the stroke covers the annulus between
// radius - width/2 and radius + width/2.
func (c *Canvas) DrawCircle(cx, cy, radius float64, paint Paint) {
	if radius <= 0 {
		return
	}
	switch paint.Style {
	case StyleFill:
		c.fillCircle(cx, cy, radius, paint)
	case StyleStroke:
		c.strokeCircle(cx, cy, radius, paint)
	case StyleFillAndStroke:
		c.fillCircle(cx, cy, radius, paint)
		c.strokeCircle(cx, cy, radius, paint)
	}
}

func (c *Canvas) fillCircle(cx, cy, radius float64, paint Paint) {
	cx += c.tx
	cy += c.ty

	r2 := radius * radius
	x0 := int(math.Max(cx-radius-1, 0))
	y0 := int(math.Max(cy-radius-1, 0))
	x1 := int(math.Min(cx+radius+1, float64(c.width)))
	y1 := int(math.Min(cy+radius+1, float64(c.height)))

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			d2 := dx*dx + dy*dy

			if paint.AntiAlias {
				d := math.Sqrt(d2)
				if d <= radius+0.5 {
					c.setPixelAA(x, y, paint.Color, math.Min(radius+0.5-d, 1))
				}
			} else if d2 <= r2 {
				c.SetPixel(x, y, paint.Color)
			}
		}
	}
}

func (c *Canvas) strokeCircle(cx, cy, radius float64, paint Paint) {
	if paint.StrokeWidth <= 0 {
		return
	}
	cx += c.tx
	cy += c.ty

	inner := radius - paint.StrokeWidth/2
	outer := radius + paint.StrokeWidth/2

	x0 := int(math.Max(cx-outer-1, 0))
	y0 := int(math.Max(cy-outer-1, 0))
	x1 := int(math.Min(cx+outer+1, float64(c.width)))
	y1 := int(math.Min(cy+outer+1, float64(c.height)))

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			d := math.Sqrt(dx*dx + dy*dy)

			if d < inner || d > outer {
				continue
			}
			if paint.AntiAlias {
				coverage := 1.0
				if d < inner+0.5 {
					coverage = d - inner + 0.5
				} else if d > outer-0.5 {
					coverage = outer - d + 0.5
				}
				c.setPixelAA(x, y, paint.Color, math.Min(coverage, 1))
			} else {
				c.SetPixel(x, y, paint.Color)
			}
		}
	}
}

// DrawLine draws a line segment between two points. Anti-aliased
// lines use Wu's algorithm; aliased lines use integer Bresenham.
func (c *Canvas) DrawLine(x0, y0, x1, y1 float64, paint Paint) {
	c.drawLineDevice(x0+c.tx, y0+c.ty, x1+c.tx, y1+c.ty, paint)
}

// drawLineDevice draws a line already expressed in device coordinates.
// Path stroking uses it directly on translated contours.
func (c *Canvas) drawLineDevice(x0, y0, x1, y1 float64, paint Paint) {
	if paint.AntiAlias {
		c.drawLineAA(x0, y0, x1, y1, paint)
	} else {
		c.drawLineBresenham(int(x0), int(y0), int(x1), int(y1), paint)
	}
}

// drawLineBresenham rasterizes an aliased line with the classic
// integer error-accumulation walk.
func (c *Canvas) drawLineBresenham(x0, y0, x1, y1 int, paint Paint) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.SetPixel(x0, y0, paint.Color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawLineAA rasterizes an anti-aliased line with Wu's algorithm:
// steep lines are made shallow by swapping axes, and each x step
// writes two adjacent pixels with complementary fractional coverage.
func (c *Canvas) drawLineAA(x0, y0, x1, y1 float64, paint Paint) {
	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := y1 - y0
	gradient := 1.0
	if dx != 0 {
		gradient = dy / dx
	}

	xend := math.Round(x0)
	yend := y0 + gradient*(xend-x0)
	xpxl1 := int(xend)
	intery := yend + gradient

	xpxl2 := int(math.Round(x1))

	for x := xpxl1; x <= xpxl2; x++ {
		y := int(math.Floor(intery))
		frac := intery - math.Floor(intery)

		if steep {
			c.setPixelAA(y, x, paint.Color, 1-frac)
			c.setPixelAA(y+1, x, paint.Color, frac)
		} else {
			c.setPixelAA(x, y, paint.Color, 1-frac)
			c.setPixelAA(x, y+1, paint.Color, frac)
		}
		intery += gradient
	}
}

// pathTolerance is the flattening tolerance used for all path draws.
const pathTolerance = 1.0

// DrawPath flattens the path into contours, applies the current
// translation, and fills or strokes them according to the paint.
func (c *Canvas) DrawPath(p *Path, paint Paint) {
	contours := p.Flatten(pathTolerance)
	if len(contours) == 0 {
		return
	}

	if c.tx != 0 || c.ty != 0 {
		for _, contour := range contours {
			for i := range contour {
				contour[i].X += c.tx
				contour[i].Y += c.ty
			}
		}
	}

	switch paint.Style {
	case StyleFill:
		c.fillContours(contours, paint)
	case StyleStroke:
		c.strokeContours(contours, paint)
	case StyleFillAndStroke:
		c.fillContours(contours, paint)
		c.strokeContours(contours, paint)
	}
}

// strokeContours walks each contour's consecutive point pairs and
// draws them as independent line segments, without join or cap
// geometry.
func (c *Canvas) strokeContours(contours []Contour, paint Paint) {
	for _, contour := range contours {
		for i := 0; i+1 < len(contour); i++ {
			c.drawLineDevice(
				contour[i].X, contour[i].Y,
				contour[i+1].X, contour[i+1].Y,
				paint,
			)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
