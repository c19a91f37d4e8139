package mr

// canvasState is the snapshot pushed by Save and popped by Restore.
type canvasState struct {
	clip    Rect
	hasClip bool
	tx, ty  float64
}

// Canvas owns a width x height pixel buffer (row-major, straight-alpha
// RGBA) together with a clip rectangle, a cumulative translation, and
// a save/restore state stack. A Canvas has a fixed size; resizing
// means constructing a new one.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	width, height int
	pixels        []Color
	clip          Rect
	hasClip       bool
	tx, ty        float64
	stack         []canvasState
}

// New creates a canvas with the given dimensions, filled with
// transparent pixels. Negative dimensions are treated as zero.
func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
		stack:  make([]canvasState, 0, 8),
	}
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int { return c.height }

// Pixels returns the backing pixel buffer, row-major, length
// width*height. The slice aliases canvas memory; callers present or
// inspect it but must not resize it.
func (c *Canvas) Pixels() []Color { return c.pixels }

// CopyFrom copies pixel data from another canvas. When dimensions
// differ, the common prefix of the buffers is copied.
func (c *Canvas) CopyFrom(src *Canvas) {
	copy(c.pixels, src.pixels)
}

// Clear fills the entire canvas with a color, ignoring clip and
// translation.
func (c *Canvas) Clear(col Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// Save pushes the current clip rectangle and translation onto the
// state stack.
func (c *Canvas) Save() {
	c.stack = append(c.stack, canvasState{
		clip:    c.clip,
		hasClip: c.hasClip,
		tx:      c.tx,
		ty:      c.ty,
	})
}

// Restore pops the most recently saved state. Restoring with an empty
// stack is a no-op.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	state := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.clip = state.clip
	c.hasClip = state.hasClip
	c.tx = state.tx
	c.ty = state.ty
}

// Translate shifts the coordinate system. Translations accumulate.
func (c *Canvas) Translate(dx, dy float64) {
	c.tx += dx
	c.ty += dy
}

// ClipRect intersects the clip region with rect. A disjoint
// intersection yields a zero-size clip that rejects all draws.
// The rectangle is in canvas coordinates, not subject to the
// current translation.
func (c *Canvas) ClipRect(rect Rect) {
	if c.hasClip {
		c.clip = c.clip.Intersect(rect)
	} else {
		c.clip = rect
		c.hasClip = true
	}
}

// ResetClip removes the clip rectangle entirely.
func (c *Canvas) ResetClip() {
	c.clip = Rect{}
	c.hasClip = false
}

// GetPixel returns the color at (x, y), or Transparent for
// out-of-range coordinates.
func (c *Canvas) GetPixel(x, y int) Color {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return Transparent
	}
	return c.pixels[y*c.width+x]
}

// SetPixel is the single choke point for blended pixel writes. Writes
// outside the canvas or the active clip rectangle are silently
// dropped. Opaque colors overwrite; translucent colors blend via the
// src-over operator; fully transparent colors are a no-op.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	if c.hasClip {
		if x < int(c.clip.X) || x >= int(c.clip.Right()) ||
			y < int(c.clip.Y) || y >= int(c.clip.Bottom()) {
			return
		}
	}

	idx := y*c.width + x
	if col.A == 255 {
		c.pixels[idx] = col
	} else if col.A > 0 {
		c.pixels[idx] = col.Blend(c.pixels[idx])
	}
}

// SetPixelDirect overwrites a pixel without blending or clip checks,
// for callers that have already done their own compositing arithmetic
// (glyph compositors). Out-of-range writes are dropped.
func (c *Canvas) SetPixelDirect(x, y int, col Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = col
}

// setPixelAA writes a pixel with fractional coverage by scaling the
// color's alpha before the blended write.
func (c *Canvas) setPixelAA(x, y int, col Color, coverage float64) {
	if coverage <= 0 {
		return
	}
	if coverage > 1 {
		coverage = 1
	}
	c.SetPixel(x, y, col.WithAlpha(uint8(float64(col.A)*coverage)))
}
