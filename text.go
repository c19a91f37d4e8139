package mr

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DrawString composites text onto the canvas at position (x, y),
// where y is the baseline, honoring the current translation and clip.
//
// The face is a pre-shaped glyph source (an x/image font.Face); glyph
// shaping itself lives outside this engine. Glyph coverage blends
// through the canvas's pixel choke point, so text composites
// correctly over whatever is already drawn.
func (c *Canvas) DrawString(s string, face font.Face, x, y float64, col Color) {
	if s == "" || face == nil {
		return
	}

	d := &font.Drawer{
		Dst:  c,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6((x + c.tx) * 64),
			Y: fixed.Int26_6((y + c.ty) * 64),
		},
	}
	d.DrawString(s)
}

// MeasureString returns the dimensions of text in pixels: the
// horizontal advance and the line height (ascent + descent).
func (c *Canvas) MeasureString(s string, face font.Face) (w, h float64) {
	if s == "" || face == nil {
		return 0, 0
	}
	advance := font.MeasureString(face, s)
	metrics := face.Metrics()
	return float64(advance) / 64, float64(metrics.Ascent+metrics.Descent) / 64
}
