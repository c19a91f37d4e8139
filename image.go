package mr

import (
	"image"
	"math"
)

// FitMode is the image-to-rectangle scaling policy used by DrawImage.
type FitMode int

const (
	// FitScaleToFill scales each axis independently so the image
	// always fills the destination exactly.
	FitScaleToFill FitMode = iota

	// FitAspectFit scales uniformly so the whole image is visible,
	// centered; the destination may be partially left untouched.
	FitAspectFit

	// FitAspectFill scales uniformly so the image covers the whole
	// destination, centered; overflow is cropped.
	FitAspectFill
)

// ParseFitMode maps a fit-mode name ("aspectFit", "aspectFill",
// "scaleToFill") to its FitMode. Unknown names map to FitScaleToFill.
func ParseFitMode(s string) FitMode {
	switch s {
	case "aspectFit":
		return FitAspectFit
	case "aspectFill":
		return FitAspectFill
	default:
		return FitScaleToFill
	}
}

// String returns the fit-mode name.
func (m FitMode) String() string {
	switch m {
	case FitAspectFit:
		return "aspectFit"
	case FitAspectFill:
		return "aspectFill"
	default:
		return "scaleToFill"
	}
}

// fitMapping returns the per-axis scale and centering offset of the
// fit-mode mapping from a srcW x srcH image onto a w x h destination.
func fitMapping(mode FitMode, srcW, srcH, w, h float64) (scaleX, scaleY, offsetX, offsetY float64) {
	switch mode {
	case FitAspectFit:
		scale := math.Min(w/srcW, h/srcH)
		return scale, scale, (w - srcW*scale) / 2, (h - srcH*scale) / 2
	case FitAspectFill:
		scale := math.Max(w/srcW, h/srcH)
		return scale, scale, (w - srcW*scale) / 2, (h - srcH*scale) / 2
	default:
		return w / srcW, h / srcH, 0, 0
	}
}

// DrawImage writes resampled source pixels into the destination
// rectangle (x, y, w, h), honoring the current translation and clip.
//
// src holds raw straight-alpha RGBA bytes, row-major, 4 bytes per
// pixel. Each retained destination pixel is inverse-mapped through
// the fit-mode transform and sampled with bilinear interpolation,
// clamped at the source edges; the result goes through the blended
// SetPixel choke point so image alpha composites correctly.
//
// A positive radius excludes destination pixels in the four corner
// regions whose distance to the corner's rounding center exceeds the
// radius; excluded pixels are skipped entirely. A short source buffer
// draws nothing.
func (c *Canvas) DrawImage(src []uint8, srcW, srcH int, x, y, w, h float64, mode FitMode, radius float64) {
	if srcW <= 0 || srcH <= 0 || len(src) < srcW*srcH*4 {
		Logger().Debug("mr: image blit rejected",
			"len", len(src), "want", srcW*srcH*4)
		return
	}
	if w <= 0 || h <= 0 {
		return
	}

	x += c.tx
	y += c.ty

	fw := float64(srcW)
	fh := float64(srcH)
	scaleX, scaleY, offsetX, offsetY := fitMapping(mode, fw, fh, w, h)

	destX0 := int(x)
	destY0 := int(y)
	destX1 := int(x + w)
	destY1 := int(y + h)

	hasRadius := radius > 0

	for destY := destY0; destY < destY1; destY++ {
		for destX := destX0; destX < destX1; destX++ {
			if hasRadius && inCornerCut(float64(destX)-x, float64(destY)-y, w, h, radius) {
				continue
			}

			localX := (float64(destX) - x - offsetX) / scaleX
			localY := (float64(destY) - y - offsetY) / scaleY

			if localX < 0 || localY < 0 || localX >= fw || localY >= fh {
				continue
			}

			c.SetPixel(destX, destY, sampleBilinear(src, srcW, srcH, localX, localY))
		}
	}
}

// inCornerCut reports whether the point (dx, dy), relative to the
// destination rectangle's top-left corner, falls in one of the four
// corner regions but outside that corner's rounding circle.
func inCornerCut(dx, dy, w, h, radius float64) bool {
	outside := func(cornerX, cornerY float64) bool {
		cdx := dx - cornerX
		cdy := dy - cornerY
		return cdx*cdx+cdy*cdy > radius*radius
	}

	switch {
	case dx < radius && dy < radius:
		return outside(radius, radius)
	case dx > w-radius && dy < radius:
		return outside(w-radius, radius)
	case dx < radius && dy > h-radius:
		return outside(radius, h-radius)
	case dx > w-radius && dy > h-radius:
		return outside(w-radius, h-radius)
	}
	return false
}

// sampleBilinear interpolates the four source texels nearest to the
// fractional coordinate (localX, localY), clamping at the edges.
func sampleBilinear(src []uint8, srcW, srcH int, localX, localY float64) Color {
	sx := int(localX)
	sy := int(localY)
	fx := localX - float64(sx)
	fy := localY - float64(sy)

	sample := func(x, y int) (r, g, b, a float64) {
		if x > srcW-1 {
			x = srcW - 1
		}
		if y > srcH-1 {
			y = srcH - 1
		}
		i := (y*srcW + x) * 4
		return float64(src[i]), float64(src[i+1]), float64(src[i+2]), float64(src[i+3])
	}

	r00, g00, b00, a00 := sample(sx, sy)
	r10, g10, b10, a10 := sample(sx+1, sy)
	r01, g01, b01, a01 := sample(sx, sy+1)
	r11, g11, b11, a11 := sample(sx+1, sy+1)

	lerp := func(a, b, t float64) float64 { return a + (b-a)*t }
	bilerp := func(c00, c10, c01, c11 float64) uint8 {
		return uint8(lerp(lerp(c00, c10, fx), lerp(c01, c11, fx), fy))
	}

	return Color{
		R: bilerp(r00, r10, r01, r11),
		G: bilerp(g00, g10, g01, g11),
		B: bilerp(b00, b10, b01, b11),
		A: bilerp(a00, a10, a01, a11),
	}
}

// DrawImageRGBA draws a stdlib *image.RGBA through DrawImage.
// Note: image.RGBA stores premultiplied alpha; fully opaque images
// (the common case for decoded photos) are unaffected.
func (c *Canvas) DrawImageRGBA(img *image.RGBA, x, y, w, h float64, mode FitMode, radius float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	srcW := b.Dx()
	srcH := b.Dy()
	if srcW <= 0 || srcH <= 0 {
		return
	}

	pix := img.Pix
	if img.Stride != srcW*4 || b.Min != (image.Point{}) {
		// Repack into a tight row-major buffer.
		pix = make([]uint8, srcW*srcH*4)
		for row := 0; row < srcH; row++ {
			start := img.PixOffset(b.Min.X, b.Min.Y+row)
			copy(pix[row*srcW*4:(row+1)*srcW*4], img.Pix[start:start+srcW*4])
		}
	}

	c.DrawImage(pix, srcW, srcH, x, y, w, h, mode, radius)
}
