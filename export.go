package mr

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// ErrExportFailed is the single error kind surfaced by the export
// boundary. Drawing operations themselves never fail.
var ErrExportFailed = errors.New("mr: export failed")

// ToRGBA serializes the pixel buffer to a straight-alpha RGBA byte
// array, row-major, 4 bytes per pixel.
func (c *Canvas) ToRGBA() []uint8 {
	data := make([]uint8, 0, len(c.pixels)*4)
	for _, p := range c.pixels {
		data = append(data, p.R, p.G, p.B, p.A)
	}
	return data
}

// ToImage copies the canvas into a stdlib image. NRGBA matches the
// canvas's straight-alpha storage byte for byte.
func (c *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	copy(img.Pix, c.ToRGBA())
	return img
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	p := c.GetPixel(x, y)
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// Set implements the draw.Image interface. Writes route through the
// blended SetPixel choke point, so stdlib compositors drawing into
// the canvas (e.g. font rasterizers) blend and clip correctly.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.SetPixel(x, y, FromColor(col))
}

// EncodePNG writes the canvas as a PNG stream.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.ToImage()); err != nil {
		return fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	return nil
}

// SavePNG saves the canvas to a PNG file. Failures wrap
// ErrExportFailed; callers are expected to log and continue.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		Logger().Debug("mr: png export failed", "path", path, "err", err)
		return fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := c.EncodePNG(f); err != nil {
		Logger().Debug("mr: png export failed", "path", path, "err", err)
		return err
	}
	return nil
}
