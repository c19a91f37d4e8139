package mr

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// Canvas doubles as a stdlib image for interop with image/draw and
// the font rasterizer.
var (
	_ image.Image = (*Canvas)(nil)
	_ draw.Image  = (*Canvas)(nil)
)

func TestToRGBALayout(t *testing.T) {
	c := New(2, 1)
	c.SetPixelDirect(0, 0, NewColor(1, 2, 3, 4))
	c.SetPixelDirect(1, 0, NewColor(5, 6, 7, 8))

	got := c.ToRGBA()
	want := []uint8{1, 2, 3, 4, 5, 6, 7, 8}
	if !bytes.Equal(got, want) {
		t.Errorf("ToRGBA = %v, want %v", got, want)
	}
}

func TestImageInterface(t *testing.T) {
	c := New(3, 2)
	c.Clear(Red.WithAlpha(100))

	if c.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds = %v", c.Bounds())
	}
	if c.ColorModel() != color.NRGBAModel {
		t.Error("unexpected color model")
	}
	if got := c.At(1, 1); got != (color.NRGBA{R: 255, A: 100}) {
		t.Errorf("At = %v", got)
	}
	// Out-of-range sampling is transparent, matching GetPixel.
	if got := c.At(-1, 0); got != (color.NRGBA{}) {
		t.Errorf("At out of range = %v", got)
	}
}

func TestSetBlendsThroughChokePoint(t *testing.T) {
	c := New(4, 4)
	c.Clear(White)
	c.ClipRect(NewRect(0, 0, 2, 2))

	// draw.Image writes respect the clip and blend translucent source.
	c.Set(1, 1, color.NRGBA{R: 255, A: 128})
	if got := c.GetPixel(1, 1); !colorNear(got, NewColor(255, 127, 127, 255), 1) {
		t.Errorf("blended Set = %v", got)
	}
	c.Set(3, 3, color.NRGBA{R: 255, A: 255})
	if c.GetPixel(3, 3) != White {
		t.Errorf("Set ignored clip: %v", c.GetPixel(3, 3))
	}
}

func TestEncodePNGRoundtrip(t *testing.T) {
	c := New(8, 8)
	c.Clear(White)
	c.DrawRect(NewRect(2, 2, 4, 4), NewPaint().WithColor(Blue).WithAntiAlias(false))

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 8, 8) {
		t.Errorf("decoded bounds = %v", img.Bounds())
	}
	r, g, b, a := img.At(4, 4).RGBA()
	if r != 0 || g != 0 || b != 0xffff || a != 0xffff {
		t.Errorf("decoded pixel = (%d, %d, %d, %d), want blue", r, g, b, a)
	}
}

func TestSavePNG(t *testing.T) {
	c := New(4, 4)
	c.Clear(Green)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open saved file: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("saved file is not a valid PNG: %v", err)
	}
}

func TestSavePNGBadPath(t *testing.T) {
	c := New(4, 4)
	err := c.SavePNG(filepath.Join(t.TempDir(), "missing", "dir", "out.png"))
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
	if !errors.Is(err, ErrExportFailed) {
		t.Errorf("error %v does not wrap ErrExportFailed", err)
	}
}
