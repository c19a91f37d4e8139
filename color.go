package mr

import "image/color"

// Color is a straight-alpha RGBA color with 8-bit channels.
// A == 0 is fully transparent, A == 255 fully opaque.
type Color struct {
	R, G, B, A uint8
}

// NewColor creates a color from RGBA components.
func NewColor(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// FromHex creates an opaque color from a 0xRRGGBB value.
func FromHex(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA",
// each with an optional leading '#'.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Color{A: 255}
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Blend composites c over dst using the Porter-Duff "over" operator
// in straight (non-premultiplied) alpha space.
//
// A fully transparent source passes dst through untouched. The common
// opaque-destination case uses pure integer arithmetic scaled by 255;
// the general case divides by the computed output alpha, returning
// Transparent when that alpha is zero.
func (c Color) Blend(dst Color) Color {
	if c.A == 0 {
		return dst
	}

	if dst.A == 255 {
		if c.A == 255 {
			return c
		}
		a := uint32(c.A)
		ia := 255 - a
		return Color{
			R: uint8((uint32(c.R)*a + uint32(dst.R)*ia) / 255),
			G: uint8((uint32(c.G)*a + uint32(dst.G)*ia) / 255),
			B: uint8((uint32(c.B)*a + uint32(dst.B)*ia) / 255),
			A: 255,
		}
	}

	srcA := uint32(c.A)
	dstA := uint32(dst.A) * (255 - srcA) / 255
	outA := srcA + dstA
	if outA == 0 {
		return Transparent
	}
	return Color{
		R: uint8((uint32(c.R)*srcA + uint32(dst.R)*dstA) / outA),
		G: uint8((uint32(c.G)*srcA + uint32(dst.G)*dstA) / outA),
		B: uint8((uint32(c.B)*srcA + uint32(dst.B)*dstA) / outA),
		A: uint8(outA),
	}
}

// RGBA implements the color.Color interface with straight-alpha
// (NRGBA) semantics.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Common colors
var (
	Transparent = Color{}
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
)
