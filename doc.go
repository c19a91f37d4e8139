// Package mr provides a pure-Go 2D software rasterizer.
//
// # Overview
//
// mr is the drawing backend of a markup-driven UI runtime. It renders
// into a plain RGBA pixel buffer with no GPU and no OS drawing API:
// a Canvas with a save/restore/clip/translate state stack, a vector
// Path with quadratic and cubic curve flattening, scanline polygon
// fill with 4x sub-scanline anti-aliasing, analytic circle and Wu
// line rasterization, straight-alpha src-over compositing, and a
// bilinear-resampling image blitter with three fit modes.
//
// # Quick Start
//
//	import "github.com/minirender/mr"
//
//	c := mr.New(512, 512)
//	c.Clear(mr.White)
//
//	p := mr.NewPath()
//	p.AddRoundRect(100, 100, 312, 200, 24)
//	c.DrawPath(p, mr.NewPaint().WithColor(mr.RGB(52, 152, 219)))
//
//	c.SavePNG("output.png")
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down.
// Angles are in radians. The transform stack supports axis-aligned
// translation only; clipping is a single rectangle intersected per
// ClipRect call.
//
// # Error Handling
//
// Drawing operations never fail: out-of-range or degenerate geometry
// draws nothing. Only PNG export returns an error, wrapping
// ErrExportFailed.
//
// # Concurrency
//
// A Canvas is not safe for concurrent use. Give each rendering
// context its own Canvas, or serialize access externally.
package mr

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"
)
