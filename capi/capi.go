// Package main exposes the mr rasterizer through a C-linkage surface
// for embedding into host applications written in other languages.
//
// Build as a shared library:
//
//	go build -buildmode=c-shared -o libmr.so ./capi
//
// Canvas and Path handles created through this surface must be
// destroyed through this surface (mr_canvas_free, mr_path_free);
// there is no automatic lifetime management across the boundary.
package main

/*
#include <stdint.h>
#include <stdbool.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/minirender/mr"
)

// canvasFrom resolves a canvas handle. A zero handle yields nil so
// every entry point degrades to a no-op, mirroring the null checks of
// a C API.
func canvasFrom(h C.uintptr_t) *mr.Canvas {
	if h == 0 {
		return nil
	}
	c, _ := cgo.Handle(h).Value().(*mr.Canvas)
	return c
}

func pathFrom(h C.uintptr_t) *mr.Path {
	if h == 0 {
		return nil
	}
	p, _ := cgo.Handle(h).Value().(*mr.Path)
	return p
}

// paintFrom builds a Paint from the explicit channel and style
// arguments used across the boundary. style: 0 fill, 1 stroke,
// anything else fill-and-stroke.
func paintFrom(r, g, b, a C.uint8_t, style C.uint8_t, strokeWidth C.float) mr.Paint {
	paint := mr.NewPaint().
		WithColor(mr.NewColor(uint8(r), uint8(g), uint8(b), uint8(a))).
		WithStrokeWidth(float64(strokeWidth))
	switch style {
	case 0:
		return paint.WithStyle(mr.StyleFill)
	case 1:
		return paint.WithStyle(mr.StyleStroke)
	default:
		return paint.WithStyle(mr.StyleFillAndStroke)
	}
}

//export mr_canvas_new
func mr_canvas_new(width, height C.uint32_t) C.uintptr_t {
	return C.uintptr_t(cgo.NewHandle(mr.New(int(width), int(height))))
}

//export mr_canvas_free
func mr_canvas_free(canvas C.uintptr_t) {
	if canvas != 0 {
		cgo.Handle(canvas).Delete()
	}
}

//export mr_canvas_width
func mr_canvas_width(canvas C.uintptr_t) C.uint32_t {
	if c := canvasFrom(canvas); c != nil {
		return C.uint32_t(c.Width())
	}
	return 0
}

//export mr_canvas_height
func mr_canvas_height(canvas C.uintptr_t) C.uint32_t {
	if c := canvasFrom(canvas); c != nil {
		return C.uint32_t(c.Height())
	}
	return 0
}

//export mr_canvas_clear
func mr_canvas_clear(canvas C.uintptr_t, r, g, b, a C.uint8_t) {
	if c := canvasFrom(canvas); c != nil {
		c.Clear(mr.NewColor(uint8(r), uint8(g), uint8(b), uint8(a)))
	}
}

//export mr_canvas_save
func mr_canvas_save(canvas C.uintptr_t) {
	if c := canvasFrom(canvas); c != nil {
		c.Save()
	}
}

//export mr_canvas_restore
func mr_canvas_restore(canvas C.uintptr_t) {
	if c := canvasFrom(canvas); c != nil {
		c.Restore()
	}
}

//export mr_canvas_translate
func mr_canvas_translate(canvas C.uintptr_t, dx, dy C.float) {
	if c := canvasFrom(canvas); c != nil {
		c.Translate(float64(dx), float64(dy))
	}
}

//export mr_canvas_clip_rect
func mr_canvas_clip_rect(canvas C.uintptr_t, x, y, w, h C.float) {
	if c := canvasFrom(canvas); c != nil {
		c.ClipRect(mr.NewRect(float64(x), float64(y), float64(w), float64(h)))
	}
}

//export mr_canvas_reset_clip
func mr_canvas_reset_clip(canvas C.uintptr_t) {
	if c := canvasFrom(canvas); c != nil {
		c.ResetClip()
	}
}

//export mr_canvas_draw_rect
func mr_canvas_draw_rect(canvas C.uintptr_t, x, y, w, h C.float, r, g, b, a C.uint8_t, style C.uint8_t, strokeWidth C.float) {
	if c := canvasFrom(canvas); c != nil {
		c.DrawRect(mr.NewRect(float64(x), float64(y), float64(w), float64(h)),
			paintFrom(r, g, b, a, style, strokeWidth))
	}
}

//export mr_canvas_draw_circle
func mr_canvas_draw_circle(canvas C.uintptr_t, cx, cy, radius C.float, r, g, b, a C.uint8_t, style C.uint8_t, strokeWidth C.float) {
	if c := canvasFrom(canvas); c != nil {
		c.DrawCircle(float64(cx), float64(cy), float64(radius),
			paintFrom(r, g, b, a, style, strokeWidth))
	}
}

//export mr_canvas_draw_line
func mr_canvas_draw_line(canvas C.uintptr_t, x0, y0, x1, y1 C.float, r, g, b, a C.uint8_t, strokeWidth C.float) {
	if c := canvasFrom(canvas); c != nil {
		c.DrawLine(float64(x0), float64(y0), float64(x1), float64(y1),
			paintFrom(r, g, b, a, 1, strokeWidth))
	}
}

//export mr_canvas_draw_path
func mr_canvas_draw_path(canvas C.uintptr_t, path C.uintptr_t, r, g, b, a C.uint8_t, style C.uint8_t, strokeWidth C.float) {
	c := canvasFrom(canvas)
	p := pathFrom(path)
	if c != nil && p != nil {
		c.DrawPath(p, paintFrom(r, g, b, a, style, strokeWidth))
	}
}

//export mr_canvas_draw_image
func mr_canvas_draw_image(canvas C.uintptr_t, data *C.uint8_t, dataLen C.size_t, imgW, imgH C.uint32_t, x, y, w, h C.float, mode *C.char, radius C.float) {
	c := canvasFrom(canvas)
	if c == nil || data == nil {
		return
	}
	src := unsafe.Slice((*uint8)(data), int(dataLen))
	c.DrawImage(src, int(imgW), int(imgH),
		float64(x), float64(y), float64(w), float64(h),
		mr.ParseFitMode(C.GoString(mode)), float64(radius))
}

//export mr_canvas_get_pixel
func mr_canvas_get_pixel(canvas C.uintptr_t, x, y C.int32_t, r, g, b, a *C.uint8_t) {
	c := canvasFrom(canvas)
	if c == nil {
		return
	}
	p := c.GetPixel(int(x), int(y))
	if r != nil {
		*r = C.uint8_t(p.R)
	}
	if g != nil {
		*g = C.uint8_t(p.G)
	}
	if b != nil {
		*b = C.uint8_t(p.B)
	}
	if a != nil {
		*a = C.uint8_t(p.A)
	}
}

//export mr_canvas_set_pixel
func mr_canvas_set_pixel(canvas C.uintptr_t, x, y C.int32_t, r, g, b, a C.uint8_t) {
	if c := canvasFrom(canvas); c != nil {
		c.SetPixel(int(x), int(y), mr.NewColor(uint8(r), uint8(g), uint8(b), uint8(a)))
	}
}

//export mr_canvas_set_pixel_direct
func mr_canvas_set_pixel_direct(canvas C.uintptr_t, x, y C.int32_t, r, g, b, a C.uint8_t) {
	if c := canvasFrom(canvas); c != nil {
		c.SetPixelDirect(int(x), int(y), mr.NewColor(uint8(r), uint8(g), uint8(b), uint8(a)))
	}
}

// mr_canvas_get_pixels copies the serialized RGBA buffer into out,
// returning the number of bytes written.
//
//export mr_canvas_get_pixels
func mr_canvas_get_pixels(canvas C.uintptr_t, out *C.uint8_t, outLen C.size_t) C.size_t {
	c := canvasFrom(canvas)
	if c == nil || out == nil {
		return 0
	}
	data := c.ToRGBA()
	dst := unsafe.Slice((*uint8)(out), int(outLen))
	return C.size_t(copy(dst, data))
}

//export mr_canvas_save_png
func mr_canvas_save_png(canvas C.uintptr_t, path *C.char) C.bool {
	c := canvasFrom(canvas)
	if c == nil || path == nil {
		return false
	}
	return c.SavePNG(C.GoString(path)) == nil
}

//export mr_path_new
func mr_path_new() C.uintptr_t {
	return C.uintptr_t(cgo.NewHandle(mr.NewPath()))
}

//export mr_path_free
func mr_path_free(path C.uintptr_t) {
	if path != 0 {
		cgo.Handle(path).Delete()
	}
}

//export mr_path_move_to
func mr_path_move_to(path C.uintptr_t, x, y C.float) {
	if p := pathFrom(path); p != nil {
		p.MoveTo(float64(x), float64(y))
	}
}

//export mr_path_line_to
func mr_path_line_to(path C.uintptr_t, x, y C.float) {
	if p := pathFrom(path); p != nil {
		p.LineTo(float64(x), float64(y))
	}
}

//export mr_path_quad_to
func mr_path_quad_to(path C.uintptr_t, cx, cy, x, y C.float) {
	if p := pathFrom(path); p != nil {
		p.QuadTo(float64(cx), float64(cy), float64(x), float64(y))
	}
}

//export mr_path_cubic_to
func mr_path_cubic_to(path C.uintptr_t, c1x, c1y, c2x, c2y, x, y C.float) {
	if p := pathFrom(path); p != nil {
		p.CubicTo(float64(c1x), float64(c1y), float64(c2x), float64(c2y), float64(x), float64(y))
	}
}

//export mr_path_close
func mr_path_close(path C.uintptr_t) {
	if p := pathFrom(path); p != nil {
		p.Close()
	}
}

//export mr_path_add_rect
func mr_path_add_rect(path C.uintptr_t, x, y, w, h C.float) {
	if p := pathFrom(path); p != nil {
		p.AddRect(float64(x), float64(y), float64(w), float64(h))
	}
}

//export mr_path_add_round_rect
func mr_path_add_round_rect(path C.uintptr_t, x, y, w, h, radius C.float) {
	if p := pathFrom(path); p != nil {
		p.AddRoundRect(float64(x), float64(y), float64(w), float64(h), float64(radius))
	}
}

//export mr_path_add_oval
func mr_path_add_oval(path C.uintptr_t, cx, cy, rx, ry C.float) {
	if p := pathFrom(path); p != nil {
		p.AddOval(float64(cx), float64(cy), float64(rx), float64(ry))
	}
}

func main() {}
