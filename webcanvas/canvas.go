//go:build js && wasm

// Package webcanvas runs the molecule background on an HTML canvas when
// compiled for GOOS=js GOARCH=wasm.
package webcanvas

import (
	"image/color"
	"math"
	"syscall/js"
)

// Canvas is a background.Surface over a 2D canvas context
type Canvas struct {
	el  js.Value
	ctx js.Value
}

// Acquire looks up the canvas element with the given id and its 2D context
func Acquire(id string) (*Canvas, bool) {
	el := js.Global().Get("document").Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	ctx := el.Call("getContext", "2d")
	if ctx.IsNull() || ctx.IsUndefined() {
		return nil, false
	}
	return &Canvas{el: el, ctx: ctx}, true
}

// Size returns the canvas pixel dimensions
func (c *Canvas) Size() (int, int) {
	return c.el.Get("width").Int(), c.el.Get("height").Int()
}

// Resize sets the canvas pixel dimensions
func (c *Canvas) Resize(width, height int) {
	c.el.Set("width", width)
	c.el.Set("height", height)
}

// Clear erases the whole canvas, letting the page show through
func (c *Canvas) Clear() {
	w, h := c.Size()
	c.ctx.Call("clearRect", 0, 0, w, h)
}

// SetShadow sets the canvas shadow used by later fills
func (c *Canvas) SetShadow(blur float64, clr color.Color) {
	c.ctx.Set("shadowBlur", blur)
	c.ctx.Set("shadowColor", cssColor(clr))
}

// FillCircle fills an arc of the given radius
func (c *Canvas) FillCircle(x, y, radius float64, clr color.Color) {
	c.ctx.Set("fillStyle", cssColor(clr))
	c.ctx.Call("beginPath")
	c.ctx.Call("arc", x, y, radius, 0, math.Pi*2)
	c.ctx.Call("fill")
}

// StrokeLine strokes a path between two points
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	c.ctx.Set("strokeStyle", cssColor(clr))
	c.ctx.Set("lineWidth", width)
	c.ctx.Call("beginPath")
	c.ctx.Call("moveTo", x0, y0)
	c.ctx.Call("lineTo", x1, y1)
	c.ctx.Call("stroke")
}
