//go:build js && wasm

package webcanvas

import (
	"log"
	"math/rand"
	"syscall/js"

	"moleculebg/background"
)

// Default element lookups used by Run
const (
	CanvasID          = "molecule-bg"
	ContainerSelector = "section.min-h-screen"
)

// Container sizes the canvas from a page element's content box
type Container struct {
	Selector string
}

// ContentBox returns the element's client size, or ok=false if the element is missing
func (c Container) ContentBox() (int, int, bool) {
	el := js.Global().Get("document").Call("querySelector", c.Selector)
	if el.IsNull() || el.IsUndefined() {
		return 0, 0, false
	}
	return el.Get("clientWidth").Int(), el.Get("clientHeight").Int(), true
}

// AnimationFrames schedules frames with window.requestAnimationFrame
type AnimationFrames struct {
	pending  func()
	callback js.Func
}

// NewAnimationFrames creates a scheduler bound to the browser's repaint cycle
func NewAnimationFrames() *AnimationFrames {
	a := &AnimationFrames{}
	a.callback = js.FuncOf(func(this js.Value, args []js.Value) any {
		fn := a.pending
		a.pending = nil
		if fn != nil {
			fn()
		}
		return nil
	})
	return a
}

// RequestFrame runs fn before the next repaint
func (a *AnimationFrames) RequestFrame(fn func()) {
	a.pending = fn
	js.Global().Call("requestAnimationFrame", a.callback)
}

// Run starts the background on the page and wires window resize and
// mousemove events to it. A missing canvas is logged and nothing is drawn.
func Run(cfg background.Config, rng *rand.Rand) *background.Background {
	var surface background.Surface
	if c, ok := Acquire(CanvasID); ok {
		surface = c
	} else {
		log.Printf("webcanvas: canvas #%s not found", CanvasID)
	}

	bg := background.New(cfg, surface, Container{Selector: ContainerSelector}, NewAnimationFrames(), rng)

	window := js.Global().Get("window")
	window.Call("addEventListener", "resize", js.FuncOf(func(this js.Value, args []js.Value) any {
		bg.Resize()
		return nil
	}))
	window.Call("addEventListener", "mousemove", js.FuncOf(func(this js.Value, args []js.Value) any {
		e := args[0]
		bg.Pointer.SetPosition(e.Get("clientX").Float(), e.Get("clientY").Float())
		return nil
	}))

	bg.Start()
	return bg
}
