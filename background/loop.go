package background

import (
	"image/color"
	"log"
)

// FrameStats describes the most recent frame
type FrameStats struct {
	Frames     uint64 // ticks run so far
	Particles  int
	Generation uint64
	Lines      int // links drawn in the last frame
}

// Loop repaints the background once per frame and reschedules itself
type Loop struct {
	surface   Surface
	field     *Field
	linker    *Linker
	pointer   PointerSource
	scheduler Scheduler

	stats FrameStats
}

// NewLoop creates a render loop. A nil surface is logged and leaves the loop
// running without drawing anything.
func NewLoop(surface Surface, field *Field, linker *Linker, pointer PointerSource, scheduler Scheduler) *Loop {
	if surface == nil {
		log.Printf("background: drawing surface not available, nothing will be rendered")
	}
	return &Loop{
		surface:   surface,
		field:     field,
		linker:    linker,
		pointer:   pointer,
		scheduler: scheduler,
	}
}

// Start schedules the first frame
func (l *Loop) Start() {
	l.scheduler.RequestFrame(l.Tick)
}

// Tick clears the surface, draws links, steps every particle and schedules
// the next frame
func (l *Loop) Tick() {
	if l.surface != nil {
		l.surface.Clear()
		// Glow left over from the last particle must not bleed into links
		l.surface.SetShadow(0, color.Transparent)

		lines := l.linker.LinkAll(l.surface, l.field.Particles())
		l.field.StepAll(l.surface, l.pointer.Position())

		l.stats.Lines = lines
	}

	l.stats.Frames++
	l.stats.Particles = l.field.Len()
	l.stats.Generation = l.field.Generation()

	l.scheduler.RequestFrame(l.Tick)
}

// Stats returns statistics about the last frame
func (l *Loop) Stats() FrameStats {
	return l.stats
}
