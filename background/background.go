// Package background simulates and renders the molecule background: particles
// that rest in place, scatter away from the pointer and link up with their
// neighbours. Hosts supply the drawing surface, its container and the frame
// scheduler.
package background

import "math/rand"

// Background wires the pointer, field, linker, render loop and surface manager together
type Background struct {
	Config  Config
	Pointer *Tracker
	Field   *Field
	Linker  *Linker
	Loop    *Loop
	Surface *Manager
}

// New creates a background drawing on surface inside container.
// A nil rng is seeded from the clock.
func New(config Config, surface Surface, container Container, scheduler Scheduler, rng *rand.Rand) *Background {
	pointer := NewTracker(config.PointerRadius)
	field := NewField(config, rng)
	linker := NewLinker(config)

	return &Background{
		Config:  config,
		Pointer: pointer,
		Field:   field,
		Linker:  linker,
		Loop:    NewLoop(surface, field, linker, pointer, scheduler),
		Surface: NewManager(surface, container, field),
	}
}

// Start sizes the surface, seeds the particles and schedules the first frame
func (b *Background) Start() {
	b.Surface.OnResize()
	b.Loop.Start()
}

// Resize handles a resize notification from the host
func (b *Background) Resize() {
	b.Surface.OnResize()
}
