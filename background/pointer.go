package background

import "gonum.org/v1/gonum/spatial/r2"

// Pointer is a snapshot of the pointer as seen by one frame
type Pointer struct {
	X, Y   float64
	Radius float64 // influence radius
	Set    bool    // false until the first pointer move
}

// Pos returns the pointer coordinates as a vector
func (p Pointer) Pos() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// PointerSource provides the pointer snapshot for a frame
type PointerSource interface {
	Position() Pointer
}

// Tracker records the latest pointer position reported by the host.
// Once set it stays set: hosts do not report the pointer leaving.
type Tracker struct {
	state Pointer
}

// NewTracker creates a tracker with no known position
func NewTracker(radius float64) *Tracker {
	return &Tracker{state: Pointer{Radius: radius}}
}

// SetPosition records the pointer coordinates from a move notification
func (t *Tracker) SetPosition(x, y float64) {
	t.state.X = x
	t.state.Y = y
	t.state.Set = true
}

// Position returns a copy of the current pointer state
func (t *Tracker) Position() Pointer {
	return t.state
}
