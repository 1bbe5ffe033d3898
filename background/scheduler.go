package background

// Scheduler runs a callback before the host's next repaint
type Scheduler interface {
	RequestFrame(fn func())
}

// FrameQueue is a single-slot scheduler for hosts that pull frames
// from their own loop
type FrameQueue struct {
	pending func()
}

// RequestFrame stores fn as the next frame, replacing any earlier request
func (q *FrameQueue) RequestFrame(fn func()) {
	q.pending = fn
}

// Pending reports whether a frame is waiting to run
func (q *FrameQueue) Pending() bool {
	return q.pending != nil
}

// RunPending runs the waiting frame, if any, and reports whether one ran
func (q *FrameQueue) RunPending() bool {
	fn := q.pending
	if fn == nil {
		return false
	}
	q.pending = nil
	fn()
	return true
}
