// Package history keeps a bounded trail of lattice snapshots so sessions can
// undo single steps or rewind to an arbitrary recorded generation.
package history

// DefaultCapacity is the number of frames retained before eviction.
const DefaultCapacity = 100

// Snapshot constrains frame types to values that can deep-copy themselves.
type Snapshot[F any] interface {
	Clone() F
}

// Ring is a bounded FIFO of deep snapshots. Pushing past capacity evicts the
// oldest frame. Undo pops LIFO; Scrub rewinds destructively: the target frame
// leaves the buffer and becomes current, and everything recorded after it is
// discarded, so resuming the simulation forks the timeline.
type Ring[F Snapshot[F]] struct {
	frames []F
	cap    int
}

// New constructs a Ring with the given capacity. Non-positive capacities fall
// back to DefaultCapacity.
func New[F Snapshot[F]](capacity int) *Ring[F] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring[F]{frames: make([]F, 0, capacity), cap: capacity}
}

// Len returns the number of retained frames.
func (r *Ring[F]) Len() int { return len(r.frames) }

// Push records a deep copy of the frame, evicting the oldest entry when the
// buffer is full.
func (r *Ring[F]) Push(frame F) {
	if len(r.frames) == r.cap {
		copy(r.frames, r.frames[1:])
		r.frames = r.frames[:r.cap-1]
	}
	r.frames = append(r.frames, frame.Clone())
}

// Undo removes and returns the most recent frame. The second result is false
// when there is nothing to undo.
func (r *Ring[F]) Undo() (F, bool) {
	var zero F
	if len(r.frames) == 0 {
		return zero, false
	}
	last := r.frames[len(r.frames)-1]
	r.frames[len(r.frames)-1] = zero
	r.frames = r.frames[:len(r.frames)-1]
	return last, true
}

// Scrub removes and returns the frame at index, discarding it and every
// frame recorded after it. Scrub(Len()-1) is equivalent to Undo. The second
// result is false for out-of-range indices, in which case the buffer is
// untouched.
func (r *Ring[F]) Scrub(index int) (F, bool) {
	var zero F
	if index < 0 || index >= len(r.frames) {
		return zero, false
	}
	frame := r.frames[index]
	for i := index; i < len(r.frames); i++ {
		r.frames[i] = zero
	}
	r.frames = r.frames[:index]
	return frame, true
}

// Clear discards all frames. Used on resize, where retained frames of
// mismatched dimensions would be meaningless.
func (r *Ring[F]) Clear() {
	var zero F
	for i := range r.frames {
		r.frames[i] = zero
	}
	r.frames = r.frames[:0]
}
