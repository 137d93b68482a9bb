package softuart

import "sync/atomic"

// Ring is a fixed capacity byte FIFO with one producer and one consumer,
// possibly in different execution contexts. The count is the only field
// both sides update; it is atomic, and foreground updates additionally
// happen with interrupts masked.
type Ring struct {
	buf [QueueSize]byte
	put uint8
	get uint8
	n   atomic.Int32
}

// Len returns the number of queued bytes.
func (r *Ring) Len() int {
	return int(r.n.Load())
}

// Free returns the number of free slots.
func (r *Ring) Free() int {
	return QueueSize - r.Len()
}

// Push appends b. It returns false and leaves the queue untouched when full.
func (r *Ring) Push(b byte) bool {
	if r.Len() >= QueueSize {
		return false
	}
	r.buf[r.put] = b
	if r.put++; r.put >= QueueSize {
		r.put = 0
	}
	r.n.Add(1)
	return true
}

// Pop removes and returns the oldest byte.
func (r *Ring) Pop() (byte, bool) {
	if r.Len() == 0 {
		return 0, false
	}
	b := r.buf[r.get]
	if r.get++; r.get >= QueueSize {
		r.get = 0
	}
	r.n.Add(-1)
	return b, true
}

// Peek returns the oldest byte without removing it.
func (r *Ring) Peek() (byte, bool) {
	if r.Len() == 0 {
		return 0, false
	}
	return r.buf[r.get], true
}

// Reset empties the queue.
func (r *Ring) Reset() {
	r.put, r.get = 0, 0
	r.n.Store(0)
}
