package softuart

import "github.com/robotalks/trommel.go/pkg/hal"

type rxState int

const (
	rxSyncing   rxState = iota // waiting for 11 idle bit times
	rxWaitStart                // waiting for a start bit
	rxBit0                     // sampling data bit 0
	rxBit1
	rxBit2
	rxBit3
	rxBit4
	rxBit5
	rxBit6
	rxBit7
	rxStop // sampling the stop bit
)

var rxNext = [...]rxState{
	rxBit0: rxBit1,
	rxBit1: rxBit2,
	rxBit2: rxBit3,
	rxBit3: rxBit4,
	rxBit4: rxBit5,
	rxBit5: rxBit6,
	rxBit6: rxBit7,
	rxBit7: rxStop,
}

func (s rxState) sampling() bool {
	return s >= rxBit0 && s <= rxStop
}

// Receiver decodes the input line into bytes.
//
// While a frame is sampled the edge interrupt is disabled, and while the
// edge interrupt is enabled the sampler is disabled. The two handlers
// therefore never race and take no locks.
type Receiver struct {
	pin   hal.InputPin
	edge  hal.EdgeDetector
	timer hal.CompareTimer
	mask  hal.InterruptMask

	state    rxState
	shift    byte
	dropNext bool
	queue    Ring

	frames, framingErrors, overruns, discarded, noise counter
}

// NewReceiver creates a Receiver and attaches its interrupt handlers.
// Init must be called before it receives anything.
func NewReceiver(pin hal.InputPin, edge hal.EdgeDetector, timer hal.CompareTimer, mask hal.InterruptMask) *Receiver {
	r := &Receiver{pin: pin, edge: edge, timer: timer, mask: mask}
	edge.Attach(r.onEdge)
	timer.Attach(r.onSample)
	return r
}

// Init resets the receiver and starts waiting for the line to go idle.
func (r *Receiver) Init() {
	r.mask.Lock()
	defer r.mask.Unlock()
	r.edge.Disable()
	r.timer.Disable()
	r.shift = 0
	r.dropNext = false
	r.queue.Reset()
	r.state = rxSyncing
	r.armSync()
	for _, c := range []*counter{&r.frames, &r.framingErrors, &r.overruns, &r.discarded, &r.noise} {
		c.reset()
	}
	r.edge.ClearPending()
	r.edge.Enable()
}

// Available returns the number of received bytes.
func (r *Receiver) Available() int {
	return r.queue.Len()
}

// Read removes and returns the oldest received byte, or Empty.
func (r *Receiver) Read() int {
	r.mask.Lock()
	b, ok := r.queue.Pop()
	r.mask.Unlock()
	if !ok {
		return Empty
	}
	return int(b)
}

// Peek returns the oldest received byte without removing it, or Empty.
func (r *Receiver) Peek() int {
	if b, ok := r.queue.Peek(); ok {
		return int(b)
	}
	return Empty
}

// Clear empties the queue. The next valid frame, typically the one
// already on the line, is discarded.
func (r *Receiver) Clear() {
	r.mask.Lock()
	r.queue.Reset()
	r.dropNext = true
	r.mask.Unlock()
}

// Stats returns the receive counters.
func (r *Receiver) Stats() Stats {
	return Stats{
		Frames:        r.frames.load(),
		FramingErrors: r.framingErrors.load(),
		Overruns:      r.overruns.load(),
		Discarded:     r.discarded.load(),
		NoiseEdges:    r.noise.load(),
	}
}

// armSync programs the sync timer 11 bit times ahead. The sampler
// interrupt stays disabled, only the match flag is used.
func (r *Receiver) armSync() {
	r.timer.SetCompare(r.timer.Now() + SyncTicks)
	r.timer.ClearPending()
}

func (r *Receiver) onEdge() {
	if r.state == rxSyncing && !r.timer.Pending() {
		r.noise.inc()
		r.armSync()
		return
	}
	r.shift = 0
	r.state = rxBit0
	r.edge.Disable()
	r.timer.SetCompare(r.timer.Now() + FirstSampleDelay)
	r.timer.ClearPending()
	r.timer.Enable()
}

func (r *Receiver) onSample() {
	switch {
	case r.state == rxStop:
		r.stopBit(r.pin.Get())
	case r.state.sampling():
		r.timer.SetCompare(r.timer.Compare() + TicksPerBit)
		r.shift >>= 1
		if r.pin.Get() {
			r.shift |= 0x80
		}
		r.state = rxNext[r.state]
	default:
		r.timer.Disable()
	}
}

func (r *Receiver) stopBit(mark bool) {
	r.timer.Disable()
	if mark {
		switch {
		case r.dropNext:
			r.dropNext = false
			r.discarded.inc()
		case r.queue.Push(r.shift):
			r.frames.inc()
		default:
			r.overruns.inc()
		}
		r.state = rxWaitStart
	} else {
		r.framingErrors.inc()
		r.state = rxSyncing
		r.armSync()
	}
	r.edge.ClearPending()
	r.edge.Enable()
}
