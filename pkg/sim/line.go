package sim

import "github.com/robotalks/trommel.go/pkg/hal"

// Transition is a captured level change of a Line.
type Transition struct {
	At    uint64
	Level bool
}

// Line is a wire between an output and any number of inputs. It is its
// own hal.OutputPin and hal.InputPin.
type Line struct {
	clock     *Clock
	level     bool
	detectors []*EdgeDetector
	trace     []Transition
	tracing   bool
}

// EdgeDetector latches falling edges of a Line, implementing hal.EdgeDetector.
type EdgeDetector struct {
	irq
}

// NewLine creates a line resting at level.
func (c *Clock) NewLine(level bool) *Line {
	return &Line{clock: c, level: level}
}

// Get implements hal.InputPin.
func (l *Line) Get() bool {
	return l.level
}

// Set implements hal.OutputPin. It must run in interrupt context or with
// interrupts masked.
func (l *Line) Set(level bool) {
	if level == l.level {
		return
	}
	l.level = level
	if l.tracing {
		l.trace = append(l.trace, Transition{At: l.clock.now, Level: level})
	}
	if !level {
		for _, d := range l.detectors {
			d.trigger()
		}
	}
}

// NewEdgeDetector attaches a falling edge detector to the line.
func (l *Line) NewEdgeDetector(priority int) *EdgeDetector {
	d := &EdgeDetector{irq: irq{clock: l.clock, priority: priority}}
	l.detectors = append(l.detectors, d)
	return d
}

// StartTrace starts capturing transitions, discarding earlier ones.
func (l *Line) StartTrace() {
	l.clock.Lock()
	l.tracing, l.trace = true, nil
	l.clock.Unlock()
}

// Trace returns the transitions captured so far.
func (l *Line) Trace() []Transition {
	l.clock.Lock()
	defer l.clock.Unlock()
	return append([]Transition(nil), l.trace...)
}

// DriveBits schedules the line to take the levels in bits, one every
// bitTicks starting at tick at.
func (l *Line) DriveBits(at uint64, bitTicks hal.Ticks, bits []bool) {
	for n, level := range bits {
		level := level
		l.clock.At(at+uint64(n)*uint64(bitTicks), func() { l.Set(level) })
	}
}

// DriveFrame schedules an 8N1 frame of b starting at tick at and returns
// the tick right after its stop bit.
func (l *Line) DriveFrame(at uint64, bitTicks hal.Ticks, b byte) uint64 {
	bits := FrameBits(b)
	l.DriveBits(at, bitTicks, bits)
	return at + uint64(len(bits))*uint64(bitTicks)
}

// FrameBits returns the line levels of an 8N1 frame: start bit, eight data
// bits LSB first, stop bit.
func FrameBits(b byte) []bool {
	bits := make([]bool, 10)
	for n := 0; n < 8; n++ {
		bits[n+1] = b&(1<<uint(n)) != 0
	}
	bits[9] = true
	return bits
}

// DecodeTrace recovers 8N1 bytes from captured transitions of a line
// idling high, sampling each bit at its center. Frames with a low stop bit
// are skipped.
func DecodeTrace(trace []Transition, bitTicks hal.Ticks, end uint64) []byte {
	levelAt := func(t uint64) bool {
		level := true
		for _, tr := range trace {
			if tr.At > t {
				break
			}
			level = tr.Level
		}
		return level
	}
	var out []byte
	bit := uint64(bitTicks)
	var next uint64
	for _, tr := range trace {
		if tr.Level || tr.At < next {
			continue
		}
		start := tr.At
		if start+10*bit > end {
			break
		}
		var b byte
		for n := uint64(0); n < 8; n++ {
			if levelAt(start + bit + n*bit + bit/2) {
				b |= 1 << n
			}
		}
		if levelAt(start + 9*bit + bit/2) {
			out = append(out, b)
		}
		next = start + 9*bit + bit/2
	}
	return out
}
