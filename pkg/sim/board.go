package sim

import (
	"sync/atomic"
)

// DrumChannels is the number of drum outputs on the reference board.
const DrumChannels = 8

// Pin is a plain output pin, e.g. driving a drum solenoid.
type Pin struct {
	Name string
	// OnChange is called with the new level after it changed.
	OnChange func(*Pin, bool)

	level int32
}

// Set implements hal.OutputPin.
func (p *Pin) Set(level bool) {
	var v int32
	if level {
		v = 1
	}
	if atomic.SwapInt32(&p.level, v) != v {
		if fn := p.OnChange; fn != nil {
			fn(p, level)
		}
	}
}

// Get implements hal.InputPin.
func (p *Pin) Get() bool {
	return atomic.LoadInt32(&p.level) != 0
}

// Board is the reference wiring of the instrument: a MIDI-in line with an
// edge interrupt (INT0 on PD2), a MIDI-out line (PD3), timer 2 compare A
// sampling the input, compare B clocking the output, and drum outputs on
// ports 6 to 13.
type Board struct {
	Clock    *Clock
	MIDIIn   *Line
	MIDIOut  *Line
	RxEdge   *EdgeDetector
	RxTimer  *Compare
	TxTimer  *Compare
	DrumPins [DrumChannels]*Pin
}

// NewBoard creates a board with separate MIDI-in and MIDI-out lines.
func NewBoard() *Board {
	clock := NewClock()
	b := &Board{
		Clock:   clock,
		MIDIIn:  clock.NewLine(true),
		MIDIOut: clock.NewLine(true),
		RxTimer: clock.NewCompare(PriorityCompareA),
		TxTimer: clock.NewCompare(PriorityCompareB),
	}
	b.RxEdge = b.MIDIIn.NewEdgeDetector(PriorityEdge)
	for n := range b.DrumPins {
		b.DrumPins[n] = &Pin{Name: drumPinNames[n]}
	}
	return b
}

// NewLoopbackBoard creates a board with MIDI-out wired to MIDI-in.
func NewLoopbackBoard() *Board {
	b := NewBoard()
	b.MIDIOut = b.MIDIIn
	return b
}

// Loopback reports whether MIDI-out is wired to MIDI-in.
func (b *Board) Loopback() bool {
	return b.MIDIOut == b.MIDIIn
}

var drumPinNames = [DrumChannels]string{"D6", "D7", "D8", "D9", "D10", "D11", "D12", "D13"}
