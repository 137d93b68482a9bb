package sh

import (
	"time"

	"github.com/robotalks/trommel.go/pkg/hal"
	"github.com/robotalks/trommel.go/pkg/sim"
	"github.com/robotalks/trommel.go/pkg/softuart"
	"github.com/robotalks/trommel.go/pkg/trommel"
)

// BenchStep is the simulated time between two firmware polls.
const BenchStep = time.Millisecond

// Bench is a simulated board with MIDI-out looped back to MIDI-in. Time
// only advances when asked.
type Bench struct {
	Firmware *trommel.Firmware
	// Poll makes the firmware drain received bytes while time advances,
	// leave it off to read them with the port.
	Poll bool

	events     EventLog
	traceStart uint64
}

// NewBench creates a Bench which has seen an idle line.
func NewBench() (*Bench, error) {
	conf := trommel.NewConfig()
	conf.ID = "bench"
	conf.Thru, conf.Loopback = false, true
	fw, err := conf.NewFirmware()
	if err != nil {
		return nil, err
	}
	b := &Bench{Firmware: fw, Poll: true}
	fw.Events = &b.events
	fw.Begin()
	b.Clock().Advance(uint64(softuart.SyncTicks + softuart.TicksPerBit))
	b.ResetTrace()
	return b, nil
}

// Clock returns the board clock.
func (b *Bench) Clock() *sim.Clock {
	return b.Firmware.Board.Clock
}

// Port returns the serial port of the firmware.
func (b *Bench) Port() *softuart.Port {
	return b.Firmware.Port
}

// Run advances time by d in BenchStep increments, polling the firmware
// after each.
func (b *Bench) Run(d time.Duration) {
	for d > 0 {
		step := BenchStep
		if d < step {
			step = d
		}
		b.Clock().AdvanceDuration(step)
		d -= step
		if b.Poll {
			b.Firmware.Receive()
		}
		b.Firmware.Actuate()
		b.Firmware.Report()
	}
}

// Flush advances time until the transmit queue drained and the last
// frame is on the line, or limit passed. It reports whether it drained.
func (b *Bench) Flush(limit time.Duration) bool {
	tx := b.Port().Tx
	if !b.Clock().AdvanceUntil(func() bool { return tx.Pending() == 0 }, uint64(hal.TicksOf(limit))) {
		return false
	}
	b.Run(time.Duration(softuart.FrameTicks) * hal.TickDuration)
	return true
}

// Trace returns the transitions on the line since the last ResetTrace.
func (b *Bench) Trace() (trace []sim.Transition, start, end uint64) {
	return b.Firmware.Board.MIDIOut.Trace(), b.traceStart, b.Clock().Now()
}

// ResetTrace starts a new trace of the line.
func (b *Bench) ResetTrace() {
	b.Firmware.Board.MIDIOut.StartTrace()
	b.traceStart = b.Clock().Now()
}

// Name implements Remote.
func (b *Bench) Name() string {
	return "bench"
}

// Hit implements Remote.
func (b *Bench) Hit(chs ...int) error {
	for _, ch := range chs {
		b.Firmware.Hit(ch)
	}
	return nil
}

// Release implements Remote.
func (b *Bench) Release(chs ...int) error {
	for _, ch := range chs {
		b.Firmware.Release(ch)
	}
	return nil
}

// Sequence implements Remote.
func (b *Bench) Sequence(name string) error {
	return b.Firmware.StartPattern(name)
}

// Stop implements Remote.
func (b *Bench) Stop() error {
	b.Firmware.StopPattern()
	return nil
}

// Events implements Remote.
func (b *Bench) Events() *EventLog {
	return &b.events
}

// Close implements Remote.
func (b *Bench) Close() error {
	return nil
}
