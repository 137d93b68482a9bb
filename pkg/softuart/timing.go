package softuart

import "github.com/robotalks/trommel.go/pkg/hal"

// BaudRate is the line rate in bits per second.
const BaudRate = 31250

// Timing constants in timer ticks. The latency correction compensates the
// measured interrupt entry delay.
const (
	TicksPerBit      hal.Ticks = hal.TimerHz / BaudRate
	Latency          hal.Ticks = 3
	SyncBits                   = 11
	SyncTicks        hal.Ticks = SyncBits * TicksPerBit
	FirstSampleDelay hal.Ticks = TicksPerBit + TicksPerBit/2 - Latency
	StartBitDelay    hal.Ticks = TicksPerBit - Latency
	PrimeTicks       hal.Ticks = 2
	FrameBits                  = 10
	FrameTicks       hal.Ticks = FrameBits * TicksPerBit
)

// QueueSize is the capacity of each direction's queue.
const QueueSize = 32

// Empty is returned by Read and Peek when nothing is queued.
const Empty = -1
