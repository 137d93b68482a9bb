// Package hal defines the hardware abstractions the firmware is written
// against: compare timers, edge interrupts, pins and the interrupt mask.
//
// Handlers attached to a CompareTimer or EdgeDetector run in interrupt
// context. The platform invokes them with the interrupt mask held, so they
// never interleave with a foreground critical section or with each other.
// Methods of CompareTimer and EdgeDetector are only called from interrupt
// context or from the foreground with the mask held.
package hal

import (
	"sync"
	"time"
)

// Ticks counts periods of the timer clock. Arithmetic wraps.
type Ticks uint32

// TimerHz is the frequency of the timer clock (16 MHz with a /32 prescaler).
const TimerHz = 500000

// TickDuration is the wall time of a single tick.
const TickDuration = time.Second / TimerHz

// Handler is an interrupt service routine.
type Handler func()

// CompareTimer is one compare channel of a free-running counter.
// There is no periodic mode: a handler re-programs the compare value
// every time it fires.
type CompareTimer interface {
	// Now reads the counter.
	Now() Ticks
	// Compare returns the programmed compare value.
	Compare() Ticks
	// SetCompare programs the next match.
	SetCompare(Ticks)
	// Enable enables the interrupt. A match flag already pending
	// fires the handler right away.
	Enable()
	// Disable disables the interrupt. Matches still set the flag.
	Disable()
	// Pending reports the match flag.
	Pending() bool
	// ClearPending clears the match flag.
	ClearPending()
	// Attach installs the interrupt handler.
	Attach(Handler)
}

// EdgeDetector fires on a falling transition of an input line.
type EdgeDetector interface {
	Enable()
	Disable()
	// ClearPending drops edges latched while disabled.
	ClearPending()
	Attach(Handler)
}

// InputPin reads a line level, true is mark (high).
type InputPin interface {
	Get() bool
}

// OutputPin drives a line level, true is mark (high).
type OutputPin interface {
	Set(bool)
}

// InterruptMask is held by foreground code to exclude all interrupt
// handlers (disable interrupts, mutate, re-enable).
type InterruptMask = sync.Locker

// Uptime provides monotonic time since power-up.
type Uptime interface {
	Uptime() time.Duration
}

// TicksOf converts a duration into timer ticks, truncating.
func TicksOf(d time.Duration) Ticks {
	return Ticks(d / TickDuration)
}
