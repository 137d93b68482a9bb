package softuart

import (
	"context"
	"runtime"
	"time"

	"github.com/robotalks/trommel.go/pkg/hal"
)

type txState int

const (
	txIdle  txState = iota // line idle, timer disabled or priming
	txStart                // start bit on the line
	txBit0                 // data bit 0 on the line
	txBit1
	txBit2
	txBit3
	txBit4
	txBit5
	txBit6
	txBit7
	txStop // stop bit on the line
)

var txNext = [...]txState{
	txStart: txBit0,
	txBit0:  txBit1,
	txBit1:  txBit2,
	txBit2:  txBit3,
	txBit3:  txBit4,
	txBit4:  txBit5,
	txBit5:  txBit6,
	txBit6:  txBit7,
	txBit7:  txStop,
}

// Transmitter clocks queued bytes onto the output line: a low start bit,
// eight data bits LSB first and a high stop bit.
type Transmitter struct {
	pin   hal.OutputPin
	timer hal.CompareTimer
	mask  hal.InterruptMask

	started bool
	state   txState
	shift   byte
	queue   Ring

	sent, dropped counter
}

// NewTransmitter creates a Transmitter and attaches its timer handler.
func NewTransmitter(pin hal.OutputPin, timer hal.CompareTimer, mask hal.InterruptMask) *Transmitter {
	t := &Transmitter{pin: pin, timer: timer, mask: mask}
	timer.Attach(t.onTimer)
	return t
}

// Init idles the line and primes the timer so the first Write starts
// transmitting right away.
func (t *Transmitter) Init() {
	t.mask.Lock()
	defer t.mask.Unlock()
	t.timer.Disable()
	t.pin.Set(true)
	t.state = txIdle
	t.shift = 0
	t.queue.Reset()
	t.sent.reset()
	t.dropped.reset()
	t.timer.SetCompare(t.timer.Now() + PrimeTicks)
	t.started = true
}

// Write queues b for transmission. On a full queue b is silently dropped.
func (t *Transmitter) Write(b byte) {
	if !t.started {
		t.Init()
	}
	t.mask.Lock()
	defer t.mask.Unlock()
	if !t.queue.Push(b) {
		t.dropped.inc()
		return
	}
	t.timer.Enable()
}

// Pending returns the number of queued bytes not yet started.
func (t *Transmitter) Pending() int {
	return t.queue.Len()
}

// Available returns the number of free queue slots.
func (t *Transmitter) Available() int {
	return t.queue.Free()
}

// Clear empties the queue. A frame already on the line completes.
func (t *Transmitter) Clear() {
	t.mask.Lock()
	t.queue.Reset()
	t.mask.Unlock()
}

// Flush waits until the queue is empty. The last byte may still be on
// the line when it returns. There is no timeout; see FlushContext.
func (t *Transmitter) Flush() {
	for t.Pending() > 0 {
		runtime.Gosched()
	}
}

// FlushContext is Flush giving up when ctx is done.
func (t *Transmitter) FlushContext(ctx context.Context) error {
	if t.Pending() == 0 {
		return nil
	}
	poll := time.NewTicker(time.Duration(FrameTicks) * hal.TickDuration)
	defer poll.Stop()
	for t.Pending() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-poll.C:
		}
	}
	return nil
}

// Stats returns the transmit counters.
func (t *Transmitter) Stats() Stats {
	return Stats{Sent: t.sent.load(), Dropped: t.dropped.load()}
}

func (t *Transmitter) onTimer() {
	switch t.state {
	case txIdle, txStop:
		b, ok := t.queue.Pop()
		if !ok {
			t.timer.Disable()
			t.timer.SetCompare(t.timer.Now() + PrimeTicks)
			t.state = txIdle
			return
		}
		t.shift = b
		t.pin.Set(false)
		t.timer.SetCompare(t.timer.Now() + StartBitDelay)
		t.state = txStart
		t.sent.inc()
	default:
		t.timer.SetCompare(t.timer.Compare() + TicksPerBit)
		t.pin.Set(t.state == txBit7 || t.shift&1 != 0)
		t.shift >>= 1
		t.state = txNext[t.state]
	}
}
