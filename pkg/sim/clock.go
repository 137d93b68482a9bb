// Package sim provides a deterministic simulated platform implementing pkg/hal.
//
// The Clock is a discrete-event scheduler counting timer ticks. Interrupt
// handlers are dispatched by the clock with its lock held, which makes the
// clock itself the interrupt mask: foreground code holding Lock cannot
// interleave with any handler.
package sim

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"github.com/robotalks/trommel.go/pkg/hal"
)

// Interrupt priorities of the reference board, lower runs first when
// several handlers are due on the same tick.
const (
	PriorityEdge     = 0 // INT0
	PriorityCompareA = 1 // timer 2 compare A
	PriorityCompareB = 2 // timer 2 compare B
	priorityExternal = 8 // externally driven line changes
)

// DefaultLatency is the interrupt entry latency in ticks.
const DefaultLatency hal.Ticks = 3

// Clock is a simulated tick counter dispatching interrupt handlers.
type Clock struct {
	// Latency is the delay between an interrupt trigger and the
	// handler execution.
	Latency hal.Ticks

	lock   sync.Mutex
	now    uint64
	seq    uint64
	events eventQueue
}

type event struct {
	at       uint64
	priority int
	seq      uint64
	fn       func()
}

type eventQueue []*event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].seq < q[j].seq
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x interface{}) { *q = append(*q, x.(*event)) }

func (q *eventQueue) Pop() interface{} {
	old := *q
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return ev
}

// NewClock creates a Clock at tick 0.
func NewClock() *Clock {
	return &Clock{Latency: DefaultLatency}
}

// Lock masks interrupts.
func (c *Clock) Lock() {
	c.lock.Lock()
}

// Unlock unmasks interrupts.
func (c *Clock) Unlock() {
	c.lock.Unlock()
}

// Now returns the current tick.
func (c *Clock) Now() uint64 {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.now
}

// Uptime implements hal.Uptime.
func (c *Clock) Uptime() time.Duration {
	return time.Duration(c.Now()) * hal.TickDuration
}

// At schedules fn to run in interrupt context at tick t. A tick in the
// past runs on the next dispatch.
func (c *Clock) At(t uint64, fn func()) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if t < c.now {
		t = c.now
	}
	c.schedule(t, priorityExternal, fn)
}

// Advance runs the clock for n ticks.
func (c *Clock) Advance(n uint64) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.runUntil(c.now + n)
}

// AdvanceDuration runs the clock for d.
func (c *Clock) AdvanceDuration(d time.Duration) {
	c.Advance(uint64(d / hal.TickDuration))
}

// AdvanceUntil runs the clock one event at a time until cond returns true
// or limit ticks have passed. cond is evaluated with interrupts unmasked.
// It reports whether cond was satisfied.
func (c *Clock) AdvanceUntil(cond func() bool, limit uint64) bool {
	c.lock.Lock()
	end := c.now + limit
	c.lock.Unlock()
	for {
		if cond() {
			return true
		}
		c.lock.Lock()
		if c.now >= end {
			c.lock.Unlock()
			return false
		}
		next := end
		if len(c.events) > 0 && c.events[0].at < next {
			next = c.events[0].at
		}
		c.runUntil(next)
		c.lock.Unlock()
	}
}

// Run paces the clock with wall time until ctx is done.
func (c *Clock) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			c.AdvanceDuration(now.Sub(last))
			last = now
		}
	}
}

// schedule must be called with the lock held.
func (c *Clock) schedule(at uint64, priority int, fn func()) {
	c.seq++
	heap.Push(&c.events, &event{at: at, priority: priority, seq: c.seq, fn: fn})
}

// runUntil must be called with the lock held.
func (c *Clock) runUntil(end uint64) {
	for len(c.events) > 0 && c.events[0].at <= end {
		ev := heap.Pop(&c.events).(*event)
		c.now = ev.at
		ev.fn()
	}
	if end > c.now {
		c.now = end
	}
}

// irq is an interrupt source shared by compare channels and edge
// detectors: a latched flag, an enable bit and a handler.
type irq struct {
	clock    *Clock
	priority int
	handler  hal.Handler
	enabled  bool
	pending  bool
	queued   bool
}

func (q *irq) trigger() {
	q.pending = true
	q.dispatch()
}

func (q *irq) dispatch() {
	if !q.enabled || !q.pending || q.queued {
		return
	}
	q.queued = true
	q.clock.schedule(q.clock.now+uint64(q.clock.Latency), q.priority, q.service)
}

func (q *irq) service() {
	q.queued = false
	if !q.enabled || !q.pending {
		return
	}
	q.pending = false
	if h := q.handler; h != nil {
		h()
	}
}

func (q *irq) Enable() {
	q.enabled = true
	q.dispatch()
}

func (q *irq) Disable()      { q.enabled = false }
func (q *irq) Pending() bool { return q.pending }
func (q *irq) ClearPending() { q.pending = false }

func (q *irq) Attach(h hal.Handler) { q.handler = h }
