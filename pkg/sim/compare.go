package sim

import "github.com/robotalks/trommel.go/pkg/hal"

// Compare is a compare channel of the clock counter, implementing
// hal.CompareTimer. A match sets the pending flag whether or not the
// interrupt is enabled.
type Compare struct {
	irq
	target hal.Ticks
	gen    uint64
}

// NewCompare creates a compare channel with the given interrupt priority.
func (c *Clock) NewCompare(priority int) *Compare {
	return &Compare{irq: irq{clock: c, priority: priority}}
}

// Now implements hal.CompareTimer.
func (t *Compare) Now() hal.Ticks {
	return hal.Ticks(t.clock.now)
}

// Compare implements hal.CompareTimer.
func (t *Compare) Compare() hal.Ticks {
	return t.target
}

// SetCompare implements hal.CompareTimer. The match happens when the
// counter next reaches target; target equal to the counter matches after
// a full wrap.
func (t *Compare) SetCompare(target hal.Ticks) {
	t.target = target
	t.gen++
	delta := uint64(target - hal.Ticks(t.clock.now))
	if delta == 0 {
		delta = 1 << 32
	}
	gen := t.gen
	t.clock.schedule(t.clock.now+delta, t.priority, func() {
		if gen == t.gen {
			t.trigger()
		}
	})
}
