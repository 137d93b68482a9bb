package drum

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/trommel.go/pkg/hal"
	"github.com/robotalks/trommel.go/pkg/sim"
)

type drumTestEnv struct {
	t       *testing.T
	board   *sim.Board
	drum    *Drum
	changes []string
	peak    int
}

func newDrumTestEnv(t *testing.T, config Config) *drumTestEnv {
	env := &drumTestEnv{t: t, board: sim.NewBoard()}
	pins := make([]hal.OutputPin, len(env.board.DrumPins))
	for n, pin := range env.board.DrumPins {
		pins[n] = pin
	}
	env.drum = New(pins, env.board.Clock, config)
	env.drum.OnChange = func(ch int, on bool) {
		if on {
			env.changes = append(env.changes, "+"+string(rune('0'+ch)))
		} else {
			env.changes = append(env.changes, "-"+string(rune('0'+ch)))
		}
		energized := 0
		for _, pin := range env.board.DrumPins {
			if pin.Get() {
				energized++
			}
		}
		if energized > env.peak {
			env.peak = energized
		}
	}
	return env
}

func (e *drumTestEnv) after(d time.Duration) *drumTestEnv {
	e.board.Clock.AdvanceDuration(d)
	e.drum.Tick()
	return e
}

func (e *drumTestEnv) expectOn(chs ...int) *drumTestEnv {
	on := make(map[int]bool)
	for _, ch := range chs {
		on[ch] = true
	}
	for ch, pin := range e.board.DrumPins {
		require.Equal(e.t, on[ch], pin.Get(), "channel %d", ch)
		require.Equal(e.t, on[ch], e.drum.IsActive(ch), "channel %d", ch)
	}
	require.Equal(e.t, len(chs), e.drum.Active())
	return e
}

func TestDrumBeat(t *testing.T) {
	env := newDrumTestEnv(t, DefaultConfig())
	require.Equal(t, Channels, env.drum.Channels())
	env.expectOn()
	env.drum.Hit(3)
	env.expectOn(3)
	env.after(10 * time.Millisecond).expectOn(3)
	env.after(10 * time.Millisecond).expectOn()
	require.Equal(t, []string{"+3", "-3"}, env.changes)
}

func TestDrumBeatClamped(t *testing.T) {
	env := newDrumTestEnv(t, DefaultConfig())
	env.drum.HitFor(0, time.Second)
	env.after(240 * time.Millisecond).expectOn(0)
	env.after(10 * time.Millisecond).expectOn()
}

func TestDrumMaxActive(t *testing.T) {
	env := newDrumTestEnv(t, DefaultConfig())
	env.drum.HitFor(0, 100*time.Millisecond)
	env.after(time.Millisecond)
	env.drum.HitFor(1, 100*time.Millisecond)
	env.after(time.Millisecond)
	env.expectOn(0, 1)
	env.drum.Hit(2)
	env.expectOn(1, 2)
	env.drum.Hit(5)
	env.expectOn(2, 5)
	require.Equal(t, []string{"+0", "+1", "-0", "+2", "-1", "+5"}, env.changes)
	require.Equal(t, DefaultMaxActive, env.peak)
}

func TestDrumRehit(t *testing.T) {
	env := newDrumTestEnv(t, DefaultConfig())
	env.drum.Hit(4)
	env.after(15 * time.Millisecond)
	env.drum.Hit(4)
	env.expectOn(4)
	env.after(15 * time.Millisecond).expectOn(4)
	env.after(5 * time.Millisecond).expectOn()
}

func TestDrumRelease(t *testing.T) {
	env := newDrumTestEnv(t, Config{MaxActive: 8})
	for ch := 0; ch < Channels; ch++ {
		env.drum.Hit(ch)
	}
	env.expectOn(0, 1, 2, 3, 4, 5, 6, 7)
	env.drum.Release(2)
	env.drum.Release(2)
	env.expectOn(0, 1, 3, 4, 5, 6, 7)
	env.drum.ReleaseAll()
	env.expectOn()
}

func TestDrumOutOfRange(t *testing.T) {
	env := newDrumTestEnv(t, DefaultConfig())
	env.drum.Hit(-1)
	env.drum.Hit(Channels)
	env.drum.Release(Channels)
	env.expectOn()
	require.Empty(t, env.changes)
}
