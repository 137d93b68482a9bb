// Package drum drives the solenoid channels of the drum.
package drum

import (
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/trommel.go/pkg/hal"
)

// Defaults of the reference board.
const (
	Channels            = 8
	DefaultBeatDuration = 20 * time.Millisecond
	MaxBeatDuration     = 250 * time.Millisecond
	DefaultMaxActive    = 2
)

// Config tunes the beats.
type Config struct {
	BeatDuration    time.Duration `yaml:"beat"`
	MaxBeatDuration time.Duration `yaml:"max-beat"`
	MaxActive       int           `yaml:"max-active"`
}

// DefaultConfig returns the reference board settings.
func DefaultConfig() Config {
	return Config{
		BeatDuration:    DefaultBeatDuration,
		MaxBeatDuration: MaxBeatDuration,
		MaxActive:       DefaultMaxActive,
	}
}

type channel struct {
	active   bool
	start    time.Duration
	duration time.Duration
}

// Drum energizes a channel output for the length of a beat. Only a few
// beats may be active at once to limit the current drawn.
type Drum struct {
	// OnChange is called whenever a channel output changes.
	OnChange func(ch int, on bool)

	config   Config
	pins     []hal.OutputPin
	clock    hal.Uptime
	channels []channel
	active   int
}

// New creates a Drum on pins, one per channel. All outputs are released.
func New(pins []hal.OutputPin, clock hal.Uptime, config Config) *Drum {
	if config.BeatDuration <= 0 {
		config.BeatDuration = DefaultBeatDuration
	}
	if config.MaxBeatDuration <= 0 {
		config.MaxBeatDuration = MaxBeatDuration
	}
	if config.MaxActive <= 0 {
		config.MaxActive = DefaultMaxActive
	}
	d := &Drum{
		config:   config,
		pins:     pins,
		clock:    clock,
		channels: make([]channel, len(pins)),
	}
	for _, pin := range pins {
		pin.Set(false)
	}
	return d
}

// Channels returns the number of channels.
func (d *Drum) Channels() int {
	return len(d.channels)
}

// Active returns the number of active beats.
func (d *Drum) Active() int {
	return d.active
}

// IsActive reports whether ch is sounding.
func (d *Drum) IsActive(ch int) bool {
	return ch >= 0 && ch < len(d.channels) && d.channels[ch].active
}

// Hit starts a beat of the default duration on ch.
func (d *Drum) Hit(ch int) {
	d.HitFor(ch, d.config.BeatDuration)
}

// HitFor starts a beat of duration on ch. Hitting an active channel
// restarts its beat. When the new beat exceeds the limit of active beats,
// the oldest one is released.
func (d *Drum) HitFor(ch int, duration time.Duration) {
	if ch < 0 || ch >= len(d.channels) {
		return
	}
	if duration > d.config.MaxBeatDuration {
		duration = d.config.MaxBeatDuration
	}
	now := d.clock.Uptime()
	c := &d.channels[ch]
	if !c.active {
		for d.active >= d.config.MaxActive {
			oldest := d.oldest(now)
			if oldest < 0 {
				break
			}
			glog.V(2).Infof("drum: release oldest beat %d for %d", oldest, ch)
			d.Release(oldest)
		}
		c.active = true
		d.active++
	}
	c.start, c.duration = now, duration
	d.set(ch, true)
}

func (d *Drum) oldest(now time.Duration) int {
	oldest, maxAge := -1, time.Duration(-1)
	for ch, c := range d.channels {
		if c.active {
			if age := now - c.start; age > maxAge {
				oldest, maxAge = ch, age
			}
		}
	}
	return oldest
}

// Release ends the beat on ch.
func (d *Drum) Release(ch int) {
	if ch < 0 || ch >= len(d.channels) {
		return
	}
	d.set(ch, false)
	if c := &d.channels[ch]; c.active {
		c.active = false
		if d.active > 0 {
			d.active--
		}
	}
}

// ReleaseAll ends all beats.
func (d *Drum) ReleaseAll() {
	for ch := range d.channels {
		d.Release(ch)
	}
}

// Tick releases expired beats.
func (d *Drum) Tick() {
	now := d.clock.Uptime()
	for ch, c := range d.channels {
		if c.active && now-c.start >= c.duration {
			d.Release(ch)
		}
	}
}

func (d *Drum) set(ch int, on bool) {
	d.pins[ch].Set(on)
	if d.OnChange != nil {
		d.OnChange(ch, on)
	}
}
