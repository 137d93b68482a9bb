// Package pads plays the drum from the buttons of a game controller.
package pads

import (
	"context"
	"flag"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/trommel.go/pkg/drum"
	fx "github.com/robotalks/trommel.go/pkg/framework"
	"github.com/robotalks/trommel.go/pkg/msgs"
	"github.com/robotalks/trommel.go/pkg/pads/device"
)

// DefaultRetryInterval is the wait before looking for a controller again.
const DefaultRetryInterval = time.Second

// Config defines the configurations of the pads.
type Config struct {
	Enabled bool
	// DeviceIndex selects /dev/input/js<n>, -1 for auto detection.
	DeviceIndex int
	Verbose     bool
}

var defaultConfig = Config{
	DeviceIndex: -1,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.BoolVar(&defaultConfig.Enabled, "pads", defaultConfig.Enabled, "Play the drum with a game controller.")
	flag.IntVar(&defaultConfig.DeviceIndex, "pad-device", defaultConfig.DeviceIndex, "Game controller index, -1 for auto detection.")
	flag.BoolVar(&defaultConfig.Verbose, "pad-verbose", defaultConfig.Verbose, "Print game controller events.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewPads creates Pads using the config.
func (c *Config) NewPads() *Pads {
	p := New()
	p.DeviceIndex, p.Verbose = c.DeviceIndex, c.Verbose
	return p
}

// Pads posts a hit of channel n when button n is pressed. Buttons beyond
// the drum channels wrap around. When the controller goes away all
// channels are released and it is looked for again.
type Pads struct {
	DeviceIndex   int
	Verbose       bool
	RetryInterval time.Duration
	Poster        fx.MessagePoster

	// Open opens the controller, device.Open and device.DetectAndOpen
	// by default.
	Open func(index int) (device.Device, error)
}

// New creates Pads detecting the controller.
func New() *Pads {
	return &Pads{DeviceIndex: -1, RetryInterval: DefaultRetryInterval}
}

// AddToLoop implements LoopAdder.
func (p *Pads) AddToLoop(loop *fx.Loop) {
	if p.Poster == nil {
		p.Poster = loop
	}
	loop.AddRunnable(fx.NamedRun("pads", p))
}

func (p *Pads) open() (device.Device, error) {
	if p.Open != nil {
		return p.Open(p.DeviceIndex)
	}
	if p.DeviceIndex >= 0 {
		return device.Open(p.DeviceIndex)
	}
	return device.DetectAndOpen(0)
}

// Run implements Runnable.
func (p *Pads) Run(ctx context.Context) error {
	retry := time.After(0)
	var eventCh chan device.Event
	var dev device.Device
	defer func() {
		if dev != nil {
			dev.Close()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-retry:
			retry = nil
			d, err := p.open()
			if err != nil || d == nil {
				if err != nil {
					glog.V(2).Infof("pads: %v", err)
				}
				retry = time.After(p.RetryInterval)
				continue
			}
			glog.Infof("pads: %s (%d buttons) opened", d.Name(), d.Buttons())
			dev, eventCh = d, make(chan device.Event, 1)
			go p.poll(ctx, dev, eventCh)
		case ev, ok := <-eventCh:
			if ok {
				p.handleEvent(ev)
				continue
			}
			p.Poster.PostMessage(msgs.NewReleaseCommand())
			dev.Close()
			dev, eventCh = nil, nil
			retry = time.After(p.RetryInterval)
		}
	}
}

func (p *Pads) handleEvent(ev device.Event) {
	btn, ok := ev.(device.ButtonEvent)
	if !ok || btn.IsInit() || !btn.Pressed() {
		return
	}
	p.Poster.PostMessage(msgs.NewHitCommand(0, btn.Index()%drum.Channels))
}

func (p *Pads) poll(ctx context.Context, dev device.Device, ch chan<- device.Event) {
	defer close(ch)
	for {
		ev, err := dev.ReadEvent()
		if err != nil {
			glog.Warningf("pads: %v", err)
			return
		}
		if p.Verbose {
			if btn, ok := ev.(device.ButtonEvent); ok {
				glog.Infof("pads: button %d %v init=%v", btn.Index(), btn.Pressed(), btn.IsInit())
			}
		}
		select {
		case ch <- ev:
		case <-ctx.Done():
			return
		}
	}
}
