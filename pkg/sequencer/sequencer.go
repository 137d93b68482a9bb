// Package sequencer plays drum patterns step by step.
package sequencer

import (
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/trommel.go/pkg/hal"
)

// Hitter is what a Sequencer plays on.
type Hitter interface {
	Hit(ch int)
}

// Sequencer plays one Pattern at a time. It is driven by Tick from the
// foreground loop.
type Sequencer struct {
	// OnStep is called after a step is played.
	OnStep func(p *Pattern, pos int, step Step)
	// OnStop is called when a pattern stops, on its own or by Stop.
	OnStop func(p *Pattern)

	drum    Hitter
	clock   hal.Uptime
	pattern *Pattern
	next    int
	last    time.Duration
	period  time.Duration
}

// New creates a Sequencer.
func New(drum Hitter, clock hal.Uptime) *Sequencer {
	return &Sequencer{drum: drum, clock: clock}
}

// Start plays p from its first step, which is played immediately.
// A pattern without steps is not started.
func (s *Sequencer) Start(p *Pattern) {
	if s.pattern != nil {
		s.Stop()
	}
	if p == nil || len(p.Steps) == 0 {
		return
	}
	glog.V(2).Infof("sequencer: start %q %d steps every %v", p.Name, len(p.Steps), p.StepPeriod())
	s.pattern, s.next, s.period = p, 0, p.StepPeriod()
	s.last = s.clock.Uptime()
	s.step()
}

// Stop stops the current pattern.
func (s *Sequencer) Stop() {
	p := s.pattern
	if p == nil {
		return
	}
	s.pattern = nil
	glog.V(2).Infof("sequencer: stop %q", p.Name)
	if s.OnStop != nil {
		s.OnStop(p)
	}
}

// Running reports whether a pattern is playing.
func (s *Sequencer) Running() bool {
	return s.pattern != nil
}

// Pattern returns the pattern playing, nil if stopped.
func (s *Sequencer) Pattern() *Pattern {
	return s.pattern
}

// Position returns the index of the next step.
func (s *Sequencer) Position() int {
	return s.next
}

// Tick plays the next step once its period has elapsed. Steps are
// scheduled from the previous step time, so late ticks do not add up.
func (s *Sequencer) Tick() {
	if s.pattern == nil {
		return
	}
	if s.clock.Uptime()-s.last < s.period {
		return
	}
	if s.next >= len(s.pattern.Steps) {
		if !s.pattern.Repeat {
			s.Stop()
			return
		}
		s.next = 0
	}
	s.last += s.period
	s.step()
}

func (s *Sequencer) step() {
	pos, step := s.next, s.pattern.Steps[s.next]
	glog.V(2).Infof("sequencer: step %d %s", pos, step)
	for _, ch := range step.Channels() {
		s.drum.Hit(ch)
	}
	s.next++
	if s.OnStep != nil {
		s.OnStep(s.pattern, pos, step)
	}
}
