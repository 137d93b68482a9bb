// Package trommel assembles the drum firmware: a MIDI input on the
// software serial port, the drum channels, the step sequencer and the
// text console, polled by a foreground loop.
package trommel

import (
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/trommel.go/pkg/command"
	"github.com/robotalks/trommel.go/pkg/drum"
	fx "github.com/robotalks/trommel.go/pkg/framework"
	"github.com/robotalks/trommel.go/pkg/hal"
	"github.com/robotalks/trommel.go/pkg/midi"
	"github.com/robotalks/trommel.go/pkg/msgs"
	pb "github.com/robotalks/trommel.go/pkg/proto/trommel/v1"
	"github.com/robotalks/trommel.go/pkg/sequencer"
	"github.com/robotalks/trommel.go/pkg/sim"
	"github.com/robotalks/trommel.go/pkg/softuart"
)

// MIDI controllers which silence the drum.
const (
	allSoundOff = 120
	allNotesOff = 123
)

// EventSink receives the events of the firmware.
type EventSink interface {
	Publish(fx.Message) error
}

// ConsoleInput carries bytes received by the console to the loop.
type ConsoleInput struct {
	Data []byte
}

// NewMessage implements Message.
func (m *ConsoleInput) NewMessage() fx.Message { return &ConsoleInput{} }

// Firmware is the drum firmware running on a simulated board.
type Firmware struct {
	Config    *Config
	Board     *sim.Board
	Port      *softuart.Port
	Drum      *drum.Drum
	Sequencer *sequencer.Sequencer
	Console   *command.Interpreter
	Events    EventSink

	parser    midi.Parser
	selected  *sequencer.Pattern
	lastStats softuart.Stats
	stray     int
}

// NewFirmware creates the firmware from the config.
func (c *Config) NewFirmware() (*Firmware, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	board := sim.NewBoard()
	if c.Loopback {
		board = sim.NewLoopbackBoard()
	}
	f := &Firmware{
		Config: c,
		Board:  board,
		Port: softuart.NewPort(softuart.Pins{
			RX:      board.MIDIIn,
			RxEdge:  board.RxEdge,
			RxTimer: board.RxTimer,
			TX:      board.MIDIOut,
			TxTimer: board.TxTimer,
			Mask:    board.Clock,
		}),
	}
	pins := make([]hal.OutputPin, len(board.DrumPins))
	for n, pin := range board.DrumPins {
		pins[n] = pin
	}
	f.Drum = drum.New(pins, board.Clock, c.Drum)
	f.Drum.OnChange = f.channelChanged
	f.Sequencer = sequencer.New(f.Drum, board.Clock)
	f.Sequencer.OnStep = f.stepped
	f.Sequencer.OnStop = f.stopped
	if len(c.Patterns) > 0 {
		f.selected = c.Patterns[0]
	}
	return f, nil
}

// Begin starts the serial port and announces the device.
func (f *Firmware) Begin() {
	f.Port.Begin()
	glog.Infof("trommel %s: MIDI channel %d, %d patterns", f.Config.ID, f.Config.MIDIChannel, len(f.Config.Patterns))
	f.publish(f.Info())
}

// Info describes the device.
func (f *Firmware) Info() *msgs.DeviceInfo {
	return &msgs.DeviceInfo{DeviceInfo: pb.DeviceInfo{
		Id:       f.Config.ID,
		Channels: int32(f.Drum.Channels()),
		BaudRate: softuart.BaudRate,
		Patterns: f.Config.PatternNames(),
	}}
}

// Poll runs one foreground iteration without a loop.
func (f *Firmware) Poll() {
	f.Receive()
	f.Actuate()
	f.Report()
}

// Receive drains the serial receive queue through the MIDI decoder.
func (f *Firmware) Receive() {
	for {
		b, err := f.Port.ReadByte()
		if err != nil {
			return
		}
		if f.Config.Thru {
			f.Port.WriteByte(b)
		}
		pr := f.parser.Parse(b)
		if pr.Stray {
			f.stray++
		}
		if pr.Message != nil {
			f.handleMIDI(pr.Message)
		}
	}
}

// Actuate advances the sequencer and ends expired beats.
func (f *Firmware) Actuate() {
	f.Sequencer.Tick()
	f.Drum.Tick()
}

// Report publishes the link statistics when they changed.
func (f *Firmware) Report() {
	stats := f.Port.Stats()
	if stats == f.lastStats {
		return
	}
	f.lastStats = stats
	f.publish(&msgs.LinkStats{LinkStats: pb.LinkStats{
		Frames:        stats.Frames,
		FramingErrors: stats.FramingErrors,
		Overruns:      stats.Overruns,
		Discarded:     stats.Discarded,
		NoiseEdges:    stats.NoiseEdges,
		Sent:          stats.Sent,
		Dropped:       stats.Dropped,
	}})
}

// StrayBytes returns the number of MIDI data bytes received without status.
func (f *Firmware) StrayBytes() int {
	return f.stray
}

func (f *Firmware) listening(m *midi.Message) bool {
	return f.Config.MIDIChannel == 0 || m.Channel() == f.Config.MIDIChannel-1
}

func (f *Firmware) handleMIDI(m *midi.Message) {
	switch m.Status {
	case midi.TimingClock, midi.ActiveSensing:
		return
	}
	glog.V(2).Infof("MIDI %s", m)
	f.publish(msgs.NewMIDIEvent(m.Status, m.Data, f.Board.Clock.Uptime()))
	if m.IsRealtime() {
		f.handleRealtime(m.Status)
		return
	}
	if !m.IsChannel() || !f.listening(m) {
		return
	}
	switch {
	case m.IsNoteOn():
		ch := f.Config.NoteChannel(m.Note())
		if ch < 0 {
			return
		}
		if f.Config.VelocityBeats {
			f.Drum.HitFor(ch, f.velocityBeat(m.Velocity()))
		} else {
			f.Drum.Hit(ch)
		}
	case m.Type() == midi.ProgramChange:
		if n := int(m.Program()); n < len(f.Config.Patterns) {
			f.selected = f.Config.Patterns[n]
			f.startPattern(f.selected)
		}
	case m.Type() == midi.ControlChange:
		if c := m.Data[0]; c == allSoundOff || c == allNotesOff {
			f.Sequencer.Stop()
			f.Drum.ReleaseAll()
		}
	}
}

func (f *Firmware) velocityBeat(velocity byte) time.Duration {
	d := f.Config.Drum.BeatDuration * time.Duration(velocity) / 127
	if d < time.Millisecond {
		d = time.Millisecond
	}
	return d
}

func (f *Firmware) handleRealtime(status byte) {
	switch status {
	case midi.Start:
		f.startPattern(f.selected)
	case midi.Continue:
		if !f.Sequencer.Running() {
			f.startPattern(f.selected)
		}
	case midi.Stop:
		f.Sequencer.Stop()
	case midi.SystemReset:
		f.Sequencer.Stop()
		f.Drum.ReleaseAll()
		f.parser.Reset()
	}
}

func (f *Firmware) startPattern(p *sequencer.Pattern) {
	if p == nil {
		return
	}
	f.Sequencer.Start(p)
	if f.Sequencer.Running() {
		f.publish(msgs.NewSequenceEvent(p.Name, true))
	}
}

func (f *Firmware) channelChanged(ch int, on bool) {
	f.publish(msgs.NewChannelEvent(ch, on, f.Board.Clock.Uptime()))
}

func (f *Firmware) stepped(p *sequencer.Pattern, pos int, step sequencer.Step) {
	f.publish(msgs.NewStepEvent(p.Name, pos, uint8(step), f.Board.Clock.Uptime()))
}

func (f *Firmware) stopped(p *sequencer.Pattern) {
	f.publish(msgs.NewSequenceEvent(p.Name, false))
}

func (f *Firmware) publish(msg fx.Message) {
	if f.Events == nil {
		return
	}
	if err := f.Events.Publish(msg); err != nil {
		glog.V(2).Infof("publish %T: %v", msg, err)
	}
}
