package trommel

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/trommel.go/pkg/framework"
	"github.com/robotalks/trommel.go/pkg/midi"
	"github.com/robotalks/trommel.go/pkg/msgs"
	"github.com/robotalks/trommel.go/pkg/sim"
	"github.com/robotalks/trommel.go/pkg/softuart"
)

type recordingSink struct {
	events []fx.Message
}

func (s *recordingSink) Publish(msg fx.Message) error {
	s.events = append(s.events, msg)
	return nil
}

func (s *recordingSink) sequences() (out []string) {
	for _, msg := range s.events {
		if ev, ok := msg.(*msgs.SequenceEvent); ok {
			state := "stop"
			if ev.Running {
				state = "start"
			}
			out = append(out, state+" "+ev.Pattern)
		}
	}
	return
}

func (s *recordingSink) midiStatus() (out []byte) {
	for _, msg := range s.events {
		if ev, ok := msg.(*msgs.MIDIEvent); ok {
			out = append(out, byte(ev.Status))
		}
	}
	return
}

type firmwareTest struct {
	t      *testing.T
	fw     *Firmware
	sink   *recordingSink
	feeder *LineFeeder
}

func newFirmwareTest(t *testing.T, modify func(*Config)) *firmwareTest {
	c := testConfig()
	if modify != nil {
		modify(c)
	}
	fw, err := c.NewFirmware()
	require.NoError(t, err)
	ft := &firmwareTest{t: t, fw: fw, sink: &recordingSink{}}
	fw.Events = ft.sink
	ft.feeder = NewLineFeeder(nil, fw.Board)
	fw.Begin()
	// let the receiver see an idle line
	fw.Board.Clock.Advance(uint64(softuart.SyncTicks) + uint64(softuart.TicksPerBit))
	return ft
}

func (ft *firmwareTest) clock() *sim.Clock {
	return ft.fw.Board.Clock
}

// send drives data onto MIDI-in, runs the clock past the last frame and
// polls the firmware.
func (ft *firmwareTest) send(data ...byte) {
	end := ft.feeder.Feed(data)
	ft.clock().Advance(end - ft.clock().Now())
	ft.fw.Poll()
}

func (ft *firmwareTest) sendMsg(m *midi.Message) {
	ft.send(m.Bytes()...)
}

func (ft *firmwareTest) wait(d time.Duration) {
	ft.clock().AdvanceDuration(d)
	ft.fw.Poll()
}

func TestFirmwareBegin(t *testing.T) {
	ft := newFirmwareTest(t, nil)
	require.NotEmpty(t, ft.sink.events)
	info, ok := ft.sink.events[0].(*msgs.DeviceInfo)
	require.True(t, ok)
	require.Equal(t, "test", info.Id)
	require.EqualValues(t, 8, info.Channels)
	require.EqualValues(t, softuart.BaudRate, info.BaudRate)
	require.Equal(t, []string{"beat", "roll", "chase"}, info.Patterns)
	for _, pin := range ft.fw.Board.DrumPins {
		require.False(t, pin.Get())
	}
}

func TestFirmwareNoteHits(t *testing.T) {
	ft := newFirmwareTest(t, nil)
	ft.sendMsg(midi.NewNoteOn(9, 36, 100))
	require.True(t, ft.fw.Drum.IsActive(7))
	require.True(t, ft.fw.Board.DrumPins[7].Get())
	require.Equal(t, []byte{0x99}, ft.sink.midiStatus())

	ft.wait(25 * time.Millisecond)
	require.False(t, ft.fw.Drum.IsActive(7))
	require.False(t, ft.fw.Board.DrumPins[7].Get())

	var changes []bool
	for _, msg := range ft.sink.events {
		if ev, ok := msg.(*msgs.ChannelEvent); ok && ev.Channel == 7 {
			changes = append(changes, ev.On)
		}
	}
	require.Equal(t, []bool{true, false}, changes)
}

func TestFirmwareIgnores(t *testing.T) {
	ft := newFirmwareTest(t, nil)
	ft.sendMsg(midi.NewNoteOn(0, 36, 100))
	ft.sendMsg(midi.NewNoteOn(9, 60, 100))
	ft.sendMsg(midi.NewNoteOn(9, 36, 0))
	ft.sendMsg(midi.NewNoteOff(9, 36, 64))
	ft.send(midi.TimingClock, midi.ActiveSensing)
	require.Equal(t, 0, ft.fw.Drum.Active())
	require.Equal(t, []byte{0x90, 0x99, 0x99, 0x89}, ft.sink.midiStatus())
}

func TestFirmwareOmniRunningStatus(t *testing.T) {
	ft := newFirmwareTest(t, func(c *Config) {
		c.MIDIChannel = 0
		c.Drum.MaxActive = 8
	})
	// running status: the second and third notes omit the status byte
	ft.send(0x93, 36, 100, 38, 100, 42, 100)
	require.Equal(t, 3, ft.fw.Drum.Active())
	for _, ch := range []int{7, 6, 2} {
		require.True(t, ft.fw.Drum.IsActive(ch), "channel %d", ch)
	}
	require.Equal(t, uint32(7), ft.fw.Port.Stats().Frames)
}

func TestFirmwareStrayBytes(t *testing.T) {
	ft := newFirmwareTest(t, nil)
	ft.send(36, 100)
	require.Equal(t, 2, ft.fw.StrayBytes())
	require.Equal(t, 0, ft.fw.Drum.Active())
}

func TestFirmwareVelocityBeats(t *testing.T) {
	ft := newFirmwareTest(t, func(c *Config) {
		c.VelocityBeats = true
		c.Drum.BeatDuration = 20 * time.Millisecond
	})
	ft.sendMsg(midi.NewNoteOn(9, 36, 32))
	require.True(t, ft.fw.Drum.IsActive(7))
	ft.wait(6 * time.Millisecond)
	require.False(t, ft.fw.Drum.IsActive(7))

	ft.sendMsg(midi.NewNoteOn(9, 36, 127))
	ft.wait(15 * time.Millisecond)
	require.True(t, ft.fw.Drum.IsActive(7))
	ft.wait(6 * time.Millisecond)
	require.False(t, ft.fw.Drum.IsActive(7))
}

func TestFirmwareThru(t *testing.T) {
	ft := newFirmwareTest(t, func(c *Config) { c.Thru = true })
	out := ft.fw.Board.MIDIOut
	out.StartTrace()
	note := midi.NewNoteOn(9, 38, 90).Bytes()
	ft.send(note...)
	ft.clock().Advance(uint64(len(note)+1) * uint64(softuart.FrameTicks))
	require.Equal(t, note, sim.DecodeTrace(out.Trace(), softuart.TicksPerBit, ft.clock().Now()))
	require.Equal(t, uint32(len(note)), ft.fw.Port.Stats().Sent)
}

func TestFirmwareLoopback(t *testing.T) {
	ft := newFirmwareTest(t, func(c *Config) { c.Loopback = true })
	require.True(t, ft.fw.Board.Loopback())
	ft.fw.Port.Write(midi.NewNoteOn(9, 42, 100).Bytes())
	ft.clock().Advance(4 * uint64(softuart.FrameTicks))
	ft.fw.Poll()
	require.True(t, ft.fw.Drum.IsActive(2))
}

func TestFirmwareProgramAndTransport(t *testing.T) {
	ft := newFirmwareTest(t, nil)
	ft.sendMsg(midi.NewProgramChange(9, 1))
	require.True(t, ft.fw.Sequencer.Running())
	require.Equal(t, "roll", ft.fw.Sequencer.Pattern().Name)
	require.True(t, ft.fw.Drum.IsActive(6))

	ft.send(midi.Stop)
	require.False(t, ft.fw.Sequencer.Running())
	ft.send(midi.Continue)
	require.Equal(t, "roll", ft.fw.Sequencer.Pattern().Name)
	ft.send(midi.Start)
	require.True(t, ft.fw.Sequencer.Running())

	// out of range programs are ignored
	ft.sendMsg(midi.NewProgramChange(9, 9))
	require.Equal(t, "roll", ft.fw.Sequencer.Pattern().Name)

	ft.sendMsg(midi.NewControlChange(9, allNotesOff, 0))
	require.False(t, ft.fw.Sequencer.Running())
	require.Equal(t, 0, ft.fw.Drum.Active())

	require.Equal(t, []string{
		"start roll", "stop roll", "start roll", "stop roll", "start roll", "stop roll",
	}, ft.sink.sequences())
}

func TestFirmwareSequencerSteps(t *testing.T) {
	ft := newFirmwareTest(t, func(c *Config) { c.Drum.MaxActive = 8 })
	require.NoError(t, ft.fw.StartPattern("chase"))
	period := ft.fw.Config.Pattern("chase").StepPeriod()
	for n := 1; n < 4; n++ {
		ft.wait(period)
	}
	var positions []int32
	for _, msg := range ft.sink.events {
		if ev, ok := msg.(*msgs.StepEvent); ok {
			positions = append(positions, ev.Position)
		}
	}
	require.Equal(t, []int32{0, 1, 2, 3}, positions)
	require.Error(t, ft.fw.StartPattern("waltz"))
}

func TestFirmwareConsole(t *testing.T) {
	ft := newFirmwareTest(t, nil)
	var out bytes.Buffer
	ft.fw.AttachConsole(&out)
	require.True(t, ft.fw.Apply(&ConsoleInput{Data: []byte("id?\r\ntrommelbold?\r\nh1h3\r\n")}))
	require.Equal(t, "test\r\nyessir!\r\n", out.String())
	require.True(t, ft.fw.Drum.IsActive(1))
	require.True(t, ft.fw.Drum.IsActive(3))

	out.Reset()
	ft.fw.Apply(&ConsoleInput{Data: []byte("r1\r\nseq beat\r\n")})
	require.False(t, ft.fw.Drum.IsActive(1))
	require.Equal(t, "ok\r\n", out.String())
	require.True(t, ft.fw.Sequencer.Running())
}

func TestFirmwareRemoteCommands(t *testing.T) {
	ft := newFirmwareTest(t, func(c *Config) { c.Drum.MaxActive = 8 })
	require.True(t, ft.fw.Apply(msgs.NewHitCommand(0, 0, 1)))
	require.True(t, ft.fw.Apply(msgs.NewHitCommand(100*time.Millisecond, 5)))
	require.Equal(t, 3, ft.fw.Drum.Active())
	ft.wait(30 * time.Millisecond)
	require.Equal(t, 1, ft.fw.Drum.Active())
	require.True(t, ft.fw.Drum.IsActive(5))

	ft.fw.Apply(msgs.NewReleaseCommand())
	require.Equal(t, 0, ft.fw.Drum.Active())

	seq := &msgs.SequenceCommand{}
	seq.Pattern = "beat"
	require.True(t, ft.fw.Apply(seq))
	require.True(t, ft.fw.Sequencer.Running())
	seq.Stop = true
	ft.fw.Apply(seq)
	require.False(t, ft.fw.Sequencer.Running())

	require.False(t, ft.fw.Apply(&ConsoleInput{}))
	require.False(t, ft.fw.Apply(&msgs.LinkStats{}))
}

func TestFirmwareLinkStats(t *testing.T) {
	ft := newFirmwareTest(t, nil)
	ft.sendMsg(midi.NewNoteOn(9, 36, 100))
	var last *msgs.LinkStats
	for _, msg := range ft.sink.events {
		if ev, ok := msg.(*msgs.LinkStats); ok {
			last = ev
		}
	}
	require.NotNil(t, last)
	require.Equal(t, uint32(3), last.Frames)

	n := len(ft.sink.events)
	ft.fw.Poll()
	require.Len(t, ft.sink.events, n)
}
