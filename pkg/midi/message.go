package midi

import (
	"fmt"
	"io"
)

// Status bytes and status nibbles.
const (
	NoteOff          byte = 0x80
	NoteOn           byte = 0x90
	PolyPressure     byte = 0xa0
	ControlChange    byte = 0xb0
	ProgramChange    byte = 0xc0
	ChannelPressure  byte = 0xd0
	PitchBend        byte = 0xe0
	SysEx            byte = 0xf0
	TimeCodeQuarter  byte = 0xf1
	SongPosition     byte = 0xf2
	SongSelect       byte = 0xf3
	TuneRequest      byte = 0xf6
	EndOfExclusive   byte = 0xf7
	TimingClock      byte = 0xf8
	Start            byte = 0xfa
	Continue         byte = 0xfb
	Stop             byte = 0xfc
	ActiveSensing    byte = 0xfe
	SystemReset      byte = 0xff
	statusBit        byte = 0x80
	channelMask      byte = 0x0f
	realtimeFirst    byte = 0xf8
	systemStatusBase byte = 0xf0
)

// Message is a complete MIDI message. Data holds the data bytes that
// follow Status and is empty for single byte messages.
type Message struct {
	Status byte
	Data   []byte
}

// NewNoteOn creates a note-on message. ch is 0-based.
func NewNoteOn(ch, note, velocity byte) *Message {
	return &Message{Status: NoteOn | ch&channelMask, Data: []byte{note & 0x7f, velocity & 0x7f}}
}

// NewNoteOff creates a note-off message. ch is 0-based.
func NewNoteOff(ch, note, velocity byte) *Message {
	return &Message{Status: NoteOff | ch&channelMask, Data: []byte{note & 0x7f, velocity & 0x7f}}
}

// NewProgramChange creates a program change message. ch is 0-based.
func NewProgramChange(ch, program byte) *Message {
	return &Message{Status: ProgramChange | ch&channelMask, Data: []byte{program & 0x7f}}
}

// NewControlChange creates a control change message. ch is 0-based.
func NewControlChange(ch, controller, value byte) *Message {
	return &Message{Status: ControlChange | ch&channelMask, Data: []byte{controller & 0x7f, value & 0x7f}}
}

// Type returns the status without the channel for channel messages and
// the full status byte for system messages.
func (m *Message) Type() byte {
	if m.IsChannel() {
		return m.Status &^ channelMask
	}
	return m.Status
}

// IsChannel reports whether m is a channel voice message.
func (m *Message) IsChannel() bool {
	return m.Status >= statusBit && m.Status < systemStatusBase
}

// IsRealtime reports whether m is a single byte real-time message.
func (m *Message) IsRealtime() bool {
	return m.Status >= realtimeFirst
}

// Channel returns the 0-based channel of a channel message, -1 otherwise.
func (m *Message) Channel() int {
	if !m.IsChannel() {
		return -1
	}
	return int(m.Status & channelMask)
}

func (m *Message) data(i int) byte {
	if i < len(m.Data) {
		return m.Data[i]
	}
	return 0
}

// Note returns the key of note and poly pressure messages.
func (m *Message) Note() byte {
	return m.data(0)
}

// Velocity returns the velocity of note messages.
func (m *Message) Velocity() byte {
	return m.data(1)
}

// Program returns the program number of a program change.
func (m *Message) Program() byte {
	return m.data(0)
}

// IsNoteOn reports a note-on with non-zero velocity.
func (m *Message) IsNoteOn() bool {
	return m.Type() == NoteOn && m.Velocity() != 0
}

// IsNoteOff reports a note-off, including note-on with velocity 0.
func (m *Message) IsNoteOff() bool {
	switch m.Type() {
	case NoteOff:
		return true
	case NoteOn:
		return m.Velocity() == 0
	}
	return false
}

// Bytes returns encoded bytes for sending.
func (m *Message) Bytes() []byte {
	b := make([]byte, 1+len(m.Data))
	b[0] = m.Status
	copy(b[1:], m.Data)
	return b
}

// WriteTo implements io.WriterTo.
func (m *Message) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(m.Bytes())
	return int64(n), err
}

var typeNames = map[byte]string{
	NoteOff:         "note-off",
	NoteOn:          "note-on",
	PolyPressure:    "poly-pressure",
	ControlChange:   "control-change",
	ProgramChange:   "program-change",
	ChannelPressure: "channel-pressure",
	PitchBend:       "pitch-bend",
	TimeCodeQuarter: "mtc-quarter-frame",
	SongPosition:    "song-position",
	SongSelect:      "song-select",
	TuneRequest:     "tune-request",
	TimingClock:     "clock",
	Start:           "start",
	Continue:        "continue",
	Stop:            "stop",
	ActiveSensing:   "active-sensing",
	SystemReset:     "reset",
}

// TypeName returns a readable name of the message type.
func (m *Message) TypeName() string {
	if name, ok := typeNames[m.Type()]; ok {
		return name
	}
	return fmt.Sprintf("0x%02x", m.Type())
}

// String implements fmt.Stringer.
func (m *Message) String() string {
	if m.IsChannel() {
		return fmt.Sprintf("%s ch=%d % x", m.TypeName(), m.Channel()+1, m.Data)
	}
	if len(m.Data) == 0 {
		return m.TypeName()
	}
	return fmt.Sprintf("%s % x", m.TypeName(), m.Data)
}
