package msgs

import (
	"time"

	"github.com/golang/protobuf/proto"

	fx "github.com/robotalks/trommel.go/pkg/framework"
	pb "github.com/robotalks/trommel.go/pkg/proto/trommel/v1"
)

// DeviceInfo is published once when the firmware starts.
type DeviceInfo struct {
	pb.DeviceInfo
}

// NewMessage implements Message.
func (m *DeviceInfo) NewMessage() fx.Message { return &DeviceInfo{} }

// TypeID implements SerializableMessage.
func (m *DeviceInfo) TypeID() uint32 { return DeviceInfoTypeID }

// Serializable implements SerializableMessage.
func (m *DeviceInfo) Serializable() proto.Message { return &m.DeviceInfo }

// ChannelEvent reports a drum channel output change.
type ChannelEvent struct {
	pb.ChannelEvent
}

// NewChannelEvent creates a ChannelEvent.
func NewChannelEvent(ch int, on bool, uptime time.Duration) *ChannelEvent {
	return &ChannelEvent{ChannelEvent: pb.ChannelEvent{
		Channel:  int32(ch),
		On:       on,
		UptimeUs: uptime.Microseconds(),
	}}
}

// NewMessage implements Message.
func (m *ChannelEvent) NewMessage() fx.Message { return &ChannelEvent{} }

// TypeID implements SerializableMessage.
func (m *ChannelEvent) TypeID() uint32 { return ChannelEventTypeID }

// Serializable implements SerializableMessage.
func (m *ChannelEvent) Serializable() proto.Message { return &m.ChannelEvent }

// MIDIEvent reports a decoded MIDI message.
type MIDIEvent struct {
	pb.MIDIEvent
}

// NewMIDIEvent creates a MIDIEvent.
func NewMIDIEvent(status byte, data []byte, uptime time.Duration) *MIDIEvent {
	return &MIDIEvent{MIDIEvent: pb.MIDIEvent{
		Status:   uint32(status),
		Data:     data,
		UptimeUs: uptime.Microseconds(),
	}}
}

// NewMessage implements Message.
func (m *MIDIEvent) NewMessage() fx.Message { return &MIDIEvent{} }

// TypeID implements SerializableMessage.
func (m *MIDIEvent) TypeID() uint32 { return MIDIEventTypeID }

// Serializable implements SerializableMessage.
func (m *MIDIEvent) Serializable() proto.Message { return &m.MIDIEvent }

// StepEvent reports a sequencer step.
type StepEvent struct {
	pb.StepEvent
}

// NewStepEvent creates a StepEvent.
func NewStepEvent(pattern string, pos int, channels uint8, uptime time.Duration) *StepEvent {
	return &StepEvent{StepEvent: pb.StepEvent{
		Pattern:  pattern,
		Position: int32(pos),
		Channels: uint32(channels),
		UptimeUs: uptime.Microseconds(),
	}}
}

// NewMessage implements Message.
func (m *StepEvent) NewMessage() fx.Message { return &StepEvent{} }

// TypeID implements SerializableMessage.
func (m *StepEvent) TypeID() uint32 { return StepEventTypeID }

// Serializable implements SerializableMessage.
func (m *StepEvent) Serializable() proto.Message { return &m.StepEvent }

// SequenceEvent reports a pattern starting or stopping.
type SequenceEvent struct {
	pb.SequenceEvent
}

// NewSequenceEvent creates a SequenceEvent.
func NewSequenceEvent(pattern string, running bool) *SequenceEvent {
	return &SequenceEvent{SequenceEvent: pb.SequenceEvent{Pattern: pattern, Running: running}}
}

// NewMessage implements Message.
func (m *SequenceEvent) NewMessage() fx.Message { return &SequenceEvent{} }

// TypeID implements SerializableMessage.
func (m *SequenceEvent) TypeID() uint32 { return SequenceEventTypeID }

// Serializable implements SerializableMessage.
func (m *SequenceEvent) Serializable() proto.Message { return &m.SequenceEvent }

// LinkStats reports the serial link counters.
type LinkStats struct {
	pb.LinkStats
}

// NewMessage implements Message.
func (m *LinkStats) NewMessage() fx.Message { return &LinkStats{} }

// TypeID implements SerializableMessage.
func (m *LinkStats) TypeID() uint32 { return LinkStatsTypeID }

// Serializable implements SerializableMessage.
func (m *LinkStats) Serializable() proto.Message { return &m.LinkStats }

// HitCommand hits channels remotely.
type HitCommand struct {
	pb.HitCommand
}

// NewHitCommand creates a HitCommand. A zero duration uses the default beat.
func NewHitCommand(duration time.Duration, chs ...int) *HitCommand {
	cmd := &HitCommand{HitCommand: pb.HitCommand{DurationMs: uint32(duration / time.Millisecond)}}
	for _, ch := range chs {
		cmd.Channels = append(cmd.Channels, int32(ch))
	}
	return cmd
}

// Duration returns the beat duration, 0 for the default one.
func (m *HitCommand) Duration() time.Duration {
	return time.Duration(m.DurationMs) * time.Millisecond
}

// NewMessage implements Message.
func (m *HitCommand) NewMessage() fx.Message { return &HitCommand{} }

// TypeID implements SerializableMessage.
func (m *HitCommand) TypeID() uint32 { return HitCommandTypeID }

// Serializable implements SerializableMessage.
func (m *HitCommand) Serializable() proto.Message { return &m.HitCommand }

// ReleaseCommand releases channels remotely.
type ReleaseCommand struct {
	pb.ReleaseCommand
}

// NewReleaseCommand creates a ReleaseCommand.
func NewReleaseCommand(chs ...int) *ReleaseCommand {
	cmd := &ReleaseCommand{}
	for _, ch := range chs {
		cmd.Channels = append(cmd.Channels, int32(ch))
	}
	return cmd
}

// NewMessage implements Message.
func (m *ReleaseCommand) NewMessage() fx.Message { return &ReleaseCommand{} }

// TypeID implements SerializableMessage.
func (m *ReleaseCommand) TypeID() uint32 { return ReleaseCommandTypeID }

// Serializable implements SerializableMessage.
func (m *ReleaseCommand) Serializable() proto.Message { return &m.ReleaseCommand }

// SequenceCommand starts or stops a pattern remotely.
type SequenceCommand struct {
	pb.SequenceCommand
}

// NewMessage implements Message.
func (m *SequenceCommand) NewMessage() fx.Message { return &SequenceCommand{} }

// TypeID implements SerializableMessage.
func (m *SequenceCommand) TypeID() uint32 { return SequenceCommandTypeID }

// Serializable implements SerializableMessage.
func (m *SequenceCommand) Serializable() proto.Message { return &m.SequenceCommand }

// TypeID Groups
const (
	GroupDevice    uint32 = 0x00010000
	GroupDrum      uint32 = 0x00020000
	GroupMIDI      uint32 = 0x00030000
	GroupSequencer uint32 = 0x00040000
	GroupLink      uint32 = 0x00050000
)

// TypeIDs
const (
	DeviceInfoTypeID      uint32 = TypeIDKindEvent | GroupDevice | 0x0000
	ChannelEventTypeID    uint32 = TypeIDKindEvent | GroupDrum | 0x0000
	HitCommandTypeID      uint32 = GroupDrum | 0x0001
	ReleaseCommandTypeID  uint32 = GroupDrum | 0x0002
	MIDIEventTypeID       uint32 = TypeIDKindEvent | GroupMIDI | 0x0000
	StepEventTypeID       uint32 = TypeIDKindEvent | GroupSequencer | 0x0000
	SequenceEventTypeID   uint32 = TypeIDKindEvent | GroupSequencer | 0x0001
	SequenceCommandTypeID uint32 = GroupSequencer | 0x0002
	LinkStatsTypeID       uint32 = TypeIDKindEvent | GroupLink | 0x0000
)
