package mqtt

import (
	"context"
	"io"

	"github.com/robotalks/trommel.go/pkg/bridge"
)

// Topic suffixes under the device name.
const (
	TopicMeta  = "meta"
	TopicEvent = "event"
	TopicCmd   = "cmd"
)

// DeviceTopic returns the topic of kind under ref.
func DeviceTopic(ref bridge.DeviceRef, kind string) string {
	return ref.Name() + "/" + kind
}

// ReadWriter implements PacketReadWriter over a pair of topics.
type ReadWriter struct {
	Queue    *Queue
	SubTopic string
	PubTopic string

	packetCh chan []byte
	done     chan struct{}
}

// NewPacketReadWriter creates the ReadWriter.
func NewPacketReadWriter(q *Queue) *ReadWriter {
	return &ReadWriter{Queue: q, packetCh: make(chan []byte, 16), done: make(chan struct{})}
}

// WithTopics specifies the topics.
func (p *ReadWriter) WithTopics(sub, pub string) *ReadWriter {
	p.SubTopic, p.PubTopic = sub, pub
	return p
}

// ForDevice sets topics for the firmware side:
// SubTopic = type/id/cmd
// PubTopic = type/id/event
func (p *ReadWriter) ForDevice(ref bridge.DeviceRef) *ReadWriter {
	return p.WithTopics(DeviceTopic(ref, TopicCmd), DeviceTopic(ref, TopicEvent))
}

// ForMonitor sets topics for the remote side:
// SubTopic = type/id/event
// PubTopic = type/id/cmd
// The ID may be "+" to monitor all devices of the type.
func (p *ReadWriter) ForMonitor(ref bridge.DeviceRef) *ReadWriter {
	return p.WithTopics(DeviceTopic(ref, TopicEvent), DeviceTopic(ref, TopicCmd))
}

// ReadPacket implements PacketReader. It returns io.EOF once Run stops.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	select {
	case pkt := <-p.packetCh:
		return pkt, nil
	case <-p.done:
		return nil, io.EOF
	}
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	token := p.Queue.Pub(p.PubTopic, pkt)
	token.Wait()
	return token.Error()
}

// Run implements Runnable.
func (p *ReadWriter) Run(ctx context.Context) error {
	sub := p.Queue.Sub(p.SubTopic, Handler(p.handleMsg))
	defer sub.Close()
	defer close(p.done)
	<-ctx.Done()
	return ctx.Err()
}

func (p *ReadWriter) handleMsg(_ string, payload []byte) {
	select {
	case p.packetCh <- payload:
	case <-p.done:
	}
}
