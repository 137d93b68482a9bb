package mqtt

import (
	"context"

	"github.com/robotalks/trommel.go/pkg/bridge"
	fx "github.com/robotalks/trommel.go/pkg/framework"
	"github.com/robotalks/trommel.go/pkg/msgs"
)

// Device connects the firmware to a broker: its meta topic is retained
// while it is connected, events are published and commands received.
type Device struct {
	Queue      *Queue
	Ref        bridge.DeviceRef
	ReadWriter *ReadWriter

	meta []byte
}

// NewDevice creates a Device. info is published as the retained meta.
func NewDevice(brokerURL string, ref bridge.DeviceRef, info *msgs.DeviceInfo) (*Device, error) {
	meta, err := msgs.Encode(info)
	if err != nil {
		return nil, err
	}
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	opts.SetBinaryWill(topicPrefix+DeviceTopic(ref, TopicMeta), nil, 1, true)
	if opts.ClientID == "" {
		opts.SetClientID("trommel:" + ref.ID)
	}
	d := &Device{Queue: NewQueue(opts, topicPrefix), Ref: ref, meta: meta}
	d.Queue.OnConnect = func(*Queue) { d.onConnected() }
	d.ReadWriter = NewPacketReadWriter(d.Queue).ForDevice(ref)
	return d, nil
}

// WritePacket implements PacketWriter, publishing events.
func (d *Device) WritePacket(pkt []byte) error {
	if !d.Queue.Client.IsConnected() {
		return nil
	}
	return d.ReadWriter.WritePacket(pkt)
}

// AddToLoop implements LoopAdder. Received commands are posted to loop.
func (d *Device) AddToLoop(loop *fx.Loop) {
	loop.AddRunnable(d, d.ReadWriter, bridge.NewCommandPipe(d.ReadWriter, loop))
}

// Run implements Runnable.
func (d *Device) Run(ctx context.Context) error {
	d.Queue.Connect()
	<-ctx.Done()
	d.Queue.PubWith(DeviceTopic(d.Ref, TopicMeta), nil, 1, true).Wait()
	d.Queue.Close()
	return nil
}

func (d *Device) onConnected() {
	d.Queue.PubWith(DeviceTopic(d.Ref, TopicMeta), d.meta, 1, true)
}
