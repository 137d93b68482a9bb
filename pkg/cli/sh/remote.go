package sh

import (
	"sync"

	"github.com/golang/glog"

	"github.com/robotalks/trommel.go/pkg/bridge"
	"github.com/robotalks/trommel.go/pkg/bridge/mqtt"
	"github.com/robotalks/trommel.go/pkg/command"
	fx "github.com/robotalks/trommel.go/pkg/framework"
	"github.com/robotalks/trommel.go/pkg/msgs"
)

// Remote is a drum the shell plays.
type Remote interface {
	Name() string
	Hit(chs ...int) error
	Release(chs ...int) error
	Sequence(name string) error
	Stop() error
	// Events returns the events received, nil if the device has none.
	Events() *EventLog
	Close() error
}

// EventLog collects events until they are taken.
type EventLog struct {
	lock   sync.Mutex
	events []fx.Message
}

// Publish implements trommel.EventSink.
func (l *EventLog) Publish(msg fx.Message) error {
	l.lock.Lock()
	l.events = append(l.events, msg)
	l.lock.Unlock()
	return nil
}

// Take removes and returns the collected events.
func (l *EventLog) Take() []fx.Message {
	l.lock.Lock()
	defer l.lock.Unlock()
	events := l.events
	l.events = nil
	return events
}

// SerialRemote is a device attached to a serial port.
type SerialRemote struct {
	*command.Client
	Port string
}

// OpenSerial opens the console of the device on port.
func OpenSerial(port string, baud int) (*SerialRemote, error) {
	client, err := command.Open(port, baud)
	if err != nil {
		return nil, err
	}
	return &SerialRemote{Client: client, Port: port}, nil
}

// Name implements Remote.
func (r *SerialRemote) Name() string {
	return r.Port
}

// Events implements Remote. The console reports no events.
func (r *SerialRemote) Events() *EventLog {
	return nil
}

// MQTTRemote is a device on an MQTT broker.
type MQTTRemote struct {
	Ref    bridge.DeviceRef
	Queue  *mqtt.Queue
	Writer bridge.PacketWriter

	events EventLog
	sub    *mqtt.Subscription
}

// DialMQTT connects the broker and subscribes to the events of ref.
func DialMQTT(brokerURL string, ref bridge.DeviceRef) (*MQTTRemote, error) {
	q, err := mqtt.NewQueueFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	if token := q.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	r := &MQTTRemote{Ref: ref, Queue: q}
	rw := mqtt.NewPacketReadWriter(q).ForMonitor(ref)
	r.Writer = rw
	r.sub = q.Sub(rw.SubTopic, mqtt.Handler(r.handleEvent))
	return r, nil
}

func (r *MQTTRemote) handleEvent(topic string, payload []byte) {
	msg, err := msgs.Decode(payload)
	if err != nil {
		glog.Warningf("%s: %v", topic, err)
		return
	}
	r.events.Publish(msg)
}

// Name implements Remote.
func (r *MQTTRemote) Name() string {
	return r.Ref.Name()
}

func (r *MQTTRemote) send(msg msgs.SerializableMessage) error {
	pkt, err := msgs.Encode(msg)
	if err != nil {
		return err
	}
	return r.Writer.WritePacket(pkt)
}

// Hit implements Remote.
func (r *MQTTRemote) Hit(chs ...int) error {
	return r.send(msgs.NewHitCommand(0, chs...))
}

// Release implements Remote.
func (r *MQTTRemote) Release(chs ...int) error {
	return r.send(msgs.NewReleaseCommand(chs...))
}

// Sequence implements Remote.
func (r *MQTTRemote) Sequence(name string) error {
	cmd := &msgs.SequenceCommand{}
	cmd.Pattern = name
	return r.send(cmd)
}

// Stop implements Remote.
func (r *MQTTRemote) Stop() error {
	cmd := &msgs.SequenceCommand{}
	cmd.Stop = true
	return r.send(cmd)
}

// Events implements Remote.
func (r *MQTTRemote) Events() *EventLog {
	return &r.events
}

// Close implements Remote.
func (r *MQTTRemote) Close() error {
	if r.sub != nil {
		r.sub.Close()
	}
	return r.Queue.Close()
}
