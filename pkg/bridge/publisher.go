package bridge

import (
	"sync"

	"github.com/golang/glog"

	fx "github.com/robotalks/trommel.go/pkg/framework"
	"github.com/robotalks/trommel.go/pkg/msgs"
)

// Publisher encodes events and writes them to every attached writer.
type Publisher struct {
	writers []PacketWriter
	lock    sync.RWMutex
}

// NewPublisher creates a Publisher writing to writers.
func NewPublisher(writers ...PacketWriter) *Publisher {
	return &Publisher{writers: writers}
}

// Attach adds a writer.
func (p *Publisher) Attach(w PacketWriter) {
	p.lock.Lock()
	p.writers = append(p.writers, w)
	p.lock.Unlock()
}

// Detach removes a writer.
func (p *Publisher) Detach(w PacketWriter) {
	p.lock.Lock()
	defer p.lock.Unlock()
	for n, writer := range p.writers {
		if writer == w {
			p.writers = append(p.writers[:n], p.writers[n+1:]...)
			return
		}
	}
}

// Writers returns the number of attached writers.
func (p *Publisher) Writers() int {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return len(p.writers)
}

// Publish sends msg, which must be an event, to all writers. Every writer
// is tried, errors are aggregated.
func (p *Publisher) Publish(msg fx.Message) error {
	typed, err := msgs.TypedFrom(msg)
	if err != nil {
		return err
	}
	if !typed.IsEvent() {
		return ErrNotEvent
	}
	pkt, err := typed.Encode()
	if err != nil {
		return err
	}
	p.lock.RLock()
	writers := append([]PacketWriter(nil), p.writers...)
	p.lock.RUnlock()
	var errs fx.AggregatedError
	for _, w := range writers {
		if err := w.WritePacket(pkt); err != nil {
			glog.Warningf("publish %x: %v", typed.TypeId, err)
			errs.Add(err)
		}
	}
	return errs.Aggregate()
}
