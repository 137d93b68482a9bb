package softuart

import (
	"context"
	"errors"

	"github.com/robotalks/trommel.go/pkg/hal"
)

// ErrEmpty is returned by ReadByte when nothing has been received.
var ErrEmpty = errors.New("receive queue empty")

// Pins wires a Port to the platform.
type Pins struct {
	RX      hal.InputPin
	RxEdge  hal.EdgeDetector
	RxTimer hal.CompareTimer
	TX      hal.OutputPin
	TxTimer hal.CompareTimer
	Mask    hal.InterruptMask
}

// Port is a serial port made of one Receiver and one Transmitter, with
// the byte stream interfaces of the standard library. Reads never block.
type Port struct {
	Rx *Receiver
	Tx *Transmitter

	begun bool
}

// NewPort creates a Port on the given pins.
func NewPort(p Pins) *Port {
	return &Port{
		Rx: NewReceiver(p.RX, p.RxEdge, p.RxTimer, p.Mask),
		Tx: NewTransmitter(p.TX, p.TxTimer, p.Mask),
	}
}

// Begin initializes both engines once.
func (p *Port) Begin() {
	if p.begun {
		return
	}
	p.Rx.Init()
	p.Tx.Init()
	p.begun = true
}

// Buffered returns the number of received bytes.
func (p *Port) Buffered() int {
	return p.Rx.Available()
}

// AvailableForWrite returns the free transmit queue slots.
func (p *Port) AvailableForWrite() int {
	return p.Tx.Available()
}

// ReadByte implements io.ByteReader.
func (p *Port) ReadByte() (byte, error) {
	v := p.Rx.Read()
	if v == Empty {
		return 0, ErrEmpty
	}
	return byte(v), nil
}

// Read implements io.Reader. It returns 0, nil when nothing is queued.
func (p *Port) Read(buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		v := p.Rx.Read()
		if v == Empty {
			break
		}
		buf[n] = byte(v)
		n++
	}
	return n, nil
}

// WriteByte implements io.ByteWriter. Bytes offered to a full queue are
// dropped, the error is always nil.
func (p *Port) WriteByte(c byte) error {
	p.Tx.Write(c)
	return nil
}

// Write implements io.Writer with the same best-effort contract as
// WriteByte: it always reports len(buf) written.
func (p *Port) Write(buf []byte) (int, error) {
	for _, c := range buf {
		p.Tx.Write(c)
	}
	return len(buf), nil
}

// Flush waits for the transmit queue to drain.
func (p *Port) Flush() error {
	p.Tx.Flush()
	return nil
}

// FlushContext waits for the transmit queue to drain or ctx to be done.
func (p *Port) FlushContext(ctx context.Context) error {
	return p.Tx.FlushContext(ctx)
}

// Stats returns combined receive and transmit counters.
func (p *Port) Stats() Stats {
	return p.Rx.Stats().Add(p.Tx.Stats())
}
