package trommel

import (
	"context"
	"io"

	"github.com/golang/glog"

	fx "github.com/robotalks/trommel.go/pkg/framework"
	"github.com/robotalks/trommel.go/pkg/sim"
	"github.com/robotalks/trommel.go/pkg/softuart"
)

// LineFeeder drives the bytes read from Reader onto a simulated line as
// back-to-back 8N1 frames at the MIDI rate.
type LineFeeder struct {
	Reader io.Reader
	Clock  *sim.Clock
	Line   *sim.Line

	next uint64
}

// NewLineFeeder creates a LineFeeder on the MIDI-in line of board.
func NewLineFeeder(r io.Reader, board *sim.Board) *LineFeeder {
	return &LineFeeder{Reader: r, Clock: board.Clock, Line: board.MIDIIn}
}

// Feed schedules frames for data and returns the tick after the last
// stop bit.
func (f *LineFeeder) Feed(data []byte) uint64 {
	if now := f.Clock.Now() + 1; f.next < now {
		f.next = now
	}
	for _, b := range data {
		f.next = f.Line.DriveFrame(f.next, softuart.TicksPerBit, b)
	}
	return f.next
}

// Run implements Runnable.
func (f *LineFeeder) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		buf := make([]byte, softuart.QueueSize)
		for {
			n, err := f.Reader.Read(buf)
			if n > 0 {
				glog.V(4).Infof("feed % x", buf[:n])
				f.Feed(buf[:n])
			}
			if err != nil {
				if err == io.EOF {
					err = nil
				}
				errCh <- err
				return
			}
		}
	}()
	select {
	case <-ctx.Done():
		if closer, ok := f.Reader.(io.Closer); ok {
			closer.Close()
		}
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// AddToLoop implements LoopAdder.
func (f *LineFeeder) AddToLoop(loop *fx.Loop) {
	loop.AddRunnable(fx.NamedRun("midi-in", f))
}
