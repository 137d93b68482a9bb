package trommel

import (
	"context"
	"fmt"
	"io"

	"github.com/golang/glog"

	"github.com/robotalks/trommel.go/pkg/command"
	fx "github.com/robotalks/trommel.go/pkg/framework"
	"github.com/robotalks/trommel.go/pkg/msgs"
)

// ID implements command.Handler.
func (f *Firmware) ID() string {
	return f.Config.ID
}

// Hit implements command.Handler.
func (f *Firmware) Hit(ch int) {
	f.Drum.Hit(ch)
}

// Release implements command.Handler.
func (f *Firmware) Release(ch int) {
	f.Drum.Release(ch)
}

// StartPattern implements command.Handler.
func (f *Firmware) StartPattern(name string) error {
	p := f.Config.Pattern(name)
	if p == nil {
		return fmt.Errorf("unknown pattern %q", name)
	}
	f.selected = p
	f.startPattern(p)
	return nil
}

// StopPattern implements command.Handler.
func (f *Firmware) StopPattern() {
	f.Sequencer.Stop()
}

// AttachConsole creates the console interpreter replying on out.
func (f *Firmware) AttachConsole(out io.Writer) *command.Interpreter {
	f.Console = command.NewInterpreter(f, out)
	return f.Console
}

// Apply executes a message posted to the loop. It reports whether the
// message was understood.
func (f *Firmware) Apply(msg fx.Message) bool {
	switch m := msg.(type) {
	case *msgs.HitCommand:
		for _, ch := range m.Channels {
			if d := m.Duration(); d > 0 {
				f.Drum.HitFor(int(ch), d)
			} else {
				f.Drum.Hit(int(ch))
			}
		}
	case *msgs.ReleaseCommand:
		if len(m.Channels) == 0 {
			f.Drum.ReleaseAll()
		}
		for _, ch := range m.Channels {
			f.Drum.Release(int(ch))
		}
	case *msgs.SequenceCommand:
		if m.Stop {
			f.StopPattern()
		} else if err := f.StartPattern(m.Pattern); err != nil {
			glog.Warningf("sequence command: %v", err)
		}
	case *ConsoleInput:
		if f.Console == nil {
			return false
		}
		if _, err := f.Console.Write(m.Data); err != nil {
			glog.Errorf("console: %v", err)
		}
	default:
		return false
	}
	return true
}

// AddToLoop implements LoopAdder. The board clock runs in real time
// alongside the loop.
func (f *Firmware) AddToLoop(loop *fx.Loop) {
	if f.Config.PollInterval > 0 {
		loop.Interval = f.Config.PollInterval
	}
	loop.AddController(fx.PrLvSense, fx.ControlFunc(func(fx.ControlContext) error {
		f.Receive()
		return nil
	}))
	loop.AddController(fx.PrLvControl, fx.ControlFunc(func(cc fx.ControlContext) error {
		cc.TakeMessages(func(msg fx.Message) bool {
			if !f.Apply(msg) {
				glog.V(2).Infof("ignore message %T", msg)
			}
			return true
		})
		return nil
	}))
	loop.AddController(fx.PrLvActuate, fx.ControlFunc(func(fx.ControlContext) error {
		f.Actuate()
		return nil
	}))
	loop.AddController(fx.PrLvPostProc, fx.ControlFunc(func(fx.ControlContext) error {
		f.Report()
		return nil
	}))
	loop.AddRunnable(fx.NamedRun("clock", fx.RunFunc(f.Board.Clock.Run)))
}

// ConsoleReader forwards console bytes to the loop.
type ConsoleReader struct {
	Reader io.Reader
	Poster fx.MessagePoster
}

// Run implements Runnable. A Reader which is also a Closer is closed
// when ctx is done, any other reader is abandoned.
func (r *ConsoleReader) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- r.forward()
	}()
	select {
	case <-ctx.Done():
		if closer, ok := r.Reader.(io.Closer); ok {
			closer.Close()
		}
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

func (r *ConsoleReader) forward() error {
	buf := make([]byte, command.MaxLineLen)
	for {
		n, err := r.Reader.Read(buf)
		if n > 0 {
			r.Poster.PostMessage(&ConsoleInput{Data: append([]byte(nil), buf[:n]...)})
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// AddToLoop implements LoopAdder.
func (r *ConsoleReader) AddToLoop(loop *fx.Loop) {
	if r.Poster == nil {
		r.Poster = loop
	}
	loop.AddRunnable(fx.NamedRun("console", r))
}
