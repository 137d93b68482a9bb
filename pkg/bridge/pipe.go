package bridge

import (
	"context"
	"io"

	"github.com/golang/glog"

	fx "github.com/robotalks/trommel.go/pkg/framework"
	"github.com/robotalks/trommel.go/pkg/msgs"
)

// CommandPipe reads command packets and posts the decoded commands to the
// foreground loop. Packets which are not valid commands are dropped.
type CommandPipe struct {
	Reader PacketReader
	Poster fx.MessagePoster
}

// NewCommandPipe creates a CommandPipe.
func NewCommandPipe(r PacketReader, poster fx.MessagePoster) *CommandPipe {
	return &CommandPipe{Reader: r, Poster: poster}
}

// Run implements Runnable.
func (p *CommandPipe) Run(ctx context.Context) error {
	return fx.RunWithContextCancel(ctx, func() { p.Close() }, func() error {
		for {
			pkt, err := p.Reader.ReadPacket()
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
			msg, err := decodeCommand(pkt)
			if err != nil {
				glog.Warningf("drop command: %v", err)
				continue
			}
			glog.V(2).Infof("command %T", msg)
			p.Poster.PostMessage(msg)
		}
	})
}

func decodeCommand(pkt []byte) (fx.Message, error) {
	typed, err := msgs.DecodeTyped(pkt)
	if err != nil {
		return nil, err
	}
	if !typed.IsCommand() {
		return nil, ErrNotCommand
	}
	return typed.Decode()
}

// Close closes the reader if it is a Closer.
func (p *CommandPipe) Close() error {
	if closer, ok := p.Reader.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// AddToLoop implements LoopAdder. The reader joins the loop if it needs
// to run, and commands are posted to the loop.
func (p *CommandPipe) AddToLoop(loop *fx.Loop) {
	if p.Poster == nil {
		p.Poster = loop
	}
	if adder, ok := p.Reader.(fx.LoopAdder); ok {
		loop.Add(adder)
	} else if runnable, ok := p.Reader.(fx.Runnable); ok {
		loop.AddRunnable(runnable)
	}
	loop.AddRunnable(p)
}
