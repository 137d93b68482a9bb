package drum

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/trommel.go/pkg/cli/sh"
	"github.com/robotalks/trommel.go/pkg/drum"
)

func parseChannels(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("CHANNEL required")
	}
	chs := make([]int, len(args))
	for n, arg := range args {
		ch, err := strconv.Atoi(arg)
		if err != nil || ch < 0 || ch >= drum.Channels {
			return nil, fmt.Errorf("invalid CHANNEL %q", arg)
		}
		chs[n] = ch
	}
	return chs, nil
}

// withDrum wraps command func playing the connected device or the bench.
func withDrum(fn func(c *ishell.Context, d sh.Remote) error) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		d, err := sh.ShellFrom(c).Drum()
		if err == nil {
			err = fn(c, d)
		}
		if err != nil {
			c.Err(err)
		}
	}
}

var (
	// HitCmd hits channels.
	HitCmd = ishell.Cmd{
		Name:    "hit",
		Aliases: []string{"h"},
		Help:    "CHANNEL...",
		Func: withDrum(func(c *ishell.Context, d sh.Remote) error {
			chs, err := parseChannels(c.Args)
			if err != nil {
				return err
			}
			return d.Hit(chs...)
		}),
	}

	// ReleaseCmd releases channels.
	ReleaseCmd = ishell.Cmd{
		Name:    "release",
		Aliases: []string{"r"},
		Help:    "CHANNEL...",
		Func: withDrum(func(c *ishell.Context, d sh.Remote) error {
			chs, err := parseChannels(c.Args)
			if err != nil {
				return err
			}
			return d.Release(chs...)
		}),
	}

	// SequenceCmd starts a pattern.
	SequenceCmd = ishell.Cmd{
		Name: "seq",
		Help: "PATTERN",
		Func: withDrum(func(c *ishell.Context, d sh.Remote) error {
			if len(c.Args) < 1 {
				return fmt.Errorf("PATTERN required")
			}
			return d.Sequence(c.Args[0])
		}),
	}

	// StopCmd stops the pattern.
	StopCmd = ishell.Cmd{
		Name: "stop",
		Help: "",
		Func: withDrum(func(c *ishell.Context, d sh.Remote) error {
			return d.Stop()
		}),
	}

	// EventsCmd prints the events received since last time.
	EventsCmd = ishell.Cmd{
		Name:    "events",
		Aliases: []string{"ev"},
		Help:    "",
		Func: withDrum(func(c *ishell.Context, d sh.Remote) error {
			log := d.Events()
			if log == nil {
				return fmt.Errorf("%s reports no events", d.Name())
			}
			s := sh.ShellFrom(c)
			for _, msg := range log.Take() {
				if s.OutputJSON {
					s.Print(c, map[string]interface{}{"type": sh.MessageName(msg), "message": msg})
					continue
				}
				c.Println(sh.FormatMessage(msg))
			}
			return nil
		}),
	}

	// IDCmd queries the device ID over the console.
	IDCmd = ishell.Cmd{
		Name: "id",
		Help: "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			s := sh.ShellFrom(c)
			serial, ok := s.Remote.(*sh.SerialRemote)
			if !ok {
				c.Println(s.Remote.Name())
				return
			}
			id, err := serial.ID()
			if err != nil {
				c.Err(err)
				return
			}
			c.Println(id)
		}),
	}

	// SendCmd sends a raw console line.
	SendCmd = ishell.Cmd{
		Name: "send",
		Help: "LINE",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			serial, ok := sh.ShellFrom(c).Remote.(*sh.SerialRemote)
			if !ok {
				c.Err(fmt.Errorf("%s has no console", sh.ShellFrom(c).Remote.Name()))
				return
			}
			if len(c.Args) == 0 {
				c.Err(fmt.Errorf("LINE required"))
				return
			}
			reply, err := serial.Ask(strings.Join(c.Args, " "))
			if err != nil {
				c.Err(err)
				return
			}
			c.Println(reply)
		}),
	}
)

func init() {
	sh.AddCmds(
		&HitCmd,
		&ReleaseCmd,
		&SequenceCmd,
		&StopCmd,
		&EventsCmd,
		&IDCmd,
		&SendCmd,
	)
}
