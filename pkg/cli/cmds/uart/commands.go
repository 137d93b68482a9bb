package uart

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/trommel.go/pkg/cli/sh"
	"github.com/robotalks/trommel.go/pkg/midi"
	"github.com/robotalks/trommel.go/pkg/softuart"
)

// DefaultFlushTimeout limits uart.flush.
const DefaultFlushTimeout = 100 * time.Millisecond

// ParseBytes parses hex bytes, with or without 0x.
func ParseBytes(args []string) ([]byte, error) {
	data := make([]byte, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(arg), "0x"), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid byte %q", arg)
		}
		data = append(data, byte(v))
	}
	return data, nil
}

func parseUint7(args []string, names ...string) ([]byte, error) {
	if len(args) < len(names) {
		return nil, fmt.Errorf("%s required", strings.Join(names, " "))
	}
	vals := make([]byte, len(names))
	for n, name := range names {
		v, err := strconv.ParseUint(args[n], 0, 8)
		if err != nil || v > 127 {
			return nil, fmt.Errorf("invalid %s: %q", name, args[n])
		}
		vals[n] = byte(v)
	}
	return vals, nil
}

func parseChannel(arg string) (byte, error) {
	ch, err := strconv.Atoi(arg)
	if err != nil || ch < 1 || ch > 16 {
		return 0, fmt.Errorf("invalid MIDI channel %q", arg)
	}
	return byte(ch - 1), nil
}

func sendMIDI(c *ishell.Context, b *sh.Bench, m *midi.Message) {
	if _, err := m.WriteTo(b.Port()); err != nil {
		c.Err(err)
		return
	}
	c.Println(m)
}

var realtime = map[string]byte{
	"start":    midi.Start,
	"stop":     midi.Stop,
	"continue": midi.Continue,
	"clock":    midi.TimingClock,
	"reset":    midi.SystemReset,
}

var (
	// WriteCmd queues bytes for transmission.
	WriteCmd = ishell.Cmd{
		Name:    "uart.write",
		Aliases: []string{"uw"},
		Help:    "HEX-BYTES...",
		Func: sh.WithBench(func(c *ishell.Context, b *sh.Bench) {
			data, err := ParseBytes(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			port := b.Port()
			before := port.Stats().Dropped
			port.Write(data)
			c.Printf("queued %d, dropped %d, free %d\n",
				len(data), port.Stats().Dropped-before, port.AvailableForWrite())
		}),
	}

	// FlushCmd runs the clock until the transmit queue drained.
	FlushCmd = ishell.Cmd{
		Name:    "uart.flush",
		Aliases: []string{"uf"},
		Help:    "[TIMEOUT]",
		Func: sh.WithBench(func(c *ishell.Context, b *sh.Bench) {
			timeout := DefaultFlushTimeout
			if len(c.Args) > 0 {
				d, err := time.ParseDuration(c.Args[0])
				if err != nil {
					c.Err(err)
					return
				}
				timeout = d
			}
			if !b.Flush(timeout) {
				c.Err(fmt.Errorf("%d bytes pending after %v", b.Port().Tx.Pending(), timeout))
			}
		}),
	}

	// ReadCmd reads received bytes.
	ReadCmd = ishell.Cmd{
		Name:    "uart.read",
		Aliases: []string{"ur"},
		Help:    "[COUNT]",
		Func: sh.WithBench(func(c *ishell.Context, b *sh.Bench) {
			count := softuart.QueueSize
			if len(c.Args) > 0 {
				n, err := strconv.Atoi(c.Args[0])
				if err != nil || n < 0 {
					c.Err(fmt.Errorf("invalid COUNT %q", c.Args[0]))
					return
				}
				count = n
			}
			buf := make([]byte, count)
			n, _ := b.Port().Read(buf)
			s := sh.ShellFrom(c)
			if s.OutputJSON {
				vals := make([]int, n)
				for i, v := range buf[:n] {
					vals[i] = int(v)
				}
				s.Print(c, vals)
				return
			}
			c.Printf("% x\n", buf[:n])
		}),
	}

	// PeekCmd shows the next received byte.
	PeekCmd = ishell.Cmd{
		Name:    "uart.peek",
		Aliases: []string{"up"},
		Help:    "",
		Func: sh.WithBench(func(c *ishell.Context, b *sh.Bench) {
			v := b.Port().Rx.Peek()
			if v == softuart.Empty {
				c.Println("empty")
				return
			}
			c.Printf("%02x\n", v)
		}),
	}

	// ClearCmd empties the queues.
	ClearCmd = ishell.Cmd{
		Name:    "uart.clear",
		Aliases: []string{"uc"},
		Help:    "[rx|tx]",
		Func: sh.WithBench(func(c *ishell.Context, b *sh.Bench) {
			which := "rx"
			if len(c.Args) > 0 {
				which = c.Args[0]
			}
			switch which {
			case "rx":
				b.Port().Rx.Clear()
			case "tx":
				b.Port().Tx.Clear()
			default:
				c.Err(fmt.Errorf("rx or tx expected"))
			}
		}),
	}

	// StatsCmd shows the link counters.
	StatsCmd = ishell.Cmd{
		Name:    "uart.stats",
		Aliases: []string{"us"},
		Help:    "",
		Func: sh.WithBench(func(c *ishell.Context, b *sh.Bench) {
			stats := b.Port().Stats()
			s := sh.ShellFrom(c)
			if s.OutputJSON {
				s.Print(c, stats)
				return
			}
			c.Printf("rx: %d frames, %d framing errors, %d overruns, %d discarded, %d noise, %d queued\n",
				stats.Frames, stats.FramingErrors, stats.Overruns, stats.Discarded, stats.NoiseEdges, b.Port().Buffered())
			c.Printf("tx: %d sent, %d dropped, %d pending\n", stats.Sent, stats.Dropped, b.Port().Tx.Pending())
		}),
	}

	// TraceCmd draws the line since the last trace.
	TraceCmd = ishell.Cmd{
		Name:    "uart.trace",
		Aliases: []string{"ut"},
		Help:    "",
		Func: sh.WithBench(func(c *ishell.Context, b *sh.Bench) {
			trace, start, end := b.Trace()
			c.Println(sh.RenderTrace(trace, start, end, softuart.TicksPerBit))
			b.ResetTrace()
		}),
	}

	// PollCmd switches firmware polling of received bytes.
	PollCmd = ishell.Cmd{
		Name: "poll",
		Help: "on|off",
		Func: sh.WithBench(func(c *ishell.Context, b *sh.Bench) {
			if len(c.Args) > 0 {
				b.Poll = c.Args[0] == "on"
			}
			c.Printf("poll %v\n", b.Poll)
		}),
	}

	// RunCmd advances the simulated time.
	RunCmd = ishell.Cmd{
		Name: "run",
		Help: "DURATION",
		Func: sh.WithBench(func(c *ishell.Context, b *sh.Bench) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("DURATION required"))
				return
			}
			d, err := time.ParseDuration(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			b.Run(d)
			c.Printf("uptime %v\n", b.Clock().Uptime())
		}),
	}

	// NoteCmd sends a note-on.
	NoteCmd = ishell.Cmd{
		Name:    "midi.note",
		Aliases: []string{"mn"},
		Help:    "CHANNEL(1-16) NOTE [VELOCITY]",
		Func: sh.WithBench(func(c *ishell.Context, b *sh.Bench) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("CHANNEL NOTE required"))
				return
			}
			ch, err := parseChannel(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			args := c.Args[1:]
			if len(args) < 2 {
				args = append(args, "100")
			}
			vals, err := parseUint7(args, "NOTE", "VELOCITY")
			if err != nil {
				c.Err(err)
				return
			}
			sendMIDI(c, b, midi.NewNoteOn(ch, vals[0], vals[1]))
		}),
	}

	// ProgramCmd sends a program change.
	ProgramCmd = ishell.Cmd{
		Name:    "midi.program",
		Aliases: []string{"mp"},
		Help:    "CHANNEL(1-16) PROGRAM",
		Func: sh.WithBench(func(c *ishell.Context, b *sh.Bench) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("CHANNEL PROGRAM required"))
				return
			}
			ch, err := parseChannel(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			vals, err := parseUint7(c.Args[1:], "PROGRAM")
			if err != nil {
				c.Err(err)
				return
			}
			sendMIDI(c, b, midi.NewProgramChange(ch, vals[0]))
		}),
	}

	// ControlCmd sends a control change.
	ControlCmd = ishell.Cmd{
		Name:    "midi.control",
		Aliases: []string{"mc"},
		Help:    "CHANNEL(1-16) CONTROLLER VALUE",
		Func: sh.WithBench(func(c *ishell.Context, b *sh.Bench) {
			if len(c.Args) < 3 {
				c.Err(fmt.Errorf("CHANNEL CONTROLLER VALUE required"))
				return
			}
			ch, err := parseChannel(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			vals, err := parseUint7(c.Args[1:], "CONTROLLER", "VALUE")
			if err != nil {
				c.Err(err)
				return
			}
			sendMIDI(c, b, midi.NewControlChange(ch, vals[0], vals[1]))
		}),
	}

	// RealtimeCmd sends a real-time message.
	RealtimeCmd = ishell.Cmd{
		Name:    "midi.rt",
		Aliases: []string{"mrt"},
		Help:    "start|stop|continue|clock|reset",
		Func: sh.WithBench(func(c *ishell.Context, b *sh.Bench) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("message required"))
				return
			}
			status, ok := realtime[c.Args[0]]
			if !ok {
				c.Err(fmt.Errorf("unknown real-time message %q", c.Args[0]))
				return
			}
			sendMIDI(c, b, &midi.Message{Status: status})
		}),
	}
)

func init() {
	sh.AddCmds(
		&WriteCmd,
		&FlushCmd,
		&ReadCmd,
		&PeekCmd,
		&ClearCmd,
		&StatsCmd,
		&TraceCmd,
		&PollCmd,
		&RunCmd,
		&NoteCmd,
		&ProgramCmd,
		&ControlCmd,
		&RealtimeCmd,
	)
}
