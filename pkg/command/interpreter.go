package command

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/glog"
)

// Replies and probes of the console protocol.
const (
	Probe      = "trommelbold?"
	ProbeReply = "yessir!"
	IDQuery    = "id?"
	Greeting   = "trommelbold ready"
	ReplyOK    = "ok"
	ReplyErr   = "err"
	EOL        = "\r\n"

	// MaxLineLen is the longest line accepted, longer lines are answered
	// with ReplyErr.
	MaxLineLen = 64
)

// Handler executes console commands.
type Handler interface {
	ID() string
	Hit(ch int)
	Release(ch int)
	StartPattern(name string) error
	StopPattern()
}

// Interpreter assembles lines from the bytes written to it and executes
// them on a Handler. Replies are written to the output.
type Interpreter struct {
	handler  Handler
	out      io.Writer
	line     []byte
	overflow bool
}

// NewInterpreter creates an Interpreter replying on out.
func NewInterpreter(handler Handler, out io.Writer) *Interpreter {
	return &Interpreter{handler: handler, out: out, line: make([]byte, 0, MaxLineLen)}
}

// Greet sends the greeting a freshly started device prints.
func (i *Interpreter) Greet() error {
	return i.reply(Greeting)
}

// WriteByte implements io.ByteWriter.
func (i *Interpreter) WriteByte(c byte) error {
	if c != '\r' && c != '\n' {
		if len(i.line) < MaxLineLen {
			i.line = append(i.line, c)
		} else {
			i.overflow = true
		}
		return nil
	}
	line, overflow := string(i.line), i.overflow
	i.line, i.overflow = i.line[:0], false
	if overflow {
		return i.reply(ReplyErr)
	}
	if reply := i.Exec(line); reply != "" {
		return i.reply(reply)
	}
	return nil
}

// Write implements io.Writer.
func (i *Interpreter) Write(p []byte) (int, error) {
	for n, c := range p {
		if err := i.WriteByte(c); err != nil {
			return n, err
		}
	}
	return len(p), nil
}

func (i *Interpreter) reply(s string) error {
	_, err := io.WriteString(i.out, s+EOL)
	return err
}

// Exec executes one line and returns the reply, empty if the command has
// none.
func (i *Interpreter) Exec(line string) string {
	line = strings.TrimSpace(line)
	glog.V(2).Infof("console: %q", line)
	switch {
	case line == "":
		return ""
	case strings.EqualFold(line, Probe):
		return ProbeReply
	case line == IDQuery:
		return i.handler.ID()
	case line == "stop":
		i.handler.StopPattern()
		return ReplyOK
	case strings.HasPrefix(line, "seq "):
		if err := i.handler.StartPattern(strings.TrimSpace(line[4:])); err != nil {
			glog.Warningf("console: %v", err)
			return ReplyErr
		}
		return ReplyOK
	case line[0] >= '0' && line[0] <= '9':
		n, err := strconv.Atoi(line)
		if err != nil {
			return ReplyErr
		}
		i.handler.Hit(n - 1)
		return ""
	case line[0] == 'h' || line[0] == 'r':
		ops, err := parseChannelOps(line)
		if err != nil {
			glog.Warningf("console: %v", err)
			return ReplyErr
		}
		for _, op := range ops {
			if op.hit {
				i.handler.Hit(op.ch)
			} else {
				i.handler.Release(op.ch)
			}
		}
		return ""
	}
	return ReplyErr
}

type channelOp struct {
	hit bool
	ch  int
}

// parseChannelOps parses a run of h<n> and r<n>. The whole line is
// rejected if any part is malformed.
func parseChannelOps(line string) (ops []channelOp, err error) {
	for pos := 0; pos < len(line); {
		c := line[pos]
		if c != 'h' && c != 'r' {
			return nil, fmt.Errorf("invalid command %q at %d", c, pos)
		}
		end := pos + 1
		for end < len(line) && line[end] >= '0' && line[end] <= '9' {
			end++
		}
		if end == pos+1 {
			return nil, fmt.Errorf("missing channel at %d", end)
		}
		ch, err := strconv.Atoi(line[pos+1 : end])
		if err != nil {
			return nil, err
		}
		ops = append(ops, channelOp{hit: c == 'h', ch: ch})
		pos = end
	}
	return
}

// FormatChannels encodes a hit or release command for chs.
func FormatChannels(op byte, chs ...int) string {
	var sb strings.Builder
	for _, ch := range chs {
		sb.WriteByte(op)
		sb.WriteString(strconv.Itoa(ch))
	}
	return sb.String()
}
