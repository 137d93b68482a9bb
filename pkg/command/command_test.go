package command

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	calls   []string
	pattern string
}

func (h *recordingHandler) ID() string { return "drum-1" }

func (h *recordingHandler) Hit(ch int) {
	h.calls = append(h.calls, "h"+strconv.Itoa(ch))
}

func (h *recordingHandler) Release(ch int) {
	h.calls = append(h.calls, "r"+strconv.Itoa(ch))
}

func (h *recordingHandler) StartPattern(name string) error {
	if name != "rock" {
		return errors.New("unknown pattern " + name)
	}
	h.pattern = name
	return nil
}

func (h *recordingHandler) StopPattern() {
	h.pattern = ""
}

func TestInterpreter(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		reply  string
		calls  []string
		active string
	}{
		{"probe", "trommelbold?\r", "yessir!\r\n", nil, ""},
		{"probe any case", "TrommelBold?\n", "yessir!\r\n", nil, ""},
		{"id", "id?\r", "drum-1\r\n", nil, ""},
		{"hits", "h1h3\r", "", []string{"h1", "h3"}, ""},
		{"hit and release", "h12r0\r", "", []string{"h12", "r0"}, ""},
		{"bare number", "3\r\n", "", []string{"h2"}, ""},
		{"blank lines", "\r\n\r\n", "", nil, ""},
		{"malformed hits", "h1x2\r", "err\r\n", nil, ""},
		{"missing channel", "h1h\r", "err\r\n", nil, ""},
		{"bare garbage", "3a\r", "err\r\n", nil, ""},
		{"unknown", "hello\r", "err\r\n", nil, ""},
		{"sequence", "seq rock\r", "ok\r\n", nil, "rock"},
		{"unknown sequence", "seq jazz\r", "err\r\n", nil, ""},
		{"stop", "seq rock\rstop\r", "ok\r\nok\r\n", nil, ""},
		{"several lines", "h0\rid?\r2\r", "drum-1\r\n", []string{"h0", "h1"}, ""},
		{"too long", strings.Repeat("h", MaxLineLen+1) + "\rh1\r", "err\r\n", []string{"h1"}, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			h := &recordingHandler{}
			i := NewInterpreter(h, &out)
			n, err := i.Write([]byte(tc.input))
			require.NoError(t, err)
			require.Equal(t, len(tc.input), n)
			require.Equal(t, tc.reply, out.String())
			require.Equal(t, tc.calls, h.calls)
			require.Equal(t, tc.active, h.pattern)
		})
	}
}

func TestInterpreterPartialLine(t *testing.T) {
	var out bytes.Buffer
	h := &recordingHandler{}
	i := NewInterpreter(h, &out)
	i.Write([]byte("h"))
	i.Write([]byte("5"))
	require.Empty(t, h.calls)
	require.NoError(t, i.WriteByte('\n'))
	require.Equal(t, []string{"h5"}, h.calls)
	require.NoError(t, i.Greet())
	require.Equal(t, Greeting+EOL, out.String())
}

// devicePort is an in-memory serial port with an Interpreter at the far end.
type devicePort struct {
	lock     sync.Mutex
	handler  *recordingHandler
	console  *Interpreter
	replies  bytes.Buffer
	silent   int
	greeting bool
	closed   bool
}

func newDevicePort() *devicePort {
	p := &devicePort{handler: &recordingHandler{}}
	p.console = NewInterpreter(p.handler, &p.replies)
	return p
}

func (p *devicePort) Read(b []byte) (int, error) {
	p.lock.Lock()
	defer p.lock.Unlock()
	if p.greeting {
		p.greeting = false
		p.console.Greet()
	}
	return p.replies.Read(b)
}

func (p *devicePort) Write(b []byte) (int, error) {
	p.lock.Lock()
	defer p.lock.Unlock()
	if p.silent > 0 {
		// still booting
		p.silent--
		p.greeting = p.silent == 0
		return len(b), nil
	}
	return p.console.Write(b)
}

func (p *devicePort) Close() error {
	p.closed = true
	return nil
}

func (p *devicePort) Flush() error {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.replies.Reset()
	return nil
}

func newTestClient(port *devicePort) *Client {
	c := NewClient(port)
	c.ReplyWait = 20 * time.Millisecond
	c.GreetingWait = 100 * time.Millisecond
	return c
}

func TestClient(t *testing.T) {
	port := newDevicePort()
	c := newTestClient(port)
	require.NoError(t, c.Probe())

	id, err := c.ID()
	require.NoError(t, err)
	require.Equal(t, "drum-1", id)

	require.NoError(t, c.Hit(0, 7))
	require.NoError(t, c.Release(7))
	require.NoError(t, c.Hit())
	require.Equal(t, []string{"h0", "h7", "r7"}, port.handler.calls)

	require.NoError(t, c.Sequence("rock"))
	require.Equal(t, "rock", port.handler.pattern)
	require.NoError(t, c.Stop())
	require.Empty(t, port.handler.pattern)

	err = c.Sequence("jazz")
	require.Error(t, err)
	require.Equal(t, &ReplyError{Command: "seq jazz", Reply: ReplyErr}, err)

	require.NoError(t, c.Close())
	require.True(t, port.closed)
	require.Equal(t, ErrNotConnected, c.Hit(1))
	require.Equal(t, ErrNotConnected, c.Close())
}

func TestClientProbeBooting(t *testing.T) {
	port := newDevicePort()
	port.silent = 1
	c := newTestClient(port)
	require.NoError(t, c.Probe())
}

func TestClientProbeFails(t *testing.T) {
	port := newDevicePort()
	port.silent = 10
	c := newTestClient(port)
	require.Equal(t, ErrNotTrommelbold, c.Probe())
}
