package command

import (
	"io"
	"strings"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/tarm/serial"
)

// Defaults of the console serial port.
const (
	DefaultBaud         = 19200
	DefaultReplyWait    = 50 * time.Millisecond
	DefaultGreetingWait = 3 * time.Second
	readPoll            = 10 * time.Millisecond
)

// Client talks to the console of a device over a serial port.
type Client struct {
	// ReplyWait is how long a reply may take.
	ReplyWait time.Duration
	// GreetingWait is how long a booting device may take to greet.
	GreetingWait time.Duration

	port io.ReadWriteCloser
	lock sync.Mutex
	buf  []byte
}

// Open opens the serial port name and probes for a device. baud defaults
// to 19200.
func Open(name string, baud int) (*Client, error) {
	if baud <= 0 {
		baud = DefaultBaud
	}
	port, err := serial.OpenPort(&serial.Config{
		Name:        name,
		Baud:        baud,
		ReadTimeout: readPoll,
	})
	if err != nil {
		return nil, err
	}
	c := NewClient(port)
	if err := c.Probe(); err != nil {
		port.Close()
		return nil, err
	}
	glog.Infof("trommelbold on %s", name)
	return c, nil
}

// NewClient wraps an open port. Reads from port must not block for long,
// returning 0 bytes when nothing arrived.
func NewClient(port io.ReadWriteCloser) *Client {
	return &Client{
		ReplyWait:    DefaultReplyWait,
		GreetingWait: DefaultGreetingWait,
		port:         port,
	}
}

// Close closes the port.
func (c *Client) Close() error {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.port == nil {
		return ErrNotConnected
	}
	err := c.port.Close()
	c.port = nil
	return err
}

// Probe checks the peer is a trommelbold. Opening the port may reset the
// device, so when the first probe is not answered it waits for the
// greeting and probes once more.
func (c *Client) Probe() error {
	if c.isTrommelbold(c.ReplyWait) {
		return nil
	}
	c.lock.Lock()
	line, err := c.readLine(c.GreetingWait)
	c.lock.Unlock()
	if err == nil {
		glog.V(2).Infof("greeting %q", line)
	}
	if c.isTrommelbold(c.ReplyWait) {
		return nil
	}
	return ErrNotTrommelbold
}

func (c *Client) isTrommelbold(wait time.Duration) bool {
	reply, err := c.ask(Probe, wait)
	return err == nil && strings.HasPrefix(strings.ToLower(reply), ProbeReply)
}

// Ask sends cmd and returns the reply line.
func (c *Client) Ask(cmd string) (string, error) {
	return c.ask(cmd, c.ReplyWait)
}

func (c *Client) ask(cmd string, wait time.Duration) (string, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.discard()
	if err := c.send(cmd); err != nil {
		return "", err
	}
	return c.readLine(wait)
}

// Send sends cmd without waiting for a reply.
func (c *Client) Send(cmd string) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.send(cmd)
}

// ID queries the device ID.
func (c *Client) ID() (string, error) {
	return c.Ask(IDQuery)
}

// Hit hits chs.
func (c *Client) Hit(chs ...int) error {
	if len(chs) == 0 {
		return nil
	}
	return c.Send(FormatChannels('h', chs...))
}

// Release releases chs.
func (c *Client) Release(chs ...int) error {
	if len(chs) == 0 {
		return nil
	}
	return c.Send(FormatChannels('r', chs...))
}

// Sequence starts the named pattern.
func (c *Client) Sequence(name string) error {
	return c.expectOK("seq " + name)
}

// Stop stops the pattern.
func (c *Client) Stop() error {
	return c.expectOK("stop")
}

func (c *Client) expectOK(cmd string) error {
	reply, err := c.Ask(cmd)
	if err != nil {
		return err
	}
	if reply != ReplyOK {
		return &ReplyError{Command: cmd, Reply: reply}
	}
	return nil
}

func (c *Client) send(cmd string) error {
	if c.port == nil {
		return ErrNotConnected
	}
	if !strings.HasSuffix(cmd, "\r") && !strings.HasSuffix(cmd, "\n") {
		cmd += "\r"
	}
	glog.V(2).Infof("SND %q", cmd)
	_, err := io.WriteString(c.port, cmd)
	return err
}

// discard drops unread input.
func (c *Client) discard() {
	c.buf = c.buf[:0]
	if f, ok := c.port.(interface{ Flush() error }); ok {
		f.Flush()
	}
}

func (c *Client) readLine(wait time.Duration) (string, error) {
	if c.port == nil {
		return "", ErrNotConnected
	}
	deadline := time.Now().Add(wait)
	var b [64]byte
	for {
		if pos := strings.IndexAny(string(c.buf), "\r\n"); pos >= 0 {
			line := strings.TrimSpace(string(c.buf[:pos]))
			c.buf = append(c.buf[:0], c.buf[pos+1:]...)
			if line == "" {
				continue
			}
			glog.V(2).Infof("RCV %q", line)
			return line, nil
		}
		if time.Now().After(deadline) {
			return "", ErrTimeout
		}
		n, err := c.port.Read(b[:])
		if err != nil && err != io.EOF {
			return "", err
		}
		if n == 0 {
			time.Sleep(time.Millisecond)
		}
		c.buf = append(c.buf, b[:n]...)
	}
}
