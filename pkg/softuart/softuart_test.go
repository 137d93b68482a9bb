package softuart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/trommel.go/pkg/sim"
)

type uartTestEnv struct {
	t     *testing.T
	board *sim.Board
	clock *sim.Clock
	rx    *Receiver
	tx    *Transmitter
	at    uint64
}

func newUARTTestEnv(t *testing.T, board *sim.Board) *uartTestEnv {
	env := &uartTestEnv{
		t:     t,
		board: board,
		clock: board.Clock,
		rx:    NewReceiver(board.MIDIIn, board.RxEdge, board.RxTimer, board.Clock),
		tx:    NewTransmitter(board.MIDIOut, board.TxTimer, board.Clock),
	}
	env.rx.Init()
	env.tx.Init()
	return env
}

func newLoopbackTestEnv(t *testing.T) *uartTestEnv {
	return newUARTTestEnv(t, sim.NewLoopbackBoard())
}

// newInputTestEnv drives the receiver from the test instead of the transmitter.
func newInputTestEnv(t *testing.T) *uartTestEnv {
	return newUARTTestEnv(t, sim.NewBoard())
}

// settle lets the line idle long enough for the receiver to trust start bits.
func (e *uartTestEnv) settle() *uartTestEnv {
	e.clock.Advance(uint64(SyncTicks) + 1)
	e.at = e.clock.Now() + uint64(TicksPerBit)
	return e
}

func (e *uartTestEnv) frame(b byte) *uartTestEnv {
	e.at = e.board.MIDIIn.DriveFrame(e.at, TicksPerBit, b)
	return e
}

func (e *uartTestEnv) bits(bits ...bool) *uartTestEnv {
	e.board.MIDIIn.DriveBits(e.at, TicksPerBit, bits)
	e.at += uint64(len(bits)) * uint64(TicksPerBit)
	return e
}

func (e *uartTestEnv) idle(bitTimes int) *uartTestEnv {
	e.at += uint64(bitTimes) * uint64(TicksPerBit)
	return e
}

func (e *uartTestEnv) run() *uartTestEnv {
	// the stop bit of the last frame is sampled before e.at
	if now := e.clock.Now(); e.at > now {
		e.clock.Advance(e.at - now)
	}
	return e
}

func (e *uartTestEnv) drain() []byte {
	var got []byte
	for {
		v := e.rx.Read()
		if v == Empty {
			return got
		}
		got = append(got, byte(v))
	}
}

func (e *uartTestEnv) expectReceived(expected ...byte) *uartTestEnv {
	got := e.drain()
	if len(expected) == 0 {
		require.Empty(e.t, got)
	} else {
		require.Equal(e.t, expected, got)
	}
	return e
}

func (e *uartTestEnv) waitSent() *uartTestEnv {
	require.True(e.t, e.clock.AdvanceUntil(func() bool { return e.tx.Pending() == 0 }, 64*uint64(FrameTicks)))
	// the last byte is still on the line when the queue drains
	e.clock.Advance(2 * uint64(FrameTicks))
	return e
}

func TestRoundTripAllBytes(t *testing.T) {
	env := newLoopbackTestEnv(t).settle()
	var got []byte
	for chunk := 0; chunk < 256; chunk += 16 {
		for v := chunk; v < chunk+16; v++ {
			env.tx.Write(byte(v))
		}
		require.True(t, env.clock.AdvanceUntil(func() bool {
			return env.rx.Available() == 16
		}, 20*uint64(FrameTicks)), "chunk %d", chunk)
		got = append(got, env.drain()...)
	}
	require.Len(t, got, 256)
	for v := 0; v < 256; v++ {
		require.Equal(t, byte(v), got[v])
	}
	stats := env.rx.Stats()
	require.Equal(t, uint32(256), stats.Frames)
	require.Zero(t, stats.FramingErrors)
	require.Equal(t, uint32(256), env.tx.Stats().Sent)
}

func TestExampleScenario(t *testing.T) {
	env := newLoopbackTestEnv(t).settle()
	env.tx.Write(0x90)
	env.tx.Write(0x3C)
	env.tx.Write(0x64)
	env.waitSent()
	require.Equal(t, 0, env.tx.Pending())
	require.Equal(t, 3, env.rx.Available())
	require.Equal(t, 0x90, env.rx.Read())
	require.Equal(t, 0x3C, env.rx.Read())
	require.Equal(t, 0x64, env.rx.Read())
	require.Equal(t, Empty, env.rx.Read())
}

func TestIdleSyncGate(t *testing.T) {
	t.Run("start bits before idle are ignored", func(t *testing.T) {
		env := newInputTestEnv(t)
		env.at = 100
		env.frame(0x00).idle(1).frame(0x00).idle(3).frame(0x3C).run()
		env.expectReceived(0x3C)
		require.Equal(t, uint32(2), env.rx.Stats().NoiseEdges)
	})

	t.Run("start bit after idle is accepted", func(t *testing.T) {
		env := newInputTestEnv(t)
		env.at = uint64(SyncTicks) + 1
		env.frame(0x7f).run()
		env.expectReceived(0x7f)
		require.Zero(t, env.rx.Stats().NoiseEdges)
	})

	t.Run("noise restarts the idle period", func(t *testing.T) {
		env := newInputTestEnv(t)
		// glitches every 8 bit times never leave 11 idle bit times
		for i := 0; i < 6; i++ {
			env.at = uint64(i*8) * uint64(TicksPerBit)
			env.bits(false, true)
		}
		env.at = uint64(5*8+SyncBits-4) * uint64(TicksPerBit)
		env.frame(0x12).run()
		env.expectReceived()
		env.idle(SyncBits + 1).frame(0x34).run()
		env.expectReceived(0x34)
	})
}

func TestFIFOOrdering(t *testing.T) {
	env := newInputTestEnv(t).settle()
	payload := []byte{0x90, 0x24, 0x7f, 0x80, 0x24, 0x00, 0xf8, 0xfe, 0x01}
	for _, b := range payload {
		env.frame(b)
	}
	env.run().expectReceived(payload...)
}

func TestReceiveOverflow(t *testing.T) {
	env := newInputTestEnv(t).settle()
	var offered []byte
	for i := 0; i < 40; i++ {
		offered = append(offered, byte(0xa0+i))
		env.frame(byte(0xa0 + i))
	}
	env.run()
	require.Equal(t, QueueSize, env.rx.Available())
	require.Equal(t, uint32(8), env.rx.Stats().Overruns)
	env.expectReceived(offered[:QueueSize]...)
}

func TestTransmitOverflow(t *testing.T) {
	env := newLoopbackTestEnv(t).settle()
	var offered []byte
	for i := 0; i < 40; i++ {
		offered = append(offered, byte(i*3))
		env.tx.Write(byte(i * 3))
	}
	require.Equal(t, QueueSize, env.tx.Pending())
	require.Equal(t, 0, env.tx.Available())
	require.Equal(t, uint32(8), env.tx.Stats().Dropped)

	env.board.MIDIOut.StartTrace()
	var got []byte
	require.True(t, env.clock.AdvanceUntil(func() bool {
		got = append(got, env.drain()...)
		return len(got) == QueueSize
	}, 40*uint64(FrameTicks)))
	require.Equal(t, offered[:QueueSize], got)
	env.clock.Advance(4 * uint64(FrameTicks))
	env.expectReceived()
}

func TestFramingErrorIsolation(t *testing.T) {
	env := newInputTestEnv(t).settle()
	bad := sim.FrameBits(0x22)
	bad[9] = false
	env.frame(0x11).bits(bad...).bits(true).idle(1).frame(0x00).idle(2).frame(0x33).run()
	env.expectReceived(0x11, 0x33)
	stats := env.rx.Stats()
	require.Equal(t, uint32(1), stats.FramingErrors)
	require.Equal(t, uint32(1), stats.NoiseEdges)
	require.Equal(t, uint32(2), stats.Frames)

	// back in sync, frames are accepted back to back again
	env.frame(0x44).frame(0x55).run()
	env.expectReceived(0x44, 0x55)
}

func TestClearMidFrame(t *testing.T) {
	env := newInputTestEnv(t).settle()
	env.frame(0x01).run()
	require.Equal(t, 1, env.rx.Available())

	start := env.at
	env.frame(0x55)
	env.clock.Advance(start + 5*uint64(TicksPerBit) - env.clock.Now())
	env.rx.Clear()
	require.Equal(t, 0, env.rx.Available())
	require.Equal(t, Empty, env.rx.Peek())

	env.run()
	require.Equal(t, 0, env.rx.Available())
	require.Equal(t, uint32(1), env.rx.Stats().Discarded)

	env.frame(0x66).run()
	env.expectReceived(0x66)
}

func TestPeek(t *testing.T) {
	env := newInputTestEnv(t).settle()
	require.Equal(t, Empty, env.rx.Peek())
	env.frame(0xff).frame(0x00).run()
	require.Equal(t, 0xff, env.rx.Peek())
	require.Equal(t, 0xff, env.rx.Peek())
	require.Equal(t, 2, env.rx.Available())
	require.Equal(t, 0xff, env.rx.Read())
	require.Equal(t, 0x00, env.rx.Peek())
}

func TestTransmitWaveform(t *testing.T) {
	env := newLoopbackTestEnv(t).settle()
	env.board.MIDIOut.StartTrace()
	env.tx.Write(0xa5)
	env.tx.Write(0x0f)
	env.waitSent()
	trace := env.board.MIDIOut.Trace()
	require.NotEmpty(t, trace)
	require.False(t, trace[0].Level)
	for n := 1; n < len(trace); n++ {
		require.Zero(t, (trace[n].At-trace[0].At)%uint64(TicksPerBit), "transition %d off the bit grid", n)
	}
	require.True(t, trace[len(trace)-1].Level, "line must idle high")
	require.Equal(t, []byte{0xa5, 0x0f}, sim.DecodeTrace(trace, TicksPerBit, env.clock.Now()))
}

func TestTransmitClearKeepsCurrentFrame(t *testing.T) {
	env := newLoopbackTestEnv(t).settle()
	for _, b := range []byte{1, 2, 3, 4} {
		env.tx.Write(b)
	}
	// first frame has started
	env.clock.Advance(uint64(FrameTicks) / 2)
	require.Equal(t, 3, env.tx.Pending())
	env.tx.Clear()
	require.Equal(t, 0, env.tx.Pending())
	require.Equal(t, QueueSize, env.tx.Available())
	env.clock.Advance(4 * uint64(FrameTicks))
	env.expectReceived(1)

	// transmitter restarts on the next write
	env.tx.Write(9)
	env.waitSent().expectReceived(9)
}

func TestTransmitLazyInit(t *testing.T) {
	board := sim.NewLoopbackBoard()
	rx := NewReceiver(board.MIDIIn, board.RxEdge, board.RxTimer, board.Clock)
	tx := NewTransmitter(board.MIDIOut, board.TxTimer, board.Clock)
	rx.Init()
	board.Clock.Advance(uint64(SyncTicks) + 1)
	tx.Write(0x42)
	require.True(t, board.Clock.AdvanceUntil(func() bool { return rx.Available() == 1 }, 4*uint64(FrameTicks)))
	require.Equal(t, 0x42, rx.Read())
}

func TestFlush(t *testing.T) {
	env := newLoopbackTestEnv(t).settle()
	for i := 0; i < 10; i++ {
		env.tx.Write(byte(i))
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for env.tx.Pending() > 0 {
			env.clock.Advance(uint64(TicksPerBit))
		}
	}()
	env.tx.Flush()
	<-done
	require.Equal(t, 0, env.tx.Pending())
}

func TestFlushContext(t *testing.T) {
	env := newLoopbackTestEnv(t).settle()
	require.NoError(t, env.tx.FlushContext(context.Background()))

	env.tx.Write(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Equal(t, context.Canceled, env.tx.FlushContext(ctx))
	require.Equal(t, 1, env.tx.Pending())
}

func TestPort(t *testing.T) {
	board := sim.NewLoopbackBoard()
	port := NewPort(Pins{
		RX:      board.MIDIIn,
		RxEdge:  board.RxEdge,
		RxTimer: board.RxTimer,
		TX:      board.MIDIOut,
		TxTimer: board.TxTimer,
		Mask:    board.Clock,
	})
	port.Begin()
	port.Begin()
	board.Clock.Advance(uint64(SyncTicks) + 1)

	_, err := port.ReadByte()
	require.Equal(t, ErrEmpty, err)
	n, err := port.Read(make([]byte, 4))
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = port.Write([]byte("drum"))
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.NoError(t, port.WriteByte('!'))
	require.Equal(t, QueueSize-5, port.AvailableForWrite())

	require.True(t, board.Clock.AdvanceUntil(func() bool { return port.Buffered() == 5 }, 8*uint64(FrameTicks)))
	c, err := port.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte('d'), c)
	buf := make([]byte, 8)
	n, err = port.Read(buf)
	require.NoError(t, err)
	require.Equal(t, "rum!", string(buf[:n]))

	stats := port.Stats()
	require.Equal(t, uint32(5), stats.Frames)
	require.Equal(t, uint32(5), stats.Sent)
}
