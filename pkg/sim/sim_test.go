package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/trommel.go/pkg/hal"
)

func TestClockOrder(t *testing.T) {
	c := NewClock()
	var order []string
	c.At(10, func() { order = append(order, "b") })
	c.At(5, func() { order = append(order, "a") })
	c.At(10, func() { order = append(order, "c") })
	c.Advance(9)
	require.Equal(t, []string{"a"}, order)
	require.Equal(t, uint64(9), c.Now())
	c.Advance(1)
	require.Equal(t, []string{"a", "b", "c"}, order)

	c.AdvanceDuration(time.Millisecond)
	require.Equal(t, uint64(510), c.Now())
	require.Equal(t, 1020*time.Microsecond, c.Uptime())
}

func TestCompare(t *testing.T) {
	c := NewClock()
	cmp := c.NewCompare(PriorityCompareA)
	var fired []uint64
	cmp.Attach(func() {
		fired = append(fired, c.now)
		cmp.SetCompare(cmp.Compare() + 16)
	})
	c.Lock()
	cmp.SetCompare(20)
	c.Unlock()

	// disabled: the match only latches
	c.Advance(30)
	require.Empty(t, fired)
	require.True(t, cmp.Pending())

	c.Lock()
	cmp.Enable()
	c.Unlock()
	c.Advance(40)
	require.Equal(t, []uint64{33, 39, 55}, fired)
	require.Equal(t, hal.Ticks(68), cmp.Compare())
}

func TestEdgeDetector(t *testing.T) {
	c := NewClock()
	line := c.NewLine(true)
	edge := line.NewEdgeDetector(PriorityEdge)
	var fired []uint64
	edge.Attach(func() { fired = append(fired, c.now) })
	c.Lock()
	edge.Enable()
	c.Unlock()

	line.DriveBits(10, 16, []bool{false, true, false, false, true})
	c.Advance(100)
	require.Equal(t, []uint64{13, 45}, fired)

	// edges latched while disabled fire on enable unless cleared
	c.Lock()
	edge.Disable()
	c.Unlock()
	line.DriveBits(c.Now()+1, 16, []bool{false, true})
	c.Advance(40)
	c.Lock()
	edge.ClearPending()
	edge.Enable()
	c.Unlock()
	c.Advance(10)
	require.Len(t, fired, 2)
}

func TestFrameTrace(t *testing.T) {
	c := NewClock()
	line := c.NewLine(true)
	line.StartTrace()
	require.Equal(t, []bool{false, true, false, false, true, true, false, false, true, true}, FrameBits(0x99))

	at := line.DriveFrame(100, 16, 0x99)
	require.Equal(t, uint64(260), at)
	at = line.DriveFrame(at, 16, 0x24)
	// a frame with a low stop bit
	line.DriveBits(at, 16, append(FrameBits(0x55)[:9], false))
	c.Advance(at + 160 - c.Now())
	line.DriveBits(c.Now(), 16, []bool{true})
	c.Advance(16)
	require.Equal(t, []byte{0x99, 0x24}, DecodeTrace(line.Trace(), 16, c.Now()))
}

func TestLoopbackBoard(t *testing.T) {
	b := NewBoard()
	require.False(t, b.Loopback())
	lb := NewLoopbackBoard()
	require.True(t, lb.Loopback())

	var changes []bool
	pin := lb.DrumPins[0]
	require.Equal(t, "D6", pin.Name)
	pin.OnChange = func(_ *Pin, level bool) { changes = append(changes, level) }
	pin.Set(true)
	pin.Set(true)
	pin.Set(false)
	require.Equal(t, []bool{true, false}, changes)
	require.False(t, pin.Get())
}
