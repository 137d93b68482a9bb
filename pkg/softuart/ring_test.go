package softuart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func checkRingInvariant(t *testing.T, r *Ring) {
	n := r.Len()
	require.True(t, n >= 0 && n <= QueueSize, "count %d out of range", n)
	require.Equal(t, n%QueueSize, (int(r.put)-int(r.get)+QueueSize)%QueueSize)
}

func TestRingFIFO(t *testing.T) {
	var r Ring
	_, ok := r.Pop()
	require.False(t, ok)
	_, ok = r.Peek()
	require.False(t, ok)

	// several laps to cover wraparound
	next, expect := byte(0), byte(0)
	for lap := 0; lap < 5; lap++ {
		for i := 0; i < 20; i++ {
			require.True(t, r.Push(next))
			next++
			checkRingInvariant(t, &r)
		}
		for r.Len() > 3 {
			b, ok := r.Peek()
			require.True(t, ok)
			require.Equal(t, expect, b)
			b, ok = r.Pop()
			require.True(t, ok)
			require.Equal(t, expect, b)
			expect++
			checkRingInvariant(t, &r)
		}
	}
}

func TestRingFull(t *testing.T) {
	var r Ring
	for i := 0; i < QueueSize; i++ {
		require.True(t, r.Push(byte(i)))
	}
	require.Equal(t, QueueSize, r.Len())
	require.Equal(t, 0, r.Free())
	require.False(t, r.Push(0xff))
	checkRingInvariant(t, &r)
	for i := 0; i < QueueSize; i++ {
		b, ok := r.Pop()
		require.True(t, ok)
		require.Equal(t, byte(i), b)
	}
	require.Equal(t, QueueSize, r.Free())
}

func TestRingReset(t *testing.T) {
	var r Ring
	for i := 0; i < 7; i++ {
		r.Push(byte(i))
	}
	r.Pop()
	r.Reset()
	require.Equal(t, 0, r.Len())
	checkRingInvariant(t, &r)
	require.True(t, r.Push(9))
	b, ok := r.Pop()
	require.True(t, ok)
	require.Equal(t, byte(9), b)
}
