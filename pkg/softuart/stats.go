package softuart

import "sync/atomic"

// Stats holds counters since initialization.
type Stats struct {
	// receive side
	Frames        uint32 // frames with a valid stop bit
	FramingErrors uint32 // frames with a low stop bit
	Overruns      uint32 // valid frames dropped on a full queue
	Discarded     uint32 // valid frames dropped after Clear
	NoiseEdges    uint32 // start edges rejected while waiting for idle

	// transmit side
	Sent    uint32 // frames started on the line
	Dropped uint32 // bytes rejected by Write on a full queue
}

type counter struct{ v uint32 }

func (c *counter) inc()         { atomic.AddUint32(&c.v, 1) }
func (c *counter) load() uint32 { return atomic.LoadUint32(&c.v) }
func (c *counter) reset()       { atomic.StoreUint32(&c.v, 0) }

// Add sums two snapshots.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Frames:        s.Frames + o.Frames,
		FramingErrors: s.FramingErrors + o.FramingErrors,
		Overruns:      s.Overruns + o.Overruns,
		Discarded:     s.Discarded + o.Discarded,
		NoiseEdges:    s.NoiseEdges + o.NoiseEdges,
		Sent:          s.Sent + o.Sent,
		Dropped:       s.Dropped + o.Dropped,
	}
}
