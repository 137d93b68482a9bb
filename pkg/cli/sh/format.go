package sh

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"github.com/fatih/color"

	"github.com/robotalks/trommel.go/pkg/bridge/mqtt"
	fx "github.com/robotalks/trommel.go/pkg/framework"
	"github.com/robotalks/trommel.go/pkg/hal"
	"github.com/robotalks/trommel.go/pkg/msgs"
	"github.com/robotalks/trommel.go/pkg/sim"
)

// TraceRowBits is the number of bit cells per row of a rendered trace.
const TraceRowBits = 40

var (
	markColor  = color.New(color.FgGreen)
	spaceColor = color.New(color.FgRed)
	typeColor  = color.New(color.FgCyan)
)

// FormatDevice prints a discovered device into friendly string for display.
func FormatDevice(dev mqtt.DiscoveredDevice) string {
	var w bytes.Buffer
	fmt.Fprintf(&w, "%s", dev.Ref.Name())
	if info := dev.Info; info != nil {
		fmt.Fprintf(&w, ": %d channels", info.Channels)
		if len(info.Patterns) > 0 {
			fmt.Fprintf(&w, ", patterns %s", strings.Join(info.Patterns, " "))
		}
	}
	return w.String()
}

// MessageName returns the type name of msg.
func MessageName(msg fx.Message) string {
	return reflect.Indirect(reflect.ValueOf(msg)).Type().Name()
}

// FormatMessage prints msg with its type name.
func FormatMessage(msg fx.Message) string {
	name := typeColor.Sprintf("[%s]", MessageName(msg))
	if sm, ok := msg.(msgs.SerializableMessage); ok {
		return name + " " + sm.Serializable().String()
	}
	return name
}

// RenderTrace draws the line between start and end, one cell per bit
// time, with the decoded bytes below. Idle stretches before the first and
// after the last transition are cut.
func RenderTrace(trace []sim.Transition, start, end uint64, bitTicks hal.Ticks) string {
	if len(trace) == 0 {
		return "idle"
	}
	bit, until := uint64(bitTicks), end
	if first := trace[0].At; first > start+bit {
		start = first - bit
	}
	if last := trace[len(trace)-1].At + 10*bit; last < end {
		end = last
	}
	level, next := true, 0
	var w bytes.Buffer
	for n, t := 0, start; t < end; n, t = n+1, t+bit {
		for next < len(trace) && trace[next].At <= t+bit/2 {
			level = trace[next].Level
			next++
		}
		if n > 0 && n%TraceRowBits == 0 {
			w.WriteByte('\n')
		}
		if level {
			markColor.Fprint(&w, "‾")
		} else {
			spaceColor.Fprint(&w, "_")
		}
	}
	if data := sim.DecodeTrace(trace, bitTicks, until); len(data) > 0 {
		fmt.Fprintf(&w, "\n% x", data)
	}
	return w.String()
}
