// Package device reads game controllers through the Linux joystick API.
package device

import (
	"errors"
	"io"
)

// ErrUnsupported is returned by Open where no joystick API is available.
var ErrUnsupported = errors.New("game controllers not supported on this platform")

// Event is a change reported by a game controller.
type Event interface {
	// IsInit tells the initial state sent right after opening.
	IsInit() bool
	// Index returns the axis or button number.
	Index() int
}

// AxisEvent is the new position of an axis.
type AxisEvent interface {
	Event
	Value() int
}

// ButtonEvent is a button going down or up.
type ButtonEvent interface {
	Event
	Pressed() bool
}

// Device is an opened game controller.
type Device interface {
	io.Closer
	Index() int
	Name() string
	Buttons() int
	// ReadEvent blocks for the next event.
	ReadEvent() (Event, error)
}
