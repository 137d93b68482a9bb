package bridge

import "errors"

var (
	// ErrNotEvent indicates a command was given where an event is expected.
	ErrNotEvent = errors.New("message is not an event")
	// ErrNotCommand indicates an event arrived where a command is expected.
	ErrNotCommand = errors.New("message is not a command")
)
