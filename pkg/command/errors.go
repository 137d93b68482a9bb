package command

import (
	"errors"
	"fmt"
)

var (
	// ErrNotTrommelbold indicates the peer did not answer the probe.
	ErrNotTrommelbold = errors.New("not a trommelbold")
	// ErrTimeout indicates no complete reply line arrived in time.
	ErrTimeout = errors.New("reply timeout")
	// ErrNotConnected indicates the client has no open port.
	ErrNotConnected = errors.New("not connected")
)

// ReplyError is a command answered with something unexpected.
type ReplyError struct {
	Command string
	Reply   string
}

// Error implements error.
func (e *ReplyError) Error() string {
	return fmt.Sprintf("%s: unexpected reply %q", e.Command, e.Reply)
}
