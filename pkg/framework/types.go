package framework

import (
	"context"
	"time"
)

// Named is an abstraction for things with a name.
type Named interface {
	Name() string
}

// Runnable defines a generic interface for background runners.
type Runnable interface {
	Run(context.Context) error
}

// RunFunc is the func form of Runnable.
type RunFunc func(context.Context) error

// Run implements Runnable.
func (f RunFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// Message defines the abstract message consumed by the foreground loop.
type Message interface {
	// NewMessage creates an empty message.
	NewMessage() Message
}

// Controller is polled once per loop iteration.
type Controller interface {
	Control(ControlContext) error
}

// ControlFunc defines the func form of Controller.
type ControlFunc func(ControlContext) error

// Control implements Controller.
func (f ControlFunc) Control(ctx ControlContext) error {
	return f(ctx)
}

// ControlContext provides the context of current loop iteration.
type ControlContext interface {
	// Context retrieves context.Context.
	Context() context.Context
	// Time is when the iteration started.
	Time() time.Time
	// PriorityLevel gets the current priority level.
	PriorityLevel() int
	// TakeMessages passes the pending messages to fn in posting order.
	// Messages fn returns true for are removed, the others stay for
	// controllers at lower priority and the next iteration.
	TakeMessages(fn func(Message) bool)
}

// MessagePoster accepts messages for the loop from any goroutine.
type MessagePoster interface {
	PostMessage(Message)
}

// PriorityLevels is the total levels of priorities.
const PriorityLevels int = 4

// Priority levels, controllers at a lower level run first.
const (
	// PrLvSense drains inputs.
	PrLvSense int = iota
	// PrLvControl handles commands.
	PrLvControl
	// PrLvActuate drives outputs.
	PrLvActuate
	// PrLvPostProc reports.
	PrLvPostProc
)
