//go:build linux
// +build linux

package device

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"syscall"
	"unsafe"
)

// ioctl requests and event types of linux/joystick.h.
const (
	jsiocGButtons uint = 0x80016a12
	jsiocGName    uint = 0x80ff6a13

	jsEventButton uint8 = 0x01
	jsEventAxis   uint8 = 0x02
	jsEventInit   uint8 = 0x80
)

type gamepad struct {
	file    *os.File
	index   int
	name    string
	buttons uint8
}

// Open opens /dev/input/js<index>.
func Open(index int) (Device, error) {
	f, err := os.OpenFile(fmt.Sprintf("/dev/input/js%d", index), os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	g := &gamepad{file: f, index: index}
	var name [128]byte
	errno := g.ioctl(jsiocGButtons, unsafe.Pointer(&g.buttons))
	if errno == 0 {
		errno = g.ioctl(jsiocGName, unsafe.Pointer(&name))
	}
	if errno != 0 {
		f.Close()
		return nil, errno
	}
	if end := bytes.IndexByte(name[:], 0); end >= 0 {
		g.name = string(name[:end])
	} else {
		g.name = string(name[:])
	}
	return g, nil
}

// DetectAndOpen opens the first device from startIndex. It returns nil
// without error when there is none.
func DetectAndOpen(startIndex int) (Device, error) {
	for index := startIndex; index < 32; index++ {
		d, err := Open(index)
		if os.IsNotExist(err) {
			continue
		}
		return d, err
	}
	return nil, nil
}

func (g *gamepad) ioctl(req uint, arg unsafe.Pointer) syscall.Errno {
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, g.file.Fd(), uintptr(req), uintptr(arg))
	return errno
}

func (g *gamepad) Close() error { return g.file.Close() }
func (g *gamepad) Index() int   { return g.index }
func (g *gamepad) Name() string { return g.name }
func (g *gamepad) Buttons() int { return int(g.buttons) }

// ReadEvent implements Device.
func (g *gamepad) ReadEvent() (Event, error) {
	var raw jsEvent
	if err := binary.Read(g.file, binary.LittleEndian, &raw); err != nil {
		return nil, err
	}
	switch raw.Type &^ jsEventInit {
	case jsEventButton:
		return buttonEvent{raw}, nil
	case jsEventAxis:
		return axisEvent{raw}, nil
	}
	return raw, nil
}

// jsEvent is struct js_event.
type jsEvent struct {
	Time   uint32
	Value  int16
	Type   uint8
	Number uint8
}

func (e jsEvent) IsInit() bool { return e.Type&jsEventInit != 0 }
func (e jsEvent) Index() int   { return int(e.Number) }

type buttonEvent struct{ jsEvent }

func (e buttonEvent) Pressed() bool { return e.jsEvent.Value != 0 }

type axisEvent struct{ jsEvent }

func (e axisEvent) Value() int { return int(e.jsEvent.Value) }
