//go:build !linux
// +build !linux

package device

// Open implements the Linux API elsewhere, always failing.
func Open(index int) (Device, error) {
	return nil, ErrUnsupported
}

// DetectAndOpen always fails.
func DetectAndOpen(startIndex int) (Device, error) {
	return nil, ErrUnsupported
}
