//go:build !linux
// +build !linux

package network

import (
	"fmt"
	"runtime"
)

// ErrNotSupported is returned when detection is attempted on non-Linux systems.
var ErrNotSupported = fmt.Errorf("interface detection not supported on %s", runtime.GOOS)

// DetectHardware scans for network interfaces (stub for non-Linux).
func DetectHardware() (*DetectedHardware, error) {
	return nil, ErrNotSupported
}
