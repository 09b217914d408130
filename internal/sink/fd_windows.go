//go:build windows

package sink

import (
	"fmt"
	"syscall"
)

// writeByteFD issues exactly one write for one byte. A short write
// counts as a failure; interrupted writes are not retried.
func writeByteFD(fd int, p []byte) error {
	var done uint32
	h := syscall.Handle(fd)
	if err := syscall.WriteFile(h, p, &done, nil); err != nil {
		return err
	}
	if int(done) != len(p) {
		return fmt.Errorf("short write: %d of %d bytes", done, len(p))
	}
	return nil
}
