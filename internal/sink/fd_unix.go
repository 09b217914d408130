//go:build !windows

package sink

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// writeByteFD issues exactly one write syscall for one byte. A short
// write counts as a failure; interrupted writes are not retried.
func writeByteFD(fd int, p []byte) error {
	n, err := unix.Write(fd, p)
	if err != nil {
		return err
	}
	if n != len(p) {
		return fmt.Errorf("short write: %d of %d bytes", n, len(p))
	}
	return nil
}
