//go:build linux

package mutengine

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

// readEntropy fills seed from the Linux getrandom(2) syscall.
func readEntropy(seed *uint64) (int, error) {
	var buf [8]byte

	n, err := unix.Getrandom(buf[:], 0)
	if n == 8 {
		*seed = binary.LittleEndian.Uint64(buf[:])
	}

	return n, err
}
