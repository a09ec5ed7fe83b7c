//go:build !linux

package mutengine

import (
	"crypto/rand"
	"encoding/binary"
)

// readEntropy fills seed via crypto/rand on platforms without a
// getrandom(2)-style syscall exposed through x/sys/unix.
func readEntropy(seed *uint64) (int, error) {
	var buf [8]byte

	n, err := rand.Read(buf[:])
	if n == 8 {
		*seed = binary.LittleEndian.Uint64(buf[:])
	}

	return n, err
}
