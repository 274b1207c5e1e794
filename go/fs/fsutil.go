package fs

import (
	"bytes"

	"github.com/allmad/lanyfs/go/bio"
)

// MaxBlocks is the largest block count an address of width addrLen
// bytes can cover.
func MaxBlocks(addrLen int) uint64 {
	if addrLen >= 8 {
		return ^uint64(0)
	}
	return 1 << (8 * uint(addrLen))
}

func putName(w *bio.Writer, s string) {
	var name [NameLen]byte
	copy(name[:], s)
	w.Byte(name[:])
}

func getName(r *bio.Reader) string {
	b := r.Byte(NameLen)
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
