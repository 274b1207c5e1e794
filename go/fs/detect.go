package fs

import (
	"io"

	"github.com/allmad/lanyfs/go/bio"
	"github.com/chzyer/logex"
)

// Detect reads the fixed-size volume prefix and validates it as a
// lanyfs superblock: type tag first, magic second. No byte-order
// correction happens beyond the codec used for writing.
func Detect(r io.ReaderAt) (*Superblock, error) {
	buf := make([]byte, DetectSize)
	n, err := r.ReadAt(buf, 0)
	if n != len(buf) {
		if err != nil {
			return nil, logex.Trace(err)
		}
		return nil, bio.ErrShortRead.Trace(n, len(buf))
	}
	sb := new(Superblock)
	if err := sb.ReadDisk(bio.NewReader(buf)); err != nil {
		return nil, logex.Trace(err)
	}
	return sb, nil
}
