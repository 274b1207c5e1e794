package bio

// RawDisker is the minimal contract of a backing device. All I/O is
// positional, there is no streaming access.
type RawDisker interface {
	ReadAt(b []byte, off int64) (n int, err error)
	WriteAt(b []byte, off int64) (n int, err error)
}

// Diskable can translate itself to and from its fixed on-disk image.
type Diskable interface {
	Size() int
	ReadDisk(r *Reader) error
	WriteDisk(w *Writer)
}
