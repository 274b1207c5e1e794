package disk

// Disk is a random-access backing store for whole-block I/O.
type Disk interface {
	ReadAt(b []byte, off int64) (int, error)
	WriteAt(b []byte, off int64) (int, error)
}
