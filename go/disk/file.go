package disk

import (
	"io"
	"os"
	"syscall"

	"github.com/chzyer/logex"
)

var _ Disk = new(File)

var (
	ErrFileLocked        = logex.Define("device is locked by another process")
	ErrFileInvalidOffset = logex.Define("invalid offset")
)

// File is a device or image file backing one format or inspect
// operation. Writable opens take a non-blocking exclusive lock so a
// second writer fails fast instead of interleaving.
type File struct {
	fd     *os.File
	bytes  int64
	locked bool
}

// Open opens path read-write and locks it exclusively.
func Open(path string) (*File, error) {
	return open(path, true)
}

// OpenRead opens path read-only, without locking.
func OpenRead(path string) (*File, error) {
	return open(path, false)
}

func open(path string, write bool) (*File, error) {
	oflag := os.O_RDONLY
	if write {
		oflag = os.O_RDWR
	}
	fd, err := os.OpenFile(path, oflag, 0)
	if err != nil {
		return nil, logex.Trace(err)
	}
	if write {
		if err := syscall.Flock(int(fd.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
			fd.Close()
			return nil, ErrFileLocked.Trace(path)
		}
	}

	// block devices report no size via Stat, seek to the end instead
	size, err := fd.Seek(0, io.SeekEnd)
	if err != nil {
		fd.Close()
		return nil, logex.Trace(err)
	}
	return &File{fd: fd, bytes: size, locked: write}, nil
}

// Bytes is the device size in bytes.
func (f *File) Bytes() int64 {
	return f.bytes
}

// Blocks is the number of blocks the device can hold at the given
// blocksize exponent.
func (f *File) Blocks(blockBit int) uint64 {
	return uint64(f.bytes) >> uint(blockBit)
}

// Overhead is the number of unused bytes after the last whole block.
func (f *File) Overhead(blockBit int) int {
	return int(f.bytes & int64((1<<uint(blockBit))-1))
}

func (f *File) ReadAt(b []byte, off int64) (int, error) {
	if off < 0 {
		return 0, ErrFileInvalidOffset.Trace(off)
	}
	return f.fd.ReadAt(b, off)
}

func (f *File) WriteAt(b []byte, off int64) (int, error) {
	if off < 0 {
		return 0, ErrFileInvalidOffset.Trace(off)
	}
	return f.fd.WriteAt(b, off)
}

func (f *File) Sync() error {
	return logex.Trace(f.fd.Sync())
}

func (f *File) Close() error {
	if f.locked {
		f.fd.Sync()
		syscall.Flock(int(f.fd.Fd()), syscall.LOCK_UN|syscall.LOCK_NB)
	}
	return f.fd.Close()
}
