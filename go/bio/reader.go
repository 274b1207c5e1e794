package bio

import (
	"encoding/binary"
	"io"

	"github.com/chzyer/logex"
)

var (
	ErrShortRead        = logex.Define("short read")
	ErrShortWrite       = logex.Define("short write")
	ErrReaderBufferFull = logex.Define("reader buffer is full")
	ErrWriterBufferFull = logex.Define("writer buffer is full")
)

// Reader decodes little-endian fields from a single block image,
// advancing a cursor as it goes.
type Reader struct {
	data   []byte
	offset int
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadAt fills d from exactly one read at offset.
func ReadAt(r io.ReaderAt, offset int64, d Diskable) error {
	buf := make([]byte, d.Size())
	n, err := r.ReadAt(buf, offset)
	if n != len(buf) {
		if err != nil {
			return logex.Trace(err)
		}
		return ErrShortRead.Trace(n, len(buf))
	}
	return logex.Trace(d.ReadDisk(NewReader(buf)))
}

// WriteAt flushes d with exactly one write at offset.
func WriteAt(w io.WriterAt, offset int64, d Diskable) error {
	buf := make([]byte, d.Size())
	d.WriteDisk(NewWriter(buf))
	n, err := w.WriteAt(buf, offset)
	if err != nil {
		return logex.Trace(err)
	}
	if n != len(buf) {
		return ErrShortWrite.Trace(n, len(buf))
	}
	return nil
}

func (r *Reader) Offset() int {
	return r.offset
}

func (r *Reader) Available() int {
	return len(r.data) - r.offset
}

func (r *Reader) Skip(n int) {
	r.offset += n
}

func (r *Reader) Byte(n int) []byte {
	ret := r.data[r.offset : r.offset+n]
	r.offset += n
	return ret
}

func (r *Reader) ReadDisk(d Diskable) error {
	if r.Available() < d.Size() {
		return ErrReaderBufferFull.Trace()
	}
	return d.ReadDisk(r)
}

func (r *Reader) Uint8() uint8 {
	ret := r.data[r.offset]
	r.offset++
	return ret
}

func (r *Reader) Uint16() uint16 {
	ret := binary.LittleEndian.Uint16(r.data[r.offset:])
	r.offset += 2
	return ret
}

func (r *Reader) Int16() int16 {
	return int16(r.Uint16())
}

func (r *Reader) Uint32() uint32 {
	ret := binary.LittleEndian.Uint32(r.data[r.offset:])
	r.offset += 4
	return ret
}

func (r *Reader) Uint64() uint64 {
	ret := binary.LittleEndian.Uint64(r.data[r.offset:])
	r.offset += 8
	return ret
}

// Uint decodes an unsigned integer of the given byte width.
func (r *Reader) Uint(width int) uint64 {
	ret := GetUint(r.data[r.offset:], width)
	r.offset += width
	return ret
}

// GetUint decodes a 1 to 8 byte unsigned integer, least-significant
// byte first, regardless of host order.
func GetUint(b []byte, width int) uint64 {
	var n uint64
	for i := 0; i < width; i++ {
		n |= uint64(b[i]) << (8 * uint(i))
	}
	return n
}

// PutUint encodes a 1 to 8 byte unsigned integer, least-significant
// byte first. Values beyond the width are truncated to it.
func PutUint(b []byte, n uint64, width int) {
	for i := 0; i < width; i++ {
		b[i] = byte(n >> (8 * uint(i)))
	}
}
