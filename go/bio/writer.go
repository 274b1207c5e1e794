package bio

import "encoding/binary"

// Writer encodes little-endian fields into a single block image.
type Writer struct {
	data   []byte
	offset int
}

func NewWriter(data []byte) *Writer {
	return &Writer{data: data}
}

func (w *Writer) Offset() int {
	return w.offset
}

func (w *Writer) Available() int {
	return len(w.data) - w.offset
}

func (w *Writer) Skip(n int) {
	w.offset += n
}

func (w *Writer) Byte(b []byte) int {
	n := copy(w.data[w.offset:], b)
	w.offset += n
	return n
}

func (w *Writer) WriteDisk(d Diskable) error {
	if w.Available() < d.Size() {
		return ErrWriterBufferFull.Trace()
	}
	d.WriteDisk(w)
	return nil
}

func (w *Writer) Uint8(n uint8) {
	w.data[w.offset] = n
	w.offset++
}

func (w *Writer) Uint16(n uint16) {
	binary.LittleEndian.PutUint16(w.data[w.offset:], n)
	w.offset += 2
}

func (w *Writer) Int16(n int16) {
	w.Uint16(uint16(n))
}

func (w *Writer) Uint32(n uint32) {
	binary.LittleEndian.PutUint32(w.data[w.offset:], n)
	w.offset += 4
}

func (w *Writer) Uint64(n uint64) {
	binary.LittleEndian.PutUint64(w.data[w.offset:], n)
	w.offset += 8
}

// Uint encodes an unsigned integer of the given byte width.
func (w *Writer) Uint(n uint64, width int) {
	PutUint(w.data[w.offset:], n, width)
	w.offset += width
}
