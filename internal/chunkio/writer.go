package chunkio

import "encoding/binary"

// Writer accumulates big-endian binary data for a PNG chunk stream.
// Writes never fail; the buffer grows as needed.
type Writer struct {
	buf []byte
}

// NewWriter creates a writer with capacity for size bytes.
func NewWriter(size int) *Writer {
	return &Writer{buf: make([]byte, 0, size)}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// WriteBytes appends p to the buffer.
func (w *Writer) WriteBytes(p []byte) {
	w.buf = append(w.buf, p...)
}

// WriteUint8 appends an unsigned 8-bit integer.
func (w *Writer) WriteUint8(v uint8) {
	w.buf = append(w.buf, v)
}

// WriteUint32 appends an unsigned 32-bit integer in big-endian order.
func (w *Writer) WriteUint32(v uint32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, v)
}

// Bytes returns the accumulated buffer. The slice is owned by the writer
// until the writer is discarded.
func (w *Writer) Bytes() []byte {
	return w.buf
}
