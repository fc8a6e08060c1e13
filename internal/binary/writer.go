// Package binary provides buffered writing utilities for native-endian
// encoding at the C boundary.
package binary

import (
	"bytes"
	"encoding/binary"
)

// Writer accumulates bytes in the host platform's native byte order,
// which is the order the OpenCL implementation reads them in.
type Writer struct {
	buf *bytes.Buffer
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{buf: &bytes.Buffer{}}
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// WriteU32 writes a fixed 4-byte native-endian uint32 (cl_uint, cl_bool).
func (w *Writer) WriteU32(v uint32) {
	var buf [4]byte
	binary.NativeEndian.PutUint32(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteWord writes a pointer-sized native-endian value (size_t, object
// pointers). The width follows the host word size.
func (w *Writer) WriteWord(v uintptr) {
	if wordSize == 8 {
		var buf [8]byte
		binary.NativeEndian.PutUint64(buf[:], uint64(v))
		w.buf.Write(buf[:])
		return
	}
	var buf [4]byte
	binary.NativeEndian.PutUint32(buf[:], uint32(v))
	w.buf.Write(buf[:])
}

// WriteBool writes a cl_bool: 4 bytes, 0 or 1.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteU32(1)
	} else {
		w.WriteU32(0)
	}
}

// Pad32 writes 4 bytes of zero padding.
func (w *Writer) Pad32() {
	var zero [4]byte
	w.buf.Write(zero[:])
}
