// internal/stream/stream.go
package stream

import (
	"encoding/binary"
	"fmt"
)

// ByteStream is a cursor-based linear reader/writer over a caller-owned buffer.
// The buffer is not copied and capacity is fixed at construction.
//
// Reads and writes are not bounds-checked against the remaining space.
// Callers size the buffer from compile-time constants; an overrun is a
// programming error and panics through the slice bounds check.
type ByteStream struct {
	buf []byte

	readPos  int
	writePos int
}

// New wraps buf. Capacity is len(buf).
func New(buf []byte) *ByteStream {
	// clamp cap so an overrun cannot reach past len(buf)
	return &ByteStream{buf: buf[:len(buf):len(buf)]}
}

// NewSized wraps buf and asserts it can hold want bytes.
func NewSized(buf []byte, want int) *ByteStream {
	if len(buf) < want {
		panic(fmt.Sprintf("stream: buffer capacity %d below required %d", len(buf), want))
	}
	return New(buf)
}

// BeginWrite rewinds the write cursor.
func (s *ByteStream) BeginWrite() {
	s.writePos = 0
}

// BeginRead rewinds the read cursor.
func (s *ByteStream) BeginRead() {
	s.readPos = 0
}

// WriteBytes copies src at the write cursor and advances it by len(src).
func (s *ByteStream) WriteBytes(src []byte) {
	end := s.writePos + len(src)
	copy(s.buf[s.writePos:end], src)
	s.writePos = end
}

// ReadBytes fills dst from the read cursor and advances it by len(dst).
func (s *ByteStream) ReadBytes(dst []byte) {
	end := s.readPos + len(dst)
	copy(dst, s.buf[s.readPos:end])
	s.readPos = end
}

// ---- fixed-width fields (little-endian) ----

func (s *ByteStream) WriteUint8(v uint8) {
	s.WriteBytes([]byte{v})
}

func (s *ByteStream) ReadUint8() uint8 {
	var b [1]byte
	s.ReadBytes(b[:])
	return b[0]
}

func (s *ByteStream) WriteUint16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	s.WriteBytes(b[:])
}

func (s *ByteStream) ReadUint16() uint16 {
	var b [2]byte
	s.ReadBytes(b[:])
	return binary.LittleEndian.Uint16(b[:])
}

func (s *ByteStream) WriteInt16(v int16) { s.WriteUint16(uint16(v)) }

func (s *ByteStream) ReadInt16() int16 { return int16(s.ReadUint16()) }

// ---- progress ----

// BytesWritten reports bytes written since the last BeginWrite.
func (s *ByteStream) BytesWritten() int { return s.writePos }

// BytesRead reports bytes read since the last BeginRead.
func (s *ByteStream) BytesRead() int { return s.readPos }

// Buffer returns the underlying buffer.
func (s *ByteStream) Buffer() []byte { return s.buf }

// Cap returns the declared capacity.
func (s *ByteStream) Cap() int { return len(s.buf) }

// Written returns the prefix of the buffer filled since the last BeginWrite.
func (s *ByteStream) Written() []byte { return s.buf[:s.writePos] }
