// internal/stream/stream_test.go
package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequentialWritesAccumulate(t *testing.T) {
	buf := make([]byte, 16)
	s := New(buf)

	s.BeginWrite()
	s.WriteBytes([]byte{1, 2, 3})
	s.WriteBytes([]byte{4, 5})

	require.Equal(t, 5, s.BytesWritten())
	require.Equal(t, []byte{1, 2, 3, 4, 5}, s.Written())
	require.Equal(t, []byte{1, 2, 3, 4, 5, 0}, buf[:6])
}

func TestSequentialReadsAccumulate(t *testing.T) {
	s := New([]byte{9, 8, 7, 6, 5, 4})

	s.BeginRead()
	a := make([]byte, 2)
	b := make([]byte, 3)
	s.ReadBytes(a)
	s.ReadBytes(b)

	require.Equal(t, []byte{9, 8}, a)
	require.Equal(t, []byte{7, 6, 5}, b)
	require.Equal(t, 5, s.BytesRead())
}

func TestBeginResetsOnlyItsOwnCursor(t *testing.T) {
	s := New(make([]byte, 8))

	s.BeginWrite()
	s.WriteBytes([]byte{1, 2, 3, 4})
	s.BeginRead()
	s.ReadBytes(make([]byte, 2))

	s.BeginWrite()
	require.Equal(t, 0, s.BytesWritten())
	require.Equal(t, 2, s.BytesRead())

	s.BeginRead()
	require.Equal(t, 0, s.BytesRead())
}

func TestFixedWidthFieldsAreLittleEndian(t *testing.T) {
	s := New(make([]byte, 5))

	s.BeginWrite()
	s.WriteInt16(-2)
	s.WriteUint16(0x1234)
	s.WriteUint8(0xAB)

	require.Equal(t, []byte{0xFE, 0xFF, 0x34, 0x12, 0xAB}, s.Written())

	s.BeginRead()
	require.Equal(t, int16(-2), s.ReadInt16())
	require.Equal(t, uint16(0x1234), s.ReadUint16())
	require.Equal(t, uint8(0xAB), s.ReadUint8())
	require.Equal(t, 5, s.BytesRead())
}

func TestWriteDoesNotCopyBuffer(t *testing.T) {
	buf := make([]byte, 2)
	s := New(buf)
	s.BeginWrite()
	s.WriteUint8(7)

	require.Equal(t, byte(7), buf[0])
	require.Equal(t, 2, s.Cap())
}

func TestOverrunPanics(t *testing.T) {
	s := New(make([]byte, 2))
	s.BeginWrite()
	s.WriteUint8(1)

	require.Panics(t, func() { s.WriteUint16(1) })
}

func TestNewSizedAssertsCapacity(t *testing.T) {
	require.Panics(t, func() { NewSized(make([]byte, 3), 4) })
	require.NotPanics(t, func() { NewSized(make([]byte, 4), 4) })
}
