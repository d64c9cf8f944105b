// internal/storage/file.go
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

// File is an EEPROM image on disk. The image has a fixed size;
// a missing file is created erased.
type File struct {
	f    *os.File
	size int
}

// OpenFile opens or creates the image at path.
func OpenFile(path string, size int) (*File, error) {
	if size <= 0 {
		return nil, errors.New("storage: image size must be > 0")
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("storage: open image: %w", err)
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("storage: stat image: %w", err)
	}

	switch {
	case st.Size() == 0:
		if _, err := f.WriteAt(bytes.Repeat([]byte{ErasedByte}, size), 0); err != nil {
			f.Close()
			return nil, fmt.Errorf("storage: erase image: %w", err)
		}
	case st.Size() != int64(size):
		f.Close()
		return nil, fmt.Errorf("storage: image %s is %d bytes, want %d", path, st.Size(), size)
	}

	return &File{f: f, size: size}, nil
}

func (s *File) Size() int { return s.size }

func (s *File) ReadCell(addr int) (byte, error) {
	if addr < 0 || addr >= s.size {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, addr)
	}
	var b [1]byte
	if _, err := s.f.ReadAt(b[:], int64(addr)); err != nil {
		return 0, fmt.Errorf("storage: read cell %d: %w", addr, err)
	}
	return b[0], nil
}

func (s *File) WriteCell(addr int, b byte) error {
	if addr < 0 || addr >= s.size {
		return fmt.Errorf("%w: %d", ErrOutOfRange, addr)
	}
	if _, err := s.f.WriteAt([]byte{b}, int64(addr)); err != nil {
		return fmt.Errorf("storage: write cell %d: %w", addr, err)
	}
	return nil
}

// Sync flushes the image to disk.
func (s *File) Sync() error { return s.f.Sync() }

func (s *File) Close() error { return s.f.Close() }
