// internal/storage/storage_test.go
package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryStartsErased(t *testing.T) {
	m := NewMemory(8, 0)

	for i := 0; i < m.Size(); i++ {
		b, err := m.ReadCell(i)
		if err != nil {
			t.Fatalf("ReadCell(%d) err=%v", i, err)
		}
		if b != ErasedByte {
			t.Fatalf("cell %d = %#x, want %#x", i, b, ErasedByte)
		}
	}
}

func TestMemoryCountsWrites(t *testing.T) {
	m := NewMemory(4, 0)

	for i := 0; i < 3; i++ {
		if err := m.WriteCell(1, byte(i)); err != nil {
			t.Fatalf("WriteCell err=%v", err)
		}
	}

	if got := m.Writes(1); got != 3 {
		t.Fatalf("writes = %d, want 3", got)
	}
	if got := m.Writes(0); got != 0 {
		t.Fatalf("untouched cell writes = %d, want 0", got)
	}
	if got := m.Snapshot()[1]; got != 2 {
		t.Fatalf("cell = %d, want 2", got)
	}
}

func TestMemoryEndurance(t *testing.T) {
	m := NewMemory(1, 2)

	_ = m.WriteCell(0, 1)
	_ = m.WriteCell(0, 2)

	err := m.WriteCell(0, 3)
	if !errors.Is(err, ErrWornOut) {
		t.Fatalf("expected ErrWornOut, got %v", err)
	}
	if got := m.Snapshot()[0]; got != 2 {
		t.Fatalf("worn cell changed: %d", got)
	}
}

func TestMemoryOutOfRange(t *testing.T) {
	m := NewMemory(2, 0)

	if _, err := m.ReadCell(2); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if err := m.WriteCell(-1, 0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestFileCreatesErasedImageAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eeprom.bin")

	f, err := OpenFile(path, 16)
	if err != nil {
		t.Fatalf("OpenFile err=%v", err)
	}
	if b, _ := f.ReadCell(5); b != ErasedByte {
		t.Fatalf("fresh cell = %#x, want erased", b)
	}
	if err := f.WriteCell(5, 0x42); err != nil {
		t.Fatalf("WriteCell err=%v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close err=%v", err)
	}

	f, err = OpenFile(path, 16)
	if err != nil {
		t.Fatalf("reopen err=%v", err)
	}
	defer f.Close()

	b, err := f.ReadCell(5)
	if err != nil {
		t.Fatalf("ReadCell err=%v", err)
	}
	if b != 0x42 {
		t.Fatalf("cell = %#x, want 0x42", b)
	}
}

func TestFileRejectsWrongSizedImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eeprom.bin")
	if err := os.WriteFile(path, []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := OpenFile(path, 16); err == nil {
		t.Fatalf("expected size error, got nil")
	}
}
