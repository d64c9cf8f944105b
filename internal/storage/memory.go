// internal/storage/memory.go
package storage

import (
	"errors"
	"fmt"
	"sync"
)

// ErasedByte is the value of a cell that was never programmed.
const ErasedByte byte = 0xFF

// DefaultEndurance is the rated write cycles per cell (ATmega328 EEPROM).
const DefaultEndurance = 100000

var (
	ErrOutOfRange = errors.New("storage: address out of range")
	ErrWornOut    = errors.New("storage: cell endurance exhausted")
)

// Memory emulates an EEPROM in RAM and tracks wear per cell.
type Memory struct {
	mu        sync.Mutex
	cells     []byte
	writes    []uint32
	endurance uint32
}

// NewMemory returns an erased part of size bytes.
// endurance <= 0 selects DefaultEndurance.
func NewMemory(size, endurance int) *Memory {
	if endurance <= 0 {
		endurance = DefaultEndurance
	}
	cells := make([]byte, size)
	for i := range cells {
		cells[i] = ErasedByte
	}
	return &Memory{
		cells:     cells,
		writes:    make([]uint32, size),
		endurance: uint32(endurance),
	}
}

func (m *Memory) Size() int { return len(m.cells) }

func (m *Memory) ReadCell(addr int) (byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if addr < 0 || addr >= len(m.cells) {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, addr)
	}
	return m.cells[addr], nil
}

func (m *Memory) WriteCell(addr int, b byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if addr < 0 || addr >= len(m.cells) {
		return fmt.Errorf("%w: %d", ErrOutOfRange, addr)
	}
	if m.writes[addr] >= m.endurance {
		return fmt.Errorf("%w: cell %d after %d writes", ErrWornOut, addr, m.writes[addr])
	}
	m.cells[addr] = b
	m.writes[addr]++
	return nil
}

// Writes reports how many times addr was programmed.
func (m *Memory) Writes(addr int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if addr < 0 || addr >= len(m.writes) {
		return 0
	}
	return int(m.writes[addr])
}

// Snapshot returns a copy of the cell contents.
func (m *Memory) Snapshot() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]byte, len(m.cells))
	copy(out, m.cells)
	return out
}
