// internal/persist/services.go
package persist

// Storage is byte-addressable non-volatile memory (EEPROM).
// Cells are addressed 0..Size()-1. Every WriteCell wears the part.
type Storage interface {
	Size() int
	ReadCell(addr int) (byte, error)
	WriteCell(addr int, b byte) error
}

// Channel is the host-facing serial link.
type Channel interface {
	// Available returns the number of received bytes ready to read.
	Available() int
	ReadByte() (byte, error)
	Write(p []byte) (int, error)
	// Flush blocks until outgoing data has been transmitted.
	Flush() error
}

// Logger receives verbose diagnostics. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}
