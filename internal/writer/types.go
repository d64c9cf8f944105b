// internal/writer/types.go
package writer

// StatusPlan is where one device publishes its status block.
type StatusPlan struct {
	Endpoint   string
	UnitID     uint8
	BaseSlot   uint16
	DeviceName string
}

// RegisterClient is the exact contract the status writer uses.
type RegisterClient interface {
	WriteRegisters(unitID uint8, addr uint16, regs []uint16) error
}
