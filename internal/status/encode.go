// internal/status/encode.go
package status

import (
	"fmt"

	"github.com/tamzrod/spinner-config/internal/settings"
)

// Encode converts a Snapshot into a full status block.
// Layout is protocol-locked. Reserved and name slots are left zero.
// No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, SlotsPerDevice)

	regs[SlotFormatVersion] = uint16(settings.FormatVersion)
	regs[SlotOutcome] = s.Outcome
	regs[SlotLastErrorCode] = s.LastErrorCode
	regs[SlotBytesTransferred] = s.BytesTransferred
	regs[SlotFlags] = uint16(s.Config.Global.Pack())

	for i, p := range s.Config.Presets {
		regs[SlotPresetStart+2*i] = uint16(p.RunTimeMinutes)
		regs[SlotPresetStart+2*i+1] = uint16(p.TargetRPM)
	}

	return regs
}

// EncodeDeviceName packs up to 16 ASCII characters into 8 registers.
// Each register stores two ASCII bytes in big-endian order.
func EncodeDeviceName(name string) []uint16 {
	out := make([]uint16, SlotDeviceNameSlots)

	b := []byte(name)
	if len(b) > DeviceNameMaxChars {
		b = b[:DeviceNameMaxChars]
	}

	// sanitize to printable ASCII
	for i := 0; i < len(b); i++ {
		if b[i] < 0x20 || b[i] > 0x7E {
			b[i] = '?'
		}
	}

	for i := 0; i < DeviceNameMaxChars; i += 2 {
		var hi, lo byte
		if i < len(b) {
			hi = b[i]
		}
		if i+1 < len(b) {
			lo = b[i+1]
		}
		out[i/2] = uint16(hi)<<8 | uint16(lo)
	}

	return out
}

// Decode reads a status block back into a Snapshot and the device name.
func Decode(regs []uint16) (Snapshot, string, error) {
	if len(regs) != SlotsPerDevice {
		return Snapshot{}, "", fmt.Errorf("status: block has %d registers, want %d", len(regs), SlotsPerDevice)
	}
	if int16(regs[SlotFormatVersion]) != settings.FormatVersion {
		return Snapshot{}, "", fmt.Errorf("status: format version %d, want %d", int16(regs[SlotFormatVersion]), settings.FormatVersion)
	}

	s := Snapshot{
		Outcome:          regs[SlotOutcome],
		LastErrorCode:    regs[SlotLastErrorCode],
		BytesTransferred: regs[SlotBytesTransferred],
	}
	s.Config.Global = settings.Unpack(settings.Flags(regs[SlotFlags]))

	for i := range s.Config.Presets {
		s.Config.Presets[i].RunTimeMinutes = int16(regs[SlotPresetStart+2*i])
		s.Config.Presets[i].TargetRPM = int16(regs[SlotPresetStart+2*i+1])
	}

	name := make([]byte, 0, DeviceNameMaxChars)
	for _, r := range regs[SlotDeviceNameStart : SlotDeviceNameEnd+1] {
		for _, b := range []byte{byte(r >> 8), byte(r)} {
			if b != 0 {
				name = append(name, b)
			}
		}
	}

	return s, string(name), nil
}

// OutcomeName names an outcome code.
func OutcomeName(code uint16) string {
	switch code {
	case OutcomeUnknown:
		return "unknown"
	case OutcomeLoaded:
		return "loaded"
	case OutcomeDefaults:
		return "defaults"
	case OutcomeSaved:
		return "saved"
	case OutcomeExported:
		return "exported"
	case OutcomeRejected:
		return "rejected"
	default:
		return fmt.Sprintf("outcome(%d)", code)
	}
}
