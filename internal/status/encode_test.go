// internal/status/encode_test.go
package status

import (
	"testing"

	"github.com/tamzrod/spinner-config/internal/settings"
)

func TestEncodeLayout(t *testing.T) {
	cfg := settings.Defaults()
	cfg.Presets[1] = settings.Preset{RunTimeMinutes: -1, TargetRPM: 2500}

	regs := Encode(Snapshot{
		Outcome:          OutcomeLoaded,
		LastErrorCode:    0,
		BytesTransferred: settings.SettingsSize,
		Config:           cfg,
	})

	if len(regs) != SlotsPerDevice {
		t.Fatalf("expected %d regs, got %d", SlotsPerDevice, len(regs))
	}
	if regs[SlotFormatVersion] != 6 {
		t.Fatalf("version slot = %d, want 6", regs[SlotFormatVersion])
	}
	if regs[SlotOutcome] != OutcomeLoaded {
		t.Fatalf("outcome slot = %d", regs[SlotOutcome])
	}
	if regs[SlotBytesTransferred] != 25 {
		t.Fatalf("bytes slot = %d, want 25", regs[SlotBytesTransferred])
	}
	if regs[SlotFlags] != uint16(cfg.Global.Pack()) {
		t.Fatalf("flags slot = %#x", regs[SlotFlags])
	}

	// preset 1 lives at slots 7,8
	if regs[SlotPresetStart+2] != 0xFFFF {
		t.Fatalf("preset 1 runtime = %#x, want 0xffff", regs[SlotPresetStart+2])
	}
	if regs[SlotPresetStart+3] != 2500 {
		t.Fatalf("preset 1 rpm = %d, want 2500", regs[SlotPresetStart+3])
	}

	for i := SlotReservedStart; i < SlotsPerDevice; i++ {
		if regs[i] != 0 {
			t.Fatalf("slot %d = %d, want 0", i, regs[i])
		}
	}
}

func TestEncodeDeviceName(t *testing.T) {
	regs := EncodeDeviceName("AB\x01")

	if regs[0] != uint16('A')<<8|uint16('B') {
		t.Fatalf("reg0 = %#x", regs[0])
	}
	if regs[1] != uint16('?')<<8 {
		t.Fatalf("reg1 = %#x, want sanitized '?'", regs[1])
	}
	for i := 2; i < SlotDeviceNameSlots; i++ {
		if regs[i] != 0 {
			t.Fatalf("reg%d = %#x, want 0", i, regs[i])
		}
	}
}

func TestEncodeDeviceNameTruncates(t *testing.T) {
	regs := EncodeDeviceName("0123456789ABCDEFXYZ")

	if len(regs) != SlotDeviceNameSlots {
		t.Fatalf("expected %d regs, got %d", SlotDeviceNameSlots, len(regs))
	}
	if regs[SlotDeviceNameSlots-1] != uint16('E')<<8|uint16('F') {
		t.Fatalf("last reg = %#x", regs[SlotDeviceNameSlots-1])
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	cfg := settings.Defaults()
	cfg.Global.SleepMode = true
	cfg.Presets[4] = settings.Preset{RunTimeMinutes: -5, TargetRPM: 32000}

	in := Snapshot{
		Outcome:          OutcomeRejected,
		LastErrorCode:    3,
		BytesTransferred: 24,
		Config:           cfg,
	}

	regs := Encode(in)
	copy(regs[SlotDeviceNameStart:], EncodeDeviceName("SPIN-01"))

	out, name, err := Decode(regs)
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	if out != in {
		t.Fatalf("got %+v, want %+v", out, in)
	}
	if name != "SPIN-01" {
		t.Fatalf("name = %q, want SPIN-01", name)
	}
}

func TestDecodeRejectsForeignBlock(t *testing.T) {
	if _, _, err := Decode(make([]uint16, 3)); err == nil {
		t.Fatalf("expected length error")
	}

	regs := Encode(Snapshot{})
	regs[SlotFormatVersion] = 5
	if _, _, err := Decode(regs); err == nil {
		t.Fatalf("expected version error")
	}
}

func TestOutcomeName(t *testing.T) {
	if OutcomeName(OutcomeSaved) != "saved" {
		t.Fatalf("unexpected name %q", OutcomeName(OutcomeSaved))
	}
	if OutcomeName(99) != "outcome(99)" {
		t.Fatalf("unexpected name %q", OutcomeName(99))
	}
}
