// internal/writer/status_writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/spinner-config/internal/status"
)

// StatusWriter delivers configuration status snapshots into status memory.
// It writes verbatim; the caller decides what the snapshot says.
type StatusWriter struct {
	plan StatusPlan
	cli  RegisterClient

	needFull bool
	last     []uint16
	nameRegs []uint16
}

// NewStatusWriter builds a writer for plan over cli.
func NewStatusWriter(plan StatusPlan, cli RegisterClient) (*StatusWriter, error) {
	if cli == nil {
		return nil, fmt.Errorf("status writer: missing client for endpoint %s", plan.Endpoint)
	}
	if uint32(plan.BaseSlot)*status.SlotsPerDevice+status.SlotsPerDevice > 0x10000 {
		return nil, fmt.Errorf("status writer: base slot %d out of range", plan.BaseSlot)
	}

	return &StatusWriter{
		plan:     plan,
		cli:      cli,
		needFull: true, // full re-assert on first successful write
		nameRegs: status.EncodeDeviceName(plan.DeviceName),
	}, nil
}

// WriteStatus writes the full block on first use and after any failure.
// Otherwise only registers that changed are written, one request per
// contiguous run.
func (sw *StatusWriter) WriteStatus(s status.Snapshot) error {
	if sw == nil {
		return errors.New("status writer: disabled")
	}

	regs := sw.blockRegs(s)
	base := sw.baseAddr()

	// ------------------------------------------------------------
	// Full block write (identity re-assert)
	// ------------------------------------------------------------
	if sw.needFull {
		if err := sw.cli.WriteRegisters(sw.plan.UnitID, base, regs); err != nil {
			sw.needFull = true
			return fmt.Errorf("status writer: full block write failed: %w", err)
		}

		sw.needFull = false
		sw.last = regs
		return nil
	}

	var errs []string

	for _, r := range changedRuns(sw.last, regs) {
		if err := sw.cli.WriteRegisters(
			sw.plan.UnitID,
			base+uint16(r.start),
			regs[r.start:r.end],
		); err != nil {
			errs = append(errs, fmt.Sprintf("slots %d-%d write failed: %v", r.start, r.end-1, err))
			continue
		}
		copy(sw.last[r.start:r.end], regs[r.start:r.end])
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt: re-assert on next success.
		sw.needFull = true
		return errors.New("status writer: " + strings.Join(errs, " | "))
	}

	return nil
}

func (sw *StatusWriter) baseAddr() uint16 {
	// Each device owns a fixed SlotsPerDevice block.
	return sw.plan.BaseSlot * status.SlotsPerDevice
}

func (sw *StatusWriter) blockRegs(s status.Snapshot) []uint16 {
	regs := status.Encode(s)

	// Device name always lives at the end of the block
	copy(regs[status.SlotDeviceNameStart:status.SlotDeviceNameEnd+1], sw.nameRegs)

	return regs
}

type run struct{ start, end int }

// changedRuns returns half-open ranges where prev and next differ.
func changedRuns(prev, next []uint16) []run {
	var out []run
	start := -1
	for i := range next {
		diff := i >= len(prev) || prev[i] != next[i]
		switch {
		case diff && start < 0:
			start = i
		case !diff && start >= 0:
			out = append(out, run{start, i})
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, run{start, len(next)})
	}
	return out
}
