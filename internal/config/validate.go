// internal/config/validate.go
package config

import (
	"errors"
	"fmt"

	"github.com/tamzrod/spinner-config/internal/settings"
	"github.com/tamzrod/spinner-config/internal/status"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
// Zero values are legal where Normalize supplies a default.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil")
	}

	d := cfg.Device

	// ------------------------------------------------------------
	// STORAGE
	// ------------------------------------------------------------

	switch d.Storage.Kind {
	case "", "memory":
		if d.Storage.Path != "" {
			return errors.New("storage: path is only valid for kind \"file\"")
		}
	case "file":
		if d.Storage.Path == "" {
			return errors.New("storage: kind \"file\" requires path")
		}
	default:
		return fmt.Errorf("storage: unknown kind %q", d.Storage.Kind)
	}

	if d.Storage.Size < 0 {
		return fmt.Errorf("storage: size %d must be >= 0", d.Storage.Size)
	}
	if d.Storage.Size != 0 && d.Storage.Size < settings.SettingsSize {
		return fmt.Errorf(
			"storage: size %d cannot hold settings blob of %d bytes",
			d.Storage.Size,
			settings.SettingsSize,
		)
	}
	if d.Storage.Endurance < 0 {
		return fmt.Errorf("storage: endurance %d must be >= 0", d.Storage.Endurance)
	}

	// ------------------------------------------------------------
	// SERIAL
	// ------------------------------------------------------------

	s := d.Serial
	if s.BaudRate < 0 {
		return fmt.Errorf("serial: baud_rate %d must be >= 0", s.BaudRate)
	}
	switch s.DataBits {
	case 0, 5, 6, 7, 8:
	default:
		return fmt.Errorf("serial: data_bits %d not in 5..8", s.DataBits)
	}
	switch s.StopBits {
	case 0, 1, 2:
	default:
		return fmt.Errorf("serial: stop_bits %d not 1 or 2", s.StopBits)
	}
	switch s.Parity {
	case "", "N", "E", "O":
	default:
		return fmt.Errorf("serial: parity %q not one of N, E, O", s.Parity)
	}
	if s.TimeoutMs < 0 {
		return fmt.Errorf("serial: timeout_ms %d must be >= 0", s.TimeoutMs)
	}

	// ------------------------------------------------------------
	// IMPORT
	// ------------------------------------------------------------

	if d.Import.TimeoutMs < 0 {
		return fmt.Errorf("import: timeout_ms %d must be >= 0", d.Import.TimeoutMs)
	}
	if d.Import.PollIntervalMs < 0 {
		return fmt.Errorf("import: poll_interval_ms %d must be >= 0", d.Import.PollIntervalMs)
	}

	// ------------------------------------------------------------
	// STATUS BLOCK (OPT-IN)
	// ------------------------------------------------------------

	st := d.Status
	if st == nil {
		return nil
	}

	if st.Endpoint == "" {
		return errors.New("status: endpoint required")
	}
	if st.TimeoutMs < 0 {
		return fmt.Errorf("status: timeout_ms %d must be >= 0", st.TimeoutMs)
	}

	// device_name sanity (ASCII only)
	for i := 0; i < len(st.DeviceName); i++ {
		if st.DeviceName[i] > 0x7F {
			return errors.New("status: device_name must contain ASCII characters only")
		}
	}

	// the block must fit the 16-bit register space
	end := uint32(st.BaseSlot)*status.SlotsPerDevice + status.SlotsPerDevice
	if end > 0x10000 {
		return fmt.Errorf(
			"status: base_slot %d places block beyond register 65535",
			st.BaseSlot,
		)
	}

	return nil
}
