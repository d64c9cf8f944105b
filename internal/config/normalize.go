// internal/config/normalize.go
package config

import "github.com/tamzrod/spinner-config/internal/status"

// Defaults applied by Normalize.
const (
	DefaultStorageKind     = "memory"
	DefaultStorageSize     = 1024 // ATmega328 EEPROM
	DefaultBaudRate        = 9600
	DefaultDataBits        = 8
	DefaultStopBits        = 1
	DefaultParity          = "N"
	DefaultSerialTimeoutMs = 100
	DefaultPollIntervalMs  = 500
	DefaultStatusTimeoutMs = 2000
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	d := &cfg.Device

	if d.Storage.Kind == "" {
		d.Storage.Kind = DefaultStorageKind
	}
	if d.Storage.Size == 0 {
		d.Storage.Size = DefaultStorageSize
	}

	if d.Serial.BaudRate == 0 {
		d.Serial.BaudRate = DefaultBaudRate
	}
	if d.Serial.DataBits == 0 {
		d.Serial.DataBits = DefaultDataBits
	}
	if d.Serial.StopBits == 0 {
		d.Serial.StopBits = DefaultStopBits
	}
	if d.Serial.Parity == "" {
		d.Serial.Parity = DefaultParity
	}
	if d.Serial.TimeoutMs == 0 {
		d.Serial.TimeoutMs = DefaultSerialTimeoutMs
	}

	if d.Import.PollIntervalMs == 0 {
		d.Import.PollIntervalMs = DefaultPollIntervalMs
	}

	// ------------------------------------------------------------
	// STATUS BLOCK NORMALIZATION (OPT-IN)
	// ------------------------------------------------------------

	if d.Status == nil {
		return
	}

	if d.Status.TimeoutMs == 0 {
		d.Status.TimeoutMs = DefaultStatusTimeoutMs
	}

	// ASCII already validated; truncate to the name slots.
	if len(d.Status.DeviceName) > status.DeviceNameMaxChars {
		d.Status.DeviceName = d.Status.DeviceName[:status.DeviceNameMaxChars]
	}
}
