// internal/settings/settings.go
package settings

import "time"

// Header leads every blob.
type Header struct {
	Version int16
	Size    int16
}

// Flags is the packed form of GlobalSettings.
// Bit positions are part of the wire format.
type Flags uint8

const (
	FlagEmergencyShutdown Flags = 1 << 0
	FlagSleepMode         Flags = 1 << 1
	FlagSoftStart         Flags = 1 << 2
	FlagSoftStop          Flags = 1 << 3

	// bits 4..7 are reserved and always written as zero
	flagsKnown = FlagEmergencyShutdown | FlagSleepMode | FlagSoftStart | FlagSoftStop
)

// GlobalSettings holds the device-wide feature switches.
type GlobalSettings struct {
	EmergencyShutdown bool
	SleepMode         bool
	SoftStart         bool
	SoftStop          bool
}

// Pack converts the switches to their wire representation.
func (g GlobalSettings) Pack() Flags {
	var f Flags
	if g.EmergencyShutdown {
		f |= FlagEmergencyShutdown
	}
	if g.SleepMode {
		f |= FlagSleepMode
	}
	if g.SoftStart {
		f |= FlagSoftStart
	}
	if g.SoftStop {
		f |= FlagSoftStop
	}
	return f
}

// Unpack decodes flags. Reserved bits are ignored.
func Unpack(f Flags) GlobalSettings {
	f &= flagsKnown
	return GlobalSettings{
		EmergencyShutdown: f&FlagEmergencyShutdown != 0,
		SleepMode:         f&FlagSleepMode != 0,
		SoftStart:         f&FlagSoftStart != 0,
		SoftStop:          f&FlagSoftStop != 0,
	}
}

// Preset is one stored run page.
type Preset struct {
	RunTimeMinutes int16
	TargetRPM      int16
}

// RunDuration returns the run time as a duration.
func (p Preset) RunDuration() time.Duration {
	return time.Duration(p.RunTimeMinutes) * time.Minute
}

// PresetTable is ordered by page index.
type PresetTable [NumPresets]Preset

// Config is the persisted configuration.
//
// One value is created at boot and owned by the persistence manager.
// Global settings and presets are always saved and restored together.
type Config struct {
	Global  GlobalSettings
	Presets PresetTable
}

// Defaults returns the factory configuration.
func Defaults() Config {
	return Config{
		Global: GlobalSettings{
			EmergencyShutdown: true,
			SoftStart:         true,
			SoftStop:          true,
		},
		Presets: PresetTable{
			{RunTimeMinutes: 5, TargetRPM: 1000},
			{RunTimeMinutes: 10, TargetRPM: 2000},
			{RunTimeMinutes: 15, TargetRPM: 3000},
			{RunTimeMinutes: 20, TargetRPM: 4000},
			{RunTimeMinutes: 30, TargetRPM: 5000},
		},
	}
}

// FactoryReset restores the compiled-in defaults.
func (c *Config) FactoryReset() {
	*c = Defaults()
}

// Preset returns the page at idx, wrapping out-of-range indices.
func (c *Config) Preset(idx int) Preset {
	idx %= NumPresets
	if idx < 0 {
		idx += NumPresets
	}
	return c.Presets[idx]
}
