// internal/config/config.go
package config

type Config struct {
	Device DeviceConfig `yaml:"device"`
}

// ---- DEVICE ----

type DeviceConfig struct {
	Storage StorageConfig `yaml:"storage"`
	Serial  SerialConfig  `yaml:"serial"`
	Import  ImportConfig  `yaml:"import"`
	Verbose bool          `yaml:"verbose"`

	// Status block publishing (optional, opt-in)
	Status *StatusConfig `yaml:"status"`
}

// ---- STORAGE ----

type StorageConfig struct {
	Kind string `yaml:"kind"` // "memory" | "file"
	Path string `yaml:"path"` // file only
	Size int    `yaml:"size"` // bytes of EEPROM

	Endurance int `yaml:"endurance"` // memory only; 0 => part default
}

// ---- SERIAL ----

type SerialConfig struct {
	Address   string `yaml:"address"`
	BaudRate  int    `yaml:"baud_rate"`
	DataBits  int    `yaml:"data_bits"`
	StopBits  int    `yaml:"stop_bits"`
	Parity    string `yaml:"parity"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- IMPORT ----

type ImportConfig struct {
	TimeoutMs      int `yaml:"timeout_ms"` // 0 => wait forever
	PollIntervalMs int `yaml:"poll_interval_ms"`
}

// ---- STATUS ----

type StatusConfig struct {
	Endpoint   string `yaml:"endpoint"`
	UnitID     uint8  `yaml:"unit_id"`
	BaseSlot   uint16 `yaml:"base_slot"`
	DeviceName string `yaml:"device_name"`
	TimeoutMs  int    `yaml:"timeout_ms"`
}
