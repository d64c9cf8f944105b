// internal/settings/constants.go
package settings

// Blob geometry.
// These values define the storage format and MUST NOT be configurable.

// FormatVersion identifies the blob layout. Bump it whenever any persisted
// structure changes.
const FormatVersion int16 = 6

// NumPresets is the fixed length of the preset table.
const NumPresets = 5

// MaxBufferSize bounds every serialization buffer (EEPROM and SRAM budget).
const MaxBufferSize = 512

// ---- FIELD SIZES ----

const HeaderSize = 4

const GlobalSettingsSize = 1

const PresetSize = 4

// SettingsSize is the exact size of a serialized blob.
const SettingsSize = HeaderSize + GlobalSettingsSize + PresetSize*NumPresets

// fails to compile if the blob cannot fit the buffer
var _ [MaxBufferSize - SettingsSize]struct{}
