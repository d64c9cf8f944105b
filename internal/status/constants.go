// internal/status/constants.go
package status

import "github.com/tamzrod/spinner-config/internal/settings"

// Configuration Status Block layout constants.
// These values define the protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerDevice is the fixed number of holding registers per device.
const SlotsPerDevice = 24

// ---- SLOT INDICES ----

// SlotFormatVersion holds the blob format version of the firmware.
const SlotFormatVersion = 0

// SlotOutcome holds the outcome of the last persistence operation.
const SlotOutcome = 1

// SlotLastErrorCode holds the error code of the last persistence operation.
const SlotLastErrorCode = 2

// SlotBytesTransferred holds the byte count of the last persistence operation.
const SlotBytesTransferred = 3

// SlotFlags holds the packed global settings.
const SlotFlags = 4

// ---- PRESET MIRROR ----

// SlotPresetStart is the first preset slot. Each preset takes two slots:
// run time (minutes) then target RPM, both two's complement.
const SlotPresetStart = 5

// SlotPresetSlots is the number of slots used by the preset table.
const SlotPresetSlots = 2 * settings.NumPresets

// ---- RESERVED RANGE ----

const SlotReservedStart = SlotPresetStart + SlotPresetSlots
const SlotReservedEnd = SlotDeviceNameStart - 1

// ---- DEVICE NAME ----

// SlotDeviceNameStart is the first slot used for the device name.
// Device name is always placed at the END of the status block.
const SlotDeviceNameStart = 16

// SlotDeviceNameSlots is the number of slots reserved for the device name.
const SlotDeviceNameSlots = 8

// SlotDeviceNameEnd is the last slot used for the device name (inclusive).
const SlotDeviceNameEnd = SlotDeviceNameStart + SlotDeviceNameSlots - 1

// ---- LIMITS ----

// DeviceNameMaxChars is the maximum number of ASCII characters stored for device name.
const DeviceNameMaxChars = 16

// ---- OUTCOME CODES ----

// OutcomeUnknown represents the boot state before any operation.
const OutcomeUnknown uint16 = 0

// OutcomeLoaded: configuration read from storage or host.
const OutcomeLoaded uint16 = 1

// OutcomeDefaults: a foreign blob was discarded and defaults applied.
const OutcomeDefaults uint16 = 2

// OutcomeSaved: configuration written to storage.
const OutcomeSaved uint16 = 3

// OutcomeExported: configuration sent to the host.
const OutcomeExported uint16 = 4

// OutcomeRejected: the operation failed; see SlotLastErrorCode.
const OutcomeRejected uint16 = 5

// layout check: name must end the block, presets must not run into it
var _ [SlotsPerDevice - SlotDeviceNameEnd - 1]struct{}
var _ [SlotDeviceNameStart - SlotReservedStart]struct{}
