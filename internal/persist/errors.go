// internal/persist/errors.go
package persist

import "errors"

var (
	// ErrCapacityExceeded: payload would not fit the buffer or the storage.
	ErrCapacityExceeded = errors.New("persist: capacity exceeded")
	// ErrSizeMismatch: payload length differs from the settings size.
	ErrSizeMismatch = errors.New("persist: size mismatch")
	// ErrImportTimeout: no host data arrived within the import window.
	ErrImportTimeout = errors.New("persist: import timed out")
	// ErrShortPayload: the channel ran dry before the announced byte count.
	ErrShortPayload = errors.New("persist: short payload")
)

// Error codes reported on the status block.
const (
	CodeOK               uint16 = 0
	CodeGeneric          uint16 = 1
	CodeCapacityExceeded uint16 = 2
	CodeSizeMismatch     uint16 = 3
	CodeImportTimeout    uint16 = 4
	CodeShortPayload     uint16 = 5
)

// ErrorCode maps err to its status code. Unknown errors map to CodeGeneric.
func ErrorCode(err error) uint16 {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrCapacityExceeded):
		return CodeCapacityExceeded
	case errors.Is(err, ErrSizeMismatch):
		return CodeSizeMismatch
	case errors.Is(err, ErrImportTimeout):
		return CodeImportTimeout
	case errors.Is(err, ErrShortPayload):
		return CodeShortPayload
	default:
		return CodeGeneric
	}
}
