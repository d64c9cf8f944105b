// internal/status/snapshot.go
package status

import "github.com/tamzrod/spinner-config/internal/settings"

// Snapshot represents exactly what the writer is allowed to deliver.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Outcome          uint16
	LastErrorCode    uint16
	BytesTransferred uint16

	Config settings.Config
}
