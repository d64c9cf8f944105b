// internal/persist/manager.go
package persist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tamzrod/spinner-config/internal/codec"
	"github.com/tamzrod/spinner-config/internal/settings"
	"github.com/tamzrod/spinner-config/internal/stream"
)

// DefaultImportPollInterval is the wait between checks for host data.
const DefaultImportPollInterval = 500 * time.Millisecond

// Options wires the collaborators of a Manager.
// Storage and Channel are optional; operations needing a missing one fail.
type Options struct {
	Storage Storage
	Channel Channel
	Codec   codec.Codec

	// Logger receives progress lines when Verbose is set.
	Logger  Logger
	Verbose bool

	// ImportTimeout bounds the wait for host data. Zero waits until ctx ends.
	ImportTimeout      time.Duration
	ImportPollInterval time.Duration
}

// Manager moves the configuration between memory, storage and the host.
//
// It owns the configuration for the life of the device.
// Not safe for concurrent use: call from the main loop only.
type Manager struct {
	cfg  *settings.Config
	opts Options
}

// New binds cfg to its collaborators. A zero Codec selects codec.Default.
func New(cfg *settings.Config, opts Options) (*Manager, error) {
	if cfg == nil {
		return nil, errors.New("persist: config required")
	}
	if opts.Codec == (codec.Codec{}) {
		opts.Codec = codec.Default
	}
	if opts.ImportPollInterval <= 0 {
		opts.ImportPollInterval = DefaultImportPollInterval
	}
	if opts.ImportTimeout < 0 {
		return nil, errors.New("persist: import timeout must be >= 0")
	}
	return &Manager{cfg: cfg, opts: opts}, nil
}

// Config returns the owned configuration.
func (m *Manager) Config() *settings.Config { return m.cfg }

// SaveToStorage writes the blob to storage starting at cell 0.
// Storage endurance is finite; call only when the configuration changed.
func (m *Manager) SaveToStorage() (int, error) {
	if m.opts.Storage == nil {
		return 0, errors.New("persist: save: no storage")
	}

	var buf [settings.MaxBufferSize]byte
	s := stream.New(buf[:])
	m.opts.Codec.Encode(s, m.cfg)

	n := s.BytesWritten()
	if n != settings.SettingsSize {
		return 0, fmt.Errorf("%w: encoded %d bytes, want %d", ErrSizeMismatch, n, settings.SettingsSize)
	}
	if n > m.opts.Storage.Size() {
		return 0, fmt.Errorf("%w: blob %d bytes, storage %d", ErrCapacityExceeded, n, m.opts.Storage.Size())
	}

	for i, b := range s.Written() {
		if err := m.opts.Storage.WriteCell(i, b); err != nil {
			return i, fmt.Errorf("persist: save cell %d: %w", i, err)
		}
	}

	m.logf("bytes saved: %d", n)
	return n, nil
}

// LoadFromStorage reads the blob back from storage.
// Storage that was never written fails the version check and yields defaults.
func (m *Manager) LoadFromStorage() (codec.Outcome, error) {
	if m.opts.Storage == nil {
		return codec.Loaded, errors.New("persist: load: no storage")
	}
	if m.opts.Storage.Size() < settings.SettingsSize {
		return codec.Loaded, fmt.Errorf("%w: storage %d bytes, blob %d", ErrCapacityExceeded, m.opts.Storage.Size(), settings.SettingsSize)
	}

	var buf [settings.SettingsSize]byte
	for i := range buf {
		b, err := m.opts.Storage.ReadCell(i)
		if err != nil {
			return codec.Loaded, fmt.Errorf("persist: load cell %d: %w", i, err)
		}
		buf[i] = b
	}

	outcome := m.opts.Codec.Decode(stream.New(buf[:]), m.cfg)

	m.logf("bytes loaded: %d (%s)", len(buf), outcome)
	return outcome, nil
}

// ExportToChannel writes the blob verbatim to the host and flushes.
func (m *Manager) ExportToChannel() (int, error) {
	if m.opts.Channel == nil {
		return 0, errors.New("persist: export: no channel")
	}

	var buf [settings.MaxBufferSize]byte
	s := stream.New(buf[:])
	m.opts.Codec.Encode(s, m.cfg)

	n, err := m.opts.Channel.Write(s.Written())
	if err != nil {
		return n, fmt.Errorf("persist: export write: %w", err)
	}
	if err := m.opts.Channel.Flush(); err != nil {
		return n, fmt.Errorf("persist: export flush: %w", err)
	}

	m.logf("bytes exported: %d", n)
	return n, nil
}

// Import drains available bytes from the channel and decodes them.
// Oversized or wrongly sized payloads are rejected before anything is read;
// the configuration is left untouched.
func (m *Manager) Import(available int) (codec.Outcome, error) {
	if m.opts.Channel == nil {
		return codec.Loaded, errors.New("persist: import: no channel")
	}
	if available >= settings.MaxBufferSize {
		m.logf("import rejected: %d bytes exceed buffer of %d", available, settings.MaxBufferSize)
		return codec.Loaded, fmt.Errorf("%w: %d bytes, buffer %d", ErrCapacityExceeded, available, settings.MaxBufferSize)
	}
	if available != settings.SettingsSize {
		m.logf("import rejected: %d bytes, expected %d", available, settings.SettingsSize)
		return codec.Loaded, fmt.Errorf("%w: %d bytes, want %d", ErrSizeMismatch, available, settings.SettingsSize)
	}

	var buf [settings.MaxBufferSize]byte
	for i := 0; i < available; i++ {
		b, err := m.opts.Channel.ReadByte()
		if err != nil {
			return codec.Loaded, fmt.Errorf("%w: read %d of %d bytes: %v", ErrShortPayload, i, available, err)
		}
		buf[i] = b
	}

	outcome := m.opts.Codec.Decode(stream.New(buf[:available]), m.cfg)

	m.logf("bytes imported: %d (%s)", available, outcome)
	return outcome, nil
}

// ImportFromChannel waits for the host to send a blob, then imports it.
//
// The wait polls at ImportPollInterval and is bounded by ImportTimeout and ctx.
// Whatever is buffered when data first shows up is taken as the payload.
func (m *Manager) ImportFromChannel(ctx context.Context) (codec.Outcome, error) {
	if m.opts.Channel == nil {
		return codec.Loaded, errors.New("persist: import: no channel")
	}

	if err := m.opts.Channel.Flush(); err != nil {
		return codec.Loaded, fmt.Errorf("persist: import flush: %w", err)
	}

	if m.opts.ImportTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.opts.ImportTimeout)
		defer cancel()
	}

	if err := m.waitForData(ctx); err != nil {
		return codec.Loaded, err
	}

	return m.Import(m.opts.Channel.Available())
}

func (m *Manager) waitForData(ctx context.Context) error {
	if m.opts.Channel.Available() > 0 {
		return nil
	}

	ticker := time.NewTicker(m.opts.ImportPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrImportTimeout, ctx.Err())
		case <-ticker.C:
			if m.opts.Channel.Available() > 0 {
				return nil
			}
		}
	}
}

func (m *Manager) logf(format string, v ...any) {
	if !m.opts.Verbose || m.opts.Logger == nil {
		return
	}
	m.opts.Logger.Printf(format, v...)
}
