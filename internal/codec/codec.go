// internal/codec/codec.go

// Package codec defines the canonical field order of the configuration blob.
//
// Layout (little-endian, fixed width):
//
//	0    Header.Version           int16
//	2    Header.Size              int16
//	4    GlobalSettings flags     uint8  (bit0 emergency, bit1 sleep, bit2 soft start, bit3 soft stop)
//	5+4i Preset[i].RunTimeMinutes int16
//	7+4i Preset[i].TargetRPM      int16
//
// Older firmware copied the in-memory structs byte for byte, so its blobs
// follow the compiler's layout on the 8-bit AVR host (little-endian, no
// padding, LSB-first bitfields). That layout is not portable; this package
// writes every field explicitly and reproduces it bit for bit.
package codec

import (
	"github.com/tamzrod/spinner-config/internal/settings"
	"github.com/tamzrod/spinner-config/internal/stream"
)

// Outcome is the result of a decode.
type Outcome uint8

const (
	// Loaded means every field was read into the configuration.
	Loaded Outcome = iota
	// VersionMismatchReset means the blob was not trusted and factory
	// defaults were applied instead.
	VersionMismatchReset
)

func (o Outcome) String() string {
	switch o {
	case Loaded:
		return "loaded"
	case VersionMismatchReset:
		return "version-mismatch-reset"
	default:
		return "unknown"
	}
}

// Codec encodes and decodes one format version.
type Codec struct {
	Version int16
}

// Default is the codec for the compiled-in format version.
var Default = Codec{Version: settings.FormatVersion}

// Encode writes cfg into s from the start of the buffer.
func (c Codec) Encode(s *stream.ByteStream, cfg *settings.Config) {
	s.BeginWrite()

	writeHeader(s, settings.Header{
		Version: c.Version,
		Size:    settings.SettingsSize,
	})

	s.WriteUint8(uint8(cfg.Global.Pack()))

	for i := range cfg.Presets {
		s.WriteInt16(cfg.Presets[i].RunTimeMinutes)
		s.WriteInt16(cfg.Presets[i].TargetRPM)
	}
}

// Decode reads a blob from s into cfg.
//
// The header is checked before anything else is read. A foreign version or
// size leaves the rest of the blob untouched and factory-resets cfg.
// Otherwise cfg is replaced as a whole.
func (c Codec) Decode(s *stream.ByteStream, cfg *settings.Config) Outcome {
	s.BeginRead()

	h := readHeader(s)
	if h.Version != c.Version || h.Size != settings.SettingsSize {
		cfg.FactoryReset()
		return VersionMismatchReset
	}

	var next settings.Config
	next.Global = settings.Unpack(settings.Flags(s.ReadUint8()))

	for i := range next.Presets {
		next.Presets[i].RunTimeMinutes = s.ReadInt16()
		next.Presets[i].TargetRPM = s.ReadInt16()
	}

	*cfg = next
	return Loaded
}

// PeekHeader decodes only the header of a blob.
func PeekHeader(blob []byte) (settings.Header, bool) {
	if len(blob) < settings.HeaderSize {
		return settings.Header{}, false
	}
	s := stream.New(blob)
	s.BeginRead()
	return readHeader(s), true
}

func writeHeader(s *stream.ByteStream, h settings.Header) {
	s.WriteInt16(h.Version)
	s.WriteInt16(h.Size)
}

func readHeader(s *stream.ByteStream) settings.Header {
	var h settings.Header
	h.Version = s.ReadInt16()
	h.Size = s.ReadInt16()
	return h
}
