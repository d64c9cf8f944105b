// internal/codec/codec_test.go
package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tamzrod/spinner-config/internal/settings"
	"github.com/tamzrod/spinner-config/internal/stream"
)

func sample() settings.Config {
	return settings.Config{
		Global: settings.GlobalSettings{EmergencyShutdown: true},
		Presets: settings.PresetTable{
			{RunTimeMinutes: 10, TargetRPM: 3000},
			{RunTimeMinutes: 1, TargetRPM: 500},
			{RunTimeMinutes: 0, TargetRPM: 0},
			{RunTimeMinutes: -1, TargetRPM: -32768},
			{RunTimeMinutes: 32767, TargetRPM: 12000},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	in := sample()
	buf := make([]byte, settings.MaxBufferSize)
	s := stream.New(buf)

	Default.Encode(s, &in)

	var out settings.Config
	outcome := Default.Decode(s, &out)

	require.Equal(t, Loaded, outcome)
	require.Equal(t, in, out)
	require.Equal(t, settings.SettingsSize, s.BytesWritten())
	require.Equal(t, settings.SettingsSize, s.BytesRead())
}

func TestRoundTripAllFlagCombinations(t *testing.T) {
	for f := settings.Flags(0); f < 16; f++ {
		in := settings.Defaults()
		in.Global = settings.Unpack(f)

		s := stream.New(make([]byte, settings.SettingsSize))
		Default.Encode(s, &in)

		var out settings.Config
		require.Equal(t, Loaded, Default.Decode(s, &out))
		require.Equal(t, in.Global, out.Global, "flags=%#x", f)
	}
}

func TestEndToEndScenario(t *testing.T) {
	var in settings.Config
	in.Global = settings.GlobalSettings{EmergencyShutdown: true}
	in.Presets[0] = settings.Preset{RunTimeMinutes: 10, TargetRPM: 3000}

	s := stream.New(make([]byte, settings.MaxBufferSize))
	c := Codec{Version: 6}
	c.Encode(s, &in)

	out := settings.Defaults()
	require.Equal(t, Loaded, c.Decode(s, &out))

	require.Equal(t, in, out)
	require.Equal(t, 25, s.BytesWritten())
	require.Equal(t, 25, s.BytesRead())
}

func TestWireLayout(t *testing.T) {
	var in settings.Config
	in.Global = settings.GlobalSettings{EmergencyShutdown: true, SoftStop: true}
	in.Presets[0] = settings.Preset{RunTimeMinutes: 10, TargetRPM: 3000}
	in.Presets[4] = settings.Preset{RunTimeMinutes: 0x0102, TargetRPM: 0x0304}

	s := stream.New(make([]byte, settings.SettingsSize))
	Default.Encode(s, &in)

	want := []byte{
		0x06, 0x00,             // version
		0x19, 0x00,             // size 25
		0x09,                   // flags
		0x0A, 0x00, 0xB8, 0x0B, // preset 0: 10, 3000
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0x02, 0x01, 0x04, 0x03, // preset 4
	}
	require.Equal(t, want, s.Written())
}

func TestVersionGateAppliesDefaults(t *testing.T) {
	in := sample()
	s := stream.New(make([]byte, settings.SettingsSize))
	Codec{Version: 5}.Encode(s, &in)

	out := sample()
	outcome := Codec{Version: 6}.Decode(s, &out)

	require.Equal(t, VersionMismatchReset, outcome)
	require.Equal(t, settings.Defaults(), out)
	require.Equal(t, settings.HeaderSize, s.BytesRead())
}

func TestSizeMismatchAppliesDefaults(t *testing.T) {
	in := sample()
	s := stream.New(make([]byte, settings.SettingsSize))
	Default.Encode(s, &in)
	s.Buffer()[2] = 24

	var out settings.Config
	require.Equal(t, VersionMismatchReset, Default.Decode(s, &out))
	require.Equal(t, settings.Defaults(), out)
}

func TestErasedStorageAppliesDefaults(t *testing.T) {
	blob := make([]byte, settings.SettingsSize)
	for i := range blob {
		blob[i] = 0xFF
	}

	var out settings.Config
	require.Equal(t, VersionMismatchReset, Default.Decode(stream.New(blob), &out))
	require.Equal(t, settings.Defaults(), out)
}

func TestPeekHeader(t *testing.T) {
	in := sample()
	s := stream.New(make([]byte, settings.SettingsSize))
	Default.Encode(s, &in)

	h, ok := PeekHeader(s.Written())
	require.True(t, ok)
	require.Equal(t, settings.Header{Version: settings.FormatVersion, Size: settings.SettingsSize}, h)

	_, ok = PeekHeader([]byte{1, 2, 3})
	require.False(t, ok)
}

func TestOutcomeString(t *testing.T) {
	require.Equal(t, "loaded", Loaded.String())
	require.Equal(t, "version-mismatch-reset", VersionMismatchReset.String())
	require.Equal(t, "unknown", Outcome(9).String())
}
