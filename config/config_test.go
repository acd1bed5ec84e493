package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-steproll/sequencer"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadFrom_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, sequencer.DefaultOptions(), cfg.EditorOptions())
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `{"grid": {"width": 128, "height": 48}, "start": {"cursorX": 100}}`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.Grid.Width)
	assert.Equal(t, 32, cfg.Viewport.Width)
	assert.Equal(t, DefaultKeys(), cfg.Keys)
	assert.True(t, cfg.Controller.AutoConnect)

	opts := cfg.EditorOptions()
	assert.Equal(t, sequencer.Point{X: 100}, opts.Cursor)
}

func TestLoadFrom_KeysReplaceDefaults(t *testing.T) {
	path := writeConfig(t, `{"keys": {"move-left": ["a"], "quit": ["x"]}}`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	b, err := cfg.Bindings()
	require.NoError(t, err)
	assert.Equal(t, map[sequencer.Command][]string{
		sequencer.MoveCursorLeft: {"a"},
		sequencer.Quit:           {"x"},
	}, b)
}

func TestLoadFrom_Invalid(t *testing.T) {
	cases := []struct {
		name string
		body string
		err  error
	}{
		{"ViewportTooWide", `{"viewport": {"width": 65, "height": 12}}`, sequencer.ErrViewportTooLarge},
		{"CursorOutside", `{"start": {"cursorY": 36}}`, sequencer.ErrOutOfBounds},
		{"OriginPastEdge", `{"start": {"originX": 33}}`, sequencer.ErrOutOfBounds},
		{"ZeroGrid", `{"grid": {"width": 0, "height": 36}}`, sequencer.ErrInvalidSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFrom(writeConfig(t, tc.body))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := LoadFrom(writeConfig(t, `{"keys": {"teleport": ["t"]}}`))
	assert.ErrorContains(t, err, "teleport")

	_, err = LoadFrom(writeConfig(t, `{"keys": {"move-left": ["z"], "move-right": ["z"]}}`))
	assert.ErrorContains(t, err, `"z"`)

	_, err = LoadFrom(writeConfig(t, `{"keys": {"toggle": [" "], "move-right": ["right"]}}`))
	assert.ErrorContains(t, err, "no key bound to quit")

	_, err = LoadFrom(writeConfig(t, `{"keys": {"clear": ["ctrl+c"], "quit": ["q"]}}`))
	assert.ErrorContains(t, err, "reserved")

	_, err = LoadFrom(writeConfig(t, `{not json`))
	assert.Error(t, err)
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")
	cfg := DefaultConfig()
	cfg.Palette = "palettes/mono.gpl"
	cfg.Controller.PortName = "LPX MIDI"
	cfg.Start.OriginX = 4

	require.NoError(t, cfg.SaveTo(path))
	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDefaultBindingsCoverEveryCommand(t *testing.T) {
	b, err := DefaultConfig().Bindings()
	require.NoError(t, err)
	assert.Equal(t, []string{" "}, b[sequencer.ToggleCell])
	assert.Equal(t, []string{"a"}, b[sequencer.PanViewportLeft])
	assert.Contains(t, b[sequencer.Quit], QuitKey)
	for _, c := range sequencer.Commands() {
		assert.NotEmpty(t, b[c], "command %s has no key", c)
	}
}
