package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go-steproll/sequencer"
)

// GridConfig is the size of the data grid
type GridConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ViewportConfig is the size of the visible window
type ViewportConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// StartConfig is where the window and cursor begin
type StartConfig struct {
	OriginX int `json:"originX,omitempty"`
	OriginY int `json:"originY,omitempty"`
	CursorX int `json:"cursorX,omitempty"`
	CursorY int `json:"cursorY,omitempty"`
}

// ControllerConfig selects the grid controller to mirror the window on
type ControllerConfig struct {
	PortName    string `json:"portName,omitempty"` // substring match; empty = any Launchpad
	AutoConnect bool   `json:"autoConnect"`
}

// Config is the main configuration structure
type Config struct {
	Grid       GridConfig          `json:"grid"`
	Viewport   ViewportConfig      `json:"viewport"`
	Start      StartConfig         `json:"start,omitempty"`
	Palette    string              `json:"palette,omitempty"` // GIMP .gpl path; empty = built-in
	Keys       map[string][]string `json:"keys,omitempty"`    // command name -> keys
	Controller ControllerConfig    `json:"controller"`
	Debug      bool                `json:"debug,omitempty"`
}

// DefaultKeys binds the arrow keys to the cursor and wasd to the window,
// with vi-style hjkl as an alternative for the cursor.
func DefaultKeys() map[string][]string {
	return map[string][]string{
		sequencer.MoveCursorLeft.String():   {"left", "h"},
		sequencer.MoveCursorRight.String():  {"right", "l"},
		sequencer.MoveCursorUp.String():     {"up", "k"},
		sequencer.MoveCursorDown.String():   {"down", "j"},
		sequencer.PanViewportLeft.String():  {"a"},
		sequencer.PanViewportRight.String(): {"d"},
		sequencer.PanViewportUp.String():    {"w"},
		sequencer.PanViewportDown.String():  {"s"},
		sequencer.ToggleCell.String():       {" "},
		sequencer.ClearGrid.String():        {"c"},
		sequencer.Quit.String():             {"esc", "q", "ctrl+c"},
	}
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	opts := sequencer.DefaultOptions()
	return &Config{
		Grid:     GridConfig{Width: opts.GridWidth, Height: opts.GridHeight},
		Viewport: ViewportConfig{Width: opts.ViewWidth, Height: opts.ViewHeight},
		Keys:     DefaultKeys(),
		Controller: ControllerConfig{
			AutoConnect: true,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-steproll"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from the default path
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path, or returns defaults if it does not
// exist. Fields missing from the file keep their default values.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	// A keys section in the file replaces the default bindings wholesale.
	cfg.Keys = nil
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Keys == nil {
		cfg.Keys = DefaultKeys()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveTo writes the config to path, creating its directory
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EditorOptions converts the config into editor construction options
func (c *Config) EditorOptions() sequencer.Options {
	return sequencer.Options{
		GridWidth:  c.Grid.Width,
		GridHeight: c.Grid.Height,
		ViewWidth:  c.Viewport.Width,
		ViewHeight: c.Viewport.Height,
		Origin:     sequencer.Point{X: c.Start.OriginX, Y: c.Start.OriginY},
		Cursor:     sequencer.Point{X: c.Start.CursorX, Y: c.Start.CursorY},
	}
}

// QuitKey always quits, whatever the keys section says.
const QuitKey = "ctrl+c"

// Bindings resolves Keys into command -> keys. Every key may serve only one
// command, quit must have at least one key, and QuitKey is reserved for quit.
func (c *Config) Bindings() (map[sequencer.Command][]string, error) {
	bindings := make(map[sequencer.Command][]string)
	owner := make(map[string]sequencer.Command)
	for name, keys := range c.Keys {
		cmd, err := sequencer.ParseCommand(name)
		if err != nil {
			return nil, err
		}
		for _, k := range keys {
			if prev, ok := owner[k]; ok && prev != cmd {
				return nil, fmt.Errorf("key %q bound to both %s and %s", k, prev, cmd)
			}
			if k == QuitKey && cmd != sequencer.Quit {
				return nil, fmt.Errorf("key %q is reserved for %s", k, sequencer.Quit)
			}
			owner[k] = cmd
		}
		bindings[cmd] = append(bindings[cmd], keys...)
	}
	if len(bindings[sequencer.Quit]) == 0 {
		return nil, fmt.Errorf("no key bound to %s", sequencer.Quit)
	}
	return bindings, nil
}

// Validate checks the geometry and key bindings by building a throwaway
// editor, so the rules live in one place.
func (c *Config) Validate() error {
	if _, err := sequencer.NewEditor(c.EditorOptions()); err != nil {
		return err
	}
	if _, err := c.Bindings(); err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	return nil
}
