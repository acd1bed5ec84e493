package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"go-steproll/config"
	"go-steproll/debug"
	"go-steproll/midi"
	"go-steproll/sequencer"
	"go-steproll/theme"
	"go-steproll/tui"
)

func main() {
	configPath := flag.String("config", "", "config file (default ~/.config/go-steproll/config.json)")
	palettePath := flag.String("palette", "", "GIMP .gpl palette, overrides the config")
	debugLog := flag.Bool("debug", false, "write ~/.config/go-steproll/debug.log")
	noMIDI := flag.Bool("no-midi", false, "do not look for a Launchpad")
	writeConfig := flag.Bool("write-config", false, "write the effective config to the config path and exit")
	flag.Parse()

	if *writeConfig {
		if err := saveConfig(*configPath); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*configPath, *palettePath, *debugLog, *noMIDI); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// saveConfig writes the loaded (or default) config back out, giving the user
// a complete file to edit.
func saveConfig(configPath string) error {
	if configPath == "" {
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}
		configPath = path
	}
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}
	if err := cfg.SaveTo(configPath); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", configPath)
	return nil
}

func run(configPath, palettePath string, debugLog, noMIDI bool) error {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	if debugLog || cfg.Debug {
		if err := debug.Enable(); err != nil {
			return err
		}
		defer debug.Disable()
	}

	if palettePath == "" {
		palettePath = cfg.Palette
	}
	th, err := theme.Load(palettePath)
	if err != nil {
		return err
	}

	editor, err := sequencer.NewEditor(cfg.EditorOptions())
	if err != nil {
		return err
	}
	keys, err := cfg.Bindings()
	if err != nil {
		return err
	}
	debug.Log("main", "grid %dx%d window %dx%d palette %q",
		cfg.Grid.Width, cfg.Grid.Height, cfg.Viewport.Width, cfg.Viewport.Height, th.Palette.Name)

	// MIDI device manager (handles hot-plug)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var deviceMgr *midi.DeviceManager
	if !noMIDI && cfg.Controller.AutoConnect {
		deviceMgr = midi.NewDeviceManager(cfg.Controller.PortName)
		go deviceMgr.Run(ctx)
	}

	m := tui.NewModel(editor, th, keys, deviceMgr)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	_, err = p.Run()
	return err
}
