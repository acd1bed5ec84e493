// Command miditest checks Launchpad connectivity outside the editor.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go-steproll/midi"
	"go-steproll/sequencer"
	"go-steproll/theme"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	portName := ""
	if len(os.Args) > 2 {
		portName = os.Args[2]
	}
	palettePath := ""
	if len(os.Args) > 3 {
		palettePath = os.Args[3]
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "watch":
		watch(portName)
	case "mirror":
		mirror(portName, palettePath)
	default:
		usage()
	}
}

func usage() {
	fmt.Println("MIDI Test Scripts")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list            - List all MIDI ports")
	fmt.Println("  watch [port]    - Print controller connects/disconnects")
	fmt.Println("  mirror [port] [palette.gpl]")
	fmt.Println("                  - Show a test grid on the pads; pads edit it")
}

func listPorts() {
	fmt.Println("=== MIDI Input Ports ===")
	fmt.Println("(waiting up to 3 seconds...)")

	ins, outs, ok := midi.ListPorts()
	if !ok {
		fmt.Println("\nTIMEOUT! CoreMIDI is hung.")
		fmt.Println("Fix: sudo killall coreaudiod midiserver")
		return
	}
	for i, p := range ins {
		fmt.Printf("  %d: %s\n", i, p.String())
	}
	fmt.Println("\n=== MIDI Output Ports ===")
	for i, p := range outs {
		fmt.Printf("  %d: %s\n", i, p.String())
	}
}

func interruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func watch(portName string) {
	fmt.Println("Watching for controllers. Ctrl+C to exit.")

	ctx, cancel := interruptContext()
	defer cancel()

	dm := midi.NewDeviceManager(portName)
	go dm.Run(ctx)

	for event := range dm.Events() {
		ts := time.Now().Format("15:04:05")
		switch event.Type {
		case midi.DeviceConnected:
			fmt.Printf("[%s] connected    %s (%s)\n", ts, event.ID, event.Controller.Type())
		case midi.DeviceDisconnected:
			fmt.Printf("[%s] disconnected %s\n", ts, event.ID)
		}
		fmt.Printf("           %d controller(s) connected\n", len(dm.Controllers()))
	}
}

// mirror lights a diagonal on a 16x16 grid seen through an 8x8 window and
// applies pad presses to it until interrupted.
func mirror(portName, palettePath string) {
	editor, err := sequencer.NewEditor(sequencer.Options{GridWidth: 16, GridHeight: 16, ViewWidth: 8, ViewHeight: 8})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	for i := 0; i < 16; i++ {
		editor.Grid().SetFilled(i, i)
	}
	th := theme.Default()
	if palettePath != "" {
		th, err = theme.New(theme.MustLoadGPL(palettePath))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}
	colors := th.PadColors()

	ctx, cancel := interruptContext()
	defer cancel()

	dm := midi.NewDeviceManager(portName)
	go dm.Run(ctx)

	fmt.Println("Waiting for a Launchpad. Ctrl+C to exit.")

	var ctrl midi.Controller
	for ctrl == nil {
		event, ok := <-dm.Events()
		if !ok {
			return
		}
		if event.Type == midi.DeviceConnected {
			ctrl = event.Controller
		}
	}
	fmt.Printf("Mirroring on %s\n", ctrl.ID())

	leds := midi.NewLEDMirror()
	flush := func() {
		states := editor.RenderLEDs(colors)
		updates := make([]midi.LEDUpdate, len(states))
		for i, s := range states {
			updates[i] = midi.LEDUpdate{Row: s.Row, Col: s.Col, Color: s.Color, Channel: s.Channel}
		}
		if err := leds.Flush(ctrl, updates); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
	flush()

	for {
		select {
		case <-ctx.Done():
			return
		case pad, ok := <-ctrl.PadEvents():
			if !ok {
				fmt.Println("Controller disconnected")
				return
			}
			if editor.HandlePad(pad.Row, pad.Col) {
				c, o := editor.CursorPosition(), editor.ViewportOrigin()
				fmt.Printf("pad %d,%d  cursor %d,%d  window %d,%d\n", pad.Row, pad.Col, c.X, c.Y, o.X, o.Y)
				flush()
			}
		}
	}
}
