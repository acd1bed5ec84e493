package sequencer

import "go-steproll/midi"

// Launchpad layout: an 8x8 grid (row 0 at the bottom), a top row of
// buttons at row 8 and a side column of scene buttons at col 8.
const (
	padSize = 8
	topRow  = 8
	sideCol = 8
)

// topRowCommands maps the top-row buttons, left to right.
var topRowCommands = [8]Command{
	MoveCursorUp, MoveCursorDown, MoveCursorLeft, MoveCursorRight,
	PanViewportUp, PanViewportDown, PanViewportLeft, PanViewportRight,
}

// LEDState describes the state of a single LED
type LEDState struct {
	Row, Col int
	Color    [3]uint8
	Channel  uint8 // midi.ChannelStatic or midi.ChannelPulse
}

// PadColors are the RGB colors used to mirror the window on a pad grid.
type PadColors struct {
	Empty    [3]uint8
	Filled   [3]uint8
	Cursor   [3]uint8
	Controls [3]uint8
	Clear    [3]uint8
}

// padToLocal maps a grid pad to the window cell it mirrors: the top pad row
// is window row 0.
func padToLocal(row, col int) (i, j int) {
	return col, padSize - 1 - row
}

// RenderLEDs mirrors the top-left 8x8 of the window onto the pad grid. Pads
// beyond a smaller window stay dark.
func (e *Editor) RenderLEDs(c PadColors) []LEDState {
	var leds []LEDState
	w, h := e.view.Size()

	for row := 0; row < padSize; row++ {
		for col := 0; col < padSize; col++ {
			i, j := padToLocal(row, col)
			if i >= w || j >= h {
				continue
			}
			cell := e.VisibleCell(i, j)
			color := c.Empty
			if cell.Filled {
				color = c.Filled
			}
			channel := midi.ChannelStatic
			if cell.Cursor {
				color = c.Cursor
				channel = midi.ChannelPulse
			}
			leds = append(leds, LEDState{Row: row, Col: col, Color: color, Channel: channel})
		}
	}

	for col := range topRowCommands {
		leds = append(leds, LEDState{Row: topRow, Col: col, Color: c.Controls, Channel: midi.ChannelStatic})
	}
	leds = append(leds, LEDState{Row: 0, Col: sideCol, Color: c.Clear, Channel: midi.ChannelStatic})

	return leds
}

// HandlePad applies a pad press and reports whether state changed. A grid
// pad selects the mirrored cell and toggles it.
func (e *Editor) HandlePad(row, col int) bool {
	switch {
	case row == topRow && col >= 0 && col < len(topRowCommands):
		return e.Apply(topRowCommands[col])
	case col == sideCol && row == 0:
		return e.Apply(ClearGrid)
	case row >= 0 && row < padSize && col >= 0 && col < padSize:
		i, j := padToLocal(row, col)
		if err := e.SelectVisible(i, j); err != nil {
			return false
		}
		return e.Apply(ToggleCell)
	}
	return false
}
