package sequencer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-steproll/midi"
)

var testPadColors = PadColors{
	Empty:    [3]uint8{1, 1, 1},
	Filled:   [3]uint8{2, 2, 2},
	Cursor:   [3]uint8{3, 3, 3},
	Controls: [3]uint8{4, 4, 4},
	Clear:    [3]uint8{5, 5, 5},
}

func ledAt(leds []LEDState, row, col int) (LEDState, bool) {
	for _, l := range leds {
		if l.Row == row && l.Col == col {
			return l, true
		}
	}
	return LEDState{}, false
}

func TestRenderLEDs_MirrorsWindow(t *testing.T) {
	e := newDefaultEditor(t)
	e.Grid().SetFilled(2, 0)
	e.Grid().SetFilled(7, 7)

	leds := e.RenderLEDs(testPadColors)
	assert.Len(t, leds, 64+8+1)

	// Window row 0 is the top pad row.
	cursor, ok := ledAt(leds, 7, 0)
	require.True(t, ok)
	assert.Equal(t, testPadColors.Cursor, cursor.Color)
	assert.Equal(t, midi.ChannelPulse, cursor.Channel)

	filled, _ := ledAt(leds, 7, 2)
	assert.Equal(t, testPadColors.Filled, filled.Color)
	filled, _ = ledAt(leds, 0, 7)
	assert.Equal(t, testPadColors.Filled, filled.Color)

	empty, _ := ledAt(leds, 3, 3)
	assert.Equal(t, testPadColors.Empty, empty.Color)
	assert.Equal(t, midi.ChannelStatic, empty.Channel)

	clr, ok := ledAt(leds, 0, 8)
	require.True(t, ok)
	assert.Equal(t, testPadColors.Clear, clr.Color)
}

func TestRenderLEDs_SmallWindowLeavesPadsDark(t *testing.T) {
	e, err := NewEditor(Options{GridWidth: 10, GridHeight: 10, ViewWidth: 3, ViewHeight: 2})
	require.NoError(t, err)

	leds := e.RenderLEDs(testPadColors)
	assert.Len(t, leds, 3*2+8+1)
	_, ok := ledAt(leds, 7, 3)
	assert.False(t, ok)
	_, ok = ledAt(leds, 5, 0)
	assert.False(t, ok)
	_, ok = ledAt(leds, 6, 2)
	assert.True(t, ok)
}

func TestHandlePad(t *testing.T) {
	e := newDefaultEditor(t)

	require.True(t, e.HandlePad(6, 2))
	assert.Equal(t, Point{2, 1}, e.CursorPosition())
	assert.True(t, e.Grid().Get(2, 1))

	assert.True(t, e.HandlePad(topRow, 3)) // right
	assert.Equal(t, Point{3, 1}, e.CursorPosition())

	assert.True(t, e.HandlePad(topRow, 7)) // pan right
	assert.Equal(t, Point{1, 0}, e.ViewportOrigin())
	assert.False(t, e.HandlePad(topRow, 4)) // pan up at top

	assert.True(t, e.HandlePad(0, sideCol))
	assert.Equal(t, 0, e.Grid().Filled())

	assert.False(t, e.HandlePad(3, sideCol))
	assert.False(t, e.HandlePad(-1, 0))
}

func TestHandlePad_OutsideSmallWindow(t *testing.T) {
	e, err := NewEditor(Options{GridWidth: 10, GridHeight: 10, ViewWidth: 3, ViewHeight: 2})
	require.NoError(t, err)

	assert.False(t, e.HandlePad(7, 5))
	assert.Equal(t, 0, e.Grid().Filled())
}
