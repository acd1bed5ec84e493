package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-steproll/config"
	"go-steproll/midi"
	"go-steproll/sequencer"
	"go-steproll/theme"
)

type fakeController struct {
	pads    chan midi.PadEvent
	batches [][]midi.LEDUpdate
}

func newFakeController() *fakeController {
	return &fakeController{pads: make(chan midi.PadEvent, 1)}
}

func (f *fakeController) ID() string                      { return "lp" }
func (f *fakeController) Type() midi.ControllerType       { return midi.ControllerLaunchpad }
func (f *fakeController) PadEvents() <-chan midi.PadEvent { return f.pads }
func (f *fakeController) Close() error                    { return nil }
func (f *fakeController) SetLEDBatch(u []midi.LEDUpdate) error {
	f.batches = append(f.batches, u)
	return nil
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	e, err := sequencer.NewEditor(sequencer.DefaultOptions())
	require.NoError(t, err)
	keys, err := config.DefaultConfig().Bindings()
	require.NoError(t, err)
	return NewModel(e, theme.Default(), keys, nil)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestUpdate_KeysDriveEditor(t *testing.T) {
	m := newTestModel(t)

	for i := 0; i < 32; i++ {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	assert.Equal(t, sequencer.Point{X: 32}, m.Editor.CursorPosition())
	assert.Equal(t, sequencer.Point{X: 1}, m.Editor.ViewportOrigin())

	m = send(t, m, runeKey(' '))
	assert.True(t, m.Editor.Grid().Get(32, 0))

	m = send(t, m, runeKey('d'), runeKey('s'))
	assert.Equal(t, sequencer.Point{X: 2, Y: 1}, m.Editor.ViewportOrigin())
	assert.Equal(t, sequencer.Point{X: 32}, m.Editor.CursorPosition())

	m = send(t, m, runeKey('c'))
	assert.Equal(t, 0, m.Editor.Grid().Filled())

	m = send(t, m, runeKey('z'))
	assert.Equal(t, sequencer.Point{X: 32}, m.Editor.CursorPosition())
}

func TestUpdate_Quit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestUpdate_CtrlCQuitsWithoutQuitBinding(t *testing.T) {
	e, err := sequencer.NewEditor(sequencer.DefaultOptions())
	require.NoError(t, err)
	m := NewModel(e, theme.Default(), map[sequencer.Command][]string{
		sequencer.ToggleCell:      {" "},
		sequencer.MoveCursorRight: {"right"},
	}, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	_, cmd = m.Update(runeKey('q'))
	assert.Nil(t, cmd)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Contains(t, m.View(), "ctrl+c")
}

func TestKeyMap_HelpGroups(t *testing.T) {
	keys, err := config.DefaultConfig().Bindings()
	require.NoError(t, err)
	km := newKeyMap(keys)

	groups := km.FullHelp()
	require.Len(t, groups, 3)
	assert.Len(t, groups[0], 4)
	assert.Len(t, groups[1], 4)
	assert.Equal(t, "move-left", groups[0][0].Help().Desc)
	assert.Equal(t, "←/h", groups[0][0].Help().Key)
	assert.Equal(t, "space", km.ShortHelp()[0].Help().Key)

	cmd, ok := km.lookup(runeKey('w'))
	assert.True(t, ok)
	assert.Equal(t, sequencer.PanViewportUp, cmd)
	_, ok = km.lookup(runeKey('z'))
	assert.False(t, ok)
}

func TestUpdate_MouseSelectsCell(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, runeKey('d'))

	m = send(t, m, tea.MouseMsg{X: m.layout.label + 2*m.layout.cell + 1, Y: gridTop + 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, sequencer.Point{X: 3, Y: 3}, m.Editor.CursorPosition())

	m = send(t, m, tea.MouseMsg{X: 1, Y: gridTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = send(t, m, tea.MouseMsg{X: m.layout.label, Y: gridTop, Action: tea.MouseActionMotion})
	assert.Equal(t, sequencer.Point{X: 3, Y: 3}, m.Editor.CursorPosition())
}

func TestUpdate_ControllerMirrorsEdits(t *testing.T) {
	m := newTestModel(t)
	ctrl := newFakeController()

	m = send(t, m, DeviceEventMsg{Type: midi.DeviceConnected, Controller: ctrl, ID: "lp"})
	require.Len(t, ctrl.batches, 1)
	assert.Len(t, ctrl.batches[0], 64+8+1)
	assert.Contains(t, m.View(), "LP:X")

	// Pad row 7 col 1 mirrors window cell (1,0).
	m = send(t, m, PadMsg{ID: "lp", Event: midi.PadEvent{Row: 7, Col: 1}})
	assert.True(t, m.Editor.Grid().Get(1, 0))
	require.Len(t, ctrl.batches, 2)
	assert.Len(t, ctrl.batches[1], 2, "old cursor pad and new cursor pad")

	m = send(t, m, PadMsg{ID: "other", Event: midi.PadEvent{Row: 7, Col: 2}})
	assert.False(t, m.Editor.Grid().Get(2, 0))

	m = send(t, m, DeviceEventMsg{Type: midi.DeviceDisconnected, ID: "lp"})
	m = send(t, m, runeKey(' '))
	assert.Len(t, ctrl.batches, 2)
	assert.NotContains(t, m.View(), "LP:X")
}

func TestView_RendersWindow(t *testing.T) {
	m := newTestModel(t)
	m.Editor.Grid().SetFilled(2, 0)

	lines := strings.Split(m.View(), "\n")
	require.GreaterOrEqual(t, len(lines), gridTop+12)
	assert.Contains(t, lines[1], "cursor 0,0")
	assert.Contains(t, lines[1], "filled 1")
	assert.Contains(t, lines[gridTop-1], "31")
	assert.Contains(t, lines[gridTop], "B2")
	assert.Contains(t, lines[gridTop], "[○]")
	assert.Contains(t, lines[gridTop], "●")
	assert.Contains(t, lines[gridTop+11], "C2")
	assert.Contains(t, m.View(), "move-left")
}

func TestLabels(t *testing.T) {
	l := newLayout(64, 36)
	assert.Equal(t, layout{label: 4, cell: 3}, l)
	assert.Equal(t, "C0  ", l.rowLabel(35, 36))
	assert.Equal(t, "B2  ", l.rowLabel(0, 36))
	assert.Equal(t, "C#1 ", l.rowLabel(22, 36))
	assert.Equal(t, "7  ", l.columnLabel(7))
}

func TestLabels_GrowWithGrid(t *testing.T) {
	// 2000 columns and 131 rows: indices up to 1999, octaves up to 10.
	l := newLayout(2000, 131)
	assert.Equal(t, layout{label: 5, cell: 5}, l)
	assert.Equal(t, "1234 ", l.columnLabel(1234))
	assert.Equal(t, "A#10 ", l.rowLabel(0, 131))
	assert.Equal(t, "C0   ", l.rowLabel(130, 131))
}

func TestView_WideGridKeepsColumnsAligned(t *testing.T) {
	e, err := sequencer.NewEditor(sequencer.Options{GridWidth: 2000, GridHeight: 131, ViewWidth: 4, ViewHeight: 2, Origin: sequencer.Point{X: 1000}, Cursor: sequencer.Point{X: 1001}})
	require.NoError(t, err)
	m := NewModel(e, theme.Default(), nil, nil)

	lines := strings.Split(m.View(), "\n")
	assert.Equal(t, "     1000 1001 1002 1003 ", lines[gridTop-1])
	assert.Equal(t, "A#10  ·   [○]   ·    ·   ", lines[gridTop])

	m = send(t, m, tea.MouseMsg{X: 5 + 2*5, Y: gridTop + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, sequencer.Point{X: 1002, Y: 1}, m.Editor.CursorPosition())
}
