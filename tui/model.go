package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-steproll/debug"
	"go-steproll/midi"
	"go-steproll/sequencer"
	"go-steproll/theme"
	"go-steproll/widgets"
)

// View layout: a blank line, the status header, a blank line, the column
// header, then one line per visible row.
const gridTop = 4

type Model struct {
	Editor    *sequencer.Editor
	Theme     *theme.Theme
	DeviceMgr *midi.DeviceManager // nil when MIDI is disabled

	keys       keyMap
	layout     layout
	help       help.Model
	controller midi.Controller // current controller (may be nil)
	leds       *midi.LEDMirror
	quitting   bool
}

type DeviceEventMsg midi.DeviceEvent

// PadMsg is a pad press from the controller with the given ID.
type PadMsg struct {
	ID    string
	Event midi.PadEvent
}

// NewModel wires the editor to the terminal. keys maps each command to the
// key names that trigger it (see config.Config.Bindings).
func NewModel(editor *sequencer.Editor, th *theme.Theme, keys map[sequencer.Command][]string, deviceMgr *midi.DeviceManager) Model {
	h := help.New()
	h.ShowAll = true
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(th.Text())
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(th.Border())
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(th.Border())
	return Model{
		Editor:    editor,
		Theme:     th,
		DeviceMgr: deviceMgr,
		keys:      newKeyMap(keys),
		layout:    newLayout(editor.Grid().Width(), editor.Grid().Height()),
		help:      h,
		leds:      midi.NewLEDMirror(),
	}
}

func ListenForDevices(deviceMgr *midi.DeviceManager) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-deviceMgr.Events()
		if !ok {
			return nil
		}
		return DeviceEventMsg(event)
	}
}

func ListenForPads(c midi.Controller) tea.Cmd {
	return func() tea.Msg {
		pad, ok := <-c.PadEvents()
		if !ok {
			return nil
		}
		return PadMsg{ID: c.ID(), Event: pad}
	}
}

func (m Model) Init() tea.Cmd {
	if m.DeviceMgr == nil {
		return nil
	}
	return ListenForDevices(m.DeviceMgr)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		cmd, ok := m.keys.lookup(msg)
		if !ok {
			return m, nil
		}
		if cmd == sequencer.Quit {
			m.quitting = true
			return m, tea.Quit
		}
		m.apply(cmd)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if i, j, ok := m.hitTest(msg.X, msg.Y); ok {
			if err := m.Editor.SelectVisible(i, j); err == nil {
				m.syncLEDs()
			}
		}

	case PadMsg:
		if m.controller == nil || m.controller.ID() != msg.ID {
			return m, nil
		}
		if m.Editor.HandlePad(msg.Event.Row, msg.Event.Col) {
			m.syncLEDs()
		}
		return m, ListenForPads(m.controller)

	case DeviceEventMsg:
		event := midi.DeviceEvent(msg)
		var cmds []tea.Cmd
		switch event.Type {
		case midi.DeviceConnected:
			if m.controller == nil {
				m.controller = event.Controller
				m.leds.Reset()
				m.syncLEDs()
				cmds = append(cmds, ListenForPads(m.controller))
			}
		case midi.DeviceDisconnected:
			if m.controller != nil && m.controller.ID() == event.ID {
				m.controller = nil
			}
		}
		cmds = append(cmds, ListenForDevices(m.DeviceMgr))
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *Model) apply(cmd sequencer.Command) {
	changed := m.Editor.Apply(cmd)
	debug.Log("cmd", "%s changed=%v cursor=%v origin=%v",
		cmd, changed, m.Editor.CursorPosition(), m.Editor.ViewportOrigin())
	if changed {
		m.syncLEDs()
	}
}

func (m *Model) syncLEDs() {
	if m.controller == nil {
		return
	}
	states := m.Editor.RenderLEDs(m.Theme.PadColors())
	updates := make([]midi.LEDUpdate, len(states))
	for i, s := range states {
		updates[i] = midi.LEDUpdate{Row: s.Row, Col: s.Col, Color: s.Color, Channel: s.Channel}
	}
	if err := m.leds.Flush(m.controller, updates); err != nil {
		debug.Log("led", "flush failed: %v", err)
	}
}

// hitTest maps a terminal cell to a window-relative grid cell.
func (m Model) hitTest(x, y int) (i, j int, ok bool) {
	if x < m.layout.label || y < gridTop {
		return 0, 0, false
	}
	i, j = (x-m.layout.label)/m.layout.cell, y-gridTop
	w, h := m.Editor.Viewport().Size()
	return i, j, i < w && j < h
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	th := m.Theme
	headerStyle := lipgloss.NewStyle().Foreground(th.Cursor()).Background(th.Background()).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(th.Border())
	textStyle := lipgloss.NewStyle().Foreground(th.Text())

	cursor := m.Editor.CursorPosition()
	origin := m.Editor.ViewportOrigin()
	deviceStatus := ""
	if m.controller != nil {
		deviceStatus = "  LP:X"
	}
	header := headerStyle.Render(fmt.Sprintf("go-steproll  cursor %d,%d  window %d,%d  filled %d%s",
		cursor.X, cursor.Y, origin.X, origin.Y, m.Editor.Grid().Filled(), deviceStatus))

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(m.renderGrid(textStyle, dimStyle))
	out.WriteString("\n\n")
	out.WriteString(m.help.View(m.keys))

	if m.controller != nil {
		pc := th.PadColors()
		out.WriteString("\n\n")
		out.WriteString(widgets.RenderLegendItem(pc.Filled, "Grid", "tap to toggle the mirrored cell"))
		out.WriteString("\n")
		out.WriteString(widgets.RenderLegendItem(pc.Controls, "Top row", "move cursor ↑↓←→ / pan window ↑↓←→"))
		out.WriteString("\n")
		out.WriteString(widgets.RenderLegendItem(pc.Clear, "Scene 1", "clear grid"))
	}

	return out.String()
}

func (m Model) renderGrid(textStyle, dimStyle lipgloss.Style) string {
	th := m.Theme
	w, h := m.Editor.Viewport().Size()
	origin := m.Editor.ViewportOrigin()
	gridHeight := m.Editor.Grid().Height()
	cursorStyle := lipgloss.NewStyle().Foreground(th.Cursor())
	pad := strings.Repeat(" ", m.layout.cell-minCellWidth)

	var out strings.Builder
	out.WriteString(strings.Repeat(" ", m.layout.label))
	for i := 0; i < w; i++ {
		out.WriteString(dimStyle.Render(m.layout.columnLabel(origin.X + i)))
	}

	rows := make([]strings.Builder, h)
	m.Editor.EachVisible(func(c sequencer.Cell) {
		row := &rows[c.Local.Y]
		if c.Local.X == 0 {
			row.WriteString(textStyle.Render(m.layout.rowLabel(c.Abs.Y, gridHeight)))
		}
		sym := lipgloss.NewStyle().Foreground(th.CellColor(c.Filled, c.Cursor)).
			Render(string(th.CellSymbol(c.Filled, c.Cursor)))
		if c.Cursor {
			row.WriteString(cursorStyle.Render("[") + sym + cursorStyle.Render("]"))
		} else {
			row.WriteString(" " + sym + " ")
		}
		row.WriteString(pad)
	})
	for j := range rows {
		out.WriteString("\n")
		out.WriteString(rows[j].String())
	}
	return out.String()
}
